package pc

import (
	"errors"
	"math"

	"github.com/golang/geo/r3"
)

func MinMaxVec3(ra Vec3RandomAccessor) (r3.Vector, r3.Vector, error) {
	it := NewVec3Iterator(ra)
	if !it.IsValid() {
		return r3.Vector{}, r3.Vector{}, errors.New("no point")
	}
	min := r3.Vector{X: math.MaxFloat64, Y: math.MaxFloat64, Z: math.MaxFloat64}
	max := r3.Vector{X: -math.MaxFloat64, Y: -math.MaxFloat64, Z: -math.MaxFloat64}
	for ; it.IsValid(); it.Incr() {
		v := it.Vec3()
		min = r3.Vector{
			X: math.Min(min.X, v.X),
			Y: math.Min(min.Y, v.Y),
			Z: math.Min(min.Z, v.Z),
		}
		max = r3.Vector{
			X: math.Max(max.X, v.X),
			Y: math.Max(max.Y, v.Y),
			Z: math.Max(max.Z, v.Z),
		}
	}
	return min, max, nil
}
