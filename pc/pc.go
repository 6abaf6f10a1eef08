package pc

import (
	"github.com/golang/geo/r3"
)

// Vec3RandomAccessor is a read-only, random-access view of point positions.
// Vec3At panics with a runtime range error if i is out of [0, Len()).
type Vec3RandomAccessor interface {
	Vec3At(int) r3.Vector
	Len() int
}

// Vec3Iterator iterates positions in index order.
type Vec3Iterator interface {
	Incr()
	IsValid() bool
	Index() int
	Vec3() r3.Vector
}

// Vec3Slice is an in-memory point cloud.
type Vec3Slice []r3.Vector

func (s Vec3Slice) Len() int {
	return len(s)
}

func (s Vec3Slice) Vec3At(i int) r3.Vector {
	return s[i]
}

// NewVec3Iterator returns an iterator over ra in index order.
// A fresh iterator restarts the sequence.
func NewVec3Iterator(ra Vec3RandomAccessor) Vec3Iterator {
	return &vec3Iterator{ra: ra}
}

type vec3Iterator struct {
	ra  Vec3RandomAccessor
	pos int
}

func (i *vec3Iterator) Incr() {
	i.pos++
}

func (i *vec3Iterator) IsValid() bool {
	return i.pos < i.ra.Len()
}

func (i *vec3Iterator) Index() int {
	return i.pos
}

func (i *vec3Iterator) Vec3() r3.Vector {
	return i.ra.Vec3At(i.pos)
}
