package sac

import (
	"math"

	"github.com/golang/geo/r3"

	"github.com/seqsense/pcalg/pc"
)

// Plane is a plane in coordinate form: Ax + By + Cz + D = 0.
// The coefficients are not normalized; Ranking is the inlier count of the
// winning hypothesis.
type Plane struct {
	A, B, C, D float64
	Ranking    int
}

// Distance returns the distance between p and the plane.
// It is non-finite if the normal has zero length.
func (pl Plane) Distance(p r3.Vector) float64 {
	return math.Abs(pl.A*p.X+pl.B*p.Y+pl.C*p.Z+pl.D) /
		math.Sqrt(pl.A*pl.A+pl.B*pl.B+pl.C*pl.C)
}

// Normal returns the plane normal. It has zero length for a degenerate plane.
func (pl Plane) Normal() r3.Vector {
	return r3.Vector{X: pl.A, Y: pl.B, Z: pl.C}
}

type planeModel struct {
	ra pc.Vec3RandomAccessor
}

// NewPlaneModel returns a Model generating plane hypotheses from samples of
// three points.
func NewPlaneModel(ra pc.Vec3RandomAccessor) Model {
	return &planeModel{ra: ra}
}

func (planeModel) NumSamples() int {
	return 3
}

func (m *planeModel) Fit(ids []int) ModelCoefficients {
	pa, pb, pcc := m.ra.Vec3At(ids[0]), m.ra.Vec3At(ids[1]), m.ra.Vec3At(ids[2])
	normal := pb.Sub(pa).Cross(pcc.Sub(pa))
	return &planeCoefficients{
		Plane: Plane{A: normal.X, B: normal.Y, C: normal.Z, D: -normal.Dot(pa)},
		ra:    m.ra,
	}
}

type planeCoefficients struct {
	Plane
	ra pc.Vec3RandomAccessor
}

func (c *planeCoefficients) Evaluate(threshold float64) int {
	var cnt int
	for i, n := 0, c.ra.Len(); i < n; i++ {
		if c.Distance(c.ra.Vec3At(i)) < threshold {
			cnt++
		}
	}
	return cnt
}

func (c *planeCoefficients) Inliers(threshold float64) []int {
	var ids []int
	for i, n := 0, c.ra.Len(); i < n; i++ {
		if c.Distance(c.ra.Vec3At(i)) < threshold {
			ids = append(ids, i)
		}
	}
	return ids
}
