package sac

import (
	"github.com/golang/geo/r3"

	"github.com/seqsense/pcalg/pc"
)

// Line is a line through two distinct points.
// Ranking is the inlier count of the winning hypothesis.
type Line struct {
	First, Second r3.Vector
	Ranking       int
}

// Distance returns the distance between p and the line.
// It is non-finite if First and Second are coincident.
func (l Line) Distance(p r3.Vector) float64 {
	dir := l.Second.Sub(l.First)
	return dir.Cross(l.First.Sub(p)).Norm() / dir.Norm()
}

type lineModel struct {
	ra pc.Vec3RandomAccessor
}

// NewLineModel returns a Model generating line hypotheses from samples of
// two points.
func NewLineModel(ra pc.Vec3RandomAccessor) Model {
	return &lineModel{ra: ra}
}

func (lineModel) NumSamples() int {
	return 2
}

func (m *lineModel) Fit(ids []int) ModelCoefficients {
	return &lineCoefficients{
		Line: Line{First: m.ra.Vec3At(ids[0]), Second: m.ra.Vec3At(ids[1])},
		ra:   m.ra,
	}
}

type lineCoefficients struct {
	Line
	ra pc.Vec3RandomAccessor
}

func (c *lineCoefficients) Evaluate(threshold float64) int {
	var cnt int
	for i, n := 0, c.ra.Len(); i < n; i++ {
		if c.Distance(c.ra.Vec3At(i)) < threshold {
			cnt++
		}
	}
	return cnt
}

func (c *lineCoefficients) Inliers(threshold float64) []int {
	var ids []int
	for i, n := 0, c.ra.Len(); i < n; i++ {
		if c.Distance(c.ra.Vec3At(i)) < threshold {
			ids = append(ids, i)
		}
	}
	return ids
}
