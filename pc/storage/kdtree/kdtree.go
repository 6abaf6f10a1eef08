// Package kdtree provides a spatial index over point cloud positions
// answering nearest-point and radius queries.
package kdtree

import (
	"math"

	"github.com/golang/geo/r3"
	spatial "gonum.org/v1/gonum/spatial/kdtree"

	"github.com/seqsense/pcalg/pc"
)

// KDTree indexes the positions of a point cloud.
// It is built once from all positions and immutable afterwards; queries are
// safe for concurrent use.
type KDTree struct {
	tree *spatial.Tree
	ra   pc.Vec3RandomAccessor
}

// New builds a KDTree from all positions of ra.
func New(ra pc.Vec3RandomAccessor) *KDTree {
	ps := make(points, ra.Len())
	for i := range ps {
		ps[i] = point{pos: ra.Vec3At(i), id: i}
	}
	return &KDTree{
		tree: spatial.New(ps, false),
		ra:   ra,
	}
}

func (t *KDTree) Len() int {
	return t.ra.Len()
}

func (t *KDTree) Vec3At(i int) r3.Vector {
	return t.ra.Vec3At(i)
}

// Nearest returns the index of the point closest to p and its distance.
// It returns (-1, +Inf) on an empty tree.
func (t *KDTree) Nearest(p r3.Vector) (int, float64) {
	c, dist := t.tree.Nearest(point{pos: p, id: -1})
	if c == nil {
		return -1, math.Inf(1)
	}
	// gonum keeps squared Euclidean distances.
	return c.(point).id, math.Sqrt(dist)
}

// SearchRadius returns the indices of all points within radius of p,
// including a point at distance zero (the query center if it is a member).
// The order of the result is unspecified.
func (t *KDTree) SearchRadius(p r3.Vector, radius float64) []int {
	keep := spatial.NewDistKeeper(radius * radius)
	t.tree.NearestSet(keep, point{pos: p, id: -1})

	ids := make([]int, 0, len(keep.Heap))
	for _, c := range keep.Heap {
		if c.Comparable == nil {
			continue
		}
		ids = append(ids, c.Comparable.(point).id)
	}
	return ids
}

type point struct {
	pos r3.Vector
	id  int
}

func component(p r3.Vector, d spatial.Dim) float64 {
	switch d {
	case 0:
		return p.X
	case 1:
		return p.Y
	default:
		return p.Z
	}
}

func (p point) Compare(c spatial.Comparable, d spatial.Dim) float64 {
	q := c.(point)
	return component(p.pos, d) - component(q.pos, d)
}

func (p point) Dims() int {
	return 3
}

func (p point) Distance(c spatial.Comparable) float64 {
	q := c.(point)
	return p.pos.Sub(q.pos).Norm2()
}

type points []point

func (p points) Index(i int) spatial.Comparable {
	return p[i]
}

func (p points) Len() int {
	return len(p)
}

func (p points) Pivot(d spatial.Dim) int {
	return plane{points: p, dim: d}.Pivot()
}

func (p points) Slice(start, end int) spatial.Interface {
	return p[start:end]
}

type plane struct {
	dim spatial.Dim
	points
}

func (p plane) Less(i, j int) bool {
	return component(p.points[i].pos, p.dim) < component(p.points[j].pos, p.dim)
}

func (p plane) Pivot() int {
	return spatial.Partition(p, spatial.MedianOfMedians(p))
}

func (p plane) Slice(start, end int) spatial.SortSlicer {
	p.points = p.points[start:end]
	return p
}

func (p plane) Swap(i, j int) {
	p.points[i], p.points[j] = p.points[j], p.points[i]
}
