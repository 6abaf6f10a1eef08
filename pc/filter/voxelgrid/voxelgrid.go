// Package voxelgrid downsamples a point cloud to one centroid per voxel.
package voxelgrid

import (
	"errors"

	"github.com/golang/geo/r3"

	"github.com/seqsense/pcalg/pc"
	"github.com/seqsense/pcalg/pc/filter"
)

type Options struct {
	LeafSize r3.Vector
}

type voxelGrid struct {
	Options
}

type voxel struct {
	sum r3.Vector
	num int
}

func New(leafSize r3.Vector) filter.Filter {
	return &voxelGrid{
		Options: Options{
			LeafSize: leafSize,
		},
	}
}

func (f *voxelGrid) Filter(ra pc.Vec3RandomAccessor) (pc.Vec3Slice, error) {
	if f.LeafSize.X <= 0 || f.LeafSize.Y <= 0 || f.LeafSize.Z <= 0 {
		return nil, errors.New("invalid leaf size")
	}
	min, max, err := pc.MinMaxVec3(ra)
	if err != nil {
		return nil, err
	}

	size := max.Sub(min)
	xs := int(size.X/f.LeafSize.X) + 1
	ys := int(size.Y/f.LeafSize.Y) + 1
	zs := int(size.Z/f.LeafSize.Z) + 1
	voxels := make([]voxel, xs*ys*zs)

	var n int
	for it := pc.NewVec3Iterator(ra); it.IsValid(); it.Incr() {
		p := it.Vec3().Sub(min)
		x, y, z := int(p.X/f.LeafSize.X), int(p.Y/f.LeafSize.Y), int(p.Z/f.LeafSize.Z)
		v := &voxels[x+xs*(y+ys*z)]
		if v.num == 0 {
			n++
		}
		v.num++
		v.sum = v.sum.Add(p)
	}

	out := make(pc.Vec3Slice, 0, n)
	for i := range voxels {
		if v := &voxels[i]; v.num > 0 {
			out = append(out, v.sum.Mul(1/float64(v.num)).Add(min))
		}
	}
	return out, nil
}
