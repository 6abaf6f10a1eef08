package filter

import (
	"github.com/seqsense/pcalg/pc"
)

// Filter reduces a point cloud to a filtered copy of its positions.
type Filter interface {
	Filter(pc.Vec3RandomAccessor) (pc.Vec3Slice, error)
}
