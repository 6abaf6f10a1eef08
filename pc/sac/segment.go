package sac

import (
	"github.com/seqsense/pcalg/pc"
)

// SegmentPlane fits a plane to ra and returns it with the indices of its
// inliers. A point is an inlier if its distance to the plane is strictly
// below threshold. The returned ranking may be zero; that is a valid result,
// not an error.
//
// If parallel is true the iterations are distributed over the available
// CPUs. Use a SAC with an injected Sampler for reproducible results.
func SegmentPlane(ra pc.Vec3RandomAccessor, threshold float64, iterations int, parallel bool) (Plane, []int, error) {
	coeff, inliers, err := segment(ra, NewPlaneModel(ra), threshold, iterations, parallel)
	if err != nil {
		return Plane{}, nil, err
	}
	plane := coeff.(*planeCoefficients).Plane
	plane.Ranking = len(inliers)
	return plane, inliers, nil
}

// SegmentLine fits a line to ra and returns it with the indices of its
// inliers. See SegmentPlane for the inlier and ranking semantics.
func SegmentLine(ra pc.Vec3RandomAccessor, threshold float64, iterations int, parallel bool) (Line, []int, error) {
	coeff, inliers, err := segment(ra, NewLineModel(ra), threshold, iterations, parallel)
	if err != nil {
		return Line{}, nil, err
	}
	line := coeff.(*lineCoefficients).Line
	line.Ranking = len(inliers)
	return line, inliers, nil
}

func segment(ra pc.Vec3RandomAccessor, m Model, threshold float64, iterations int, parallel bool) (ModelCoefficients, []int, error) {
	if err := validate(threshold, iterations); err != nil {
		return nil, nil, err
	}
	if ra.Len() < m.NumSamples() {
		return nil, nil, ErrTooFewPoints
	}
	s := New(NewRandomSampler(ra.Len()), m)
	var err error
	if parallel {
		err = s.ComputeParallel(threshold, iterations)
	} else {
		err = s.Compute(threshold, iterations)
	}
	if err != nil {
		return nil, nil, err
	}
	coeff := s.Coefficients()
	return coeff, coeff.Inliers(threshold), nil
}
