// Package sac provides random sample consensus model fitting over point
// clouds.
package sac

import (
	"errors"
	"runtime"
	"sync"

	"github.com/golang/geo/r3"
)

var (
	// ErrInvalidThreshold is returned if the distance threshold is not
	// positive.
	ErrInvalidThreshold = errors.New("distance threshold must be > 0")
	// ErrInvalidIterations is returned if the number of iterations is not
	// positive.
	ErrInvalidIterations = errors.New("number of iterations must be > 0")
	// ErrTooFewPoints is returned if the point cloud has fewer points than
	// the minimal sample of the model.
	ErrTooFewPoints = errors.New("not enough points to sample the model")
)

// Sampler draws a random point index from [0, n).
// A Sampler passed to ComputeParallel must be safe for concurrent use.
type Sampler interface {
	Sample() int
}

// Model generates a hypothesis from a minimal sample of point indices.
type Model interface {
	NumSamples() int
	Fit(ids []int) ModelCoefficients
}

// ModelCoefficients is a fitted hypothesis.
//
// Distance may be non-finite for a degenerate hypothesis (e.g. a collinear
// plane sample or a coincident line sample). A non-finite distance never
// satisfies the strict threshold comparison, so degenerate hypotheses score
// zero without any special handling.
type ModelCoefficients interface {
	Distance(p r3.Vector) float64
	Evaluate(threshold float64) int
	Inliers(threshold float64) []int
}

// SAC selects the hypothesis with the most inliers out of randomly sampled
// ones. Ties are kept by the earliest iteration.
type SAC struct {
	Sampler Sampler
	Model   Model

	bestCoeff   ModelCoefficients
	bestRanking int
}

func New(s Sampler, m Model) *SAC {
	return &SAC{Sampler: s, Model: m, bestRanking: -1}
}

// Compute runs the given number of iterations serially.
func (s *SAC) Compute(threshold float64, iterations int) error {
	if err := validate(threshold, iterations); err != nil {
		return err
	}
	s.bestCoeff, s.bestRanking = nil, -1

	ids := make([]int, s.Model.NumSamples())
	for i := 0; i < iterations; i++ {
		sampleDistinct(s.Sampler, ids)
		coeff := s.Model.Fit(ids)
		if r := coeff.Evaluate(threshold); r > s.bestRanking {
			s.bestRanking = r
			s.bestCoeff = coeff
		}
	}
	return nil
}

// ComputeParallel runs the iterations fanned out over the available CPUs.
// Each iteration is independent; results are stored per iteration and folded
// in iteration order, so the tie-break matches Compute.
func (s *SAC) ComputeParallel(threshold float64, iterations int) error {
	if err := validate(threshold, iterations); err != nil {
		return err
	}

	type result struct {
		coeff   ModelCoefficients
		ranking int
	}
	results := make([]result, iterations)

	workers := runtime.GOMAXPROCS(0)
	if workers > iterations {
		workers = iterations
	}
	num := s.Model.NumSamples()

	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func(w int) {
			defer wg.Done()
			ids := make([]int, num)
			for i := w; i < iterations; i += workers {
				sampleDistinct(s.Sampler, ids)
				coeff := s.Model.Fit(ids)
				results[i] = result{coeff: coeff, ranking: coeff.Evaluate(threshold)}
			}
		}(w)
	}
	wg.Wait()

	s.bestCoeff, s.bestRanking = nil, -1
	for _, r := range results {
		if r.ranking > s.bestRanking {
			s.bestRanking = r.ranking
			s.bestCoeff = r.coeff
		}
	}
	return nil
}

// Coefficients returns the winning hypothesis of the last computation.
func (s *SAC) Coefficients() ModelCoefficients {
	return s.bestCoeff
}

// Ranking returns the inlier count of the winning hypothesis.
func (s *SAC) Ranking() int {
	return s.bestRanking
}

func validate(threshold float64, iterations int) error {
	if threshold <= 0 {
		return ErrInvalidThreshold
	}
	if iterations <= 0 {
		return ErrInvalidIterations
	}
	return nil
}

// sampleDistinct fills ids with pairwise-distinct indices drawn from s.
func sampleDistinct(s Sampler, ids []int) {
	for i := range ids {
		for {
			id := s.Sample()
			if !contains(ids[:i], id) {
				ids[i] = id
				break
			}
		}
	}
}

func contains(ids []int, id int) bool {
	for _, v := range ids {
		if v == id {
			return true
		}
	}
	return false
}
