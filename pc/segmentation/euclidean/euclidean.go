// Package euclidean extracts density-reachable clusters from an indexed
// point cloud by growing neighborhoods through radius queries.
package euclidean

import (
	"errors"

	"github.com/seqsense/pcalg/pc/storage/kdtree"
)

const initialSliceCap = 8192

// ErrInvalidRadius is returned if the search radius is not positive.
var ErrInvalidRadius = errors.New("radius must be > 0")

// Mode selects how clusters are emitted.
type Mode int

const (
	// ModePerSeed grows one cluster from every point, in index order.
	// Points reachable from multiple seeds appear in multiple clusters.
	ModePerSeed Mode = iota
	// ModeConnectedComponents emits one cluster per group of mutually
	// reachable points, each point appearing in exactly one cluster.
	ModeConnectedComponents
)

// Extract grows one cluster from every point of the indexed cloud using
// neighbor expansion within radius, and returns the clusters in seed index
// order. Each cluster starts with its seed, followed by the neighbors in
// discovery order.
func Extract(t *kdtree.KDTree, radius float64) ([][]int, error) {
	return ExtractMode(t, radius, ModePerSeed)
}

// ExtractMode is Extract with an explicit cluster emission mode.
func ExtractMode(t *kdtree.KDTree, radius float64, mode Mode) ([][]int, error) {
	if radius <= 0 {
		return nil, ErrInvalidRadius
	}
	if mode == ModeConnectedComponents {
		return extractComponents(t, radius), nil
	}
	return extractPerSeed(t, radius), nil
}

func extractPerSeed(t *kdtree.KDTree, radius float64) [][]int {
	n := t.Len()
	clusters := make([][]int, 0, n)
	inQueue := make([]bool, n)

	for seed := 0; seed < n; seed++ {
		queue := make([]int, 1, n)
		queue[0] = seed
		inQueue[seed] = true

		// cursor is strictly increasing and the queue cannot outgrow the
		// cloud, so the expansion terminates.
		for cursor := 0; cursor < len(queue); cursor++ {
			for _, q := range t.SearchRadius(t.Vec3At(queue[cursor]), radius) {
				if !inQueue[q] {
					inQueue[q] = true
					queue = append(queue, q)
				}
			}
		}

		for _, q := range queue {
			inQueue[q] = false
		}
		clusters = append(clusters, queue)
	}
	return clusters
}

func extractComponents(t *kdtree.KDTree, radius float64) [][]int {
	n := t.Len()
	visited := make([]bool, n)
	var clusters [][]int

	for seed := 0; seed < n; seed++ {
		if visited[seed] {
			continue
		}
		visited[seed] = true
		queue := make([]int, 1, initialSliceCap)
		queue[0] = seed

		for cursor := 0; cursor < len(queue); cursor++ {
			for _, q := range t.SearchRadius(t.Vec3At(queue[cursor]), radius) {
				if !visited[q] {
					visited[q] = true
					queue = append(queue, q)
				}
			}
		}
		clusters = append(clusters, queue)
	}
	return clusters
}
