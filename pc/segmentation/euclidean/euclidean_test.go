package euclidean

import (
	"reflect"
	"sort"
	"testing"

	"github.com/seqsense/pcalg/pc"
	"github.com/seqsense/pcalg/pc/storage/kdtree"
)

func sorted(c []int) []int {
	out := append([]int{}, c...)
	sort.Ints(out)
	return out
}

func TestExtract(t *testing.T) {
	// Five collinear points, each within reach of its neighbors.
	cloud := pc.Vec3Slice{
		{X: 0, Y: 0, Z: 0},
		{X: 1, Y: 0, Z: 0},
		{X: 2, Y: 0, Z: 0},
		{X: 3, Y: 0, Z: 0},
		{X: 4, Y: 0, Z: 0},
	}
	kdt := kdtree.New(cloud)

	clusters, err := Extract(kdt, 1.5)
	if err != nil {
		t.Fatal(err)
	}

	if len(clusters) != 5 {
		t.Fatalf("Expected 5 clusters, got: %d", len(clusters))
	}
	expected := []int{0, 1, 2, 3, 4}
	for seed, c := range clusters {
		if c[0] != seed {
			t.Errorf("Cluster %d should start with its seed, got: %v", seed, c)
		}
		if got := sorted(c); !reflect.DeepEqual(expected, got) {
			t.Errorf("Cluster %d: expected members: %v, got: %v", seed, expected, got)
		}
	}
}

func TestExtract_twoGroups(t *testing.T) {
	// Intra-group distances are below the radius, inter-group distances
	// above. Clusters seeded in one group must not leak into the other.
	cloud := pc.Vec3Slice{
		{X: 0.0, Y: 0, Z: 0},
		{X: 0.5, Y: 0, Z: 0},
		{X: 1.0, Y: 0, Z: 0},
		{X: 10.0, Y: 0, Z: 0},
		{X: 10.5, Y: 0, Z: 0},
		{X: 11.0, Y: 0, Z: 0},
	}
	kdt := kdtree.New(cloud)

	clusters, err := Extract(kdt, 1.5)
	if err != nil {
		t.Fatal(err)
	}

	groupA, groupB := []int{0, 1, 2}, []int{3, 4, 5}
	for seed, c := range clusters {
		expected := groupA
		if seed >= 3 {
			expected = groupB
		}
		if got := sorted(c); !reflect.DeepEqual(expected, got) {
			t.Errorf("Cluster %d: expected members: %v, got: %v", seed, expected, got)
		}
	}
}

func TestExtractMode_connectedComponents(t *testing.T) {
	cloud := pc.Vec3Slice{
		{X: 0.0, Y: 0, Z: 0},
		{X: 0.5, Y: 0, Z: 0},
		{X: 1.0, Y: 0, Z: 0},
		{X: 10.0, Y: 0, Z: 0},
		{X: 10.5, Y: 0, Z: 0},
		{X: 11.0, Y: 0, Z: 0},
	}
	kdt := kdtree.New(cloud)

	clusters, err := ExtractMode(kdt, 1.5, ModeConnectedComponents)
	if err != nil {
		t.Fatal(err)
	}

	if len(clusters) != 2 {
		t.Fatalf("Expected 2 clusters, got: %d", len(clusters))
	}
	if got := sorted(clusters[0]); !reflect.DeepEqual([]int{0, 1, 2}, got) {
		t.Errorf("Expected members: [0 1 2], got: %v", got)
	}
	if got := sorted(clusters[1]); !reflect.DeepEqual([]int{3, 4, 5}, got) {
		t.Errorf("Expected members: [3 4 5], got: %v", got)
	}
}

func TestExtract_isolatedPoints(t *testing.T) {
	cloud := pc.Vec3Slice{
		{X: 0, Y: 0, Z: 0},
		{X: 100, Y: 0, Z: 0},
	}
	kdt := kdtree.New(cloud)

	clusters, err := Extract(kdt, 1)
	if err != nil {
		t.Fatal(err)
	}
	expected := [][]int{{0}, {1}}
	if !reflect.DeepEqual(expected, clusters) {
		t.Errorf("Expected clusters: %v, got: %v", expected, clusters)
	}
}

func TestExtract_invalidRadius(t *testing.T) {
	kdt := kdtree.New(pc.Vec3Slice{{X: 0, Y: 0, Z: 0}})

	if _, err := Extract(kdt, 0); err != ErrInvalidRadius {
		t.Errorf("Expected error: %v, got: %v", ErrInvalidRadius, err)
	}
	if _, err := ExtractMode(kdt, -1, ModeConnectedComponents); err != ErrInvalidRadius {
		t.Errorf("Expected error: %v, got: %v", ErrInvalidRadius, err)
	}
}
