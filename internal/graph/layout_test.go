package graph

import (
	"testing"

	"github.com/praxislearn/praxis/internal/concepts"
)

func TestComputeLayoutLayersFollowLongestPath(t *testing.T) {
	n := ids(4)
	// n0 -> n1 -> n3 and n0 -> n3 directly: n3 must land on layer 2, not 1.
	edges := []concepts.Edge{edge(n[0], n[1]), edge(n[1], n[3]), edge(n[0], n[3]), edge(n[0], n[2])}

	cfg := DefaultLayoutConfig()
	pos := cfg.ComputeLayout(n, edges)
	if len(pos) != 4 {
		t.Fatalf("positioned %d nodes, want 4", len(pos))
	}
	if pos[n[0]].Y != 0 {
		t.Errorf("root Y = %v, want 0", pos[n[0]].Y)
	}
	if pos[n[1]].Y != cfg.LayerGapY {
		t.Errorf("n1 Y = %v, want %v", pos[n[1]].Y, cfg.LayerGapY)
	}
	if pos[n[3]].Y != 2*cfg.LayerGapY {
		t.Errorf("n3 Y = %v, want %v (longest path wins)", pos[n[3]].Y, 2*cfg.LayerGapY)
	}
}

func TestComputeLayoutSpreadsWithinLayer(t *testing.T) {
	n := ids(3)
	// Three roots, all on layer 0.
	cfg := DefaultLayoutConfig()
	pos := cfg.ComputeLayout(n, nil)

	seen := make(map[float64]bool)
	for _, p := range pos {
		if p.Y != 0 {
			t.Errorf("root Y = %v, want 0", p.Y)
		}
		if seen[p.X] {
			t.Errorf("duplicate X %v within a layer", p.X)
		}
		seen[p.X] = true
	}
}

func TestComputeLayoutGridFallbackForCycles(t *testing.T) {
	n := ids(6)
	edges := []concepts.Edge{edge(n[0], n[1]), edge(n[1], n[0])}

	cfg := DefaultLayoutConfig()
	pos := cfg.ComputeLayout(n, edges)
	if len(pos) != 6 {
		t.Fatalf("positioned %d nodes, want 6", len(pos))
	}

	// With 4 columns, six nodes occupy two rows.
	rows := make(map[float64]int)
	for _, p := range pos {
		rows[p.Y]++
	}
	if rows[0] != 4 || rows[cfg.LayerGapY] != 2 {
		t.Errorf("grid rows = %v, want 4 in row 0 and 2 in row 1", rows)
	}
}
