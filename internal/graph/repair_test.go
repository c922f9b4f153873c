package graph

import (
	"testing"

	"github.com/google/uuid"

	"github.com/praxislearn/praxis/internal/concepts"
)

func TestBreakCyclesAcyclicInputUntouched(t *testing.T) {
	n := ids(3)
	edges := []concepts.Edge{edge(n[0], n[1]), edge(n[1], n[2])}

	kept, removed := BreakCycles(n, edges, func(uuid.UUID) int { return 1 }, nil)
	if len(removed) != 0 {
		t.Errorf("removed %d edges from an acyclic graph", len(removed))
	}
	if len(kept) != 2 {
		t.Errorf("kept %d edges, want 2", len(kept))
	}
}

func TestBreakCyclesPrefersReversedTierEdge(t *testing.T) {
	n := ids(3)
	// Cycle n0 -> n1 -> n2 -> n0. Tiers rise along the chain, so the closing
	// edge n2 -> n0 runs from a deep tier back to a shallow one and should be
	// the one removed.
	back := edge(n[2], n[0])
	edges := []concepts.Edge{edge(n[0], n[1]), edge(n[1], n[2]), back}
	tiers := map[uuid.UUID]int{n[0]: 1, n[1]: 2, n[2]: 3}

	kept, removed := BreakCycles(n, edges, func(id uuid.UUID) int { return tiers[id] }, PreferReversedTier)
	if len(removed) != 1 || removed[0].ID != back.ID {
		t.Fatalf("removed = %v, want just the back edge", removed)
	}
	if !ValidateDAG(n, kept).IsDAG {
		t.Error("graph still cyclic after repair")
	}
}

func TestBreakCyclesFallsBackWithoutTierSignal(t *testing.T) {
	n := ids(2)
	// Two-node cycle with equal tiers: no reversed-tier edge exists, so the
	// fallback removes the first candidate.
	edges := []concepts.Edge{edge(n[0], n[1]), edge(n[1], n[0])}

	kept, removed := BreakCycles(n, edges, func(uuid.UUID) int { return 1 }, PreferReversedTier)
	if len(removed) != 1 {
		t.Fatalf("removed %d edges, want 1", len(removed))
	}
	if !ValidateDAG(n, kept).IsDAG {
		t.Error("graph still cyclic after repair")
	}
}

func TestBreakCyclesMultipleCycles(t *testing.T) {
	n := ids(4)
	edges := []concepts.Edge{
		edge(n[0], n[1]), edge(n[1], n[0]), // cycle one
		edge(n[2], n[3]), edge(n[3], n[2]), // cycle two
	}

	kept, removed := BreakCycles(n, edges, func(uuid.UUID) int { return 1 }, nil)
	if len(removed) != 2 {
		t.Errorf("removed %d edges, want 2", len(removed))
	}
	if !ValidateDAG(n, kept).IsDAG {
		t.Error("graph still cyclic after repair")
	}
}

func TestBreakCyclesDoesNotMutateInput(t *testing.T) {
	n := ids(2)
	edges := []concepts.Edge{edge(n[0], n[1]), edge(n[1], n[0])}
	before := append([]concepts.Edge(nil), edges...)

	BreakCycles(n, edges, func(uuid.UUID) int { return 1 }, nil)
	for i := range before {
		if edges[i] != before[i] {
			t.Fatal("input edge slice was mutated")
		}
	}
}
