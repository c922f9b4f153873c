package graph

import (
	"testing"

	"github.com/google/uuid"

	"github.com/praxislearn/praxis/internal/concepts"
)

func ids(n int) []uuid.UUID {
	out := make([]uuid.UUID, n)
	for i := range out {
		out[i] = uuid.New()
	}
	return out
}

func edge(from, to uuid.UUID) concepts.Edge {
	return concepts.Edge{
		ID:   uuid.New(),
		From: from,
		To:   to,
		Type: concepts.EdgePrerequisite,
	}
}

func TestValidateDAGLinearChain(t *testing.T) {
	n := ids(3)
	edges := []concepts.Edge{edge(n[0], n[1]), edge(n[1], n[2])}

	res := ValidateDAG(n, edges)
	if !res.IsDAG {
		t.Fatal("linear chain should be a DAG")
	}
	if len(res.Order) != 3 {
		t.Fatalf("order has %d nodes, want 3", len(res.Order))
	}
	if res.Order[0] != n[0] || res.Order[2] != n[2] {
		t.Errorf("order %v does not respect the chain", res.Order)
	}
	if len(res.Cyclic) != 0 {
		t.Errorf("cyclic = %v, want empty", res.Cyclic)
	}
}

func TestValidateDAGDetectsCycle(t *testing.T) {
	n := ids(4)
	// n0 -> n1 -> n2 -> n0 is a cycle; n3 is independent.
	edges := []concepts.Edge{edge(n[0], n[1]), edge(n[1], n[2]), edge(n[2], n[0])}

	res := ValidateDAG(n, edges)
	if res.IsDAG {
		t.Fatal("expected cycle to be detected")
	}
	if len(res.Cyclic) != 3 {
		t.Errorf("cyclic has %d nodes, want 3", len(res.Cyclic))
	}
	if len(res.Order) != 1 || res.Order[0] != n[3] {
		t.Errorf("order = %v, want just the independent node", res.Order)
	}
}

func TestValidateDAGEmptyGraph(t *testing.T) {
	res := ValidateDAG(nil, nil)
	if !res.IsDAG {
		t.Error("empty graph should be a DAG")
	}
}

func TestValidateDAGSelfLoop(t *testing.T) {
	n := ids(1)
	res := ValidateDAG(n, []concepts.Edge{edge(n[0], n[0])})
	if res.IsDAG {
		t.Error("self loop should not be a DAG")
	}
}

func TestValidateDAGIgnoresDanglingEdges(t *testing.T) {
	n := ids(2)
	stranger := uuid.New()
	edges := []concepts.Edge{edge(n[0], n[1]), edge(stranger, n[0])}

	res := ValidateDAG(n, edges)
	if !res.IsDAG {
		t.Error("edge from an unknown node should be ignored")
	}
}

func TestValidateDAGDeterministicOrder(t *testing.T) {
	n := ids(6)
	edges := []concepts.Edge{edge(n[0], n[3]), edge(n[1], n[3]), edge(n[2], n[4])}

	first := ValidateDAG(n, edges)
	for i := 0; i < 5; i++ {
		again := ValidateDAG(n, edges)
		for j := range first.Order {
			if first.Order[j] != again.Order[j] {
				t.Fatalf("run %d produced a different order at %d", i, j)
			}
		}
	}
}
