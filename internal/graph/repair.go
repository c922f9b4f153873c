package graph

import (
	"github.com/google/uuid"

	"github.com/praxislearn/praxis/internal/concepts"
)

// TieBreak picks which edge of the cyclic set to remove next. It receives
// only edges whose both endpoints are cyclic, and must return one of them.
// Returning false means "no preference"; the caller falls back to the first
// cyclic edge.
type TieBreak func(cyclicEdges []concepts.Edge, tierOf func(uuid.UUID) int) (concepts.Edge, bool)

// PreferReversedTier removes an edge whose source sits on a deeper tier than
// its target. Such a "reversed difficulty" edge is the most likely erroneous
// prerequisite assertion from an external generator, so it is pedagogically
// the cheapest edge to lose.
func PreferReversedTier(cyclicEdges []concepts.Edge, tierOf func(uuid.UUID) int) (concepts.Edge, bool) {
	for _, e := range cyclicEdges {
		if tierOf(e.From) > tierOf(e.To) {
			return e, true
		}
	}
	return concepts.Edge{}, false
}

// BreakCycles removes edges until the graph is a DAG, using the given
// tie-break strategy to choose victims. It returns the surviving edge set
// and the removed edges. The loop is bounded by the original edge count as a
// safety valve.
func BreakCycles(nodes []uuid.UUID, edges []concepts.Edge, tierOf func(uuid.UUID) int, tb TieBreak) (kept, removed []concepts.Edge) {
	if tb == nil {
		tb = PreferReversedTier
	}
	kept = append([]concepts.Edge(nil), edges...)

	for range edges {
		res := ValidateDAG(nodes, kept)
		if res.IsDAG {
			return kept, removed
		}

		cyclic := make(map[uuid.UUID]bool, len(res.Cyclic))
		for _, n := range res.Cyclic {
			cyclic[n] = true
		}

		var candidates []concepts.Edge
		for _, e := range kept {
			if cyclic[e.From] && cyclic[e.To] {
				candidates = append(candidates, e)
			}
		}
		if len(candidates) == 0 {
			// Should not happen while the graph is cyclic; bail out rather
			// than loop.
			return kept, removed
		}

		victim, ok := tb(candidates, tierOf)
		if !ok {
			victim = candidates[0]
		}

		out := kept[:0]
		for _, e := range kept {
			if e.ID != victim.ID {
				out = append(out, e)
			}
		}
		kept = out
		removed = append(removed, victim)
	}
	return kept, removed
}
