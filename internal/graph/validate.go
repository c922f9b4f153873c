// Package graph keeps the per-unit prerequisite graph acyclic and renderable.
package graph

import (
	"sort"

	"github.com/google/uuid"

	"github.com/praxislearn/praxis/internal/concepts"
)

// Result describes the outcome of a DAG validation pass.
type Result struct {
	IsDAG bool
	// Order is a topological order over the acyclic portion of the graph.
	// When IsDAG is true it covers every node.
	Order []uuid.UUID
	// Cyclic holds the nodes that were never emitted, i.e. every node that
	// participates in (or is downstream of) a cycle.
	Cyclic []uuid.UUID
}

// ValidateDAG runs Kahn's algorithm over the given nodes and edges. Nodes
// with zero in-degree are peeled repeatedly; if the emitted order covers all
// nodes the graph is acyclic, otherwise the leftover nodes are the cyclic
// set. Edges referencing unknown nodes are ignored.
func ValidateDAG(nodes []uuid.UUID, edges []concepts.Edge) Result {
	inGraph := make(map[uuid.UUID]bool, len(nodes))
	for _, n := range nodes {
		inGraph[n] = true
	}

	inDegree := make(map[uuid.UUID]int, len(nodes))
	adj := make(map[uuid.UUID][]uuid.UUID)
	for _, n := range nodes {
		inDegree[n] = 0
	}
	for _, e := range edges {
		if !inGraph[e.From] || !inGraph[e.To] {
			continue
		}
		inDegree[e.To]++
		adj[e.From] = append(adj[e.From], e.To)
	}

	var queue []uuid.UUID
	for _, n := range nodes {
		if inDegree[n] == 0 {
			queue = append(queue, n)
		}
	}
	sortIDs(queue)

	order := make([]uuid.UUID, 0, len(nodes))
	for len(queue) > 0 {
		id := queue[0]
		queue = queue[1:]
		order = append(order, id)

		next := append([]uuid.UUID(nil), adj[id]...)
		sortIDs(next)
		for _, dep := range next {
			inDegree[dep]--
			if inDegree[dep] == 0 {
				queue = append(queue, dep)
			}
		}
	}

	res := Result{Order: order, IsDAG: len(order) == len(nodes)}
	if !res.IsDAG {
		for _, n := range nodes {
			if inDegree[n] > 0 {
				res.Cyclic = append(res.Cyclic, n)
			}
		}
	}
	return res
}

// sortIDs orders UUIDs lexicographically for deterministic traversal.
func sortIDs(ids []uuid.UUID) {
	sort.Slice(ids, func(i, j int) bool {
		return ids[i].String() < ids[j].String()
	})
}
