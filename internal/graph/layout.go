package graph

import (
	"github.com/google/uuid"

	"github.com/praxislearn/praxis/internal/concepts"
)

// Position is a 2-D layout coordinate for one node.
type Position struct {
	X float64
	Y float64
}

// LayoutConfig holds the layout geometry. Values are the observed spacing.
type LayoutConfig struct {
	// NodeGapX separates nodes within one layer.
	NodeGapX float64
	// LayerGapY separates layers vertically.
	LayerGapY float64
	// GridColumns is the row width of the fallback grid for cyclic graphs.
	GridColumns int
}

// DefaultLayoutConfig returns the observed spacing.
func DefaultLayoutConfig() LayoutConfig {
	return LayoutConfig{NodeGapX: 160, LayerGapY: 120, GridColumns: 4}
}

// ComputeLayout assigns a position to every node. For acyclic graphs each
// node's layer is the longest path length from any root, computed by
// propagating layer(neighbor) = max(layer(neighbor), layer(current)+1) in
// topological order; nodes in the same layer are spread horizontally. When
// the graph is cyclic the layout falls back to a simple grid so it always
// stays renderable.
func (cfg LayoutConfig) ComputeLayout(nodes []uuid.UUID, edges []concepts.Edge) map[uuid.UUID]Position {
	res := ValidateDAG(nodes, edges)
	if !res.IsDAG {
		return cfg.gridLayout(nodes)
	}

	adj := make(map[uuid.UUID][]uuid.UUID)
	for _, e := range edges {
		adj[e.From] = append(adj[e.From], e.To)
	}

	layer := make(map[uuid.UUID]int, len(nodes))
	for _, id := range res.Order {
		for _, next := range adj[id] {
			if layer[id]+1 > layer[next] {
				layer[next] = layer[id] + 1
			}
		}
	}

	// Spread each layer horizontally in topological emit order, which is
	// already deterministic.
	byLayer := make(map[int][]uuid.UUID)
	for _, id := range res.Order {
		byLayer[layer[id]] = append(byLayer[layer[id]], id)
	}

	positions := make(map[uuid.UUID]Position, len(nodes))
	for l, ids := range byLayer {
		for i, id := range ids {
			positions[id] = Position{
				X: float64(i) * cfg.NodeGapX,
				Y: float64(l) * cfg.LayerGapY,
			}
		}
	}
	return positions
}

func (cfg LayoutConfig) gridLayout(nodes []uuid.UUID) map[uuid.UUID]Position {
	cols := cfg.GridColumns
	if cols < 1 {
		cols = 1
	}
	sorted := append([]uuid.UUID(nil), nodes...)
	sortIDs(sorted)

	positions := make(map[uuid.UUID]Position, len(sorted))
	for i, id := range sorted {
		positions[id] = Position{
			X: float64(i%cols) * cfg.NodeGapX,
			Y: float64(i/cols) * cfg.LayerGapY,
		}
	}
	return positions
}
