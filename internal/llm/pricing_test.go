package llm

import (
	"math"
	"testing"
)

func TestModelCost(t *testing.T) {
	c := ModelCost{InputPerMTok: 3, OutputPerMTok: 15}

	got := c.Cost(1_000_000, 1_000_000)
	if math.Abs(got-18) > 1e-9 {
		t.Errorf("Cost(1M, 1M) = %v, want 18", got)
	}

	got = c.Cost(500_000, 100_000)
	if math.Abs(got-3) > 1e-9 {
		t.Errorf("Cost(500k, 100k) = %v, want 3", got)
	}

	if got := c.Cost(0, 0); got != 0 {
		t.Errorf("Cost(0, 0) = %v, want 0", got)
	}
}

func TestLookupCost(t *testing.T) {
	if c := LookupCost("gpt-4o-mini"); c == nil {
		t.Error("expected pricing for gpt-4o-mini")
	}
	if c := LookupCost("not-a-model"); c != nil {
		t.Errorf("expected nil for unknown model, got %+v", c)
	}
}
