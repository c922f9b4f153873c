package gaps

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/praxislearn/praxis/internal/store"
)

func newDetector(t *testing.T) (*Detector, *store.Store) {
	t.Helper()
	s, err := store.Open("file::memory:?cache=shared")
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return NewDetector(s.Repos().Gaps, zap.NewNop()), s
}

func TestDetectSingleOccurrenceNoPattern(t *testing.T) {
	d, _ := newDetector(t)
	ctx := context.Background()
	conceptID := uuid.New()

	if err := d.Record(ctx, "u1", conceptID, "fractions", "moderate", "confused numerators"); err != nil {
		t.Fatalf("record: %v", err)
	}

	patterns, err := d.Detect(ctx, "u1", conceptID)
	if err != nil {
		t.Fatalf("detect: %v", err)
	}
	if len(patterns) != 0 {
		t.Errorf("got %d patterns from a single occurrence, want 0", len(patterns))
	}
}

func TestDetectTwoOccurrencesReportPattern(t *testing.T) {
	d, _ := newDetector(t)
	ctx := context.Background()
	conceptID := uuid.New()

	if err := d.Record(ctx, "u1", conceptID, "fractions", "narrow", "first miss"); err != nil {
		t.Fatalf("record: %v", err)
	}
	if err := d.Record(ctx, "u1", conceptID, "fractions", "broad", "second miss"); err != nil {
		t.Fatalf("record: %v", err)
	}

	patterns, err := d.Detect(ctx, "u1", conceptID)
	if err != nil {
		t.Fatalf("detect: %v", err)
	}
	if len(patterns) != 1 {
		t.Fatalf("got %d patterns, want 1", len(patterns))
	}
	p := patterns[0]
	if p.MissingConceptName != "fractions" {
		t.Errorf("missing concept = %q, want fractions", p.MissingConceptName)
	}
	if p.Occurrences != 2 {
		t.Errorf("occurrences = %d, want 2", p.Occurrences)
	}
	if p.Severity != "broad" || p.Explanation != "second miss" {
		t.Errorf("pattern carries %q/%q, want the most recent verdict", p.Severity, p.Explanation)
	}
}

func TestDetectGroupsByMissingName(t *testing.T) {
	d, _ := newDetector(t)
	ctx := context.Background()
	conceptID := uuid.New()

	for _, name := range []string{"fractions", "decimals", "fractions", "ratios"} {
		if err := d.Record(ctx, "u1", conceptID, name, "moderate", "x"); err != nil {
			t.Fatalf("record %s: %v", name, err)
		}
	}

	patterns, err := d.Detect(ctx, "u1", conceptID)
	if err != nil {
		t.Fatalf("detect: %v", err)
	}
	if len(patterns) != 1 || patterns[0].MissingConceptName != "fractions" {
		t.Errorf("patterns = %v, want only the corroborated fractions group", patterns)
	}
}

func TestDetectScopedToUserAndConcept(t *testing.T) {
	d, _ := newDetector(t)
	ctx := context.Background()
	conceptID := uuid.New()
	otherConcept := uuid.New()

	// Two hits, but split across concept and user boundaries.
	if err := d.Record(ctx, "u1", conceptID, "fractions", "moderate", "x"); err != nil {
		t.Fatalf("record: %v", err)
	}
	if err := d.Record(ctx, "u1", otherConcept, "fractions", "moderate", "x"); err != nil {
		t.Fatalf("record: %v", err)
	}
	if err := d.Record(ctx, "u2", conceptID, "fractions", "moderate", "x"); err != nil {
		t.Fatalf("record: %v", err)
	}

	patterns, err := d.Detect(ctx, "u1", conceptID)
	if err != nil {
		t.Fatalf("detect: %v", err)
	}
	if len(patterns) != 0 {
		t.Errorf("got %d patterns across scope boundaries, want 0", len(patterns))
	}
}

func TestMarkProposedHidesPattern(t *testing.T) {
	d, _ := newDetector(t)
	ctx := context.Background()
	conceptID := uuid.New()

	for i := 0; i < 2; i++ {
		if err := d.Record(ctx, "u1", conceptID, "fractions", "moderate", "x"); err != nil {
			t.Fatalf("record: %v", err)
		}
	}

	patterns, err := d.Detect(ctx, "u1", conceptID)
	if err != nil || len(patterns) != 1 {
		t.Fatalf("detect: %v (%d patterns)", err, len(patterns))
	}
	if err := d.MarkProposed(ctx, patterns[0]); err != nil {
		t.Fatalf("mark proposed: %v", err)
	}

	again, err := d.Detect(ctx, "u1", conceptID)
	if err != nil {
		t.Fatalf("detect: %v", err)
	}
	if len(again) != 0 {
		t.Errorf("proposed rows still surface as a pattern")
	}
}
