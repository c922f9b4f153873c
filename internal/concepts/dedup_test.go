package concepts

import (
	"context"
	"testing"

	"go.uber.org/zap"
)

func TestMergeEstimate_WeightedAverage(t *testing.T) {
	got := MergeEstimate(0.2, 0.4, 0.8, 0.6)
	if !closeTo(got.Proficiency, 0.56) {
		t.Errorf("proficiency = %v, want 0.56", got.Proficiency)
	}
	if !closeTo(got.Confidence, 0.6) {
		t.Errorf("confidence = %v, want 0.6", got.Confidence)
	}
}

func TestMergeEstimate_ZeroConfidence(t *testing.T) {
	got := MergeEstimate(0.5, 0, 0.9, 0)
	if got.Proficiency != 0 {
		t.Errorf("proficiency = %v, want 0 (divide-by-zero guard)", got.Proficiency)
	}
	if got.Confidence != 0 {
		t.Errorf("confidence = %v, want 0", got.Confidence)
	}
}

func TestMergeEstimate_KeepsHigherConfidence(t *testing.T) {
	got := MergeEstimate(0.3, 0.9, 0.3, 0.1)
	if !closeTo(got.Confidence, 0.9) {
		t.Errorf("confidence = %v, want 0.9", got.Confidence)
	}
}

func TestNormalizeName(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"  Chain Rule ", "chain rule"},
		{"LIMITS", "limits"},
		{"derivatives", "derivatives"},
		{"", ""},
	}
	for _, tt := range tests {
		if got := NormalizeName(tt.in); got != tt.want {
			t.Errorf("NormalizeName(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

// fakeRepo is an in-memory Repo for dedup tests.
type fakeRepo struct {
	byKey map[string]*Concept
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{byKey: make(map[string]*Concept)}
}

func (f *fakeRepo) FindByNormalizedName(_ context.Context, userID, normalized string) (*Concept, error) {
	return f.byKey[userID+"/"+normalized], nil
}

func (f *fakeRepo) Create(_ context.Context, c *Concept) (*Concept, error) {
	f.byKey[c.UserID+"/"+c.NormalizedName] = c
	return c, nil
}

func (f *fakeRepo) Update(_ context.Context, c *Concept) error {
	f.byKey[c.UserID+"/"+c.NormalizedName] = c
	return nil
}

func TestFindOrCreate_New(t *testing.T) {
	d := NewDeduper(newFakeRepo(), zap.NewNop())

	c, reused, err := d.FindOrCreate(context.Background(), "u1", Seed{
		Name:         "Limits",
		Proficiency:  0.1,
		Confidence:   0.2,
		AttemptCount: 4,
	})
	if err != nil {
		t.Fatalf("FindOrCreate: %v", err)
	}
	if reused {
		t.Error("expected reused=false for a new concept")
	}
	if c.NormalizedName != "limits" {
		t.Errorf("normalized name = %q, want %q", c.NormalizedName, "limits")
	}
	if c.EaseFactor != 2.5 || c.IntervalDays != 1 {
		t.Errorf("scheduler defaults = (%v, %v), want (2.5, 1)", c.EaseFactor, c.IntervalDays)
	}
	if c.AttemptCount != 4 {
		t.Errorf("attempt count = %d, want 4 (seed history carried on create)", c.AttemptCount)
	}
}

func TestFindOrCreate_MergesExisting(t *testing.T) {
	repo := newFakeRepo()
	d := NewDeduper(repo, zap.NewNop())
	ctx := context.Background()

	_, _, err := d.FindOrCreate(ctx, "u1", Seed{
		Name:         "Limits",
		Proficiency:  0.2,
		Confidence:   0.4,
		AttemptCount: 3,
	})
	if err != nil {
		t.Fatalf("first FindOrCreate: %v", err)
	}

	c, reused, err := d.FindOrCreate(ctx, "u1", Seed{
		Name:         " limits ",
		Description:  "Behavior of functions near a point",
		Proficiency:  0.8,
		Confidence:   0.6,
		AttemptCount: 2,
	})
	if err != nil {
		t.Fatalf("second FindOrCreate: %v", err)
	}
	if !reused {
		t.Fatal("expected reused=true")
	}
	if !closeTo(c.Proficiency, 0.56) {
		t.Errorf("merged proficiency = %v, want 0.56", c.Proficiency)
	}
	if !closeTo(c.Confidence, 0.6) {
		t.Errorf("merged confidence = %v, want 0.6", c.Confidence)
	}
	if c.AttemptCount != 5 {
		t.Errorf("attempt count = %d, want 5", c.AttemptCount)
	}
	if c.Description != "Behavior of functions near a point" {
		t.Errorf("empty description should be filled in, got %q", c.Description)
	}
}

func TestFindOrCreate_KeepsExistingDescription(t *testing.T) {
	repo := newFakeRepo()
	d := NewDeduper(repo, zap.NewNop())
	ctx := context.Background()

	_, _, _ = d.FindOrCreate(ctx, "u1", Seed{Name: "Limits", Description: "original"})
	c, _, err := d.FindOrCreate(ctx, "u1", Seed{Name: "Limits", Description: "replacement"})
	if err != nil {
		t.Fatalf("FindOrCreate: %v", err)
	}
	if c.Description != "original" {
		t.Errorf("description = %q, want %q", c.Description, "original")
	}
}

func TestFindOrCreate_ScopedPerUser(t *testing.T) {
	repo := newFakeRepo()
	d := NewDeduper(repo, zap.NewNop())
	ctx := context.Background()

	a, _, _ := d.FindOrCreate(ctx, "u1", Seed{Name: "Limits"})
	b, reused, _ := d.FindOrCreate(ctx, "u2", Seed{Name: "Limits"})
	if reused {
		t.Error("concepts must not be shared across users")
	}
	if a.ID == b.ID {
		t.Error("expected distinct concept IDs per user")
	}
}

func closeTo(got, want float64) bool {
	diff := got - want
	if diff < 0 {
		diff = -diff
	}
	return diff < 1e-9
}
