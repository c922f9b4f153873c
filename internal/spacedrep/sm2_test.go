package spacedrep

import (
	"testing"
	"time"
)

func TestQualityFromOutcome(t *testing.T) {
	cfg := DefaultConfig()

	tests := []struct {
		name    string
		correct bool
		ms      int64
		want    int
	}{
		{"incorrect fast", false, 500, 1},
		{"incorrect slow", false, 90_000, 1},
		{"correct fast", true, 9_999, 5},
		{"correct at fast boundary", true, 10_000, 4},
		{"correct medium", true, 29_999, 4},
		{"correct at slow boundary", true, 30_000, 3},
		{"correct very slow", true, 300_000, 3},
	}
	for _, tt := range tests {
		if got := cfg.QualityFromOutcome(tt.correct, tt.ms); got != tt.want {
			t.Errorf("%s: quality = %d, want %d", tt.name, got, tt.want)
		}
	}
}

func TestAdvance_FailureResets(t *testing.T) {
	states := []State{
		DefaultState(),
		{EaseFactor: 2.6, IntervalDays: 8, RepetitionCount: 3},
		{EaseFactor: 1.3, IntervalDays: 45, RepetitionCount: 9},
	}
	for _, s := range states {
		for q := 0; q < 3; q++ {
			got := Advance(s, q)
			if got.RepetitionCount != 0 {
				t.Errorf("Advance(%+v, %d): repetitionCount = %d, want 0", s, q, got.RepetitionCount)
			}
			if got.IntervalDays != 1 {
				t.Errorf("Advance(%+v, %d): interval = %d, want 1", s, q, got.IntervalDays)
			}
		}
	}
}

func TestAdvance_PassSequence(t *testing.T) {
	s := DefaultState()

	s = Advance(s, 5)
	if s.IntervalDays != 1 || s.RepetitionCount != 1 {
		t.Fatalf("after pass 1: interval=%d reps=%d, want 1/1", s.IntervalDays, s.RepetitionCount)
	}

	s = Advance(s, 5)
	if s.IntervalDays != 3 || s.RepetitionCount != 2 {
		t.Fatalf("after pass 2: interval=%d reps=%d, want 3/2", s.IntervalDays, s.RepetitionCount)
	}

	// Two quality-5 passes raise the ease factor 2.5 -> 2.6 -> 2.7; the third
	// pass multiplies by the pre-update 2.7: round(3 * 2.7) = 8.
	s = Advance(s, 5)
	if s.IntervalDays != 8 || s.RepetitionCount != 3 {
		t.Fatalf("after pass 3: interval=%d reps=%d, want 8/3", s.IntervalDays, s.RepetitionCount)
	}
}

func TestAdvance_EaseFactorFloor(t *testing.T) {
	s := DefaultState()
	for i := 0; i < 50; i++ {
		s = Advance(s, 0)
		if s.EaseFactor < MinEaseFactor {
			t.Fatalf("ease factor %v dropped below %v after %d failures", s.EaseFactor, MinEaseFactor, i+1)
		}
	}
	if s.EaseFactor != MinEaseFactor {
		t.Errorf("ease factor = %v, want floor %v after sustained failure", s.EaseFactor, MinEaseFactor)
	}
}

func TestAdvance_EaseFactorGrowsOnPerfect(t *testing.T) {
	s := DefaultState()
	got := Advance(s, 5)
	if !closeTo(got.EaseFactor, 2.6) {
		t.Errorf("ease factor = %v, want 2.6", got.EaseFactor)
	}
}

func TestAdvance_EaseFactorUpdatesOnFailureToo(t *testing.T) {
	s := State{EaseFactor: 2.5, IntervalDays: 8, RepetitionCount: 3}
	got := Advance(s, 1)
	// EF(2.5, q=1) = 2.5 + (0.1 - 4*(0.08 + 4*0.02)) = 2.5 - 0.54 = 1.96
	if !closeTo(got.EaseFactor, 1.96) {
		t.Errorf("ease factor = %v, want 1.96", got.EaseFactor)
	}
}

func TestAdvance_UsesPreUpdateEaseFactor(t *testing.T) {
	s := State{EaseFactor: 2.0, IntervalDays: 10, RepetitionCount: 5}
	got := Advance(s, 5)
	// Interval uses the pre-update 2.0, not the post-update 2.1.
	if got.IntervalDays != 20 {
		t.Errorf("interval = %d, want 20", got.IntervalDays)
	}
	if !closeTo(got.EaseFactor, 2.1) {
		t.Errorf("ease factor = %v, want 2.1", got.EaseFactor)
	}
}

func TestAdvance_IsPure(t *testing.T) {
	s := DefaultState()
	_ = Advance(s, 5)
	if s != DefaultState() {
		t.Errorf("input state mutated: %+v", s)
	}
}

func TestNextDue(t *testing.T) {
	now := time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)
	got := NextDue(now, 8)
	want := time.Date(2026, 3, 18, 9, 0, 0, 0, time.UTC)
	if !got.Equal(want) {
		t.Errorf("NextDue = %v, want %v", got, want)
	}
}

func closeTo(got, want float64) bool {
	diff := got - want
	if diff < 0 {
		diff = -diff
	}
	return diff < 1e-9
}
