package proficiency

import (
	"math"
	"testing"
)

func TestExpected_EqualMatchup(t *testing.T) {
	cfg := DefaultConfig()
	got := cfg.Expected(0.5, 0.5)
	if !closeTo(got, 0.5) {
		t.Errorf("Expected(0.5, 0.5) = %v, want 0.5", got)
	}
}

func TestExpected_Monotonic(t *testing.T) {
	cfg := DefaultConfig()
	prev := -1.0
	for p := 0.0; p <= 1.0; p += 0.1 {
		e := cfg.Expected(p, 0.5)
		if e <= prev {
			t.Fatalf("expectation not increasing at proficiency %v", p)
		}
		prev = e
	}
}

func TestUpdate_CorrectRaisesProficiency(t *testing.T) {
	cfg := DefaultConfig()
	p, _ := cfg.Update(0.4, 0.3, 0.5, 1)
	if p <= 0.4 {
		t.Errorf("proficiency = %v, want > 0.4 after a correct answer", p)
	}
}

func TestUpdate_IncorrectLowersProficiency(t *testing.T) {
	cfg := DefaultConfig()
	p, _ := cfg.Update(0.6, 0.3, 0.5, 0)
	if p >= 0.6 {
		t.Errorf("proficiency = %v, want < 0.6 after an incorrect answer", p)
	}
}

func TestUpdate_SurpriseMovesMore(t *testing.T) {
	cfg := DefaultConfig()

	// Failing an easy question should move the estimate further than failing
	// a hard one.
	easyDrop, _ := cfg.Update(0.8, 0.5, 0.1, 0)
	hardDrop, _ := cfg.Update(0.8, 0.5, 0.9, 0)
	if (0.8 - easyDrop) <= (0.8 - hardDrop) {
		t.Errorf("easy-question failure moved %v, hard %v; want easy > hard",
			0.8-easyDrop, 0.8-hardDrop)
	}
}

func TestUpdate_Clamped(t *testing.T) {
	cfg := Config{K: 5, Slope: 4, ConfidenceGain: 0.15}
	p, _ := cfg.Update(0.95, 0.5, 0.9, 1)
	if p > 1 {
		t.Errorf("proficiency = %v, want <= 1", p)
	}
	p, _ = cfg.Update(0.05, 0.5, 0.1, 0)
	if p < 0 {
		t.Errorf("proficiency = %v, want >= 0", p)
	}
}

func TestUpdate_ConfidenceGrowsRegardless(t *testing.T) {
	cfg := DefaultConfig()

	_, cAfterCorrect := cfg.Update(0.5, 0.4, 0.5, 1)
	_, cAfterWrong := cfg.Update(0.5, 0.4, 0.5, 0)

	if !closeTo(cAfterCorrect, cAfterWrong) {
		t.Errorf("confidence growth differs by correctness: %v vs %v", cAfterCorrect, cAfterWrong)
	}
	want := 0.4 + 0.15*0.6
	if !closeTo(cAfterCorrect, want) {
		t.Errorf("confidence = %v, want %v", cAfterCorrect, want)
	}
}

func TestUpdate_ConfidenceDiminishingReturns(t *testing.T) {
	cfg := DefaultConfig()
	c := 0.0
	prevGain := math.Inf(1)
	for i := 0; i < 10; i++ {
		_, next := cfg.Update(0.5, c, 0.5, 1)
		gain := next - c
		if gain >= prevGain {
			t.Fatalf("confidence gain not diminishing at step %d", i)
		}
		if next > 1 {
			t.Fatalf("confidence exceeded 1: %v", next)
		}
		prevGain = gain
		c = next
	}
}

func TestSeedPrior(t *testing.T) {
	tests := []struct {
		statement string
		tier      int
		wantP     float64
		wantC     float64
	}{
		{"I've never seen this before", 1, 0.05, 0.2},
		{"some basic exposure in school", 1, 0.3, 0.2},
		{"pretty comfortable with it", 1, 0.55, 0.2},
		{"I could teach this", 1, 0.75, 0.2},
		{"hmm", 1, 0.1, 0.1},
		{"comfortable", 3, 0.45, 0.2}, // tier shades deeper concepts down
	}
	for _, tt := range tests {
		p, c := SeedPrior(tt.statement, tt.tier)
		if !closeTo(p, tt.wantP) || !closeTo(c, tt.wantC) {
			t.Errorf("SeedPrior(%q, %d) = (%v, %v), want (%v, %v)",
				tt.statement, tt.tier, p, c, tt.wantP, tt.wantC)
		}
	}
}

func closeTo(got, want float64) bool {
	diff := got - want
	if diff < 0 {
		diff = -diff
	}
	return diff < 1e-9
}
