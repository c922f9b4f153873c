// Package spacedrep implements the SM-2 variant used to schedule concept
// reviews. The schedule attaches to a concept, not to individual questions:
// questions are re-picked by the session composer each time a concept comes
// due.
package spacedrep

import (
	"math"
	"time"
)

// MinEaseFactor is the floor for the ease factor, per SM-2.
const MinEaseFactor = 1.3

// State is the scheduler state carried on each concept.
type State struct {
	EaseFactor      float64
	IntervalDays    int
	RepetitionCount int
}

// DefaultState returns the state for a concept that has never been reviewed.
func DefaultState() State {
	return State{EaseFactor: 2.5, IntervalDays: 1, RepetitionCount: 0}
}

// Config holds the latency cutoffs for the quality mapping. The 10s/30s
// values are the observed tuning; they are fields so they can be recalibrated
// without touching the algorithm.
type Config struct {
	FastMs int64
	SlowMs int64
}

// DefaultConfig returns the observed cutoffs.
func DefaultConfig() Config {
	return Config{FastMs: 10_000, SlowMs: 30_000}
}

// QualityFromOutcome maps an attempt outcome to an SM-2 quality in 0..5.
// Incorrect answers always map to 1; correct answers grade down as latency
// grows.
func (c Config) QualityFromOutcome(correct bool, timeTakenMs int64) int {
	if !correct {
		return 1
	}
	switch {
	case timeTakenMs < c.FastMs:
		return 5
	case timeTakenMs < c.SlowMs:
		return 4
	default:
		return 3
	}
}

// Advance returns the state after one review with the given quality. It is
// pure: the input state is not mutated.
//
// A failing quality (< 3) resets the repetition run and the interval. The
// interval growth for passes uses the pre-update ease factor. The ease
// factor itself is updated on every branch and floored at MinEaseFactor.
func Advance(s State, quality int) State {
	next := s

	if quality < 3 {
		next.RepetitionCount = 0
		next.IntervalDays = 1
	} else {
		next.RepetitionCount++
		switch next.RepetitionCount {
		case 1:
			next.IntervalDays = 1
		case 2:
			next.IntervalDays = 3
		default:
			next.IntervalDays = int(math.Round(float64(s.IntervalDays) * s.EaseFactor))
		}
	}

	q := float64(quality)
	ef := s.EaseFactor + (0.1 - (5-q)*(0.08+(5-q)*0.02))
	if ef < MinEaseFactor {
		ef = MinEaseFactor
	}
	next.EaseFactor = ef

	return next
}

// NextDue returns the next review date for the given interval.
func NextDue(now time.Time, intervalDays int) time.Time {
	return now.AddDate(0, 0, intervalDays)
}
