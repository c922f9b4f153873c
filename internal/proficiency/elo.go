// Package proficiency maintains the per-concept mastery estimate: a single
// self-correcting scalar usable by both the scheduler and the session
// composer, robust to the handful of observations each concept receives.
package proficiency

import "math"

// Config holds the update constants. Defaults are the observed tuning.
type Config struct {
	// K scales how far one attempt moves the estimate.
	K float64
	// Slope steepens the logistic expectation around the
	// proficiency/difficulty crossover.
	Slope float64
	// ConfidenceGain is the fraction of remaining uncertainty removed per
	// attempt.
	ConfidenceGain float64
}

// DefaultConfig returns the observed constants.
func DefaultConfig() Config {
	return Config{K: 0.2, Slope: 4, ConfidenceGain: 0.15}
}

// Expected returns the logistic probability of success for a learner at the
// given proficiency facing a question of the given difficulty.
func (c Config) Expected(proficiency, difficulty float64) float64 {
	return 1 / (1 + math.Exp(-c.Slope*(proficiency-difficulty)))
}

// Update applies one attempt outcome. Score is 1/0 for closed question types
// and a continuous [0,1] grade for free response. Confidence approaches 1
// with diminishing returns regardless of correctness: more attempts always
// reduce uncertainty about the estimate, even when the estimate moves down.
func (c Config) Update(proficiency, confidence, difficulty, score float64) (newProficiency, newConfidence float64) {
	expected := c.Expected(proficiency, difficulty)
	newProficiency = clamp01(proficiency + c.K*(score-expected))
	newConfidence = clamp01(confidence + c.ConfidenceGain*(1-confidence))
	return newProficiency, newConfidence
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
