package proficiency

import "strings"

// Prior levels inferred from a learner's free-text "prior knowledge"
// statement. The point is a low-confidence starting estimate instead of a
// hard zero; one or two attempts will dominate it quickly.
var priorMarkers = []struct {
	proficiency float64
	markers     []string
}{
	{0.75, []string{"expert", "mastered", "advanced", "teach"}},
	{0.55, []string{"comfortable", "confident", "know this", "solid"}},
	{0.3, []string{"some", "basic", "familiar", "a bit", "rusty"}},
	{0.05, []string{"never", "no idea", "new to", "nothing"}},
}

// SeedPrior infers an initial (proficiency, confidence) pair from a free-text
// statement and the concept's depth tier. Deeper tiers shade the estimate
// down, since self-assessment tends to generalize from the easy end of a
// topic.
func SeedPrior(statement string, tier int) (proficiency, confidence float64) {
	s := strings.ToLower(statement)

	proficiency = 0.1
	confidence = 0.1
	for _, level := range priorMarkers {
		for _, m := range level.markers {
			if strings.Contains(s, m) {
				proficiency = level.proficiency
				confidence = 0.2
				break
			}
		}
		if confidence == 0.2 {
			break
		}
	}

	if tier > 1 {
		proficiency -= 0.05 * float64(tier-1)
	}
	return clamp01(proficiency), confidence
}
