// Package gaps turns noisy per-answer gap verdicts into actionable
// prerequisite proposals.
package gaps

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/praxislearn/praxis/internal/store"
)

// Gap statuses as stored.
const (
	StatusDetected = "detected"
	StatusProposed = "proposed"
	StatusAccepted = "accepted"
	StatusDeclined = "declined"
)

// MinOccurrences is how many independent verdicts must name the same missing
// concept before a pattern is reported. Any single grading judgment is too
// noisy to justify a graph change on its own.
const MinOccurrences = 2

// Pattern is a corroborated missing-prerequisite signal for one concept.
type Pattern struct {
	MissingConceptName string
	Occurrences        int
	// Severity and Explanation come from the most recent matching verdict.
	Severity    string
	Explanation string
	// RecordIDs are the detection rows backing this pattern, newest first.
	RecordIDs []uuid.UUID
}

// Detector matches recurring gap verdicts against the threshold.
type Detector struct {
	gaps store.GapRepo
	log  *zap.Logger
}

// NewDetector creates a Detector.
func NewDetector(gaps store.GapRepo, log *zap.Logger) *Detector {
	return &Detector{gaps: gaps, log: log}
}

// Record stores one gap verdict with status detected.
func (d *Detector) Record(ctx context.Context, userID string, conceptID uuid.UUID, missingName, severity, explanation string) error {
	_, err := d.gaps.Record(ctx, &store.GapRecord{
		ID:                 uuid.New(),
		UserID:             userID,
		ConceptID:          conceptID,
		MissingConceptName: missingName,
		Severity:           severity,
		Status:             StatusDetected,
		Explanation:        explanation,
	})
	if err != nil {
		return fmt.Errorf("record gap for concept %s: %w", conceptID, err)
	}
	return nil
}

// Detect groups the pair's detected rows by missing-concept name and returns
// the groups that reached the occurrence threshold. Rows arrive newest first,
// so the first row of each group carries the freshest severity and
// explanation.
func (d *Detector) Detect(ctx context.Context, userID string, conceptID uuid.UUID) ([]Pattern, error) {
	rows, err := d.gaps.ListDetected(ctx, userID, conceptID)
	if err != nil {
		return nil, fmt.Errorf("list gaps for concept %s: %w", conceptID, err)
	}

	byName := make(map[string]*Pattern)
	var order []string
	for _, row := range rows {
		p, ok := byName[row.MissingConceptName]
		if !ok {
			p = &Pattern{
				MissingConceptName: row.MissingConceptName,
				Severity:           row.Severity,
				Explanation:        row.Explanation,
			}
			byName[row.MissingConceptName] = p
			order = append(order, row.MissingConceptName)
		}
		p.Occurrences++
		p.RecordIDs = append(p.RecordIDs, row.ID)
	}

	var out []Pattern
	for _, name := range order {
		p := byName[name]
		if p.Occurrences >= MinOccurrences {
			out = append(out, *p)
		}
	}
	if len(out) > 0 {
		d.log.Info("gap pattern detected",
			zap.String("user_id", userID),
			zap.String("concept_id", conceptID.String()),
			zap.Int("patterns", len(out)))
	}
	return out, nil
}

// MarkProposed transitions a pattern's backing rows to proposed so the same
// evidence is not re-surfaced on the next turn.
func (d *Detector) MarkProposed(ctx context.Context, p Pattern) error {
	if err := d.gaps.UpdateStatus(ctx, p.RecordIDs, StatusProposed); err != nil {
		return fmt.Errorf("mark gap proposed: %w", err)
	}
	return nil
}

// Resolve finalizes a proposal the learner accepted or declined.
func (d *Detector) Resolve(ctx context.Context, p Pattern, accepted bool) error {
	status := StatusDeclined
	if accepted {
		status = StatusAccepted
	}
	if err := d.gaps.UpdateStatus(ctx, p.RecordIDs, status); err != nil {
		return fmt.Errorf("resolve gap proposal: %w", err)
	}
	return nil
}
