package store

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/praxislearn/praxis/ent"
	"github.com/praxislearn/praxis/ent/gapdetection"
)

type gapRepo struct {
	client *ent.Client
}

func (r *gapRepo) Record(ctx context.Context, rec *GapRecord) (*GapRecord, error) {
	builder := r.client.GapDetection.Create().
		SetUserID(rec.UserID).
		SetConceptID(rec.ConceptID).
		SetMissingConceptName(rec.MissingConceptName).
		SetSeverity(gapdetection.Severity(rec.Severity)).
		SetExplanation(rec.Explanation)
	if rec.Status != "" {
		builder = builder.SetStatus(gapdetection.Status(rec.Status))
	}
	if rec.ID != uuid.Nil {
		builder = builder.SetID(rec.ID)
	}
	row, err := builder.Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("record gap detection: %w", err)
	}
	return gapFromEnt(row), nil
}

func (r *gapRepo) ListDetected(ctx context.Context, userID string, conceptID uuid.UUID) ([]GapRecord, error) {
	rows, err := r.client.GapDetection.Query().
		Where(
			gapdetection.UserID(userID),
			gapdetection.ConceptID(conceptID),
			gapdetection.StatusEQ(gapdetection.StatusDetected),
		).
		Order(ent.Desc(gapdetection.FieldCreatedAt)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("list detected gaps: %w", err)
	}
	out := make([]GapRecord, len(rows))
	for i, row := range rows {
		out[i] = *gapFromEnt(row)
	}
	return out, nil
}

func (r *gapRepo) UpdateStatus(ctx context.Context, ids []uuid.UUID, status string) error {
	if len(ids) == 0 {
		return nil
	}
	_, err := r.client.GapDetection.Update().
		Where(gapdetection.IDIn(ids...)).
		SetStatus(gapdetection.Status(status)).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("update gap status: %w", err)
	}
	return nil
}

func gapFromEnt(row *ent.GapDetection) *GapRecord {
	return &GapRecord{
		ID:                 row.ID,
		UserID:             row.UserID,
		ConceptID:          row.ConceptID,
		MissingConceptName: row.MissingConceptName,
		Severity:           string(row.Severity),
		Status:             string(row.Status),
		Explanation:        row.Explanation,
		CreatedAt:          row.CreatedAt,
	}
}
