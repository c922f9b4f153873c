package store

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/praxislearn/praxis/ent"
	"github.com/praxislearn/praxis/ent/practicesession"
)

type sessionRepo struct {
	client *ent.Client
}

func (r *sessionRepo) Create(ctx context.Context, rec *SessionRecord) (*SessionRecord, error) {
	builder := r.client.PracticeSession.Create().
		SetUserID(rec.UserID).
		SetNillableGraphID(rec.GraphID)
	if rec.ID != uuid.Nil {
		builder = builder.SetID(rec.ID)
	}
	row, err := builder.Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("create session: %w", err)
	}
	return sessionFromEnt(row), nil
}

func (r *sessionRepo) Get(ctx context.Context, id uuid.UUID) (*SessionRecord, error) {
	row, err := r.client.PracticeSession.Get(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get session %s: %w", id, err)
	}
	return sessionFromEnt(row), nil
}

func (r *sessionRepo) AddResult(ctx context.Context, id uuid.UUID, correct bool) error {
	builder := r.client.PracticeSession.UpdateOneID(id).
		AddQuestionCount(1)
	if correct {
		builder = builder.AddCorrectCount(1)
	}
	if _, err := builder.Save(ctx); err != nil {
		return fmt.Errorf("add result to session %s: %w", id, err)
	}
	return nil
}

func (r *sessionRepo) Complete(ctx context.Context, id uuid.UUID, endedAt time.Time) error {
	_, err := r.client.PracticeSession.UpdateOneID(id).
		SetStatus(practicesession.StatusComplete).
		SetEndedAt(endedAt).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("complete session %s: %w", id, err)
	}
	return nil
}

func sessionFromEnt(row *ent.PracticeSession) *SessionRecord {
	return &SessionRecord{
		ID:            row.ID,
		UserID:        row.UserID,
		GraphID:       row.GraphID,
		QuestionCount: row.QuestionCount,
		CorrectCount:  row.CorrectCount,
		Status:        string(row.Status),
		StartedAt:     row.StartedAt,
		EndedAt:       row.EndedAt,
	}
}
