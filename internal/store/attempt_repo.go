package store

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/praxislearn/praxis/ent"
	"github.com/praxislearn/praxis/ent/attempt"
)

type attemptRepo struct {
	client *ent.Client
}

func (r *attemptRepo) Append(ctx context.Context, rec *AttemptRecord) error {
	_, err := r.client.Attempt.Create().
		SetID(rec.ID).
		SetQuestionID(rec.QuestionID).
		SetConceptID(rec.ConceptID).
		SetUserID(rec.UserID).
		SetSessionID(rec.SessionID).
		SetAnswer(rec.Answer).
		SetCorrect(rec.Correct).
		SetScore(rec.Score).
		SetTimeTakenMs(rec.TimeTakenMs).
		Save(ctx)
	if ent.IsConstraintError(err) {
		return ErrDuplicateAttempt
	}
	if err != nil {
		return fmt.Errorf("append attempt %s: %w", rec.ID, err)
	}
	return nil
}

func (r *attemptRepo) Exists(ctx context.Context, id uuid.UUID) (bool, error) {
	ok, err := r.client.Attempt.Query().
		Where(attempt.ID(id)).
		Exist(ctx)
	if err != nil {
		return false, fmt.Errorf("check attempt %s: %w", id, err)
	}
	return ok, nil
}

func (r *attemptRepo) ListBySession(ctx context.Context, sessionID uuid.UUID) ([]AttemptRecord, error) {
	rows, err := r.client.Attempt.Query().
		Where(attempt.SessionID(sessionID)).
		Order(ent.Asc(attempt.FieldCreatedAt)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("list attempts for session %s: %w", sessionID, err)
	}
	out := make([]AttemptRecord, len(rows))
	for i, row := range rows {
		out[i] = AttemptRecord{
			ID:          row.ID,
			QuestionID:  row.QuestionID,
			ConceptID:   row.ConceptID,
			UserID:      row.UserID,
			SessionID:   row.SessionID,
			Answer:      row.Answer,
			Correct:     row.Correct,
			Score:       row.Score,
			TimeTakenMs: row.TimeTakenMs,
			CreatedAt:   row.CreatedAt,
		}
	}
	return out, nil
}

func (r *attemptRepo) CountByUser(ctx context.Context, userID string) (int, error) {
	n, err := r.client.Attempt.Query().
		Where(attempt.UserID(userID)).
		Count(ctx)
	if err != nil {
		return 0, fmt.Errorf("count attempts for %s: %w", userID, err)
	}
	return n, nil
}
