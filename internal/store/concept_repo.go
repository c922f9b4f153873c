package store

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/praxislearn/praxis/ent"
	"github.com/praxislearn/praxis/ent/concept"
	"github.com/praxislearn/praxis/ent/predicate"
	"github.com/praxislearn/praxis/internal/concepts"
)

type conceptRepo struct {
	client *ent.Client
}

func (r *conceptRepo) Get(ctx context.Context, id uuid.UUID) (*concepts.Concept, error) {
	row, err := r.client.Concept.Get(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get concept %s: %w", id, err)
	}
	return conceptFromEnt(row), nil
}

func (r *conceptRepo) FindByNormalizedName(ctx context.Context, userID, normalized string) (*concepts.Concept, error) {
	row, err := r.client.Concept.Query().
		Where(
			concept.UserID(userID),
			concept.NormalizedName(normalized),
		).
		Only(ctx)
	if ent.IsNotFound(err) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find concept %q: %w", normalized, err)
	}
	return conceptFromEnt(row), nil
}

func (r *conceptRepo) Create(ctx context.Context, c *concepts.Concept) (*concepts.Concept, error) {
	builder := r.client.Concept.Create().
		SetUserID(c.UserID).
		SetName(c.Name).
		SetNormalizedName(c.NormalizedName).
		SetDescription(c.Description).
		SetKeyTerms(c.KeyTerms).
		SetProficiency(c.Proficiency).
		SetConfidence(c.Confidence).
		SetEaseFactor(c.EaseFactor).
		SetIntervalDays(c.IntervalDays).
		SetRepetitionCount(c.RepetitionCount).
		SetNillableLastPracticed(c.LastPracticed).
		SetNillableNextDue(c.NextDue).
		SetAttemptCount(c.AttemptCount).
		SetDeprecated(c.Deprecated).
		SetManuallyAdjusted(c.ManuallyAdjusted).
		SetSource(concept.Source(c.Source))

	if c.ID != uuid.Nil {
		builder = builder.SetID(c.ID)
	}

	row, err := builder.Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("create concept %q: %w", c.NormalizedName, err)
	}
	return conceptFromEnt(row), nil
}

func (r *conceptRepo) Update(ctx context.Context, c *concepts.Concept) error {
	_, err := r.client.Concept.UpdateOneID(c.ID).
		SetName(c.Name).
		SetNormalizedName(c.NormalizedName).
		SetDescription(c.Description).
		SetKeyTerms(c.KeyTerms).
		SetProficiency(c.Proficiency).
		SetConfidence(c.Confidence).
		SetEaseFactor(c.EaseFactor).
		SetIntervalDays(c.IntervalDays).
		SetRepetitionCount(c.RepetitionCount).
		SetNillableLastPracticed(c.LastPracticed).
		SetNillableNextDue(c.NextDue).
		SetAttemptCount(c.AttemptCount).
		SetDeprecated(c.Deprecated).
		SetManuallyAdjusted(c.ManuallyAdjusted).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("update concept %s: %w", c.ID, err)
	}
	return nil
}

func (r *conceptRepo) ListByUser(ctx context.Context, userID string) ([]concepts.Concept, error) {
	rows, err := r.client.Concept.Query().
		Where(concept.UserID(userID)).
		Order(ent.Asc(concept.FieldNormalizedName)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("list concepts for %s: %w", userID, err)
	}
	return conceptsFromEnt(rows), nil
}

func (r *conceptRepo) ListByIDs(ctx context.Context, ids []uuid.UUID) ([]concepts.Concept, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	rows, err := r.client.Concept.Query().
		Where(concept.IDIn(ids...)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("list concepts by ids: %w", err)
	}
	return conceptsFromEnt(rows), nil
}

func (r *conceptRepo) ListDue(ctx context.Context, userID string, now time.Time, scope []uuid.UUID) ([]concepts.Concept, error) {
	preds := []predicate.Concept{
		concept.UserID(userID),
		concept.Deprecated(false),
		concept.Or(
			concept.NextDueIsNil(),
			concept.NextDueLTE(now),
		),
	}
	if scope != nil {
		preds = append(preds, concept.IDIn(scope...))
	}

	rows, err := r.client.Concept.Query().
		Where(preds...).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("list due concepts for %s: %w", userID, err)
	}
	return conceptsFromEnt(rows), nil
}

func conceptFromEnt(row *ent.Concept) *concepts.Concept {
	return &concepts.Concept{
		ID:               row.ID,
		UserID:           row.UserID,
		Name:             row.Name,
		NormalizedName:   row.NormalizedName,
		Description:      row.Description,
		KeyTerms:         row.KeyTerms,
		Proficiency:      row.Proficiency,
		Confidence:       row.Confidence,
		EaseFactor:       row.EaseFactor,
		IntervalDays:     row.IntervalDays,
		RepetitionCount:  row.RepetitionCount,
		LastPracticed:    row.LastPracticed,
		NextDue:          row.NextDue,
		AttemptCount:     row.AttemptCount,
		Deprecated:       row.Deprecated,
		ManuallyAdjusted: row.ManuallyAdjusted,
		Source:           concepts.Source(row.Source),
	}
}

func conceptsFromEnt(rows []*ent.Concept) []concepts.Concept {
	out := make([]concepts.Concept, len(rows))
	for i, row := range rows {
		out[i] = *conceptFromEnt(row)
	}
	return out
}
