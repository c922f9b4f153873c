package store

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/praxislearn/praxis/ent"
	"github.com/praxislearn/praxis/ent/question"
	"github.com/praxislearn/praxis/internal/concepts"
)

type questionRepo struct {
	client *ent.Client
}

func (r *questionRepo) Get(ctx context.Context, id uuid.UUID) (*concepts.Question, error) {
	row, err := r.client.Question.Get(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get question %s: %w", id, err)
	}
	return questionFromEnt(row), nil
}

func (r *questionRepo) ListByConcept(ctx context.Context, conceptID uuid.UUID) ([]concepts.Question, error) {
	rows, err := r.client.Question.Query().
		Where(question.ConceptID(conceptID)).
		Order(ent.Asc(question.FieldCreatedAt)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("list questions for concept %s: %w", conceptID, err)
	}
	out := make([]concepts.Question, len(rows))
	for i, row := range rows {
		out[i] = *questionFromEnt(row)
	}
	return out, nil
}

func (r *questionRepo) CountByConcept(ctx context.Context, conceptID uuid.UUID) (int, error) {
	n, err := r.client.Question.Query().
		Where(question.ConceptID(conceptID)).
		Count(ctx)
	if err != nil {
		return 0, fmt.Errorf("count questions for concept %s: %w", conceptID, err)
	}
	return n, nil
}

func (r *questionRepo) CreateBatch(ctx context.Context, qs []concepts.Question) ([]concepts.Question, error) {
	builders := make([]*ent.QuestionCreate, len(qs))
	for i, q := range qs {
		b := r.client.Question.Create().
			SetConceptID(q.ConceptID).
			SetQuestionType(question.QuestionType(q.Type)).
			SetText(q.Text).
			SetAnswer(q.Answer).
			SetDistractors(q.Distractors).
			SetExplanation(q.Explanation).
			SetDifficulty(q.Difficulty).
			SetSources(q.Sources)
		if q.ID != uuid.Nil {
			b = b.SetID(q.ID)
		}
		builders[i] = b
	}
	rows, err := r.client.Question.CreateBulk(builders...).Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("create %d questions: %w", len(qs), err)
	}
	out := make([]concepts.Question, len(rows))
	for i, row := range rows {
		out[i] = *questionFromEnt(row)
	}
	return out, nil
}

func questionFromEnt(row *ent.Question) *concepts.Question {
	return &concepts.Question{
		ID:          row.ID,
		ConceptID:   row.ConceptID,
		Type:        concepts.QuestionType(row.QuestionType),
		Text:        row.Text,
		Answer:      row.Answer,
		Distractors: row.Distractors,
		Explanation: row.Explanation,
		Difficulty:  row.Difficulty,
		Sources:     row.Sources,
	}
}
