package concepts

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Repo is the narrow persistence contract deduplication needs.
type Repo interface {
	// FindByNormalizedName returns the concept with the given dedup key,
	// or (nil, nil) when none exists.
	FindByNormalizedName(ctx context.Context, userID, normalized string) (*Concept, error)
	Create(ctx context.Context, c *Concept) (*Concept, error)
	Update(ctx context.Context, c *Concept) error
}

// Deduper resolves (user, name) pairs to canonical concept records. The same
// concept can appear in multiple curricula for one learner; without merge the
// mastery signal would fragment and redundant practice would be served.
type Deduper struct {
	repo Repo
	log  *zap.Logger
}

// NewDeduper creates a Deduper.
func NewDeduper(repo Repo, log *zap.Logger) *Deduper {
	return &Deduper{repo: repo, log: log}
}

// Seed holds the incoming values for FindOrCreate.
type Seed struct {
	Name        string
	Description string
	KeyTerms    []string
	Proficiency float64
	Confidence  float64
	// AttemptCount carries history when the seed originates from another
	// record being folded in (for example a curriculum import).
	AttemptCount int
	Source       Source
}

// FindOrCreate resolves a concept by its normalized name, merging statistics
// into an existing record when one is found. Returns the canonical concept
// and whether an existing record was reused.
func (d *Deduper) FindOrCreate(ctx context.Context, userID string, seed Seed) (*Concept, bool, error) {
	normalized := NormalizeName(seed.Name)
	if normalized == "" {
		return nil, false, fmt.Errorf("concept name is empty")
	}

	existing, err := d.repo.FindByNormalizedName(ctx, userID, normalized)
	if err != nil {
		return nil, false, fmt.Errorf("lookup concept %q: %w", normalized, err)
	}

	if existing != nil {
		merged := MergeEstimate(existing.Proficiency, existing.Confidence, seed.Proficiency, seed.Confidence)
		existing.Proficiency = merged.Proficiency
		existing.Confidence = merged.Confidence
		existing.AttemptCount += seed.AttemptCount
		if existing.Description == "" {
			existing.Description = seed.Description
		}
		if len(existing.KeyTerms) == 0 {
			existing.KeyTerms = seed.KeyTerms
		}
		if err := d.repo.Update(ctx, existing); err != nil {
			return nil, false, fmt.Errorf("merge concept %q: %w", normalized, err)
		}
		d.log.Debug("concept reused",
			zap.String("user_id", userID),
			zap.String("name", normalized),
			zap.Float64("proficiency", existing.Proficiency))
		return existing, true, nil
	}

	src := seed.Source
	if src == "" {
		src = SourceSystem
	}
	created, err := d.repo.Create(ctx, &Concept{
		ID:             uuid.New(),
		UserID:         userID,
		Name:           seed.Name,
		NormalizedName: normalized,
		Description:    seed.Description,
		KeyTerms:       seed.KeyTerms,
		Proficiency:    seed.Proficiency,
		Confidence:     seed.Confidence,
		AttemptCount:   seed.AttemptCount,
		EaseFactor:     2.5,
		IntervalDays:   1,
		Source:         src,
	})
	if err != nil {
		return nil, false, fmt.Errorf("create concept %q: %w", normalized, err)
	}
	return created, false, nil
}

// Estimate is a (proficiency, confidence) pair.
type Estimate struct {
	Proficiency float64
	Confidence  float64
}

// MergeEstimate combines two proficiency estimates as a confidence-weighted
// average, keeping the higher confidence. Two zero-confidence observations
// merge to (0, 0) rather than dividing by zero.
func MergeEstimate(pOld, cOld, pNew, cNew float64) Estimate {
	totalConf := cOld + cNew
	var p float64
	if totalConf > 0 {
		p = (pOld*cOld + pNew*cNew) / totalConf
	}
	c := cOld
	if cNew > c {
		c = cNew
	}
	return Estimate{Proficiency: p, Confidence: c}
}
