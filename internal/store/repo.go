package store

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/praxislearn/praxis/ent"
	"github.com/praxislearn/praxis/internal/concepts"
)

// ConceptRepo manages concept records.
type ConceptRepo interface {
	Get(ctx context.Context, id uuid.UUID) (*concepts.Concept, error)

	// FindByNormalizedName returns (nil, nil) when no concept matches.
	FindByNormalizedName(ctx context.Context, userID, normalized string) (*concepts.Concept, error)

	Create(ctx context.Context, c *concepts.Concept) (*concepts.Concept, error)
	Update(ctx context.Context, c *concepts.Concept) error

	ListByUser(ctx context.Context, userID string) ([]concepts.Concept, error)
	ListByIDs(ctx context.Context, ids []uuid.UUID) ([]concepts.Concept, error)

	// ListDue returns non-deprecated concepts whose nextDue has passed or was
	// never set. A non-nil scope restricts the result to those concept ids.
	ListDue(ctx context.Context, userID string, now time.Time, scope []uuid.UUID) ([]concepts.Concept, error)
}

// GraphRepo manages unit graphs, edges, and memberships.
type GraphRepo interface {
	CreateGraph(ctx context.Context, g *concepts.UnitGraph) (*concepts.UnitGraph, error)
	GetGraph(ctx context.Context, id uuid.UUID) (*concepts.UnitGraph, error)
	ListGraphs(ctx context.Context, userID string) ([]concepts.UnitGraph, error)

	ListEdges(ctx context.Context, graphID uuid.UUID) ([]concepts.Edge, error)

	// FindEdge returns (nil, nil) when no identical edge exists.
	FindEdge(ctx context.Context, graphID, from, to uuid.UUID, t concepts.EdgeType) (*concepts.Edge, error)
	CreateEdge(ctx context.Context, e *concepts.Edge) (*concepts.Edge, error)
	DeleteEdges(ctx context.Context, ids []uuid.UUID) error

	ListMemberships(ctx context.Context, graphID uuid.UUID) ([]concepts.Membership, error)

	// FindMembership returns (nil, nil) when the concept is not in the graph.
	FindMembership(ctx context.Context, graphID, conceptID uuid.UUID) (*concepts.Membership, error)
	CreateMembership(ctx context.Context, m *concepts.Membership) (*concepts.Membership, error)

	// UpdateMemberships writes back positions and tiers for all the given
	// memberships. Callers wrap it in a transaction when atomicity across a
	// whole graph matters.
	UpdateMemberships(ctx context.Context, ms []concepts.Membership) error

	// ListPrerequisiteSources returns the ids of concepts that are the source
	// of at least one prerequisite edge in the graph.
	ListPrerequisiteSources(ctx context.Context, graphID uuid.UUID) (map[uuid.UUID]bool, error)
}

// QuestionRepo manages question banks.
type QuestionRepo interface {
	Get(ctx context.Context, id uuid.UUID) (*concepts.Question, error)
	ListByConcept(ctx context.Context, conceptID uuid.UUID) ([]concepts.Question, error)
	CountByConcept(ctx context.Context, conceptID uuid.UUID) (int, error)
	CreateBatch(ctx context.Context, qs []concepts.Question) ([]concepts.Question, error)
}

// AttemptRecord is the immutable log row for one answered question.
type AttemptRecord struct {
	ID          uuid.UUID
	QuestionID  uuid.UUID
	ConceptID   uuid.UUID
	UserID      string
	SessionID   uuid.UUID
	Answer      string
	Correct     bool
	Score       float64
	TimeTakenMs int64
	CreatedAt   time.Time
}

// ErrDuplicateAttempt is returned by Append when the attempt id was already
// recorded (duplicate delivery of the same submission).
var ErrDuplicateAttempt = errDuplicateAttempt{}

type errDuplicateAttempt struct{}

func (errDuplicateAttempt) Error() string { return "attempt already recorded" }

// AttemptRepo appends to the immutable attempt log.
type AttemptRepo interface {
	// Append stores the record. Returns ErrDuplicateAttempt when a record
	// with the same id already exists.
	Append(ctx context.Context, rec *AttemptRecord) error
	Exists(ctx context.Context, id uuid.UUID) (bool, error)
	ListBySession(ctx context.Context, sessionID uuid.UUID) ([]AttemptRecord, error)
	CountByUser(ctx context.Context, userID string) (int, error)
}

// SessionRecord tracks one practice session and its running counters.
type SessionRecord struct {
	ID            uuid.UUID
	UserID        string
	GraphID       *uuid.UUID
	QuestionCount int
	CorrectCount  int
	Status        string
	StartedAt     time.Time
	EndedAt       *time.Time
}

// SessionRepo manages practice sessions.
type SessionRepo interface {
	Create(ctx context.Context, rec *SessionRecord) (*SessionRecord, error)
	Get(ctx context.Context, id uuid.UUID) (*SessionRecord, error)

	// AddResult increments the session's question counter, and the correct
	// counter when correct is true.
	AddResult(ctx context.Context, id uuid.UUID, correct bool) error
	Complete(ctx context.Context, id uuid.UUID, endedAt time.Time) error
}

// GapRecord is one grader verdict that an answer revealed a missing
// prerequisite concept.
type GapRecord struct {
	ID                 uuid.UUID
	UserID             string
	ConceptID          uuid.UUID
	MissingConceptName string
	Severity           string
	Status             string
	Explanation        string
	CreatedAt          time.Time
}

// GapRepo manages gap detection rows.
type GapRepo interface {
	Record(ctx context.Context, rec *GapRecord) (*GapRecord, error)

	// ListDetected returns rows with status "detected" for the pair, newest
	// first.
	ListDetected(ctx context.Context, userID string, conceptID uuid.UUID) ([]GapRecord, error)
	UpdateStatus(ctx context.Context, ids []uuid.UUID, status string) error
}

// Repos bundles the repositories bound to one ent client (possibly a
// transactional one).
type Repos struct {
	Concepts  ConceptRepo
	Graphs    GraphRepo
	Questions QuestionRepo
	Attempts  AttemptRepo
	Sessions  SessionRepo
	Gaps      GapRepo
}

// NewRepos builds the repository bundle for the given client.
func NewRepos(client *ent.Client) *Repos {
	return &Repos{
		Concepts:  &conceptRepo{client: client},
		Graphs:    &graphRepo{client: client},
		Questions: &questionRepo{client: client},
		Attempts:  &attemptRepo{client: client},
		Sessions:  &sessionRepo{client: client},
		Gaps:      &gapRepo{client: client},
	}
}
