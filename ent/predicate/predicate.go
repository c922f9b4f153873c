// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// Attempt is the predicate function for attempt builders.
type Attempt func(*sql.Selector)

// Concept is the predicate function for concept builders.
type Concept func(*sql.Selector)

// ConceptEdge is the predicate function for conceptedge builders.
type ConceptEdge func(*sql.Selector)

// GapDetection is the predicate function for gapdetection builders.
type GapDetection func(*sql.Selector)

// GraphMembership is the predicate function for graphmembership builders.
type GraphMembership func(*sql.Selector)

// LLMRequestEvent is the predicate function for llmrequestevent builders.
type LLMRequestEvent func(*sql.Selector)

// PracticeSession is the predicate function for practicesession builders.
type PracticeSession func(*sql.Selector)

// Question is the predicate function for question builders.
type Question func(*sql.Selector)

// UnitGraph is the predicate function for unitgraph builders.
type UnitGraph func(*sql.Selector)
