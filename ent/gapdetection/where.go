// Code generated by ent, DO NOT EDIT.

package gapdetection

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
	"github.com/praxislearn/praxis/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id uuid.UUID) predicate.GapDetection {
	return predicate.GapDetection(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id uuid.UUID) predicate.GapDetection {
	return predicate.GapDetection(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id uuid.UUID) predicate.GapDetection {
	return predicate.GapDetection(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...uuid.UUID) predicate.GapDetection {
	return predicate.GapDetection(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...uuid.UUID) predicate.GapDetection {
	return predicate.GapDetection(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id uuid.UUID) predicate.GapDetection {
	return predicate.GapDetection(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id uuid.UUID) predicate.GapDetection {
	return predicate.GapDetection(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id uuid.UUID) predicate.GapDetection {
	return predicate.GapDetection(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id uuid.UUID) predicate.GapDetection {
	return predicate.GapDetection(sql.FieldLTE(FieldID, id))
}

// UserID applies equality check predicate on the "user_id" field. It's identical to UserIDEQ.
func UserID(v string) predicate.GapDetection {
	return predicate.GapDetection(sql.FieldEQ(FieldUserID, v))
}

// ConceptID applies equality check predicate on the "concept_id" field. It's identical to ConceptIDEQ.
func ConceptID(v uuid.UUID) predicate.GapDetection {
	return predicate.GapDetection(sql.FieldEQ(FieldConceptID, v))
}

// MissingConceptName applies equality check predicate on the "missing_concept_name" field. It's identical to MissingConceptNameEQ.
func MissingConceptName(v string) predicate.GapDetection {
	return predicate.GapDetection(sql.FieldEQ(FieldMissingConceptName, v))
}

// Explanation applies equality check predicate on the "explanation" field. It's identical to ExplanationEQ.
func Explanation(v string) predicate.GapDetection {
	return predicate.GapDetection(sql.FieldEQ(FieldExplanation, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.GapDetection {
	return predicate.GapDetection(sql.FieldEQ(FieldCreatedAt, v))
}

// UserIDEQ applies the EQ predicate on the "user_id" field.
func UserIDEQ(v string) predicate.GapDetection {
	return predicate.GapDetection(sql.FieldEQ(FieldUserID, v))
}

// UserIDNEQ applies the NEQ predicate on the "user_id" field.
func UserIDNEQ(v string) predicate.GapDetection {
	return predicate.GapDetection(sql.FieldNEQ(FieldUserID, v))
}

// UserIDIn applies the In predicate on the "user_id" field.
func UserIDIn(vs ...string) predicate.GapDetection {
	return predicate.GapDetection(sql.FieldIn(FieldUserID, vs...))
}

// UserIDNotIn applies the NotIn predicate on the "user_id" field.
func UserIDNotIn(vs ...string) predicate.GapDetection {
	return predicate.GapDetection(sql.FieldNotIn(FieldUserID, vs...))
}

// UserIDGT applies the GT predicate on the "user_id" field.
func UserIDGT(v string) predicate.GapDetection {
	return predicate.GapDetection(sql.FieldGT(FieldUserID, v))
}

// UserIDGTE applies the GTE predicate on the "user_id" field.
func UserIDGTE(v string) predicate.GapDetection {
	return predicate.GapDetection(sql.FieldGTE(FieldUserID, v))
}

// UserIDLT applies the LT predicate on the "user_id" field.
func UserIDLT(v string) predicate.GapDetection {
	return predicate.GapDetection(sql.FieldLT(FieldUserID, v))
}

// UserIDLTE applies the LTE predicate on the "user_id" field.
func UserIDLTE(v string) predicate.GapDetection {
	return predicate.GapDetection(sql.FieldLTE(FieldUserID, v))
}

// UserIDContains applies the Contains predicate on the "user_id" field.
func UserIDContains(v string) predicate.GapDetection {
	return predicate.GapDetection(sql.FieldContains(FieldUserID, v))
}

// UserIDHasPrefix applies the HasPrefix predicate on the "user_id" field.
func UserIDHasPrefix(v string) predicate.GapDetection {
	return predicate.GapDetection(sql.FieldHasPrefix(FieldUserID, v))
}

// UserIDHasSuffix applies the HasSuffix predicate on the "user_id" field.
func UserIDHasSuffix(v string) predicate.GapDetection {
	return predicate.GapDetection(sql.FieldHasSuffix(FieldUserID, v))
}

// UserIDEqualFold applies the EqualFold predicate on the "user_id" field.
func UserIDEqualFold(v string) predicate.GapDetection {
	return predicate.GapDetection(sql.FieldEqualFold(FieldUserID, v))
}

// UserIDContainsFold applies the ContainsFold predicate on the "user_id" field.
func UserIDContainsFold(v string) predicate.GapDetection {
	return predicate.GapDetection(sql.FieldContainsFold(FieldUserID, v))
}

// ConceptIDEQ applies the EQ predicate on the "concept_id" field.
func ConceptIDEQ(v uuid.UUID) predicate.GapDetection {
	return predicate.GapDetection(sql.FieldEQ(FieldConceptID, v))
}

// ConceptIDNEQ applies the NEQ predicate on the "concept_id" field.
func ConceptIDNEQ(v uuid.UUID) predicate.GapDetection {
	return predicate.GapDetection(sql.FieldNEQ(FieldConceptID, v))
}

// ConceptIDIn applies the In predicate on the "concept_id" field.
func ConceptIDIn(vs ...uuid.UUID) predicate.GapDetection {
	return predicate.GapDetection(sql.FieldIn(FieldConceptID, vs...))
}

// ConceptIDNotIn applies the NotIn predicate on the "concept_id" field.
func ConceptIDNotIn(vs ...uuid.UUID) predicate.GapDetection {
	return predicate.GapDetection(sql.FieldNotIn(FieldConceptID, vs...))
}

// ConceptIDGT applies the GT predicate on the "concept_id" field.
func ConceptIDGT(v uuid.UUID) predicate.GapDetection {
	return predicate.GapDetection(sql.FieldGT(FieldConceptID, v))
}

// ConceptIDGTE applies the GTE predicate on the "concept_id" field.
func ConceptIDGTE(v uuid.UUID) predicate.GapDetection {
	return predicate.GapDetection(sql.FieldGTE(FieldConceptID, v))
}

// ConceptIDLT applies the LT predicate on the "concept_id" field.
func ConceptIDLT(v uuid.UUID) predicate.GapDetection {
	return predicate.GapDetection(sql.FieldLT(FieldConceptID, v))
}

// ConceptIDLTE applies the LTE predicate on the "concept_id" field.
func ConceptIDLTE(v uuid.UUID) predicate.GapDetection {
	return predicate.GapDetection(sql.FieldLTE(FieldConceptID, v))
}

// MissingConceptNameEQ applies the EQ predicate on the "missing_concept_name" field.
func MissingConceptNameEQ(v string) predicate.GapDetection {
	return predicate.GapDetection(sql.FieldEQ(FieldMissingConceptName, v))
}

// MissingConceptNameNEQ applies the NEQ predicate on the "missing_concept_name" field.
func MissingConceptNameNEQ(v string) predicate.GapDetection {
	return predicate.GapDetection(sql.FieldNEQ(FieldMissingConceptName, v))
}

// MissingConceptNameIn applies the In predicate on the "missing_concept_name" field.
func MissingConceptNameIn(vs ...string) predicate.GapDetection {
	return predicate.GapDetection(sql.FieldIn(FieldMissingConceptName, vs...))
}

// MissingConceptNameNotIn applies the NotIn predicate on the "missing_concept_name" field.
func MissingConceptNameNotIn(vs ...string) predicate.GapDetection {
	return predicate.GapDetection(sql.FieldNotIn(FieldMissingConceptName, vs...))
}

// MissingConceptNameGT applies the GT predicate on the "missing_concept_name" field.
func MissingConceptNameGT(v string) predicate.GapDetection {
	return predicate.GapDetection(sql.FieldGT(FieldMissingConceptName, v))
}

// MissingConceptNameGTE applies the GTE predicate on the "missing_concept_name" field.
func MissingConceptNameGTE(v string) predicate.GapDetection {
	return predicate.GapDetection(sql.FieldGTE(FieldMissingConceptName, v))
}

// MissingConceptNameLT applies the LT predicate on the "missing_concept_name" field.
func MissingConceptNameLT(v string) predicate.GapDetection {
	return predicate.GapDetection(sql.FieldLT(FieldMissingConceptName, v))
}

// MissingConceptNameLTE applies the LTE predicate on the "missing_concept_name" field.
func MissingConceptNameLTE(v string) predicate.GapDetection {
	return predicate.GapDetection(sql.FieldLTE(FieldMissingConceptName, v))
}

// MissingConceptNameContains applies the Contains predicate on the "missing_concept_name" field.
func MissingConceptNameContains(v string) predicate.GapDetection {
	return predicate.GapDetection(sql.FieldContains(FieldMissingConceptName, v))
}

// MissingConceptNameHasPrefix applies the HasPrefix predicate on the "missing_concept_name" field.
func MissingConceptNameHasPrefix(v string) predicate.GapDetection {
	return predicate.GapDetection(sql.FieldHasPrefix(FieldMissingConceptName, v))
}

// MissingConceptNameHasSuffix applies the HasSuffix predicate on the "missing_concept_name" field.
func MissingConceptNameHasSuffix(v string) predicate.GapDetection {
	return predicate.GapDetection(sql.FieldHasSuffix(FieldMissingConceptName, v))
}

// MissingConceptNameEqualFold applies the EqualFold predicate on the "missing_concept_name" field.
func MissingConceptNameEqualFold(v string) predicate.GapDetection {
	return predicate.GapDetection(sql.FieldEqualFold(FieldMissingConceptName, v))
}

// MissingConceptNameContainsFold applies the ContainsFold predicate on the "missing_concept_name" field.
func MissingConceptNameContainsFold(v string) predicate.GapDetection {
	return predicate.GapDetection(sql.FieldContainsFold(FieldMissingConceptName, v))
}

// SeverityEQ applies the EQ predicate on the "severity" field.
func SeverityEQ(v Severity) predicate.GapDetection {
	return predicate.GapDetection(sql.FieldEQ(FieldSeverity, v))
}

// SeverityNEQ applies the NEQ predicate on the "severity" field.
func SeverityNEQ(v Severity) predicate.GapDetection {
	return predicate.GapDetection(sql.FieldNEQ(FieldSeverity, v))
}

// SeverityIn applies the In predicate on the "severity" field.
func SeverityIn(vs ...Severity) predicate.GapDetection {
	return predicate.GapDetection(sql.FieldIn(FieldSeverity, vs...))
}

// SeverityNotIn applies the NotIn predicate on the "severity" field.
func SeverityNotIn(vs ...Severity) predicate.GapDetection {
	return predicate.GapDetection(sql.FieldNotIn(FieldSeverity, vs...))
}

// StatusEQ applies the EQ predicate on the "status" field.
func StatusEQ(v Status) predicate.GapDetection {
	return predicate.GapDetection(sql.FieldEQ(FieldStatus, v))
}

// StatusNEQ applies the NEQ predicate on the "status" field.
func StatusNEQ(v Status) predicate.GapDetection {
	return predicate.GapDetection(sql.FieldNEQ(FieldStatus, v))
}

// StatusIn applies the In predicate on the "status" field.
func StatusIn(vs ...Status) predicate.GapDetection {
	return predicate.GapDetection(sql.FieldIn(FieldStatus, vs...))
}

// StatusNotIn applies the NotIn predicate on the "status" field.
func StatusNotIn(vs ...Status) predicate.GapDetection {
	return predicate.GapDetection(sql.FieldNotIn(FieldStatus, vs...))
}

// ExplanationEQ applies the EQ predicate on the "explanation" field.
func ExplanationEQ(v string) predicate.GapDetection {
	return predicate.GapDetection(sql.FieldEQ(FieldExplanation, v))
}

// ExplanationNEQ applies the NEQ predicate on the "explanation" field.
func ExplanationNEQ(v string) predicate.GapDetection {
	return predicate.GapDetection(sql.FieldNEQ(FieldExplanation, v))
}

// ExplanationIn applies the In predicate on the "explanation" field.
func ExplanationIn(vs ...string) predicate.GapDetection {
	return predicate.GapDetection(sql.FieldIn(FieldExplanation, vs...))
}

// ExplanationNotIn applies the NotIn predicate on the "explanation" field.
func ExplanationNotIn(vs ...string) predicate.GapDetection {
	return predicate.GapDetection(sql.FieldNotIn(FieldExplanation, vs...))
}

// ExplanationGT applies the GT predicate on the "explanation" field.
func ExplanationGT(v string) predicate.GapDetection {
	return predicate.GapDetection(sql.FieldGT(FieldExplanation, v))
}

// ExplanationGTE applies the GTE predicate on the "explanation" field.
func ExplanationGTE(v string) predicate.GapDetection {
	return predicate.GapDetection(sql.FieldGTE(FieldExplanation, v))
}

// ExplanationLT applies the LT predicate on the "explanation" field.
func ExplanationLT(v string) predicate.GapDetection {
	return predicate.GapDetection(sql.FieldLT(FieldExplanation, v))
}

// ExplanationLTE applies the LTE predicate on the "explanation" field.
func ExplanationLTE(v string) predicate.GapDetection {
	return predicate.GapDetection(sql.FieldLTE(FieldExplanation, v))
}

// ExplanationContains applies the Contains predicate on the "explanation" field.
func ExplanationContains(v string) predicate.GapDetection {
	return predicate.GapDetection(sql.FieldContains(FieldExplanation, v))
}

// ExplanationHasPrefix applies the HasPrefix predicate on the "explanation" field.
func ExplanationHasPrefix(v string) predicate.GapDetection {
	return predicate.GapDetection(sql.FieldHasPrefix(FieldExplanation, v))
}

// ExplanationHasSuffix applies the HasSuffix predicate on the "explanation" field.
func ExplanationHasSuffix(v string) predicate.GapDetection {
	return predicate.GapDetection(sql.FieldHasSuffix(FieldExplanation, v))
}

// ExplanationEqualFold applies the EqualFold predicate on the "explanation" field.
func ExplanationEqualFold(v string) predicate.GapDetection {
	return predicate.GapDetection(sql.FieldEqualFold(FieldExplanation, v))
}

// ExplanationContainsFold applies the ContainsFold predicate on the "explanation" field.
func ExplanationContainsFold(v string) predicate.GapDetection {
	return predicate.GapDetection(sql.FieldContainsFold(FieldExplanation, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.GapDetection {
	return predicate.GapDetection(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.GapDetection {
	return predicate.GapDetection(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.GapDetection {
	return predicate.GapDetection(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.GapDetection {
	return predicate.GapDetection(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.GapDetection {
	return predicate.GapDetection(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.GapDetection {
	return predicate.GapDetection(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.GapDetection {
	return predicate.GapDetection(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.GapDetection {
	return predicate.GapDetection(sql.FieldLTE(FieldCreatedAt, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.GapDetection) predicate.GapDetection {
	return predicate.GapDetection(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.GapDetection) predicate.GapDetection {
	return predicate.GapDetection(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.GapDetection) predicate.GapDetection {
	return predicate.GapDetection(sql.NotPredicates(p))
}
