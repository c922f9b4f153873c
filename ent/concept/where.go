// Code generated by ent, DO NOT EDIT.

package concept

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
	"github.com/praxislearn/praxis/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id uuid.UUID) predicate.Concept {
	return predicate.Concept(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id uuid.UUID) predicate.Concept {
	return predicate.Concept(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id uuid.UUID) predicate.Concept {
	return predicate.Concept(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...uuid.UUID) predicate.Concept {
	return predicate.Concept(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...uuid.UUID) predicate.Concept {
	return predicate.Concept(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id uuid.UUID) predicate.Concept {
	return predicate.Concept(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id uuid.UUID) predicate.Concept {
	return predicate.Concept(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id uuid.UUID) predicate.Concept {
	return predicate.Concept(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id uuid.UUID) predicate.Concept {
	return predicate.Concept(sql.FieldLTE(FieldID, id))
}

// UserID applies equality check predicate on the "user_id" field. It's identical to UserIDEQ.
func UserID(v string) predicate.Concept {
	return predicate.Concept(sql.FieldEQ(FieldUserID, v))
}

// Name applies equality check predicate on the "name" field. It's identical to NameEQ.
func Name(v string) predicate.Concept {
	return predicate.Concept(sql.FieldEQ(FieldName, v))
}

// NormalizedName applies equality check predicate on the "normalized_name" field. It's identical to NormalizedNameEQ.
func NormalizedName(v string) predicate.Concept {
	return predicate.Concept(sql.FieldEQ(FieldNormalizedName, v))
}

// Description applies equality check predicate on the "description" field. It's identical to DescriptionEQ.
func Description(v string) predicate.Concept {
	return predicate.Concept(sql.FieldEQ(FieldDescription, v))
}

// Proficiency applies equality check predicate on the "proficiency" field. It's identical to ProficiencyEQ.
func Proficiency(v float64) predicate.Concept {
	return predicate.Concept(sql.FieldEQ(FieldProficiency, v))
}

// Confidence applies equality check predicate on the "confidence" field. It's identical to ConfidenceEQ.
func Confidence(v float64) predicate.Concept {
	return predicate.Concept(sql.FieldEQ(FieldConfidence, v))
}

// EaseFactor applies equality check predicate on the "ease_factor" field. It's identical to EaseFactorEQ.
func EaseFactor(v float64) predicate.Concept {
	return predicate.Concept(sql.FieldEQ(FieldEaseFactor, v))
}

// IntervalDays applies equality check predicate on the "interval_days" field. It's identical to IntervalDaysEQ.
func IntervalDays(v int) predicate.Concept {
	return predicate.Concept(sql.FieldEQ(FieldIntervalDays, v))
}

// RepetitionCount applies equality check predicate on the "repetition_count" field. It's identical to RepetitionCountEQ.
func RepetitionCount(v int) predicate.Concept {
	return predicate.Concept(sql.FieldEQ(FieldRepetitionCount, v))
}

// LastPracticed applies equality check predicate on the "last_practiced" field. It's identical to LastPracticedEQ.
func LastPracticed(v time.Time) predicate.Concept {
	return predicate.Concept(sql.FieldEQ(FieldLastPracticed, v))
}

// NextDue applies equality check predicate on the "next_due" field. It's identical to NextDueEQ.
func NextDue(v time.Time) predicate.Concept {
	return predicate.Concept(sql.FieldEQ(FieldNextDue, v))
}

// AttemptCount applies equality check predicate on the "attempt_count" field. It's identical to AttemptCountEQ.
func AttemptCount(v int) predicate.Concept {
	return predicate.Concept(sql.FieldEQ(FieldAttemptCount, v))
}

// Deprecated applies equality check predicate on the "deprecated" field. It's identical to DeprecatedEQ.
func Deprecated(v bool) predicate.Concept {
	return predicate.Concept(sql.FieldEQ(FieldDeprecated, v))
}

// ManuallyAdjusted applies equality check predicate on the "manually_adjusted" field. It's identical to ManuallyAdjustedEQ.
func ManuallyAdjusted(v bool) predicate.Concept {
	return predicate.Concept(sql.FieldEQ(FieldManuallyAdjusted, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.Concept {
	return predicate.Concept(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.Concept {
	return predicate.Concept(sql.FieldEQ(FieldUpdatedAt, v))
}

// UserIDEQ applies the EQ predicate on the "user_id" field.
func UserIDEQ(v string) predicate.Concept {
	return predicate.Concept(sql.FieldEQ(FieldUserID, v))
}

// UserIDNEQ applies the NEQ predicate on the "user_id" field.
func UserIDNEQ(v string) predicate.Concept {
	return predicate.Concept(sql.FieldNEQ(FieldUserID, v))
}

// UserIDIn applies the In predicate on the "user_id" field.
func UserIDIn(vs ...string) predicate.Concept {
	return predicate.Concept(sql.FieldIn(FieldUserID, vs...))
}

// UserIDNotIn applies the NotIn predicate on the "user_id" field.
func UserIDNotIn(vs ...string) predicate.Concept {
	return predicate.Concept(sql.FieldNotIn(FieldUserID, vs...))
}

// UserIDGT applies the GT predicate on the "user_id" field.
func UserIDGT(v string) predicate.Concept {
	return predicate.Concept(sql.FieldGT(FieldUserID, v))
}

// UserIDGTE applies the GTE predicate on the "user_id" field.
func UserIDGTE(v string) predicate.Concept {
	return predicate.Concept(sql.FieldGTE(FieldUserID, v))
}

// UserIDLT applies the LT predicate on the "user_id" field.
func UserIDLT(v string) predicate.Concept {
	return predicate.Concept(sql.FieldLT(FieldUserID, v))
}

// UserIDLTE applies the LTE predicate on the "user_id" field.
func UserIDLTE(v string) predicate.Concept {
	return predicate.Concept(sql.FieldLTE(FieldUserID, v))
}

// UserIDContains applies the Contains predicate on the "user_id" field.
func UserIDContains(v string) predicate.Concept {
	return predicate.Concept(sql.FieldContains(FieldUserID, v))
}

// UserIDHasPrefix applies the HasPrefix predicate on the "user_id" field.
func UserIDHasPrefix(v string) predicate.Concept {
	return predicate.Concept(sql.FieldHasPrefix(FieldUserID, v))
}

// UserIDHasSuffix applies the HasSuffix predicate on the "user_id" field.
func UserIDHasSuffix(v string) predicate.Concept {
	return predicate.Concept(sql.FieldHasSuffix(FieldUserID, v))
}

// UserIDEqualFold applies the EqualFold predicate on the "user_id" field.
func UserIDEqualFold(v string) predicate.Concept {
	return predicate.Concept(sql.FieldEqualFold(FieldUserID, v))
}

// UserIDContainsFold applies the ContainsFold predicate on the "user_id" field.
func UserIDContainsFold(v string) predicate.Concept {
	return predicate.Concept(sql.FieldContainsFold(FieldUserID, v))
}

// NameEQ applies the EQ predicate on the "name" field.
func NameEQ(v string) predicate.Concept {
	return predicate.Concept(sql.FieldEQ(FieldName, v))
}

// NameNEQ applies the NEQ predicate on the "name" field.
func NameNEQ(v string) predicate.Concept {
	return predicate.Concept(sql.FieldNEQ(FieldName, v))
}

// NameIn applies the In predicate on the "name" field.
func NameIn(vs ...string) predicate.Concept {
	return predicate.Concept(sql.FieldIn(FieldName, vs...))
}

// NameNotIn applies the NotIn predicate on the "name" field.
func NameNotIn(vs ...string) predicate.Concept {
	return predicate.Concept(sql.FieldNotIn(FieldName, vs...))
}

// NameGT applies the GT predicate on the "name" field.
func NameGT(v string) predicate.Concept {
	return predicate.Concept(sql.FieldGT(FieldName, v))
}

// NameGTE applies the GTE predicate on the "name" field.
func NameGTE(v string) predicate.Concept {
	return predicate.Concept(sql.FieldGTE(FieldName, v))
}

// NameLT applies the LT predicate on the "name" field.
func NameLT(v string) predicate.Concept {
	return predicate.Concept(sql.FieldLT(FieldName, v))
}

// NameLTE applies the LTE predicate on the "name" field.
func NameLTE(v string) predicate.Concept {
	return predicate.Concept(sql.FieldLTE(FieldName, v))
}

// NameContains applies the Contains predicate on the "name" field.
func NameContains(v string) predicate.Concept {
	return predicate.Concept(sql.FieldContains(FieldName, v))
}

// NameHasPrefix applies the HasPrefix predicate on the "name" field.
func NameHasPrefix(v string) predicate.Concept {
	return predicate.Concept(sql.FieldHasPrefix(FieldName, v))
}

// NameHasSuffix applies the HasSuffix predicate on the "name" field.
func NameHasSuffix(v string) predicate.Concept {
	return predicate.Concept(sql.FieldHasSuffix(FieldName, v))
}

// NameEqualFold applies the EqualFold predicate on the "name" field.
func NameEqualFold(v string) predicate.Concept {
	return predicate.Concept(sql.FieldEqualFold(FieldName, v))
}

// NameContainsFold applies the ContainsFold predicate on the "name" field.
func NameContainsFold(v string) predicate.Concept {
	return predicate.Concept(sql.FieldContainsFold(FieldName, v))
}

// NormalizedNameEQ applies the EQ predicate on the "normalized_name" field.
func NormalizedNameEQ(v string) predicate.Concept {
	return predicate.Concept(sql.FieldEQ(FieldNormalizedName, v))
}

// NormalizedNameNEQ applies the NEQ predicate on the "normalized_name" field.
func NormalizedNameNEQ(v string) predicate.Concept {
	return predicate.Concept(sql.FieldNEQ(FieldNormalizedName, v))
}

// NormalizedNameIn applies the In predicate on the "normalized_name" field.
func NormalizedNameIn(vs ...string) predicate.Concept {
	return predicate.Concept(sql.FieldIn(FieldNormalizedName, vs...))
}

// NormalizedNameNotIn applies the NotIn predicate on the "normalized_name" field.
func NormalizedNameNotIn(vs ...string) predicate.Concept {
	return predicate.Concept(sql.FieldNotIn(FieldNormalizedName, vs...))
}

// NormalizedNameGT applies the GT predicate on the "normalized_name" field.
func NormalizedNameGT(v string) predicate.Concept {
	return predicate.Concept(sql.FieldGT(FieldNormalizedName, v))
}

// NormalizedNameGTE applies the GTE predicate on the "normalized_name" field.
func NormalizedNameGTE(v string) predicate.Concept {
	return predicate.Concept(sql.FieldGTE(FieldNormalizedName, v))
}

// NormalizedNameLT applies the LT predicate on the "normalized_name" field.
func NormalizedNameLT(v string) predicate.Concept {
	return predicate.Concept(sql.FieldLT(FieldNormalizedName, v))
}

// NormalizedNameLTE applies the LTE predicate on the "normalized_name" field.
func NormalizedNameLTE(v string) predicate.Concept {
	return predicate.Concept(sql.FieldLTE(FieldNormalizedName, v))
}

// NormalizedNameContains applies the Contains predicate on the "normalized_name" field.
func NormalizedNameContains(v string) predicate.Concept {
	return predicate.Concept(sql.FieldContains(FieldNormalizedName, v))
}

// NormalizedNameHasPrefix applies the HasPrefix predicate on the "normalized_name" field.
func NormalizedNameHasPrefix(v string) predicate.Concept {
	return predicate.Concept(sql.FieldHasPrefix(FieldNormalizedName, v))
}

// NormalizedNameHasSuffix applies the HasSuffix predicate on the "normalized_name" field.
func NormalizedNameHasSuffix(v string) predicate.Concept {
	return predicate.Concept(sql.FieldHasSuffix(FieldNormalizedName, v))
}

// NormalizedNameEqualFold applies the EqualFold predicate on the "normalized_name" field.
func NormalizedNameEqualFold(v string) predicate.Concept {
	return predicate.Concept(sql.FieldEqualFold(FieldNormalizedName, v))
}

// NormalizedNameContainsFold applies the ContainsFold predicate on the "normalized_name" field.
func NormalizedNameContainsFold(v string) predicate.Concept {
	return predicate.Concept(sql.FieldContainsFold(FieldNormalizedName, v))
}

// DescriptionEQ applies the EQ predicate on the "description" field.
func DescriptionEQ(v string) predicate.Concept {
	return predicate.Concept(sql.FieldEQ(FieldDescription, v))
}

// DescriptionNEQ applies the NEQ predicate on the "description" field.
func DescriptionNEQ(v string) predicate.Concept {
	return predicate.Concept(sql.FieldNEQ(FieldDescription, v))
}

// DescriptionIn applies the In predicate on the "description" field.
func DescriptionIn(vs ...string) predicate.Concept {
	return predicate.Concept(sql.FieldIn(FieldDescription, vs...))
}

// DescriptionNotIn applies the NotIn predicate on the "description" field.
func DescriptionNotIn(vs ...string) predicate.Concept {
	return predicate.Concept(sql.FieldNotIn(FieldDescription, vs...))
}

// DescriptionGT applies the GT predicate on the "description" field.
func DescriptionGT(v string) predicate.Concept {
	return predicate.Concept(sql.FieldGT(FieldDescription, v))
}

// DescriptionGTE applies the GTE predicate on the "description" field.
func DescriptionGTE(v string) predicate.Concept {
	return predicate.Concept(sql.FieldGTE(FieldDescription, v))
}

// DescriptionLT applies the LT predicate on the "description" field.
func DescriptionLT(v string) predicate.Concept {
	return predicate.Concept(sql.FieldLT(FieldDescription, v))
}

// DescriptionLTE applies the LTE predicate on the "description" field.
func DescriptionLTE(v string) predicate.Concept {
	return predicate.Concept(sql.FieldLTE(FieldDescription, v))
}

// DescriptionContains applies the Contains predicate on the "description" field.
func DescriptionContains(v string) predicate.Concept {
	return predicate.Concept(sql.FieldContains(FieldDescription, v))
}

// DescriptionHasPrefix applies the HasPrefix predicate on the "description" field.
func DescriptionHasPrefix(v string) predicate.Concept {
	return predicate.Concept(sql.FieldHasPrefix(FieldDescription, v))
}

// DescriptionHasSuffix applies the HasSuffix predicate on the "description" field.
func DescriptionHasSuffix(v string) predicate.Concept {
	return predicate.Concept(sql.FieldHasSuffix(FieldDescription, v))
}

// DescriptionEqualFold applies the EqualFold predicate on the "description" field.
func DescriptionEqualFold(v string) predicate.Concept {
	return predicate.Concept(sql.FieldEqualFold(FieldDescription, v))
}

// DescriptionContainsFold applies the ContainsFold predicate on the "description" field.
func DescriptionContainsFold(v string) predicate.Concept {
	return predicate.Concept(sql.FieldContainsFold(FieldDescription, v))
}

// KeyTermsIsNil applies the IsNil predicate on the "key_terms" field.
func KeyTermsIsNil() predicate.Concept {
	return predicate.Concept(sql.FieldIsNull(FieldKeyTerms))
}

// KeyTermsNotNil applies the NotNil predicate on the "key_terms" field.
func KeyTermsNotNil() predicate.Concept {
	return predicate.Concept(sql.FieldNotNull(FieldKeyTerms))
}

// ProficiencyEQ applies the EQ predicate on the "proficiency" field.
func ProficiencyEQ(v float64) predicate.Concept {
	return predicate.Concept(sql.FieldEQ(FieldProficiency, v))
}

// ProficiencyNEQ applies the NEQ predicate on the "proficiency" field.
func ProficiencyNEQ(v float64) predicate.Concept {
	return predicate.Concept(sql.FieldNEQ(FieldProficiency, v))
}

// ProficiencyIn applies the In predicate on the "proficiency" field.
func ProficiencyIn(vs ...float64) predicate.Concept {
	return predicate.Concept(sql.FieldIn(FieldProficiency, vs...))
}

// ProficiencyNotIn applies the NotIn predicate on the "proficiency" field.
func ProficiencyNotIn(vs ...float64) predicate.Concept {
	return predicate.Concept(sql.FieldNotIn(FieldProficiency, vs...))
}

// ProficiencyGT applies the GT predicate on the "proficiency" field.
func ProficiencyGT(v float64) predicate.Concept {
	return predicate.Concept(sql.FieldGT(FieldProficiency, v))
}

// ProficiencyGTE applies the GTE predicate on the "proficiency" field.
func ProficiencyGTE(v float64) predicate.Concept {
	return predicate.Concept(sql.FieldGTE(FieldProficiency, v))
}

// ProficiencyLT applies the LT predicate on the "proficiency" field.
func ProficiencyLT(v float64) predicate.Concept {
	return predicate.Concept(sql.FieldLT(FieldProficiency, v))
}

// ProficiencyLTE applies the LTE predicate on the "proficiency" field.
func ProficiencyLTE(v float64) predicate.Concept {
	return predicate.Concept(sql.FieldLTE(FieldProficiency, v))
}

// ConfidenceEQ applies the EQ predicate on the "confidence" field.
func ConfidenceEQ(v float64) predicate.Concept {
	return predicate.Concept(sql.FieldEQ(FieldConfidence, v))
}

// ConfidenceNEQ applies the NEQ predicate on the "confidence" field.
func ConfidenceNEQ(v float64) predicate.Concept {
	return predicate.Concept(sql.FieldNEQ(FieldConfidence, v))
}

// ConfidenceIn applies the In predicate on the "confidence" field.
func ConfidenceIn(vs ...float64) predicate.Concept {
	return predicate.Concept(sql.FieldIn(FieldConfidence, vs...))
}

// ConfidenceNotIn applies the NotIn predicate on the "confidence" field.
func ConfidenceNotIn(vs ...float64) predicate.Concept {
	return predicate.Concept(sql.FieldNotIn(FieldConfidence, vs...))
}

// ConfidenceGT applies the GT predicate on the "confidence" field.
func ConfidenceGT(v float64) predicate.Concept {
	return predicate.Concept(sql.FieldGT(FieldConfidence, v))
}

// ConfidenceGTE applies the GTE predicate on the "confidence" field.
func ConfidenceGTE(v float64) predicate.Concept {
	return predicate.Concept(sql.FieldGTE(FieldConfidence, v))
}

// ConfidenceLT applies the LT predicate on the "confidence" field.
func ConfidenceLT(v float64) predicate.Concept {
	return predicate.Concept(sql.FieldLT(FieldConfidence, v))
}

// ConfidenceLTE applies the LTE predicate on the "confidence" field.
func ConfidenceLTE(v float64) predicate.Concept {
	return predicate.Concept(sql.FieldLTE(FieldConfidence, v))
}

// EaseFactorEQ applies the EQ predicate on the "ease_factor" field.
func EaseFactorEQ(v float64) predicate.Concept {
	return predicate.Concept(sql.FieldEQ(FieldEaseFactor, v))
}

// EaseFactorNEQ applies the NEQ predicate on the "ease_factor" field.
func EaseFactorNEQ(v float64) predicate.Concept {
	return predicate.Concept(sql.FieldNEQ(FieldEaseFactor, v))
}

// EaseFactorIn applies the In predicate on the "ease_factor" field.
func EaseFactorIn(vs ...float64) predicate.Concept {
	return predicate.Concept(sql.FieldIn(FieldEaseFactor, vs...))
}

// EaseFactorNotIn applies the NotIn predicate on the "ease_factor" field.
func EaseFactorNotIn(vs ...float64) predicate.Concept {
	return predicate.Concept(sql.FieldNotIn(FieldEaseFactor, vs...))
}

// EaseFactorGT applies the GT predicate on the "ease_factor" field.
func EaseFactorGT(v float64) predicate.Concept {
	return predicate.Concept(sql.FieldGT(FieldEaseFactor, v))
}

// EaseFactorGTE applies the GTE predicate on the "ease_factor" field.
func EaseFactorGTE(v float64) predicate.Concept {
	return predicate.Concept(sql.FieldGTE(FieldEaseFactor, v))
}

// EaseFactorLT applies the LT predicate on the "ease_factor" field.
func EaseFactorLT(v float64) predicate.Concept {
	return predicate.Concept(sql.FieldLT(FieldEaseFactor, v))
}

// EaseFactorLTE applies the LTE predicate on the "ease_factor" field.
func EaseFactorLTE(v float64) predicate.Concept {
	return predicate.Concept(sql.FieldLTE(FieldEaseFactor, v))
}

// IntervalDaysEQ applies the EQ predicate on the "interval_days" field.
func IntervalDaysEQ(v int) predicate.Concept {
	return predicate.Concept(sql.FieldEQ(FieldIntervalDays, v))
}

// IntervalDaysNEQ applies the NEQ predicate on the "interval_days" field.
func IntervalDaysNEQ(v int) predicate.Concept {
	return predicate.Concept(sql.FieldNEQ(FieldIntervalDays, v))
}

// IntervalDaysIn applies the In predicate on the "interval_days" field.
func IntervalDaysIn(vs ...int) predicate.Concept {
	return predicate.Concept(sql.FieldIn(FieldIntervalDays, vs...))
}

// IntervalDaysNotIn applies the NotIn predicate on the "interval_days" field.
func IntervalDaysNotIn(vs ...int) predicate.Concept {
	return predicate.Concept(sql.FieldNotIn(FieldIntervalDays, vs...))
}

// IntervalDaysGT applies the GT predicate on the "interval_days" field.
func IntervalDaysGT(v int) predicate.Concept {
	return predicate.Concept(sql.FieldGT(FieldIntervalDays, v))
}

// IntervalDaysGTE applies the GTE predicate on the "interval_days" field.
func IntervalDaysGTE(v int) predicate.Concept {
	return predicate.Concept(sql.FieldGTE(FieldIntervalDays, v))
}

// IntervalDaysLT applies the LT predicate on the "interval_days" field.
func IntervalDaysLT(v int) predicate.Concept {
	return predicate.Concept(sql.FieldLT(FieldIntervalDays, v))
}

// IntervalDaysLTE applies the LTE predicate on the "interval_days" field.
func IntervalDaysLTE(v int) predicate.Concept {
	return predicate.Concept(sql.FieldLTE(FieldIntervalDays, v))
}

// RepetitionCountEQ applies the EQ predicate on the "repetition_count" field.
func RepetitionCountEQ(v int) predicate.Concept {
	return predicate.Concept(sql.FieldEQ(FieldRepetitionCount, v))
}

// RepetitionCountNEQ applies the NEQ predicate on the "repetition_count" field.
func RepetitionCountNEQ(v int) predicate.Concept {
	return predicate.Concept(sql.FieldNEQ(FieldRepetitionCount, v))
}

// RepetitionCountIn applies the In predicate on the "repetition_count" field.
func RepetitionCountIn(vs ...int) predicate.Concept {
	return predicate.Concept(sql.FieldIn(FieldRepetitionCount, vs...))
}

// RepetitionCountNotIn applies the NotIn predicate on the "repetition_count" field.
func RepetitionCountNotIn(vs ...int) predicate.Concept {
	return predicate.Concept(sql.FieldNotIn(FieldRepetitionCount, vs...))
}

// RepetitionCountGT applies the GT predicate on the "repetition_count" field.
func RepetitionCountGT(v int) predicate.Concept {
	return predicate.Concept(sql.FieldGT(FieldRepetitionCount, v))
}

// RepetitionCountGTE applies the GTE predicate on the "repetition_count" field.
func RepetitionCountGTE(v int) predicate.Concept {
	return predicate.Concept(sql.FieldGTE(FieldRepetitionCount, v))
}

// RepetitionCountLT applies the LT predicate on the "repetition_count" field.
func RepetitionCountLT(v int) predicate.Concept {
	return predicate.Concept(sql.FieldLT(FieldRepetitionCount, v))
}

// RepetitionCountLTE applies the LTE predicate on the "repetition_count" field.
func RepetitionCountLTE(v int) predicate.Concept {
	return predicate.Concept(sql.FieldLTE(FieldRepetitionCount, v))
}

// LastPracticedEQ applies the EQ predicate on the "last_practiced" field.
func LastPracticedEQ(v time.Time) predicate.Concept {
	return predicate.Concept(sql.FieldEQ(FieldLastPracticed, v))
}

// LastPracticedNEQ applies the NEQ predicate on the "last_practiced" field.
func LastPracticedNEQ(v time.Time) predicate.Concept {
	return predicate.Concept(sql.FieldNEQ(FieldLastPracticed, v))
}

// LastPracticedIn applies the In predicate on the "last_practiced" field.
func LastPracticedIn(vs ...time.Time) predicate.Concept {
	return predicate.Concept(sql.FieldIn(FieldLastPracticed, vs...))
}

// LastPracticedNotIn applies the NotIn predicate on the "last_practiced" field.
func LastPracticedNotIn(vs ...time.Time) predicate.Concept {
	return predicate.Concept(sql.FieldNotIn(FieldLastPracticed, vs...))
}

// LastPracticedGT applies the GT predicate on the "last_practiced" field.
func LastPracticedGT(v time.Time) predicate.Concept {
	return predicate.Concept(sql.FieldGT(FieldLastPracticed, v))
}

// LastPracticedGTE applies the GTE predicate on the "last_practiced" field.
func LastPracticedGTE(v time.Time) predicate.Concept {
	return predicate.Concept(sql.FieldGTE(FieldLastPracticed, v))
}

// LastPracticedLT applies the LT predicate on the "last_practiced" field.
func LastPracticedLT(v time.Time) predicate.Concept {
	return predicate.Concept(sql.FieldLT(FieldLastPracticed, v))
}

// LastPracticedLTE applies the LTE predicate on the "last_practiced" field.
func LastPracticedLTE(v time.Time) predicate.Concept {
	return predicate.Concept(sql.FieldLTE(FieldLastPracticed, v))
}

// LastPracticedIsNil applies the IsNil predicate on the "last_practiced" field.
func LastPracticedIsNil() predicate.Concept {
	return predicate.Concept(sql.FieldIsNull(FieldLastPracticed))
}

// LastPracticedNotNil applies the NotNil predicate on the "last_practiced" field.
func LastPracticedNotNil() predicate.Concept {
	return predicate.Concept(sql.FieldNotNull(FieldLastPracticed))
}

// NextDueEQ applies the EQ predicate on the "next_due" field.
func NextDueEQ(v time.Time) predicate.Concept {
	return predicate.Concept(sql.FieldEQ(FieldNextDue, v))
}

// NextDueNEQ applies the NEQ predicate on the "next_due" field.
func NextDueNEQ(v time.Time) predicate.Concept {
	return predicate.Concept(sql.FieldNEQ(FieldNextDue, v))
}

// NextDueIn applies the In predicate on the "next_due" field.
func NextDueIn(vs ...time.Time) predicate.Concept {
	return predicate.Concept(sql.FieldIn(FieldNextDue, vs...))
}

// NextDueNotIn applies the NotIn predicate on the "next_due" field.
func NextDueNotIn(vs ...time.Time) predicate.Concept {
	return predicate.Concept(sql.FieldNotIn(FieldNextDue, vs...))
}

// NextDueGT applies the GT predicate on the "next_due" field.
func NextDueGT(v time.Time) predicate.Concept {
	return predicate.Concept(sql.FieldGT(FieldNextDue, v))
}

// NextDueGTE applies the GTE predicate on the "next_due" field.
func NextDueGTE(v time.Time) predicate.Concept {
	return predicate.Concept(sql.FieldGTE(FieldNextDue, v))
}

// NextDueLT applies the LT predicate on the "next_due" field.
func NextDueLT(v time.Time) predicate.Concept {
	return predicate.Concept(sql.FieldLT(FieldNextDue, v))
}

// NextDueLTE applies the LTE predicate on the "next_due" field.
func NextDueLTE(v time.Time) predicate.Concept {
	return predicate.Concept(sql.FieldLTE(FieldNextDue, v))
}

// NextDueIsNil applies the IsNil predicate on the "next_due" field.
func NextDueIsNil() predicate.Concept {
	return predicate.Concept(sql.FieldIsNull(FieldNextDue))
}

// NextDueNotNil applies the NotNil predicate on the "next_due" field.
func NextDueNotNil() predicate.Concept {
	return predicate.Concept(sql.FieldNotNull(FieldNextDue))
}

// AttemptCountEQ applies the EQ predicate on the "attempt_count" field.
func AttemptCountEQ(v int) predicate.Concept {
	return predicate.Concept(sql.FieldEQ(FieldAttemptCount, v))
}

// AttemptCountNEQ applies the NEQ predicate on the "attempt_count" field.
func AttemptCountNEQ(v int) predicate.Concept {
	return predicate.Concept(sql.FieldNEQ(FieldAttemptCount, v))
}

// AttemptCountIn applies the In predicate on the "attempt_count" field.
func AttemptCountIn(vs ...int) predicate.Concept {
	return predicate.Concept(sql.FieldIn(FieldAttemptCount, vs...))
}

// AttemptCountNotIn applies the NotIn predicate on the "attempt_count" field.
func AttemptCountNotIn(vs ...int) predicate.Concept {
	return predicate.Concept(sql.FieldNotIn(FieldAttemptCount, vs...))
}

// AttemptCountGT applies the GT predicate on the "attempt_count" field.
func AttemptCountGT(v int) predicate.Concept {
	return predicate.Concept(sql.FieldGT(FieldAttemptCount, v))
}

// AttemptCountGTE applies the GTE predicate on the "attempt_count" field.
func AttemptCountGTE(v int) predicate.Concept {
	return predicate.Concept(sql.FieldGTE(FieldAttemptCount, v))
}

// AttemptCountLT applies the LT predicate on the "attempt_count" field.
func AttemptCountLT(v int) predicate.Concept {
	return predicate.Concept(sql.FieldLT(FieldAttemptCount, v))
}

// AttemptCountLTE applies the LTE predicate on the "attempt_count" field.
func AttemptCountLTE(v int) predicate.Concept {
	return predicate.Concept(sql.FieldLTE(FieldAttemptCount, v))
}

// DeprecatedEQ applies the EQ predicate on the "deprecated" field.
func DeprecatedEQ(v bool) predicate.Concept {
	return predicate.Concept(sql.FieldEQ(FieldDeprecated, v))
}

// DeprecatedNEQ applies the NEQ predicate on the "deprecated" field.
func DeprecatedNEQ(v bool) predicate.Concept {
	return predicate.Concept(sql.FieldNEQ(FieldDeprecated, v))
}

// ManuallyAdjustedEQ applies the EQ predicate on the "manually_adjusted" field.
func ManuallyAdjustedEQ(v bool) predicate.Concept {
	return predicate.Concept(sql.FieldEQ(FieldManuallyAdjusted, v))
}

// ManuallyAdjustedNEQ applies the NEQ predicate on the "manually_adjusted" field.
func ManuallyAdjustedNEQ(v bool) predicate.Concept {
	return predicate.Concept(sql.FieldNEQ(FieldManuallyAdjusted, v))
}

// SourceEQ applies the EQ predicate on the "source" field.
func SourceEQ(v Source) predicate.Concept {
	return predicate.Concept(sql.FieldEQ(FieldSource, v))
}

// SourceNEQ applies the NEQ predicate on the "source" field.
func SourceNEQ(v Source) predicate.Concept {
	return predicate.Concept(sql.FieldNEQ(FieldSource, v))
}

// SourceIn applies the In predicate on the "source" field.
func SourceIn(vs ...Source) predicate.Concept {
	return predicate.Concept(sql.FieldIn(FieldSource, vs...))
}

// SourceNotIn applies the NotIn predicate on the "source" field.
func SourceNotIn(vs ...Source) predicate.Concept {
	return predicate.Concept(sql.FieldNotIn(FieldSource, vs...))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.Concept {
	return predicate.Concept(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.Concept {
	return predicate.Concept(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.Concept {
	return predicate.Concept(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.Concept {
	return predicate.Concept(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.Concept {
	return predicate.Concept(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.Concept {
	return predicate.Concept(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.Concept {
	return predicate.Concept(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.Concept {
	return predicate.Concept(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.Concept {
	return predicate.Concept(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.Concept {
	return predicate.Concept(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.Concept {
	return predicate.Concept(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.Concept {
	return predicate.Concept(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.Concept {
	return predicate.Concept(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.Concept {
	return predicate.Concept(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.Concept {
	return predicate.Concept(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.Concept {
	return predicate.Concept(sql.FieldLTE(FieldUpdatedAt, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Concept) predicate.Concept {
	return predicate.Concept(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Concept) predicate.Concept {
	return predicate.Concept(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Concept) predicate.Concept {
	return predicate.Concept(sql.NotPredicates(p))
}
