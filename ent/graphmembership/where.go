// Code generated by ent, DO NOT EDIT.

package graphmembership

import (
	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
	"github.com/praxislearn/praxis/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id uuid.UUID) predicate.GraphMembership {
	return predicate.GraphMembership(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id uuid.UUID) predicate.GraphMembership {
	return predicate.GraphMembership(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id uuid.UUID) predicate.GraphMembership {
	return predicate.GraphMembership(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...uuid.UUID) predicate.GraphMembership {
	return predicate.GraphMembership(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...uuid.UUID) predicate.GraphMembership {
	return predicate.GraphMembership(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id uuid.UUID) predicate.GraphMembership {
	return predicate.GraphMembership(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id uuid.UUID) predicate.GraphMembership {
	return predicate.GraphMembership(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id uuid.UUID) predicate.GraphMembership {
	return predicate.GraphMembership(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id uuid.UUID) predicate.GraphMembership {
	return predicate.GraphMembership(sql.FieldLTE(FieldID, id))
}

// GraphID applies equality check predicate on the "graph_id" field. It's identical to GraphIDEQ.
func GraphID(v uuid.UUID) predicate.GraphMembership {
	return predicate.GraphMembership(sql.FieldEQ(FieldGraphID, v))
}

// ConceptID applies equality check predicate on the "concept_id" field. It's identical to ConceptIDEQ.
func ConceptID(v uuid.UUID) predicate.GraphMembership {
	return predicate.GraphMembership(sql.FieldEQ(FieldConceptID, v))
}

// PosX applies equality check predicate on the "pos_x" field. It's identical to PosXEQ.
func PosX(v float64) predicate.GraphMembership {
	return predicate.GraphMembership(sql.FieldEQ(FieldPosX, v))
}

// PosY applies equality check predicate on the "pos_y" field. It's identical to PosYEQ.
func PosY(v float64) predicate.GraphMembership {
	return predicate.GraphMembership(sql.FieldEQ(FieldPosY, v))
}

// DepthTier applies equality check predicate on the "depth_tier" field. It's identical to DepthTierEQ.
func DepthTier(v int) predicate.GraphMembership {
	return predicate.GraphMembership(sql.FieldEQ(FieldDepthTier, v))
}

// GraphIDEQ applies the EQ predicate on the "graph_id" field.
func GraphIDEQ(v uuid.UUID) predicate.GraphMembership {
	return predicate.GraphMembership(sql.FieldEQ(FieldGraphID, v))
}

// GraphIDNEQ applies the NEQ predicate on the "graph_id" field.
func GraphIDNEQ(v uuid.UUID) predicate.GraphMembership {
	return predicate.GraphMembership(sql.FieldNEQ(FieldGraphID, v))
}

// GraphIDIn applies the In predicate on the "graph_id" field.
func GraphIDIn(vs ...uuid.UUID) predicate.GraphMembership {
	return predicate.GraphMembership(sql.FieldIn(FieldGraphID, vs...))
}

// GraphIDNotIn applies the NotIn predicate on the "graph_id" field.
func GraphIDNotIn(vs ...uuid.UUID) predicate.GraphMembership {
	return predicate.GraphMembership(sql.FieldNotIn(FieldGraphID, vs...))
}

// GraphIDGT applies the GT predicate on the "graph_id" field.
func GraphIDGT(v uuid.UUID) predicate.GraphMembership {
	return predicate.GraphMembership(sql.FieldGT(FieldGraphID, v))
}

// GraphIDGTE applies the GTE predicate on the "graph_id" field.
func GraphIDGTE(v uuid.UUID) predicate.GraphMembership {
	return predicate.GraphMembership(sql.FieldGTE(FieldGraphID, v))
}

// GraphIDLT applies the LT predicate on the "graph_id" field.
func GraphIDLT(v uuid.UUID) predicate.GraphMembership {
	return predicate.GraphMembership(sql.FieldLT(FieldGraphID, v))
}

// GraphIDLTE applies the LTE predicate on the "graph_id" field.
func GraphIDLTE(v uuid.UUID) predicate.GraphMembership {
	return predicate.GraphMembership(sql.FieldLTE(FieldGraphID, v))
}

// ConceptIDEQ applies the EQ predicate on the "concept_id" field.
func ConceptIDEQ(v uuid.UUID) predicate.GraphMembership {
	return predicate.GraphMembership(sql.FieldEQ(FieldConceptID, v))
}

// ConceptIDNEQ applies the NEQ predicate on the "concept_id" field.
func ConceptIDNEQ(v uuid.UUID) predicate.GraphMembership {
	return predicate.GraphMembership(sql.FieldNEQ(FieldConceptID, v))
}

// ConceptIDIn applies the In predicate on the "concept_id" field.
func ConceptIDIn(vs ...uuid.UUID) predicate.GraphMembership {
	return predicate.GraphMembership(sql.FieldIn(FieldConceptID, vs...))
}

// ConceptIDNotIn applies the NotIn predicate on the "concept_id" field.
func ConceptIDNotIn(vs ...uuid.UUID) predicate.GraphMembership {
	return predicate.GraphMembership(sql.FieldNotIn(FieldConceptID, vs...))
}

// ConceptIDGT applies the GT predicate on the "concept_id" field.
func ConceptIDGT(v uuid.UUID) predicate.GraphMembership {
	return predicate.GraphMembership(sql.FieldGT(FieldConceptID, v))
}

// ConceptIDGTE applies the GTE predicate on the "concept_id" field.
func ConceptIDGTE(v uuid.UUID) predicate.GraphMembership {
	return predicate.GraphMembership(sql.FieldGTE(FieldConceptID, v))
}

// ConceptIDLT applies the LT predicate on the "concept_id" field.
func ConceptIDLT(v uuid.UUID) predicate.GraphMembership {
	return predicate.GraphMembership(sql.FieldLT(FieldConceptID, v))
}

// ConceptIDLTE applies the LTE predicate on the "concept_id" field.
func ConceptIDLTE(v uuid.UUID) predicate.GraphMembership {
	return predicate.GraphMembership(sql.FieldLTE(FieldConceptID, v))
}

// PosXEQ applies the EQ predicate on the "pos_x" field.
func PosXEQ(v float64) predicate.GraphMembership {
	return predicate.GraphMembership(sql.FieldEQ(FieldPosX, v))
}

// PosXNEQ applies the NEQ predicate on the "pos_x" field.
func PosXNEQ(v float64) predicate.GraphMembership {
	return predicate.GraphMembership(sql.FieldNEQ(FieldPosX, v))
}

// PosXIn applies the In predicate on the "pos_x" field.
func PosXIn(vs ...float64) predicate.GraphMembership {
	return predicate.GraphMembership(sql.FieldIn(FieldPosX, vs...))
}

// PosXNotIn applies the NotIn predicate on the "pos_x" field.
func PosXNotIn(vs ...float64) predicate.GraphMembership {
	return predicate.GraphMembership(sql.FieldNotIn(FieldPosX, vs...))
}

// PosXGT applies the GT predicate on the "pos_x" field.
func PosXGT(v float64) predicate.GraphMembership {
	return predicate.GraphMembership(sql.FieldGT(FieldPosX, v))
}

// PosXGTE applies the GTE predicate on the "pos_x" field.
func PosXGTE(v float64) predicate.GraphMembership {
	return predicate.GraphMembership(sql.FieldGTE(FieldPosX, v))
}

// PosXLT applies the LT predicate on the "pos_x" field.
func PosXLT(v float64) predicate.GraphMembership {
	return predicate.GraphMembership(sql.FieldLT(FieldPosX, v))
}

// PosXLTE applies the LTE predicate on the "pos_x" field.
func PosXLTE(v float64) predicate.GraphMembership {
	return predicate.GraphMembership(sql.FieldLTE(FieldPosX, v))
}

// PosYEQ applies the EQ predicate on the "pos_y" field.
func PosYEQ(v float64) predicate.GraphMembership {
	return predicate.GraphMembership(sql.FieldEQ(FieldPosY, v))
}

// PosYNEQ applies the NEQ predicate on the "pos_y" field.
func PosYNEQ(v float64) predicate.GraphMembership {
	return predicate.GraphMembership(sql.FieldNEQ(FieldPosY, v))
}

// PosYIn applies the In predicate on the "pos_y" field.
func PosYIn(vs ...float64) predicate.GraphMembership {
	return predicate.GraphMembership(sql.FieldIn(FieldPosY, vs...))
}

// PosYNotIn applies the NotIn predicate on the "pos_y" field.
func PosYNotIn(vs ...float64) predicate.GraphMembership {
	return predicate.GraphMembership(sql.FieldNotIn(FieldPosY, vs...))
}

// PosYGT applies the GT predicate on the "pos_y" field.
func PosYGT(v float64) predicate.GraphMembership {
	return predicate.GraphMembership(sql.FieldGT(FieldPosY, v))
}

// PosYGTE applies the GTE predicate on the "pos_y" field.
func PosYGTE(v float64) predicate.GraphMembership {
	return predicate.GraphMembership(sql.FieldGTE(FieldPosY, v))
}

// PosYLT applies the LT predicate on the "pos_y" field.
func PosYLT(v float64) predicate.GraphMembership {
	return predicate.GraphMembership(sql.FieldLT(FieldPosY, v))
}

// PosYLTE applies the LTE predicate on the "pos_y" field.
func PosYLTE(v float64) predicate.GraphMembership {
	return predicate.GraphMembership(sql.FieldLTE(FieldPosY, v))
}

// DepthTierEQ applies the EQ predicate on the "depth_tier" field.
func DepthTierEQ(v int) predicate.GraphMembership {
	return predicate.GraphMembership(sql.FieldEQ(FieldDepthTier, v))
}

// DepthTierNEQ applies the NEQ predicate on the "depth_tier" field.
func DepthTierNEQ(v int) predicate.GraphMembership {
	return predicate.GraphMembership(sql.FieldNEQ(FieldDepthTier, v))
}

// DepthTierIn applies the In predicate on the "depth_tier" field.
func DepthTierIn(vs ...int) predicate.GraphMembership {
	return predicate.GraphMembership(sql.FieldIn(FieldDepthTier, vs...))
}

// DepthTierNotIn applies the NotIn predicate on the "depth_tier" field.
func DepthTierNotIn(vs ...int) predicate.GraphMembership {
	return predicate.GraphMembership(sql.FieldNotIn(FieldDepthTier, vs...))
}

// DepthTierGT applies the GT predicate on the "depth_tier" field.
func DepthTierGT(v int) predicate.GraphMembership {
	return predicate.GraphMembership(sql.FieldGT(FieldDepthTier, v))
}

// DepthTierGTE applies the GTE predicate on the "depth_tier" field.
func DepthTierGTE(v int) predicate.GraphMembership {
	return predicate.GraphMembership(sql.FieldGTE(FieldDepthTier, v))
}

// DepthTierLT applies the LT predicate on the "depth_tier" field.
func DepthTierLT(v int) predicate.GraphMembership {
	return predicate.GraphMembership(sql.FieldLT(FieldDepthTier, v))
}

// DepthTierLTE applies the LTE predicate on the "depth_tier" field.
func DepthTierLTE(v int) predicate.GraphMembership {
	return predicate.GraphMembership(sql.FieldLTE(FieldDepthTier, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.GraphMembership) predicate.GraphMembership {
	return predicate.GraphMembership(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.GraphMembership) predicate.GraphMembership {
	return predicate.GraphMembership(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.GraphMembership) predicate.GraphMembership {
	return predicate.GraphMembership(sql.NotPredicates(p))
}
