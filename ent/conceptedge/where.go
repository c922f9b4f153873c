// Code generated by ent, DO NOT EDIT.

package conceptedge

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
	"github.com/praxislearn/praxis/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id uuid.UUID) predicate.ConceptEdge {
	return predicate.ConceptEdge(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id uuid.UUID) predicate.ConceptEdge {
	return predicate.ConceptEdge(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id uuid.UUID) predicate.ConceptEdge {
	return predicate.ConceptEdge(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...uuid.UUID) predicate.ConceptEdge {
	return predicate.ConceptEdge(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...uuid.UUID) predicate.ConceptEdge {
	return predicate.ConceptEdge(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id uuid.UUID) predicate.ConceptEdge {
	return predicate.ConceptEdge(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id uuid.UUID) predicate.ConceptEdge {
	return predicate.ConceptEdge(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id uuid.UUID) predicate.ConceptEdge {
	return predicate.ConceptEdge(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id uuid.UUID) predicate.ConceptEdge {
	return predicate.ConceptEdge(sql.FieldLTE(FieldID, id))
}

// GraphID applies equality check predicate on the "graph_id" field. It's identical to GraphIDEQ.
func GraphID(v uuid.UUID) predicate.ConceptEdge {
	return predicate.ConceptEdge(sql.FieldEQ(FieldGraphID, v))
}

// FromConceptID applies equality check predicate on the "from_concept_id" field. It's identical to FromConceptIDEQ.
func FromConceptID(v uuid.UUID) predicate.ConceptEdge {
	return predicate.ConceptEdge(sql.FieldEQ(FieldFromConceptID, v))
}

// ToConceptID applies equality check predicate on the "to_concept_id" field. It's identical to ToConceptIDEQ.
func ToConceptID(v uuid.UUID) predicate.ConceptEdge {
	return predicate.ConceptEdge(sql.FieldEQ(FieldToConceptID, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.ConceptEdge {
	return predicate.ConceptEdge(sql.FieldEQ(FieldCreatedAt, v))
}

// GraphIDEQ applies the EQ predicate on the "graph_id" field.
func GraphIDEQ(v uuid.UUID) predicate.ConceptEdge {
	return predicate.ConceptEdge(sql.FieldEQ(FieldGraphID, v))
}

// GraphIDNEQ applies the NEQ predicate on the "graph_id" field.
func GraphIDNEQ(v uuid.UUID) predicate.ConceptEdge {
	return predicate.ConceptEdge(sql.FieldNEQ(FieldGraphID, v))
}

// GraphIDIn applies the In predicate on the "graph_id" field.
func GraphIDIn(vs ...uuid.UUID) predicate.ConceptEdge {
	return predicate.ConceptEdge(sql.FieldIn(FieldGraphID, vs...))
}

// GraphIDNotIn applies the NotIn predicate on the "graph_id" field.
func GraphIDNotIn(vs ...uuid.UUID) predicate.ConceptEdge {
	return predicate.ConceptEdge(sql.FieldNotIn(FieldGraphID, vs...))
}

// GraphIDGT applies the GT predicate on the "graph_id" field.
func GraphIDGT(v uuid.UUID) predicate.ConceptEdge {
	return predicate.ConceptEdge(sql.FieldGT(FieldGraphID, v))
}

// GraphIDGTE applies the GTE predicate on the "graph_id" field.
func GraphIDGTE(v uuid.UUID) predicate.ConceptEdge {
	return predicate.ConceptEdge(sql.FieldGTE(FieldGraphID, v))
}

// GraphIDLT applies the LT predicate on the "graph_id" field.
func GraphIDLT(v uuid.UUID) predicate.ConceptEdge {
	return predicate.ConceptEdge(sql.FieldLT(FieldGraphID, v))
}

// GraphIDLTE applies the LTE predicate on the "graph_id" field.
func GraphIDLTE(v uuid.UUID) predicate.ConceptEdge {
	return predicate.ConceptEdge(sql.FieldLTE(FieldGraphID, v))
}

// FromConceptIDEQ applies the EQ predicate on the "from_concept_id" field.
func FromConceptIDEQ(v uuid.UUID) predicate.ConceptEdge {
	return predicate.ConceptEdge(sql.FieldEQ(FieldFromConceptID, v))
}

// FromConceptIDNEQ applies the NEQ predicate on the "from_concept_id" field.
func FromConceptIDNEQ(v uuid.UUID) predicate.ConceptEdge {
	return predicate.ConceptEdge(sql.FieldNEQ(FieldFromConceptID, v))
}

// FromConceptIDIn applies the In predicate on the "from_concept_id" field.
func FromConceptIDIn(vs ...uuid.UUID) predicate.ConceptEdge {
	return predicate.ConceptEdge(sql.FieldIn(FieldFromConceptID, vs...))
}

// FromConceptIDNotIn applies the NotIn predicate on the "from_concept_id" field.
func FromConceptIDNotIn(vs ...uuid.UUID) predicate.ConceptEdge {
	return predicate.ConceptEdge(sql.FieldNotIn(FieldFromConceptID, vs...))
}

// FromConceptIDGT applies the GT predicate on the "from_concept_id" field.
func FromConceptIDGT(v uuid.UUID) predicate.ConceptEdge {
	return predicate.ConceptEdge(sql.FieldGT(FieldFromConceptID, v))
}

// FromConceptIDGTE applies the GTE predicate on the "from_concept_id" field.
func FromConceptIDGTE(v uuid.UUID) predicate.ConceptEdge {
	return predicate.ConceptEdge(sql.FieldGTE(FieldFromConceptID, v))
}

// FromConceptIDLT applies the LT predicate on the "from_concept_id" field.
func FromConceptIDLT(v uuid.UUID) predicate.ConceptEdge {
	return predicate.ConceptEdge(sql.FieldLT(FieldFromConceptID, v))
}

// FromConceptIDLTE applies the LTE predicate on the "from_concept_id" field.
func FromConceptIDLTE(v uuid.UUID) predicate.ConceptEdge {
	return predicate.ConceptEdge(sql.FieldLTE(FieldFromConceptID, v))
}

// ToConceptIDEQ applies the EQ predicate on the "to_concept_id" field.
func ToConceptIDEQ(v uuid.UUID) predicate.ConceptEdge {
	return predicate.ConceptEdge(sql.FieldEQ(FieldToConceptID, v))
}

// ToConceptIDNEQ applies the NEQ predicate on the "to_concept_id" field.
func ToConceptIDNEQ(v uuid.UUID) predicate.ConceptEdge {
	return predicate.ConceptEdge(sql.FieldNEQ(FieldToConceptID, v))
}

// ToConceptIDIn applies the In predicate on the "to_concept_id" field.
func ToConceptIDIn(vs ...uuid.UUID) predicate.ConceptEdge {
	return predicate.ConceptEdge(sql.FieldIn(FieldToConceptID, vs...))
}

// ToConceptIDNotIn applies the NotIn predicate on the "to_concept_id" field.
func ToConceptIDNotIn(vs ...uuid.UUID) predicate.ConceptEdge {
	return predicate.ConceptEdge(sql.FieldNotIn(FieldToConceptID, vs...))
}

// ToConceptIDGT applies the GT predicate on the "to_concept_id" field.
func ToConceptIDGT(v uuid.UUID) predicate.ConceptEdge {
	return predicate.ConceptEdge(sql.FieldGT(FieldToConceptID, v))
}

// ToConceptIDGTE applies the GTE predicate on the "to_concept_id" field.
func ToConceptIDGTE(v uuid.UUID) predicate.ConceptEdge {
	return predicate.ConceptEdge(sql.FieldGTE(FieldToConceptID, v))
}

// ToConceptIDLT applies the LT predicate on the "to_concept_id" field.
func ToConceptIDLT(v uuid.UUID) predicate.ConceptEdge {
	return predicate.ConceptEdge(sql.FieldLT(FieldToConceptID, v))
}

// ToConceptIDLTE applies the LTE predicate on the "to_concept_id" field.
func ToConceptIDLTE(v uuid.UUID) predicate.ConceptEdge {
	return predicate.ConceptEdge(sql.FieldLTE(FieldToConceptID, v))
}

// EdgeTypeEQ applies the EQ predicate on the "edge_type" field.
func EdgeTypeEQ(v EdgeType) predicate.ConceptEdge {
	return predicate.ConceptEdge(sql.FieldEQ(FieldEdgeType, v))
}

// EdgeTypeNEQ applies the NEQ predicate on the "edge_type" field.
func EdgeTypeNEQ(v EdgeType) predicate.ConceptEdge {
	return predicate.ConceptEdge(sql.FieldNEQ(FieldEdgeType, v))
}

// EdgeTypeIn applies the In predicate on the "edge_type" field.
func EdgeTypeIn(vs ...EdgeType) predicate.ConceptEdge {
	return predicate.ConceptEdge(sql.FieldIn(FieldEdgeType, vs...))
}

// EdgeTypeNotIn applies the NotIn predicate on the "edge_type" field.
func EdgeTypeNotIn(vs ...EdgeType) predicate.ConceptEdge {
	return predicate.ConceptEdge(sql.FieldNotIn(FieldEdgeType, vs...))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.ConceptEdge {
	return predicate.ConceptEdge(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.ConceptEdge {
	return predicate.ConceptEdge(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.ConceptEdge {
	return predicate.ConceptEdge(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.ConceptEdge {
	return predicate.ConceptEdge(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.ConceptEdge {
	return predicate.ConceptEdge(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.ConceptEdge {
	return predicate.ConceptEdge(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.ConceptEdge {
	return predicate.ConceptEdge(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.ConceptEdge {
	return predicate.ConceptEdge(sql.FieldLTE(FieldCreatedAt, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.ConceptEdge) predicate.ConceptEdge {
	return predicate.ConceptEdge(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.ConceptEdge) predicate.ConceptEdge {
	return predicate.ConceptEdge(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.ConceptEdge) predicate.ConceptEdge {
	return predicate.ConceptEdge(sql.NotPredicates(p))
}
