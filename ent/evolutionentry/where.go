// Code generated by ent, DO NOT EDIT.

package evolutionentry

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/narraforge/narraforge/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.EvolutionEntry {
	return predicate.EvolutionEntry(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.EvolutionEntry {
	return predicate.EvolutionEntry(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.EvolutionEntry {
	return predicate.EvolutionEntry(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.EvolutionEntry {
	return predicate.EvolutionEntry(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.EvolutionEntry {
	return predicate.EvolutionEntry(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.EvolutionEntry {
	return predicate.EvolutionEntry(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.EvolutionEntry {
	return predicate.EvolutionEntry(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.EvolutionEntry {
	return predicate.EvolutionEntry(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.EvolutionEntry {
	return predicate.EvolutionEntry(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.EvolutionEntry {
	return predicate.EvolutionEntry(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.EvolutionEntry {
	return predicate.EvolutionEntry(sql.FieldContainsFold(FieldID, id))
}

// WorldID applies equality check predicate on the "world_id" field. It's identical to WorldIDEQ.
func WorldID(v string) predicate.EvolutionEntry {
	return predicate.EvolutionEntry(sql.FieldEQ(FieldWorldID, v))
}

// EntityID applies equality check predicate on the "entity_id" field. It's identical to EntityIDEQ.
func EntityID(v string) predicate.EvolutionEntry {
	return predicate.EvolutionEntry(sql.FieldEQ(FieldEntityID, v))
}

// ChangeType applies equality check predicate on the "change_type" field. It's identical to ChangeTypeEQ.
func ChangeType(v string) predicate.EvolutionEntry {
	return predicate.EvolutionEntry(sql.FieldEQ(FieldChangeType, v))
}

// TriggerEventID applies equality check predicate on the "trigger_event_id" field. It's identical to TriggerEventIDEQ.
func TriggerEventID(v string) predicate.EvolutionEntry {
	return predicate.EvolutionEntry(sql.FieldEQ(FieldTriggerEventID, v))
}

// Significance applies equality check predicate on the "significance" field. It's identical to SignificanceEQ.
func Significance(v float64) predicate.EvolutionEntry {
	return predicate.EvolutionEntry(sql.FieldEQ(FieldSignificance, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.EvolutionEntry {
	return predicate.EvolutionEntry(sql.FieldEQ(FieldCreatedAt, v))
}

// WorldIDEQ applies the EQ predicate on the "world_id" field.
func WorldIDEQ(v string) predicate.EvolutionEntry {
	return predicate.EvolutionEntry(sql.FieldEQ(FieldWorldID, v))
}

// WorldIDNEQ applies the NEQ predicate on the "world_id" field.
func WorldIDNEQ(v string) predicate.EvolutionEntry {
	return predicate.EvolutionEntry(sql.FieldNEQ(FieldWorldID, v))
}

// WorldIDIn applies the In predicate on the "world_id" field.
func WorldIDIn(vs ...string) predicate.EvolutionEntry {
	return predicate.EvolutionEntry(sql.FieldIn(FieldWorldID, vs...))
}

// WorldIDNotIn applies the NotIn predicate on the "world_id" field.
func WorldIDNotIn(vs ...string) predicate.EvolutionEntry {
	return predicate.EvolutionEntry(sql.FieldNotIn(FieldWorldID, vs...))
}

// WorldIDGT applies the GT predicate on the "world_id" field.
func WorldIDGT(v string) predicate.EvolutionEntry {
	return predicate.EvolutionEntry(sql.FieldGT(FieldWorldID, v))
}

// WorldIDGTE applies the GTE predicate on the "world_id" field.
func WorldIDGTE(v string) predicate.EvolutionEntry {
	return predicate.EvolutionEntry(sql.FieldGTE(FieldWorldID, v))
}

// WorldIDLT applies the LT predicate on the "world_id" field.
func WorldIDLT(v string) predicate.EvolutionEntry {
	return predicate.EvolutionEntry(sql.FieldLT(FieldWorldID, v))
}

// WorldIDLTE applies the LTE predicate on the "world_id" field.
func WorldIDLTE(v string) predicate.EvolutionEntry {
	return predicate.EvolutionEntry(sql.FieldLTE(FieldWorldID, v))
}

// WorldIDContains applies the Contains predicate on the "world_id" field.
func WorldIDContains(v string) predicate.EvolutionEntry {
	return predicate.EvolutionEntry(sql.FieldContains(FieldWorldID, v))
}

// WorldIDHasPrefix applies the HasPrefix predicate on the "world_id" field.
func WorldIDHasPrefix(v string) predicate.EvolutionEntry {
	return predicate.EvolutionEntry(sql.FieldHasPrefix(FieldWorldID, v))
}

// WorldIDHasSuffix applies the HasSuffix predicate on the "world_id" field.
func WorldIDHasSuffix(v string) predicate.EvolutionEntry {
	return predicate.EvolutionEntry(sql.FieldHasSuffix(FieldWorldID, v))
}

// WorldIDEqualFold applies the EqualFold predicate on the "world_id" field.
func WorldIDEqualFold(v string) predicate.EvolutionEntry {
	return predicate.EvolutionEntry(sql.FieldEqualFold(FieldWorldID, v))
}

// WorldIDContainsFold applies the ContainsFold predicate on the "world_id" field.
func WorldIDContainsFold(v string) predicate.EvolutionEntry {
	return predicate.EvolutionEntry(sql.FieldContainsFold(FieldWorldID, v))
}

// EntityIDEQ applies the EQ predicate on the "entity_id" field.
func EntityIDEQ(v string) predicate.EvolutionEntry {
	return predicate.EvolutionEntry(sql.FieldEQ(FieldEntityID, v))
}

// EntityIDNEQ applies the NEQ predicate on the "entity_id" field.
func EntityIDNEQ(v string) predicate.EvolutionEntry {
	return predicate.EvolutionEntry(sql.FieldNEQ(FieldEntityID, v))
}

// EntityIDIn applies the In predicate on the "entity_id" field.
func EntityIDIn(vs ...string) predicate.EvolutionEntry {
	return predicate.EvolutionEntry(sql.FieldIn(FieldEntityID, vs...))
}

// EntityIDNotIn applies the NotIn predicate on the "entity_id" field.
func EntityIDNotIn(vs ...string) predicate.EvolutionEntry {
	return predicate.EvolutionEntry(sql.FieldNotIn(FieldEntityID, vs...))
}

// EntityIDGT applies the GT predicate on the "entity_id" field.
func EntityIDGT(v string) predicate.EvolutionEntry {
	return predicate.EvolutionEntry(sql.FieldGT(FieldEntityID, v))
}

// EntityIDGTE applies the GTE predicate on the "entity_id" field.
func EntityIDGTE(v string) predicate.EvolutionEntry {
	return predicate.EvolutionEntry(sql.FieldGTE(FieldEntityID, v))
}

// EntityIDLT applies the LT predicate on the "entity_id" field.
func EntityIDLT(v string) predicate.EvolutionEntry {
	return predicate.EvolutionEntry(sql.FieldLT(FieldEntityID, v))
}

// EntityIDLTE applies the LTE predicate on the "entity_id" field.
func EntityIDLTE(v string) predicate.EvolutionEntry {
	return predicate.EvolutionEntry(sql.FieldLTE(FieldEntityID, v))
}

// EntityIDContains applies the Contains predicate on the "entity_id" field.
func EntityIDContains(v string) predicate.EvolutionEntry {
	return predicate.EvolutionEntry(sql.FieldContains(FieldEntityID, v))
}

// EntityIDHasPrefix applies the HasPrefix predicate on the "entity_id" field.
func EntityIDHasPrefix(v string) predicate.EvolutionEntry {
	return predicate.EvolutionEntry(sql.FieldHasPrefix(FieldEntityID, v))
}

// EntityIDHasSuffix applies the HasSuffix predicate on the "entity_id" field.
func EntityIDHasSuffix(v string) predicate.EvolutionEntry {
	return predicate.EvolutionEntry(sql.FieldHasSuffix(FieldEntityID, v))
}

// EntityIDEqualFold applies the EqualFold predicate on the "entity_id" field.
func EntityIDEqualFold(v string) predicate.EvolutionEntry {
	return predicate.EvolutionEntry(sql.FieldEqualFold(FieldEntityID, v))
}

// EntityIDContainsFold applies the ContainsFold predicate on the "entity_id" field.
func EntityIDContainsFold(v string) predicate.EvolutionEntry {
	return predicate.EvolutionEntry(sql.FieldContainsFold(FieldEntityID, v))
}

// EntityTypeEQ applies the EQ predicate on the "entity_type" field.
func EntityTypeEQ(v EntityType) predicate.EvolutionEntry {
	return predicate.EvolutionEntry(sql.FieldEQ(FieldEntityType, v))
}

// EntityTypeNEQ applies the NEQ predicate on the "entity_type" field.
func EntityTypeNEQ(v EntityType) predicate.EvolutionEntry {
	return predicate.EvolutionEntry(sql.FieldNEQ(FieldEntityType, v))
}

// EntityTypeIn applies the In predicate on the "entity_type" field.
func EntityTypeIn(vs ...EntityType) predicate.EvolutionEntry {
	return predicate.EvolutionEntry(sql.FieldIn(FieldEntityType, vs...))
}

// EntityTypeNotIn applies the NotIn predicate on the "entity_type" field.
func EntityTypeNotIn(vs ...EntityType) predicate.EvolutionEntry {
	return predicate.EvolutionEntry(sql.FieldNotIn(FieldEntityType, vs...))
}

// ChangeTypeEQ applies the EQ predicate on the "change_type" field.
func ChangeTypeEQ(v string) predicate.EvolutionEntry {
	return predicate.EvolutionEntry(sql.FieldEQ(FieldChangeType, v))
}

// ChangeTypeNEQ applies the NEQ predicate on the "change_type" field.
func ChangeTypeNEQ(v string) predicate.EvolutionEntry {
	return predicate.EvolutionEntry(sql.FieldNEQ(FieldChangeType, v))
}

// ChangeTypeIn applies the In predicate on the "change_type" field.
func ChangeTypeIn(vs ...string) predicate.EvolutionEntry {
	return predicate.EvolutionEntry(sql.FieldIn(FieldChangeType, vs...))
}

// ChangeTypeNotIn applies the NotIn predicate on the "change_type" field.
func ChangeTypeNotIn(vs ...string) predicate.EvolutionEntry {
	return predicate.EvolutionEntry(sql.FieldNotIn(FieldChangeType, vs...))
}

// ChangeTypeGT applies the GT predicate on the "change_type" field.
func ChangeTypeGT(v string) predicate.EvolutionEntry {
	return predicate.EvolutionEntry(sql.FieldGT(FieldChangeType, v))
}

// ChangeTypeGTE applies the GTE predicate on the "change_type" field.
func ChangeTypeGTE(v string) predicate.EvolutionEntry {
	return predicate.EvolutionEntry(sql.FieldGTE(FieldChangeType, v))
}

// ChangeTypeLT applies the LT predicate on the "change_type" field.
func ChangeTypeLT(v string) predicate.EvolutionEntry {
	return predicate.EvolutionEntry(sql.FieldLT(FieldChangeType, v))
}

// ChangeTypeLTE applies the LTE predicate on the "change_type" field.
func ChangeTypeLTE(v string) predicate.EvolutionEntry {
	return predicate.EvolutionEntry(sql.FieldLTE(FieldChangeType, v))
}

// ChangeTypeContains applies the Contains predicate on the "change_type" field.
func ChangeTypeContains(v string) predicate.EvolutionEntry {
	return predicate.EvolutionEntry(sql.FieldContains(FieldChangeType, v))
}

// ChangeTypeHasPrefix applies the HasPrefix predicate on the "change_type" field.
func ChangeTypeHasPrefix(v string) predicate.EvolutionEntry {
	return predicate.EvolutionEntry(sql.FieldHasPrefix(FieldChangeType, v))
}

// ChangeTypeHasSuffix applies the HasSuffix predicate on the "change_type" field.
func ChangeTypeHasSuffix(v string) predicate.EvolutionEntry {
	return predicate.EvolutionEntry(sql.FieldHasSuffix(FieldChangeType, v))
}

// ChangeTypeEqualFold applies the EqualFold predicate on the "change_type" field.
func ChangeTypeEqualFold(v string) predicate.EvolutionEntry {
	return predicate.EvolutionEntry(sql.FieldEqualFold(FieldChangeType, v))
}

// ChangeTypeContainsFold applies the ContainsFold predicate on the "change_type" field.
func ChangeTypeContainsFold(v string) predicate.EvolutionEntry {
	return predicate.EvolutionEntry(sql.FieldContainsFold(FieldChangeType, v))
}

// TriggerEventIDEQ applies the EQ predicate on the "trigger_event_id" field.
func TriggerEventIDEQ(v string) predicate.EvolutionEntry {
	return predicate.EvolutionEntry(sql.FieldEQ(FieldTriggerEventID, v))
}

// TriggerEventIDNEQ applies the NEQ predicate on the "trigger_event_id" field.
func TriggerEventIDNEQ(v string) predicate.EvolutionEntry {
	return predicate.EvolutionEntry(sql.FieldNEQ(FieldTriggerEventID, v))
}

// TriggerEventIDIn applies the In predicate on the "trigger_event_id" field.
func TriggerEventIDIn(vs ...string) predicate.EvolutionEntry {
	return predicate.EvolutionEntry(sql.FieldIn(FieldTriggerEventID, vs...))
}

// TriggerEventIDNotIn applies the NotIn predicate on the "trigger_event_id" field.
func TriggerEventIDNotIn(vs ...string) predicate.EvolutionEntry {
	return predicate.EvolutionEntry(sql.FieldNotIn(FieldTriggerEventID, vs...))
}

// TriggerEventIDGT applies the GT predicate on the "trigger_event_id" field.
func TriggerEventIDGT(v string) predicate.EvolutionEntry {
	return predicate.EvolutionEntry(sql.FieldGT(FieldTriggerEventID, v))
}

// TriggerEventIDGTE applies the GTE predicate on the "trigger_event_id" field.
func TriggerEventIDGTE(v string) predicate.EvolutionEntry {
	return predicate.EvolutionEntry(sql.FieldGTE(FieldTriggerEventID, v))
}

// TriggerEventIDLT applies the LT predicate on the "trigger_event_id" field.
func TriggerEventIDLT(v string) predicate.EvolutionEntry {
	return predicate.EvolutionEntry(sql.FieldLT(FieldTriggerEventID, v))
}

// TriggerEventIDLTE applies the LTE predicate on the "trigger_event_id" field.
func TriggerEventIDLTE(v string) predicate.EvolutionEntry {
	return predicate.EvolutionEntry(sql.FieldLTE(FieldTriggerEventID, v))
}

// TriggerEventIDContains applies the Contains predicate on the "trigger_event_id" field.
func TriggerEventIDContains(v string) predicate.EvolutionEntry {
	return predicate.EvolutionEntry(sql.FieldContains(FieldTriggerEventID, v))
}

// TriggerEventIDHasPrefix applies the HasPrefix predicate on the "trigger_event_id" field.
func TriggerEventIDHasPrefix(v string) predicate.EvolutionEntry {
	return predicate.EvolutionEntry(sql.FieldHasPrefix(FieldTriggerEventID, v))
}

// TriggerEventIDHasSuffix applies the HasSuffix predicate on the "trigger_event_id" field.
func TriggerEventIDHasSuffix(v string) predicate.EvolutionEntry {
	return predicate.EvolutionEntry(sql.FieldHasSuffix(FieldTriggerEventID, v))
}

// TriggerEventIDEqualFold applies the EqualFold predicate on the "trigger_event_id" field.
func TriggerEventIDEqualFold(v string) predicate.EvolutionEntry {
	return predicate.EvolutionEntry(sql.FieldEqualFold(FieldTriggerEventID, v))
}

// TriggerEventIDContainsFold applies the ContainsFold predicate on the "trigger_event_id" field.
func TriggerEventIDContainsFold(v string) predicate.EvolutionEntry {
	return predicate.EvolutionEntry(sql.FieldContainsFold(FieldTriggerEventID, v))
}

// SignificanceEQ applies the EQ predicate on the "significance" field.
func SignificanceEQ(v float64) predicate.EvolutionEntry {
	return predicate.EvolutionEntry(sql.FieldEQ(FieldSignificance, v))
}

// SignificanceNEQ applies the NEQ predicate on the "significance" field.
func SignificanceNEQ(v float64) predicate.EvolutionEntry {
	return predicate.EvolutionEntry(sql.FieldNEQ(FieldSignificance, v))
}

// SignificanceIn applies the In predicate on the "significance" field.
func SignificanceIn(vs ...float64) predicate.EvolutionEntry {
	return predicate.EvolutionEntry(sql.FieldIn(FieldSignificance, vs...))
}

// SignificanceNotIn applies the NotIn predicate on the "significance" field.
func SignificanceNotIn(vs ...float64) predicate.EvolutionEntry {
	return predicate.EvolutionEntry(sql.FieldNotIn(FieldSignificance, vs...))
}

// SignificanceGT applies the GT predicate on the "significance" field.
func SignificanceGT(v float64) predicate.EvolutionEntry {
	return predicate.EvolutionEntry(sql.FieldGT(FieldSignificance, v))
}

// SignificanceGTE applies the GTE predicate on the "significance" field.
func SignificanceGTE(v float64) predicate.EvolutionEntry {
	return predicate.EvolutionEntry(sql.FieldGTE(FieldSignificance, v))
}

// SignificanceLT applies the LT predicate on the "significance" field.
func SignificanceLT(v float64) predicate.EvolutionEntry {
	return predicate.EvolutionEntry(sql.FieldLT(FieldSignificance, v))
}

// SignificanceLTE applies the LTE predicate on the "significance" field.
func SignificanceLTE(v float64) predicate.EvolutionEntry {
	return predicate.EvolutionEntry(sql.FieldLTE(FieldSignificance, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.EvolutionEntry {
	return predicate.EvolutionEntry(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.EvolutionEntry {
	return predicate.EvolutionEntry(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.EvolutionEntry {
	return predicate.EvolutionEntry(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.EvolutionEntry {
	return predicate.EvolutionEntry(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.EvolutionEntry {
	return predicate.EvolutionEntry(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.EvolutionEntry {
	return predicate.EvolutionEntry(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.EvolutionEntry {
	return predicate.EvolutionEntry(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.EvolutionEntry {
	return predicate.EvolutionEntry(sql.FieldLTE(FieldCreatedAt, v))
}

// HasWorld applies the HasEdge predicate on the "world" edge.
func HasWorld() predicate.EvolutionEntry {
	return predicate.EvolutionEntry(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, WorldTable, WorldColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasWorldWith applies the HasEdge predicate on the "world" edge with a given conditions (other predicates).
func HasWorldWith(preds ...predicate.World) predicate.EvolutionEntry {
	return predicate.EvolutionEntry(func(s *sql.Selector) {
		step := newWorldStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.EvolutionEntry) predicate.EvolutionEntry {
	return predicate.EvolutionEntry(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.EvolutionEntry) predicate.EvolutionEntry {
	return predicate.EvolutionEntry(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.EvolutionEntry) predicate.EvolutionEntry {
	return predicate.EvolutionEntry(sql.NotPredicates(p))
}
