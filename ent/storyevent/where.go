// Code generated by ent, DO NOT EDIT.

package storyevent

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/narraforge/narraforge/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.StoryEvent {
	return predicate.StoryEvent(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.StoryEvent {
	return predicate.StoryEvent(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.StoryEvent {
	return predicate.StoryEvent(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.StoryEvent {
	return predicate.StoryEvent(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.StoryEvent {
	return predicate.StoryEvent(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.StoryEvent {
	return predicate.StoryEvent(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.StoryEvent {
	return predicate.StoryEvent(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.StoryEvent {
	return predicate.StoryEvent(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.StoryEvent {
	return predicate.StoryEvent(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.StoryEvent {
	return predicate.StoryEvent(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.StoryEvent {
	return predicate.StoryEvent(sql.FieldContainsFold(FieldID, id))
}

// WorldID applies equality check predicate on the "world_id" field. It's identical to WorldIDEQ.
func WorldID(v string) predicate.StoryEvent {
	return predicate.StoryEvent(sql.FieldEQ(FieldWorldID, v))
}

// Location applies equality check predicate on the "location" field. It's identical to LocationEQ.
func Location(v string) predicate.StoryEvent {
	return predicate.StoryEvent(sql.FieldEQ(FieldLocation, v))
}

// Description applies equality check predicate on the "description" field. It's identical to DescriptionEQ.
func Description(v string) predicate.StoryEvent {
	return predicate.StoryEvent(sql.FieldEQ(FieldDescription, v))
}

// StoryTime applies equality check predicate on the "story_time" field. It's identical to StoryTimeEQ.
func StoryTime(v int) predicate.StoryEvent {
	return predicate.StoryEvent(sql.FieldEQ(FieldStoryTime, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.StoryEvent {
	return predicate.StoryEvent(sql.FieldEQ(FieldCreatedAt, v))
}

// WorldIDEQ applies the EQ predicate on the "world_id" field.
func WorldIDEQ(v string) predicate.StoryEvent {
	return predicate.StoryEvent(sql.FieldEQ(FieldWorldID, v))
}

// WorldIDNEQ applies the NEQ predicate on the "world_id" field.
func WorldIDNEQ(v string) predicate.StoryEvent {
	return predicate.StoryEvent(sql.FieldNEQ(FieldWorldID, v))
}

// WorldIDIn applies the In predicate on the "world_id" field.
func WorldIDIn(vs ...string) predicate.StoryEvent {
	return predicate.StoryEvent(sql.FieldIn(FieldWorldID, vs...))
}

// WorldIDNotIn applies the NotIn predicate on the "world_id" field.
func WorldIDNotIn(vs ...string) predicate.StoryEvent {
	return predicate.StoryEvent(sql.FieldNotIn(FieldWorldID, vs...))
}

// WorldIDGT applies the GT predicate on the "world_id" field.
func WorldIDGT(v string) predicate.StoryEvent {
	return predicate.StoryEvent(sql.FieldGT(FieldWorldID, v))
}

// WorldIDGTE applies the GTE predicate on the "world_id" field.
func WorldIDGTE(v string) predicate.StoryEvent {
	return predicate.StoryEvent(sql.FieldGTE(FieldWorldID, v))
}

// WorldIDLT applies the LT predicate on the "world_id" field.
func WorldIDLT(v string) predicate.StoryEvent {
	return predicate.StoryEvent(sql.FieldLT(FieldWorldID, v))
}

// WorldIDLTE applies the LTE predicate on the "world_id" field.
func WorldIDLTE(v string) predicate.StoryEvent {
	return predicate.StoryEvent(sql.FieldLTE(FieldWorldID, v))
}

// WorldIDContains applies the Contains predicate on the "world_id" field.
func WorldIDContains(v string) predicate.StoryEvent {
	return predicate.StoryEvent(sql.FieldContains(FieldWorldID, v))
}

// WorldIDHasPrefix applies the HasPrefix predicate on the "world_id" field.
func WorldIDHasPrefix(v string) predicate.StoryEvent {
	return predicate.StoryEvent(sql.FieldHasPrefix(FieldWorldID, v))
}

// WorldIDHasSuffix applies the HasSuffix predicate on the "world_id" field.
func WorldIDHasSuffix(v string) predicate.StoryEvent {
	return predicate.StoryEvent(sql.FieldHasSuffix(FieldWorldID, v))
}

// WorldIDEqualFold applies the EqualFold predicate on the "world_id" field.
func WorldIDEqualFold(v string) predicate.StoryEvent {
	return predicate.StoryEvent(sql.FieldEqualFold(FieldWorldID, v))
}

// WorldIDContainsFold applies the ContainsFold predicate on the "world_id" field.
func WorldIDContainsFold(v string) predicate.StoryEvent {
	return predicate.StoryEvent(sql.FieldContainsFold(FieldWorldID, v))
}

// LocationEQ applies the EQ predicate on the "location" field.
func LocationEQ(v string) predicate.StoryEvent {
	return predicate.StoryEvent(sql.FieldEQ(FieldLocation, v))
}

// LocationNEQ applies the NEQ predicate on the "location" field.
func LocationNEQ(v string) predicate.StoryEvent {
	return predicate.StoryEvent(sql.FieldNEQ(FieldLocation, v))
}

// LocationIn applies the In predicate on the "location" field.
func LocationIn(vs ...string) predicate.StoryEvent {
	return predicate.StoryEvent(sql.FieldIn(FieldLocation, vs...))
}

// LocationNotIn applies the NotIn predicate on the "location" field.
func LocationNotIn(vs ...string) predicate.StoryEvent {
	return predicate.StoryEvent(sql.FieldNotIn(FieldLocation, vs...))
}

// LocationGT applies the GT predicate on the "location" field.
func LocationGT(v string) predicate.StoryEvent {
	return predicate.StoryEvent(sql.FieldGT(FieldLocation, v))
}

// LocationGTE applies the GTE predicate on the "location" field.
func LocationGTE(v string) predicate.StoryEvent {
	return predicate.StoryEvent(sql.FieldGTE(FieldLocation, v))
}

// LocationLT applies the LT predicate on the "location" field.
func LocationLT(v string) predicate.StoryEvent {
	return predicate.StoryEvent(sql.FieldLT(FieldLocation, v))
}

// LocationLTE applies the LTE predicate on the "location" field.
func LocationLTE(v string) predicate.StoryEvent {
	return predicate.StoryEvent(sql.FieldLTE(FieldLocation, v))
}

// LocationContains applies the Contains predicate on the "location" field.
func LocationContains(v string) predicate.StoryEvent {
	return predicate.StoryEvent(sql.FieldContains(FieldLocation, v))
}

// LocationHasPrefix applies the HasPrefix predicate on the "location" field.
func LocationHasPrefix(v string) predicate.StoryEvent {
	return predicate.StoryEvent(sql.FieldHasPrefix(FieldLocation, v))
}

// LocationHasSuffix applies the HasSuffix predicate on the "location" field.
func LocationHasSuffix(v string) predicate.StoryEvent {
	return predicate.StoryEvent(sql.FieldHasSuffix(FieldLocation, v))
}

// LocationEqualFold applies the EqualFold predicate on the "location" field.
func LocationEqualFold(v string) predicate.StoryEvent {
	return predicate.StoryEvent(sql.FieldEqualFold(FieldLocation, v))
}

// LocationContainsFold applies the ContainsFold predicate on the "location" field.
func LocationContainsFold(v string) predicate.StoryEvent {
	return predicate.StoryEvent(sql.FieldContainsFold(FieldLocation, v))
}

// DescriptionEQ applies the EQ predicate on the "description" field.
func DescriptionEQ(v string) predicate.StoryEvent {
	return predicate.StoryEvent(sql.FieldEQ(FieldDescription, v))
}

// DescriptionNEQ applies the NEQ predicate on the "description" field.
func DescriptionNEQ(v string) predicate.StoryEvent {
	return predicate.StoryEvent(sql.FieldNEQ(FieldDescription, v))
}

// DescriptionIn applies the In predicate on the "description" field.
func DescriptionIn(vs ...string) predicate.StoryEvent {
	return predicate.StoryEvent(sql.FieldIn(FieldDescription, vs...))
}

// DescriptionNotIn applies the NotIn predicate on the "description" field.
func DescriptionNotIn(vs ...string) predicate.StoryEvent {
	return predicate.StoryEvent(sql.FieldNotIn(FieldDescription, vs...))
}

// DescriptionGT applies the GT predicate on the "description" field.
func DescriptionGT(v string) predicate.StoryEvent {
	return predicate.StoryEvent(sql.FieldGT(FieldDescription, v))
}

// DescriptionGTE applies the GTE predicate on the "description" field.
func DescriptionGTE(v string) predicate.StoryEvent {
	return predicate.StoryEvent(sql.FieldGTE(FieldDescription, v))
}

// DescriptionLT applies the LT predicate on the "description" field.
func DescriptionLT(v string) predicate.StoryEvent {
	return predicate.StoryEvent(sql.FieldLT(FieldDescription, v))
}

// DescriptionLTE applies the LTE predicate on the "description" field.
func DescriptionLTE(v string) predicate.StoryEvent {
	return predicate.StoryEvent(sql.FieldLTE(FieldDescription, v))
}

// DescriptionContains applies the Contains predicate on the "description" field.
func DescriptionContains(v string) predicate.StoryEvent {
	return predicate.StoryEvent(sql.FieldContains(FieldDescription, v))
}

// DescriptionHasPrefix applies the HasPrefix predicate on the "description" field.
func DescriptionHasPrefix(v string) predicate.StoryEvent {
	return predicate.StoryEvent(sql.FieldHasPrefix(FieldDescription, v))
}

// DescriptionHasSuffix applies the HasSuffix predicate on the "description" field.
func DescriptionHasSuffix(v string) predicate.StoryEvent {
	return predicate.StoryEvent(sql.FieldHasSuffix(FieldDescription, v))
}

// DescriptionEqualFold applies the EqualFold predicate on the "description" field.
func DescriptionEqualFold(v string) predicate.StoryEvent {
	return predicate.StoryEvent(sql.FieldEqualFold(FieldDescription, v))
}

// DescriptionContainsFold applies the ContainsFold predicate on the "description" field.
func DescriptionContainsFold(v string) predicate.StoryEvent {
	return predicate.StoryEvent(sql.FieldContainsFold(FieldDescription, v))
}

// StoryTimeEQ applies the EQ predicate on the "story_time" field.
func StoryTimeEQ(v int) predicate.StoryEvent {
	return predicate.StoryEvent(sql.FieldEQ(FieldStoryTime, v))
}

// StoryTimeNEQ applies the NEQ predicate on the "story_time" field.
func StoryTimeNEQ(v int) predicate.StoryEvent {
	return predicate.StoryEvent(sql.FieldNEQ(FieldStoryTime, v))
}

// StoryTimeIn applies the In predicate on the "story_time" field.
func StoryTimeIn(vs ...int) predicate.StoryEvent {
	return predicate.StoryEvent(sql.FieldIn(FieldStoryTime, vs...))
}

// StoryTimeNotIn applies the NotIn predicate on the "story_time" field.
func StoryTimeNotIn(vs ...int) predicate.StoryEvent {
	return predicate.StoryEvent(sql.FieldNotIn(FieldStoryTime, vs...))
}

// StoryTimeGT applies the GT predicate on the "story_time" field.
func StoryTimeGT(v int) predicate.StoryEvent {
	return predicate.StoryEvent(sql.FieldGT(FieldStoryTime, v))
}

// StoryTimeGTE applies the GTE predicate on the "story_time" field.
func StoryTimeGTE(v int) predicate.StoryEvent {
	return predicate.StoryEvent(sql.FieldGTE(FieldStoryTime, v))
}

// StoryTimeLT applies the LT predicate on the "story_time" field.
func StoryTimeLT(v int) predicate.StoryEvent {
	return predicate.StoryEvent(sql.FieldLT(FieldStoryTime, v))
}

// StoryTimeLTE applies the LTE predicate on the "story_time" field.
func StoryTimeLTE(v int) predicate.StoryEvent {
	return predicate.StoryEvent(sql.FieldLTE(FieldStoryTime, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.StoryEvent {
	return predicate.StoryEvent(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.StoryEvent {
	return predicate.StoryEvent(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.StoryEvent {
	return predicate.StoryEvent(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.StoryEvent {
	return predicate.StoryEvent(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.StoryEvent {
	return predicate.StoryEvent(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.StoryEvent {
	return predicate.StoryEvent(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.StoryEvent {
	return predicate.StoryEvent(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.StoryEvent {
	return predicate.StoryEvent(sql.FieldLTE(FieldCreatedAt, v))
}

// HasWorld applies the HasEdge predicate on the "world" edge.
func HasWorld() predicate.StoryEvent {
	return predicate.StoryEvent(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, WorldTable, WorldColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasWorldWith applies the HasEdge predicate on the "world" edge with a given conditions (other predicates).
func HasWorldWith(preds ...predicate.World) predicate.StoryEvent {
	return predicate.StoryEvent(func(s *sql.Selector) {
		step := newWorldStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.StoryEvent) predicate.StoryEvent {
	return predicate.StoryEvent(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.StoryEvent) predicate.StoryEvent {
	return predicate.StoryEvent(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.StoryEvent) predicate.StoryEvent {
	return predicate.StoryEvent(sql.NotPredicates(p))
}
