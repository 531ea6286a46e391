// Code generated by ent, DO NOT EDIT.

package relationship

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/narraforge/narraforge/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.Relationship {
	return predicate.Relationship(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.Relationship {
	return predicate.Relationship(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.Relationship {
	return predicate.Relationship(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.Relationship {
	return predicate.Relationship(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.Relationship {
	return predicate.Relationship(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.Relationship {
	return predicate.Relationship(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.Relationship {
	return predicate.Relationship(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.Relationship {
	return predicate.Relationship(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.Relationship {
	return predicate.Relationship(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.Relationship {
	return predicate.Relationship(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.Relationship {
	return predicate.Relationship(sql.FieldContainsFold(FieldID, id))
}

// WorldID applies equality check predicate on the "world_id" field. It's identical to WorldIDEQ.
func WorldID(v string) predicate.Relationship {
	return predicate.Relationship(sql.FieldEQ(FieldWorldID, v))
}

// FromCharacterID applies equality check predicate on the "from_character_id" field. It's identical to FromCharacterIDEQ.
func FromCharacterID(v string) predicate.Relationship {
	return predicate.Relationship(sql.FieldEQ(FieldFromCharacterID, v))
}

// ToCharacterID applies equality check predicate on the "to_character_id" field. It's identical to ToCharacterIDEQ.
func ToCharacterID(v string) predicate.Relationship {
	return predicate.Relationship(sql.FieldEQ(FieldToCharacterID, v))
}

// Kind applies equality check predicate on the "kind" field. It's identical to KindEQ.
func Kind(v string) predicate.Relationship {
	return predicate.Relationship(sql.FieldEQ(FieldKind, v))
}

// Weight applies equality check predicate on the "weight" field. It's identical to WeightEQ.
func Weight(v float64) predicate.Relationship {
	return predicate.Relationship(sql.FieldEQ(FieldWeight, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.Relationship {
	return predicate.Relationship(sql.FieldEQ(FieldCreatedAt, v))
}

// WorldIDEQ applies the EQ predicate on the "world_id" field.
func WorldIDEQ(v string) predicate.Relationship {
	return predicate.Relationship(sql.FieldEQ(FieldWorldID, v))
}

// WorldIDNEQ applies the NEQ predicate on the "world_id" field.
func WorldIDNEQ(v string) predicate.Relationship {
	return predicate.Relationship(sql.FieldNEQ(FieldWorldID, v))
}

// WorldIDIn applies the In predicate on the "world_id" field.
func WorldIDIn(vs ...string) predicate.Relationship {
	return predicate.Relationship(sql.FieldIn(FieldWorldID, vs...))
}

// WorldIDNotIn applies the NotIn predicate on the "world_id" field.
func WorldIDNotIn(vs ...string) predicate.Relationship {
	return predicate.Relationship(sql.FieldNotIn(FieldWorldID, vs...))
}

// WorldIDGT applies the GT predicate on the "world_id" field.
func WorldIDGT(v string) predicate.Relationship {
	return predicate.Relationship(sql.FieldGT(FieldWorldID, v))
}

// WorldIDGTE applies the GTE predicate on the "world_id" field.
func WorldIDGTE(v string) predicate.Relationship {
	return predicate.Relationship(sql.FieldGTE(FieldWorldID, v))
}

// WorldIDLT applies the LT predicate on the "world_id" field.
func WorldIDLT(v string) predicate.Relationship {
	return predicate.Relationship(sql.FieldLT(FieldWorldID, v))
}

// WorldIDLTE applies the LTE predicate on the "world_id" field.
func WorldIDLTE(v string) predicate.Relationship {
	return predicate.Relationship(sql.FieldLTE(FieldWorldID, v))
}

// WorldIDContains applies the Contains predicate on the "world_id" field.
func WorldIDContains(v string) predicate.Relationship {
	return predicate.Relationship(sql.FieldContains(FieldWorldID, v))
}

// WorldIDHasPrefix applies the HasPrefix predicate on the "world_id" field.
func WorldIDHasPrefix(v string) predicate.Relationship {
	return predicate.Relationship(sql.FieldHasPrefix(FieldWorldID, v))
}

// WorldIDHasSuffix applies the HasSuffix predicate on the "world_id" field.
func WorldIDHasSuffix(v string) predicate.Relationship {
	return predicate.Relationship(sql.FieldHasSuffix(FieldWorldID, v))
}

// WorldIDEqualFold applies the EqualFold predicate on the "world_id" field.
func WorldIDEqualFold(v string) predicate.Relationship {
	return predicate.Relationship(sql.FieldEqualFold(FieldWorldID, v))
}

// WorldIDContainsFold applies the ContainsFold predicate on the "world_id" field.
func WorldIDContainsFold(v string) predicate.Relationship {
	return predicate.Relationship(sql.FieldContainsFold(FieldWorldID, v))
}

// FromCharacterIDEQ applies the EQ predicate on the "from_character_id" field.
func FromCharacterIDEQ(v string) predicate.Relationship {
	return predicate.Relationship(sql.FieldEQ(FieldFromCharacterID, v))
}

// FromCharacterIDNEQ applies the NEQ predicate on the "from_character_id" field.
func FromCharacterIDNEQ(v string) predicate.Relationship {
	return predicate.Relationship(sql.FieldNEQ(FieldFromCharacterID, v))
}

// FromCharacterIDIn applies the In predicate on the "from_character_id" field.
func FromCharacterIDIn(vs ...string) predicate.Relationship {
	return predicate.Relationship(sql.FieldIn(FieldFromCharacterID, vs...))
}

// FromCharacterIDNotIn applies the NotIn predicate on the "from_character_id" field.
func FromCharacterIDNotIn(vs ...string) predicate.Relationship {
	return predicate.Relationship(sql.FieldNotIn(FieldFromCharacterID, vs...))
}

// FromCharacterIDGT applies the GT predicate on the "from_character_id" field.
func FromCharacterIDGT(v string) predicate.Relationship {
	return predicate.Relationship(sql.FieldGT(FieldFromCharacterID, v))
}

// FromCharacterIDGTE applies the GTE predicate on the "from_character_id" field.
func FromCharacterIDGTE(v string) predicate.Relationship {
	return predicate.Relationship(sql.FieldGTE(FieldFromCharacterID, v))
}

// FromCharacterIDLT applies the LT predicate on the "from_character_id" field.
func FromCharacterIDLT(v string) predicate.Relationship {
	return predicate.Relationship(sql.FieldLT(FieldFromCharacterID, v))
}

// FromCharacterIDLTE applies the LTE predicate on the "from_character_id" field.
func FromCharacterIDLTE(v string) predicate.Relationship {
	return predicate.Relationship(sql.FieldLTE(FieldFromCharacterID, v))
}

// FromCharacterIDContains applies the Contains predicate on the "from_character_id" field.
func FromCharacterIDContains(v string) predicate.Relationship {
	return predicate.Relationship(sql.FieldContains(FieldFromCharacterID, v))
}

// FromCharacterIDHasPrefix applies the HasPrefix predicate on the "from_character_id" field.
func FromCharacterIDHasPrefix(v string) predicate.Relationship {
	return predicate.Relationship(sql.FieldHasPrefix(FieldFromCharacterID, v))
}

// FromCharacterIDHasSuffix applies the HasSuffix predicate on the "from_character_id" field.
func FromCharacterIDHasSuffix(v string) predicate.Relationship {
	return predicate.Relationship(sql.FieldHasSuffix(FieldFromCharacterID, v))
}

// FromCharacterIDEqualFold applies the EqualFold predicate on the "from_character_id" field.
func FromCharacterIDEqualFold(v string) predicate.Relationship {
	return predicate.Relationship(sql.FieldEqualFold(FieldFromCharacterID, v))
}

// FromCharacterIDContainsFold applies the ContainsFold predicate on the "from_character_id" field.
func FromCharacterIDContainsFold(v string) predicate.Relationship {
	return predicate.Relationship(sql.FieldContainsFold(FieldFromCharacterID, v))
}

// ToCharacterIDEQ applies the EQ predicate on the "to_character_id" field.
func ToCharacterIDEQ(v string) predicate.Relationship {
	return predicate.Relationship(sql.FieldEQ(FieldToCharacterID, v))
}

// ToCharacterIDNEQ applies the NEQ predicate on the "to_character_id" field.
func ToCharacterIDNEQ(v string) predicate.Relationship {
	return predicate.Relationship(sql.FieldNEQ(FieldToCharacterID, v))
}

// ToCharacterIDIn applies the In predicate on the "to_character_id" field.
func ToCharacterIDIn(vs ...string) predicate.Relationship {
	return predicate.Relationship(sql.FieldIn(FieldToCharacterID, vs...))
}

// ToCharacterIDNotIn applies the NotIn predicate on the "to_character_id" field.
func ToCharacterIDNotIn(vs ...string) predicate.Relationship {
	return predicate.Relationship(sql.FieldNotIn(FieldToCharacterID, vs...))
}

// ToCharacterIDGT applies the GT predicate on the "to_character_id" field.
func ToCharacterIDGT(v string) predicate.Relationship {
	return predicate.Relationship(sql.FieldGT(FieldToCharacterID, v))
}

// ToCharacterIDGTE applies the GTE predicate on the "to_character_id" field.
func ToCharacterIDGTE(v string) predicate.Relationship {
	return predicate.Relationship(sql.FieldGTE(FieldToCharacterID, v))
}

// ToCharacterIDLT applies the LT predicate on the "to_character_id" field.
func ToCharacterIDLT(v string) predicate.Relationship {
	return predicate.Relationship(sql.FieldLT(FieldToCharacterID, v))
}

// ToCharacterIDLTE applies the LTE predicate on the "to_character_id" field.
func ToCharacterIDLTE(v string) predicate.Relationship {
	return predicate.Relationship(sql.FieldLTE(FieldToCharacterID, v))
}

// ToCharacterIDContains applies the Contains predicate on the "to_character_id" field.
func ToCharacterIDContains(v string) predicate.Relationship {
	return predicate.Relationship(sql.FieldContains(FieldToCharacterID, v))
}

// ToCharacterIDHasPrefix applies the HasPrefix predicate on the "to_character_id" field.
func ToCharacterIDHasPrefix(v string) predicate.Relationship {
	return predicate.Relationship(sql.FieldHasPrefix(FieldToCharacterID, v))
}

// ToCharacterIDHasSuffix applies the HasSuffix predicate on the "to_character_id" field.
func ToCharacterIDHasSuffix(v string) predicate.Relationship {
	return predicate.Relationship(sql.FieldHasSuffix(FieldToCharacterID, v))
}

// ToCharacterIDEqualFold applies the EqualFold predicate on the "to_character_id" field.
func ToCharacterIDEqualFold(v string) predicate.Relationship {
	return predicate.Relationship(sql.FieldEqualFold(FieldToCharacterID, v))
}

// ToCharacterIDContainsFold applies the ContainsFold predicate on the "to_character_id" field.
func ToCharacterIDContainsFold(v string) predicate.Relationship {
	return predicate.Relationship(sql.FieldContainsFold(FieldToCharacterID, v))
}

// KindEQ applies the EQ predicate on the "kind" field.
func KindEQ(v string) predicate.Relationship {
	return predicate.Relationship(sql.FieldEQ(FieldKind, v))
}

// KindNEQ applies the NEQ predicate on the "kind" field.
func KindNEQ(v string) predicate.Relationship {
	return predicate.Relationship(sql.FieldNEQ(FieldKind, v))
}

// KindIn applies the In predicate on the "kind" field.
func KindIn(vs ...string) predicate.Relationship {
	return predicate.Relationship(sql.FieldIn(FieldKind, vs...))
}

// KindNotIn applies the NotIn predicate on the "kind" field.
func KindNotIn(vs ...string) predicate.Relationship {
	return predicate.Relationship(sql.FieldNotIn(FieldKind, vs...))
}

// KindGT applies the GT predicate on the "kind" field.
func KindGT(v string) predicate.Relationship {
	return predicate.Relationship(sql.FieldGT(FieldKind, v))
}

// KindGTE applies the GTE predicate on the "kind" field.
func KindGTE(v string) predicate.Relationship {
	return predicate.Relationship(sql.FieldGTE(FieldKind, v))
}

// KindLT applies the LT predicate on the "kind" field.
func KindLT(v string) predicate.Relationship {
	return predicate.Relationship(sql.FieldLT(FieldKind, v))
}

// KindLTE applies the LTE predicate on the "kind" field.
func KindLTE(v string) predicate.Relationship {
	return predicate.Relationship(sql.FieldLTE(FieldKind, v))
}

// KindContains applies the Contains predicate on the "kind" field.
func KindContains(v string) predicate.Relationship {
	return predicate.Relationship(sql.FieldContains(FieldKind, v))
}

// KindHasPrefix applies the HasPrefix predicate on the "kind" field.
func KindHasPrefix(v string) predicate.Relationship {
	return predicate.Relationship(sql.FieldHasPrefix(FieldKind, v))
}

// KindHasSuffix applies the HasSuffix predicate on the "kind" field.
func KindHasSuffix(v string) predicate.Relationship {
	return predicate.Relationship(sql.FieldHasSuffix(FieldKind, v))
}

// KindEqualFold applies the EqualFold predicate on the "kind" field.
func KindEqualFold(v string) predicate.Relationship {
	return predicate.Relationship(sql.FieldEqualFold(FieldKind, v))
}

// KindContainsFold applies the ContainsFold predicate on the "kind" field.
func KindContainsFold(v string) predicate.Relationship {
	return predicate.Relationship(sql.FieldContainsFold(FieldKind, v))
}

// WeightEQ applies the EQ predicate on the "weight" field.
func WeightEQ(v float64) predicate.Relationship {
	return predicate.Relationship(sql.FieldEQ(FieldWeight, v))
}

// WeightNEQ applies the NEQ predicate on the "weight" field.
func WeightNEQ(v float64) predicate.Relationship {
	return predicate.Relationship(sql.FieldNEQ(FieldWeight, v))
}

// WeightIn applies the In predicate on the "weight" field.
func WeightIn(vs ...float64) predicate.Relationship {
	return predicate.Relationship(sql.FieldIn(FieldWeight, vs...))
}

// WeightNotIn applies the NotIn predicate on the "weight" field.
func WeightNotIn(vs ...float64) predicate.Relationship {
	return predicate.Relationship(sql.FieldNotIn(FieldWeight, vs...))
}

// WeightGT applies the GT predicate on the "weight" field.
func WeightGT(v float64) predicate.Relationship {
	return predicate.Relationship(sql.FieldGT(FieldWeight, v))
}

// WeightGTE applies the GTE predicate on the "weight" field.
func WeightGTE(v float64) predicate.Relationship {
	return predicate.Relationship(sql.FieldGTE(FieldWeight, v))
}

// WeightLT applies the LT predicate on the "weight" field.
func WeightLT(v float64) predicate.Relationship {
	return predicate.Relationship(sql.FieldLT(FieldWeight, v))
}

// WeightLTE applies the LTE predicate on the "weight" field.
func WeightLTE(v float64) predicate.Relationship {
	return predicate.Relationship(sql.FieldLTE(FieldWeight, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.Relationship {
	return predicate.Relationship(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.Relationship {
	return predicate.Relationship(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.Relationship {
	return predicate.Relationship(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.Relationship {
	return predicate.Relationship(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.Relationship {
	return predicate.Relationship(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.Relationship {
	return predicate.Relationship(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.Relationship {
	return predicate.Relationship(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.Relationship {
	return predicate.Relationship(sql.FieldLTE(FieldCreatedAt, v))
}

// HasWorld applies the HasEdge predicate on the "world" edge.
func HasWorld() predicate.Relationship {
	return predicate.Relationship(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, WorldTable, WorldColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasWorldWith applies the HasEdge predicate on the "world" edge with a given conditions (other predicates).
func HasWorldWith(preds ...predicate.World) predicate.Relationship {
	return predicate.Relationship(func(s *sql.Selector) {
		step := newWorldStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Relationship) predicate.Relationship {
	return predicate.Relationship(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Relationship) predicate.Relationship {
	return predicate.Relationship(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Relationship) predicate.Relationship {
	return predicate.Relationship(sql.NotPredicates(p))
}
