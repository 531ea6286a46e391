// Code generated by ent, DO NOT EDIT.

package character

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/narraforge/narraforge/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.Character {
	return predicate.Character(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.Character {
	return predicate.Character(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.Character {
	return predicate.Character(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.Character {
	return predicate.Character(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.Character {
	return predicate.Character(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.Character {
	return predicate.Character(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.Character {
	return predicate.Character(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.Character {
	return predicate.Character(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.Character {
	return predicate.Character(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.Character {
	return predicate.Character(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.Character {
	return predicate.Character(sql.FieldContainsFold(FieldID, id))
}

// WorldID applies equality check predicate on the "world_id" field. It's identical to WorldIDEQ.
func WorldID(v string) predicate.Character {
	return predicate.Character(sql.FieldEQ(FieldWorldID, v))
}

// Name applies equality check predicate on the "name" field. It's identical to NameEQ.
func Name(v string) predicate.Character {
	return predicate.Character(sql.FieldEQ(FieldName, v))
}

// Trajectory applies equality check predicate on the "trajectory" field. It's identical to TrajectoryEQ.
func Trajectory(v string) predicate.Character {
	return predicate.Character(sql.FieldEQ(FieldTrajectory, v))
}

// EvolutionCapacity applies equality check predicate on the "evolution_capacity" field. It's identical to EvolutionCapacityEQ.
func EvolutionCapacity(v float64) predicate.Character {
	return predicate.Character(sql.FieldEQ(FieldEvolutionCapacity, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.Character {
	return predicate.Character(sql.FieldEQ(FieldCreatedAt, v))
}

// WorldIDEQ applies the EQ predicate on the "world_id" field.
func WorldIDEQ(v string) predicate.Character {
	return predicate.Character(sql.FieldEQ(FieldWorldID, v))
}

// WorldIDNEQ applies the NEQ predicate on the "world_id" field.
func WorldIDNEQ(v string) predicate.Character {
	return predicate.Character(sql.FieldNEQ(FieldWorldID, v))
}

// WorldIDIn applies the In predicate on the "world_id" field.
func WorldIDIn(vs ...string) predicate.Character {
	return predicate.Character(sql.FieldIn(FieldWorldID, vs...))
}

// WorldIDNotIn applies the NotIn predicate on the "world_id" field.
func WorldIDNotIn(vs ...string) predicate.Character {
	return predicate.Character(sql.FieldNotIn(FieldWorldID, vs...))
}

// WorldIDGT applies the GT predicate on the "world_id" field.
func WorldIDGT(v string) predicate.Character {
	return predicate.Character(sql.FieldGT(FieldWorldID, v))
}

// WorldIDGTE applies the GTE predicate on the "world_id" field.
func WorldIDGTE(v string) predicate.Character {
	return predicate.Character(sql.FieldGTE(FieldWorldID, v))
}

// WorldIDLT applies the LT predicate on the "world_id" field.
func WorldIDLT(v string) predicate.Character {
	return predicate.Character(sql.FieldLT(FieldWorldID, v))
}

// WorldIDLTE applies the LTE predicate on the "world_id" field.
func WorldIDLTE(v string) predicate.Character {
	return predicate.Character(sql.FieldLTE(FieldWorldID, v))
}

// WorldIDContains applies the Contains predicate on the "world_id" field.
func WorldIDContains(v string) predicate.Character {
	return predicate.Character(sql.FieldContains(FieldWorldID, v))
}

// WorldIDHasPrefix applies the HasPrefix predicate on the "world_id" field.
func WorldIDHasPrefix(v string) predicate.Character {
	return predicate.Character(sql.FieldHasPrefix(FieldWorldID, v))
}

// WorldIDHasSuffix applies the HasSuffix predicate on the "world_id" field.
func WorldIDHasSuffix(v string) predicate.Character {
	return predicate.Character(sql.FieldHasSuffix(FieldWorldID, v))
}

// WorldIDEqualFold applies the EqualFold predicate on the "world_id" field.
func WorldIDEqualFold(v string) predicate.Character {
	return predicate.Character(sql.FieldEqualFold(FieldWorldID, v))
}

// WorldIDContainsFold applies the ContainsFold predicate on the "world_id" field.
func WorldIDContainsFold(v string) predicate.Character {
	return predicate.Character(sql.FieldContainsFold(FieldWorldID, v))
}

// NameEQ applies the EQ predicate on the "name" field.
func NameEQ(v string) predicate.Character {
	return predicate.Character(sql.FieldEQ(FieldName, v))
}

// NameNEQ applies the NEQ predicate on the "name" field.
func NameNEQ(v string) predicate.Character {
	return predicate.Character(sql.FieldNEQ(FieldName, v))
}

// NameIn applies the In predicate on the "name" field.
func NameIn(vs ...string) predicate.Character {
	return predicate.Character(sql.FieldIn(FieldName, vs...))
}

// NameNotIn applies the NotIn predicate on the "name" field.
func NameNotIn(vs ...string) predicate.Character {
	return predicate.Character(sql.FieldNotIn(FieldName, vs...))
}

// NameGT applies the GT predicate on the "name" field.
func NameGT(v string) predicate.Character {
	return predicate.Character(sql.FieldGT(FieldName, v))
}

// NameGTE applies the GTE predicate on the "name" field.
func NameGTE(v string) predicate.Character {
	return predicate.Character(sql.FieldGTE(FieldName, v))
}

// NameLT applies the LT predicate on the "name" field.
func NameLT(v string) predicate.Character {
	return predicate.Character(sql.FieldLT(FieldName, v))
}

// NameLTE applies the LTE predicate on the "name" field.
func NameLTE(v string) predicate.Character {
	return predicate.Character(sql.FieldLTE(FieldName, v))
}

// NameContains applies the Contains predicate on the "name" field.
func NameContains(v string) predicate.Character {
	return predicate.Character(sql.FieldContains(FieldName, v))
}

// NameHasPrefix applies the HasPrefix predicate on the "name" field.
func NameHasPrefix(v string) predicate.Character {
	return predicate.Character(sql.FieldHasPrefix(FieldName, v))
}

// NameHasSuffix applies the HasSuffix predicate on the "name" field.
func NameHasSuffix(v string) predicate.Character {
	return predicate.Character(sql.FieldHasSuffix(FieldName, v))
}

// NameEqualFold applies the EqualFold predicate on the "name" field.
func NameEqualFold(v string) predicate.Character {
	return predicate.Character(sql.FieldEqualFold(FieldName, v))
}

// NameContainsFold applies the ContainsFold predicate on the "name" field.
func NameContainsFold(v string) predicate.Character {
	return predicate.Character(sql.FieldContainsFold(FieldName, v))
}

// TrajectoryEQ applies the EQ predicate on the "trajectory" field.
func TrajectoryEQ(v string) predicate.Character {
	return predicate.Character(sql.FieldEQ(FieldTrajectory, v))
}

// TrajectoryNEQ applies the NEQ predicate on the "trajectory" field.
func TrajectoryNEQ(v string) predicate.Character {
	return predicate.Character(sql.FieldNEQ(FieldTrajectory, v))
}

// TrajectoryIn applies the In predicate on the "trajectory" field.
func TrajectoryIn(vs ...string) predicate.Character {
	return predicate.Character(sql.FieldIn(FieldTrajectory, vs...))
}

// TrajectoryNotIn applies the NotIn predicate on the "trajectory" field.
func TrajectoryNotIn(vs ...string) predicate.Character {
	return predicate.Character(sql.FieldNotIn(FieldTrajectory, vs...))
}

// TrajectoryGT applies the GT predicate on the "trajectory" field.
func TrajectoryGT(v string) predicate.Character {
	return predicate.Character(sql.FieldGT(FieldTrajectory, v))
}

// TrajectoryGTE applies the GTE predicate on the "trajectory" field.
func TrajectoryGTE(v string) predicate.Character {
	return predicate.Character(sql.FieldGTE(FieldTrajectory, v))
}

// TrajectoryLT applies the LT predicate on the "trajectory" field.
func TrajectoryLT(v string) predicate.Character {
	return predicate.Character(sql.FieldLT(FieldTrajectory, v))
}

// TrajectoryLTE applies the LTE predicate on the "trajectory" field.
func TrajectoryLTE(v string) predicate.Character {
	return predicate.Character(sql.FieldLTE(FieldTrajectory, v))
}

// TrajectoryContains applies the Contains predicate on the "trajectory" field.
func TrajectoryContains(v string) predicate.Character {
	return predicate.Character(sql.FieldContains(FieldTrajectory, v))
}

// TrajectoryHasPrefix applies the HasPrefix predicate on the "trajectory" field.
func TrajectoryHasPrefix(v string) predicate.Character {
	return predicate.Character(sql.FieldHasPrefix(FieldTrajectory, v))
}

// TrajectoryHasSuffix applies the HasSuffix predicate on the "trajectory" field.
func TrajectoryHasSuffix(v string) predicate.Character {
	return predicate.Character(sql.FieldHasSuffix(FieldTrajectory, v))
}

// TrajectoryEqualFold applies the EqualFold predicate on the "trajectory" field.
func TrajectoryEqualFold(v string) predicate.Character {
	return predicate.Character(sql.FieldEqualFold(FieldTrajectory, v))
}

// TrajectoryContainsFold applies the ContainsFold predicate on the "trajectory" field.
func TrajectoryContainsFold(v string) predicate.Character {
	return predicate.Character(sql.FieldContainsFold(FieldTrajectory, v))
}

// EvolutionCapacityEQ applies the EQ predicate on the "evolution_capacity" field.
func EvolutionCapacityEQ(v float64) predicate.Character {
	return predicate.Character(sql.FieldEQ(FieldEvolutionCapacity, v))
}

// EvolutionCapacityNEQ applies the NEQ predicate on the "evolution_capacity" field.
func EvolutionCapacityNEQ(v float64) predicate.Character {
	return predicate.Character(sql.FieldNEQ(FieldEvolutionCapacity, v))
}

// EvolutionCapacityIn applies the In predicate on the "evolution_capacity" field.
func EvolutionCapacityIn(vs ...float64) predicate.Character {
	return predicate.Character(sql.FieldIn(FieldEvolutionCapacity, vs...))
}

// EvolutionCapacityNotIn applies the NotIn predicate on the "evolution_capacity" field.
func EvolutionCapacityNotIn(vs ...float64) predicate.Character {
	return predicate.Character(sql.FieldNotIn(FieldEvolutionCapacity, vs...))
}

// EvolutionCapacityGT applies the GT predicate on the "evolution_capacity" field.
func EvolutionCapacityGT(v float64) predicate.Character {
	return predicate.Character(sql.FieldGT(FieldEvolutionCapacity, v))
}

// EvolutionCapacityGTE applies the GTE predicate on the "evolution_capacity" field.
func EvolutionCapacityGTE(v float64) predicate.Character {
	return predicate.Character(sql.FieldGTE(FieldEvolutionCapacity, v))
}

// EvolutionCapacityLT applies the LT predicate on the "evolution_capacity" field.
func EvolutionCapacityLT(v float64) predicate.Character {
	return predicate.Character(sql.FieldLT(FieldEvolutionCapacity, v))
}

// EvolutionCapacityLTE applies the LTE predicate on the "evolution_capacity" field.
func EvolutionCapacityLTE(v float64) predicate.Character {
	return predicate.Character(sql.FieldLTE(FieldEvolutionCapacity, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.Character {
	return predicate.Character(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.Character {
	return predicate.Character(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.Character {
	return predicate.Character(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.Character {
	return predicate.Character(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.Character {
	return predicate.Character(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.Character {
	return predicate.Character(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.Character {
	return predicate.Character(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.Character {
	return predicate.Character(sql.FieldLTE(FieldCreatedAt, v))
}

// HasWorld applies the HasEdge predicate on the "world" edge.
func HasWorld() predicate.Character {
	return predicate.Character(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, WorldTable, WorldColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasWorldWith applies the HasEdge predicate on the "world" edge with a given conditions (other predicates).
func HasWorldWith(preds ...predicate.World) predicate.Character {
	return predicate.Character(func(s *sql.Selector) {
		step := newWorldStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Character) predicate.Character {
	return predicate.Character(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Character) predicate.Character {
	return predicate.Character(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Character) predicate.Character {
	return predicate.Character(sql.NotPredicates(p))
}
