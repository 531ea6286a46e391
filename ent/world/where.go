// Code generated by ent, DO NOT EDIT.

package world

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/narraforge/narraforge/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.World {
	return predicate.World(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.World {
	return predicate.World(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.World {
	return predicate.World(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.World {
	return predicate.World(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.World {
	return predicate.World(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.World {
	return predicate.World(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.World {
	return predicate.World(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.World {
	return predicate.World(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.World {
	return predicate.World(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.World {
	return predicate.World(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.World {
	return predicate.World(sql.FieldContainsFold(FieldID, id))
}

// JobID applies equality check predicate on the "job_id" field. It's identical to JobIDEQ.
func JobID(v string) predicate.World {
	return predicate.World(sql.FieldEQ(FieldJobID, v))
}

// Name applies equality check predicate on the "name" field. It's identical to NameEQ.
func Name(v string) predicate.World {
	return predicate.World(sql.FieldEQ(FieldName, v))
}

// CoreConflict applies equality check predicate on the "core_conflict" field. It's identical to CoreConflictEQ.
func CoreConflict(v string) predicate.World {
	return predicate.World(sql.FieldEQ(FieldCoreConflict, v))
}

// Theme applies equality check predicate on the "theme" field. It's identical to ThemeEQ.
func Theme(v string) predicate.World {
	return predicate.World(sql.FieldEQ(FieldTheme, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.World {
	return predicate.World(sql.FieldEQ(FieldCreatedAt, v))
}

// JobIDEQ applies the EQ predicate on the "job_id" field.
func JobIDEQ(v string) predicate.World {
	return predicate.World(sql.FieldEQ(FieldJobID, v))
}

// JobIDNEQ applies the NEQ predicate on the "job_id" field.
func JobIDNEQ(v string) predicate.World {
	return predicate.World(sql.FieldNEQ(FieldJobID, v))
}

// JobIDIn applies the In predicate on the "job_id" field.
func JobIDIn(vs ...string) predicate.World {
	return predicate.World(sql.FieldIn(FieldJobID, vs...))
}

// JobIDNotIn applies the NotIn predicate on the "job_id" field.
func JobIDNotIn(vs ...string) predicate.World {
	return predicate.World(sql.FieldNotIn(FieldJobID, vs...))
}

// JobIDGT applies the GT predicate on the "job_id" field.
func JobIDGT(v string) predicate.World {
	return predicate.World(sql.FieldGT(FieldJobID, v))
}

// JobIDGTE applies the GTE predicate on the "job_id" field.
func JobIDGTE(v string) predicate.World {
	return predicate.World(sql.FieldGTE(FieldJobID, v))
}

// JobIDLT applies the LT predicate on the "job_id" field.
func JobIDLT(v string) predicate.World {
	return predicate.World(sql.FieldLT(FieldJobID, v))
}

// JobIDLTE applies the LTE predicate on the "job_id" field.
func JobIDLTE(v string) predicate.World {
	return predicate.World(sql.FieldLTE(FieldJobID, v))
}

// JobIDContains applies the Contains predicate on the "job_id" field.
func JobIDContains(v string) predicate.World {
	return predicate.World(sql.FieldContains(FieldJobID, v))
}

// JobIDHasPrefix applies the HasPrefix predicate on the "job_id" field.
func JobIDHasPrefix(v string) predicate.World {
	return predicate.World(sql.FieldHasPrefix(FieldJobID, v))
}

// JobIDHasSuffix applies the HasSuffix predicate on the "job_id" field.
func JobIDHasSuffix(v string) predicate.World {
	return predicate.World(sql.FieldHasSuffix(FieldJobID, v))
}

// JobIDEqualFold applies the EqualFold predicate on the "job_id" field.
func JobIDEqualFold(v string) predicate.World {
	return predicate.World(sql.FieldEqualFold(FieldJobID, v))
}

// JobIDContainsFold applies the ContainsFold predicate on the "job_id" field.
func JobIDContainsFold(v string) predicate.World {
	return predicate.World(sql.FieldContainsFold(FieldJobID, v))
}

// NameEQ applies the EQ predicate on the "name" field.
func NameEQ(v string) predicate.World {
	return predicate.World(sql.FieldEQ(FieldName, v))
}

// NameNEQ applies the NEQ predicate on the "name" field.
func NameNEQ(v string) predicate.World {
	return predicate.World(sql.FieldNEQ(FieldName, v))
}

// NameIn applies the In predicate on the "name" field.
func NameIn(vs ...string) predicate.World {
	return predicate.World(sql.FieldIn(FieldName, vs...))
}

// NameNotIn applies the NotIn predicate on the "name" field.
func NameNotIn(vs ...string) predicate.World {
	return predicate.World(sql.FieldNotIn(FieldName, vs...))
}

// NameGT applies the GT predicate on the "name" field.
func NameGT(v string) predicate.World {
	return predicate.World(sql.FieldGT(FieldName, v))
}

// NameGTE applies the GTE predicate on the "name" field.
func NameGTE(v string) predicate.World {
	return predicate.World(sql.FieldGTE(FieldName, v))
}

// NameLT applies the LT predicate on the "name" field.
func NameLT(v string) predicate.World {
	return predicate.World(sql.FieldLT(FieldName, v))
}

// NameLTE applies the LTE predicate on the "name" field.
func NameLTE(v string) predicate.World {
	return predicate.World(sql.FieldLTE(FieldName, v))
}

// NameContains applies the Contains predicate on the "name" field.
func NameContains(v string) predicate.World {
	return predicate.World(sql.FieldContains(FieldName, v))
}

// NameHasPrefix applies the HasPrefix predicate on the "name" field.
func NameHasPrefix(v string) predicate.World {
	return predicate.World(sql.FieldHasPrefix(FieldName, v))
}

// NameHasSuffix applies the HasSuffix predicate on the "name" field.
func NameHasSuffix(v string) predicate.World {
	return predicate.World(sql.FieldHasSuffix(FieldName, v))
}

// NameEqualFold applies the EqualFold predicate on the "name" field.
func NameEqualFold(v string) predicate.World {
	return predicate.World(sql.FieldEqualFold(FieldName, v))
}

// NameContainsFold applies the ContainsFold predicate on the "name" field.
func NameContainsFold(v string) predicate.World {
	return predicate.World(sql.FieldContainsFold(FieldName, v))
}

// CoreConflictEQ applies the EQ predicate on the "core_conflict" field.
func CoreConflictEQ(v string) predicate.World {
	return predicate.World(sql.FieldEQ(FieldCoreConflict, v))
}

// CoreConflictNEQ applies the NEQ predicate on the "core_conflict" field.
func CoreConflictNEQ(v string) predicate.World {
	return predicate.World(sql.FieldNEQ(FieldCoreConflict, v))
}

// CoreConflictIn applies the In predicate on the "core_conflict" field.
func CoreConflictIn(vs ...string) predicate.World {
	return predicate.World(sql.FieldIn(FieldCoreConflict, vs...))
}

// CoreConflictNotIn applies the NotIn predicate on the "core_conflict" field.
func CoreConflictNotIn(vs ...string) predicate.World {
	return predicate.World(sql.FieldNotIn(FieldCoreConflict, vs...))
}

// CoreConflictGT applies the GT predicate on the "core_conflict" field.
func CoreConflictGT(v string) predicate.World {
	return predicate.World(sql.FieldGT(FieldCoreConflict, v))
}

// CoreConflictGTE applies the GTE predicate on the "core_conflict" field.
func CoreConflictGTE(v string) predicate.World {
	return predicate.World(sql.FieldGTE(FieldCoreConflict, v))
}

// CoreConflictLT applies the LT predicate on the "core_conflict" field.
func CoreConflictLT(v string) predicate.World {
	return predicate.World(sql.FieldLT(FieldCoreConflict, v))
}

// CoreConflictLTE applies the LTE predicate on the "core_conflict" field.
func CoreConflictLTE(v string) predicate.World {
	return predicate.World(sql.FieldLTE(FieldCoreConflict, v))
}

// CoreConflictContains applies the Contains predicate on the "core_conflict" field.
func CoreConflictContains(v string) predicate.World {
	return predicate.World(sql.FieldContains(FieldCoreConflict, v))
}

// CoreConflictHasPrefix applies the HasPrefix predicate on the "core_conflict" field.
func CoreConflictHasPrefix(v string) predicate.World {
	return predicate.World(sql.FieldHasPrefix(FieldCoreConflict, v))
}

// CoreConflictHasSuffix applies the HasSuffix predicate on the "core_conflict" field.
func CoreConflictHasSuffix(v string) predicate.World {
	return predicate.World(sql.FieldHasSuffix(FieldCoreConflict, v))
}

// CoreConflictEqualFold applies the EqualFold predicate on the "core_conflict" field.
func CoreConflictEqualFold(v string) predicate.World {
	return predicate.World(sql.FieldEqualFold(FieldCoreConflict, v))
}

// CoreConflictContainsFold applies the ContainsFold predicate on the "core_conflict" field.
func CoreConflictContainsFold(v string) predicate.World {
	return predicate.World(sql.FieldContainsFold(FieldCoreConflict, v))
}

// ThemeEQ applies the EQ predicate on the "theme" field.
func ThemeEQ(v string) predicate.World {
	return predicate.World(sql.FieldEQ(FieldTheme, v))
}

// ThemeNEQ applies the NEQ predicate on the "theme" field.
func ThemeNEQ(v string) predicate.World {
	return predicate.World(sql.FieldNEQ(FieldTheme, v))
}

// ThemeIn applies the In predicate on the "theme" field.
func ThemeIn(vs ...string) predicate.World {
	return predicate.World(sql.FieldIn(FieldTheme, vs...))
}

// ThemeNotIn applies the NotIn predicate on the "theme" field.
func ThemeNotIn(vs ...string) predicate.World {
	return predicate.World(sql.FieldNotIn(FieldTheme, vs...))
}

// ThemeGT applies the GT predicate on the "theme" field.
func ThemeGT(v string) predicate.World {
	return predicate.World(sql.FieldGT(FieldTheme, v))
}

// ThemeGTE applies the GTE predicate on the "theme" field.
func ThemeGTE(v string) predicate.World {
	return predicate.World(sql.FieldGTE(FieldTheme, v))
}

// ThemeLT applies the LT predicate on the "theme" field.
func ThemeLT(v string) predicate.World {
	return predicate.World(sql.FieldLT(FieldTheme, v))
}

// ThemeLTE applies the LTE predicate on the "theme" field.
func ThemeLTE(v string) predicate.World {
	return predicate.World(sql.FieldLTE(FieldTheme, v))
}

// ThemeContains applies the Contains predicate on the "theme" field.
func ThemeContains(v string) predicate.World {
	return predicate.World(sql.FieldContains(FieldTheme, v))
}

// ThemeHasPrefix applies the HasPrefix predicate on the "theme" field.
func ThemeHasPrefix(v string) predicate.World {
	return predicate.World(sql.FieldHasPrefix(FieldTheme, v))
}

// ThemeHasSuffix applies the HasSuffix predicate on the "theme" field.
func ThemeHasSuffix(v string) predicate.World {
	return predicate.World(sql.FieldHasSuffix(FieldTheme, v))
}

// ThemeEqualFold applies the EqualFold predicate on the "theme" field.
func ThemeEqualFold(v string) predicate.World {
	return predicate.World(sql.FieldEqualFold(FieldTheme, v))
}

// ThemeContainsFold applies the ContainsFold predicate on the "theme" field.
func ThemeContainsFold(v string) predicate.World {
	return predicate.World(sql.FieldContainsFold(FieldTheme, v))
}

// ScaleEQ applies the EQ predicate on the "scale" field.
func ScaleEQ(v Scale) predicate.World {
	return predicate.World(sql.FieldEQ(FieldScale, v))
}

// ScaleNEQ applies the NEQ predicate on the "scale" field.
func ScaleNEQ(v Scale) predicate.World {
	return predicate.World(sql.FieldNEQ(FieldScale, v))
}

// ScaleIn applies the In predicate on the "scale" field.
func ScaleIn(vs ...Scale) predicate.World {
	return predicate.World(sql.FieldIn(FieldScale, vs...))
}

// ScaleNotIn applies the NotIn predicate on the "scale" field.
func ScaleNotIn(vs ...Scale) predicate.World {
	return predicate.World(sql.FieldNotIn(FieldScale, vs...))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.World {
	return predicate.World(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.World {
	return predicate.World(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.World {
	return predicate.World(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.World {
	return predicate.World(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.World {
	return predicate.World(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.World {
	return predicate.World(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.World {
	return predicate.World(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.World {
	return predicate.World(sql.FieldLTE(FieldCreatedAt, v))
}

// HasJob applies the HasEdge predicate on the "job" edge.
func HasJob() predicate.World {
	return predicate.World(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2O, true, JobTable, JobColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasJobWith applies the HasEdge predicate on the "job" edge with a given conditions (other predicates).
func HasJobWith(preds ...predicate.Job) predicate.World {
	return predicate.World(func(s *sql.Selector) {
		step := newJobStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasCharacters applies the HasEdge predicate on the "characters" edge.
func HasCharacters() predicate.World {
	return predicate.World(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, CharactersTable, CharactersColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasCharactersWith applies the HasEdge predicate on the "characters" edge with a given conditions (other predicates).
func HasCharactersWith(preds ...predicate.Character) predicate.World {
	return predicate.World(func(s *sql.Selector) {
		step := newCharactersStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasStoryEvents applies the HasEdge predicate on the "story_events" edge.
func HasStoryEvents() predicate.World {
	return predicate.World(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, StoryEventsTable, StoryEventsColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasStoryEventsWith applies the HasEdge predicate on the "story_events" edge with a given conditions (other predicates).
func HasStoryEventsWith(preds ...predicate.StoryEvent) predicate.World {
	return predicate.World(func(s *sql.Selector) {
		step := newStoryEventsStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasRelationships applies the HasEdge predicate on the "relationships" edge.
func HasRelationships() predicate.World {
	return predicate.World(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, RelationshipsTable, RelationshipsColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasRelationshipsWith applies the HasEdge predicate on the "relationships" edge with a given conditions (other predicates).
func HasRelationshipsWith(preds ...predicate.Relationship) predicate.World {
	return predicate.World(func(s *sql.Selector) {
		step := newRelationshipsStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasMotifs applies the HasEdge predicate on the "motifs" edge.
func HasMotifs() predicate.World {
	return predicate.World(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, MotifsTable, MotifsColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasMotifsWith applies the HasEdge predicate on the "motifs" edge with a given conditions (other predicates).
func HasMotifsWith(preds ...predicate.Motif) predicate.World {
	return predicate.World(func(s *sql.Selector) {
		step := newMotifsStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasEvolutionEntries applies the HasEdge predicate on the "evolution_entries" edge.
func HasEvolutionEntries() predicate.World {
	return predicate.World(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, EvolutionEntriesTable, EvolutionEntriesColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasEvolutionEntriesWith applies the HasEdge predicate on the "evolution_entries" edge with a given conditions (other predicates).
func HasEvolutionEntriesWith(preds ...predicate.EvolutionEntry) predicate.World {
	return predicate.World(func(s *sql.Selector) {
		step := newEvolutionEntriesStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.World) predicate.World {
	return predicate.World(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.World) predicate.World {
	return predicate.World(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.World) predicate.World {
	return predicate.World(sql.NotPredicates(p))
}
