// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// Character is the predicate function for character builders.
type Character func(*sql.Selector)

// Checkpoint is the predicate function for checkpoint builders.
type Checkpoint func(*sql.Selector)

// Event is the predicate function for event builders.
type Event func(*sql.Selector)

// EvolutionEntry is the predicate function for evolutionentry builders.
type EvolutionEntry func(*sql.Selector)

// Job is the predicate function for job builders.
type Job func(*sql.Selector)

// ModelCall is the predicate function for modelcall builders.
type ModelCall func(*sql.Selector)

// Motif is the predicate function for motif builders.
type Motif func(*sql.Selector)

// Relationship is the predicate function for relationship builders.
type Relationship func(*sql.Selector)

// StoryEvent is the predicate function for storyevent builders.
type StoryEvent func(*sql.Selector)

// World is the predicate function for world builders.
type World func(*sql.Selector)
