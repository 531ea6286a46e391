// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/narraforge/narraforge/ent/character"
	"github.com/narraforge/narraforge/ent/checkpoint"
	"github.com/narraforge/narraforge/ent/event"
	"github.com/narraforge/narraforge/ent/evolutionentry"
	"github.com/narraforge/narraforge/ent/job"
	"github.com/narraforge/narraforge/ent/modelcall"
	"github.com/narraforge/narraforge/ent/motif"
	"github.com/narraforge/narraforge/ent/relationship"
	"github.com/narraforge/narraforge/ent/schema"
	"github.com/narraforge/narraforge/ent/storyevent"
	"github.com/narraforge/narraforge/ent/world"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	characterFields := schema.Character{}.Fields()
	_ = characterFields
	// characterDescCreatedAt is the schema descriptor for created_at field.
	characterDescCreatedAt := characterFields[7].Descriptor()
	// character.DefaultCreatedAt holds the default value on creation for the created_at field.
	character.DefaultCreatedAt = characterDescCreatedAt.Default.(func() time.Time)
	checkpointFields := schema.Checkpoint{}.Fields()
	_ = checkpointFields
	// checkpointDescCreatedAt is the schema descriptor for created_at field.
	checkpointDescCreatedAt := checkpointFields[7].Descriptor()
	// checkpoint.DefaultCreatedAt holds the default value on creation for the created_at field.
	checkpoint.DefaultCreatedAt = checkpointDescCreatedAt.Default.(func() time.Time)
	eventFields := schema.Event{}.Fields()
	_ = eventFields
	// eventDescCreatedAt is the schema descriptor for created_at field.
	eventDescCreatedAt := eventFields[4].Descriptor()
	// event.DefaultCreatedAt holds the default value on creation for the created_at field.
	event.DefaultCreatedAt = eventDescCreatedAt.Default.(func() time.Time)
	evolutionentryFields := schema.EvolutionEntry{}.Fields()
	_ = evolutionentryFields
	// evolutionentryDescCreatedAt is the schema descriptor for created_at field.
	evolutionentryDescCreatedAt := evolutionentryFields[9].Descriptor()
	// evolutionentry.DefaultCreatedAt holds the default value on creation for the created_at field.
	evolutionentry.DefaultCreatedAt = evolutionentryDescCreatedAt.Default.(func() time.Time)
	jobFields := schema.Job{}.Fields()
	_ = jobFields
	// jobDescContentLanguage is the schema descriptor for content_language field.
	jobDescContentLanguage := jobFields[4].Descriptor()
	// job.DefaultContentLanguage holds the default value on creation for the content_language field.
	job.DefaultContentLanguage = jobDescContentLanguage.Default.(string)
	// jobDescCumulativeCostUsd is the schema descriptor for cumulative_cost_usd field.
	jobDescCumulativeCostUsd := jobFields[7].Descriptor()
	// job.DefaultCumulativeCostUsd holds the default value on creation for the cumulative_cost_usd field.
	job.DefaultCumulativeCostUsd = jobDescCumulativeCostUsd.Default.(float64)
	// jobDescCumulativePromptTokens is the schema descriptor for cumulative_prompt_tokens field.
	jobDescCumulativePromptTokens := jobFields[8].Descriptor()
	// job.DefaultCumulativePromptTokens holds the default value on creation for the cumulative_prompt_tokens field.
	job.DefaultCumulativePromptTokens = jobDescCumulativePromptTokens.Default.(int)
	// jobDescCumulativeCompletionTokens is the schema descriptor for cumulative_completion_tokens field.
	jobDescCumulativeCompletionTokens := jobFields[9].Descriptor()
	// job.DefaultCumulativeCompletionTokens holds the default value on creation for the cumulative_completion_tokens field.
	job.DefaultCumulativeCompletionTokens = jobDescCumulativeCompletionTokens.Default.(int)
	// jobDescCreatedAt is the schema descriptor for created_at field.
	jobDescCreatedAt := jobFields[16].Descriptor()
	// job.DefaultCreatedAt holds the default value on creation for the created_at field.
	job.DefaultCreatedAt = jobDescCreatedAt.Default.(func() time.Time)
	modelcallFields := schema.ModelCall{}.Fields()
	_ = modelcallFields
	// modelcallDescPromptTokens is the schema descriptor for prompt_tokens field.
	modelcallDescPromptTokens := modelcallFields[7].Descriptor()
	// modelcall.DefaultPromptTokens holds the default value on creation for the prompt_tokens field.
	modelcall.DefaultPromptTokens = modelcallDescPromptTokens.Default.(int)
	// modelcallDescCompletionTokens is the schema descriptor for completion_tokens field.
	modelcallDescCompletionTokens := modelcallFields[8].Descriptor()
	// modelcall.DefaultCompletionTokens holds the default value on creation for the completion_tokens field.
	modelcall.DefaultCompletionTokens = modelcallDescCompletionTokens.Default.(int)
	// modelcallDescUsdCost is the schema descriptor for usd_cost field.
	modelcallDescUsdCost := modelcallFields[9].Descriptor()
	// modelcall.DefaultUsdCost holds the default value on creation for the usd_cost field.
	modelcall.DefaultUsdCost = modelcallDescUsdCost.Default.(float64)
	// modelcallDescDurationMs is the schema descriptor for duration_ms field.
	modelcallDescDurationMs := modelcallFields[10].Descriptor()
	// modelcall.DefaultDurationMs holds the default value on creation for the duration_ms field.
	modelcall.DefaultDurationMs = modelcallDescDurationMs.Default.(int)
	// modelcallDescCreatedAt is the schema descriptor for created_at field.
	modelcallDescCreatedAt := modelcallFields[12].Descriptor()
	// modelcall.DefaultCreatedAt holds the default value on creation for the created_at field.
	modelcall.DefaultCreatedAt = modelcallDescCreatedAt.Default.(func() time.Time)
	motifFields := schema.Motif{}.Fields()
	_ = motifFields
	// motifDescCreatedAt is the schema descriptor for created_at field.
	motifDescCreatedAt := motifFields[5].Descriptor()
	// motif.DefaultCreatedAt holds the default value on creation for the created_at field.
	motif.DefaultCreatedAt = motifDescCreatedAt.Default.(func() time.Time)
	relationshipFields := schema.Relationship{}.Fields()
	_ = relationshipFields
	// relationshipDescCreatedAt is the schema descriptor for created_at field.
	relationshipDescCreatedAt := relationshipFields[6].Descriptor()
	// relationship.DefaultCreatedAt holds the default value on creation for the created_at field.
	relationship.DefaultCreatedAt = relationshipDescCreatedAt.Default.(func() time.Time)
	storyeventFields := schema.StoryEvent{}.Fields()
	_ = storyeventFields
	// storyeventDescCreatedAt is the schema descriptor for created_at field.
	storyeventDescCreatedAt := storyeventFields[7].Descriptor()
	// storyevent.DefaultCreatedAt holds the default value on creation for the created_at field.
	storyevent.DefaultCreatedAt = storyeventDescCreatedAt.Default.(func() time.Time)
	worldFields := schema.World{}.Fields()
	_ = worldFields
	// worldDescCreatedAt is the schema descriptor for created_at field.
	worldDescCreatedAt := worldFields[9].Descriptor()
	// world.DefaultCreatedAt holds the default value on creation for the created_at field.
	world.DefaultCreatedAt = worldDescCreatedAt.Default.(func() time.Time)
}
