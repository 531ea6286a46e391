// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// CharactersColumns holds the columns for the "characters" table.
	CharactersColumns = []*schema.Column{
		{Name: "character_id", Type: field.TypeString, Unique: true},
		{Name: "name", Type: field.TypeString},
		{Name: "trajectory", Type: field.TypeString, Size: 2147483647},
		{Name: "contradictions", Type: field.TypeJSON},
		{Name: "cognitive_limits", Type: field.TypeJSON},
		{Name: "evolution_capacity", Type: field.TypeFloat64},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "world_id", Type: field.TypeString},
	}
	// CharactersTable holds the schema information for the "characters" table.
	CharactersTable = &schema.Table{
		Name:       "characters",
		Columns:    CharactersColumns,
		PrimaryKey: []*schema.Column{CharactersColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "characters_worlds_characters",
				Columns:    []*schema.Column{CharactersColumns[7]},
				RefColumns: []*schema.Column{WorldsColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "character_world_id_name",
				Unique:  true,
				Columns: []*schema.Column{CharactersColumns[7], CharactersColumns[1]},
			},
		},
	}
	// CheckpointsColumns holds the columns for the "checkpoints" table.
	CheckpointsColumns = []*schema.Column{
		{Name: "checkpoint_id", Type: field.TypeString, Unique: true},
		{Name: "stage", Type: field.TypeInt},
		{Name: "context_snapshot", Type: field.TypeJSON},
		{Name: "cost_usd", Type: field.TypeFloat64},
		{Name: "prompt_tokens", Type: field.TypeInt},
		{Name: "completion_tokens", Type: field.TypeInt},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "job_id", Type: field.TypeString},
	}
	// CheckpointsTable holds the schema information for the "checkpoints" table.
	CheckpointsTable = &schema.Table{
		Name:       "checkpoints",
		Columns:    CheckpointsColumns,
		PrimaryKey: []*schema.Column{CheckpointsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "checkpoints_jobs_checkpoints",
				Columns:    []*schema.Column{CheckpointsColumns[7]},
				RefColumns: []*schema.Column{JobsColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "checkpoint_job_id_stage",
				Unique:  true,
				Columns: []*schema.Column{CheckpointsColumns[7], CheckpointsColumns[1]},
			},
		},
	}
	// EventsColumns holds the columns for the "events" table.
	EventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt64, Increment: true},
		{Name: "channel", Type: field.TypeString},
		{Name: "payload", Type: field.TypeJSON},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "job_id", Type: field.TypeString},
	}
	// EventsTable holds the schema information for the "events" table.
	EventsTable = &schema.Table{
		Name:       "events",
		Columns:    EventsColumns,
		PrimaryKey: []*schema.Column{EventsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "events_jobs_events",
				Columns:    []*schema.Column{EventsColumns[4]},
				RefColumns: []*schema.Column{JobsColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "event_channel_id",
				Unique:  false,
				Columns: []*schema.Column{EventsColumns[1], EventsColumns[0]},
			},
			{
				Name:    "event_job_id",
				Unique:  false,
				Columns: []*schema.Column{EventsColumns[4]},
			},
		},
	}
	// EvolutionEntriesColumns holds the columns for the "evolution_entries" table.
	EvolutionEntriesColumns = []*schema.Column{
		{Name: "evolution_entry_id", Type: field.TypeString, Unique: true},
		{Name: "entity_id", Type: field.TypeString},
		{Name: "entity_type", Type: field.TypeEnum, Enums: []string{"world", "character"}},
		{Name: "change_type", Type: field.TypeString},
		{Name: "before_state", Type: field.TypeJSON},
		{Name: "after_state", Type: field.TypeJSON},
		{Name: "trigger_event_id", Type: field.TypeString},
		{Name: "significance", Type: field.TypeFloat64},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "world_id", Type: field.TypeString},
	}
	// EvolutionEntriesTable holds the schema information for the "evolution_entries" table.
	EvolutionEntriesTable = &schema.Table{
		Name:       "evolution_entries",
		Columns:    EvolutionEntriesColumns,
		PrimaryKey: []*schema.Column{EvolutionEntriesColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "evolution_entries_worlds_evolution_entries",
				Columns:    []*schema.Column{EvolutionEntriesColumns[9]},
				RefColumns: []*schema.Column{WorldsColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "evolutionentry_world_id_created_at",
				Unique:  false,
				Columns: []*schema.Column{EvolutionEntriesColumns[9], EvolutionEntriesColumns[8]},
			},
			{
				Name:    "evolutionentry_entity_id",
				Unique:  false,
				Columns: []*schema.Column{EvolutionEntriesColumns[1]},
			},
		},
	}
	// JobsColumns holds the columns for the "jobs" table.
	JobsColumns = []*schema.Column{
		{Name: "job_id", Type: field.TypeString, Unique: true},
		{Name: "brief", Type: field.TypeJSON},
		{Name: "production_type", Type: field.TypeString},
		{Name: "genre", Type: field.TypeString},
		{Name: "content_language", Type: field.TypeString, Default: "en"},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"pending", "running", "cancelling", "completed", "failed", "cancelled"}, Default: "pending"},
		{Name: "current_stage", Type: field.TypeInt, Nullable: true},
		{Name: "cumulative_cost_usd", Type: field.TypeFloat64, Default: 0},
		{Name: "cumulative_prompt_tokens", Type: field.TypeInt, Default: 0},
		{Name: "cumulative_completion_tokens", Type: field.TypeInt, Default: 0},
		{Name: "error_message", Type: field.TypeString, Nullable: true},
		{Name: "error_kind", Type: field.TypeString, Nullable: true},
		{Name: "error_stage", Type: field.TypeInt, Nullable: true},
		{Name: "owner", Type: field.TypeString, Nullable: true},
		{Name: "pod_id", Type: field.TypeString, Nullable: true},
		{Name: "last_heartbeat_at", Type: field.TypeTime, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "started_at", Type: field.TypeTime, Nullable: true},
		{Name: "completed_at", Type: field.TypeTime, Nullable: true},
		{Name: "deleted_at", Type: field.TypeTime, Nullable: true},
	}
	// JobsTable holds the schema information for the "jobs" table.
	JobsTable = &schema.Table{
		Name:       "jobs",
		Columns:    JobsColumns,
		PrimaryKey: []*schema.Column{JobsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "job_status",
				Unique:  false,
				Columns: []*schema.Column{JobsColumns[5]},
			},
			{
				Name:    "job_production_type",
				Unique:  false,
				Columns: []*schema.Column{JobsColumns[2]},
			},
			{
				Name:    "job_status_created_at",
				Unique:  false,
				Columns: []*schema.Column{JobsColumns[5], JobsColumns[16]},
			},
			{
				Name:    "job_status_last_heartbeat_at",
				Unique:  false,
				Columns: []*schema.Column{JobsColumns[5], JobsColumns[15]},
			},
		},
	}
	// ModelCallsColumns holds the columns for the "model_calls" table.
	ModelCallsColumns = []*schema.Column{
		{Name: "model_call_id", Type: field.TypeString, Unique: true},
		{Name: "stage", Type: field.TypeInt},
		{Name: "attempt", Type: field.TypeInt},
		{Name: "provider", Type: field.TypeString},
		{Name: "model_id", Type: field.TypeString},
		{Name: "tier", Type: field.TypeString},
		{Name: "prompt_tokens", Type: field.TypeInt, Default: 0},
		{Name: "completion_tokens", Type: field.TypeInt, Default: 0},
		{Name: "usd_cost", Type: field.TypeFloat64, Default: 0},
		{Name: "duration_ms", Type: field.TypeInt, Default: 0},
		{Name: "error_class", Type: field.TypeString, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "job_id", Type: field.TypeString},
	}
	// ModelCallsTable holds the schema information for the "model_calls" table.
	ModelCallsTable = &schema.Table{
		Name:       "model_calls",
		Columns:    ModelCallsColumns,
		PrimaryKey: []*schema.Column{ModelCallsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "model_calls_jobs_model_calls",
				Columns:    []*schema.Column{ModelCallsColumns[12]},
				RefColumns: []*schema.Column{JobsColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "modelcall_job_id_stage",
				Unique:  false,
				Columns: []*schema.Column{ModelCallsColumns[12], ModelCallsColumns[1]},
			},
			{
				Name:    "modelcall_provider_created_at",
				Unique:  false,
				Columns: []*schema.Column{ModelCallsColumns[3], ModelCallsColumns[11]},
			},
		},
	}
	// MotifsColumns holds the columns for the "motifs" table.
	MotifsColumns = []*schema.Column{
		{Name: "motif_id", Type: field.TypeString, Unique: true},
		{Name: "name", Type: field.TypeString},
		{Name: "description", Type: field.TypeString, Size: 2147483647},
		{Name: "occurrences", Type: field.TypeJSON},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "world_id", Type: field.TypeString},
	}
	// MotifsTable holds the schema information for the "motifs" table.
	MotifsTable = &schema.Table{
		Name:       "motifs",
		Columns:    MotifsColumns,
		PrimaryKey: []*schema.Column{MotifsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "motifs_worlds_motifs",
				Columns:    []*schema.Column{MotifsColumns[5]},
				RefColumns: []*schema.Column{WorldsColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "motif_world_id_name",
				Unique:  true,
				Columns: []*schema.Column{MotifsColumns[5], MotifsColumns[1]},
			},
		},
	}
	// RelationshipsColumns holds the columns for the "relationships" table.
	RelationshipsColumns = []*schema.Column{
		{Name: "relationship_id", Type: field.TypeString, Unique: true},
		{Name: "from_character_id", Type: field.TypeString},
		{Name: "to_character_id", Type: field.TypeString},
		{Name: "kind", Type: field.TypeString},
		{Name: "weight", Type: field.TypeFloat64},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "world_id", Type: field.TypeString},
	}
	// RelationshipsTable holds the schema information for the "relationships" table.
	RelationshipsTable = &schema.Table{
		Name:       "relationships",
		Columns:    RelationshipsColumns,
		PrimaryKey: []*schema.Column{RelationshipsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "relationships_worlds_relationships",
				Columns:    []*schema.Column{RelationshipsColumns[6]},
				RefColumns: []*schema.Column{WorldsColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "relationship_world_id",
				Unique:  false,
				Columns: []*schema.Column{RelationshipsColumns[6]},
			},
			{
				Name:    "relationship_from_character_id",
				Unique:  false,
				Columns: []*schema.Column{RelationshipsColumns[1]},
			},
			{
				Name:    "relationship_to_character_id",
				Unique:  false,
				Columns: []*schema.Column{RelationshipsColumns[2]},
			},
		},
	}
	// StoryEventsColumns holds the columns for the "story_events" table.
	StoryEventsColumns = []*schema.Column{
		{Name: "story_event_id", Type: field.TypeString, Unique: true},
		{Name: "participant_ids", Type: field.TypeJSON},
		{Name: "location", Type: field.TypeString},
		{Name: "description", Type: field.TypeString, Size: 2147483647},
		{Name: "consequences", Type: field.TypeJSON},
		{Name: "story_time", Type: field.TypeInt},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "world_id", Type: field.TypeString},
	}
	// StoryEventsTable holds the schema information for the "story_events" table.
	StoryEventsTable = &schema.Table{
		Name:       "story_events",
		Columns:    StoryEventsColumns,
		PrimaryKey: []*schema.Column{StoryEventsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "story_events_worlds_story_events",
				Columns:    []*schema.Column{StoryEventsColumns[7]},
				RefColumns: []*schema.Column{WorldsColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "storyevent_world_id_story_time",
				Unique:  false,
				Columns: []*schema.Column{StoryEventsColumns[7], StoryEventsColumns[5]},
			},
		},
	}
	// WorldsColumns holds the columns for the "worlds" table.
	WorldsColumns = []*schema.Column{
		{Name: "world_id", Type: field.TypeString, Unique: true},
		{Name: "name", Type: field.TypeString},
		{Name: "rules", Type: field.TypeJSON},
		{Name: "boundaries", Type: field.TypeJSON},
		{Name: "anomalies", Type: field.TypeJSON},
		{Name: "core_conflict", Type: field.TypeString, Size: 2147483647},
		{Name: "theme", Type: field.TypeString, Size: 2147483647},
		{Name: "scale", Type: field.TypeEnum, Enums: []string{"intimate", "regional", "global", "cosmic"}, Default: "regional"},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "job_id", Type: field.TypeString, Unique: true},
	}
	// WorldsTable holds the schema information for the "worlds" table.
	WorldsTable = &schema.Table{
		Name:       "worlds",
		Columns:    WorldsColumns,
		PrimaryKey: []*schema.Column{WorldsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "worlds_jobs_world",
				Columns:    []*schema.Column{WorldsColumns[9]},
				RefColumns: []*schema.Column{JobsColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "world_job_id",
				Unique:  false,
				Columns: []*schema.Column{WorldsColumns[9]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		CharactersTable,
		CheckpointsTable,
		EventsTable,
		EvolutionEntriesTable,
		JobsTable,
		ModelCallsTable,
		MotifsTable,
		RelationshipsTable,
		StoryEventsTable,
		WorldsTable,
	}
)

func init() {
	CharactersTable.ForeignKeys[0].RefTable = WorldsTable
	CheckpointsTable.ForeignKeys[0].RefTable = JobsTable
	EventsTable.ForeignKeys[0].RefTable = JobsTable
	EvolutionEntriesTable.ForeignKeys[0].RefTable = WorldsTable
	ModelCallsTable.ForeignKeys[0].RefTable = JobsTable
	MotifsTable.ForeignKeys[0].RefTable = WorldsTable
	RelationshipsTable.ForeignKeys[0].RefTable = WorldsTable
	StoryEventsTable.ForeignKeys[0].RefTable = WorldsTable
	WorldsTable.ForeignKeys[0].RefTable = JobsTable
}
