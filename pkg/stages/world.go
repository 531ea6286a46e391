package stages

import (
	"fmt"

	"github.com/narraforge/narraforge/pkg/config"
	"github.com/narraforge/narraforge/pkg/pipeline"
)

// WorldArchitect (stage 2) designs the story world: rules of reality,
// boundaries, anomalies, the core conflict and the existential theme. The
// result lands in structural memory at the checkpoint.
type WorldArchitect struct {
	cfg *config.Config
}

// NewWorldArchitect creates the stage 2 agent
func NewWorldArchitect(cfg *config.Config) *WorldArchitect {
	return &WorldArchitect{cfg: cfg}
}

func (a *WorldArchitect) Name() string               { return "world-architect" }
func (a *WorldArchitect) Stage() int                 { return 2 }
func (a *WorldArchitect) RequiredKeys() []string     { return []string{pipeline.KeyBriefInterpretation} }
func (a *WorldArchitect) ProducedKey() string        { return pipeline.KeyWorldBible }
func (a *WorldArchitect) PreferredTier() config.Tier { return config.TierMini }

func (a *WorldArchitect) SystemPrompt() string {
	return `You are a world architect for long-form fiction. Design a story
world that can sustain the whole narrative: internally consistent rules,
hard boundaries nothing in the story may cross, and a small number of
deliberate anomalies that create narrative pressure.

Respond with a single JSON object:
{
  "name": "<world name>",
  "rules": ["<rule of reality>", ...],
  "boundaries": ["<hard limit>", ...],
  "anomalies": ["<deliberate exception>", ...],
  "core_conflict": "<the conflict everything orbits>",
  "theme": "<the existential theme>",
  "scale": "intimate|regional|global|cosmic"
}

At least three rules. Scale must match the requested world scale.`
}

func (a *WorldArchitect) BuildUserPrompt(pc *pipeline.Context) (string, error) {
	var interp BriefInterpretation
	if err := pc.Unmarshal(pipeline.KeyBriefInterpretation, &interp); err != nil {
		return "", err
	}

	return fmt.Sprintf(
		"Genre: %s\nTone: %s\nThematic focus: %s\nWorld scale: %s\nTarget length: %d words\n\nDesign the world.",
		interp.Genre, interp.Tone, interp.ThematicFocus, interp.WorldScale, interp.TargetWordCount,
	), nil
}

func (a *WorldArchitect) Parse(raw string) (any, error) {
	return decodeJSON[WorldBible](raw)
}

func (a *WorldArchitect) Validate(result any, pc *pipeline.Context) error {
	world, ok := result.(*WorldBible)
	if !ok {
		return fmt.Errorf("unexpected result type %T", result)
	}

	if world.Name == "" {
		return fmt.Errorf("world name is empty")
	}
	if len(world.Rules) < 3 {
		return fmt.Errorf("world needs at least 3 rules, got %d", len(world.Rules))
	}
	if world.CoreConflict == "" {
		return fmt.Errorf("core_conflict is empty")
	}
	if world.Theme == "" {
		return fmt.Errorf("theme is empty")
	}

	var interp BriefInterpretation
	if err := pc.Unmarshal(pipeline.KeyBriefInterpretation, &interp); err != nil {
		return err
	}
	if world.Scale != interp.WorldScale {
		return fmt.Errorf("world scale %q does not match requested %q", world.Scale, interp.WorldScale)
	}
	return nil
}
