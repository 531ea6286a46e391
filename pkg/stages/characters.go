package stages

import (
	"fmt"

	"github.com/narraforge/narraforge/pkg/config"
	"github.com/narraforge/narraforge/pkg/pipeline"
)

// CharacterArchitect (stage 3) produces the character ensemble. Characters
// are processes, not portraits: each carries an internal trajectory, at
// least one contradiction, at least one cognitive limit, and a capacity
// for change in [0,1].
type CharacterArchitect struct {
	cfg *config.Config
}

// NewCharacterArchitect creates the stage 3 agent
func NewCharacterArchitect(cfg *config.Config) *CharacterArchitect {
	return &CharacterArchitect{cfg: cfg}
}

func (a *CharacterArchitect) Name() string               { return "character-architect" }
func (a *CharacterArchitect) Stage() int                 { return 3 }
func (a *CharacterArchitect) ProducedKey() string        { return pipeline.KeyCharacters }
func (a *CharacterArchitect) PreferredTier() config.Tier { return config.TierMini }

func (a *CharacterArchitect) RequiredKeys() []string {
	return []string{pipeline.KeyBriefInterpretation, pipeline.KeyWorldBible}
}

func (a *CharacterArchitect) SystemPrompt() string {
	return `You are a character architect. Create the ensemble for this story.
Every character is a process: give each an internal trajectory independent
of the plot, at least one genuine contradiction, and at least one cognitive
limit (something they do not and cannot yet know).

Respond with a single JSON object:
{
  "characters": [
    {
      "name": "<name>",
      "role": "<protagonist|antagonist|supporting>",
      "trajectory": "<internal arc>",
      "contradictions": ["<contradiction>", ...],
      "cognitive_limits": ["<what they cannot know>", ...],
      "evolution_capacity": <0.0-1.0>
    },
    ...
  ]
}

Order matters: list characters by narrative importance.`
}

func (a *CharacterArchitect) BuildUserPrompt(pc *pipeline.Context) (string, error) {
	var interp BriefInterpretation
	if err := pc.Unmarshal(pipeline.KeyBriefInterpretation, &interp); err != nil {
		return "", err
	}
	var world WorldBible
	if err := pc.Unmarshal(pipeline.KeyWorldBible, &world); err != nil {
		return "", err
	}

	return fmt.Sprintf(
		"Genre: %s\nTone: %s\nWorld: %s (%s scale)\nCore conflict: %s\nTheme: %s\n\nCreate the ensemble.",
		interp.Genre, interp.Tone, world.Name, world.Scale, world.CoreConflict, world.Theme,
	), nil
}

func (a *CharacterArchitect) Parse(raw string) (any, error) {
	return decodeJSON[CharacterSet](raw)
}

func (a *CharacterArchitect) Validate(result any, pc *pipeline.Context) error {
	set, ok := result.(*CharacterSet)
	if !ok {
		return fmt.Errorf("unexpected result type %T", result)
	}

	if len(set.Characters) == 0 {
		return fmt.Errorf("no characters produced")
	}

	seen := make(map[string]bool, len(set.Characters))
	for i, c := range set.Characters {
		if c.Name == "" {
			return fmt.Errorf("character %d has no name", i)
		}
		if seen[c.Name] {
			return fmt.Errorf("duplicate character name %q", c.Name)
		}
		seen[c.Name] = true
		if len(c.Contradictions) == 0 {
			return fmt.Errorf("character %q has no contradiction", c.Name)
		}
		if len(c.CognitiveLimits) == 0 {
			return fmt.Errorf("character %q has no cognitive limit", c.Name)
		}
		if c.EvolutionCapacity < 0 || c.EvolutionCapacity > 1 {
			return fmt.Errorf("character %q evolution_capacity %.2f out of [0,1]", c.Name, c.EvolutionCapacity)
		}
	}
	return nil
}
