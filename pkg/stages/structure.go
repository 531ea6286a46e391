package stages

import (
	"fmt"

	"github.com/narraforge/narraforge/pkg/config"
	"github.com/narraforge/narraforge/pkg/pipeline"
)

// StructureDesigner (stage 4) lays out the act and chapter skeleton. Every
// beat after the first must follow causally from its predecessor: a
// "therefore" or a "but", never an "and then".
type StructureDesigner struct {
	cfg *config.Config
}

// NewStructureDesigner creates the stage 4 agent
func NewStructureDesigner(cfg *config.Config) *StructureDesigner {
	return &StructureDesigner{cfg: cfg}
}

func (a *StructureDesigner) Name() string               { return "structure-designer" }
func (a *StructureDesigner) Stage() int                 { return 4 }
func (a *StructureDesigner) ProducedKey() string        { return pipeline.KeyStructure }
func (a *StructureDesigner) PreferredTier() config.Tier { return config.TierMini }

func (a *StructureDesigner) RequiredKeys() []string {
	return []string{
		pipeline.KeyBriefInterpretation,
		pipeline.KeyWorldBible,
		pipeline.KeyCharacters,
	}
}

func (a *StructureDesigner) SystemPrompt() string {
	return `You are a structure designer. Build the act and chapter skeleton
for this story. Each beat must be causally linked to the previous one with
either "therefore" (consequence) or "but" (reversal). "And then" is not a
story; never produce a beat that merely follows in time.

Respond with a single JSON object:
{
  "acts": [
    {
      "title": "<act title>",
      "beats": [
        {"title": "<beat>", "summary": "<what happens>", "causal_link": "therefore|but"},
        ...
      ]
    },
    ...
  ]
}

The very first beat of the work carries no causal_link. Match the beat
count to the target chapter count.`
}

func (a *StructureDesigner) BuildUserPrompt(pc *pipeline.Context) (string, error) {
	var interp BriefInterpretation
	if err := pc.Unmarshal(pipeline.KeyBriefInterpretation, &interp); err != nil {
		return "", err
	}
	var world WorldBible
	if err := pc.Unmarshal(pipeline.KeyWorldBible, &world); err != nil {
		return "", err
	}
	var set CharacterSet
	if err := pc.Unmarshal(pipeline.KeyCharacters, &set); err != nil {
		return "", err
	}

	names := make([]string, 0, len(set.Characters))
	for _, c := range set.Characters {
		names = append(names, c.Name)
	}

	return fmt.Sprintf(
		"Genre: %s\nTarget: %d words across %d chapters\nCore conflict: %s\nCharacters: %v\n\nDesign the skeleton.",
		interp.Genre, interp.TargetWordCount, interp.TargetChapterCount, world.CoreConflict, names,
	), nil
}

func (a *StructureDesigner) Parse(raw string) (any, error) {
	return decodeJSON[Structure](raw)
}

func (a *StructureDesigner) Validate(result any, pc *pipeline.Context) error {
	structure, ok := result.(*Structure)
	if !ok {
		return fmt.Errorf("unexpected result type %T", result)
	}

	if len(structure.Acts) == 0 {
		return fmt.Errorf("no acts produced")
	}

	first := true
	for ai, act := range structure.Acts {
		if len(act.Beats) == 0 {
			return fmt.Errorf("act %d has no beats", ai+1)
		}
		for bi, beat := range act.Beats {
			if beat.Summary == "" {
				return fmt.Errorf("act %d beat %d has no summary", ai+1, bi+1)
			}
			if first {
				first = false
				if beat.CausalLink != "" {
					return fmt.Errorf("the opening beat cannot have a causal link")
				}
				continue
			}
			switch beat.CausalLink {
			case "therefore", "but":
			default:
				return fmt.Errorf("act %d beat %d causal_link %q: must be \"therefore\" or \"but\"", ai+1, bi+1, beat.CausalLink)
			}
		}
	}
	return nil
}
