package stages

import (
	"fmt"
	"math"

	"github.com/narraforge/narraforge/pkg/config"
	"github.com/narraforge/narraforge/pkg/pipeline"
)

// segmentPlanTolerance is the allowed deviation between the plan's summed
// word targets and the overall target.
const segmentPlanTolerance = 0.10

// SegmentPlanner (stage 5) turns the structure into an ordered list of
// segment descriptors whose word targets sum to the overall target within
// tolerance.
type SegmentPlanner struct {
	cfg *config.Config
}

// NewSegmentPlanner creates the stage 5 agent
func NewSegmentPlanner(cfg *config.Config) *SegmentPlanner {
	return &SegmentPlanner{cfg: cfg}
}

func (a *SegmentPlanner) Name() string               { return "segment-planner" }
func (a *SegmentPlanner) Stage() int                 { return 5 }
func (a *SegmentPlanner) ProducedKey() string        { return pipeline.KeySegmentPlan }
func (a *SegmentPlanner) PreferredTier() config.Tier { return config.TierMini }

func (a *SegmentPlanner) RequiredKeys() []string {
	return []string{
		pipeline.KeyBriefInterpretation,
		pipeline.KeyCharacters,
		pipeline.KeyStructure,
	}
}

func (a *SegmentPlanner) SystemPrompt() string {
	return `You are a segment planner. Break the structure into prose
segments a generator can write one at a time. Each segment needs a goal,
a conflict, a point-of-view character from the ensemble, a word target,
and the emotional beat the reader should land on.

Respond with a single JSON object:
{
  "segments": [
    {
      "index": 1,
      "goal": "<what the segment accomplishes>",
      "conflict": "<the opposition in it>",
      "pov_character": "<name from the ensemble>",
      "target_words": <int>,
      "emotional_beat": "<dread|relief|loss|...>"
    },
    ...
  ]
}

Indexes start at 1 and are consecutive. The word targets must sum to the
overall target within 10 percent.`
}

func (a *SegmentPlanner) BuildUserPrompt(pc *pipeline.Context) (string, error) {
	var interp BriefInterpretation
	if err := pc.Unmarshal(pipeline.KeyBriefInterpretation, &interp); err != nil {
		return "", err
	}
	var structure Structure
	if err := pc.Unmarshal(pipeline.KeyStructure, &structure); err != nil {
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

	prompt := fmt.Sprintf("Overall target: %d words.\nEnsemble: %v\n\nStructure:\n", interp.TargetWordCount, names)
	for ai, act := range structure.Acts {
		prompt += fmt.Sprintf("Act %d: %s\n", ai+1, act.Title)
		for _, beat := range act.Beats {
			link := beat.CausalLink
			if link == "" {
				link = "opening"
			}
			prompt += fmt.Sprintf("  [%s] %s: %s\n", link, beat.Title, beat.Summary)
		}
	}
	prompt += "\nPlan the segments."
	return prompt, nil
}

func (a *SegmentPlanner) Parse(raw string) (any, error) {
	return decodeJSON[SegmentPlan](raw)
}

func (a *SegmentPlanner) Validate(result any, pc *pipeline.Context) error {
	plan, ok := result.(*SegmentPlan)
	if !ok {
		return fmt.Errorf("unexpected result type %T", result)
	}

	if len(plan.Segments) == 0 {
		return fmt.Errorf("no segments planned")
	}

	var set CharacterSet
	if err := pc.Unmarshal(pipeline.KeyCharacters, &set); err != nil {
		return err
	}
	ensemble := make(map[string]bool, len(set.Characters))
	for _, c := range set.Characters {
		ensemble[c.Name] = true
	}

	total := 0
	for i, seg := range plan.Segments {
		if seg.Index != i+1 {
			return fmt.Errorf("segment indexes must be consecutive from 1, got %d at position %d", seg.Index, i)
		}
		if seg.TargetWords <= 0 {
			return fmt.Errorf("segment %d has no word target", seg.Index)
		}
		if seg.Goal == "" {
			return fmt.Errorf("segment %d has no goal", seg.Index)
		}
		if !ensemble[seg.POVCharacter] {
			return fmt.Errorf("segment %d POV character %q is not in the ensemble", seg.Index, seg.POVCharacter)
		}
		total += seg.TargetWords
	}

	var interp BriefInterpretation
	if err := pc.Unmarshal(pipeline.KeyBriefInterpretation, &interp); err != nil {
		return err
	}
	target := interp.TargetWordCount
	if target > 0 {
		deviation := math.Abs(float64(total-target)) / float64(target)
		if deviation > segmentPlanTolerance {
			return fmt.Errorf("planned %d words against a %d target, %.0f%% off (max 10%%)",
				total, target, deviation*100)
		}
	}
	return nil
}
