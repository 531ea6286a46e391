package stages

import (
	"fmt"
	"strings"

	"github.com/narraforge/narraforge/pkg/config"
	"github.com/narraforge/narraforge/pkg/models"
	"github.com/narraforge/narraforge/pkg/pipeline"
)

// BriefInterpreter (stage 1) normalises the raw brief into production
// parameters. Identical briefs yield identical parameters modulo model
// non-determinism: the prompt carries no job-specific state beyond the
// brief itself.
type BriefInterpreter struct {
	cfg *config.Config
}

// NewBriefInterpreter creates the stage 1 agent
func NewBriefInterpreter(cfg *config.Config) *BriefInterpreter {
	return &BriefInterpreter{cfg: cfg}
}

func (a *BriefInterpreter) Name() string              { return "brief-interpreter" }
func (a *BriefInterpreter) Stage() int                { return 1 }
func (a *BriefInterpreter) RequiredKeys() []string    { return []string{pipeline.KeyBrief} }
func (a *BriefInterpreter) ProducedKey() string       { return pipeline.KeyBriefInterpretation }
func (a *BriefInterpreter) PreferredTier() config.Tier { return config.TierMini }

func (a *BriefInterpreter) SystemPrompt() string {
	return `You are a production analyst for long-form narrative generation.
Normalise the submitted brief into concrete production parameters.

Respond with a single JSON object:
{
  "production_type": "short_story|novella|novel|epic_saga",
  "genre": "<genre>",
  "target_word_count": <int>,
  "target_chapter_count": <int>,
  "tone": "<dominant tone>",
  "thematic_focus": "<one sentence>",
  "world_scale": "intimate|regional|global|cosmic",
  "content_language": "<BCP 47 tag of the language the narrative must be written in>"
}

Carry production_type, genre and target_word_count over from the brief
verbatim. Infer the rest from the inspiration text. Keep content_language
equal to the brief's language field.`
}

func (a *BriefInterpreter) BuildUserPrompt(pc *pipeline.Context) (string, error) {
	var brief models.Brief
	if err := pc.Unmarshal(pipeline.KeyBrief, &brief); err != nil {
		return "", err
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Production type: %s\n", brief.ProductionType)
	fmt.Fprintf(&b, "Genre: %s\n", brief.Genre)
	fmt.Fprintf(&b, "Target word count: %d\n", brief.EffectiveWordCount())
	fmt.Fprintf(&b, "Content language: %s\n", brief.Language())
	if len(brief.StyleHints) > 0 {
		fmt.Fprintf(&b, "Style hints: %s\n", strings.Join(brief.StyleHints, "; "))
	}
	fmt.Fprintf(&b, "\nInspiration:\n%s\n", brief.Inspiration)
	return b.String(), nil
}

func (a *BriefInterpreter) Parse(raw string) (any, error) {
	return decodeJSON[BriefInterpretation](raw)
}

func (a *BriefInterpreter) Validate(result any, pc *pipeline.Context) error {
	interp, ok := result.(*BriefInterpretation)
	if !ok {
		return fmt.Errorf("unexpected result type %T", result)
	}

	var brief models.Brief
	if err := pc.Unmarshal(pipeline.KeyBrief, &brief); err != nil {
		return err
	}

	if interp.ProductionType != brief.ProductionType {
		return fmt.Errorf("production_type changed from %q to %q", brief.ProductionType, interp.ProductionType)
	}
	if interp.TargetWordCount != brief.EffectiveWordCount() {
		return fmt.Errorf("target_word_count changed from %d to %d", brief.EffectiveWordCount(), interp.TargetWordCount)
	}
	if interp.TargetChapterCount < 1 {
		return fmt.Errorf("target_chapter_count must be at least 1")
	}
	switch interp.WorldScale {
	case "intimate", "regional", "global", "cosmic":
	default:
		return fmt.Errorf("unknown world_scale %q", interp.WorldScale)
	}
	if interp.Genre == "" {
		return fmt.Errorf("genre is empty")
	}
	return nil
}
