package stages

import (
	"fmt"
	"strings"

	"github.com/narraforge/narraforge/pkg/config"
	"github.com/narraforge/narraforge/pkg/pipeline"
	"github.com/narraforge/narraforge/pkg/textcheck"
)

// EditorialReviewer (stage 9) produces the final cut: tightened segments
// plus a report of every change and why. The cut must clear the cliché and
// repetition detectors; the reviewer exists to remove what the generator
// and stylizer let through.
type EditorialReviewer struct {
	cfg *config.Config
}

// NewEditorialReviewer creates the stage 9 agent
func NewEditorialReviewer(cfg *config.Config) *EditorialReviewer {
	return &EditorialReviewer{cfg: cfg}
}

func (a *EditorialReviewer) Name() string               { return "editorial-reviewer" }
func (a *EditorialReviewer) Stage() int                 { return 9 }
func (a *EditorialReviewer) ProducedKey() string        { return pipeline.KeyEditorialReport }
func (a *EditorialReviewer) PreferredTier() config.Tier { return config.TierMini }

func (a *EditorialReviewer) RequiredKeys() []string {
	return []string{pipeline.KeyStylizedSegments}
}

func (a *EditorialReviewer) SystemPrompt() string {
	return `You are a line editor. Produce the final cut of the segments:
remove clichés, cut filler words, tighten without losing meaning. Keep the
segment count unchanged; record every non-trivial change.

Respond with a single JSON object:
{
  "segments": ["<final text of segment 1>", ...],
  "changes": [
    {"segment": <index>, "change": "<what changed>", "rationale": "<why>"},
    ...
  ]
}`
}

func (a *EditorialReviewer) BuildUserPrompt(pc *pipeline.Context) (string, error) {
	var stylized StylizedSet
	if err := pc.Unmarshal(pipeline.KeyStylizedSegments, &stylized); err != nil {
		return "", err
	}

	var b strings.Builder
	b.WriteString("Banned phrases (must not survive the cut):\n")
	for _, phrase := range a.cfg.Production.BannedPhrases {
		if phrase.MaxPer1000Words == nil {
			fmt.Fprintf(&b, "- %s\n", phrase.Phrase)
		}
	}
	b.WriteString("\nSegments:\n")
	for _, seg := range stylized.Segments {
		fmt.Fprintf(&b, "--- segment %d ---\n%s\n", seg.Index, seg.Text)
	}
	b.WriteString("\nProduce the final cut.")
	return b.String(), nil
}

func (a *EditorialReviewer) Parse(raw string) (any, error) {
	return decodeJSON[EditorialResult](raw)
}

func (a *EditorialReviewer) Validate(result any, pc *pipeline.Context) error {
	res, ok := result.(*EditorialResult)
	if !ok {
		return fmt.Errorf("unexpected result type %T", result)
	}

	var stylized StylizedSet
	if err := pc.Unmarshal(pipeline.KeyStylizedSegments, &stylized); err != nil {
		return err
	}
	if len(res.Segments) != len(stylized.Segments) {
		return fmt.Errorf("final cut has %d segments, expected %d", len(res.Segments), len(stylized.Segments))
	}

	full := strings.Join(res.Segments, "\n\n")
	if hits := textcheck.DetectCliches(full, a.cfg.Production.BannedPhrases); len(hits) > 0 {
		return pipeline.NewAgentError(pipeline.ErrorKindQuality,
			fmt.Sprintf("final cut still contains %q (%d times)", hits[0].Phrase, hits[0].Count),
			nil)
	}
	if hits := textcheck.DetectRepetition(full, a.cfg.Production.RepetitionBudgets); len(hits) > 0 {
		return pipeline.NewAgentError(pipeline.ErrorKindQuality,
			fmt.Sprintf("final cut overuses %q: %.1f per 1000 words (budget %d)",
				hits[0].Word, hits[0].Per1000, hits[0].Budget),
			nil)
	}
	for i, text := range res.Segments {
		if textcheck.EndsMidWord(text) {
			return fmt.Errorf("segment %d of the final cut is truncated", i+1)
		}
	}
	return nil
}
