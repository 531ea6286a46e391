package stages

import (
	"fmt"
	"strings"

	"github.com/narraforge/narraforge/pkg/config"
	"github.com/narraforge/narraforge/pkg/pipeline"
	"github.com/narraforge/narraforge/pkg/textcheck"
)

// CoherenceValidator (stage 7) audits the generated segments against the
// world, the ensemble, and the structure. The model reports sub-scores and
// issues; the composite is recomputed here from the issue list and gated
// against the configured minimum.
type CoherenceValidator struct {
	cfg *config.Config
}

// NewCoherenceValidator creates the stage 7 agent
func NewCoherenceValidator(cfg *config.Config) *CoherenceValidator {
	return &CoherenceValidator{cfg: cfg}
}

func (a *CoherenceValidator) Name() string        { return "coherence-validator" }
func (a *CoherenceValidator) Stage() int          { return 7 }
func (a *CoherenceValidator) ProducedKey() string { return pipeline.KeyCoherenceReport }

func (a *CoherenceValidator) PreferredTier() config.Tier {
	return a.cfg.Production.CoherenceTier
}

func (a *CoherenceValidator) RequiredKeys() []string {
	return []string{
		pipeline.KeyWorldBible,
		pipeline.KeyCharacters,
		pipeline.KeyStructure,
		pipeline.KeySegments,
	}
}

func (a *CoherenceValidator) SystemPrompt() string {
	return `You are a coherence auditor for long-form fiction. Check the
segments against the world rules, the characters' knowledge limits, the
timeline, and the planned structure. Report every violation you find.

Respond with a single JSON object:
{
  "logical": <0.0-1.0>,
  "psychological": <0.0-1.0>,
  "temporal": <0.0-1.0>,
  "world_rule": <0.0-1.0>,
  "issues": [
    {
      "severity": "critical|major|minor|warning",
      "category": "logical|psychological|temporal|world_rule",
      "description": "<what is wrong and where>",
      "segment_index": <int>
    },
    ...
  ]
}

An empty issues list means the narrative is coherent.`
}

func (a *CoherenceValidator) BuildUserPrompt(pc *pipeline.Context) (string, error) {
	var world WorldBible
	if err := pc.Unmarshal(pipeline.KeyWorldBible, &world); err != nil {
		return "", err
	}
	var set CharacterSet
	if err := pc.Unmarshal(pipeline.KeyCharacters, &set); err != nil {
		return "", err
	}
	var segments SegmentSet
	if err := pc.Unmarshal(pipeline.KeySegments, &segments); err != nil {
		return "", err
	}

	var b strings.Builder
	fmt.Fprintf(&b, "World rules: %s\n", strings.Join(world.Rules, "; "))
	fmt.Fprintf(&b, "Boundaries: %s\n", strings.Join(world.Boundaries, "; "))
	for _, c := range set.Characters {
		fmt.Fprintf(&b, "%s must not know: %s\n", c.Name, strings.Join(c.CognitiveLimits, "; "))
	}
	b.WriteString("\nSegments:\n")
	for _, seg := range segments.Segments {
		fmt.Fprintf(&b, "--- segment %d ---\n%s\n", seg.Index, seg.Text)
	}
	b.WriteString("\nAudit the narrative.")
	return b.String(), nil
}

// rawCoherence is the model's report before the composite is recomputed
type rawCoherence struct {
	Logical       float64          `json:"logical"`
	Psychological float64          `json:"psychological"`
	Temporal      float64          `json:"temporal"`
	WorldRule     float64          `json:"world_rule"`
	Issues        []textcheck.Issue `json:"issues"`
}

func (a *CoherenceValidator) Parse(raw string) (any, error) {
	report, err := decodeJSON[rawCoherence](raw)
	if err != nil {
		return nil, err
	}

	for _, issue := range report.Issues {
		if !issue.Severity.IsValid() {
			return nil, fmt.Errorf("unknown issue severity %q", issue.Severity)
		}
	}

	// The composite is never taken from the model
	return &CoherenceResult{
		Report: textcheck.CoherenceReport{
			Logical:       report.Logical,
			Psychological: report.Psychological,
			Temporal:      report.Temporal,
			WorldRule:     report.WorldRule,
			Composite:     textcheck.ScoreIssues(report.Issues),
			Issues:        report.Issues,
		},
	}, nil
}

func (a *CoherenceValidator) Validate(result any, pc *pipeline.Context) error {
	res, ok := result.(*CoherenceResult)
	if !ok {
		return fmt.Errorf("unexpected result type %T", result)
	}

	report := res.Report
	for name, score := range map[string]float64{
		"logical":       report.Logical,
		"psychological": report.Psychological,
		"temporal":      report.Temporal,
		"world_rule":    report.WorldRule,
	} {
		if score < 0 || score > 1 {
			return fmt.Errorf("sub-score %s=%.2f out of [0,1]", name, score)
		}
	}

	threshold := a.cfg.Production.MinCoherenceScore
	if !report.Passes(threshold) {
		return pipeline.NewAgentError(pipeline.ErrorKindQuality,
			fmt.Sprintf("coherence %.2f below the %.2f gate (%d issues)",
				report.Composite, threshold, len(report.Issues)),
			nil)
	}
	return nil
}
