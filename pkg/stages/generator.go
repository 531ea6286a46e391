package stages

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"
	"strings"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/narraforge/narraforge/pkg/config"
	"github.com/narraforge/narraforge/pkg/model"
	"github.com/narraforge/narraforge/pkg/pipeline"
	"github.com/narraforge/narraforge/pkg/textcheck"
)

// SequentialGenerator (stage 6) writes the prose. One segment per plan
// entry, each produced by its own model call with an optional revision
// pass when the draft trips a text-health check. Segments are generated
// by a bounded pool and reassembled in plan order. Always runs on the
// advanced tier.
type SequentialGenerator struct {
	cfg *config.Config
}

// NewSequentialGenerator creates the stage 6 agent
func NewSequentialGenerator(cfg *config.Config) *SequentialGenerator {
	return &SequentialGenerator{cfg: cfg}
}

func (a *SequentialGenerator) Name() string               { return "sequential-generator" }
func (a *SequentialGenerator) Stage() int                 { return 6 }
func (a *SequentialGenerator) ProducedKey() string        { return pipeline.KeySegments }
func (a *SequentialGenerator) PreferredTier() config.Tier { return config.TierAdvanced }

func (a *SequentialGenerator) RequiredKeys() []string {
	return []string{
		pipeline.KeyBriefInterpretation,
		pipeline.KeyWorldBible,
		pipeline.KeyCharacters,
		pipeline.KeySegmentPlan,
	}
}

func (a *SequentialGenerator) SystemPrompt() string {
	return `You are a prose writer. Write one segment of a longer narrative
exactly as briefed: the segment's goal, its conflict, its point-of-view
character, and its emotional landing. Stay inside the world rules and the
POV character's knowledge limits. End on a complete sentence.

Respond with a single JSON object:
{"text": "<the prose>", "self_score": <0.0-1.0 honest quality estimate>}`
}

// BuildUserPrompt is unused; the executor builds one prompt per segment
func (a *SequentialGenerator) BuildUserPrompt(pc *pipeline.Context) (string, error) {
	return "", fmt.Errorf("sequential-generator drives its own call pattern")
}

func (a *SequentialGenerator) Parse(raw string) (any, error) {
	return decodeJSON[SegmentSet](raw)
}

func (a *SequentialGenerator) Validate(result any, pc *pipeline.Context) error {
	set, ok := result.(*SegmentSet)
	if !ok {
		return fmt.Errorf("unexpected result type %T", result)
	}

	var plan SegmentPlan
	if err := pc.Unmarshal(pipeline.KeySegmentPlan, &plan); err != nil {
		return err
	}
	if len(set.Segments) != len(plan.Segments) {
		return fmt.Errorf("generated %d segments, plan has %d", len(set.Segments), len(plan.Segments))
	}

	for i, seg := range set.Segments {
		if seg.Index != i+1 {
			return fmt.Errorf("segments out of order at position %d", i)
		}
		if seg.Text == "" {
			return fmt.Errorf("segment %d is empty", seg.Index)
		}
		if textcheck.EndsMidWord(seg.Text) {
			return pipeline.NewAgentError(pipeline.ErrorKindQuality,
				fmt.Sprintf("segment %d is truncated", seg.Index), nil)
		}
	}
	return nil
}

// segmentDraft is the per-call model payload
type segmentDraft struct {
	Text      string  `json:"text"`
	SelfScore float64 `json:"self_score"`
}

// Execute generates all planned segments through a bounded worker pool
func (a *SequentialGenerator) Execute(ctx context.Context, env *pipeline.Env, pc *pipeline.Context) (json.RawMessage, error) {
	var interp BriefInterpretation
	if err := pc.Unmarshal(pipeline.KeyBriefInterpretation, &interp); err != nil {
		return nil, err
	}
	var plan SegmentPlan
	if err := pc.Unmarshal(pipeline.KeySegmentPlan, &plan); err != nil {
		return nil, err
	}

	worldSummary, charSummaries, err := a.summaries(ctx, env, pc)
	if err != nil {
		return nil, err
	}

	total := len(plan.Segments)
	results := make([]Segment, total)

	var mu sync.Mutex
	done := 0

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(a.concurrency())

	for i, desc := range plan.Segments {
		g.Go(func() error {
			seg, err := a.generateSegment(gctx, env, interp, desc, worldSummary, charSummaries[desc.POVCharacter])
			if err != nil {
				return fmt.Errorf("segment %d: %w", desc.Index, err)
			}
			results[i] = seg

			mu.Lock()
			done++
			env.ReportProgress(done, total, fmt.Sprintf("segment %d written", desc.Index))
			mu.Unlock()
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	sort.Slice(results, func(i, j int) bool { return results[i].Index < results[j].Index })
	set := &SegmentSet{Segments: results}

	if err := a.Validate(set, pc); err != nil {
		return nil, err
	}

	return json.Marshal(set)
}

// generateSegment runs the draft call plus at most one revision pass
func (a *SequentialGenerator) generateSegment(ctx context.Context, env *pipeline.Env, interp BriefInterpretation, desc SegmentDescriptor, worldSummary, povSummary string) (Segment, error) {
	prompt := a.segmentPrompt(interp, desc, worldSummary, povSummary)

	draft, err := a.callForDraft(ctx, env, desc, prompt)
	if err != nil {
		return Segment{}, err
	}

	if issues := a.textIssues(draft.Text); issues != "" {
		revisePrompt := fmt.Sprintf("%s\n\nYour previous draft had problems: %s\nRewrite the segment fixing them. Same goal, same POV, same length.\n\nPrevious draft:\n%s",
			prompt, issues, draft.Text)
		revised, err := a.callForDraft(ctx, env, desc, revisePrompt)
		if err != nil {
			return Segment{}, err
		}
		if remaining := a.textIssues(revised.Text); remaining != "" {
			return Segment{}, pipeline.NewAgentError(pipeline.ErrorKindQuality,
				fmt.Sprintf("segment still unhealthy after revision: %s", remaining), nil)
		}
		draft = revised
	}

	return Segment{
		Index:     desc.Index,
		Text:      draft.Text,
		Words:     textcheck.CountWords(draft.Text),
		SelfScore: draft.SelfScore,
	}, nil
}

func (a *SequentialGenerator) callForDraft(ctx context.Context, env *pipeline.Env, desc SegmentDescriptor, prompt string) (*segmentDraft, error) {
	resp, err := env.Generate(ctx, a.Stage(), model.Request{
		System:      a.SystemPrompt(),
		User:        prompt,
		MaxTokens:   desc.TargetWords * 2,
		Temperature: 0.8,
	})
	if err != nil {
		return nil, err
	}

	draft, err := decodeJSON[segmentDraft](resp.Content)
	if err != nil {
		return nil, pipeline.NewAgentError(pipeline.ErrorKindSchema, "segment draft did not parse", err)
	}
	if draft.Text == "" {
		return nil, pipeline.NewAgentError(pipeline.ErrorKindSchema, "segment draft is empty", nil)
	}
	return draft, nil
}

// textIssues reports the draft's text-health violations as a prompt-ready
// string, empty when clean
func (a *SequentialGenerator) textIssues(text string) string {
	var issues []string
	if textcheck.EndsMidWord(text) {
		issues = append(issues, "the text is cut off mid-sentence")
	}
	for _, hit := range textcheck.DetectCliches(text, a.cfg.Production.BannedPhrases) {
		issues = append(issues, fmt.Sprintf("banned phrase %q used %d times", hit.Phrase, hit.Count))
	}
	for _, hit := range textcheck.DetectRepetition(text, a.cfg.Production.RepetitionBudgets) {
		issues = append(issues, fmt.Sprintf("%q used %.1f times per 1000 words (budget %d)", hit.Word, hit.Per1000, hit.Budget))
	}
	return strings.Join(issues, "; ")
}

func (a *SequentialGenerator) segmentPrompt(interp BriefInterpretation, desc SegmentDescriptor, worldSummary, povSummary string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Write segment %d of a %s (%s, in %s).\n", desc.Index, interp.ProductionType, interp.Genre, interp.ContentLanguage)
	fmt.Fprintf(&b, "Goal: %s\nConflict: %s\nEmotional landing: %s\n", desc.Goal, desc.Conflict, desc.EmotionalBeat)
	fmt.Fprintf(&b, "POV character: %s\n", desc.POVCharacter)
	if povSummary != "" {
		fmt.Fprintf(&b, "About the POV character: %s\n", povSummary)
	}
	if worldSummary != "" {
		fmt.Fprintf(&b, "World: %s\n", worldSummary)
	}
	fmt.Fprintf(&b, "Target length: about %d words.\n", desc.TargetWords)
	return b.String()
}

// summaries returns bounded world and per-character summaries for prompt
// inclusion, from the triple memory when wired and from the pipeline
// context otherwise. Full prior text is never re-sent.
func (a *SequentialGenerator) summaries(ctx context.Context, env *pipeline.Env, pc *pipeline.Context) (string, map[string]string, error) {
	charSummaries := make(map[string]string)

	if env.Memory != nil {
		w, err := env.Memory.Structural.GetWorldByJob(ctx, env.JobID)
		if err == nil {
			worldSummary, err := env.Memory.SummarizeWorld(ctx, w.ID, 0)
			if err != nil {
				return "", nil, err
			}
			characters, err := env.Memory.Structural.ListCharacters(ctx, w.ID)
			if err != nil {
				return "", nil, err
			}
			for _, c := range characters {
				summary, err := env.Memory.SummarizeCharacter(ctx, c.ID, 0)
				if err != nil {
					return "", nil, err
				}
				charSummaries[c.Name] = summary
			}
			return worldSummary, charSummaries, nil
		}
	}

	// Memory not wired (or the world not persisted yet): summarise from
	// the context payloads
	var world WorldBible
	if err := pc.Unmarshal(pipeline.KeyWorldBible, &world); err != nil {
		return "", nil, err
	}
	var set CharacterSet
	if err := pc.Unmarshal(pipeline.KeyCharacters, &set); err != nil {
		return "", nil, err
	}

	worldSummary := fmt.Sprintf("%s (%s scale). Theme: %s. Core conflict: %s. Rules: %s.",
		world.Name, world.Scale, world.Theme, world.CoreConflict, strings.Join(world.Rules, "; "))
	for _, c := range set.Characters {
		charSummaries[c.Name] = fmt.Sprintf("%s. Trajectory: %s. Contradictions: %s. Does not know: %s.",
			c.Name, c.Trajectory, strings.Join(c.Contradictions, "; "), strings.Join(c.CognitiveLimits, "; "))
	}
	return worldSummary, charSummaries, nil
}

func (a *SequentialGenerator) concurrency() int {
	if n := a.cfg.Production.SegmentConcurrency; n > 0 {
		return n
	}
	return 1
}
