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

// LanguageStylizer (stage 8) rewrites each segment in the target language
// and register without losing content. Loss shows up as word count: a
// rewrite below the configured ratio of its source counts as truncation
// and earns one retry before failing the attempt. Always runs on the
// advanced tier with a token budget of at least three times the source
// words, for languages with higher token density.
type LanguageStylizer struct {
	cfg *config.Config
}

// NewLanguageStylizer creates the stage 8 agent
func NewLanguageStylizer(cfg *config.Config) *LanguageStylizer {
	return &LanguageStylizer{cfg: cfg}
}

func (a *LanguageStylizer) Name() string               { return "language-stylizer" }
func (a *LanguageStylizer) Stage() int                 { return 8 }
func (a *LanguageStylizer) ProducedKey() string        { return pipeline.KeyStylizedSegments }
func (a *LanguageStylizer) PreferredTier() config.Tier { return config.TierAdvanced }

func (a *LanguageStylizer) RequiredKeys() []string {
	return []string{pipeline.KeyBriefInterpretation, pipeline.KeySegments}
}

func (a *LanguageStylizer) SystemPrompt() string {
	return `You are a prose stylist. Rewrite the given segment with full
command of the target language: rhythm, register, idiom. Preserve every
narrative fact and every plot-relevant detail. The rewrite must not be
shorter than the original in any meaningful way; you are polishing, not
summarising. End on a complete sentence.

Respond with a single JSON object:
{"text": "<the rewritten prose>"}`
}

// BuildUserPrompt is unused; the executor builds one prompt per segment
func (a *LanguageStylizer) BuildUserPrompt(pc *pipeline.Context) (string, error) {
	return "", fmt.Errorf("language-stylizer drives its own call pattern")
}

func (a *LanguageStylizer) Parse(raw string) (any, error) {
	return decodeJSON[StylizedSet](raw)
}

func (a *LanguageStylizer) Validate(result any, pc *pipeline.Context) error {
	set, ok := result.(*StylizedSet)
	if !ok {
		return fmt.Errorf("unexpected result type %T", result)
	}

	var source SegmentSet
	if err := pc.Unmarshal(pipeline.KeySegments, &source); err != nil {
		return err
	}
	if len(set.Segments) != len(source.Segments) {
		return fmt.Errorf("stylized %d segments, source has %d", len(set.Segments), len(source.Segments))
	}

	minRatio := a.cfg.Production.MinStylizedRatio
	for i, seg := range set.Segments {
		if seg.Index != i+1 {
			return fmt.Errorf("segments out of order at position %d", i)
		}
		src := source.Segments[i]
		if textcheck.StylizedTooShort(src.Text, seg.Text, minRatio) {
			return pipeline.NewAgentError(pipeline.ErrorKindQuality,
				fmt.Sprintf("segment %d lost content: %d words from %d source words (floor %.0f%%)",
					seg.Index, textcheck.CountWords(seg.Text), src.Words, minRatio*100),
				nil)
		}
		if textcheck.EndsMidWord(seg.Text) {
			return pipeline.NewAgentError(pipeline.ErrorKindQuality,
				fmt.Sprintf("segment %d is truncated", seg.Index), nil)
		}
	}
	return nil
}

// stylizedDraft is the per-call model payload
type stylizedDraft struct {
	Text string `json:"text"`
}

// Execute rewrites all segments through a bounded worker pool
func (a *LanguageStylizer) Execute(ctx context.Context, env *pipeline.Env, pc *pipeline.Context) (json.RawMessage, error) {
	var interp BriefInterpretation
	if err := pc.Unmarshal(pipeline.KeyBriefInterpretation, &interp); err != nil {
		return nil, err
	}
	var source SegmentSet
	if err := pc.Unmarshal(pipeline.KeySegments, &source); err != nil {
		return nil, err
	}

	total := len(source.Segments)
	results := make([]StylizedSegment, total)

	var mu sync.Mutex
	done := 0

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(a.concurrency())

	for i, src := range source.Segments {
		g.Go(func() error {
			styled, err := a.stylizeSegment(gctx, env, interp, src)
			if err != nil {
				return fmt.Errorf("segment %d: %w", src.Index, err)
			}
			results[i] = styled

			mu.Lock()
			done++
			env.ReportProgress(done, total, fmt.Sprintf("segment %d stylized", src.Index))
			mu.Unlock()
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	sort.Slice(results, func(i, j int) bool { return results[i].Index < results[j].Index })
	set := &StylizedSet{Segments: results}

	if err := a.Validate(set, pc); err != nil {
		return nil, err
	}

	return json.Marshal(set)
}

// stylizeSegment runs the rewrite call plus at most one retry when the
// rewrite lost content
func (a *LanguageStylizer) stylizeSegment(ctx context.Context, env *pipeline.Env, interp BriefInterpretation, src Segment) (StylizedSegment, error) {
	prompt := a.segmentPrompt(interp, src, "")

	draft, err := a.callForRewrite(ctx, env, src, prompt)
	if err != nil {
		return StylizedSegment{}, err
	}

	if a.lossy(src, draft.Text) {
		retryPrompt := a.segmentPrompt(interp, src, fmt.Sprintf(
			"Your previous rewrite had only %d words; the original has %d. Do not drop content.",
			textcheck.CountWords(draft.Text), src.Words))
		draft, err = a.callForRewrite(ctx, env, src, retryPrompt)
		if err != nil {
			return StylizedSegment{}, err
		}
		if a.lossy(src, draft.Text) {
			return StylizedSegment{}, pipeline.NewAgentError(pipeline.ErrorKindQuality,
				fmt.Sprintf("rewrite still lossy after retry: %d of %d words",
					textcheck.CountWords(draft.Text), src.Words),
				nil)
		}
	}

	return StylizedSegment{
		Index: src.Index,
		Text:  draft.Text,
		Words: textcheck.CountWords(draft.Text),
	}, nil
}

func (a *LanguageStylizer) lossy(src Segment, text string) bool {
	return textcheck.StylizedTooShort(src.Text, text, a.cfg.Production.MinStylizedRatio) ||
		textcheck.EndsMidWord(text)
}

func (a *LanguageStylizer) callForRewrite(ctx context.Context, env *pipeline.Env, src Segment, prompt string) (*stylizedDraft, error) {
	resp, err := env.Generate(ctx, a.Stage(), model.Request{
		System: a.SystemPrompt(),
		User:   prompt,
		// Token headroom for languages denser than English
		MaxTokens:   src.Words * 3,
		Temperature: 0.7,
	})
	if err != nil {
		return nil, err
	}

	draft, err := decodeJSON[stylizedDraft](resp.Content)
	if err != nil {
		return nil, pipeline.NewAgentError(pipeline.ErrorKindSchema, "stylized draft did not parse", err)
	}
	if draft.Text == "" {
		return nil, pipeline.NewAgentError(pipeline.ErrorKindSchema, "stylized draft is empty", nil)
	}
	return draft, nil
}

func (a *LanguageStylizer) segmentPrompt(interp BriefInterpretation, src Segment, note string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Target language: %s. Tone: %s.\n", interp.ContentLanguage, interp.Tone)
	if note != "" {
		fmt.Fprintf(&b, "%s\n", note)
	}
	fmt.Fprintf(&b, "\nSegment %d (%d words):\n%s\n", src.Index, src.Words, src.Text)
	return b.String()
}

func (a *LanguageStylizer) concurrency() int {
	if n := a.cfg.Production.SegmentConcurrency; n > 0 {
		return n
	}
	return 1
}
