package stages

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/narraforge/narraforge/pkg/config"
	"github.com/narraforge/narraforge/pkg/memory"
	"github.com/narraforge/narraforge/pkg/output"
	"github.com/narraforge/narraforge/pkg/pipeline"
	"github.com/narraforge/narraforge/pkg/textcheck"
)

// OutputProcessor (stage 10) assembles the delivery artifacts from the
// final cut. Fully deterministic: no model calls, so a failure here is an
// I/O problem, never a quality one.
type OutputProcessor struct {
	cfg *config.Config
}

// NewOutputProcessor creates the stage 10 agent
func NewOutputProcessor(cfg *config.Config) *OutputProcessor {
	return &OutputProcessor{cfg: cfg}
}

func (a *OutputProcessor) Name() string               { return "output-processor" }
func (a *OutputProcessor) Stage() int                 { return 10 }
func (a *OutputProcessor) ProducedKey() string        { return pipeline.KeyOutputManifest }
func (a *OutputProcessor) PreferredTier() config.Tier { return config.TierMini }

func (a *OutputProcessor) RequiredKeys() []string {
	return []string{
		pipeline.KeyBriefInterpretation,
		pipeline.KeyCoherenceReport,
		pipeline.KeyEditorialReport,
	}
}

func (a *OutputProcessor) SystemPrompt() string { return "" }

func (a *OutputProcessor) BuildUserPrompt(pc *pipeline.Context) (string, error) {
	return "", fmt.Errorf("output-processor makes no model calls")
}

func (a *OutputProcessor) Parse(raw string) (any, error) {
	return decodeJSON[OutputManifest](raw)
}

func (a *OutputProcessor) Validate(result any, pc *pipeline.Context) error {
	manifest, ok := result.(*OutputManifest)
	if !ok {
		return fmt.Errorf("unexpected result type %T", result)
	}
	if manifest.Directory == "" || manifest.NarrativePath == "" {
		return fmt.Errorf("manifest is missing artifact paths")
	}
	if manifest.WordCount <= 0 || manifest.SegmentCount <= 0 {
		return fmt.Errorf("manifest has empty statistics")
	}
	return nil
}

// Execute writes the artifacts and records the manifest
func (a *OutputProcessor) Execute(ctx context.Context, env *pipeline.Env, pc *pipeline.Context) (json.RawMessage, error) {
	var interp BriefInterpretation
	if err := pc.Unmarshal(pipeline.KeyBriefInterpretation, &interp); err != nil {
		return nil, err
	}
	var coherence CoherenceResult
	if err := pc.Unmarshal(pipeline.KeyCoherenceReport, &coherence); err != nil {
		return nil, err
	}
	var editorial EditorialResult
	if err := pc.Unmarshal(pipeline.KeyEditorialReport, &editorial); err != nil {
		return nil, err
	}

	wordCount := 0
	for _, seg := range editorial.Segments {
		wordCount += textcheck.CountWords(seg)
	}

	costUsd := 0.0
	if env.Ledger != nil {
		spend, err := env.Ledger.JobSpend(ctx, env.JobID)
		if err != nil {
			return nil, fmt.Errorf("failed to read job spend: %w", err)
		}
		costUsd = spend
	}

	var expansion *memory.Snapshot
	if env.Memory != nil {
		snap, err := env.Memory.Export(ctx, env.JobID)
		if err != nil {
			return nil, fmt.Errorf("failed to export memory: %w", err)
		}
		expansion = snap
	}

	writer := output.NewWriter(a.cfg.Production.OutputDirectory)
	paths, err := writer.Write(env.JobID, editorial.Segments, output.Metadata{
		JobID:           env.JobID,
		ProductionType:  interp.ProductionType,
		Genre:           interp.Genre,
		ContentLanguage: interp.ContentLanguage,
		WordCount:       wordCount,
		SegmentCount:    len(editorial.Segments),
		Coherence:       coherence.Report,
		CostUsd:         costUsd,
		GeneratedAt:     time.Now().UTC(),
	}, expansion)
	if err != nil {
		return nil, pipeline.NewAgentError(pipeline.ErrorKindPermanent, "failed to write output artifacts", err)
	}

	env.ReportProgress(1, 1, "artifacts written")

	manifest := &OutputManifest{
		Directory:       paths.Dir,
		NarrativePath:   paths.Narrative,
		AudiobookPath:   paths.Audiobook,
		MetadataPath:    paths.Metadata,
		ExpansionPath:   paths.Expansion,
		WordCount:       wordCount,
		SegmentCount:    len(editorial.Segments),
		CoherenceScore:  coherence.Report.Composite,
		TotalCostUsd:    costUsd,
		ContentLanguage: interp.ContentLanguage,
	}
	if err := a.Validate(manifest, pc); err != nil {
		return nil, err
	}
	return json.Marshal(manifest)
}
