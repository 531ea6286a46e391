package orchestrator

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/narraforge/narraforge/ent"
	entcheckpoint "github.com/narraforge/narraforge/ent/checkpoint"
	"github.com/narraforge/narraforge/ent/job"
	"github.com/narraforge/narraforge/pkg/config"
	"github.com/narraforge/narraforge/pkg/events"
	"github.com/narraforge/narraforge/pkg/memory"
	"github.com/narraforge/narraforge/pkg/model"
	"github.com/narraforge/narraforge/pkg/pipeline"
	"github.com/narraforge/narraforge/pkg/queue"
	"github.com/narraforge/narraforge/pkg/stages"
	testdb "github.com/narraforge/narraforge/test/database"
)

// wordBank avoids every default banned phrase and budgeted word
var wordBank = []string{
	"the", "harbor", "lights", "burned", "over", "black", "water",
	"while", "gulls", "wheeled", "above", "empty", "quays",
}

func prose(n int) string {
	words := make([]string, n)
	for i := range words {
		words[i] = wordBank[i%len(wordBank)]
	}
	return strings.Join(words, " ") + "."
}

func mustJSON(t *testing.T, v any) string {
	t.Helper()
	raw, err := json.Marshal(v)
	require.NoError(t, err)
	return string(raw)
}

// happyContent returns a valid model response for each stage of the default
// flow and for the per-segment calls of stages 6 and 8
func happyContent(t *testing.T, stage int) string {
	t.Helper()
	switch stage {
	case 1:
		return mustJSON(t, stages.BriefInterpretation{
			ProductionType:     "short_story",
			Genre:              "mystery",
			TargetWordCount:    7500,
			TargetChapterCount: 2,
			Tone:               "brooding",
			ThematicFocus:      "what the flood took and what it returned",
			WorldScale:         "regional",
			ContentLanguage:    "en",
		})
	case 2:
		return mustJSON(t, stages.WorldBible{
			Name:         "Vessel Bay",
			Rules:        []string{"the tide rises every ninth day", "drowned names may not be spoken", "salt corrodes memory"},
			Boundaries:   []string{"nothing returns from below the breakwater"},
			Anomalies:    []string{"one bell rings dry on flood nights"},
			CoreConflict: "the town must choose what the tide is owed",
			Theme:        "debt outlives the debtor",
			Scale:        "regional",
		})
	case 3:
		return mustJSON(t, stages.CharacterSet{Characters: []stages.CharacterSpec{
			{
				Name:              "Mara",
				Role:              "protagonist",
				Trajectory:        "from keeper of records to breaker of them",
				Contradictions:    []string{"archives the names she refuses to speak"},
				CognitiveLimits:   []string{"does not know who rang the dry bell"},
				EvolutionCapacity: 0.8,
			},
			{
				Name:              "Ilya",
				Role:              "supporting",
				Trajectory:        "from ferryman to witness",
				Contradictions:    []string{"rows toward the breakwater he fears"},
				CognitiveLimits:   []string{"does not know the tide schedule changed"},
				EvolutionCapacity: 0.4,
			},
		}})
	case 4:
		return mustJSON(t, stages.Structure{Acts: []stages.Act{
			{
				Title: "Ninth Day",
				Beats: []stages.Beat{
					{Title: "The dry bell", Summary: "the bell rings with no water under it"},
					{Title: "The missing page", Summary: "Mara finds a name cut from her ledger", CausalLink: "therefore"},
				},
			},
			{
				Title: "The Breakwater",
				Beats: []stages.Beat{
					{Title: "Ilya refuses", Summary: "the ferry will not cross on a flood night", CausalLink: "but"},
					{Title: "Crossing", Summary: "Mara rows alone and speaks the name", CausalLink: "therefore"},
				},
			},
		}})
	case 5:
		return mustJSON(t, stages.SegmentPlan{Segments: []stages.SegmentDescriptor{
			{Index: 1, Goal: "establish the dry bell", Conflict: "record versus rumor", POVCharacter: "Mara", TargetWords: 3750, EmotionalBeat: "dread"},
			{Index: 2, Goal: "cross the breakwater", Conflict: "fear versus debt", POVCharacter: "Ilya", TargetWords: 3750, EmotionalBeat: "loss"},
		}})
	case 6:
		return fmt.Sprintf(`{"text": %q, "self_score": 0.8}`, prose(120))
	case 7:
		return `{"logical": 0.95, "psychological": 0.9, "temporal": 0.92, "world_rule": 0.94, "issues": []}`
	case 8:
		return fmt.Sprintf(`{"text": %q}`, prose(120))
	case 9:
		return mustJSON(t, stages.EditorialResult{
			Segments: []string{prose(118), prose(117)},
			Changes: []stages.EditorialChange{
				{Segment: 1, Change: "cut a redundant tide description", Rationale: "repeated the opening image"},
			},
		})
	}
	t.Fatalf("no scripted content for stage %d", stage)
	return ""
}

// scriptedClient answers model calls per stage. respond may return a nil
// response to fall through to the happy-path content for that stage.
type scriptedClient struct {
	t       *testing.T
	mu      sync.Mutex
	byStage map[int]int
	respond func(meta model.CallMeta, stageCall int) (*model.Response, error)
}

func newScriptedClient(t *testing.T, respond func(meta model.CallMeta, stageCall int) (*model.Response, error)) *scriptedClient {
	return &scriptedClient{t: t, byStage: make(map[int]int), respond: respond}
}

func (c *scriptedClient) Generate(_ context.Context, meta model.CallMeta, _ model.Request) (*model.Response, error) {
	c.mu.Lock()
	c.byStage[meta.Stage]++
	call := c.byStage[meta.Stage]
	c.mu.Unlock()

	if c.respond != nil {
		resp, err := c.respond(meta, call)
		if resp != nil || err != nil {
			return resp, err
		}
	}
	return &model.Response{
		Content:          happyContent(c.t, meta.Stage),
		PromptTokens:     200,
		CompletionTokens: 150,
		Provider:         "scripted",
		ModelID:          "scripted-model",
	}, nil
}

func (c *scriptedClient) stageCalls(stage int) int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.byStage[stage]
}

// recordingSink captures published pipeline events in order
type recordingSink struct {
	mu     sync.Mutex
	types  []string
	stages []events.StageStatusPayload
	failed []events.JobFailedPayload
	done   []events.JobCompletePayload
}

func (s *recordingSink) PublishStageStatus(_ context.Context, _ string, p events.StageStatusPayload) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.types = append(s.types, p.Type+":"+p.Status)
	s.stages = append(s.stages, p)
	return nil
}

func (s *recordingSink) PublishStageComplete(_ context.Context, _ string, p events.StageCompletePayload) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.types = append(s.types, p.Type)
	return nil
}

func (s *recordingSink) PublishStageProgress(_ context.Context, _ string, p events.StageProgressPayload) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.types = append(s.types, p.Type)
	return nil
}

func (s *recordingSink) PublishJobComplete(_ context.Context, _ string, p events.JobCompletePayload) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.types = append(s.types, p.Type)
	s.done = append(s.done, p)
	return nil
}

func (s *recordingSink) PublishJobFailed(_ context.Context, _ string, p events.JobFailedPayload) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.types = append(s.types, p.Type)
	s.failed = append(s.failed, p)
	return nil
}

func (s *recordingSink) countType(eventType string) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	n := 0
	for _, typ := range s.types {
		if typ == eventType {
			n++
		}
	}
	return n
}

func testPipelineConfig(t *testing.T) *config.Config {
	t.Helper()
	prod := config.DefaultProductionConfig()
	prod.OutputDirectory = t.TempDir()
	prod.RetryBaseDelay = time.Millisecond
	prod.RetryMaxDelay = 5 * time.Millisecond
	return &config.Config{Production: prod}
}

func createRunningJob(t *testing.T, client *ent.Client) *ent.Job {
	t.Helper()
	j, err := client.Job.Create().
		SetID(uuid.New().String()).
		SetBrief(map[string]interface{}{
			"production_type": "short_story",
			"genre":           "mystery",
			"inspiration":     "a lighthouse keeper who stops lighting the lamp",
		}).
		SetProductionType("short_story").
		SetGenre("mystery").
		SetStatus(job.StatusRunning).
		SetStartedAt(time.Now()).
		Save(context.Background())
	require.NoError(t, err)
	return j
}

func newTestOrchestrator(t *testing.T, client *ent.Client, cfg *config.Config, mc model.Client, sink EventSink) *Orchestrator {
	t.Helper()
	o, err := New(client, cfg, mc, model.NewEntLedger(client), memory.New(client), sink, slog.Default())
	require.NoError(t, err)
	return o
}

func TestOrchestrator_FullRun(t *testing.T) {
	client := testdb.NewTestClient(t)
	ctx := context.Background()
	cfg := testPipelineConfig(t)

	mc := newScriptedClient(t, nil)
	sink := &recordingSink{}
	o := newTestOrchestrator(t, client.Client, cfg, mc, sink)

	j := createRunningJob(t, client.Client)
	result := o.Execute(ctx, j)

	require.NotNil(t, result)
	require.NoError(t, result.Error)
	assert.Equal(t, job.StatusCompleted, result.Status)

	// Every stage committed a checkpoint
	count, err := client.Client.Checkpoint.Query().
		Where(entcheckpoint.JobIDEQ(j.ID)).
		Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 10, count)

	updated, err := client.Client.Job.Get(ctx, j.ID)
	require.NoError(t, err)
	require.NotNil(t, updated.CurrentStage)
	assert.Equal(t, 10, *updated.CurrentStage)

	// World and cast landed in structural memory
	mem := memory.New(client.Client)
	world, err := mem.Structural.GetWorldByJob(ctx, j.ID)
	require.NoError(t, err)
	assert.Equal(t, "Vessel Bay", world.Name)
	characters, err := mem.Structural.ListCharacters(ctx, world.ID)
	require.NoError(t, err)
	assert.Len(t, characters, 2)

	// Stage 10 wrote the artifacts named by the manifest
	cp, err := client.Client.Checkpoint.Query().
		Where(entcheckpoint.JobIDEQ(j.ID), entcheckpoint.StageEQ(10)).
		Only(ctx)
	require.NoError(t, err)
	pc, err := pipeline.FromSnapshot(cp.ContextSnapshot)
	require.NoError(t, err)
	var manifest stages.OutputManifest
	require.NoError(t, pc.Unmarshal(pipeline.KeyOutputManifest, &manifest))
	assert.Equal(t, 2, manifest.SegmentCount)
	assert.Positive(t, manifest.WordCount)
	for _, path := range []string{manifest.NarrativePath, manifest.AudiobookPath, manifest.MetadataPath, manifest.ExpansionPath} {
		_, err := os.Stat(filepath.Clean(path))
		assert.NoError(t, err, "artifact %s missing", path)
	}

	// Event shape: one started status and one completion per stage, one
	// terminal job.complete, progress ticks from the multi-call stages
	assert.Equal(t, 10, sink.countType(events.EventTypeStageStatus+":"+events.StageStatusStarted))
	assert.Equal(t, 10, sink.countType(events.EventTypeStageStatus+":"+events.StageStatusCompleted))
	assert.Equal(t, 10, sink.countType(events.EventTypeStageComplete))
	assert.Equal(t, 1, sink.countType(events.EventTypeJobComplete))
	assert.Zero(t, sink.countType(events.EventTypeJobFailed))
	assert.Positive(t, sink.countType(events.EventTypeStageProgress))

	// Single-call stages made exactly one model call; the two-segment
	// stages made one call per segment
	for _, stage := range []int{1, 2, 3, 4, 5, 7, 9} {
		assert.Equal(t, 1, mc.stageCalls(stage), "stage %d", stage)
	}
	assert.Equal(t, 2, mc.stageCalls(6))
	assert.Equal(t, 2, mc.stageCalls(8))
	assert.Zero(t, mc.stageCalls(10))
}

func TestOrchestrator_StageFailureExhaustsRetries(t *testing.T) {
	client := testdb.NewTestClient(t)
	ctx := context.Background()
	cfg := testPipelineConfig(t)

	mc := newScriptedClient(t, func(meta model.CallMeta, _ int) (*model.Response, error) {
		if meta.Stage == 4 {
			return &model.Response{Content: "not a structure at all"}, nil
		}
		return nil, nil
	})
	sink := &recordingSink{}
	o := newTestOrchestrator(t, client.Client, cfg, mc, sink)

	j := createRunningJob(t, client.Client)
	result := o.Execute(ctx, j)

	require.NotNil(t, result)
	assert.Equal(t, job.StatusFailed, result.Status)
	assert.Equal(t, 4, result.Stage)
	assert.Equal(t, pipeline.ErrorKindSchema, result.ErrorKind)

	var stageErr *pipeline.StageError
	require.ErrorAs(t, result.Error, &stageErr)
	assert.Equal(t, cfg.Production.MaxStageRetries, stageErr.Attempts)
	assert.Equal(t, cfg.Production.MaxStageRetries, mc.stageCalls(4))

	// Completed stages kept their checkpoints for resume
	count, err := client.Client.Checkpoint.Query().
		Where(entcheckpoint.JobIDEQ(j.ID)).
		Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 3, count)

	require.Len(t, sink.failed, 1)
	assert.Equal(t, 4, sink.failed[0].Stage)
	assert.Equal(t, string(pipeline.ErrorKindSchema), sink.failed[0].ErrorKind)
}

func TestOrchestrator_ResumeSkipsCompletedStages(t *testing.T) {
	client := testdb.NewTestClient(t)
	ctx := context.Background()
	cfg := testPipelineConfig(t)

	j := createRunningJob(t, client.Client)

	// First run dies at stage 6
	failing := newScriptedClient(t, func(meta model.CallMeta, _ int) (*model.Response, error) {
		if meta.Stage == 6 {
			return &model.Response{Content: "garbage"}, nil
		}
		return nil, nil
	})
	o := newTestOrchestrator(t, client.Client, cfg, failing, &recordingSink{})
	result := o.Execute(ctx, j)
	require.Equal(t, job.StatusFailed, result.Status)
	require.Equal(t, 6, result.Stage)

	// Second run resumes from stage 6 and completes without touching 1-5
	healthy := newScriptedClient(t, nil)
	o2 := newTestOrchestrator(t, client.Client, cfg, healthy, &recordingSink{})
	result = o2.Execute(ctx, j)
	require.NoError(t, result.Error)
	assert.Equal(t, job.StatusCompleted, result.Status)

	for stage := 1; stage <= 5; stage++ {
		assert.Zero(t, healthy.stageCalls(stage), "stage %d re-ran on resume", stage)
	}
	assert.Equal(t, 2, healthy.stageCalls(6))

	count, err := client.Client.Checkpoint.Query().
		Where(entcheckpoint.JobIDEQ(j.ID)).
		Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 10, count)

	// Memory writes from the first run were not duplicated
	mem := memory.New(client.Client)
	world, err := mem.Structural.GetWorldByJob(ctx, j.ID)
	require.NoError(t, err)
	characters, err := mem.Structural.ListCharacters(ctx, world.ID)
	require.NoError(t, err)
	assert.Len(t, characters, 2)
}

func TestOrchestrator_QualityRetryUpgradesTier(t *testing.T) {
	client := testdb.NewTestClient(t)
	ctx := context.Background()
	cfg := testPipelineConfig(t)

	lowCoherence := `{"logical": 0.6, "psychological": 0.6, "temporal": 0.6, "world_rule": 0.6, "issues": [` +
		`{"severity": "critical", "category": "logical", "description": "the bell rings before it exists", "segment_index": 1},` +
		`{"severity": "critical", "category": "temporal", "description": "the crossing precedes the refusal", "segment_index": 2}]}`

	var tiers []config.Tier
	var mu sync.Mutex
	mc := newScriptedClient(t, func(meta model.CallMeta, call int) (*model.Response, error) {
		if meta.Stage == 7 {
			mu.Lock()
			tiers = append(tiers, meta.Tier)
			mu.Unlock()
			if call == 1 {
				return &model.Response{Content: lowCoherence}, nil
			}
		}
		return nil, nil
	})
	sink := &recordingSink{}
	o := newTestOrchestrator(t, client.Client, cfg, mc, sink)

	j := createRunningJob(t, client.Client)
	result := o.Execute(ctx, j)

	require.NoError(t, result.Error)
	assert.Equal(t, job.StatusCompleted, result.Status)
	assert.Equal(t, 2, mc.stageCalls(7))

	require.Len(t, tiers, 2)
	assert.Equal(t, config.TierMini, tiers[0])
	assert.Equal(t, config.TierAdvanced, tiers[1])

	assert.Equal(t, 1, sink.countType(events.EventTypeStageStatus+":"+events.StageStatusRetrying))
}

func TestOrchestrator_CostExceededFailsWithoutRetry(t *testing.T) {
	client := testdb.NewTestClient(t)
	ctx := context.Background()
	cfg := testPipelineConfig(t)

	mc := newScriptedClient(t, func(meta model.CallMeta, _ int) (*model.Response, error) {
		if meta.Stage == 2 {
			return nil, fmt.Errorf("routing tier mini: %w", model.ErrBudgetExceeded)
		}
		return nil, nil
	})
	sink := &recordingSink{}
	o := newTestOrchestrator(t, client.Client, cfg, mc, sink)

	j := createRunningJob(t, client.Client)
	result := o.Execute(ctx, j)

	assert.Equal(t, job.StatusFailed, result.Status)
	assert.Equal(t, 2, result.Stage)
	assert.Equal(t, pipeline.ErrorKindCostExceeded, result.ErrorKind)
	assert.Equal(t, 1, mc.stageCalls(2), "budget failures must not be retried")
}

// A commit failure re-runs the whole stage through the normal retry
// schedule; exhausting the budget surfaces as a transport failure with the
// terminal status published
func TestOrchestrator_CommitFailureRetriesStage(t *testing.T) {
	client := testdb.NewTestClient(t)
	ctx := context.Background()
	cfg := testPipelineConfig(t)

	mc := newScriptedClient(t, nil)
	sink := &recordingSink{}
	o := newTestOrchestrator(t, client.Client, cfg, mc, sink)

	j := createRunningJob(t, client.Client)

	// A conflicting row on the stage boundary makes every commit fail
	_, err := client.Client.Checkpoint.Create().
		SetID(uuid.New().String()).
		SetJobID(j.ID).
		SetStage(1).
		SetContextSnapshot(map[string]interface{}{}).
		SetCostUsd(0).
		SetPromptTokens(0).
		SetCompletionTokens(0).
		Save(ctx)
	require.NoError(t, err)

	pc := pipeline.NewContext()
	require.NoError(t, o.seedBrief(pc, j))

	stageErr := o.runStage(ctx, j.ID, o.agents[0], pc)
	require.NotNil(t, stageErr)
	assert.Equal(t, pipeline.ErrorKindTransport, stageErr.Kind)
	assert.Equal(t, cfg.Production.MaxStageRetries, stageErr.Attempts)
	assert.Contains(t, stageErr.LastCause.Error(), "checkpoint commit failed")

	// The stage re-ran on every attempt; the output of a failed commit is lost
	assert.Equal(t, cfg.Production.MaxStageRetries, mc.stageCalls(1))

	// Retries announced themselves and the final attempt reported failure
	assert.Equal(t, cfg.Production.MaxStageRetries-1,
		sink.countType(events.EventTypeStageStatus+":"+events.StageStatusRetrying))
	assert.Equal(t, 1, sink.countType(events.EventTypeStageStatus+":"+events.StageStatusFailed))
}

func TestOrchestrator_CancelRequestHonouredAtBoundary(t *testing.T) {
	client := testdb.NewTestClient(t)
	ctx := context.Background()
	cfg := testPipelineConfig(t)

	mc := newScriptedClient(t, nil)
	o := newTestOrchestrator(t, client.Client, cfg, mc, &recordingSink{})

	j := createRunningJob(t, client.Client)
	require.NoError(t, j.Update().SetStatus(job.StatusCancelling).Exec(ctx))

	result := o.Execute(ctx, j)
	assert.Equal(t, job.StatusCancelled, result.Status)
	assert.Zero(t, mc.stageCalls(1), "no model calls after a cancel request")
}

func TestOrchestrator_ContextCancellation(t *testing.T) {
	client := testdb.NewTestClient(t)
	cfg := testPipelineConfig(t)

	mc := newScriptedClient(t, nil)
	o := newTestOrchestrator(t, client.Client, cfg, mc, &recordingSink{})

	j := createRunningJob(t, client.Client)
	cancelled, cancel := context.WithCancel(context.Background())
	cancel()

	result := o.Execute(cancelled, j)
	assert.Equal(t, job.StatusCancelled, result.Status)
}

var _ queue.JobExecutor = (*Orchestrator)(nil)

func TestPayloadWords(t *testing.T) {
	segments := mustJSON(t, stages.SegmentSet{Segments: []stages.Segment{
		{Index: 1, Text: prose(60), Words: 60},
		{Index: 2, Text: prose(40), Words: 40},
	}})
	assert.Equal(t, 100, payloadWords(pipeline.KeySegments, json.RawMessage(segments)))

	stylized := mustJSON(t, stages.StylizedSet{Segments: []stages.StylizedSegment{
		{Index: 1, Text: prose(55), Words: 55},
	}})
	assert.Equal(t, 55, payloadWords(pipeline.KeyStylizedSegments, json.RawMessage(stylized)))

	editorial := mustJSON(t, stages.EditorialResult{Segments: []string{prose(30), prose(20)}})
	assert.Equal(t, 50, payloadWords(pipeline.KeyEditorialReport, json.RawMessage(editorial)))

	plan := mustJSON(t, stages.SegmentPlan{})
	assert.Zero(t, payloadWords(pipeline.KeySegmentPlan, json.RawMessage(plan)))
}
