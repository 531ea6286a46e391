package stages

import (
	"context"
	"encoding/json"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/narraforge/narraforge/pkg/config"
	"github.com/narraforge/narraforge/pkg/model"
	"github.com/narraforge/narraforge/pkg/pipeline"
	"github.com/narraforge/narraforge/pkg/textcheck"
)

func testConfig() *config.Config {
	return &config.Config{Production: config.DefaultProductionConfig()}
}

func putPayload(t *testing.T, pc *pipeline.Context, stage int, key string, payload any) {
	t.Helper()
	raw, err := json.Marshal(payload)
	require.NoError(t, err)
	require.NoError(t, pc.Put(key, pipeline.Entry{
		Stage:      stage,
		RecordedAt: time.Now().UTC(),
		Payload:    raw,
	}))
}

// fakeClient scripts model responses by call number
type fakeClient struct {
	mu    sync.Mutex
	calls int
	fn    func(call int, meta model.CallMeta, req model.Request) (*model.Response, error)
}

func (f *fakeClient) Generate(_ context.Context, meta model.CallMeta, req model.Request) (*model.Response, error) {
	f.mu.Lock()
	f.calls++
	call := f.calls
	f.mu.Unlock()
	return f.fn(call, meta, req)
}

func (f *fakeClient) callCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.calls
}

// proseBank avoids every default banned phrase and budgeted word
var proseBank = []string{
	"the", "harbor", "lights", "burned", "over", "black", "water",
	"while", "gulls", "wheeled", "above", "empty", "quays",
}

// makeProse builds n words of clean prose ending on a full sentence
func makeProse(n int) string {
	words := make([]string, n)
	for i := range words {
		words[i] = proseBank[i%len(proseBank)]
	}
	return strings.Join(words, " ") + "."
}

func sampleInterp() BriefInterpretation {
	return BriefInterpretation{
		ProductionType:     "short_story",
		Genre:              "mystery",
		TargetWordCount:    1000,
		TargetChapterCount: 2,
		Tone:               "brooding",
		ThematicFocus:      "what the flood took and what it returned",
		WorldScale:         "regional",
		ContentLanguage:    "en",
	}
}

func sampleWorld() WorldBible {
	return WorldBible{
		Name:         "Vessel Bay",
		Rules:        []string{"the tide rises every ninth day", "drowned names may not be spoken", "salt corrodes memory"},
		Boundaries:   []string{"nothing returns from below the breakwater"},
		Anomalies:    []string{"one bell rings dry on flood nights"},
		CoreConflict: "the town must choose what the tide is owed",
		Theme:        "debt outlives the debtor",
		Scale:        "regional",
	}
}

func sampleCharacters() CharacterSet {
	return CharacterSet{Characters: []CharacterSpec{
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
	}}
}

func sampleStructure() Structure {
	return Structure{Acts: []Act{
		{
			Title: "Ninth Day",
			Beats: []Beat{
				{Title: "The dry bell", Summary: "the bell rings with no water under it"},
				{Title: "The missing page", Summary: "Mara finds a name cut from her ledger", CausalLink: "therefore"},
			},
		},
		{
			Title: "The Breakwater",
			Beats: []Beat{
				{Title: "Ilya refuses", Summary: "the ferry will not cross on a flood night", CausalLink: "but"},
				{Title: "Crossing", Summary: "Mara rows alone and speaks the name", CausalLink: "therefore"},
			},
		},
	}}
}

func samplePlan() SegmentPlan {
	return SegmentPlan{Segments: []SegmentDescriptor{
		{Index: 1, Goal: "establish the dry bell", Conflict: "record versus rumor", POVCharacter: "Mara", TargetWords: 520, EmotionalBeat: "dread"},
		{Index: 2, Goal: "cross the breakwater", Conflict: "fear versus debt", POVCharacter: "Ilya", TargetWords: 480, EmotionalBeat: "loss"},
	}}
}

func sampleSegments() SegmentSet {
	return SegmentSet{Segments: []Segment{
		{Index: 1, Text: makeProse(60), Words: 60, SelfScore: 0.8},
		{Index: 2, Text: makeProse(55), Words: 55, SelfScore: 0.7},
	}}
}

func sampleStylized() StylizedSet {
	return StylizedSet{Segments: []StylizedSegment{
		{Index: 1, Text: makeProse(60), Words: 60},
		{Index: 2, Text: makeProse(55), Words: 55},
	}}
}

func sampleCoherence() CoherenceResult {
	return CoherenceResult{Report: textcheck.CoherenceReport{
		Logical:       0.95,
		Psychological: 0.9,
		Temporal:      0.92,
		WorldRule:     0.94,
		Composite:     0.97,
		Issues: []textcheck.Issue{
			{Severity: textcheck.SeverityMinor, Category: "temporal", Description: "dawn arrives twice", SegmentIndex: 2},
		},
	}}
}

func sampleEditorial() EditorialResult {
	return EditorialResult{
		Segments: []string{makeProse(58), makeProse(54)},
		Changes: []EditorialChange{
			{Segment: 1, Change: "cut a redundant tide description", Rationale: "repeated the opening image"},
		},
	}
}

func TestPipeline_OrderAndKeys(t *testing.T) {
	agents, err := Pipeline(testConfig())
	require.NoError(t, err)
	require.Len(t, agents, 10)

	expectedKeys := []string{
		pipeline.KeyBriefInterpretation,
		pipeline.KeyWorldBible,
		pipeline.KeyCharacters,
		pipeline.KeyStructure,
		pipeline.KeySegmentPlan,
		pipeline.KeySegments,
		pipeline.KeyCoherenceReport,
		pipeline.KeyStylizedSegments,
		pipeline.KeyEditorialReport,
		pipeline.KeyOutputManifest,
	}
	for i, agent := range agents {
		assert.Equal(t, i+1, agent.Stage())
		assert.Equal(t, expectedKeys[i], agent.ProducedKey())
		assert.NotEmpty(t, agent.Name())
	}
}

func TestPipeline_ProseStagesRunAdvanced(t *testing.T) {
	agents, err := Pipeline(testConfig())
	require.NoError(t, err)

	assert.Equal(t, config.TierAdvanced, agents[5].PreferredTier())
	assert.Equal(t, config.TierAdvanced, agents[7].PreferredTier())
}

func TestPipeline_ExecutorStages(t *testing.T) {
	agents, err := Pipeline(testConfig())
	require.NoError(t, err)

	for _, stage := range []int{6, 8, 10} {
		_, ok := agents[stage-1].(pipeline.Executor)
		assert.True(t, ok, "stage %d should drive its own execution", stage)
	}
	for _, stage := range []int{1, 2, 3, 4, 5, 7, 9} {
		_, ok := agents[stage-1].(pipeline.Executor)
		assert.False(t, ok, "stage %d should use the default flow", stage)
	}
}

func TestPipeline_CoherenceTierFollowsConfig(t *testing.T) {
	cfg := testConfig()
	cfg.Production.CoherenceTier = config.TierAdvanced

	agents, err := Pipeline(cfg)
	require.NoError(t, err)
	assert.Equal(t, config.TierAdvanced, agents[6].PreferredTier())
}
