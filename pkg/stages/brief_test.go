package stages

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/narraforge/narraforge/pkg/models"
	"github.com/narraforge/narraforge/pkg/pipeline"
)

func briefContext(t *testing.T, brief models.Brief) *pipeline.Context {
	t.Helper()
	pc := pipeline.NewContext()
	putPayload(t, pc, 0, pipeline.KeyBrief, brief)
	return pc
}

func sampleBrief() models.Brief {
	target := 1000
	return models.Brief{
		ProductionType:  models.ProductionShortStory,
		Genre:           "mystery",
		Inspiration:     "A coastal town where the tide bell rings with no water under it.",
		TargetWordCount: &target,
		StyleHints:      []string{"spare sentences"},
		ContentLanguage: "en",
	}
}

func TestBriefInterpreter_BuildUserPrompt(t *testing.T) {
	agent := NewBriefInterpreter(testConfig())
	pc := briefContext(t, sampleBrief())

	prompt, err := agent.BuildUserPrompt(pc)
	require.NoError(t, err)
	assert.Contains(t, prompt, "short_story")
	assert.Contains(t, prompt, "Target word count: 1000")
	assert.Contains(t, prompt, "spare sentences")
	assert.Contains(t, prompt, "tide bell")
}

func TestBriefInterpreter_Validate(t *testing.T) {
	agent := NewBriefInterpreter(testConfig())
	pc := briefContext(t, sampleBrief())

	tests := []struct {
		name    string
		mutate  func(i *BriefInterpretation)
		wantErr string
	}{
		{
			name:   "valid",
			mutate: func(i *BriefInterpretation) {},
		},
		{
			name:    "production type changed",
			mutate:  func(i *BriefInterpretation) { i.ProductionType = "novel" },
			wantErr: "production_type changed",
		},
		{
			name:    "word count changed",
			mutate:  func(i *BriefInterpretation) { i.TargetWordCount = 5000 },
			wantErr: "target_word_count changed",
		},
		{
			name:    "no chapters",
			mutate:  func(i *BriefInterpretation) { i.TargetChapterCount = 0 },
			wantErr: "target_chapter_count",
		},
		{
			name:    "unknown scale",
			mutate:  func(i *BriefInterpretation) { i.WorldScale = "planetary" },
			wantErr: "world_scale",
		},
		{
			name:    "empty genre",
			mutate:  func(i *BriefInterpretation) { i.Genre = "" },
			wantErr: "genre",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			interp := sampleInterp()
			tt.mutate(&interp)

			err := agent.Validate(&interp, pc)
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestBriefInterpreter_DefaultWordCount(t *testing.T) {
	agent := NewBriefInterpreter(testConfig())

	brief := sampleBrief()
	brief.TargetWordCount = nil
	pc := briefContext(t, brief)

	prompt, err := agent.BuildUserPrompt(pc)
	require.NoError(t, err)
	assert.True(t, strings.Contains(prompt, "Target word count: 7500"))

	interp := sampleInterp()
	interp.TargetWordCount = 7500
	assert.NoError(t, agent.Validate(&interp, pc))
}
