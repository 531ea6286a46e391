package stages

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/narraforge/narraforge/pkg/pipeline"
)

func structureContext(t *testing.T) *pipeline.Context {
	t.Helper()
	pc := charactersContext(t)
	putPayload(t, pc, 4, pipeline.KeyStructure, sampleStructure())
	return pc
}

func TestSegmentPlanner_Validate(t *testing.T) {
	agent := NewSegmentPlanner(testConfig())
	pc := structureContext(t)

	tests := []struct {
		name    string
		mutate  func(p *SegmentPlan)
		wantErr string
	}{
		{
			name:   "valid",
			mutate: func(p *SegmentPlan) {},
		},
		{
			name:   "sum at the tolerance edge",
			mutate: func(p *SegmentPlan) { p.Segments[0].TargetWords = 620 }, // total 1100, exactly +10%
		},
		{
			name:    "empty plan",
			mutate:  func(p *SegmentPlan) { p.Segments = nil },
			wantErr: "no segments",
		},
		{
			name:    "gap in indexes",
			mutate:  func(p *SegmentPlan) { p.Segments[1].Index = 3 },
			wantErr: "consecutive",
		},
		{
			name:    "zero word target",
			mutate:  func(p *SegmentPlan) { p.Segments[0].TargetWords = 0 },
			wantErr: "no word target",
		},
		{
			name:    "missing goal",
			mutate:  func(p *SegmentPlan) { p.Segments[1].Goal = "" },
			wantErr: "no goal",
		},
		{
			name:    "unknown POV",
			mutate:  func(p *SegmentPlan) { p.Segments[0].POVCharacter = "Nobody" },
			wantErr: "not in the ensemble",
		},
		{
			name:    "sum far over target",
			mutate:  func(p *SegmentPlan) { p.Segments[0].TargetWords = 900 }, // total 1380, +38%
			wantErr: "off (max 10%)",
		},
		{
			name:    "sum far under target",
			mutate:  func(p *SegmentPlan) { p.Segments[0].TargetWords = 100 }, // total 580, -42%
			wantErr: "off (max 10%)",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			plan := samplePlan()
			tt.mutate(&plan)

			err := agent.Validate(&plan, pc)
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestSegmentPlanner_BuildUserPrompt(t *testing.T) {
	agent := NewSegmentPlanner(testConfig())

	prompt, err := agent.BuildUserPrompt(structureContext(t))
	require.NoError(t, err)
	assert.Contains(t, prompt, "Overall target: 1000 words")
	assert.Contains(t, prompt, "[opening]")
	assert.Contains(t, prompt, "[therefore]")
	assert.Contains(t, prompt, "[but]")
}
