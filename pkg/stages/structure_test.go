package stages

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/narraforge/narraforge/pkg/pipeline"
)

func charactersContext(t *testing.T) *pipeline.Context {
	t.Helper()
	pc := worldContext(t)
	putPayload(t, pc, 3, pipeline.KeyCharacters, sampleCharacters())
	return pc
}

func TestStructureDesigner_Validate(t *testing.T) {
	agent := NewStructureDesigner(testConfig())
	pc := charactersContext(t)

	tests := []struct {
		name    string
		mutate  func(s *Structure)
		wantErr string
	}{
		{
			name:   "valid",
			mutate: func(s *Structure) {},
		},
		{
			name:    "no acts",
			mutate:  func(s *Structure) { s.Acts = nil },
			wantErr: "no acts",
		},
		{
			name:    "empty act",
			mutate:  func(s *Structure) { s.Acts[1].Beats = nil },
			wantErr: "has no beats",
		},
		{
			name:    "missing summary",
			mutate:  func(s *Structure) { s.Acts[0].Beats[1].Summary = "" },
			wantErr: "has no summary",
		},
		{
			name:    "opening beat with a link",
			mutate:  func(s *Structure) { s.Acts[0].Beats[0].CausalLink = "therefore" },
			wantErr: "opening beat",
		},
		{
			name:    "and then is not a story",
			mutate:  func(s *Structure) { s.Acts[0].Beats[1].CausalLink = "and then" },
			wantErr: "must be \"therefore\" or \"but\"",
		},
		{
			name:    "missing link",
			mutate:  func(s *Structure) { s.Acts[1].Beats[0].CausalLink = "" },
			wantErr: "must be \"therefore\" or \"but\"",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			structure := sampleStructure()
			tt.mutate(&structure)

			err := agent.Validate(&structure, pc)
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestStructureDesigner_BuildUserPrompt(t *testing.T) {
	agent := NewStructureDesigner(testConfig())

	prompt, err := agent.BuildUserPrompt(charactersContext(t))
	require.NoError(t, err)
	assert.Contains(t, prompt, "1000 words across 2 chapters")
	assert.Contains(t, prompt, "Mara")
	assert.Contains(t, prompt, "Ilya")
}
