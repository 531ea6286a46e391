package stages

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/narraforge/narraforge/pkg/pipeline"
)

func worldContext(t *testing.T) *pipeline.Context {
	t.Helper()
	pc := interpContext(t)
	putPayload(t, pc, 2, pipeline.KeyWorldBible, sampleWorld())
	return pc
}

func TestCharacterArchitect_Validate(t *testing.T) {
	agent := NewCharacterArchitect(testConfig())
	pc := worldContext(t)

	tests := []struct {
		name    string
		mutate  func(s *CharacterSet)
		wantErr string
	}{
		{
			name:   "valid",
			mutate: func(s *CharacterSet) {},
		},
		{
			name:    "empty ensemble",
			mutate:  func(s *CharacterSet) { s.Characters = nil },
			wantErr: "no characters",
		},
		{
			name:    "unnamed character",
			mutate:  func(s *CharacterSet) { s.Characters[1].Name = "" },
			wantErr: "has no name",
		},
		{
			name:    "duplicate name",
			mutate:  func(s *CharacterSet) { s.Characters[1].Name = "Mara" },
			wantErr: "duplicate character name",
		},
		{
			name:    "no contradiction",
			mutate:  func(s *CharacterSet) { s.Characters[0].Contradictions = nil },
			wantErr: "no contradiction",
		},
		{
			name:    "no cognitive limit",
			mutate:  func(s *CharacterSet) { s.Characters[0].CognitiveLimits = nil },
			wantErr: "no cognitive limit",
		},
		{
			name:    "capacity out of range",
			mutate:  func(s *CharacterSet) { s.Characters[0].EvolutionCapacity = 1.3 },
			wantErr: "out of [0,1]",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			set := sampleCharacters()
			tt.mutate(&set)

			err := agent.Validate(&set, pc)
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestCharacterArchitect_BuildUserPrompt(t *testing.T) {
	agent := NewCharacterArchitect(testConfig())

	prompt, err := agent.BuildUserPrompt(worldContext(t))
	require.NoError(t, err)
	assert.Contains(t, prompt, "Vessel Bay")
	assert.Contains(t, prompt, "the town must choose what the tide is owed")
}
