package stages

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/narraforge/narraforge/pkg/pipeline"
)

func interpContext(t *testing.T) *pipeline.Context {
	t.Helper()
	pc := pipeline.NewContext()
	putPayload(t, pc, 1, pipeline.KeyBriefInterpretation, sampleInterp())
	return pc
}

func TestWorldArchitect_Validate(t *testing.T) {
	agent := NewWorldArchitect(testConfig())
	pc := interpContext(t)

	tests := []struct {
		name    string
		mutate  func(w *WorldBible)
		wantErr string
	}{
		{
			name:   "valid",
			mutate: func(w *WorldBible) {},
		},
		{
			name:    "no name",
			mutate:  func(w *WorldBible) { w.Name = "" },
			wantErr: "name is empty",
		},
		{
			name:    "too few rules",
			mutate:  func(w *WorldBible) { w.Rules = w.Rules[:2] },
			wantErr: "at least 3 rules",
		},
		{
			name:    "no conflict",
			mutate:  func(w *WorldBible) { w.CoreConflict = "" },
			wantErr: "core_conflict",
		},
		{
			name:    "no theme",
			mutate:  func(w *WorldBible) { w.Theme = "" },
			wantErr: "theme",
		},
		{
			name:    "scale mismatch",
			mutate:  func(w *WorldBible) { w.Scale = "cosmic" },
			wantErr: "does not match requested",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			world := sampleWorld()
			tt.mutate(&world)

			err := agent.Validate(&world, pc)
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestWorldArchitect_BuildUserPrompt(t *testing.T) {
	agent := NewWorldArchitect(testConfig())

	prompt, err := agent.BuildUserPrompt(interpContext(t))
	require.NoError(t, err)
	assert.Contains(t, prompt, "mystery")
	assert.Contains(t, prompt, "regional")
	assert.Contains(t, prompt, "1000 words")
}
