package stages

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/narraforge/narraforge/pkg/pipeline"
)

func stylizedContext(t *testing.T) *pipeline.Context {
	t.Helper()
	pc := segmentsContext(t)
	putPayload(t, pc, 7, pipeline.KeyCoherenceReport, sampleCoherence())
	putPayload(t, pc, 8, pipeline.KeyStylizedSegments, sampleStylized())
	return pc
}

func TestEditorialReviewer_BuildUserPrompt(t *testing.T) {
	agent := NewEditorialReviewer(testConfig())

	prompt, err := agent.BuildUserPrompt(stylizedContext(t))
	require.NoError(t, err)
	assert.Contains(t, prompt, "deafening silence")
	assert.Contains(t, prompt, "--- segment 1 ---")
	assert.Contains(t, prompt, "--- segment 2 ---")
}

func TestEditorialReviewer_ValidCut(t *testing.T) {
	agent := NewEditorialReviewer(testConfig())

	result := sampleEditorial()
	assert.NoError(t, agent.Validate(&result, stylizedContext(t)))
}

func TestEditorialReviewer_SegmentCountMismatch(t *testing.T) {
	agent := NewEditorialReviewer(testConfig())

	result := sampleEditorial()
	result.Segments = result.Segments[:1]

	err := agent.Validate(&result, stylizedContext(t))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "expected 2")
}

func TestEditorialReviewer_ClicheSurvivesCut(t *testing.T) {
	agent := NewEditorialReviewer(testConfig())

	result := sampleEditorial()
	result.Segments[0] = makeProse(40) + " Her blood ran cold."

	err := agent.Validate(&result, stylizedContext(t))
	require.Error(t, err)

	var agentErr *pipeline.AgentError
	require.True(t, errors.As(err, &agentErr))
	assert.Equal(t, pipeline.ErrorKindQuality, agentErr.Kind)
	assert.Contains(t, err.Error(), "blood ran cold")
}

func TestEditorialReviewer_RepetitionSurvivesCut(t *testing.T) {
	agent := NewEditorialReviewer(testConfig())

	result := sampleEditorial()
	result.Segments[0] = makeProse(30) + strings.Repeat(" Suddenly the bell rang.", 4)

	err := agent.Validate(&result, stylizedContext(t))
	require.Error(t, err)

	var agentErr *pipeline.AgentError
	require.True(t, errors.As(err, &agentErr))
	assert.Equal(t, pipeline.ErrorKindQuality, agentErr.Kind)
	assert.Contains(t, err.Error(), "suddenly")
}

func TestEditorialReviewer_TruncatedSegment(t *testing.T) {
	agent := NewEditorialReviewer(testConfig())

	result := sampleEditorial()
	result.Segments[1] = "The ferry pulled away from the quay and"

	err := agent.Validate(&result, stylizedContext(t))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "truncated")
}
