package stages

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/narraforge/narraforge/pkg/pipeline"
	"github.com/narraforge/narraforge/pkg/textcheck"
)

func segmentsContext(t *testing.T) *pipeline.Context {
	t.Helper()
	pc := structureContext(t)
	putPayload(t, pc, 5, pipeline.KeySegmentPlan, samplePlan())
	putPayload(t, pc, 6, pipeline.KeySegments, sampleSegments())
	return pc
}

func TestCoherenceValidator_ParseRecomputesComposite(t *testing.T) {
	agent := NewCoherenceValidator(testConfig())

	raw := `{
		"logical": 0.9, "psychological": 0.9, "temporal": 0.9, "world_rule": 0.9,
		"issues": [
			{"severity": "major", "category": "logical", "description": "the bell rings underwater", "segment_index": 1},
			{"severity": "warning", "category": "temporal", "description": "vague day count", "segment_index": 2}
		]
	}`

	result, err := agent.Parse(raw)
	require.NoError(t, err)

	report := result.(*CoherenceResult).Report
	assert.InDelta(t, 0.91, report.Composite, 1e-9)
	assert.Len(t, report.Issues, 2)
}

func TestCoherenceValidator_ParseIgnoresModelComposite(t *testing.T) {
	agent := NewCoherenceValidator(testConfig())

	// The model claims a perfect composite alongside a critical issue
	raw := `{
		"logical": 1.0, "psychological": 1.0, "temporal": 1.0, "world_rule": 1.0,
		"composite": 1.0,
		"issues": [
			{"severity": "critical", "category": "world_rule", "description": "a drowned name is spoken", "segment_index": 1}
		]
	}`

	result, err := agent.Parse(raw)
	require.NoError(t, err)
	assert.InDelta(t, 0.85, result.(*CoherenceResult).Report.Composite, 1e-9)
}

func TestCoherenceValidator_ParseRejectsUnknownSeverity(t *testing.T) {
	agent := NewCoherenceValidator(testConfig())

	raw := `{
		"logical": 0.9, "psychological": 0.9, "temporal": 0.9, "world_rule": 0.9,
		"issues": [{"severity": "catastrophic", "category": "logical", "description": "x", "segment_index": 1}]
	}`

	_, err := agent.Parse(raw)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown issue severity")
}

func TestCoherenceValidator_GatePasses(t *testing.T) {
	agent := NewCoherenceValidator(testConfig())
	pc := segmentsContext(t)

	result := sampleCoherence()
	assert.NoError(t, agent.Validate(&result, pc))
}

func TestCoherenceValidator_GateFailsAsQuality(t *testing.T) {
	agent := NewCoherenceValidator(testConfig())
	pc := segmentsContext(t)

	result := sampleCoherence()
	result.Report.Composite = textcheck.ScoreIssues([]textcheck.Issue{
		{Severity: textcheck.SeverityCritical},
		{Severity: textcheck.SeverityCritical},
	})

	err := agent.Validate(&result, pc)
	require.Error(t, err)

	var agentErr *pipeline.AgentError
	require.True(t, errors.As(err, &agentErr))
	assert.Equal(t, pipeline.ErrorKindQuality, agentErr.Kind)
	assert.Contains(t, err.Error(), "below the 0.85 gate")
}

func TestCoherenceValidator_SubScoreRange(t *testing.T) {
	agent := NewCoherenceValidator(testConfig())
	pc := segmentsContext(t)

	result := sampleCoherence()
	result.Report.Temporal = 1.4

	err := agent.Validate(&result, pc)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "out of [0,1]")
}
