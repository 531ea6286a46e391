package textcheck

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestScoreIssues(t *testing.T) {
	tests := []struct {
		name   string
		issues []Issue
		want   float64
	}{
		{
			name:   "no issues is a perfect score",
			issues: nil,
			want:   1.0,
		},
		{
			name: "mixed severities",
			issues: []Issue{
				{Severity: SeverityCritical},
				{Severity: SeverityMajor},
				{Severity: SeverityMinor},
				{Severity: SeverityWarning},
			},
			want: 1.0 - 0.15 - 0.08 - 0.03 - 0.01,
		},
		{
			name: "clamped at zero",
			issues: []Issue{
				{Severity: SeverityCritical}, {Severity: SeverityCritical},
				{Severity: SeverityCritical}, {Severity: SeverityCritical},
				{Severity: SeverityCritical}, {Severity: SeverityCritical},
				{Severity: SeverityCritical},
			},
			want: 0,
		},
		{
			name:   "unknown severity costs as much as critical",
			issues: []Issue{{Severity: "catastrophic"}},
			want:   0.85,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, ScoreIssues(tt.issues), 1e-9)
		})
	}
}

func TestCoherenceReport_Passes(t *testing.T) {
	report := &CoherenceReport{Composite: 0.85}
	assert.True(t, report.Passes(0.85))

	report.Composite = 0.84
	assert.False(t, report.Passes(0.85))
}

func TestSeverity_IsValid(t *testing.T) {
	for _, s := range []Severity{SeverityCritical, SeverityMajor, SeverityMinor, SeverityWarning} {
		assert.True(t, s.IsValid(), s)
	}
	assert.False(t, Severity("fatal").IsValid())
	assert.False(t, Severity("").IsValid())
}
