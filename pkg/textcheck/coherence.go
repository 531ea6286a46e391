package textcheck

// Severity grades a coherence issue. Each grade carries a fixed score
// deduction.
type Severity string

const (
	SeverityCritical Severity = "critical"
	SeverityMajor    Severity = "major"
	SeverityMinor    Severity = "minor"
	SeverityWarning  Severity = "warning"
)

// Deduction returns the composite-score penalty for the severity. Unknown
// severities cost as much as critical so malformed reports cannot pass the
// gate by accident.
func (s Severity) Deduction() float64 {
	switch s {
	case SeverityCritical:
		return 0.15
	case SeverityMajor:
		return 0.08
	case SeverityMinor:
		return 0.03
	case SeverityWarning:
		return 0.01
	default:
		return 0.15
	}
}

// IsValid reports whether s is one of the four known grades
func (s Severity) IsValid() bool {
	switch s {
	case SeverityCritical, SeverityMajor, SeverityMinor, SeverityWarning:
		return true
	}
	return false
}

// Issue is one coherence finding
type Issue struct {
	Severity     Severity `json:"severity"`
	Category     string   `json:"category"`
	Description  string   `json:"description"`
	SegmentIndex int      `json:"segment_index"`
}

// CoherenceReport carries the four sub-scores, the deduction-based composite,
// and the issue list behind it
type CoherenceReport struct {
	Logical       float64 `json:"logical"`
	Psychological float64 `json:"psychological"`
	Temporal      float64 `json:"temporal"`
	WorldRule     float64 `json:"world_rule"`
	Composite     float64 `json:"composite"`
	Issues        []Issue `json:"issues"`
}

// ScoreIssues starts from 1.0, subtracts each issue's deduction, and clamps
// at zero
func ScoreIssues(issues []Issue) float64 {
	score := 1.0
	for _, issue := range issues {
		score -= issue.Severity.Deduction()
	}
	if score < 0 {
		return 0
	}
	return score
}

// Passes reports whether the composite clears the threshold
func (r *CoherenceReport) Passes(threshold float64) bool {
	return r.Composite >= threshold
}
