package pipeline

import (
	"context"
	"errors"
	"fmt"

	"github.com/narraforge/narraforge/pkg/model"
)

// ErrorKind classifies stage failures for retry and resume decisions
type ErrorKind string

const (
	// ErrorKindTransport covers provider/network failures. Retryable on the
	// same tier.
	ErrorKindTransport ErrorKind = "transport"

	// ErrorKindSchema covers unparseable or schema-violating model output.
	// Retryable with tier upgrade.
	ErrorKindSchema ErrorKind = "schema"

	// ErrorKindQuality covers gate failures: coherence below threshold,
	// truncation, cliché or repetition budget exceeded. Retryable with
	// tier upgrade.
	ErrorKindQuality ErrorKind = "quality"

	// ErrorKindValidation covers agent-level semantic validation failures.
	// Retryable with tier upgrade.
	ErrorKindValidation ErrorKind = "validation"

	// ErrorKindCostExceeded means the budget ceiling was hit. Not
	// retryable; resume requires a config change.
	ErrorKindCostExceeded ErrorKind = "cost_exceeded"

	// ErrorKindCancelled means the job was cancelled or timed out
	ErrorKindCancelled ErrorKind = "cancelled"

	// ErrorKindPermanent covers failures no retry can fix (auth, exhausted
	// provider chains on permanent errors)
	ErrorKindPermanent ErrorKind = "permanent"
)

// Retryable reports whether a failed attempt of this kind may be retried
func (k ErrorKind) Retryable() bool {
	switch k {
	case ErrorKindTransport, ErrorKindSchema, ErrorKindQuality, ErrorKindValidation:
		return true
	}
	return false
}

// UpgradesTier reports whether a retry should escalate the model tier.
// Transport failures say nothing about model capability, so they retry on
// the same tier.
func (k ErrorKind) UpgradesTier() bool {
	switch k {
	case ErrorKindSchema, ErrorKindQuality, ErrorKindValidation:
		return true
	}
	return false
}

// BlocksResume reports whether a job failed with this kind may only resume
// after a configuration change
func (k ErrorKind) BlocksResume() bool {
	return k == ErrorKindCostExceeded || k == ErrorKindPermanent
}

// AgentError is a classified failure raised inside an agent: parse, gate,
// or validation
type AgentError struct {
	Kind    ErrorKind
	Message string
	Cause   error
}

// Error returns formatted error message
func (e *AgentError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Kind, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

// Unwrap returns the underlying error
func (e *AgentError) Unwrap() error {
	return e.Cause
}

// NewAgentError creates a classified agent failure
func NewAgentError(kind ErrorKind, message string, cause error) *AgentError {
	return &AgentError{Kind: kind, Message: message, Cause: cause}
}

// StageError is the terminal failure of a stage after all retries
type StageError struct {
	Stage     int
	Kind      ErrorKind
	Attempts  int
	LastCause error
}

// Error returns formatted error message
func (e *StageError) Error() string {
	return fmt.Sprintf("stage %d failed (%s) after %d attempt(s): %v",
		e.Stage, e.Kind, e.Attempts, e.LastCause)
}

// Unwrap returns the underlying error
func (e *StageError) Unwrap() error {
	return e.LastCause
}

// Classify maps any error surfaced during a stage attempt to its kind
func Classify(err error) ErrorKind {
	if err == nil {
		return ""
	}

	var agentErr *AgentError
	if errors.As(err, &agentErr) {
		return agentErr.Kind
	}

	if errors.Is(err, model.ErrBudgetExceeded) {
		return ErrorKindCostExceeded
	}

	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return ErrorKindCancelled
	}

	// The router wraps the last provider error, so an exhausted chain
	// classifies by what finally killed it
	var apiErr *model.APIError
	if errors.As(err, &apiErr) {
		if apiErr.Class == model.ErrorClassPermanent {
			return ErrorKindPermanent
		}
		return ErrorKindTransport
	}

	if errors.Is(err, model.ErrAllProvidersFailed) {
		return ErrorKindTransport
	}

	return ErrorKindPermanent
}
