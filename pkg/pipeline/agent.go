package pipeline

import (
	"context"
	"encoding/json"
	"sync/atomic"

	"github.com/narraforge/narraforge/pkg/config"
	"github.com/narraforge/narraforge/pkg/memory"
	"github.com/narraforge/narraforge/pkg/model"
)

// Agent is the contract every stage implements. The default flow (build
// prompts, route, parse, validate) is driven by the Runner; stages that own
// their call pattern additionally implement Executor.
type Agent interface {
	// Name is the human-readable stage name used in logs and events
	Name() string

	// Stage is the 1-based pipeline position
	Stage() int

	// RequiredKeys lists context keys that must exist before execution.
	// The orchestrator refuses to run the stage otherwise.
	RequiredKeys() []string

	// ProducedKey is the single context key this stage writes
	ProducedKey() string

	// PreferredTier is the capability tier for attempt one; retries may
	// escalate it
	PreferredTier() config.Tier

	// SystemPrompt returns the schema-bearing instructions
	SystemPrompt() string

	// BuildUserPrompt renders the stage input from the pipeline context
	BuildUserPrompt(pc *Context) (string, error)

	// Parse decodes raw model output into the stage's typed result.
	// Failures classify as schema errors.
	Parse(raw string) (any, error)

	// Validate checks the parsed result against the stage's semantic
	// rules. Failures classify as validation errors.
	Validate(result any, pc *Context) error
}

// Env carries the per-attempt execution environment into custom executors
type Env struct {
	Client  model.Client
	Config  *config.Config
	Memory  *memory.Memory
	Ledger  model.Ledger
	JobID   string
	Attempt int
	Tier    config.Tier

	// Progress reports transient per-stage progress (done, total, message).
	// Nil when nobody is listening.
	Progress func(done, total int, message string)

	completionTokens atomic.Int64
}

// Generate routes one model call for the given stage and attributes its
// completion tokens to the attempt. Executors call this instead of the
// client so multi-call stages keep their context entries token-sized.
func (e *Env) Generate(ctx context.Context, stage int, req model.Request) (*model.Response, error) {
	resp, err := e.Client.Generate(ctx, model.CallMeta{
		JobID:   e.JobID,
		Stage:   stage,
		Attempt: e.Attempt,
		Tier:    e.Tier,
	}, req)
	if err != nil {
		return nil, err
	}
	e.completionTokens.Add(int64(resp.CompletionTokens))
	return resp, nil
}

// CompletionTokens is the sum over every call made through Generate
func (e *Env) CompletionTokens() int {
	return int(e.completionTokens.Load())
}

// ReportProgress invokes the progress callback when set
func (e *Env) ReportProgress(done, total int, message string) {
	if e.Progress != nil {
		e.Progress(done, total, message)
	}
}

// Executor is implemented by stages that run their own call pattern instead
// of the Runner's single-call flow: multi-call generation, deterministic
// output assembly.
type Executor interface {
	Execute(ctx context.Context, env *Env, pc *Context) (json.RawMessage, error)
}
