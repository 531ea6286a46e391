package pipeline

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/narraforge/narraforge/pkg/config"
	"github.com/narraforge/narraforge/pkg/memory"
	"github.com/narraforge/narraforge/pkg/model"
)

// Runner executes one attempt of an agent. Stages implementing Executor run
// their own call pattern; everything else gets the default flow. Retry and
// tier-escalation policy belongs to the orchestrator.
type Runner struct {
	client model.Client
	cfg    *config.Config
	mem    *memory.Memory
	ledger model.Ledger
}

// NewRunner creates a runner over the given model client. Memory and ledger
// may be nil; executors that use them degrade to context-only operation.
func NewRunner(client model.Client, cfg *config.Config, mem *memory.Memory, ledger model.Ledger) *Runner {
	return &Runner{client: client, cfg: cfg, mem: mem, ledger: ledger}
}

// AttemptResult is the outcome of one successful attempt
type AttemptResult struct {
	Payload json.RawMessage
	Tokens  int // completion tokens attributed to the produced entry
}

// RunAttempt executes one attempt of the agent at the given tier
func (r *Runner) RunAttempt(ctx context.Context, agent Agent, pc *Context, jobID string, attempt int, tier config.Tier, progress func(done, total int, message string)) (*AttemptResult, error) {
	if executor, ok := agent.(Executor); ok {
		env := &Env{
			Client:   r.client,
			Config:   r.cfg,
			Memory:   r.mem,
			Ledger:   r.ledger,
			JobID:    jobID,
			Attempt:  attempt,
			Tier:     tier,
			Progress: progress,
		}
		payload, err := executor.Execute(ctx, env, pc)
		if err != nil {
			return nil, err
		}
		return &AttemptResult{
			Payload: payload,
			Tokens:  env.CompletionTokens(),
		}, nil
	}

	return r.runDefault(ctx, agent, pc, jobID, attempt, tier)
}

// runDefault is the single-call flow: build prompts, route, parse, validate,
// serialise
func (r *Runner) runDefault(ctx context.Context, agent Agent, pc *Context, jobID string, attempt int, tier config.Tier) (*AttemptResult, error) {
	userPrompt, err := agent.BuildUserPrompt(pc)
	if err != nil {
		return nil, fmt.Errorf("failed to build user prompt: %w", err)
	}

	meta := model.CallMeta{
		JobID:   jobID,
		Stage:   agent.Stage(),
		Attempt: attempt,
		Tier:    tier,
	}

	resp, err := r.client.Generate(ctx, meta, model.Request{
		System:      agent.SystemPrompt(),
		User:        userPrompt,
		Temperature: 0.7,
	})
	if err != nil {
		return nil, err
	}

	result, err := agent.Parse(resp.Content)
	if err != nil {
		return nil, NewAgentError(ErrorKindSchema, fmt.Sprintf("%s output did not parse", agent.Name()), err)
	}

	if err := agent.Validate(result, pc); err != nil {
		// Agents may raise pre-classified errors (quality gates); keep
		// their kind
		var agentErr *AgentError
		if !errors.As(err, &agentErr) {
			err = NewAgentError(ErrorKindValidation, fmt.Sprintf("%s output failed validation", agent.Name()), err)
		}
		return nil, err
	}

	payload, err := json.Marshal(result)
	if err != nil {
		return nil, fmt.Errorf("failed to serialise %s result: %w", agent.Name(), err)
	}

	return &AttemptResult{
		Payload: payload,
		Tokens:  resp.CompletionTokens,
	}, nil
}
