// Package model routes chat-completion calls to capability tiers: provider
// fallback, rate ceilings, circuit breaking, budget enforcement, and the
// per-call cost ledger.
package model

import (
	"context"

	"github.com/narraforge/narraforge/pkg/config"
)

// Request is one chat-completion call. System carries the schema-bearing
// instructions; User carries the stage input.
type Request struct {
	System      string
	User        string
	MaxTokens   int
	Temperature float64
}

// Response is the parsed completion with token usage as reported by the
// provider.
type Response struct {
	Content          string
	PromptTokens     int
	CompletionTokens int
	Provider         string
	ModelID          string
}

// CallMeta attributes a call to a job, stage, and attempt for the ledger.
type CallMeta struct {
	JobID   string
	Stage   int
	Attempt int
	Tier    config.Tier
}

// Client dispatches one request to a capability tier. The router is the
// production implementation; tests substitute scripted fakes.
type Client interface {
	Generate(ctx context.Context, meta CallMeta, req Request) (*Response, error)
}
