package stages

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/narraforge/narraforge/pkg/config"
	"github.com/narraforge/narraforge/pkg/model"
	"github.com/narraforge/narraforge/pkg/pipeline"
)

func generatedContext(t *testing.T) *pipeline.Context {
	t.Helper()
	pc := planContext(t)
	putPayload(t, pc, 6, pipeline.KeySegments, sampleSegments())
	return pc
}

func rewriteResponse(t *testing.T, text string) *model.Response {
	t.Helper()
	raw, err := json.Marshal(stylizedDraft{Text: text})
	require.NoError(t, err)
	return &model.Response{Content: string(raw), CompletionTokens: 100}
}

func stylizerEnv(cfg *config.Config, client model.Client) *pipeline.Env {
	return &pipeline.Env{
		Client:  client,
		Config:  cfg,
		JobID:   "job-style",
		Attempt: 1,
		Tier:    config.TierAdvanced,
	}
}

func TestLanguageStylizer_Execute(t *testing.T) {
	cfg := testConfig()
	agent := NewLanguageStylizer(cfg)
	pc := generatedContext(t)

	client := &fakeClient{fn: func(_ int, meta model.CallMeta, req model.Request) (*model.Response, error) {
		assert.Equal(t, 8, meta.Stage)
		assert.Contains(t, req.User, "Target language: en")
		// Token budget covers three times the source word count
		assert.GreaterOrEqual(t, req.MaxTokens, 55*3)
		return rewriteResponse(t, makeProse(60)), nil
	}}

	payload, err := agent.Execute(context.Background(), stylizerEnv(cfg, client), pc)
	require.NoError(t, err)
	assert.Equal(t, 2, client.callCount())

	var set StylizedSet
	require.NoError(t, json.Unmarshal(payload, &set))
	require.Len(t, set.Segments, 2)
	for i, seg := range set.Segments {
		assert.Equal(t, i+1, seg.Index)
		assert.Equal(t, 60, seg.Words)
	}
}

func TestLanguageStylizer_RetriesLossyRewrite(t *testing.T) {
	cfg := testConfig()
	cfg.Production.SegmentConcurrency = 1
	agent := NewLanguageStylizer(cfg)

	pc := planContext(t)
	source := SegmentSet{Segments: sampleSegments().Segments[:1]} // 60 words
	putPayload(t, pc, 6, pipeline.KeySegments, source)

	client := &fakeClient{fn: func(call int, _ model.CallMeta, req model.Request) (*model.Response, error) {
		if call == 1 {
			return rewriteResponse(t, makeProse(30)), nil // half the source
		}
		assert.Contains(t, req.User, "Do not drop content")
		return rewriteResponse(t, makeProse(60)), nil
	}}

	payload, err := agent.Execute(context.Background(), stylizerEnv(cfg, client), pc)
	require.NoError(t, err)
	assert.Equal(t, 2, client.callCount())

	var set StylizedSet
	require.NoError(t, json.Unmarshal(payload, &set))
	assert.Equal(t, 60, set.Segments[0].Words)
}

func TestLanguageStylizer_FailsWhenRetryStaysLossy(t *testing.T) {
	cfg := testConfig()
	cfg.Production.SegmentConcurrency = 1
	agent := NewLanguageStylizer(cfg)

	pc := planContext(t)
	source := SegmentSet{Segments: sampleSegments().Segments[:1]}
	putPayload(t, pc, 6, pipeline.KeySegments, source)

	client := &fakeClient{fn: func(_ int, _ model.CallMeta, _ model.Request) (*model.Response, error) {
		return rewriteResponse(t, makeProse(30)), nil
	}}

	_, err := agent.Execute(context.Background(), stylizerEnv(cfg, client), pc)
	require.Error(t, err)

	var agentErr *pipeline.AgentError
	require.True(t, errors.As(err, &agentErr))
	assert.Equal(t, pipeline.ErrorKindQuality, agentErr.Kind)
	assert.Equal(t, 2, client.callCount())
}

func TestLanguageStylizer_TruncatedRewriteRetries(t *testing.T) {
	cfg := testConfig()
	cfg.Production.SegmentConcurrency = 1
	agent := NewLanguageStylizer(cfg)

	pc := planContext(t)
	source := SegmentSet{Segments: sampleSegments().Segments[:1]}
	putPayload(t, pc, 6, pipeline.KeySegments, source)

	client := &fakeClient{fn: func(call int, _ model.CallMeta, _ model.Request) (*model.Response, error) {
		if call == 1 {
			// Right length but no sentence terminator
			return rewriteResponse(t, makeProse(60)[:len(makeProse(60))-1]), nil
		}
		return rewriteResponse(t, makeProse(60)), nil
	}}

	_, err := agent.Execute(context.Background(), stylizerEnv(cfg, client), pc)
	require.NoError(t, err)
	assert.Equal(t, 2, client.callCount())
}

func TestLanguageStylizer_Validate(t *testing.T) {
	cfg := testConfig()
	agent := NewLanguageStylizer(cfg)
	pc := generatedContext(t)

	tests := []struct {
		name    string
		mutate  func(s *StylizedSet)
		wantErr string
	}{
		{
			name:   "valid",
			mutate: func(s *StylizedSet) {},
		},
		{
			name:    "count mismatch",
			mutate:  func(s *StylizedSet) { s.Segments = s.Segments[:1] },
			wantErr: "source has 2",
		},
		{
			name: "out of order",
			mutate: func(s *StylizedSet) {
				s.Segments[0], s.Segments[1] = s.Segments[1], s.Segments[0]
			},
			wantErr: "out of order",
		},
		{
			name:    "lost content",
			mutate:  func(s *StylizedSet) { s.Segments[0].Text = makeProse(20) },
			wantErr: "lost content",
		},
		{
			name:    "truncated",
			mutate:  func(s *StylizedSet) { s.Segments[1].Text = makeProse(55) + " and the tide" },
			wantErr: "truncated",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			set := sampleStylized()
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
