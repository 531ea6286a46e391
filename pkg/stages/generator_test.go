package stages

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/narraforge/narraforge/pkg/config"
	"github.com/narraforge/narraforge/pkg/model"
	"github.com/narraforge/narraforge/pkg/pipeline"
)

func planContext(t *testing.T) *pipeline.Context {
	t.Helper()
	pc := structureContext(t)
	putPayload(t, pc, 5, pipeline.KeySegmentPlan, samplePlan())
	return pc
}

func draftResponse(t *testing.T, text string, selfScore float64) *model.Response {
	t.Helper()
	raw, err := json.Marshal(segmentDraft{Text: text, SelfScore: selfScore})
	require.NoError(t, err)
	return &model.Response{Content: string(raw), CompletionTokens: 100}
}

func generatorEnv(cfg *config.Config, client model.Client) *pipeline.Env {
	return &pipeline.Env{
		Client:  client,
		Config:  cfg,
		JobID:   "job-gen",
		Attempt: 1,
		Tier:    config.TierAdvanced,
	}
}

func TestSequentialGenerator_Execute(t *testing.T) {
	cfg := testConfig()
	agent := NewSequentialGenerator(cfg)
	pc := planContext(t)

	client := &fakeClient{fn: func(_ int, meta model.CallMeta, req model.Request) (*model.Response, error) {
		assert.Equal(t, 6, meta.Stage)
		assert.Equal(t, config.TierAdvanced, meta.Tier)
		assert.Positive(t, req.MaxTokens)
		return draftResponse(t, makeProse(80), 0.8), nil
	}}

	payload, err := agent.Execute(context.Background(), generatorEnv(cfg, client), pc)
	require.NoError(t, err)
	assert.Equal(t, 2, client.callCount())

	var set SegmentSet
	require.NoError(t, json.Unmarshal(payload, &set))
	require.Len(t, set.Segments, 2)
	for i, seg := range set.Segments {
		assert.Equal(t, i+1, seg.Index)
		assert.Equal(t, 80, seg.Words)
		assert.InDelta(t, 0.8, seg.SelfScore, 1e-9)
	}
}

func TestSequentialGenerator_ReportsProgress(t *testing.T) {
	cfg := testConfig()
	agent := NewSequentialGenerator(cfg)
	pc := planContext(t)

	client := &fakeClient{fn: func(_ int, _ model.CallMeta, _ model.Request) (*model.Response, error) {
		return draftResponse(t, makeProse(50), 0.7), nil
	}}

	var messages []string
	env := generatorEnv(cfg, client)
	env.Progress = func(done, total int, message string) {
		assert.Equal(t, 2, total)
		messages = append(messages, message)
	}

	// Serial execution keeps the progress callback free of races in this test
	cfg.Production.SegmentConcurrency = 1

	_, err := agent.Execute(context.Background(), env, pc)
	require.NoError(t, err)
	assert.Len(t, messages, 2)
}

func TestSequentialGenerator_RevisesUnhealthyDraft(t *testing.T) {
	cfg := testConfig()
	cfg.Production.SegmentConcurrency = 1
	agent := NewSequentialGenerator(cfg)

	pc := structureContext(t)
	plan := SegmentPlan{Segments: samplePlan().Segments[:1]}
	putPayload(t, pc, 5, pipeline.KeySegmentPlan, plan)

	client := &fakeClient{fn: func(call int, _ model.CallMeta, req model.Request) (*model.Response, error) {
		if call == 1 {
			return draftResponse(t, makeProse(40)+" The deafening silence held.", 0.6), nil
		}
		assert.Contains(t, req.User, "deafening silence")
		return draftResponse(t, makeProse(50), 0.8), nil
	}}

	payload, err := agent.Execute(context.Background(), generatorEnv(cfg, client), pc)
	require.NoError(t, err)
	assert.Equal(t, 2, client.callCount())

	var set SegmentSet
	require.NoError(t, json.Unmarshal(payload, &set))
	assert.NotContains(t, set.Segments[0].Text, "deafening silence")
}

func TestSequentialGenerator_FailsWhenRevisionStaysUnhealthy(t *testing.T) {
	cfg := testConfig()
	cfg.Production.SegmentConcurrency = 1
	agent := NewSequentialGenerator(cfg)

	pc := structureContext(t)
	plan := SegmentPlan{Segments: samplePlan().Segments[:1]}
	putPayload(t, pc, 5, pipeline.KeySegmentPlan, plan)

	client := &fakeClient{fn: func(_ int, _ model.CallMeta, _ model.Request) (*model.Response, error) {
		return draftResponse(t, makeProse(40)+" Her blood ran cold.", 0.6), nil
	}}

	_, err := agent.Execute(context.Background(), generatorEnv(cfg, client), pc)
	require.Error(t, err)

	var agentErr *pipeline.AgentError
	require.True(t, errors.As(err, &agentErr))
	assert.Equal(t, pipeline.ErrorKindQuality, agentErr.Kind)
	assert.Equal(t, 2, client.callCount())
}

func TestSequentialGenerator_TruncatedDraftTriggersRevision(t *testing.T) {
	cfg := testConfig()
	cfg.Production.SegmentConcurrency = 1
	agent := NewSequentialGenerator(cfg)

	pc := structureContext(t)
	plan := SegmentPlan{Segments: samplePlan().Segments[:1]}
	putPayload(t, pc, 5, pipeline.KeySegmentPlan, plan)

	client := &fakeClient{fn: func(call int, _ model.CallMeta, _ model.Request) (*model.Response, error) {
		if call == 1 {
			return draftResponse(t, "The tide rose over the quay and the bell", 0.5), nil
		}
		return draftResponse(t, makeProse(50), 0.8), nil
	}}

	_, err := agent.Execute(context.Background(), generatorEnv(cfg, client), pc)
	require.NoError(t, err)
	assert.Equal(t, 2, client.callCount())
}

func TestSequentialGenerator_SchemaErrorOnGarbage(t *testing.T) {
	cfg := testConfig()
	cfg.Production.SegmentConcurrency = 1
	agent := NewSequentialGenerator(cfg)

	client := &fakeClient{fn: func(_ int, _ model.CallMeta, _ model.Request) (*model.Response, error) {
		return &model.Response{Content: "not json at all"}, nil
	}}

	_, err := agent.Execute(context.Background(), generatorEnv(cfg, client), planContext(t))
	require.Error(t, err)

	var agentErr *pipeline.AgentError
	require.True(t, errors.As(err, &agentErr))
	assert.Equal(t, pipeline.ErrorKindSchema, agentErr.Kind)
}

func TestSequentialGenerator_PropagatesClientError(t *testing.T) {
	cfg := testConfig()
	agent := NewSequentialGenerator(cfg)

	boom := fmt.Errorf("provider unavailable")
	client := &fakeClient{fn: func(_ int, _ model.CallMeta, _ model.Request) (*model.Response, error) {
		return nil, boom
	}}

	_, err := agent.Execute(context.Background(), generatorEnv(cfg, client), planContext(t))
	require.Error(t, err)
	assert.ErrorIs(t, err, boom)
}
