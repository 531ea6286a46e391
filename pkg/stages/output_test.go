package stages

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/narraforge/narraforge/pkg/model"
	"github.com/narraforge/narraforge/pkg/output"
	"github.com/narraforge/narraforge/pkg/pipeline"
)

// stubLedger answers a fixed spend
type stubLedger struct {
	spend float64
}

func (l *stubLedger) RecordCall(context.Context, model.CallMeta, string, string, model.CallRecord) error {
	return nil
}

func (l *stubLedger) JobSpend(context.Context, string) (float64, error) {
	return l.spend, nil
}

func finalContext(t *testing.T) *pipeline.Context {
	t.Helper()
	pc := stylizedContext(t)
	putPayload(t, pc, 9, pipeline.KeyEditorialReport, sampleEditorial())
	return pc
}

func TestOutputProcessor_Execute(t *testing.T) {
	cfg := testConfig()
	cfg.Production.OutputDirectory = t.TempDir()
	agent := NewOutputProcessor(cfg)

	env := &pipeline.Env{
		Config: cfg,
		Ledger: &stubLedger{spend: 1.23},
		JobID:  "job-out",
	}

	payload, err := agent.Execute(context.Background(), env, finalContext(t))
	require.NoError(t, err)

	var manifest OutputManifest
	require.NoError(t, json.Unmarshal(payload, &manifest))

	assert.Equal(t, filepath.Join(cfg.Production.OutputDirectory, "job-out"), manifest.Directory)
	assert.Equal(t, 2, manifest.SegmentCount)
	assert.Equal(t, 112, manifest.WordCount) // 58 + 54
	assert.InDelta(t, 0.97, manifest.CoherenceScore, 1e-9)
	assert.InDelta(t, 1.23, manifest.TotalCostUsd, 1e-9)
	assert.Equal(t, "en", manifest.ContentLanguage)

	narrative, err := os.ReadFile(manifest.NarrativePath)
	require.NoError(t, err)
	assert.Contains(t, string(narrative), "* * *")

	audiobook, err := os.ReadFile(manifest.AudiobookPath)
	require.NoError(t, err)
	assert.Contains(t, string(audiobook), "[section 1]")
	assert.Contains(t, string(audiobook), "[pause]")
	assert.Contains(t, string(audiobook), "[section 2]")

	var meta output.Metadata
	raw, err := os.ReadFile(manifest.MetadataPath)
	require.NoError(t, err)
	require.NoError(t, json.Unmarshal(raw, &meta))
	assert.Equal(t, "job-out", meta.JobID)
	assert.Equal(t, "mystery", meta.Genre)
	assert.Equal(t, 112, meta.WordCount)
	assert.Len(t, meta.Coherence.Issues, 1)

	// Memory is not wired in this test, so the export is an empty snapshot
	expansion, err := os.ReadFile(manifest.ExpansionPath)
	require.NoError(t, err)
	assert.True(t, json.Valid(expansion))
}

func TestOutputProcessor_NoModelCalls(t *testing.T) {
	cfg := testConfig()
	cfg.Production.OutputDirectory = t.TempDir()
	agent := NewOutputProcessor(cfg)

	// No client in the environment: a model call would panic the test
	env := &pipeline.Env{Config: cfg, JobID: "job-deterministic"}

	payload, err := agent.Execute(context.Background(), env, finalContext(t))
	require.NoError(t, err)

	var manifest OutputManifest
	require.NoError(t, json.Unmarshal(payload, &manifest))
	assert.Zero(t, manifest.TotalCostUsd)
}

func TestOutputProcessor_MissingEditorialReport(t *testing.T) {
	cfg := testConfig()
	cfg.Production.OutputDirectory = t.TempDir()
	agent := NewOutputProcessor(cfg)

	pc := stylizedContext(t) // no editorial report recorded
	_, err := agent.Execute(context.Background(), &pipeline.Env{Config: cfg, JobID: "job-missing"}, pc)
	require.Error(t, err)
	assert.Contains(t, err.Error(), pipeline.KeyEditorialReport)
}

func TestOutputProcessor_ValidateManifest(t *testing.T) {
	agent := NewOutputProcessor(testConfig())
	pc := finalContext(t)

	manifest := OutputManifest{
		Directory:     "/tmp/out/job",
		NarrativePath: "/tmp/out/job/narrative.txt",
		WordCount:     100,
		SegmentCount:  2,
	}
	assert.NoError(t, agent.Validate(&manifest, pc))

	empty := manifest
	empty.NarrativePath = ""
	assert.Error(t, agent.Validate(&empty, pc))

	hollow := manifest
	hollow.WordCount = 0
	assert.Error(t, agent.Validate(&hollow, pc))
}
