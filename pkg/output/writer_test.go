package output

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/narraforge/narraforge/pkg/memory"
	"github.com/narraforge/narraforge/pkg/textcheck"
)

func TestWriter_Write(t *testing.T) {
	w := NewWriter(t.TempDir())

	segments := []string{
		"The tide rose over the quay before dawn.",
		"Mara counted the boats twice and found one missing.",
	}
	meta := Metadata{
		JobID:           "job-1",
		ProductionType:  "short_story",
		Genre:           "mystery",
		ContentLanguage: "en",
		WordCount:       17,
		SegmentCount:    2,
		Coherence:       textcheck.CoherenceReport{Composite: 0.97},
		CostUsd:         0.42,
		GeneratedAt:     time.Now().UTC(),
	}

	paths, err := w.Write("job-1", segments, meta, &memory.Snapshot{})
	require.NoError(t, err)

	narrative, err := os.ReadFile(paths.Narrative)
	require.NoError(t, err)
	assert.Equal(t, segments[0]+"\n\n* * *\n\n"+segments[1]+"\n", string(narrative))

	audiobook, err := os.ReadFile(paths.Audiobook)
	require.NoError(t, err)
	assert.Contains(t, string(audiobook), "[section 1]\n\n"+segments[0])
	assert.Contains(t, string(audiobook), "[pause]")

	var decoded Metadata
	raw, err := os.ReadFile(paths.Metadata)
	require.NoError(t, err)
	require.NoError(t, json.Unmarshal(raw, &decoded))
	assert.Equal(t, "job-1", decoded.JobID)
	assert.InDelta(t, 0.97, decoded.Coherence.Composite, 1e-9)

	expansion, err := os.ReadFile(paths.Expansion)
	require.NoError(t, err)
	assert.True(t, json.Valid(expansion))
}

func TestWriter_CleansEncoding(t *testing.T) {
	w := NewWriter(t.TempDir())

	paths, err := w.Write("job-2", []string{"She said â€œwait.â€"}, Metadata{
		JobID: "job-2", WordCount: 3, SegmentCount: 1,
	}, nil)
	require.NoError(t, err)

	narrative, err := os.ReadFile(paths.Narrative)
	require.NoError(t, err)
	assert.NotContains(t, string(narrative), "â€")
}

func TestWriter_RejectsEmptyJob(t *testing.T) {
	w := NewWriter(t.TempDir())

	_, err := w.Write("job-3", nil, Metadata{}, nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no segments")
}

func TestWriter_OneDirectoryPerJob(t *testing.T) {
	base := t.TempDir()
	w := NewWriter(base)

	_, err := w.Write("job-a", []string{"First story ends here."}, Metadata{JobID: "job-a", WordCount: 4, SegmentCount: 1}, nil)
	require.NoError(t, err)
	_, err = w.Write("job-b", []string{"Second story ends here."}, Metadata{JobID: "job-b", WordCount: 4, SegmentCount: 1}, nil)
	require.NoError(t, err)

	for _, job := range []string{"job-a", "job-b"} {
		_, err := os.Stat(filepath.Join(base, job, "narrative.txt"))
		assert.NoError(t, err)
	}
}
