// Package output writes the four-artifact manifest of a completed job:
// the plain narrative, the audiobook-marked narrative, the metadata, and
// the expansion-ready memory export.
package output

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/narraforge/narraforge/pkg/memory"
	"github.com/narraforge/narraforge/pkg/textcheck"
)

// segmentSeparator delimits segments in the plain narrative
const segmentSeparator = "\n\n* * *\n\n"

// Metadata is the stats block written to metadata.json
type Metadata struct {
	JobID           string                    `json:"job_id"`
	ProductionType  string                    `json:"production_type"`
	Genre           string                    `json:"genre"`
	ContentLanguage string                    `json:"content_language"`
	WordCount       int                       `json:"word_count"`
	SegmentCount    int                       `json:"segment_count"`
	Coherence       textcheck.CoherenceReport `json:"coherence"`
	CostUsd         float64                   `json:"cost_usd"`
	GeneratedAt     time.Time                 `json:"generated_at"`
}

// Paths names the artifacts a write produced
type Paths struct {
	Dir       string
	Narrative string
	Audiobook string
	Metadata  string
	Expansion string
}

// Writer emits job artifacts under a base directory, one subdirectory per
// job
type Writer struct {
	baseDir string
}

// NewWriter creates a writer rooted at baseDir
func NewWriter(baseDir string) *Writer {
	return &Writer{baseDir: baseDir}
}

// Write emits all four artifacts. Segment text is passed through encoding
// cleanup first; the cleanup is idempotent so already-clean text is
// unchanged. The expansion snapshot may be nil, in which case an empty
// object is written.
func (w *Writer) Write(jobID string, segments []string, meta Metadata, expansion *memory.Snapshot) (*Paths, error) {
	if len(segments) == 0 {
		return nil, fmt.Errorf("no segments to write")
	}

	dir := filepath.Join(w.baseDir, jobID)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create output directory: %w", err)
	}

	cleaned := make([]string, len(segments))
	for i, seg := range segments {
		cleaned[i] = textcheck.CleanEncoding(seg)
	}

	paths := &Paths{
		Dir:       dir,
		Narrative: filepath.Join(dir, "narrative.txt"),
		Audiobook: filepath.Join(dir, "narrative_audiobook.txt"),
		Metadata:  filepath.Join(dir, "metadata.json"),
		Expansion: filepath.Join(dir, "expansion.json"),
	}

	if err := os.WriteFile(paths.Narrative, []byte(narrativeText(cleaned)), 0o644); err != nil {
		return nil, fmt.Errorf("failed to write narrative: %w", err)
	}
	if err := os.WriteFile(paths.Audiobook, []byte(audiobookText(cleaned)), 0o644); err != nil {
		return nil, fmt.Errorf("failed to write audiobook text: %w", err)
	}

	metaJSON, err := json.MarshalIndent(meta, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal metadata: %w", err)
	}
	if err := os.WriteFile(paths.Metadata, append(metaJSON, '\n'), 0o644); err != nil {
		return nil, fmt.Errorf("failed to write metadata: %w", err)
	}

	if expansion == nil {
		expansion = &memory.Snapshot{}
	}
	expJSON, err := json.MarshalIndent(expansion, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal expansion export: %w", err)
	}
	if err := os.WriteFile(paths.Expansion, append(expJSON, '\n'), 0o644); err != nil {
		return nil, fmt.Errorf("failed to write expansion export: %w", err)
	}

	return paths, nil
}

// narrativeText joins segments with the plain separator
func narrativeText(segments []string) string {
	return strings.Join(segments, segmentSeparator) + "\n"
}

// audiobookText marks each segment boundary for narration: a section
// header per segment and an explicit pause marker between them
func audiobookText(segments []string) string {
	var b strings.Builder
	for i, seg := range segments {
		if i > 0 {
			b.WriteString("\n\n[pause]\n\n")
		}
		fmt.Fprintf(&b, "[section %d]\n\n%s", i+1, seg)
	}
	b.WriteString("\n")
	return b.String()
}
