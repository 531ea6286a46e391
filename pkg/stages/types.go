// Package stages implements the ten pipeline agents, from brief
// interpretation through output assembly. Stages 1-5, 7 and 9 run the
// default single-call flow; 6 and 8 drive their own multi-call patterns;
// 10 is deterministic and never calls a model.
package stages

import "github.com/narraforge/narraforge/pkg/textcheck"

// BriefInterpretation is the stage 1 payload: normalised production
// parameters derived from the raw brief.
type BriefInterpretation struct {
	ProductionType     string `json:"production_type"`
	Genre              string `json:"genre"`
	TargetWordCount    int    `json:"target_word_count"`
	TargetChapterCount int    `json:"target_chapter_count"`
	Tone               string `json:"tone"`
	ThematicFocus      string `json:"thematic_focus"`
	WorldScale         string `json:"world_scale"`
	ContentLanguage    string `json:"content_language"`
}

// WorldBible is the stage 2 payload
type WorldBible struct {
	Name         string   `json:"name"`
	Rules        []string `json:"rules"`
	Boundaries   []string `json:"boundaries"`
	Anomalies    []string `json:"anomalies"`
	CoreConflict string   `json:"core_conflict"`
	Theme        string   `json:"theme"`
	Scale        string   `json:"scale"`
}

// CharacterSpec is one character record of the stage 3 payload
type CharacterSpec struct {
	Name              string   `json:"name"`
	Role              string   `json:"role"`
	Trajectory        string   `json:"trajectory"`
	Contradictions    []string `json:"contradictions"`
	CognitiveLimits   []string `json:"cognitive_limits"`
	EvolutionCapacity float64  `json:"evolution_capacity"`
}

// CharacterSet is the stage 3 payload
type CharacterSet struct {
	Characters []CharacterSpec `json:"characters"`
}

// Beat is one chapter-level beat of the structure skeleton. CausalLink
// names how the beat follows from its predecessor: "therefore" or "but";
// the first beat of the work carries none.
type Beat struct {
	Title      string `json:"title"`
	Summary    string `json:"summary"`
	CausalLink string `json:"causal_link,omitempty"`
}

// Act groups beats
type Act struct {
	Title string `json:"title"`
	Beats []Beat `json:"beats"`
}

// Structure is the stage 4 payload
type Structure struct {
	Acts []Act `json:"acts"`
}

// SegmentDescriptor is one planned segment of the stage 5 payload
type SegmentDescriptor struct {
	Index         int    `json:"index"`
	Goal          string `json:"goal"`
	Conflict      string `json:"conflict"`
	POVCharacter  string `json:"pov_character"`
	TargetWords   int    `json:"target_words"`
	EmotionalBeat string `json:"emotional_beat"`
}

// SegmentPlan is the stage 5 payload
type SegmentPlan struct {
	Segments []SegmentDescriptor `json:"segments"`
}

// Segment is one generated prose segment of the stage 6 payload
type Segment struct {
	Index     int     `json:"index"`
	Text      string  `json:"text"`
	Words     int     `json:"words"`
	SelfScore float64 `json:"self_score"`
}

// SegmentSet is the stage 6 payload
type SegmentSet struct {
	Segments []Segment `json:"segments"`
}

// CoherenceResult is the stage 7 payload: the validated report with the
// deduction-based composite filled in
type CoherenceResult struct {
	Report textcheck.CoherenceReport `json:"report"`
}

// StylizedSegment is one rewritten segment of the stage 8 payload
type StylizedSegment struct {
	Index int    `json:"index"`
	Text  string `json:"text"`
	Words int    `json:"words"`
}

// StylizedSet is the stage 8 payload
type StylizedSet struct {
	Segments []StylizedSegment `json:"segments"`
}

// EditorialChange records one edit made by the editorial reviewer
type EditorialChange struct {
	Segment   int    `json:"segment"`
	Change    string `json:"change"`
	Rationale string `json:"rationale"`
}

// EditorialResult is the stage 9 payload: the final cut plus the report
type EditorialResult struct {
	Segments []string          `json:"segments"`
	Changes  []EditorialChange `json:"changes"`
}

// OutputManifest is the stage 10 payload: where the artifacts landed and
// the final statistics
type OutputManifest struct {
	Directory       string  `json:"directory"`
	NarrativePath   string  `json:"narrative_path"`
	AudiobookPath   string  `json:"audiobook_path"`
	MetadataPath    string  `json:"metadata_path"`
	ExpansionPath   string  `json:"expansion_path"`
	WordCount       int     `json:"word_count"`
	SegmentCount    int     `json:"segment_count"`
	CoherenceScore  float64 `json:"coherence_score"`
	TotalCostUsd    float64 `json:"total_cost_usd,omitempty"`
	ContentLanguage string  `json:"content_language"`
}
