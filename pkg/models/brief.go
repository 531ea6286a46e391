package models

import "fmt"

// Production types in ascending length order
const (
	ProductionShortStory = "short_story"
	ProductionNovella    = "novella"
	ProductionNovel      = "novel"
	ProductionEpicSaga   = "epic_saga"
)

// defaultWordCounts maps production types to target word counts used when
// the brief leaves target_word_count unset
var defaultWordCounts = map[string]int{
	ProductionShortStory: 7500,
	ProductionNovella:    35000,
	ProductionNovel:      100000,
	ProductionEpicSaga:   300000,
}

// Brief is the immutable job request: what to produce, seeded from free
// text inspiration in any language
type Brief struct {
	ProductionType  string   `json:"production_type"`
	Genre           string   `json:"genre"`
	Inspiration     string   `json:"inspiration"`
	TargetWordCount *int     `json:"target_word_count,omitempty"`
	StyleHints      []string `json:"style_hints,omitempty"`
	ContentLanguage string   `json:"content_language,omitempty"`
	Owner           string   `json:"owner,omitempty"`
}

// Validate checks the brief is complete enough to submit
func (b *Brief) Validate() error {
	if _, ok := defaultWordCounts[b.ProductionType]; !ok {
		return fmt.Errorf("invalid production_type %q", b.ProductionType)
	}
	if b.Genre == "" {
		return fmt.Errorf("genre is required")
	}
	if b.Inspiration == "" {
		return fmt.Errorf("inspiration is required")
	}
	if b.TargetWordCount != nil && *b.TargetWordCount <= 0 {
		return fmt.Errorf("target_word_count must be positive")
	}
	return nil
}

// EffectiveWordCount returns the explicit target or the production type's
// default
func (b *Brief) EffectiveWordCount() int {
	if b.TargetWordCount != nil {
		return *b.TargetWordCount
	}
	return defaultWordCounts[b.ProductionType]
}

// Language returns the content language, defaulting to English
func (b *Brief) Language() string {
	if b.ContentLanguage == "" {
		return "en"
	}
	return b.ContentLanguage
}
