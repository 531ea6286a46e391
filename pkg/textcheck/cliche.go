package textcheck

import (
	"strings"

	"github.com/narraforge/narraforge/pkg/config"
)

// PhraseHit is one banned phrase found over its allowance
type PhraseHit struct {
	Phrase  string  `json:"phrase"`
	Count   int     `json:"count"`
	Per1000 float64 `json:"per_1000_words"`
	// Budget is the allowed occurrences per 1000 words; 0 means never-use
	Budget int `json:"budget"`
}

// DetectCliches scans text against the banned-phrase list. Phrases with no
// budget are flagged on any occurrence; budgeted phrases are flagged when
// their per-1000-word rate exceeds the budget. Matching is case-insensitive.
func DetectCliches(text string, banned []config.BannedPhrase) []PhraseHit {
	lower := strings.ToLower(text)
	words := CountWords(text)
	if words == 0 {
		return nil
	}

	var hits []PhraseHit
	for _, entry := range banned {
		count := strings.Count(lower, strings.ToLower(entry.Phrase))
		if count == 0 {
			continue
		}
		rate := float64(count) * 1000 / float64(words)

		if entry.MaxPer1000Words == nil {
			hits = append(hits, PhraseHit{Phrase: entry.Phrase, Count: count, Per1000: rate})
			continue
		}
		if rate > float64(*entry.MaxPer1000Words) {
			hits = append(hits, PhraseHit{
				Phrase:  entry.Phrase,
				Count:   count,
				Per1000: rate,
				Budget:  *entry.MaxPer1000Words,
			})
		}
	}
	return hits
}
