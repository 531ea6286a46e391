package textcheck

// RepetitionHit is one budgeted word used over its per-1000-word cap
type RepetitionHit struct {
	Word    string  `json:"word"`
	Count   int     `json:"count"`
	Per1000 float64 `json:"per_1000_words"`
	Budget  int     `json:"budget"`
}

// DetectRepetition counts budgeted words and flags those whose per-1000-word
// rate exceeds their cap. Words are matched after punctuation stripping and
// lowercasing, so "Suddenly," counts against "suddenly".
func DetectRepetition(text string, budgets map[string]int) []RepetitionHit {
	words := CountWords(text)
	if words == 0 || len(budgets) == 0 {
		return nil
	}
	freq := wordFrequencies(text)

	var hits []RepetitionHit
	for word, budget := range budgets {
		count := freq[normalizeWord(word)]
		if count == 0 {
			continue
		}
		rate := float64(count) * 1000 / float64(words)
		if rate > float64(budget) {
			hits = append(hits, RepetitionHit{
				Word:    word,
				Count:   count,
				Per1000: rate,
				Budget:  budget,
			})
		}
	}
	return hits
}
