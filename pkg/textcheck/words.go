// Package textcheck implements the deterministic text validators: coherence
// scoring, cliché and repetition detection, encoding cleanup, and truncation
// detection. Everything here is pure; no model calls.
package textcheck

import (
	"strings"
	"unicode"
)

// CountWords counts whitespace-separated words
func CountWords(text string) int {
	return len(strings.Fields(text))
}

// normalizeWord lowers a token and strips surrounding punctuation so that
// "Suddenly," and "suddenly" count as the same word
func normalizeWord(token string) string {
	return strings.ToLower(strings.TrimFunc(token, func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsNumber(r)
	}))
}

// wordFrequencies returns normalized word counts for a text
func wordFrequencies(text string) map[string]int {
	freq := make(map[string]int)
	for _, token := range strings.Fields(text) {
		word := normalizeWord(token)
		if word != "" {
			freq[word]++
		}
	}
	return freq
}
