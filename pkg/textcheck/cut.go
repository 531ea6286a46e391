package textcheck

import (
	"strings"
	"unicode"
)

// terminalRunes close a sentence; quote and bracket characters are allowed
// after the closer
const terminalRunes = ".!?…"

const closingRunes = "\"'”’»)]"

// EndsMidWord reports whether text stops without a sentence terminator, the
// signature of a truncated model response. Trailing whitespace and closing
// quotes are ignored; empty text counts as truncated.
func EndsMidWord(text string) bool {
	trimmed := strings.TrimRightFunc(text, unicode.IsSpace)
	trimmed = strings.TrimRight(trimmed, closingRunes)
	if trimmed == "" {
		return true
	}
	runes := []rune(trimmed)
	return !strings.ContainsRune(terminalRunes, runes[len(runes)-1])
}

// StylizedTooShort reports whether a stylized rewrite lost too much of its
// source, using the configured minimum word-count ratio
func StylizedTooShort(source, stylized string, minRatio float64) bool {
	sourceWords := CountWords(source)
	if sourceWords == 0 {
		return false
	}
	ratio := float64(CountWords(stylized)) / float64(sourceWords)
	return ratio < minRatio
}
