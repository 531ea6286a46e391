package textcheck

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDetectRepetition_OverBudget(t *testing.T) {
	budgets := map[string]int{"suddenly": 2}

	// 100 words, three "suddenly": 30 per 1000
	text := "Suddenly the door opened. Suddenly, wind. Suddenly dark. " +
		strings.Repeat("calm ", 91)
	hits := DetectRepetition(text, budgets)
	require.Len(t, hits, 1)
	assert.Equal(t, "suddenly", hits[0].Word)
	assert.Equal(t, 3, hits[0].Count)
	assert.Equal(t, 2, hits[0].Budget)
}

func TestDetectRepetition_PunctuationStripped(t *testing.T) {
	budgets := map[string]int{"just": 1}
	hits := DetectRepetition("Just once. Just! \"Just.\"", budgets)
	require.Len(t, hits, 1)
	assert.Equal(t, 3, hits[0].Count)
}

func TestDetectRepetition_UnderBudget(t *testing.T) {
	budgets := map[string]int{"suddenly": 2}
	text := "Suddenly the storm broke over " + strings.Repeat("the plain ", 500)
	assert.Empty(t, DetectRepetition(text, budgets))
}

func TestDetectRepetition_AbsentWord(t *testing.T) {
	budgets := map[string]int{"suddenly": 2}
	assert.Empty(t, DetectRepetition("The storm broke.", budgets))
}

func TestDetectRepetition_EmptyInputs(t *testing.T) {
	assert.Nil(t, DetectRepetition("", map[string]int{"just": 1}))
	assert.Nil(t, DetectRepetition("some text", nil))
}

func TestCountWords(t *testing.T) {
	assert.Equal(t, 0, CountWords(""))
	assert.Equal(t, 0, CountWords("   \n\t"))
	assert.Equal(t, 5, CountWords("the rain stopped at dawn"))
}

func TestNormalizeWord(t *testing.T) {
	assert.Equal(t, "suddenly", normalizeWord("Suddenly,"))
	assert.Equal(t, "don't", normalizeWord("\"Don't\""))
	assert.Equal(t, "", normalizeWord("..."))
}
