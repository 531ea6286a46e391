package textcheck

import (
	"strings"
	"testing"

	"github.com/narraforge/narraforge/pkg/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func intPtr(n int) *int { return &n }

func TestDetectCliches_NeverUse(t *testing.T) {
	banned := []config.BannedPhrase{
		{Phrase: "heart hammering in her chest"},
	}

	text := "She ran, heart hammering in her chest, toward the gate."
	hits := DetectCliches(text, banned)
	require.Len(t, hits, 1)
	assert.Equal(t, "heart hammering in her chest", hits[0].Phrase)
	assert.Equal(t, 1, hits[0].Count)
	assert.Equal(t, 0, hits[0].Budget)
}

func TestDetectCliches_CaseInsensitive(t *testing.T) {
	banned := []config.BannedPhrase{{Phrase: "little did she know"}}
	hits := DetectCliches("Little did she know the door was open.", banned)
	require.Len(t, hits, 1)
}

func TestDetectCliches_BudgetedPhrase(t *testing.T) {
	banned := []config.BannedPhrase{
		{Phrase: "for a moment", MaxPer1000Words: intPtr(2)},
	}

	// 500 words with one occurrence: 2 per 1000, at the budget, no hit
	filler := strings.Repeat("word ", 496)
	atBudget := filler + "she waited for a moment"
	assert.Empty(t, DetectCliches(atBudget, banned))

	// Same length with two occurrences: 4 per 1000, over budget
	overBudget := strings.Repeat("word ", 492) +
		"for a moment she waited for a moment"
	hits := DetectCliches(overBudget, banned)
	require.Len(t, hits, 1)
	assert.Equal(t, 2, hits[0].Count)
	assert.Equal(t, 2, hits[0].Budget)
	assert.InDelta(t, 4.0, hits[0].Per1000, 0.1)
}

func TestDetectCliches_EmptyText(t *testing.T) {
	banned := []config.BannedPhrase{{Phrase: "anything"}}
	assert.Nil(t, DetectCliches("", banned))
}

func TestDetectCliches_CleanText(t *testing.T) {
	hits := DetectCliches("The harbor was quiet at dusk.", config.DefaultBannedPhrases())
	assert.Empty(t, hits)
}
