package textcheck

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEndsMidWord(t *testing.T) {
	tests := []struct {
		name string
		text string
		want bool
	}{
		{"full sentence", "The rain stopped at dawn.", false},
		{"exclamation", "Run!", false},
		{"question", "Where were you?", false},
		{"ellipsis", "And then…", false},
		{"closing quote after terminator", "\"So be it.\"", false},
		{"curly quote after terminator", "“So be it.”", false},
		{"trailing whitespace ignored", "Done.  \n", false},
		{"cut mid word", "She reached for the han", true},
		{"cut after comma", "He turned,", true},
		{"cut inside open quote", "\"I never", true},
		{"empty", "", true},
		{"whitespace only", "   \n", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, EndsMidWord(tt.text))
		})
	}
}

func TestStylizedTooShort(t *testing.T) {
	source := strings.Repeat("word ", 100)

	// 96 of 100 words at a 0.95 floor is fine
	assert.False(t, StylizedTooShort(source, strings.Repeat("word ", 96), 0.95))

	// 94 of 100 is a loss
	assert.True(t, StylizedTooShort(source, strings.Repeat("word ", 94), 0.95))

	// Empty source cannot be judged
	assert.False(t, StylizedTooShort("", "anything", 0.95))
}
