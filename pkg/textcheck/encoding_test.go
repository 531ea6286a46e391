package textcheck

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCleanEncoding(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{
			name:  "clean text untouched",
			input: "The rain stopped at dawn.",
			want:  "The rain stopped at dawn.",
		},
		{
			name:  "mangled apostrophe",
			input: "She didnâ€™t answer.",
			want:  "She didn't answer.",
		},
		{
			name:  "mangled em dash survives the bare prefix rule",
			input: "He paused â€” too long.",
			want:  "He paused — too long.",
		},
		{
			name:  "mangled ellipsis",
			input: "And thenâ€¦ nothing.",
			want:  "And then… nothing.",
		},
		{
			name:  "mangled closing quote",
			input: "so be it,â€ she said.",
			want:  "so be it,” she said.",
		},
		{
			name:  "accented characters",
			input: "cafÃ© on the piÃ±ata street",
			want:  "café on the piñata street",
		},
		{
			name:  "bom stripped",
			input: "\ufeffChapter One",
			want:  "Chapter One",
		},
		{
			name:  "crlf normalized",
			input: "line one\r\nline two\rline three",
			want:  "line one\nline two\nline three",
		},
		{
			name:  "trailing spaces trimmed",
			input: "a line   \nanother\t\n",
			want:  "a line\nanother\n",
		},
		{
			name:  "blank line runs collapsed",
			input: "para one\n\n\n\npara two",
			want:  "para one\n\npara two",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CleanEncoding(tt.input))
		})
	}
}

func TestCleanEncoding_Idempotent(t *testing.T) {
	input := "She didnâ€™t â€” or wouldnâ€™tâ€¦ \r\nsay.   \n\n\n\nThe cafÃ© closed."
	once := CleanEncoding(input)
	assert.Equal(t, once, CleanEncoding(once))
}
