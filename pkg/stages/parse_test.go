package stages

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeJSON(t *testing.T) {
	type payload struct {
		Name  string `json:"name"`
		Count int    `json:"count"`
	}

	tests := []struct {
		name    string
		raw     string
		want    payload
		wantErr bool
	}{
		{
			name: "plain object",
			raw:  `{"name": "bell", "count": 9}`,
			want: payload{Name: "bell", Count: 9},
		},
		{
			name: "fenced json",
			raw:  "```json\n{\"name\": \"bell\", \"count\": 9}\n```",
			want: payload{Name: "bell", Count: 9},
		},
		{
			name: "bare fence",
			raw:  "```\n{\"name\": \"bell\", \"count\": 9}\n```",
			want: payload{Name: "bell", Count: 9},
		},
		{
			name: "prose around the object",
			raw:  "Here is the result:\n{\"name\": \"bell\", \"count\": 9}\nLet me know.",
			want: payload{Name: "bell", Count: 9},
		},
		{
			name:    "no object",
			raw:     "I could not produce a result.",
			wantErr: true,
		},
		{
			name:    "malformed object",
			raw:     `{"name": "bell",`,
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := decodeJSON[payload](tt.raw)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, *got)
		})
	}
}
