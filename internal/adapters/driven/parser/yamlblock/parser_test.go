package yamlblock

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kenkundert/bw-export/internal/core/domain"
)

func TestParser_ParseFields(t *testing.T) {
	parser := New()

	tests := []struct {
		name  string
		block string
		want  domain.Pairs
	}{
		{
			name:  "two fields in order",
			block: "account number: 0123456\nbranch: downtown",
			want: domain.Pairs{
				{Key: "account number", Value: "0123456"},
				{Key: "branch", Value: "downtown"},
			},
		},
		{
			name:  "leading zeros survive",
			block: "pin: 0123",
			want:  domain.Pairs{{Key: "pin", Value: "0123"}},
		},
		{
			name:  "quoted values",
			block: "note: \"a: b\"",
			want:  domain.Pairs{{Key: "note", Value: "a: b"}},
		},
		{
			name:  "empty block",
			block: "",
			want:  domain.Pairs{},
		},
		{
			name:  "value with spaces",
			block: "routing: 123 456 789",
			want:  domain.Pairs{{Key: "routing", Value: "123 456 789"}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := parser.ParseFields(tt.block)

			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParser_ParseFields_Errors(t *testing.T) {
	parser := New()

	tests := []struct {
		name     string
		block    string
		contains string
	}{
		{
			name:     "sequence root",
			block:    "- one\n- two",
			contains: "not a mapping",
		},
		{
			name:     "scalar root",
			block:    "just text, no colon structure is still a scalar",
			contains: "not a mapping",
		},
		{
			name:     "nested mapping value",
			block:    "outer:\n    inner: value",
			contains: "outer",
		},
		{
			name:     "sequence value",
			block:    "items:\n    - a\n    - b",
			contains: "items",
		},
		{
			name:     "invalid yaml",
			block:    "key: [unclosed",
			contains: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := parser.ParseFields(tt.block)

			require.Error(t, err)
			assert.ErrorIs(t, err, domain.ErrMalformedFieldBlock)
			if tt.contains != "" {
				assert.Contains(t, err.Error(), tt.contains)
			}
		})
	}
}
