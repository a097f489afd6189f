package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

// TestRenderFolderName tests template rendering against a fixed time
func TestRenderFolderName(t *testing.T) {
	now := time.Date(2026, time.August, 23, 14, 5, 9, 0, time.UTC)

	tests := []struct {
		name     string
		template string
		expected string
	}{
		{
			name:     "default template",
			template: DefaultFolderTemplate,
			expected: "Avendesora-260823",
		},
		{
			name:     "four digit year",
			template: "YYYY-MM-DD",
			expected: "2026-08-23",
		},
		{
			name:     "time tokens",
			template: "HH:mm:ss",
			expected: "14:05:09",
		},
		{
			name:     "bracketed text is literal",
			template: "[YYMMDD]",
			expected: "YYMMDD",
		},
		{
			name:     "unterminated bracket makes the rest literal",
			template: "[Backup-YYMMDD",
			expected: "Backup-YYMMDD",
		},
		{
			name:     "characters outside tokens pass through",
			template: "export_YYMMDD.done",
			expected: "export_260823.done",
		},
		{
			name:     "empty template renders empty",
			template: "",
			expected: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, RenderFolderName(tt.template, now))
		})
	}
}
