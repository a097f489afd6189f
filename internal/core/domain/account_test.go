package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// TestAccount_Exported tests export opt-in detection
func TestAccount_Exported(t *testing.T) {
	tests := []struct {
		name     string
		account  Account
		expected bool
	}{
		{
			name:     "nil export mapping opts out",
			account:  Account{Name: "scratch"},
			expected: false,
		},
		{
			name:     "empty export mapping still opts in",
			account:  Account{Name: "bank", Export: Pairs{}},
			expected: true,
		},
		{
			name: "declared export mapping opts in",
			account: Account{
				Name:   "bank",
				Export: Pairs{{Key: "name", Value: "Bank"}},
			},
			expected: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.account.Exported())
		})
	}
}
