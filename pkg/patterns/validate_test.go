package patterns

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsBotNickname(t *testing.T) {
	tests := []struct {
		name     string
		nickname string
		pattern  string
		expected bool
	}{
		{"exact match single digit", "---TAKE_4", "---TAKE", true},
		{"exact match multiple digits", "---TAKE_42", "---TAKE", true},
		{"exact match long suffix", "---TAKE_400", "---TAKE", true},
		{"trailing garbage", "---TAKE_42x", "---TAKE", false},
		{"text between pattern and suffix", "---TAKEabc_42", "---TAKE", false},
		{"underscore without digits", "---TAKE_", "---TAKE", false},
		{"no underscore", "---TAKE42", "---TAKE", false},
		{"pattern only", "---TAKE", "---TAKE", false},
		{"different pattern", "---CARRY_42", "---TAKE", false},
		{"case sensitive", "---take_42", "---TAKE", false},
		{"non-ascii digits rejected", "---TAKE_٤٢", "---TAKE", false},
		{"double underscore", "---TAKE__42", "---TAKE", false},
		{"empty nickname", "", "---TAKE", false},
		{"empty pattern", "---TAKE_42", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, IsBotNickname(tt.nickname, tt.pattern))
		})
	}
}
