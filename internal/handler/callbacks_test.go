package handler

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCleanCallbackData(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "plain prefixed payload",
			input:    "quizopt_2",
			expected: "quizopt_2",
		},
		{
			name:     "leading form feed separator",
			input:    "\fcalday_20241215",
			expected: "calday_20241215",
		},
		{
			name:     "surrounding whitespace",
			input:    "  item_3f1c2a \n",
			expected: "item_3f1c2a",
		},
		{
			name:     "embedded null byte",
			input:    "del\x00yes_3f1c2a",
			expected: "delyes_3f1c2a",
		},
		{
			name:     "emoji and cyrillic survive",
			input:    "✅ ладнати",
			expected: "✅ ладнати",
		},
		{
			name:     "control characters only",
			input:    "\f\x00\x01",
			expected: "",
		},
		{
			name:     "empty data",
			input:    "",
			expected: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, cleanCallbackData(tt.input))
		})
	}
}
