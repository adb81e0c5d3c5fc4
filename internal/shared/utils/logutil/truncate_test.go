package logutil

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTruncateForLog(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		maxLen   int
		expected string
	}{
		{"empty string", "", 10, ""},
		{"zero max", "", 0, "..."},
		{"negative max", "subject", -1, "..."},
		{"shorter than max", "hello", 10, "hello"},
		{"equal to max", "hello", 5, "hello"},
		{"longer than max", "hello world", 5, "hello..."},
		{"cyrillic kept whole", "Не могу войти в аккаунт", 8, "Не могу ..."},
		{"cyrillic equal to max", "Привет", 6, "Привет"},
		{"emoji boundary", "ok👍👍", 3, "ok👍..."},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, TruncateForLog(tt.input, tt.maxLen))
		})
	}
}
