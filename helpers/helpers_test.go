package helpers

import (
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"
)

func TestShortenAddr(t *testing.T) {
	assert.Equal(t, "0x5290…9ee7", ShortenAddr("0x52908400098527886e0f7030069857d2e4169ee7"))
	assert.Equal(t, "0x123...456", ShortenAddr("0x123...456"))
	assert.Equal(t, "", ShortenAddr(""))
}

func TestFormatJPYC(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"12500", "12,500"},
		{"0", "0"},
		{"1000000.5", "1,000,000.5"},
		{"123456789012345678901234", "123,456,789,012,345,678,901,234"},
		{"abc", "abc"},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatJPYC(tt.in))
		})
	}
}

func TestFadeString(t *testing.T) {
	assert.Empty(t, FadeString("", "#3B82F6", "#10B981"))
	out := FadeString("JPYC", "#3B82F6", "#10B981")
	assert.Equal(t, 4, lipgloss.Width(out))
}

func TestMinMax(t *testing.T) {
	assert.Equal(t, 3, Max(1, 3))
	assert.Equal(t, 1, Min(1, 3))
}
