package helpers

import (
	"image/color"
	"math/big"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"
	"github.com/lucasb-eyer/go-colorful"
	"github.com/muesli/gamut"
)

// ShortenAddr shortens an Ethereum address for display
func ShortenAddr(addr string) string {
	if len(addr) < 12 {
		return addr
	}
	return addr[:6] + "…" + addr[len(addr)-4:]
}

// FormatJPYC renders a balance with thousands separators, e.g. "12,500".
// Unparseable input is returned as is.
func FormatJPYC(balance string) string {
	balance = strings.TrimSpace(balance)
	f, ok := new(big.Float).SetString(balance)
	if !ok {
		return balance
	}
	if f.IsInt() {
		i, _ := f.Int(nil)
		if i.IsInt64() {
			return humanize.Comma(i.Int64())
		}
		return humanize.BigComma(i)
	}
	v, _ := f.Float64()
	return humanize.CommafWithDigits(v, 2)
}

// FadeString creates a gradient colored string
func FadeString(s string, firstColor string, lastColor string) string {
	n := len([]rune(s))
	if n == 0 {
		return ""
	}
	blends := gamut.Blends(lipgloss.Color(firstColor), lipgloss.Color(lastColor), n)
	return rainbow(lipgloss.NewStyle(), s, blends)
}

func rainbow(baseStyle lipgloss.Style, str string, colors []color.Color) string {
	var b strings.Builder
	i := 0
	for _, c := range str {
		col, _ := colorful.MakeColor(colors[i%len(colors)])
		b.WriteString(baseStyle.Foreground(lipgloss.Color(col.Hex())).Render(string(c)))
		i++
	}
	return b.String()
}

// Max returns the maximum of two integers
func Max(a, b int) int {
	if a > b {
		return a
	}
	return b
}

// Min returns the minimum of two integers
func Min(a, b int) int {
	if a < b {
		return a
	}
	return b
}
