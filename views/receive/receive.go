package receive

import (
	"strings"

	"jpyc-wallet-tui/styles"
	"jpyc-wallet-tui/wallet"

	"github.com/charmbracelet/lipgloss"
)

// Render renders the receive view: the address QR, the address itself and
// the copy feedback.
func Render(address, qr string, copied bool, savedPath string) string {
	hint := lipgloss.NewStyle().
		Foreground(styles.CWarn).
		Render("Only JPYC on the Polygon network is supported.")

	addr := lipgloss.NewStyle().
		Foreground(styles.CText).
		Background(styles.CBg).
		Padding(0, 1).
		Render(address)

	copyLabel := styles.Button("Copy address", false)
	if copied {
		copyLabel = lipgloss.NewStyle().
			Foreground(styles.CAccent).
			Bold(true).
			Render("✓ Copied!")
	}

	lines := []string{
		styles.TitleStyle.Render("Receive " + wallet.Currency),
		"",
		qr,
		styles.Muted("Your address"),
		addr,
		"",
		copyLabel,
		"",
		hint,
	}
	if savedPath != "" {
		lines = append(lines, styles.Muted("QR saved to "+savedPath))
	}
	return lipgloss.JoinVertical(lipgloss.Center, lines...)
}

// Nav returns the navigation bar for receive view
func Nav(width int) string {
	left := strings.Join([]string{
		styles.Key("c") + " copy",
		styles.Key("s") + " save PNG",
		styles.Key("Esc") + " home",
		styles.Key("l") + " logger",
	}, "   ")
	return styles.NavStyle.Width(width).Render(left)
}
