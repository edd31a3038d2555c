package settings

import (
	"strings"

	"jpyc-wallet-tui/config"
	"jpyc-wallet-tui/helpers"
	"jpyc-wallet-tui/styles"
	"jpyc-wallet-tui/wallet"

	"github.com/charmbracelet/lipgloss"
)

// Nav returns the navigation bar for settings view
func Nav(width int, settingsMode string) string {
	var left string
	if settingsMode == "add" {
		left = strings.Join([]string{
			styles.Key("l") + " debug log",
			styles.Key("Esc") + " cancel",
		}, "   ")
	} else {
		left = strings.Join([]string{
			styles.Key("↑/↓") + " select",
			styles.Key("Enter") + " use",
			styles.Key("a") + " add",
			styles.Key("d") + " delete",
			styles.Key("x") + " disconnect",
			styles.Key("l") + " debug log",
			styles.Key("Esc") + " home",
		}, "   ")
	}

	return styles.NavStyle.Width(width).Render(left)
}

// Render renders the settings view: the wallet session and the provider
// endpoints.
func Render(providers []config.Provider, selectedIdx int, st *wallet.State, connected string, logEnabled bool) string {
	lines := []string{styles.TitleStyle.Render("Settings"), ""}

	lines = append(lines, styles.TitleStyle.Render("Wallet"))
	if st.IsDemo() {
		lines = append(lines, styles.Muted("Demo mode, no account connected."))
	} else {
		lines = append(lines,
			"Account: "+helpers.ShortenAddr(st.Account),
			"Network: "+wallet.NetworkName(st.ChainID))
	}
	lines = append(lines, "Provider: "+connected)
	logState := "off"
	if logEnabled {
		logState = "on"
	}
	lines = append(lines, "Logger: "+logState, "")

	lines = append(lines, styles.TitleStyle.Render("Wallet Providers"))
	if len(providers) == 0 {
		lines = append(lines, styles.Muted("No provider endpoints configured."))
		lines = append(lines, "")
		lines = append(lines, styles.Muted("Press ")+styles.Key("a")+styles.Muted(" to add a wallet JSON-RPC endpoint."))
		return strings.Join(lines, "\n")
	}
	lines = append(lines, "")

	for i, p := range providers {
		var marker string
		if p.Active {
			marker = lipgloss.NewStyle().Foreground(styles.CAccent).Render("● ")
		} else {
			marker = lipgloss.NewStyle().Foreground(styles.CMuted).Render("○ ")
		}

		nameStyle := lipgloss.NewStyle().Foreground(styles.CText)
		urlStyle := lipgloss.NewStyle().Foreground(styles.CMuted)

		if i == selectedIdx {
			nameStyle = nameStyle.Background(styles.CPanel).Foreground(styles.CAccent2).Bold(true)
			urlStyle = urlStyle.Background(styles.CPanel)
			marker = lipgloss.NewStyle().Foreground(styles.CAccent2).Render("▶ ")
		}

		lines = append(lines, marker+nameStyle.Render(p.Name))
		lines = append(lines, "  "+urlStyle.Render(p.URL))
		lines = append(lines, "")
	}

	return strings.Join(lines, "\n")
}
