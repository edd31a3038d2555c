package log

import (
	"fmt"

	"jpyc-wallet-tui/helpers"
	"jpyc-wallet-tui/styles"

	"github.com/charmbracelet/bubbles/viewport"
	"github.com/charmbracelet/lipgloss"
)

// PanelHeight is the number of log lines shown for a terminal of height h
func PanelHeight(h int) int {
	// header, nav and the panel's own border and title
	available := helpers.Max(5, h-10)
	return helpers.Min(available, helpers.Min(h/3, 15))
}

// Render renders the session log panel
func Render(width, height int, logReady bool, logSpinnerView string, vp viewport.Model) string {
	title := styles.TitleStyle.Render("Session Log")

	vp.Height = PanelHeight(height)

	border := lipgloss.NewStyle().
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(styles.CBorder).
		Padding(0, 1).
		Width(helpers.Max(0, width-2)).
		Height(vp.Height + 2)

	if !logReady {
		return border.Render(title + "\n\n" + "initializing...\n" + logSpinnerView)
	}

	if vp.TotalLineCount() > vp.Height {
		title += styles.Muted(fmt.Sprintf(" [%d%%]", int(vp.ScrollPercent()*100)))
	}

	return border.Render(title + "\n\n" + vp.View())
}
