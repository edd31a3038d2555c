package contacts

import (
	"strings"

	"jpyc-wallet-tui/styles"

	addressbook "jpyc-wallet-tui/contacts"

	"github.com/charmbracelet/lipgloss"
)

// Render renders the address book
func Render(cs []addressbook.Contact, selected int) string {
	lines := []string{styles.TitleStyle.Render("Contacts"), ""}
	for i, c := range cs {
		avatar := lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FFFFFF")).
			Background(styles.CBorder).
			Bold(true).
			Padding(0, 1).
			Render(c.Initial)

		name := lipgloss.NewStyle().Foreground(styles.CText).Bold(true).Render(c.Name)
		send := styles.Button("Send", i == selected)
		marker := "  "
		if i == selected {
			marker = lipgloss.NewStyle().Foreground(styles.CAccent2).Render("▶ ")
		}

		row := lipgloss.JoinHorizontal(lipgloss.Center,
			marker, avatar, "  ",
			lipgloss.JoinVertical(lipgloss.Left, name, styles.Muted(c.Address)),
			"   ", send)
		lines = append(lines, row, "")
	}
	return strings.Join(lines, "\n")
}

// Nav returns the navigation bar for contacts view
func Nav(width int) string {
	left := strings.Join([]string{
		styles.Key("↑/↓") + " select",
		styles.Key("Enter") + " send",
		styles.Key("Esc") + " home",
		styles.Key("l") + " logger",
	}, "   ")
	return styles.NavStyle.Width(width).Render(left)
}
