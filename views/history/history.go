package history

import (
	"strings"

	"jpyc-wallet-tui/styles"
	"jpyc-wallet-tui/views/home"

	txhistory "jpyc-wallet-tui/history"
)

// Render renders the full history list with an optional filter line
func Render(recs []txhistory.Record, selected int, filterView string, filtering bool) string {
	lines := []string{styles.TitleStyle.Render("History"), ""}
	if filtering || filterView != "" {
		lines = append(lines, filterView, "")
	}
	lines = append(lines, home.RecentList(recs, selected))
	return strings.Join(lines, "\n")
}

// Nav returns the navigation bar for history view
func Nav(width int, filtering bool) string {
	var keys []string
	if filtering {
		keys = []string{
			styles.Key("Enter") + " apply",
			styles.Key("Esc") + " clear",
		}
	} else {
		keys = []string{
			styles.Key("↑/↓") + " select",
			styles.Key("/") + " filter",
			styles.Key("Esc") + " home",
			styles.Key("l") + " logger",
		}
	}
	return styles.NavStyle.Width(width).Render(strings.Join(keys, "   "))
}
