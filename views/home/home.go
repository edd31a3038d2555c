package home

import (
	"fmt"
	"strings"

	"jpyc-wallet-tui/helpers"
	"jpyc-wallet-tui/history"
	"jpyc-wallet-tui/styles"
	"jpyc-wallet-tui/wallet"

	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
)

// TempSelection stores the quick action selection
var TempSelection string

// CreateForm creates the quick action menu
func CreateForm() *huh.Form {
	TempSelection = ""

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Options(
					huh.NewOption("Send", "send"),
					huh.NewOption("Receive", "receive"),
					huh.NewOption("History", "history"),
					huh.NewOption("Contacts", "contacts"),
				).
				Title("Quick Actions").
				Value(&TempSelection),
		),
	).WithTheme(huh.ThemeCatppuccin())

	form.Init()
	return form
}

// BalanceCard renders the total balance box
func BalanceCard(st *wallet.State, width int) string {
	label := styles.Muted("Total Balance")
	amount := lipgloss.NewStyle().
		Foreground(styles.CText).
		Bold(true).
		Render(helpers.FormatJPYC(st.Balance))
	unit := lipgloss.NewStyle().Foreground(styles.CAccent2).Render(" " + wallet.Currency)

	var badge string
	if st.IsDemo() {
		badge = lipgloss.NewStyle().Foreground(styles.CWarn).Render("DEMO MODE")
	} else {
		network := wallet.NetworkName(st.ChainID)
		badge = lipgloss.NewStyle().Foreground(styles.CAccent).Render("● " + network)
	}

	body := strings.Join([]string{label, amount + unit, "", badge}, "\n")
	return lipgloss.NewStyle().
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(styles.CBorder).
		Padding(1, 3).
		Width(helpers.Max(24, width)).
		Render(body)
}

// RecentList renders history records as a compact list
func RecentList(recs []history.Record, selected int) string {
	var lines []string
	for i, r := range recs {
		amountStyle := lipgloss.NewStyle().Foreground(styles.CAccent).Bold(true)
		if r.Direction == history.Send {
			amountStyle = amountStyle.Foreground(styles.CSend)
		}
		marker := "  "
		labelStyle := lipgloss.NewStyle().Foreground(styles.CText)
		if i == selected {
			marker = lipgloss.NewStyle().Foreground(styles.CAccent2).Render("▶ ")
			labelStyle = labelStyle.Foreground(styles.CAccent2).Bold(true)
		}
		left := marker + labelStyle.Render(fmt.Sprintf("%-9s", r.Label())) + " " + styles.Muted(r.Date)
		right := amountStyle.Render(r.Signed())
		lines = append(lines, left+"  "+right, "    "+styles.Muted(r.Peer()))
	}
	if len(lines) == 0 {
		return styles.Muted("No transactions yet.")
	}
	return strings.Join(lines, "\n")
}

// Render renders the home view
func Render(st *wallet.State, form *huh.Form, recent []history.Record, width int) string {
	card := BalanceCard(st, helpers.Min(width, 48))

	menu := "Loading menu..."
	if form != nil {
		menu = form.View()
	}

	recentTitle := styles.TitleStyle.Render("Recent Activity")
	left := lipgloss.JoinVertical(lipgloss.Left, card, "", menu)
	right := lipgloss.JoinVertical(lipgloss.Left, recentTitle, "", RecentList(recent, -1))

	if width < 90 {
		return lipgloss.JoinVertical(lipgloss.Left, left, "", right)
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, left, "    ", right)
}

// Nav returns the navigation bar for home view
func Nav(width int) string {
	left := strings.Join([]string{
		styles.Key("↑/↓") + " select",
		styles.Key("Enter") + " go",
		styles.Key("p") + " profile",
		styles.Key("1-4") + " tabs",
		styles.Key("l") + " logger",
		styles.Key("q") + " quit",
	}, "   ")

	return styles.NavStyle.Width(width).Render(left)
}
