package styles

import "github.com/charmbracelet/lipgloss"

// Theme colors
var (
	CBg      = lipgloss.Color("#0F172A") // slate-900
	CPanel   = lipgloss.Color("#1E293B") // slate-800
	CBorder  = lipgloss.Color("#3B82F6") // blue-500
	CMuted   = lipgloss.Color("#94A3B8")
	CText    = lipgloss.Color("#E2E8F0")
	CAccent  = lipgloss.Color("#10B981") // emerald
	CAccent2 = lipgloss.Color("#60A5FA") // light blue
	CWarn    = lipgloss.Color("#F59E0B") // amber
	CError   = lipgloss.Color("#EF4444")
	CSend    = lipgloss.Color("#F87171")
)

// Gradient endpoints for the brand title
const (
	FadeFrom = "#3B82F6"
	FadeTo   = "#10B981"
)

// Shared styles
var (
	AppStyle = lipgloss.NewStyle().
			Background(CBg).
			Foreground(CText)

	TitleStyle = lipgloss.NewStyle().
			Foreground(CAccent2).
			Bold(true)

	PanelStyle = lipgloss.NewStyle().
			Background(CPanel).
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(CBorder).
			Padding(1, 2)

	NavStyle = lipgloss.NewStyle().
			Background(CPanel).
			BorderStyle(lipgloss.NormalBorder()).
			BorderForeground(CBorder).
			Padding(0, 1)

	MutedStyle  = lipgloss.NewStyle().Foreground(CMuted)
	ErrorStyle  = lipgloss.NewStyle().Foreground(CError).Bold(true)
	NoticeStyle = lipgloss.NewStyle().Foreground(CWarn)

	HotkeyKeyStyle = lipgloss.NewStyle().
			Foreground(CAccent).
			Bold(true)

	ButtonStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FFFFFF")).
			Background(lipgloss.Color("#334155")).
			Padding(0, 3)

	ActiveButtonStyle = ButtonStyle.
				Background(CBorder).
				Underline(true)

	DialogStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(CBorder).
			Background(CPanel).
			Padding(1, 2)
)

// Key renders a key with accent styling
func Key(s string) string {
	return HotkeyKeyStyle.Render(s)
}

// Muted renders s in the secondary text color
func Muted(s string) string {
	return MutedStyle.Render(s)
}

// Button renders a button, highlighted when active
func Button(label string, active bool) string {
	if active {
		return ActiveButtonStyle.Render(label)
	}
	return ButtonStyle.Render(label)
}
