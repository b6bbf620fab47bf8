package styles

import "github.com/charmbracelet/lipgloss"

// Color palette - dark theme until Apply is called
var (
	Primary = lipgloss.Color("#7C3AED")
	Accent  = lipgloss.Color("#F59E0B")

	Success = lipgloss.Color("#10B981")
	Error   = lipgloss.Color("#EF4444")

	TextPrimary   = lipgloss.Color("#F9FAFB")
	TextSecondary = lipgloss.Color("#9CA3AF")
	TextMuted     = lipgloss.Color("#6B7280")

	BgPrimary   = lipgloss.Color("#111827")
	BgSecondary = lipgloss.Color("#1F2937")

	BorderNormal = lipgloss.Color("#374151")
	BorderActive = lipgloss.Color("#7C3AED")

	ToastSuccessTextColor = lipgloss.Color("#000000")
	ToastErrorTextColor   = lipgloss.Color("#FFFFFF")
)

// Styles rebuilt by ApplyThemeColors.
var (
	// Card is a note card; CardSelected is the card under the cursor.
	Card         lipgloss.Style
	CardSelected lipgloss.Style

	// Input is an unfocused form field; InputFocused has focus.
	Input        lipgloss.Style
	InputFocused lipgloss.Style

	Title  lipgloss.Style
	Body   lipgloss.Style
	Muted  lipgloss.Style
	Header lipgloss.Style

	// Placeholder is the empty-state text.
	Placeholder lipgloss.Style

	ToastSuccess lipgloss.Style
	ToastError   lipgloss.Style

	KeyHint lipgloss.Style
	Footer  lipgloss.Style

	ModalBox      lipgloss.Style
	Button        lipgloss.Style
	ButtonFocused lipgloss.Style
)

func init() {
	rebuildStyles()
}

// rebuildStyles recreates all lipgloss styles with current colors
func rebuildStyles() {
	Card = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(BorderNormal).
		Padding(0, 1)

	CardSelected = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(BorderActive).
		Padding(0, 1)

	Input = lipgloss.NewStyle().
		Border(lipgloss.NormalBorder()).
		BorderForeground(BorderNormal).
		Padding(0, 1)

	InputFocused = lipgloss.NewStyle().
		Border(lipgloss.NormalBorder()).
		BorderForeground(BorderActive).
		Padding(0, 1)

	Title = lipgloss.NewStyle().
		Bold(true).
		Foreground(TextPrimary)

	Body = lipgloss.NewStyle().
		Foreground(TextSecondary)

	Muted = lipgloss.NewStyle().
		Foreground(TextMuted)

	Header = lipgloss.NewStyle().
		Bold(true).
		Foreground(Primary)

	Placeholder = lipgloss.NewStyle().
		Foreground(TextMuted).
		Italic(true).
		Padding(1, 2)

	ToastSuccess = lipgloss.NewStyle().
		Foreground(ToastSuccessTextColor).
		Background(Success).
		Padding(0, 1)

	ToastError = lipgloss.NewStyle().
		Foreground(ToastErrorTextColor).
		Background(Error).
		Padding(0, 1)

	KeyHint = lipgloss.NewStyle().
		Foreground(Accent)

	Footer = lipgloss.NewStyle().
		Foreground(TextMuted)

	ModalBox = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(Error).
		Padding(1, 2)

	Button = lipgloss.NewStyle().
		Foreground(TextPrimary).
		Background(BgSecondary).
		Padding(0, 1)

	ButtonFocused = lipgloss.NewStyle().
		Foreground(TextPrimary).
		Background(Primary).
		Bold(true).
		Padding(0, 1)
}
