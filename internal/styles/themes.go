package styles

import "github.com/charmbracelet/lipgloss"

// Theme names.
const (
	Dark  = "dark"
	Light = "light"
)

// ColorPalette holds all theme colors
type ColorPalette struct {
	Primary string
	Accent  string

	Success string
	Error   string

	TextPrimary   string
	TextSecondary string
	TextMuted     string

	BgPrimary   string
	BgSecondary string

	BorderNormal string
	BorderActive string

	ToastSuccessText string
	ToastErrorText   string
}

// Theme represents a complete theme configuration
type Theme struct {
	Name        string
	DisplayName string
	Colors      ColorPalette
}

var (
	DarkTheme = Theme{
		Name:        Dark,
		DisplayName: "Dark",
		Colors: ColorPalette{
			Primary: "#7C3AED", // Purple
			Accent:  "#F59E0B", // Amber

			Success: "#10B981",
			Error:   "#EF4444",

			TextPrimary:   "#F9FAFB",
			TextSecondary: "#9CA3AF",
			TextMuted:     "#6B7280",

			BgPrimary:   "#111827",
			BgSecondary: "#1F2937",

			BorderNormal: "#374151",
			BorderActive: "#7C3AED",

			ToastSuccessText: "#000000",
			ToastErrorText:   "#FFFFFF",
		},
	}

	LightTheme = Theme{
		Name:        Light,
		DisplayName: "Light",
		Colors: ColorPalette{
			Primary: "#6D28D9",
			Accent:  "#B45309",

			Success: "#047857",
			Error:   "#B91C1C",

			TextPrimary:   "#111827",
			TextSecondary: "#374151",
			TextMuted:     "#6B7280",

			BgPrimary:   "#F9FAFB",
			BgSecondary: "#E5E7EB",

			BorderNormal: "#D1D5DB",
			BorderActive: "#6D28D9",

			ToastSuccessText: "#FFFFFF",
			ToastErrorText:   "#FFFFFF",
		},
	}
)

// GetTheme returns a theme by name, or the dark theme if not found
func GetTheme(name string) Theme {
	if name == Light {
		return LightTheme
	}
	return DarkTheme
}

// Apply activates the named theme, updating all style variables.
func Apply(name string) {
	ApplyThemeColors(GetTheme(name))
}

// ApplyThemeColors updates the color variables from theme and rebuilds styles.
func ApplyThemeColors(theme Theme) {
	c := theme.Colors

	Primary = lipgloss.Color(c.Primary)
	Accent = lipgloss.Color(c.Accent)

	Success = lipgloss.Color(c.Success)
	Error = lipgloss.Color(c.Error)

	TextPrimary = lipgloss.Color(c.TextPrimary)
	TextSecondary = lipgloss.Color(c.TextSecondary)
	TextMuted = lipgloss.Color(c.TextMuted)

	BgPrimary = lipgloss.Color(c.BgPrimary)
	BgSecondary = lipgloss.Color(c.BgSecondary)

	BorderNormal = lipgloss.Color(c.BorderNormal)
	BorderActive = lipgloss.Color(c.BorderActive)

	ToastSuccessTextColor = lipgloss.Color(c.ToastSuccessText)
	ToastErrorTextColor = lipgloss.Color(c.ToastErrorText)

	rebuildStyles()
}
