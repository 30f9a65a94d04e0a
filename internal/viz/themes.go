package viz

import "github.com/charmbracelet/lipgloss"

// Theme colours the stats panel and the glyph gradient. Sparse cells take
// Dim, dense cores take Bright.
type Theme struct {
	Name   string
	Title  lipgloss.Color
	Border lipgloss.Color
	Text   lipgloss.Color
	Muted  lipgloss.Color
	Dim    lipgloss.Color
	Bright lipgloss.Color
	Warn   lipgloss.Color
}

var (
	ThemeNebula = Theme{
		Name:   "nebula",
		Title:  lipgloss.Color("#ff00ff"),
		Border: lipgloss.Color("#444466"),
		Text:   lipgloss.Color("#ffffff"),
		Muted:  lipgloss.Color("#666666"),
		Dim:    lipgloss.Color("#3a2a6a"),
		Bright: lipgloss.Color("#ffe8ff"),
		Warn:   lipgloss.Color("#ff8800"),
	}

	ThemeRetro = Theme{
		Name:   "retro",
		Title:  lipgloss.Color("#00ff00"),
		Border: lipgloss.Color("#005500"),
		Text:   lipgloss.Color("#00ff00"),
		Muted:  lipgloss.Color("#005500"),
		Dim:    lipgloss.Color("#004400"),
		Bright: lipgloss.Color("#ccffcc"),
		Warn:   lipgloss.Color("#ffff00"),
	}

	ThemeMinimal = Theme{
		Name:   "minimal",
		Title:  lipgloss.Color("#ffffff"),
		Border: lipgloss.Color("#888888"),
		Text:   lipgloss.Color("#ffffff"),
		Muted:  lipgloss.Color("#888888"),
		Dim:    lipgloss.Color("#555555"),
		Bright: lipgloss.Color("#ffffff"),
		Warn:   lipgloss.Color("#ffaa00"),
	}

	ThemeOcean = Theme{
		Name:   "ocean",
		Title:  lipgloss.Color("#00a8cc"),
		Border: lipgloss.Color("#4488aa"),
		Text:   lipgloss.Color("#e0f0ff"),
		Muted:  lipgloss.Color("#4488aa"),
		Dim:    lipgloss.Color("#0b3a66"),
		Bright: lipgloss.Color("#ffd700"),
		Warn:   lipgloss.Color("#ffcc00"),
	}

	ThemeSunset = Theme{
		Name:   "sunset",
		Title:  lipgloss.Color("#ff6b6b"),
		Border: lipgloss.Color("#8b6b8c"),
		Text:   lipgloss.Color("#fff5f5"),
		Muted:  lipgloss.Color("#8b6b8c"),
		Dim:    lipgloss.Color("#5a2d4e"),
		Bright: lipgloss.Color("#feca57"),
		Warn:   lipgloss.Color("#ffc048"),
	}

	Themes = []Theme{
		ThemeNebula,
		ThemeRetro,
		ThemeMinimal,
		ThemeOcean,
		ThemeSunset,
	}
)

// GetTheme returns a theme by name, falling back to nebula.
func GetTheme(name string) Theme {
	for _, t := range Themes {
		if t.Name == name {
			return t
		}
	}
	return ThemeNebula
}

func ThemeNames() []string {
	names := make([]string, len(Themes))
	for i, t := range Themes {
		names[i] = t.Name
	}
	return names
}

// NextTheme returns the theme after name in Themes, wrapping around.
func NextTheme(name string) Theme {
	for i, t := range Themes {
		if t.Name == name {
			return Themes[(i+1)%len(Themes)]
		}
	}
	return Themes[0]
}
