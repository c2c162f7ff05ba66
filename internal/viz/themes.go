package viz

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/san-kum/orrery/internal/orrery"
)

// Theme colors the viewer chrome. Space is the scene background it pairs
// with.
type Theme struct {
	Name      string
	Primary   lipgloss.Color
	Secondary lipgloss.Color
	Muted     lipgloss.Color
	Space     string
}

var (
	ThemeDeepSpace = Theme{
		Name:      "deep-space",
		Primary:   lipgloss.Color("#00ffff"),
		Secondary: lipgloss.Color("#ff00ff"),
		Muted:     lipgloss.Color("#666688"),
		Space:     "#000000",
	}

	ThemeNebula = Theme{
		Name:      "nebula",
		Primary:   lipgloss.Color("#ff9ff3"),
		Secondary: lipgloss.Color("#feca57"),
		Muted:     lipgloss.Color("#8b6b8c"),
		Space:     "#1a0a24",
	}

	ThemeOcean = Theme{
		Name:      "ocean",
		Primary:   lipgloss.Color("#00a8cc"),
		Secondary: lipgloss.Color("#ffd700"),
		Muted:     lipgloss.Color("#4488aa"),
		Space:     "#001a33",
	}

	ThemeMinimal = Theme{
		Name:      "minimal",
		Primary:   lipgloss.Color("#ffffff"),
		Secondary: lipgloss.Color("#0088ff"),
		Muted:     lipgloss.Color("#888888"),
		Space:     "#101010",
	}

	Themes = []Theme{
		ThemeDeepSpace,
		ThemeNebula,
		ThemeOcean,
		ThemeMinimal,
	}
)

// GetTheme returns a theme by name, or the first theme if none matches.
func GetTheme(name string) Theme {
	for _, t := range Themes {
		if t.Name == name {
			return t
		}
	}
	return Themes[0]
}

// NextTheme returns the theme after current, wrapping around.
func NextTheme(current string) Theme {
	for i, t := range Themes {
		if t.Name == current {
			return Themes[(i+1)%len(Themes)]
		}
	}
	return Themes[0]
}

func ThemeNames() []string {
	names := make([]string, len(Themes))
	for i, t := range Themes {
		names[i] = t.Name
	}
	return names
}

// SceneBackground converts Space to an opaque linear RGBA.
func (t Theme) SceneBackground() orrery.RGBA {
	r, g, b := parseHex(t.Space).LinearRgb()
	return orrery.RGBA{R: r, G: g, B: b, A: 1}
}
