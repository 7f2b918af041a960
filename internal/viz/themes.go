package viz

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/san-kum/responsiv/internal/sim"
)

// Theme defines the color scheme of one storefront era.
type Theme struct {
	Name       string
	Primary    lipgloss.Color
	Secondary  lipgloss.Color
	Accent     lipgloss.Color
	Background lipgloss.Color
	Text       lipgloss.Color
	Muted      lipgloss.Color
	Highlight  lipgloss.Color
	Border     lipgloss.Border
	CardBorder lipgloss.Border
}

var (
	// WordPress blue on grey, serif headlines, square everything.
	Theme2010 = Theme{
		Name:       "2010",
		Primary:    lipgloss.Color("#2563eb"),
		Secondary:  lipgloss.Color("#1e3a8a"),
		Accent:     lipgloss.Color("#fde047"),
		Background: lipgloss.Color("#f0f0f0"),
		Text:       lipgloss.Color("#333333"),
		Muted:      lipgloss.Color("#64748b"),
		Highlight:  lipgloss.Color("#fef9c3"),
		Border:     lipgloss.ThickBorder(),
		CardBorder: lipgloss.NormalBorder(),
	}

	// Flat slate, rounded-md.
	Theme2020 = Theme{
		Name:       "2020",
		Primary:    lipgloss.Color("#0f172a"),
		Secondary:  lipgloss.Color("#475569"),
		Accent:     lipgloss.Color("#ef4444"),
		Background: lipgloss.Color("#ffffff"),
		Text:       lipgloss.Color("#0f172a"),
		Muted:      lipgloss.Color("#94a3b8"),
		Highlight:  lipgloss.Color("#f8fafc"),
		Border:     lipgloss.NormalBorder(),
		CardBorder: lipgloss.NormalBorder(),
	}

	// Dark glass, purple-to-pink gradients, pill buttons.
	Theme2026 = Theme{
		Name:       "2026",
		Primary:    lipgloss.Color("#a855f7"),
		Secondary:  lipgloss.Color("#ec4899"),
		Accent:     lipgloss.Color("#ef4444"),
		Background: lipgloss.Color("#020617"),
		Text:       lipgloss.Color("#f8fafc"),
		Muted:      lipgloss.Color("#94a3b8"),
		Highlight:  lipgloss.Color("#1e1b4b"),
		Border:     lipgloss.RoundedBorder(),
		CardBorder: lipgloss.RoundedBorder(),
	}

	// Grayscale override for the collapsed mobile cards.
	ThemeBroken = Theme{
		Name:       "broken",
		Primary:    lipgloss.Color("#3b82f6"),
		Secondary:  lipgloss.Color("#9ca3af"),
		Accent:     lipgloss.Color("#9ca3af"),
		Background: lipgloss.Color("#e5e7eb"),
		Text:       lipgloss.Color("#6b7280"),
		Muted:      lipgloss.Color("#9ca3af"),
		Highlight:  lipgloss.Color("#e5e7eb"),
		Border:     lipgloss.DoubleBorder(),
		CardBorder: lipgloss.DoubleBorder(),
	}

	Themes = []Theme{Theme2010, Theme2020, Theme2026}
)

func ThemeFor(e sim.Era) Theme {
	switch e {
	case sim.Era2010:
		return Theme2010
	case sim.Era2020:
		return Theme2020
	}
	return Theme2026
}

// ThemeNames returns list of available theme names
func ThemeNames() []string {
	names := make([]string, len(Themes))
	for i, t := range Themes {
		names[i] = t.Name
	}
	return names
}
