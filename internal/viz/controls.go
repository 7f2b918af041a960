package viz

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/san-kum/responsiv/internal/sim"
)

func choice(label string, active bool) string {
	if active {
		return ActiveChoice.Render(" " + label + " ")
	}
	return IdleChoice.Render(" " + label + " ")
}

// RenderControls draws the control panel with the current selection marked.
func RenderControls(s sim.State) string {
	var eras, devices, modes []string
	for _, e := range sim.Eras {
		eras = append(eras, choice(e.String(), s.Era == e))
	}
	for i, d := range sim.Devices {
		devices = append(devices, choice([]string{"▯ mobile", "▭ tablet", "▣ desktop"}[i], s.Device == d))
	}
	for i, q := range sim.Qualities {
		modes = append(modes, choice([]string{"✕ none", "▤ bad", "✓ perfect"}[i], s.Quality == q))
	}

	sep := Subtle.Render(" │ ")
	toggles := choice("⚡ user", s.SimulateUser) + choice("▥ analytics", s.ShowAnalytics) + choice("◉ cinema", s.CinematicMode)
	bar := MetricLabel.Render("ERA ") + strings.Join(eras, "") + sep +
		MetricLabel.Render("DEVICE ") + strings.Join(devices, "") + sep +
		MetricLabel.Render("RESP. ") + strings.Join(modes, "")

	hints := KeyHint.Render("e:era  m/t/d:device  1/2/3:resp  u:user  a:analytics  c:cinema  l:audit  r:reset  ↑↓:scroll  ?:help  q:quit")
	return GlassPanel.Render(lipgloss.JoinVertical(lipgloss.Left, bar, toggles, hints))
}

// RenderHeader draws the product bar with the selected quality as a pill.
func RenderHeader(s sim.State, width int) string {
	left := BrandMark.Render("R") + " " + MetricValue.Render("Responsiv") + StatusWarn.Render(".ai") +
		"  " + Subtle.Render("Interactive Demo Environment")

	dot := StatusWarn.Render("●")
	if s.Quality == sim.QualityPerfect {
		dot = StatusGood.Render("●")
	}
	pill := dot + " " + MetricLabel.Render(strings.ToUpper(strings.Replace(s.Quality.String(), "-", " ", 1)))

	gap := width - lipgloss.Width(left) - lipgloss.Width(pill) - 2
	return " " + left + strings.Repeat(" ", maxInt(1, gap)) + pill
}

// RenderCinematic is the full-screen placeholder shown in cinematic mode.
func RenderCinematic(width, height int) string {
	title := MetricValue.Render("T H E   F U T U R E   I S")
	fluid := GradientText("F L U I D", lipgloss.Color("#7c3aed"), lipgloss.Color("#06b6d4"))
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center,
		lipgloss.JoinVertical(lipgloss.Center, title, "", fluid))
}
