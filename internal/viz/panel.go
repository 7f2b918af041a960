package viz

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/guptarohit/asciigraph"

	"github.com/san-kum/responsiv/internal/metrics"
	"github.com/san-kum/responsiv/internal/sim"
)

const panelWidth = 38

// RenderAnalytics draws the live metrics sidebar for the selected quality.
func RenderAnalytics(q sim.Quality, series []float64) string {
	h := metrics.HeadlineFor(q)
	dot := StatusBad.Render("●")
	color := asciigraph.Red
	if h.Healthy {
		dot = StatusGood.Render("●")
		color = asciigraph.Green
	}

	var s strings.Builder
	title := MetricLabel.Render("◆ LIVE METRICS")
	s.WriteString(title + strings.Repeat(" ", panelWidth-4-lipgloss.Width(title)-1) + dot + "\n\n")

	conv := metricCard("Conversion", h.Conversion, h.Healthy, h.Healthy)
	bounce := metricCard("Bounce Rate", h.BounceRate, !h.Healthy, h.Healthy)
	s.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, conv, " ", bounce) + "\n")

	if len(series) > 1 {
		chart := asciigraph.Plot(series,
			asciigraph.Height(6),
			asciigraph.Width(panelWidth-12),
			asciigraph.LowerBound(metrics.MinValue),
			asciigraph.UpperBound(metrics.MaxValue),
			asciigraph.Precision(0),
			asciigraph.SeriesColors(color),
		)
		s.WriteString(chart + "\n")
	}

	s.WriteString(MetricLabel.Render(strings.Repeat("─", panelWidth-4)) + "\n")
	rev := StatusBad.Render(h.Revenue)
	if h.Healthy {
		rev = StatusGood.Render(h.Revenue)
	}
	label := MetricLabel.Render("Est. Monthly Revenue")
	gap := panelWidth - 4 - lipgloss.Width(label) - lipgloss.Width(rev)
	s.WriteString(label + strings.Repeat(" ", maxInt(1, gap)) + rev)

	return GlassPanel.Width(panelWidth - 2).Render(s.String())
}

// metricCard shows a value with a trend arrow; good decides its color.
func metricCard(label, value string, up, good bool) string {
	arrow := "↘"
	if up {
		arrow = "↗"
	}
	style := StatusBad
	if good {
		style = StatusGood
	}
	body := MetricLabel.Render(label) + "\n" + MetricValue.Render(pad(value, 7)) + " " + style.Render(arrow)
	return lipgloss.NewStyle().
		Border(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("#333344")).
		Width(14).
		Render(body)
}
