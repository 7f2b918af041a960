package viz

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Chrome styles shared by the panels around the device frame.
var (
	GlassPanel = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#444466")).
			Padding(0, 1)

	BrandMark = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#ffffff")).
			Background(lipgloss.Color("#7c3aed")).
			Padding(0, 1)

	Subtle = lipgloss.NewStyle().
		Foreground(lipgloss.Color("#666688"))

	StatusGood = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#10b981"))

	StatusBad = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#ef4444"))

	StatusWarn = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#f97316"))

	MetricValue = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#ffffff")).
			Bold(true)

	MetricLabel = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#888899"))

	KeyHint = lipgloss.NewStyle().
		Foreground(lipgloss.Color("#666688")).
		Italic(true)

	ActiveChoice = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#ffffff")).
			Background(lipgloss.Color("#3f3f5f"))

	IdleChoice = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#888899"))

	FieldError = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#ef4444"))

	ToastOK = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("#10b981")).
		Padding(0, 1)

	ToastFail = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#ef4444")).
			Padding(0, 1)

	DeviceShell = lipgloss.NewStyle().
			BorderForeground(lipgloss.Color("#1e293b"))

	Banner = lipgloss.NewStyle().
		Foreground(lipgloss.Color("#ffffff")).
		Background(lipgloss.Color("#f59e0b")).
		Padding(0, 1)
)

// GradientText colors each rune of text along a linear gradient.
func GradientText(text string, startColor, endColor lipgloss.Color) string {
	runes := []rune(text)
	n := len(runes)
	if n == 0 {
		return ""
	}

	sr, sg, sb := parseHex(string(startColor))
	er, eg, eb := parseHex(string(endColor))

	var result strings.Builder
	for i, c := range runes {
		t := 0.0
		if n > 1 {
			t = float64(i) / float64(n-1)
		}
		r := int(float64(sr) + t*float64(er-sr))
		g := int(float64(sg) + t*float64(eg-sg))
		b := int(float64(sb) + t*float64(eb-sb))

		style := lipgloss.NewStyle().Foreground(lipgloss.Color(hexColor(r, g, b)))
		result.WriteString(style.Render(string(c)))
	}
	return result.String()
}

func parseHex(hex string) (r, g, b int) {
	if len(hex) != 7 || hex[0] != '#' {
		return 255, 255, 255
	}
	return parseHexByte(hex[1:3]), parseHexByte(hex[3:5]), parseHexByte(hex[5:7])
}

func parseHexByte(s string) int {
	var val int
	for _, c := range s {
		val *= 16
		switch {
		case c >= '0' && c <= '9':
			val += int(c - '0')
		case c >= 'a' && c <= 'f':
			val += int(c - 'a' + 10)
		case c >= 'A' && c <= 'F':
			val += int(c - 'A' + 10)
		}
	}
	return val
}

func hexColor(r, g, b int) string {
	return "#" + hexByte(r) + hexByte(g) + hexByte(b)
}

func hexByte(v int) string {
	if v < 0 {
		v = 0
	}
	if v > 255 {
		v = 255
	}
	const hex = "0123456789abcdef"
	return string(hex[v/16]) + string(hex[v%16])
}
