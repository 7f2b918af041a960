package export

import (
	"fmt"
	"strings"

	"github.com/san-kum/responsiv/internal/metrics"
)

const (
	strokeHealthy = "#22c55e"
	strokeFailing = "#ef4444"
)

// SeriesToSVG draws the report's values as a line chart on the fixed
// metrics range, so charts from different runs line up.
func SeriesToSVG(r Report, width, height int) string {
	stroke := strokeFailing
	if r.Headline.Healthy {
		stroke = strokeHealthy
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf(`<?xml version="1.0" encoding="UTF-8"?>
<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d" viewBox="0 0 %d %d">
<rect width="100%%" height="100%%" fill="#0a0a0a"/>
<text x="8" y="16" fill="#888888" font-family="monospace" font-size="12">%s</text>
`, width, height, width, height, r.Quality))

	if len(r.Values) < 2 {
		sb.WriteString("</svg>")
		return sb.String()
	}

	span := metrics.MaxValue - metrics.MinValue
	step := float64(width) / float64(len(r.Values)-1)
	sb.WriteString(fmt.Sprintf(`<path fill="none" stroke="%s" stroke-width="1.5" d="M`, stroke))
	for i, v := range r.Values {
		x := float64(i) * step
		y := float64(height) - (v-metrics.MinValue)/span*float64(height)
		if i == 0 {
			sb.WriteString(fmt.Sprintf("%.1f,%.1f", x, y))
		} else {
			sb.WriteString(fmt.Sprintf(" L%.1f,%.1f", x, y))
		}
	}
	sb.WriteString(`"/>
</svg>`)
	return sb.String()
}
