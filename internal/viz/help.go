package viz

import "github.com/charmbracelet/glamour"

const helpMarkdown = `# Responsiv.ai demo

Preview **LUXECART** the way visitors see it.

| Key | Action |
|-----|--------|
| e | cycle era (2010 / 2020 / 2026) |
| m t d | mobile / tablet / desktop frame |
| 1 2 3 | responsiveness none / bad / perfect |
| u | simulate a real visitor |
| a | show or hide live metrics |
| c | cinematic mode |
| l | request a free audit |
| ↑ ↓ | scroll the page |
| r | reset the demo |
| ? | close this help |
| q | quit |
`

// renderHelp renders the help overlay. Falls back to the raw markdown when
// the renderer cannot be built.
func renderHelp(width int) string {
	if width < 20 {
		width = 20
	}
	r, err := glamour.NewTermRenderer(
		glamour.WithStandardStyle("dark"),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		return helpMarkdown
	}
	out, err := r.Render(helpMarkdown)
	if err != nil {
		return helpMarkdown
	}
	return out
}
