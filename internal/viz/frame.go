package viz

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/san-kum/responsiv/internal/layout"
	"github.com/san-kum/responsiv/internal/sim"
)

// Cursor is the simulated visitor's pointer, in frame-inner coordinates.
type Cursor struct {
	X, Y    int
	Visible bool
}

// FrameView is everything needed to draw one device frame.
type FrameView struct {
	Variant  layout.Variant
	Spec     layout.FrameSpec
	Width    int // available columns
	Height   int // available rows
	Scroll   int
	Cursor   Cursor
	Overflow bool // set by Render when the page is wider than the frame
}

// InnerSize returns the size of the frame's screen in terminal cells.
func InnerSize(spec layout.FrameSpec, availW, availH int) (int, int) {
	w, h := availW-2, availH-2
	if spec.Chrome || spec.Notch {
		h--
	}
	if spec.Notch {
		h--
	}
	if !spec.Fill() {
		fw := int(float64(spec.Width) * spec.Scale / pxPerCol)
		fh := int(float64(spec.Height) * spec.Scale / (2 * pxPerCol))
		w, h = minInt(w, fw), minInt(h, fh)
	}
	return maxInt(w, 8), maxInt(h, 4)
}

// SiteHeight is the number of rows the storefront needs for this view.
func SiteHeight(v layout.Variant, spec layout.FrameSpec, availW, availH int) int {
	iw, _ := InnerSize(spec, availW, availH)
	return len(renderSite(v, PageWidth(v, iw)))
}

// Render draws the frame and returns it centered in Width x Height.
func (f *FrameView) Render() string {
	iw, ih := InnerSize(f.Spec, f.Width, f.Height)
	pw := PageWidth(f.Variant, iw)
	rows := renderSite(f.Variant, pw)

	f.Overflow = pw > iw
	siteRows := ih
	if f.Overflow {
		siteRows--
	}
	if f.Scroll > len(rows)-siteRows {
		f.Scroll = len(rows) - siteRows
	}
	if f.Scroll < 0 {
		f.Scroll = 0
	}

	x0 := 0
	if pw < iw {
		x0 = (iw - pw) / 2
	}

	canvas := NewCanvas(iw, ih)
	kinds := make([]rowKind, ih)
	for y := 0; y < siteRows; y++ {
		i := f.Scroll + y
		if i >= len(rows) {
			break
		}
		canvas.Text(x0, y, rows[i].text)
		kinds[y] = rows[i].kind
	}
	if f.Overflow {
		canvas.Text(0, ih-1, scrollbar(iw, pw))
	}
	if f.Cursor.Visible {
		canvas.Set(f.Cursor.X, f.Cursor.Y, '↖')
	}

	theme := ThemeFor(f.Variant.Era)
	lines := make([]string, 0, ih+2)
	switch {
	case f.Spec.Chrome:
		lines = append(lines, Subtle.Render(pad(" ● ● ●  ⟨ "+f.Spec.URL+" ⟩", iw)))
	case f.Spec.Notch:
		lines = append(lines, Subtle.Render(center("◖ ●  ━━━━ ◗", iw)))
	}
	for y := 0; y < ih; y++ {
		text := canvas.Row(y)
		if f.Overflow && y == ih-1 {
			lines = append(lines, Subtle.Render(text))
			continue
		}
		lines = append(lines, styleRow(kinds[y], text, theme, f.Variant))
	}
	if f.Spec.Notch {
		lines = append(lines, Subtle.Render(center("━━━━━━", iw)))
	}

	border := lipgloss.NormalBorder()
	if f.Spec.Notch {
		border = lipgloss.RoundedBorder()
	}
	shell := DeviceShell.Border(border).Render(strings.Join(lines, "\n"))
	return lipgloss.Place(f.Width, f.Height, lipgloss.Center, lipgloss.Top, shell)
}

func scrollbar(iw, pw int) string {
	track := iw - 2
	thumb := maxInt(1, track*iw/pw)
	return "◀" + strings.Repeat("▬", thumb) + strings.Repeat("─", maxInt(0, track-thumb)) + "▶"
}

func styleRow(k rowKind, text string, t Theme, v layout.Variant) string {
	s := lipgloss.NewStyle()
	switch k {
	case kindAdmin:
		s = s.Foreground(lipgloss.Color("#eeeeee")).Background(lipgloss.Color("#222222"))
	case kindNav:
		s = s.Foreground(t.Secondary).Bold(true)
	case kindBadge:
		s = s.Foreground(t.Primary).Bold(true)
	case kindGlow:
		s = s.Foreground(t.Primary).Faint(true)
	case kindHeadline:
		if v.Era == sim.Era2026 {
			return GradientText(text, t.Primary, t.Secondary)
		}
		s = s.Foreground(t.Text).Bold(true)
		if v.Era == sim.Era2010 {
			s = s.Italic(true)
		}
	case kindBody:
		s = s.Foreground(t.Muted)
		if v.Era == sim.Era2010 {
			s = s.Italic(true)
		}
	case kindTiny:
		s = s.Foreground(t.Muted).Faint(true)
	case kindButton:
		s = s.Foreground(t.Primary).Bold(true)
	case kindImage:
		s = s.Foreground(t.Muted)
	case kindHeading:
		s = s.Foreground(t.Secondary).Bold(true)
	case kindCard:
		s = s.Foreground(t.Text)
	case kindCardGray:
		s = s.Foreground(ThemeBroken.Text)
	case kindFooter:
		if v.Era == sim.Era2010 {
			s = s.Foreground(lipgloss.Color("#ffffff")).Background(lipgloss.Color("#222222"))
		} else {
			s = s.Foreground(t.Muted)
		}
	}
	return s.Render(text)
}
