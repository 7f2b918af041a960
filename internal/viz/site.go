package viz

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/san-kum/responsiv/internal/layout"
	"github.com/san-kum/responsiv/internal/sim"
)

// pxPerCol converts CSS pixels to terminal columns.
const pxPerCol = 10

type rowKind int

const (
	kindPlain rowKind = iota
	kindAdmin
	kindNav
	kindBadge
	kindGlow
	kindHeadline
	kindBody
	kindTiny
	kindButton
	kindImage
	kindHeading
	kindCard
	kindCardGray
	kindFooter
)

// row is one line of the rendered storefront before styling.
type row struct {
	text string
	kind rowKind
}

const (
	brand       = "LUXECART"
	brandTag    = "PREMIUM WEB STORE"
	bodyCopy    = "Experience the perfect blend of minimalist design and maximum comfort. Our new collection is designed for the urban visionary."
	footerCopy  = "Redefining the digital shopping experience through innovation and design."
	productKind = "SNEAKERS"
	price       = "$189"
)

var (
	navLinks     = []string{"New Arrivals", "Collections", "Accessories", "Sale"}
	footerTitles = []string{"Shop", "About", "Support", "Legal"}
)

// PageWidth is the width in columns the storefront is laid out at inside a
// frame whose inner width is inner. Non-adaptive pages ignore the frame.
func PageWidth(v layout.Variant, inner int) int {
	if v.Fixed {
		return v.Container / pxPerCol
	}
	w := v.Container / pxPerCol
	if inner < w {
		w = inner
	}
	if w < 16 {
		w = 16
	}
	return w
}

// renderSite lays out the whole storefront for v at width w.
func renderSite(v layout.Variant, w int) []row {
	var rows []row
	add := func(k rowKind, lines ...string) {
		for _, l := range lines {
			rows = append(rows, row{text: pad(l, w), kind: k})
		}
	}
	blank := func() { add(kindPlain, "") }

	if v.AdminBar {
		add(kindAdmin, spread(" ■ My WordPress Site   12 Comments   + New", "Howdy, Admin ", w))
	}
	renderNav(v, w, add)
	blank()
	renderHero(v, w, add)
	blank()
	renderProducts(v, w, add)
	blank()
	renderFooter(v, w, add)
	return rows
}

func logo(v layout.Variant) string {
	if v.Era == sim.Era2010 {
		return "[L] " + brand
	}
	return "◼ " + brand
}

func cart(v layout.Variant) string {
	switch v.Era {
	case sim.Era2010:
		return "[ CART (2) ]"
	case sim.Era2020:
		return "[ Cart (2) ]"
	}
	return "( Cart (2) )"
}

func linkLabel(v layout.Variant, l string) string {
	if l != "Sale" {
		if v.Era == sim.Era2010 {
			return strings.ToUpper(l)
		}
		return l
	}
	if v.Era == sim.Era2010 {
		return "*SALE*"
	}
	return "Sale!"
}

func renderNav(v layout.Variant, w int, add func(rowKind, ...string)) {
	switch v.Nav {
	case layout.NavStacked:
		add(kindNav, center(logo(v), w))
		for _, l := range navLinks {
			add(kindNav, center(linkLabel(v, l), w))
		}
		add(kindNav, center(cart(v), w))
	case layout.NavHamburger:
		add(kindNav, spread(" "+logo(v), "≡  "+cart(v)+" ", w))
	case layout.NavHidden:
		add(kindNav, spread(" "+logo(v), cart(v)+" ", w))
	default:
		links := make([]string, len(navLinks))
		for i, l := range navLinks {
			links[i] = linkLabel(v, l)
		}
		left := " " + logo(v)
		mid := strings.Join(links, "  ")
		r := cart(v) + " "
		gap := w - runeLen(left) - runeLen(mid) - runeLen(r)
		if gap < 2 {
			// links wrap under the bar when there is no room
			add(kindNav, spread(left, r, w))
			add(kindNav, center(mid, w))
		} else {
			lg := gap / 2
			add(kindNav, pad(left+strings.Repeat(" ", lg)+mid+strings.Repeat(" ", gap-lg)+r, w))
		}
	}
	if v.Era == sim.Era2010 {
		add(kindNav, "  "+brandTag)
		add(kindNav, strings.Repeat("▀", w))
	}
}

func headline(v layout.Variant) []string {
	lines := []string{"Redefining", "Modern Luxury"}
	if v.OversizedHeadline {
		for i, l := range lines {
			lines[i] = strings.Join(strings.Split(strings.ToUpper(l), ""), " ")
		}
	}
	if v.Era == sim.Era2010 {
		for i, l := range lines {
			lines[i] = "┃ " + l
		}
	}
	return lines
}

func buttons(v layout.Variant) []string {
	var primary, secondary string
	switch v.Era {
	case sim.Era2010:
		primary = "[ SHOP NOW ]"
	case sim.Era2020:
		primary, secondary = "[ Shop Now ]", "[ Watch Film ]"
	default:
		primary, secondary = "( Shop Now )", "( Watch Film )"
	}
	if !v.SecondaryCTA {
		secondary = ""
	}
	return []string{primary, secondary}
}

func heroImage(v layout.Variant, w, h int) []string {
	fill := make([]string, h-2)
	for i := range fill {
		fill[i] = strings.Repeat("░", w-2)
	}
	if v.GlowBackdrop && len(fill) > 0 {
		fill[len(fill)/2] = center("✦", w-2)
	}
	b := ThemeFor(v.Era).Border
	return boxed(fill, w, edgesOf(b))
}

func renderHero(v layout.Variant, w int, add func(rowKind, ...string)) {
	if v.GlowBackdrop {
		add(kindGlow, right("░▒▓", w))
	}

	if v.Hero == layout.GridStacked {
		iw := w / 2
		for _, l := range heroImage(v, iw, 5) {
			add(kindImage, center(l, w))
		}
		add(kindPlain, "")
		for _, l := range headline(v) {
			add(kindHeadline, center(l, w))
		}
		add(kindPlain, "")
		add(kindTiny, wrap(bodyCopy, w)...)
		add(kindPlain, "")
		for _, b := range buttons(v) {
			if b != "" {
				add(kindButton, center(b, w))
			}
		}
		return
	}

	cols := v.HeroColumns()
	tw := w - 2
	if cols == 2 {
		tw = (w - 4) / 2
	}

	var text []string
	var kinds []rowKind
	push := func(k rowKind, ls ...string) {
		for _, l := range ls {
			text = append(text, " "+l)
			kinds = append(kinds, k)
		}
	}
	if v.Badge {
		push(kindBadge, "★ LIMITED EDITION")
	}
	push(kindHeadline, headline(v)...)
	push(kindPlain, "")
	body := wrap(bodyCopy, minInt(tw-1, 44))
	push(kindBody, body...)
	push(kindPlain, "")
	b := buttons(v)
	push(kindButton, strings.TrimSpace(b[0]+"  "+b[1]))

	if cols == 1 {
		for i, l := range text {
			add(kinds[i], l)
		}
		add(kindPlain, "")
		for _, l := range heroImage(v, w-2, 6) {
			add(kindImage, " "+l)
		}
		return
	}

	img := heroImage(v, w-tw-3, maxInt(len(text), 6))
	joined := hjoin(2, padBlock(text, tw), img)
	for i, l := range joined {
		k := kindImage
		if i < len(kinds) && strings.TrimSpace(text[i]) != "" {
			k = kinds[i]
		}
		add(k, l)
	}
}

func card(v layout.Variant, id, w int) []string {
	var lines []string
	imgRows := 3
	for i := 0; i < imgRows; i++ {
		l := strings.Repeat("▒", w-2)
		if v.QuickAddOverlay && i == imgRows/2 {
			l = center("(+)", w-2)
		}
		lines = append(lines, l)
	}
	lines = append(lines, fmt.Sprintf("Urban Runner %d", id))
	lines = append(lines, spread(productKind, price, w-2))
	switch v.Era {
	case sim.Era2010:
		lines = append(lines, center("[ ADD TO CART ]", w-2))
	case sim.Era2020:
		lines = append(lines, center("[ Add to Cart ]", w-2))
	}
	border := ThemeFor(v.Era).CardBorder
	if v.GrayscaleCards {
		border = ThemeBroken.CardBorder
	}
	return boxed(lines, w, edgesOf(border))
}

func renderProducts(v layout.Variant, w int, add func(rowKind, ...string)) {
	add(kindHeading, spread(" New Arrivals", "View All → ", w))
	if v.Era == sim.Era2010 {
		add(kindHeading, " "+strings.Repeat("‾", runeLen("New Arrivals")))
	}
	add(kindBody, " Hand-picked styles for you.")
	add(kindPlain, "")

	kind := kindCard
	if v.GrayscaleCards {
		kind = kindCardGray
	}
	cols := v.ProductColumns()
	gap := 2
	cw := (w - 2 - gap*(cols-1)) / cols
	if cw < 12 {
		cw = 12
	}
	for start := 1; start <= 3; start += cols {
		var blocks [][]string
		for id := start; id < start+cols && id <= 3; id++ {
			blocks = append(blocks, card(v, id, cw))
		}
		for _, l := range hjoin(gap, blocks...) {
			add(kind, " "+l)
		}
		if v.Products == layout.GridStacked {
			add(kindPlain, "")
		}
	}
}

func renderFooter(v layout.Variant, w int, add func(rowKind, ...string)) {
	add(kindFooter, strings.Repeat("─", w))
	name := brand
	if v.Era == sim.Era2010 {
		name = "~ " + brand + " ~"
	}
	if v.Footer == layout.FooterSingleColumn {
		add(kindFooter, center(name, w))
		for _, l := range wrap(footerCopy, w-4) {
			add(kindFooter, center(l, w))
		}
		for _, t := range footerTitles {
			add(kindFooter, "")
			add(kindFooter, center(strings.ToUpper(t), w))
			add(kindFooter, center("Link 1", w), center("Link 2", w))
		}
		return
	}

	add(kindFooter, " "+name)
	for _, l := range wrap(footerCopy, minInt(w-2, 40)) {
		add(kindFooter, " "+l)
	}
	add(kindFooter, "")
	cw := (w - 2) / 4
	blocks := make([][]string, len(footerTitles))
	for i, t := range footerTitles {
		blocks[i] = []string{pad(strings.ToUpper(t), cw), "Link 1", "Link 2"}
	}
	for _, l := range hjoin(0, blocks...) {
		add(kindFooter, " "+l)
	}
}

func padBlock(lines []string, w int) []string {
	out := make([]string, len(lines))
	for i, l := range lines {
		out[i] = pad(l, w)
	}
	return out
}

func edgesOf(b lipgloss.Border) [8]string {
	return [8]string{b.TopLeft, b.Top, b.TopRight, b.Left, b.Right, b.BottomLeft, b.Bottom, b.BottomRight}
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
