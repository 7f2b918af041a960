package layout

import "github.com/san-kum/responsiv/internal/sim"

type NavStyle int

const (
	NavInline NavStyle = iota
	NavStacked
	NavHamburger
	NavHidden
)

func (n NavStyle) String() string {
	switch n {
	case NavInline:
		return "inline"
	case NavStacked:
		return "stacked"
	case NavHamburger:
		return "hamburger"
	case NavHidden:
		return "hidden"
	}
	return "unknown"
}

type Grid int

const (
	GridAdaptive Grid = iota
	GridTwoColumn
	GridThreeColumn
	GridStacked
)

func (g Grid) String() string {
	switch g {
	case GridAdaptive:
		return "adaptive"
	case GridTwoColumn:
		return "two-column"
	case GridThreeColumn:
		return "three-column"
	case GridStacked:
		return "stacked"
	}
	return "unknown"
}

type FooterStyle int

const (
	FooterFourColumn FooterStyle = iota
	FooterSingleColumn
)

func (f FooterStyle) String() string {
	if f == FooterSingleColumn {
		return "single-column"
	}
	return "four-column"
}

// Container widths in CSS pixels.
const (
	FixedWidth    = 1200
	Width2010     = 960
	Width2020     = 1152
	Width2026     = 1280
	MobileWidth   = 375
	MobileHeight  = 720
	TabletWidth   = 768
	TabletHeight  = 900
	DesktopRadius = 16
	HandsetRadius = 40
)

// Variant is one pre-authored rendering of the storefront.
type Variant struct {
	Selected sim.Quality // what the user picked
	Visual   sim.Quality // what is actually drawn, see Resolve
	Device   sim.Device
	Era      sim.Era

	Container int
	Fixed     bool

	Nav      NavStyle
	Hero     Grid
	Products Grid
	Footer   FooterStyle

	OversizedHeadline bool
	TinyBodyText      bool
	GrayscaleCards    bool
	Badge             bool
	GlowBackdrop      bool
	AdminBar          bool
	SecondaryCTA      bool
	QuickAddOverlay   bool
}

// HeroColumns is the number of columns the hero section is drawn with.
func (v Variant) HeroColumns() int {
	switch v.Hero {
	case GridTwoColumn:
		return 2
	case GridStacked:
		return 1
	}
	if v.Device == sim.DeviceMobile {
		return 1
	}
	return 2
}

// ProductColumns is the number of product cards per row.
func (v Variant) ProductColumns() int {
	switch v.Products {
	case GridThreeColumn:
		return 3
	case GridStacked:
		return 1
	}
	switch v.Device {
	case sim.DeviceMobile:
		return 1
	case sim.DeviceTablet:
		return 2
	}
	return 3
}

// FooterColumns is the number of link columns in the footer.
func (v Variant) FooterColumns() int {
	if v.Footer == FooterSingleColumn {
		return 1
	}
	return 4
}
