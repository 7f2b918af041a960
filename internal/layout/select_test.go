package layout

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/san-kum/responsiv/internal/sim"
)

func TestResolveSwapsBadAndPerfect(t *testing.T) {
	assert.Equal(t, sim.QualityPerfect, Resolve(sim.QualityBad))
	assert.Equal(t, sim.QualityBad, Resolve(sim.QualityPerfect))
	assert.Equal(t, sim.QualityNone, Resolve(sim.QualityNone))
}

func TestSelectUsesInvertedVariant(t *testing.T) {
	for _, d := range sim.Devices {
		for _, e := range sim.Eras {
			bad := Select(sim.QualityBad, d, e)
			perfect := Select(sim.QualityPerfect, d, e)

			assert.Equal(t, sim.QualityPerfect, bad.Visual, "%v/%v", d, e)
			assert.Equal(t, sim.QualityBad, perfect.Visual, "%v/%v", d, e)
			assert.Equal(t, sim.QualityBad, bad.Selected)
			assert.Equal(t, sim.QualityPerfect, perfect.Selected)

			bad.Selected, perfect.Selected = 0, 0
			assert.Equal(t, author(sim.QualityPerfect, d, e), bad)
			assert.Equal(t, author(sim.QualityBad, d, e), perfect)
		}
	}
}

func TestSelectNoneIsFixedWidth(t *testing.T) {
	for _, d := range sim.Devices {
		for _, e := range sim.Eras {
			v := Select(sim.QualityNone, d, e)
			assert.Equal(t, sim.QualityNone, v.Visual)
			assert.True(t, v.Fixed)
			assert.Equal(t, FixedWidth, v.Container)
			assert.True(t, v.OversizedHeadline)
			assert.Equal(t, GridTwoColumn, v.Hero)
			assert.Equal(t, GridThreeColumn, v.Products)
			assert.Equal(t, 3, v.ProductColumns())
		}
	}
}

func TestSelectMobileCollapse(t *testing.T) {
	// selecting "perfect" draws the broken mobile layout
	v := Select(sim.QualityPerfect, sim.DeviceMobile, sim.Era2020)
	assert.Equal(t, NavStacked, v.Nav)
	assert.Equal(t, GridStacked, v.Hero)
	assert.Equal(t, GridStacked, v.Products)
	assert.Equal(t, FooterSingleColumn, v.Footer)
	assert.True(t, v.TinyBodyText)
	assert.True(t, v.GrayscaleCards)
	assert.Equal(t, 1, v.ProductColumns())

	v = Select(sim.QualityPerfect, sim.DeviceMobile, sim.Era2010)
	assert.Equal(t, GridStacked, v.Products, "stacked overrides the 2010 fixed grid")

	v = Select(sim.QualityPerfect, sim.DeviceTablet, sim.Era2020)
	assert.Equal(t, FooterSingleColumn, v.Footer)
	assert.Equal(t, GridAdaptive, v.Products)
	assert.Equal(t, 2, v.ProductColumns())
	assert.False(t, v.GrayscaleCards)
}

func TestSelectPolishedMobile(t *testing.T) {
	v := Select(sim.QualityBad, sim.DeviceMobile, sim.Era2026)
	assert.Equal(t, NavHamburger, v.Nav)
	assert.True(t, v.Badge)
	assert.True(t, v.GlowBackdrop)
	assert.Equal(t, 1, v.ProductColumns())
	assert.Equal(t, 1, v.HeroColumns())

	v = Select(sim.QualityBad, sim.DeviceMobile, sim.Era2010)
	assert.Equal(t, NavHidden, v.Nav)
	assert.Equal(t, GridThreeColumn, v.Products)
	assert.False(t, v.Badge)
}

func TestSelectEraContainers(t *testing.T) {
	assert.Equal(t, Width2010, Select(sim.QualityBad, sim.DeviceDesktop, sim.Era2010).Container)
	assert.Equal(t, Width2020, Select(sim.QualityBad, sim.DeviceDesktop, sim.Era2020).Container)
	assert.Equal(t, Width2026, Select(sim.QualityBad, sim.DeviceDesktop, sim.Era2026).Container)
	assert.True(t, Select(sim.QualityBad, sim.DeviceDesktop, sim.Era2010).AdminBar)
	assert.False(t, Select(sim.QualityBad, sim.DeviceDesktop, sim.Era2010).SecondaryCTA)
}

func TestSelectInvalidFallsBack(t *testing.T) {
	v := Select(sim.Quality(9), sim.Device(-1), sim.Era(7))
	assert.Equal(t, sim.DeviceDesktop, v.Device)
	assert.Equal(t, sim.Era2026, v.Era)
	assert.Equal(t, sim.QualityPerfect, v.Selected)
}

func TestTableIsExhaustive(t *testing.T) {
	rows := Table()
	require.Len(t, rows, 27)

	seen := make(map[[3]int]bool)
	for _, v := range rows {
		key := [3]int{int(v.Selected), int(v.Device), int(v.Era)}
		assert.False(t, seen[key], "duplicate row %v", key)
		seen[key] = true
		assert.Equal(t, Resolve(v.Selected), v.Visual)
	}
}

func TestSelectStateMatchesSelect(t *testing.T) {
	s := sim.State{Quality: sim.QualityNone, Device: sim.DeviceTablet, Era: sim.Era2020}
	assert.Equal(t, Select(s.Quality, s.Device, s.Era), SelectState(s))
}

func TestFrame(t *testing.T) {
	m := Frame(sim.DeviceMobile)
	assert.Equal(t, 375, m.Width)
	assert.Equal(t, 720, m.Height)
	assert.Equal(t, 0.85, m.Scale)
	assert.True(t, m.Notch)
	assert.False(t, m.Chrome)

	tb := Frame(sim.DeviceTablet)
	assert.Equal(t, 768, tb.Width)
	assert.Equal(t, 900, tb.Height)
	assert.Equal(t, 0.9, tb.Scale)

	d := Frame(sim.DeviceDesktop)
	assert.True(t, d.Fill())
	assert.True(t, d.Chrome)
	assert.Equal(t, DemoURL, d.URL)
	assert.Equal(t, DesktopRadius, d.Radius)
}
