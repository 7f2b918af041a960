package layout

import "github.com/san-kum/responsiv/internal/sim"

// Resolve swaps bad and perfect. none maps to itself.
func Resolve(q sim.Quality) sim.Quality {
	switch q {
	case sim.QualityBad:
		return sim.QualityPerfect
	case sim.QualityPerfect:
		return sim.QualityBad
	}
	return q
}

var table [3][3][3]Variant

func init() {
	for _, q := range sim.Qualities {
		for _, d := range sim.Devices {
			for _, e := range sim.Eras {
				table[q][d][e] = author(q, d, e)
			}
		}
	}
}

// Select returns the variant drawn for the selected quality on device d in
// era e. Out-of-range enum values fall back to the default state's axis.
func Select(q sim.Quality, d sim.Device, e sim.Era) Variant {
	def := sim.DefaultState()
	if !q.Valid() {
		q = def.Quality
	}
	if !d.Valid() {
		d = def.Device
	}
	if !e.Valid() {
		e = def.Era
	}
	v := table[Resolve(q)][d][e]
	v.Selected = q
	return v
}

// SelectState is Select applied to a store snapshot.
func SelectState(s sim.State) Variant {
	return Select(s.Quality, s.Device, s.Era)
}

// Table returns all variants keyed by the selected quality, in enum order.
func Table() []Variant {
	out := make([]Variant, 0, len(sim.Qualities)*len(sim.Devices)*len(sim.Eras))
	for _, q := range sim.Qualities {
		for _, d := range sim.Devices {
			for _, e := range sim.Eras {
				out = append(out, Select(q, d, e))
			}
		}
	}
	return out
}

// author encodes the storefront's conditional styling for a visual quality.
func author(visual sim.Quality, d sim.Device, e sim.Era) Variant {
	none := visual == sim.QualityNone
	bad := visual == sim.QualityBad
	perfect := visual == sim.QualityPerfect
	mobile := d == sim.DeviceMobile
	broken := bad && mobile

	v := Variant{
		Visual: visual,
		Device: d,
		Era:    e,
	}

	switch {
	case none:
		v.Container, v.Fixed = FixedWidth, true
	case e == sim.Era2010:
		v.Container = Width2010
	case e == sim.Era2020:
		v.Container = Width2020
	default:
		v.Container = Width2026
	}

	switch {
	case broken:
		v.Nav = NavStacked
	case perfect && mobile && e != sim.Era2010:
		v.Nav = NavHamburger
	case perfect && mobile:
		v.Nav = NavHidden
	default:
		v.Nav = NavInline
	}

	switch {
	case broken:
		v.Hero, v.Products = GridStacked, GridStacked
	case none || e == sim.Era2010:
		v.Hero, v.Products = GridTwoColumn, GridThreeColumn
	default:
		v.Hero, v.Products = GridAdaptive, GridAdaptive
	}

	if bad && d != sim.DeviceDesktop {
		v.Footer = FooterSingleColumn
	}

	v.OversizedHeadline = none
	v.TinyBodyText = broken
	v.GrayscaleCards = broken
	v.Badge = perfect && e == sim.Era2026
	v.GlowBackdrop = perfect && e == sim.Era2026
	v.AdminBar = e == sim.Era2010
	v.SecondaryCTA = e != sim.Era2010
	v.QuickAddOverlay = e == sim.Era2026
	return v
}
