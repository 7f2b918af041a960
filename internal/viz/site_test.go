package viz

import (
	"strings"
	"testing"

	"github.com/san-kum/responsiv/internal/layout"
	"github.com/san-kum/responsiv/internal/sim"
)

func siteText(v layout.Variant, inner int) string {
	var b strings.Builder
	for _, r := range renderSite(v, PageWidth(v, inner)) {
		b.WriteString(r.text)
		b.WriteByte('\n')
	}
	return b.String()
}

func TestRenderSite_RowsAreFullWidth(t *testing.T) {
	for _, v := range layout.Table() {
		w := PageWidth(v, 60)
		for i, r := range renderSite(v, w) {
			if got := runeLen(r.text); got != w {
				t.Fatalf("%v/%v/%v row %d: width %d, want %d", v.Selected, v.Device, v.Era, i, got, w)
			}
		}
	}
}

func TestPageWidth(t *testing.T) {
	none := layout.Select(sim.QualityNone, sim.DeviceMobile, sim.Era2026)
	if got := PageWidth(none, 30); got != layout.FixedWidth/pxPerCol {
		t.Errorf("fixed page width = %d, want %d", got, layout.FixedWidth/pxPerCol)
	}

	fluid := layout.Select(sim.QualityBad, sim.DeviceDesktop, sim.Era2026)
	if got := PageWidth(fluid, 200); got != layout.Width2026/pxPerCol {
		t.Errorf("wide frame: page width = %d, want container %d", got, layout.Width2026/pxPerCol)
	}
	if got := PageWidth(fluid, 40); got != 40 {
		t.Errorf("narrow frame: page width = %d, want 40", got)
	}
	if got := PageWidth(fluid, 4); got != 16 {
		t.Errorf("tiny frame: page width = %d, want 16", got)
	}
}

func TestRenderSite_EraDetails(t *testing.T) {
	tests := []struct {
		era     sim.Era
		want    []string
		wantNot []string
	}{
		{sim.Era2010, []string{"Howdy, Admin", "[ SHOP NOW ]", "*SALE*", "[ ADD TO CART ]"}, []string{"Watch Film", "(+)"}},
		{sim.Era2020, []string{"[ Watch Film ]", "Sale!", "[ Add to Cart ]"}, []string{"Howdy", "(+)"}},
		{sim.Era2026, []string{"( Watch Film )", "(+)"}, []string{"Howdy", "Add to Cart"}},
	}
	for _, tt := range tests {
		t.Run(tt.era.String(), func(t *testing.T) {
			text := siteText(layout.Select(sim.QualityBad, sim.DeviceDesktop, tt.era), 140)
			for _, s := range tt.want {
				if !strings.Contains(text, s) {
					t.Errorf("missing %q", s)
				}
			}
			for _, s := range tt.wantNot {
				if strings.Contains(text, s) {
					t.Errorf("unexpected %q", s)
				}
			}
		})
	}
}

func TestRenderSite_Nav(t *testing.T) {
	polished := layout.Select(sim.QualityBad, sim.DeviceMobile, sim.Era2026)
	rows := renderSite(polished, PageWidth(polished, 31))
	if !strings.Contains(rows[0].text, "≡") {
		t.Errorf("polished mobile nav should show a menu icon, got %q", rows[0].text)
	}
	if strings.Contains(siteText(polished, 31), "Collections") {
		t.Error("hamburger nav should hide links")
	}

	broken := layout.Select(sim.QualityPerfect, sim.DeviceMobile, sim.Era2026)
	rows = renderSite(broken, PageWidth(broken, 31))
	nav := 0
	for _, r := range rows {
		if r.kind == kindNav {
			nav++
		}
	}
	// logo, four links, cart
	if nav != 6 {
		t.Errorf("stacked nav rows = %d, want 6", nav)
	}
}

func TestRenderSite_SelectedQualityIsInverted(t *testing.T) {
	pickedPerfect := siteText(layout.Select(sim.QualityPerfect, sim.DeviceDesktop, sim.Era2026), 140)
	pickedBad := siteText(layout.Select(sim.QualityBad, sim.DeviceDesktop, sim.Era2026), 140)

	if strings.Contains(pickedPerfect, "LIMITED EDITION") {
		t.Error("selecting perfect should not draw the polished badge")
	}
	if !strings.Contains(pickedBad, "LIMITED EDITION") {
		t.Error("selecting bad should draw the polished badge")
	}
}

func TestRenderSite_OversizedHeadline(t *testing.T) {
	text := siteText(layout.Select(sim.QualityNone, sim.DeviceDesktop, sim.Era2020), 140)
	if !strings.Contains(text, "R E D E F I N I N G") {
		t.Error("fixed layout should letter-space the headline")
	}
}

func TestWrap(t *testing.T) {
	lines := wrap("the quick brown fox jumps", 10)
	want := []string{"the quick", "brown fox", "jumps"}
	if len(lines) != len(want) {
		t.Fatalf("wrap = %q, want %q", lines, want)
	}
	for i := range want {
		if lines[i] != want[i] {
			t.Errorf("line %d = %q, want %q", i, lines[i], want[i])
		}
	}
	if got := wrap("abcdefghij", 4); len(got) != 3 || got[2] != "ij" {
		t.Errorf("long word split = %q", got)
	}
}

func TestCanvasClipping(t *testing.T) {
	c := NewCanvas(5, 2)
	if clipped := c.Text(3, 0, "abcd"); clipped != 2 {
		t.Errorf("clipped = %d, want 2", clipped)
	}
	c.Set(9, 9, 'x')
	if c.At(9, 9) != 0 {
		t.Error("out of range read should return 0")
	}
	if got := c.Row(0); got != "   ab" {
		t.Errorf("row = %q", got)
	}
}
