package layout

import "github.com/san-kum/responsiv/internal/sim"

const DemoURL = "luxecart.demo/new-collection"

// FrameSpec describes the device shell around the storefront.
type FrameSpec struct {
	Device sim.Device
	Width  int // 0 fills the viewport
	Height int // 0 fills the viewport
	Radius int
	Scale  float64
	Notch  bool // handset camera notch and home bar
	Chrome bool // desktop browser title bar
	URL    string
}

func (f FrameSpec) Fill() bool { return f.Width == 0 && f.Height == 0 }

func Frame(d sim.Device) FrameSpec {
	switch d {
	case sim.DeviceMobile:
		return FrameSpec{Device: d, Width: MobileWidth, Height: MobileHeight, Radius: HandsetRadius, Scale: 0.85, Notch: true}
	case sim.DeviceTablet:
		return FrameSpec{Device: d, Width: TabletWidth, Height: TabletHeight, Radius: HandsetRadius, Scale: 0.9, Notch: true}
	}
	return FrameSpec{Device: sim.DeviceDesktop, Radius: DesktopRadius, Scale: 1, Chrome: true, URL: DemoURL}
}
