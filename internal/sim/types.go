package sim

import "fmt"

type Quality int

const (
	QualityNone Quality = iota
	QualityBad
	QualityPerfect
)

var qualityNames = [...]string{"no-responsive", "bad-responsive", "perfect-responsive"}

func (q Quality) String() string {
	if q < 0 || int(q) >= len(qualityNames) {
		return fmt.Sprintf("quality(%d)", int(q))
	}
	return qualityNames[q]
}

// Short is the label shown on the control panel.
func (q Quality) Short() string {
	switch q {
	case QualityNone:
		return "none"
	case QualityBad:
		return "bad"
	case QualityPerfect:
		return "perfect"
	}
	return q.String()
}

func (q Quality) Next() Quality { return Quality((int(q) + 1) % len(qualityNames)) }

func (q Quality) Valid() bool { return q >= QualityNone && q <= QualityPerfect }

type Device int

const (
	DeviceMobile Device = iota
	DeviceTablet
	DeviceDesktop
)

var deviceNames = [...]string{"mobile", "tablet", "desktop"}

func (d Device) String() string {
	if d < 0 || int(d) >= len(deviceNames) {
		return fmt.Sprintf("device(%d)", int(d))
	}
	return deviceNames[d]
}

func (d Device) Next() Device { return Device((int(d) + 1) % len(deviceNames)) }

func (d Device) Valid() bool { return d >= DeviceMobile && d <= DeviceDesktop }

type Era int

const (
	Era2010 Era = iota
	Era2020
	Era2026
)

var eraNames = [...]string{"2010", "2020", "2026"}

func (e Era) String() string {
	if e < 0 || int(e) >= len(eraNames) {
		return fmt.Sprintf("era(%d)", int(e))
	}
	return eraNames[e]
}

func (e Era) Next() Era { return Era((int(e) + 1) % len(eraNames)) }

func (e Era) Valid() bool { return e >= Era2010 && e <= Era2026 }

// Qualities, Devices and Eras list every enum value in declaration order.
var (
	Qualities = []Quality{QualityNone, QualityBad, QualityPerfect}
	Devices   = []Device{DeviceMobile, DeviceTablet, DeviceDesktop}
	Eras      = []Era{Era2010, Era2020, Era2026}
)

// State is the full set of simulation parameters.
type State struct {
	Quality       Quality
	Device        Device
	Era           Era
	SimulateUser  bool
	CinematicMode bool
	ShowAnalytics bool
}

// DefaultState is the state every session starts from.
func DefaultState() State {
	return State{
		Quality:       QualityPerfect,
		Device:        DeviceDesktop,
		Era:           Era2026,
		ShowAnalytics: true,
	}
}

type Observer interface {
	OnChange(prev, cur State)
}

type ObserverFunc func(prev, cur State)

func (f ObserverFunc) OnChange(prev, cur State) { f(prev, cur) }
