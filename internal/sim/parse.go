package sim

import "strings"

func ParseQuality(s string) (Quality, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "none", "no", "no-responsive":
		return QualityNone, nil
	case "bad", "bad-responsive":
		return QualityBad, nil
	case "perfect", "perfect-responsive":
		return QualityPerfect, nil
	}
	return 0, &ParseError{Field: "quality", Input: s, Wrapped: ErrUnknownQuality}
}

func ParseDevice(s string) (Device, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "mobile", "phone":
		return DeviceMobile, nil
	case "tablet":
		return DeviceTablet, nil
	case "desktop":
		return DeviceDesktop, nil
	}
	return 0, &ParseError{Field: "device", Input: s, Wrapped: ErrUnknownDevice}
}

func ParseEra(s string) (Era, error) {
	switch strings.TrimSpace(s) {
	case "2010":
		return Era2010, nil
	case "2020":
		return Era2020, nil
	case "2026":
		return Era2026, nil
	}
	return 0, &ParseError{Field: "era", Input: s, Wrapped: ErrUnknownEra}
}
