package sim

import "errors"

// Parse errors. Setters never fail; only textual input can be invalid.
var (
	ErrUnknownQuality = errors.New("sim: unknown responsiveness quality")
	ErrUnknownDevice  = errors.New("sim: unknown device type")
	ErrUnknownEra     = errors.New("sim: unknown visual era")
)

// ParseError wraps a parse failure with the offending input.
type ParseError struct {
	Field   string
	Input   string
	Wrapped error
}

func (e *ParseError) Error() string {
	return e.Wrapped.Error() + ": " + e.Field + "=" + `"` + e.Input + `"`
}

func (e *ParseError) Unwrap() error {
	return e.Wrapped
}
