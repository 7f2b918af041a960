package leads

import (
	"errors"
	"net/mail"
	"regexp"
	"strings"
)

var (
	ErrMissingEmail = errors.New("email is required")
	ErrInvalidEmail = errors.New("invalid email")
)

// ValidationError is reported inline next to the offending field. The form
// stays editable.
type ValidationError struct {
	Field   string
	Wrapped error
}

func (e *ValidationError) Error() string {
	return e.Field + ": " + e.Wrapped.Error()
}

func (e *ValidationError) Unwrap() error {
	return e.Wrapped
}

type Lead struct {
	Email string `json:"email"`
}

// emailPattern is the audit form's rule: the local part may hold dots and
// apostrophes but must not end in either, domain labels start alphanumeric,
// and the TLD has two or more letters. Leading and doubled dots are checked
// separately.
var emailPattern = regexp.MustCompile(`(?i)^[A-Z0-9_'+\-.]*[A-Z0-9_+\-]@([A-Z0-9][A-Z0-9\-]*\.)+[A-Z]{2,}$`)

func ValidateEmail(email string) error {
	if strings.TrimSpace(email) == "" {
		return &ValidationError{Field: "email", Wrapped: ErrMissingEmail}
	}
	if strings.HasPrefix(email, ".") || strings.Contains(email, "..") || !emailPattern.MatchString(email) {
		return &ValidationError{Field: "email", Wrapped: ErrInvalidEmail}
	}
	// display names and comments pass the pattern's neighbours in net/mail,
	// so require the parsed address to be the whole input
	addr, err := mail.ParseAddress(email)
	if err != nil || addr.Address != email || addr.Name != "" {
		return &ValidationError{Field: "email", Wrapped: ErrInvalidEmail}
	}
	return nil
}

func Validate(l Lead) error {
	return ValidateEmail(l.Email)
}
