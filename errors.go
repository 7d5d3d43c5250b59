package procdev

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidDeviceType is returned when a query receives a device type
	// other than DeviceCharacter or DeviceBlock.
	ErrInvalidDeviceType = errors.New("invalid device type")
)

// ParseError reports a line of the device listing that could not be parsed.
// Parsing stops at the first malformed line; no partially populated ProcDev
// is ever returned.
type ParseError struct {
	Line   string // offending line, verbatim
	Reason string
	Err    error // underlying cause, if any
}

func (e *ParseError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("cannot parse device listing: %s: %v (line %q)", e.Reason, e.Err, e.Line)
	}
	return fmt.Sprintf("cannot parse device listing: %s (line %q)", e.Reason, e.Line)
}

func (e *ParseError) Unwrap() error { return e.Err }

// IsParseError reports whether err is a *ParseError.
func IsParseError(err error) bool {
	var e *ParseError
	return errors.As(err, &e)
}
