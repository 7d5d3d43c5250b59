package procdev

import "fmt"

// DeviceType selects one of the two device categories tracked by the kernel
// registry. The zero value is reserved for the parser's "no active section"
// state and is rejected by every query.
type DeviceType uint8

const (
	// noType is the parser state before any section header has been seen,
	// or after a blank line terminated the current section. It is never a
	// valid argument to a query.
	noType DeviceType = iota

	// DeviceCharacter selects the character device table.
	DeviceCharacter

	// DeviceBlock selects the block device table.
	DeviceBlock
)

// String returns a human-readable name for the device type.
func (dt DeviceType) String() string {
	switch dt {
	case DeviceCharacter:
		return "character"
	case DeviceBlock:
		return "block"
	default:
		return fmt.Sprintf("DeviceType(%d)", uint8(dt))
	}
}
