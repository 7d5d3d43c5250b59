// Package procdev parses the kernel's device registration report (by default
// /proc/devices) into queryable in-memory tables and answers lookups in both
// directions: major number to driver name, and driver name to the set of
// major numbers registered for it. Character and block devices are tracked
// in separate, independently namespaced tables.
//
// # Architecture
//
// Construction is a single pass over the input (parser.go): a small line
// classifier tracks the active section as headers, blank lines and data rows
// go by, and fills one forward table per device category. The query surface
// (procdev.go) serves major-number lookups straight from the forward tables
// and builds a reverse index per category lazily, on the first driver-name
// lookup. Domain errors live in errors.go and the device category enum in
// devicetype.go.
//
// Construction is atomic: either the whole listing parses and a fully
// populated ProcDev is returned, or the first malformed line aborts with a
// *ParseError and no instance is observable. After construction the forward
// tables are never mutated, so a ProcDev is safe for concurrent readers; the
// one-time reverse index build is guarded internally.
//
// # Usage
//
// Read the running kernel's registry and look up both directions:
//
//	reg, err := procdev.New()
//	if err != nil {
//	    // *ParseError for malformed content, raw I/O error otherwise
//	}
//
//	driver, ok, err := reg.Driver(procdev.DeviceCharacter, 4)
//	majors, ok, err := reg.Majors(procdev.DeviceBlock, "loop")
//
// Parse works from any io.Reader, which is the natural entry point for tests
// and for listings captured elsewhere:
//
//	reg, err := procdev.Parse(strings.NewReader(listing))
//
// # Error Handling
//
// Absent results are not errors: an unregistered major number or an unknown
// driver name yields a false boolean and a nil error. Errors are reserved
// for malformed input during construction (*ParseError, detectable with
// errors.As or IsParseError) and for queries with a device type outside
// DeviceCharacter and DeviceBlock (ErrInvalidDeviceType, detectable with
// errors.Is).
package procdev
