package procdev

import (
	"fmt"
	"io"
	"maps"
	"os"
	"slices"
	"sync"
)

// DefaultPath is the kernel's device registration report.
const DefaultPath = "/proc/devices"

// tablePair holds the forward table for one device type together with its
// lazily built inverse. The forward table is read-only once parsing has
// finished; the reverse table is built at most once, on first use.
type tablePair struct {
	forward map[int]string

	once    sync.Once
	reverse map[string][]int
}

func newTablePair() *tablePair {
	return &tablePair{forward: make(map[int]string)}
}

// reverseTable groups the forward table's major numbers by driver name.
// The index is built on the first call and memoized; sync.Once guards the
// build so concurrent readers never observe a partially populated index.
func (tp *tablePair) reverseTable() map[string][]int {
	tp.once.Do(func() {
		reverse := make(map[string][]int)
		for major, driver := range tp.forward {
			reverse[driver] = append(reverse[driver], major)
		}
		for _, majors := range reverse {
			slices.Sort(majors)
		}
		tp.reverse = reverse
	})
	return tp.reverse
}

// ProcDev answers lookups against a parsed device registration listing.
// It holds one table pair per device category and is safe for concurrent
// reads after construction.
type ProcDev struct {
	tables map[DeviceType]*tablePair
}

// New parses the listing at DefaultPath.
func New() (*ProcDev, error) {
	return Open(DefaultPath)
}

// Open reads and parses the device listing at path. I/O failures are
// returned unchanged; malformed content is reported as a *ParseError.
func Open(path string) (*ProcDev, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	return Parse(f)
}

// Parse reads a device listing from r and returns a fully populated ProcDev,
// or the first error encountered.
func Parse(r io.Reader) (*ProcDev, error) {
	tables, err := parse(r)
	if err != nil {
		return nil, err
	}
	return &ProcDev{tables: tables}, nil
}

func (p *ProcDev) pair(dt DeviceType) (*tablePair, error) {
	pair, ok := p.tables[dt]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrInvalidDeviceType, dt)
	}
	return pair, nil
}

// Driver returns the driver name registered for major under dt. The boolean
// reports whether the major number is registered; an unregistered major is a
// routine absent result, not an error.
func (p *ProcDev) Driver(dt DeviceType, major int) (string, bool, error) {
	pair, err := p.pair(dt)
	if err != nil {
		return "", false, err
	}
	driver, ok := pair.forward[major]
	return driver, ok, nil
}

// Majors returns the set of major numbers registered for driver under dt,
// sorted ascending. The first call for a device type builds the reverse
// index; subsequent calls reuse it. The returned slice is a copy.
func (p *ProcDev) Majors(dt DeviceType, driver string) ([]int, bool, error) {
	pair, err := p.pair(dt)
	if err != nil {
		return nil, false, err
	}
	majors, ok := pair.reverseTable()[driver]
	if !ok {
		return nil, false, nil
	}
	return slices.Clone(majors), true, nil
}

// MajorNumbers returns every major number registered under dt, sorted
// ascending.
func (p *ProcDev) MajorNumbers(dt DeviceType) ([]int, error) {
	pair, err := p.pair(dt)
	if err != nil {
		return nil, err
	}
	majors := make([]int, 0, len(pair.forward))
	for major := range pair.forward {
		majors = append(majors, major)
	}
	slices.Sort(majors)
	return majors, nil
}

// DriverNames returns the distinct driver names registered under dt, sorted.
func (p *ProcDev) DriverNames(dt DeviceType) ([]string, error) {
	pair, err := p.pair(dt)
	if err != nil {
		return nil, err
	}

	seen := make(map[string]struct{}, len(pair.forward))
	names := make([]string, 0, len(pair.forward))
	for _, driver := range pair.forward {
		if _, ok := seen[driver]; ok {
			continue
		}
		seen[driver] = struct{}{}
		names = append(names, driver)
	}
	slices.Sort(names)
	return names, nil
}

// Table returns a copy of the forward table for dt, mapping major numbers to
// driver names.
func (p *ProcDev) Table(dt DeviceType) (map[int]string, error) {
	pair, err := p.pair(dt)
	if err != nil {
		return nil, err
	}
	return maps.Clone(pair.forward), nil
}
