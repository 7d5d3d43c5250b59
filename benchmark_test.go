package procdev_test

import (
	"strings"
	"testing"

	"github.com/dmitrymomot/procdev"
)

// Keep results alive so the compiler cannot elide the calls.
var (
	benchReg    *procdev.ProcDev
	benchDriver string
	benchMajors []int
	benchErr    error
)

func BenchmarkParse(b *testing.B) {
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		benchReg, benchErr = procdev.Parse(strings.NewReader(sampleListing))
	}
}

func BenchmarkDriver(b *testing.B) {
	reg, err := procdev.Parse(strings.NewReader(sampleListing))
	if err != nil {
		b.Fatal(err)
	}

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		benchDriver, _, benchErr = reg.Driver(procdev.DeviceCharacter, 4)
	}
}

func BenchmarkMajors(b *testing.B) {
	reg, err := procdev.Parse(strings.NewReader(sampleListing))
	if err != nil {
		b.Fatal(err)
	}

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		benchMajors, _, benchErr = reg.Majors(procdev.DeviceBlock, "sd")
	}
}
