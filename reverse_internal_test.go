package procdev

import (
	"reflect"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

// White-box check that the reverse index is materialized exactly once per
// device type: repeated queries must hand back the same underlying map.
func TestReverseIndexBuiltAtMostOnce(t *testing.T) {
	reg, err := Parse(strings.NewReader("Character devices:\n1 mem\n4 tty\n"))
	require.NoError(t, err)

	pair := reg.tables[DeviceCharacter]
	require.Nil(t, pair.reverse, "reverse index must stay unbuilt until the first driver-name query")

	_, ok, err := reg.Majors(DeviceCharacter, "tty")
	require.NoError(t, err)
	require.True(t, ok)

	first := reflect.ValueOf(pair.reverse).Pointer()

	_, _, err = reg.Majors(DeviceCharacter, "mem")
	require.NoError(t, err)

	second := reflect.ValueOf(pair.reverse).Pointer()
	require.Equal(t, first, second, "second query must reuse the memoized index")

	// A driver-name query against one device type must not touch the other.
	require.Nil(t, reg.tables[DeviceBlock].reverse)
}
