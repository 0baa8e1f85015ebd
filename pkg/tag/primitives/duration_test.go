package primitives

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestDuration(t *testing.T) {
	d, err := DurationUnmarshal("9.5")
	require.NoError(t, err)
	require.Equal(t, 9500*time.Millisecond, d)
	require.Equal(t, "9.50000", DurationMarshal(d))

	d, err = DurationUnmarshal("-1")
	require.NoError(t, err)
	require.Equal(t, -time.Second, d)

	_, err = DurationUnmarshal("abc")
	require.Error(t, err)
}
