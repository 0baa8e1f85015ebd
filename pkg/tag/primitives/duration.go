package primitives

import (
	"strconv"
	"time"
)

// DurationUnmarshal decodes a decimal number of seconds.
func DurationUnmarshal(v string) (time.Duration, error) {
	tmp, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return 0, err
	}

	return time.Duration(tmp * float64(time.Second)), nil
}

// DurationMarshal encodes a duration as a decimal number of seconds.
func DurationMarshal(d time.Duration) string {
	return strconv.FormatFloat(d.Seconds(), 'f', 5, 64)
}
