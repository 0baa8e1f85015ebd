package tag

import (
	"fmt"
	"time"

	"github.com/hlskit/gom3u8/pkg/tag/primitives"
)

// Part is a EXT-X-PART tag.
type Part struct {
	// DURATION
	// required
	Duration time.Duration

	// URI
	// required
	URI string

	// INDEPENDENT
	Independent bool

	// BYTERANGE
	ByteRangeLength *uint64
	ByteRangeStart  *uint64

	// GAP
	Gap bool
}

func (Part) isTag() {}

// Unmarshal decodes the tag payload.
func (t *Part) Unmarshal(v string) error {
	attrs, err := primitives.AttributesUnmarshal(v)
	if err != nil {
		return err
	}

	for key, val := range attrs {
		switch key {
		case "DURATION":
			tmp, err := primitives.DurationUnmarshal(val)
			if err != nil {
				return err
			}
			t.Duration = tmp

		case "URI":
			t.URI = val

		case "INDEPENDENT":
			t.Independent = boolValue(val)

		case "BYTERANGE":
			var br primitives.ByteRange
			if br.Unmarshal(val) != nil {
				continue
			}
			t.ByteRangeLength = &br.Length
			t.ByteRangeStart = br.Start

		case "GAP":
			t.Gap = true
		}
	}

	if t.Duration == 0 {
		return fmt.Errorf("DURATION is missing")
	}

	if t.URI == "" {
		return fmt.Errorf("URI is missing")
	}

	return nil
}

// Marshal implements Tag.
func (t Part) Marshal() string {
	ret := "#EXT-X-PART:DURATION=" + primitives.DurationMarshal(t.Duration) +
		",URI=\"" + t.URI + "\""

	if t.Independent {
		ret += ",INDEPENDENT=YES"
	}

	if t.ByteRangeLength != nil {
		ret += ",BYTERANGE=\"" + primitives.ByteRange{
			Length: *t.ByteRangeLength,
			Start:  t.ByteRangeStart,
		}.Marshal() + "\""
	}

	if t.Gap {
		ret += ",GAP=YES"
	}

	ret += "\n"

	return ret
}
