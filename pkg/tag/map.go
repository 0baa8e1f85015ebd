package tag

import (
	"github.com/hlskit/gom3u8/pkg/tag/primitives"
)

// Map is a EXT-X-MAP tag.
type Map struct {
	// URI of the initialization segment. Emptiness is checked by
	// validation.
	URI string

	// BYTERANGE
	ByteRangeLength *uint64
	ByteRangeStart  *uint64
}

func (Map) isTag() {}

// Unmarshal decodes the tag payload.
func (t *Map) Unmarshal(v string) error {
	attrs, err := primitives.AttributesUnmarshal(v)
	if err != nil {
		return err
	}

	for key, val := range attrs {
		switch key {
		case "URI":
			t.URI = val

		case "BYTERANGE":
			var br primitives.ByteRange
			if br.Unmarshal(val) != nil {
				continue
			}
			t.ByteRangeLength = &br.Length
			t.ByteRangeStart = br.Start
		}
	}

	return nil
}

// Marshal implements Tag.
func (t Map) Marshal() string {
	ret := "#EXT-X-MAP:URI=\"" + t.URI + "\""

	if t.ByteRangeLength != nil {
		ret += ",BYTERANGE=\"" + primitives.ByteRange{
			Length: *t.ByteRangeLength,
			Start:  t.ByteRangeStart,
		}.Marshal() + "\""
	}

	ret += "\n"

	return ret
}
