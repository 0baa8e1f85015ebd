package tag

import (
	"strconv"

	"github.com/hlskit/gom3u8/pkg/tag/primitives"
)

// PreloadHint is a EXT-X-PRELOAD-HINT tag.
type PreloadHint struct {
	// TYPE, either PART or MAP
	Type string

	// URI. Emptiness is checked by validation.
	URI string

	// BYTERANGE-START
	ByteRangeStart *uint64

	// BYTERANGE-LENGTH
	ByteRangeLength *uint64
}

func (PreloadHint) isTag() {}

// Unmarshal decodes the tag payload.
func (t *PreloadHint) Unmarshal(v string) error {
	attrs, err := primitives.AttributesUnmarshal(v)
	if err != nil {
		return err
	}

	for key, val := range attrs {
		switch key {
		case "TYPE":
			t.Type = val

		case "URI":
			t.URI = val

		case "BYTERANGE-START":
			tmp, err := strconv.ParseUint(val, 10, 64)
			if err != nil {
				continue
			}
			t.ByteRangeStart = &tmp

		case "BYTERANGE-LENGTH":
			tmp, err := strconv.ParseUint(val, 10, 64)
			if err != nil {
				continue
			}
			t.ByteRangeLength = &tmp
		}
	}

	return nil
}

// Marshal implements Tag.
func (t PreloadHint) Marshal() string {
	ret := "#EXT-X-PRELOAD-HINT:"

	if t.Type != "" {
		ret += "TYPE=" + t.Type + ","
	}

	ret += "URI=\"" + t.URI + "\""

	if t.ByteRangeStart != nil {
		ret += ",BYTERANGE-START=" + strconv.FormatUint(*t.ByteRangeStart, 10)
	}

	if t.ByteRangeLength != nil {
		ret += ",BYTERANGE-LENGTH=" + strconv.FormatUint(*t.ByteRangeLength, 10)
	}

	ret += "\n"

	return ret
}
