package tag

import (
	"github.com/hlskit/gom3u8/pkg/tag/primitives"
)

// Start is a EXT-X-START tag.
type Start struct {
	// TIME-OFFSET, kept verbatim. Emptiness is checked by validation.
	TimeOffset string

	// PRECISE
	Precise *bool
}

func (Start) isTag() {}

// Unmarshal decodes the tag payload.
func (t *Start) Unmarshal(v string) error {
	attrs, err := primitives.AttributesUnmarshal(v)
	if err != nil {
		return err
	}

	for key, val := range attrs {
		switch key {
		case "TIME-OFFSET":
			t.TimeOffset = val

		case "PRECISE":
			tmp := boolValue(val)
			t.Precise = &tmp
		}
	}

	return nil
}

// Marshal implements Tag.
func (t Start) Marshal() string {
	ret := "#EXT-X-START:TIME-OFFSET=" + t.TimeOffset

	if t.Precise != nil {
		ret += ",PRECISE=" + yesNo(*t.Precise)
	}

	ret += "\n"

	return ret
}
