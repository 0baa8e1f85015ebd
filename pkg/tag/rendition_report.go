package tag

import (
	"strconv"

	"github.com/hlskit/gom3u8/pkg/tag/primitives"
)

// RenditionReport is a EXT-X-RENDITION-REPORT tag.
type RenditionReport struct {
	// URI. Emptiness is checked by validation.
	URI string

	// LAST-MSN
	LastMSN *int

	// LAST-PART
	LastPart *int
}

func (RenditionReport) isTag() {}

// Unmarshal decodes the tag payload.
func (t *RenditionReport) Unmarshal(v string) error {
	attrs, err := primitives.AttributesUnmarshal(v)
	if err != nil {
		return err
	}

	for key, val := range attrs {
		switch key {
		case "URI":
			t.URI = val

		case "LAST-MSN":
			tmp, err := strconv.ParseUint(val, 10, 31)
			if err != nil {
				continue
			}
			tmp2 := int(tmp)
			t.LastMSN = &tmp2

		case "LAST-PART":
			tmp, err := strconv.ParseUint(val, 10, 31)
			if err != nil {
				continue
			}
			tmp2 := int(tmp)
			t.LastPart = &tmp2
		}
	}

	return nil
}

// Marshal implements Tag.
func (t RenditionReport) Marshal() string {
	ret := "#EXT-X-RENDITION-REPORT:URI=\"" + t.URI + "\""

	if t.LastMSN != nil {
		ret += ",LAST-MSN=" + strconv.FormatInt(int64(*t.LastMSN), 10)
	}

	if t.LastPart != nil {
		ret += ",LAST-PART=" + strconv.FormatInt(int64(*t.LastPart), 10)
	}

	ret += "\n"

	return ret
}
