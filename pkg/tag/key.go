package tag

import (
	"github.com/hlskit/gom3u8/pkg/tag/primitives"
)

// KeyMethod is the encryption method of a Key or SessionKey tag.
type KeyMethod string

// standard encryption methods
const (
	KeyMethodNone      KeyMethod = "NONE"
	KeyMethodAES128    KeyMethod = "AES-128"
	KeyMethodSampleAES KeyMethod = "SAMPLE-AES"
)

// Key is a EXT-X-KEY tag.
type Key struct {
	// METHOD. Any value decodes; whether it is one of the standard
	// methods is checked by validation.
	Method KeyMethod

	// URI
	URI string

	// IV
	IV string

	// KEYFORMAT
	KeyFormat string

	// KEYFORMATVERSIONS
	KeyFormatVersions string
}

func (Key) isTag() {}

// Unmarshal decodes the tag payload.
func (t *Key) Unmarshal(v string) error {
	attrs, err := primitives.AttributesUnmarshal(v)
	if err != nil {
		return err
	}

	for key, val := range attrs {
		switch key {
		case "METHOD":
			t.Method = KeyMethod(val)

		case "URI":
			t.URI = val

		case "IV":
			t.IV = val

		case "KEYFORMAT":
			t.KeyFormat = val

		case "KEYFORMATVERSIONS":
			t.KeyFormatVersions = val
		}
	}

	return nil
}

// Marshal implements Tag.
func (t Key) Marshal() string {
	ret := "#EXT-X-KEY:METHOD=" + string(t.Method)

	if t.URI != "" {
		ret += ",URI=\"" + t.URI + "\""
	}

	if t.IV != "" {
		ret += ",IV=" + t.IV
	}

	if t.KeyFormat != "" {
		ret += ",KEYFORMAT=\"" + t.KeyFormat + "\""
	}

	if t.KeyFormatVersions != "" {
		ret += ",KEYFORMATVERSIONS=\"" + t.KeyFormatVersions + "\""
	}

	ret += "\n"

	return ret
}
