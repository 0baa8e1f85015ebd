package tag

import (
	"github.com/hlskit/gom3u8/pkg/tag/primitives"
)

// SessionKey is a EXT-X-SESSION-KEY tag.
type SessionKey struct {
	// METHOD
	Method KeyMethod

	// URI
	URI string

	// IV
	IV string
}

func (SessionKey) isTag() {}

// Unmarshal decodes the tag payload.
func (t *SessionKey) Unmarshal(v string) error {
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
		}
	}

	return nil
}

// Marshal implements Tag.
func (t SessionKey) Marshal() string {
	ret := "#EXT-X-SESSION-KEY:METHOD=" + string(t.Method)

	if t.URI != "" {
		ret += ",URI=\"" + t.URI + "\""
	}

	if t.IV != "" {
		ret += ",IV=" + t.IV
	}

	ret += "\n"

	return ret
}
