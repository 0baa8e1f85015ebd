package tag

import (
	"fmt"

	"github.com/hlskit/gom3u8/pkg/tag/primitives"
)

// SessionData is a EXT-X-SESSION-DATA tag.
type SessionData struct {
	// ID
	// required
	ID string

	// VALUE
	Value string

	// LANGUAGE
	Language string
}

func (SessionData) isTag() {}

// Unmarshal decodes the tag payload.
func (t *SessionData) Unmarshal(v string) error {
	attrs, err := primitives.AttributesUnmarshal(v)
	if err != nil {
		return err
	}

	for key, val := range attrs {
		switch key {
		case "ID":
			t.ID = val

		case "VALUE":
			t.Value = val

		case "LANGUAGE":
			t.Language = val
		}
	}

	if t.ID == "" {
		return fmt.Errorf("ID is missing")
	}

	return nil
}

// Marshal implements Tag.
func (t SessionData) Marshal() string {
	ret := "#EXT-X-SESSION-DATA:ID=\"" + t.ID + "\""

	if t.Value != "" {
		ret += ",VALUE=\"" + t.Value + "\""
	}

	if t.Language != "" {
		ret += ",LANGUAGE=\"" + t.Language + "\""
	}

	ret += "\n"

	return ret
}
