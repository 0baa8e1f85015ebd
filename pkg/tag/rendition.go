package tag

import (
	"fmt"

	"github.com/hlskit/gom3u8/pkg/tag/primitives"
)

// RenditionType is a rendition type.
type RenditionType string

// standard rendition types
const (
	RenditionTypeAudio          RenditionType = "AUDIO"
	RenditionTypeVideo          RenditionType = "VIDEO"
	RenditionTypeSubtitles      RenditionType = "SUBTITLES"
	RenditionTypeClosedCaptions RenditionType = "CLOSED-CAPTIONS"
)

// Rendition is a EXT-X-MEDIA tag.
type Rendition struct {
	// TYPE
	// required
	Type RenditionType

	// GROUP-ID
	// required
	GroupID string

	// NAME
	Name string

	// LANGUAGE
	Language string

	// URI
	URI string

	// INSTREAM-ID
	InstreamID string

	// CHARACTERISTICS
	Characteristics string

	// DEFAULT
	Default *bool

	// AUTOSELECT
	Autoselect *bool

	// FORCED
	Forced *bool
}

func (Rendition) isTag() {}

// Unmarshal decodes the tag payload.
func (t *Rendition) Unmarshal(v string) error {
	attrs, err := primitives.AttributesUnmarshal(v)
	if err != nil {
		return err
	}

	for key, val := range attrs {
		switch key {
		case "TYPE":
			t.Type = RenditionType(val)

		case "GROUP-ID":
			t.GroupID = val

		case "NAME":
			t.Name = val

		case "LANGUAGE":
			t.Language = val

		case "URI":
			t.URI = val

		case "INSTREAM-ID":
			t.InstreamID = val

		case "CHARACTERISTICS":
			t.Characteristics = val

		case "DEFAULT":
			tmp := boolValue(val)
			t.Default = &tmp

		case "AUTOSELECT":
			tmp := boolValue(val)
			t.Autoselect = &tmp

		case "FORCED":
			tmp := boolValue(val)
			t.Forced = &tmp
		}
	}

	if t.Type == "" {
		return fmt.Errorf("TYPE is missing")
	}

	if t.GroupID == "" {
		return fmt.Errorf("GROUP-ID is missing")
	}

	return nil
}

// Marshal implements Tag.
func (t Rendition) Marshal() string {
	ret := "#EXT-X-MEDIA:TYPE=" + string(t.Type) +
		",GROUP-ID=\"" + t.GroupID + "\""

	if t.Name != "" {
		ret += ",NAME=\"" + t.Name + "\""
	}

	if t.Language != "" {
		ret += ",LANGUAGE=\"" + t.Language + "\""
	}

	if t.Default != nil {
		ret += ",DEFAULT=" + yesNo(*t.Default)
	}

	if t.Autoselect != nil {
		ret += ",AUTOSELECT=" + yesNo(*t.Autoselect)
	}

	if t.Forced != nil {
		ret += ",FORCED=" + yesNo(*t.Forced)
	}

	if t.InstreamID != "" {
		ret += ",INSTREAM-ID=\"" + t.InstreamID + "\""
	}

	if t.Characteristics != "" {
		ret += ",CHARACTERISTICS=\"" + t.Characteristics + "\""
	}

	if t.URI != "" {
		ret += ",URI=\"" + t.URI + "\""
	}

	ret += "\n"

	return ret
}
