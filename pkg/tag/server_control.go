package tag

import (
	"strings"
	"time"

	"github.com/hlskit/gom3u8/pkg/tag/primitives"
)

// ServerControl is a EXT-X-SERVER-CONTROL tag.
type ServerControl struct {
	// CAN-BLOCK-RELOAD
	CanBlockReload bool

	// PART-HOLD-BACK
	// Server-recommended minimum playback distance from the end of the
	// playlist in Low-Latency Mode. Must be at least twice the Part
	// Target Duration.
	PartHoldBack *time.Duration

	// CAN-SKIP-UNTIL
	// The Skip Boundary: how far back a Playlist Delta Update may skip.
	// Must be at least six times the Target Duration.
	CanSkipUntil *time.Duration

	// CAN-SKIP-DATERANGES
	CanSkipDateranges bool
}

func (ServerControl) isTag() {}

// Unmarshal decodes the tag payload.
func (t *ServerControl) Unmarshal(v string) error {
	attrs, err := primitives.AttributesUnmarshal(v)
	if err != nil {
		return err
	}

	for key, val := range attrs {
		switch key {
		case "CAN-BLOCK-RELOAD":
			t.CanBlockReload = boolValue(val)

		case "PART-HOLD-BACK":
			tmp, err := primitives.DurationUnmarshal(val)
			if err != nil {
				continue
			}
			t.PartHoldBack = &tmp

		case "CAN-SKIP-UNTIL":
			tmp, err := primitives.DurationUnmarshal(val)
			if err != nil {
				continue
			}
			t.CanSkipUntil = &tmp

		case "CAN-SKIP-DATERANGES":
			t.CanSkipDateranges = boolValue(val)
		}
	}

	return nil
}

// Marshal implements Tag.
func (t ServerControl) Marshal() string {
	var attrs []string

	if t.CanBlockReload {
		attrs = append(attrs, "CAN-BLOCK-RELOAD=YES")
	}

	if t.PartHoldBack != nil {
		attrs = append(attrs, "PART-HOLD-BACK="+primitives.DurationMarshal(*t.PartHoldBack))
	}

	if t.CanSkipUntil != nil {
		attrs = append(attrs, "CAN-SKIP-UNTIL="+primitives.DurationMarshal(*t.CanSkipUntil))
	}

	if t.CanSkipDateranges {
		attrs = append(attrs, "CAN-SKIP-DATERANGES=YES")
	}

	return "#EXT-X-SERVER-CONTROL:" + strings.Join(attrs, ",") + "\n"
}
