package tag

import (
	"fmt"
	"time"

	"github.com/hlskit/gom3u8/pkg/tag/primitives"
)

// PartInf is a EXT-X-PART-INF tag.
type PartInf struct {
	// PART-TARGET
	// required
	PartTarget time.Duration
}

func (PartInf) isTag() {}

// Unmarshal decodes the tag payload.
func (t *PartInf) Unmarshal(v string) error {
	attrs, err := primitives.AttributesUnmarshal(v)
	if err != nil {
		return err
	}

	for key, val := range attrs {
		if key == "PART-TARGET" {
			tmp, err := primitives.DurationUnmarshal(val)
			if err != nil {
				return err
			}
			t.PartTarget = tmp
		}
	}

	if t.PartTarget == 0 {
		return fmt.Errorf("PART-TARGET is missing")
	}

	return nil
}

// Marshal implements Tag.
func (t PartInf) Marshal() string {
	return "#EXT-X-PART-INF:PART-TARGET=" + primitives.DurationMarshal(t.PartTarget) + "\n"
}
