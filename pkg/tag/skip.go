package tag

import (
	"fmt"
	"strconv"

	"github.com/hlskit/gom3u8/pkg/tag/primitives"
)

// Skip is a EXT-X-SKIP tag.
type Skip struct {
	// SKIPPED-SEGMENTS
	// required; positivity is checked by validation
	SkippedSegments int

	// RECENTLY-REMOVED-DATERANGES
	RecentlyRemovedDateranges string
}

func (Skip) isTag() {}

// Unmarshal decodes the tag payload.
func (t *Skip) Unmarshal(v string) error {
	attrs, err := primitives.AttributesUnmarshal(v)
	if err != nil {
		return err
	}

	skippedFound := false

	for key, val := range attrs {
		switch key {
		case "SKIPPED-SEGMENTS":
			tmp, err := strconv.ParseInt(val, 10, 32)
			if err != nil {
				return err
			}
			t.SkippedSegments = int(tmp)
			skippedFound = true

		case "RECENTLY-REMOVED-DATERANGES":
			t.RecentlyRemovedDateranges = val
		}
	}

	if !skippedFound {
		return fmt.Errorf("SKIPPED-SEGMENTS is missing")
	}

	return nil
}

// Marshal implements Tag.
func (t Skip) Marshal() string {
	ret := "#EXT-X-SKIP:SKIPPED-SEGMENTS=" + strconv.FormatInt(int64(t.SkippedSegments), 10)

	if t.RecentlyRemovedDateranges != "" {
		ret += ",RECENTLY-REMOVED-DATERANGES=\"" + t.RecentlyRemovedDateranges + "\""
	}

	ret += "\n"

	return ret
}
