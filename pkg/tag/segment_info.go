package tag

import (
	"fmt"
	"strings"
	"time"

	"github.com/hlskit/gom3u8/pkg/tag/primitives"
)

// SegmentInfo is a EXTINF tag together with the URI line that follows it.
//
// The URI is part of the tag record itself: the pairing between a EXTINF
// directive and its media line is structural, not positional, so the two
// can never drift apart.
type SegmentInfo struct {
	// segment duration
	// required
	Duration time.Duration

	// trailing title, may be empty
	Title string

	// URI of the media segment, taken from the following line
	// required
	URI string
}

func (SegmentInfo) isTag() {}

// Unmarshal decodes the tag payload plus the segment URI line.
func (t *SegmentInfo) Unmarshal(payload string, uri string) error {
	durStr, title, _ := strings.Cut(payload, ",")

	d, err := primitives.DurationUnmarshal(durStr)
	if err != nil {
		return err
	}
	t.Duration = d
	t.Title = strings.TrimSpace(title)

	if uri == "" {
		return fmt.Errorf("segment URI is missing")
	}
	t.URI = uri

	return nil
}

// Marshal implements Tag. It emits two lines: the directive and the URI.
func (t SegmentInfo) Marshal() string {
	return "#EXTINF:" + primitives.DurationMarshal(t.Duration) + "," + t.Title + "\n" +
		t.URI + "\n"
}
