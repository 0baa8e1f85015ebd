package tag

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/hlskit/gom3u8/pkg/tag/primitives"
)

// StreamInf is a EXT-X-STREAM-INF tag.
//
// The variant URI on the following line is not part of the tag record; see
// the playlist decoder.
type StreamInf struct {
	// BANDWIDTH
	// required
	Bandwidth int

	// AVERAGE-BANDWIDTH
	AverageBandwidth *int

	// CODECS
	Codecs []string

	// RESOLUTION
	Resolution string

	// FRAME-RATE
	FrameRate *float64

	// AUDIO
	Audio string

	// VIDEO
	Video string

	// SUBTITLES
	Subtitles string

	// CLOSED-CAPTIONS
	ClosedCaptions string
}

func (StreamInf) isTag() {}

// Unmarshal decodes the tag payload.
func (t *StreamInf) Unmarshal(v string) error {
	attrs, err := primitives.AttributesUnmarshal(v)
	if err != nil {
		return err
	}

	bandwidthFound := false

	for key, val := range attrs {
		switch key {
		case "BANDWIDTH":
			tmp, err := strconv.ParseUint(val, 10, 31)
			if err != nil {
				return err
			}
			t.Bandwidth = int(tmp)
			bandwidthFound = true

		case "AVERAGE-BANDWIDTH":
			tmp, err := strconv.ParseUint(val, 10, 31)
			if err != nil {
				continue
			}
			tmp2 := int(tmp)
			t.AverageBandwidth = &tmp2

		case "CODECS":
			if val != "" {
				t.Codecs = strings.Split(val, ",")
			}

		case "RESOLUTION":
			t.Resolution = val

		case "FRAME-RATE":
			tmp, err := strconv.ParseFloat(val, 64)
			if err != nil {
				continue
			}
			t.FrameRate = &tmp

		case "AUDIO":
			t.Audio = val

		case "VIDEO":
			t.Video = val

		case "SUBTITLES":
			t.Subtitles = val

		case "CLOSED-CAPTIONS":
			t.ClosedCaptions = val
		}
	}

	if !bandwidthFound {
		return fmt.Errorf("BANDWIDTH is missing")
	}

	return nil
}

// Marshal implements Tag.
func (t StreamInf) Marshal() string {
	ret := "#EXT-X-STREAM-INF:BANDWIDTH=" + strconv.FormatInt(int64(t.Bandwidth), 10)

	if t.AverageBandwidth != nil {
		ret += ",AVERAGE-BANDWIDTH=" + strconv.FormatInt(int64(*t.AverageBandwidth), 10)
	}

	if len(t.Codecs) != 0 {
		ret += ",CODECS=\"" + strings.Join(t.Codecs, ",") + "\""
	}

	if t.Resolution != "" {
		ret += ",RESOLUTION=" + t.Resolution
	}

	if t.FrameRate != nil {
		ret += ",FRAME-RATE=" + strconv.FormatFloat(*t.FrameRate, 'f', 3, 64)
	}

	if t.Audio != "" {
		ret += ",AUDIO=\"" + t.Audio + "\""
	}

	if t.Video != "" {
		ret += ",VIDEO=\"" + t.Video + "\""
	}

	if t.Subtitles != "" {
		ret += ",SUBTITLES=\"" + t.Subtitles + "\""
	}

	if t.ClosedCaptions != "" {
		ret += ",CLOSED-CAPTIONS=\"" + t.ClosedCaptions + "\""
	}

	ret += "\n"

	return ret
}
