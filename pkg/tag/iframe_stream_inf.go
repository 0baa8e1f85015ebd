package tag

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/hlskit/gom3u8/pkg/tag/primitives"
)

// IFrameStreamInf is a EXT-X-I-FRAME-STREAM-INF tag.
type IFrameStreamInf struct {
	// BANDWIDTH
	// required
	Bandwidth int

	// URI
	// required
	URI string

	// CODECS
	Codecs []string

	// RESOLUTION
	Resolution string

	// FRAME-RATE
	FrameRate *float64
}

func (IFrameStreamInf) isTag() {}

// Unmarshal decodes the tag payload.
func (t *IFrameStreamInf) Unmarshal(v string) error {
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

		case "URI":
			t.URI = val

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
		}
	}

	if !bandwidthFound {
		return fmt.Errorf("BANDWIDTH is missing")
	}

	if t.URI == "" {
		return fmt.Errorf("URI is missing")
	}

	return nil
}

// Marshal implements Tag.
func (t IFrameStreamInf) Marshal() string {
	ret := "#EXT-X-I-FRAME-STREAM-INF:BANDWIDTH=" + strconv.FormatInt(int64(t.Bandwidth), 10)

	if len(t.Codecs) != 0 {
		ret += ",CODECS=\"" + strings.Join(t.Codecs, ",") + "\""
	}

	if t.Resolution != "" {
		ret += ",RESOLUTION=" + t.Resolution
	}

	if t.FrameRate != nil {
		ret += ",FRAME-RATE=" + strconv.FormatFloat(*t.FrameRate, 'f', 3, 64)
	}

	ret += ",URI=\"" + t.URI + "\"\n"

	return ret
}
