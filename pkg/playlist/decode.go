package playlist

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/hlskit/gom3u8/pkg/tag"
	"github.com/hlskit/gom3u8/pkg/tag/primitives"
)

// Unrecognized is a directive line that could not be decoded into a tag.
type Unrecognized struct {
	Line string
	Err  error
}

// payloadParser decodes a tag from the payload following "#KEYWORD:".
type payloadParser func(payload string) (tag.Tag, error)

// registry maps directive keywords to their parsers. It is immutable
// constant data, shared read-only by concurrent decoders. Keywords are
// matched exactly, so a directive can never be shadowed by one that
// prefixes it (PART vs PART-INF, DISCONTINUITY vs DISCONTINUITY-SEQUENCE).
var registry = map[string]payloadParser{
	"EXTM3U": func(string) (tag.Tag, error) {
		return tag.M3U{}, nil
	},
	"EXT-X-ENDLIST": func(string) (tag.Tag, error) {
		return tag.Endlist{}, nil
	},
	"EXT-X-DISCONTINUITY": func(string) (tag.Tag, error) {
		return tag.Discontinuity{}, nil
	},
	"EXT-X-GAP": func(string) (tag.Tag, error) {
		return tag.Gap{}, nil
	},
	"EXT-X-INDEPENDENT-SEGMENTS": func(string) (tag.Tag, error) {
		return tag.IndependentSegments{}, nil
	},
	"EXT-X-VERSION": func(payload string) (tag.Tag, error) {
		var t tag.Version
		err := t.Unmarshal(payload)
		return t, err
	},
	"EXT-X-TARGETDURATION": func(payload string) (tag.Tag, error) {
		var t tag.TargetDuration
		err := t.Unmarshal(payload)
		return t, err
	},
	"EXT-X-PLAYLIST-TYPE": func(payload string) (tag.Tag, error) {
		var t tag.PlaylistType
		err := t.Unmarshal(payload)
		return t, err
	},
	"EXT-X-MEDIA-SEQUENCE": func(payload string) (tag.Tag, error) {
		var t tag.MediaSequence
		err := t.Unmarshal(payload)
		return t, err
	},
	"EXT-X-DISCONTINUITY-SEQUENCE": func(payload string) (tag.Tag, error) {
		var t tag.DiscontinuitySequence
		err := t.Unmarshal(payload)
		return t, err
	},
	"EXT-X-BITRATE": func(payload string) (tag.Tag, error) {
		var t tag.Bitrate
		err := t.Unmarshal(payload)
		return t, err
	},
	"EXT-X-PROGRAM-DATE-TIME": func(payload string) (tag.Tag, error) {
		var t tag.ProgramDateTime
		err := t.Unmarshal(payload)
		return t, err
	},
	"EXT-X-BYTERANGE": func(payload string) (tag.Tag, error) {
		var t tag.ByteRange
		err := t.Unmarshal(payload)
		return t, err
	},
	"EXT-X-KEY": func(payload string) (tag.Tag, error) {
		var t tag.Key
		err := t.Unmarshal(payload)
		return t, err
	},
	"EXT-X-SESSION-KEY": func(payload string) (tag.Tag, error) {
		var t tag.SessionKey
		err := t.Unmarshal(payload)
		return t, err
	},
	"EXT-X-MAP": func(payload string) (tag.Tag, error) {
		var t tag.Map
		err := t.Unmarshal(payload)
		return t, err
	},
	"EXT-X-PART": func(payload string) (tag.Tag, error) {
		var t tag.Part
		err := t.Unmarshal(payload)
		return t, err
	},
	"EXT-X-PART-INF": func(payload string) (tag.Tag, error) {
		var t tag.PartInf
		err := t.Unmarshal(payload)
		return t, err
	},
	"EXT-X-SERVER-CONTROL": func(payload string) (tag.Tag, error) {
		var t tag.ServerControl
		err := t.Unmarshal(payload)
		return t, err
	},
	"EXT-X-SKIP": func(payload string) (tag.Tag, error) {
		var t tag.Skip
		err := t.Unmarshal(payload)
		return t, err
	},
	"EXT-X-START": func(payload string) (tag.Tag, error) {
		var t tag.Start
		err := t.Unmarshal(payload)
		return t, err
	},
	"EXT-X-STREAM-INF": func(payload string) (tag.Tag, error) {
		var t tag.StreamInf
		err := t.Unmarshal(payload)
		return t, err
	},
	"EXT-X-MEDIA": func(payload string) (tag.Tag, error) {
		var t tag.Rendition
		err := t.Unmarshal(payload)
		return t, err
	},
	"EXT-X-RENDITION-REPORT": func(payload string) (tag.Tag, error) {
		var t tag.RenditionReport
		err := t.Unmarshal(payload)
		return t, err
	},
	"EXT-X-I-FRAME-STREAM-INF": func(payload string) (tag.Tag, error) {
		var t tag.IFrameStreamInf
		err := t.Unmarshal(payload)
		return t, err
	},
	"EXT-X-SESSION-DATA": func(payload string) (tag.Tag, error) {
		var t tag.SessionData
		err := t.Unmarshal(payload)
		return t, err
	},
	"EXT-X-PRELOAD-HINT": func(payload string) (tag.Tag, error) {
		var t tag.PreloadHint
		err := t.Unmarshal(payload)
		return t, err
	},
}

// Unmarshal decodes a playlist.
//
// Decoding never fails on individual lines: directives that cannot be
// recognized are returned as diagnostics alongside the tags that decoded
// correctly. The only fatal error is input that is not valid UTF-8 text.
func Unmarshal(buf []byte) (*Playlist, []Unrecognized, error) {
	if !utf8.Valid(buf) {
		return nil, nil, fmt.Errorf("input is not valid UTF-8 text")
	}

	var pl Playlist
	var unrec []Unrecognized

	s := string(buf)

	for {
		var line string
		line, s = primitives.ReadLine(s)
		if line == "" && s == "" {
			break
		}

		line = strings.TrimSpace(line)

		switch {
		case line == "":
			continue

		case line[0] != '#':
			// a URI line not owned by a EXTINF. Variant URIs after
			// EXT-X-STREAM-INF and stray media lines are not part of
			// the tag model.
			continue

		case !strings.HasPrefix(line, "#EXT"):
			// comment (RFC 8216, section 4.1)
			continue
		}

		keyword, payload, _ := strings.Cut(line[1:], ":")

		if keyword == "EXTINF" {
			var uri string
			uri, s = readSegmentURI(s)

			var t tag.SegmentInfo
			if err := t.Unmarshal(payload, uri); err != nil {
				unrec = append(unrec, Unrecognized{Line: line, Err: err})
				continue
			}
			pl.Tags = append(pl.Tags, t)
			continue
		}

		parse, ok := registry[keyword]
		if !ok {
			unrec = append(unrec, Unrecognized{
				Line: line,
				Err:  fmt.Errorf("unknown directive: %s", keyword),
			})
			continue
		}

		t, err := parse(payload)
		if err != nil {
			unrec = append(unrec, Unrecognized{Line: line, Err: err})
			continue
		}
		pl.Tags = append(pl.Tags, t)
	}

	return &pl, unrec, nil
}

// readSegmentURI consumes the URI line that must immediately follow a EXTINF
// directive. It returns an empty URI, leaving the input untouched, when the
// next line is absent or is itself a directive.
func readSegmentURI(s string) (string, string) {
	line, remaining := primitives.ReadLine(s)

	line = strings.TrimSpace(line)
	if line == "" || line[0] == '#' {
		return "", s
	}

	return line, remaining
}
