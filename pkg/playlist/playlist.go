// Package playlist decodes, validates and encodes M3U8 playlists as ordered
// tag sequences.
//
// Decoding and validation are independent passes: a playlist decodes into a
// usable tag sequence regardless of whether it satisfies the structural
// rules of RFC 8216, and validation reports every violation instead of
// stopping at the first. Tags and playlists are never mutated after
// construction, so the same value can be validated or encoded concurrently.
package playlist

import (
	"strings"

	"github.com/hlskit/gom3u8/pkg/tag"
)

// Playlist is an ordered sequence of tags.
//
// Order is significant: it is the only encoding of segment ordering and of
// discontinuity and sequence-number relationships. Two playlists are equal
// when their tag sequences are element-wise equal.
type Playlist struct {
	Tags []tag.Tag
}

// Marshal encodes the playlist into its canonical text form.
//
// Encoding is total: any playlist whose tags are within their legal field
// domains produces text that decodes back to an equal playlist.
func (p Playlist) Marshal() []byte {
	var ret strings.Builder

	for _, t := range p.Tags {
		ret.WriteString(t.Marshal())
	}

	return []byte(ret.String())
}
