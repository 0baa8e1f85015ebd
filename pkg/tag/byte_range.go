package tag

import (
	"github.com/hlskit/gom3u8/pkg/tag/primitives"
)

// ByteRange is a EXT-X-BYTERANGE tag.
type ByteRange struct {
	// length in bytes
	Length uint64

	// start offset; when absent the range continues the previous one
	Start *uint64
}

func (ByteRange) isTag() {}

// Unmarshal decodes the tag payload.
func (t *ByteRange) Unmarshal(v string) error {
	var br primitives.ByteRange
	err := br.Unmarshal(v)
	if err != nil {
		return err
	}

	t.Length = br.Length
	t.Start = br.Start

	return nil
}

// Marshal implements Tag.
func (t ByteRange) Marshal() string {
	return "#EXT-X-BYTERANGE:" + primitives.ByteRange{
		Length: t.Length,
		Start:  t.Start,
	}.Marshal() + "\n"
}
