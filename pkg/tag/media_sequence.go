package tag

import (
	"strconv"
)

// MediaSequence is a EXT-X-MEDIA-SEQUENCE tag.
type MediaSequence struct {
	Sequence int
}

func (MediaSequence) isTag() {}

// Unmarshal decodes the tag payload.
func (t *MediaSequence) Unmarshal(v string) error {
	tmp, err := strconv.ParseUint(v, 10, 31)
	if err != nil {
		return err
	}
	t.Sequence = int(tmp)

	return nil
}

// Marshal implements Tag.
func (t MediaSequence) Marshal() string {
	return "#EXT-X-MEDIA-SEQUENCE:" + strconv.FormatInt(int64(t.Sequence), 10) + "\n"
}
