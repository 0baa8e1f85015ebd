package tag

import (
	"strconv"
)

// DiscontinuitySequence is a EXT-X-DISCONTINUITY-SEQUENCE tag.
type DiscontinuitySequence struct {
	Sequence int
}

func (DiscontinuitySequence) isTag() {}

// Unmarshal decodes the tag payload.
func (t *DiscontinuitySequence) Unmarshal(v string) error {
	tmp, err := strconv.ParseUint(v, 10, 31)
	if err != nil {
		return err
	}
	t.Sequence = int(tmp)

	return nil
}

// Marshal implements Tag.
func (t DiscontinuitySequence) Marshal() string {
	return "#EXT-X-DISCONTINUITY-SEQUENCE:" + strconv.FormatInt(int64(t.Sequence), 10) + "\n"
}
