package tag

import (
	"strconv"
)

// Bitrate is a EXT-X-BITRATE tag.
type Bitrate struct {
	// bitrate in bits per second. Negative values decode fine and are
	// rejected by validation.
	Bitrate int
}

func (Bitrate) isTag() {}

// Unmarshal decodes the tag payload.
func (t *Bitrate) Unmarshal(v string) error {
	tmp, err := strconv.ParseInt(v, 10, 32)
	if err != nil {
		return err
	}
	t.Bitrate = int(tmp)

	return nil
}

// Marshal implements Tag.
func (t Bitrate) Marshal() string {
	return "#EXT-X-BITRATE:" + strconv.FormatInt(int64(t.Bitrate), 10) + "\n"
}
