package tag

import (
	"strconv"
)

// Version is a EXT-X-VERSION tag.
type Version struct {
	Version int
}

func (Version) isTag() {}

// Unmarshal decodes the tag payload. Whether the version is inside the
// supported range is a validation concern, not a decoding one.
func (t *Version) Unmarshal(v string) error {
	tmp, err := strconv.ParseInt(v, 10, 32)
	if err != nil {
		return err
	}
	t.Version = int(tmp)

	return nil
}

// Marshal implements Tag.
func (t Version) Marshal() string {
	return "#EXT-X-VERSION:" + strconv.FormatInt(int64(t.Version), 10) + "\n"
}
