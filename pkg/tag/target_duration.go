package tag

import (
	"strconv"
	"strings"
)

// TargetDuration is a EXT-X-TARGETDURATION tag.
type TargetDuration struct {
	// duration in seconds
	Duration int
}

func (TargetDuration) isTag() {}

// Unmarshal decodes the tag payload.
func (t *TargetDuration) Unmarshal(v string) error {
	// some servers emit a fractional value; the integer part wins
	if i := strings.IndexByte(v, '.'); i >= 0 {
		v = v[:i]
	}

	tmp, err := strconv.ParseUint(v, 10, 31)
	if err != nil {
		return err
	}
	t.Duration = int(tmp)

	return nil
}

// Marshal implements Tag.
func (t TargetDuration) Marshal() string {
	return "#EXT-X-TARGETDURATION:" + strconv.FormatInt(int64(t.Duration), 10) + "\n"
}
