package primitives

import (
	"strconv"
	"strings"
)

// ByteRange is a sub-range of a resource, encoded as "length[@start]".
type ByteRange struct {
	Length uint64
	Start  *uint64
}

// Unmarshal decodes a byte range.
func (b *ByteRange) Unmarshal(v string) error {
	lengthStr, startStr, found := strings.Cut(v, "@")

	var err error
	b.Length, err = strconv.ParseUint(lengthStr, 10, 64)
	if err != nil {
		return err
	}

	if found {
		var start uint64
		start, err = strconv.ParseUint(startStr, 10, 64)
		if err != nil {
			return err
		}
		b.Start = &start
	}

	return nil
}

// Marshal encodes a byte range.
func (b ByteRange) Marshal() string {
	ret := strconv.FormatUint(b.Length, 10)

	if b.Start != nil {
		ret += "@" + strconv.FormatUint(*b.Start, 10)
	}

	return ret
}
