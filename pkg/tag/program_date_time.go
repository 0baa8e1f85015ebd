package tag

// ProgramDateTime is a EXT-X-PROGRAM-DATE-TIME tag.
//
// The timestamp is kept verbatim: HLS allows several ISO 8601 time zone
// spellings and normalizing them would not be value-preserving.
type ProgramDateTime struct {
	DateTime string
}

func (ProgramDateTime) isTag() {}

// Unmarshal decodes the tag payload.
func (t *ProgramDateTime) Unmarshal(v string) error {
	t.DateTime = v
	return nil
}

// Marshal implements Tag.
func (t ProgramDateTime) Marshal() string {
	return "#EXT-X-PROGRAM-DATE-TIME:" + t.DateTime + "\n"
}
