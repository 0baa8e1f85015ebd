package tag

// standard playlist types
const (
	PlaylistTypeEvent = "EVENT"
	PlaylistTypeVOD   = "VOD"
)

// PlaylistType is a EXT-X-PLAYLIST-TYPE tag.
type PlaylistType struct {
	Type string
}

func (PlaylistType) isTag() {}

// Unmarshal decodes the tag payload.
func (t *PlaylistType) Unmarshal(v string) error {
	t.Type = v
	return nil
}

// Marshal implements Tag.
func (t PlaylistType) Marshal() string {
	return "#EXT-X-PLAYLIST-TYPE:" + t.Type + "\n"
}
