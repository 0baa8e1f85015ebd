package tag

// M3U is the EXTM3U tag that marks a playlist document.
type M3U struct{}

func (M3U) isTag() {}

// Marshal implements Tag.
func (M3U) Marshal() string {
	return "#EXTM3U\n"
}

// Endlist is a EXT-X-ENDLIST tag.
type Endlist struct{}

func (Endlist) isTag() {}

// Marshal implements Tag.
func (Endlist) Marshal() string {
	return "#EXT-X-ENDLIST\n"
}

// Discontinuity is a EXT-X-DISCONTINUITY tag.
type Discontinuity struct{}

func (Discontinuity) isTag() {}

// Marshal implements Tag.
func (Discontinuity) Marshal() string {
	return "#EXT-X-DISCONTINUITY\n"
}

// Gap is a EXT-X-GAP tag.
type Gap struct{}

func (Gap) isTag() {}

// Marshal implements Tag.
func (Gap) Marshal() string {
	return "#EXT-X-GAP\n"
}

// IndependentSegments is a EXT-X-INDEPENDENT-SEGMENTS tag.
type IndependentSegments struct{}

func (IndependentSegments) isTag() {}

// Marshal implements Tag.
func (IndependentSegments) Marshal() string {
	return "#EXT-X-INDEPENDENT-SEGMENTS\n"
}
