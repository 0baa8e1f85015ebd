// Package tag implements the directive tags of M3U8 playlists.
//
// Each HLS directive (RFC 8216 plus the low-latency extensions) is
// represented by its own type. The set is closed: every type implements the
// Tag interface and nothing outside this package can. Each tag encodes
// itself into its canonical line form; attribute-bearing tags also decode
// themselves from an attribute-list payload.
package tag

// Tag is a single M3U8 directive.
type Tag interface {
	// Marshal encodes the tag into its canonical line form, including the
	// leading marker and a trailing newline.
	Marshal() string

	isTag()
}

func boolValue(v string) bool {
	return v == "YES"
}

func yesNo(v bool) string {
	if v {
		return "YES"
	}
	return "NO"
}
