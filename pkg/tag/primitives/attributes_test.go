package primitives

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestAttributesUnmarshal(t *testing.T) {
	for _, ca := range []struct {
		name  string
		input string
		attrs Attributes
	}{
		{
			"plain",
			"BANDWIDTH=1234,RESOLUTION=1280x720",
			Attributes{
				"BANDWIDTH":  "1234",
				"RESOLUTION": "1280x720",
			},
		},
		{
			"quoted comma",
			"CODECS=\"avc1.42c01e,mp4a.40.2\",BANDWIDTH=1234",
			Attributes{
				"CODECS":    "avc1.42c01e,mp4a.40.2",
				"BANDWIDTH": "1234",
			},
		},
		{
			"quoted marker and delimiters",
			"URI=\"seg#1.ts?a=b,c\",TITLE=\"#not a directive\"",
			Attributes{
				"URI":   "seg#1.ts?a=b,c",
				"TITLE": "#not a directive",
			},
		},
		{
			"bare flag",
			"GAP,DURATION=1.5",
			Attributes{
				"GAP":      "",
				"DURATION": "1.5",
			},
		},
		{
			"equals inside unquoted value",
			"URI=seg.ts?a=b",
			Attributes{
				"URI": "seg.ts?a=b",
			},
		},
		{
			"empty quoted value",
			"URI=\"\"",
			Attributes{
				"URI": "",
			},
		},
		{
			"empty",
			"",
			Attributes{},
		},
	} {
		t.Run(ca.name, func(t *testing.T) {
			attrs, err := AttributesUnmarshal(ca.input)
			require.NoError(t, err)
			require.Equal(t, ca.attrs, attrs)
		})
	}
}

func TestAttributesUnmarshalError(t *testing.T) {
	_, err := AttributesUnmarshal("URI=\"unterminated")
	require.Error(t, err)
}
