package tag

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func ptrOf[T any](v T) *T {
	return &v
}

func TestKeyUnmarshal(t *testing.T) {
	for _, ca := range []struct {
		name  string
		input string
		dec   Key
	}{
		{
			"full",
			"METHOD=AES-128,URI=\"https://example.com/key\",IV=0x1234567890ABCDEF," +
				"KEYFORMAT=\"identity\",KEYFORMATVERSIONS=\"1\"",
			Key{
				Method:            KeyMethodAES128,
				URI:               "https://example.com/key",
				IV:                "0x1234567890ABCDEF",
				KeyFormat:         "identity",
				KeyFormatVersions: "1",
			},
		},
		{
			"reordered",
			"IV=0x1234567890ABCDEF,URI=\"https://example.com/key\",METHOD=AES-128",
			Key{
				Method: KeyMethodAES128,
				URI:    "https://example.com/key",
				IV:     "0x1234567890ABCDEF",
			},
		},
		{
			"nonstandard method decodes",
			"METHOD=FAKE,URI=\"k.bin\"",
			Key{
				Method: "FAKE",
				URI:    "k.bin",
			},
		},
		{
			"unknown attribute ignored",
			"METHOD=NONE,X-CUSTOM=\"whatever\"",
			Key{
				Method: KeyMethodNone,
			},
		},
		{
			"quoted URI with comma and marker",
			"METHOD=AES-128,URI=\"key.bin?ids=1,2#frag\"",
			Key{
				Method: KeyMethodAES128,
				URI:    "key.bin?ids=1,2#frag",
			},
		},
	} {
		t.Run(ca.name, func(t *testing.T) {
			var dec Key
			err := dec.Unmarshal(ca.input)
			require.NoError(t, err)
			require.Equal(t, ca.dec, dec)
		})
	}
}

func TestPartUnmarshal(t *testing.T) {
	var dec Part
	err := dec.Unmarshal("DURATION=1.5,URI=\"part1.mp4\",INDEPENDENT=YES,BYTERANGE=\"456@123\",GAP")
	require.NoError(t, err)
	require.Equal(t, Part{
		Duration:        1500 * time.Millisecond,
		URI:             "part1.mp4",
		Independent:     true,
		ByteRangeLength: ptrOf(uint64(456)),
		ByteRangeStart:  ptrOf(uint64(123)),
		Gap:             true,
	}, dec)
}

func TestPartUnmarshalErrors(t *testing.T) {
	for _, ca := range []struct {
		name  string
		input string
	}{
		{"missing duration", "URI=\"part1.mp4\""},
		{"missing URI", "DURATION=1.5"},
		{"malformed duration", "DURATION=abc,URI=\"part1.mp4\""},
	} {
		t.Run(ca.name, func(t *testing.T) {
			var dec Part
			require.Error(t, dec.Unmarshal(ca.input))
		})
	}
}

func TestStreamInfUnmarshal(t *testing.T) {
	for _, ca := range []struct {
		name  string
		input string
		dec   StreamInf
	}{
		{
			"full",
			"BANDWIDTH=500000,AVERAGE-BANDWIDTH=400000,RESOLUTION=640x360," +
				"CODECS=\"avc1.42c01e,mp4a.40.2\",FRAME-RATE=29.970,AUDIO=\"aud\"",
			StreamInf{
				Bandwidth:        500000,
				AverageBandwidth: ptrOf(400000),
				Resolution:       "640x360",
				Codecs:           []string{"avc1.42c01e", "mp4a.40.2"},
				FrameRate:        ptrOf(29.97),
				Audio:            "aud",
			},
		},
		{
			"reordered and sparse",
			"CODECS=\"avc1.42c01e\",BANDWIDTH=500000",
			StreamInf{
				Bandwidth: 500000,
				Codecs:    []string{"avc1.42c01e"},
			},
		},
		{
			"malformed optional degrades to absent",
			"BANDWIDTH=500000,FRAME-RATE=abc",
			StreamInf{
				Bandwidth: 500000,
			},
		},
	} {
		t.Run(ca.name, func(t *testing.T) {
			var dec StreamInf
			err := dec.Unmarshal(ca.input)
			require.NoError(t, err)
			require.Equal(t, ca.dec, dec)
		})
	}
}

func TestStreamInfUnmarshalMissingBandwidth(t *testing.T) {
	var dec StreamInf
	require.Error(t, dec.Unmarshal("RESOLUTION=640x360"))
}

func TestServerControlUnmarshal(t *testing.T) {
	var dec ServerControl
	err := dec.Unmarshal("CAN-BLOCK-RELOAD=YES,PART-HOLD-BACK=1.0,CAN-SKIP-UNTIL=24.0,CAN-SKIP-DATERANGES=YES")
	require.NoError(t, err)
	require.Equal(t, ServerControl{
		CanBlockReload:    true,
		PartHoldBack:      ptrOf(1 * time.Second),
		CanSkipUntil:      ptrOf(24 * time.Second),
		CanSkipDateranges: true,
	}, dec)
}

func TestServerControlMarshalNoLeadingComma(t *testing.T) {
	enc := ServerControl{
		PartHoldBack: ptrOf(1 * time.Second),
	}.Marshal()
	require.Equal(t, "#EXT-X-SERVER-CONTROL:PART-HOLD-BACK=1.00000\n", enc)
}

func TestSkipUnmarshal(t *testing.T) {
	var dec Skip
	err := dec.Unmarshal("SKIPPED-SEGMENTS=0,RECENTLY-REMOVED-DATERANGES=\"id1\"")
	require.NoError(t, err)
	require.Equal(t, Skip{
		SkippedSegments:           0,
		RecentlyRemovedDateranges: "id1",
	}, dec)

	require.Error(t, dec.Unmarshal("RECENTLY-REMOVED-DATERANGES=\"id1\""))
}

func TestRenditionUnmarshal(t *testing.T) {
	var dec Rendition
	err := dec.Unmarshal("TYPE=AUDIO,GROUP-ID=\"audio\",NAME=\"English\",LANGUAGE=\"en\"," +
		"DEFAULT=YES,AUTOSELECT=YES,URI=\"audio_en.m3u8\"")
	require.NoError(t, err)
	require.Equal(t, Rendition{
		Type:       RenditionTypeAudio,
		GroupID:    "audio",
		Name:       "English",
		Language:   "en",
		Default:    ptrOf(true),
		Autoselect: ptrOf(true),
		URI:        "audio_en.m3u8",
	}, dec)

	var missingType Rendition
	require.Error(t, missingType.Unmarshal("GROUP-ID=\"audio\""))

	var missingGroup Rendition
	require.Error(t, missingGroup.Unmarshal("TYPE=AUDIO"))
}

func TestSegmentInfoUnmarshal(t *testing.T) {
	var dec SegmentInfo
	err := dec.Unmarshal("9.5,Title", "segment1.ts")
	require.NoError(t, err)
	require.Equal(t, SegmentInfo{
		Duration: 9500 * time.Millisecond,
		Title:    "Title",
		URI:      "segment1.ts",
	}, dec)

	var noTitle SegmentInfo
	err = noTitle.Unmarshal("2.0", "seg.ts")
	require.NoError(t, err)
	require.Equal(t, "", noTitle.Title)

	var bad SegmentInfo
	require.Error(t, bad.Unmarshal("abc,Title", "segment1.ts"))
	require.Error(t, bad.Unmarshal("9.5,Title", ""))
}

func TestTargetDurationUnmarshalFractional(t *testing.T) {
	var dec TargetDuration
	err := dec.Unmarshal("10.5")
	require.NoError(t, err)
	require.Equal(t, 10, dec.Duration)
}

func TestMarshal(t *testing.T) {
	for _, ca := range []struct {
		name string
		tag  Tag
		enc  string
	}{
		{
			"m3u",
			M3U{},
			"#EXTM3U\n",
		},
		{
			"version",
			Version{Version: 3},
			"#EXT-X-VERSION:3\n",
		},
		{
			"key",
			Key{Method: KeyMethodAES128, URI: "k.bin", IV: "0x00"},
			"#EXT-X-KEY:METHOD=AES-128,URI=\"k.bin\",IV=0x00\n",
		},
		{
			"map with byterange",
			Map{URI: "init.mp4", ByteRangeLength: ptrOf(uint64(800)), ByteRangeStart: ptrOf(uint64(0))},
			"#EXT-X-MAP:URI=\"init.mp4\",BYTERANGE=\"800@0\"\n",
		},
		{
			"segment info",
			SegmentInfo{Duration: 9500 * time.Millisecond, Title: "Title", URI: "segment1.ts"},
			"#EXTINF:9.50000,Title\nsegment1.ts\n",
		},
		{
			"byte range without start",
			ByteRange{Length: 500},
			"#EXT-X-BYTERANGE:500\n",
		},
		{
			"skip",
			Skip{SkippedSegments: 3},
			"#EXT-X-SKIP:SKIPPED-SEGMENTS=3\n",
		},
		{
			"start",
			Start{TimeOffset: "0.5", Precise: ptrOf(true)},
			"#EXT-X-START:TIME-OFFSET=0.5,PRECISE=YES\n",
		},
		{
			"preload hint",
			PreloadHint{Type: "PART", URI: "part5.mp4", ByteRangeStart: ptrOf(uint64(43523))},
			"#EXT-X-PRELOAD-HINT:TYPE=PART,URI=\"part5.mp4\",BYTERANGE-START=43523\n",
		},
	} {
		t.Run(ca.name, func(t *testing.T) {
			require.Equal(t, ca.enc, ca.tag.Marshal())
		})
	}
}
