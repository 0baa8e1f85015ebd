package main

import (
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
)

func writeTemp(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "playlist.m3u8")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestRunValid(t *testing.T) {
	path := writeTemp(t, "#EXTM3U\n"+
		"#EXT-X-VERSION:7\n"+
		"#EXT-X-TARGETDURATION:10\n"+
		"#EXTINF:9.50000,\n"+
		"segment1.ts\n"+
		"#EXT-X-ENDLIST\n")

	logger := zerolog.New(io.Discard)
	require.Equal(t, 0, run(logger, path, false))
}

func TestRunInvalid(t *testing.T) {
	path := writeTemp(t, "#EXTM3U\n"+
		"#EXT-X-VERSION:99\n"+
		"#EXT-X-TARGETDURATION:10\n")

	logger := zerolog.New(io.Discard)
	require.Equal(t, 1, run(logger, path, false))
}

func TestRunMissingFile(t *testing.T) {
	logger := zerolog.New(io.Discard)
	require.Equal(t, 1, run(logger, filepath.Join(t.TempDir(), "absent.m3u8"), false))
}

func TestRunRewrite(t *testing.T) {
	path := writeTemp(t, "#EXTM3U\r\n"+
		"  #EXT-X-VERSION:7\r\n"+
		"#EXT-X-TARGETDURATION:10\r\n"+
		"#EXTINF:9.5,\r\n"+
		"segment1.ts\r\n"+
		"#EXT-X-ENDLIST\r\n")

	logger := zerolog.New(io.Discard)
	require.Equal(t, 0, run(logger, path, true))

	buf, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Equal(t, "#EXTM3U\n"+
		"#EXT-X-VERSION:7\n"+
		"#EXT-X-TARGETDURATION:10\n"+
		"#EXTINF:9.50000,\n"+
		"segment1.ts\n"+
		"#EXT-X-ENDLIST\n", string(buf))
}

func TestRunInvalidNoRewrite(t *testing.T) {
	orig := "#EXTM3U\n#EXT-X-TARGETDURATION:0\n"
	path := writeTemp(t, orig)

	logger := zerolog.New(io.Discard)
	require.Equal(t, 1, run(logger, path, true))

	buf, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Equal(t, orig, string(buf))
}
