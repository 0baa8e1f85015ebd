// m3u8check validates M3U8 playlist files.
//
// Usage:
//
//	m3u8check -f playlist.m3u8
//	m3u8check -f playlist.m3u8 -w
//
// With -w, a valid playlist is rewritten in canonical form, atomically.
//
// Exit codes:
//   - 0: playlist is valid
//   - 1: playlist is invalid or could not be read
//   - 2: usage error
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/google/renameio/v2"
	"github.com/gookit/color"
	"github.com/rs/zerolog"

	"github.com/hlskit/gom3u8/pkg/playlist"
)

func main() {
	var file string
	var rewrite bool

	flag.StringVar(&file, "file", "", "path to M3U8 playlist file")
	flag.StringVar(&file, "f", "", "path to M3U8 playlist file (shorthand)")
	flag.BoolVar(&rewrite, "w", false, "rewrite the file in canonical form when valid")
	flag.Parse()

	if file == "" {
		fmt.Fprintln(os.Stderr, "Error: --file is required")
		fmt.Fprintln(os.Stderr, "")
		fmt.Fprintln(os.Stderr, "Usage:")
		fmt.Fprintln(os.Stderr, "  m3u8check -f playlist.m3u8")
		fmt.Fprintln(os.Stderr, "  m3u8check -f playlist.m3u8 -w")
		os.Exit(2)
	}

	logger := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()

	os.Exit(run(logger, file, rewrite))
}

func run(logger zerolog.Logger, file string, rewrite bool) int {
	buf, err := os.ReadFile(file)
	if err != nil {
		logger.Error().Err(err).Str("file", file).Msg("read playlist")
		return 1
	}

	pl, unrec, err := playlist.Unmarshal(buf)
	if err != nil {
		logger.Error().Err(err).Str("file", file).Msg("decode playlist")
		return 1
	}

	for _, u := range unrec {
		logger.Warn().Str("line", u.Line).Err(u.Err).Msg("unrecognized line")
	}

	verrs := pl.Validate()
	for _, verr := range verrs {
		logger.Error().Str("file", file).Msg(verr.Error())
	}

	if len(unrec) != 0 || len(verrs) != 0 {
		color.Red.Printf("✗ %s is invalid (%d unrecognized lines, %d violations)\n",
			file, len(unrec), len(verrs))
		return 1
	}

	if rewrite {
		if err := writeCanonical(file, pl); err != nil {
			logger.Error().Err(err).Str("file", file).Msg("rewrite playlist")
			return 1
		}
		logger.Info().Str("file", file).Msg("rewritten in canonical form")
	}

	color.Green.Printf("✓ %s is valid\n", file)
	return 0
}

// writeCanonical atomically replaces the file with its canonical encoding.
// renameio writes to a temporary file and fsyncs before renaming, so a
// crash can never leave a half-written playlist behind.
func writeCanonical(path string, pl *playlist.Playlist) error {
	pending, err := renameio.NewPendingFile(path)
	if err != nil {
		return fmt.Errorf("create pending file: %w", err)
	}
	defer pending.Cleanup() //nolint:errcheck

	if _, err := pending.Write(pl.Marshal()); err != nil {
		return fmt.Errorf("write playlist: %w", err)
	}

	return pending.CloseAtomicallyReplace()
}
