package playlist

import (
	"fmt"
	"time"

	"github.com/hlskit/gom3u8/pkg/tag"
)

// protocol versions accepted by validation
const (
	minSupportedVersion = 1
	maxSupportedVersion = 7
)

// ValidationError is a semantic rule violation found in a playlist.
//
// Violations are plain data, not control flow: validation collects every
// violation and never aborts.
type ValidationError interface {
	error
	validationError()
}

// MissingStreamMarkerError reports a playlist without a EXTM3U tag.
type MissingStreamMarkerError struct{}

func (MissingStreamMarkerError) validationError() {}

func (MissingStreamMarkerError) Error() string {
	return "EXTM3U marker is missing"
}

// InvalidVersionError reports a EXT-X-VERSION outside the supported range.
type InvalidVersionError struct {
	Version int
}

func (InvalidVersionError) validationError() {}

func (e InvalidVersionError) Error() string {
	return fmt.Sprintf("unsupported version (%d): must be between %d and %d",
		e.Version, minSupportedVersion, maxSupportedVersion)
}

// InvalidDurationError reports a non-positive segment duration.
type InvalidDurationError struct {
	Duration time.Duration
}

func (InvalidDurationError) validationError() {}

func (e InvalidDurationError) Error() string {
	return fmt.Sprintf("invalid segment duration (%g): must be positive", e.Duration.Seconds())
}

// InvalidTargetDurationError reports a zero EXT-X-TARGETDURATION.
type InvalidTargetDurationError struct{}

func (InvalidTargetDurationError) validationError() {}

func (InvalidTargetDurationError) Error() string {
	return "target duration must not be zero"
}

// InvalidKeyMethodError reports a nonstandard encryption method.
type InvalidKeyMethodError struct {
	Method string
}

func (InvalidKeyMethodError) validationError() {}

func (e InvalidKeyMethodError) Error() string {
	return fmt.Sprintf("invalid key method (%s): must be NONE, AES-128 or SAMPLE-AES", e.Method)
}

// InvalidMapURIError reports a EXT-X-MAP without a URI.
type InvalidMapURIError struct{}

func (InvalidMapURIError) validationError() {}

func (InvalidMapURIError) Error() string {
	return "map URI is empty"
}

// InvalidProgramDateTimeError reports a EXT-X-PROGRAM-DATE-TIME without a
// timestamp.
type InvalidProgramDateTimeError struct{}

func (InvalidProgramDateTimeError) validationError() {}

func (InvalidProgramDateTimeError) Error() string {
	return "program date-time is empty"
}

// InvalidBitrateError reports a negative EXT-X-BITRATE.
type InvalidBitrateError struct {
	Bitrate int
}

func (InvalidBitrateError) validationError() {}

func (e InvalidBitrateError) Error() string {
	return fmt.Sprintf("invalid bitrate (%d): must not be negative", e.Bitrate)
}

// InvalidStartOffsetError reports a EXT-X-START without a time offset.
type InvalidStartOffsetError struct{}

func (InvalidStartOffsetError) validationError() {}

func (InvalidStartOffsetError) Error() string {
	return "start time offset is empty"
}

// InvalidSkipCountError reports a EXT-X-SKIP with a non-positive segment
// count.
type InvalidSkipCountError struct {
	SkippedSegments int
}

func (InvalidSkipCountError) validationError() {}

func (e InvalidSkipCountError) Error() string {
	return fmt.Sprintf("invalid skip count (%d): must be positive", e.SkippedSegments)
}

// InvalidPreloadHintURIError reports a EXT-X-PRELOAD-HINT without a URI.
type InvalidPreloadHintURIError struct{}

func (InvalidPreloadHintURIError) validationError() {}

func (InvalidPreloadHintURIError) Error() string {
	return "preload hint URI is empty"
}

// InvalidRenditionReportURIError reports a EXT-X-RENDITION-REPORT without a
// URI.
type InvalidRenditionReportURIError struct{}

func (InvalidRenditionReportURIError) validationError() {}

func (InvalidRenditionReportURIError) Error() string {
	return "rendition report URI is empty"
}

// Validate checks the playlist against the structural rules of RFC 8216 and
// the low-latency extensions.
//
// It returns every violation found; an empty result means the playlist is
// valid. Tags without a rule pass unconditionally: unknown-but-parseable
// content is permitted on purpose, and new rules are added per tag.
func (p Playlist) Validate() []ValidationError {
	var errs []ValidationError

	marker := false
	for _, t := range p.Tags {
		if _, ok := t.(tag.M3U); ok {
			marker = true
			break
		}
	}
	if !marker {
		errs = append(errs, MissingStreamMarkerError{})
	}

	for _, t := range p.Tags {
		if err := validateTag(t); err != nil {
			errs = append(errs, err)
		}
	}

	return errs
}

func validateTag(t tag.Tag) ValidationError {
	switch t := t.(type) {
	case tag.Version:
		if t.Version < minSupportedVersion || t.Version > maxSupportedVersion {
			return InvalidVersionError{Version: t.Version}
		}

	case tag.SegmentInfo:
		if t.Duration <= 0 {
			return InvalidDurationError{Duration: t.Duration}
		}

	case tag.TargetDuration:
		if t.Duration == 0 {
			return InvalidTargetDurationError{}
		}

	case tag.Key:
		switch t.Method {
		case tag.KeyMethodNone, tag.KeyMethodAES128, tag.KeyMethodSampleAES:
		default:
			return InvalidKeyMethodError{Method: string(t.Method)}
		}

	case tag.Map:
		if t.URI == "" {
			return InvalidMapURIError{}
		}

	case tag.ProgramDateTime:
		if t.DateTime == "" {
			return InvalidProgramDateTimeError{}
		}

	case tag.Bitrate:
		if t.Bitrate < 0 {
			return InvalidBitrateError{Bitrate: t.Bitrate}
		}

	case tag.Start:
		if t.TimeOffset == "" {
			return InvalidStartOffsetError{}
		}

	case tag.Skip:
		if t.SkippedSegments <= 0 {
			return InvalidSkipCountError{SkippedSegments: t.SkippedSegments}
		}

	case tag.PreloadHint:
		if t.URI == "" {
			return InvalidPreloadHintURIError{}
		}

	case tag.RenditionReport:
		if t.URI == "" {
			return InvalidRenditionReportURIError{}
		}
	}

	return nil
}
