package primitives

import (
	"strings"
)

// ReadLine returns the next line and the remaining text. A trailing carriage
// return is removed, so both LF and CRLF input are accepted.
func ReadLine(s string) (string, string) {
	line, remaining, found := strings.Cut(s, "\n")
	if !found {
		return s, ""
	}

	if len(line) != 0 && line[len(line)-1] == '\r' {
		line = line[:len(line)-1]
	}

	return line, remaining
}
