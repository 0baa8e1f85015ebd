// Package primitives contains low-level codecs shared by tag implementations.
package primitives

import (
	"fmt"
	"strings"
)

// Attributes is a decoded attribute list. Bare flags (fields without '=')
// map to an empty value.
type Attributes map[string]string

// AttributesUnmarshal decodes an attribute list.
//
// Fields are separated by top-level commas only: commas inside double-quoted
// values do not split. Each field is cut at its first '='. Surrounding quotes
// are stripped from values; inner characters are kept verbatim.
func AttributesUnmarshal(v string) (Attributes, error) {
	ret := make(Attributes)

	for len(v) > 0 {
		var field string
		var err error
		field, v, err = cutField(v)
		if err != nil {
			return nil, err
		}

		if field == "" {
			continue
		}

		key, val, found := strings.Cut(field, "=")
		if !found {
			// bare flag
			ret[key] = ""
			continue
		}

		if len(val) >= 2 && val[0] == '"' && val[len(val)-1] == '"' {
			val = val[1 : len(val)-1]
		}
		ret[key] = val
	}

	return ret, nil
}

// cutField returns the next top-level comma-separated field and the rest.
func cutField(v string) (string, string, error) {
	inQuote := false

	for i := 0; i < len(v); i++ {
		switch v[i] {
		case '"':
			inQuote = !inQuote

		case ',':
			if !inQuote {
				return v[:i], v[i+1:], nil
			}
		}
	}

	if inQuote {
		return "", "", fmt.Errorf("unterminated quoted value")
	}

	return v, "", nil
}
