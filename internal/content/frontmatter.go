package content

import (
	"bytes"
	"fmt"
	"math"
	"strings"

	"gopkg.in/yaml.v3"

	apperrors "github.com/alexisbeaulieu97/folio/pkg/errors"
)

const (
	fenceMarker    = "---"
	wordsPerMinute = 200
)

// ParseFrontMatter decodes the leading "---" delimited YAML block of data
// into out and returns the markdown body that follows it.
func ParseFrontMatter(path string, data []byte, out interface{}) (string, error) {
	data = bytes.TrimPrefix(data, []byte("\ufeff"))
	text := strings.ReplaceAll(string(data), "\r\n", "\n")

	if !strings.HasPrefix(text, fenceMarker+"\n") {
		return "", apperrors.NewParseError(path, 1, fmt.Errorf("missing front matter"))
	}
	rest := text[len(fenceMarker)+1:]

	var header, body string
	switch {
	case strings.HasPrefix(rest, fenceMarker+"\n") || rest == fenceMarker:
		body = strings.TrimPrefix(strings.TrimPrefix(rest, fenceMarker), "\n")
	default:
		end := strings.Index(rest, "\n"+fenceMarker+"\n")
		if end < 0 {
			if !strings.HasSuffix(rest, "\n"+fenceMarker) {
				return "", apperrors.NewParseError(path, 1, fmt.Errorf("unterminated front matter"))
			}
			end = len(rest) - len(fenceMarker) - 1
			header, body = rest[:end], ""
		} else {
			header, body = rest[:end], rest[end+len(fenceMarker)+2:]
		}
	}

	if err := yaml.Unmarshal([]byte(header), out); err != nil {
		// the header starts on line 2 of the file
		line := extractLine(err)
		if line > 0 {
			line++
		}
		return "", apperrors.NewParseError(path, line, err)
	}
	return body, nil
}

// EstimateReadTime estimates reading time at 200 words per minute, never
// less than one minute.
func EstimateReadTime(body string) string {
	words := len(strings.Fields(body))
	minutes := int(math.Ceil(float64(words) / wordsPerMinute))
	if minutes < 1 {
		minutes = 1
	}
	return fmt.Sprintf("%d min read", minutes)
}
