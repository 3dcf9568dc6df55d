package registry

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"
)

var ErrInvalidListEntry = errors.New("invalid domain list entry")

// ReadList parses a registered-domains list: one name per line, blank lines
// and '#' comments ignored. Only the first comma or whitespace separated
// field of a line is used, so CSV exports with a leading domain column work.
// A "domain" header line is skipped.
func ReadList(r io.Reader) ([]string, error) {
	var out []string
	sc := bufio.NewScanner(r)
	line := 0
	for sc.Scan() {
		line++
		text := strings.TrimSpace(sc.Text())
		if i := strings.IndexByte(text, '#'); i >= 0 {
			text = strings.TrimSpace(text[:i])
		}
		if text == "" {
			continue
		}
		if i := strings.IndexAny(text, ", \t;"); i >= 0 {
			text = text[:i]
		}
		text = strings.TrimSuffix(strings.ToLower(text), ".")
		if text == "domain" {
			continue
		}
		if !strings.Contains(text, ".") || strings.HasPrefix(text, ".") {
			return nil, fmt.Errorf("%w: line %d: %q", ErrInvalidListEntry, line, text)
		}
		out = append(out, text)
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	return out, nil
}
