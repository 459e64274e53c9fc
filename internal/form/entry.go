package form

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"
)

// ErrMalformedLine is returned by ReadEntries for a line without "=".
var ErrMalformedLine = errors.New("malformed entry line")

// Entry is one submitted field: a flat key and its raw value.
type Entry struct {
	Key   string
	Value string
}

// String renders the entry as key=value.
func (e Entry) String() string {
	return e.Key + "=" + e.Value
}

// ReadEntries reads one key=value entry per line. Blank lines and lines
// starting with "#" are skipped. The key is trimmed, the value is kept as is.
func ReadEntries(r io.Reader) ([]Entry, error) {
	var entries []Entry

	sc := bufio.NewScanner(r)
	line := 0

	for sc.Scan() {
		line++

		text := strings.TrimSuffix(sc.Text(), "\r")
		trimmed := strings.TrimSpace(text)

		if trimmed == "" || strings.HasPrefix(trimmed, "#") {
			continue
		}

		key, value, ok := strings.Cut(text, "=")
		if !ok || strings.TrimSpace(key) == "" {
			return nil, fmt.Errorf("%w at line %d: %q", ErrMalformedLine, line, text)
		}

		entries = append(entries, Entry{Key: strings.TrimSpace(key), Value: value})
	}

	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("failed to read entries: %w", err)
	}

	return entries, nil
}

// WriteEntries writes entries in the format read by ReadEntries.
func WriteEntries(w io.Writer, entries []Entry) error {
	bw := bufio.NewWriter(w)

	for _, e := range entries {
		if _, err := bw.WriteString(e.String() + "\n"); err != nil {
			return err
		}
	}

	return bw.Flush()
}
