package platylog

import (
	"fmt"
	"strings"
	"time"

	"github.com/valyala/fasttemplate"
)

// Header template placeholder names.
const (
	headerTimeTag  = "time"
	headerLevelTag = "level"
)

// Prefix of the creation-stamp line written as the first line of every
// active log file. Archive names are derived from what follows it.
const creationPrefix = "Created - "

// Archive file naming.
const (
	archiveNamePrefix = "log_"
	archiveNameSuffix = ".txt"
)

// newHeaderTemplate compiles the header layout. Templates use single-brace
// placeholders, e.g. "[{time}] <{level}>".
func newHeaderTemplate(layout string) (*fasttemplate.Template, error) {
	t, err := fasttemplate.NewTemplate(layout, "{", "}")
	if err != nil {
		return nil, fmt.Errorf("failed to compile header template: %w", err)
	}
	return t, nil
}

// renderHeader produces the per-record header, e.g. "[9:5:1] <Info>".
func renderHeader(t *fasttemplate.Template, now time.Time, level Level) string {
	return t.ExecuteString(map[string]interface{}{
		headerTimeTag:  clockString(now),
		headerLevelTag: level.String(),
	})
}

// clockString renders a wall-clock time as H:M:S without zero padding,
// matching the component order used in creation stamps and archive names.
func clockString(t time.Time) string {
	hour, minute, second := t.Clock()
	return fmt.Sprintf("%d:%d:%d", hour, minute, second)
}

// creationLine renders the creation-stamp line for a new active log file.
func creationLine(t time.Time) string {
	return fmt.Sprintf("%s%d. %d. %d. %s", creationPrefix, t.Year(), int(t.Month()), t.Day(), clockString(t))
}

// archiveFileName derives the archive name from an active file's
// creation-stamp line: the prefix is stripped, whitespace removed, and
// colons replaced so the result is a portable file name.
// "Created - 2024. 3. 7. 9:5:1" becomes "log_2024.3.7.9-5-1.txt".
func archiveFileName(line string) (string, error) {
	if !strings.HasPrefix(line, creationPrefix) {
		return "", fmt.Errorf("malformed creation line: %q", line)
	}
	stamp := strings.TrimPrefix(line, creationPrefix)
	stamp = strings.Map(func(r rune) rune {
		switch {
		case r == ' ' || r == '\t' || r == '\r' || r == '\n':
			return -1
		case r == ':':
			return '-'
		default:
			return r
		}
	}, stamp)
	if stamp == "" {
		return "", fmt.Errorf("empty creation stamp in line: %q", line)
	}
	return archiveNamePrefix + stamp + archiveNameSuffix, nil
}
