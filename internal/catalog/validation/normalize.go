package validation

import (
	"strings"
	"time"
)

// DateLayout は正規化後の日付形式
const DateLayout = "2006-01-02"

// 受け付ける日付表記（上から順に試す）
var dateLayouts = []string{
	DateLayout,
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
	"2006-01-02 15:04:05",
	"2006-1-2",
	"2006/01/02",
	"2006/1/2",
	"01/02/2006",
	"1/2/2006",
	"Jan 2, 2006",
	"January 2, 2006",
	"2 Jan 2006",
	"2 January 2006",
	time.RFC1123Z,
	time.RFC1123,
}

// SanitizeText trims surrounding whitespace. A nil input yields "".
func SanitizeText(s *string) string {
	if s == nil {
		return ""
	}
	return strings.TrimSpace(*s)
}

// NormalizeDate returns the YYYY-MM-DD form of s, or "" when s is empty or
// cannot be parsed. The calendar date is taken as written; timestamps with
// an offset are not shifted to UTC.
func NormalizeDate(s string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return ""
	}
	t, ok := parseDate(s)
	if !ok {
		return ""
	}
	return t.Format(DateLayout)
}

func parseDate(s string) (time.Time, bool) {
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}
