package contract

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

// Absolute date formats accepted on the command line.
var absoluteDateFormats = []string{
	time.RFC3339,
	"2006-01-02",
}

// Matches "N [units] ago", e.g. "2 years ago", "3 months ago", "1 week ago".
var relativeTimeRe = regexp.MustCompile(`^(\d+)\s+(year|month|week|day|hour|minute)s?\s+ago$`)

// ParseDateInput converts an absolute date string or a relative phrase like
// "30 days ago" into a time.Time. Date-only values are interpreted in the
// host's local zone, matching how record timestamps are bucketed.
func ParseDateInput(s string, now time.Time) (time.Time, error) {
	s = strings.TrimSpace(s)
	for _, layout := range absoluteDateFormats {
		if t, err := time.ParseInLocation(layout, s, time.Local); err == nil {
			return t, nil
		}
	}
	return parseRelativeTime(s, now)
}

// parseRelativeTime converts strings like "2 years ago" into a time.Time
// in the past.
func parseRelativeTime(s string, now time.Time) (time.Time, error) {
	s = strings.ToLower(s)
	matches := relativeTimeRe.FindStringSubmatch(s)
	if len(matches) == 0 {
		return time.Time{}, fmt.Errorf("invalid relative time format: %s", s)
	}

	value, _ := strconv.Atoi(matches[1])
	unit := matches[2]

	switch unit {
	case "year":
		return now.AddDate(-value, 0, 0), nil
	case "month":
		return now.AddDate(0, -value, 0), nil
	case "week":
		return now.Add(time.Duration(-value) * 7 * 24 * time.Hour), nil
	case "day":
		return now.Add(time.Duration(-value) * 24 * time.Hour), nil
	case "hour":
		return now.Add(time.Duration(-value) * time.Hour), nil
	case "minute":
		return now.Add(time.Duration(-value) * time.Minute), nil
	default:
		// Should be caught by the regex, but good for safety
		return time.Time{}, fmt.Errorf("unsupported time unit: %s", unit)
	}
}
