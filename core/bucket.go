package core

import (
	"fmt"
	"time"

	"github.com/trafficlens/trafficlens/schema"
)

// Date layouts accepted for event time fields, tried in order. Layouts
// without a zone are interpreted in host-local time, matching how the
// upstream dashboards treated dates.
var timeFieldLayouts = []string{
	time.RFC3339,
	"2006-01-02 15:04:05",
	"2006-01-02T15:04:05",
	"2006-01-02",
	"1/2/2006 15:04",
	"1/2/2006",
}

// ParseTimeValue converts a raw field value into a time.Time. It accepts
// native times, the layouts above, and unix-second numbers. It reports
// ok=false on anything else so the caller can skip the record.
func ParseTimeValue(v any) (time.Time, bool) {
	switch tv := v.(type) {
	case time.Time:
		return tv, true
	case string:
		if schema.IsJunkValue(tv) {
			return time.Time{}, false
		}
		for _, layout := range timeFieldLayouts {
			if t, err := time.ParseInLocation(layout, tv, time.Local); err == nil {
				return t, true
			}
		}
		return time.Time{}, false
	case int:
		return time.Unix(int64(tv), 0), true
	case int64:
		return time.Unix(tv, 0), true
	case float64:
		return time.Unix(int64(tv), 0), true
	default:
		return time.Time{}, false
	}
}

// BucketTime formats a raw time value into a bucket key at the requested
// granularity. Key formats are fixed:
//
//	hour  -> "M/D/YYYY H:00"
//	day   -> "M/D/YYYY"
//	month -> "M/YYYY"
//	year  -> "YYYY"
//
// The M/D/YYYY keys do not sort chronologically under plain string
// comparison across multi-digit months and days. That matches the output of
// the dashboards this engine feeds, so it stays.
func BucketTime(v any, g schema.Granularity) (string, bool) {
	t, ok := ParseTimeValue(v)
	if !ok {
		return "", false
	}
	return FormatBucket(t, g), true
}

// FormatBucket formats an already-parsed time at the given granularity.
func FormatBucket(t time.Time, g schema.Granularity) string {
	switch g {
	case schema.HourGranularity:
		return fmt.Sprintf("%d/%d/%d %d:00", t.Month(), t.Day(), t.Year(), t.Hour())
	case schema.MonthGranularity:
		return fmt.Sprintf("%d/%d", t.Month(), t.Year())
	case schema.YearGranularity:
		return fmt.Sprintf("%d", t.Year())
	default: // day
		return fmt.Sprintf("%d/%d/%d", t.Month(), t.Day(), t.Year())
	}
}

// FilterByRange returns the records whose time field falls inside the
// inclusive range. Records with a missing or unparseable time field are
// excluded. A nil range passes every record through untouched.
func FilterByRange(records []schema.EventRecord, timeField string, r *schema.DateRange) []schema.EventRecord {
	if r == nil {
		return records
	}
	out := make([]schema.EventRecord, 0, len(records))
	for _, rec := range records {
		raw, ok := rec.Raw(timeField)
		if !ok {
			continue
		}
		t, ok := ParseTimeValue(raw)
		if !ok {
			continue
		}
		if r.Contains(t) {
			out = append(out, rec)
		}
	}
	return out
}
