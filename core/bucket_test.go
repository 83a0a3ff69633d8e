package core

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/trafficlens/trafficlens/schema"
)

// TestBucketTimeFormats tests the fixed bucket key format per granularity.
func TestBucketTimeFormats(t *testing.T) {
	ts := time.Date(2024, 3, 7, 14, 30, 0, 0, time.Local)

	tests := []struct {
		granularity schema.Granularity
		want        string
	}{
		{schema.HourGranularity, "3/7/2024 14:00"},
		{schema.DayGranularity, "3/7/2024"},
		{schema.MonthGranularity, "3/2024"},
		{schema.YearGranularity, "2024"},
	}
	for _, tt := range tests {
		t.Run(string(tt.granularity), func(t *testing.T) {
			got, ok := BucketTime(ts, tt.granularity)
			assert.True(t, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

// TestBucketTimeInputs tests the accepted raw value encodings.
func TestBucketTimeInputs(t *testing.T) {
	t.Run("date-only string", func(t *testing.T) {
		got, ok := BucketTime("2024-01-02", schema.DayGranularity)
		assert.True(t, ok)
		assert.Equal(t, "1/2/2024", got)
	})

	t.Run("rfc3339 string", func(t *testing.T) {
		got, ok := BucketTime("2024-12-31T23:00:00Z", schema.YearGranularity)
		assert.True(t, ok)
		assert.Equal(t, "2024", got)
	})

	t.Run("slash date string", func(t *testing.T) {
		got, ok := BucketTime("6/15/2024", schema.MonthGranularity)
		assert.True(t, ok)
		assert.Equal(t, "6/2024", got)
	})

	t.Run("unparseable string", func(t *testing.T) {
		_, ok := BucketTime("not a date", schema.DayGranularity)
		assert.False(t, ok)
	})

	t.Run("junk sentinel", func(t *testing.T) {
		_, ok := BucketTime("undefined", schema.DayGranularity)
		assert.False(t, ok)
	})

	t.Run("unsupported type", func(t *testing.T) {
		_, ok := BucketTime([]string{"2024"}, schema.DayGranularity)
		assert.False(t, ok)
	})
}

// TestFilterByRange tests the inclusive date window filter.
func TestFilterByRange(t *testing.T) {
	records := []schema.EventRecord{
		{"date": "2024-01-01", "type": "CRASH"},
		{"date": "2024-01-15", "type": "STALL"},
		{"date": "2024-02-01", "type": "CRASH"},
		{"date": "garbage", "type": "CRASH"},
		{"type": "CRASH"}, // no date at all
	}
	r := &schema.DateRange{
		Start: time.Date(2024, 1, 1, 0, 0, 0, 0, time.Local),
		End:   time.Date(2024, 1, 31, 23, 59, 59, 0, time.Local),
	}

	t.Run("window keeps in-range parseable records", func(t *testing.T) {
		got := FilterByRange(records, "date", r)
		assert.Len(t, got, 2)
	})

	t.Run("boundaries are inclusive", func(t *testing.T) {
		exact := &schema.DateRange{
			Start: time.Date(2024, 1, 1, 0, 0, 0, 0, time.Local),
			End:   time.Date(2024, 1, 1, 0, 0, 0, 0, time.Local),
		}
		got := FilterByRange(records, "date", exact)
		assert.Len(t, got, 1)
	})

	t.Run("nil range passes everything", func(t *testing.T) {
		got := FilterByRange(records, "date", nil)
		assert.Len(t, got, len(records))
	})
}

// FuzzParseTimeValue ensures arbitrary strings never panic the parser.
func FuzzParseTimeValue(f *testing.F) {
	f.Add("2024-01-02")
	f.Add("1/2/2024 15:04")
	f.Add("")
	f.Add("undefined")
	f.Add("9999-99-99")
	f.Fuzz(func(t *testing.T, s string) {
		ts, ok := ParseTimeValue(s)
		if !ok && !ts.IsZero() {
			t.Errorf("parse failed for %q but returned a non-zero time", s)
		}
		// Formatting must hold for any parsed value.
		if ok {
			_ = FormatBucket(ts, schema.DayGranularity)
		}
	})
}
