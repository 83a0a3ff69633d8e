package schema

import (
	"fmt"
	"strings"
	"time"
	"unicode"
)

// DateRange is an inclusive time window used to pre-filter records.
type DateRange struct {
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
}

// Contains reports whether t falls inside the inclusive window.
func (dr DateRange) Contains(t time.Time) bool {
	return !t.Before(dr.Start) && !t.After(dr.End)
}

// DimensionSelection is the user's choice of analysis dimensions. The
// category list is ordered; the order drives the two-dimension comparison
// and multi-axis layouts.
type DimensionSelection struct {
	TimeField      string      `json:"timeField,omitempty"`
	Granularity    Granularity `json:"granularity,omitempty"`
	LocationField  string      `json:"locationField,omitempty"`
	CategoryFields []string    `json:"categoryFields,omitempty"`
	DateRange      *DateRange  `json:"dateRange,omitempty"`
}

// HasTime reports whether a time dimension is selected.
func (s DimensionSelection) HasTime() bool { return s.TimeField != "" }

// HasLocation reports whether a location dimension is selected.
func (s DimensionSelection) HasLocation() bool { return s.LocationField != "" }

// HasCategory reports whether at least one category dimension is selected.
func (s DimensionSelection) HasCategory() bool { return len(s.CategoryFields) > 0 }

// EffectiveGranularity returns the selected granularity, defaulting to day.
func (s DimensionSelection) EffectiveGranularity() Granularity {
	if _, ok := ValidGranularities[s.Granularity]; ok {
		return s.Granularity
	}
	return DayGranularity
}

// Validate checks the structural invariants of a selection: category fields
// must be unique and the granularity, when set, must be known.
func (s DimensionSelection) Validate() error {
	seen := make(map[string]struct{}, len(s.CategoryFields))
	for _, f := range s.CategoryFields {
		if f == "" {
			return fmt.Errorf("category field name cannot be empty")
		}
		if _, dup := seen[f]; dup {
			return fmt.Errorf("duplicate category field %q", f)
		}
		seen[f] = struct{}{}
	}
	if s.Granularity != "" {
		if _, ok := ValidGranularities[s.Granularity]; !ok {
			return fmt.Errorf("invalid granularity %q. must be hour, day, month, year", s.Granularity)
		}
	}
	if s.DateRange != nil && s.DateRange.End.Before(s.DateRange.Start) {
		return fmt.Errorf("date range end %s is before start %s",
			s.DateRange.End.Format(time.RFC3339), s.DateRange.Start.Format(time.RFC3339))
	}
	return nil
}

// Validation is the dimension validator's verdict: whether the current
// selection can produce a meaningful chart, and which chart types apply.
type Validation struct {
	Valid          bool        `json:"valid"`
	SuggestedTypes []ChartType `json:"suggestedChartTypes"`
}

// Allows reports whether the given chart type is in the suggested set.
// Donut, area and scatter are presentation variants of a suggested base
// type: donut rides along wherever pie is suggested, area and scatter
// wherever line is.
func (v Validation) Allows(ct ChartType) bool {
	switch ct {
	case DonutChart:
		ct = PieChart
	case AreaChart, ScatterChart:
		ct = LineChart
	}
	for _, t := range v.SuggestedTypes {
		if t == ct {
			return true
		}
	}
	return false
}

// DisplayLabel converts a raw field name like "crash_type" or "crashType"
// into a human label like "Crash Type" for titles and axis names.
func DisplayLabel(field string) string {
	if field == "" {
		return ""
	}
	var words []string
	for _, part := range strings.FieldsFunc(field, func(r rune) bool {
		return r == '_' || r == '-' || r == '.' || r == ' '
	}) {
		words = append(words, splitCamel(part)...)
	}
	for i, w := range words {
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	return strings.Join(words, " ")
}

// splitCamel breaks "crashType" into ["crash", "Type"].
func splitCamel(s string) []string {
	var words []string
	start := 0
	for i, r := range s {
		if i > 0 && unicode.IsUpper(r) {
			words = append(words, s[start:i])
			start = i
		}
	}
	words = append(words, s[start:])
	return words
}
