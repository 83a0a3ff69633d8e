package core

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/trafficlens/trafficlens/schema"
)

// boxplotSelection needs all three dimensions.
func boxplotSelection() schema.DimensionSelection {
	return schema.DimensionSelection{
		TimeField:      "date",
		Granularity:    schema.DayGranularity,
		LocationField:  "borough",
		CategoryFields: []string{"type"},
	}
}

// boxplotRecords emits n records for a category, each on its own day so
// every record becomes one non-zero sample.
func boxplotRecords(category string, n int) []schema.EventRecord {
	records := make([]schema.EventRecord, 0, n)
	for i := range n {
		records = append(records, schema.EventRecord{
			"date":    fmt.Sprintf("2024-01-%02d", i+1),
			"borough": "Queens",
			"type":    category,
		})
	}
	return records
}

// TestBuildBoxplotEligibility tests the minimum-sample gate: a category
// needs at least five non-zero cells to earn a glyph.
func TestBuildBoxplotEligibility(t *testing.T) {
	t.Run("five samples is enough", func(t *testing.T) {
		spec := BuildChart(boxplotRecords("CRASH", 5), boxplotSelection(), schema.BoxplotChart)
		require.False(t, spec.Placeholder)
		require.Len(t, spec.Series, 1)
		require.Len(t, spec.Series[0].Boxes, 1)
		assert.Equal(t, "CRASH", spec.Series[0].Boxes[0].Category)
	})

	t.Run("four samples is not", func(t *testing.T) {
		spec := BuildChart(boxplotRecords("CRASH", 4), boxplotSelection(), schema.BoxplotChart)
		assert.True(t, spec.Placeholder)
		assert.Equal(t, TitleInsufficientData, spec.Title)
	})

	t.Run("sparse categories drop out of a mixed set", func(t *testing.T) {
		records := append(boxplotRecords("CRASH", 6), boxplotRecords("STALL", 2)...)
		spec := BuildChart(records, boxplotSelection(), schema.BoxplotChart)
		require.False(t, spec.Placeholder)
		require.Len(t, spec.Series[0].Boxes, 1)
		assert.Equal(t, "CRASH", spec.Series[0].Boxes[0].Category)
		assert.Equal(t, []string{"CRASH"}, spec.Axes[0].Labels)
	})
}

// TestBuildBoxplotSummary tests the per-cell sample extraction feeding the
// five-number summary.
func TestBuildBoxplotSummary(t *testing.T) {
	var records []schema.EventRecord
	// Five day-cells with counts 1, 2, 3, 4, 5.
	for day := 1; day <= 5; day++ {
		for range day {
			records = append(records, schema.EventRecord{
				"date":    fmt.Sprintf("2024-01-%02d", day),
				"borough": "Queens",
				"type":    "CRASH",
			})
		}
	}

	spec := BuildChart(records, boxplotSelection(), schema.BoxplotChart)

	require.False(t, spec.Placeholder)
	require.Len(t, spec.Series[0].Boxes, 1)
	summary := spec.Series[0].Boxes[0].Summary
	assert.Equal(t, schema.BoxSummary{Min: 1, Q1: 2, Median: 3, Q3: 4, Max: 5}, summary)
}

// TestBuildBoxplotCategoryOrder verifies glyphs come out in sorted
// category order regardless of record order.
func TestBuildBoxplotCategoryOrder(t *testing.T) {
	records := append(boxplotRecords("STALL", 5), boxplotRecords("CRASH", 5)...)
	spec := BuildChart(records, boxplotSelection(), schema.BoxplotChart)

	require.Len(t, spec.Series[0].Boxes, 2)
	assert.Equal(t, "CRASH", spec.Series[0].Boxes[0].Category)
	assert.Equal(t, "STALL", spec.Series[0].Boxes[1].Category)
}

// TestBuildBoxplotMissingDimensions verifies the three-dimension
// precondition.
func TestBuildBoxplotMissingDimensions(t *testing.T) {
	records := boxplotRecords("CRASH", 5)
	sel := boxplotSelection()
	sel.LocationField = ""

	spec := buildBoxplot(records, sel)
	assert.True(t, spec.Placeholder)
	assert.Equal(t, TitleInsufficientData, spec.Title)
}
