package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/trafficlens/trafficlens/schema"
)

// TestBuildHeatmap tests the density grid: full cross-product cells, zero
// cells included, and a color scale anchored at zero.
func TestBuildHeatmap(t *testing.T) {
	records := []schema.EventRecord{
		{"date": "2024-01-01", "borough": "Queens"},
		{"date": "2024-01-01", "borough": "Queens"},
		{"date": "2024-01-01", "borough": "Bronx"},
		{"date": "2024-01-02", "borough": "Queens"},
	}
	sel := schema.DimensionSelection{
		TimeField:     "date",
		Granularity:   schema.DayGranularity,
		LocationField: "borough",
	}

	spec := BuildChart(records, sel, schema.HeatmapChart)

	require.False(t, spec.Placeholder)
	require.Len(t, spec.Series, 1)
	cells := spec.Series[0].Cells

	t.Run("cell grid is complete", func(t *testing.T) {
		// 2 time buckets x 2 locations, the empty Bronx cell included.
		require.Len(t, cells, 4)
		assert.Equal(t, schema.HeatmapCell{Time: "1/1/2024", Location: "Bronx", Count: 1}, cells[0])
		assert.Equal(t, schema.HeatmapCell{Time: "1/1/2024", Location: "Queens", Count: 2}, cells[1])
		assert.Equal(t, schema.HeatmapCell{Time: "1/2/2024", Location: "Bronx", Count: 0}, cells[2])
		assert.Equal(t, schema.HeatmapCell{Time: "1/2/2024", Location: "Queens", Count: 1}, cells[3])
	})

	t.Run("color scale spans zero to max", func(t *testing.T) {
		require.NotNil(t, spec.ColorScale)
		assert.Equal(t, &schema.ColorScale{Min: 0, Max: 2}, spec.ColorScale)
	})

	t.Run("axes carry both dimensions", func(t *testing.T) {
		require.Len(t, spec.Axes, 2)
		assert.Equal(t, []string{"1/1/2024", "1/2/2024"}, spec.Axes[0].Labels)
		assert.Equal(t, []string{"Bronx", "Queens"}, spec.Axes[1].Labels)
	})

	t.Run("legend is hidden", func(t *testing.T) {
		assert.False(t, spec.Legend.Show)
	})
}

// TestBuildHeatmapCategoryIgnored verifies a selected category dimension
// does not change the time-by-location grid.
func TestBuildHeatmapCategoryIgnored(t *testing.T) {
	records := []schema.EventRecord{
		{"date": "2024-01-01", "borough": "Queens", "type": "CRASH"},
		{"date": "2024-01-01", "borough": "Queens", "type": "STALL"},
	}
	sel := schema.DimensionSelection{
		TimeField:      "date",
		LocationField:  "borough",
		CategoryFields: []string{"type"},
	}

	spec := BuildChart(records, sel, schema.HeatmapChart)
	require.Len(t, spec.Series, 1)
	require.Len(t, spec.Series[0].Cells, 1)
	assert.Equal(t, 2, spec.Series[0].Cells[0].Count)
}

// TestBuildHeatmapTimeByCategory verifies the category dimension serves as
// the second grid axis when no location is selected.
func TestBuildHeatmapTimeByCategory(t *testing.T) {
	records := []schema.EventRecord{
		{"date": "2024-01-01", "type": "CRASH"},
		{"date": "2024-01-01", "type": "STALL"},
		{"date": "2024-01-02", "type": "CRASH"},
	}
	sel := schema.DimensionSelection{
		TimeField:      "date",
		Granularity:    schema.DayGranularity,
		CategoryFields: []string{"type"},
	}

	spec := BuildChart(records, sel, schema.HeatmapChart)

	require.False(t, spec.Placeholder)
	require.Len(t, spec.Series, 1)
	// 2 time buckets x 2 categories, the empty STALL cell included.
	require.Len(t, spec.Series[0].Cells, 4)
	assert.Equal(t, schema.HeatmapCell{Time: "1/2/2024", Location: "STALL", Count: 0}, spec.Series[0].Cells[3])
	require.Len(t, spec.Axes, 2)
	assert.Equal(t, "Type", spec.Axes[1].Name)
	assert.Equal(t, []string{"CRASH", "STALL"}, spec.Axes[1].Labels)
}

// TestBuildHeatmapMissingDimension verifies the builder refuses to run
// without a second grid dimension.
func TestBuildHeatmapMissingDimension(t *testing.T) {
	records := []schema.EventRecord{{"date": "2024-01-01", "borough": "Queens"}}
	spec := buildHeatmap(records, schema.DimensionSelection{TimeField: "date"})
	assert.True(t, spec.Placeholder)
	assert.Equal(t, TitleInsufficientData, spec.Title)
}
