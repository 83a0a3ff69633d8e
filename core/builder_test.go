package core

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/trafficlens/trafficlens/schema"
)

// timeCategorySelection is the most common selection in tests: a day-bucketed
// time dimension plus one category dimension.
func timeCategorySelection() schema.DimensionSelection {
	return schema.DimensionSelection{
		TimeField:      "date",
		Granularity:    schema.DayGranularity,
		CategoryFields: []string{"type"},
	}
}

// TestBuildChartLineScenario is the end-to-end scenario: three records, two
// categories, two day buckets.
func TestBuildChartLineScenario(t *testing.T) {
	records := []schema.EventRecord{
		{"type": "CRASH", "date": "2024-01-01"},
		{"type": "CRASH", "date": "2024-01-02"},
		{"type": "STALL", "date": "2024-01-01"},
	}

	spec := BuildChart(records, timeCategorySelection(), schema.LineChart)

	require.False(t, spec.Placeholder)
	require.Len(t, spec.Series, 2)
	require.Len(t, spec.Axes, 2)

	assert.Equal(t, []string{"1/1/2024", "1/2/2024"}, spec.Axes[0].Labels)
	assert.Equal(t, "CRASH", spec.Series[0].Name)
	assert.Equal(t, []float64{1, 1}, spec.Series[0].Values)
	assert.Equal(t, "STALL", spec.Series[1].Name)
	assert.Equal(t, []float64{1, 0}, spec.Series[1].Values)
	assert.Equal(t, schema.LineFamily, spec.Series[0].Family)
	assert.Equal(t, []string{"CRASH", "STALL"}, spec.Legend.Entries)
}

// TestBuildChartDeterminism calls the builder twice with identical inputs
// and requires deep-equal output.
func TestBuildChartDeterminism(t *testing.T) {
	records := []schema.EventRecord{
		{"type": "CRASH", "date": "2024-01-01", "borough": "Queens"},
		{"type": "STALL", "date": "2024-01-03", "borough": "Bronx"},
		{"type": "CRASH", "date": "2024-02-11", "borough": "Queens"},
	}
	sel := schema.DimensionSelection{
		TimeField:      "date",
		Granularity:    schema.MonthGranularity,
		LocationField:  "borough",
		CategoryFields: []string{"type"},
	}

	for _, ct := range []schema.ChartType{
		schema.LineChart, schema.StackedBarChart, schema.HeatmapChart, schema.GroupedBarChart,
	} {
		t.Run(string(ct), func(t *testing.T) {
			first := BuildChart(records, sel, ct)
			second := BuildChart(records, sel, ct)
			assert.Equal(t, first, second)
		})
	}
}

// TestBuildChartPlaceholders tests the uniform empty-state behavior: the
// caller always gets a valid spec, never an error.
func TestBuildChartPlaceholders(t *testing.T) {
	records := []schema.EventRecord{{"type": "CRASH", "date": "2024-01-01"}}

	t.Run("no chart type", func(t *testing.T) {
		spec := BuildChart(records, timeCategorySelection(), "")
		assert.True(t, spec.Placeholder)
		assert.Equal(t, TitleNoChartType, spec.Title)
		assert.Empty(t, spec.Series)
	})

	t.Run("unknown chart type", func(t *testing.T) {
		spec := BuildChart(records, timeCategorySelection(), "hologram")
		assert.True(t, spec.Placeholder)
		assert.Empty(t, spec.Series)
	})

	t.Run("chart type outside the legal set", func(t *testing.T) {
		// Pie is not suggested for time+category.
		spec := BuildChart(records, timeCategorySelection(), schema.PieChart)
		assert.True(t, spec.Placeholder)
	})

	t.Run("invalid dimension combination", func(t *testing.T) {
		sel := schema.DimensionSelection{TimeField: "date"}
		spec := BuildChart(records, sel, schema.LineChart)
		assert.True(t, spec.Placeholder)
	})

	t.Run("duplicate category fields", func(t *testing.T) {
		sel := schema.DimensionSelection{CategoryFields: []string{"type", "type"}}
		spec := BuildChart(records, sel, schema.BarChart)
		assert.True(t, spec.Placeholder)
		assert.Equal(t, TitleInvalidSelection, spec.Title)
	})

	t.Run("empty record set", func(t *testing.T) {
		spec := BuildChart(nil, timeCategorySelection(), schema.LineChart)
		assert.True(t, spec.Placeholder)
		assert.Equal(t, TitleNoData, spec.Title)
		assert.NotNil(t, spec.Series)
		assert.Empty(t, spec.Series)
	})

	t.Run("all records outside date range", func(t *testing.T) {
		sel := timeCategorySelection()
		sel.DateRange = &schema.DateRange{
			Start: time.Date(2030, 1, 1, 0, 0, 0, 0, time.Local),
			End:   time.Date(2030, 12, 31, 0, 0, 0, 0, time.Local),
		}
		spec := BuildChart(records, sel, schema.LineChart)
		assert.True(t, spec.Placeholder)
		assert.Equal(t, TitleNoData, spec.Title)
	})
}

// TestBuildChartTopTwenty tests top-N truncation on a category-only bar
// chart over 30 distinct values.
func TestBuildChartTopTwenty(t *testing.T) {
	var records []schema.EventRecord
	for i := range 30 {
		value := fmt.Sprintf("TYPE_%02d", i)
		// TYPE_00 is most frequent, counts descend from 31 to 2.
		for range 31 - i {
			records = append(records, schema.EventRecord{"type": value})
		}
	}

	sel := schema.DimensionSelection{CategoryFields: []string{"type"}}
	spec := BuildChart(records, sel, schema.BarChart)

	require.False(t, spec.Placeholder)
	require.Len(t, spec.Series, 1)
	assert.Len(t, spec.Series[0].Pairs, 20)
	assert.Equal(t, "TYPE_00", spec.Series[0].Pairs[0].Name)
	assert.Equal(t, float64(31), spec.Series[0].Pairs[0].Value)
	assert.Equal(t, "TYPE_19", spec.Series[0].Pairs[19].Name)
	assert.Len(t, spec.Legend.Entries, 20)
}

// TestBuildChartPieAndDonut tests the part-to-whole families.
func TestBuildChartPieAndDonut(t *testing.T) {
	records := []schema.EventRecord{
		{"type": "CRASH"}, {"type": "CRASH"}, {"type": "STALL"},
	}
	sel := schema.DimensionSelection{CategoryFields: []string{"type"}}

	t.Run("pie", func(t *testing.T) {
		spec := BuildChart(records, sel, schema.PieChart)
		require.Len(t, spec.Series, 1)
		assert.Equal(t, schema.PieFamily, spec.Series[0].Family)
		assert.False(t, spec.Series[0].DonutHole)
		assert.Equal(t, []schema.NameValue{{Name: "CRASH", Value: 2}, {Name: "STALL", Value: 1}}, spec.Series[0].Pairs)
		assert.Empty(t, spec.Axes)
	})

	t.Run("donut sets the hole flag", func(t *testing.T) {
		spec := BuildChart(records, sel, schema.DonutChart)
		require.False(t, spec.Placeholder)
		require.Len(t, spec.Series, 1)
		assert.Equal(t, schema.PieFamily, spec.Series[0].Family)
		assert.True(t, spec.Series[0].DonutHole)
	})

	t.Run("treemap and sunburst families", func(t *testing.T) {
		assert.Equal(t, schema.TreemapFamily, BuildChart(records, sel, schema.TreemapChart).Series[0].Family)
		assert.Equal(t, schema.SunburstFamily, BuildChart(records, sel, schema.SunburstChart).Series[0].Family)
	})
}

// TestBuildChartStackedAndArea tests the family flags that distinguish
// stacked bars and area charts from their base families.
func TestBuildChartStackedAndArea(t *testing.T) {
	records := []schema.EventRecord{
		{"type": "CRASH", "borough": "Queens"},
		{"type": "STALL", "borough": "Queens"},
		{"type": "CRASH", "borough": "Bronx"},
	}
	sel := schema.DimensionSelection{
		LocationField:  "borough",
		CategoryFields: []string{"type"},
	}

	t.Run("stacked bar shares one stack id", func(t *testing.T) {
		spec := BuildChart(records, sel, schema.StackedBarChart)
		require.Len(t, spec.Series, 2)
		for _, s := range spec.Series {
			assert.Equal(t, schema.BarFamily, s.Family)
			assert.Equal(t, "total", s.Stack)
		}
	})

	t.Run("grouped bar has no stack id", func(t *testing.T) {
		spec := BuildChart(records, sel, schema.GroupedBarChart)
		require.Len(t, spec.Series, 2)
		for _, s := range spec.Series {
			assert.Empty(t, s.Stack)
		}
	})

	t.Run("location by category axis labels", func(t *testing.T) {
		spec := BuildChart(records, sel, schema.GroupedBarChart)
		assert.Equal(t, []string{"Bronx", "Queens"}, spec.Axes[0].Labels)
		assert.Equal(t, []float64{1, 2}, spec.Series[0].Values) // CRASH
		assert.Equal(t, []float64{0, 1}, spec.Series[1].Values) // STALL
	})

	t.Run("area sets the fill flag on the line family", func(t *testing.T) {
		timeRecords := []schema.EventRecord{
			{"type": "CRASH", "date": "2024-01-01"},
			{"type": "STALL", "date": "2024-01-02"},
		}
		spec := BuildChart(timeRecords, timeCategorySelection(), schema.AreaChart)
		require.False(t, spec.Placeholder)
		require.Len(t, spec.Series, 2)
		for _, s := range spec.Series {
			assert.Equal(t, schema.LineFamily, s.Family)
			assert.True(t, s.Fill)
		}
	})

	t.Run("scatter renders as an unfilled line family", func(t *testing.T) {
		timeRecords := []schema.EventRecord{
			{"type": "CRASH", "date": "2024-01-01"},
		}
		spec := BuildChart(timeRecords, timeCategorySelection(), schema.ScatterChart)
		require.False(t, spec.Placeholder)
		require.Len(t, spec.Series, 1)
		assert.Equal(t, schema.LineFamily, spec.Series[0].Family)
		assert.False(t, spec.Series[0].Fill)
	})
}

// TestBuildChartCategoryComparison tests the two-category topology with
// its 10/8 truncation.
func TestBuildChartCategoryComparison(t *testing.T) {
	var records []schema.EventRecord
	for i := range 12 {
		for j := range 9 {
			// Descending frequency on both axes.
			for range (12 - i) * (9 - j) {
				records = append(records, schema.EventRecord{
					"factor":   fmt.Sprintf("F%02d", i),
					"severity": fmt.Sprintf("S%d", j),
					"borough":  "Queens",
				})
			}
		}
	}
	sel := schema.DimensionSelection{
		LocationField:  "borough",
		CategoryFields: []string{"factor", "severity"},
	}

	spec := BuildChart(records, sel, schema.GroupedBarChart)

	require.False(t, spec.Placeholder)
	assert.Len(t, spec.Axes[0].Labels, 10)
	assert.Len(t, spec.Series, 8)
	assert.Equal(t, "F00", spec.Axes[0].Labels[0])
	assert.Equal(t, "S0", spec.Series[0].Name)
}
