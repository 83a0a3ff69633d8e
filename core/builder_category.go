package core

import (
	"fmt"

	"github.com/trafficlens/trafficlens/schema"
)

// familyFor maps a chart type onto the render family its series carry.
var familyFor = map[schema.ChartType]schema.RenderFamily{
	schema.LineChart:       schema.LineFamily,
	schema.AreaChart:       schema.LineFamily,
	schema.ScatterChart:    schema.LineFamily,
	schema.BarChart:        schema.BarFamily,
	schema.StackedBarChart: schema.BarFamily,
	schema.GroupedBarChart: schema.BarFamily,
	schema.PieChart:        schema.PieFamily,
	schema.DonutChart:      schema.PieFamily,
	schema.TreemapChart:    schema.TreemapFamily,
	schema.SunburstChart:   schema.SunburstFamily,
	schema.HeatmapChart:    schema.HeatmapFamily,
	schema.BoxplotChart:    schema.BoxplotFamily,
}

// categoricalField picks the dimension a part-to-whole chart slices on: the
// first category dimension when present, otherwise the location dimension.
func categoricalField(sel schema.DimensionSelection) string {
	if sel.HasCategory() {
		return sel.CategoryFields[0]
	}
	return sel.LocationField
}

// buildCategorical emits a single-series spec for the part-to-whole
// families (pie, donut, treemap, sunburst) and for bar charts over a bare
// category dimension. Items are sorted by descending count and truncated to
// the top 20 so the legend stays readable.
func buildCategorical(records []schema.EventRecord, sel schema.DimensionSelection, chartType schema.ChartType) schema.ChartSpec {
	field := categoricalField(sel)
	counts := CountBy(records, FieldKey(field))
	if len(counts.Order) == 0 {
		return placeholderSpec(TitleNoData)
	}

	keys := counts.TopKeys(schema.MaxSingleDimensionKeys)
	pairs := make([]schema.NameValue, 0, len(keys))
	for _, k := range keys {
		pairs = append(pairs, schema.NameValue{Name: k, Value: float64(counts.Counts[k])})
	}

	label := schema.DisplayLabel(field)
	series := schema.Series{
		Name:      label,
		Family:    familyFor[chartType],
		DonutHole: chartType == schema.DonutChart,
		Pairs:     pairs,
	}

	// Bar charts keep an explicit categorical axis and aligned values;
	// pie-like families have no axes at all.
	axes := []schema.Axis{}
	if chartType == schema.BarChart {
		axes = []schema.Axis{
			{Kind: schema.CategoryAxis, Name: label, Labels: keyNames(pairs)},
			{Kind: schema.ValueAxis, Name: "Events"},
		}
		series.Values = valueCounts(pairs)
	}

	return schema.ChartSpec{
		Title:  fmt.Sprintf("Events by %s", label),
		Type:   chartType,
		Axes:   axes,
		Legend: schema.Legend{Show: true, Entries: keyNames(pairs)},
		Series: []schema.Series{series},
	}
}

func keyNames(pairs []schema.NameValue) []string {
	names := make([]string, 0, len(pairs))
	for _, p := range pairs {
		names = append(names, p.Name)
	}
	return names
}

func valueCounts(pairs []schema.NameValue) []float64 {
	values := make([]float64, 0, len(pairs))
	for _, p := range pairs {
		values = append(values, p.Value)
	}
	return values
}
