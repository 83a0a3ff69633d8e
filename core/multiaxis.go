package core

import (
	"fmt"

	"github.com/trafficlens/trafficlens/schema"
)

// buildMultiAxis emits the side-by-side correlation view: line series for
// the first category dimension on the primary value axis, bar series for
// the third category dimension on a secondary axis. The second dimension
// (index 1) is deliberately not plotted; the layout has always paired the
// first and third selections, and downstream consumers position their
// selectors around that.
func buildMultiAxis(records []schema.EventRecord, sel schema.DimensionSelection) schema.ChartSpec {
	if !sel.HasTime() || len(sel.CategoryFields) < 2 {
		return placeholderSpec(TitleInsufficientData)
	}

	g := sel.EffectiveGranularity()
	timeKey := TimeBucketKey(sel.TimeField, g)

	lineField := sel.CategoryFields[0]
	lineCounts := CountByPair(records, timeKey, FieldKey(lineField))
	if len(lineCounts.OuterKeys) == 0 || len(lineCounts.InnerKeys) == 0 {
		return placeholderSpec(TitleNoData)
	}

	var barField string
	var barCounts PairCountResult
	if len(sel.CategoryFields) >= 3 {
		barField = sel.CategoryFields[2]
		barCounts = CountByPair(records, timeKey, FieldKey(barField))
	}

	// The x axis is the union of time buckets seen by either grouping, so
	// the two series families stay aligned.
	buckets := mergeSortedKeys(lineCounts.OuterKeys, barCounts.OuterKeys)

	lineLabel := schema.DisplayLabel(lineField)
	axes := []schema.Axis{
		{Kind: schema.CategoryAxis, Name: schema.DisplayLabel(sel.TimeField), Labels: buckets},
		{Kind: schema.ValueAxis, Name: lineLabel},
	}

	series := make([]schema.Series, 0, len(lineCounts.InnerKeys))
	for _, v := range lineCounts.InnerKeys {
		series = append(series, schema.Series{
			Name:      v,
			Family:    schema.LineFamily,
			AxisIndex: 0,
			Values:    alignedValues(lineCounts, buckets, v),
		})
	}

	title := fmt.Sprintf("%s over Time", lineLabel)
	if barField != "" && len(barCounts.InnerKeys) > 0 {
		barLabel := schema.DisplayLabel(barField)
		axes = append(axes, schema.Axis{Kind: schema.ValueAxis, Name: barLabel, Secondary: true})
		for _, v := range barCounts.InnerKeys {
			series = append(series, schema.Series{
				Name:      v,
				Family:    schema.BarFamily,
				AxisIndex: 1,
				Values:    alignedValues(barCounts, buckets, v),
			})
		}
		title = fmt.Sprintf("%s vs %s over Time", lineLabel, barLabel)
	}

	return schema.ChartSpec{
		Title:  title,
		Type:   schema.MultiAxisChart,
		Axes:   axes,
		Legend: legendFor(series),
		Series: series,
	}
}

// alignedValues reads one inner key's counts across the shared bucket list.
func alignedValues(counts PairCountResult, buckets []string, inner string) []float64 {
	values := make([]float64, 0, len(buckets))
	for _, b := range buckets {
		values = append(values, float64(counts.Count(b, inner)))
	}
	return values
}

// mergeSortedKeys merges two ascending string slices without duplicates.
func mergeSortedKeys(a, b []string) []string {
	out := make([]string, 0, len(a)+len(b))
	i, j := 0, 0
	for i < len(a) && j < len(b) {
		switch {
		case a[i] < b[j]:
			out = append(out, a[i])
			i++
		case a[i] > b[j]:
			out = append(out, b[j])
			j++
		default:
			out = append(out, a[i])
			i++
			j++
		}
	}
	out = append(out, a[i:]...)
	out = append(out, b[j:]...)
	return out
}
