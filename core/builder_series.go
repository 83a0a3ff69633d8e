package core

import (
	"fmt"

	"github.com/trafficlens/trafficlens/schema"
)

// stackID is the shared stack identifier for stacked bar series. The
// renderer sums series with equal stacks visually.
const stackID = "total"

// buildSeriesChart emits the multi-series comparison families: line, area
// and the bar variants, one series per value of the splitting dimension.
// The grouping topology depends on the selected dimensions:
//
//   - time present:            time bucket x (category | location)
//   - location + category:     location x category
//   - two category dimensions: category x category, truncated to the top
//     10 primary and top 8 secondary values
func buildSeriesChart(records []schema.EventRecord, sel schema.DimensionSelection, chartType schema.ChartType) schema.ChartSpec {
	var (
		counts     PairCountResult
		outerLabel string
		innerLabel string
		outerKeys  []string
		innerKeys  []string
	)

	switch {
	case sel.HasTime():
		g := sel.EffectiveGranularity()
		inner := sel.LocationField
		if sel.HasCategory() {
			inner = sel.CategoryFields[0]
		}
		counts = CountByPair(records, TimeBucketKey(sel.TimeField, g), FieldKey(inner))
		outerLabel = schema.DisplayLabel(sel.TimeField)
		innerLabel = schema.DisplayLabel(inner)
		outerKeys = counts.OuterKeys
		innerKeys = counts.InnerKeys

	case len(sel.CategoryFields) >= 2:
		primary, secondary := sel.CategoryFields[0], sel.CategoryFields[1]
		counts = CountByPair(records, FieldKey(primary), FieldKey(secondary))
		outerLabel = schema.DisplayLabel(primary)
		innerLabel = schema.DisplayLabel(secondary)
		outerKeys = counts.TopOuterKeys(schema.MaxPrimaryComparisonKeys)
		innerKeys = counts.TopInnerKeys(schema.MaxSecondaryComparisonKeys)

	case sel.HasLocation() && sel.HasCategory():
		counts = CountByPair(records, FieldKey(sel.LocationField), FieldKey(sel.CategoryFields[0]))
		outerLabel = schema.DisplayLabel(sel.LocationField)
		innerLabel = schema.DisplayLabel(sel.CategoryFields[0])
		outerKeys = counts.OuterKeys
		innerKeys = counts.InnerKeys

	default:
		return placeholderSpec(TitleInvalidSelection)
	}

	if len(outerKeys) == 0 || len(innerKeys) == 0 {
		return placeholderSpec(TitleNoData)
	}

	series := make([]schema.Series, 0, len(innerKeys))
	for _, inner := range innerKeys {
		values := make([]float64, 0, len(outerKeys))
		for _, outer := range outerKeys {
			values = append(values, float64(counts.Count(outer, inner)))
		}
		s := schema.Series{
			Name:   inner,
			Family: familyFor[chartType],
			Fill:   chartType == schema.AreaChart,
			Values: values,
		}
		if chartType == schema.StackedBarChart {
			s.Stack = stackID
		}
		series = append(series, s)
	}

	title := fmt.Sprintf("%s by %s", innerLabel, outerLabel)
	if sel.HasTime() {
		title = fmt.Sprintf("%s over Time", innerLabel)
	}

	return schema.ChartSpec{
		Title: title,
		Type:  chartType,
		Axes: []schema.Axis{
			{Kind: schema.CategoryAxis, Name: outerLabel, Labels: outerKeys},
			{Kind: schema.ValueAxis, Name: "Events"},
		},
		Legend: legendFor(series),
		Series: series,
	}
}
