package core

import (
	"fmt"

	"github.com/trafficlens/trafficlens/schema"
)

// Placeholder titles surfaced instead of charts. Callers show these
// verbatim, so they read as user-facing copy.
const (
	TitleNoChartType      = "Select a chart type to begin"
	TitleInvalidSelection = "This combination of dimensions cannot be charted"
	TitleNoData           = "No events match the current filters"
	TitleInsufficientData = "Not enough data to build this chart"
	TitleGenerationError  = "Something went wrong while generating this chart"
)

// BuildChart is the engine's entry point. It validates the selection and
// chart type, filters and aggregates the records, and emits a declarative
// chart specification. It never returns an error and never panics: every
// failure mode becomes a placeholder spec with an explanatory title, so the
// caller always has something renderable.
func BuildChart(records []schema.EventRecord, sel schema.DimensionSelection, chartType schema.ChartType) (spec schema.ChartSpec) {
	// Last line of defense. A bug anywhere below must not take down the
	// caller; it degrades to a generic placeholder instead.
	defer func() {
		if r := recover(); r != nil {
			spec = placeholderSpec(TitleGenerationError)
		}
	}()

	if chartType == "" {
		return placeholderSpec(TitleNoChartType)
	}
	if _, ok := schema.ValidChartTypes[chartType]; !ok {
		return placeholderSpec(fmt.Sprintf("Unknown chart type %q", chartType))
	}
	if err := sel.Validate(); err != nil {
		return placeholderSpec(TitleInvalidSelection)
	}
	validation := Validate(sel)
	if !validation.Valid || !validation.Allows(chartType) {
		return placeholderSpec(fmt.Sprintf("%s charts are not available for the selected dimensions", schema.DisplayLabel(string(chartType))))
	}
	if len(records) == 0 {
		return placeholderSpec(TitleNoData)
	}

	// Pre-filter by the optional date window before any grouping.
	if sel.HasTime() {
		records = FilterByRange(records, sel.TimeField, sel.DateRange)
		if len(records) == 0 {
			return placeholderSpec(TitleNoData)
		}
	}

	switch chartType {
	case schema.MultiAxisChart:
		return buildMultiAxis(records, sel)
	case schema.HeatmapChart:
		return buildHeatmap(records, sel)
	case schema.BoxplotChart:
		return buildBoxplot(records, sel)
	case schema.PieChart, schema.DonutChart, schema.TreemapChart, schema.SunburstChart:
		return buildCategorical(records, sel, chartType)
	case schema.BarChart:
		if !sel.HasTime() && !sel.HasLocation() {
			return buildCategorical(records, sel, chartType)
		}
		return buildSeriesChart(records, sel, chartType)
	default:
		// line, area, stacked_bar, grouped_bar, scatter
		return buildSeriesChart(records, sel, chartType)
	}
}

// placeholderSpec builds the uniform empty-state spec. Series and axes are
// empty but non-nil so serialized output is stable.
func placeholderSpec(title string) schema.ChartSpec {
	return schema.ChartSpec{
		Title:       title,
		Axes:        []schema.Axis{},
		Legend:      schema.Legend{Show: false, Entries: []string{}},
		Series:      []schema.Series{},
		Placeholder: true,
	}
}

// legendFor builds a visible legend from series names.
func legendFor(series []schema.Series) schema.Legend {
	entries := make([]string, 0, len(series))
	for _, s := range series {
		entries = append(entries, s.Name)
	}
	return schema.Legend{Show: len(entries) > 0, Entries: entries}
}
