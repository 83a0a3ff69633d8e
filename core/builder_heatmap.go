package core

import (
	"fmt"

	"github.com/trafficlens/trafficlens/schema"
)

// buildHeatmap emits a density grid of time against a second grouping
// dimension: the location when one is selected, otherwise the primary
// category. The grid is the full cross-product of the discovered time
// buckets and second-dimension values, zero-count cells included, so the
// renderer never has to infer missing cells.
func buildHeatmap(records []schema.EventRecord, sel schema.DimensionSelection) schema.ChartSpec {
	if !sel.HasTime() {
		return placeholderSpec(TitleInsufficientData)
	}
	second := sel.LocationField
	if second == "" && sel.HasCategory() {
		second = sel.CategoryFields[0]
	}
	if second == "" {
		return placeholderSpec(TitleInsufficientData)
	}

	g := sel.EffectiveGranularity()
	counts := CountByPair(records, TimeBucketKey(sel.TimeField, g), FieldKey(second))
	if len(counts.OuterKeys) == 0 || len(counts.InnerKeys) == 0 {
		return placeholderSpec(TitleNoData)
	}

	cells := make([]schema.HeatmapCell, 0, len(counts.OuterKeys)*len(counts.InnerKeys))
	maxCount := 0
	for _, t := range counts.OuterKeys {
		for _, loc := range counts.InnerKeys {
			c := counts.Count(t, loc)
			if c > maxCount {
				maxCount = c
			}
			cells = append(cells, schema.HeatmapCell{Time: t, Location: loc, Count: c})
		}
	}
	// Floor of 1 keeps the color scale from collapsing to zero width when
	// every cell is empty.
	if maxCount < 1 {
		maxCount = 1
	}

	secondLabel := schema.DisplayLabel(second)
	return schema.ChartSpec{
		Title: fmt.Sprintf("Events by Time and %s", secondLabel),
		Type:  schema.HeatmapChart,
		Axes: []schema.Axis{
			{Kind: schema.CategoryAxis, Name: schema.DisplayLabel(sel.TimeField), Labels: counts.OuterKeys},
			{Kind: schema.CategoryAxis, Name: secondLabel, Labels: counts.InnerKeys},
		},
		Legend:     schema.Legend{Show: false, Entries: []string{}},
		Series:     []schema.Series{{Name: "Events", Family: schema.HeatmapFamily, Cells: cells}},
		ColorScale: &schema.ColorScale{Min: 0, Max: float64(maxCount)},
	}
}
