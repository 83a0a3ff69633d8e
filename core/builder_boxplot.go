package core

import (
	"fmt"
	"sort"

	"github.com/trafficlens/trafficlens/schema"
)

// buildBoxplot emits one five-number-summary glyph per category value. The
// samples behind each glyph are that category's event counts per
// (time bucket, location) cell; empty cells contribute nothing. A category
// needs at least schema.MinBoxplotSamples non-zero samples to earn a glyph,
// otherwise a single outlier week would masquerade as a distribution.
func buildBoxplot(records []schema.EventRecord, sel schema.DimensionSelection) schema.ChartSpec {
	if !sel.HasTime() || !sel.HasLocation() || !sel.HasCategory() {
		return placeholderSpec(TitleInsufficientData)
	}

	g := sel.EffectiveGranularity()
	timeKey := TimeBucketKey(sel.TimeField, g)
	locKey := FieldKey(sel.LocationField)
	catKey := FieldKey(sel.CategoryFields[0])

	// category -> (time bucket, location) -> count
	cellCounts := make(map[string]map[[2]string]int)
	var catOrder []string
	for _, rec := range records {
		cat, ok := catKey(rec)
		if !ok {
			continue
		}
		t, ok := timeKey(rec)
		if !ok {
			continue
		}
		loc, ok := locKey(rec)
		if !ok {
			continue
		}
		if cellCounts[cat] == nil {
			cellCounts[cat] = make(map[[2]string]int)
			catOrder = append(catOrder, cat)
		}
		cellCounts[cat][[2]string{t, loc}]++
	}
	sort.Strings(catOrder)

	boxes := make([]schema.BoxItem, 0, len(catOrder))
	for _, cat := range catOrder {
		samples := make([]float64, 0, len(cellCounts[cat]))
		for _, c := range cellCounts[cat] {
			if c > 0 {
				samples = append(samples, float64(c))
			}
		}
		if len(samples) < schema.MinBoxplotSamples {
			continue
		}
		summary, ok := FiveNumberSummary(samples)
		if !ok {
			continue
		}
		boxes = append(boxes, schema.BoxItem{Category: cat, Summary: summary})
	}

	if len(boxes) == 0 {
		return placeholderSpec(TitleInsufficientData)
	}

	catLabel := schema.DisplayLabel(sel.CategoryFields[0])
	labels := make([]string, 0, len(boxes))
	for _, b := range boxes {
		labels = append(labels, b.Category)
	}

	return schema.ChartSpec{
		Title: fmt.Sprintf("Event Distribution by %s", catLabel),
		Type:  schema.BoxplotChart,
		Axes: []schema.Axis{
			{Kind: schema.CategoryAxis, Name: catLabel, Labels: labels},
			{Kind: schema.ValueAxis, Name: "Events per Period"},
		},
		Legend: schema.Legend{Show: false, Entries: []string{}},
		Series: []schema.Series{{Name: catLabel, Family: schema.BoxplotFamily, Boxes: boxes}},
	}
}
