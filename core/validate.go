package core

import "github.com/trafficlens/trafficlens/schema"

// Validate decides whether the selected dimension combination can produce a
// meaningful chart and, if so, which chart types apply. Time-only and
// location-only selections are rejected: a single axis with no category to
// split on degenerates into a one-bar chart. Every accepted combination
// guarantees at least one grouping key plus the event count measure.
//
// This is the single source of truth for chart type legality. BuildChart
// refuses (with a placeholder) any type outside the suggested set.
func Validate(sel schema.DimensionSelection) schema.Validation {
	hasTime := sel.HasTime()
	hasLocation := sel.HasLocation()
	hasCategory := sel.HasCategory()

	switch {
	case hasTime && hasLocation && hasCategory:
		return schema.Validation{
			Valid: true,
			SuggestedTypes: []schema.ChartType{
				schema.StackedBarChart, schema.GroupedBarChart, schema.LineChart,
				schema.HeatmapChart, schema.BoxplotChart, schema.MultiAxisChart,
			},
		}
	case hasTime && hasLocation:
		return schema.Validation{
			Valid:          true,
			SuggestedTypes: []schema.ChartType{schema.LineChart, schema.HeatmapChart},
		}
	case hasTime && hasCategory:
		return schema.Validation{
			Valid: true,
			SuggestedTypes: []schema.ChartType{
				schema.LineChart, schema.GroupedBarChart, schema.HeatmapChart, schema.MultiAxisChart,
			},
		}
	case hasLocation && hasCategory:
		return schema.Validation{
			Valid: true,
			SuggestedTypes: []schema.ChartType{
				schema.GroupedBarChart, schema.StackedBarChart, schema.PieChart,
			},
		}
	case hasCategory:
		return schema.Validation{
			Valid: true,
			SuggestedTypes: []schema.ChartType{
				schema.BarChart, schema.PieChart, schema.TreemapChart, schema.SunburstChart,
			},
		}
	default:
		// Time-only, location-only, or nothing at all.
		return schema.Validation{Valid: false}
	}
}
