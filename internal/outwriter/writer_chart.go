package outwriter

import (
	"encoding/csv"
	"fmt"
	"io"

	"github.com/trafficlens/trafficlens/schema"
)

// chartCSVHeader is the flattened row shape shared by every chart family.
var chartCSVHeader = []string{"series", "family", "key", "subkey", "value"}

// writeCSVChartSpec writes the chart data as flattened rows. Each family
// collapses into (key, subkey, value) triples: series points use the axis
// label as key, heatmap cells use time and location, boxplots emit one row
// per summary statistic.
func writeCSVChartSpec(w io.Writer, spec schema.ChartSpec) error {
	return writeCSVWithHeader(w, chartCSVHeader, func(cw *csv.Writer) error {
		for _, row := range flattenChartSpec(spec) {
			if err := cw.Write(row); err != nil {
				return err
			}
		}
		return nil
	})
}

// flattenChartSpec converts every series payload into uniform string rows.
func flattenChartSpec(spec schema.ChartSpec) [][]string {
	var rows [][]string
	labels := axisLabels(spec, 0)

	for _, s := range spec.Series {
		switch {
		case len(s.Boxes) > 0:
			for _, b := range s.Boxes {
				stats := []struct {
					name  string
					value float64
				}{
					{"min", b.Summary.Min},
					{"q1", b.Summary.Q1},
					{"median", b.Summary.Median},
					{"q3", b.Summary.Q3},
					{"max", b.Summary.Max},
				}
				for _, st := range stats {
					rows = append(rows, []string{s.Name, string(s.Family), b.Category, st.name, formatCount(st.value)})
				}
			}

		case len(s.Cells) > 0:
			for _, c := range s.Cells {
				rows = append(rows, []string{s.Name, string(s.Family), c.Time, c.Location, fmt.Sprintf("%d", c.Count)})
			}

		case len(s.Pairs) > 0:
			for _, p := range s.Pairs {
				rows = append(rows, []string{s.Name, string(s.Family), p.Name, "", formatCount(p.Value)})
			}

		default:
			for i, v := range s.Values {
				key := ""
				if i < len(labels) {
					key = labels[i]
				}
				rows = append(rows, []string{s.Name, string(s.Family), key, "", formatCount(v)})
			}
		}
	}
	return rows
}
