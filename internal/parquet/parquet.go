// Package parquet exports chart specification data to Parquet files using
// github.com/parquet-go/parquet-go.
package parquet

import (
	"fmt"
	"os"
	"time"

	"github.com/parquet-go/parquet-go"
	"github.com/trafficlens/trafficlens/schema"
)

// ChartRow is one flattened data point of a chart specification. Every
// series payload collapses into this shape: aligned values use Key for the
// axis label, heatmap cells use Key and Subkey for the grid coordinates,
// boxplot summaries emit one row per statistic.
type ChartRow struct {
	// ChartTitle is the title of the spec the row belongs to
	ChartTitle string `parquet:"chart_title,snappy"`

	// ChartType is the chart type of the spec
	ChartType string `parquet:"chart_type,snappy"`

	// SeriesName is the name of the series the row belongs to
	SeriesName string `parquet:"series_name,snappy"`

	// Family is the render family of the series
	Family string `parquet:"family,snappy"`

	// Key is the primary grouping key (axis label, pair name, time bucket)
	Key string `parquet:"key,snappy"`

	// Subkey is the secondary grouping key (nullable)
	Subkey *string `parquet:"subkey,optional,snappy"`

	// Value is the aggregated value for this data point
	Value float64 `parquet:"value,snappy"`

	// GeneratedAt is when the chart was generated
	GeneratedAt time.Time `parquet:"generated_at,snappy"`
}

// FlattenChartSpec converts a chart specification into Parquet rows.
func FlattenChartSpec(spec schema.ChartSpec, generatedAt time.Time) []ChartRow {
	base := ChartRow{
		ChartTitle:  spec.Title,
		ChartType:   string(spec.Type),
		GeneratedAt: generatedAt,
	}

	var labels []string
	if len(spec.Axes) > 0 {
		labels = spec.Axes[0].Labels
	}

	var rows []ChartRow
	for _, s := range spec.Series {
		row := base
		row.SeriesName = s.Name
		row.Family = string(s.Family)

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
					r := row
					r.Key = b.Category
					name := st.name
					r.Subkey = &name
					r.Value = st.value
					rows = append(rows, r)
				}
			}

		case len(s.Cells) > 0:
			for _, c := range s.Cells {
				r := row
				r.Key = c.Time
				loc := c.Location
				r.Subkey = &loc
				r.Value = float64(c.Count)
				rows = append(rows, r)
			}

		case len(s.Pairs) > 0:
			for _, p := range s.Pairs {
				r := row
				r.Key = p.Name
				r.Value = p.Value
				rows = append(rows, r)
			}

		default:
			for i, v := range s.Values {
				r := row
				if i < len(labels) {
					r.Key = labels[i]
				}
				r.Value = v
				rows = append(rows, r)
			}
		}
	}
	return rows
}

// WriteChartRowsParquet writes a slice of ChartRow structs to a Parquet file.
func WriteChartRowsParquet(data []ChartRow, outputPath string) error {
	// Create the output file
	file, err := os.Create(outputPath)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	defer func() { _ = file.Close() }()

	// Create a Parquet writer using struct schema inference
	// The schema is automatically derived from the ChartRow struct tags
	writer := parquet.NewGenericWriter[ChartRow](file)
	defer func() { _ = writer.Close() }()

	// Write all records to the file
	if _, err := writer.Write(data); err != nil {
		return fmt.Errorf("failed to write data to parquet file: %w", err)
	}

	return nil
}

// WriteChartSpecParquet flattens a chart specification and writes it to a
// Parquet file in one step.
func WriteChartSpecParquet(spec schema.ChartSpec, outputPath string) error {
	if outputPath == "" {
		return fmt.Errorf("parquet output requires --output-file")
	}
	return WriteChartRowsParquet(FlattenChartSpec(spec, time.Now()), outputPath)
}
