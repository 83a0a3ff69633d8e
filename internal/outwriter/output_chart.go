package outwriter

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/fatih/color"
	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/tw"
	"github.com/trafficlens/trafficlens/internal/contract"
	"github.com/trafficlens/trafficlens/schema"
)

// titleColor renders chart titles in table output.
var titleColor = color.New(color.FgCyan, color.Bold)

// placeholderColor renders placeholder titles in table output.
var placeholderColor = color.New(color.FgYellow)

// PrintChartSpec outputs a chart specification, dispatching based on the
// output format configured.
func PrintChartSpec(spec schema.ChartSpec, cfg *contract.Config, duration time.Duration) error {
	switch cfg.Output {
	case schema.JSONOut:
		if err := printJSONChartSpec(spec, cfg); err != nil {
			return fmt.Errorf("error writing JSON output: %w", err)
		}
	case schema.CSVOut:
		if err := printCSVChartSpec(spec, cfg); err != nil {
			return fmt.Errorf("error writing CSV output: %w", err)
		}
	default:
		// Default to human-readable table
		if err := printChartTable(spec, cfg, duration); err != nil {
			return fmt.Errorf("error writing table output: %w", err)
		}
	}
	return nil
}

// printJSONChartSpec handles opening the file and calling the JSON writer.
func printJSONChartSpec(spec schema.ChartSpec, cfg *contract.Config) error {
	return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
		return writeJSON(w, spec)
	}, "Wrote JSON")
}

// printCSVChartSpec handles opening the file and calling the CSV writer.
func printCSVChartSpec(spec schema.ChartSpec, cfg *contract.Config) error {
	return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
		return writeCSVChartSpec(w, spec)
	}, "Wrote CSV")
}

// printChartTable prints the chart data as a table preview so a spec can be
// inspected without a renderer.
func printChartTable(spec schema.ChartSpec, cfg *contract.Config, duration time.Duration) error {
	if spec.Placeholder {
		if cfg.UseColors {
			_, _ = placeholderColor.Println(spec.Title)
		} else {
			fmt.Println(spec.Title)
		}
		return nil
	}

	if cfg.UseColors {
		_, _ = titleColor.Println(spec.Title)
	} else {
		fmt.Println(spec.Title)
	}

	table := tablewriter.NewWriter(os.Stdout)
	table.Configure(func(tcfg *tablewriter.Config) {
		tcfg.Row.Alignment.Global = tw.AlignRight
	})

	headers, data := chartTableContent(spec, GetMaxTableLabelWidth(cfg))
	table.Header(headers)
	if err := table.Bulk(data); err != nil {
		return err
	}
	if err := table.Render(); err != nil {
		return err
	}

	fmt.Printf("Chart type: %s (%d series). Generated in %v\n", spec.Type, len(spec.Series), duration)
	return nil
}

// chartTableContent flattens a chart spec into table headers and rows. The
// shape depends on the series payload: aligned values, name-value pairs,
// heatmap cells, or box summaries.
func chartTableContent(spec schema.ChartSpec, maxLabelWidth int) ([]string, [][]string) {
	if len(spec.Series) == 0 {
		return []string{"Series"}, nil
	}
	first := spec.Series[0]

	switch {
	case len(first.Boxes) > 0:
		headers := []string{"Category", "Min", "Q1", "Median", "Q3", "Max"}
		var data [][]string
		for _, b := range first.Boxes {
			data = append(data, []string{
				truncateLabel(b.Category, maxLabelWidth),
				formatCount(b.Summary.Min),
				formatCount(b.Summary.Q1),
				formatCount(b.Summary.Median),
				formatCount(b.Summary.Q3),
				formatCount(b.Summary.Max),
			})
		}
		return headers, data

	case len(first.Cells) > 0:
		// Heatmap grid: one row per time bucket, one column per location.
		timeLabels := axisLabels(spec, 0)
		locLabels := axisLabels(spec, 1)
		headers := append([]string{"Time"}, locLabels...)
		counts := make(map[[2]string]int, len(first.Cells))
		for _, c := range first.Cells {
			counts[[2]string{c.Time, c.Location}] = c.Count
		}
		var data [][]string
		for _, t := range timeLabels {
			row := []string{truncateLabel(t, maxLabelWidth)}
			for _, loc := range locLabels {
				row = append(row, fmt.Sprintf("%d", counts[[2]string{t, loc}]))
			}
			data = append(data, row)
		}
		return headers, data

	case len(first.Pairs) > 0:
		headers := []string{"Name", "Count"}
		var data [][]string
		for _, p := range first.Pairs {
			data = append(data, []string{truncateLabel(p.Name, maxLabelWidth), formatCount(p.Value)})
		}
		return headers, data

	default:
		// Aligned value series: one row per axis label, one column per series.
		labels := axisLabels(spec, 0)
		headers := []string{axisName(spec, 0)}
		for _, s := range spec.Series {
			headers = append(headers, s.Name)
		}
		var data [][]string
		for i, label := range labels {
			row := []string{truncateLabel(label, maxLabelWidth)}
			for _, s := range spec.Series {
				if i < len(s.Values) {
					row = append(row, formatCount(s.Values[i]))
				} else {
					row = append(row, "0")
				}
			}
			data = append(data, row)
		}
		return headers, data
	}
}

func axisLabels(spec schema.ChartSpec, index int) []string {
	if index < len(spec.Axes) {
		return spec.Axes[index].Labels
	}
	return nil
}

func axisName(spec schema.ChartSpec, index int) string {
	if index < len(spec.Axes) && spec.Axes[index].Name != "" {
		return spec.Axes[index].Name
	}
	return "Bucket"
}
