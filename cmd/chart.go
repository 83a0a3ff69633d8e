package cmd

import (
	"github.com/spf13/cobra"
	"github.com/trafficlens/trafficlens/core"
	"github.com/trafficlens/trafficlens/internal/contract"
)

// chartCmd builds a chart specification from event records.
var chartCmd = &cobra.Command{
	Use:   "chart [input-file]",
	Short: "Aggregate events and emit a declarative chart specification.",
	Long: `Bucket event records along the selected dimensions and emit a chart spec.

Reads events from a CSV or JSON file, or from the configured event store
when no file is given. The selected dimensions decide which chart types
are valid; invalid combinations produce a placeholder spec rather than
an error.

Dimensions:
- Time: bucket timestamps by hour, day, month or year
- Location: group events by a location field
- Category: split or slice events by up to three category fields

Examples:
  # Daily crash counts as a line chart
  trafficlens chart events.csv --time-field crash_date --categories crash_type --chart line

  # Borough breakdown as a pie chart
  trafficlens chart events.csv --categories borough --chart pie

  # Hour-by-borough heatmap for the last month
  trafficlens chart events.csv --time-field crash_date --granularity hour \
    --location-field borough --chart heatmap --start "1 month ago"

  # Chart straight from the event store, exported as Parquet
  trafficlens chart --store-backend sqlite --categories crash_type \
    --chart bar --output parquet --output-file chart.parquet`,
	Args:    cobra.MaximumNArgs(1),
	PreRunE: sharedSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		if err := core.ExecuteChart(rootCtx, cfg); err != nil {
			contract.LogFatal("Cannot build chart", err)
		}
	},
}
