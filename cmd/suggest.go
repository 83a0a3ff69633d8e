package cmd

import (
	"github.com/spf13/cobra"
	"github.com/trafficlens/trafficlens/core"
	"github.com/trafficlens/trafficlens/internal/contract"
)

// suggestCmd validates a dimension selection and lists supported chart types.
var suggestCmd = &cobra.Command{
	Use:   "suggest",
	Short: "Validate a dimension selection and list the chart types it supports.",
	Long: `Check whether the selected dimensions form a plottable combination.

Prints a verdict plus the chart types the selection supports, in
suggestion order. Use this before 'chart' to see what a given
combination of time, location and category fields can produce.

Examples:
  # What can I plot with a single category?
  trafficlens suggest --categories crash_type

  # Time plus location supports heatmaps
  trafficlens suggest --time-field crash_date --location-field borough

  # Time alone is not plottable
  trafficlens suggest --time-field crash_date`,
	Args:    cobra.NoArgs,
	PreRunE: sharedSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		if err := core.ExecuteSuggest(rootCtx, cfg); err != nil {
			contract.LogFatal("Cannot suggest charts", err)
		}
	},
}
