// Package outwriter has output and writer logic.
package outwriter

import (
	"time"

	"github.com/trafficlens/trafficlens/internal/contract"
	"github.com/trafficlens/trafficlens/schema"
)

// OutWriter provides a unified interface for all output operations.
// It encapsulates the various output formats and provides a clean API for
// the core logic.
type OutWriter struct{}

// NewOutWriter creates a new instance of the output writer.
func NewOutWriter() *OutWriter {
	return &OutWriter{}
}

// WriteChart prints a chart specification using the configured output format.
func (ow *OutWriter) WriteChart(spec schema.ChartSpec, cfg *contract.Config, duration time.Duration) error {
	return PrintChartSpec(spec, cfg, duration)
}

// WriteValidation prints a dimension validation verdict using the
// configured output format.
func (ow *OutWriter) WriteValidation(validation schema.Validation, sel schema.DimensionSelection, cfg *contract.Config) error {
	return PrintValidation(validation, sel, cfg)
}

// WriteStoreStatus prints event store status using the configured output format.
func (ow *OutWriter) WriteStoreStatus(status contract.StoreStatus, cfg *contract.Config) error {
	return PrintStoreStatus(status, cfg)
}
