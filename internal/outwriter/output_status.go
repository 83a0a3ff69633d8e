package outwriter

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"github.com/trafficlens/trafficlens/internal/contract"
	"github.com/trafficlens/trafficlens/schema"
)

// PrintStoreStatus outputs event store status, dispatching based on the
// output format configured.
func PrintStoreStatus(status contract.StoreStatus, cfg *contract.Config) error {
	switch cfg.Output {
	case schema.JSONOut:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeJSON(w, status)
		}, "Wrote JSON")

	case schema.CSVOut:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeCSVWithHeader(w, []string{"backend", "location", "record_count", "size_bytes"}, func(cw *csv.Writer) error {
				return cw.Write([]string{
					string(status.Backend),
					status.Location,
					strconv.FormatInt(status.RecordCount, 10),
					strconv.FormatInt(status.SizeBytes, 10),
				})
			})
		}, "Wrote CSV")

	default:
		fmt.Printf("Event store backend: %s\n", status.Backend)
		if status.Location != "" {
			fmt.Printf("Location: %s\n", status.Location)
		}
		fmt.Printf("Records: %d\n", status.RecordCount)
		if status.SizeBytes > 0 {
			fmt.Printf("Size: %d bytes\n", status.SizeBytes)
		}
		return nil
	}
}
