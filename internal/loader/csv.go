package loader

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/trafficlens/trafficlens/schema"
)

// ParseCSV decodes CSV data into event records. The first row is the
// header; every later row becomes one record keyed by header name. Values
// that parse as numbers are stored as float64 so numeric fields survive
// the generic record shape; everything else stays a string.
func ParseCSV(r io.Reader) ([]schema.EventRecord, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1

	headers, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("failed to read CSV headers: %w", err)
	}
	for i, h := range headers {
		headers[i] = strings.TrimSpace(h)
	}

	var records []schema.EventRecord
	for {
		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			// Skip malformed rows rather than abandoning the whole file.
			continue
		}

		rec := make(schema.EventRecord, len(headers))
		for i, val := range row {
			if i >= len(headers) || headers[i] == "" {
				continue
			}
			rec[headers[i]] = coerceValue(val)
		}
		records = append(records, rec)
	}
	return records, nil
}

// coerceValue turns a CSV cell into its natural Go type.
func coerceValue(s string) any {
	trimmed := strings.TrimSpace(s)
	if trimmed != "" && !strings.EqualFold(trimmed, "nan") {
		if n, err := strconv.ParseFloat(trimmed, 64); err == nil {
			return n
		}
	}
	return trimmed
}
