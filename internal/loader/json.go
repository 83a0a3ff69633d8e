package loader

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/trafficlens/trafficlens/schema"
)

// ParseJSON decodes a JSON array of objects into event records. Numbers
// arrive as float64 through the generic decoder, which matches the record
// accessors downstream.
func ParseJSON(r io.Reader) ([]schema.EventRecord, error) {
	var records []schema.EventRecord
	dec := json.NewDecoder(r)
	if err := dec.Decode(&records); err != nil {
		return nil, fmt.Errorf("failed to decode JSON records: %w", err)
	}
	return records, nil
}
