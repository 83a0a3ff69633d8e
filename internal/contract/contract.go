// Package contract provides configuration processing and shared utilities
// for internal architecture.
package contract

import (
	"github.com/trafficlens/trafficlens/schema"
)

// RecordSource defines the operations for reading event records from an
// input. This allows the orchestration layer to be tested without real
// files or databases.
type RecordSource interface {
	// Load reads every event record the source holds.
	Load() ([]schema.EventRecord, error)
}

// EventStore defines the interface for persisting and querying event
// records in a SQL backend.
type EventStore interface {
	// InsertRecords stores a batch of event records.
	InsertRecords(records []schema.EventRecord) (int, error)

	// LoadRecords returns all stored event records in insertion order.
	LoadRecords() ([]schema.EventRecord, error)

	// GetStatus returns status information about the store.
	GetStatus() (StoreStatus, error)

	// Close closes the underlying connection.
	Close() error
}

// StoreStatus summarizes the state of an event store.
type StoreStatus struct {
	Backend     schema.StoreBackend `json:"backend"`
	Location    string              `json:"location"`
	RecordCount int64               `json:"recordCount"`
	SizeBytes   int64               `json:"sizeBytes,omitempty"`
}
