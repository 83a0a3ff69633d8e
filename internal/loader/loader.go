// Package loader reads event records from CSV and JSON input files.
package loader

import (
	"fmt"
	"os"

	"github.com/trafficlens/trafficlens/internal/contract"
	"github.com/trafficlens/trafficlens/schema"
)

// FileSource reads event records from a file on disk.
type FileSource struct {
	Path   string
	Format schema.InputFormat
}

var _ contract.RecordSource = (*FileSource)(nil)

// NewFileSource builds a source for the given path and format.
func NewFileSource(path string, format schema.InputFormat) *FileSource {
	return &FileSource{Path: path, Format: format}
}

// Load reads and decodes the whole input file.
func (s *FileSource) Load() ([]schema.EventRecord, error) {
	f, err := os.Open(s.Path)
	if err != nil {
		return nil, fmt.Errorf("cannot open input file: %w", err)
	}
	defer func() { _ = f.Close() }()

	switch s.Format {
	case schema.JSONInput:
		return ParseJSON(f)
	case schema.CSVInput:
		return ParseCSV(f)
	default:
		return nil, fmt.Errorf("unsupported input format %q", s.Format)
	}
}
