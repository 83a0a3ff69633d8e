package contract

import (
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/trafficlens/trafficlens/schema"
)

// Default values for configuration.
const (
	DefaultGranularity = schema.DayGranularity
	DefaultOutput      = schema.TextOut
	MaxCategoryFields  = 3
)

// DateTimeFormat is the default date time representation.
var DateTimeFormat = time.RFC3339

// Config holds the runtime configuration for chart generation.
// This struct remains the "final, validated" config.
type Config struct {
	InputFile   string
	InputFormat schema.InputFormat

	Selection schema.DimensionSelection
	ChartType schema.ChartType

	Output     schema.OutputMode
	OutputFile string
	Width      int // Terminal width override (0 = auto-detect)

	StoreBackend   schema.StoreBackend
	StoreDBConnect string // Please use env var as this is plaintext

	UseColors bool // Enable colored output in table rendering
}

// ConfigRawInput holds the raw inputs from all sources (flags, env, config
// file). Viper unmarshals into this struct.
type ConfigRawInput struct {
	// This is set manually from positional args, so no tag
	InputFileStr string

	// --- Fields from rootCmd.PersistentFlags() ---
	Format         string `mapstructure:"format"`
	Output         string `mapstructure:"output"`
	OutputFile     string `mapstructure:"output-file"`
	Width          int    `mapstructure:"width"`
	StoreBackend   string `mapstructure:"store-backend"`
	StoreDBConnect string `mapstructure:"store-db-connect"`
	Color          string `mapstructure:"color"`

	// --- Dimension selection fields ---
	TimeField     string `mapstructure:"time-field"`
	Granularity   string `mapstructure:"granularity"`
	LocationField string `mapstructure:"location-field"`
	Categories    string `mapstructure:"categories"`
	Start         string `mapstructure:"start"`
	End           string `mapstructure:"end"`

	// --- Fields from chartCmd.Flags() ---
	Chart string `mapstructure:"chart"`
}

// Clone returns a deep copy of the Config struct.
func (c *Config) Clone() *Config {
	clone := *c
	if c.Selection.CategoryFields != nil {
		clone.Selection.CategoryFields = make([]string, len(c.Selection.CategoryFields))
		copy(clone.Selection.CategoryFields, c.Selection.CategoryFields)
	}
	if c.Selection.DateRange != nil {
		dr := *c.Selection.DateRange
		clone.Selection.DateRange = &dr
	}
	return &clone
}

// ProcessAndValidate performs all parsing and validation on the raw inputs
// and updates the final Config struct.
func ProcessAndValidate(cfg *Config, input *ConfigRawInput) error {
	// All validation functions read from 'input' and populate 'cfg'.
	if err := validateSimpleInputs(cfg, input); err != nil {
		return err
	}
	if err := processInputSource(cfg, input); err != nil {
		return err
	}
	if err := processSelection(cfg, input); err != nil {
		return err
	}
	if err := processDateRange(cfg, input); err != nil {
		return err
	}
	return nil
}

// validateSimpleInputs processes and validates all non-dimension fields.
func validateSimpleInputs(cfg *Config, input *ConfigRawInput) error {
	cfg.OutputFile = input.OutputFile
	cfg.Width = input.Width

	// Parse color flag
	colors, err := ParseBoolString(input.Color)
	if err != nil {
		return fmt.Errorf("invalid --color value: %w", err)
	}
	cfg.UseColors = colors

	// --- Output Validation ---
	cfg.Output = schema.OutputMode(strings.ToLower(input.Output))
	if cfg.Output == "" {
		cfg.Output = DefaultOutput
	}
	if _, ok := schema.ValidOutputModes[cfg.Output]; !ok {
		return fmt.Errorf("invalid output format '%s'. must be text, csv, json, parquet", input.Output)
	}

	// --- Store Backend Validation ---
	cfg.StoreBackend = schema.StoreBackend(strings.ToLower(input.StoreBackend))
	if cfg.StoreBackend == "" {
		cfg.StoreBackend = schema.NoneBackend
	}
	if _, ok := schema.ValidStoreBackends[cfg.StoreBackend]; !ok {
		return fmt.Errorf("invalid store backend '%s'. must be sqlite, mysql, postgresql, none", input.StoreBackend)
	}
	cfg.StoreDBConnect = input.StoreDBConnect
	if err := ValidateStoreConnectionString(cfg.StoreBackend, cfg.StoreDBConnect); err != nil {
		return err
	}

	// --- Chart Type Validation ---
	cfg.ChartType = schema.ChartType(strings.ToLower(strings.TrimSpace(input.Chart)))
	if cfg.ChartType != "" {
		if _, ok := schema.ValidChartTypes[cfg.ChartType]; !ok {
			return fmt.Errorf("invalid chart type '%s'. run 'trafficlens suggest' to list valid types", input.Chart)
		}
	}

	return nil
}

// processInputSource resolves the input file and its format. The format
// flag wins; otherwise the file extension decides.
func processInputSource(cfg *Config, input *ConfigRawInput) error {
	cfg.InputFile = strings.TrimSpace(input.InputFileStr)

	format := schema.InputFormat(strings.ToLower(input.Format))
	if format == "" && cfg.InputFile != "" {
		switch strings.ToLower(filepath.Ext(cfg.InputFile)) {
		case ".csv":
			format = schema.CSVInput
		case ".json":
			format = schema.JSONInput
		}
	}
	if format == "" {
		format = schema.CSVInput
	}
	if _, ok := schema.ValidInputFormats[format]; !ok {
		return fmt.Errorf("invalid input format '%s'. must be csv, json", input.Format)
	}
	cfg.InputFormat = format
	return nil
}

// processSelection builds the dimension selection from the raw flags.
func processSelection(cfg *Config, input *ConfigRawInput) error {
	sel := schema.DimensionSelection{
		TimeField:     strings.TrimSpace(input.TimeField),
		LocationField: strings.TrimSpace(input.LocationField),
	}

	if input.Granularity != "" {
		sel.Granularity = schema.Granularity(strings.ToLower(input.Granularity))
		if _, ok := schema.ValidGranularities[sel.Granularity]; !ok {
			return fmt.Errorf("invalid granularity '%s'. must be hour, day, month, year", input.Granularity)
		}
	} else if sel.TimeField != "" {
		sel.Granularity = DefaultGranularity
	}

	if input.Categories != "" {
		for p := range strings.SplitSeq(input.Categories, ",") {
			trimmed := strings.TrimSpace(p)
			if trimmed != "" {
				sel.CategoryFields = append(sel.CategoryFields, trimmed)
			}
		}
	}
	if len(sel.CategoryFields) > MaxCategoryFields {
		return fmt.Errorf("at most %d category fields are supported (received %d)", MaxCategoryFields, len(sel.CategoryFields))
	}

	if err := sel.Validate(); err != nil {
		return err
	}

	cfg.Selection = sel
	return nil
}

// processDateRange handles the optional date window flags.
func processDateRange(cfg *Config, input *ConfigRawInput) error {
	if input.Start == "" && input.End == "" {
		return nil
	}

	var dr schema.DateRange
	now := time.Now()

	if input.Start != "" {
		t, err := ParseDateInput(input.Start, now)
		if err != nil {
			return fmt.Errorf("invalid start date '%s'. Expected ISO8601, YYYY-MM-DD or 'N [units] ago': %w", input.Start, err)
		}
		dr.Start = t
	}

	dr.End = now
	if input.End != "" {
		t, err := ParseDateInput(input.End, now)
		if err != nil {
			return fmt.Errorf("invalid end date '%s'. Expected ISO8601, YYYY-MM-DD or 'N [units] ago': %w", input.End, err)
		}
		dr.End = t
	}

	if !dr.Start.IsZero() && dr.Start.After(dr.End) {
		return fmt.Errorf("start time (%s) cannot be after end time (%s)",
			dr.Start.Format(DateTimeFormat), dr.End.Format(DateTimeFormat))
	}

	cfg.Selection.DateRange = &dr
	return nil
}

// ValidateStoreConnectionString validates the format of database connection
// strings for MySQL and PostgreSQL backends.
func ValidateStoreConnectionString(backend schema.StoreBackend, connStr string) error {
	switch backend {
	case schema.SQLiteBackend, schema.NoneBackend:
		return nil
	case schema.MySQLBackend:
		if connStr == "" {
			return fmt.Errorf("store-db-connect is required when using %s backend", backend)
		}
		if !strings.Contains(connStr, "@tcp(") {
			return fmt.Errorf("MySQL connection string must contain '@tcp(' for host:port specification")
		}
		if !strings.Contains(connStr, "/") {
			return fmt.Errorf("MySQL connection string must contain '/' followed by database name")
		}
	case schema.PostgreSQLBackend:
		if connStr == "" {
			return fmt.Errorf("store-db-connect is required when using %s backend", backend)
		}
		if !strings.Contains(connStr, "host=") {
			return fmt.Errorf("PostgreSQL connection string must contain 'host=' parameter")
		}
		if !strings.Contains(connStr, "dbname=") {
			return fmt.Errorf("PostgreSQL connection string must contain 'dbname=' parameter")
		}
	}
	return nil
}
