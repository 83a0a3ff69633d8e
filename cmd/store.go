package cmd

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/trafficlens/trafficlens/core"
	"github.com/trafficlens/trafficlens/internal/contract"
	"github.com/trafficlens/trafficlens/schema"
)

// storeSetup loads minimal configuration needed for store operations.
// This is used by commands that need store access without full shared setup.
func storeSetup() error {
	if err := loadConfigFile(); err != nil {
		return err
	}

	// Get store-related config values
	backendStr := viper.GetString("store-backend")
	connStr := viper.GetString("store-db-connect")

	// Handle empty backend as NoneBackend
	var backend schema.StoreBackend
	if backendStr == "" {
		backend = schema.NoneBackend
	} else {
		backend = schema.StoreBackend(backendStr)
	}

	// Basic validation for database backends
	if err := contract.ValidateStoreConnectionString(backend, connStr); err != nil {
		return err
	}

	// Get output-related config values (used by status command)
	cfg.Output = schema.OutputMode(viper.GetString("output"))
	if cfg.Output == "" {
		cfg.Output = contract.DefaultOutput
	}
	cfg.OutputFile = viper.GetString("output-file")

	cfg.StoreBackend = backend
	cfg.StoreDBConnect = connStr

	return nil
}

// storeSetupWrapper wraps storeSetup to provide PreRunE for store commands.
func storeSetupWrapper(_ *cobra.Command, _ []string) error {
	return storeSetup()
}

// storeCmd focused on event store management.
//
// Note: Store subcommands other than 'import' use minimal initialization
// (storeSetup) instead of the full sharedSetup used by chart commands. This
// avoids dimension validation for simple store operations.
var storeCmd = &cobra.Command{
	Use:   "store",
	Short: "Manage the persistent event store",
	Long: `Manage the event store that persists traffic events between runs.

Importing events once lets you generate many charts without re-parsing
the source file each time.

Supported backends: SQLite (default path in $HOME), MySQL, PostgreSQL

Subcommands:
  import  - Load events from a CSV/JSON file into the store
  status  - Show store statistics and connection info
  migrate - Run database schema migrations

Examples:
  # Import a crash dataset into SQLite
  trafficlens store import events.csv --store-backend sqlite

  # Check store status
  trafficlens store status --store-backend sqlite`,
}

// storeImportCmd loads events from a file into the store.
var storeImportCmd = &cobra.Command{
	Use:   "import [input-file]",
	Short: "Load events from a CSV or JSON file into the store",
	Long: `Parse an event file and persist every record in the configured backend.

Records are stored as-is; field selection and bucketing happen at chart
time, so one import serves any dimension combination.

Examples:
  # Import into the default SQLite store
  trafficlens store import events.csv --store-backend sqlite

  # Import into MySQL (set connection string via env variable)
  TRAFFICLENS_STORE_BACKEND=mysql TRAFFICLENS_STORE_DB_CONNECT="..." trafficlens store import events.json`,
	Args:    cobra.ExactArgs(1),
	PreRunE: sharedSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		if err := core.ExecuteStoreImport(rootCtx, cfg); err != nil {
			contract.LogFatal("Failed to import events", err)
		}
	},
}

// storeStatusCmd shows store status.
var storeStatusCmd = &cobra.Command{
	Use:   "status",
	Short: "Display store statistics and connection details",
	Long: `Show detailed information about the event store.

Displays:
- Backend type and connection location
- Total number of stored events
- Database size (SQLite only)

Examples:
  # Check store status
  trafficlens store status --store-backend sqlite`,
	PreRunE: storeSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		if err := core.ExecuteStoreStatus(rootCtx, cfg); err != nil {
			contract.LogFatal("Failed to get store status", err)
		}
	},
}

// storeMigrateCmd runs database migrations for the event store.
var storeMigrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Run database schema migrations (upgrades/downgrades)",
	Long: `Manage database schema versions for the event store.

By default, migrates to the latest version. Use --target-version for
specific versions.

Examples:
  # Migrate to latest version (default)
  trafficlens store migrate --store-backend sqlite

  # Rollback to initial state
  trafficlens store migrate --store-backend sqlite --target-version 0`,
	PreRunE: storeSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		targetVersion := viper.GetInt("target-version")
		if err := core.ExecuteStoreMigrate(rootCtx, cfg, targetVersion); err != nil {
			contract.LogFatal("Failed to run migrations", err)
		}
	},
}
