package core

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/trafficlens/trafficlens/internal/contract"
	"github.com/trafficlens/trafficlens/internal/eventstore"
	"github.com/trafficlens/trafficlens/internal/loader"
	"github.com/trafficlens/trafficlens/internal/outwriter"
	"github.com/trafficlens/trafficlens/internal/parquet"
	"github.com/trafficlens/trafficlens/schema"
)

// ExecutorFunc defines the function signature for executing different
// command modes.
type ExecutorFunc func(ctx context.Context, cfg *contract.Config) error

// ExecuteChart loads records, builds the chart specification, and writes it
// in the configured output format. It serves as the main entry point for
// the 'chart' mode.
func ExecuteChart(_ context.Context, cfg *contract.Config) error {
	start := time.Now()

	records, err := LoadRecords(cfg)
	if err != nil {
		return err
	}

	spec := BuildChart(records, cfg.Selection, cfg.ChartType)

	if cfg.Output == schema.ParquetOut {
		return parquet.WriteChartSpecParquet(spec, cfg.OutputFile)
	}
	duration := time.Since(start)
	return outwriter.NewOutWriter().WriteChart(spec, cfg, duration)
}

// ExecuteSuggest validates the dimension selection and prints the chart
// types it supports. It serves as the main entry point for the 'suggest'
// mode.
func ExecuteSuggest(_ context.Context, cfg *contract.Config) error {
	validation := Validate(cfg.Selection)
	return outwriter.NewOutWriter().WriteValidation(validation, cfg.Selection, cfg)
}

// ExecuteStoreImport reads records from the input file and persists them in
// the configured event store backend.
func ExecuteStoreImport(ctx context.Context, cfg *contract.Config) error {
	n, err := ImportRecords(ctx, cfg)
	if err != nil {
		return err
	}
	fmt.Printf("Imported %d events into %s store\n", n, cfg.StoreBackend)
	return nil
}

// ImportRecords loads records from the input file and inserts them into the
// event store, returning the number of inserted records. It does not write
// to stdout, so protocol servers can call it safely.
func ImportRecords(_ context.Context, cfg *contract.Config) (int, error) {
	if cfg.InputFile == "" {
		return 0, errors.New("an input file is required to import events")
	}
	if cfg.StoreBackend == schema.NoneBackend {
		return 0, errors.New("--store-backend is required to import events")
	}

	records, err := loader.NewFileSource(cfg.InputFile, cfg.InputFormat).Load()
	if err != nil {
		return 0, err
	}

	store, err := eventstore.NewStore(cfg.StoreBackend, cfg.StoreDBConnect)
	if err != nil {
		return 0, err
	}
	defer closeStore(store)

	return store.InsertRecords(records)
}

// ExecuteStoreStatus prints status information for the configured event
// store backend.
func ExecuteStoreStatus(_ context.Context, cfg *contract.Config) error {
	store, err := eventstore.NewStore(cfg.StoreBackend, cfg.StoreDBConnect)
	if err != nil {
		return err
	}
	defer closeStore(store)

	status, err := store.GetStatus()
	if err != nil {
		return err
	}
	return outwriter.NewOutWriter().WriteStoreStatus(status, cfg)
}

// ExecuteStoreMigrate runs event store migrations to the target version.
func ExecuteStoreMigrate(_ context.Context, cfg *contract.Config, targetVersion int) error {
	return eventstore.Migrate(cfg.StoreBackend, cfg.StoreDBConnect, targetVersion)
}

// LoadRecords reads event records from the input file when one is given,
// otherwise from the configured event store.
func LoadRecords(cfg *contract.Config) ([]schema.EventRecord, error) {
	if cfg.InputFile != "" {
		return loader.NewFileSource(cfg.InputFile, cfg.InputFormat).Load()
	}

	if cfg.StoreBackend != schema.NoneBackend {
		store, err := eventstore.NewStore(cfg.StoreBackend, cfg.StoreDBConnect)
		if err != nil {
			return nil, err
		}
		defer closeStore(store)
		return store.LoadRecords()
	}

	return nil, errors.New("no event source: provide an input file or configure --store-backend")
}

// closeStore closes an event store, downgrading close failures to warnings.
func closeStore(store contract.EventStore) {
	if err := store.Close(); err != nil {
		contract.LogWarn("closing event store", err)
	}
}
