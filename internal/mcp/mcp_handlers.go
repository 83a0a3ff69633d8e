package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/trafficlens/trafficlens/core"
	"github.com/trafficlens/trafficlens/internal/contract"
	"github.com/trafficlens/trafficlens/schema"
)

// toolHandler holds common dependencies for MCP tool handlers.
type toolHandler struct {
	baseCfg *contract.Config
}

// selectionFromRequest reads the shared dimension arguments into a fresh
// selection on a cloned config.
func (h *toolHandler) selectionFromRequest(request mcp.CallToolRequest) (*contract.Config, error) {
	cfg := h.baseCfg.Clone()

	sel := schema.DimensionSelection{
		TimeField:     strings.TrimSpace(request.GetString("time_field", "")),
		LocationField: strings.TrimSpace(request.GetString("location_field", "")),
	}

	if g := request.GetString("granularity", ""); g != "" {
		sel.Granularity = schema.Granularity(strings.ToLower(g))
	} else if sel.TimeField != "" {
		sel.Granularity = contract.DefaultGranularity
	}

	if cats := request.GetString("categories", ""); cats != "" {
		for p := range strings.SplitSeq(cats, ",") {
			trimmed := strings.TrimSpace(p)
			if trimmed != "" {
				sel.CategoryFields = append(sel.CategoryFields, trimmed)
			}
		}
	}

	now := time.Now()
	start := request.GetString("start", "")
	end := request.GetString("end", "")
	if start != "" || end != "" {
		var dr schema.DateRange
		var err error
		if start != "" {
			if dr.Start, err = contract.ParseDateInput(start, now); err != nil {
				return nil, fmt.Errorf("invalid start date: %w", err)
			}
		}
		dr.End = now
		if end != "" {
			if dr.End, err = contract.ParseDateInput(end, now); err != nil {
				return nil, fmt.Errorf("invalid end date: %w", err)
			}
		}
		sel.DateRange = &dr
	}

	if err := sel.Validate(); err != nil {
		return nil, err
	}
	cfg.Selection = sel
	return cfg, nil
}

func (h *toolHandler) handleSuggestCharts(_ context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	cfg, err := h.selectionFromRequest(request)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("invalid selection: %v", err)), nil
	}

	validation := core.Validate(cfg.Selection)
	jsonData, _ := json.MarshalIndent(validation, "", "  ")
	return mcp.NewToolResultText(string(jsonData)), nil
}

func (h *toolHandler) handleGenerateChart(_ context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	cfg, err := h.selectionFromRequest(request)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("invalid selection: %v", err)), nil
	}

	cfg.ChartType = schema.ChartType(strings.ToLower(request.GetString("chart", "")))

	if f := request.GetString("input_file", ""); f != "" {
		cfg.InputFile = f
		switch strings.ToLower(filepath.Ext(f)) {
		case ".json":
			cfg.InputFormat = schema.JSONInput
		default:
			cfg.InputFormat = schema.CSVInput
		}
	}

	records, err := core.LoadRecords(cfg)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("failed to load records: %v", err)), nil
	}

	spec := core.BuildChart(records, cfg.Selection, cfg.ChartType)
	jsonData, _ := json.MarshalIndent(spec, "", "  ")
	return mcp.NewToolResultText(string(jsonData)), nil
}

func (h *toolHandler) handleImportEvents(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	cfg := h.baseCfg.Clone()

	cfg.InputFile = strings.TrimSpace(request.GetString("input_file", ""))
	if cfg.InputFile == "" {
		return mcp.NewToolResultError("input_file is required"), nil
	}
	switch strings.ToLower(filepath.Ext(cfg.InputFile)) {
	case ".json":
		cfg.InputFormat = schema.JSONInput
	default:
		cfg.InputFormat = schema.CSVInput
	}

	if b := request.GetString("store_backend", ""); b != "" {
		cfg.StoreBackend = schema.StoreBackend(strings.ToLower(b))
	}
	if c := request.GetString("store_db_connect", ""); c != "" {
		cfg.StoreDBConnect = c
	}
	if _, ok := schema.ValidStoreBackends[cfg.StoreBackend]; !ok {
		return mcp.NewToolResultError(fmt.Sprintf("invalid store backend %q", cfg.StoreBackend)), nil
	}
	if err := contract.ValidateStoreConnectionString(cfg.StoreBackend, cfg.StoreDBConnect); err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("invalid store config: %v", err)), nil
	}

	n, err := core.ImportRecords(ctx, cfg)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("failed to import events: %v", err)), nil
	}
	return mcp.NewToolResultText(fmt.Sprintf("Imported %d events into %s store", n, cfg.StoreBackend)), nil
}
