// Package mcp provides the Model Context Protocol (MCP) server implementation.
package mcp

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
	"github.com/trafficlens/trafficlens/internal/contract"
)

// NewMCPServer initializes and configures the TrafficLens MCP server
// without starting it. This is exposed for unit testing.
func NewMCPServer(baseCfg *contract.Config) *server.MCPServer {
	s := server.NewMCPServer(
		"TrafficLens Chart Server",
		"1.0.0",
		server.WithLogging(),
	)

	h := &toolHandler{
		baseCfg: baseCfg,
	}

	// --- 1. Tool: suggest_charts ---
	s.AddTool(mcp.NewTool("suggest_charts",
		mcp.WithDescription("Validate a dimension selection and list the chart types it supports."),
		mcp.WithString("time_field", mcp.Description("Record field holding the event timestamp.")),
		mcp.WithString("location_field", mcp.Description("Record field holding the event location.")),
		mcp.WithString("categories", mcp.Description("Comma-separated category fields, in priority order.")),
	), h.handleSuggestCharts)

	// --- 2. Tool: generate_chart ---
	s.AddTool(mcp.NewTool("generate_chart",
		mcp.WithDescription("Aggregate event records and emit a declarative chart specification."),
		mcp.WithString("chart", mcp.Description("Chart type to generate."), mcp.Required(),
			mcp.Enum("line", "bar", "pie", "donut", "area", "scatter", "stacked_bar", "grouped_bar", "heatmap", "treemap", "sunburst", "boxplot", "multi_axis")),
		mcp.WithString("input_file", mcp.Description("Path to a CSV or JSON file of event records (defaults to the configured event store).")),
		mcp.WithString("time_field", mcp.Description("Record field holding the event timestamp.")),
		mcp.WithString("granularity", mcp.Description("Time bucket size. Defaults to 'day'."), mcp.Enum("hour", "day", "month", "year")),
		mcp.WithString("location_field", mcp.Description("Record field holding the event location.")),
		mcp.WithString("categories", mcp.Description("Comma-separated category fields, in priority order.")),
		mcp.WithString("start", mcp.Description("Inclusive start of the date window (ISO8601, YYYY-MM-DD or 'N days ago').")),
		mcp.WithString("end", mcp.Description("Inclusive end of the date window.")),
	), h.handleGenerateChart)

	// --- 3. Tool: import_events ---
	s.AddTool(mcp.NewTool("import_events",
		mcp.WithDescription("Load event records from a CSV or JSON file into the persistent event store."),
		mcp.WithString("input_file", mcp.Description("Path to a CSV or JSON file of event records."), mcp.Required()),
		mcp.WithString("store_backend", mcp.Description("Event store backend (defaults to the configured backend)."),
			mcp.Enum("sqlite", "mysql", "postgresql")),
		mcp.WithString("store_db_connect", mcp.Description("Database connection string for mysql/postgresql backends.")),
	), h.handleImportEvents)

	return s
}

// StartMCPServer starts the TrafficLens MCP server.
func StartMCPServer(_ context.Context, baseCfg *contract.Config) error {
	s := NewMCPServer(baseCfg)
	return server.ServeStdio(s)
}
