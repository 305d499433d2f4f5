// Package tool is the MCP transport adapter: it registers the eShipz
// operations as tools on an MCP server and converts every failure into
// readable text before it crosses the protocol boundary.
package tool

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
	"github.com/rs/zerolog"

	"github.com/KavinVetrivel/eshipz-mcp/internal/core/ports"
)

const serverName = "eshipz-mcp"

// Tool is one MCP tool: its protocol definition plus its handler.
type Tool interface {
	Definition() mcp.Tool
	Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error)
}

// Deps carries the services the tools are built on.
type Deps struct {
	Tracking    ports.TrackingService
	Performance ports.PerformanceService
	Shipments   ports.ShipmentService
	Orders      ports.OrderService
	Logger      zerolog.Logger
}

// NewServer builds the MCP server with all tools registered.
func NewServer(version string, deps Deps) *server.MCPServer {
	s := server.NewMCPServer(serverName, version,
		server.WithToolCapabilities(false),
		server.WithRecovery(),
	)

	tools := []Tool{
		NewTrackingTool(deps.Tracking, deps.Logger),
		NewPerformanceTool(deps.Performance, deps.Logger),
		NewShipmentTool(deps.Shipments, deps.Logger),
		NewDocketTool(deps.Shipments, deps.Logger),
		NewOrderTool(deps.Orders, deps.Logger),
	}
	for _, t := range tools {
		s.AddTool(t.Definition(), t.Handle)
	}
	return s
}
