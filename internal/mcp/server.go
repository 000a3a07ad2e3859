package mcp

import (
	"log/slog"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

// New creates an MCP server with all tools and resources registered.
func New(ds DataSource, version string, log *slog.Logger) *server.MCPServer {
	s := server.NewMCPServer("SprintLab", version,
		server.WithToolCapabilities(false),
		server.WithResourceCapabilities(false, false),
		server.WithInstructions("SprintLab sprint calculator. Pass 100 m sprint times in seconds, in set order, to get speeds, pacing, fatigue and illustrative estimates compared against elite benchmarks. Nothing is stored."),
	)

	h := &handlers{ds: ds, log: log}

	s.AddTools(
		server.ServerTool{Tool: toolAnalyzeSprints, Handler: h.analyzeSprints},
		server.ServerTool{Tool: toolListBenchmarks, Handler: h.listBenchmarks},
	)

	s.AddResources(
		server.ServerResource{Resource: resBenchmarks, Handler: h.benchmarks},
	)

	return s
}

// handlers holds dependencies for MCP tool/resource handlers.
type handlers struct {
	ds  DataSource
	log *slog.Logger
}

var resBenchmarks = mcp.NewResource(
	"sprintlab://benchmarks",
	"Olympian Benchmarks",
	mcp.WithResourceDescription("Reference values for each derived sprint metric"),
	mcp.WithMIMEType("application/json"),
)
