package mcp

import (
	"context"
	"errors"

	"github.com/claude/sprintlab/internal/models"
	"github.com/mark3labs/mcp-go/mcp"
)

var toolAnalyzeSprints = mcp.NewTool("analyze_sprints",
	mcp.WithDescription("Analyze a session of 100 m sprints. Returns per-set speeds (m/s, km/h), average speed, pacing consistency, fatigue index, acceleration phase, reaction time, cadence, stride length, energy and wind estimates, plus a benchmark comparison."),
	mcp.WithString("times", mcp.Required(), mcp.Description("Sprint times in seconds in set order, comma separated (e.g. '10.8, 11.2, 11.9')")),
)

var toolListBenchmarks = mcp.NewTool("list_benchmarks",
	mcp.WithDescription("List the Olympian benchmark for each metric."),
)

func (h *handlers) analyzeSprints(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	raw, err := req.RequireString("times")
	if err != nil {
		return mcp.NewToolResultError("times parameter is required"), nil
	}

	times, err := models.ParseTimes(raw)
	if err != nil {
		return mcp.NewToolResultError("invalid times: " + err.Error()), nil
	}

	analysis, err := h.ds.Analyze(ctx, times)
	if err != nil {
		var ve *models.ValidationError
		if !errors.As(err, &ve) {
			h.log.Error("mcp analyze_sprints", "error", err)
		}
		return mcp.NewToolResultError("analysis failed: " + err.Error()), nil
	}
	h.log.Debug("mcp analyze_sprints", "analysis_id", analysis.ID, "sets", len(times))

	result, err := mcp.NewToolResultJSON(analysis)
	if err != nil {
		return mcp.NewToolResultError("serialization failed"), nil
	}
	return result, nil
}

func (h *handlers) listBenchmarks(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	bench, err := h.ds.Benchmarks(ctx)
	if err != nil {
		h.log.Error("mcp list_benchmarks", "error", err)
		return mcp.NewToolResultError("query failed: " + err.Error()), nil
	}

	result, err := mcp.NewToolResultJSON(bench)
	if err != nil {
		return mcp.NewToolResultError("serialization failed"), nil
	}
	return result, nil
}
