package mcp

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"strings"
	"testing"

	"github.com/claude/sprintlab/internal/models"
	"github.com/claude/sprintlab/internal/sprint"
	"github.com/mark3labs/mcp-go/mcp"
)

func newTestHandlers() *handlers {
	return &handlers{
		ds:  Local{Limits: models.DefaultLimits},
		log: slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
}

func callTool(name string, args map[string]any) mcp.CallToolRequest {
	var req mcp.CallToolRequest
	req.Params.Name = name
	req.Params.Arguments = args
	return req
}

// resultText returns the first text content of a tool result.
func resultText(t *testing.T, res *mcp.CallToolResult) string {
	t.Helper()
	for _, c := range res.Content {
		if tc, ok := c.(mcp.TextContent); ok {
			return tc.Text
		}
	}
	t.Fatalf("no text content in result: %+v", res)
	return ""
}

// TestAnalyzeSprintsTool verifies the tool parses times and returns the
// analysis as JSON.
func TestAnalyzeSprintsTool(t *testing.T) {
	h := newTestHandlers()
	res, err := h.analyzeSprints(context.Background(), callTool("analyze_sprints", map[string]any{"times": "12, 10, 11"}))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.IsError {
		t.Fatalf("tool error: %s", resultText(t, res))
	}

	var got sprint.Analysis
	if err := json.Unmarshal([]byte(resultText(t, res)), &got); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if got.Metrics.ReactionTime != 2 {
		t.Errorf("reaction time = %v, want 2", got.Metrics.ReactionTime)
	}
	if len(got.Table) != 3 {
		t.Errorf("table rows = %d, want 3", len(got.Table))
	}
}

// TestAnalyzeSprintsToolErrors verifies bad input becomes a tool error
// rather than a protocol error.
func TestAnalyzeSprintsToolErrors(t *testing.T) {
	h := newTestHandlers()
	cases := map[string]map[string]any{
		"missing":      {},
		"not a number": {"times": "10, quick"},
		"out of range": {"times": "10, 0"},
		"empty":        {"times": " "},
		"nan":          {"times": "NaN, 11"},
	}
	for name, args := range cases {
		res, err := h.analyzeSprints(context.Background(), callTool("analyze_sprints", args))
		if err != nil {
			t.Errorf("%s: protocol error %v", name, err)
			continue
		}
		if !res.IsError {
			t.Errorf("%s: expected tool error", name)
		}
	}
}

// TestListBenchmarksTool verifies the benchmark table is returned.
func TestListBenchmarksTool(t *testing.T) {
	res, err := newTestHandlers().listBenchmarks(context.Background(), callTool("list_benchmarks", nil))
	if err != nil || res.IsError {
		t.Fatalf("list_benchmarks failed: %v", err)
	}
	if !strings.Contains(resultText(t, res), "Male 85, Female 77") {
		t.Errorf("missing VO2 benchmark in %s", resultText(t, res))
	}
}

// TestBenchmarksResource verifies the resource echoes its URI with JSON.
func TestBenchmarksResource(t *testing.T) {
	var req mcp.ReadResourceRequest
	req.Params.URI = "sprintlab://benchmarks"

	contents, err := newTestHandlers().benchmarks(context.Background(), req)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(contents) != 1 {
		t.Fatalf("contents = %d, want 1", len(contents))
	}
	text, ok := contents[0].(mcp.TextResourceContents)
	if !ok {
		t.Fatalf("content type %T", contents[0])
	}
	if text.URI != req.Params.URI || text.MIMEType != "application/json" {
		t.Errorf("uri/mime = %q/%q", text.URI, text.MIMEType)
	}
	var bench []models.Benchmark
	if err := json.Unmarshal([]byte(text.Text), &bench); err != nil || len(bench) != 8 {
		t.Errorf("benchmarks = %v, %v", bench, err)
	}
}

// TestNewRegistersTools verifies New builds a server without panicking.
func TestNewRegistersTools(t *testing.T) {
	s := New(Local{Limits: models.DefaultLimits}, "test", slog.New(slog.NewTextHandler(io.Discard, nil)))
	if s == nil {
		t.Fatal("New returned nil")
	}
}
