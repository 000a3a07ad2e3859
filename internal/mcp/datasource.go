package mcp

import (
	"context"

	"github.com/claude/sprintlab/internal/models"
	"github.com/claude/sprintlab/internal/sprint"
)

// DataSource abstracts where analyses are computed for MCP tools. Both Local
// (in-process) and HTTPClient (a running SprintLab server) satisfy it.
type DataSource interface {
	Analyze(ctx context.Context, times []float64) (*sprint.Analysis, error)
	Benchmarks(ctx context.Context) ([]models.Benchmark, error)
}

// Local computes analyses in-process, validating against limits.
type Local struct {
	Limits models.Limits
}

// Compile-time check: Local satisfies DataSource.
var _ DataSource = Local{}

func (l Local) Analyze(ctx context.Context, times []float64) (*sprint.Analysis, error) {
	session, err := models.NewSession(times, l.Limits)
	if err != nil {
		return nil, err
	}
	return sprint.Analyze(session)
}

func (l Local) Benchmarks(ctx context.Context) ([]models.Benchmark, error) {
	return models.Benchmarks(), nil
}
