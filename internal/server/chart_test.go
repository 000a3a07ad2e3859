package server

import (
	"strings"
	"testing"

	"github.com/claude/sprintlab/internal/models"
	"github.com/claude/sprintlab/internal/sprint"
)

func chartFor(t *testing.T, times ...float64) *svgChart {
	t.Helper()
	m, err := sprint.Compute(models.UncheckedSession(times))
	if err != nil {
		t.Fatal(err)
	}
	return newSVGChart(m.Chart())
}

// TestSVGChartInsidePlot verifies every marker lands inside the plot area.
func TestSVGChartInsidePlot(t *testing.T) {
	c := chartFor(t, 10, 11, 12, 0)
	if len(c.Lines) != 2 {
		t.Fatalf("lines = %d, want 2", len(c.Lines))
	}
	for _, l := range c.Lines {
		if len(l.Dots) != 4 {
			t.Errorf("%s: dots = %d, want 4", l.Label, len(l.Dots))
		}
		for _, d := range l.Dots {
			if d.X < c.Left || d.X > c.Right || d.Y < c.Top || d.Y > c.Bot {
				t.Errorf("%s: point %+v outside plot", l.Label, d)
			}
		}
	}
	if !c.Lines[1].Cross || c.Lines[0].Cross {
		t.Error("km/h series should use cross markers, m/s circles")
	}
	// Zero speed sits on the x axis.
	if last := c.Lines[0].Dots[3]; last.Y != c.Bot {
		t.Errorf("zero speed y = %v, want %v", last.Y, c.Bot)
	}
}

// TestSVGChartSingleSetCentered verifies one set is drawn mid-plot.
func TestSVGChartSingleSetCentered(t *testing.T) {
	c := chartFor(t, 10)
	if got := c.Lines[0].Dots[0].X; got != c.CenterX {
		t.Errorf("x = %v, want %v", got, c.CenterX)
	}
	if strings.Contains(c.Lines[0].Points, " ") {
		t.Errorf("points = %q, want a single coordinate", c.Lines[0].Points)
	}
}

// TestSVGChartThinsXLabels verifies long sessions do not label every set.
func TestSVGChartThinsXLabels(t *testing.T) {
	times := make([]float64, 50)
	for i := range times {
		times[i] = 12
	}
	c := chartFor(t, times...)
	if len(c.XTicks) > maxXLabels {
		t.Errorf("x ticks = %d, want <= %d", len(c.XTicks), maxXLabels)
	}
	if len(c.YTicks) != yTickCount+1 {
		t.Errorf("y ticks = %d, want %d", len(c.YTicks), yTickCount+1)
	}
}

func TestNiceCeil(t *testing.T) {
	cases := []struct{ in, want float64 }{
		{0, 5},
		{36, 40},
		{10, 15},
		{47.6, 50},
	}
	for _, tc := range cases {
		if got := niceCeil(tc.in); got != tc.want {
			t.Errorf("niceCeil(%v) = %v, want %v", tc.in, got, tc.want)
		}
	}
}
