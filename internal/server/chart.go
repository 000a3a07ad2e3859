package server

import (
	"fmt"
	"math"
	"strings"

	"github.com/claude/sprintlab/internal/sprint"
)

// Chart geometry in SVG user units.
const (
	chartWidth   = 800.0
	chartHeight  = 320.0
	chartPadLeft = 60.0
	chartPadTop  = 40.0
	chartPadRest = 40.0
	yTickCount   = 5
	maxXLabels   = 20
)

var seriesColors = []string{"#1f77b4", "#ff7f0e"}

type svgPoint struct{ X, Y float64 }

type svgTick struct {
	Pos   float64
	Label string
}

type svgLine struct {
	Label  string
	Color  string
	Cross  bool
	Points string
	Dots   []svgPoint
}

// svgChart is a sprint.Chart projected onto SVG coordinates.
type svgChart struct {
	Width, Height         float64
	CenterX, MidY         float64
	Left, Top, Right, Bot float64
	Title, XLabel, YLabel string
	Lines                 []svgLine
	XTicks, YTicks        []svgTick
}

func newSVGChart(c sprint.Chart) *svgChart {
	sc := &svgChart{
		Width: chartWidth, Height: chartHeight,
		Left: chartPadLeft, Top: chartPadTop,
		Right: chartWidth - chartPadRest, Bot: chartHeight - chartPadRest,
		Title: c.Title, XLabel: c.XLabel, YLabel: c.YLabel,
	}
	sc.CenterX = (sc.Left + sc.Right) / 2
	sc.MidY = (sc.Top + sc.Bot) / 2

	var n int
	yMax := 0.0
	for _, s := range c.Series {
		n = max(n, len(s.Points))
		for _, p := range s.Points {
			yMax = math.Max(yMax, p.Value)
		}
	}
	if n == 0 {
		return sc
	}
	yMax = niceCeil(yMax)

	x := func(set int) float64 {
		if n == 1 {
			return (sc.Left + sc.Right) / 2
		}
		return sc.Left + float64(set-1)*(sc.Right-sc.Left)/float64(n-1)
	}
	y := func(v float64) float64 {
		return sc.Bot - v/yMax*(sc.Bot-sc.Top)
	}

	for i := 0; i <= yTickCount; i++ {
		v := yMax * float64(i) / yTickCount
		sc.YTicks = append(sc.YTicks, svgTick{Pos: y(v), Label: fmt.Sprintf("%.0f", v)})
	}
	step := (n + maxXLabels - 1) / maxXLabels
	for set := 1; set <= n; set += step {
		sc.XTicks = append(sc.XTicks, svgTick{Pos: x(set), Label: fmt.Sprint(set)})
	}

	for i, s := range c.Series {
		line := svgLine{Label: s.Label, Color: seriesColors[i%len(seriesColors)], Cross: s.Marker == "x"}
		coords := make([]string, len(s.Points))
		for j, p := range s.Points {
			pt := svgPoint{X: x(p.Set), Y: y(p.Value)}
			line.Dots = append(line.Dots, pt)
			coords[j] = fmt.Sprintf("%.1f,%.1f", pt.X, pt.Y)
		}
		line.Points = strings.Join(coords, " ")
		sc.Lines = append(sc.Lines, line)
	}
	return sc
}

// niceCeil rounds v up to a multiple of 5 so tick labels stay whole numbers.
func niceCeil(v float64) float64 {
	if v <= 0 {
		return yTickCount
	}
	return math.Ceil(v*1.05/yTickCount) * yTickCount
}
