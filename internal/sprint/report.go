package sprint

import (
	"fmt"

	"github.com/claude/sprintlab/internal/models"
	"github.com/google/uuid"
)

// TableRow is one row of the per-set table.
type TableRow struct {
	Set      int     `json:"set"`
	Time     float64 `json:"time_s"`
	SpeedMS  float64 `json:"speed_ms"`
	SpeedKMH float64 `json:"speed_kmh"`
}

// Point is one chart sample.
type Point struct {
	Set   int     `json:"set"`
	Value float64 `json:"value"`
}

// Series is a named line on the speed chart.
type Series struct {
	Label  string  `json:"label"`
	Marker string  `json:"marker"`
	Points []Point `json:"points"`
}

// Chart pairs set indices with both speed units.
type Chart struct {
	Title  string   `json:"title"`
	XLabel string   `json:"x_label"`
	YLabel string   `json:"y_label"`
	Series []Series `json:"series"`
}

// Observation is a labeled metric with explanatory text.
type Observation struct {
	Key   string   `json:"key"`
	Label string   `json:"label"`
	Value *float64 `json:"value,omitempty"`
	Unit  string   `json:"unit"`
	Text  string   `json:"text"`
}

// ComparisonRow is one row of the benchmark comparison table.
type ComparisonRow struct {
	Metric    string   `json:"metric"`
	Value     *float64 `json:"your_value,omitempty"`
	Benchmark string   `json:"benchmark"`
}

// FormatValue renders the row's value for display.
func (r ComparisonRow) FormatValue() string {
	return formatOptional(r.Value)
}

// Table returns the per-set rows.
func (m *Metrics) Table() []TableRow {
	rows := make([]TableRow, len(m.Sets))
	for i, s := range m.Sets {
		rows[i] = TableRow(s)
	}
	return rows
}

// Chart returns the "Speed Across Sets" line chart.
func (m *Metrics) Chart() Chart {
	msPts := make([]Point, len(m.Sets))
	kmhPts := make([]Point, len(m.Sets))
	for i, s := range m.Sets {
		msPts[i] = Point{Set: s.Set, Value: s.SpeedMS}
		kmhPts[i] = Point{Set: s.Set, Value: s.SpeedKMH}
	}
	return Chart{
		Title:  "Speed Across Sets",
		XLabel: "Set",
		YLabel: "Speed",
		Series: []Series{
			{Label: "Speed (m/s)", Marker: "o", Points: msPts},
			{Label: "Speed (km/h)", Marker: "x", Points: kmhPts},
		},
	}
}

// Observations returns the labeled metric list in display order. Undefined
// metrics keep their place with a nil value.
func (m *Metrics) Observations() []Observation {
	obs := []Observation{
		{
			Key: "avg_speed", Label: "Average Speed", Value: m.AvgSpeedKMH, Unit: "km/h",
			Text: avgSpeedText(m),
		},
		{
			Key: models.BenchVO2Max, Label: "Estimated VO2 Max", Value: ptr(m.VO2Max), Unit: "ml/kg/min",
			Text: "VO2 Max represents your body's ability to utilize oxygen during intense exercise. A higher value indicates better cardiovascular fitness and endurance. This is an estimation and can serve as a baseline to monitor your aerobic improvements.",
		},
		{
			Key: models.BenchPacing, Label: "Pacing Consistency (Std Dev)", Value: ptr(m.PacingStdDev), Unit: "m/s",
			Text: "The standard deviation in your speed across sets indicates your pacing consistency. A lower number suggests you're maintaining a consistent pace, key for optimal performance. A high number means you may benefit from a more even pace.",
		},
		{
			Key: models.BenchFatigue, Label: "Fatigue Index", Value: m.FatigueIndex, Unit: "%",
			Text: "The Fatigue Index calculates the drop in your speed from your first to your last set, as a percentage. A lower percentage indicates better endurance and less fatigue. A high number means you may need to focus on stamina and recovery.",
		},
	}
	if m.AccelerationPhase != nil {
		obs = append(obs, Observation{
			Key: "acceleration_phase", Label: "Acceleration Phase", Value: m.AccelerationPhase, Unit: "km/h difference between first and second sets",
			Text: "The acceleration phase is crucial in any sprint. It's where you generate the momentum you'll carry through the rest of the race. Your change in speed between the first and second sets gives an insight into your acceleration abilities.",
		})
	}
	obs = append(obs,
		Observation{
			Key: models.BenchReaction, Label: "Estimated Reaction Time", Value: ptr(m.ReactionTime), Unit: "s",
			Text: "Knowing how quickly you reach your top speed can give you an idea of your reaction time.",
		},
		Observation{
			Key: "elite_reaction_time", Label: "Elite Sprinter's Reaction Time", Value: ptr(models.EliteReactionTime), Unit: "s",
			Text: "The reaction time of elite sprinters is typically around 0.15 to 0.20 seconds.",
		},
		Observation{
			Key: models.BenchCadence, Label: "Estimated Cadence", Value: ptr(m.Cadence), Unit: "steps/min",
			Text: "Cadence measures how many steps you take per minute. A higher cadence often correlates with better performance.",
		},
		Observation{
			Key: "elite_cadence", Label: "Elite Sprinter's Cadence", Value: ptr(models.EliteCadence), Unit: "steps/min",
			Text: "Cadence measures how many steps you take per minute. Elite sprinters usually have a cadence of around 260-280 steps/minute.",
		},
		Observation{
			Key: models.BenchStride, Label: "Estimated Optimal Stride Length", Value: ptr(m.StrideLength), Unit: "m",
			Text: "Your stride length, combined with your cadence, determines your speed.",
		},
		Observation{
			Key: "optimal_stride_length", Label: "Optimal Stride Length", Value: ptr(models.OptimalStrideLength), Unit: "m",
			Text: "Optimal stride length is often around 1.1 times your leg length.",
		},
		Observation{
			Key: "energy_speed", Label: "Estimated Energy Expenditure (speed based)", Value: ptr(m.EnergySpeedKcal), Unit: "kcal",
			Text: "Knowing how much energy you're expending can help you manage your efforts better.",
		},
		Observation{
			Key: "energy_distance", Label: "Estimated Energy Expenditure (distance based)", Value: ptr(m.EnergyDistanceKcal), Unit: "kcal",
			Text: "An average adult may burn approximately 0.2 calories per meter during a sprint.",
		},
		Observation{
			Key: models.BenchWind, Label: "Estimated Wind Resistance", Value: ptr(m.WindResistance), Unit: "N",
			Text: "Understanding the effects of wind resistance can offer insights into why you might be slower or faster on particular days.",
		},
	)
	return obs
}

// Comparison returns one row per benchmark. Energy expenditure compares the
// distance-based estimate.
func (m *Metrics) Comparison() []ComparisonRow {
	values := map[string]*float64{
		models.BenchVO2Max:   ptr(m.VO2Max),
		models.BenchPacing:   ptr(m.PacingStdDev),
		models.BenchFatigue:  m.FatigueIndex,
		models.BenchReaction: ptr(m.ReactionTime),
		models.BenchCadence:  ptr(m.Cadence),
		models.BenchStride:   ptr(m.StrideLength),
		models.BenchEnergy:   ptr(m.EnergyDistanceKcal),
		models.BenchWind:     ptr(m.WindResistance),
	}
	bench := models.Benchmarks()
	rows := make([]ComparisonRow, len(bench))
	for i, b := range bench {
		rows[i] = ComparisonRow{Metric: b.Metric, Value: values[b.Key], Benchmark: b.Value}
	}
	return rows
}

// Analysis bundles the metrics with every derived presentation. ID is
// ephemeral and only correlates logs with responses.
type Analysis struct {
	ID           string          `json:"id"`
	Metrics      *Metrics        `json:"metrics"`
	Table        []TableRow      `json:"table"`
	Chart        Chart           `json:"chart"`
	Observations []Observation   `json:"observations"`
	Comparison   []ComparisonRow `json:"comparison"`
}

// Analyze computes the metrics for a session and assembles the full report.
func Analyze(session models.SprintSession) (*Analysis, error) {
	m, err := Compute(session)
	if err != nil {
		return nil, err
	}
	return &Analysis{
		ID:           uuid.NewString(),
		Metrics:      m,
		Table:        m.Table(),
		Chart:        m.Chart(),
		Observations: m.Observations(),
		Comparison:   m.Comparison(),
	}, nil
}

func avgSpeedText(m *Metrics) string {
	if m.AvgSpeedMS == nil {
		return "No set had a nonzero time, so there is no average speed."
	}
	return fmt.Sprintf("Your average speed is: %.2f m/s or %.2f km/h. "+
		"To put that in perspective, the fastest land animal, the cheetah, reaches speeds up to %.0f km/h. "+
		"Fastest 100m Sprint (Men): Usain Bolt holds the record with a time of %.2f seconds, achieved in 2009. "+
		"His top speed was approximately %.2f km/h. "+
		"Fastest 100m Sprint (Women): Florence Griffith-Joyner set the record with a time of %.2f seconds in 1988. "+
		"You're on your way to breaking your own records! Keep pushing!",
		*m.AvgSpeedMS, *m.AvgSpeedKMH,
		models.CheetahTopSpeedKMH, models.BoltRecordSeconds, models.BoltTopSpeedKMH, models.FloJoRecordSeconds)
}

func formatOptional(v *float64) string {
	if v == nil {
		return "n/a"
	}
	return fmt.Sprintf("%.2f", *v)
}
