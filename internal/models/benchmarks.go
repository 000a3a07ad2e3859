package models

// Reference values shown next to the derived metrics.
const (
	EliteReactionTime   = 0.18 // seconds
	EliteCadence        = 270  // steps/min
	LegLength           = 1.0  // meters
	OptimalStrideFactor = 1.1  // stride ≈ 1.1 × leg length
	OptimalStrideLength = LegLength * OptimalStrideFactor
	CheetahTopSpeedKMH  = 100.0
	BoltRecordSeconds   = 9.58
	BoltTopSpeedKMH     = 44.72
	FloJoRecordSeconds  = 10.49
)

// Benchmark keys, in display order.
const (
	BenchVO2Max   = "vo2_max"
	BenchPacing   = "pacing_consistency"
	BenchFatigue  = "fatigue_index"
	BenchReaction = "reaction_time"
	BenchCadence  = "cadence"
	BenchStride   = "stride_length"
	BenchEnergy   = "energy_expenditure"
	BenchWind     = "wind_resistance"
)

// Benchmark is one row of the Olympian comparison table.
type Benchmark struct {
	Key    string `json:"key"`
	Metric string `json:"metric"`
	Value  string `json:"benchmark"`
}

var benchmarks = []Benchmark{
	{BenchVO2Max, "VO2 Max (ml/kg/min)", "Male 85, Female 77"},
	{BenchPacing, "Pacing Consistency (Std Dev, m/s)", "< 0.2"},
	{BenchFatigue, "Fatigue Index (%)", "< 5%"},
	{BenchReaction, "Reaction Time (s)", "0.15-0.20"},
	{BenchCadence, "Cadence (steps/min)", "260-280"},
	{BenchStride, "Optimal Stride Length (m)", "Depends on leg length"},
	{BenchEnergy, "Energy Expenditure (kcal)", "Varies"},
	{BenchWind, "Wind Resistance (N)", "Minimal"},
}

// Benchmarks returns a copy of the benchmark table in display order.
func Benchmarks() []Benchmark {
	out := make([]Benchmark, len(benchmarks))
	copy(out, benchmarks)
	return out
}
