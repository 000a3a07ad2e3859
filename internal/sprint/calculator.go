package sprint

import (
	"errors"
	"math"

	"github.com/claude/sprintlab/internal/models"
)

// Conversion factors and illustrative constants used by the estimates.
const (
	msToKMH          = 3.6
	vo2Factor        = 3.1
	secondsPerStride = 1.2
	kcalPerMeter     = 0.2
	energyFactor     = 3.6
	dragCoefficient  = 0.9
)

// Cadence is the fixed step-rate estimate in steps/min. It does not depend on
// the session.
const Cadence = 60 / secondsPerStride

var (
	// ErrEmptySession is returned when a session has no sets.
	ErrEmptySession = errors.New("sprint: session has no sets")
	// ErrFatigueUndefined is recorded when the first set has zero speed.
	ErrFatigueUndefined = errors.New("sprint: fatigue index undefined when first speed is zero")
)

// SetResult holds the speeds of one set.
type SetResult struct {
	Set      int     `json:"set"`
	Time     float64 `json:"time_s"`
	SpeedMS  float64 `json:"speed_ms"`
	SpeedKMH float64 `json:"speed_kmh"`
}

// Metrics is everything derived from one SprintSession.
// Pointer fields are nil when the value is undefined for the session.
type Metrics struct {
	Sets []SetResult `json:"sets"`

	AvgSpeedMS  *float64 `json:"avg_speed_ms,omitempty"`
	AvgSpeedKMH *float64 `json:"avg_speed_kmh,omitempty"`

	VO2Max            float64  `json:"vo2_max"`
	PacingStdDev      float64  `json:"pacing_std_dev_ms"`
	FatigueIndex      *float64 `json:"fatigue_index_pct,omitempty"`
	AccelerationPhase *float64 `json:"acceleration_phase_kmh,omitempty"`
	ReactionTime      float64  `json:"reaction_time_s"`
	Cadence           float64  `json:"cadence_spm"`
	StrideLength      float64  `json:"stride_length_m"`

	// Two independent estimates; neither replaces the other.
	EnergySpeedKcal    float64 `json:"energy_speed_kcal"`
	EnergyDistanceKcal float64 `json:"energy_distance_kcal"`

	WindResistance float64 `json:"wind_resistance_n"`

	Warnings []string `json:"warnings,omitempty"`
}

// Compute derives Metrics from a session. It is a pure function of the
// session's times and applies no validation beyond zero-guards.
func Compute(session models.SprintSession) (*Metrics, error) {
	n := session.Len()
	if n == 0 {
		return nil, ErrEmptySession
	}

	times := session.Times()
	ms := make([]float64, n)
	kmh := make([]float64, n)
	sets := make([]SetResult, n)
	for i, t := range times {
		ms[i] = speed(t)
		kmh[i] = ms[i] * msToKMH
		sets[i] = SetResult{Set: i + 1, Time: t, SpeedMS: ms[i], SpeedKMH: kmh[i]}
	}

	m := &Metrics{
		Sets:         sets,
		PacingStdDev: stdDev(ms),
		ReactionTime: times[0] - minOf(times),
		Cadence:      Cadence,
		StrideLength: strideLength(times[0]),
	}

	var vo2 float64
	for _, v := range ms {
		vo2 += v * vo2Factor
	}
	m.VO2Max = vo2 / float64(n)

	if avg, ok := nonZeroMean(ms, times); ok {
		m.AvgSpeedMS = ptr(avg)
		m.AvgSpeedKMH = ptr(avg * msToKMH)
	}

	if ms[0] != 0 {
		m.FatigueIndex = ptr((ms[0] - ms[n-1]) / ms[0] * 100)
	} else {
		m.Warnings = append(m.Warnings, ErrFatigueUndefined.Error())
	}

	if n >= 2 {
		m.AccelerationPhase = ptr(kmh[1] - kmh[0])
	}

	meanKMH := mean(kmh)
	m.EnergySpeedKcal = meanKMH * energyFactor
	m.EnergyDistanceKcal = models.SprintDistance * float64(n) * kcalPerMeter
	m.WindResistance = dragCoefficient * meanKMH

	return m, nil
}

// FatigueErr returns ErrFatigueUndefined when the fatigue index could not be
// computed, nil otherwise.
func (m *Metrics) FatigueErr() error {
	if m.FatigueIndex == nil {
		return ErrFatigueUndefined
	}
	return nil
}

func speed(t float64) float64 {
	if t == 0 {
		return 0
	}
	return models.SprintDistance / t
}

// strideLength uses the first set only; a zero time yields zero like speed.
func strideLength(first float64) float64 {
	if first == 0 {
		return 0
	}
	return models.SprintDistance / (first / secondsPerStride)
}

// nonZeroMean averages speeds whose raw time was nonzero.
func nonZeroMean(speeds, times []float64) (float64, bool) {
	var sum float64
	var count int
	for i, v := range speeds {
		if times[i] == 0 {
			continue
		}
		sum += v
		count++
	}
	if count == 0 {
		return 0, false
	}
	return sum / float64(count), true
}

func mean(xs []float64) float64 {
	var sum float64
	for _, x := range xs {
		sum += x
	}
	return sum / float64(len(xs))
}

// stdDev is the population standard deviation.
func stdDev(xs []float64) float64 {
	mu := mean(xs)
	var ss float64
	for _, x := range xs {
		d := x - mu
		ss += d * d
	}
	return math.Sqrt(ss / float64(len(xs)))
}

func minOf(xs []float64) float64 {
	lo := xs[0]
	for _, x := range xs[1:] {
		lo = math.Min(lo, x)
	}
	return lo
}

func ptr(v float64) *float64 { return &v }
