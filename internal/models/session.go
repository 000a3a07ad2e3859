package models

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// SprintDistance is the length of every set in meters.
const SprintDistance = 100.0

// Limits bounds what the input boundary accepts.
type Limits struct {
	MinSets int
	MaxSets int
	MinTime float64
	MaxTime float64
}

// DefaultLimits matches the number inputs of the sprint form.
var DefaultLimits = Limits{MinSets: 1, MaxSets: 50, MinTime: 0.1, MaxTime: 600.0}

// ValidationError reports a rejected input value.
// Set is 1-based; zero means the error concerns the whole session.
type ValidationError struct {
	Field string
	Set   int
	Value float64
	Msg   string
}

func (e *ValidationError) Error() string {
	if e.Set > 0 {
		return fmt.Sprintf("%s for set %d: %s (got %g)", e.Field, e.Set, e.Msg, e.Value)
	}
	return fmt.Sprintf("%s: %s (got %g)", e.Field, e.Msg, e.Value)
}

// SprintSession is an ordered, immutable sequence of set times in seconds.
type SprintSession struct {
	times []float64
}

// NewSession validates times against limits and returns a session holding a
// private copy of them.
func NewSession(times []float64, limits Limits) (SprintSession, error) {
	n := len(times)
	if n < limits.MinSets || n > limits.MaxSets {
		return SprintSession{}, &ValidationError{
			Field: "sets",
			Value: float64(n),
			Msg:   fmt.Sprintf("must be between %d and %d", limits.MinSets, limits.MaxSets),
		}
	}
	for i, t := range times {
		if math.IsNaN(t) || math.IsInf(t, 0) || t < limits.MinTime || t > limits.MaxTime {
			return SprintSession{}, &ValidationError{
				Field: "time",
				Set:   i + 1,
				Value: t,
				Msg:   fmt.Sprintf("must be between %g and %g seconds", limits.MinTime, limits.MaxTime),
			}
		}
	}
	return UncheckedSession(times), nil
}

// UncheckedSession builds a session without bounds checks. Zero times are
// allowed and produce zero speeds downstream.
func UncheckedSession(times []float64) SprintSession {
	cp := make([]float64, len(times))
	copy(cp, times)
	return SprintSession{times: cp}
}

// Len returns the number of sets.
func (s SprintSession) Len() int { return len(s.times) }

// Time returns the time of the i-th set (0-based).
func (s SprintSession) Time(i int) float64 { return s.times[i] }

// Times returns a copy of all set times in order.
func (s SprintSession) Times() []float64 {
	cp := make([]float64, len(s.times))
	copy(cp, s.times)
	return cp
}

// ParseTimes parses a list of times separated by commas, semicolons or
// whitespace, e.g. "10.2, 10.8 11.1".
func ParseTimes(s string) ([]float64, error) {
	fields := strings.FieldsFunc(s, func(r rune) bool {
		return r == ',' || r == ';' || r == ' ' || r == '\t' || r == '\n' || r == '\r'
	})
	times := make([]float64, 0, len(fields))
	for i, f := range fields {
		v, err := strconv.ParseFloat(f, 64)
		if err != nil {
			return nil, fmt.Errorf("parsing time %d %q: %w", i+1, f, err)
		}
		times = append(times, v)
	}
	return times, nil
}
