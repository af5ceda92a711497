package bound

import (
	"fmt"

	"github.com/montanaflynn/stats"
	"go.uber.org/zap/zapcore"

	"github.com/tuneinsight/berry/bernstein"
	"github.com/tuneinsight/berry/polynomial"
)

// Summary is the distribution of the Bernstein coefficients of a polynomial.
// [Summary.Min] and [Summary.Max] enclose the range of the polynomial on the unit box.
type Summary struct {
	Min    float64 `json:"min" yaml:"min"`
	Max    float64 `json:"max" yaml:"max"`
	Mean   float64 `json:"mean" yaml:"mean"`
	Median float64 `json:"median" yaml:"median"`
	StdDev float64 `json:"stddev" yaml:"stddev"`
}

// Summarize computes the [Summary] of the coefficients of b.
func Summarize(b *polynomial.Polynomial[polynomial.Bernstein]) (s Summary, err error) {

	values := stats.Float64Data(b.Coefficients())

	if s.Min, err = values.Min(); err != nil {
		return Summary{}, fmt.Errorf("stats.Min: %w", err)
	}

	if s.Max, err = values.Max(); err != nil {
		return Summary{}, fmt.Errorf("stats.Max: %w", err)
	}

	if s.Mean, err = values.Mean(); err != nil {
		return Summary{}, fmt.Errorf("stats.Mean: %w", err)
	}

	if s.Median, err = values.Median(); err != nil {
		return Summary{}, fmt.Errorf("stats.Median: %w", err)
	}

	if s.StdDev, err = values.StandardDeviation(); err != nil {
		return Summary{}, fmt.Errorf("stats.StandardDeviation: %w", err)
	}

	return
}

// Result gathers the bounds of a polynomial on the unit box.
type Result struct {
	// Bernstein are the coefficients the bounds are computed from.
	Bernstein *polynomial.Polynomial[polynomial.Bernstein] `json:"-" yaml:"-"`

	Infimum         float64   `json:"infimum" yaml:"infimum"`
	InfimumVertex   bool      `json:"infimum_vertex" yaml:"infimum_vertex"`
	InfimumIndex    []int     `json:"infimum_index" yaml:"infimum_index"`
	InfimumPoint    []float64 `json:"infimum_point" yaml:"infimum_point"`
	InfimumGap      float64   `json:"infimum_gap" yaml:"infimum_gap"`
	Supremum        float64   `json:"supremum" yaml:"supremum"`
	SupremumVertex  bool      `json:"supremum_vertex" yaml:"supremum_vertex"`
	SupremumIndex   []int     `json:"supremum_index" yaml:"supremum_index"`
	SupremumPoint   []float64 `json:"supremum_point" yaml:"supremum_point"`
	Summary         Summary   `json:"summary" yaml:"summary"`
	DegreeIncrease  int       `json:"degree_increase" yaml:"degree_increase"`
	BernsteinDegree int       `json:"bernstein_degree" yaml:"bernstein_degree"`
}

// MarshalLogObject implements zapcore.ObjectMarshaler.
func (r Result) MarshalLogObject(enc zapcore.ObjectEncoder) error {
	enc.AddFloat64("infimum", r.Infimum)
	enc.AddBool("infimum_vertex", r.InfimumVertex)
	enc.AddFloat64("infimum_gap", r.InfimumGap)
	enc.AddFloat64("supremum", r.Supremum)
	enc.AddBool("supremum_vertex", r.SupremumVertex)
	enc.AddInt("bernstein_degree", r.BernsteinDegree)
	return nil
}

// Compute transforms p to the Bernstein basis of degree p.Degree()+increase with t
// and returns its bounds on the unit box.
func Compute(t *bernstein.Transformer, p *polynomial.Polynomial[polynomial.Power], increase int) (res Result, err error) {

	b, err := t.ToBernstein(p, increase)
	if err != nil {
		return Result{}, fmt.Errorf("cannot Compute: %w", err)
	}

	res.Bernstein = b
	res.DegreeIncrease = increase
	res.BernsteinDegree = b.Degree()

	res.Infimum, res.InfimumVertex, res.InfimumIndex = InfimumBoundIndex(b)
	res.InfimumPoint = CtrlPointOnUnitBox(res.InfimumIndex, b.Degree())
	res.InfimumGap = InfimumBoundGap(p, res.InfimumVertex, increase)

	res.Supremum, res.SupremumVertex, res.SupremumIndex = SupremumBoundIndex(b)
	res.SupremumPoint = CtrlPointOnUnitBox(res.SupremumIndex, b.Degree())

	if res.Summary, err = Summarize(b); err != nil {
		return Result{}, fmt.Errorf("cannot Compute: %w", err)
	}

	return
}
