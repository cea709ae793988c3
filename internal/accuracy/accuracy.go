// Package accuracy measures how far the rational CDF approximation used for
// pricing drifts from the erf-based normal CDF.
package accuracy

import (
	"errors"
	"fmt"
	"math"

	"github.com/montanaflynn/stats"

	"github.com/contactkeval/option-pricer/internal/pricing"
)

var ErrInvalidGrid = errors.New("invalid survey grid")

// MaxSteps bounds the grid so a survey cannot exhaust memory.
const MaxSteps = 10_000_000

// Report summarises absolute CDF errors over a grid.
type Report struct {
	From  float64 `json:"from"`
	To    float64 `json:"to"`
	Steps int     `json:"steps"`

	MaxAbsError  float64 `json:"max_abs_error"`
	ArgMax       float64 `json:"arg_max"`
	MeanAbsError float64 `json:"mean_abs_error"`
	P99AbsError  float64 `json:"p99_abs_error"`
}

// ReferenceCDF is the standard normal CDF expressed through math.Erf.
func ReferenceCDF(x float64) float64 {
	return 0.5 * (1.0 + math.Erf(x/math.Sqrt2))
}

// Survey evaluates pricing.CDF at steps evenly spaced points in [from, to].
func Survey(from, to float64, steps int) (Report, error) {
	finite := !math.IsInf(from, 0) && !math.IsInf(to, 0) && !math.IsInf(to-from, 0)
	if steps < 2 || steps > MaxSteps || !finite || !(to > from) {
		return Report{}, fmt.Errorf("%w: from=%v to=%v steps=%d", ErrInvalidGrid, from, to, steps)
	}

	r := Report{From: from, To: to, Steps: steps}
	errs := make(stats.Float64Data, steps)
	h := (to - from) / float64(steps-1)
	for i := 0; i < steps; i++ {
		x := from + float64(i)*h
		e := math.Abs(pricing.CDF(x) - ReferenceCDF(x))
		errs[i] = e
		if e > r.MaxAbsError {
			r.MaxAbsError = e
			r.ArgMax = x
		}
	}

	var err error
	if r.MeanAbsError, err = errs.Mean(); err != nil {
		return Report{}, err
	}
	if r.P99AbsError, err = errs.Percentile(99); err != nil {
		return Report{}, err
	}
	return r, nil
}
