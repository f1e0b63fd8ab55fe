// SPDX-License-Identifier: MIT

package lsq

import (
	"fmt"
	"math"

	"github.com/montanaflynn/stats"

	"github.com/katalvlaran/numcore/core"
)

// Summary describes a residual vector.
type Summary struct {
	RMSE   float64 // sqrt(mean(r²))
	MaxAbs float64 // max |r_i|
	Mean   float64
	StdDev float64 // population standard deviation
}

// Summarize reduces residuals to a Summary.
// Returns core.ErrTooFewPoints on empty input and core.ErrNonFinite on NaN/±Inf.
func Summarize(residuals []float64) (Summary, error) {
	if len(residuals) == 0 {
		return Summary{}, fmt.Errorf("Summarize: %w", core.ErrTooFewPoints)
	}
	if err := core.ValidateFinite(residuals); err != nil {
		return Summary{}, fmt.Errorf("Summarize: %w", err)
	}

	data := stats.Float64Data(residuals)
	sq := make(stats.Float64Data, len(residuals))
	abs := make(stats.Float64Data, len(residuals))
	for i, r := range residuals {
		sq[i] = r * r
		abs[i] = math.Abs(r)
	}

	var (
		out Summary
		ms  float64
		err error
	)
	if out.Mean, err = stats.Mean(data); err != nil {
		return Summary{}, fmt.Errorf("Summarize: mean: %w", err)
	}
	if out.StdDev, err = stats.StandardDeviation(data); err != nil {
		return Summary{}, fmt.Errorf("Summarize: stddev: %w", err)
	}
	if out.MaxAbs, err = stats.Max(abs); err != nil {
		return Summary{}, fmt.Errorf("Summarize: max: %w", err)
	}
	if ms, err = stats.Mean(sq); err != nil {
		return Summary{}, fmt.Errorf("Summarize: mean square: %w", err)
	}
	out.RMSE = math.Sqrt(ms)

	return out, nil
}
