// SPDX-License-Identifier: MIT

package input

import (
	"errors"
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/spf13/cast"

	"github.com/katalvlaran/numcore/core"
)

// ParseList parses a list of real numbers.
//
// Implementation:
//   - Stage 1: a ',' with a digit on both sides becomes '.'.
//   - Stage 2: split on whitespace, ',' and ';'; empty tokens are skipped.
//   - Stage 3: strconv.ParseFloat each token.
//
// Errors:
//   - core.ErrParse naming the bad token.
//   - core.ErrNonFinite for NaN, Inf or out-of-range tokens.
func ParseList(s string) ([]float64, error) {
	fields := strings.FieldsFunc(normalizeDecimalComma(s), func(r rune) bool {
		return r == ',' || r == ';' || r == ' ' || r == '\t' || r == '\n' || r == '\r'
	})
	out := make([]float64, 0, len(fields))
	for _, f := range fields {
		v, err := strconv.ParseFloat(f, 64)
		switch {
		case errors.Is(err, strconv.ErrRange):
			return nil, fmt.Errorf("ParseList: %q out of range: %w", f, core.ErrNonFinite)
		case err != nil:
			return nil, fmt.Errorf("ParseList: bad number %q: %w", f, core.ErrParse)
		case !core.IsFinite(v):
			return nil, fmt.Errorf("ParseList: %q: %w", f, core.ErrNonFinite)
		}
		out = append(out, v)
	}

	return out, nil
}

// normalizeDecimalComma rewrites digit,digit as digit.digit.
func normalizeDecimalComma(s string) string {
	b := []byte(s)
	for i := 1; i+1 < len(b); i++ {
		if b[i] == ',' && isDigit(b[i-1]) && isDigit(b[i+1]) {
			b[i] = '.'
		}
	}

	return string(b)
}

func isDigit(c byte) bool { return c >= '0' && c <= '9' }

// Floats coerces decoded values (int, float, numeric string, ...) to float64.
// Errors: core.ErrParse for values cast cannot convert, core.ErrNonFinite
// for NaN/±Inf.
func Floats(vs []any) ([]float64, error) {
	out := make([]float64, len(vs))
	for i, v := range vs {
		f, err := cast.ToFloat64E(v)
		if err != nil {
			return nil, fmt.Errorf("Floats: value %v (%T): %v: %w", v, v, err, core.ErrParse)
		}
		if !core.IsFinite(f) {
			return nil, fmt.Errorf("Floats: value %v: %w", v, core.ErrNonFinite)
		}
		out[i] = f
	}

	return out, nil
}

// Dedup returns the samples sorted by x, keeping the first (input-order)
// sample of every repeated abscissa. Inputs are not modified.
// Errors: core.ErrSizeMismatch, core.ErrNonFinite.
// Complexity: O(n log n).
func Dedup(xs, ys []float64) ([]float64, []float64, error) {
	if err := core.ValidateSameLen(xs, ys); err != nil {
		return nil, nil, fmt.Errorf("Dedup: %w", err)
	}
	if err := core.ValidateFinite(xs); err != nil {
		return nil, nil, fmt.Errorf("Dedup: x: %w", err)
	}
	if err := core.ValidateFinite(ys); err != nil {
		return nil, nil, fmt.Errorf("Dedup: y: %w", err)
	}
	idx := make([]int, len(xs))
	for i := range idx {
		idx[i] = i
	}
	sort.SliceStable(idx, func(a, b int) bool { return xs[idx[a]] < xs[idx[b]] })

	outX := make([]float64, 0, len(xs))
	outY := make([]float64, 0, len(xs))
	for k, i := range idx {
		if k > 0 && xs[i] == outX[len(outX)-1] {
			continue
		}
		outX = append(outX, xs[i])
		outY = append(outY, ys[i])
	}

	return outX, outY, nil
}

// DedupPoints is Dedup over a PointSet.
func DedupPoints(ps core.PointSet) (core.PointSet, error) {
	xs, ys, err := Dedup(ps.Xs(), ps.Ys())
	if err != nil {
		return core.PointSet{}, err
	}

	return core.NewPointSet(xs, ys)
}
