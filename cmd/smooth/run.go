// SPDX-License-Identifier: MIT

package main

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"github.com/sgostarter/i/l"

	"github.com/katalvlaran/numcore/core"
	"github.com/katalvlaran/numcore/input"
	"github.com/katalvlaran/numcore/lagrange"
	"github.com/katalvlaran/numcore/lsq"
	"github.com/katalvlaran/numcore/newton"
	"github.com/katalvlaran/numcore/spline"
)

// Run executes job and writes the CSV table to w.
//
// Implementation:
//   - Stage 1: resolve the samples.
//   - Stage 2: tabulate them as a graph y(x) or, for parametric jobs, as a
//     curve (x(t), y(t)).
//   - Stage 3: write header and rows.
func Run(job *Job, w io.Writer, logger l.Wrapper) error {
	if logger == nil {
		logger = l.NewNopLoggerWrapper()
	}

	// Stage 1: samples
	raw, err := job.PointSet()
	if err != nil {
		return fmt.Errorf("points: %w", err)
	}

	// Stage 2: models and dense evaluation
	var header []string
	var cols [][]float64
	if job.Parametric {
		header, cols, err = tabulateCurve(job, raw, logger)
	} else {
		header, cols, err = tabulateGraph(job, raw, logger)
	}
	if err != nil {
		return err
	}

	// Stage 3: CSV
	if err = writeTable(w, header, cols); err != nil {
		return err
	}
	logger.WithFields(l.IntField("rows", len(cols[0])), l.IntField("columns", len(header))).Info("table written")

	return nil
}

// tabulateGraph dedups the samples by x and evaluates every method on
// Linspace(min x, max x, samples). The first column is x_dense.
func tabulateGraph(job *Job, raw core.PointSet, logger l.Wrapper) ([]string, [][]float64, error) {
	ps, err := input.DedupPoints(raw)
	if err != nil {
		return nil, nil, fmt.Errorf("points: %w", err)
	}
	if dropped := raw.Len() - ps.Len(); dropped > 0 {
		logger.WithFields(l.IntField("dropped", dropped)).Warn("repeated abscissas removed")
	}
	lo, hi, err := ps.Bounds()
	if err != nil {
		return nil, nil, fmt.Errorf("points: %w", err)
	}
	logger.WithFields(l.IntField("points", ps.Len()), l.StringField("domain", fmt.Sprintf("[%g, %g]", lo, hi))).Info("samples loaded")

	evs := make([]core.Evaluator, len(job.Methods))
	for i, m := range job.Methods {
		if evs[i], err = build(m, ps, job.MinSpacing, logger); err != nil {
			return nil, nil, fmt.Errorf("%s: %w", m.column(), err)
		}
	}

	dense, err := core.Linspace(lo, hi, job.Samples)
	if err != nil {
		return nil, nil, err
	}
	header := make([]string, 0, len(evs)+1)
	header = append(header, "x_dense")
	cols := make([][]float64, 0, len(evs)+1)
	cols = append(cols, dense)
	for i, ev := range evs {
		ys, err := core.EvalAll(ev, dense)
		if err != nil {
			return nil, nil, fmt.Errorf("%s: %w", job.Methods[i].column(), err)
		}
		header = append(header, job.Methods[i].column())
		cols = append(cols, ys)
	}

	return header, cols, nil
}

// tabulateCurve parametrizes the samples by chord length and evaluates every
// method for x(t) and y(t) on Linspace(0, 1, samples). Each method yields the
// columns x_<label>, y_<label>.
func tabulateCurve(job *Job, raw core.PointSet, logger l.Wrapper) ([]string, [][]float64, error) {
	t, err := core.ChordLength(raw.Xs(), raw.Ys())
	if err != nil {
		return nil, nil, fmt.Errorf("points: %w", err)
	}
	// zero-length segments repeat t; the repeated point carries no information
	tx, xs, err := input.Dedup(t, raw.Xs())
	if err != nil {
		return nil, nil, fmt.Errorf("points: %w", err)
	}
	_, ys, err := input.Dedup(t, raw.Ys())
	if err != nil {
		return nil, nil, fmt.Errorf("points: %w", err)
	}
	if dropped := raw.Len() - len(tx); dropped > 0 {
		logger.WithFields(l.IntField("dropped", dropped)).Warn("repeated stroke points removed")
	}
	curveX, err := core.NewPointSet(tx, xs)
	if err != nil {
		return nil, nil, fmt.Errorf("points: %w", err)
	}
	curveY, err := core.NewPointSet(tx, ys)
	if err != nil {
		return nil, nil, fmt.Errorf("points: %w", err)
	}
	logger.WithFields(l.IntField("points", curveX.Len())).Info("stroke parametrized by chord length")

	dense, err := core.Linspace(0, 1, job.Samples)
	if err != nil {
		return nil, nil, err
	}
	header := make([]string, 0, 2*len(job.Methods))
	cols := make([][]float64, 0, 2*len(job.Methods))
	for _, m := range job.Methods {
		for _, axis := range []struct {
			name string
			ps   core.PointSet
		}{{"x", curveX}, {"y", curveY}} {
			col := axis.name + "_" + m.label()
			ev, err := build(m, axis.ps, job.MinSpacing, logger.WithFields(l.StringField("axis", axis.name)))
			if err != nil {
				return nil, nil, fmt.Errorf("%s: %w", col, err)
			}
			vs, err := core.EvalAll(ev, dense)
			if err != nil {
				return nil, nil, fmt.Errorf("%s: %w", col, err)
			}
			header = append(header, col)
			cols = append(cols, vs)
		}
	}

	return header, cols, nil
}

// writeTable writes header and then one row per index of the equally long cols.
func writeTable(w io.Writer, header []string, cols [][]float64) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(header); err != nil {
		return err
	}
	row := make([]string, len(cols))
	for r := range cols[0] {
		for c := range cols {
			row[c] = formatFloat(cols[c][r])
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}
	cw.Flush()

	return cw.Error()
}

// build constructs the model for one method.
func build(m Method, ps core.PointSet, minSpacing float64, logger l.Wrapper) (core.Evaluator, error) {
	log := logger.WithFields(l.StringField("method", m.label()))
	switch m.Name {
	case MethodNatural:
		log.Debug("building natural spline")
		return spline.FromPoints(ps, spline.WithMinSpacing(minSpacing))

	case MethodClamped:
		log.WithFields(l.StringField("fp0", formatFloat(m.FP0)), l.StringField("fpn", formatFloat(m.FPN))).Debug("building clamped spline")
		return spline.Clamped(ps.Xs(), ps.Ys(), m.FP0, m.FPN, spline.WithMinSpacing(minSpacing))

	case MethodLSQ:
		p, err := lsq.FitCapped(ps, *m.Degree)
		if err != nil {
			return nil, err
		}
		if p.Degree() < *m.Degree {
			log.WithFields(l.IntField("requested", *m.Degree), l.IntField("degree", p.Degree())).Warn("degree lowered to fit the data")
		}
		if s, err := lsq.Summarize(p.Residuals(ps)); err == nil {
			log.WithFields(l.StringField("rmse", formatFloat(s.RMSE)), l.StringField("max_abs", formatFloat(s.MaxAbs))).Info("least-squares fit")
		}

		return p.Evaluator(), nil

	case MethodLagrange:
		log.Debug("building lagrange interpolator")
		return lagrange.New(ps)

	case MethodNewton:
		log.Debug("building newton interpolant")
		return newton.FromPoints(ps)
	}

	return nil, fmt.Errorf("unknown method %q: %w", m.Name, errInvalidJob)
}

func formatFloat(v float64) string { return strconv.FormatFloat(v, 'g', -1, 64) }
