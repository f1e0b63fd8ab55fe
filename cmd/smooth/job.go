// SPDX-License-Identifier: MIT

package main

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/numcore/core"
	"github.com/katalvlaran/numcore/expr"
	"github.com/katalvlaran/numcore/input"
)

// Dense grid sizes when a job leaves samples unset.
const (
	DefaultSamples      = 500
	DefaultCurveSamples = 1000 // parametric jobs
)

// Method names accepted in a job file.
const (
	MethodNatural  = "natural"
	MethodClamped  = "clamped"
	MethodLSQ      = "lsq"
	MethodLagrange = "lagrange"
	MethodNewton   = "newton"
)

// DefaultDegree is the least-squares degree when a lsq method omits it.
const DefaultDegree = 5

var errInvalidJob = errors.New("smooth: invalid job")

// Job is one smoothing run, decoded from YAML.
//
//	points:            # or source: {expr: "sin(x)", nodes: "0 0,5 1 1,5"}
//	  x: [0, 1, 2, 3]
//	  y: "0 1 0 1"
//	methods:
//	  - name: natural
//	  - name: clamped
//	    fp0: 0
//	    fpn: 0
//	  - name: lsq
//	    degree: 3
//	samples: 500
//	output: out.csv   # empty or "-" for stdout
//
// With parametric: true the points are a freehand stroke rather than a graph
// y(x). They keep their input order, are parametrized by chord length t in
// [0, 1] and every method fits x(t) and y(t) separately. clamped is rejected
// there because one fp0/fpn pair cannot serve both coordinates.
type Job struct {
	Points     *Points  `yaml:"points"`
	Source     *Source  `yaml:"source"`
	Methods    []Method `yaml:"methods"`
	Parametric bool     `yaml:"parametric"`
	Samples    int      `yaml:"samples"`
	MinSpacing float64  `yaml:"min_spacing"`
	Output     string   `yaml:"output"`
}

// Points holds x and y either as YAML sequences or as "1,5 2 3" strings.
type Points struct {
	X any `yaml:"x"`
	Y any `yaml:"y"`
}

// Source generates ordinates from a formula over the given nodes.
type Source struct {
	Expr  string `yaml:"expr"`
	Nodes any    `yaml:"nodes"`
}

// Method selects one model and its parameters.
type Method struct {
	Name   string  `yaml:"name"`
	Label  string  `yaml:"label"` // CSV column suffix; defaults to Name
	Degree *int    `yaml:"degree"`
	FP0    float64 `yaml:"fp0"`
	FPN    float64 `yaml:"fpn"`
}

func (m Method) label() string {
	if m.Label != "" {
		return m.Label
	}

	return m.Name
}

// column returns the CSV header for m: y_<label>, and x_<label> beside it in
// parametric mode.
func (m Method) column() string { return "y_" + m.label() }

// LoadJob reads and decodes a job file.
func LoadJob(path string) (*Job, error) {
	d, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	return ParseJob(d)
}

// ParseJob decodes YAML, rejecting unknown keys, and validates the result.
func ParseJob(d []byte) (*Job, error) {
	var job Job
	dec := yaml.NewDecoder(bytes.NewReader(d))
	dec.KnownFields(true)
	if err := dec.Decode(&job); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("empty job: %w", errInvalidJob)
		}

		return nil, fmt.Errorf("decode job: %v: %w", err, errInvalidJob)
	}
	if err := job.validate(); err != nil {
		return nil, err
	}

	return &job, nil
}

func (j *Job) validate() error {
	if (j.Points == nil) == (j.Source == nil) {
		return fmt.Errorf("exactly one of points or source is required: %w", errInvalidJob)
	}
	if j.Samples < 0 {
		return fmt.Errorf("samples=%d: %w", j.Samples, errInvalidJob)
	}
	if j.Samples == 0 {
		j.Samples = DefaultSamples
		if j.Parametric {
			j.Samples = DefaultCurveSamples
		}
	}
	if j.MinSpacing < 0 || !core.IsFinite(j.MinSpacing) {
		return fmt.Errorf("min_spacing=%v: %w", j.MinSpacing, errInvalidJob)
	}
	if len(j.Methods) == 0 {
		return fmt.Errorf("no methods: %w", errInvalidJob)
	}
	seen := make(map[string]bool, len(j.Methods))
	for i := range j.Methods {
		m := &j.Methods[i]
		switch m.Name {
		case MethodNatural, MethodLagrange, MethodNewton:
		case MethodClamped:
			if j.Parametric {
				return fmt.Errorf("clamped is not available for parametric jobs: %w", errInvalidJob)
			}
		case MethodLSQ:
			if m.Degree == nil {
				d := DefaultDegree
				m.Degree = &d
			}
		default:
			return fmt.Errorf("unknown method %q: %w", m.Name, errInvalidJob)
		}
		if seen[m.column()] {
			return fmt.Errorf("duplicate column %q, set a label: %w", m.column(), errInvalidJob)
		}
		seen[m.column()] = true
	}

	return nil
}

// PointSet resolves the job's samples: inline points or a sampled formula.
func (j *Job) PointSet() (core.PointSet, error) {
	if j.Source != nil {
		e, err := expr.Compile(j.Source.Expr)
		if err != nil {
			return core.PointSet{}, err
		}
		nodes, err := floats(j.Source.Nodes)
		if err != nil {
			return core.PointSet{}, fmt.Errorf("nodes: %w", err)
		}

		return expr.Sample(e, nodes)
	}
	xs, err := floats(j.Points.X)
	if err != nil {
		return core.PointSet{}, fmt.Errorf("x: %w", err)
	}
	ys, err := floats(j.Points.Y)
	if err != nil {
		return core.PointSet{}, fmt.Errorf("y: %w", err)
	}

	return core.NewPointSet(xs, ys)
}

// floats accepts a YAML sequence, a numeric list string, or nothing.
func floats(v any) ([]float64, error) {
	switch t := v.(type) {
	case nil:
		return nil, nil
	case string:
		return input.ParseList(t)
	case []any:
		return input.Floats(t)
	default:
		return input.Floats([]any{t})
	}
}
