// Package em estimates lexical translation probabilities t(e|f) with
// Expectation-Maximization (IBM Model 1 without distortion or fertility).
package em

import (
	"fmt"

	"github.com/ieee0824/wordalign-go/corpus"
	"github.com/ieee0824/wordalign-go/internal/mathutil"
	"github.com/ieee0824/wordalign-go/ttable"
)

// Status is the trainer state.
type Status int

const (
	StatusRunning Status = iota
	// StatusConverged means the largest parameter change fell below the
	// threshold.
	StatusConverged
	// StatusCapped means MaxIterations was reached first. The table is
	// still usable.
	StatusCapped
)

func (s Status) String() string {
	switch s {
	case StatusRunning:
		return "running"
	case StatusConverged:
		return "converged"
	case StatusCapped:
		return "capped"
	}
	return fmt.Sprintf("Status(%d)", int(s))
}

// IterationStats is reported after every iteration.
type IterationStats struct {
	Iteration int     // 1-based
	LocalMax  float64 // largest |new - old| over the sweep
}

// ProgressFunc receives per-iteration notifications. It must not modify
// the table.
type ProgressFunc func(IterationStats)

// Result summarizes a training run.
type Result struct {
	Iterations int
	LocalMax   float64
	Status     Status
}

// Converged reports whether training stopped on the threshold rather than
// the iteration cap.
func (r Result) Converged() bool { return r.Status == StatusConverged }

// Train refines t in place until the largest per-parameter change is below
// cfg.ConvergenceThresh or cfg.MaxIterations iterations have run. Invalid
// input is reported before the first iteration.
func Train(t *ttable.Table, c *corpus.Corpus, cfg Config, progress ProgressFunc) (Result, error) {
	if err := cfg.validate(); err != nil {
		return Result{}, err
	}
	if err := c.Validate(); err != nil {
		return Result{}, err
	}
	if t == nil || t.Len() == 0 {
		return Result{}, corpus.NewConfigError(corpus.ErrEmptyVocabulary, "empty probability table")
	}

	sw := sweep{
		table:   t,
		mode:    cfg.Sweep,
		sources: c.SourceVocabulary().Tokens(),
		targets: c.TargetVocabulary().Tokens(),
	}
	workers := cfg.workers(c.Len())

	var res Result
	for res.Status == StatusRunning {
		counts := parallelEStep(t, c.Pairs, workers)
		localMax := sw.delta(counts)
		sw.maximize(counts)

		res.Iterations++
		res.LocalMax = localMax
		if progress != nil {
			progress(IterationStats{Iteration: res.Iterations, LocalMax: localMax})
		}

		switch {
		case localMax < cfg.ConvergenceThresh:
			res.Status = StatusConverged
		case res.Iterations >= cfg.MaxIterations:
			res.Status = StatusCapped
		}
	}
	return res, nil
}

// sweep walks the (f, e) pairs checked for convergence and re-estimated.
type sweep struct {
	table   *ttable.Table
	mode    SweepMode
	sources []corpus.Token // sorted source vocabulary
	targets []corpus.Token // sorted target vocabulary
}

// each calls fn with the re-estimated value count(f,e)/total(f) of every
// visited pair. Source tokens with zero total are skipped: they carry no
// update signal this iteration.
func (s sweep) each(counts *Counts, fn func(f, e corpus.Token, next float64)) {
	for _, f := range s.sources {
		total := counts.Total(f)
		if total == 0 {
			continue
		}
		targets := s.targets
		if s.mode == SweepMaterialized {
			targets = s.table.Targets(f)
		}
		for _, e := range targets {
			next, _ := mathutil.Ratio(counts.Count(f, e), total)
			fn(f, e, next)
		}
	}
}

// delta returns the largest absolute change the M-step would make.
func (s sweep) delta(counts *Counts) float64 {
	var m mathutil.MaxAbsDiff
	s.each(counts, func(f, e corpus.Token, next float64) {
		m.Observe(s.table.Prob(f, e), next)
	})
	return m.Value()
}

// maximize overwrites the table with the re-estimated values. A pair is
// only inserted if it is already stored or gains non-zero mass, which
// cannot happen for pairs that never co-occur.
func (s sweep) maximize(counts *Counts) {
	s.each(counts, func(f, e corpus.Token, next float64) {
		if next != 0 || s.table.Has(f, e) {
			s.table.Set(f, e, mathutil.Clamp01(next))
		}
	})
}
