package em

import (
	"fmt"
	"runtime"
)

// SweepMode selects which (f, e) pairs the convergence check and M-step
// visit.
type SweepMode int

const (
	// SweepVocabulary visits the full source × target vocabulary cross
	// product. Pairs that were never materialized compare against 0 and
	// are never inserted.
	SweepVocabulary SweepMode = iota
	// SweepMaterialized visits only the pairs stored in the table. It
	// produces the same table and deltas as SweepVocabulary.
	SweepMaterialized
)

func (m SweepMode) String() string {
	switch m {
	case SweepVocabulary:
		return "vocabulary"
	case SweepMaterialized:
		return "materialized"
	}
	return fmt.Sprintf("SweepMode(%d)", int(m))
}

// ParseSweepMode parses the String form of a SweepMode.
func ParseSweepMode(s string) (SweepMode, error) {
	switch s {
	case "vocabulary", "vocab", "":
		return SweepVocabulary, nil
	case "materialized":
		return SweepMaterialized, nil
	}
	return 0, fmt.Errorf("unknown sweep mode %q", s)
}

// Config holds EM training parameters.
type Config struct {
	MaxIterations     int
	ConvergenceThresh float64 // stop when the largest parameter change is below this
	Sweep             SweepMode
	Workers           int // E-step workers; <= 0 uses runtime.NumCPU()
}

// DefaultConfig returns the standard training parameters.
func DefaultConfig() Config {
	return Config{
		MaxIterations:     1000,
		ConvergenceThresh: 1e-6,
		Sweep:             SweepVocabulary,
		Workers:           1,
	}
}

func (c Config) validate() error {
	if c.MaxIterations < 1 {
		return fmt.Errorf("max iterations must be positive; not %d", c.MaxIterations)
	}
	if !(c.ConvergenceThresh > 0) {
		return fmt.Errorf("convergence threshold must be positive; not %g", c.ConvergenceThresh)
	}
	if c.Sweep != SweepVocabulary && c.Sweep != SweepMaterialized {
		return fmt.Errorf("invalid sweep mode %d", int(c.Sweep))
	}
	return nil
}

func (c Config) workers(pairs int) int {
	w := c.Workers
	if w <= 0 {
		w = runtime.NumCPU()
	}
	if w > pairs {
		w = pairs
	}
	if w < 1 {
		w = 1
	}
	return w
}
