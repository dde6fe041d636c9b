// Package report renders translation tables and alignments as text.
package report

import (
	"fmt"
	"io"

	"github.com/ieee0824/wordalign-go/decoder"
	"github.com/ieee0824/wordalign-go/em"
	"github.com/ieee0824/wordalign-go/ttable"
)

const rule = "---------------------------"

// errWriter remembers the first write error so the renderers can stay
// linear.
type errWriter struct {
	w   io.Writer
	err error
}

func (ew *errWriter) printf(format string, args ...any) {
	if ew.err != nil {
		return
	}
	_, ew.err = fmt.Fprintf(ew.w, format, args...)
}

// WriteProgress writes one training progress line.
func WriteProgress(w io.Writer, s em.IterationStats) error {
	_, err := fmt.Fprintf(w, "EM iteration %d: local max %g\n", s.Iteration, s.LocalMax)
	return err
}

// WriteTable writes each source word as a header followed by its non-zero
// translations, best first.
func WriteTable(w io.Writer, listing []ttable.Entry) error {
	ew := &errWriter{w: w}
	for _, entry := range listing {
		ew.printf("\n%s\n%s\n", entry.Source, rule)
		for _, tr := range entry.Targets {
			ew.printf("\tp(%s|%s) = %g\n", tr.Target, entry.Source, tr.Prob)
		}
	}
	return ew.err
}

// WriteAlignment writes one sentence pair block: the emitted source words,
// their aligned target words, and the index-labeled annotation.
func WriteAlignment(w io.Writer, a decoder.Alignment) error {
	ew := &errWriter{w: w}
	ew.printf("\n%s\n", rule)
	ew.printf("Sentence Pair:\n")
	ew.printf("\t%s\n", a.SourceTokens().String())
	ew.printf("\t%s\n", a.TargetTokens().String())
	ew.printf("\nAlignment:\n")
	ew.printf("\t%s\n", a.Annotation())
	ew.printf("(KEY: [target-->source index])\n")
	return ew.err
}

// WriteAlignments writes every alignment in order.
func WriteAlignments(w io.Writer, as []decoder.Alignment) error {
	for _, a := range as {
		if err := WriteAlignment(w, a); err != nil {
			return err
		}
	}
	return nil
}

// WriteSummary writes the outcome of a training run.
func WriteSummary(w io.Writer, r em.Result) error {
	_, err := fmt.Fprintf(w, "EM %s after %d iterations (local max %g)\n", r.Status, r.Iterations, r.LocalMax)
	return err
}
