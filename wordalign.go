// Package wordalign learns word-to-word translation probabilities from a
// parallel corpus and decodes the best word alignment of each sentence pair.
package wordalign

import (
	"fmt"

	"github.com/golang/glog"

	"github.com/ieee0824/wordalign-go/corpus"
	"github.com/ieee0824/wordalign-go/decoder"
	"github.com/ieee0824/wordalign-go/em"
	"github.com/ieee0824/wordalign-go/ttable"
)

// Aligner runs the load -> initialize -> train -> decode pipeline.
type Aligner struct {
	TrainCfg em.Config
	DecCfg   decoder.Config
	progress em.ProgressFunc
}

// Option configures an Aligner.
type Option func(*Aligner)

// WithTrainingConfig sets custom EM parameters.
func WithTrainingConfig(cfg em.Config) Option {
	return func(a *Aligner) {
		a.TrainCfg = cfg
	}
}

// WithDecoderConfig sets custom decoding parameters.
func WithDecoderConfig(cfg decoder.Config) Option {
	return func(a *Aligner) {
		a.DecCfg = cfg
	}
}

// WithProgress registers a callback for per-iteration training stats.
func WithProgress(fn em.ProgressFunc) Option {
	return func(a *Aligner) {
		a.progress = fn
	}
}

// New creates an Aligner with default parameters.
func New(opts ...Option) *Aligner {
	a := &Aligner{
		TrainCfg: em.DefaultConfig(),
		DecCfg:   decoder.DefaultConfig(),
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// Model is a trained translation table together with the corpus it was
// trained on.
type Model struct {
	Corpus   *corpus.Corpus
	Table    *ttable.Table
	Training em.Result
}

// Train builds the corpus from raw lines and runs EM on it.
func (a *Aligner) Train(sourceLines, targetLines []string) (*Model, error) {
	c, err := corpus.New(sourceLines, targetLines)
	if err != nil {
		return nil, fmt.Errorf("build corpus: %w", err)
	}
	return a.TrainCorpus(c)
}

// TrainCorpus runs EM on an already built corpus.
func (a *Aligner) TrainCorpus(c *corpus.Corpus) (*Model, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}
	t, err := ttable.Initialize(c)
	if err != nil {
		return nil, fmt.Errorf("initialize table: %w", err)
	}
	glog.Infof("training on %d sentence pairs, %d source words, %d target words, %d table entries",
		c.Len(), c.SourceVocabulary().Len(), c.TargetVocabulary().Len(), t.Len())

	progress := func(s em.IterationStats) {
		if glog.V(1) {
			glog.Infof("EM iteration %d: local max %g", s.Iteration, s.LocalMax)
		}
		if a.progress != nil {
			a.progress(s)
		}
	}
	res, err := em.Train(t, c, a.TrainCfg, progress)
	if err != nil {
		return nil, fmt.Errorf("train: %w", err)
	}
	if res.Converged() {
		glog.Infof("EM converged after %d iterations (local max %g)", res.Iterations, res.LocalMax)
	} else {
		glog.Warningf("EM stopped at the %d iteration cap (local max %g >= %g)",
			res.Iterations, res.LocalMax, a.TrainCfg.ConvergenceThresh)
	}
	return &Model{Corpus: c, Table: t, Training: res}, nil
}

// Align decodes every sentence pair of the training corpus.
func (a *Aligner) Align(m *Model) []decoder.Alignment {
	return decoder.DecodeAll(m.Table, m.Corpus, a.DecCfg)
}

// AlignWith decodes new text against an existing table, e.g. one loaded
// with ttable.LoadFile. Words the table has never seen read as probability 0.
func (a *Aligner) AlignWith(t *ttable.Table, sourceLines, targetLines []string) ([]decoder.Alignment, error) {
	c, err := corpus.New(sourceLines, targetLines)
	if err != nil {
		return nil, fmt.Errorf("build corpus: %w", err)
	}
	return decoder.DecodeAll(t, c, a.DecCfg), nil
}
