package wordalign

import (
	"errors"
	"testing"

	"github.com/ieee0824/wordalign-go/corpus"
	"github.com/ieee0824/wordalign-go/decoder"
	"github.com/ieee0824/wordalign-go/em"
)

var (
	src = []string{"la maison", "la fleur"}
	tgt = []string{"the house", "the flower"}
)

func TestAlignerPipeline(t *testing.T) {
	var iterations int
	a := New(WithProgress(func(s em.IterationStats) { iterations = s.Iteration }))
	m, err := a.Train(src, tgt)
	if err != nil {
		t.Fatalf("Train: %v", err)
	}
	if !m.Training.Converged() {
		t.Errorf("status = %s", m.Training.Status)
	}
	if iterations != m.Training.Iterations {
		t.Errorf("progress saw %d iterations, result says %d", iterations, m.Training.Iterations)
	}

	got := a.Align(m)
	if len(got) != 2 {
		t.Fatalf("alignments = %d", len(got))
	}
	if ann := got[0].Annotation(); ann != "[the-->1] [house-->2]" {
		t.Errorf("annotation = %q", ann)
	}
}

func TestAlignerOptions(t *testing.T) {
	cfg := em.DefaultConfig()
	cfg.MaxIterations = 2
	a := New(WithTrainingConfig(cfg), WithDecoderConfig(decoder.Config{Null: decoder.NullAlways}))
	m, err := a.Train(src, tgt)
	if err != nil {
		t.Fatalf("Train: %v", err)
	}
	if m.Training.Status != em.StatusCapped || m.Training.Iterations != 2 {
		t.Errorf("training = %+v, want capped at 2", m.Training)
	}
	for _, al := range a.Align(m) {
		if !al.NullShown {
			t.Errorf("NullAlways ignored: %q", al.Annotation())
		}
	}
}

func TestAlignWith(t *testing.T) {
	a := New()
	m, err := a.Train(src, tgt)
	if err != nil {
		t.Fatalf("Train: %v", err)
	}
	got, err := a.AlignWith(m.Table, []string{"La Maison"}, []string{"the HOUSE"})
	if err != nil {
		t.Fatalf("AlignWith: %v", err)
	}
	if ann := got[0].Annotation(); ann != "[the-->1] [house-->2]" {
		t.Errorf("annotation = %q", ann)
	}
	if _, err := a.AlignWith(m.Table, []string{"a"}, nil); !errors.Is(err, corpus.ErrEmptyCorpus) {
		t.Errorf("err = %v, want ErrEmptyCorpus", err)
	}
}

func TestTrainErrors(t *testing.T) {
	a := New()
	if _, err := a.Train(nil, nil); !errors.Is(err, corpus.ErrEmptyCorpus) {
		t.Errorf("err = %v, want ErrEmptyCorpus", err)
	}
	if _, err := a.Train([]string{"a", "b"}, []string{"c"}); !errors.Is(err, corpus.ErrLengthMismatch) {
		t.Errorf("err = %v, want ErrLengthMismatch", err)
	}
	if _, err := a.Train([]string{""}, []string{""}); !errors.Is(err, corpus.ErrEmptyVocabulary) {
		t.Errorf("err = %v, want ErrEmptyVocabulary", err)
	}
}
