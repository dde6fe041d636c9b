package main

import (
	"bufio"
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/ieee0824/wordalign-go/decoder"
	"github.com/ieee0824/wordalign-go/em"
)

func TestLoadConfig(t *testing.T) {
	yml := `
train:
  max_iterations: 50
  convergence_threshold: 0.001
  sweep: materialized
  workers: 4
decode:
  null_policy: never
`
	o := defaultOptions()
	if err := loadConfig(strings.NewReader(yml), &o); err != nil {
		t.Fatalf("loadConfig: %v", err)
	}
	want := em.Config{MaxIterations: 50, ConvergenceThresh: 0.001, Sweep: em.SweepMaterialized, Workers: 4}
	if o.train != want {
		t.Errorf("train = %+v, want %+v", o.train, want)
	}
	if o.decode.Null != decoder.NullNever {
		t.Errorf("null = %s, want never", o.decode.Null)
	}
}

func TestLoadConfigPartial(t *testing.T) {
	o := defaultOptions()
	if err := loadConfig(strings.NewReader("train:\n  max_iterations: 7\n"), &o); err != nil {
		t.Fatalf("loadConfig: %v", err)
	}
	if o.train.MaxIterations != 7 {
		t.Errorf("MaxIterations = %d, want 7", o.train.MaxIterations)
	}
	if o.train.ConvergenceThresh != em.DefaultConfig().ConvergenceThresh {
		t.Errorf("ConvergenceThresh = %g, want default", o.train.ConvergenceThresh)
	}

	o = defaultOptions()
	if err := loadConfig(strings.NewReader(""), &o); err != nil {
		t.Errorf("empty config: %v", err)
	}
}

func TestLoadConfigErrors(t *testing.T) {
	for _, yml := range []string{
		"train:\n  max_iteration: 5\n",
		"train:\n  sweep: sideways\n",
		"decode:\n  null_policy: sometimes\n",
		"decode:\n  \"null\": never\n",
		"train: [",
	} {
		o := defaultOptions()
		if err := loadConfig(strings.NewReader(yml), &o); err == nil {
			t.Errorf("config %q accepted", yml)
		}
	}
}

func TestApplyFlags(t *testing.T) {
	o := defaultOptions()
	o.train.MaxIterations = 50 // from a config file
	err := applyFlags(&o, map[string]string{
		"iter":   "10",
		"thresh": "1e-4",
		"null":   "always",
		"source": "ignored.txt",
	})
	if err != nil {
		t.Fatalf("applyFlags: %v", err)
	}
	if o.train.MaxIterations != 10 || o.train.ConvergenceThresh != 1e-4 {
		t.Errorf("train = %+v", o.train)
	}
	if o.decode.Null != decoder.NullAlways {
		t.Errorf("null = %s", o.decode.Null)
	}
	if err := applyFlags(&o, map[string]string{"workers": "many"}); err == nil {
		t.Error("bad -workers accepted")
	}
}

func TestPrompt(t *testing.T) {
	var out bytes.Buffer
	r := bufio.NewReader(strings.NewReader("src.txt\n tgt.txt"))
	got, err := prompt(r, &out, "Source-corpus filename")
	if err != nil || got != "src.txt" {
		t.Errorf("prompt = %q, %v", got, err)
	}
	if out.String() != "<<Source-corpus filename>> " {
		t.Errorf("prompt text = %q", out.String())
	}
	got, err = prompt(r, &out, "Target-corpus filename")
	if err != nil || got != "tgt.txt" {
		t.Errorf("prompt without newline = %q, %v", got, err)
	}
	if _, err := prompt(r, &out, "more"); err == nil {
		t.Error("expected error at EOF")
	}
}

type failingWriter struct{ writes int }

func (w *failingWriter) Write([]byte) (int, error) {
	w.writes++
	return 0, errors.New("broken pipe")
}

func TestProgressLog(t *testing.T) {
	var buf bytes.Buffer
	p := &progressLog{w: &buf, enabled: true}
	p.observe(em.IterationStats{Iteration: 1, LocalMax: 0.5})
	if p.err != nil || buf.String() != "EM iteration 1: local max 0.5\n" {
		t.Errorf("got %q, %v", buf.String(), p.err)
	}

	fw := &failingWriter{}
	p = &progressLog{w: fw, enabled: true}
	p.observe(em.IterationStats{Iteration: 1})
	p.observe(em.IterationStats{Iteration: 2})
	if p.err == nil {
		t.Error("write error dropped")
	}
	if fw.writes != 1 {
		t.Errorf("writes after failure = %d, want 1", fw.writes)
	}

	buf.Reset()
	p = &progressLog{w: &buf}
	p.observe(em.IterationStats{Iteration: 1})
	if buf.Len() != 0 {
		t.Errorf("disabled progress wrote %q", buf.String())
	}
}
