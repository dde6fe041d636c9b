// Package decoder finds the best word alignment of each sentence pair under
// a trained translation table.
package decoder

import (
	"fmt"

	"github.com/ieee0824/wordalign-go/corpus"
	"github.com/ieee0824/wordalign-go/ttable"
)

// NullPolicy decides whether the NULL row is emitted.
type NullPolicy int

const (
	// NullAuto emits the NULL row only when every other source word chose
	// the same target word as NULL.
	NullAuto NullPolicy = iota
	NullAlways
	NullNever
)

func (p NullPolicy) String() string {
	switch p {
	case NullAuto:
		return "auto"
	case NullAlways:
		return "always"
	case NullNever:
		return "never"
	}
	return fmt.Sprintf("NullPolicy(%d)", int(p))
}

// ParseNullPolicy parses the String form of a NullPolicy.
func ParseNullPolicy(s string) (NullPolicy, error) {
	switch s {
	case "auto", "":
		return NullAuto, nil
	case "always":
		return NullAlways, nil
	case "never":
		return NullNever, nil
	}
	return 0, fmt.Errorf("unknown null policy %q", s)
}

// Config holds decoding parameters.
type Config struct {
	Null NullPolicy
}

// DefaultConfig returns the default decoding parameters.
func DefaultConfig() Config {
	return Config{Null: NullAuto}
}

// Decode aligns every source word of p, NULL included, to the target word
// of p with the highest t(e|f), then applies the null policy.
func Decode(t *ttable.Table, p corpus.SentencePair, cfg Config) Alignment {
	tr := NewTrellis(t, p)
	links := make([]Link, len(p.Source))
	for i, f := range p.Source {
		e, prob, ok := tr.Best(f)
		links[i] = Link{SourceIndex: i, Source: f, Target: e, Prob: prob, Aligned: ok}
	}

	if len(links) == 0 || links[0].Source != corpus.NullToken {
		return Alignment{Links: links}
	}
	if showNull(links, cfg.Null) {
		return Alignment{Links: links, NullShown: true}
	}
	return Alignment{Links: links[1:]}
}

// DecodeAll decodes every sentence pair of c in order.
func DecodeAll(t *ttable.Table, c *corpus.Corpus, cfg Config) []Alignment {
	out := make([]Alignment, len(c.Pairs))
	for i, p := range c.Pairs {
		out[i] = Decode(t, p, cfg)
	}
	return out
}

// showNull applies the policy to links, whose first element is NULL.
func showNull(links []Link, policy NullPolicy) bool {
	switch policy {
	case NullAlways:
		return true
	case NullNever:
		return false
	}
	// Auto: NULL stays only when every other row picked NULL's target.
	null := links[0]
	for _, l := range links[1:] {
		if l.Target != null.Target {
			return false
		}
	}
	return true
}
