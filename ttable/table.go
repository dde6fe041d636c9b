// Package ttable implements the sparse lexical translation table t(e|f).
package ttable

import (
	"sort"

	"github.com/ieee0824/wordalign-go/corpus"
	"github.com/ieee0824/wordalign-go/internal/mathutil"
)

// Pair is an (f, e) key: source token f, target token e.
type Pair struct {
	Source corpus.Token
	Target corpus.Token
}

// Table maps co-occurring pairs to t(e|f). Pairs that never co-occur in a
// sentence pair are not stored and read as 0.
type Table struct {
	probs map[Pair]float64
	// rows indexes the stored targets of each source token.
	rows map[corpus.Token][]corpus.Token
}

// New creates an empty table.
func New() *Table {
	return &Table{
		probs: make(map[Pair]float64),
		rows:  make(map[corpus.Token][]corpus.Token),
	}
}

// Initialize materializes the within-sentence cross product of every
// sentence pair and sets each entry to 1/|source vocabulary|.
func Initialize(c *corpus.Corpus) (*Table, error) {
	if c == nil || c.Len() == 0 {
		return nil, corpus.NewConfigError(corpus.ErrEmptyCorpus, "no sentence pairs")
	}
	n := c.SourceVocabulary().Len()
	if n == 0 {
		return nil, corpus.NewConfigError(corpus.ErrEmptyVocabulary, "source side")
	}
	init := 1 / float64(n)

	t := New()
	for _, p := range c.Pairs {
		for _, f := range p.Source {
			for _, e := range p.Target {
				t.Set(f, e, init)
			}
		}
	}
	return t, nil
}

// Prob returns t(e|f), or 0 if the pair was never stored. It never
// modifies the table.
func (t *Table) Prob(f, e corpus.Token) float64 {
	return t.probs[Pair{f, e}]
}

// Lookup returns t(e|f) and whether the pair is stored.
func (t *Table) Lookup(f, e corpus.Token) (float64, bool) {
	p, ok := t.probs[Pair{f, e}]
	return p, ok
}

// Has reports whether (f, e) is stored.
func (t *Table) Has(f, e corpus.Token) bool {
	_, ok := t.probs[Pair{f, e}]
	return ok
}

// Set stores t(e|f) = p, materializing the pair if needed.
func (t *Table) Set(f, e corpus.Token, p float64) {
	k := Pair{f, e}
	if _, ok := t.probs[k]; !ok {
		t.rows[f] = append(t.rows[f], e)
	}
	t.probs[k] = p
}

// Len returns the number of stored pairs.
func (t *Table) Len() int { return len(t.probs) }

// Sources returns the source tokens that have at least one stored pair, in
// lexicographic order.
func (t *Table) Sources() []corpus.Token {
	out := make([]corpus.Token, 0, len(t.rows))
	for f := range t.rows {
		out = append(out, f)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// Targets returns the stored target tokens of f in insertion order. The
// returned slice must not be modified.
func (t *Table) Targets(f corpus.Token) []corpus.Token {
	return t.rows[f]
}

// Pairs returns every stored pair ordered by source then target.
func (t *Table) Pairs() []Pair {
	out := make([]Pair, 0, len(t.probs))
	for k := range t.probs {
		out = append(out, k)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Source != out[j].Source {
			return out[i].Source < out[j].Source
		}
		return out[i].Target < out[j].Target
	})
	return out
}

// RowMass returns Σ_e t(e|f) over the stored targets of f. It tends to 1
// as training converges.
func (t *Table) RowMass(f corpus.Token) float64 {
	row := t.rows[f]
	vals := make([]float64, len(row))
	for i, e := range row {
		vals[i] = t.probs[Pair{f, e}]
	}
	return mathutil.Sum(vals)
}

// Clone returns a deep copy.
func (t *Table) Clone() *Table {
	c := &Table{
		probs: make(map[Pair]float64, len(t.probs)),
		rows:  make(map[corpus.Token][]corpus.Token, len(t.rows)),
	}
	for k, v := range t.probs {
		c.probs[k] = v
	}
	for f, row := range t.rows {
		c.rows[f] = append([]corpus.Token(nil), row...)
	}
	return c
}
