package decoder

import (
	"sort"

	"github.com/ieee0824/wordalign-go/corpus"
	"github.com/ieee0824/wordalign-go/ttable"
)

// Trellis is a read-only view of the translation table restricted to one
// sentence pair: the sentence's source words × its distinct target words.
type Trellis struct {
	targets []corpus.Token // distinct, ascending
	rows    map[corpus.Token][]float64
}

// NewTrellis builds the view for p. It only reads from t.
func NewTrellis(t *ttable.Table, p corpus.SentencePair) *Trellis {
	seen := make(map[corpus.Token]bool, len(p.Target))
	targets := make([]corpus.Token, 0, len(p.Target))
	for _, e := range p.Target {
		if !seen[e] {
			seen[e] = true
			targets = append(targets, e)
		}
	}
	sort.Slice(targets, func(i, j int) bool { return targets[i] < targets[j] })

	rows := make(map[corpus.Token][]float64, len(p.Source))
	for _, f := range p.Source {
		if _, ok := rows[f]; ok {
			continue
		}
		row := make([]float64, len(targets))
		for j, e := range targets {
			row[j] = t.Prob(f, e)
		}
		rows[f] = row
	}
	return &Trellis{targets: targets, rows: rows}
}

// Targets returns the candidate target words in ascending order.
func (tr *Trellis) Targets() []corpus.Token { return tr.targets }

// Prob returns t(e|f) if both words belong to the sentence, else 0.
func (tr *Trellis) Prob(f, e corpus.Token) float64 {
	row, ok := tr.rows[f]
	if !ok {
		return 0
	}
	i := sort.Search(len(tr.targets), func(i int) bool { return tr.targets[i] >= e })
	if i < len(tr.targets) && tr.targets[i] == e {
		return row[i]
	}
	return 0
}

// Best returns the target word maximizing t(e|f). Ties go to the
// lexicographically smallest word. ok is false when f is not a source word
// of the sentence or the target side is empty.
func (tr *Trellis) Best(f corpus.Token) (e corpus.Token, p float64, ok bool) {
	row, found := tr.rows[f]
	if !found || len(tr.targets) == 0 {
		return "", 0, false
	}
	best := 0
	for j := 1; j < len(row); j++ {
		if row[j] > row[best] {
			best = j
		}
	}
	return tr.targets[best], row[best], true
}
