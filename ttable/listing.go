package ttable

import (
	"sort"

	"github.com/ieee0824/wordalign-go/corpus"
)

// Translation is one t(e|f) entry of a listing.
type Translation struct {
	Target corpus.Token
	Prob   float64
}

// Entry lists the translations of one source token.
type Entry struct {
	Source  corpus.Token
	Targets []Translation
}

// SortTranslations orders ts by descending probability, breaking ties by
// ascending target token.
func SortTranslations(ts []Translation) {
	sort.Slice(ts, func(i, j int) bool {
		if ts[i].Prob != ts[j].Prob {
			return ts[i].Prob > ts[j].Prob
		}
		return ts[i].Target < ts[j].Target
	})
}

// Row returns the non-zero translations of f, best first.
func (t *Table) Row(f corpus.Token) []Translation {
	var out []Translation
	for _, e := range t.rows[f] {
		if p := t.probs[Pair{f, e}]; p != 0 {
			out = append(out, Translation{Target: e, Prob: p})
		}
	}
	SortTranslations(out)
	return out
}

// Listing restructures the table per source token. Sources are in
// lexicographic order. Every stored source gets an entry; one whose
// translations are all zero has no Targets.
func (t *Table) Listing() []Entry {
	sources := t.Sources()
	out := make([]Entry, 0, len(sources))
	for _, f := range sources {
		out = append(out, Entry{Source: f, Targets: t.Row(f)})
	}
	return out
}
