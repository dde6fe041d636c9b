package em

import (
	"sync"

	"github.com/ieee0824/wordalign-go/corpus"
	"github.com/ieee0824/wordalign-go/internal/mathutil"
	"github.com/ieee0824/wordalign-go/ttable"
)

// Counts holds the expected counts of one E-step: count(f, e) and
// total(f) = Σ_e count(f, e).
type Counts struct {
	count map[ttable.Pair]float64
	total map[corpus.Token]float64
}

func newCounts() *Counts {
	return &Counts{
		count: make(map[ttable.Pair]float64),
		total: make(map[corpus.Token]float64),
	}
}

// Count returns the expected count of (f, e).
func (c *Counts) Count(f, e corpus.Token) float64 {
	return c.count[ttable.Pair{Source: f, Target: e}]
}

// Total returns the expected count mass attributed to f.
func (c *Counts) Total(f corpus.Token) float64 { return c.total[f] }

// merge adds o into c. Float addition makes the result independent of
// which shard a sentence landed in up to rounding.
func (c *Counts) merge(o *Counts) {
	for k, v := range o.count {
		c.count[k] += v
	}
	for f, v := range o.total {
		c.total[f] += v
	}
}

// Normalizer returns Z(e) = Σ_{f∈source} t(e|f) over one sentence's source
// tokens.
func Normalizer(t *ttable.Table, source corpus.Sentence, e corpus.Token) float64 {
	vals := make([]float64, len(source))
	for i, f := range source {
		vals[i] = t.Prob(f, e)
	}
	return mathutil.Sum(vals)
}

// accumulate adds the posterior alignment shares of one sentence pair to
// acc. buf is scratch space reused across calls.
func accumulate(t *ttable.Table, p corpus.SentencePair, acc *Counts, buf []float64) []float64 {
	for _, e := range p.Target {
		buf = buf[:0]
		for _, f := range p.Source {
			buf = append(buf, t.Prob(f, e))
		}
		z := mathutil.Sum(buf)
		if z == 0 {
			// No source word can explain e under the current table.
			continue
		}
		for i, f := range p.Source {
			delta := buf[i] / z
			acc.count[ttable.Pair{Source: f, Target: e}] += delta
			acc.total[f] += delta
		}
	}
	return buf
}

// EStep computes expected counts for the whole corpus under t.
func EStep(t *ttable.Table, pairs []corpus.SentencePair) *Counts {
	acc := newCounts()
	var buf []float64
	for _, p := range pairs {
		buf = accumulate(t, p, acc, buf)
	}
	return acc
}

// parallelEStep splits pairs into contiguous shards, accumulates each in
// its own goroutine and reduces the shards in order after all finish. The
// table is only read while workers run.
func parallelEStep(t *ttable.Table, pairs []corpus.SentencePair, workers int) *Counts {
	if workers <= 1 {
		return EStep(t, pairs)
	}
	shards := make([]*Counts, workers)
	size := (len(pairs) + workers - 1) / workers

	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		start := w * size
		if start >= len(pairs) {
			break
		}
		end := start + size
		if end > len(pairs) {
			end = len(pairs)
		}
		wg.Add(1)
		go func(w, start, end int) {
			defer wg.Done()
			shards[w] = EStep(t, pairs[start:end])
		}(w, start, end)
	}
	wg.Wait()

	acc := newCounts()
	for _, s := range shards {
		if s != nil {
			acc.merge(s)
		}
	}
	return acc
}
