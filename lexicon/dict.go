// Package lexicon extracts a bilingual word list from a translation table
// and reads it back.
package lexicon

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"sort"
	"strconv"
	"strings"

	"github.com/ieee0824/wordalign-go/corpus"
	"github.com/ieee0824/wordalign-go/ttable"
)

// Entry is one translation of a source word.
type Entry struct {
	Word        string
	Translation string
	Prob        float64
}

// Dictionary holds source-word-to-translation mappings.
type Dictionary struct {
	Entries map[string][]Entry // word -> translations, best first
}

// NewDictionary creates an empty dictionary.
func NewDictionary() *Dictionary {
	return &Dictionary{
		Entries: make(map[string][]Entry),
	}
}

// Add appends a translation for word.
func (d *Dictionary) Add(word, translation string, prob float64) {
	d.Entries[word] = append(d.Entries[word], Entry{
		Word:        word,
		Translation: translation,
		Prob:        prob,
	})
}

// FromTable keeps, for every source word except NULL, its translations with
// t(e|f) >= minProb, at most topN of them (topN <= 0 keeps all).
func FromTable(t *ttable.Table, minProb float64, topN int) *Dictionary {
	d := NewDictionary()
	for _, entry := range t.Listing() {
		if entry.Source == corpus.NullToken {
			continue
		}
		n := 0
		for _, tr := range entry.Targets {
			if tr.Prob < minProb || (topN > 0 && n >= topN) {
				break
			}
			d.Add(string(entry.Source), string(tr.Target), tr.Prob)
			n++
		}
	}
	return d
}

// Write writes the dictionary as word<TAB>translation<TAB>prob lines, words
// in lexicographic order.
func (d *Dictionary) Write(w io.Writer) error {
	bw := bufio.NewWriter(w)
	for _, word := range d.Words() {
		for _, e := range d.Entries[word] {
			fmt.Fprintf(bw, "%s\t%s\t%s\n", e.Word, e.Translation, strconv.FormatFloat(e.Prob, 'g', -1, 64))
		}
	}
	return bw.Flush()
}

// WriteFile writes the dictionary to path.
func (d *Dictionary) WriteFile(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := d.Write(f); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

// Load reads a dictionary from a tab-separated file.
// Format: word<TAB>translation<TAB>prob
func Load(r io.Reader) (*Dictionary, error) {
	d := NewDictionary()
	scanner := bufio.NewScanner(r)
	lineNum := 0

	for scanner.Scan() {
		lineNum++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		parts := strings.SplitN(line, "\t", 3)
		if len(parts) < 3 {
			return nil, fmt.Errorf("line %d: expected 3 tab-separated fields, got %d", lineNum, len(parts))
		}
		prob, err := strconv.ParseFloat(parts[2], 64)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", lineNum, err)
		}
		d.Add(parts[0], parts[1], prob)
	}

	if err := scanner.Err(); err != nil {
		return nil, err
	}

	for _, entries := range d.Entries {
		sortEntries(entries)
	}
	return d, nil
}

// sortEntries orders the translations of one word best first, ties broken
// by translation.
func sortEntries(entries []Entry) {
	sort.SliceStable(entries, func(i, j int) bool {
		if entries[i].Prob != entries[j].Prob {
			return entries[i].Prob > entries[j].Prob
		}
		return entries[i].Translation < entries[j].Translation
	})
}

// LoadFile is a convenience wrapper that opens a file path.
func LoadFile(path string) (*Dictionary, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return Load(f)
}

// Lookup returns all translations of a word, best first.
func (d *Dictionary) Lookup(word string) []Entry {
	return d.Entries[word]
}

// Best returns the most probable translation of a word.
func (d *Dictionary) Best(word string) (string, bool) {
	entries := d.Entries[word]
	if len(entries) == 0 {
		return "", false
	}
	return entries[0].Translation, true
}

// Words returns all words in the dictionary in lexicographic order.
func (d *Dictionary) Words() []string {
	words := make([]string, 0, len(d.Entries))
	for w := range d.Entries {
		words = append(words, w)
	}
	sort.Strings(words)
	return words
}
