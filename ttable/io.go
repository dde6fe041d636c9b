package ttable

import (
	"encoding/gob"
	"fmt"
	"io"
	"os"

	"github.com/ieee0824/wordalign-go/corpus"
)

const formatVersion = 1

// serializable form for gob encoding
type serializedTable struct {
	Version int
	Rows    []serializedRow
}

type serializedRow struct {
	Source  string
	Targets []string
	Probs   []float64
}

// Save serializes the table to a writer using gob encoding. Rows and their
// targets are written in a deterministic order.
func (t *Table) Save(w io.Writer) error {
	st := serializedTable{Version: formatVersion}
	for _, f := range t.Sources() {
		row := serializedRow{Source: string(f)}
		for _, e := range t.rows[f] {
			row.Targets = append(row.Targets, string(e))
			row.Probs = append(row.Probs, t.probs[Pair{f, e}])
		}
		st.Rows = append(st.Rows, row)
	}
	return gob.NewEncoder(w).Encode(st)
}

// Load deserializes a table written by Save.
func Load(r io.Reader) (*Table, error) {
	var st serializedTable
	if err := gob.NewDecoder(r).Decode(&st); err != nil {
		return nil, fmt.Errorf("decode table: %w", err)
	}
	if st.Version != formatVersion {
		return nil, fmt.Errorf("unsupported table version %d", st.Version)
	}
	t := New()
	for _, row := range st.Rows {
		if len(row.Targets) != len(row.Probs) {
			return nil, fmt.Errorf("row %q: %d targets, %d probabilities", row.Source, len(row.Targets), len(row.Probs))
		}
		for i, e := range row.Targets {
			t.Set(corpus.Token(row.Source), corpus.Token(e), row.Probs[i])
		}
	}
	return t, nil
}

// SaveFile writes the table to path.
func (t *Table) SaveFile(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := t.Save(f); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

// LoadFile is a convenience wrapper that opens a file path.
func LoadFile(path string) (*Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return Load(f)
}
