package main

import (
	"bufio"
	"flag"
	"fmt"
	"os"

	"github.com/golang/glog"

	"github.com/ieee0824/wordalign-go/corpus"
	"github.com/ieee0824/wordalign-go/report"
	"github.com/ieee0824/wordalign-go/ttable"
)

func main() {
	modelPath := flag.String("model", "", "table saved by align -save")
	word := flag.String("word", "", "only print the translations of this source word")
	flag.Usage = func() {
		fmt.Fprintln(os.Stderr, "Usage: ttable -model table.gob [-word w]")
		fmt.Fprintln(os.Stderr, "  Prints a saved translation table, best translations first.")
		fmt.Fprintln(os.Stderr)
		flag.PrintDefaults()
	}
	flag.Parse()
	defer glog.Flush()

	if *modelPath == "" {
		flag.Usage()
		os.Exit(1)
	}

	t, err := ttable.LoadFile(*modelPath)
	if err != nil {
		glog.Exitf("load model %s: %v", *modelPath, err)
	}
	glog.Infof("loaded %d entries for %d source words", t.Len(), len(t.Sources()))

	listing := t.Listing()
	if *word != "" {
		listing = selectWord(listing, *word)
		if len(listing) == 0 {
			glog.Exitf("%q is not a source word of the model", *word)
		}
	}

	out := bufio.NewWriter(os.Stdout)
	defer out.Flush()
	if err := report.WriteTable(out, listing); err != nil {
		glog.Exitf("write table: %v", err)
	}
}

// selectWord keeps the entry of one source word, normalized the same way as
// the corpus.
func selectWord(listing []ttable.Entry, word string) []ttable.Entry {
	w := corpus.Token(word)
	if w != corpus.NullToken {
		norm := corpus.Normalize(word)
		if len(norm) != 1 {
			return nil
		}
		w = norm[0]
	}
	for _, e := range listing {
		if e.Source == w {
			return []ttable.Entry{e}
		}
	}
	return nil
}
