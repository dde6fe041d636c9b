package main

import (
	"bufio"
	"flag"
	"fmt"
	"os"

	"github.com/golang/glog"

	wordalign "github.com/ieee0824/wordalign-go"
	"github.com/ieee0824/wordalign-go/corpus"
	"github.com/ieee0824/wordalign-go/decoder"
	"github.com/ieee0824/wordalign-go/lexicon"
	"github.com/ieee0824/wordalign-go/report"
	"github.com/ieee0824/wordalign-go/ttable"
)

func main() {
	def := defaultOptions()
	sourcePath := flag.String("source", "", "source corpus, one sentence per line (prompted if empty)")
	targetPath := flag.String("target", "", "target corpus, one sentence per line (prompted if empty)")
	configPath := flag.String("config", "", "YAML config file")
	modelPath := flag.String("model", "", "decode with a saved table instead of training")
	savePath := flag.String("save", "", "write the trained table to this path")
	lexiconPath := flag.String("lexicon", "", "write a word<TAB>translation<TAB>prob lexicon to this path")
	lexiconMin := flag.Float64("lexicon-min", 0.1, "minimum t(e|f) for lexicon entries")
	lexiconTop := flag.Int("lexicon-top", 1, "translations per word in the lexicon (<=0: all)")
	printTable := flag.Bool("table", true, "print the translation table")
	showProgress := flag.Bool("progress", true, "print EM progress")
	flag.Int("iter", def.train.MaxIterations, "max EM iterations")
	flag.Float64("thresh", def.train.ConvergenceThresh, "convergence threshold on the largest parameter change")
	flag.String("sweep", def.train.Sweep.String(), "convergence sweep: vocabulary or materialized")
	flag.Int("workers", def.train.Workers, "E-step workers (<=0: one per CPU)")
	flag.String("null", def.decode.Null.String(), "NULL row policy: auto, always or never")
	flag.Usage = func() {
		fmt.Fprintln(os.Stderr, "Usage: align [options]")
		fmt.Fprintln(os.Stderr, "  Learns t(target|source) with IBM Model 1 EM and prints the best")
		fmt.Fprintln(os.Stderr, "  alignment of every sentence pair.")
		fmt.Fprintln(os.Stderr)
		flag.PrintDefaults()
	}
	flag.Parse()
	defer glog.Flush()

	opts := def
	if *configPath != "" {
		if err := loadConfigFile(*configPath, &opts); err != nil {
			glog.Exitf("load config %s: %v", *configPath, err)
		}
	}
	set := make(map[string]string)
	flag.Visit(func(f *flag.Flag) { set[f.Name] = f.Value.String() })
	if err := applyFlags(&opts, set); err != nil {
		glog.Exit(err)
	}

	stdin := bufio.NewReader(os.Stdin)
	var err error
	if *sourcePath == "" {
		if *sourcePath, err = prompt(stdin, os.Stderr, "Source-corpus filename"); err != nil {
			glog.Exit(err)
		}
	}
	if *targetPath == "" {
		if *targetPath, err = prompt(stdin, os.Stderr, "Target-corpus filename"); err != nil {
			glog.Exit(err)
		}
	}

	srcLines, err := corpus.ReadFile(*sourcePath)
	if err != nil {
		glog.Exitf("read source corpus: %v", err)
	}
	tgtLines, err := corpus.ReadFile(*targetPath)
	if err != nil {
		glog.Exitf("read target corpus: %v", err)
	}
	glog.Infof("read %d source lines from %s, %d target lines from %s",
		len(srcLines), *sourcePath, len(tgtLines), *targetPath)

	out := bufio.NewWriter(os.Stdout)
	// exitf flushes what was already written to stdout before exiting.
	exitf := func(format string, args ...interface{}) {
		out.Flush()
		glog.Exitf(format, args...)
	}

	progress := &progressLog{w: out, enabled: *showProgress}
	a := wordalign.New(
		wordalign.WithTrainingConfig(opts.train),
		wordalign.WithDecoderConfig(opts.decode),
		wordalign.WithProgress(progress.observe),
	)

	var table *ttable.Table
	var alignments []decoder.Alignment
	if *modelPath != "" {
		table, err = ttable.LoadFile(*modelPath)
		if err != nil {
			exitf("load model %s: %v", *modelPath, err)
		}
		glog.Infof("loaded %d table entries from %s", table.Len(), *modelPath)
		alignments, err = a.AlignWith(table, srcLines, tgtLines)
		if err != nil {
			exitf("%v", err)
		}
	} else {
		m, err := a.Train(srcLines, tgtLines)
		if err != nil {
			exitf("%v", err)
		}
		if progress.err != nil {
			exitf("write progress: %v", progress.err)
		}
		if err := report.WriteSummary(out, m.Training); err != nil {
			exitf("write summary: %v", err)
		}
		table = m.Table
		alignments = a.Align(m)
		if *savePath != "" {
			if err := table.SaveFile(*savePath); err != nil {
				exitf("save model: %v", err)
			}
			glog.Infof("table saved to %s", *savePath)
		}
	}

	if *lexiconPath != "" {
		lex := lexicon.FromTable(table, *lexiconMin, *lexiconTop)
		if err := lex.WriteFile(*lexiconPath); err != nil {
			exitf("write lexicon: %v", err)
		}
		glog.Infof("lexicon with %d words written to %s", len(lex.Entries), *lexiconPath)
	}
	if *printTable {
		if err := report.WriteTable(out, table.Listing()); err != nil {
			exitf("write table: %v", err)
		}
	}
	if err := report.WriteAlignments(out, alignments); err != nil {
		exitf("write alignments: %v", err)
	}
	if err := out.Flush(); err != nil {
		glog.Exitf("flush output: %v", err)
	}
}
