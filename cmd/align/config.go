package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/ieee0824/wordalign-go/decoder"
	"github.com/ieee0824/wordalign-go/em"
	"github.com/ieee0824/wordalign-go/report"
)

// options is the merged result of defaults, the config file and flags.
type options struct {
	train  em.Config
	decode decoder.Config
}

func defaultOptions() options {
	return options{
		train:  em.DefaultConfig(),
		decode: decoder.DefaultConfig(),
	}
}

// fileConfig mirrors the YAML config file. Zero values leave the default
// in place.
type fileConfig struct {
	Train struct {
		MaxIterations     int     `yaml:"max_iterations"`
		ConvergenceThresh float64 `yaml:"convergence_threshold"`
		Sweep             string  `yaml:"sweep"`
		Workers           int     `yaml:"workers"`
	} `yaml:"train"`
	Decode struct {
		Null string `yaml:"null_policy"`
	} `yaml:"decode"`
}

// loadConfig decodes a YAML config from r and applies it to o. Unknown keys
// are rejected so that typos do not silently fall back to defaults.
func loadConfig(r io.Reader, o *options) error {
	var fc fileConfig
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&fc); err != nil && err != io.EOF {
		return fmt.Errorf("parse config: %w", err)
	}

	if fc.Train.MaxIterations != 0 {
		o.train.MaxIterations = fc.Train.MaxIterations
	}
	if fc.Train.ConvergenceThresh != 0 {
		o.train.ConvergenceThresh = fc.Train.ConvergenceThresh
	}
	if fc.Train.Sweep != "" {
		m, err := em.ParseSweepMode(fc.Train.Sweep)
		if err != nil {
			return err
		}
		o.train.Sweep = m
	}
	if fc.Train.Workers != 0 {
		o.train.Workers = fc.Train.Workers
	}
	if fc.Decode.Null != "" {
		p, err := decoder.ParseNullPolicy(fc.Decode.Null)
		if err != nil {
			return err
		}
		o.decode.Null = p
	}
	return nil
}

func loadConfigFile(path string, o *options) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return loadConfig(f, o)
}

// applyFlags overrides o with the flags set on the command line, given as
// name -> value.
func applyFlags(o *options, set map[string]string) error {
	for name, value := range set {
		var err error
		switch name {
		case "iter":
			o.train.MaxIterations, err = strconv.Atoi(value)
		case "thresh":
			o.train.ConvergenceThresh, err = strconv.ParseFloat(value, 64)
		case "sweep":
			o.train.Sweep, err = em.ParseSweepMode(value)
		case "workers":
			o.train.Workers, err = strconv.Atoi(value)
		case "null":
			o.decode.Null, err = decoder.ParseNullPolicy(value)
		}
		if err != nil {
			return fmt.Errorf("flag -%s: %w", name, err)
		}
	}
	return nil
}

// progressLog writes EM progress lines to w. The first write error is kept
// and later iterations are not written.
type progressLog struct {
	w       io.Writer
	enabled bool
	err     error
}

func (p *progressLog) observe(s em.IterationStats) {
	if !p.enabled || p.err != nil {
		return
	}
	p.err = report.WriteProgress(p.w, s)
}

// prompt asks for a value on w and reads one line from r.
func prompt(r *bufio.Reader, w io.Writer, label string) (string, error) {
	fmt.Fprintf(w, "<<%s>> ", label)
	line, err := r.ReadString('\n')
	if err != nil && (err != io.EOF || line == "") {
		return "", fmt.Errorf("read %s: %w", label, err)
	}
	line = strings.TrimSpace(line)
	if line == "" {
		return "", fmt.Errorf("empty %s", label)
	}
	return line, nil
}
