// Package main provides the CLI entrypoint for type-analyzer.
//
// type-analyzer runs sample types through a shared analyzer in stages: each
// stage requests a set of member categories, and the cached result is printed
// after every stage. The default run asks for methods only and then for
// everything, showing how one result is completed across calls.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"type-analyzer/analyzer"
	"type-analyzer/options"
	"type-analyzer/report"
)

func main() {
	if err := run(os.Args[1:], os.Stdout, os.Stderr); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			os.Exit(0)
		}
		fmt.Fprintln(os.Stderr, "type-analyzer:", err)
		os.Exit(1)
	}
}

// stringList is a repeatable string flag.
type stringList []string

func (s *stringList) String() string { return strings.Join(*s, ",") }

func (s *stringList) Set(v string) error {
	*s = append(*s, v)
	return nil
}

func run(args []string, stdout, stderr io.Writer) error {
	fs := flag.NewFlagSet("type-analyzer", flag.ContinueOnError)
	fs.SetOutput(stderr)

	var (
		configPath = fs.String("config", "", "YAML config file")
		format     = fs.String("format", "", "output format: text or yaml")
		dump       = fs.Bool("dump", false, "also print a go-spew dump of each result")
		verbose    = fs.Bool("v", false, "debug logging on stderr")
		types      stringList
		categories options.Category
	)
	fs.Var(&types, "type", "sample type to analyze, repeatable (known: "+strings.Join(sampleNames(), ", ")+")")
	fs.TextVar(&categories, "categories", options.CategoryAll, "run a single stage with these categories, e.g. Methods|Fields")

	if err := fs.Parse(args); err != nil {
		return err
	}

	cfg, err := loadConfig(*configPath)
	if err != nil {
		return err
	}

	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "type":
			cfg.Types = types
		case "categories":
			cfg.Stages = []options.Category{categories}
		case "format":
			cfg.Format = *format
		case "dump":
			cfg.Dump = *dump
		}
	})

	if err := cfg.Validate(); err != nil {
		return err
	}

	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))

	p, err := newProvider()
	if err != nil {
		return err
	}
	a := analyzer.New(analyzer.WithProvider(p), analyzer.WithLogger(logger))

	for _, name := range cfg.Types {
		for i, stage := range cfg.Stages {
			r, err := a.Analyze(catalog[name].typ, stage)
			if err != nil {
				return err
			}

			fmt.Fprintf(stdout, "# %s, stage %d: %s\n", name, i+1, stage)
			if err := render(stdout, cfg, r); err != nil {
				return err
			}
		}
	}

	logger.Debug("run finished", slog.Int("types", a.Len()))

	return nil
}

func loadConfig(path string) (*Config, error) {
	if path == "" {
		return ParseConfig(nil)
	}

	return LoadConfig(path)
}

func render(w io.Writer, cfg *Config, r *analyzer.Result) error {
	rep := report.Build(r)

	switch cfg.Format {
	case formatYAML:
		out, err := rep.YAML()
		if err != nil {
			return fmt.Errorf("failed to marshal report: %w", err)
		}
		if _, err := w.Write(out); err != nil {
			return err
		}
	default:
		if err := report.WriteText(w, rep); err != nil {
			return err
		}
	}

	if cfg.Dump {
		report.Dump(w, r)
	}

	return nil
}
