// Command inbox-triage reads plain-text and .eml email files from a
// directory, assigns each a priority, a two-sentence summary, a draft reply
// template, and a filing category, and writes the results to a JSON file or
// a SQLite database. Everything runs offline; no mail server is contacted.
package main

import (
	"flag"
	"fmt"
	"os"

	"go.uber.org/zap"

	"github.com/felo/inbox-triage/internal/config"
	"github.com/felo/inbox-triage/internal/output"
	"github.com/felo/inbox-triage/internal/pipeline"
)

func main() {
	cfg := config.Default()

	flag.StringVar(&cfg.EmailDir, "email-dir", "", "directory containing email files (.txt or .eml)")
	flag.StringVar(&cfg.OutputPath, "output", cfg.OutputPath, "output file for processed results")
	flag.StringVar(&cfg.Format, "format", cfg.Format, "output format: json or sqlite")
	flag.StringVar(&cfg.RulesPath, "rules", "", "optional YAML file overriding the classification rules")
	flag.IntVar(&cfg.Workers, "workers", 0, "number of processing workers (0 = automatic)")
	flag.BoolVar(&cfg.Verbose, "verbose", false, "enable debug logging")
	flag.Parse()

	logger := newLogger(cfg.Verbose)
	defer logger.Sync()

	// Configuration problems are fatal before any processing begins.
	if err := cfg.Validate(); err != nil {
		logger.Fatal("invalid configuration", zap.Error(err))
	}

	rules, err := config.LoadRules(cfg.RulesPath)
	if err != nil {
		logger.Fatal("failed to load rules", zap.Error(err))
	}

	p := pipeline.New(rules, logger)
	if cfg.Workers > 0 {
		p = p.WithWorkers(cfg.Workers)
	}

	results, stats, err := p.Run(cfg.EmailDir)
	if err != nil {
		logger.Fatal("triage run failed", zap.Error(err))
	}

	if stats.TotalFound == 0 {
		fmt.Printf("No email files found in directory %q.\n", cfg.EmailDir)
		return
	}

	if err := writeResults(cfg, results); err != nil {
		logger.Fatal("failed to write results",
			zap.String("output", cfg.OutputPath),
			zap.Error(err))
	}

	fmt.Printf("Processed %d emails (%d failed to load). Results saved to %s.\n",
		stats.Processed, stats.Failed, cfg.OutputPath)
}

// writeResults serializes results to the configured destination.
func writeResults(cfg *config.Config, results []pipeline.Result) error {
	switch cfg.Format {
	case config.FormatSQLite:
		store, err := output.OpenStore(cfg.OutputPath)
		if err != nil {
			return err
		}
		defer store.Close()
		return store.WriteResults(results)
	default:
		return output.WriteJSON(cfg.OutputPath, results)
	}
}

func newLogger(verbose bool) *zap.Logger {
	var logger *zap.Logger
	var err error
	if verbose {
		logger, err = zap.NewDevelopment()
	} else {
		logger, err = zap.NewProduction()
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to build logger: %v\n", err)
		os.Exit(1)
	}
	return logger
}
