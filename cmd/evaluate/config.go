package main

import (
	"flag"
	"fmt"
	"strings"
)

type cliConfig struct {
	SpecPath string
	CSVPath  string
	Scores   string
	Workers  int
}

func parseFlags() cliConfig {
	cfg := cliConfig{}

	flag.StringVar(&cfg.SpecPath, "spec", "configs/objective.yaml", "Path to objective spec YAML")
	flag.StringVar(&cfg.CSVPath, "csv", "", "Path to dataset CSV (overrides spec dataset path)")
	flag.StringVar(&cfg.Scores, "scores", "", "Comma-separated candidate score columns to compare as trials")
	flag.IntVar(&cfg.Workers, "workers", 1, "Worker count for batch evaluation")

	flag.Parse()
	return cfg
}

func (c cliConfig) scoreColumns() []string {
	if c.Scores == "" {
		return nil
	}
	var cols []string
	for _, col := range strings.Split(c.Scores, ",") {
		if col = strings.TrimSpace(col); col != "" {
			cols = append(cols, col)
		}
	}
	return cols
}

func (c cliConfig) datasetPath(specPath string) (string, error) {
	if c.CSVPath != "" {
		return c.CSVPath, nil
	}
	if specPath != "" {
		return specPath, nil
	}
	return "", fmt.Errorf("no dataset path: set -csv or dataset.path in the spec")
}
