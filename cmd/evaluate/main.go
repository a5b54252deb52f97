package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/formarank/formarank/internal/dataset"
	"github.com/formarank/formarank/internal/objective"
	"github.com/formarank/formarank/internal/report"
)

func main() {
	cfg := parseFlags()

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	spec, err := objective.LoadFromFile(cfg.SpecPath)
	if err != nil {
		slog.Error("Failed to load objective spec", "path", cfg.SpecPath, "error", err)
		os.Exit(1)
	}
	slog.Info("Loaded objective spec", "evaluators", len(spec.Evaluators), "policy", spec.Combination.Kind)

	frame, err := loadFrame(ctx, cfg, spec)
	if err != nil {
		slog.Error("Failed to load dataset", "error", err)
		os.Exit(1)
	}
	slog.Info("Loaded dataset", "source", spec.Dataset.Source, "rows", frame.Len())

	snap := dataset.NewSnapshot(frame)

	if cols := cfg.scoreColumns(); len(cols) > 0 {
		if err := compareScores(ctx, cfg, spec, snap, cols); err != nil {
			slog.Error("Batch evaluation failed", "error", err)
			os.Exit(1)
		}
		return
	}

	targets, err := objective.EvaluateTargets(snap, spec.Evaluators)
	if err != nil {
		slog.Error("Evaluation failed", "error", err)
		os.Exit(1)
	}

	report.WriteTargets(os.Stdout, spec.Evaluators, targets)

	if spec.Combination.Kind != objective.PolicyPareto {
		scalar, err := spec.Combination.Scalarize(targets)
		if err != nil {
			slog.Error("Scalarization failed", "error", err)
			os.Exit(1)
		}
		report.WriteScalar(os.Stdout, spec.Combination, scalar)
	}
}

// compareScores evaluates each named column as a trial score column and
// prints the trial table with the Pareto front marked.
func compareScores(ctx context.Context, cfg cliConfig, spec *objective.Spec, snap *dataset.Snapshot, cols []string) error {
	scoreColumn := spec.Dataset.ScoreColumn
	if scoreColumn == "" {
		scoreColumn = objective.DefaultScoreColumn
	}

	batch := objective.ScoreBatch{ScoreColumn: scoreColumn}
	for _, col := range cols {
		values, err := snap.Frame().Numeric(col)
		if err != nil {
			return err
		}
		batch.Columns = append(batch.Columns, values)
	}

	results, err := objective.EvaluateBatch(ctx, snap, batch, spec.Evaluators, cfg.Workers)
	if err != nil {
		return err
	}

	trials := make([]objective.Trial, 0, len(results))
	for i, res := range results {
		if res.Err != nil {
			slog.Warn("Trial failed", "column", cols[i], "error", res.Err)
			continue
		}
		trials = append(trials, res.Trial)
	}
	report.WriteTrials(os.Stdout, trials)
	return nil
}

func loadFrame(ctx context.Context, cfg cliConfig, spec *objective.Spec) (*dataset.Frame, error) {
	switch spec.Dataset.Source {
	case objective.SourcePostgres:
		return loadFromPostgres(ctx, spec.Dataset.Postgres)
	case objective.SourceElasticsearch:
		return loadFromES(ctx, spec.Dataset.Elasticsearch)
	default:
		return loadFromCSV(cfg, spec.Dataset.Path)
	}
}

func loadFromCSV(cfg cliConfig, specPath string) (*dataset.Frame, error) {
	path, err := cfg.datasetPath(specPath)
	if err != nil {
		return nil, err
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open dataset %s: %w", path, err)
	}
	defer f.Close()

	return dataset.FromCSV(f)
}

func loadFromPostgres(ctx context.Context, pg *objective.PostgresSpec) (*dataset.Frame, error) {
	connStr := os.Getenv("DATABASE_URL")
	if connStr == "" {
		return nil, fmt.Errorf("DATABASE_URL is not set")
	}

	pool, err := dataset.NewConnectionPool(ctx, dataset.PoolConfig{ConnStr: connStr})
	if err != nil {
		return nil, err
	}
	defer pool.Close()

	return dataset.LoadFromPostgres(ctx, pool, pg.Query)
}

func loadFromES(ctx context.Context, es *objective.ESSpec) (*dataset.Frame, error) {
	cfg := dataset.ESConfig{
		Addresses: es.Addresses,
		IndexName: es.Index,
		Username:  os.Getenv("ES_USERNAME"),
		Password:  os.Getenv("ES_PASSWORD"),
	}
	return dataset.LoadFromES(ctx, cfg, es.Fields, es.Size)
}
