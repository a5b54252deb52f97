package objective

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const validSpecYAML = `
dataset:
  path: data/sessions.csv
  score_column: model_score
evaluators:
  - kind: tau
    target_column: revenue
  - kind: top_coverage
    target_column: revenue
    hyperparameter: 0.1
  - kind: top_n_coverage
    target_column: revenue
    groupby: region
combination:
  kind: weighted_sum
  weights: [0.6, 0.2, 0.2]
`

func TestParse(t *testing.T) {
	t.Run("valid spec", func(t *testing.T) {
		spec, err := Parse([]byte(validSpecYAML))
		require.NoError(t, err)

		assert.Equal(t, "data/sessions.csv", spec.Dataset.Path)
		require.Len(t, spec.Evaluators, 3)
		assert.Equal(t, KindTau, spec.Evaluators[0].Kind)
		require.NotNil(t, spec.Evaluators[1].Hyperparameter)
		assert.InDelta(t, 0.1, *spec.Evaluators[1].Hyperparameter, 1e-9)
		assert.Equal(t, "region", spec.Evaluators[2].Groupby)
		assert.Equal(t, PolicyWeightedSum, spec.Combination.Kind)
	})

	t.Run("dataset score column propagates", func(t *testing.T) {
		spec, err := Parse([]byte(validSpecYAML))
		require.NoError(t, err)

		for _, e := range spec.Evaluators {
			assert.Equal(t, "model_score", e.ScoreColumn)
		}
	})

	t.Run("policy defaults to pareto", func(t *testing.T) {
		spec, err := Parse([]byte(`
evaluators:
  - kind: tau
    target_column: revenue
`))
		require.NoError(t, err)
		assert.Equal(t, PolicyPareto, spec.Combination.Kind)
	})

	t.Run("no evaluators", func(t *testing.T) {
		_, err := Parse([]byte("dataset:\n  path: data.csv\n"))
		assert.ErrorContains(t, err, "no evaluators")
	})

	t.Run("invalid evaluator names index", func(t *testing.T) {
		_, err := Parse([]byte(`
evaluators:
  - kind: tau
    target_column: revenue
  - kind: bogus
    target_column: revenue
`))
		assert.ErrorContains(t, err, "index 1")
	})

	t.Run("weights arity checked against evaluators", func(t *testing.T) {
		_, err := Parse([]byte(`
evaluators:
  - kind: tau
    target_column: revenue
combination:
  kind: weighted_sum
  weights: [0.5, 0.5]
`))
		assert.Error(t, err)
	})

	t.Run("dataset source defaults to csv", func(t *testing.T) {
		spec, err := Parse([]byte(validSpecYAML))
		require.NoError(t, err)
		assert.Equal(t, SourceCSV, spec.Dataset.Source)
	})

	t.Run("postgres source needs a query", func(t *testing.T) {
		_, err := Parse([]byte(`
dataset:
  source: postgres
evaluators:
  - kind: tau
    target_column: revenue
`))
		assert.ErrorContains(t, err, "needs a query")
	})

	t.Run("elasticsearch source defaults size", func(t *testing.T) {
		spec, err := Parse([]byte(`
dataset:
  source: elasticsearch
  elasticsearch:
    addresses: ["http://localhost:9200"]
    index: sessions
    fields: [revenue, score, region]
evaluators:
  - kind: tau
    target_column: revenue
`))
		require.NoError(t, err)
		require.NotNil(t, spec.Dataset.Elasticsearch)
		assert.Equal(t, 1000, spec.Dataset.Elasticsearch.Size)
	})

	t.Run("unknown dataset source", func(t *testing.T) {
		_, err := Parse([]byte(`
dataset:
  source: bigquery
evaluators:
  - kind: tau
    target_column: revenue
`))
		assert.ErrorContains(t, err, "unknown dataset source")
	})

	t.Run("malformed YAML", func(t *testing.T) {
		_, err := Parse([]byte("evaluators: [unclosed"))
		assert.Error(t, err)
	})
}

func TestLoadFromFile(t *testing.T) {
	t.Run("reads spec from disk", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "objective.yaml")
		require.NoError(t, os.WriteFile(path, []byte(validSpecYAML), 0o644))

		spec, err := LoadFromFile(path)
		require.NoError(t, err)
		assert.Len(t, spec.Evaluators, 3)
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := LoadFromFile(filepath.Join(t.TempDir(), "absent.yaml"))
		assert.Error(t, err)
	})
}
