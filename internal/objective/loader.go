package objective

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Spec is the full objective configuration: which dataset to evaluate,
// the ordered evaluator list, and the combination policy handed to the
// optimizer.
type Spec struct {
	Dataset     DatasetSpec     `yaml:"dataset"`
	Evaluators  []EvaluatorSpec `yaml:"evaluators"`
	Combination Policy          `yaml:"combination"`
}

// DatasetSource selects where the dataset is materialized from.
type DatasetSource string

const (
	SourceCSV           DatasetSource = "csv"
	SourcePostgres      DatasetSource = "postgres"
	SourceElasticsearch DatasetSource = "elasticsearch"
)

type DatasetSpec struct {
	Source      DatasetSource `yaml:"source,omitempty"`
	Path        string        `yaml:"path,omitempty"`
	ScoreColumn string        `yaml:"score_column,omitempty"`

	Postgres      *PostgresSpec `yaml:"postgres,omitempty"`
	Elasticsearch *ESSpec       `yaml:"elasticsearch,omitempty"`
}

// PostgresSpec holds the dataset query. The connection string comes from
// the DATABASE_URL environment variable, never from the spec file.
type PostgresSpec struct {
	Query string `yaml:"query"`
}

// ESSpec names the index and the source fields to project into columns.
// Credentials come from ES_USERNAME / ES_PASSWORD.
type ESSpec struct {
	Addresses []string `yaml:"addresses"`
	Index     string   `yaml:"index"`
	Fields    []string `yaml:"fields"`
	Size      int      `yaml:"size,omitempty"`
}

func LoadFromFile(path string) (*Spec, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read objective spec file: %w", err)
	}
	return Parse(data)
}

func Parse(data []byte) (*Spec, error) {
	var s Spec
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("parse objective spec YAML: %w", err)
	}
	if err := validate(&s); err != nil {
		return nil, err
	}
	return &s, nil
}

func validate(s *Spec) error {
	if err := validateDataset(&s.Dataset); err != nil {
		return err
	}
	if len(s.Evaluators) == 0 {
		return fmt.Errorf("spec has no evaluators")
	}
	for i := range s.Evaluators {
		e := &s.Evaluators[i]
		if e.ScoreColumn == "" && s.Dataset.ScoreColumn != "" {
			e.ScoreColumn = s.Dataset.ScoreColumn
		}
		if err := e.Validate(); err != nil {
			return fmt.Errorf("evaluator at index %d: %w", i, err)
		}
	}
	if s.Combination.Kind == "" {
		s.Combination.Kind = PolicyPareto
	}
	if err := s.Combination.Validate(len(s.Evaluators)); err != nil {
		return err
	}
	return nil
}

func validateDataset(d *DatasetSpec) error {
	if d.Source == "" {
		d.Source = SourceCSV
	}
	switch d.Source {
	case SourceCSV:
		return nil
	case SourcePostgres:
		if d.Postgres == nil || d.Postgres.Query == "" {
			return fmt.Errorf("postgres dataset source needs a query")
		}
	case SourceElasticsearch:
		if d.Elasticsearch == nil || d.Elasticsearch.Index == "" {
			return fmt.Errorf("elasticsearch dataset source needs an index")
		}
		if len(d.Elasticsearch.Fields) == 0 {
			return fmt.Errorf("elasticsearch dataset source needs source fields")
		}
		if d.Elasticsearch.Size == 0 {
			d.Elasticsearch.Size = 1000
		}
	default:
		return fmt.Errorf("unknown dataset source %q", d.Source)
	}
	return nil
}
