package objective

import (
	"fmt"

	"github.com/formarank/formarank/internal/apperr"
)

// Kind identifies a metric evaluator. The set is sealed: the dispatcher
// rejects anything outside it instead of skipping, since the target
// vector is positional.
type Kind string

const (
	KindTau                    Kind = "tau"
	KindPearson                Kind = "pearson"
	KindTopCoverage            Kind = "top_coverage"
	KindDistinctTopCoverage    Kind = "distinct_top_coverage"
	KindTopNCoverage           Kind = "top_n_coverage"
	KindPortfolio              Kind = "portfolio"
	KindDistinctCountPortfolio Kind = "distinct_count_portfolio"
	KindLogMSE                 Kind = "log_mse"
)

const (
	// DefaultScoreColumn is the composite score column evaluators rank by
	// unless the specification names another one.
	DefaultScoreColumn = "score"

	// DefaultHeadFraction is the top slice size for the coverage metrics.
	DefaultHeadFraction = 0.05

	// DefaultTopN is the per-group selection size for top_n_coverage.
	DefaultTopN = 100

	// DefaultExpectation is the mass / distinct-coverage level the
	// portfolio metrics accumulate towards.
	DefaultExpectation = 0.8

	// MaxTauBins caps the bin count for rank correlation; fewer distinct
	// target values reduce it further.
	MaxTauBins = 100
)

// TauPropertyRawScore makes the tau evaluator correlate against dense
// ranks of the raw score instead of its equal-frequency bins.
const TauPropertyRawScore = "raw_score"

// EvaluatorSpec configures one metric evaluation. One spec produces
// exactly one value in the target vector.
type EvaluatorSpec struct {
	Kind           Kind               `yaml:"kind" json:"kind"`
	TargetColumn   string             `yaml:"target_column" json:"target_column"`
	MaskColumn     string             `yaml:"mask_column,omitempty" json:"mask_column,omitempty"`
	Hyperparameter *float64           `yaml:"hyperparameter,omitempty" json:"hyperparameter,omitempty"`
	Groupby        string             `yaml:"groupby,omitempty" json:"groupby,omitempty"`
	Property       string             `yaml:"property,omitempty" json:"property,omitempty"`
	GroupWeights   map[string]float64 `yaml:"group_weights,omitempty" json:"group_weights,omitempty"`
	ScoreColumn    string             `yaml:"score_column,omitempty" json:"score_column,omitempty"`
}

func (s *EvaluatorSpec) Validate() error {
	if s.Kind == "" {
		return apperr.NewConfig("evaluator has no kind")
	}
	if _, ok := evaluators[s.Kind]; !ok {
		return apperr.NewConfig(fmt.Sprintf("unknown metric kind %q", s.Kind))
	}
	if s.TargetColumn == "" {
		return apperr.NewConfig(fmt.Sprintf("%s evaluator has no target column", s.Kind))
	}
	if s.Kind == KindTopNCoverage && s.Groupby == "" {
		return apperr.NewConfig("top_n_coverage evaluator has no groupby column")
	}
	if (s.Kind == KindTopCoverage || s.Kind == KindDistinctTopCoverage) && s.Hyperparameter != nil {
		if *s.Hyperparameter < 0 || *s.Hyperparameter > 1 {
			return apperr.NewConfig(fmt.Sprintf("%s head fraction %v is outside [0, 1]", s.Kind, *s.Hyperparameter))
		}
	}
	if s.Property != "" && !(s.Kind == KindTau && s.Property == TauPropertyRawScore) {
		return apperr.NewConfig(fmt.Sprintf("%s evaluator does not support property %q", s.Kind, s.Property))
	}
	if len(s.GroupWeights) > 0 && s.Groupby == "" {
		return apperr.NewConfig(fmt.Sprintf("%s evaluator has group weights but no groupby column", s.Kind))
	}
	return nil
}

// score returns the composite score column this spec ranks by.
func (s *EvaluatorSpec) score() string {
	if s.ScoreColumn != "" {
		return s.ScoreColumn
	}
	return DefaultScoreColumn
}

// hyper returns the metric-specific hyperparameter, or the given default
// when the spec leaves it unset.
func (s *EvaluatorSpec) hyper(def float64) float64 {
	if s.Hyperparameter != nil {
		return *s.Hyperparameter
	}
	return def
}
