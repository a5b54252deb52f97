package objective

import (
	"fmt"
	"math"

	"github.com/formarank/formarank/internal/apperr"
)

// PolicyKind selects how a target vector is combined for the optimizer.
type PolicyKind string

const (
	// PolicyWeightedSum scalarizes to sum(w_i * t_i).
	PolicyWeightedSum PolicyKind = "weighted_sum"
	// PolicyProductOfPowers scalarizes to prod(t_i ^ w_i).
	PolicyProductOfPowers PolicyKind = "product_of_powers"
	// PolicyPareto performs no scalarization: the whole vector goes to a
	// multi-objective optimizer.
	PolicyPareto PolicyKind = "pareto"
)

// Policy is injected configuration from the optimizer side; this core
// applies it but never decides it.
type Policy struct {
	Kind    PolicyKind `yaml:"kind" json:"kind"`
	Weights []float64  `yaml:"weights,omitempty" json:"weights,omitempty"`
}

func (p *Policy) Validate(numTargets int) error {
	switch p.Kind {
	case PolicyWeightedSum, PolicyProductOfPowers:
		if len(p.Weights) != numTargets {
			return apperr.NewConfig(fmt.Sprintf("policy %s has %d weights for %d targets", p.Kind, len(p.Weights), numTargets))
		}
	case PolicyPareto:
		if len(p.Weights) != 0 {
			return apperr.NewConfig("pareto policy takes no weights")
		}
	default:
		return apperr.NewConfig(fmt.Sprintf("unknown combination policy %q", p.Kind))
	}
	return nil
}

// Scalarize collapses a target vector to a single objective value.
// Calling it under the pareto policy is a configuration error.
func (p *Policy) Scalarize(targets []float64) (float64, error) {
	if err := p.Validate(len(targets)); err != nil {
		return 0, err
	}

	switch p.Kind {
	case PolicyWeightedSum:
		var sum float64
		for i, t := range targets {
			sum += p.Weights[i] * t
		}
		return sum, nil
	case PolicyProductOfPowers:
		prod := 1.0
		for i, t := range targets {
			prod *= math.Pow(t, p.Weights[i])
		}
		return prod, nil
	default:
		return 0, apperr.NewConfig("pareto policy produces a vector, not a scalar")
	}
}

// Trial is one optimizer-proposed evaluation: the trial number assigned
// by the optimizer and the resulting target vector.
type Trial struct {
	Number  int
	Targets []float64
}

// ParetoFront returns the non-dominated trials, treating every target
// position as maximized. O(n^2) dominance check, fine for typical trial
// counts.
func ParetoFront(trials []Trial) []Trial {
	if len(trials) <= 1 {
		return trials
	}

	var front []Trial
	for i := range trials {
		dominated := false
		for j := range trials {
			if i == j {
				continue
			}
			if dominates(trials[j].Targets, trials[i].Targets) {
				dominated = true
				break
			}
		}
		if !dominated {
			front = append(front, trials[i])
		}
	}
	return front
}

// dominates returns true if a is >= b on every position and strictly
// greater on at least one.
func dominates(a, b []float64) bool {
	if len(a) != len(b) {
		return false
	}
	strict := false
	for i := range a {
		if a[i] < b[i] {
			return false
		}
		if a[i] > b[i] {
			strict = true
		}
	}
	return strict
}
