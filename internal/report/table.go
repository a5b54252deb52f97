package report

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/formarank/formarank/internal/objective"
	"github.com/formarank/formarank/pkg/utils"
)

// WriteTargets prints the target vector next to the specifications that
// produced it, in registration order.
func WriteTargets(w io.Writer, specs []objective.EvaluatorSpec, targets []float64) {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)

	fmt.Fprintf(tw, "\n=== Ranking Quality Targets ===\n\n")

	header := []string{"#", "Kind", "Target", "Groupby", "Value"}
	fmt.Fprintln(tw, strings.Join(header, "\t"))

	sep := make([]string, len(header))
	for i := range sep {
		sep[i] = "---"
	}
	fmt.Fprintln(tw, strings.Join(sep, "\t"))

	for i, spec := range specs {
		groupby := spec.Groupby
		if groupby == "" {
			groupby = "-"
		}
		row := []string{
			fmt.Sprintf("%d", i),
			string(spec.Kind),
			spec.TargetColumn,
			groupby,
			fmt.Sprintf("%.4f", targets[i]),
		}
		fmt.Fprintln(tw, strings.Join(row, "\t"))
	}

	tw.Flush()
}

// WriteScalar prints the combined objective value under a scalarizing
// policy.
func WriteScalar(w io.Writer, policy objective.Policy, value float64) {
	fmt.Fprintf(w, "\nCombined objective (%s): %v\n", policy.Kind, utils.RoundDecimal(value, 6))
}

// WriteTrials prints a batch of trial results, flagging the Pareto front.
func WriteTrials(w io.Writer, trials []objective.Trial) {
	front := objective.ParetoFront(trials)
	onFront := make(map[int]bool, len(front))
	for _, t := range front {
		onFront[t.Number] = true
	}

	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)

	fmt.Fprintf(tw, "\n=== Trials (%d, %d on Pareto front) ===\n\n", len(trials), len(front))
	fmt.Fprintln(tw, "Trial\tTargets\tFront")
	fmt.Fprintln(tw, "---\t---\t---")

	for _, t := range trials {
		vals := make([]string, len(t.Targets))
		for i, v := range t.Targets {
			vals[i] = fmt.Sprintf("%.4f", v)
		}
		marker := ""
		if onFront[t.Number] {
			marker = "*"
		}
		fmt.Fprintf(tw, "%d\t[%s]\t%s\n", t.Number, strings.Join(vals, ", "), marker)
	}

	tw.Flush()
}
