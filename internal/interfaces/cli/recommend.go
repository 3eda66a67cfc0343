package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/flavorlab/cocktailiq/internal/application/recommend"
	"github.com/flavorlab/cocktailiq/pkg/types/flavor"
)

// resultView wraps a recommendation result for the output helpers.
type resultView struct {
	*recommend.Result
}

func (v resultView) String() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "%s (balance %.3f)\n", v.Cocktail, v.OverallBalance)
	fmt.Fprintf(&sb, "%s\n", v.Message)
	if !v.ShouldRecommend {
		return strings.TrimRight(sb.String(), "\n")
	}
	for i, rec := range v.Recommendations {
		fmt.Fprintf(&sb, "%2d. add %.1f ml %s: %s\n", i+1, rec.AmountML, rec.Ingredient, rec.Reason)
	}
	if v.Best != nil {
		fmt.Fprintf(&sb, "Best verified: %.1f ml %s (improvement %+.4f)\n",
			v.Best.AmountML, v.Best.Ingredient, v.Best.Improvement)
	}
	return strings.TrimRight(sb.String(), "\n")
}

func (v resultView) tableHeaders() []string {
	return []string{"INGREDIENT", "AMOUNT (ML)", "DIMENSION", "PRIORITY", "REASON"}
}

func (v resultView) tableRows() [][]string {
	rows := make([][]string, 0, len(v.Recommendations))
	for _, rec := range v.Recommendations {
		rows = append(rows, []string{
			rec.Ingredient,
			fmt.Sprintf("%.1f", rec.AmountML),
			string(rec.Dimension),
			rec.Priority,
			rec.Reason,
		})
	}
	return rows
}

func newRecommendCmd() *cobra.Command {
	var (
		target string
		best   bool
	)

	cmd := &cobra.Command{
		Use:   "recommend <cocktail>",
		Short: "Recommend ingredient adjustments for a cocktail",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cliCtx, err := getCLIContext(cmd)
			if err != nil {
				return err
			}
			tgt, err := flavor.ParseTarget(target)
			if err != nil {
				return err
			}

			result, err := cliCtx.App.Recommender.Recommend(cmd.Context(), args[0], tgt, best)
			if err != nil {
				return err
			}
			return printResult(cmd, cliCtx.OutputFormat, resultView{result})
		},
	}

	cmd.Flags().StringVarP(&target, "target", "t", "",
		"balance goal (sweeter, more_sour, less_bitter, more_aromatic, balanced)")
	cmd.Flags().BoolVar(&best, "best", false, "verify top candidates by simulation and mark the winner")
	return cmd
}
