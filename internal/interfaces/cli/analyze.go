package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/flavorlab/cocktailiq/internal/application/analysis"
	"github.com/flavorlab/cocktailiq/pkg/types/flavor"
)

// reportView wraps an analysis report for the output helpers.
type reportView struct {
	*analysis.Report
}

func (v reportView) String() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "%s (%s, %.0f ml)\n", v.Cocktail, v.Category, v.TotalVolumeML)
	fmt.Fprintf(&sb, "Balance:    %.3f\n", v.OverallBalance)
	fmt.Fprintf(&sb, "Complexity: %.3f\n", v.Complexity)
	sb.WriteString("Taste profile:\n")
	for _, d := range flavor.Dimensions() {
		fmt.Fprintf(&sb, "  %-10s %.3f\n", d, v.Profile.TasteScores[d])
	}
	if len(v.Imbalances) == 0 {
		sb.WriteString("No imbalances detected.")
		return sb.String()
	}
	sb.WriteString("Imbalances:\n")
	for _, imb := range v.Imbalances {
		fmt.Fprintf(&sb, "  %s is %s (%.3f, %s priority)\n",
			imb.Dimension, imb.Kind, imb.CurrentValue, imb.Priority)
	}
	return strings.TrimRight(sb.String(), "\n")
}

func (v reportView) tableHeaders() []string {
	return []string{"DIMENSION", "SCORE"}
}

func (v reportView) tableRows() [][]string {
	rows := make([][]string, 0, len(flavor.Dimensions()))
	for _, d := range flavor.Dimensions() {
		rows = append(rows, []string{string(d), fmt.Sprintf("%.3f", v.Profile.TasteScores[d])})
	}
	return rows
}

func newAnalyzeCmd() *cobra.Command {
	var target string

	cmd := &cobra.Command{
		Use:   "analyze <cocktail>",
		Short: "Analyze a cocktail's flavor balance",
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

			report, err := cliCtx.App.Analyzer.Analyze(cmd.Context(), args[0], tgt)
			if err != nil {
				return err
			}
			return printResult(cmd, cliCtx.OutputFormat, reportView{report})
		},
	}

	cmd.Flags().StringVarP(&target, "target", "t", "",
		"balance goal (sweeter, more_sour, less_bitter, more_aromatic, balanced)")
	return cmd
}
