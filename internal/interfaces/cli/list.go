package cli

import (
	"strings"

	"github.com/spf13/cobra"
)

// nameList renders the recipe catalogue.
type nameList []string

func (n nameList) String() string {
	return strings.Join(n, "\n")
}

func (n nameList) tableHeaders() []string { return []string{"COCKTAIL"} }

func (n nameList) tableRows() [][]string {
	rows := make([][]string, len(n))
	for i, name := range n {
		rows[i] = []string{name}
	}
	return rows
}

func newListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List the known cocktails",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cliCtx, err := getCLIContext(cmd)
			if err != nil {
				return err
			}
			return printResult(cmd, cliCtx.OutputFormat, nameList(cliCtx.App.Recipes.Names()))
		},
	}
}
