package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/flavorlab/cocktailiq/internal/application/recommend"
	"github.com/flavorlab/cocktailiq/internal/domain/cocktail"
	"github.com/flavorlab/cocktailiq/pkg/errors"
	"github.com/flavorlab/cocktailiq/pkg/types/flavor"
)

// simulationView wraps a simulation result for the output helpers.
type simulationView struct {
	*recommend.SimulationResult
}

func (v simulationView) String() string {
	var sb strings.Builder
	sb.WriteString("Modifications:\n")
	for _, m := range v.Modifications {
		fmt.Fprintf(&sb, "  %s\n", m.Describe())
	}
	fmt.Fprintf(&sb, "Balance: %.3f -> %.3f (%+.4f)\n",
		v.Before.OverallBalance, v.After.OverallBalance, v.Improvement)
	sb.WriteString("Taste deltas:\n")
	for _, d := range flavor.Dimensions() {
		fmt.Fprintf(&sb, "  %-10s %+.3f\n", d, v.DimensionDeltas[d])
	}
	return strings.TrimRight(sb.String(), "\n")
}

func newSimulateCmd() *cobra.Command {
	var (
		adds        []string
		removes     []string
		increases   []string
		decreases   []string
		substitutes []string
	)

	cmd := &cobra.Command{
		Use:   "simulate <cocktail>",
		Short: "Simulate recipe modifications and compare balance",
		Long:  "Simulate applies a set of modifications to a copy of the recipe and\nreports the balance change, for example:\n\n  cocktailiq simulate Margarita --add \"simple syrup:10\" --decrease \"lime juice:5\"",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cliCtx, err := getCLIContext(cmd)
			if err != nil {
				return err
			}

			mods, err := collectModifications(adds, removes, increases, decreases, substitutes)
			if err != nil {
				return err
			}
			if len(mods) == 0 {
				return errors.New(errors.ErrCodeModificationInvalid, "no modifications given")
			}

			base, ok := cliCtx.App.Recipes.Find(args[0])
			if !ok {
				return errors.Newf(errors.ErrCodeCocktailNotFound, "cocktail %q not found", args[0])
			}

			result, err := cliCtx.App.Simulator.Simulate(base, mods)
			if err != nil {
				return err
			}
			return printResult(cmd, cliCtx.OutputFormat, simulationView{result})
		},
	}

	f := cmd.Flags()
	f.StringArrayVar(&adds, "add", nil, "add an ingredient, as name:ml (repeatable)")
	f.StringArrayVar(&removes, "remove", nil, "remove an ingredient by name (repeatable)")
	f.StringArrayVar(&increases, "increase", nil, "increase an ingredient, as name:ml (repeatable)")
	f.StringArrayVar(&decreases, "decrease", nil, "decrease an ingredient, as name:ml (repeatable)")
	f.StringArrayVar(&substitutes, "substitute", nil, "substitute an ingredient, as old=new (repeatable)")
	return cmd
}

func collectModifications(adds, removes, increases, decreases, substitutes []string) ([]cocktail.Modification, error) {
	var mods []cocktail.Modification

	for _, spec := range adds {
		m, err := amountModification(cocktail.ActionAdd, spec)
		if err != nil {
			return nil, err
		}
		mods = append(mods, m)
	}
	for _, name := range removes {
		mods = append(mods, cocktail.Modification{Action: cocktail.ActionRemove, Ingredient: name})
	}
	for _, spec := range increases {
		m, err := amountModification(cocktail.ActionIncrease, spec)
		if err != nil {
			return nil, err
		}
		mods = append(mods, m)
	}
	for _, spec := range decreases {
		m, err := amountModification(cocktail.ActionDecrease, spec)
		if err != nil {
			return nil, err
		}
		mods = append(mods, m)
	}
	for _, spec := range substitutes {
		from, to, ok := strings.Cut(spec, "=")
		if !ok || from == "" || to == "" {
			return nil, errors.Newf(errors.ErrCodeModificationInvalid,
				"substitute %q must be old=new", spec)
		}
		mods = append(mods, cocktail.Modification{
			Action:         cocktail.ActionSubstitute,
			Ingredient:     from,
			SubstituteWith: to,
		})
	}
	return mods, nil
}

// amountModification parses "name:ml". The colon split is from the right so
// ingredient names containing colons still work.
func amountModification(action cocktail.Action, spec string) (cocktail.Modification, error) {
	i := strings.LastIndex(spec, ":")
	if i <= 0 || i == len(spec)-1 {
		return cocktail.Modification{}, errors.Newf(errors.ErrCodeModificationInvalid,
			"%s %q must be name:ml", action, spec)
	}
	amount, err := strconv.ParseFloat(spec[i+1:], 64)
	if err != nil || amount <= 0 {
		return cocktail.Modification{}, errors.Newf(errors.ErrCodeModificationInvalid,
			"%s %q has an invalid amount", action, spec)
	}
	return cocktail.Modification{Action: action, Ingredient: spec[:i], AmountML: amount}, nil
}
