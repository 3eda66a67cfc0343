package cocktail

import (
	"fmt"

	"github.com/flavorlab/cocktailiq/pkg/errors"
)

// Action is a recipe modification verb.
type Action string

const (
	ActionAdd        Action = "add"
	ActionRemove     Action = "remove"
	ActionIncrease   Action = "increase"
	ActionDecrease   Action = "decrease"
	ActionSubstitute Action = "substitute"
)

// IsValid reports whether a is a known action.
func (a Action) IsValid() bool {
	switch a {
	case ActionAdd, ActionRemove, ActionIncrease, ActionDecrease, ActionSubstitute:
		return true
	}
	return false
}

// Default amounts applied when a modification does not specify one,
// matching the historical behaviour of the tooling that produces them.
const (
	defaultAddML    = 30.0
	defaultAdjustML = 10.0
)

// Modification is one edit to a recipe. AmountML applies to add, increase
// and decrease; SubstituteWith applies to substitute only.
type Modification struct {
	Action         Action  `json:"action"`
	Ingredient     string  `json:"ingredient"`
	AmountML       float64 `json:"amount_ml,omitempty"`
	SubstituteWith string  `json:"substitute_with,omitempty"`
}

// Validate checks the modification's shape without applying it.
func (m Modification) Validate() error {
	if !m.Action.IsValid() {
		return errors.Newf(errors.ErrCodeModificationInvalid, "unknown action %q", m.Action)
	}
	if m.Ingredient == "" {
		return errors.New(errors.ErrCodeModificationInvalid, "modification has no ingredient")
	}
	if m.Action == ActionSubstitute && m.SubstituteWith == "" {
		return errors.New(errors.ErrCodeModificationInvalid, "substitute requires a replacement ingredient").
			WithDetail("ingredient=" + m.Ingredient)
	}
	if m.AmountML < 0 {
		return errors.Newf(errors.ErrCodeModificationInvalid, "negative amount %.1f ml", m.AmountML)
	}
	return nil
}

// Apply returns a modified copy of the base recipe; the base is never
// touched. Remove/increase/decrease/substitute on an ingredient the recipe
// does not contain are silent no-ops, mirroring the tolerant semantics the
// simulator depends on. Decrease floors the volume at zero rather than
// going negative.
func Apply(base *Cocktail, mods []Modification) (*Cocktail, error) {
	for _, m := range mods {
		if err := m.Validate(); err != nil {
			return nil, err
		}
	}

	c := base.Clone()
	for _, m := range mods {
		switch m.Action {
		case ActionAdd:
			amount := m.AmountML
			if amount == 0 {
				amount = defaultAddML
			}
			c.Ingredients = append(c.Ingredients, Ingredient{Name: m.Ingredient, VolumeML: amount})

		case ActionRemove:
			if i := c.indexOf(m.Ingredient); i >= 0 {
				c.Ingredients = append(c.Ingredients[:i], c.Ingredients[i+1:]...)
			}

		case ActionIncrease:
			if i := c.indexOf(m.Ingredient); i >= 0 {
				amount := m.AmountML
				if amount == 0 {
					amount = defaultAdjustML
				}
				c.Ingredients[i].VolumeML += amount
			}

		case ActionDecrease:
			if i := c.indexOf(m.Ingredient); i >= 0 {
				amount := m.AmountML
				if amount == 0 {
					amount = defaultAdjustML
				}
				if v := c.Ingredients[i].VolumeML - amount; v > 0 {
					c.Ingredients[i].VolumeML = v
				} else {
					c.Ingredients[i].VolumeML = 0
				}
			}

		case ActionSubstitute:
			if i := c.indexOf(m.Ingredient); i >= 0 {
				c.Ingredients[i].Name = m.SubstituteWith
			}
		}
	}
	return c, nil
}

// Describe renders the modification for reports and CLI output.
func (m Modification) Describe() string {
	switch m.Action {
	case ActionSubstitute:
		return fmt.Sprintf("substitute %s with %s", m.Ingredient, m.SubstituteWith)
	case ActionRemove:
		return fmt.Sprintf("remove %s", m.Ingredient)
	default:
		amount := m.AmountML
		if amount == 0 {
			if m.Action == ActionAdd {
				amount = defaultAddML
			} else {
				amount = defaultAdjustML
			}
		}
		return fmt.Sprintf("%s %s (%.1f ml)", m.Action, m.Ingredient, amount)
	}
}
