package main

import (
	"fmt"

	"github.com/charmbracelet/log"

	"github.com/pokerkit/engine/card"
	"github.com/pokerkit/engine/eval"
)

// EvalCmd looks up the category and strength index of a fixed card set
// against one of the engine's built-in lookups.
type EvalCmd struct {
	Variant string   `help:"Lookup variant" default:"standard_high" enum:"standard_high,standard_low,short_deck_high,eight_or_better_low,badugi,kuhn_high,royal_high"`
	Cards   []string `arg:"" help:"Cards, e.g. As Kh Qd Jc Ts"`
}

var evalVariants = map[string]eval.VariantID{
	"standard_high":       eval.StandardHigh,
	"standard_low":        eval.StandardLow,
	"short_deck_high":     eval.ShortDeckHigh,
	"eight_or_better_low": eval.EightOrBetterLow,
	"badugi":              eval.Badugi,
	"kuhn_high":           eval.KuhnPokerHigh,
	"royal_high":          eval.RoyalHigh,
}

func (c *EvalCmd) Run(logger *log.Logger) error {
	id, ok := evalVariants[c.Variant]
	if !ok {
		return fmt.Errorf("unknown variant %q", c.Variant)
	}
	lookup, err := eval.Get(id)
	if err != nil {
		return err
	}

	var cards []card.Card
	for _, tok := range c.Cards {
		parsed, err := card.Parse(tok)
		if err != nil {
			return err
		}
		cards = append(cards, parsed...)
	}

	entry, err := lookup.GetEntry(cards)
	if err != nil {
		return err
	}
	logger.Info("evaluated", "variant", c.Variant, "index", entry.Index, "category", entry.Label)
	fmt.Printf("%s: index=%d category=%s (of %d)\n", c.Variant, entry.Index, entry.Label, lookup.N())
	return nil
}
