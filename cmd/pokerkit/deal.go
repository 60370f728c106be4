package main

import (
	"fmt"

	"github.com/charmbracelet/log"

	"github.com/pokerkit/engine/config"
	"github.com/pokerkit/engine/eval"
	"github.com/pokerkit/engine/hand"
	"github.com/pokerkit/engine/internal/randutil"
	"github.com/pokerkit/engine/state"
)

// DealCmd runs every automation of one demo hand, up to its first
// discretionary decision or to completion, and prints its operation log.
// With --config it loads an HCL builder configuration; otherwise it falls
// back to a small built-in heads-up no-limit hold'em table for a
// quick-start demo.
type DealCmd struct {
	Config string `help:"Path to an HCL builder configuration file" optional:""`
	Hand   string `help:"Hand name to load from --config" optional:""`
	Seed   int64  `help:"Deterministic shuffle seed" default:"1"`
}

func (c *DealCmd) Run(logger *log.Logger) error {
	rng := randutil.New(c.Seed)
	intn := func(n int) int { return rng.IntN(n) }

	var builder *state.Builder
	if c.Config != "" {
		doc, err := config.Load(c.Config)
		if err != nil {
			return err
		}
		h, err := doc.Hand(c.Hand)
		if err != nil {
			return err
		}
		builder, err = h.ToBuilder(intn)
		if err != nil {
			return err
		}
	} else {
		builder = defaultHeadsUpNoLimitHoldem(intn)
	}

	s, err := builder.Build()
	if err != nil {
		return err
	}

	if s.Status() {
		logger.Info("paused awaiting a discretionary action", "phase", s.Phase().String(), "actor_queue", s.ActorQueue())
	} else {
		logger.Info("hand complete")
	}
	for _, op := range s.Log().Entries() {
		fmt.Printf("%-32s %v\n", op.Kind(), op)
	}
	for i := 0; i < s.PlayerCount(); i++ {
		p := s.Player(i)
		fmt.Printf("player %d: stack=%d\n", i, p.Stack)
	}
	return nil
}

func defaultHeadsUpNoLimitHoldem(intn func(n int) int) *state.Builder {
	lookup, err := eval.Get(eval.StandardHigh)
	if err != nil {
		panic(err)
	}
	spec := hand.Spec{Lookup: lookup, CardCount: 5, Selection: hand.Combinations}

	preflop := state.Street{Name: "preflop", HoleDealPattern: []bool{false, false}, MinBetOrRaise: 2}
	flop := state.Street{Name: "flop", CardBurning: true, BoardDealCount: 3, MinBetOrRaise: 2}
	turn := state.Street{Name: "turn", CardBurning: true, BoardDealCount: 1, MinBetOrRaise: 2}
	river := state.Street{Name: "river", CardBurning: true, BoardDealCount: 1, MinBetOrRaise: 2}

	return state.NewBuilder(2, intn).
		WithBettingStructure(state.NoLimit).
		WithStreets(preflop, flop, turn, river).
		WithBlindsOrStraddles(map[int]int{0: 1, 1: 2}).
		WithStartingStacks(map[int]int{0: 200, 1: 200}).
		WithAutomations(
			state.AutomateAntePosting,
			state.AutomateBetCollection,
			state.AutomateBlindOrStraddlePosting,
			state.AutomateCardBurning,
			state.AutomateHoleDealing,
			state.AutomateBoardDealing,
			state.AutomateHoleCardsShowingOrMucking,
			state.AutomateChipsPushing,
			state.AutomateChipsPulling,
		).
		WithHandTypes(spec)
}
