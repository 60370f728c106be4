package config

import (
	"fmt"
	"strconv"

	"github.com/pokerkit/engine/eval"
	"github.com/pokerkit/engine/hand"
	"github.com/pokerkit/engine/state"
)

var bettingStructures = map[string]state.BettingStructure{
	"":            state.NoLimit,
	"no_limit":    state.NoLimit,
	"pot_limit":   state.PotLimit,
	"fixed_limit": state.FixedLimit,
}

var modes = map[string]state.Mode{
	"":           state.Tournament,
	"tournament": state.Tournament,
	"cash_game":  state.CashGame,
}

var openingRules = map[string]state.OpeningRule{
	"":          state.OpenByPosition,
	"position":  state.OpenByPosition,
	"low_card":  state.OpenByLowCard,
	"high_card": state.OpenByHighCard,
	"low_hand":  state.OpenByLowHand,
	"high_hand": state.OpenByHighHand,
}

var automationNames = map[string]state.Automation{
	"ante_posting":                  state.AutomateAntePosting,
	"bet_collection":                state.AutomateBetCollection,
	"blind_or_straddle_posting":     state.AutomateBlindOrStraddlePosting,
	"card_burning":                  state.AutomateCardBurning,
	"hole_dealing":                  state.AutomateHoleDealing,
	"board_dealing":                 state.AutomateBoardDealing,
	"runout_count_selection":        state.AutomateRunoutCountSelection,
	"hole_cards_showing_or_mucking": state.AutomateHoleCardsShowingOrMucking,
	"hand_killing":                  state.AutomateHandKilling,
	"chips_pushing":                 state.AutomateChipsPushing,
	"chips_pulling":                 state.AutomateChipsPulling,
}

var handTypeCatalog = map[string]eval.VariantID{
	"standard_high":       eval.StandardHigh,
	"standard_low":        eval.StandardLow,
	"short_deck_high":     eval.ShortDeckHigh,
	"eight_or_better_low": eval.EightOrBetterLow,
	"badugi":              eval.Badugi,
	"kuhn_high":           eval.KuhnPokerHigh,
	"royal_high":          eval.RoyalHigh,
}

var lowVariants = map[eval.VariantID]bool{
	eval.StandardLow:      true,
	eval.EightOrBetterLow: true,
}

var handSelections = map[string]hand.Selection{
	"":                 hand.Combinations,
	"combinations":     hand.Combinations,
	"hole_board_split": hand.HoleBoardSplit,
	"variable":         hand.Variable,
}

// ToBuilder translates a parsed Hand configuration into a state.Builder,
// the bridge between the declarative HCL layer and the Builder's
// programmatic options.
func (h *Hand) ToBuilder(intn func(n int) int) (*state.Builder, error) {
	structure, ok := bettingStructures[h.BettingStructure]
	if !ok {
		return nil, &Error{Reason: fmt.Sprintf("unknown betting_structure %q", h.BettingStructure)}
	}
	mode, ok := modes[h.Mode]
	if !ok {
		return nil, &Error{Reason: fmt.Sprintf("unknown mode %q", h.Mode)}
	}

	variantID, ok := handTypeCatalog[h.HandType]
	if !ok {
		return nil, &Error{Reason: fmt.Sprintf("unknown hand_type %q", h.HandType)}
	}
	lookup, err := eval.Get(variantID)
	if err != nil {
		return nil, err
	}
	selection, ok := handSelections[h.HandSelection]
	if !ok {
		return nil, &Error{Reason: fmt.Sprintf("unknown hand_selection %q", h.HandSelection)}
	}
	spec := hand.Spec{
		Lookup:     lookup,
		Low:        lowVariants[variantID],
		CardCount:  h.HandCardCount,
		Selection:  selection,
		HoleCount:  h.HandHoleCount,
		BoardCount: h.HandBoardCount,
	}

	streets := make([]state.Street, len(h.Streets))
	for i, st := range h.Streets {
		rule, ok := openingRules[st.OpeningRule]
		if !ok {
			return nil, &Error{Reason: fmt.Sprintf("street %q: unknown opening_rule %q", st.Name, st.OpeningRule)}
		}
		streets[i] = state.Street{
			Name:               st.Name,
			CardBurning:        st.CardBurning,
			HoleDealPattern:    st.HoleDealPattern,
			BoardDealCount:     st.BoardDealCount,
			Draw:               st.Draw,
			OpeningRule:        rule,
			MinBetOrRaise:      st.MinBetOrRaise,
			MaxCompletionCount: st.MaxCompletionCount,
		}
	}

	antes := map[int]int{}
	blinds := map[int]int{}
	bringIns := map[int]int{}
	stacks := map[int]int{}
	for _, p := range h.Players {
		idx, err := strconv.Atoi(p.Index)
		if err != nil {
			return nil, &Error{Reason: fmt.Sprintf("player index %q is not an integer", p.Index)}
		}
		stacks[idx] = p.StartingStack
		if p.Ante > 0 {
			antes[idx] = p.Ante
		}
		if p.BlindOrStraddle > 0 {
			blinds[idx] = p.BlindOrStraddle
		}
		if p.BringIn > 0 {
			bringIns[idx] = p.BringIn
		}
	}

	var automations []state.Automation
	for _, name := range h.Automations {
		a, ok := automationNames[name]
		if !ok {
			return nil, &Error{Reason: fmt.Sprintf("unknown automation %q", name)}
		}
		automations = append(automations, a)
	}

	b := state.NewBuilder(len(h.Players), intn).
		WithStreets(streets...).
		WithBettingStructure(structure).
		WithMode(mode).
		WithAnteTrimming(h.AnteTrimmingStatus).
		WithAntes(antes).
		WithBlindsOrStraddles(blinds).
		WithBringIn(bringIns).
		WithStartingStacks(stacks).
		WithAutomations(automations...).
		WithHandTypes(spec)

	return b, nil
}
