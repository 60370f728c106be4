package state

import "fmt"

// OpeningRule selects the first actor of a betting round.
type OpeningRule int

const (
	// OpenByPosition opens pre-flop immediately after the seat that posted
	// the largest blind/straddle, and post-flop at the lowest-index active
	// player.
	OpenByPosition OpeningRule = iota
	// OpenByLowCard opens with the player whose most recently dealt up-card
	// is weakest (stud-style bring-in).
	OpenByLowCard
	// OpenByHighCard opens with the player whose most recently dealt up-card
	// is strongest.
	OpenByHighCard
	// OpenByLowHand opens exactly as OpenByLowCard does: only each player's
	// most recently dealt up-card is compared; up-cards are not evaluated
	// as a hand.
	OpenByLowHand
	// OpenByHighHand opens exactly as OpenByHighCard does: only each
	// player's most recently dealt up-card is compared; up-cards are not
	// evaluated as a hand.
	OpenByHighHand
)

// Street is the configuration for one dealing-and-betting round.
type Street struct {
	Name               string
	CardBurning        bool
	HoleDealPattern    []bool // face-up flag per hole card dealt this street
	BoardDealCount     int
	Draw               bool
	OpeningRule        OpeningRule
	MinBetOrRaise      int
	MaxCompletionCount int // 0 means unlimited
}

// Validate enforces that a street cannot both deal hole cards and allow
// drawing.
func (s Street) Validate() error {
	if len(s.HoleDealPattern) > 0 && s.Draw {
		return &ConfigurationError{Reason: fmt.Sprintf("street %q: cannot both deal hole cards and allow drawing", s.Name)}
	}
	if s.MinBetOrRaise <= 0 {
		return &ConfigurationError{Reason: fmt.Sprintf("street %q: min_bet_or_raise must be positive", s.Name)}
	}
	return nil
}
