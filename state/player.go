package state

import "github.com/pokerkit/engine/card"

// Player is one seat's mutable state for the current hand.
type Player struct {
	Active     bool
	StreetBet  int
	Stack      int
	Payoff     int // negative = chips already committed to the pot
	HoleCards  []card.Card
	FaceUp     []bool
	Discarded  []card.Card
	ActedSince bool // has acted since the last aggression, this betting round
}

// Contribution is the player's total commitment to the pot so far: chips
// already collected from prior streets (−Payoff) plus the current,
// not-yet-collected street bet.
func (p *Player) Contribution() int {
	return -p.Payoff + p.StreetBet
}

// AllIn reports whether the player has no chips left to act with.
func (p *Player) AllIn() bool {
	return p.Active && p.Stack == 0
}
