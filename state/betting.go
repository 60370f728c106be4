package state

import "github.com/pokerkit/engine/card"

// BettingStructure constrains how large a completion bet or raise may be.
type BettingStructure int

const (
	FixedLimit BettingStructure = iota
	PotLimit
	NoLimit
)

// buildActorQueue returns the cyclic order of seats due to act this round,
// starting at opener, filtered to active players with a non-zero stack.
func buildActorQueue(opener int, players []*Player) []int {
	n := len(players)
	queue := make([]int, 0, n)
	for i := 0; i < n; i++ {
		idx := (opener + i) % n
		p := players[idx]
		if p.Active && p.Stack > 0 {
			queue = append(queue, idx)
		}
	}
	return queue
}

// openerByPosition implements the position-based opening rule: preflop
// action starts with the first live seat after the big blind (the SB seat
// in a heads-up deal, since the big blind is the only other seat).
func openerByPosition(players []*Player, bigBlindIndex int, preflop bool) int {
	n := len(players)
	if preflop {
		for i := 1; i <= n; i++ {
			idx := (bigBlindIndex + i) % n
			if players[idx].Active && players[idx].Stack > 0 {
				return idx
			}
		}
		return bigBlindIndex
	}
	for i := 0; i < n; i++ {
		if players[i].Active && players[i].Stack > 0 {
			return i
		}
	}
	return 0
}

// suitRank breaks up-card ties with a fixed order (clubs weakest, spades
// strongest), resolving the opener-selection open question for stud
// variants' low/high-card bring-in and subsequent opens.
func suitRank(s card.Suit) int {
	switch s {
	case card.Clubs:
		return 0
	case card.Diamonds:
		return 1
	case card.Hearts:
		return 2
	case card.Spades:
		return 3
	default:
		return -1
	}
}

func lessUpCard(a, b card.Card) bool {
	if a.Rank != b.Rank {
		return a.Rank < b.Rank
	}
	return suitRank(a.Suit) < suitRank(b.Suit)
}

// latestUpCard returns a player's most recently dealt face-up hole card.
func latestUpCard(p *Player) (card.Card, bool) {
	for i := len(p.HoleCards) - 1; i >= 0; i-- {
		if i < len(p.FaceUp) && p.FaceUp[i] {
			return p.HoleCards[i], true
		}
	}
	return card.Card{}, false
}

// openerByUpCard selects the opener by lowest (low=true) or highest
// (low=false) exposed up-card, the canonical stud bring-in/later-street
// rule. Ties break by suit, clubs weakest through spades strongest, a
// fixed house convention this module settles on since no other rule is
// dictated.
func openerByUpCard(players []*Player, low bool) int {
	best := -1
	var bestCard card.Card
	for i, p := range players {
		if !p.Active {
			continue
		}
		c, ok := latestUpCard(p)
		if !ok {
			continue
		}
		if best == -1 {
			best, bestCard = i, c
			continue
		}
		if low && lessUpCard(c, bestCard) {
			best, bestCard = i, c
		}
		if !low && lessUpCard(bestCard, c) {
			best, bestCard = i, c
		}
	}
	if best == -1 {
		return 0
	}
	return best
}

// raiseCheck validates a complete_bet_or_raise_to(x) against the current
// max bet and street minimum, returning whether it reopens the round.
func raiseCheck(x, maxBet, minBetOrRaise, streetBet, stack int) (reopens bool, err error) {
	allIn := x == streetBet+stack
	switch {
	case maxBet == 0 && x == minBetOrRaise:
		return true, nil
	case x > maxBet:
		if x-maxBet >= minBetOrRaise || allIn {
			return x-maxBet >= minBetOrRaise, nil
		}
		return false, &IllegalAction{Reason: "raise below minimum"}
	default:
		return false, &IllegalAction{Reason: "bet does not exceed the current max bet"}
	}
}

// potLimitCap returns the maximum a player may raise to under pot-limit
// rules: their own street bet, plus the call amount, plus the pot after
// that call (potAndBets, which is the collected pot and every street bet
// including their own, plus the call).
func potLimitCap(streetBet, maxBet, potAndBets int) int {
	call := maxBet - streetBet
	return streetBet + call + (potAndBets + call)
}

// fixedLimitRoundUp rounds a fixed-limit bet or raise up to the street's
// fixed amount.
func fixedLimitRoundUp(x, streetAmount int) int {
	if x%streetAmount == 0 {
		return x
	}
	return ((x / streetAmount) + 1) * streetAmount
}

// bettingComplete reports whether every active player has either matched
// maxBet or is all-in, and every active player has acted since the last
// aggression. The actor queue is what actually drives round termination
// at runtime; this is kept as a standalone invariant check callers can
// assert against.
func bettingComplete(players []*Player, maxBet int) bool {
	for _, p := range players {
		if !p.Active || p.Stack == 0 {
			continue
		}
		if p.StreetBet != maxBet {
			return false
		}
		if !p.ActedSince {
			return false
		}
	}
	return true
}
