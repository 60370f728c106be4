// Package hand wraps a lookup Entry together with the card sequence that
// produced it, fixing per-variant policy: low-hand inversion, expected card
// count (or none, for variable-length variants), and how candidate hands are
// selected from hole and board cards.
package hand

import (
	"fmt"

	"github.com/pokerkit/engine/card"
	"github.com/pokerkit/engine/eval"
)

// Selection is how a variant picks candidate card combinations for best_of.
type Selection int

const (
	// Combinations enumerates every CardCount-sized subset of hole+board
	// combined, e.g. standard Hold'em's best-5-of-7.
	Combinations Selection = iota
	// HoleBoardSplit enumerates the Cartesian product of HoleCount-of-hole
	// times BoardCount-of-board, e.g. Omaha's exactly-2-hole-exactly-3-board.
	HoleBoardSplit
	// Variable accepts whatever cards are given with no best_of enumeration,
	// for variable-length hands like Badugi.
	Variable
)

// Spec fixes a variant's evaluation policy: which lookup to
// use, whether lower index wins, how many cards a finished hand holds (0
// for variable-length variants), and how best_of assembles candidates.
type Spec struct {
	Lookup     *eval.Lookup
	Low        bool
	CardCount  int
	Selection  Selection
	HoleCount  int
	BoardCount int
}

// Hand is a lookup entry bound to the card sequence that produced it.
type Hand struct {
	entry eval.Entry
	cards []card.Card
	spec  Spec
}

// Entry returns the underlying lookup entry.
func (h *Hand) Entry() eval.Entry {
	return h.entry
}

// Cards returns the cards that make up the hand.
func (h *Hand) Cards() []card.Card {
	return h.cards
}

// New builds a Hand directly from a fixed card sequence, validating the
// card count for fixed-length variants.
func New(spec Spec, cards []card.Card) (*Hand, error) {
	if spec.CardCount > 0 && len(cards) != spec.CardCount {
		return nil, &eval.ErrInvalidHand{Reason: fmt.Sprintf("expected %d cards, got %d", spec.CardCount, len(cards))}
	}
	entry, err := spec.Lookup.GetEntry(cards)
	if err != nil {
		return nil, err
	}
	out := make([]card.Card, len(cards))
	copy(out, cards)
	return &Hand{entry: entry, cards: out, spec: spec}, nil
}

// BestOf finds the strongest (or, for low variants, the weakest-index)
// candidate hand selectable from hole and board under the given Spec's
// selection policy.
func BestOf(spec Spec, hole, board []card.Card) (*Hand, error) {
	var candidates [][]card.Card
	switch spec.Selection {
	case Combinations:
		combined := make([]card.Card, 0, len(hole)+len(board))
		combined = append(combined, hole...)
		combined = append(combined, board...)
		for _, idx := range eval.Combinations(len(combined), spec.CardCount) {
			candidates = append(candidates, pick(combined, idx))
		}
	case HoleBoardSplit:
		holeCombos := eval.Combinations(len(hole), spec.HoleCount)
		boardCombos := eval.Combinations(len(board), spec.BoardCount)
		for _, hi := range holeCombos {
			for _, bi := range boardCombos {
				combo := make([]card.Card, 0, spec.HoleCount+spec.BoardCount)
				combo = append(combo, pick(hole, hi)...)
				combo = append(combo, pick(board, bi)...)
				candidates = append(candidates, combo)
			}
		}
	default:
		return New(spec, append(append([]card.Card{}, hole...), board...))
	}

	if len(candidates) == 0 {
		return nil, &eval.ErrInvalidHand{Reason: "no valid combination"}
	}

	var best *Hand
	for _, cards := range candidates {
		h, err := New(spec, cards)
		if err != nil {
			continue
		}
		if best == nil || h.strongerThan(best) {
			best = h
		}
	}
	if best == nil {
		return nil, &eval.ErrInvalidHand{Reason: "no valid combination"}
	}
	return best, nil
}

func pick(cards []card.Card, idx []int) []card.Card {
	out := make([]card.Card, len(idx))
	for i, j := range idx {
		out[i] = cards[j]
	}
	return out
}

// strongerThan reports whether h is strictly stronger than other under the
// shared spec's ordering (low variants invert the raw index comparison).
func (h *Hand) strongerThan(other *Hand) bool {
	if h.spec.Low {
		return h.entry.Index < other.entry.Index
	}
	return h.entry.Index > other.entry.Index
}

// Compare returns -1, 0, or 1 as h is weaker than, tied with, or stronger
// than other, honoring the variant's low? bit.
func (h *Hand) Compare(other *Hand) int {
	switch {
	case h.entry.Index == other.entry.Index:
		return 0
	case h.strongerThan(other):
		return 1
	default:
		return -1
	}
}

// Less reports whether h is strictly weaker than other.
func (h *Hand) Less(other *Hand) bool {
	return h.Compare(other) < 0
}

func (h *Hand) String() string {
	return fmt.Sprintf("%s (%s)", h.entry.Label, card.Format(h.cards))
}
