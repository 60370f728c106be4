package eval

import (
	"fmt"
	"sync"

	"golang.org/x/sync/singleflight"

	"github.com/pokerkit/engine/card"
)

// VariantID names one of the process-wide, lazily-built lookups.
type VariantID string

const (
	StandardHigh     VariantID = "standard_high"
	StandardLow      VariantID = "standard_low"
	ShortDeckHigh    VariantID = "short_deck_high"
	EightOrBetterLow VariantID = "eight_or_better_low"
	KuhnPokerHigh    VariantID = "kuhn_poker_high"
	RoyalHigh        VariantID = "royal_high"
	Badugi           VariantID = "badugi"
)

// Lookups are process-wide immutable shared resources:
// built once, lazily, on first use, memoized behind a singleflight group
// so concurrent first-callers share one build instead of racing.
var (
	cacheMu sync.Mutex
	cache   = map[VariantID]*Lookup{}
	flight  singleflight.Group
)

// Get returns the shared Lookup for id, building it on first use.
func Get(id VariantID) (*Lookup, error) {
	cacheMu.Lock()
	if l, ok := cache[id]; ok {
		cacheMu.Unlock()
		return l, nil
	}
	cacheMu.Unlock()

	v, err, _ := flight.Do(string(id), func() (interface{}, error) {
		l, err := build(id)
		if err != nil {
			return nil, err
		}
		cacheMu.Lock()
		cache[id] = l
		cacheMu.Unlock()
		return l, nil
	})
	if err != nil {
		return nil, err
	}
	return v.(*Lookup), nil
}

// MustGet is Get, panicking on error. Intended for the fixed set of
// VariantID constants above, which always build successfully.
func MustGet(id VariantID) *Lookup {
	l, err := Get(id)
	if err != nil {
		panic(err)
	}
	return l
}

func build(id VariantID) (*Lookup, error) {
	switch id {
	case StandardHigh:
		return buildHigh(card.StandardHigh, "standard-high", false), nil
	case ShortDeckHigh:
		return buildHigh(card.ShortDeck, "short-deck-high", true), nil
	case RoyalHigh:
		return buildHigh(card.Royal, "royal-high", false), nil
	case StandardLow:
		return buildFlatLow(card.RegularLow, "standard-low"), nil
	case EightOrBetterLow:
		return buildFlatLow(card.EightOrBetter, "eight-or-better-low"), nil
	case KuhnPokerHigh:
		return buildKuhn(), nil
	case Badugi:
		return buildBadugi(), nil
	default:
		return nil, fmt.Errorf("eval: unknown variant %q", id)
	}
}

func shapeFor(c Category) Shape {
	for _, s := range StandardShapes5 {
		if s.Category == c {
			return s
		}
	}
	panic(fmt.Sprintf("eval: no standard shape for category %v", c))
}

func filterOutFingerprints(multisets [][]card.Rank, exclude map[string]bool) [][]card.Rank {
	out := make([][]card.Rank, 0, len(multisets))
	for _, ms := range multisets {
		if !exclude[Fingerprint(ms).String()] {
			out = append(out, ms)
		}
	}
	return out
}

// buildHigh builds a 5-card high-hand lookup: HighCard, Pair, TwoPair,
// ThreeOfAKind, Straight, Flush, FullHouse, FourOfAKind, StraightFlush, in
// that weakest-to-strongest order, unless flushOverFullHouse swaps Flush
// and FullHouse (Short-deck's house rule, where a flush is harder to make
// than a full house with only 36 cards in play).
func buildHigh(order card.Order, name string, flushOverFullHouse bool) *Lookup {
	pool := order.Ranks()
	straightSet := map[string]bool{}
	for _, ms := range straightMultisets(order, 5) {
		straightSet[Fingerprint(ms).String()] = true
	}
	fiveDistinct := enumerateShape(pool, shapeFor(HighCard).Multiplicities)
	nonStraightFiveDistinct := filterOutFingerprints(fiveDistinct, straightSet)

	b := NewBuilder(name, order)
	b.AddMultisets(HighCard, nonStraightFiveDistinct, []bool{false})
	b.AddShape5(shapeFor(Pair), pool, []bool{false})
	b.AddShape5(shapeFor(TwoPair), pool, []bool{false})
	b.AddShape5(shapeFor(ThreeOfAKind), pool, []bool{false})
	b.AddStraights(Straight, 5, []bool{false})
	addFlush := func() { b.AddMultisets(Flush, nonStraightFiveDistinct, []bool{true}) }
	addFullHouse := func() { b.AddShape5(shapeFor(FullHouse), pool, []bool{false}) }
	if flushOverFullHouse {
		addFullHouse()
		addFlush()
	} else {
		addFlush()
		addFullHouse()
	}
	b.AddShape5(shapeFor(FourOfAKind), pool, []bool{false})
	b.AddStraights(StraightFlush, 5, []bool{true})
	return b.Build()
}

// buildFlatLow builds a low-hand lookup with no straight/flush
// distinction: a 5-distinct-rank multiset registers at both suited flags,
// since flushes and straights don't count against a low hand. order's
// Ranks() must already put the weakest (most-favorable-to-be-low) rank
// first, e.g. Ace-low.
func buildFlatLow(order card.Order, name string) *Lookup {
	pool := order.Ranks()
	combos := enumerateShape(pool, shapeFor(HighCard).Multiplicities)
	b := NewBuilder(name, order)
	b.AddMultisets(HighCard, combos, []bool{true, false})
	return b.Build()
}

func buildKuhn() *Lookup {
	pool := card.KuhnPoker.Ranks()
	combos := enumerateShape(pool, []Multiplicity{{Count: 1, Occurrences: 1}})
	b := NewBuilder("kuhn-poker", card.KuhnPoker)
	b.AddMultisets(HighCard, combos, []bool{true})
	return b.Build()
}

// buildBadugi builds the variable-length (1-4 card), rainbow-only, Ace-low
// lookup: fewer "incomplete" cards never outrank more complete ones, and
// within a card count the hand with the lower highest card (then the lower
// next-highest, and so on) gets the greater index. Greater index is the
// stronger badugi, so it is evaluated as a high hand, not a low one.
func buildBadugi() *Lookup {
	pool := card.RegularLow.Ranks()
	b := NewBuilder("badugi", card.RegularLow).Rainbow()
	b.AddBadugiShapes(pool)
	return b.Build()
}
