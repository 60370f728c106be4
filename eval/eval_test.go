package eval_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/pokerkit/engine/card"
	"github.com/pokerkit/engine/eval"
)

func mustCards(t *testing.T, s string) []card.Card {
	t.Helper()
	cards, err := card.Parse(s)
	require.NoError(t, err)
	return cards
}

func entryFor(t *testing.T, l *eval.Lookup, s string) eval.Entry {
	t.Helper()
	e, err := l.GetEntry(mustCards(t, s))
	require.NoError(t, err)
	return e
}

func TestFingerprintUniqueness(t *testing.T) {
	a := eval.Fingerprint([]card.Rank{card.Two, card.Two, card.King})
	b := eval.Fingerprint([]card.Rank{card.Two, card.Three, card.King})
	require.NotEqual(t, a.String(), b.String())

	c := eval.Fingerprint([]card.Rank{card.King, card.Two, card.Two})
	require.Equal(t, a.String(), c.String())
}

func TestStandardHighEntryCount(t *testing.T) {
	l := eval.MustGet(eval.StandardHigh)
	// the textbook count of distinct 5-card hand strengths
	require.Equal(t, 7462, l.N())
}

func TestStandardHighCategoryOrdering(t *testing.T) {
	l := eval.MustGet(eval.StandardHigh)

	highCard := entryFor(t, l, "2c 4d 7h 9s Jc")
	pair := entryFor(t, l, "2c 2d 7h 9s Jc")
	twoPair := entryFor(t, l, "2c 2d 7h 7s Jc")
	trips := entryFor(t, l, "2c 2d 2h 9s Jc")
	straight := entryFor(t, l, "2c 3d 4h 5s 6c")
	wheel := entryFor(t, l, "Ac 2d 3h 4s 5c")
	flush := entryFor(t, l, "2c 4c 7c 9c Jc")
	fullHouse := entryFor(t, l, "2c 2d 2h 9s 9c")
	quads := entryFor(t, l, "2c 2d 2h 2s Jc")
	straightFlush := entryFor(t, l, "2c 3c 4c 5c 6c")
	royalFlush := entryFor(t, l, "Tc Jc Qc Kc Ac")

	require.Less(t, highCard.Index, pair.Index)
	require.Less(t, pair.Index, twoPair.Index)
	require.Less(t, twoPair.Index, trips.Index)
	require.Less(t, wheel.Index, straight.Index, "wheel is the weakest straight")
	require.Less(t, trips.Index, straight.Index)
	require.Less(t, straight.Index, flush.Index)
	require.Less(t, flush.Index, fullHouse.Index)
	require.Less(t, fullHouse.Index, quads.Index)
	require.Less(t, quads.Index, straightFlush.Index)
	require.Less(t, straightFlush.Index, royalFlush.Index)

	require.Equal(t, eval.HighCard, highCard.Label)
	require.Equal(t, eval.StraightFlush, royalFlush.Label)
}

func TestShortDeckFlushAboveFullHouse(t *testing.T) {
	l := eval.MustGet(eval.ShortDeckHigh)

	fullHouse := entryFor(t, l, "7c 7d 7h 9s 9c")
	flush := entryFor(t, l, "7c 9c Tc Jc Ac")

	require.Less(t, fullHouse.Index, flush.Index, "short-deck flush ranks above full house")
}

func TestEightOrBetterHasNoFlushDistinction(t *testing.T) {
	l := eval.MustGet(eval.EightOrBetterLow)

	rainbow := entryFor(t, l, "Ac 2d 3h 4s 8c")
	suited := entryFor(t, l, "Ac 2c 3c 4c 8c")
	require.Equal(t, rainbow.Index, suited.Index, "low hands register under both suited flags with the same index")
}

func TestBadugiRejectsRepeatedSuit(t *testing.T) {
	l := eval.MustGet(eval.Badugi)

	_, err := l.GetEntry(mustCards(t, "Ac 2d 3h 4c"))
	require.Error(t, err)

	e, err := l.GetEntry(mustCards(t, "Ac 2d 3h 4s"))
	require.NoError(t, err)
	require.Equal(t, eval.FourCard, e.Label)
}

func TestBadugiAceLowFourIsStrongest(t *testing.T) {
	l := eval.MustGet(eval.Badugi)

	best := entryFor(t, l, "Ac 2d 3h 4s")
	worse := entryFor(t, l, "Tc Jd Qh Ks")
	oneCard := entryFor(t, l, "Ac")

	require.Greater(t, best.Index, worse.Index, "A-2-3-4 rainbow is the strongest four-card badugi")
	require.Less(t, oneCard.Index, worse.Index, "a one-card badugi is always weaker than a four-card one")
}

func TestKuhnPokerOrdering(t *testing.T) {
	l := eval.MustGet(eval.KuhnPokerHigh)

	jack := entryFor(t, l, "Jc")
	queen := entryFor(t, l, "Qc")
	king := entryFor(t, l, "Kc")

	require.Less(t, jack.Index, queen.Index)
	require.Less(t, queen.Index, king.Index)
}

func TestCombinations(t *testing.T) {
	got := eval.Combinations(4, 2)
	require.Equal(t, [][]int{{0, 1}, {0, 2}, {0, 3}, {1, 2}, {1, 3}, {2, 3}}, got)

	require.Equal(t, [][]int{{}}, eval.Combinations(3, 0))
	require.Nil(t, eval.Combinations(2, 3))
}
