package card_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/pokerkit/engine/card"
)

func TestParseBasic(t *testing.T) {
	cards, err := card.Parse("AcKdQh")
	require.NoError(t, err)
	require.Equal(t, []card.Card{
		{Rank: card.Ace, Suit: card.Clubs},
		{Rank: card.King, Suit: card.Diamonds},
		{Rank: card.Queen, Suit: card.Hearts},
	}, cards)
}

func TestParseTenAlias(t *testing.T) {
	cards, err := card.Parse("10s")
	require.NoError(t, err)
	require.Equal(t, []card.Card{{Rank: card.Ten, Suit: card.Spades}}, cards)
}

func TestParseSeparators(t *testing.T) {
	cards, err := card.Parse("Ac, Kd\tQh\n2s")
	require.NoError(t, err)
	require.Len(t, cards, 4)
}

func TestParseOpaqueTokens(t *testing.T) {
	cards, err := card.Parse("?? Ac")
	require.NoError(t, err)
	require.Equal(t, card.Card{Rank: card.Unknown, Suit: card.SuitUnknown}, cards[0])
	require.Equal(t, card.Card{Rank: card.Ace, Suit: card.Clubs}, cards[1])
}

func TestParseInvalid(t *testing.T) {
	_, err := card.Parse("Zz")
	require.Error(t, err)

	_, err = card.Parse("A")
	require.Error(t, err)
}

func TestCardString(t *testing.T) {
	c := card.New(card.Ten, card.Hearts)
	require.Equal(t, "Th", c.String())
}

func TestFormatRoundTrip(t *testing.T) {
	cards := card.MustParse("AcKdQhJsTc")
	require.Equal(t, "AcKdQhJsTc", card.Format(cards))
}
