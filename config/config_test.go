package config_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/pokerkit/engine/config"
)

const sampleHCL = `
hand "heads_up_holdem" {
  betting_structure    = "no_limit"
  mode                 = "cash_game"
  ante_trimming_status = true
  automations          = ["ante_posting", "bet_collection", "card_burning"]

  player "0" {
    starting_stack    = 200
    blind_or_straddle = 2
  }

  player "1" {
    starting_stack    = 200
    blind_or_straddle = 1
  }

  street "preflop" {
    hole_deal_pattern = [false, false]
    min_bet_or_raise  = 2
  }

  street "flop" {
    card_burning      = true
    board_deal_count  = 3
    min_bet_or_raise  = 2
  }
}
`

func TestParseValidDocument(t *testing.T) {
	doc, err := config.Parse([]byte(sampleHCL), "sample.hcl")
	require.NoError(t, err)
	require.Len(t, doc.Hands, 1)

	hand, err := doc.Hand("heads_up_holdem")
	require.NoError(t, err)
	require.Equal(t, "no_limit", hand.BettingStructure)
	require.Len(t, hand.Players, 2)
	require.Len(t, hand.Streets, 2)
	require.True(t, hand.Streets[1].CardBurning)
}

func TestHandLookupMissing(t *testing.T) {
	doc, err := config.Parse([]byte(sampleHCL), "sample.hcl")
	require.NoError(t, err)
	_, err = doc.Hand("nonexistent")
	require.Error(t, err)
}

func TestValidateRejectsFewerThanTwoPlayers(t *testing.T) {
	const src = `
hand "broken" {
  player "0" {
    starting_stack = 100
  }
  street "preflop" {
    min_bet_or_raise = 2
  }
}
`
	_, err := config.Parse([]byte(src), "broken.hcl")
	require.Error(t, err)
}

func TestValidateRejectsNonPositiveMinBet(t *testing.T) {
	const src = `
hand "broken" {
  player "0" { starting_stack = 100 }
  player "1" { starting_stack = 100 }
  street "preflop" { min_bet_or_raise = 0 }
}
`
	_, err := config.Parse([]byte(src), "broken.hcl")
	require.Error(t, err)
}

func TestValidateRejectsHoleDealAndDrawTogether(t *testing.T) {
	const src = `
hand "broken" {
  player "0" { starting_stack = 100 }
  player "1" { starting_stack = 100 }
  street "preflop" {
    hole_deal_pattern = [true]
    draw              = true
    min_bet_or_raise  = 2
  }
}
`
	_, err := config.Parse([]byte(src), "broken.hcl")
	require.Error(t, err)
}
