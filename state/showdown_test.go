package state

import (
	"testing"

	"github.com/pokerkit/engine/card"
	"github.com/pokerkit/engine/eval"
	"github.com/pokerkit/engine/hand"
)

func kuhnSpec(t *testing.T) hand.Spec {
	t.Helper()
	lookup, err := eval.Get(eval.KuhnPokerHigh)
	if err != nil {
		t.Fatal(err)
	}
	return hand.Spec{Lookup: lookup, CardCount: 1, Selection: hand.Combinations}
}

// TestShowdownAwardsPotToStrongerHand checks a contested pot is awarded by
// hand strength, not by who acted last.
func TestShowdownAwardsPotToStrongerHand(t *testing.T) {
	street := Street{Name: "deal", MinBetOrRaise: 1}

	s, err := NewBuilder(2, fixedIntn()).
		WithStreets(street).
		WithAntes(map[int]int{0: 5, 1: 5}).
		WithStartingStacks(map[int]int{0: 200, 1: 200}).
		WithAutomations(
			AutomateAntePosting, AutomateBetCollection, AutomateBlindOrStraddlePosting,
			AutomateCardBurning, AutomateHoleDealing, AutomateBoardDealing,
			AutomateHoleCardsShowingOrMucking, AutomateChipsPushing, AutomateChipsPulling,
		).
		WithHandTypes(kuhnSpec(t)).
		Build()
	if err != nil {
		t.Fatalf("unexpected build error: %v", err)
	}

	s.Player(0).HoleCards = []card.Card{card.New(card.King, card.Spades)}
	s.Player(1).HoleCards = []card.Card{card.New(card.Jack, card.Spades)}

	for s.Status() {
		q := s.ActorQueue()
		if len(q) == 0 {
			break
		}
		if err := s.CheckOrCall(q[0]); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	}

	if s.Phase() != PhaseComplete {
		t.Fatalf("expected PhaseComplete, got %s", s.Phase())
	}
	if got := s.Player(0).Stack; got != 205 {
		t.Errorf("king should win the 10-chip pot: expected stack 205, got %d", got)
	}
	if got := s.Player(1).Stack; got != 195 {
		t.Errorf("jack should lose its ante: expected stack 195, got %d", got)
	}
}

// TestStandingPatOrDiscardDrawsReplacements exercises a draw street end to
// end: a player discards one card and must end up with the same hand size,
// holding a freshly drawn replacement.
func TestStandingPatOrDiscardDrawsReplacements(t *testing.T) {
	deal := Street{Name: "deal", HoleDealPattern: []bool{false}, MinBetOrRaise: 1}
	draw := Street{Name: "draw", Draw: true, MinBetOrRaise: 1}

	s, err := NewBuilder(2, fixedIntn(1, 2, 3, 4, 5, 6, 7, 8)).
		WithStreets(deal, draw).
		WithStartingStacks(map[int]int{0: 200, 1: 200}).
		WithAutomations(
			AutomateAntePosting, AutomateBetCollection, AutomateBlindOrStraddlePosting,
			AutomateCardBurning, AutomateHoleDealing, AutomateBoardDealing,
			AutomateHoleCardsShowingOrMucking, AutomateChipsPushing, AutomateChipsPulling,
		).
		WithHandTypes(kuhnSpec(t)).
		Build()
	if err != nil {
		t.Fatalf("unexpected build error: %v", err)
	}

	for s.Status() {
		q := s.ActorQueue()
		if len(q) == 0 {
			break
		}
		if err := s.CheckOrCall(q[0]); err != nil {
			t.Fatalf("unexpected error completing the deal street: %v", err)
		}
	}
	if s.Phase() != PhaseDealing {
		t.Fatalf("expected the draw street to pause for discards, got phase %s", s.Phase())
	}

	p0Before := len(s.Player(0).HoleCards)
	discarded := s.Player(0).HoleCards[0]
	if err := s.StandingPatOrDiscard(0, []card.Card{discarded}); err != nil {
		t.Fatalf("unexpected discard error: %v", err)
	}
	if len(s.Player(0).Discarded) != 1 {
		t.Errorf("expected 1 discarded card, got %d", len(s.Player(0).Discarded))
	}
	if len(s.Player(0).HoleCards) != p0Before {
		t.Errorf("expected the replacement to keep hand size constant, got %d", len(s.Player(0).HoleCards))
	}
	for _, c := range s.Player(0).HoleCards {
		if c == discarded {
			t.Errorf("discarded card %v should no longer be in hand", discarded)
		}
	}

	if err := s.StandingPatOrDiscard(1, nil); err != nil {
		t.Fatalf("unexpected stand-pat error: %v", err)
	}

	if s.Phase() != PhaseBetting {
		t.Fatalf("expected the draw street's betting round to open, got phase %s", s.Phase())
	}
}

// TestCompleteBettingOrRaisingToReopensRound checks that a raise rebuilds
// the actor queue so everyone behind it gets to respond.
func TestCompleteBettingOrRaisingToReopensRound(t *testing.T) {
	street := Street{Name: "deal", MinBetOrRaise: 10}

	s, err := NewBuilder(3, fixedIntn()).
		WithStreets(street).
		WithBettingStructure(NoLimit).
		WithStartingStacks(map[int]int{0: 500, 1: 500, 2: 500}).
		WithAutomations(
			AutomateAntePosting, AutomateBetCollection, AutomateBlindOrStraddlePosting,
			AutomateCardBurning, AutomateHoleDealing, AutomateBoardDealing,
			AutomateHoleCardsShowingOrMucking, AutomateChipsPushing, AutomateChipsPulling,
		).
		WithHandTypes(kuhnSpec(t)).
		Build()
	if err != nil {
		t.Fatalf("unexpected build error: %v", err)
	}

	first := s.ActorQueue()[0]
	if err := s.CompleteBettingOrRaisingTo(first, 20); err != nil {
		t.Fatalf("unexpected raise error: %v", err)
	}

	queue := s.ActorQueue()
	if len(queue) != 2 {
		t.Fatalf("expected the raise to reopen action for the other 2 players, got %v", queue)
	}
	for _, idx := range queue {
		if idx == first {
			t.Errorf("the raiser should not reappear in the reopened queue, got %v", queue)
		}
	}
	if s.MaxBet() != 20 {
		t.Errorf("expected max bet 20 after the raise, got %d", s.MaxBet())
	}
}

// TestSelectRunoutCountSplitsThePotAcrossRuns checks that a multi-run
// showdown divides one pot's winnings evenly across its runs.
func TestSelectRunoutCountSplitsThePotAcrossRuns(t *testing.T) {
	street := Street{Name: "deal", MinBetOrRaise: 1}

	s, err := NewBuilder(2, fixedIntn(1, 2, 3, 4, 5, 6, 7, 8, 9, 10)).
		WithStreets(street).
		WithAntes(map[int]int{0: 10, 1: 10}).
		WithStartingStacks(map[int]int{0: 200, 1: 200}).
		WithAutomations(
			AutomateAntePosting, AutomateBetCollection, AutomateBlindOrStraddlePosting,
			AutomateCardBurning, AutomateHoleDealing, AutomateBoardDealing,
			AutomateHoleCardsShowingOrMucking, AutomateChipsPushing, AutomateChipsPulling,
		).
		WithHandTypes(kuhnSpec(t)).
		Build()
	if err != nil {
		t.Fatalf("unexpected build error: %v", err)
	}

	if err := s.SelectRunoutCount(0, 2); err != nil {
		t.Fatalf("unexpected error selecting a runout count: %v", err)
	}

	s.Player(0).HoleCards = []card.Card{card.New(card.King, card.Spades)}
	s.Player(1).HoleCards = []card.Card{card.New(card.Jack, card.Spades)}

	for s.Status() {
		q := s.ActorQueue()
		if len(q) == 0 {
			break
		}
		if err := s.CheckOrCall(q[0]); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	}

	if s.Phase() != PhaseComplete {
		t.Fatalf("expected PhaseComplete, got %s", s.Phase())
	}
	total := s.Player(0).Stack + s.Player(1).Stack
	if total != 400 {
		t.Errorf("expected total chips conserved at 400 across both runs, got %d", total)
	}
	if got := s.Player(0).Stack; got != 210 {
		t.Errorf("king should win both runs' shares of the 20-chip pot: expected 210, got %d", got)
	}
}
