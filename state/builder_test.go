package state

import (
	"testing"

	"github.com/pokerkit/engine/eval"
	"github.com/pokerkit/engine/hand"
)

func fixedIntn(seq ...int) func(int) int {
	i := 0
	return func(n int) int {
		if i >= len(seq) {
			return 0
		}
		v := seq[i]
		i++
		if v >= n {
			v = n - 1
		}
		return v
	}
}

func TestNewBuilderPanicsOnNilIntn(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected a panic for a nil intn")
		}
	}()
	NewBuilder(2, nil)
}

func TestNewBuilderPanicsOnTooFewPlayers(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected a panic for fewer than 2 players")
		}
	}()
	NewBuilder(1, fixedIntn())
}

func TestBuildRejectsMissingStreets(t *testing.T) {
	_, err := NewBuilder(2, fixedIntn()).WithStartingStacks(map[int]int{0: 100, 1: 100}).Build()
	if err == nil {
		t.Fatal("expected a ConfigurationError for no streets")
	}
	if _, ok := err.(*ConfigurationError); !ok {
		t.Fatalf("expected *ConfigurationError, got %T", err)
	}
}

func TestBuildRejectsMissingStartingStack(t *testing.T) {
	street := Street{Name: "only", HoleDealPattern: []bool{false}, MinBetOrRaise: 1}
	lookup, _ := eval.Get(eval.KuhnPokerHigh)
	spec := hand.Spec{Lookup: lookup, CardCount: 1, Selection: hand.Combinations}

	_, err := NewBuilder(2, fixedIntn()).
		WithStreets(street).
		WithHandTypes(spec).
		WithStartingStacks(map[int]int{0: 100}).
		Build()
	if err == nil {
		t.Fatal("expected a ConfigurationError for a missing starting stack")
	}
}

// TestFullyAutomatedHandRunsToCompletion drives a minimal heads-up, two
// street, no-draw game entirely through automations and checks that total
// chips are conserved at the end.
func TestFullyAutomatedHandRunsToCompletion(t *testing.T) {
	lookup, err := eval.Get(eval.StandardHigh)
	if err != nil {
		t.Fatal(err)
	}
	spec := hand.Spec{Lookup: lookup, CardCount: 5, Selection: hand.Combinations}

	preflop := Street{Name: "preflop", HoleDealPattern: []bool{false, false}, MinBetOrRaise: 2}
	river := Street{Name: "river", CardBurning: true, BoardDealCount: 5, MinBetOrRaise: 2}

	s, err := NewBuilder(2, fixedIntn(1, 2, 3, 4, 5, 6, 7, 8, 9, 10)).
		WithStreets(preflop, river).
		WithBettingStructure(NoLimit).
		WithBlindsOrStraddles(map[int]int{0: 1, 1: 2}).
		WithStartingStacks(map[int]int{0: 200, 1: 200}).
		WithAutomations(
			AutomateAntePosting,
			AutomateBetCollection,
			AutomateBlindOrStraddlePosting,
			AutomateCardBurning,
			AutomateHoleDealing,
			AutomateBoardDealing,
			AutomateHoleCardsShowingOrMucking,
			AutomateChipsPushing,
			AutomateChipsPulling,
		).
		WithHandTypes(spec).
		Build()
	if err != nil {
		t.Fatalf("unexpected build error: %v", err)
	}

	if !s.Status() {
		t.Fatal("hand should pause for the preflop betting round, not finish immediately")
	}
	if s.Phase() != PhaseBetting {
		t.Fatalf("expected PhaseBetting, got %s", s.Phase())
	}

	queue := s.ActorQueue()
	if len(queue) == 0 {
		t.Fatal("expected a non-empty actor queue")
	}

	for s.Status() {
		front := s.ActorQueue()
		if len(front) == 0 {
			break
		}
		if err := s.CheckOrCall(front[0]); err != nil {
			t.Fatalf("unexpected error checking/calling: %v", err)
		}
	}

	total := 0
	for i := 0; i < s.PlayerCount(); i++ {
		total += s.Player(i).Stack
	}
	if total != 400 {
		t.Errorf("expected total chips conserved at 400, got %d", total)
	}
	if s.Phase() != PhaseComplete {
		t.Errorf("expected the hand to reach PhaseComplete, got %s", s.Phase())
	}
}

func TestFoldEndsHandWithoutShowdown(t *testing.T) {
	lookup, _ := eval.Get(eval.StandardHigh)
	spec := hand.Spec{Lookup: lookup, CardCount: 5, Selection: hand.Combinations}
	preflop := Street{Name: "preflop", HoleDealPattern: []bool{false, false}, MinBetOrRaise: 2}
	river := Street{Name: "river", BoardDealCount: 5, MinBetOrRaise: 2}

	s, err := NewBuilder(2, fixedIntn()).
		WithStreets(preflop, river).
		WithBlindsOrStraddles(map[int]int{0: 1, 1: 2}).
		WithStartingStacks(map[int]int{0: 200, 1: 200}).
		WithAutomations(
			AutomateAntePosting, AutomateBetCollection, AutomateBlindOrStraddlePosting,
			AutomateCardBurning, AutomateHoleDealing, AutomateBoardDealing,
			AutomateHoleCardsShowingOrMucking, AutomateChipsPushing, AutomateChipsPulling,
		).
		WithHandTypes(spec).
		Build()
	if err != nil {
		t.Fatalf("unexpected build error: %v", err)
	}

	front := s.ActorQueue()[0]
	if err := s.Fold(front); err != nil {
		t.Fatalf("unexpected fold error: %v", err)
	}
	if s.Phase() != PhaseComplete {
		t.Fatalf("expected the hand to end immediately on a fold to one player, got %s", s.Phase())
	}

	total := 0
	for i := 0; i < s.PlayerCount(); i++ {
		total += s.Player(i).Stack
	}
	if total != 400 {
		t.Errorf("expected total chips conserved at 400, got %d", total)
	}
}
