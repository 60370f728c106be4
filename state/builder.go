package state

import (
	"fmt"

	"github.com/pokerkit/engine/card"
	"github.com/pokerkit/engine/hand"
	"github.com/pokerkit/engine/internal/clock"
)

// Automation is one phase-level opt-in flag. Automations only
// ever perform deterministic actions; they never bet, raise, or choose a
// discard.
type Automation int

const (
	AutomateAntePosting Automation = iota
	AutomateBetCollection
	AutomateBlindOrStraddlePosting
	AutomateCardBurning
	AutomateHoleDealing
	AutomateBoardDealing
	AutomateRunoutCountSelection
	AutomateHoleCardsShowingOrMucking
	AutomateHandKilling
	AutomateChipsPushing
	AutomateChipsPulling
)

// Mode affects stack top-ups between hands; the hand core itself is
// indifferent to it.
type Mode int

const (
	Tournament Mode = iota
	CashGame
)

// DivmodFunc splits an indivisible pot amount among n winners; the
// remainder is handed to the player closest to the opener.
type DivmodFunc func(amount, n int) (quota, remainder int)

// DefaultDivmod is ordinary integer division.
func DefaultDivmod(amount, n int) (int, int) {
	return amount / n, amount % n
}

// Builder assembles a validated State in a single step: nothing partially
// constructed ever escapes Build.
type Builder struct {
	playerCount       int
	intn              func(n int) int
	clock             clock.Clock
	deckComposition   card.Composition
	streets           []Street
	bettingStructure  BettingStructure
	mode              Mode
	anteTrimming      bool
	antes             map[int]int
	blindsOrStraddles map[int]int
	bringIn           map[int]int
	startingStacks    map[int]int
	automations       map[Automation]bool
	boardCount        int
	divmod            DivmodFunc
	rake              RakeFunc
	handTypes         []hand.Spec
}

// NewBuilder starts a Builder for playerCount seats. intn is the only
// permitted source of non-determinism: it drives the initial
// shuffle. It must not be nil.
func NewBuilder(playerCount int, intn func(n int) int) *Builder {
	if intn == nil {
		panic("state: intn is required")
	}
	if playerCount < 2 {
		panic("state: at least 2 players required")
	}
	return &Builder{
		playerCount:       playerCount,
		intn:              intn,
		deckComposition:   card.French,
		bettingStructure:  NoLimit,
		antes:             map[int]int{},
		blindsOrStraddles: map[int]int{},
		bringIn:           map[int]int{},
		startingStacks:    map[int]int{},
		automations:       map[Automation]bool{},
		boardCount:        1,
		divmod:            DefaultDivmod,
		rake:              NoRake,
	}
}

func (b *Builder) WithClock(c clock.Clock) *Builder { b.clock = c; return b }
func (b *Builder) WithDeckComposition(c card.Composition) *Builder {
	b.deckComposition = c
	return b
}
func (b *Builder) WithStreets(streets ...Street) *Builder { b.streets = streets; return b }
func (b *Builder) WithBettingStructure(s BettingStructure) *Builder {
	b.bettingStructure = s
	return b
}
func (b *Builder) WithMode(m Mode) *Builder { b.mode = m; return b }
func (b *Builder) WithAnteTrimming(on bool) *Builder { b.anteTrimming = on; return b }
func (b *Builder) WithAntes(antes map[int]int) *Builder {
	b.antes = antes
	return b
}
func (b *Builder) WithBlindsOrStraddles(v map[int]int) *Builder {
	b.blindsOrStraddles = v
	return b
}
func (b *Builder) WithBringIn(v map[int]int) *Builder { b.bringIn = v; return b }
func (b *Builder) WithStartingStacks(v map[int]int) *Builder {
	b.startingStacks = v
	return b
}
func (b *Builder) WithAutomations(autos ...Automation) *Builder {
	for _, a := range autos {
		b.automations[a] = true
	}
	return b
}
func (b *Builder) WithBoardCount(n int) *Builder { b.boardCount = n; return b }
func (b *Builder) WithDivmod(fn DivmodFunc) *Builder { b.divmod = fn; return b }
func (b *Builder) WithRake(fn RakeFunc) *Builder { b.rake = fn; return b }
func (b *Builder) WithHandTypes(specs ...hand.Spec) *Builder {
	b.handTypes = specs
	return b
}

func (b *Builder) automated(a Automation) bool {
	return b.automations[a]
}

// Build validates the accumulated configuration, deals the initial cards,
// and runs automations until the first discretionary decision point.
func (b *Builder) Build() (*State, error) {
	if len(b.streets) == 0 {
		return nil, &ConfigurationError{Reason: "no streets configured"}
	}
	for _, s := range b.streets {
		if err := s.Validate(); err != nil {
			return nil, err
		}
	}
	if len(b.handTypes) == 0 {
		return nil, &ConfigurationError{Reason: "no hand types configured"}
	}
	if b.boardCount < 1 {
		return nil, &ConfigurationError{Reason: "board count must be at least 1"}
	}

	players := make([]*Player, b.playerCount)
	for i := range players {
		stack, ok := b.startingStacks[i]
		if !ok {
			return nil, &ConfigurationError{Reason: fmt.Sprintf("missing starting stack for player %d", i)}
		}
		players[i] = &Player{Active: true, Stack: stack}
	}

	clk := b.clock
	if clk == nil {
		clk = clock.Real()
	}

	deck := card.New(b.deckComposition)
	deck.Shuffle(b.intn)

	s := &State{
		players:           players,
		streets:           b.streets,
		bettingStructure:  b.bettingStructure,
		mode:              b.mode,
		anteTrimming:      b.anteTrimming,
		antes:             b.antes,
		blindsOrStraddles: b.blindsOrStraddles,
		bringIn:           b.bringIn,
		automations:       b.automations,
		boardCount:        b.boardCount,
		divmod:            b.divmod,
		rake:              b.rake,
		handTypes:         b.handTypes,
		deck:              deck,
		boards:            make([][]card.Card, b.boardCount),
		intn:              b.intn,
		clock:             clk,
		log:               &Log{},
		phase:             PhaseAntePosting,
		streetIndex:       -1,
		status:            true,
	}

	if err := s.advance(); err != nil {
		return nil, err
	}
	return s, nil
}
