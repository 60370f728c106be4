// Package state implements the single authoritative per-deal object:
// phases, legal actions, per-player bookkeeping, and on-demand pot
// arithmetic.
package state

import (
	"sort"

	"github.com/pokerkit/engine/card"
	"github.com/pokerkit/engine/hand"
	"github.com/pokerkit/engine/internal/clock"
)

// State is the mutable, single-threaded cooperative automaton for one deal.
type State struct {
	players           []*Player
	streets           []Street
	bettingStructure  BettingStructure
	mode              Mode
	anteTrimming      bool
	antes             map[int]int
	blindsOrStraddles map[int]int
	bringIn           map[int]int
	automations       map[Automation]bool
	boardCount        int
	divmod            DivmodFunc
	rake              RakeFunc
	handTypes         []hand.Spec

	deck   *card.Deck
	boards [][]card.Card
	muck   []card.Card
	burns  []card.Card
	intn   func(n int) int

	clock clock.Clock
	log   *Log

	phase         Phase
	streetIndex   int
	dealStage     int
	discardQueue  []int
	actorQueue    []int
	opener        int
	bigBlindIdx   int
	maxBet        int
	raiseCount    int
	lastAggressor int
	runoutCount   int
	runoutBoards  [][]card.Card
	showdownQueue []int
	pendingPushes []ChipsPushing

	status bool
}

// Status reports whether the hand is still in progress.
func (s *State) Status() bool { return s.status }

// Phase returns the automaton's current phase.
func (s *State) Phase() Phase { return s.phase }

// Log returns the hand's operation log.
func (s *State) Log() *Log { return s.log }

// Player returns the mutable per-player state for seat i.
func (s *State) Player(i int) *Player { return s.players[i] }

// PlayerCount returns the number of seats.
func (s *State) PlayerCount() int { return len(s.players) }

// ActorQueue returns the seats still due to act this betting round, front first.
func (s *State) ActorQueue() []int { return append([]int{}, s.actorQueue...) }

// MaxBet returns the current street's bet to match.
func (s *State) MaxBet() int { return s.maxBet }

// Board returns the shared board cards for boardIdx.
func (s *State) Board(boardIdx int) []card.Card { return s.boards[boardIdx] }

func (s *State) automated(a Automation) bool { return s.automations[a] }

func (s *State) swapIndex(i int) int {
	if len(s.players) == 2 {
		return 1 - i
	}
	return i
}

func activeIndices(players []*Player) []int {
	var out []int
	for i, p := range players {
		if p.Active {
			out = append(out, i)
		}
	}
	return out
}

func (s *State) countActive() int {
	n := 0
	for _, p := range s.players {
		if p.Active {
			n++
		}
	}
	return n
}

// advance drives the automaton through automated phases until a
// discretionary action is required or the hand completes: a Phase enum
// with an explicit driver loop, rather than nested tail calls between
// transition methods.
func (s *State) advance() error {
	for s.status {
		switch s.phase {
		case PhaseAntePosting:
			if !s.automated(AutomateAntePosting) {
				return nil
			}
			s.doPostAntes()
			s.phase = PhaseAnteCollection

		case PhaseAnteCollection:
			if !s.automated(AutomateBetCollection) {
				return nil
			}
			s.doCollectBets(false)
			s.phase = PhaseBlindOrStraddlePosting

		case PhaseBlindOrStraddlePosting:
			if !s.automated(AutomateBlindOrStraddlePosting) {
				return nil
			}
			s.doPostBlinds()
			s.streetIndex++
			s.phase = PhaseDealing

		case PhaseDealing:
			done, err := s.doDealStreet()
			if err != nil {
				return err
			}
			if !done {
				return nil
			}
			s.phase = PhaseBetting

		case PhaseBetting:
			if len(s.actorQueue) == 0 {
				s.phase = PhaseBetCollection
				continue
			}
			return nil

		case PhaseBetCollection:
			if !s.automated(AutomateBetCollection) {
				return nil
			}
			s.doCollectBets(true)
			if s.countActive() <= 1 || s.streetIndex >= len(s.streets)-1 {
				s.phase = PhaseShowdown
			} else {
				s.streetIndex++
				s.phase = PhaseDealing
			}

		case PhaseShowdown:
			if !s.automated(AutomateHoleCardsShowingOrMucking) {
				return nil
			}
			s.doShowdown()
			s.phase = PhaseChipsPushing

		case PhaseChipsPushing:
			if !s.automated(AutomateChipsPushing) {
				return nil
			}
			s.doPushChips()
			s.phase = PhaseChipsPulling

		case PhaseChipsPulling:
			if !s.automated(AutomateChipsPulling) {
				return nil
			}
			s.doPullChips()
			s.phase = PhaseComplete

		case PhaseComplete:
			s.status = false
			return nil
		}
	}
	return nil
}

// Advance is the exported driver, used by callers after supplying a
// discretionary action that automations alone cannot complete (e.g. a
// street whose dealing finished but whose betting round needs a human
// decision before bet_collection can run).
func (s *State) Advance() error { return s.advance() }

func (s *State) doPostAntes() {
	for i, p := range s.players {
		idx := s.swapIndex(i)
		amt := s.antes[idx]
		if amt <= 0 {
			continue
		}
		eff := amt
		if eff > p.Stack {
			eff = p.Stack
		}
		if eff == 0 {
			continue
		}
		p.Stack -= eff
		p.StreetBet += eff
		s.log.Append(&AntePosting{base: newBase(s.clock, ""), Player: i, Amount: eff})
	}
}

func (s *State) doPostBlinds() {
	bigAmt := -1
	for i, p := range s.players {
		idx := s.swapIndex(i)
		amt := s.blindsOrStraddles[idx]
		if amt <= 0 {
			continue
		}
		eff := amt
		if eff > p.Stack {
			eff = p.Stack
		}
		if eff == 0 {
			continue
		}
		p.Stack -= eff
		p.StreetBet += eff
		if amt > bigAmt {
			bigAmt = amt
			s.bigBlindIdx = i
		}
		s.log.Append(&BlindOrStraddlePosting{base: newBase(s.clock, ""), Player: i, Amount: eff})
	}
}

func (s *State) doCollectBets(applyRefund bool) {
	if applyRefund {
		s.refundUncalledBet()
	}
	bets := make([]int, len(s.players))
	for i, p := range s.players {
		bets[i] = p.StreetBet
		p.Payoff -= p.StreetBet
		p.StreetBet = 0
	}
	s.log.Append(&BetCollection{base: newBase(s.clock, ""), Bets: bets})
}

// refundUncalledBet returns the portion of the street's largest bet that no
// other player matched, straight back to its owner's stack, before that
// street's bets are swept into the pot. This covers both the everyone-folds
// case and a raise nobody gets to call.
func (s *State) refundUncalledBet() {
	top, second, topIdx, multipleAtTop := -1, -1, -1, false
	for i, p := range s.players {
		switch {
		case p.StreetBet > top:
			second = top
			top, topIdx = p.StreetBet, i
			multipleAtTop = false
		case p.StreetBet == top:
			multipleAtTop = true
		case p.StreetBet > second:
			second = p.StreetBet
		}
	}
	if top <= 0 || multipleAtTop {
		return
	}
	if second < 0 {
		second = 0
	}
	refund := top - second
	if refund <= 0 {
		return
	}
	s.players[topIdx].StreetBet -= refund
	s.players[topIdx].Stack += refund
}

// doDealStreet advances through card-burning, hole/draw dealing, and board
// dealing for the current street, pausing (returning false) whenever an
// unautomated or discretionary step is reached. It finishes by computing
// the street's betting round setup.
func (s *State) doDealStreet() (bool, error) {
	street := s.streets[s.streetIndex]

	if s.dealStage <= 0 {
		if street.CardBurning {
			if !s.automated(AutomateCardBurning) {
				return false, nil
			}
			cards, err := s.deck.Draw(1)
			if err != nil {
				return false, &ExhaustedDeck{Requested: 1, Remaining: s.deck.Len()}
			}
			s.burns = append(s.burns, cards[0])
			s.log.Append(&CardBurning{base: newBase(s.clock, ""), Card: cards[0]})
		}
		s.dealStage = 1
	}

	if s.dealStage <= 1 {
		if street.Draw {
			if s.discardQueue == nil {
				s.discardQueue = activeIndices(s.players)
			}
			if len(s.discardQueue) > 0 {
				return false, nil
			}
			s.discardQueue = nil
		} else if len(street.HoleDealPattern) > 0 {
			if !s.automated(AutomateHoleDealing) {
				return false, nil
			}
			for _, i := range activeIndices(s.players) {
				p := s.players[i]
				cards, err := s.deck.Draw(len(street.HoleDealPattern))
				if err != nil {
					return false, &ExhaustedDeck{Requested: len(street.HoleDealPattern), Remaining: s.deck.Len()}
				}
				p.HoleCards = append(p.HoleCards, cards...)
				faceUp := append([]bool{}, street.HoleDealPattern...)
				p.FaceUp = append(p.FaceUp, faceUp...)
				s.log.Append(&HoleDealing{base: newBase(s.clock, ""), Player: i, Cards: cards, FaceUp: faceUp})
			}
		}
		s.dealStage = 2
	}

	if s.dealStage <= 2 {
		if street.BoardDealCount > 0 {
			if !s.automated(AutomateBoardDealing) {
				return false, nil
			}
			cards, err := s.deck.Draw(street.BoardDealCount)
			if err != nil {
				return false, &ExhaustedDeck{Requested: street.BoardDealCount, Remaining: s.deck.Len()}
			}
			s.boards[0] = append(s.boards[0], cards...)
			s.log.Append(&BoardDealing{base: newBase(s.clock, ""), Board: 0, Cards: cards})
		}
		s.dealStage = 3
	}

	s.setupBettingRound(street)
	s.dealStage = 0
	return true, nil
}

func (s *State) setupBettingRound(street Street) {
	preflop := s.streetIndex == 0
	var opener int
	switch street.OpeningRule {
	case OpenByLowCard:
		opener = openerByUpCard(s.players, true)
	case OpenByHighCard:
		opener = openerByUpCard(s.players, false)
	case OpenByLowHand:
		opener = openerByUpCard(s.players, true)
	case OpenByHighHand:
		opener = openerByUpCard(s.players, false)
	default:
		opener = openerByPosition(s.players, s.bigBlindIdx, preflop)
	}

	if preflop {
		if amt, ok := s.bringIn[opener]; ok && amt > 0 {
			p := s.players[opener]
			eff := amt
			if eff > p.Stack {
				eff = p.Stack
			}
			p.Stack -= eff
			p.StreetBet += eff
			s.log.Append(&BringInPosting{base: newBase(s.clock, ""), Player: opener, Amount: eff})
			opener = (opener + 1) % len(s.players)
		}
	}

	maxBet := 0
	for _, p := range s.players {
		if p.StreetBet > maxBet {
			maxBet = p.StreetBet
		}
	}

	s.maxBet = maxBet
	s.opener = opener
	s.actorQueue = buildActorQueue(opener, s.players)
	s.raiseCount = 0
	s.lastAggressor = -1
	for _, p := range s.players {
		p.ActedSince = false
	}
}

// requireFrontActor validates that playerIdx is legally the next actor.
func (s *State) requireFrontActor(playerIdx int) error {
	if s.phase != PhaseBetting {
		return &IllegalAction{Reason: "not in a betting phase"}
	}
	if len(s.actorQueue) == 0 || s.actorQueue[0] != playerIdx {
		return &IllegalAction{Reason: "not this player's turn to act"}
	}
	return nil
}

// Fold marks playerIdx inactive and out of contention for the pot.
func (s *State) Fold(playerIdx int) error {
	if err := s.requireFrontActor(playerIdx); err != nil {
		return err
	}
	s.players[playerIdx].Active = false
	s.log.Append(&Folding{base: newBase(s.clock, ""), Player: playerIdx})
	s.actorQueue = s.actorQueue[1:]
	if s.countActive() <= 1 {
		s.actorQueue = nil
	}
	return s.advance()
}

// CheckOrCall contributes min(maxBet-ownBet, ownStack).
func (s *State) CheckOrCall(playerIdx int) error {
	if err := s.requireFrontActor(playerIdx); err != nil {
		return err
	}
	p := s.players[playerIdx]
	amount := s.maxBet - p.StreetBet
	if amount > p.Stack {
		amount = p.Stack
	}
	if amount < 0 {
		amount = 0
	}
	p.Stack -= amount
	p.StreetBet += amount
	p.ActedSince = true
	s.log.Append(&CheckingOrCalling{base: newBase(s.clock, ""), Player: playerIdx, Amount: amount})
	s.actorQueue = s.actorQueue[1:]
	return s.advance()
}

// CompleteBettingOrRaisingTo sets playerIdx's street bet to x, validating
// the betting structure's caps and the minimum-raise rule.
func (s *State) CompleteBettingOrRaisingTo(playerIdx, x int) error {
	if err := s.requireFrontActor(playerIdx); err != nil {
		return err
	}
	p := s.players[playerIdx]
	street := s.streets[s.streetIndex]

	switch s.bettingStructure {
	case FixedLimit:
		x = fixedLimitRoundUp(x, street.MinBetOrRaise)
		if street.MaxCompletionCount > 0 && s.raiseCount >= street.MaxCompletionCount && x > s.maxBet {
			return &IllegalAction{Reason: "fixed-limit raise cap reached"}
		}
	case PotLimit:
		cap := potLimitCap(p.StreetBet, s.maxBet, s.potAndBetsTotal())
		if x > cap && x != p.StreetBet+p.Stack {
			return &IllegalAction{Reason: "exceeds pot-limit cap"}
		}
	}

	reopens, err := raiseCheck(x, s.maxBet, street.MinBetOrRaise, p.StreetBet, p.Stack)
	if err != nil {
		return err
	}
	amount := x - p.StreetBet
	if amount > p.Stack {
		return &IllegalAction{Reason: "insufficient stack"}
	}
	p.Stack -= amount
	p.StreetBet = x
	p.ActedSince = true
	s.log.Append(&CompletionBettingOrRaisingTo{base: newBase(s.clock, ""), Player: playerIdx, Amount: x})

	if reopens {
		s.maxBet = x
		s.raiseCount++
		s.lastAggressor = playerIdx
		for _, pl := range s.players {
			pl.ActedSince = false
		}
		p.ActedSince = true
		s.actorQueue = excludeSeat(buildActorQueue((playerIdx+1)%len(s.players), s.players), playerIdx)
	} else {
		s.actorQueue = s.actorQueue[1:]
	}
	return s.advance()
}

func (s *State) potAndBetsTotal() int {
	total := 0
	for _, p := range s.players {
		total += -p.Payoff + p.StreetBet
	}
	return total
}

// StandingPatOrDiscard applies a draw-street decision for playerIdx;
// discards is empty to stand pat. Replacement cards are dealt immediately
// from the deck, since their count is mechanically fixed by the discard
// choice rather than itself discretionary.
func (s *State) StandingPatOrDiscard(playerIdx int, discards []card.Card) error {
	if s.phase != PhaseDealing {
		return &IllegalAction{Reason: "not awaiting a draw decision"}
	}
	found := -1
	for i, idx := range s.discardQueue {
		if idx == playerIdx {
			found = i
			break
		}
	}
	if found == -1 {
		return &IllegalAction{Reason: "player not awaiting a draw decision"}
	}

	p := s.players[playerIdx]
	if len(discards) > 0 {
		for _, d := range discards {
			removed := false
			for i, c := range p.HoleCards {
				if c == d {
					p.HoleCards = append(p.HoleCards[:i], p.HoleCards[i+1:]...)
					p.FaceUp = append(p.FaceUp[:i], p.FaceUp[i+1:]...)
					removed = true
					break
				}
			}
			if !removed {
				return &IllegalAction{Reason: "discarded card not held by player"}
			}
		}
		p.Discarded = append(p.Discarded, discards...)
		replacements, err := s.deck.Draw(len(discards))
		if err != nil {
			return &ExhaustedDeck{Requested: len(discards), Remaining: s.deck.Len()}
		}
		p.HoleCards = append(p.HoleCards, replacements...)
		p.FaceUp = append(p.FaceUp, make([]bool, len(replacements))...)
	}
	s.log.Append(&StandingPatOrDiscarding{base: newBase(s.clock, ""), Player: playerIdx, Cards: discards})

	s.discardQueue = append(s.discardQueue[:found], s.discardQueue[found+1:]...)
	return s.advance()
}

// SelectRunoutCount records a player's choice of how many boards to run
// when all action is finished early with multiple players all-in; the
// count is treated as a pot-division multiplier at showdown.
func (s *State) SelectRunoutCount(playerIdx, count int) error {
	if count < 1 {
		return &IllegalAction{Reason: "runout count must be at least 1"}
	}
	s.runoutCount = count
	var c = count
	s.log.Append(&RunoutCountSelection{base: newBase(s.clock, ""), Player: playerIdx, Count: &c})
	return nil
}

// KillHand rules playerIdx's hand dead, typically for an irregularity
// caught before chips are pushed (an exposed card, a misdeal). The player
// is simply removed from contention; pot arithmetic is unaffected since
// ComputePots already runs against the "active" flag each time it is
// needed.
func (s *State) KillHand(playerIdx int) error {
	if s.phase != PhaseShowdown && s.phase != PhaseChipsPushing {
		return &IllegalAction{Reason: "hand killing only applies at or before showdown resolution"}
	}
	s.players[playerIdx].Active = false
	s.log.Append(&HandKilling{base: newBase(s.clock, ""), Player: playerIdx})
	return nil
}

func (s *State) doShowdown() {
	s.showdownQueue = activeIndices(s.players)
	for _, i := range s.showdownQueue {
		s.log.Append(&HoleCardsShowingOrMucking{base: newBase(s.clock, ""), Player: i, Cards: s.players[i].HoleCards})
	}

	contributions := make([]int, len(s.players))
	antes := make([]int, len(s.players))
	active := make([]bool, len(s.players))
	for i, p := range s.players {
		contributions[i] = p.Contribution()
		antes[i] = s.antes[s.swapIndex(i)]
		active[i] = p.Active
	}
	pots := ComputePots(contributions, antes, active, s.anteTrimming, s.rake)

	runs := s.runoutCount
	if runs < 1 {
		runs = 1
	}
	boards := s.runoutBoardSet(runs)

	var pushes []ChipsPushing
	for potIdx, pot := range pots {
		if len(pot.Eligible) == 0 {
			continue
		}
		if len(pot.Eligible) == 1 {
			if pot.Unraked > 0 {
				pushes = append(pushes, ChipsPushing{
					base:     newBase(s.clock, ""),
					Player:   pot.Eligible[0],
					Amount:   pot.Unraked,
					PotIndex: potIdx,
				})
			}
			continue
		}
		runBase, runRem := s.divmod(pot.Unraked, runs)
		for r := 0; r < runs; r++ {
			runAmount := runBase
			if r == 0 {
				runAmount += runRem
			}
			if runAmount == 0 {
				continue
			}
			pushes = append(pushes, s.splitAcrossHandTypes(pot.Eligible, boards[r], potIdx, r, runAmount)...)
		}
	}
	s.pendingPushes = pushes
}

func (s *State) runoutBoardSet(runs int) [][]card.Card {
	if runs <= 1 {
		return [][]card.Card{s.boards[0]}
	}
	if len(s.runoutBoards) == runs {
		return s.runoutBoards
	}
	remaining := s.deck.Peek(s.deck.Len())
	out := make([][]card.Card, runs)
	for r := 0; r < runs; r++ {
		shuffled := append([]card.Card{}, remaining...)
		for i := len(shuffled) - 1; i > 0; i-- {
			j := s.intn(i + 1)
			shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
		}
		board := append([]card.Card{}, s.boards[0]...)
		need := -len(s.boards[0])
		for _, st := range s.streets {
			need += st.BoardDealCount
		}
		if need < 0 {
			need = 0
		}
		if need > len(shuffled) {
			need = len(shuffled)
		}
		board = append(board, shuffled[:need]...)
		out[r] = board
	}
	s.runoutBoards = out
	return out
}

func (s *State) splitAcrossHandTypes(eligible []int, board []card.Card, potIdx, runIdx, amount int) []ChipsPushing {
	var out []ChipsPushing
	typeBase, typeRem := s.divmod(amount, len(s.handTypes))
	for hIdx, spec := range s.handTypes {
		typeAmount := typeBase
		if hIdx == 0 {
			typeAmount += typeRem
		}
		if typeAmount == 0 {
			continue
		}
		winners := s.bestHandsAmong(eligible, spec, board)
		if len(winners) == 0 {
			continue
		}
		share, rem := s.divmod(typeAmount, len(winners))
		ordered := orderByOpenerDistance(winners, s.opener, len(s.players))
		for i, pIdx := range ordered {
			got := share
			if i < rem {
				got++
			}
			if got == 0 {
				continue
			}
			pot, hType := potIdx, hIdx
			rb := runIdx
			out = append(out, ChipsPushing{
				base:          newBase(s.clock, ""),
				Player:        pIdx,
				Amount:        got,
				PotIndex:      pot,
				BoardIndex:    &rb,
				HandTypeIndex: &hType,
			})
		}
	}
	return out
}

func (s *State) bestHandsAmong(eligible []int, spec hand.Spec, board []card.Card) []int {
	hands := map[int]*hand.Hand{}
	for _, i := range eligible {
		p := s.players[i]
		var h *hand.Hand
		var err error
		if spec.Selection == hand.Variable {
			h, err = hand.New(spec, p.HoleCards)
		} else {
			h, err = hand.BestOf(spec, p.HoleCards, board)
		}
		if err != nil {
			continue
		}
		hands[i] = h
	}
	var best *hand.Hand
	var winners []int
	for i, h := range hands {
		switch {
		case best == nil || h.Compare(best) > 0:
			best = h
			winners = []int{i}
		case h.Compare(best) == 0:
			winners = append(winners, i)
		}
	}
	sort.Ints(winners)
	return winners
}

// excludeSeat drops playerIdx from queue, used when a reopening raise
// rebuilds the full cyclic order: the raiser already acted and only needs
// to act again if someone re-raises over them, which reopens the round
// afresh at that point.
func excludeSeat(queue []int, playerIdx int) []int {
	out := queue[:0:0]
	for _, idx := range queue {
		if idx != playerIdx {
			out = append(out, idx)
		}
	}
	return out
}

func orderByOpenerDistance(winners []int, opener, n int) []int {
	out := append([]int{}, winners...)
	sort.Slice(out, func(a, b int) bool {
		da := ((out[a]-opener)%n + n) % n
		db := ((out[b]-opener)%n + n) % n
		return da < db
	})
	return out
}

func (s *State) doPushChips() {
	for _, push := range s.pendingPushes {
		push := push
		s.players[push.Player].Stack += push.Amount
		s.log.Append(&push)
	}
	s.pendingPushes = nil
}

func (s *State) doPullChips() {
	for i, p := range s.players {
		s.log.Append(&ChipsPulling{base: newBase(s.clock, ""), Player: i, Amount: p.Stack})
	}
}
