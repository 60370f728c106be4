package eval

import (
	"fmt"

	"github.com/pokerkit/engine/card"
)

// Entry is a dense hand-strength rank plus its informational category
// label. Greater Index means a stronger hand; equality and ordering
// between Entries use Index only.
type Entry struct {
	Index int
	Label Category
}

// ErrInvalidHand is returned by lookup operations that cannot resolve an
// Entry for the given cards: a bad rank/suit count, a non-rainbow Badugi
// hand, or a fingerprint with no registered entry.
type ErrInvalidHand struct {
	Reason string
}

func (e *ErrInvalidHand) Error() string {
	return fmt.Sprintf("invalid hand: %s", e.Reason)
}

// Lookup is an immutable mapping from (rank-fingerprint, suited) to Entry,
// built once per variant and safe to share for read access across
// goroutines.
type Lookup struct {
	Name        string
	Order       card.Order
	RainbowOnly bool
	entries     map[string]Entry
	size        int
}

// N returns the number of distinct strengths (entries' indices span [0,N)).
func (l *Lookup) N() int {
	return l.size
}

// GetKey parses no cards itself (the caller already has card.Cards); it
// computes the fingerprint of their ranks and the suited flag (true iff
// every card shares a suit). Badugi-style lookups (RainbowOnly) fail with
// "must be rainbow" if any suit repeats.
func (l *Lookup) GetKey(cards []card.Card) (Key, error) {
	if len(cards) == 0 {
		return Key{}, &ErrInvalidHand{Reason: "no cards"}
	}
	if l.RainbowOnly {
		seen := make(map[card.Suit]bool, len(cards))
		for _, c := range cards {
			if seen[c.Suit] {
				return Key{}, &ErrInvalidHand{Reason: "must be rainbow"}
			}
			seen[c.Suit] = true
		}
	}
	ranks := make([]card.Rank, len(cards))
	suited := true
	for i, c := range cards {
		ranks[i] = c.Rank
		if c.Suit != cards[0].Suit {
			suited = false
		}
	}
	return Key{Fingerprint: Fingerprint(ranks), Suited: suited}, nil
}

// GetEntry resolves the Entry for cards, or fails with "invalid hand".
func (l *Lookup) GetEntry(cards []card.Card) (Entry, error) {
	key, err := l.GetKey(cards)
	if err != nil {
		return Entry{}, err
	}
	e, ok := l.entries[key.String()]
	if !ok {
		return Entry{}, &ErrInvalidHand{Reason: "invalid hand"}
	}
	return e, nil
}

// tieGroup is one builder insertion: every key in keys shares the same
// final Index because they describe indistinguishable hand strengths (a
// multiset registered at both suited flags in a no-flush variant).
type tieGroup struct {
	label Category
	keys  []Key
}

// Builder assembles a Lookup by accepting categories in weakest-to-
// strongest order, then densely re-indexing all accumulated entries in a
// single Build pass to a contiguous integer range that preserves their
// relative order.
type Builder struct {
	name        string
	order       card.Order
	rainbowOnly bool
	groups      []tieGroup
}

// NewBuilder starts a lookup builder bound to order.
func NewBuilder(name string, order card.Order) *Builder {
	return &Builder{name: name, order: order}
}

// Rainbow marks the lookup under construction as Badugi-style: GetKey will
// reject any hand with a repeated suit.
func (b *Builder) Rainbow() *Builder {
	b.rainbowOnly = true
	return b
}

// AddMultisets registers one rank multiset per entry in multisets, each
// under every suited flag in suitedFlags (tied to a single shared index),
// all labelled category. Call in weakest-to-strongest order across the
// whole lookup.
func (b *Builder) AddMultisets(category Category, multisets [][]card.Rank, suitedFlags []bool) {
	for _, ms := range multisets {
		keys := make([]Key, len(suitedFlags))
		fp := Fingerprint(ms)
		for i, suited := range suitedFlags {
			keys[i] = Key{Fingerprint: fp, Suited: suited}
		}
		b.groups = append(b.groups, tieGroup{label: category, keys: keys})
	}
}

// AddShape5 enumerates a 5-card Shape over pool and registers every
// resulting multiset, weakest to strongest, under suitedFlags.
func (b *Builder) AddShape5(shape Shape, pool []card.Rank, suitedFlags []bool) {
	multisets := enumerateShape(pool, shape.Multiplicities)
	b.AddMultisets(shape.Category, multisets, suitedFlags)
}

// AddStraights registers straight windows (wheel first) for the given
// card count, under suitedFlags (StraightFlush uses suited=true, plain
// Straight uses suited=false).
func (b *Builder) AddStraights(category Category, count int, suitedFlags []bool) {
	b.AddMultisets(category, straightMultisets(b.order, count), suitedFlags)
}

// AddBadugiShapes enumerates the variable-length rainbow shapes (1-4
// distinct ranks), weakest to strongest, drawn from pool. Within a shape,
// ascending colex order runs from the best badugi to the worst, so it is
// registered in reverse. Each entry is registered under both suited flags:
// a one-card hand is suited, a rainbow hand of two or more cards is not.
func (b *Builder) AddBadugiShapes(pool []card.Rank) {
	for _, shape := range BadugiShapes {
		n := shape.Multiplicities[0].Occurrences
		combos := combinationsColex(pool, n)
		for i := len(combos) - 1; i >= 0; i-- {
			b.AddMultisets(shape.Category, [][]card.Rank{combos[i]}, []bool{true, false})
		}
	}
}

// Build densely re-indexes every accumulated tie group (preserving the
// insertion order established by the Add* calls) and returns the finished
// Lookup.
func (b *Builder) Build() *Lookup {
	entries := make(map[string]Entry, len(b.groups)*2)
	for i, g := range b.groups {
		entry := Entry{Index: i, Label: g.label}
		for _, k := range g.keys {
			entries[k.String()] = entry
		}
	}
	return &Lookup{
		Name:        b.name,
		Order:       b.order,
		RainbowOnly: b.rainbowOnly,
		entries:     entries,
		size:        len(b.groups),
	}
}
