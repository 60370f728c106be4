package eval

// Category is an informational hand-category label attached to an Entry.
// Equality and ordering between entries use the Entry's index only;
// Category is for display.
type Category int

const (
	CategoryInvalid Category = iota
	HighCard
	Pair
	TwoPair
	ThreeOfAKind
	Straight
	Flush
	FullHouse
	FourOfAKind
	StraightFlush
	// FourCard and below are Badugi categories, ordered weakest to
	// strongest by count of "complete" (distinct-rank, rainbow) cards.
	OneCard
	TwoCard
	ThreeCard
	FourCard
)

var categoryNames = map[Category]string{
	CategoryInvalid: "Invalid",
	HighCard:        "High Card",
	Pair:            "Pair",
	TwoPair:         "Two Pair",
	ThreeOfAKind:    "Three of a Kind",
	Straight:        "Straight",
	Flush:           "Flush",
	FullHouse:       "Full House",
	FourOfAKind:     "Four of a Kind",
	StraightFlush:   "Straight Flush",
	OneCard:         "One Card",
	TwoCard:         "Two Card",
	ThreeCard:       "Three Card",
	FourCard:        "Four Card",
}

func (c Category) String() string {
	if s, ok := categoryNames[c]; ok {
		return s
	}
	return "Unknown"
}

// Shape is a multiplicity pattern such as {1:5} (five distinct ranks) or
// {2:1, 1:3} (one pair).
// Multiplicities is a sorted-descending list of (count, howMany) pairs,
// e.g. TwoPair is [{2,2},{1,1}].
type Shape struct {
	Category       Category
	Multiplicities []Multiplicity
}

// Multiplicity is one (count, occurrences) term of a Shape, e.g. {2, 1}
// means "exactly one rank appears twice".
type Multiplicity struct {
	Count       int
	Occurrences int
}

// CardCount returns how many cards the shape consumes.
func (s Shape) CardCount() int {
	n := 0
	for _, m := range s.Multiplicities {
		n += m.Count * m.Occurrences
	}
	return n
}

// StandardShapes5 is the standard 5-card non-straight, non-flush shape
// catalogue, ordered weakest-to-strongest; the builder emits categories
// in this order.
var StandardShapes5 = []Shape{
	{HighCard, []Multiplicity{{1, 5}}},
	{Pair, []Multiplicity{{2, 1}, {1, 3}}},
	{TwoPair, []Multiplicity{{2, 2}, {1, 1}}},
	{ThreeOfAKind, []Multiplicity{{3, 1}, {1, 2}}},
	{FullHouse, []Multiplicity{{3, 1}, {2, 1}}},
	{FourOfAKind, []Multiplicity{{4, 1}, {1, 1}}},
}

// BadugiShapes is the variable-length (1-4 card) rainbow shape catalogue,
// weakest (OneCard) to strongest (FourCard); every rank in a Badugi hand is
// distinct (get-key rejects repeated suits, and a paired multiset has no
// entry, so get-entry rejects it), so each shape is a simple "n distinct
// ranks" multiplicity.
var BadugiShapes = []Shape{
	{OneCard, []Multiplicity{{1, 1}}},
	{TwoCard, []Multiplicity{{1, 2}}},
	{ThreeCard, []Multiplicity{{1, 3}}},
	{FourCard, []Multiplicity{{1, 4}}},
}
