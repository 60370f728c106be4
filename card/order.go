package card

// Order is a named, fixed sequence of ranks used by a lookup to determine
// straight adjacency (including the wheel) and low-hand ordering.
type Order int

const (
	// StandardHigh ranks Two (low) through Ace (high), the default order
	// for high-hand games.
	StandardHigh Order = iota
	// ShortDeck is StandardHigh restricted to Six-through-Ace (36-card
	// decks); Flush ranks above FullHouse under this order's games.
	ShortDeck
	// RegularLow ranks Ace (low) through King (high): the Ace-to-Five low
	// ordering. The lookups built on it form no straights or flushes, so
	// those never count against a low hand.
	RegularLow
	// EightOrBetter is the low order used by Omaha/Stud Hi-Lo qualifiers:
	// Ace low, ranks Eight and under only.
	EightOrBetter
	// KuhnPoker is the 3-card toy-game order: Jack, Queen, King.
	KuhnPoker
	// Royal is the order for a 20-card Royal deck: Ten through Ace.
	Royal
)

func (o Order) String() string {
	switch o {
	case StandardHigh:
		return "StandardHigh"
	case ShortDeck:
		return "ShortDeck"
	case RegularLow:
		return "RegularLow"
	case EightOrBetter:
		return "EightOrBetter"
	case KuhnPoker:
		return "KuhnPoker"
	case Royal:
		return "Royal"
	default:
		return "Unknown"
	}
}

// Ranks returns the order's ranks from weakest to strongest. The slice is
// shared and must not be mutated by callers.
func (o Order) Ranks() []Rank {
	switch o {
	case StandardHigh:
		return standardHighRanks
	case RegularLow:
		return regularLowRanks
	case ShortDeck:
		return shortDeckRanks
	case EightOrBetter:
		return eightOrBetterRanks
	case KuhnPoker:
		return kuhnRanks
	case Royal:
		return royalRanks
	default:
		return nil
	}
}

var (
	standardHighRanks  = []Rank{Two, Three, Four, Five, Six, Seven, Eight, Nine, Ten, Jack, Queen, King, Ace}
	shortDeckRanks     = []Rank{Six, Seven, Eight, Nine, Ten, Jack, Queen, King, Ace}
	regularLowRanks    = []Rank{Ace, Two, Three, Four, Five, Six, Seven, Eight, Nine, Ten, Jack, Queen, King}
	eightOrBetterRanks = []Rank{Ace, Two, Three, Four, Five, Six, Seven, Eight}
	kuhnRanks          = []Rank{Jack, Queen, King}
	royalRanks         = []Rank{Ten, Jack, Queen, King, Ace}
)

// Wheel returns the low-straight ("wheel") ranks for the order: the last
// rank in the order followed by the first count-1 ranks, so the wheel
// always registers as the weakest straight. It returns nil if the order
// has fewer than count ranks.
func (o Order) Wheel(count int) []Rank {
	ranks := o.Ranks()
	if len(ranks) < count {
		return nil
	}
	wheel := make([]Rank, 0, count)
	wheel = append(wheel, ranks[len(ranks)-1])
	wheel = append(wheel, ranks[:count-1]...)
	return wheel
}

// Windows returns every contiguous window of count ranks in the order (the
// non-wheel straights), from weakest to strongest.
func (o Order) Windows(count int) [][]Rank {
	ranks := o.Ranks()
	if len(ranks) < count {
		return nil
	}
	var windows [][]Rank
	for i := 0; i+count <= len(ranks); i++ {
		w := make([]Rank, count)
		copy(w, ranks[i:i+count])
		windows = append(windows, w)
	}
	return windows
}
