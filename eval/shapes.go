package eval

import "github.com/pokerkit/engine/card"

// combinationsColex returns every k-element subset of pool (which must
// already be sorted weakest-to-strongest), enumerated in ascending colex
// order: subsets compare first by their largest member, then by their
// second-largest, and so on. That is exactly the comparison order poker
// hands use for kicker-by-kicker and pair-by-pair resolution, so the same
// routine builds both a Shape's "paired ranks" group and its "kicker" group.
func combinationsColex(pool []card.Rank, k int) [][]card.Rank {
	n := len(pool)
	if k == 0 {
		return [][]card.Rank{{}}
	}
	if k > n {
		return nil
	}
	var out [][]card.Rank
	for last := k - 1; last < n; last++ {
		prefixes := combinationsColex(pool[:last], k-1)
		for _, prefix := range prefixes {
			combo := make([]card.Rank, 0, k)
			combo = append(combo, prefix...)
			combo = append(combo, pool[last])
			out = append(out, combo)
		}
	}
	return out
}

// poolMinus returns pool with every rank in used removed, preserving order.
func poolMinus(pool []card.Rank, used []card.Rank) []card.Rank {
	skip := make(map[card.Rank]bool, len(used))
	for _, r := range used {
		skip[r] = true
	}
	out := make([]card.Rank, 0, len(pool)-len(used))
	for _, r := range pool {
		if !skip[r] {
			out = append(out, r)
		}
	}
	return out
}

// enumerateShape returns every rank multiset matching shape's multiplicity
// pattern, drawn from pool (weakest-to-strongest order), in ascending
// overall strength order: the most significant multiplicity group (first
// in shape.Multiplicities) varies slowest.
func enumerateShape(pool []card.Rank, mults []Multiplicity) [][]card.Rank {
	if len(mults) == 0 {
		return [][]card.Rank{{}}
	}
	head, rest := mults[0], mults[1:]
	var out [][]card.Rank
	for _, combo := range combinationsColex(pool, head.Occurrences) {
		remaining := poolMinus(pool, combo)
		tails := enumerateShape(remaining, rest)
		for _, tail := range tails {
			ms := make([]card.Rank, 0, head.Count*len(combo)+len(tail))
			for _, r := range combo {
				for i := 0; i < head.Count; i++ {
					ms = append(ms, r)
				}
			}
			ms = append(ms, tail...)
			out = append(out, ms)
		}
	}
	return out
}

// straightMultisets returns the straight windows for order (each count
// ranks wide), wheel first, in ascending strength order.
func straightMultisets(order card.Order, count int) [][]card.Rank {
	var result [][]card.Rank
	ranks := order.Ranks()
	if len(ranks) > count {
		if wheel := order.Wheel(count); wheel != nil {
			result = append(result, wheel)
		}
	}
	result = append(result, order.Windows(count)...)
	return result
}
