package state

// Pot is one pot (main or side), split into its raked and unraked portions,
// plus the seats still eligible to win it. Pots are never stored
// on State; ComputePots derives them fresh from contributions on demand.
type Pot struct {
	Raked    int
	Unraked  int
	Eligible []int
}

// Amount is the pot's total size.
func (p Pot) Amount() int {
	return p.Raked + p.Unraked
}

// RakeFunc splits a pot amount into its raked and unraked portions.
type RakeFunc func(amount int) (raked, unraked int)

// NoRake is a RakeFunc that takes no rake.
func NoRake(amount int) (int, int) {
	return 0, amount
}

// ComputePots derives side pots from each player's total contribution via
// a sweep over distinct contribution levels: distinct positive
// contribution levels become pot boundaries, the amount at each level
// sums every player's clipped contribution, and eligibility is every
// active player whose contribution reaches that level.
//
// When trimAntes is true, each player's ante is excluded from the levels
// used to form side pots; the total ante pool is folded entirely into the
// lowest pot instead, with every ante-poster added to that pot's eligible
// set even if their post-ante contribution is zero: a short-stacked player
// who posted only an ante is never eligible for a side pot built from
// others' further contributions, but still shares in the pot the antes
// themselves fund.
func ComputePots(contributions, antes []int, active []bool, trimAntes bool, rake RakeFunc) []Pot {
	base := contributions
	if trimAntes {
		base = make([]int, len(contributions))
		for i := range contributions {
			base[i] = contributions[i] - antes[i]
		}
	}

	levels := distinctPositiveSorted(base)
	var pots []Pot
	prev := 0
	for _, level := range levels {
		amount := 0
		var eligible []int
		for i, c := range base {
			seg := clip(c, level) - clip(c, prev)
			if seg > 0 {
				amount += seg
			}
			if active[i] && c >= level {
				eligible = append(eligible, i)
			}
		}
		if amount > 0 {
			raked, unraked := rake(amount)
			pots = append(pots, Pot{Raked: raked, Unraked: unraked, Eligible: eligible})
		}
		prev = level
	}

	if trimAntes {
		pots = foldAntesIntoFirstPot(pots, antes, active, rake)
	}
	return pots
}

func foldAntesIntoFirstPot(pots []Pot, antes []int, active []bool, rake RakeFunc) []Pot {
	anteSum := 0
	for _, a := range antes {
		anteSum += a
	}
	if anteSum == 0 {
		return pots
	}
	raked, unraked := rake(anteSum)
	if len(pots) == 0 {
		var eligible []int
		for i, a := range active {
			if a {
				eligible = append(eligible, i)
			}
		}
		return []Pot{{Raked: raked, Unraked: unraked, Eligible: eligible}}
	}
	first := pots[0]
	first.Raked += raked
	first.Unraked += unraked
	for i, ante := range antes {
		if ante > 0 && active[i] && !contains(first.Eligible, i) {
			first.Eligible = append(first.Eligible, i)
		}
	}
	pots[0] = first
	return pots
}

func clip(contribution, level int) int {
	if contribution < level {
		return contribution
	}
	return level
}

func contains(xs []int, x int) bool {
	for _, v := range xs {
		if v == x {
			return true
		}
	}
	return false
}

func distinctPositiveSorted(values []int) []int {
	seen := map[int]bool{}
	var out []int
	for _, v := range values {
		if v > 0 && !seen[v] {
			seen[v] = true
			out = append(out, v)
		}
	}
	for i := 1; i < len(out); i++ {
		for j := i; j > 0 && out[j-1] > out[j]; j-- {
			out[j-1], out[j] = out[j], out[j-1]
		}
	}
	return out
}
