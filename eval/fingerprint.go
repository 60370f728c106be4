// Package eval builds, per poker variant, an immutable lookup from a
// canonical fingerprint of a multiset of ranks (plus a suited flag) to a
// dense hand-strength index and category label.
package eval

import (
	"math/big"

	"github.com/pokerkit/engine/card"
)

// primes assigns each of the 13 standard ranks a distinct small prime, the
// classic Cactus-Kev-style encoding also used by paulhankin/cpoker's Card
// representation. The fingerprint of a multiset of ranks is the product of
// primes raised to their multiplicities; by the fundamental theorem of
// arithmetic that product is unique per multiset.
var primes = map[card.Rank]int64{
	card.Two: 2, card.Three: 3, card.Four: 5, card.Five: 7, card.Six: 11,
	card.Seven: 13, card.Eight: 17, card.Nine: 19, card.Ten: 23,
	card.Jack: 29, card.Queen: 31, card.King: 37, card.Ace: 41,
}

// Fingerprint computes the prime-product fingerprint of a multiset of
// ranks. Products can exceed 64 bits for multisets of twelve or more cards
// (41^12 > 2^64), so the result is
// an arbitrary-precision integer via math/big rather than a hand-rolled
// 128-bit type.
func Fingerprint(ranks []card.Rank) *big.Int {
	product := big.NewInt(1)
	prime := new(big.Int)
	for _, r := range ranks {
		p, ok := primes[r]
		if !ok {
			continue
		}
		prime.SetInt64(p)
		product.Mul(product, prime)
	}
	return product
}

// Key is the composite lookup key: a rank fingerprint plus a suited flag.
// Lookups are plain immutable maps keyed by Key's String form.
type Key struct {
	Fingerprint *big.Int
	Suited      bool
}

// String renders the key as a stable map key / debug string.
func (k Key) String() string {
	s := k.Fingerprint.String()
	if k.Suited {
		return s + ":s"
	}
	return s + ":u"
}
