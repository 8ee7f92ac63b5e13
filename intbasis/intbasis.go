// Package intbasis drives the computation of the maximal order (ring of
// integers) of a number field Q(θ): it starts from the non-monic initial order,
// factors its discriminant, and runs one round2.OneStep per prime whose
// square divides the discriminant until no prime squared remains.
package intbasis

import (
	"math/big"

	"github.com/koba-e964/go-number-theory/order"
	"github.com/koba-e964/go-number-theory/poly"
	"github.com/koba-e964/go-number-theory/round2"
)

// FindIntegralBasis computes Z_K, the maximal order of Q(θ) for θ
// satisfying the (possibly non-monic) minimal polynomial f.
func FindIntegralBasis(f *poly.ZPoly) *order.Order {
	o := order.HNFReduce(order.NonMonicInitialOrder(f))
	disc := order.Discriminant(o, f)
	discAbs := new(big.Int).Abs(disc)
	if discAbs.Cmp(big.NewInt(1)) == 0 {
		return o
	}
	primeFacs := primeFactorize(discAbs)
	for p, e := range primeFacs {
		for e >= 2 {
			newO, howMany := round2.OneStep(f, o, p)
			e -= 2 * howMany
			o = newO
			if howMany == 0 {
				break
			}
		}
	}
	return o
}

// primeFactorize returns the prime factorization of n > 0 as a map from
// prime to exponent, via trial division (n here is a discriminant, never
// astronomically large for the inputs this package targets).
func primeFactorize(n *big.Int) map[*big.Int]int {
	result := map[*big.Int]int{}
	rem := new(big.Int).Set(n)
	d := big.NewInt(2)
	for new(big.Int).Mul(d, d).Cmp(rem) <= 0 {
		e := 0
		for new(big.Int).Mod(rem, d).Sign() == 0 {
			rem.Div(rem, d)
			e++
		}
		if e > 0 {
			result[new(big.Int).Set(d)] = e
		}
		d.Add(d, big.NewInt(1))
	}
	if rem.Cmp(big.NewInt(1)) > 0 {
		result[new(big.Int).Set(rem)] = 1
	}
	return result
}
