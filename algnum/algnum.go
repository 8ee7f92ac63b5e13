// Package algnum represents elements of a number field K = Q(θ), θ a root
// of a fixed integer minimal polynomial, as a rational polynomial in θ of
// degree less than deg(min_poly).
package algnum

import (
	"math/big"

	"github.com/koba-e964/go-number-theory/poly"
)

// AlgebraicNumber is an element θ' = expr(θ) of K, where θ is a root of
// MinPoly. Expr must have degree < deg(MinPoly). Operations between two
// AlgebraicNumbers assume they share the same MinPoly.
type AlgebraicNumber struct {
	MinPoly *poly.ZPoly
	Expr    *poly.QPoly
}

// New returns θ itself, as an element of Q(θ) with minimal polynomial
// minPoly.
func New(minPoly *poly.ZPoly) *AlgebraicNumber {
	return &AlgebraicNumber{
		MinPoly: minPoly,
		Expr:    poly.NewQPoly([]*big.Rat{big.NewRat(0, 1), big.NewRat(1, 1)}),
	}
}

// FromRat returns the constant x as an element of Q(θ).
func FromRat(minPoly *poly.ZPoly, x *big.Rat) *AlgebraicNumber {
	return &AlgebraicNumber{MinPoly: minPoly, Expr: poly.NewQPoly([]*big.Rat{x})}
}

// FromInt returns the constant integer x as an element of Q(θ).
func FromInt(minPoly *poly.ZPoly, x int64) *AlgebraicNumber {
	return FromRat(minPoly, big.NewRat(x, 1))
}

// Deg returns the degree of the minimal polynomial.
func (a *AlgebraicNumber) Deg() int { return a.MinPoly.Deg() }

// Coeffs returns the coefficients of Expr, zero-padded to length Deg().
func (a *AlgebraicNumber) Coeffs() []*big.Rat {
	n := a.Deg()
	out := make([]*big.Rat, n)
	for i := 0; i < n; i++ {
		out[i] = a.Expr.Coeff(i)
	}
	return out
}

// Add returns a + b.
func (a *AlgebraicNumber) Add(b *AlgebraicNumber) *AlgebraicNumber {
	return &AlgebraicNumber{MinPoly: a.MinPoly, Expr: a.Expr.Add(b.Expr)}
}

// Sub returns a - b.
func (a *AlgebraicNumber) Sub(b *AlgebraicNumber) *AlgebraicNumber {
	return &AlgebraicNumber{MinPoly: a.MinPoly, Expr: a.Expr.Sub(b.Expr)}
}

// mulWithMod computes (a*b) mod c (c assumed monic is not required; c's
// leading coefficient is divided out symbolically).
func mulWithMod(a, b *poly.QPoly, c *poly.ZPoly) *poly.QPoly {
	if a.IsZero() || b.IsZero() {
		return poly.NewQPoly(nil)
	}
	n := c.Deg()
	aDeg, bDeg := a.Deg(), b.Deg()
	result := make([]*big.Rat, n)
	for i := range result {
		result[i] = new(big.Rat)
	}
	cur := make([]*big.Rat, n+1)
	for i := range cur {
		cur[i] = new(big.Rat)
	}
	for i := 0; i <= bDeg; i++ {
		cur[i] = b.Coeff(i)
	}
	lc := new(big.Rat).SetInt(c.Coeff(n))
	for i := 0; i <= aDeg; i++ {
		ai := a.Coeff(i)
		for j := 0; j < n; j++ {
			tmp := new(big.Rat).Mul(ai, cur[j])
			result[j].Add(result[j], tmp)
		}
		if i < aDeg {
			// cur = cur * x
			for j := n - 1; j >= 0; j-- {
				cur[j], cur[j+1] = cur[j+1], cur[j]
			}
			// cur = cur mod c
			coef := new(big.Rat).Quo(cur[n], lc)
			for j := 0; j < n; j++ {
				cj := new(big.Rat).SetInt(c.Coeff(j))
				tmp := new(big.Rat).Mul(coef, cj)
				cur[j].Sub(cur[j], tmp)
			}
			cur[n] = new(big.Rat)
		}
	}
	return poly.NewQPoly(result)
}

// Mul returns a * b, reduced modulo the shared minimal polynomial.
func (a *AlgebraicNumber) Mul(b *AlgebraicNumber) *AlgebraicNumber {
	return &AlgebraicNumber{MinPoly: a.MinPoly, Expr: mulWithMod(a.Expr, b.Expr, a.MinPoly)}
}

// Pow returns a^e via repeated squaring. e must be non-negative.
func (a *AlgebraicNumber) Pow(e int64) *AlgebraicNumber {
	cur := a
	prod := FromInt(a.MinPoly, 1)
	for e > 0 {
		if e%2 == 1 {
			prod = prod.Mul(cur)
		}
		cur = cur.Mul(cur)
		e /= 2
	}
	return prod
}

// Equal reports whether a and b have identical expressions (assuming a
// shared minimal polynomial).
func (a *AlgebraicNumber) Equal(b *AlgebraicNumber) bool {
	return a.Expr.Equal(b.Expr)
}
