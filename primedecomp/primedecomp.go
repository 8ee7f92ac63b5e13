// Package primedecomp decomposes a rational prime p into prime ideals of
// the maximal order Z_K of Q(θ), following Dedekind's theorem: when p does
// not divide the index [Z_K : Z[θ]], the factorization of the minimal
// polynomial mod p mirrors the prime ideal factorization of (p) exactly.
package primedecomp

import (
	"math/big"
	"math/rand"

	"github.com/koba-e964/go-number-theory/gauss"
	"github.com/koba-e964/go-number-theory/ideal"
	"github.com/koba-e964/go-number-theory/multtable"
	"github.com/koba-e964/go-number-theory/order"
	"github.com/koba-e964/go-number-theory/poly"
	"github.com/koba-e964/go-number-theory/polymod"
)

// Error is the error type returned and panicked by this package.
type Error string

func (err Error) Error() string { return string(err) }

// ErrIndexDivisible is panicked when p divides [Z_K : Z[θ]], a case this
// simple Dedekind-criterion-based algorithm does not handle (the
// Buchmann-Lenstra algorithm would be needed instead).
const ErrIndexDivisible Error = "primedecomp: p divides [Z_K:Z[theta]]; the simple algorithm does not apply"

// PrimeFactor is a prime ideal lying above p with its ramification index.
type PrimeFactor struct {
	Ideal *ideal.Ideal
	E     int
}

func transpose(m [][]*big.Rat) [][]*big.Rat {
	n := len(m)
	out := make([][]*big.Rat, n)
	for i := range out {
		out[i] = make([]*big.Rat, n)
		for j := range out[i] {
			out[i][j] = m[j][i]
		}
	}
	return out
}

// toZBasis expresses expr (coordinates in the power basis of θ) in terms of
// intBasis's own basis, asserting the result is integral.
func toZBasis(intBasis *order.Order, expr *poly.QPoly) []*big.Int {
	n := intBasis.Deg()
	coords := make([]*big.Rat, n)
	for i := 0; i < n; i++ {
		coords[i] = expr.Coeff(i)
	}
	basisT := transpose(intBasis.Basis)
	x, err := gauss.Solve(basisT, coords)
	if err != nil {
		panic(Error("primedecomp: element is not in the span of the integral basis"))
	}
	out := make([]*big.Int, n)
	for i, v := range x {
		if !v.IsInt() {
			panic(Error("primedecomp: element is not integral in the given basis"))
		}
		out[i] = v.Num()
	}
	return out
}

// Decompose factors the ideal (p) of Z_K into prime ideals, given the
// minimal polynomial f of θ, the maximal order intBasis, and its
// multiplication table.
func Decompose(f *poly.ZPoly, intBasis *order.Order, table *multtable.Table, p *big.Int, rng *rand.Rand) []PrimeFactor {
	n := f.Deg()
	zTheta := order.TrivialOrder(n)
	idx := order.Index(intBasis, zTheta)
	if new(big.Int).Mod(idx, p).Sign() == 0 {
		panic(ErrIndexDivisible)
	}

	pInt := int(p.Int64())
	fModP := polymod.Reduce(f, p)
	sfParts := polymod.SquareFree(fModP, p, pInt)

	pElem := make([]*big.Int, n)
	for i := range pElem {
		pElem[i] = big.NewInt(0)
	}
	pElem[0] = new(big.Int).Set(p)
	pIdeal := ideal.Principal(pElem, table)

	var result []PrimeFactor
	for _, part := range sfParts {
		irreducibles := polymod.Factorize(part.Poly, p, rng)
		for _, irr := range irreducibles {
			var elem []*big.Int
			if irr.Deg() >= n {
				elem = make([]*big.Int, n)
				for i := range elem {
					elem[i] = big.NewInt(0)
				}
			} else {
				raw := make([]*big.Rat, irr.Deg()+1)
				for i := 0; i <= irr.Deg(); i++ {
					raw[i] = new(big.Rat).SetInt(irr.Coeff(i))
				}
				elem = toZBasis(intBasis, poly.NewQPoly(raw))
			}
			ancilla := ideal.Principal(elem, table)
			primeIdeal := ancilla.Add(pIdeal)
			result = append(result, PrimeFactor{Ideal: primeIdeal, E: part.Mult})
		}
	}
	return result
}
