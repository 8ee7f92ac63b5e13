// Package order implements Z-orders of a number field K = Q(θ): full-rank
// Z-submodules of K that are also subrings. An order is represented as its
// basis, one row per basis element, coordinates in the power basis of θ.
package order

import (
	"math/big"

	"github.com/koba-e964/go-number-theory/algnum"
	"github.com/koba-e964/go-number-theory/gauss"
	"github.com/koba-e964/go-number-theory/hnf"
	"github.com/koba-e964/go-number-theory/poly"
	"github.com/koba-e964/go-number-theory/resultant"
)

// Error is the error type returned and panicked by this package.
type Error string

func (err Error) Error() string { return string(err) }

// ErrNotInteger is panicked when a value required to be an integer by
// invariant (an index, a discriminant) turns out not to be.
const ErrNotInteger Error = "order: expected an integer value"

// Order is a Z-order of K, given by its basis: Basis[i] is the i-th basis
// element's coordinates in the power basis (1, θ, ..., θ^(n-1)).
type Order struct {
	Basis [][]*big.Rat
}

// Deg returns the degree (rank) of o.
func (o *Order) Deg() int { return len(o.Basis) }

// TrivialOrder returns the power-basis order Z[θ] for a monic θ of
// degree deg.
func TrivialOrder(deg int) *Order {
	basis := make([][]*big.Rat, deg)
	for i := range basis {
		basis[i] = make([]*big.Rat, deg)
		for j := range basis[i] {
			if i == j {
				basis[i][j] = big.NewRat(1, 1)
			} else {
				basis[i][j] = new(big.Rat)
			}
		}
	}
	return &Order{Basis: basis}
}

// NonMonicInitialOrder returns the initial order Z[θ] ∩ Z[1/θ], valid even
// when f's leading coefficient is not 1. Row 0 is (1,0,...,0); row i
// (1 ≤ i < n) has, at positions 1..i, the coefficients c_(n-i+1), ..., c_n
// of f (c_n the leading coefficient), and zero elsewhere.
func NonMonicInitialOrder(f *poly.ZPoly) *Order {
	n := f.Deg()
	basis := make([][]*big.Rat, n)
	basis[0] = make([]*big.Rat, n)
	basis[0][0] = big.NewRat(1, 1)
	for j := 1; j < n; j++ {
		basis[0][j] = new(big.Rat)
	}
	for i := 1; i < n; i++ {
		row := make([]*big.Rat, n)
		for j := range row {
			row[j] = new(big.Rat)
		}
		for k := 1; k <= i; k++ {
			row[k] = new(big.Rat).SetInt(f.Coeff(n - i + k))
		}
		basis[i] = row
	}
	return &Order{Basis: basis}
}

// SinglyGen returns the order Z[θ] generated by powers of θ (reduced modulo
// its, possibly non-monic, minimal polynomial f): row i is θ^i.
func SinglyGen(f *poly.ZPoly) *Order {
	n := f.Deg()
	theta := algnum.New(f)
	basis := make([][]*big.Rat, n)
	for i := 0; i < n; i++ {
		basis[i] = theta.Pow(int64(i)).Coeffs()
	}
	return &Order{Basis: basis}
}

func determinant(basis [][]*big.Rat) *big.Rat {
	return gauss.Determinant(basis)
}

// Index returns (o1 : o2) = |det(basis(o2))/det(basis(o1))| for a suborder
// o2 of o1. Panics if the result is not a positive integer.
func Index(o1, o2 *Order) *big.Int {
	ratio := new(big.Rat).Quo(determinant(o2.Basis), determinant(o1.Basis))
	ratio.Abs(ratio)
	if !ratio.IsInt() {
		panic(ErrNotInteger)
	}
	return ratio.Num()
}

// Discriminant computes disc(f)*det(basis)^2/lc(f)^(2(n-1)), the
// discriminant of o given that θ satisfies f. Panics if the result is not
// an integer.
func Discriminant(o *Order, f *poly.ZPoly) *big.Int {
	n := f.Deg()
	discF := resultant.Discriminant(f)
	det := determinant(o.Basis)
	val := new(big.Rat).SetInt(discF)
	val.Mul(val, det)
	val.Mul(val, det)
	lc := f.Lead()
	denom := new(big.Int).Exp(lc, big.NewInt(int64(2*(n-1))), nil)
	val.Quo(val, new(big.Rat).SetInt(denom))
	if !val.IsInt() {
		panic(ErrNotInteger)
	}
	return val.Num()
}

// lcmDenominators returns the lcm of the denominators appearing in basis.
func lcmDenominators(basis [][]*big.Rat) *big.Int {
	l := big.NewInt(1)
	for _, row := range basis {
		for _, v := range row {
			d := v.Denom()
			g := new(big.Int).GCD(nil, nil, l, d)
			l.Mul(l, new(big.Int).Div(d, g))
		}
	}
	return l
}

func scaleToInt(basis [][]*big.Rat, l *big.Int) [][]*big.Int {
	out := make([][]*big.Int, len(basis))
	lr := new(big.Rat).SetInt(l)
	for i, row := range basis {
		out[i] = make([]*big.Int, len(row))
		for j, v := range row {
			scaled := new(big.Rat).Mul(v, lr)
			if !scaled.IsInt() {
				panic(ErrNotInteger)
			}
			out[i][j] = scaled.Num()
		}
	}
	return out
}

func unscale(rows [][]*big.Int, l *big.Int) [][]*big.Rat {
	out := make([][]*big.Rat, len(rows))
	for i, row := range rows {
		out[i] = make([]*big.Rat, len(row))
		for j, v := range row {
			out[i][j] = new(big.Rat).SetFrac(v, l)
		}
	}
	return out
}

// HNFReduce scales o's basis to a common integer denominator, takes the
// HNF, and divides back, producing a canonical basis for the same order.
func HNFReduce(o *Order) *Order {
	l := lcmDenominators(o.Basis)
	intBasis := scaleToInt(o.Basis, l)
	h := hnf.New(intBasis)
	return &Order{Basis: unscale(h.Rows(), l)}
}

// Union returns the smallest order containing both o1 and o2: lift both
// bases to a common denominator L, take the HNF of the stacked integer
// matrices, and divide back by L.
func Union(o1, o2 *Order) *Order {
	l1 := lcmDenominators(o1.Basis)
	l2 := lcmDenominators(o2.Basis)
	l := new(big.Int).Div(new(big.Int).Mul(l1, l2), new(big.Int).GCD(nil, nil, l1, l2))
	rows := make([][]*big.Int, 0, o1.Deg()+o2.Deg())
	rows = append(rows, scaleToInt(o1.Basis, l)...)
	rows = append(rows, scaleToInt(o2.Basis, l)...)
	h := hnf.New(rows)
	return &Order{Basis: unscale(h.Rows(), l)}
}
