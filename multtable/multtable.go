// Package multtable computes and evaluates the multiplication table of an
// order: the structure constants table[i][j][k] such that w_i * w_j =
// sum_k table[i][j][k] * w_k, for a basis w_0, ..., w_(n-1).
package multtable

import (
	"math/big"

	"github.com/koba-e964/go-number-theory/algnum"
	"github.com/koba-e964/go-number-theory/gauss"
	"github.com/koba-e964/go-number-theory/order"
	"github.com/koba-e964/go-number-theory/poly"
)

// Error is the error type returned and panicked by this package.
type Error string

func (err Error) Error() string { return string(err) }

// ErrNotIntegral is panicked when a product of basis elements fails to have
// integer coordinates in the order's basis, meaning the caller's basis does
// not actually span a ring (an invariant violation, not a recoverable
// condition).
const ErrNotIntegral Error = "multtable: order is not closed under multiplication"

// ErrNotInvertible is panicked by Inverse when the given element has zero
// norm, i.e. is a zero divisor (or zero itself) and has no inverse in the
// field of fractions.
const ErrNotInvertible Error = "multtable: element has zero norm and is not invertible"

// Table is the multiplication table of an order.
type Table struct {
	n int
	t [][][]*big.Int
}

// NewTable builds a Table directly from precomputed structure constants.
func NewTable(t [][][]*big.Int) *Table {
	return &Table{n: len(t), t: t}
}

// transpose returns the transpose of an n*n matrix.
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

// FromOrder computes the multiplication table of o, an order of Q(θ) with
// θ satisfying f.
func FromOrder(o *order.Order, f *poly.ZPoly) *Table {
	n := o.Deg()
	basisT := transpose(o.Basis)
	t := make([][][]*big.Int, n)
	for i := 0; i < n; i++ {
		t[i] = make([][]*big.Int, n)
		wi := &algnum.AlgebraicNumber{MinPoly: f, Expr: poly.NewQPoly(o.Basis[i])}
		for j := 0; j < n; j++ {
			wj := &algnum.AlgebraicNumber{MinPoly: f, Expr: poly.NewQPoly(o.Basis[j])}
			prod := wi.Mul(wj)
			coords := prod.Coeffs()
			x, err := gauss.Solve(basisT, coords)
			if err != nil {
				panic(ErrNotIntegral)
			}
			row := make([]*big.Int, n)
			for k, v := range x {
				if !v.IsInt() {
					panic(ErrNotIntegral)
				}
				row[k] = v.Num()
			}
			t[i][j] = row
		}
	}
	return &Table{n: n, t: t}
}

// Deg returns the rank of the order this table was built from.
func (tb *Table) Deg() int { return tb.n }

// Mul multiplies the elements with coordinate vectors a and b (in the
// order's basis), returning their product's coordinates.
func (tb *Table) Mul(a, b []*big.Int) []*big.Int {
	n := tb.n
	result := make([]*big.Int, n)
	for k := range result {
		result[k] = big.NewInt(0)
	}
	prod := new(big.Int)
	tmp := new(big.Int)
	for i := 0; i < n; i++ {
		if a[i].Sign() == 0 {
			continue
		}
		for j := 0; j < n; j++ {
			if b[j].Sign() == 0 {
				continue
			}
			prod.Mul(a[i], b[j])
			for k := 0; k < n; k++ {
				tmp.Mul(prod, tb.t[i][j][k])
				result[k].Add(result[k], tmp)
			}
		}
	}
	return result
}

// Trace returns the trace of the element with coordinates a.
func (tb *Table) Trace(a []*big.Int) *big.Int {
	n := tb.n
	sum := big.NewInt(0)
	tmp := new(big.Int)
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			tmp.Mul(a[i], tb.t[j][i][j])
			sum.Add(sum, tmp)
		}
	}
	return sum
}

// TraceMatrix returns the n*n matrix whose (i,j) entry is the trace of
// w_i*w_j.
func (tb *Table) TraceMatrix() [][]*big.Rat {
	n := tb.n
	out := make([][]*big.Rat, n)
	for i := 0; i < n; i++ {
		out[i] = make([]*big.Rat, n)
		for j := 0; j < n; j++ {
			out[i][j] = new(big.Rat).SetInt(tb.Trace(tb.t[i][j]))
		}
	}
	return out
}

// mulMatrix returns the n*n matrix of "multiplication by a": column j holds
// the coordinates of a*w_j, so that this matrix times the coordinate vector
// of any element x gives the coordinates of a*x.
func (tb *Table) mulMatrix(a []*big.Int) [][]*big.Rat {
	n := tb.n
	cols := make([][]*big.Int, n)
	for j := 0; j < n; j++ {
		e := make([]*big.Int, n)
		for k := range e {
			e[k] = big.NewInt(0)
		}
		e[j] = big.NewInt(1)
		cols[j] = tb.Mul(a, e)
	}
	out := make([][]*big.Rat, n)
	for i := 0; i < n; i++ {
		out[i] = make([]*big.Rat, n)
		for j := 0; j < n; j++ {
			out[i][j] = new(big.Rat).SetInt(cols[j][i])
		}
	}
	return out
}

// Norm returns the norm of the element with coordinates a: the determinant
// of the matrix of multiplication by a.
func (tb *Table) Norm(a []*big.Int) *big.Int {
	d := gauss.Determinant(tb.mulMatrix(a))
	if !d.IsInt() {
		panic(ErrNotIntegral)
	}
	return d.Num()
}

// identity solves for the coordinate vector of the multiplicative identity
// 1, using only the structure constants (no basis index is assumed to
// represent 1, since order.HNFReduce and order.Union may reorder or
// recombine basis rows). It finds e with e*w_0 = w_0; since the ring has no
// zero divisors and w_0 != 0, e is then the two-sided identity for every
// element, not just w_0.
func (tb *Table) identity() []*big.Int {
	n := tb.n
	m := make([][]*big.Rat, n)
	for k := 0; k < n; k++ {
		m[k] = make([]*big.Rat, n)
		for i := 0; i < n; i++ {
			m[k][i] = new(big.Rat).SetInt(tb.t[i][0][k])
		}
	}
	target := make([]*big.Rat, n)
	for k := range target {
		if k == 0 {
			target[k] = big.NewRat(1, 1)
		} else {
			target[k] = new(big.Rat)
		}
	}
	x, err := gauss.Solve(m, target)
	if err != nil {
		panic(ErrNotInvertible)
	}
	out := make([]*big.Int, n)
	for i, v := range x {
		if !v.IsInt() {
			panic(ErrNotIntegral)
		}
		out[i] = v.Num()
	}
	return out
}

// Inverse returns (beta, d) such that a*beta = d*1, where d = |Norm(a)|, for
// the element with coordinates a. It panics with ErrNotInvertible if a has
// zero norm.
func (tb *Table) Inverse(a []*big.Int) (beta []*big.Int, d *big.Int) {
	n := tb.n
	nrm := tb.Norm(a)
	if nrm.Sign() == 0 {
		panic(ErrNotInvertible)
	}
	one := tb.identity()
	oneRat := make([]*big.Rat, n)
	for i, v := range one {
		oneRat[i] = new(big.Rat).SetInt(v)
	}
	x, err := gauss.Solve(tb.mulMatrix(a), oneRat)
	if err != nil {
		panic(ErrNotInvertible)
	}
	d = new(big.Int).Abs(nrm)
	beta = make([]*big.Int, n)
	for i, v := range x {
		scaled := new(big.Rat).Mul(v, new(big.Rat).SetInt(nrm))
		if !scaled.IsInt() {
			panic(ErrNotIntegral)
		}
		beta[i] = scaled.Num()
		if nrm.Sign() < 0 {
			beta[i].Neg(beta[i])
		}
	}
	return beta, d
}
