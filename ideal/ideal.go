// Package ideal implements ideal and fractional ideal arithmetic for an
// order of a number field, represented as a Z-lattice spanned by the rows
// of an HNF in the order's basis coordinates.
package ideal

import (
	"math/big"

	"github.com/koba-e964/go-number-theory/gauss"
	"github.com/koba-e964/go-number-theory/hnf"
	"github.com/koba-e964/go-number-theory/multtable"
)

// Error is the error type returned and panicked by this package.
type Error string

func (err Error) Error() string { return string(err) }

// ErrNotInvertible is returned when a matrix required by Inv is singular.
const ErrNotInvertible Error = "ideal: matrix is not invertible"

// Ideal is an integral ideal of an order: the Z-lattice spanned by an
// HNF's rows, in the coordinates of the order's basis. MultTable is shared
// (not owned) and must outlive every Ideal/FracIdeal derived from it.
type Ideal struct {
	H     *hnf.Matrix
	Table *multtable.Table
}

// New builds an ideal from an already-computed HNF.
func New(h *hnf.Matrix, table *multtable.Table) *Ideal {
	return &Ideal{H: h, Table: table}
}

// Principal returns the principal ideal (elem) generated by elem
// (coordinates in the order's basis).
func Principal(elem []*big.Int, table *multtable.Table) *Ideal {
	deg := table.Deg()
	rows := make([][]*big.Int, deg)
	for i := 0; i < deg; i++ {
		wi := make([]*big.Int, deg)
		for j := range wi {
			wi[j] = big.NewInt(0)
		}
		wi[i] = big.NewInt(1)
		rows[i] = table.Mul(elem, wi)
	}
	return &Ideal{H: hnf.New(rows), Table: table}
}

// Norm returns the norm of the ideal: the determinant of its HNF.
func (id *Ideal) Norm() *big.Int { return id.H.Determinant() }

// Deg returns the degree of the ambient order.
func (id *Ideal) Deg() int { return id.Table.Deg() }

// CapZ returns the positive generator a of the ideal's intersection with Z.
func (id *Ideal) CapZ() *big.Int {
	return new(big.Int).Set(id.H.Rows()[0][0])
}

// Add returns the sum ideal id + other.
func (id *Ideal) Add(other *Ideal) *Ideal {
	rows := make([][]*big.Int, 0, id.H.Dim()+other.H.Dim())
	rows = append(rows, id.H.Rows()...)
	rows = append(rows, other.H.Rows()...)
	return &Ideal{H: hnf.New(rows), Table: id.Table}
}

// Mul returns the product ideal id * other.
func (id *Ideal) Mul(other *Ideal) *Ideal {
	a := id.H.Rows()
	b := other.H.Rows()
	rows := make([][]*big.Int, 0, len(a)*len(b))
	for _, v := range a {
		for _, w := range b {
			rows = append(rows, id.Table.Mul(v, w))
		}
	}
	return &Ideal{H: hnf.New(rows), Table: id.Table}
}

// Equal reports whether id and other have identical HNFs.
func (id *Ideal) Equal(other *Ideal) bool {
	ra, rb := id.H.Rows(), other.H.Rows()
	if len(ra) != len(rb) {
		return false
	}
	for i := range ra {
		if len(ra[i]) != len(rb[i]) {
			return false
		}
		for j := range ra[i] {
			if ra[i][j].Cmp(rb[i][j]) != 0 {
				return false
			}
		}
	}
	return true
}

// Contains reports whether num (coordinates in the order's basis) lies in
// the ideal, by checking that id + (num) == id.
func (id *Ideal) Contains(num []*big.Int) bool {
	numIdeal := Principal(num, id.Table)
	return id.Add(numIdeal).Equal(id)
}

// mulInvFromRightExact computes a * b^-1 over Z, asserting the result is
// integral. b must be invertible.
func mulInvFromRightExact(a, b [][]*big.Int) ([][]*big.Int, error) {
	n := len(a)
	bRat := make([][]*big.Rat, n)
	for i := range bRat {
		bRat[i] = make([]*big.Rat, n)
		for j := range bRat[i] {
			bRat[i][j] = new(big.Rat).SetInt(b[i][j])
		}
	}
	invB, err := gauss.Inverse(bRat)
	if err != nil {
		return nil, ErrNotInvertible
	}
	ans := make([][]*big.Int, n)
	for i := 0; i < n; i++ {
		ans[i] = make([]*big.Int, n)
		for j := 0; j < n; j++ {
			sum := new(big.Rat)
			for k := 0; k < n; k++ {
				tmp := new(big.Rat).Mul(invB[k][j], new(big.Rat).SetInt(a[i][k]))
				sum.Add(sum, tmp)
			}
			if !sum.IsInt() {
				panic("ideal: inexact division in mulInvFromRightExact")
			}
			ans[i][j] = sum.Num()
		}
	}
	return ans, nil
}

// FracIdeal is a fractional ideal (1/Denom)*Numer.
type FracIdeal struct {
	Denom *big.Int
	Numer *Ideal
}

// NewFrac builds a fractional ideal.
func NewFrac(denom *big.Int, numer *Ideal) *FracIdeal {
	return &FracIdeal{Denom: denom, Numer: numer}
}

// InvDiff computes the inverse of the different of the order whose
// multiplication table is table: the fractional ideal d^-1 such that
// Tr(d^-1 * Z_K) ⊆ Z.
func InvDiff(table *multtable.Table) *FracIdeal {
	n := table.Deg()
	trMat := table.TraceMatrix()
	d, err := gauss.Inverse(trMat)
	if err != nil {
		panic(ErrNotInvertible)
	}
	denomLCM := big.NewInt(1)
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			g := new(big.Int).GCD(nil, nil, denomLCM, d[i][j].Denom())
			denomLCM.Mul(denomLCM, new(big.Int).Div(d[i][j].Denom(), g))
		}
	}
	intMat := make([][]*big.Int, n)
	for i := 0; i < n; i++ {
		intMat[i] = make([]*big.Int, n)
		for j := 0; j < n; j++ {
			scaled := new(big.Rat).Mul(d[i][j], new(big.Rat).SetInt(denomLCM))
			intMat[i][j] = scaled.Num()
		}
	}
	return &FracIdeal{Denom: denomLCM, Numer: &Ideal{H: hnf.New(intMat), Table: table}}
}

// Inv computes the inverse of id given the inverse of the different of the
// ambient order's ring of integers, following the two-element
// representation trick of Cohen §4.8.
func (id *Ideal) Inv(invDiff *FracIdeal) *FracIdeal {
	n := id.Deg()
	a := id.CapZ()
	c := id.Mul(invDiff.Numer)

	ab := make([][]*big.Int, n)
	for i := 0; i < n; i++ {
		ab[i] = make([]*big.Int, n)
		for j := 0; j < n; j++ {
			ab[i][j] = new(big.Int).Mul(a, invDiff.Numer.H.Rows()[i][j])
		}
	}
	cRows := c.H.Rows()
	d, err := mulInvFromRightExact(ab, cRows)
	if err != nil {
		panic(ErrNotInvertible)
	}
	trd := make([][]*big.Int, n)
	for i := 0; i < n; i++ {
		trd[i] = make([]*big.Int, n)
		for j := 0; j < n; j++ {
			trd[i][j] = d[j][i]
		}
	}
	return &FracIdeal{Denom: a, Numer: &Ideal{H: hnf.New(trd), Table: id.Table}}
}
