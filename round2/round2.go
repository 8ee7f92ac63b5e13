// Package round2 implements one step of Zassenhaus's Round-2 algorithm:
// given an order O of a number field and a prime p with p^2 dividing
// disc(O), it computes an enlargement of O at p. One step need not reach
// the p-maximal order; intbasis repeats it until a step no longer enlarges
// the order.
package round2

import (
	"math/big"

	"github.com/koba-e964/go-number-theory/algnum"
	"github.com/koba-e964/go-number-theory/gauss"
	"github.com/koba-e964/go-number-theory/hnf"
	"github.com/koba-e964/go-number-theory/order"
	"github.com/koba-e964/go-number-theory/poly"
)

// Error is the error type returned and panicked by this package.
type Error string

func (err Error) Error() string { return string(err) }

// ErrNotIntegral is panicked when a structure constant fails to be integral,
// meaning O does not actually span a ring.
const ErrNotIntegral Error = "round2: order is not closed under multiplication"

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

// structureTables computes the multiplication table of o (with θ satisfying
// f) modulo p and modulo p^2.
func structureTables(o *order.Order, f *poly.ZPoly, p *big.Int) (tableP, tableP2 [][][]*big.Int) {
	n := o.Deg()
	p2 := new(big.Int).Mul(p, p)
	basisT := transpose(o.Basis)
	tableP = make([][][]*big.Int, n)
	tableP2 = make([][][]*big.Int, n)
	for i := 0; i < n; i++ {
		tableP[i] = make([][]*big.Int, n)
		tableP2[i] = make([][]*big.Int, n)
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
			row2 := make([]*big.Int, n)
			for k, v := range x {
				if !v.IsInt() {
					panic(ErrNotIntegral)
				}
				row2[k] = new(big.Int).Mod(v.Num(), p2)
				row[k] = new(big.Int).Mod(v.Num(), p)
			}
			tableP[i][j] = row
			tableP2[i][j] = row2
		}
	}
	return tableP, tableP2
}

func mulModP(a, b []*big.Int, table [][][]*big.Int, p *big.Int) []*big.Int {
	n := len(a)
	result := make([]*big.Int, n)
	for k := range result {
		result[k] = big.NewInt(0)
	}
	coef := new(big.Int)
	tmp := new(big.Int)
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			coef.Mul(a[i], b[j])
			for k := 0; k < n; k++ {
				tmp.Mul(coef, table[i][j][k])
				result[k].Add(result[k], tmp)
			}
		}
	}
	for k := range result {
		result[k] = new(big.Int).Mod(result[k], p)
	}
	return result
}

func powModP(a []*big.Int, e *big.Int, table [][][]*big.Int, p *big.Int) []*big.Int {
	ee := new(big.Int).Sub(e, big.NewInt(1))
	prod := append([]*big.Int(nil), a...)
	cur := append([]*big.Int(nil), a...)
	two := big.NewInt(2)
	for ee.Sign() > 0 {
		if ee.Bit(0) == 1 {
			prod = mulModP(prod, cur, table, p)
		}
		cur = mulModP(cur, cur, table, p)
		ee.Div(ee, two)
	}
	return prod
}

// OneStep performs one step of the Round-2 algorithm on order o (with θ
// satisfying f) at prime p, returning the enlarged order and the number of
// times p divides the index [new O : O].
func OneStep(f *poly.ZPoly, o *order.Order, p *big.Int) (*order.Order, int) {
	n := o.Deg()
	pow := big.NewInt(1)
	nBig := big.NewInt(int64(n))
	for pow.Cmp(nBig) < 0 {
		pow.Mul(pow, p)
	}

	tableP, tableP2 := structureTables(o, f, p)
	p2 := new(big.Int).Mul(p, p)

	phiw := make([][]*big.Int, n)
	for i := 0; i < n; i++ {
		e := make([]*big.Int, n)
		for k := range e {
			e[k] = big.NewInt(0)
		}
		e[i] = big.NewInt(1)
		phiw[i] = powModP(e, pow, tableP, p)
	}

	basis := make([][]*big.Int, 2*n)
	for i := 0; i < n; i++ {
		row := make([]*big.Int, n)
		copy(row, phiw[i])
		basis[i] = row
	}
	for i := 0; i < n; i++ {
		row := make([]*big.Int, n)
		for k := range row {
			row[k] = big.NewInt(0)
		}
		row[i] = new(big.Int).Set(p)
		basis[n+i] = row
	}
	kernel := hnf.Kernel(basis)
	iP := hnf.New(kernel).Rows()
	iPCols := make([][]*big.Int, len(iP))
	for i, row := range iP {
		iPCols[i] = row[:n]
	}
	iP = iPCols
	iPLen := len(iP)

	uP := make([][]*big.Int, iPLen)
	for i, row := range iP {
		uP[i] = append([]*big.Int(nil), row...)
	}

	for i := 0; i < iPLen; i++ {
		tmpBasis := make([][]*big.Int, len(uP)+iPLen)
		for j := 0; j < len(uP); j++ {
			tmpBasis[j] = mulModP(iP[i], uP[j], tableP2, p2)
		}
		for k := 0; k < iPLen; k++ {
			row := make([]*big.Int, n)
			for l := 0; l < n; l++ {
				row[l] = new(big.Int).Mul(iP[k][l], p)
			}
			tmpBasis[len(uP)+k] = row
		}
		newUPKernel := hnf.New(hnf.Kernel(tmpBasis)).Rows()
		newUP := make([][]*big.Int, len(newUPKernel))
		for i2, row := range newUPKernel {
			newUP[i2] = row[:len(uP)]
		}

		converted := make([][]*big.Int, len(newUP))
		for i2 := range newUP {
			row := make([]*big.Int, n)
			for k := range row {
				row[k] = big.NewInt(0)
			}
			for j := 0; j < len(uP); j++ {
				for k := 0; k < n; k++ {
					tmp := new(big.Int).Mul(uP[j][k], newUP[i2][j])
					row[k].Add(row[k], tmp)
				}
			}
			converted[i2] = row
		}
		uP = hnf.New(converted).Rows()
	}

	if len(uP) > n {
		panic(Error("round2: ring of multipliers has excess rank"))
	}

	newOBasisInt := make([][]*big.Int, len(uP)+n)
	for i, row := range uP {
		newOBasisInt[i] = append([]*big.Int(nil), row...)
	}
	for i := 0; i < n; i++ {
		row := make([]*big.Int, n)
		for k := range row {
			row[k] = big.NewInt(0)
		}
		row[i] = new(big.Int).Set(p)
		newOBasisInt[len(uP)+i] = row
	}
	uPHNF := hnf.New(newOBasisInt)
	if uPHNF.Dim() != n {
		panic(Error("round2: ring of multipliers does not have full rank"))
	}
	uPRows := uPHNF.Rows()

	newBasis := make([][]*big.Rat, n)
	for i := 0; i < n; i++ {
		row := make([]*big.Rat, n)
		for k := range row {
			row[k] = new(big.Rat)
		}
		for j := 0; j < n; j++ {
			for k := 0; k < n; k++ {
				coef := new(big.Rat).SetFrac(uPRows[i][j], p)
				tmp := new(big.Rat).Mul(coef, o.Basis[j][k])
				row[k].Add(row[k], tmp)
			}
		}
		newBasis[i] = row
	}
	newO := &order.Order{Basis: newBasis}
	idx := order.Index(newO, o)
	howMany := 0
	for idx.Cmp(big.NewInt(1)) > 0 {
		idx = new(big.Int).Div(idx, p)
		howMany++
	}
	return newO, howMany
}
