// Package hnf computes the Hermite Normal Form of an integer matrix together
// with the unimodular transformation that produces it and a basis of its
// kernel, following Algorithm 2.4.4 of Cohen's "A Course in Computational
// Algebraic Number Theory".
//
// Following the convention used throughout this module, an HNF is
// represented as a lower-triangular matrix built with row operations: it is
// a sequence of row vectors (basis vectors of the lattice it spans), not a
// sequence of columns.
package hnf

import (
	"math/big"
)

// Error is the error type returned by this package.
type Error string

func (err Error) Error() string { return string(err) }

// ErrRowLength is panicked when input rows have inconsistent lengths.
const ErrRowLength Error = "hnf: inconsistent row length"

// ErrNotInImage is the error for a target vector that does not lie in the
// Z-span of an HNF's rows. No function in this package returns it: the
// package has no lattice-membership test.
const ErrNotInImage Error = "hnf: vector is not in the lattice"

// Matrix is a matrix guaranteed to be in HNF: lower-triangular, produced
// entirely by row operations on the original input.
type Matrix struct {
	rows [][]*big.Int
}

// Rows returns the HNF's rows. The returned slices must not be mutated.
func (h *Matrix) Rows() [][]*big.Int { return h.rows }

// Dim returns the number of rows.
func (h *Matrix) Dim() int { return len(h.rows) }

// Deg returns the number of columns, or 0 if there are no rows.
func (h *Matrix) Deg() int {
	if len(h.rows) == 0 {
		return 0
	}
	return len(h.rows[0])
}

// Determinant returns the determinant of the HNF's square part, or 0 if it
// is not square.
func (h *Matrix) Determinant() *big.Int {
	prod := big.NewInt(1)
	if h.Dim() != h.Deg() {
		return big.NewInt(0)
	}
	for i := range h.rows {
		prod.Mul(prod, h.rows[i][i])
	}
	return prod
}

func cloneMatrix(a [][]*big.Int) [][]*big.Int {
	out := make([][]*big.Int, len(a))
	for i, row := range a {
		out[i] = make([]*big.Int, len(row))
		for j, v := range row {
			out[i][j] = new(big.Int).Set(v)
		}
	}
	return out
}

// floorDiv computes floor(a/b), b nonzero.
func floorDiv(a, b *big.Int) *big.Int {
	if b.Sign() < 0 {
		return floorDiv(new(big.Int).Neg(a), new(big.Int).Neg(b))
	}
	q, r := new(big.Int), new(big.Int)
	q.QuoRem(a, b, r)
	if r.Sign() < 0 {
		q.Sub(q, big.NewInt(1))
	}
	return q
}

// New computes the HNF of a.
func New(a [][]*big.Int) *Matrix {
	h, _, _ := WithU(a)
	return h
}

// Kernel returns a basis (row vectors) of {u : u·a = 0}.
func Kernel(a [][]*big.Int) [][]*big.Int {
	_, u, k := WithU(a)
	return u[:k]
}

// WithU computes the HNF h of the n*m matrix a, together with an n*n
// unimodular matrix u such that h (padded with the kernel rows dropped)
// satisfies h = u[k:]·a, and the count k of rows of u spanning the kernel
// of a (so u[:k] is a basis of the kernel).
func WithU(a [][]*big.Int) (h *Matrix, u [][]*big.Int, k int) {
	if len(a) == 0 {
		return &Matrix{rows: nil}, nil, 0
	}
	rowLen := len(a[0])
	for _, row := range a {
		if len(row) != rowLen {
			panic(ErrRowLength)
		}
	}
	mat := cloneMatrix(a)
	n := len(mat)
	m := rowLen
	k = n - 1
	u = make([][]*big.Int, n)
	for i := range u {
		u[i] = make([]*big.Int, n)
		for j := range u[i] {
			u[i][j] = big.NewInt(0)
		}
		u[i][i] = big.NewInt(1)
	}
	for i := m - 1; i >= 0; i-- {
		for {
			allZero := true
			for j := 0; j < k; j++ {
				if mat[j][i].Sign() != 0 {
					allZero = false
					break
				}
			}
			if allZero {
				if mat[k][i].Sign() < 0 {
					negateRow(mat[k])
					negateRow(u[k])
				}
				break
			}
			ind := -1
			for j := 0; j < k; j++ {
				if mat[j][i].Sign() != 0 {
					ind = j
					break
				}
			}
			best := ind
			bestAbs := new(big.Int).Abs(mat[ind][i])
			for j := ind + 1; j <= k; j++ {
				if mat[j][i].Sign() != 0 {
					absV := new(big.Int).Abs(mat[j][i])
					if absV.Cmp(bestAbs) < 0 {
						bestAbs = absV
						best = j
					}
				}
			}
			mat[best], mat[k] = mat[k], mat[best]
			u[best], u[k] = u[k], u[best]

			b := mat[k][i]
			for j := 0; j < k; j++ {
				q := floorDiv(mat[j][i], b)
				if q.Sign() == 0 {
					continue
				}
				subScaledRow(mat[j], mat[k], q, m)
				subScaledRow(u[j], u[k], q, n)
			}
		}
		if mat[k][i].Sign() == 0 {
			k++
		} else {
			b := mat[k][i]
			for j := k + 1; j < n; j++ {
				q := floorDiv(mat[j][i], b)
				if q.Sign() == 0 {
					continue
				}
				subScaledRow(mat[j], mat[k], q, m)
				subScaledRow(u[j], u[k], q, n)
			}
		}
		if k == 0 || i == 0 {
			break
		}
		k--
	}
	return &Matrix{rows: mat[k:]}, u, k
}

func negateRow(row []*big.Int) {
	for i := range row {
		row[i].Neg(row[i])
	}
}

// subScaledRow performs dst -= q*src element-wise over the first width
// entries.
func subScaledRow(dst, src []*big.Int, q *big.Int, width int) {
	tmp := new(big.Int)
	for v := 0; v < width; v++ {
		tmp.Mul(src[v], q)
		dst[v].Sub(dst[v], tmp)
	}
}

// Union computes the HNF of the lattice spanned by the union of a's and
// b's rows.
func Union(a, b *Matrix) *Matrix {
	if a.Deg() != 0 && b.Deg() != 0 && a.Deg() != b.Deg() {
		panic(ErrRowLength)
	}
	rows := make([][]*big.Int, 0, a.Dim()+b.Dim())
	rows = append(rows, a.rows...)
	rows = append(rows, b.rows...)
	return New(rows)
}
