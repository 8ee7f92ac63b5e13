// Package gauss implements Gauss-Jordan elimination over Q (*big.Rat),
// used by order and multtable to express elements in terms of a basis and
// to invert basis-change matrices.
package gauss

import "math/big"

// Error is the error type returned by this package.
type Error string

func (err Error) Error() string { return string(err) }

// ErrMatrixNotInvertible is returned when a linear system has no unique
// solution.
const ErrMatrixNotInvertible Error = "gauss: matrix is not invertible"

// ErrShape is panicked on dimension mismatches.
const ErrShape Error = "gauss: dimension mismatch"

func cloneRows(a [][]*big.Rat) [][]*big.Rat {
	out := make([][]*big.Rat, len(a))
	for i, row := range a {
		out[i] = make([]*big.Rat, len(row))
		for j, v := range row {
			out[i][j] = new(big.Rat).Set(v)
		}
	}
	return out
}

// Solve solves the n*n linear system a*x = b for x, returning
// ErrMatrixNotInvertible if a is singular.
func Solve(a [][]*big.Rat, b []*big.Rat) ([]*big.Rat, error) {
	n := len(a)
	if len(b) != n {
		panic(ErrShape)
	}
	mat := cloneRows(a)
	rhs := make([]*big.Rat, n)
	for i, v := range b {
		rhs[i] = new(big.Rat).Set(v)
	}
	for col := 0; col < n; col++ {
		pivot := -1
		for row := col; row < n; row++ {
			if mat[row][col].Sign() != 0 {
				pivot = row
				break
			}
		}
		if pivot == -1 {
			return nil, ErrMatrixNotInvertible
		}
		mat[col], mat[pivot] = mat[pivot], mat[col]
		rhs[col], rhs[pivot] = rhs[pivot], rhs[col]

		inv := new(big.Rat).Inv(mat[col][col])
		for j := 0; j < n; j++ {
			mat[col][j].Mul(mat[col][j], inv)
		}
		rhs[col].Mul(rhs[col], inv)

		for row := 0; row < n; row++ {
			if row == col {
				continue
			}
			factor := new(big.Rat).Set(mat[row][col])
			if factor.Sign() == 0 {
				continue
			}
			for j := 0; j < n; j++ {
				tmp := new(big.Rat).Mul(factor, mat[col][j])
				mat[row][j].Sub(mat[row][j], tmp)
			}
			tmp := new(big.Rat).Mul(factor, rhs[col])
			rhs[row].Sub(rhs[row], tmp)
		}
	}
	return rhs, nil
}

// Inverse computes the inverse of the n*n matrix a, returning
// ErrMatrixNotInvertible if a is singular.
func Inverse(a [][]*big.Rat) ([][]*big.Rat, error) {
	n := len(a)
	cols := make([][]*big.Rat, n)
	for i := 0; i < n; i++ {
		e := make([]*big.Rat, n)
		for j := range e {
			if i == j {
				e[j] = big.NewRat(1, 1)
			} else {
				e[j] = new(big.Rat)
			}
		}
		col, err := Solve(a, e)
		if err != nil {
			return nil, err
		}
		cols[i] = col
	}
	out := make([][]*big.Rat, n)
	for i := range out {
		out[i] = make([]*big.Rat, n)
		for j := range out[i] {
			out[i][j] = cols[j][i]
		}
	}
	return out, nil
}

// MulMatVec multiplies the m*n matrix a by the n-vector x.
func MulMatVec(a [][]*big.Rat, x []*big.Rat) []*big.Rat {
	out := make([]*big.Rat, len(a))
	for i, row := range a {
		if len(row) != len(x) {
			panic(ErrShape)
		}
		sum := new(big.Rat)
		tmp := new(big.Rat)
		for j, v := range row {
			tmp.Mul(v, x[j])
			sum.Add(sum, tmp)
		}
		out[i] = sum
	}
	return out
}

// Determinant computes the determinant of the n*n matrix a via Gauss-Jordan
// elimination with partial pivoting.
func Determinant(a [][]*big.Rat) *big.Rat {
	n := len(a)
	mat := cloneRows(a)
	det := big.NewRat(1, 1)
	for col := 0; col < n; col++ {
		pivot := -1
		for row := col; row < n; row++ {
			if mat[row][col].Sign() != 0 {
				pivot = row
				break
			}
		}
		if pivot == -1 {
			return new(big.Rat)
		}
		if pivot != col {
			mat[col], mat[pivot] = mat[pivot], mat[col]
			det.Neg(det)
		}
		det.Mul(det, mat[col][col])
		inv := new(big.Rat).Inv(mat[col][col])
		for row := col + 1; row < n; row++ {
			factor := new(big.Rat).Mul(mat[row][col], inv)
			if factor.Sign() == 0 {
				continue
			}
			for j := col; j < n; j++ {
				tmp := new(big.Rat).Mul(factor, mat[col][j])
				mat[row][j].Sub(mat[row][j], tmp)
			}
		}
	}
	return det
}
