package hnf

import (
	"math/big"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func row(cs ...int64) []*big.Int {
	out := make([]*big.Int, len(cs))
	for i, c := range cs {
		out[i] = big.NewInt(c)
	}
	return out
}

var bigIntComparer = cmp.Comparer(func(x, y *big.Int) bool { return x.Cmp(y) == 0 })

func matEqual(t *testing.T, got [][]*big.Int, want [][]*big.Int) {
	t.Helper()
	if diff := cmp.Diff(want, got, bigIntComparer); diff != "" {
		t.Errorf("matrix mismatch (-want +got):\n%s", diff)
	}
}

func TestHNFReturnsNonnegativeMatrix(t *testing.T) {
	a := [][]*big.Int{row(3, 1), row(1, 1)}
	h := New(a)
	matEqual(t, h.Rows(), [][]*big.Int{row(2, 0), row(1, 1)})
}

func TestHNFWorksWithZeroRows(t *testing.T) {
	a := [][]*big.Int{row(0, 0), row(3, 1), row(1, 1)}
	h := New(a)
	matEqual(t, h.Rows(), [][]*big.Int{row(2, 0), row(1, 1)})
}

func TestHNFWorksWithZeroColumns(t *testing.T) {
	a := [][]*big.Int{row(2, 0, 1, 0), row(1, 1, 0, 0)}
	h := New(a)
	matEqual(t, h.Rows(), [][]*big.Int{row(1, 1, 0, 0), row(2, 0, 1, 0)})
}

func TestHNFWithUSatisfiesHEqualsUA(t *testing.T) {
	a := [][]*big.Int{row(3, 1), row(1, 1), row(2, 2)}
	h, u, k := WithU(a)
	n := len(a)
	for i := k; i < n; i++ {
		// row i of u times a should equal row i-k of h.
		got := make([]*big.Int, len(a[0]))
		for c := range got {
			got[c] = big.NewInt(0)
		}
		for j := 0; j < n; j++ {
			for c := range got {
				tmp := new(big.Int).Mul(u[i][j], a[j][c])
				got[c].Add(got[c], tmp)
			}
		}
		want := h.Rows()[i-k]
		for c := range want {
			if got[c].Cmp(want[c]) != 0 {
				t.Errorf("U*A row %d = %v, want %v", i, got, want)
			}
		}
	}
}
