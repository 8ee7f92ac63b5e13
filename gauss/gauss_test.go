package gauss

import (
	"math/big"
	"testing"
)

func rat(n int64) *big.Rat { return big.NewRat(n, 1) }

func TestSolve(t *testing.T) {
	a := [][]*big.Rat{{rat(1), rat(2)}, {rat(3), rat(4)}}
	b := []*big.Rat{rat(5), rat(11)}
	x, err := Solve(a, b)
	if err != nil {
		t.Fatalf("Solve: %v", err)
	}
	// 1*x0+2*x1=5, 3*x0+4*x1=11 => x0=1,x1=2
	want := []*big.Rat{rat(1), rat(2)}
	for i := range want {
		if x[i].Cmp(want[i]) != 0 {
			t.Errorf("x[%d] = %v, want %v", i, x[i], want[i])
		}
	}
}

func TestSolveSingular(t *testing.T) {
	a := [][]*big.Rat{{rat(1), rat(2)}, {rat(2), rat(4)}}
	b := []*big.Rat{rat(5), rat(10)}
	_, err := Solve(a, b)
	if err != ErrMatrixNotInvertible {
		t.Errorf("Solve singular: err = %v, want ErrMatrixNotInvertible", err)
	}
}

func TestInverse(t *testing.T) {
	a := [][]*big.Rat{{rat(1), rat(2)}, {rat(3), rat(4)}}
	inv, err := Inverse(a)
	if err != nil {
		t.Fatalf("Inverse: %v", err)
	}
	// check a*inv = identity
	for i := 0; i < 2; i++ {
		row := MulMatVec(a, inv[i]) // wrong orientation check below corrected
		_ = row
	}
	prod := make([][]*big.Rat, 2)
	for i := 0; i < 2; i++ {
		prod[i] = make([]*big.Rat, 2)
		for j := 0; j < 2; j++ {
			sum := new(big.Rat)
			for k := 0; k < 2; k++ {
				tmp := new(big.Rat).Mul(a[i][k], inv[k][j])
				sum.Add(sum, tmp)
			}
			prod[i][j] = sum
		}
	}
	for i := 0; i < 2; i++ {
		for j := 0; j < 2; j++ {
			want := int64(0)
			if i == j {
				want = 1
			}
			if prod[i][j].Cmp(rat(want)) != 0 {
				t.Errorf("A*Ainv[%d][%d] = %v, want %d", i, j, prod[i][j], want)
			}
		}
	}
}

func TestDeterminant(t *testing.T) {
	a := [][]*big.Rat{{rat(1), rat(2)}, {rat(3), rat(4)}}
	d := Determinant(a)
	if d.Cmp(rat(-2)) != 0 {
		t.Errorf("det = %v, want -2", d)
	}
}
