package algnum

import (
	"math/big"
	"testing"

	"github.com/koba-e964/go-number-theory/poly"
)

func zp(cs ...int64) *poly.ZPoly {
	raw := make([]*big.Int, len(cs))
	for i, c := range cs {
		raw[i] = big.NewInt(c)
	}
	return poly.NewZPoly(raw)
}

func TestAlgebraicMul(t *testing.T) {
	// theta^3 + theta + 1 = 0. eta = theta^2.
	// eta^3 + 2*eta^2 + eta - 1 should equal 0.
	f := zp(1, 1, 0, 1)
	theta := New(f)
	eta := theta.Mul(theta)
	result := eta.Mul(eta).Mul(eta).
		Add(eta.Mul(eta).Mul(FromInt(f, 2))).
		Add(eta).
		Sub(FromInt(f, 1))
	want := FromInt(f, 0)
	if !result.Equal(want) {
		t.Errorf("eta^3+2eta^2+eta-1 = %v, want 0", result.Coeffs())
	}
}

func TestAlgebraicPow(t *testing.T) {
	f := zp(1, 1, 0, 1) // x^3+x+1
	theta := New(f)
	got := theta.Pow(2)
	want := theta.Mul(theta)
	if !got.Equal(want) {
		t.Errorf("theta^2 = %v, want %v", got.Coeffs(), want.Coeffs())
	}
}
