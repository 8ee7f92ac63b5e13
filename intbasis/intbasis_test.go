package intbasis

import (
	"math/big"
	"testing"

	"github.com/koba-e964/go-number-theory/order"
	"github.com/koba-e964/go-number-theory/poly"
)

func zp(cs ...int64) *poly.ZPoly {
	raw := make([]*big.Int, len(cs))
	for i, c := range cs {
		raw[i] = big.NewInt(c)
	}
	return poly.NewZPoly(raw)
}

func discOf(t *testing.T, f *poly.ZPoly, want int64) {
	t.Helper()
	o := FindIntegralBasis(f)
	got := order.Discriminant(o, f)
	if got.Cmp(big.NewInt(want)) != 0 {
		t.Errorf("discriminant = %v, want %d", got, want)
	}
}

func TestFindIntegralBasisGaussianIntegers(t *testing.T) {
	// theta = -1+6i, min poly x^2+2x+37; Z_K = Z[i], disc = -4.
	discOf(t, zp(37, 2, 1), -4)
}

func TestFindIntegralBasisSeq3(t *testing.T) {
	discOf(t, zp(4, 3, 2, 1), -200)
}

func TestFindIntegralBasisSeq4(t *testing.T) {
	discOf(t, zp(5, 4, 3, 2, 1), 10800)
}
