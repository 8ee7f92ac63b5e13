package resultant

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

func TestDiscriminant(t *testing.T) {
	for _, test := range []struct {
		name string
		f    *poly.ZPoly
		want *big.Int
	}{
		{"x^3+9x+1", zp(1, 9, 0, 1), big.NewInt(-2943)},
		{"2x^3+x^2-2x+3", zp(3, -2, 1, 2), big.NewInt(-1132)},
	} {
		got := Discriminant(test.f)
		if got.Cmp(test.want) != 0 {
			t.Errorf("disc(%s) = %v, want %v", test.name, got, test.want)
		}
	}
}

func TestDiscriminantDegree5(t *testing.T) {
	// 6x^5 - 7x^4 + 6x^3 - 7x^2 + 6x + 5
	f := zp(5, 6, -7, 6, -7, 6)
	got := Discriminant(f)
	want := new(big.Int).Mul(new(big.Int).Exp(big.NewInt(6), big.NewInt(4), nil), big.NewInt(7601837))
	if got.Cmp(want) != 0 {
		t.Errorf("disc = %v, want %v", got, want)
	}
}

func TestResultantZeroWhenSharedFactor(t *testing.T) {
	// f = (x-1)(x-2), g = (x-1)(x-3): share (x-1)
	f := zp(2, -3, 1)
	g := zp(3, -4, 1)
	got := Resultant(f, g)
	if got.Sign() != 0 {
		t.Errorf("Resultant with shared factor = %v, want 0", got)
	}
}

func TestGCD(t *testing.T) {
	// f = (x-1)(x-2) = x^2-3x+2, g = (x-1)(x-3) = x^2-4x+3
	f := zp(2, -3, 1)
	g := zp(3, -4, 1)
	got := GCD(f, g)
	// gcd should be (x-1), up to sign/scale: check it is degree 1 and divides both
	if got.Deg() != 1 {
		t.Fatalf("GCD degree = %d, want 1", got.Deg())
	}
	for _, p := range []*poly.ZPoly{f, g} {
		_, r := poly.DivRemQ(poly.QFromZPoly(p), poly.QFromZPoly(got))
		if !r.IsZero() {
			t.Errorf("GCD %v does not exactly divide %v (remainder %v)", got, p, r)
		}
	}
}
