package bigutil

import (
	"math/big"
	"testing"
)

func b(n int64) *big.Int { return big.NewInt(n) }

func TestExtGCD(t *testing.T) {
	for _, test := range []struct{ a, bb int64 }{
		{240, 46},
		{17, 5},
		{-12, 8},
		{0, 7},
		{7, 0},
	} {
		g, x, y := ExtGCD(b(test.a), b(test.bb))
		// check g == x*a + y*bb
		got := new(big.Int).Add(new(big.Int).Mul(x, b(test.a)), new(big.Int).Mul(y, b(test.bb)))
		if got.Cmp(g) != 0 {
			t.Errorf("ExtGCD(%d,%d): %d*%d + %d*%d = %d, want %d", test.a, test.bb, x, test.a, y, test.bb, got, g)
		}
	}
}

func TestInv(t *testing.T) {
	inv, err := Inv(b(3), b(11))
	if err != nil {
		t.Fatalf("Inv(3,11): %v", err)
	}
	if new(big.Int).Mod(new(big.Int).Mul(inv, b(3)), b(11)).Cmp(b(1)) != 0 {
		t.Errorf("Inv(3,11) = %d is not a valid inverse", inv)
	}
}

func TestInvNotCoprime(t *testing.T) {
	_, err := Inv(b(4), b(6))
	if err != ErrNotCoprime {
		t.Errorf("Inv(4,6) error = %v, want ErrNotCoprime", err)
	}
}

func TestMod(t *testing.T) {
	for _, test := range []struct{ x, m, want int64 }{
		{-1, 5, 4},
		{7, 5, 2},
		{0, 5, 0},
		{-11, 5, 4},
	} {
		got := Mod(b(test.x), b(test.m))
		if got.Cmp(b(test.want)) != 0 {
			t.Errorf("Mod(%d,%d) = %d, want %d", test.x, test.m, got, test.want)
		}
	}
}
