package polymod

import (
	"math/big"
	"math/rand"
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

func TestSquareFreeSquare(t *testing.T) {
	// (x+1)^2 = x^2+2x+1 mod 5
	f := zp(1, 2, 1)
	factors := SquareFree(f, big.NewInt(5), 5)
	if len(factors) != 1 {
		t.Fatalf("want 1 factor, got %d: %v", len(factors), factors)
	}
	if factors[0].Mult != 2 || !factors[0].Poly.Equal(zp(1, 1)) {
		t.Errorf("got factor %v mult %d, want (x+1) mult 2", factors[0].Poly, factors[0].Mult)
	}
}

func TestSquareFreeCube(t *testing.T) {
	// (x+1)^3 = x^3+3x^2+3x+1 mod 5
	f := zp(1, 3, 3, 1)
	factors := SquareFree(f, big.NewInt(5), 5)
	if len(factors) != 1 || factors[0].Mult != 3 {
		t.Fatalf("got %v, want (x+1) mult 3", factors)
	}
}

func TestSquareFreeDistinctFactors(t *testing.T) {
	// x^2+3x+2 = (x+1)(x+2) mod 5, square-free.
	f := zp(2, 3, 1)
	factors := SquareFree(f, big.NewInt(5), 5)
	if len(factors) != 1 || factors[0].Mult != 1 || factors[0].Poly.Deg() != 2 {
		t.Fatalf("got %v, want a single square-free degree-2 factor", factors)
	}
}

func TestFindLinearFactorsXSquaredPlus1(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	// x^2+1 mod 5 has roots 2 and 3.
	f := zp(1, 0, 1)
	roots := FindLinearFactors(f, big.NewInt(5), rng)
	seen := map[int64]bool{}
	for _, r := range roots {
		seen[r.Int64()] = true
	}
	if !seen[2] || !seen[3] || len(roots) != 2 {
		t.Errorf("roots = %v, want {2,3}", roots)
	}
}

func TestFindLinearFactorsNoRoots(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	// x^2+1 mod 3 is irreducible (no roots).
	f := zp(1, 0, 1)
	roots := FindLinearFactors(f, big.NewInt(3), rng)
	if len(roots) != 0 {
		t.Errorf("roots = %v, want none", roots)
	}
}

func TestFactorizeRecombinesToOriginal(t *testing.T) {
	rng := rand.New(rand.NewSource(2))
	p := big.NewInt(7)
	// (x+1)(x+2)(x+3) mod 7, square-free distinct-degree-1 factors.
	f := zp(1, 1).Mul(zp(2, 1)).Mul(zp(3, 1))
	f = Reduce(f, p)
	factors := Factorize(f, p, rng)
	if len(factors) != 3 {
		t.Fatalf("got %d factors, want 3: %v", len(factors), factors)
	}
	prod := poly.ZFromMono(big.NewInt(1))
	for _, fac := range factors {
		prod = Reduce(prod.Mul(fac), p)
	}
	if !prod.Equal(f) {
		t.Errorf("product of factors = %v, want %v", prod, f)
	}
}

func TestDivRemAndGCD(t *testing.T) {
	p := big.NewInt(5)
	a := zp(1, 0, 1) // x^2+1
	b := zp(1, 1)    // x+1
	q, r := DivRem(a, b, p)
	// x^2+1 = (x+1)(x-1) + 2, i.e. (x-1) mod 5 = (x+4)
	if !q.Equal(zp(4, 1)) {
		t.Errorf("quotient = %v, want x+4", q)
	}
	if !r.Equal(zp(2)) {
		t.Errorf("remainder = %v, want 2", r)
	}
	g := GCD(a, b, p)
	if g.Deg() != 0 {
		t.Errorf("gcd(x^2+1, x+1) mod 5 = %v, want a unit (x=-1 is not a root of x^2+1 mod 5)", g)
	}
}

func TestHenselLiftAllRecoversOriginal(t *testing.T) {
	p := big.NewInt(3)
	// f = (x+1)(x+4)(x+6) = x^3+11x^2+34x+24, distinct roots mod 3: -1=2,-4=2... pick coprime set instead.
	// Use (x-1)(x-2)(x-3) = x^3-6x^2+11x-6, roots 1,2,3 distinct mod p=5.
	p = big.NewInt(5)
	f1 := zp(-1, 1) // x-1
	f2 := zp(-2, 1) // x-2
	f3 := zp(-3, 1) // x-3
	c := f1.Mul(f2).Mul(f3)
	lifted := HenselLiftAll(c, []*poly.ZPoly{Reduce(f1, p), Reduce(f2, p), Reduce(f3, p)}, p, 3)
	if len(lifted) != 3 {
		t.Fatalf("got %d lifted factors, want 3", len(lifted))
	}
	modulus := big.NewInt(125)
	prod := poly.ZFromMono(big.NewInt(1))
	for _, fac := range lifted {
		prod = Reduce(prod.Mul(fac), modulus)
	}
	want := Reduce(c, modulus)
	if !prod.Equal(want) {
		t.Errorf("product of lifted factors mod 125 = %v, want %v", prod, want)
	}
}
