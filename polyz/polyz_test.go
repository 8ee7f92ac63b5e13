package polyz

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

func TestFactorizeZProductOfDistinctLinears(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	// (x-1)(x-2)(x-3)
	f := zp(-1, 1).Mul(zp(-2, 1)).Mul(zp(-3, 1))
	factors := FactorizeZ(f, rng)
	if len(factors) != 3 {
		t.Fatalf("got %d factors, want 3: %v", len(factors), factors)
	}
	prod := poly.ZFromMono(big.NewInt(1))
	for _, fac := range factors {
		p := fac.Poly
		for i := 0; i < fac.Mult; i++ {
			prod = prod.Mul(p)
		}
	}
	if !prod.Equal(f) {
		t.Errorf("product of recovered factors = %v, want %v", prod, f)
	}
}

func TestFactorizeZIrreducible(t *testing.T) {
	rng := rand.New(rand.NewSource(4))
	f := zp(2, 0, 1) // x^2+2, irreducible over Z
	factors := FactorizeZ(f, rng)
	if len(factors) != 1 || factors[0].Mult != 1 || factors[0].Poly.Deg() != 2 {
		t.Fatalf("got %v, want a single irreducible quadratic factor", factors)
	}
}
