package round2

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

func TestOneStepEnlargesNonMaximalOrder(t *testing.T) {
	// theta^2 = -3: disc(Z[theta]) = -12 = -4*3, so p=2 divides the index
	// [Z_K:Z[theta]] since -3 = 1 mod 4 gives Z_K = Z[(1+theta)/2].
	f := zp(3, 0, 1)
	o := order.SinglyGen(f)
	newO, k := OneStep(f, o, big.NewInt(2))
	idx := order.Index(newO, o)
	if idx.Cmp(big.NewInt(1)) == 0 {
		t.Fatalf("OneStep did not enlarge the order; index = %v", idx)
	}
	if k < 1 {
		t.Errorf("k = %d, want >= 1", k)
	}
}
