package order

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

func rat(n, d int64) *big.Rat { return big.NewRat(n, d) }

// theta = 1+6i, f(x) = x^2-2x+37.
func bigOrderZ6i() *Order {
	return TrivialOrder(2)
}

// Z[3i] = Z[(1+theta)/2].
func orderZ3i() *Order {
	return &Order{Basis: [][]*big.Rat{
		{rat(1, 1), rat(0, 1)},
		{rat(1, 2), rat(1, 2)},
	}}
}

// Z[2i] = Z[(2+theta)/3].
func orderZ2i() *Order {
	return &Order{Basis: [][]*big.Rat{
		{rat(1, 1), rat(0, 1)},
		{rat(2, 3), rat(1, 3)},
	}}
}

func TestIndex(t *testing.T) {
	o := bigOrderZ6i()
	if got := Index(orderZ3i(), o); got.Cmp(big.NewInt(2)) != 0 {
		t.Errorf("Index(Z[3i], Z[6i]) = %v, want 2", got)
	}
	if got := Index(orderZ2i(), o); got.Cmp(big.NewInt(3)) != 0 {
		t.Errorf("Index(Z[2i], Z[6i]) = %v, want 3", got)
	}
}

func TestUnion(t *testing.T) {
	u := Union(orderZ3i(), orderZ2i())
	o := bigOrderZ6i()
	if got := Index(u, o); got.Cmp(big.NewInt(6)) != 0 {
		t.Errorf("Index(Union(Z[3i],Z[2i]), Z[6i]) = %v, want 6", got)
	}
}

func TestDiscriminantQi41(t *testing.T) {
	// theta^2 = 41, f(x) = x^2-41.
	f := zp(-41, 0, 1)
	o := NonMonicInitialOrder(f)
	o = HNFReduce(o)
	disc := Discriminant(o, f)
	if disc.Cmp(big.NewInt(164)) != 0 {
		t.Errorf("disc(initial order for x^2-41) = %v, want 164", disc)
	}
}
