package primeutil

import (
	"math/big"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestSieve(t *testing.T) {
	got := Sieve(50)
	want := []int{2, 3, 5, 7, 11, 13, 17, 19, 23, 29, 31, 37, 41, 43, 47}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Sieve(50) mismatch (-want +got):\n%s", diff)
	}
}

func TestSieveInclusiveBound(t *testing.T) {
	got := Sieve(53)
	if got[len(got)-1] != 53 {
		t.Errorf("Sieve(53) should include 53, got %v", got)
	}
}

func TestPrimesIterator(t *testing.T) {
	p := NewPrimes()
	var got []int64
	for i := 0; i < 15; i++ {
		got = append(got, p.Next().Int64())
	}
	want := []int64{2, 3, 5, 7, 11, 13, 17, 19, 23, 29, 31, 37, 41, 43, 47}
	for i, v := range want {
		if got[i] != v {
			t.Errorf("got[%d] = %d, want %d", i, got[i], v)
		}
	}
}

func TestIsPrime(t *testing.T) {
	cases := map[int64]bool{1: false, 2: true, 4: false, 17: true, 221: false}
	for n, want := range cases {
		if got := IsPrime(big.NewInt(n)); got != want {
			t.Errorf("IsPrime(%d) = %v, want %v", n, got, want)
		}
	}
}
