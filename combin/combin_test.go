package combin

import "testing"

func TestBinomial(t *testing.T) {
	for _, test := range []struct {
		n, k, want int
	}{
		{5, 0, 1},
		{5, 5, 1},
		{5, 2, 10},
		{6, 3, 20},
		{10, 4, 210},
	} {
		if got := Binomial(test.n, test.k); got != test.want {
			t.Errorf("Binomial(%d,%d) = %d, want %d", test.n, test.k, got, test.want)
		}
	}
}

func TestBinomialPanics(t *testing.T) {
	for _, test := range []struct {
		n, k int
	}{
		{-1, 0},
		{5, -1},
		{2, 3},
	} {
		func() {
			defer func() {
				if recover() == nil {
					t.Errorf("Binomial(%d,%d) should have panicked", test.n, test.k)
				}
			}()
			Binomial(test.n, test.k)
		}()
	}
}

func TestCombinations(t *testing.T) {
	got := Combinations(5, 3)
	want := [][]int{
		{0, 1, 2}, {0, 1, 3}, {0, 1, 4}, {0, 2, 3}, {0, 2, 4}, {0, 3, 4},
		{1, 2, 3}, {1, 2, 4}, {1, 3, 4}, {2, 3, 4},
	}
	if len(got) != len(want) {
		t.Fatalf("len(Combinations(5,3)) = %d, want %d", len(got), len(want))
	}
	for i := range want {
		for j := range want[i] {
			if got[i][j] != want[i][j] {
				t.Errorf("Combinations(5,3)[%d] = %v, want %v", i, got[i], want[i])
				break
			}
		}
	}
}

func TestCombinationGeneratorMatchesCombinations(t *testing.T) {
	n, k := 6, 2
	want := Combinations(n, k)
	gen := NewCombinationGenerator(n, k)
	var i int
	for gen.Next() {
		c := gen.Combination(nil)
		for j := range c {
			if c[j] != want[i][j] {
				t.Fatalf("generator combination %d = %v, want %v", i, c, want[i])
			}
		}
		i++
	}
	if i != len(want) {
		t.Errorf("generator produced %d combinations, want %d", i, len(want))
	}
}

func TestCombinationsEmpty(t *testing.T) {
	got := Combinations(0, 0)
	if len(got) != 1 || len(got[0]) != 0 {
		t.Errorf("Combinations(0,0) = %v, want [[]]", got)
	}
}
