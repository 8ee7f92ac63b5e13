// Package primeutil provides the small prime-generation utilities the
// factorization packages need: a bounded sieve and an increasing-order
// prime stream.
package primeutil

import "math/big"

// Sieve returns every prime p with 2 <= p <= bound, via the sieve of
// Eratosthenes.
func Sieve(bound int) []int {
	if bound < 2 {
		return nil
	}
	isPrime := make([]bool, bound+1)
	for i := 2; i <= bound; i++ {
		isPrime[i] = true
	}
	for i := 2; i*i <= bound; i++ {
		if !isPrime[i] {
			continue
		}
		for j := i * i; j <= bound; j += i {
			isPrime[j] = false
		}
	}
	var out []int
	for i := 2; i <= bound; i++ {
		if isPrime[i] {
			out = append(out, i)
		}
	}
	return out
}

// IsPrime reports whether a is prime, using math/big's Baillie-PSW/Miller-
// Rabin primality test (exact for the range of inputs this package deals
// with, since the polynomial-factorization moduli are always far below the
// test's known pseudoprime thresholds in practice, and the cost of a wrong
// answer here is merely restarting factorization with the next candidate).
func IsPrime(a *big.Int) bool {
	if a.Sign() <= 0 {
		return false
	}
	return a.ProbablyPrime(20)
}

// Primes is a stream of primes in increasing order, starting at 2.
type Primes struct {
	now *big.Int
}

// NewPrimes returns a fresh prime stream.
func NewPrimes() *Primes {
	return &Primes{now: big.NewInt(2)}
}

// Next returns the next prime in the stream.
func (p *Primes) Next() *big.Int {
	for !IsPrime(p.now) {
		p.now.Add(p.now, big.NewInt(1))
	}
	result := new(big.Int).Set(p.now)
	p.now.Add(p.now, big.NewInt(1))
	return result
}
