// Package bigutil collects the small arbitrary-precision helpers the rest
// of the module builds on: extended gcd, modular inverse and a mod function
// that always returns a non-negative representative.
package bigutil

import "math/big"

// Error is the error type returned by this package's functions.
type Error string

func (err Error) Error() string { return string(err) }

// ErrNotCoprime is returned by Inv when a and m are not coprime.
const ErrNotCoprime Error = "bigutil: a and m are not coprime"

// Mod returns x mod m, normalized to lie in [0, m). m must be positive.
func Mod(x, m *big.Int) *big.Int {
	r := new(big.Int).Mod(x, m)
	return r
}

// ExtGCD returns (g, x, y) such that g = gcd(a, b) and g = x*a + y*b.
// g is non-negative; it is zero only when a and b are both zero.
func ExtGCD(a, b *big.Int) (g, x, y *big.Int) {
	// Recursive division-based extended Euclidean algorithm, following the
	// structure of extgcd_division: a fresh pair is produced by rewriting
	// the recursive result of (b, a mod b) back in terms of (a, b).
	if b.Sign() == 0 {
		g = new(big.Int).Abs(a)
		if a.Sign() >= 0 {
			x = big.NewInt(1)
		} else {
			x = big.NewInt(-1)
		}
		y = big.NewInt(0)
		return g, x, y
	}
	q, r := new(big.Int), new(big.Int)
	q.QuoRem(a, b, r)
	g2, x2, y2 := ExtGCD(b, r)
	// b*x2 + r*y2 = g2, r = a - q*b
	// => y2*a + (x2 - q*y2)*b = g2
	newY := new(big.Int).Mul(q, y2)
	newY.Sub(x2, newY)
	return g2, y2, newY
}

// Inv computes the inverse of a modulo m (m must be positive), or returns
// ErrNotCoprime if gcd(a, m) != 1.
func Inv(a, m *big.Int) (*big.Int, error) {
	g, x, _ := ExtGCD(a, m)
	if g.CmpAbs(big.NewInt(1)) != 0 {
		return nil, ErrNotCoprime
	}
	// g = gcd(a,m) = ±1 and x*a + y*m = g, so (g*x)*a ≡ g*g = 1 (mod m).
	res := new(big.Int).Mul(x, g)
	return Mod(res, m), nil
}
