// Package polyz factors polynomials over Z: it reduces a polynomial to its
// square-free primitive part, lifts a modular factorization to a
// sufficiently large prime power via Hensel lifting, and recombines the
// lifted factors into the true integer factors.
package polyz

import (
	"math/big"
	"math/rand"

	"github.com/koba-e964/go-number-theory/combin"
	"github.com/koba-e964/go-number-theory/internal/bigutil"
	"github.com/koba-e964/go-number-theory/poly"
	"github.com/koba-e964/go-number-theory/polymod"
	"github.com/koba-e964/go-number-theory/primeutil"
	"github.com/koba-e964/go-number-theory/resultant"
)

// Error is the error type returned and panicked by this package.
type Error string

func (err Error) Error() string { return string(err) }

// ErrNotMonic is panicked when the primitive part of the input is not
// monic, a precondition of this package's factorization routine.
const ErrNotMonic Error = "polyz: primitive part of input is not monic"

// Factor is a single irreducible integer factor with its multiplicity.
type Factor struct {
	Poly *poly.ZPoly
	Mult int
}

// mignotteBound computes B = 2*|lc(f)|*(sum|coeffs|)*2^(n-1).
func mignotteBound(f *poly.ZPoly) *big.Int {
	n := f.Deg()
	sum := big.NewInt(0)
	for i := 0; i <= n; i++ {
		sum.Add(sum, new(big.Int).Abs(f.Coeff(i)))
	}
	b := new(big.Int).Mul(big.NewInt(2), new(big.Int).Abs(f.Lead()))
	b.Mul(b, sum)
	b.Mul(b, new(big.Int).Lsh(big.NewInt(1), uint(n-1)))
	return b
}

// exactDivideZ divides a by monic-over-Q b exactly, panicking if the result
// is not integral. Used to recover the square-free part f1/gcd(f1,f1').
func exactDivideZ(a, b *poly.ZPoly) *poly.ZPoly {
	qa := poly.QFromZPoly(a)
	qb := poly.QFromZPoly(b)
	q, r := poly.DivRemQ(qa, qb)
	if !r.IsZero() {
		panic(Error("polyz: inexact division"))
	}
	raw := make([]*big.Int, q.Deg()+1)
	for i := 0; i <= q.Deg(); i++ {
		if !q.Coeff(i).IsInt() {
			panic(Error("polyz: non-integral quotient"))
		}
		raw[i] = q.Coeff(i).Num()
	}
	return poly.NewZPoly(raw)
}

// symmetricMod reduces every coefficient of f to the symmetric range
// [-m/2, m/2).
func symmetricMod(f *poly.ZPoly, m *big.Int) *poly.ZPoly {
	if f.IsZero() {
		return f
	}
	half := new(big.Int).Rsh(m, 1)
	raw := make([]*big.Int, f.Deg()+1)
	for i := range raw {
		v := bigutil.Mod(f.Coeff(i), m)
		if v.Cmp(half) >= 0 {
			v.Sub(v, m)
		}
		raw[i] = v
	}
	return poly.NewZPoly(raw)
}

// tryDivideZ attempts to divide a by b exactly over Z, returning (quotient,
// true) on an exact division, or (nil, false) otherwise.
func tryDivideZ(a, b *poly.ZPoly) (*poly.ZPoly, bool) {
	if b.IsZero() || a.Deg() < b.Deg() {
		return nil, false
	}
	qa := poly.QFromZPoly(a)
	qb := poly.QFromZPoly(b)
	q, r := poly.DivRemQ(qa, qb)
	if !r.IsZero() {
		return nil, false
	}
	raw := make([]*big.Int, q.Deg()+1)
	for i := 0; i <= q.Deg(); i++ {
		if !q.Coeff(i).IsInt() {
			return nil, false
		}
		raw[i] = q.Coeff(i).Num()
	}
	return poly.NewZPoly(raw), true
}

// squareFreePart returns f1 / gcd(f1, f1'), the square-free part of the
// primitive, monic polynomial f1.
func squareFreePart(f1 *poly.ZPoly) *poly.ZPoly {
	deriv := f1.Diff()
	if deriv.IsZero() {
		return f1
	}
	g := resultant.GCD(f1, deriv)
	return exactDivideZ(f1, g)
}

// FactorizeZ factors a non-zero integer polynomial f into irreducible
// factors over Z, each with its multiplicity in f.
func FactorizeZ(f *poly.ZPoly, rng *rand.Rand) []Factor {
	if f.IsZero() {
		panic(Error("polyz: zero polynomial"))
	}
	f1, content := f.Primitive()
	if f1.Lead().Cmp(big.NewInt(1)) != 0 {
		panic(ErrNotMonic)
	}
	sf := squareFreePart(f1)

	b := mignotteBound(f)
	primes := primeutil.NewPrimes()
	var p *big.Int
	for {
		cand := primes.Next()
		if cand.Cmp(big.NewInt(2)) == 0 {
			continue
		}
		sfModP := polymod.Reduce(sf, cand)
		derivModP := polymod.Diff(sfModP, cand)
		if derivModP.IsZero() {
			continue
		}
		g := polymod.GCD(sfModP, derivModP, cand)
		if g.Deg() == 0 {
			p = cand
			break
		}
	}
	e := 1
	pe := new(big.Int).Set(p)
	for pe.Cmp(b) <= 0 {
		e++
		pe.Mul(pe, p)
	}

	sfModP := polymod.Reduce(sf, p)
	modFactors := polymod.Factorize(sfModP, p, rng)
	lifted := polymod.HenselLiftAll(sf, modFactors, p, e)

	remaining := lifted
	var accepted []*poly.ZPoly
	target := sf
	d := 1
	for 2*d <= len(remaining) {
		found := false
		gen := combin.NewCombinationGenerator(len(remaining), d)
		for gen.Next() {
			idx := gen.Combination(nil)
			cand := poly.ZFromMono(big.NewInt(1))
			for _, i := range idx {
				cand = polymod.Reduce(cand.Mul(remaining[i]), pe)
			}
			cand = symmetricMod(cand, pe)
			if cand.IsZero() || cand.Deg() == 0 {
				continue
			}
			cand, _ = cand.Primitive()
			if cand.IsZero() || cand.Deg() == 0 {
				continue
			}
			q, ok := tryDivideZ(target, cand)
			if !ok {
				continue
			}
			accepted = append(accepted, cand)
			target = q
			remaining = removeIndices(remaining, idx)
			found = true
			break
		}
		if !found {
			d++
		}
	}
	if target.Deg() > 0 {
		accepted = append(accepted, target)
	}

	var result []Factor
	for _, fac := range accepted {
		mult := 0
		cur := f
		for {
			q, ok := tryDivideZ(cur, fac)
			if !ok {
				break
			}
			mult++
			cur = q
		}
		result = append(result, Factor{Poly: fac, Mult: mult})
	}
	if content.Cmp(big.NewInt(1)) != 0 && len(result) > 0 {
		result[0].Poly = result[0].Poly.Scale(content)
	}
	return result
}

func removeIndices(xs []*poly.ZPoly, idx []int) []*poly.ZPoly {
	skip := make(map[int]bool, len(idx))
	for _, i := range idx {
		skip[i] = true
	}
	var out []*poly.ZPoly
	for i, x := range xs {
		if !skip[i] {
			out = append(out, x)
		}
	}
	return out
}
