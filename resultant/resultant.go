// Package resultant computes resultants and discriminants of integer
// polynomials via the subresultant pseudo-remainder sequence, and the
// induced GCD in Z[x].
package resultant

import (
	"math/big"

	"github.com/koba-e964/go-number-theory/poly"
)

// Error is the error type returned and panicked by this package.
type Error string

func (err Error) Error() string { return string(err) }

// ErrZeroInput is panicked when resultant is asked to operate on a zero
// polynomial.
const ErrZeroInput Error = "resultant: zero polynomial input"

// pseudoDivRem performs pseudo-division of a by b: returns (q, r) such that
// lc(b)^(deg(a)-deg(b)+1) * a = q*b + r, with deg(r) < deg(b). b must be
// non-zero.
func pseudoDivRem(a, b *poly.ZPoly) (q, r *poly.ZPoly) {
	if b.IsZero() {
		panic(ErrZeroInput)
	}
	if a.IsZero() || a.Deg() < b.Deg() {
		return poly.NewZPoly(nil), a.Clone()
	}
	aDeg, bDeg := a.Deg(), b.Deg()
	delta := aDeg - bDeg + 1
	lc := b.Lead()
	factor := new(big.Int).Exp(lc, big.NewInt(int64(delta)), nil)
	tmp := make([]*big.Int, aDeg+1)
	for i := range tmp {
		tmp[i] = new(big.Int).Mul(a.Coeff(i), factor)
	}
	// After scaling by lc^delta every quotient coefficient is an integer, so
	// each division by lc below is exact.
	quo := make([]*big.Int, aDeg-bDeg+1)
	for i := aDeg - bDeg; i >= 0; i-- {
		coef := new(big.Int).Quo(tmp[i+bDeg], lc)
		for j := 0; j <= bDeg; j++ {
			tmp[i+j].Sub(tmp[i+j], new(big.Int).Mul(coef, b.Coeff(j)))
		}
		quo[i] = coef
	}
	return poly.NewZPoly(quo), poly.NewZPoly(tmp)
}

// Resultant computes the resultant of f and g over Z via the subresultant
// PRS, following the scalar a,b bookkeeping of Brown/Collins. f and g must
// both be non-zero.
func Resultant(f, g *poly.ZPoly) *big.Int {
	if f.IsZero() || g.IsZero() {
		panic(ErrZeroInput)
	}
	sign := 1
	if f.Deg() < g.Deg() {
		f, g = g, f
		if f.Deg()%2 == 1 && g.Deg()%2 == 1 {
			sign = -sign
		}
	}
	a := big.NewInt(1)
	b := big.NewInt(1)
	for {
		if g.Deg() == 0 {
			break
		}
		delta := f.Deg() - g.Deg()
		_, h := pseudoDivRem(f, g)
		if h.IsZero() {
			// gcd(f,g) is non-constant: resultant is 0.
			return big.NewInt(0)
		}
		if f.Deg()%2 == 1 && g.Deg()%2 == 1 {
			sign = -sign
		}
		denom := new(big.Int).Mul(a, new(big.Int).Exp(b, big.NewInt(int64(delta)), nil))
		f, g = g, divExactZ(h, denom)
		a = f.Lead()
		if delta != 0 {
			bNewExp := new(big.Int).Exp(a, big.NewInt(int64(delta)), nil)
			b = divExactBig(bNewExp, new(big.Int).Exp(b, big.NewInt(int64(delta-1)), nil))
		}
		// delta == 0: b is unchanged (a^0 * b^1 = b).
	}
	if g.IsZero() {
		return big.NewInt(0)
	}
	lcg := g.Lead()
	num := new(big.Int).Exp(lcg, big.NewInt(int64(f.Deg())), nil)
	denom := new(big.Int).Exp(b, big.NewInt(int64(f.Deg()-1)), nil)
	res := divExactBig(num, denom)
	if sign < 0 {
		res.Neg(res)
	}
	return res
}

func divExactBig(n, d *big.Int) *big.Int {
	if d.Cmp(big.NewInt(1)) == 0 {
		return new(big.Int).Set(n)
	}
	q, r := new(big.Int), new(big.Int)
	q.QuoRem(n, d, r)
	if r.Sign() != 0 {
		panic("resultant: inexact division in subresultant bookkeeping")
	}
	return q
}

// divExactZ divides every coefficient of h by denom, panicking if any
// division is inexact.
func divExactZ(h *poly.ZPoly, denom *big.Int) *poly.ZPoly {
	if denom.Cmp(big.NewInt(1)) == 0 {
		return h
	}
	raw := make([]*big.Int, h.Deg()+1)
	for i := range raw {
		raw[i] = divExactBig(h.Coeff(i), denom)
	}
	return poly.NewZPoly(raw)
}

// Discriminant computes disc(f) = ± resultant(f, f') / lc(f), with sign −
// when deg(f) ≡ 2, 3 (mod 4). f must have degree ≥ 1.
func Discriminant(f *poly.ZPoly) *big.Int {
	m := f.Deg()
	res := Resultant(f, f.Diff())
	d := divExactBig(res, f.Lead())
	if m%4 == 2 || m%4 == 3 {
		d.Neg(d)
	}
	return d
}

// GCD returns the primitive GCD of f and g in Z[x] via the subresultant PRS,
// scaled back up by gcd(content(f), content(g)).
func GCD(f, g *poly.ZPoly) *poly.ZPoly {
	if f.IsZero() {
		return g.Clone()
	}
	if g.IsZero() {
		return f.Clone()
	}
	_, cf := f.Primitive()
	_, cg := g.Primitive()
	contentGCD := new(big.Int).GCD(nil, nil, new(big.Int).Abs(cf), new(big.Int).Abs(cg))

	pf, _ := f.Primitive()
	pg, _ := g.Primitive()
	if pf.Deg() < pg.Deg() {
		pf, pg = pg, pf
	}
	a := big.NewInt(1)
	b := big.NewInt(1)
	for {
		if pg.IsZero() {
			break
		}
		delta := pf.Deg() - pg.Deg()
		_, h := pseudoDivRem(pf, pg)
		if h.IsZero() {
			pf, pg = pg, poly.NewZPoly(nil)
			break
		}
		denom := new(big.Int).Mul(a, new(big.Int).Exp(b, big.NewInt(int64(delta)), nil))
		pf, pg = pg, divExactZ(h, denom)
		a = pf.Lead()
		if delta != 0 {
			bNewExp := new(big.Int).Exp(a, big.NewInt(int64(delta)), nil)
			b = divExactBig(bNewExp, new(big.Int).Exp(b, big.NewInt(int64(delta-1)), nil))
		}
	}
	last, _ := pf.Primitive()
	return last.Scale(contentGCD)
}
