// Package polymod implements arithmetic, square-free/distinct-degree/
// equal-degree factorization, and Hensel lifting for polynomials over
// Z/p^kZ, represented as poly.ZPoly values with coefficients kept in
// [0, modulus).
package polymod

import (
	"math/big"
	"math/rand"

	"github.com/koba-e964/go-number-theory/internal/bigutil"
	"github.com/koba-e964/go-number-theory/poly"
)

// Error is the error type returned and panicked by this package.
type Error string

func (err Error) Error() string { return string(err) }

// ErrZeroInput is panicked when an operation requires a non-zero polynomial.
const ErrZeroInput Error = "polymod: zero polynomial input"

// Reduce reduces every coefficient of f modulo m, keeping the result in
// [0, m).
func Reduce(f *poly.ZPoly, m *big.Int) *poly.ZPoly {
	if f.IsZero() {
		return f
	}
	raw := make([]*big.Int, f.Deg()+1)
	for i := range raw {
		raw[i] = bigutil.Mod(f.Coeff(i), m)
	}
	return poly.NewZPoly(raw)
}

// DivRem performs division of a by non-zero b modulo m (m need not be
// prime but b's leading coefficient must be invertible mod m).
func DivRem(a, b *poly.ZPoly, m *big.Int) (q, r *poly.ZPoly) {
	if b.IsZero() {
		panic(ErrZeroInput)
	}
	aDeg, bDeg := a.Deg(), b.Deg()
	if a.IsZero() || aDeg < bDeg {
		return poly.NewZPoly(nil), Reduce(a, m)
	}
	lc := b.Coeff(bDeg)
	invLC, err := bigutil.Inv(lc, m)
	if err != nil {
		panic(Error("polymod: leading coefficient not invertible mod m"))
	}
	tmp := make([]*big.Int, aDeg+1)
	for i := 0; i <= aDeg; i++ {
		tmp[i] = new(big.Int).Set(a.Coeff(i))
	}
	quo := make([]*big.Int, aDeg-bDeg+1)
	for i := aDeg - bDeg; i >= 0; i-- {
		coef := bigutil.Mod(new(big.Int).Mul(tmp[i+bDeg], invLC), m)
		for j := 0; j <= bDeg; j++ {
			prod := new(big.Int).Mul(coef, b.Coeff(j))
			tmp[i+j].Sub(tmp[i+j], prod)
			tmp[i+j] = bigutil.Mod(tmp[i+j], m)
		}
		quo[i] = coef
	}
	return poly.NewZPoly(quo), poly.NewZPoly(tmp)
}

// GCD computes gcd(a, b) mod p (p prime), monic (or zero).
func GCD(a, b *poly.ZPoly, p *big.Int) *poly.ZPoly {
	for !b.IsZero() {
		_, r := DivRem(a, b, p)
		a, b = b, r
	}
	return monic(a, p)
}

// Diff returns the formal derivative of f, reduced mod m.
func Diff(f *poly.ZPoly, m *big.Int) *poly.ZPoly {
	return Reduce(f.Diff(), m)
}

// Eval evaluates f at a, modulo m.
func Eval(f *poly.ZPoly, a, m *big.Int) *big.Int {
	res := big.NewInt(0)
	for i := f.Deg(); i >= 0; i-- {
		res.Mul(res, a)
		res.Add(res, f.Coeff(i))
		res = bigutil.Mod(res, m)
	}
	return res
}

// Pow computes base^e mod m.
func Pow(base, e, m *big.Int) *big.Int {
	return new(big.Int).Exp(base, e, m)
}

// PowMod computes x^e mod g, with coefficient arithmetic mod m.
func PowMod(x *poly.ZPoly, e *big.Int, g *poly.ZPoly, m *big.Int) *poly.ZPoly {
	product := poly.ZFromMono(big.NewInt(1))
	current := x
	ee := new(big.Int).Set(e)
	two := big.NewInt(2)
	for ee.Sign() > 0 {
		if ee.Bit(0) == 1 {
			_, product = DivRem(Reduce(product.Mul(current), m), g, m)
		}
		_, current = DivRem(Reduce(current.Mul(current), m), g, m)
		ee.Div(ee, two)
	}
	return product
}

// DivideByLinear divides poly by (x - a) modulo p, assuming poly(a) ≡ 0.
func DivideByLinear(f *poly.ZPoly, a, p *big.Int) *poly.ZPoly {
	deg := f.Deg()
	coefs := make([]*big.Int, deg)
	carry := big.NewInt(0)
	for i := deg - 1; i >= 0; i-- {
		carry.Add(carry, f.Coeff(i+1))
		carry = bigutil.Mod(carry, p)
		coefs[i] = new(big.Int).Set(carry)
		carry.Mul(carry, a)
	}
	return poly.NewZPoly(coefs)
}

// Factor is a single irreducible factor with its multiplicity.
type Factor struct {
	Poly *poly.ZPoly
	Mult int
}

// SquareFree computes the square-free factorization of t modulo prime p
// (pUsize is p as an int, used to rewrite T as a polynomial in x^p when the
// characteristic catches the derivative; only meaningful when p fits in an
// int, which it always does for the primes this package lifts against).
func SquareFree(t *poly.ZPoly, p *big.Int, pUsize int) []Factor {
	if t.IsZero() {
		panic(ErrZeroInput)
	}
	e := 1
	t0 := Reduce(t, p)
	var result []Factor
	for t0.Deg() != 0 {
		der := Diff(t0, p)
		tt := GCD(t0, der, p)
		tt = monic(tt, p)
		v, _ := DivRem(t0, tt, p)
		k := 0
		for {
			if v.Deg() == 0 {
				raw := make([]*big.Int, tt.Deg()/pUsize+1)
				for i := 0; i <= tt.Deg()/pUsize; i++ {
					raw[i] = tt.Coeff(pUsize * i)
				}
				t0 = poly.NewZPoly(raw)
				e *= pUsize
				break
			}
			k++
			w := GCD(tt, v, p)
			w = monic(w, p)
			aek, _ := DivRem(v, w, p)
			v = w
			tt, _ = DivRem(tt, v, p)
			if aek.Deg() != 0 {
				result = append(result, Factor{Poly: monic(aek, p), Mult: e * k})
			}
		}
	}
	return result
}

// monic returns f scaled so its leading coefficient is 1 mod p (p prime).
func monic(f *poly.ZPoly, p *big.Int) *poly.ZPoly {
	if f.IsZero() {
		return f
	}
	inv, err := bigutil.Inv(f.Lead(), p)
	if err != nil {
		panic(Error("polymod: leading coefficient not invertible mod p"))
	}
	return Reduce(f.Scale(inv), p)
}

// DistinctDegree performs distinct-degree factorization of the square-free,
// monic polynomial v modulo prime p: it returns, for each degree d with at
// least one degree-d irreducible factor, the product A_d of all such
// factors.
func DistinctDegree(v *poly.ZPoly, p *big.Int) map[int]*poly.ZPoly {
	result := map[int]*poly.ZPoly{}
	x := poly.NewZPoly([]*big.Int{big.NewInt(0), big.NewInt(1)})
	xPowPd := x
	rem := v
	d := 0
	for rem.Deg() >= 2*(d+1) {
		d++
		xPowPd = PowMod(xPowPd, p, rem, p)
		diff := Reduce(xPowPd.Sub(x), p)
		g := GCD(rem, diff, p)
		g = monic(g, p)
		if g.Deg() > 0 {
			result[d] = g
			rem, _ = DivRem(rem, g, p)
			xPowPd, _ = DivRem(xPowPd, rem, p)
		}
	}
	if rem.Deg() > 0 {
		result[rem.Deg()] = rem
	}
	return result
}

// EqualDegreeSplit splits a_d (a product of degree-d irreducible factors,
// monic, modulo prime p) into its individual degree-d factors.
func EqualDegreeSplit(ad *poly.ZPoly, d int, p *big.Int, rng *rand.Rand) []*poly.ZPoly {
	n := ad.Deg()
	if n == d {
		return []*poly.ZPoly{ad}
	}
	two := big.NewInt(2)
	for {
		t := randomPoly(2*d, p, rng)
		if t.Deg() <= 0 {
			continue
		}
		var c *poly.ZPoly
		if p.Cmp(two) == 0 {
			// trace polynomial c = t + t^2 + t^4 + ... + t^(2^(d-1)) mod ad.
			c = poly.NewZPoly(nil)
			cur := t
			for i := 0; i < d; i++ {
				c = Reduce(c.Add(cur), p)
				_, cur = DivRem(Reduce(cur.Mul(cur), p), ad, p)
			}
		} else {
			exp := new(big.Int).Sub(new(big.Int).Exp(p, big.NewInt(int64(d)), nil), big.NewInt(1))
			exp.Div(exp, two)
			c = PowMod(t, exp, ad, p)
			c = Reduce(c.Sub(poly.ZFromMono(big.NewInt(1))), p)
		}
		g := GCD(ad, c, p)
		g = monic(g, p)
		if g.Deg() > 0 && g.Deg() < n {
			quo, _ := DivRem(ad, g, p)
			left := EqualDegreeSplit(g, d, p, rng)
			right := EqualDegreeSplit(monic(quo, p), d, p, rng)
			return append(left, right...)
		}
	}
}

func randomPoly(maxDeg int, p *big.Int, rng *rand.Rand) *poly.ZPoly {
	raw := make([]*big.Int, maxDeg+1)
	for i := range raw {
		raw[i] = new(big.Int).Rand(rng, p)
	}
	return poly.NewZPoly(raw)
}

// Factorize fully factors the square-free monic polynomial t modulo prime
// p into monic irreducible factors.
func Factorize(t *poly.ZPoly, p *big.Int, rng *rand.Rand) []*poly.ZPoly {
	dd := DistinctDegree(t, p)
	var result []*poly.ZPoly
	for d, ad := range dd {
		result = append(result, EqualDegreeSplit(ad, d, p, rng)...)
	}
	return result
}

// FindLinearFactors finds all roots of poly modulo prime p (with
// multiplicity), following the randomized root-finding method used for
// linear factors specifically.
func FindLinearFactors(f *poly.ZPoly, p *big.Int, rng *rand.Rand) []*big.Int {
	f = Reduce(f, p)
	two := big.NewInt(2)
	var result []*big.Int
	if p.Cmp(two) == 0 {
		vals := []*big.Int{big.NewInt(0), big.NewInt(1)}
		for _, v := range vals {
			for Eval(f, v, p).Sign() == 0 {
				f = DivideByLinear(f, v, p)
				result = append(result, v)
			}
		}
		return result
	}
	findLinearFactorsImpl(f, p, &result, rng)
	return result
}

func findLinearFactorsImpl(f *poly.ZPoly, p *big.Int, result *[]*big.Int, rng *rand.Rand) {
	if f.Deg() == 0 {
		return
	}
	if f.Deg() == 1 {
		inv, err := bigutil.Inv(f.Coeff(1), p)
		if err != nil {
			panic(Error("polymod: non-invertible leading coefficient"))
		}
		root := bigutil.Mod(new(big.Int).Neg(new(big.Int).Mul(f.Coeff(0), inv)), p)
		*result = append(*result, root)
		return
	}
	a := new(big.Int).Rand(rng, p)
	orig := f
	if Eval(f, a, p).Sign() == 0 {
		f = DivideByLinear(f, a, p)
		*result = append(*result, new(big.Int).Set(a))
	}
	xa := poly.NewZPoly([]*big.Int{bigutil.Mod(new(big.Int).Neg(a), p), big.NewInt(1)})
	p1 := new(big.Int).Div(new(big.Int).Sub(p, big.NewInt(1)), big.NewInt(2))
	xapow := PowMod(xa, p1, f, p)

	plus1 := Reduce(xapow.Add(poly.ZFromMono(big.NewInt(1))), p)
	g := GCD(plus1, f, p)
	if g.Deg() > 0 {
		quo, _ := DivRem(f, g, p)
		findLinearFactorsImpl(g, p, result, rng)
		f = quo
	}
	minus1 := Reduce(xapow.Add(poly.ZFromMono(new(big.Int).Sub(p, big.NewInt(1)))), p)
	g = GCD(minus1, f, p)
	if g.Deg() > 0 {
		quo, _ := DivRem(f, g, p)
		findLinearFactorsImpl(g, p, result, rng)
		f = quo
	}
	if !f.Equal(orig) {
		findLinearFactorsImpl(f, p, result, rng)
	}
}

// ExtGCD computes the extended GCD of a, b mod prime p: u, v such that
// a*u + b*v = g = gcd(a, b), all reduced mod p.
func ExtGCD(a, b *poly.ZPoly, p *big.Int) (g, u, v *poly.ZPoly) {
	if b.IsZero() {
		return a, poly.ZFromMono(big.NewInt(1)), poly.NewZPoly(nil)
	}
	q, r := DivRem(a, b, p)
	g1, u1, v1 := ExtGCD(b, r, p)
	// g1 = b*u1 + r*v1 = b*u1 + (a - b*q)*v1 = a*v1 + b*(u1 - q*v1)
	u = v1
	v = Reduce(u1.Sub(Reduce(q.Mul(v1), p)), p)
	return g1, u, v
}

// BezoutPair returns U, V with A*U + B*V = 1 mod p, for A, B coprime mod
// prime p.
func BezoutPair(a, b *poly.ZPoly, p *big.Int) (u, v *poly.ZPoly) {
	g, u, v := ExtGCD(a, b, p)
	if g.Deg() != 0 {
		panic(Error("polymod: inputs are not coprime mod p"))
	}
	inv, err := bigutil.Inv(g.Coeff(0), p)
	if err != nil {
		panic(Error("polymod: gcd unit not invertible mod p"))
	}
	u = Reduce(u.Scale(inv), p)
	v = Reduce(v.Scale(inv), p)
	return u, v
}

// HenselStep performs the two-factor linear Hensel lift of Algorithm 3.5.5
// of Cohen: given C ≡ A·B mod q (q a multiple of p) and a Bézout pair
// A·U + B·V ≡ 1 mod p, it returns A1, B1 with C ≡ A1·B1 mod (q·r), where r
// = gcd(p, q) (the modulus being extended by).
func HenselStep(c, a, b, u, v *poly.ZPoly, p, q, r *big.Int) (a1, b1 *poly.ZPoly) {
	qr := new(big.Int).Mul(q, r)
	diff := Reduce(c.Sub(a.Mul(b)), qr)
	// c ≡ a*b mod q, so every coefficient of diff is divisible by q.
	quoRaw := make([]*big.Int, diff.Deg()+1)
	for i := range quoRaw {
		quoRaw[i] = new(big.Int).Quo(diff.Coeff(i), q)
	}
	f := Reduce(poly.NewZPoly(quoRaw), r)
	vf := Reduce(v.Mul(f), r)
	t, _ := DivRem(vf, a, r)
	a1 = Reduce(a.Add(Reduce(vf.Sub(Reduce(a.Mul(t), r)), r).Scale(q)), qr)
	uf := Reduce(u.Mul(f), r)
	bt := Reduce(b.Mul(t), r)
	b1 = Reduce(b.Add(Reduce(uf.Add(bt), r).Scale(q)), qr)
	return a1, b1
}

// liftPair lifts the two-way split (a, b) of target (a square-free,
// mod-p-coprime factorization target ≡ a*b mod p) from mod p to mod p^e,
// scaling target's leading coefficient before each step so the product
// stays exact.
func liftPair(target, a, b *poly.ZPoly, p *big.Int, e int) (*poly.ZPoly, *poly.ZPoly) {
	u, v := BezoutPair(a, b, p)
	q := new(big.Int).Set(p)
	for step := 1; step < e; step++ {
		qr := new(big.Int).Mul(q, p)
		lcInv, err := bigutil.Inv(target.Lead(), qr)
		if err != nil {
			panic(Error("polymod: leading coefficient not invertible mod p^k"))
		}
		cScaled := Reduce(target.Scale(lcInv), qr)
		a, b = HenselStep(cScaled, a, b, u, v, p, q, p)
		q = qr
	}
	modulus := new(big.Int).Exp(p, big.NewInt(int64(e)), nil)
	return Reduce(a, modulus), Reduce(b, modulus)
}

// HenselLiftAll lifts a square-free, pairwise-coprime (mod p) list of monic
// factors of c (so that c ≡ lc(c) · Π factors mod p) to mod p^e, via
// simultaneous lifting through a binary recombination tree: at each node
// the node's target polynomial is split in half and lifted with
// liftPair, then each half is recursively split further.
func HenselLiftAll(c *poly.ZPoly, factors []*poly.ZPoly, p *big.Int, e int) []*poly.ZPoly {
	if len(factors) == 0 {
		return nil
	}
	modulus := new(big.Int).Exp(p, big.NewInt(int64(e)), nil)
	if len(factors) == 1 {
		return []*poly.ZPoly{Reduce(c, modulus)}
	}
	mid := len(factors) / 2
	left, right := factors[:mid], factors[mid:]
	aProd, bProd := poly.ZFromMono(big.NewInt(1)), poly.ZFromMono(big.NewInt(1))
	for _, f := range left {
		aProd = Reduce(aProd.Mul(f), p)
	}
	for _, f := range right {
		bProd = Reduce(bProd.Mul(f), p)
	}
	aLifted, bLifted := liftPair(c, aProd, bProd, p, e)
	out := append(HenselLiftAll(aLifted, left, p, e), HenselLiftAll(bLifted, right, p, e)...)
	return out
}
