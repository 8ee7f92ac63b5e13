// Package poly implements dense univariate polynomials over Z and over Q,
// coefficient index 0 being the constant term. The leading coefficient of a
// non-zero polynomial is never zero.
package poly

import "math/big"

// Error is the error type returned and panicked by this package.
type Error string

func (err Error) Error() string { return string(err) }

// ErrZeroPolynomial is panicked by operations that require a non-zero divisor.
const ErrZeroPolynomial Error = "poly: division by the zero polynomial"

// ErrNotMonic is panicked by operations that require a monic divisor.
const ErrNotMonic Error = "poly: divisor is not monic"

// DegreeZero is the degree returned for the zero polynomial. It compares less
// than the degree of every non-zero polynomial.
const DegreeZero = -1

// ZPoly is a polynomial with integer coefficients.
type ZPoly struct {
	dat []*big.Int // dat[i] is the coefficient of X^i; trailing zeros stripped
}

// NewZPoly builds a ZPoly from raw coefficients, index 0 first. raw is not
// retained.
func NewZPoly(raw []*big.Int) *ZPoly {
	return &ZPoly{dat: trimZ(raw)}
}

// ZFromMono builds the constant polynomial v.
func ZFromMono(v *big.Int) *ZPoly {
	return NewZPoly([]*big.Int{v})
}

func trimZ(raw []*big.Int) []*big.Int {
	ma := 0
	for i := len(raw) - 1; i >= 0; i-- {
		if raw[i].Sign() != 0 {
			ma = i + 1
			break
		}
	}
	out := make([]*big.Int, ma)
	for i := range out {
		out[i] = new(big.Int).Set(raw[i])
	}
	return out
}

// IsZero reports whether p is the zero polynomial.
func (p *ZPoly) IsZero() bool { return len(p.dat) == 0 }

// Deg returns the degree of p, or DegreeZero if p is zero.
func (p *ZPoly) Deg() int {
	if len(p.dat) == 0 {
		return DegreeZero
	}
	return len(p.dat) - 1
}

// Coeff returns the coefficient of X^i, or 0 if i is out of range.
func (p *ZPoly) Coeff(i int) *big.Int {
	if i < 0 || i >= len(p.dat) {
		return big.NewInt(0)
	}
	return new(big.Int).Set(p.dat[i])
}

// Lead returns the leading coefficient of p. Panics if p is zero.
func (p *ZPoly) Lead() *big.Int {
	if p.IsZero() {
		panic(ErrZeroPolynomial)
	}
	return p.Coeff(p.Deg())
}

// Clone returns a deep copy of p.
func (p *ZPoly) Clone() *ZPoly {
	out := make([]*big.Int, len(p.dat))
	for i, c := range p.dat {
		out[i] = new(big.Int).Set(c)
	}
	return &ZPoly{dat: out}
}

// Add returns p + q.
func (p *ZPoly) Add(q *ZPoly) *ZPoly {
	n := len(p.dat)
	if len(q.dat) > n {
		n = len(q.dat)
	}
	raw := make([]*big.Int, n)
	for i := range raw {
		raw[i] = new(big.Int).Add(p.Coeff(i), q.Coeff(i))
	}
	return NewZPoly(raw)
}

// Sub returns p - q.
func (p *ZPoly) Sub(q *ZPoly) *ZPoly {
	n := len(p.dat)
	if len(q.dat) > n {
		n = len(q.dat)
	}
	raw := make([]*big.Int, n)
	for i := range raw {
		raw[i] = new(big.Int).Sub(p.Coeff(i), q.Coeff(i))
	}
	return NewZPoly(raw)
}

// Neg returns -p.
func (p *ZPoly) Neg() *ZPoly {
	raw := make([]*big.Int, len(p.dat))
	for i, c := range p.dat {
		raw[i] = new(big.Int).Neg(c)
	}
	return NewZPoly(raw)
}

// Scale returns c*p.
func (p *ZPoly) Scale(c *big.Int) *ZPoly {
	raw := make([]*big.Int, len(p.dat))
	for i, co := range p.dat {
		raw[i] = new(big.Int).Mul(co, c)
	}
	return NewZPoly(raw)
}

// Mul returns p * q.
func (p *ZPoly) Mul(q *ZPoly) *ZPoly {
	if p.IsZero() || q.IsZero() {
		return NewZPoly(nil)
	}
	raw := make([]*big.Int, p.Deg()+q.Deg()+1)
	for i := range raw {
		raw[i] = big.NewInt(0)
	}
	tmp := new(big.Int)
	for i, a := range p.dat {
		if a.Sign() == 0 {
			continue
		}
		for j, b := range q.dat {
			tmp.Mul(a, b)
			raw[i+j].Add(raw[i+j], tmp)
		}
	}
	return NewZPoly(raw)
}

// Eval evaluates p at x using Horner's method.
func (p *ZPoly) Eval(x *big.Int) *big.Int {
	res := big.NewInt(0)
	for i := p.Deg(); i >= 0; i-- {
		res.Mul(res, x)
		res.Add(res, p.Coeff(i))
	}
	return res
}

// Diff returns the formal derivative of p.
func (p *ZPoly) Diff() *ZPoly {
	if p.Deg() <= 0 {
		return NewZPoly(nil)
	}
	raw := make([]*big.Int, p.Deg())
	for i := 1; i <= p.Deg(); i++ {
		raw[i-1] = new(big.Int).Mul(p.Coeff(i), big.NewInt(int64(i)))
	}
	return NewZPoly(raw)
}

// Content returns the gcd of the coefficients of p (always non-negative; 0
// for the zero polynomial).
func (p *ZPoly) Content() *big.Int {
	g := big.NewInt(0)
	for _, c := range p.dat {
		g.GCD(nil, nil, g, new(big.Int).Abs(c))
	}
	return g
}

// Primitive returns p divided by its content, together with the content
// itself (with the sign chosen so the result's leading coefficient is
// positive). Panics if p is zero.
func (p *ZPoly) Primitive() (prim *ZPoly, content *big.Int) {
	if p.IsZero() {
		panic(ErrZeroPolynomial)
	}
	c := p.Content()
	if p.Lead().Sign() < 0 {
		c.Neg(c)
	}
	raw := make([]*big.Int, len(p.dat))
	for i, co := range p.dat {
		q := new(big.Int)
		q.Div(co, c)
		raw[i] = q
	}
	return NewZPoly(raw), c
}

// Equal reports whether p and q have identical coefficients.
func (p *ZPoly) Equal(q *ZPoly) bool {
	if len(p.dat) != len(q.dat) {
		return false
	}
	for i := range p.dat {
		if p.dat[i].Cmp(q.dat[i]) != 0 {
			return false
		}
	}
	return true
}

// DivRemZ divides a by the monic polynomial b, returning quotient and
// remainder. Panics if b is zero or not monic.
func DivRemZ(a, b *ZPoly) (q, r *ZPoly) {
	if b.IsZero() {
		panic(ErrZeroPolynomial)
	}
	if b.Lead().Cmp(big.NewInt(1)) != 0 {
		panic(ErrNotMonic)
	}
	if a.IsZero() || a.Deg() < b.Deg() {
		return NewZPoly(nil), a.Clone()
	}
	aDeg, bDeg := a.Deg(), b.Deg()
	tmp := make([]*big.Int, len(a.dat))
	for i, c := range a.dat {
		tmp[i] = new(big.Int).Set(c)
	}
	quo := make([]*big.Int, aDeg-bDeg+1)
	for i := range quo {
		quo[i] = big.NewInt(0)
	}
	for i := aDeg - bDeg; i >= 0; i-- {
		coef := new(big.Int).Set(tmp[i+bDeg])
		for j := 0; j <= bDeg; j++ {
			prod := new(big.Int).Mul(coef, b.Coeff(j))
			tmp[i+j].Sub(tmp[i+j], prod)
		}
		quo[i] = coef
	}
	return NewZPoly(quo), NewZPoly(tmp)
}

// QPoly is a polynomial with rational coefficients.
type QPoly struct {
	dat []*big.Rat
}

// NewQPoly builds a QPoly from raw coefficients, index 0 first.
func NewQPoly(raw []*big.Rat) *QPoly {
	return &QPoly{dat: trimQ(raw)}
}

// QFromMono builds the constant polynomial v.
func QFromMono(v *big.Rat) *QPoly {
	return NewQPoly([]*big.Rat{v})
}

// QFromZPoly lifts an integer polynomial to a rational one.
func QFromZPoly(p *ZPoly) *QPoly {
	raw := make([]*big.Rat, len(p.dat))
	for i, c := range p.dat {
		raw[i] = new(big.Rat).SetInt(c)
	}
	return NewQPoly(raw)
}

func trimQ(raw []*big.Rat) []*big.Rat {
	ma := 0
	for i := len(raw) - 1; i >= 0; i-- {
		if raw[i].Sign() != 0 {
			ma = i + 1
			break
		}
	}
	out := make([]*big.Rat, ma)
	for i := range out {
		out[i] = new(big.Rat).Set(raw[i])
	}
	return out
}

// IsZero reports whether p is the zero polynomial.
func (p *QPoly) IsZero() bool { return len(p.dat) == 0 }

// Deg returns the degree of p, or DegreeZero if p is zero.
func (p *QPoly) Deg() int {
	if len(p.dat) == 0 {
		return DegreeZero
	}
	return len(p.dat) - 1
}

// Coeff returns the coefficient of X^i, or 0 if i is out of range.
func (p *QPoly) Coeff(i int) *big.Rat {
	if i < 0 || i >= len(p.dat) {
		return new(big.Rat)
	}
	return new(big.Rat).Set(p.dat[i])
}

// Lead returns the leading coefficient of p. Panics if p is zero.
func (p *QPoly) Lead() *big.Rat {
	if p.IsZero() {
		panic(ErrZeroPolynomial)
	}
	return p.Coeff(p.Deg())
}

// Add returns p + q.
func (p *QPoly) Add(q *QPoly) *QPoly {
	n := len(p.dat)
	if len(q.dat) > n {
		n = len(q.dat)
	}
	raw := make([]*big.Rat, n)
	for i := range raw {
		raw[i] = new(big.Rat).Add(p.Coeff(i), q.Coeff(i))
	}
	return NewQPoly(raw)
}

// Sub returns p - q.
func (p *QPoly) Sub(q *QPoly) *QPoly {
	n := len(p.dat)
	if len(q.dat) > n {
		n = len(q.dat)
	}
	raw := make([]*big.Rat, n)
	for i := range raw {
		raw[i] = new(big.Rat).Sub(p.Coeff(i), q.Coeff(i))
	}
	return NewQPoly(raw)
}

// Scale returns c*p.
func (p *QPoly) Scale(c *big.Rat) *QPoly {
	raw := make([]*big.Rat, len(p.dat))
	for i, co := range p.dat {
		raw[i] = new(big.Rat).Mul(co, c)
	}
	return NewQPoly(raw)
}

// Mul returns p * q.
func (p *QPoly) Mul(q *QPoly) *QPoly {
	if p.IsZero() || q.IsZero() {
		return NewQPoly(nil)
	}
	raw := make([]*big.Rat, p.Deg()+q.Deg()+1)
	for i := range raw {
		raw[i] = new(big.Rat)
	}
	tmp := new(big.Rat)
	for i, a := range p.dat {
		if a.Sign() == 0 {
			continue
		}
		for j, b := range q.dat {
			tmp.Mul(a, b)
			raw[i+j].Add(raw[i+j], tmp)
		}
	}
	return NewQPoly(raw)
}

// Eval evaluates p at x using Horner's method.
func (p *QPoly) Eval(x *big.Rat) *big.Rat {
	res := new(big.Rat)
	for i := p.Deg(); i >= 0; i-- {
		res.Mul(res, x)
		res.Add(res, p.Coeff(i))
	}
	return res
}

// Equal reports whether p and q have identical coefficients.
func (p *QPoly) Equal(q *QPoly) bool {
	if len(p.dat) != len(q.dat) {
		return false
	}
	for i := range p.dat {
		if p.dat[i].Cmp(q.dat[i]) != 0 {
			return false
		}
	}
	return true
}

// DivRemQ performs division of a by non-zero b over Q, returning quotient
// and remainder. Panics if b is zero.
func DivRemQ(a, b *QPoly) (q, r *QPoly) {
	if b.IsZero() {
		panic(ErrZeroPolynomial)
	}
	if a.IsZero() || a.Deg() < b.Deg() {
		return NewQPoly(nil), &QPoly{dat: append([]*big.Rat(nil), a.dat...)}
	}
	aDeg, bDeg := a.Deg(), b.Deg()
	lc := b.Lead()
	tmp := make([]*big.Rat, len(a.dat))
	for i, c := range a.dat {
		tmp[i] = new(big.Rat).Set(c)
	}
	quo := make([]*big.Rat, aDeg-bDeg+1)
	for i := aDeg - bDeg; i >= 0; i-- {
		coef := new(big.Rat).Quo(tmp[i+bDeg], lc)
		for j := 0; j <= bDeg; j++ {
			prod := new(big.Rat).Mul(coef, b.Coeff(j))
			tmp[i+j].Sub(tmp[i+j], prod)
		}
		quo[i] = coef
	}
	return NewQPoly(quo), NewQPoly(tmp)
}
