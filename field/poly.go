package field

import (
	"cmp"
	"slices"
)

/*
Polynomial is an immutable univariate polynomial with signed integer
coefficients, ordered from lowest to highest degree (e.g. [1, 2, 3] is
1 + 2x + 3x^2).

The coefficient slice is always canonical: the highest coefficient is non-zero
unless the polynomial is the zero polynomial, which holds exactly one 0.
The zero value is the zero polynomial.

Coefficients are int64; arithmetic on Polynomial values does not guard
against overflow. Use PolyRing for arithmetic modulo a prime.
*/
type Polynomial struct {
	inner []int64
}

// NewPolynomial copies coeffs and trims trailing zeroes.
func NewPolynomial(coeffs ...int64) Polynomial {
	inner := make([]int64, len(coeffs))
	copy(inner, coeffs)

	return canonical(inner)
}

// Constant returns the degree-0 polynomial c.
func Constant(c int64) Polynomial {
	return Polynomial{inner: []int64{c}}
}

// Monomial returns x^power.
func Monomial(power int) Polynomial {
	if power < 0 {
		return Polynomial{}
	}

	inner := make([]int64, power+1)
	inner[power] = 1

	return Polynomial{inner: inner}
}

// canonical takes ownership of inner.
func canonical(inner []int64) Polynomial {
	i := len(inner) - 1
	for i > 0 && inner[i] == 0 {
		i--
	}

	if i < 0 {
		return Polynomial{inner: []int64{0}}
	}

	return Polynomial{inner: inner[:i+1]}
}

func (p Polynomial) coeffs() []int64 {
	if len(p.inner) == 0 {
		return []int64{0}
	}

	return p.inner
}

// Degree of the zero polynomial is 0.
func (p Polynomial) Degree() int {
	return len(p.coeffs()) - 1
}

// Coefficient returns the coefficient of x^power, 0 when out of range.
func (p Polynomial) Coefficient(power int) int64 {
	if power < 0 || power >= len(p.inner) {
		return 0
	}

	return p.inner[power]
}

func (p Polynomial) LeadCoeff() int64 {
	c := p.coeffs()
	return c[len(c)-1]
}

// Coefficients returns a copy of the canonical coefficient slice.
func (p Polynomial) Coefficients() []int64 {
	return slices.Clone(p.coeffs())
}

func (p Polynomial) IsZero() bool {
	c := p.coeffs()
	return len(c) == 1 && c[0] == 0
}

// IsConstant reports whether the degree is 0 (the zero polynomial included).
func (p Polynomial) IsConstant() bool {
	return p.Degree() == 0
}

func (p Polynomial) Equal(q Polynomial) bool {
	return slices.Equal(p.coeffs(), q.coeffs())
}

// Compare orders by degree first, then lexicographically from the highest
// power down.
func (p Polynomial) Compare(q Polynomial) int {
	pc, qc := p.coeffs(), q.coeffs()
	if c := cmp.Compare(len(pc), len(qc)); c != 0 {
		return c
	}

	for i := len(pc) - 1; i >= 0; i-- {
		if c := cmp.Compare(pc[i], qc[i]); c != 0 {
			return c
		}
	}

	return 0
}

// Modified folds every coefficient into [0, modulo). A modulo <= 0 leaves p
// unchanged.
func (p Polynomial) Modified(modulo int64) Polynomial {
	if modulo <= 0 {
		return p
	}

	src := p.coeffs()
	inner := make([]int64, len(src))

	for i, c := range src {
		c %= modulo
		if c < 0 {
			c += modulo
		}

		inner[i] = c
	}

	return canonical(inner)
}

// Unpowered keeps the coefficients whose power is divisible by modulo and
// re-indexes them by power/modulo, undoing the substitution x -> x^modulo.
func (p Polynomial) Unpowered(modulo int) Polynomial {
	if modulo <= 1 {
		return p
	}

	src := p.coeffs()
	inner := make([]int64, len(src)/modulo+1)

	for i := 0; i < len(src); i += modulo {
		inner[i/modulo] = src[i]
	}

	return canonical(inner)
}

// Derivative returns the formal derivative.
func (p Polynomial) Derivative() Polynomial {
	src := p.coeffs()
	if len(src) == 1 {
		return Polynomial{}
	}

	inner := make([]int64, len(src)-1)
	for power := 1; power < len(src); power++ {
		inner[power-1] = int64(power) * src[power]
	}

	return canonical(inner)
}

// Evaluate computes the plain integer value at point, without any modular
// reduction.
func (p Polynomial) Evaluate(point int64) int64 {
	src := p.coeffs()

	// horner's rule:
	result := int64(0)
	for i := len(src) - 1; i >= 0; i-- {
		result = result*point + src[i]
	}

	return result
}

func (p Polynomial) Add(q Polynomial) Polynomial {
	n := max(len(p.coeffs()), len(q.coeffs()))

	inner := make([]int64, n)
	for i := range inner {
		inner[i] = p.Coefficient(i) + q.Coefficient(i)
	}

	return canonical(inner)
}

func (p Polynomial) Sub(q Polynomial) Polynomial {
	n := max(len(p.coeffs()), len(q.coeffs()))

	inner := make([]int64, n)
	for i := range inner {
		inner[i] = p.Coefficient(i) - q.Coefficient(i)
	}

	return canonical(inner)
}

// Mul is schoolbook convolution: O(n*m).
func (p Polynomial) Mul(q Polynomial) Polynomial {
	a, b := p.coeffs(), q.coeffs()
	out := make([]int64, len(a)+len(b)-1)

	for i, ai := range a {
		if ai == 0 {
			continue
		}

		for j, bj := range b {
			out[i+j] += ai * bj
		}
	}

	return canonical(out)
}

func (p Polynomial) MulScalar(s int64) Polynomial {
	src := p.coeffs()
	inner := make([]int64, len(src))

	for i, c := range src {
		inner[i] = c * s
	}

	return canonical(inner)
}
