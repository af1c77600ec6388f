package gf

import (
	"errors"
	"fmt"
	"slices"

	logging "github.com/ipfs/go-log/v2"

	"github.com/jonathanmweiss/go-gf/field"
)

var log = logging.Logger("gf")

// DefaultMaxElements bounds p^n for NewField: every element is materialized.
const DefaultMaxElements = 1 << 20

var (
	ErrDomainViolation   = errors.New("operand degree is not below the extension degree")
	ErrFieldTooLarge     = errors.New("field has too many elements to materialize")
	ErrDegenerateModulus = errors.New("irreducible polynomial must have positive degree")
)

type config struct {
	cache       *MultiplicationCache
	maxElements uint64
}

type Option func(*config)

// WithCache makes the field memoize products in c, which may be shared with
// other fields. Without it every field owns a private cache.
func WithCache(c *MultiplicationCache) Option {
	return func(cfg *config) {
		cfg.cache = c
	}
}

// WithMaxElements overrides DefaultMaxElements.
func WithMaxElements(n uint64) Option {
	return func(cfg *config) {
		cfg.maxElements = n
	}
}

/*
Field is GF(p^n) = Z_p[x] / (f) for an irreducible f of degree n. Elements are
polynomials of degree < n with coefficients in [0, p).

f is not checked for irreducibility; with a reducible f, Inverted fails on
zero divisors and the other operations describe the quotient ring.
*/
type Field struct {
	ring        *field.PolyRing
	irreducible field.Polynomial
	// x^n = reduction (mod f).
	reduction field.Polynomial
	degree    int
	size      uint64
	elements  []field.Polynomial
	cache     *MultiplicationCache
}

// NewField builds GF(p^n) from the monic form of irreducible and enumerates
// its p^n elements.
func NewField(p uint64, irreducible field.Polynomial, opts ...Option) (*Field, error) {
	cfg := config{maxElements: DefaultMaxElements}
	for _, opt := range opts {
		opt(&cfg)
	}

	ring, err := field.NewPolyRing(p)
	if err != nil {
		return nil, err
	}

	f := ring.Normalize(irreducible)
	n := f.Degree()
	if n < 1 {
		return nil, fmt.Errorf("%w: %v", ErrDegenerateModulus, irreducible)
	}

	size, ok := fieldSize(p, n, cfg.maxElements)
	if !ok {
		return nil, fmt.Errorf("%w: %d^%d > %d", ErrFieldTooLarge, p, n, cfg.maxElements)
	}

	if cfg.cache == nil {
		cfg.cache = NewMultiplicationCache(1)
	}

	fld := &Field{
		ring:        ring,
		irreducible: f,
		reduction:   ring.Sub(field.Monomial(n), f),
		degree:      n,
		size:        size,
		cache:       cfg.cache,
	}
	fld.elements = fld.enumerate()

	log.Debugf("constructed %v with %d elements", fld, size)

	return fld, nil
}

func fieldSize(p uint64, n int, limit uint64) (uint64, bool) {
	size := uint64(1)
	for i := 0; i < n; i++ {
		if size > limit/p {
			return 0, false
		}

		size *= p
	}

	return size, true
}

// enumerate starts from the constants and extends every element e of the
// previous round to e*x + c, n-1 times.
func (f *Field) enumerate() []field.Polynomial {
	p := f.ring.P()
	x := field.Monomial(1)

	elems := make([]field.Polynomial, 0, f.size)
	for c := uint64(0); c < p; c++ {
		elems = append(elems, field.Constant(int64(c)))
	}

	for i, k := 0, f.degree-1; i < k; i++ {
		next := make([]field.Polynomial, 0, uint64(len(elems))*p)
		for _, e := range elems {
			shifted := f.ring.Mul(e, x)
			for c := uint64(0); c < p; c++ {
				next = append(next, f.ring.Add(shifted, field.Constant(int64(c))))
			}
		}

		elems = next
	}

	return elems
}

func (f *Field) P() uint64 {
	return f.ring.P()
}

// Degree is the extension degree n.
func (f *Field) Degree() int {
	return f.degree
}

// Size is p^n.
func (f *Field) Size() uint64 {
	return f.size
}

// Irreducible returns the monic modulus.
func (f *Field) Irreducible() field.Polynomial {
	return f.irreducible
}

// Ring gives access to the un-reduced arithmetic of Z_p[x].
func (f *Field) Ring() *field.PolyRing {
	return f.ring
}

func (f *Field) One() field.Polynomial {
	return field.Constant(1)
}

// Elements returns all p^n elements, in enumeration order.
func (f *Field) Elements() []field.Polynomial {
	return slices.Clone(f.elements)
}

// Contains reports whether a, reduced modulo p, has degree < n.
func (f *Field) Contains(a field.Polynomial) bool {
	return f.ring.Reduce(a).Degree() < f.degree
}

func (f *Field) check(operands ...field.Polynomial) error {
	for _, a := range operands {
		if !f.Contains(a) {
			return fmt.Errorf("%w: %v has degree >= %d", ErrDomainViolation, a, f.degree)
		}
	}

	return nil
}

func (f *Field) Add(a, b field.Polynomial) (field.Polynomial, error) {
	if err := f.check(a, b); err != nil {
		return field.Polynomial{}, err
	}

	return f.ring.Add(a, b), nil
}

func (f *Field) Sub(a, b field.Polynomial) (field.Polynomial, error) {
	if err := f.check(a, b); err != nil {
		return field.Polynomial{}, err
	}

	return f.ring.Sub(a, b), nil
}

// Multiply returns a*b reduced modulo the irreducible. Products are memoized.
func (f *Field) Multiply(a, b field.Polynomial) (field.Polynomial, error) {
	if err := f.check(a, b); err != nil {
		return field.Polynomial{}, err
	}

	a, b = f.ring.Reduce(a), f.ring.Reduce(b)
	if prod, ok := f.cache.Lookup(f.P(), f.irreducible, a, b); ok {
		return prod, nil
	}

	prod := f.fold(f.ring.Mul(a, b))
	f.cache.Store(f.P(), f.irreducible, a, b, prod)

	return prod, nil
}

// fold rewrites every term c*x^d with d >= n as c*reduction*x^(d-n) until the
// degree drops below n.
func (f *Field) fold(prod field.Polynomial) field.Polynomial {
	for prod.Degree() >= f.degree {
		d := prod.Degree()
		c := uint64(prod.LeadCoeff())

		head := f.ring.MulScalar(field.Monomial(d), c)
		tail := f.ring.Mul(f.ring.MulScalar(f.reduction, c), field.Monomial(d-f.degree))

		prod = f.ring.Add(f.ring.Sub(prod, head), tail)
	}

	return prod
}

// Inverted returns the multiplicative inverse of a modulo the irreducible,
// from the Bézout identity x*a + y*f = gcd. a may have any degree.
func (f *Field) Inverted(a field.Polynomial) (field.Polynomial, error) {
	red, _ := f.ring.Mod(a, f.irreducible) // the irreducible is non-zero.
	if red.IsZero() {
		return field.Polynomial{}, fmt.Errorf("%w: zero has no inverse in %v", field.ErrNotInvertible, f)
	}

	gcd, x, _ := f.ring.ExtendedGCD(red, f.irreducible)
	if gcd.Degree() > 0 {
		return field.Polynomial{}, fmt.Errorf("%w: %v shares the factor %v with the modulus", field.ErrNotInvertible, a, gcd)
	}

	if c := uint64(gcd.Coefficient(0)); c != 1 {
		inv, err := f.ring.Field().Inverse(c)
		if err != nil {
			return field.Polynomial{}, err
		}

		x = f.ring.MulScalar(x, inv)
	}

	return f.ring.Mod(x, f.irreducible)
}

// Pow computes a^exp by repeated squaring. a^0 is One for every a, 0 included.
func (f *Field) Pow(a field.Polynomial, exp uint64) (field.Polynomial, error) {
	if err := f.check(a); err != nil {
		return field.Polynomial{}, err
	}

	result, base := f.One(), f.ring.Reduce(a)
	for exp > 0 {
		var err error
		if exp%2 == 1 {
			if result, err = f.Multiply(result, base); err != nil {
				return field.Polynomial{}, err
			}
		}

		exp /= 2
		if exp > 0 {
			if base, err = f.Multiply(base, base); err != nil {
				return field.Polynomial{}, err
			}
		}
	}

	return result, nil
}

// IsGenerator reports whether a has multiplicative order p^n - 1, that is
// a^((p^n-1)/r) != 1 for every prime r dividing p^n - 1.
func (f *Field) IsGenerator(a field.Polynomial) (bool, error) {
	if err := f.check(a); err != nil {
		return false, err
	}

	if f.ring.Reduce(a).IsZero() {
		return false, nil
	}

	q := f.size - 1
	for _, r := range field.PrimeFactors(q) {
		v, err := f.Pow(a, q/r)
		if err != nil {
			return false, err
		}

		if v.Equal(f.One()) {
			return false, nil
		}
	}

	return true, nil
}

// Generators returns every generator of the multiplicative group, in
// enumeration order. There are φ(p^n - 1) of them.
func (f *Field) Generators() []field.Polynomial {
	var gens []field.Polynomial

	for _, e := range f.elements {
		if ok, _ := f.IsGenerator(e); ok { // elements are in the domain.
			gens = append(gens, e)
		}
	}

	return gens
}

// OrderOfIrreducible is the order of x modulo the field's irreducible.
func (f *Field) OrderOfIrreducible() (uint64, error) {
	return f.ring.OrderOfIrreducible(f.irreducible)
}

func (f *Field) String() string {
	return fmt.Sprintf("GF(%d^%d) mod %v", f.P(), f.degree, f.irreducible)
}
