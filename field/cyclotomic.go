package field

import (
	"fmt"
	"slices"

	logging "github.com/ipfs/go-log/v2"
)

var log = logging.Logger("field")

// binomial returns x^d - 1.
func binomial(d uint64) Polynomial {
	inner := make([]int64, d+1)
	inner[0], inner[d] = -1, 1

	return Polynomial{inner: inner}
}

// CyclotomicPolynomial builds Φ_order over Z_p by Möbius inversion:
// Φ_n = ∏_{d|n} (x^d - 1)^μ(n/d).
// When p divides order = p^k*m, Φ_order = Φ_m^((p-1)*p^(k-1)) over Z_p.
func (r *PolyRing) CyclotomicPolynomial(order uint64) (Polynomial, error) {
	if order == 0 {
		return Polynomial{}, fmt.Errorf("%w: cyclotomic polynomial of order 0", ErrInvalidArgument)
	}

	k, m := pPart(order, r.P())

	phi, err := r.coprimeCyclotomic(m)
	if err != nil {
		return Polynomial{}, err
	}

	if k == 0 {
		return phi, nil
	}

	mult, err := r.pPartMultiplicity(k, phi.Degree())
	if err != nil {
		return Polynomial{}, err
	}

	return r.pow(phi, mult), nil
}

// coprimeCyclotomic computes Φ_m for p not dividing m.
func (r *PolyRing) coprimeCyclotomic(m uint64) (Polynomial, error) {
	num, den := Constant(1), Constant(1)

	for d := uint64(1); d*d <= m; d++ {
		if m%d != 0 {
			continue
		}

		pair := []uint64{d, m / d}
		if d*d == m {
			pair = pair[:1]
		}

		for _, e := range pair {
			switch moebius(m / e) {
			case 1:
				num = r.Mul(num, binomial(e))
			case -1:
				den = r.Mul(den, binomial(e))
			}
		}
	}

	return r.Divide(num, den)
}

// pPartMultiplicity returns (p-1)*p^(k-1), refusing results whose degree
// would exceed maxDegree.
func (r *PolyRing) pPartMultiplicity(k, deg int) (uint64, error) {
	p := r.P()

	pk, ok := checkedPow(p, k-1)
	if !ok || pk > maxDegree {
		return 0, fmt.Errorf("%w: p-part multiplicity %d^%d", ErrSearchTooLarge, p, k-1)
	}

	mult := (p - 1) * pk
	if mult > maxDegree || uint64(max(deg, 1))*mult > maxDegree {
		return 0, fmt.Errorf("%w: p-part multiplicity %d", ErrSearchTooLarge, mult)
	}

	return mult, nil
}

// pow raises a to exp without any modulus.
func (r *PolyRing) pow(a Polynomial, exp uint64) Polynomial {
	acc, base := Constant(1), r.Reduce(a)

	for exp > 0 {
		if exp%2 == 1 {
			acc = r.Mul(acc, base)
		}

		exp /= 2
		if exp > 0 {
			base = r.Mul(base, base)
		}
	}

	return acc
}

// cosetPolynomial sums x^e over the cyclotomic coset {i*p^j mod n}. Modulo
// Φ_n it is fixed by the Frobenius map, so gcd(f, R + c) over all constants c
// splits any factor f of Φ_n.
func (r *PolyRing) cosetPolynomial(i, n uint64) Polynomial {
	p := r.P() % n
	inner := make([]int64, n)

	e := i % n
	for inner[e] == 0 {
		inner[e] = 1
		e = mulMod(e, p, n)
	}

	return canonical(inner)
}

// CyclotomicFactorization splits Φ_order into its monic irreducible factors,
// each of degree d = ord_m(p) where m is the p-free part of order. The
// factors are sorted ascending; when p divides order each one is repeated
// (p-1)*p^(k-1) times.
func (r *PolyRing) CyclotomicFactorization(order uint64) ([]Polynomial, error) {
	if order == 0 {
		return nil, fmt.Errorf("%w: cyclotomic factorization of order 0", ErrInvalidArgument)
	}

	k, m := pPart(order, r.P())

	phi, err := r.coprimeCyclotomic(m)
	if err != nil {
		return nil, err
	}

	d := int(multiplicativeOrder(r.P(), m))
	factors := []Polynomial{phi}

	for i := uint64(1); i < m && !allOfDegree(factors, d); i++ {
		rp := r.cosetPolynomial(i, m)

		next := make([]Polynomial, 0, len(factors))
		for _, f := range factors {
			if f.Degree() <= d {
				next = append(next, f)
				continue
			}

			next = append(next, r.splitByCoset(f, rp)...)
		}

		log.Debugf("Φ_%d over Z_%d: %d factors after coset %d", m, r.P(), len(next), i)
		factors = next
	}

	for i := range factors {
		factors[i] = r.Normalize(factors[i])
	}

	slices.SortFunc(factors, Polynomial.Compare)

	if k == 0 {
		return factors, nil
	}

	mult, err := r.pPartMultiplicity(k, phi.Degree())
	if err != nil {
		return nil, err
	}

	repeated := make([]Polynomial, 0, uint64(len(factors))*mult)
	for _, f := range factors {
		for i := uint64(0); i < mult; i++ {
			repeated = append(repeated, f)
		}
	}

	return repeated, nil
}

func allOfDegree(fs []Polynomial, d int) bool {
	for _, f := range fs {
		if f.Degree() > d {
			return false
		}
	}

	return true
}

// splitByCoset returns the non-trivial parts gcd(f, R + c), c in Z_p. The
// parts are pairwise coprime and their product is f up to a unit.
func (r *PolyRing) splitByCoset(f, rp Polynomial) []Polynomial {
	reduced, _ := r.Mod(rp, f) // f has positive degree.

	var parts []Polynomial

	covered := 0
	for c := uint64(0); c < r.P() && covered < f.Degree(); c++ {
		g := r.GCD(f, r.Add(reduced, r.constant(c)))
		if g.Degree() == 0 {
			continue
		}

		parts = append(parts, g)
		covered += g.Degree()
	}

	if len(parts) == 0 {
		return []Polynomial{f}
	}

	return parts
}
