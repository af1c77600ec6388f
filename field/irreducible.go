package field

import (
	"fmt"
	"slices"
)

// MaxSearchOrder bounds p^n - 1 for IrreducibleOfDegree. Every divisor of
// p^n - 1 costs one cyclotomic factorization.
const MaxSearchOrder = 1 << 14

// IrreducibleOfDegree returns every monic irreducible polynomial of degree n
// over Z_p, sorted ascending.
//
// Each one divides Φ_m for a divisor m of p^n - 1 with ord_m(p) = n, that is
// m does not divide p^t - 1 for any proper divisor t of n.
func (r *PolyRing) IrreducibleOfDegree(n int) ([]Polynomial, error) {
	if n < 1 {
		return nil, fmt.Errorf("%w: irreducible polynomials of degree %d", ErrInvalidArgument, n)
	}

	q, ok := checkedPow(r.P(), n)
	if !ok || q-1 > MaxSearchOrder {
		return nil, fmt.Errorf("%w: %d^%d - 1 exceeds %d", ErrSearchTooLarge, r.P(), n, MaxSearchOrder)
	}

	var smaller []uint64
	for _, t := range divisors(uint64(n)) {
		if t == uint64(n) {
			continue
		}

		pt, _ := checkedPow(r.P(), int(t)) // pt < q.
		smaller = append(smaller, pt-1)
	}

	var result []Polynomial
	if n == 1 {
		result = append(result, Monomial(1))
	}

	for _, m := range divisors(q - 1) {
		if slices.ContainsFunc(smaller, func(s uint64) bool { return s%m == 0 }) {
			continue
		}

		log.Debugf("Z_%d: irreducible candidates of degree %d from Φ_%d", r.P(), n, m)

		factors, err := r.CyclotomicFactorization(m)
		if err != nil {
			return nil, err
		}

		for _, f := range factors {
			if f.Degree() == n {
				result = append(result, f)
			}
		}
	}

	slices.SortFunc(result, Polynomial.Compare)

	return result, nil
}

// IsIrreducible runs Rabin's test on the normalized f: f of degree d is
// irreducible iff gcd(f, x^(p^i) - x mod f) is trivial for i = 1..d/2.
// Constants, zero included, are not irreducible.
func (r *PolyRing) IsIrreducible(f Polynomial) bool {
	g := r.Normalize(f)

	deg := g.Degree()
	if deg < 1 {
		return false
	}

	x := Monomial(1)
	h, _ := r.Mod(x, g)

	for i := 1; i <= deg/2; i++ {
		h, _ = r.PowMod(h, r.P(), g)

		if r.GCD(g, r.Sub(h, x)).Degree() > 0 {
			return false
		}
	}

	return true
}
