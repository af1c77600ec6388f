package field

import "fmt"

func isOne(a Polynomial) bool {
	return a.Equal(Constant(1))
}

// OrderOfIrreducible returns the multiplicative order of x modulo the
// irreducible f, a divisor of p^m - 1 where m = deg(f).
//
// For every prime power r^a of q = p^m - 1 it finds the largest e <= a with
// x^(q/r^e) = 1; the r-part of the order is then r^(a-e).
func (r *PolyRing) OrderOfIrreducible(f Polynomial) (uint64, error) {
	if !r.IsIrreducible(f) {
		return 0, fmt.Errorf("%v: %w", f, ErrNotIrreducible)
	}

	g := r.Normalize(f)
	if g.Coefficient(0) == 0 {
		return 0, fmt.Errorf("%w: x has no order modulo %v", ErrNotInvertible, g)
	}

	q, ok := checkedPow(r.P(), g.Degree())
	if !ok {
		return 0, fmt.Errorf("%w: %d^%d overflows", ErrSearchTooLarge, r.P(), g.Degree())
	}
	q--

	x := Monomial(1)
	order := uint64(1)

	for _, pp := range factorize(q) {
		e, cur := 0, q
		for e < pp.amount {
			xp, _ := r.PowMod(x, cur/pp.prime, g)
			if !isOne(xp) {
				break
			}

			cur /= pp.prime
			e++
		}

		part, _ := checkedPow(pp.prime, pp.amount-e) // divides q.
		order *= part
	}

	return order, nil
}

// Order returns the smallest t > 0 with x^t = 1 modulo f, for any f not
// divisible by x. It walks x^r mod f until it hits a constant c; then
// t = r * ord(c) in Z_p^*.
func (r *PolyRing) Order(f Polynomial) (uint64, error) {
	g := r.Reduce(f)
	if g.Degree() < 1 {
		return 0, fmt.Errorf("%w: order modulo the constant %v", ErrInvalidArgument, g)
	}

	if g.Coefficient(0) == 0 {
		return 0, fmt.Errorf("%w: x is a zero divisor modulo %v", ErrNotInvertible, g)
	}

	x := Monomial(1)
	h, _ := r.Mod(x, g)

	steps := uint64(1)
	for h.Degree() > 0 {
		h, _ = r.Mod(r.Mul(h, x), g)
		steps++
	}

	// x is a unit, so is every power of it: c != 0.
	ordC, err := r.fld.Order(uint64(h.Coefficient(0)))
	if err != nil {
		return 0, err
	}

	return steps * ordC, nil
}
