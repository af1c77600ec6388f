package field

import (
	"fmt"
	"slices"
)

// RootCountPolicy selects how CountRoots counts the distinct roots in Z_p.
type RootCountPolicy int

const (
	// GCDPolicy counts deg(gcd(f, x^p - x)).
	GCDPolicy RootCountPolicy = iota
	// MatrixPolicy applies the König-Rados theorem: f has
	// (p-1) - rank(C) distinct non-zero roots, where C is the circulant matrix
	// of f reduced modulo x^(p-1) - 1. Requires p <= 1024.
	MatrixPolicy
)

func (p RootCountPolicy) String() string {
	switch p {
	case GCDPolicy:
		return "gcd"
	case MatrixPolicy:
		return "matrix"
	default:
		return fmt.Sprintf("RootCountPolicy(%d)", int(p))
	}
}

// CountRoots returns the number of distinct roots of f in Z_p. The zero
// polynomial has p of them.
func (r *PolyRing) CountRoots(f Polynomial, policy RootCountPolicy) (int, error) {
	g := r.Reduce(f)
	if g.IsZero() {
		return int(r.P()), nil
	}

	switch policy {
	case GCDPolicy:
		return r.linearPart(g).Degree(), nil
	case MatrixPolicy:
		return r.countRootsMatrix(g)
	default:
		return 0, fmt.Errorf("%w: %v", ErrUnknownPolicy, policy)
	}
}

// linearPart returns gcd(g, x^p - x): the product of the distinct linear
// factors of g, up to a unit. g must be non-zero.
func (r *PolyRing) linearPart(g Polynomial) Polynomial {
	x := Monomial(1)
	xp, _ := r.PowMod(x, r.P(), g)

	return r.GCD(g, r.Sub(xp, x))
}

func (r *PolyRing) countRootsMatrix(g Polynomial) (int, error) {
	p := r.P()
	if p > maxTablePrime {
		return 0, fmt.Errorf("%w: %v-policy needs a %dx%d matrix", ErrSearchTooLarge, MatrixPolicy, p-1, p-1)
	}

	// fold modulo x^(p-1) - 1.
	n := int(p - 1)
	folded := make([]uint64, n)
	for i, c := range r.lift(g) {
		folded[i%n] = r.fld.Add(folded[i%n], c)
	}

	count := n - r.fld.rank(circulant(folded))
	if g.Coefficient(0) == 0 {
		count++
	}

	return count, nil
}

// CountMultipleRoots returns a histogram multiplicity -> number of distinct
// roots in Z_p with exactly that multiplicity.
//
// A root has multiplicity > k iff the Hasse derivatives of order 0..k all
// vanish there, so the roots of gcd(f, D1 f, ..., Dk f) are exactly those.
func (r *PolyRing) CountMultipleRoots(f Polynomial) (map[int]int, error) {
	g := r.Reduce(f)
	if g.IsZero() {
		return nil, fmt.Errorf("%w: multiple roots of the zero polynomial", ErrZeroPolynomial)
	}

	hist := map[int]int{}

	acc := g
	prev := r.linearPart(acc).Degree()
	for k := 1; prev > 0; k++ {
		acc = r.GCD(acc, r.HasseDerivative(g, k))

		cur := r.linearPart(acc).Degree()
		if prev > cur {
			hist[k] = prev - cur
		}

		prev = cur
	}

	return hist, nil
}

// FindRoots evaluates f at every element of Z_p: O(p*deg f).
func (r *PolyRing) FindRoots(f Polynomial) []uint64 {
	g := r.Reduce(f)

	var roots []uint64
	for v := uint64(0); v < r.P(); v++ {
		if r.Evaluate(g, v) == 0 {
			roots = append(roots, v)
		}
	}

	return roots
}

// Roots returns the distinct roots of f in Z_p in ascending order, the same
// set as FindRoots.
//
// It isolates the linear part h = gcd(f, x^p - x), drops the root 0 and splits
// h with gcd(h, (x+s)^((p-1)/2) - 1) for s = 0, 1, ... until every piece is
// linear. Pieces are kept on a work stack.
func (r *PolyRing) Roots(f Polynomial) []uint64 {
	g := r.Reduce(f)
	if g.IsZero() || r.P() == 2 {
		return r.FindRoots(g)
	}

	if g.Degree() == 0 {
		return nil
	}

	var roots []uint64

	x := Monomial(1)
	lin := r.Normalize(r.linearPart(g))
	if lin.Degree() > 0 && lin.Coefficient(0) == 0 {
		roots = append(roots, 0)
		lin, _ = r.Divide(lin, x)
	}

	half := (r.P() - 1) / 2
	stack := []Polynomial{lin}

	for len(stack) > 0 {
		h := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		switch h.Degree() {
		case 0:
			continue
		case 1:
			// monic: x + c.
			roots = append(roots, r.fld.Neg(uint64(h.Coefficient(0))))
			continue
		}

		split := false
		for s := uint64(0); s < r.P() && !split; s++ {
			w, _ := r.PowMod(r.Add(x, r.constant(s)), half, h)

			d := r.Normalize(r.GCD(h, r.Sub(w, Constant(1))))
			if d.Degree() == 0 || d.Degree() == h.Degree() {
				continue
			}

			rest, _ := r.Divide(h, d)
			stack = append(stack, d, r.Normalize(rest))
			split = true
		}

		if !split {
			roots = append(roots, r.FindRoots(h)...)
		}
	}

	slices.Sort(roots)

	return roots
}
