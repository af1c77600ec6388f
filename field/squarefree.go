package field

import (
	"cmp"
	"fmt"
	"slices"
)

// Factor is a square-free component together with its multiplicity.
type Factor struct {
	Poly         Polynomial
	Multiplicity int
}

func (f Factor) String() string {
	return fmt.Sprintf("(%v)^%d", f.Poly, f.Multiplicity)
}

// SquareFreeFactorization splits the normalized f into pairwise coprime monic
// square-free factors: f = lead * \prod Poly_i^Multiplicity_i. The factors are
// not necessarily irreducible.
//
// This is Yun's algorithm. When the derivative vanishes, f = g(x^p) = g(x)^p
// and g is queued with its multiplicities scaled by p. Results are sorted by
// multiplicity, then by polynomial.
func (r *PolyRing) SquareFreeFactorization(f Polynomial) ([]Factor, error) {
	g := r.Normalize(f)
	if g.IsZero() {
		return nil, fmt.Errorf("%w: square-free factorization of the zero polynomial", ErrZeroPolynomial)
	}

	type job struct {
		poly Polynomial
		mult int
	}

	var result []Factor

	p := int(r.P())
	stack := []job{{poly: g, mult: 1}}
	for len(stack) > 0 {
		j := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		if j.poly.Degree() < 1 {
			continue
		}

		c := r.Normalize(r.GCD(j.poly, r.Derivative(j.poly)))
		w, _ := r.Divide(j.poly, c)

		for i := 1; w.Degree() > 0; i++ {
			y := r.Normalize(r.GCD(w, c))

			fac, _ := r.Divide(w, y)
			if fac.Degree() > 0 {
				result = append(result, Factor{Poly: r.Normalize(fac), Multiplicity: i * j.mult})
			}

			w = y
			c, _ = r.Divide(c, y)
		}

		// what remains is a p-th power.
		if c.Degree() > 0 {
			stack = append(stack, job{poly: c.Unpowered(p), mult: j.mult * p})
		}
	}

	slices.SortFunc(result, func(a, b Factor) int {
		if c := cmp.Compare(a.Multiplicity, b.Multiplicity); c != 0 {
			return c
		}

		return a.Poly.Compare(b.Poly)
	})

	return result, nil
}
