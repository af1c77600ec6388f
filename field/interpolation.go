package field

import "fmt"

var (
	errPointsSizeMismatch = fmt.Errorf("%w: points size mismatch", ErrInvalidArgument)
	errNonUniqueXs        = fmt.Errorf("%w: non-unique x values", ErrInvalidArgument)
)

// Interpolate returns the unique polynomial of degree < len(xs) through the
// points (xs[i], ys[i]) over Z_p. The xs must be distinct modulo p.
//
// Interpolation follows the Lagrange method, O(n^2) in total:
//  1. m(x) = \prod (x - x_i).
//  2. q_i(x) = m(x) / (x - x_i), by synthetic division.
//  3. l_i = q_i / q_i(x_i).
//  4. the result is \sum y_i * l_i.
func (r *PolyRing) Interpolate(xs, ys []uint64) (Polynomial, error) {
	if err := r.validateInterpolationPoints(xs, ys); err != nil {
		return Polynomial{}, err
	}

	m := r.lift(r.FromRoots(xs))

	sum := make([]uint64, max(len(xs), 1))
	for i, xi := range xs {
		qi := r.mDivMi(m, xi)

		s := r.Evaluate(wrap(qi), xi)
		sinv, err := r.fld.Inverse(s)
		if err != nil {
			return Polynomial{}, err
		}

		scale := r.fld.Mul(sinv, r.fld.Reduce(ys[i]))
		for j, c := range qi {
			sum[j] = r.fld.Add(sum[j], r.fld.Mul(c, scale))
		}
	}

	return wrap(trimU(sum)), nil
}

/*
mDivMi divides m by (x - xi). This is quicker than the long division method
since the divisor is monic of degree 1 and there is no remainder.
*/
func (r *PolyRing) mDivMi(m []uint64, xi uint64) []uint64 {
	ui := r.fld.Reduce(xi)

	q := make([]uint64, len(m)-1)
	carry := uint64(0)
	for i := len(m) - 1; i > 0; i-- {
		carry = r.fld.Add(m[i], r.fld.Mul(carry, ui))
		q[i-1] = carry
	}

	return q
}

func (r *PolyRing) validateInterpolationPoints(xs, ys []uint64) error {
	if len(xs) != len(ys) {
		return errPointsSizeMismatch
	}

	mapXs := make(map[uint64]struct{})
	for _, x := range xs {
		mapXs[r.fld.Reduce(x)] = struct{}{}
	}

	if len(mapXs) != len(xs) {
		return errNonUniqueXs
	}

	return nil
}
