package field

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func factorsOf(fs []Factor) map[int][]int64 {
	out := make(map[int][]int64, len(fs))
	for _, f := range fs {
		out[f.Multiplicity] = f.Poly.Coefficients()
	}

	return out
}

// expand multiplies the factors back, times the leading coefficient.
func expand(r *PolyRing, lead uint64, fs []Factor) Polynomial {
	prod := Constant(int64(lead))
	for _, f := range fs {
		for i := 0; i < f.Multiplicity; i++ {
			prod = r.Mul(prod, f.Poly)
		}
	}

	return prod
}

func TestSquareFreeFactorization(t *testing.T) {
	a := assert.New(t)

	t.Run("repeatedRoot", func(t *testing.T) {
		r3 := mustRing(t, 3)

		// (x + 1)^2 (x + 2)
		fs, err := r3.SquareFreeFactorization(r3.FromRoots([]uint64{2, 2, 1}))
		a.NoError(err)
		a.Equal([]Factor{{Poly: poly(2, 1), Multiplicity: 1}, {Poly: poly(1, 1), Multiplicity: 2}}, fs)
		a.Equal("(1*x^1 +2)^1", fs[0].String())
	})

	t.Run("pthPower", func(t *testing.T) {
		r3 := mustRing(t, 3)

		// x^3 + 1 = (x + 1)^3 has a vanishing derivative.
		fs, err := r3.SquareFreeFactorization(poly(1, 0, 0, 1))
		a.NoError(err)
		a.Equal(map[int][]int64{3: {1, 1}}, factorsOf(fs))
	})

	t.Run("binary", func(t *testing.T) {
		r2 := mustRing(t, 2)

		// x^5 + x^3 + x = x (x^2 + x + 1)^2
		fs, err := r2.SquareFreeFactorization(poly(0, 1, 0, 1, 0, 1))
		a.NoError(err)
		a.Equal([]Factor{{Poly: poly(0, 1), Multiplicity: 1}, {Poly: poly(1, 1, 1), Multiplicity: 2}}, fs)
	})

	t.Run("mixedWithLead", func(t *testing.T) {
		r5 := mustRing(t, 5)

		// 3 (x - 4)^5 (x - 3)^2 (x - 2); (x - 4)^5 = x^5 + 1 over Z_5.
		f := r5.MulScalar(r5.FromRoots([]uint64{4, 4, 4, 4, 4, 3, 3, 2}), 3)

		fs, err := r5.SquareFreeFactorization(f)
		a.NoError(err)
		a.Equal([]Factor{
			{Poly: poly(3, 1), Multiplicity: 1},
			{Poly: poly(2, 1), Multiplicity: 2},
			{Poly: poly(1, 1), Multiplicity: 5},
		}, fs)

		a.True(expand(r5, 3, fs).Equal(f))
	})

	t.Run("squareFree", func(t *testing.T) {
		r7 := mustRing(t, 7)

		fs, err := r7.SquareFreeFactorization(poly(2, 0, 2))
		a.NoError(err)
		a.Equal(map[int][]int64{1: {1, 0, 1}}, factorsOf(fs))

		fs, err = r7.SquareFreeFactorization(Constant(4))
		a.NoError(err)
		a.Empty(fs)
	})

	t.Run("zero", func(t *testing.T) {
		r7 := mustRing(t, 7)

		_, err := r7.SquareFreeFactorization(poly(7, 0, 14))
		a.ErrorIs(err, ErrZeroPolynomial)
	})
}

func TestSquareFreeFactorizationRecombines(t *testing.T) {
	a := assert.New(t)

	for _, p := range []uint64{2, 3, 5, 7} {
		r := mustRing(t, p)

		for seed := uint64(1); seed <= 30; seed++ {
			base := randomPolynomial(r, seed, int(seed%4)+1)
			// force repeated factors, some of them p-th powers.
			f := r.Mul(r.Mul(base, base), r.FromRoots([]uint64{seed, seed, seed, seed + 1}))
			for i := uint64(0); i < p; i++ {
				f = r.Mul(f, r.FromRoots([]uint64{seed + 2}))
			}

			if r.Reduce(f).IsZero() {
				continue
			}

			fs, err := r.SquareFreeFactorization(f)
			a.NoError(err)

			lead := uint64(r.Reduce(f).LeadCoeff())
			a.True(expand(r, lead, fs).Equal(r.Reduce(f)), "%v over Z_%d", f, p)

			for i, fi := range fs {
				a.True(r.IsMonic(fi.Poly))
				a.Equal(0, r.GCD(fi.Poly, r.Derivative(fi.Poly)).Degree(), "%v is not square-free", fi.Poly)

				for _, fj := range fs[i+1:] {
					a.Equal(0, r.GCD(fi.Poly, fj.Poly).Degree(), "%v and %v share a factor", fi.Poly, fj.Poly)
				}
			}
		}
	}
}
