package field

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRootCountPolicyString(t *testing.T) {
	a := assert.New(t)

	a.Equal("gcd", GCDPolicy.String())
	a.Equal("matrix", MatrixPolicy.String())
	a.Equal("RootCountPolicy(5)", RootCountPolicy(5).String())
}

func TestRoots(t *testing.T) {
	a := assert.New(t)
	r7 := mustRing(t, 7)

	// x (x-1) (x-2)^2
	f := r7.FromRoots([]uint64{0, 1, 2, 2})

	a.Equal([]uint64{0, 1, 2}, r7.FindRoots(f))
	a.Equal([]uint64{0, 1, 2}, r7.Roots(f))

	for _, policy := range []RootCountPolicy{GCDPolicy, MatrixPolicy} {
		n, err := r7.CountRoots(f, policy)
		a.NoError(err)
		a.Equal(3, n, policy)
	}

	hist, err := r7.CountMultipleRoots(f)
	a.NoError(err)
	a.Equal(map[int]int{1: 2, 2: 1}, hist)

	t.Run("noRoots", func(t *testing.T) {
		// x^2 + 1 is irreducible over Z_7.
		g := poly(1, 0, 1)
		a.Nil(r7.FindRoots(g))
		a.Nil(r7.Roots(g))

		hist, err := r7.CountMultipleRoots(g)
		a.NoError(err)
		a.Empty(hist)

		n, err := r7.CountRoots(g, MatrixPolicy)
		a.NoError(err)
		a.Equal(0, n)
	})

	t.Run("multiplicityOfCharacteristic", func(t *testing.T) {
		r3 := mustRing(t, 3)

		// x^3 - 1 = (x - 1)^3 over Z_3: the formal derivatives all vanish.
		g := poly(-1, 0, 0, 1)
		a.Equal([]uint64{1}, r3.Roots(g))

		hist, err := r3.CountMultipleRoots(g)
		a.NoError(err)
		a.Equal(map[int]int{3: 1}, hist)

		for _, policy := range []RootCountPolicy{GCDPolicy, MatrixPolicy} {
			n, err := r3.CountRoots(g, policy)
			a.NoError(err)
			a.Equal(1, n)
		}
	})

	t.Run("largePrime", func(t *testing.T) {
		r := mustRing(t, 65537)

		a.Equal([]uint64{3, 1000, 65000}, r.Roots(r.FromRoots([]uint64{65000, 3, 1000})))
		a.Equal([]uint64{0, 5}, r.Roots(r.FromRoots([]uint64{5, 0})))
		a.Equal([]uint64{7, 9}, r.Roots(r.FromRoots([]uint64{7, 9, 7})))

		// 65537 = 1 (mod 4), so x^2 + 1 splits as well.
		g := r.Mul(r.FromRoots([]uint64{11}), poly(1, 0, 1))
		roots := r.Roots(g)
		a.Len(roots, 3)
		for _, v := range roots {
			a.Equal(uint64(0), r.Evaluate(g, v))
		}

		n, err := r.CountRoots(g, GCDPolicy)
		a.NoError(err)
		a.Equal(3, n)
	})

	t.Run("zeroPolynomial", func(t *testing.T) {
		n, err := r7.CountRoots(Polynomial{}, GCDPolicy)
		a.NoError(err)
		a.Equal(7, n)

		n, err = r7.CountRoots(poly(7, 14), MatrixPolicy)
		a.NoError(err)
		a.Equal(7, n)

		a.Equal([]uint64{0, 1, 2, 3, 4, 5, 6}, r7.Roots(Polynomial{}))

		_, err = r7.CountMultipleRoots(poly(0, 7))
		a.ErrorIs(err, ErrZeroPolynomial)
		a.ErrorIs(err, ErrPrecondition)
	})

	t.Run("errors", func(t *testing.T) {
		_, err := r7.CountRoots(f, RootCountPolicy(7))
		a.ErrorIs(err, ErrUnknownPolicy)

		r1031 := mustRing(t, 1031)
		_, err = r1031.CountRoots(poly(1, 1), MatrixPolicy)
		a.ErrorIs(err, ErrSearchTooLarge)

		n, err := r1031.CountRoots(poly(1, 1), GCDPolicy)
		a.NoError(err)
		a.Equal(1, n)
	})
}

func TestRootsAgree(t *testing.T) {
	a := assert.New(t)

	for _, p := range []uint64{2, 3, 5, 7, 11, 13} {
		r := mustRing(t, p)

		for seed := uint64(1); seed <= 40; seed++ {
			// a random cofactor times a few forced roots.
			cofactor := randomPolynomial(r, seed, int(seed%6))
			forced := r.FromRoots([]uint64{seed, seed * seed, 3 * seed})
			f := r.Mul(cofactor, forced)

			brute := r.FindRoots(f)
			a.Equal(brute, r.Roots(f), "%v over Z_%d", f, p)

			byGCD, err := r.CountRoots(f, GCDPolicy)
			a.NoError(err)

			byMatrix, err := r.CountRoots(f, MatrixPolicy)
			a.NoError(err)

			a.Equal(len(brute), byGCD, "%v over Z_%d", f, p)
			a.Equal(byGCD, byMatrix, "%v over Z_%d", f, p)

			if f.IsZero() {
				continue
			}

			hist, err := r.CountMultipleRoots(f)
			a.NoError(err)

			total := 0
			for _, n := range hist {
				total += n
			}
			a.Equal(len(brute), total, "%v over Z_%d", f, p)
		}
	}
}

func BenchmarkRoots(b *testing.B) {
	r := mustRing(b, 65537)
	f := r.FromRoots([]uint64{1, 2, 3, 5, 8, 13, 21, 34, 55, 89})

	b.Run("Roots", func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			r.Roots(f)
		}
	})

	b.Run("FindRoots", func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			r.FindRoots(f)
		}
	})
}
