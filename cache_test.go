package gf

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jonathanmweiss/go-gf/field"
)

func TestMultiplicationCache(t *testing.T) {
	a := assert.New(t)

	t.Run("bothOrders", func(t *testing.T) {
		c := NewMultiplicationCache(2)
		irr := poly(1, 1, 1)

		_, ok := c.Lookup(2, irr, poly(0, 1), poly(1, 1))
		a.False(ok)

		c.Store(2, irr, poly(0, 1), poly(1, 1), poly(1))

		prod, ok := c.Lookup(2, irr, poly(0, 1), poly(1, 1))
		a.True(ok)
		a.Equal([]int64{1}, prod.Coefficients())

		prod, ok = c.Lookup(2, irr, poly(1, 1), poly(0, 1))
		a.True(ok)
		a.Equal([]int64{1}, prod.Coefficients())

		// same irreducible, other characteristic.
		_, ok = c.Lookup(3, irr, poly(0, 1), poly(1, 1))
		a.False(ok)
	})

	t.Run("eviction", func(t *testing.T) {
		c := NewMultiplicationCache(0)

		for i := 1; i <= DefaultCacheCapacity+1; i++ {
			c.Store(2, field.Monomial(i), poly(1), poly(1), poly(1))
		}

		a.Equal(DefaultCacheCapacity, c.Len())
		a.False(c.Contains(2, field.Monomial(1)))
		a.True(c.Contains(2, field.Monomial(2)))
		a.True(c.Contains(2, field.Monomial(DefaultCacheCapacity+1)))

		// storing into a held context evicts nothing.
		c.Store(2, field.Monomial(2), poly(0, 1), poly(1), poly(0, 1))
		a.Equal(DefaultCacheCapacity, c.Len())
		a.True(c.Contains(2, field.Monomial(2)))
	})

	t.Run("sharedBetweenFields", func(t *testing.T) {
		c := NewMultiplicationCache(DefaultCacheCapacity)

		f4 := mustField(t, 2, poly(1, 1, 1), WithCache(c))
		f9 := mustField(t, 3, poly(2, 0, 2), WithCache(c))

		_, err := f4.Multiply(poly(0, 1), poly(0, 1))
		a.NoError(err)

		_, err = f9.Multiply(poly(0, 1), poly(1, 1))
		a.NoError(err)

		a.Equal(2, c.Len())
		a.True(c.Contains(2, poly(1, 1, 1)))
		a.True(c.Contains(3, poly(1, 0, 1))) // the monic modulus.

		// a second GF(4) reuses the products of the first.
		other := mustField(t, 2, poly(1, 1, 1), WithCache(c))
		prod, ok := c.Lookup(2, other.Irreducible(), poly(0, 1), poly(0, 1))
		a.True(ok)
		a.Equal([]int64{1, 1}, prod.Coefficients())
	})

	t.Run("cachedProductsAreCorrect", func(t *testing.T) {
		f := mustField(t, 5, poly(2, 1, 1))
		x, y := poly(3, 4), poly(1, 2)

		first, err := f.Multiply(x, y)
		a.NoError(err)

		second, err := f.Multiply(y, x)
		a.NoError(err)

		a.True(first.Equal(second))
		a.True(first.Equal(f.fold(f.Ring().Mul(x, y))))
	})
}

func TestMultiplicationCacheConcurrency(t *testing.T) {
	a := assert.New(t)

	c := NewMultiplicationCache(DefaultCacheCapacity)
	f := mustField(t, 3, poly(1, 0, 1), WithCache(c))
	elems := f.Elements()

	want := make([][]field.Polynomial, len(elems))
	for i, x := range elems {
		want[i] = make([]field.Polynomial, len(elems))
		for j, y := range elems {
			want[i][j] = f.fold(f.Ring().Mul(x, y))
		}
	}

	wg := sync.WaitGroup{}
	wg.Add(8)

	for i := 0; i < 8; i++ {
		go func() {
			defer wg.Done()

			for i, x := range elems {
				for j, y := range elems {
					prod, err := f.Multiply(x, y)
					a.NoError(err)
					a.True(prod.Equal(want[i][j]))
				}
			}
		}()
	}

	wg.Wait()

	a.Equal(1, c.Len())
}
