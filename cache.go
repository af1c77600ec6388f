package gf

import (
	"fmt"
	"strings"
	"sync"

	"github.com/jonathanmweiss/go-gf/field"
)

// DefaultCacheCapacity is the number of field contexts a cache keeps.
const DefaultCacheCapacity = 20

/*
MultiplicationCache memoizes field products, keyed first by the field context
(p, irreducible) and then by the operand pair. Lookups try both operand
orders, products being commutative.

At most capacity contexts are kept. Eviction is FIFO over whole contexts: a
new context beyond the capacity drops the oldest one with all its products.

A cache is safe for concurrent use and can be shared between fields through
WithCache.
*/
type MultiplicationCache struct {
	sync.Locker

	capacity int
	contexts map[string]map[string]field.Polynomial
	// insertion order of the context keys, oldest first.
	order []string
}

func NewMultiplicationCache(capacity int) *MultiplicationCache {
	if capacity <= 0 {
		capacity = DefaultCacheCapacity
	}

	return &MultiplicationCache{
		Locker:   &sync.Mutex{},
		capacity: capacity,
		contexts: make(map[string]map[string]field.Polynomial),
	}
}

func contextKey(p uint64, irreducible field.Polynomial) string {
	return fmt.Sprintf("%d:%v", p, irreducible.Coefficients())
}

func pairKey(a, b field.Polynomial) string {
	bldr := strings.Builder{}
	bldr.WriteString(fmt.Sprint(a.Coefficients()))
	bldr.WriteByte('|')
	bldr.WriteString(fmt.Sprint(b.Coefficients()))

	return bldr.String()
}

// Lookup returns the cached a*b in the field (p, irreducible), if any.
func (c *MultiplicationCache) Lookup(p uint64, irreducible, a, b field.Polynomial) (field.Polynomial, bool) {
	c.Lock()
	defer c.Unlock()

	products, ok := c.contexts[contextKey(p, irreducible)]
	if !ok {
		return field.Polynomial{}, false
	}

	if prod, ok := products[pairKey(a, b)]; ok {
		return prod, true
	}

	prod, ok := products[pairKey(b, a)]

	return prod, ok
}

// Store records a*b = product in the field (p, irreducible).
func (c *MultiplicationCache) Store(p uint64, irreducible, a, b, product field.Polynomial) {
	c.Lock()
	defer c.Unlock()

	key := contextKey(p, irreducible)

	products, ok := c.contexts[key]
	if !ok {
		if len(c.order) >= c.capacity {
			oldest := c.order[0]
			c.order = c.order[1:]
			delete(c.contexts, oldest)

			log.Debugf("multiplication cache: evicted context %s", oldest)
		}

		products = make(map[string]field.Polynomial)
		c.contexts[key] = products
		c.order = append(c.order, key)
	}

	products[pairKey(a, b)] = product
}

// Len returns the number of field contexts held.
func (c *MultiplicationCache) Len() int {
	c.Lock()
	defer c.Unlock()

	return len(c.contexts)
}

// Contains reports whether the field context (p, irreducible) is held.
func (c *MultiplicationCache) Contains(p uint64, irreducible field.Polynomial) bool {
	c.Lock()
	defer c.Unlock()

	_, ok := c.contexts[contextKey(p, irreducible)]

	return ok
}
