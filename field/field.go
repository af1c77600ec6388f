package field

import (
	"errors"
	"fmt"
	"math/big"

	"github.com/tuneinsight/lattigo/v6/ring"
	"lukechampine.com/uint128"
)

// PrimeField is Z_p for a prime p. Elements are plain uint64 values in [0, p).
type PrimeField struct {
	prime     uint64
	generator uint64
	// distinct prime factors of p-1.
	factors []uint64
}

var (
	ErrPrimeTooLarge  = errors.New("supporting up to 63-bit prime")
	ErrInvalidModulus = errors.New("modulus must be a prime")

	errZeroInverse = fmt.Errorf("%w: zero has no inverse", ErrNotInvertible)
)

const maxBitUsage = 63

func NewPrimeField(prime uint64) (*PrimeField, error) {
	if prime >= (1 << maxBitUsage) {
		return nil, ErrPrimeTooLarge
	}

	if !isPrime(prime) {
		return nil, fmt.Errorf("%w: %d", ErrInvalidModulus, prime)
	}

	var (
		g       uint64
		factors []uint64
	)

	// ring.PrimitiveRoot starts its search at 3, which is either not a unit
	// or not needed for these two.
	switch prime {
	case 2:
		g = 1
	case 3:
		g, factors = 2, []uint64{2}
	default:
		var err error
		if g, factors, err = ring.PrimitiveRoot(prime, nil); err != nil {
			return nil, err
		}
	}

	return &PrimeField{
		prime:     prime,
		generator: g,
		factors:   factors,
	}, nil
}

// Probably prime is 100% accurate for 64-bit numbers.
func isPrime(n uint64) bool {
	return new(big.Int).SetUint64(n).ProbablyPrime(1)
}

func (f *PrimeField) Modulus() uint64 {
	return f.prime
}

// Generator returns a generator of the multiplicative group Z_p^*.
func (f *PrimeField) Generator() uint64 {
	return f.generator
}

// Factors returns the distinct prime factors of p-1.
func (f *PrimeField) Factors() []uint64 {
	return append([]uint64(nil), f.factors...)
}

func (f *PrimeField) Reduce(val uint64) uint64 {
	return val % f.prime
}

// ReduceSigned maps any int64 into [0, p).
func (f *PrimeField) ReduceSigned(val int64) uint64 {
	m := int64(f.prime)
	r := val % m
	if r < 0 {
		r += m
	}

	return uint64(r)
}

func (f *PrimeField) Add(a, b uint64) uint64 {
	if a == 0 {
		return b
	}

	tmp := a + b // can't overflow since adding two integers smaller than 2^63.
	if tmp >= f.prime {
		tmp -= f.prime
	}

	return tmp
}

func (f *PrimeField) Sub(a, b uint64) uint64 {
	if a < b {
		return f.prime - (b - a)
	}

	return a - b
}

func (f *PrimeField) Neg(e uint64) uint64 {
	if e == 0 {
		return 0
	}

	return f.prime - e
}

// Mul returns a * b (mod field prime).
func (f *PrimeField) Mul(a, b uint64) uint64 {
	if a == 0 || b == 0 {
		return 0
	}

	return mulMod(a, b, f.prime)
}

func mulMod(a, b, mod uint64) uint64 {
	return uint128.From64(a).Mul64(b).Mod64(mod)
}

// https://en.wikipedia.org/wiki/Exponentiation_by_squaring
func (f *PrimeField) Pow(base, exp uint64) uint64 {
	return powMod(base%f.prime, exp, f.prime)
}

func powMod(base, exp, mod uint64) uint64 {
	x := uint64(1)
	for exp > 0 {
		if exp%2 == 1 {
			x = mulMod(x, base, mod)
		}

		base = mulMod(base, base, mod)
		exp /= 2
	}

	return x % mod
}

func (f *PrimeField) Inverse(e uint64) (uint64, error) {
	// Fermat's little theorem: a^(p-1) = 1 (mod p), so a^(p-2) is the inverse of a.
	e = f.Reduce(e)
	if e == 0 {
		return 0, errZeroInverse
	}

	if f.prime == 2 {
		return 1, nil
	}

	return f.Pow(e, f.prime-2), nil
}

// Order returns the multiplicative order of e in Z_p^*.
func (f *PrimeField) Order(e uint64) (uint64, error) {
	e = f.Reduce(e)
	if e == 0 {
		return 0, fmt.Errorf("%w: zero has no multiplicative order", ErrInvalidArgument)
	}

	ord := f.prime - 1
	for _, q := range f.factors {
		for ord%q == 0 && f.Pow(e, ord/q) == 1 {
			ord /= q
		}
	}

	return ord, nil
}

// IsGenerator reports whether e generates Z_p^*.
func (f *PrimeField) IsGenerator(e uint64) bool {
	ord, err := f.Order(e)

	return err == nil && ord == f.prime-1
}

func (f *PrimeField) Equals(a, b uint64) bool {
	return f.Reduce(a) == f.Reduce(b)
}
