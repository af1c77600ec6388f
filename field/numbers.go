package field

import (
	"math/big"
	"slices"

	"github.com/tuneinsight/lattigo/v6/utils/factorization"
	"lukechampine.com/uint128"
)

type primePower struct {
	prime  uint64
	amount int
}

// factorize splits n into prime powers, in ascending order of primes. The
// distinct primes come from lattigo's Pollard-rho/ECM factorization.
func factorize(n uint64) []primePower {
	if n <= 1 {
		return nil
	}

	var primes []uint64

	// Pollard-rho may hand back composite factors; split those again.
	stack := []uint64{n}
	for len(stack) > 0 {
		m := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		for _, f := range factorization.GetFactors(new(big.Int).SetUint64(m)) {
			if factorization.IsPrime(f) {
				primes = append(primes, f.Uint64())
			} else {
				stack = append(stack, f.Uint64())
			}
		}
	}

	slices.Sort(primes)
	primes = slices.Compact(primes)

	result := make([]primePower, len(primes))
	for i, prime := range primes {
		result[i] = primePower{prime: prime}
		for n%prime == 0 {
			result[i].amount++
			n /= prime
		}
	}

	return result
}

// divisors returns every divisor of n in ascending order.
func divisors(n uint64) []uint64 {
	if n == 0 {
		return nil
	}

	divs := []uint64{1}
	for _, pp := range factorize(n) {
		prev := len(divs)

		pk := uint64(1)
		for i := 0; i < pp.amount; i++ {
			pk *= pp.prime
			for _, d := range divs[:prev] {
				divs = append(divs, d*pk)
			}
		}
	}

	slices.Sort(divs)

	return divs
}

// moebius is the Möbius function: 0 if n has a squared prime factor,
// otherwise (-1)^(number of prime factors).
func moebius(n uint64) int {
	mu := 1
	for _, pp := range factorize(n) {
		if pp.amount > 1 {
			return 0
		}

		mu = -mu
	}

	return mu
}

// multiplicativeOrder returns the smallest k > 0 with a^k = 1 (mod n).
// The order modulo 1 is 1; 0 is returned when gcd(a, n) != 1.
func multiplicativeOrder(a, n uint64) uint64 {
	if n <= 1 {
		return 1
	}

	a %= n
	cur, k := a, uint64(1)
	for cur != 1 {
		if k >= n {
			return 0 // a is not a unit modulo n.
		}

		cur = mulMod(cur, a, n)
		k++
	}

	return k
}

// checkedPow returns base^exp, or false when it does not fit in 64 bits.
func checkedPow(base uint64, exp int) (uint64, bool) {
	acc := uint64(1)
	for i := 0; i < exp; i++ {
		prod := uint128.From64(acc).Mul64(base)
		if prod.Hi != 0 {
			return 0, false
		}

		acc = prod.Lo
	}

	return acc, true
}

// pPart writes n = p^k * m with p not dividing m.
func pPart(n, p uint64) (k int, m uint64) {
	m = n
	for m%p == 0 {
		m /= p
		k++
	}

	return k, m
}

// binomialMod computes C(n, k) mod p with Lucas' theorem.
func binomialMod(n, k uint64, f *PrimeField) uint64 {
	p := f.Modulus()
	result := uint64(1)

	for n > 0 || k > 0 {
		ni, ki := n%p, k%p
		if ki > ni {
			return 0
		}

		result = f.Mul(result, smallBinomial(ni, ki, f))
		n /= p
		k /= p
	}

	return result
}

// smallBinomial computes C(n, k) mod p for n < p.
func smallBinomial(n, k uint64, f *PrimeField) uint64 {
	k = min(k, n-k)

	num, den := uint64(1), uint64(1)
	for i := uint64(0); i < k; i++ {
		num = f.Mul(num, n-i)
		den = f.Mul(den, i+1)
	}

	inv, _ := f.Inverse(den) // den is a product of values in [1, p).

	return f.Mul(num, inv)
}

// PrimeFactors returns the distinct prime factors of n in ascending order.
func PrimeFactors(n uint64) []uint64 {
	pps := factorize(n)

	out := make([]uint64, len(pps))
	for i, pp := range pps {
		out[i] = pp.prime
	}

	return out
}
