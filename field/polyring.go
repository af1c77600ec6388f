package field

import "fmt"

// maxTablePrime bounds the primes for which the p*p division table is built.
const maxTablePrime = 1 << 10

// PolyRing is Z_p[x] for a fixed prime p. Every operation reduces its operands
// modulo p first and never mutates them; results are canonical with
// coefficients in [0, p).
type PolyRing struct {
	fld   *PrimeField
	table divisionTable
}

// divisionTable answers c / a in Z_p in O(1). cells[c*p+a] = b such that
// a*b = c (mod p), built once for small primes.
type divisionTable struct {
	fld   *PrimeField
	cells []uint16
}

func newDivisionTable(f *PrimeField) divisionTable {
	p := f.Modulus()
	if p > maxTablePrime {
		return divisionTable{fld: f}
	}

	cells := make([]uint16, p*p)
	for a := uint64(1); a < p; a++ {
		for b := uint64(1); b < p; b++ {
			cells[(a*b%p)*p+a] = uint16(b)
		}
	}

	return divisionTable{fld: f, cells: cells}
}

func (t divisionTable) div(c, a uint64) uint64 {
	if t.cells != nil {
		return uint64(t.cells[c*t.fld.Modulus()+a])
	}

	inv, _ := t.fld.Inverse(a) // a is a non-zero leading coefficient.

	return t.fld.Mul(c, inv)
}

// NewPolyRing constructs Z_p[x]. p must be a prime.
func NewPolyRing(p uint64) (*PolyRing, error) {
	f, err := NewPrimeField(p)
	if err != nil {
		return nil, err
	}

	return &PolyRing{
		fld:   f,
		table: newDivisionTable(f),
	}, nil
}

func (r *PolyRing) P() uint64 {
	return r.fld.Modulus()
}

// Field returns the coefficient field Z_p.
func (r *PolyRing) Field() *PrimeField {
	return r.fld
}

// ---------- utilities ----------

// lift returns the coefficients of a reduced modulo p, canonical.
func (r *PolyRing) lift(a Polynomial) []uint64 {
	src := a.coeffs()

	out := make([]uint64, len(src))
	for i, c := range src {
		out[i] = r.fld.ReduceSigned(c)
	}

	return trimU(out)
}

func trimU(cs []uint64) []uint64 {
	i := len(cs) - 1
	for i > 0 && cs[i] == 0 {
		i--
	}

	if i < 0 {
		return []uint64{0}
	}

	return cs[:i+1]
}

// wrap turns reduced coefficients back into a Polynomial. p < 2^63, so every
// value fits an int64.
func wrap(cs []uint64) Polynomial {
	inner := make([]int64, len(cs))
	for i, c := range cs {
		inner[i] = int64(c)
	}

	return canonical(inner)
}

func (r *PolyRing) constant(c uint64) Polynomial {
	return Constant(int64(r.fld.Reduce(c)))
}

// Reduce folds every coefficient of a into [0, p).
func (r *PolyRing) Reduce(a Polynomial) Polynomial {
	return a.Modified(int64(r.P()))
}

// ---------- Poly ops ----------

func (r *PolyRing) Add(a, b Polynomial) Polynomial {
	ac, bc := r.lift(a), r.lift(b)

	out := make([]uint64, max(len(ac), len(bc)))
	for i := range out {
		out[i] = r.fld.Add(at(ac, i), at(bc, i))
	}

	return wrap(trimU(out))
}

func (r *PolyRing) Sub(a, b Polynomial) Polynomial {
	ac, bc := r.lift(a), r.lift(b)

	out := make([]uint64, max(len(ac), len(bc)))
	for i := range out {
		out[i] = r.fld.Sub(at(ac, i), at(bc, i))
	}

	return wrap(trimU(out))
}

func at(cs []uint64, i int) uint64 {
	if i < len(cs) {
		return cs[i]
	}

	return 0
}

func (r *PolyRing) Mul(a, b Polynomial) Polynomial {
	return wrap(r.mulU(r.lift(a), r.lift(b)))
}

// Perform schoolbook convolution: O(n*m).
func (r *PolyRing) mulU(a, b []uint64) []uint64 {
	out := make([]uint64, len(a)+len(b)-1)

	// binomials such as x^d - 1 are common operands, skip their zeroes upfront.
	nz := make([]int, 0, len(b))
	for j, bj := range b {
		if bj != 0 {
			nz = append(nz, j)
		}
	}

	for i, ai := range a {
		if ai == 0 {
			continue
		}

		for _, j := range nz {
			out[i+j] = r.fld.Add(out[i+j], r.fld.Mul(ai, b[j]))
		}
	}

	return trimU(out)
}

func (r *PolyRing) MulScalar(a Polynomial, scalar uint64) Polynomial {
	s := r.fld.Reduce(scalar)
	ac := r.lift(a)

	for i := range ac {
		ac[i] = r.fld.Mul(ac[i], s)
	}

	return wrap(trimU(ac))
}

// Following Algorithm 2.5 (Polynomial division with remainder) in
// `Modern Computer Algebra` by Joachim von zur Gathen and Jürgen Gerhard
//
// returns q, rem such that a = q*b + rem and deg(rem) < deg(b).
func (r *PolyRing) DivMod(a, b Polynomial) (q Polynomial, rem Polynomial, err error) {
	divisor := r.lift(b)
	if len(divisor) == 1 && divisor[0] == 0 {
		return Polynomial{}, Polynomial{}, ErrDivisionByZero
	}

	rest := r.lift(a)
	n, m := len(rest)-1, len(divisor)-1

	if n < m {
		return Polynomial{}, wrap(rest), nil
	}

	lead := divisor[m]
	qInner := make([]uint64, n-m+1)

	for i := n; i >= m; i-- {
		if rest[i] == 0 {
			continue
		}

		c := r.table.div(rest[i], lead)
		qInner[i-m] = c

		for j := 0; j <= m; j++ {
			rest[i-m+j] = r.fld.Sub(rest[i-m+j], r.fld.Mul(divisor[j], c))
		}

		if rest[i] != 0 {
			return Polynomial{}, Polynomial{}, errDivisionInvariant
		}
	}

	return wrap(trimU(qInner)), wrap(trimU(rest)), nil
}

func (r *PolyRing) Divide(a, b Polynomial) (Polynomial, error) {
	q, _, err := r.DivMod(a, b)
	return q, err
}

func (r *PolyRing) Mod(a, b Polynomial) (Polynomial, error) {
	_, rem, err := r.DivMod(a, b)
	return rem, err
}

// GCD is the classical Euclidean algorithm. The result is not made monic;
// gcd(0, 0) is 0.
func (r *PolyRing) GCD(a, b Polynomial) Polynomial {
	a, b = r.Reduce(a), r.Reduce(b)

	for !a.IsZero() && !b.IsZero() {
		rem, _ := r.Mod(a, b) // b is non-zero.
		a, b = b, rem
	}

	if a.IsZero() {
		return b
	}

	return a
}

// ExtendedGCD returns g = gcd(a, b) and x, y such that a*x + b*y = g.
func (r *PolyRing) ExtendedGCD(a, b Polynomial) (gcd, x, y Polynomial) {
	A, B := r.Reduce(a), r.Reduce(b)

	// Invariants:
	//   A = x0*a + y0*b
	//   B = x1*a + y1*b
	x0, x1 := Constant(1), Constant(0)
	y0, y1 := Constant(0), Constant(1)

	for !B.IsZero() {
		q, rem, _ := r.DivMod(A, B)
		A, B = B, rem

		// following Bézout's identity:
		// (x0, x1) = (x1, x0 - q*x1)
		x0, x1 = x1, r.Sub(x0, r.Mul(q, x1))
		// (y0, y1) = (y1, y0 - q*y1)
		y0, y1 = y1, r.Sub(y0, r.Mul(q, y1))
	}

	return A, x0, y0
}

// Normalize scales a so its leading coefficient is 1. The zero polynomial
// stays zero.
func (r *PolyRing) Normalize(a Polynomial) Polynomial {
	ac := r.lift(a)

	lead := ac[len(ac)-1]
	if lead == 0 || lead == 1 {
		return wrap(ac)
	}

	inv, _ := r.fld.Inverse(lead)

	return r.MulScalar(wrap(ac), inv)
}

// IsMonic reports whether the reduced leading coefficient is 1.
func (r *PolyRing) IsMonic(a Polynomial) bool {
	ac := r.lift(a)
	return ac[len(ac)-1] == 1
}

func (r *PolyRing) Evaluate(a Polynomial, x uint64) uint64 {
	ac := r.lift(a)
	x = r.fld.Reduce(x)

	// horner's rule:
	result := uint64(0)
	for i := len(ac) - 1; i >= 0; i-- {
		result = r.fld.Add(ac[i], r.fld.Mul(x, result))
	}

	return result
}

func (r *PolyRing) Derivative(a Polynomial) Polynomial {
	ac := r.lift(a)
	if len(ac) == 1 {
		return Polynomial{}
	}

	out := make([]uint64, len(ac)-1)
	for power := 1; power < len(ac); power++ {
		out[power-1] = r.fld.Mul(r.fld.Reduce(uint64(power)), ac[power])
	}

	return wrap(trimU(out))
}

// HasseDerivative returns the k-th Hasse derivative sum C(i, k) a_i x^(i-k).
// Unlike the k-th formal derivative it does not vanish for k >= p: a root has
// multiplicity at least m iff the Hasse derivatives of order < m vanish there.
func (r *PolyRing) HasseDerivative(a Polynomial, k int) Polynomial {
	ac := r.lift(a)
	if k < 0 {
		return Polynomial{}
	}

	if k >= len(ac) {
		return Polynomial{}
	}

	out := make([]uint64, len(ac)-k)
	for i := k; i < len(ac); i++ {
		out[i-k] = r.fld.Mul(binomialMod(uint64(i), uint64(k), r.fld), ac[i])
	}

	return wrap(trimU(out))
}

// PowMod computes base^exp mod modulus by repeated squaring.
func (r *PolyRing) PowMod(base Polynomial, exp uint64, modulus Polynomial) (Polynomial, error) {
	b, err := r.Mod(base, modulus)
	if err != nil {
		return Polynomial{}, err
	}

	x, _ := r.Mod(Constant(1), modulus)
	for exp > 0 {
		if exp%2 == 1 {
			x, _ = r.Mod(r.Mul(x, b), modulus)
		}

		b, _ = r.Mod(r.Mul(b, b), modulus)
		exp /= 2
	}

	return x, nil
}

// FromRoots computes \prod (x - r_i).
func (r *PolyRing) FromRoots(roots []uint64) Polynomial {
	f := r.fld
	coeffs := make([]uint64, len(roots)+1)
	coeffs[0] = 1

	deg := 0
	for _, root := range roots {
		neg := f.Neg(f.Reduce(root)) // -r mod p
		for j := deg; j >= 0; j-- {
			// new[j+1] += old[j] * 1
			coeffs[j+1] = f.Add(coeffs[j+1], coeffs[j])
			// new[j]   += old[j] * (-r)
			coeffs[j] = f.Mul(coeffs[j], neg)
		}
		deg++
	}

	return wrap(coeffs)
}

func (r *PolyRing) String() string {
	return fmt.Sprintf("Z_%d[x]", r.P())
}
