package field

import (
	"math"
	"strconv"
	"strings"
	"unicode"
)

// maxDegree bounds the degree of polynomials built from untrusted sizes
// (parsed powers, cyclotomic powers).
const maxDegree = 1 << 20

// String renders p in descending powers with variable x, e.g. "-8*x^2 +1*x^1 -4".
func (p Polynomial) String() string {
	return p.Format('x', false)
}

// Format renders p with the given variable letter (x when variable is not a
// letter). With showZero every power down to x^0 is written, zero or not.
func (p Polynomial) Format(variable rune, showZero bool) string {
	if !unicode.IsLetter(variable) {
		variable = 'x'
	}

	bldr := strings.Builder{}
	writeSep := func(c int64) {
		if bldr.Len() == 0 {
			return
		}

		if c >= 0 {
			bldr.WriteString(" +")
		} else {
			bldr.WriteString(" ")
		}
	}

	src := p.coeffs()
	for i := len(src) - 1; i > 0; i-- {
		if src[i] == 0 && !showZero {
			continue
		}

		writeSep(src[i])
		bldr.WriteString(strconv.FormatInt(src[i], 10))
		bldr.WriteByte('*')
		bldr.WriteRune(variable)
		bldr.WriteByte('^')
		bldr.WriteString(strconv.Itoa(i))
	}

	switch {
	case showZero:
		writeSep(src[0])
		bldr.WriteString(strconv.FormatInt(src[0], 10))
		bldr.WriteByte('*')
		bldr.WriteRune(variable)
		bldr.WriteString("^0")
	case src[0] != 0:
		writeSep(src[0])
		bldr.WriteString(strconv.FormatInt(src[0], 10))
	}

	if bldr.Len() == 0 {
		return "0"
	}

	return bldr.String()
}

type tokenKind int

const (
	tokNum tokenKind = iota
	tokVar
	tokStar
	tokCaret
	tokPlus
	tokMinus
)

type token struct {
	kind tokenKind
	// magnitude only; signs are separate tokens.
	num  uint64
	char rune
}

func tokenize(s string) ([]token, bool) {
	var toks []token

	runes := []rune(s)
	for i := 0; i < len(runes); {
		c := runes[i]
		switch {
		case unicode.IsSpace(c):
			i++
		case unicode.IsDigit(c):
			j := i
			for j < len(runes) && unicode.IsDigit(runes[j]) {
				j++
			}

			n, err := strconv.ParseUint(string(runes[i:j]), 10, 64)
			if err != nil {
				return nil, false
			}

			toks = append(toks, token{kind: tokNum, num: n})
			i = j
		case unicode.IsLetter(c):
			toks = append(toks, token{kind: tokVar, char: c})
			i++
		case c == '*':
			toks = append(toks, token{kind: tokStar})
			i++
		case c == '^':
			toks = append(toks, token{kind: tokCaret})
			i++
		case c == '+':
			toks = append(toks, token{kind: tokPlus})
			i++
		case c == '-':
			toks = append(toks, token{kind: tokMinus})
			i++
		default:
			return nil, false
		}
	}

	return toks, true
}

type polyParser struct {
	toks     []token
	pos      int
	variable rune
	coeffs   map[int]int64
}

func (ps *polyParser) peek(kind tokenKind) bool {
	return ps.pos < len(ps.toks) && ps.toks[ps.pos].kind == kind
}

func (ps *polyParser) next() token {
	t := ps.toks[ps.pos]
	ps.pos++

	return t
}

// term := [num] ['*'] [var ['^' num]], with at least one of num or var.
func (ps *polyParser) term(negative bool) bool {
	coef, hasCoef := uint64(1), false
	if ps.peek(tokNum) {
		coef, hasCoef = ps.next().num, true
	}

	starred := false
	if ps.peek(tokStar) {
		if !hasCoef {
			return false
		}

		ps.next()
		starred = true
	}

	power := 0
	switch {
	case ps.peek(tokVar):
		v := ps.next().char
		if ps.variable != 0 && ps.variable != v {
			return false
		}
		ps.variable = v

		power = 1
		if ps.peek(tokCaret) {
			ps.next()
			if !ps.peek(tokNum) {
				return false
			}

			n := ps.next().num
			if n > maxDegree {
				return false
			}
			power = int(n)
		}
	case starred || !hasCoef:
		return false
	}

	c, ok := signed(coef, negative)
	if !ok {
		return false
	}

	sum, ok := addInt64(ps.coeffs[power], c)
	if !ok {
		return false
	}
	ps.coeffs[power] = sum

	return true
}

// signed applies the sign to a parsed magnitude; -2^63 is the only value
// whose magnitude exceeds math.MaxInt64.
func signed(mag uint64, negative bool) (int64, bool) {
	switch {
	case !negative && mag <= math.MaxInt64:
		return int64(mag), true
	case negative && mag <= 1<<63:
		return int64(-mag), true
	default:
		return 0, false
	}
}

func addInt64(a, b int64) (int64, bool) {
	sum := a + b
	if (b > 0 && sum < a) || (b < 0 && sum > a) {
		return 0, false
	}

	return sum, true
}

/*
Parse reads the textual form produced by Format: terms of the shape
[coefficient]['*'][variable]['^'power] joined by '+' or '-'. The coefficient
defaults to 1, the power to 1 when a variable is present and to 0 otherwise.
Any single letter works as the variable as long as every term uses the same one.

Parse reports false for anything that does not match, including empty input.
*/
func Parse(s string) (Polynomial, bool) {
	toks, ok := tokenize(s)
	if !ok || len(toks) == 0 {
		return Polynomial{}, false
	}

	ps := &polyParser{toks: toks, coeffs: map[int]int64{}}

	first := true
	for ps.pos < len(ps.toks) {
		negative := false
		switch {
		case ps.peek(tokPlus):
			ps.next()
		case ps.peek(tokMinus):
			ps.next()
			negative = true
		case !first:
			return Polynomial{}, false
		}

		if !ps.term(negative) {
			return Polynomial{}, false
		}

		first = false
	}

	deg := 0
	for power := range ps.coeffs {
		deg = max(deg, power)
	}

	inner := make([]int64, deg+1)
	for power, c := range ps.coeffs {
		inner[power] = c
	}

	return canonical(inner), true
}
