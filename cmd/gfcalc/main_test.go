package main

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jonathanmweiss/go-gf/field"
)

func run(args ...string) (string, error) {
	out := &bytes.Buffer{}

	app := newApp()
	app.Writer = out
	app.ErrWriter = out

	err := app.Run(append([]string{"gfcalc"}, args...))

	return out.String(), err
}

func TestCommands(t *testing.T) {
	a := assert.New(t)

	tests := []struct {
		name string
		args []string
		want string
	}{
		{"divide", []string{"-p", "7", "divide", "x^2 + 1", "x + 1"}, "quotient: 1*x^1 +6\nremainder: 2\n"},
		{"gcd", []string{"-p", "5", "gcd", "x^2 - 1", "2x + 2"}, "1*x^1 +1\n"},
		{"cyclotomic", []string{"-p", "2", "cyclotomic", "3"}, "1*x^2 +1*x^1 +1\n"},
		{"cyclotomicFactors", []string{"--prime", "7", "cyclotomic", "--factor", "8"}, "1*x^2 +3*x^1 +1\n1*x^2 +4*x^1 +1\n"},
		{"irreducible", []string{"-p", "2", "irreducible", "-n", "2"}, "1*x^2 +1*x^1 +1\n"},
		{"isIrreducible", []string{"-p", "2", "is-irreducible", "x^2 + 1"}, "false\n"},
		{"order", []string{"-p", "7", "order", "x^3 - 2"}, "9\n"},
		{"roots", []string{"-p", "7", "roots", "x^2 - 1"}, "count: 2\nroots: [1 6]\nmultiplicity 1: 2\n"},
		{"rootsByMatrix", []string{"-p", "7", "roots", "--policy", "MATRIX", "x^3 - 2x^2 + x"}, "count: 2\nroots: [0 1]\nmultiplicity 1: 1\nmultiplicity 2: 1\n"},
		{"factor", []string{"-p", "3", "factor", "x^3 + 1"}, "(1*x^1 +1)^3\n"},
		{"interpolate", []string{"-p", "157", "interpolate", "--x", "1", "--x", "2", "--x", "3", "--y", "3", "--y", "10", "--y", "21"}, "2*x^2 +1*x^1\n"},
		{"elements", []string{"-p", "2", "-f", "x^2 + x + 1", "elements"}, "0\n1\n1*x^1\n1*x^1 +1\n"},
		{"generators", []string{"-p", "2", "-f", "x^2 + x + 1", "generators"}, "1*x^1\n1*x^1 +1\n"},
		{"add", []string{"-p", "3", "-f", "x^2 + 1", "add", "x + 1", "2x + 2"}, "0\n"},
		{"sub", []string{"-p", "3", "-f", "x^2 + 1", "sub", "x", "2x + 2"}, "2*x^1 +1\n"},
		{"mul", []string{"-p", "3", "-f", "x^2 + 1", "mul", "x + 1", "x + 1"}, "2*x^1\n"},
		{"inv", []string{"-p", "3", "-f", "x^2 + 1", "inv", "x + 1"}, "1*x^1 +2\n"},
		{"pow", []string{"-p", "3", "-f", "x^2 + 1", "pow", "x", "3"}, "2*x^1\n"},
		{"variable", []string{"--variable", "t", "-p", "2", "-f", "x^2 + x + 1", "generators"}, "1*t^1\n1*t^1 +1\n"},
		{"showZero", []string{"-p", "2", "--show-zero", "cyclotomic", "3"}, "1*x^2 +1*x^1 +1*x^0\n"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			out, err := run(tc.args...)
			a.NoError(err)
			a.Equal(tc.want, out)
		})
	}
}

func TestConfigAndFlags(t *testing.T) {
	a := assert.New(t)

	path := writeConfig(t, `
prime: 5
irreducible: "x^2 + 1"
variable: y
`)

	// x^2 + 1 is reducible over Z_5 but the product is still defined.
	out, err := run("-c", path, "mul", "x", "x")
	a.NoError(err)
	a.Equal("4\n", out)

	// the flag overrides the file: x^2 = -1 over Z_3.
	out, err = run("-c", path, "--prime", "3", "mul", "x", "x")
	a.NoError(err)
	a.Equal("2\n", out)

	out, err = run("-c", path, "--prime", "3", "pow", "x", "1")
	a.NoError(err)
	a.Equal("1*y^1\n", out)
}

func TestCommandErrors(t *testing.T) {
	a := assert.New(t)

	_, err := run("-p", "3", "mul", "x", "x")
	a.ErrorIs(err, errNoIrreducible)

	_, err = run("-p", "3", "gcd", "x +", "x")
	a.ErrorIs(err, field.ErrMalformedInput)

	_, err = run("-p", "3", "gcd", "x")
	a.Error(err)

	_, err = run("-p", "3", "roots", "--policy", "brute", "x")
	a.ErrorIs(err, field.ErrUnknownPolicy)

	_, err = run("-p", "4", "gcd", "x", "x")
	a.ErrorIs(err, field.ErrInvalidModulus)

	_, err = run("-p", "3", "divide", "x", "0")
	a.ErrorIs(err, field.ErrDivisionByZero)

	_, err = run("-p", "3", "-f", "x^2 + 1", "mul", "x^2", "x")
	a.Error(err)

	_, err = run("-p", "3", "-f", "x^2 + 1", "inv", "0")
	a.ErrorIs(err, field.ErrNotInvertible)

	_, err = run("--log-level", "loud", "cyclotomic", "3")
	a.Error(err)

	_, err = run("--variable", "xy", "cyclotomic", "3")
	a.ErrorIs(err, errBadVariable)

	_, err = run("cyclotomic", "three")
	a.Error(err)
}
