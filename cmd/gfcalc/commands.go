package main

import (
	"fmt"
	"slices"
	"strconv"
	"strings"

	"github.com/urfave/cli/v2"

	"github.com/jonathanmweiss/go-gf/field"
)

func (c *calc) commands() []*cli.Command {
	return []*cli.Command{
		{
			Name:      "divide",
			Usage:     "quotient and remainder in Z_p[x]",
			ArgsUsage: "A B",
			Action:    c.divide,
		},
		{
			Name:      "gcd",
			Usage:     "monic gcd in Z_p[x]",
			ArgsUsage: "A B",
			Action:    c.gcd,
		},
		{
			Name:      "cyclotomic",
			Usage:     "cyclotomic polynomial of the given order",
			ArgsUsage: "ORDER",
			Flags:     []cli.Flag{&cli.BoolFlag{Name: "factor", Usage: "print its irreducible factors"}},
			Action:    c.cyclotomic,
		},
		{
			Name:   "irreducible",
			Usage:  "all monic irreducible polynomials of a degree",
			Flags:  []cli.Flag{&cli.IntFlag{Name: "degree", Aliases: []string{"n"}, Value: 1}},
			Action: c.irreducible,
		},
		{
			Name:      "is-irreducible",
			ArgsUsage: "POLY",
			Action:    c.isIrreducible,
		},
		{
			Name:      "order",
			Usage:     "multiplicative order of x modulo POLY",
			ArgsUsage: "POLY",
			Action:    c.order,
		},
		{
			Name:      "roots",
			Usage:     "roots in Z_p with their multiplicities",
			ArgsUsage: "POLY",
			Flags:     []cli.Flag{&cli.StringFlag{Name: "policy", Value: "gcd", Usage: "root counting policy: gcd or matrix"}},
			Action:    c.roots,
		},
		{
			Name:      "factor",
			Usage:     "square-free factorization",
			ArgsUsage: "POLY",
			Action:    c.factor,
		},
		{
			Name:  "interpolate",
			Usage: "polynomial through the points (x_i, y_i)",
			Flags: []cli.Flag{
				&cli.Uint64SliceFlag{Name: "x", Required: true},
				&cli.Uint64SliceFlag{Name: "y", Required: true},
			},
			Action: c.interpolate,
		},
		{
			Name:   "elements",
			Usage:  "every element of GF(p^n)",
			Action: c.elements,
		},
		{
			Name:   "generators",
			Usage:  "generators of the multiplicative group of GF(p^n)",
			Action: c.generators,
		},
		{Name: "add", ArgsUsage: "A B", Action: c.fieldBinary("add")},
		{Name: "sub", ArgsUsage: "A B", Action: c.fieldBinary("sub")},
		{Name: "mul", ArgsUsage: "A B", Action: c.fieldBinary("mul")},
		{Name: "inv", ArgsUsage: "A", Action: c.inverse},
		{Name: "pow", ArgsUsage: "A EXP", Action: c.pow},
	}
}

func polyArgs(ctx *cli.Context, n int) ([]field.Polynomial, error) {
	if ctx.NArg() != n {
		return nil, fmt.Errorf("%s: expected %d polynomial arguments, got %d", ctx.Command.Name, n, ctx.NArg())
	}

	out := make([]field.Polynomial, n)
	for i, s := range ctx.Args().Slice() {
		p, err := parsePoly(s)
		if err != nil {
			return nil, err
		}

		out[i] = p
	}

	return out, nil
}

func (c *calc) println(ctx *cli.Context, a ...any) {
	fmt.Fprintln(ctx.App.Writer, a...)
}

func (c *calc) printPolys(ctx *cli.Context, ps []field.Polynomial) {
	for _, p := range ps {
		c.println(ctx, c.cfg.format(p))
	}
}

func (c *calc) divide(ctx *cli.Context) error {
	args, err := polyArgs(ctx, 2)
	if err != nil {
		return err
	}

	ring, err := c.cfg.ring()
	if err != nil {
		return err
	}

	q, rem, err := ring.DivMod(args[0], args[1])
	if err != nil {
		return err
	}

	c.println(ctx, "quotient:", c.cfg.format(q))
	c.println(ctx, "remainder:", c.cfg.format(rem))

	return nil
}

func (c *calc) gcd(ctx *cli.Context) error {
	args, err := polyArgs(ctx, 2)
	if err != nil {
		return err
	}

	ring, err := c.cfg.ring()
	if err != nil {
		return err
	}

	c.println(ctx, c.cfg.format(ring.Normalize(ring.GCD(args[0], args[1]))))

	return nil
}

func (c *calc) cyclotomic(ctx *cli.Context) error {
	order, err := strconv.ParseUint(ctx.Args().First(), 10, 64)
	if err != nil {
		return fmt.Errorf("cyclotomic: order: %w", err)
	}

	ring, err := c.cfg.ring()
	if err != nil {
		return err
	}

	if !ctx.Bool("factor") {
		phi, err := ring.CyclotomicPolynomial(order)
		if err != nil {
			return err
		}

		c.println(ctx, c.cfg.format(phi))

		return nil
	}

	factors, err := ring.CyclotomicFactorization(order)
	if err != nil {
		return err
	}

	c.printPolys(ctx, factors)

	return nil
}

func (c *calc) irreducible(ctx *cli.Context) error {
	ring, err := c.cfg.ring()
	if err != nil {
		return err
	}

	polys, err := ring.IrreducibleOfDegree(ctx.Int("degree"))
	if err != nil {
		return err
	}

	c.printPolys(ctx, polys)

	return nil
}

func (c *calc) isIrreducible(ctx *cli.Context) error {
	args, err := polyArgs(ctx, 1)
	if err != nil {
		return err
	}

	ring, err := c.cfg.ring()
	if err != nil {
		return err
	}

	c.println(ctx, ring.IsIrreducible(args[0]))

	return nil
}

func (c *calc) order(ctx *cli.Context) error {
	args, err := polyArgs(ctx, 1)
	if err != nil {
		return err
	}

	ring, err := c.cfg.ring()
	if err != nil {
		return err
	}

	ord, err := ring.Order(args[0])
	if err != nil {
		return err
	}

	c.println(ctx, ord)

	return nil
}

func parsePolicy(s string) (field.RootCountPolicy, error) {
	for _, p := range []field.RootCountPolicy{field.GCDPolicy, field.MatrixPolicy} {
		if strings.EqualFold(s, p.String()) {
			return p, nil
		}
	}

	return 0, fmt.Errorf("%w: %q", field.ErrUnknownPolicy, s)
}

func (c *calc) roots(ctx *cli.Context) error {
	args, err := polyArgs(ctx, 1)
	if err != nil {
		return err
	}

	policy, err := parsePolicy(ctx.String("policy"))
	if err != nil {
		return err
	}

	ring, err := c.cfg.ring()
	if err != nil {
		return err
	}

	count, err := ring.CountRoots(args[0], policy)
	if err != nil {
		return err
	}

	c.println(ctx, "count:", count)
	c.println(ctx, "roots:", ring.Roots(args[0]))

	hist, err := ring.CountMultipleRoots(args[0])
	if err != nil {
		return err
	}

	mults := make([]int, 0, len(hist))
	for m := range hist {
		mults = append(mults, m)
	}
	slices.Sort(mults)

	for _, m := range mults {
		c.println(ctx, fmt.Sprintf("multiplicity %d: %d", m, hist[m]))
	}

	return nil
}

func (c *calc) factor(ctx *cli.Context) error {
	args, err := polyArgs(ctx, 1)
	if err != nil {
		return err
	}

	ring, err := c.cfg.ring()
	if err != nil {
		return err
	}

	factors, err := ring.SquareFreeFactorization(args[0])
	if err != nil {
		return err
	}

	for _, f := range factors {
		c.println(ctx, fmt.Sprintf("(%s)^%d", c.cfg.format(f.Poly), f.Multiplicity))
	}

	return nil
}

func (c *calc) interpolate(ctx *cli.Context) error {
	ring, err := c.cfg.ring()
	if err != nil {
		return err
	}

	p, err := ring.Interpolate(ctx.Uint64Slice("x"), ctx.Uint64Slice("y"))
	if err != nil {
		return err
	}

	c.println(ctx, c.cfg.format(p))

	return nil
}

func (c *calc) elements(ctx *cli.Context) error {
	f, err := c.cfg.field()
	if err != nil {
		return err
	}

	c.printPolys(ctx, f.Elements())

	return nil
}

func (c *calc) generators(ctx *cli.Context) error {
	f, err := c.cfg.field()
	if err != nil {
		return err
	}

	c.printPolys(ctx, f.Generators())

	return nil
}

func (c *calc) fieldBinary(op string) cli.ActionFunc {
	return func(ctx *cli.Context) error {
		args, err := polyArgs(ctx, 2)
		if err != nil {
			return err
		}

		f, err := c.cfg.field()
		if err != nil {
			return err
		}

		var res field.Polynomial
		switch op {
		case "add":
			res, err = f.Add(args[0], args[1])
		case "sub":
			res, err = f.Sub(args[0], args[1])
		default:
			res, err = f.Multiply(args[0], args[1])
		}

		if err != nil {
			return err
		}

		c.println(ctx, c.cfg.format(res))

		return nil
	}
}

func (c *calc) inverse(ctx *cli.Context) error {
	args, err := polyArgs(ctx, 1)
	if err != nil {
		return err
	}

	f, err := c.cfg.field()
	if err != nil {
		return err
	}

	inv, err := f.Inverted(args[0])
	if err != nil {
		return err
	}

	c.println(ctx, c.cfg.format(inv))

	return nil
}

func (c *calc) pow(ctx *cli.Context) error {
	if ctx.NArg() != 2 {
		return fmt.Errorf("pow: expected A EXP, got %d arguments", ctx.NArg())
	}

	a, err := parsePoly(ctx.Args().Get(0))
	if err != nil {
		return err
	}

	exp, err := strconv.ParseUint(ctx.Args().Get(1), 10, 64)
	if err != nil {
		return fmt.Errorf("pow: exponent: %w", err)
	}

	f, err := c.cfg.field()
	if err != nil {
		return err
	}

	res, err := f.Pow(a, exp)
	if err != nil {
		return err
	}

	c.println(ctx, c.cfg.format(res))

	return nil
}
