// Command gfcalc is a calculator over Z_p[x] and GF(p^n).
package main

import (
	"fmt"
	"os"

	logging "github.com/ipfs/go-log/v2"
	"github.com/urfave/cli/v2"
)

func main() {
	if err := newApp().Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, "gfcalc:", err)
		os.Exit(1)
	}
}

// calc carries the resolved configuration into the commands.
type calc struct {
	cfg Config
}

func newApp() *cli.App {
	c := &calc{}

	return &cli.App{
		Name:  "gfcalc",
		Usage: "exact arithmetic over Z_p[x] and GF(p^n)",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "config", Aliases: []string{"c"}, Usage: "YAML file with prime, irreducible, variable, show_zero, log_level"},
			&cli.Uint64Flag{Name: "prime", Aliases: []string{"p"}, Usage: "characteristic p"},
			&cli.StringFlag{Name: "irreducible", Aliases: []string{"f"}, Usage: "modulus of GF(p^n), e.g. \"x^2 + 1\""},
			&cli.StringFlag{Name: "variable", Usage: "variable letter used for output"},
			&cli.BoolFlag{Name: "show-zero", Usage: "print zero terms"},
			&cli.StringFlag{Name: "log-level", Usage: "debug, info, warn or error"},
		},
		Before: func(ctx *cli.Context) error {
			cfg, err := loadConfig(ctx.String("config"))
			if err != nil {
				return err
			}

			cfg.applyFlags(ctx)
			if err := cfg.validate(); err != nil {
				return err
			}

			level, _ := logging.LevelFromString(cfg.LogLevel) // validated.
			logging.SetAllLoggers(level)

			c.cfg = cfg

			return nil
		},
		Commands: c.commands(),
	}
}
