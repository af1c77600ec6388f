package main

import (
	"errors"
	"fmt"
	"os"
	"unicode"
	"unicode/utf8"

	logging "github.com/ipfs/go-log/v2"
	"github.com/urfave/cli/v2"
	"gopkg.in/yaml.v3"

	gf "github.com/jonathanmweiss/go-gf"
	"github.com/jonathanmweiss/go-gf/field"
)

// Config is the calculator setup. A YAML file provides the defaults, flags
// override them.
type Config struct {
	Prime       uint64 `yaml:"prime"`
	Irreducible string `yaml:"irreducible"`
	Variable    string `yaml:"variable"`
	ShowZero    bool   `yaml:"show_zero"`
	LogLevel    string `yaml:"log_level"`
}

func defaultConfig() Config {
	return Config{
		Prime:    2,
		Variable: "x",
		LogLevel: "error",
	}
}

// loadConfig reads path over the defaults. An empty path yields the defaults.
func loadConfig(path string) (Config, error) {
	cfg := defaultConfig()
	if path == "" {
		return cfg, nil
	}

	bts, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("reading config: %w", err)
	}

	if err := yaml.Unmarshal(bts, &cfg); err != nil {
		return Config{}, fmt.Errorf("parsing config %s: %w", path, err)
	}

	return cfg, cfg.validate()
}

func (c *Config) applyFlags(ctx *cli.Context) {
	if ctx.IsSet("prime") {
		c.Prime = ctx.Uint64("prime")
	}

	if ctx.IsSet("irreducible") {
		c.Irreducible = ctx.String("irreducible")
	}

	if ctx.IsSet("variable") {
		c.Variable = ctx.String("variable")
	}

	if ctx.IsSet("show-zero") {
		c.ShowZero = ctx.Bool("show-zero")
	}

	if ctx.IsSet("log-level") {
		c.LogLevel = ctx.String("log-level")
	}
}

var (
	errBadVariable   = errors.New("variable must be a single letter")
	errNoIrreducible = errors.New("an irreducible polynomial is required (--irreducible)")
)

func (c Config) validate() error {
	if r, size := utf8.DecodeRuneInString(c.Variable); size != len(c.Variable) || !unicode.IsLetter(r) {
		return fmt.Errorf("%w: %q", errBadVariable, c.Variable)
	}

	if _, err := logging.LevelFromString(c.LogLevel); err != nil {
		return fmt.Errorf("log level %q: %w", c.LogLevel, err)
	}

	return nil
}

func (c Config) variable() rune {
	r, _ := utf8.DecodeRuneInString(c.Variable)
	return r
}

func (c Config) format(p field.Polynomial) string {
	return p.Format(c.variable(), c.ShowZero)
}

func (c Config) ring() (*field.PolyRing, error) {
	return field.NewPolyRing(c.Prime)
}

func (c Config) field() (*gf.Field, error) {
	if c.Irreducible == "" {
		return nil, errNoIrreducible
	}

	f, err := parsePoly(c.Irreducible)
	if err != nil {
		return nil, err
	}

	return gf.NewField(c.Prime, f)
}

func parsePoly(s string) (field.Polynomial, error) {
	p, ok := field.Parse(s)
	if !ok {
		return field.Polynomial{}, fmt.Errorf("%w: %q", field.ErrMalformedInput, s)
	}

	return p, nil
}
