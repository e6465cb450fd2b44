// Package config provides the d3ecdlp configuration.
package config

import (
	"errors"
	"fmt"
	"math/big"
	"os"
	"strings"

	"github.com/BurntSushi/toml"
)

const (
	// DefaultLogLevel is the default logging level.
	DefaultLogLevel = "NOTICE"

	// The demonstration curve y² = x³ + 7 over F_10477 has prime order
	// 10639 and p ≡ 1 mod 3.
	DefaultP      = 10477
	DefaultB      = 7
	DefaultSecret = 7777

	// maxP bounds the brute-force point count and generator search.
	maxP = 1 << 24
)

// Logging is the logging configuration.
type Logging struct {
	// Disable disables logging entirely.
	Disable bool

	// File specifies the log file, if omitted stdout will be used.
	File string

	// Level specifies the log level.
	Level string
}

// DefaultLogging returns the default logging configuration.
func DefaultLogging() *Logging {
	return &Logging{
		Disable: false,
		File:    "",
		Level:   DefaultLogLevel,
	}
}

// Validate validates the logging configuration.
func (lCfg *Logging) Validate() error {
	lvl := strings.ToUpper(lCfg.Level)
	switch lvl {
	case "ERROR", "WARNING", "NOTICE", "INFO", "DEBUG":
	case "":
		lvl = DefaultLogLevel
	default:
		return fmt.Errorf("config: Logging: Level '%v' is invalid", lCfg.Level)
	}
	lCfg.Level = lvl // Force uppercase.
	return nil
}

// Curve selects the toy curve y² = x³ + B over F_P and the hidden scalar
// the demonstration solves for.
type Curve struct {
	// Name is an optional label used in reports.
	Name string

	// P is the field prime. It must satisfy P ≡ 1 mod 3 so the curve has
	// the order-3 automorphism.
	P uint64

	// B is the constant of the curve equation.
	B uint64

	// Secret is the scalar hidden in Q = [Secret]G. It is reduced modulo
	// the group order.
	Secret uint64
}

// DefaultCurve returns the demonstration curve.
func DefaultCurve() *Curve {
	return &Curve{
		P:      DefaultP,
		B:      DefaultB,
		Secret: DefaultSecret,
	}
}

// Validate validates the curve configuration.
func (cCfg *Curve) Validate() error {
	switch {
	case cCfg.P <= 3 || !new(big.Int).SetUint64(cCfg.P).ProbablyPrime(20):
		return fmt.Errorf("config: Curve: P %d is not a prime > 3", cCfg.P)
	case cCfg.P > maxP:
		return fmt.Errorf("config: Curve: P %d is too large for brute-force point counting (max %d)", cCfg.P, maxP)
	case cCfg.P%3 != 1:
		return fmt.Errorf("config: Curve: P %d is not 1 mod 3", cCfg.P)
	case cCfg.B%cCfg.P == 0:
		return errors.New("config: Curve: B must be non-zero mod P")
	}
	return nil
}

// Config is the top level configuration.
type Config struct {
	Logging *Logging
	Curve   *Curve
}

// FixupAndValidate applies defaults to config entries and validates the
// configuration.
func (cfg *Config) FixupAndValidate() error {
	if cfg.Logging == nil {
		cfg.Logging = DefaultLogging()
	}
	if cfg.Curve == nil {
		cfg.Curve = DefaultCurve()
	}
	if err := cfg.Logging.Validate(); err != nil {
		return err
	}
	return cfg.Curve.Validate()
}

// Default returns a validated default configuration.
func Default() *Config {
	return &Config{
		Logging: DefaultLogging(),
		Curve:   DefaultCurve(),
	}
}

// Load parses and validates the provided buffer b as a config file body and
// returns the Config.
func Load(b []byte) (*Config, error) {
	cfg := new(Config)
	md, err := toml.Decode(string(b), cfg)
	if err != nil {
		return nil, err
	}
	if undecoded := md.Undecoded(); len(undecoded) != 0 {
		return nil, fmt.Errorf("config: Undecoded keys in config file: %v", undecoded)
	}
	if err := cfg.FixupAndValidate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// LoadFile loads, parses and validates the provided file and returns the
// Config.
func LoadFile(f string) (*Config, error) {
	b, err := os.ReadFile(f)
	if err != nil {
		return nil, err
	}
	return Load(b)
}
