package main

import (
	"fmt"

	"github.com/spf13/cobra"

	ecc "github.com/sjnam/d3ecdlp"
	"github.com/sjnam/d3ecdlp/internal/config"
	"github.com/sjnam/d3ecdlp/internal/log"
	"github.com/sjnam/d3ecdlp/internal/report"
)

// demoConfig holds the command line configuration of the demo command.
type demoConfig struct {
	ConfigFile string
	P          uint64
	B          uint64
	Secret     uint64
	LogLevel   string
	LogFile    string
}

func newDemoCommand() *cobra.Command {
	var dc demoConfig

	cmd := &cobra.Command{
		Use:   "demo",
		Short: "Solve one hidden scalar with every solver",
		Example: `  # Default curve y² = x³ + 7 over F_10477, k = 7777
  d3ecdlp demo

  # Another curve and scalar, with solver diagnostics
  d3ecdlp demo --p 43 --b 9 --secret 20 --log-level debug

  # Parameters from a file
  d3ecdlp demo -c d3ecdlp.toml`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadDemoConfig(cmd, &dc)
			if err != nil {
				return err
			}
			return runDemo(cmd, cfg)
		},
	}

	cmd.Flags().StringVarP(&dc.ConfigFile, "config", "c", "", "configuration file")
	cmd.Flags().Uint64Var(&dc.P, "p", config.DefaultP, "field prime, p ≡ 1 mod 3")
	cmd.Flags().Uint64Var(&dc.B, "b", config.DefaultB, "curve constant b")
	cmd.Flags().Uint64Var(&dc.Secret, "secret", config.DefaultSecret, "hidden scalar k")
	cmd.Flags().StringVar(&dc.LogLevel, "log-level", config.DefaultLogLevel, "logging level (DEBUG, INFO, NOTICE, WARNING, ERROR)")
	cmd.Flags().StringVar(&dc.LogFile, "log-file", "", "log file, stderr if empty")
	return cmd
}

// loadDemoConfig reads the configuration file, if any, and lets explicitly
// set flags override it.
func loadDemoConfig(cmd *cobra.Command, dc *demoConfig) (*config.Config, error) {
	cfg := config.Default()
	if dc.ConfigFile != "" {
		var err error
		if cfg, err = config.LoadFile(dc.ConfigFile); err != nil {
			return nil, err
		}
	}

	flags := cmd.Flags()
	if dc.ConfigFile == "" || flags.Changed("p") {
		cfg.Curve.P = dc.P
	}
	if dc.ConfigFile == "" || flags.Changed("b") {
		cfg.Curve.B = dc.B
	}
	if dc.ConfigFile == "" || flags.Changed("secret") {
		cfg.Curve.Secret = dc.Secret
	}
	if dc.ConfigFile == "" || flags.Changed("log-level") {
		cfg.Logging.Level = dc.LogLevel
	}
	if flags.Changed("log-file") {
		cfg.Logging.File = dc.LogFile
	}

	if err := cfg.FixupAndValidate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func newBackend(cmd *cobra.Command, l *config.Logging) (*log.Backend, error) {
	if l.File == "" && !l.Disable {
		return log.NewWriter(cmd.ErrOrStderr(), l.Level)
	}
	return log.New(l.File, l.Level, l.Disable)
}

func runDemo(cmd *cobra.Command, cfg *config.Config) error {
	backend, err := newBackend(cmd, cfg.Logging)
	if err != nil {
		return err
	}
	defer backend.Close()

	c, err := ecc.NewCurve(cfg.Curve.P, cfg.Curve.B)
	if err != nil {
		return err
	}
	c.Name = cfg.Curve.Name
	if c.Name == "" {
		c.Name = fmt.Sprintf("E(F_%d)", c.P)
	}
	c.Log = backend.GetLogger("ecc")

	e, err := ecc.NewEndomorphism(c)
	if err != nil {
		return err
	}

	r, err := report.Run(c, e, cfg.Curve.Secret, backend.GetLogger("demo"))
	if err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), r.Render())
	return nil
}
