package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/philipp01105/namedlog/config"
	"github.com/philipp01105/namedlog/core"
	"github.com/philipp01105/namedlog/levels"
	"github.com/philipp01105/namedlog/logger"
	"github.com/philipp01105/namedlog/sinks"
)

// worker shows loggers named after a type
type worker struct {
	log *logger.Logger
}

// demoNames are the loggers every command works on
var demoNames = []string{"app", "app.db", "app.http", "lib.net", "lib.net.tls"}

// newDemoRegistry returns a registry holding the sample loggers
func newDemoRegistry() (*logger.Registry, *worker) {
	reg := logger.NewRegistry(core.InfoLevel)
	for _, n := range demoNames {
		reg.Logger(n)
	}
	w := &worker{}
	w.log = reg.ForValue(w)
	return reg, w
}

func newDemoCommand() *cobra.Command {
	var (
		level   string
		syslog  string
		format  string
		caller  bool
		sets    []string
		inverts []string
	)

	c := &cobra.Command{
		Use:   "demo",
		Short: "Configure sinks, apply level rules and log through sample loggers",
		Args:  cobra.NoArgs,
		RunE: func(c *cobra.Command, _ []string) error {
			cfg, err := loadConfig(c)
			if err != nil {
				return err
			}
			cfg.Writer = c.OutOrStdout()

			if c.Flags().Changed("level") {
				if cfg.Level, err = core.ParseLevel(level); err != nil {
					return usagef("--level: %v", err)
				}
			}
			if c.Flags().Changed("syslog") {
				if cfg.Syslog, err = sinks.ParseSyslogTarget(syslog); err != nil {
					return usagef("--syslog: %v", err)
				}
			}
			if c.Flags().Changed("format") {
				cfg.Format = format
			}
			if c.Flags().Changed("caller") {
				cfg.Caller = caller
			}
			for _, s := range sets {
				a, err := parseAssignment(s, false)
				if err != nil {
					return err
				}
				cfg.Rules = append(cfg.Rules, a)
			}
			for _, s := range inverts {
				a, err := parseAssignment(s, true)
				if err != nil {
					return err
				}
				cfg.Rules = append(cfg.Rules, a)
			}
			if err := cfg.Validate(); err != nil {
				return &usageError{err: err}
			}

			reg, w := newDemoRegistry()
			defer reg.Close()

			counts, err := config.Apply(reg, cfg)
			if err != nil {
				return err
			}
			for i, n := range counts {
				fmt.Fprintf(c.ErrOrStderr(), "%s: %d loggers updated\n", cfg.Rules[i], n)
			}

			emit(reg, w)
			return nil
		},
	}

	c.Flags().StringVar(&level, "level", "", "root level (default DEBUG)")
	c.Flags().StringVar(&syslog, "syslog", "", "syslog target: true, /path/to/socket, host:port or scheme://addr")
	c.Flags().StringVar(&format, "format", "", "output format: text or json")
	c.Flags().BoolVar(&caller, "caller", false, "include function and line number")
	c.Flags().StringArrayVar(&sets, "set", nil, "PATTERN=LEVEL for loggers matching PATTERN (repeatable)")
	c.Flags().StringArrayVar(&inverts, "invert", nil, "PATTERN=LEVEL for loggers not matching PATTERN (repeatable)")
	return c
}

// emit logs one message per sample logger at each level from DEBUG to ERROR
func emit(reg *logger.Registry, w *worker) {
	loggers := make([]*logger.Logger, 0, len(demoNames)+1)
	for _, n := range demoNames {
		loggers = append(loggers, reg.Logger(n))
	}
	loggers = append(loggers, w.log)

	for _, l := range loggers {
		l.Debug("debug message")
		l.Info("info message")
		l.Warn("warning message")
		l.Error("error message")
	}
}

func loadConfig(c *cobra.Command) (config.Config, error) {
	path, _ := c.Flags().GetString("config")
	if path == "" {
		cfg := config.Default()
		if err := cfg.ApplyEnv(); err != nil {
			return cfg, &usageError{err: err}
		}
		return cfg, nil
	}
	return config.Load(path)
}

func newMatchCommand() *cobra.Command {
	var invert bool

	c := &cobra.Command{
		Use:   "match PATTERN",
		Short: "List the sample loggers a pattern selects",
		Args:  cobra.ExactArgs(1),
		RunE: func(c *cobra.Command, args []string) error {
			reg, _ := newDemoRegistry()
			m := levels.For(reg)

			names, err := m.LoggerNamesMatching(args[0])
			if err != nil {
				return err
			}
			if invert {
				names = complement(reg.Names(), names)
			}
			for _, n := range names {
				fmt.Fprintln(c.OutOrStdout(), n)
			}
			return nil
		},
	}
	c.Flags().BoolVar(&invert, "invert", false, "list the loggers the pattern does not select")
	return c
}

// complement returns the names in all that are not in sub; both are sorted
func complement(all, sub []string) []string {
	skip := make(map[string]struct{}, len(sub))
	for _, n := range sub {
		skip[n] = struct{}{}
	}
	var out []string
	for _, n := range all {
		if _, ok := skip[n]; !ok {
			out = append(out, n)
		}
	}
	return out
}
