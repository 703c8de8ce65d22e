// Copyright (C) 2023 Michael J. Fromberger. All Rights Reserved.

// Package cli implements the jdoc command-line tool.
package cli

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/creachadair/jdoc"
	"github.com/creachadair/jdoc/source"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// Env carries the external resources used by the commands.
type Env struct {
	FS     afero.Fs  // if nil, the OS filesystem
	Stdin  io.Reader // if nil, os.Stdin
	Stdout io.Writer // if nil, os.Stdout
	Stderr io.Writer // if nil, os.Stderr
}

func (e Env) withDefaults() Env {
	if e.FS == nil {
		e.FS = afero.NewOsFs()
	}
	if e.Stdin == nil {
		e.Stdin = os.Stdin
	}
	if e.Stdout == nil {
		e.Stdout = os.Stdout
	}
	if e.Stderr == nil {
		e.Stderr = os.Stderr
	}
	return e
}

// app holds the state shared by the commands of a single invocation.
type app struct {
	env Env
	cfg *viper.Viper
	log *log.Logger
}

// settings are the parser and output options resolved from flags, the
// environment, and the config file.
type settings struct {
	HuJSON         bool
	MaxDepth       int
	Duplicates     jdoc.DuplicatePolicy
	TrailingCommas bool
	StrictEscapes  bool
	Indent         string
	Jobs           int
}

// setup applies s to a parser.
func (s settings) setup(p *jdoc.Parser) {
	p.SetMaxDepth(s.MaxDepth)
	p.DuplicateKeys(s.Duplicates)
	p.AllowTrailingCommas(s.TrailingCommas)
	p.StrictEscapes(s.StrictEscapes)
}

func (a *app) settings() (settings, error) {
	dups, err := jdoc.ParsePolicy(a.cfg.GetString("duplicates"))
	if err != nil {
		return settings{}, err
	}
	s := settings{
		HuJSON:         a.cfg.GetBool("hujson"),
		MaxDepth:       a.cfg.GetInt("max-depth"),
		Duplicates:     dups,
		TrailingCommas: a.cfg.GetBool("trailing-commas"),
		StrictEscapes:  a.cfg.GetBool("strict-escapes"),
		Indent:         a.cfg.GetString("indent"),
		Jobs:           a.cfg.GetInt("jobs"),
	}
	if s.Jobs <= 0 {
		return settings{}, fmt.Errorf("invalid jobs count %d", s.Jobs)
	}
	return s, nil
}

func (a *app) opener(s settings) source.Opener {
	return source.Opener{FS: a.env.FS, HuJSON: s.HuJSON, Stdin: a.env.Stdin}
}

// NewRootCmd constructs the root command of the tool, with all its
// subcommands attached.
func NewRootCmd(env Env) *cobra.Command {
	a := &app{env: env.withDefaults(), cfg: viper.New()}
	a.log = log.NewWithOptions(a.env.Stderr, log.Options{Prefix: "jdoc"})

	var cfgFile string
	cmd := &cobra.Command{
		Use:   "jdoc <command>",
		Short: "Parse and inspect JSON documents",
		Long: `Parse JSON documents whose top level is an object, and print,
query, or validate them.

Options may also be set in a config file (--config) or in environment
variables prefixed with JDOC_, for example JDOC_MAX_DEPTH=64.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.init(cfgFile)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}
	cmd.SetIn(a.env.Stdin)
	cmd.SetOut(a.env.Stdout)
	cmd.SetErr(a.env.Stderr)

	pf := cmd.PersistentFlags()
	pf.StringVar(&cfgFile, "config", "", "Config file (YAML, JSON, or TOML)")
	pf.BoolP("verbose", "v", false, "Enable verbose logging")
	pf.Bool("hujson", false, "Treat all inputs as HuJSON")
	pf.Int("max-depth", jdoc.DefaultMaxDepth, "Maximum nesting depth of objects and arrays")
	pf.String("duplicates", jdoc.LastWins.String(),
		"Duplicate key policy (last-wins, first-wins, keep-all, reject)")
	pf.Bool("trailing-commas", false, "Allow trailing commas in objects and arrays")
	pf.Bool("strict-escapes", false, "Reject unknown escape sequences in strings")
	pf.String("indent", "  ", "Indentation for printed output")
	pf.IntP("jobs", "j", 4, "Maximum number of files to check concurrently")

	for _, name := range []string{
		"verbose", "hujson", "max-depth", "duplicates", "trailing-commas",
		"strict-escapes", "indent", "jobs",
	} {
		a.cfg.BindPFlag(name, pf.Lookup(name))
	}

	cmd.AddCommand(
		newPrintCmd(a),
		newGetCmd(a),
		newQueryCmd(a),
		newCheckCmd(a),
		newVersionCmd(),
	)
	return cmd
}

// init loads configuration and sets up logging.
func (a *app) init(cfgFile string) error {
	a.cfg.SetFs(a.env.FS)
	a.cfg.SetEnvPrefix("JDOC")
	a.cfg.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	a.cfg.AutomaticEnv()

	if cfgFile != "" {
		a.cfg.SetConfigFile(cfgFile)
		if err := a.cfg.ReadInConfig(); err != nil {
			return fmt.Errorf("failed to read config: %w", err)
		}
	}
	if a.cfg.GetBool("verbose") {
		a.log.SetLevel(log.DebugLevel)
	}
	a.log.Debug("configured", "config", a.cfg.ConfigFileUsed(), "settings", a.cfg.AllSettings())
	return nil
}
