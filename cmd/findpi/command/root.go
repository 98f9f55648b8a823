// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package command implements the findpi command line.
package command

import (
	"fmt"
	"log"
	"strings"

	"github.com/go-logr/logr"
	"github.com/go-logr/stdr"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/db47h/fixed/math"
)

// DefaultWarnThreshold is the number of decimal places from which findpi asks
// for confirmation before computing π.
const DefaultWarnThreshold = 100000

const envPrefix = "FINDPI"

type options struct {
	warnThreshold uint
	yes           bool
	guard         uint
	verbosity     int
}

// New returns the findpi root command.
//
// Flags can also be set from the environment with the FINDPI_ prefix, dashes
// replaced by underscores, e.g. FINDPI_WARN_THRESHOLD.
func New() *cobra.Command {
	v := viper.New()
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	var opts options
	cmd := &cobra.Command{
		Use:   "findpi [decimal places]",
		Short: "Computes π to the requested number of decimal places.",
		Long: `Computes π truncated to the requested number of decimal places with the
Machin formula and fixed-point arithmetic.

Without arguments, findpi runs interactively: it asks for a number of decimal
places, prints π and asks whether to compute another one.`,
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage: true,
		PreRunE: func(cmd *cobra.Command, args []string) error {
			if err := v.BindPFlags(cmd.Flags()); err != nil {
				return err
			}
			opts = options{
				warnThreshold: v.GetUint("warn-threshold"),
				yes:           v.GetBool("yes"),
				guard:         v.GetUint("guard"),
				verbosity:     v.GetInt("verbosity"),
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, args, &opts)
		},
	}
	registerFlags(cmd.Flags())
	return cmd
}

func registerFlags(fs *pflag.FlagSet) {
	fs.Uint("warn-threshold", DefaultWarnThreshold, "ask for confirmation from this number of decimal places on (0 disables the confirmation)")
	fs.BoolP("yes", "y", false, "never ask for confirmation")
	fs.Uint("guard", 0, "number of guard digits (0 derives them from the number of decimal places)")
	fs.IntP("verbosity", "v", 0, "log verbosity on stderr")
}

func newLogger(cmd *cobra.Command, verbosity int) logr.Logger {
	stdr.SetVerbosity(verbosity)
	return stdr.New(log.New(cmd.ErrOrStderr(), "", log.LstdFlags)).WithName("findpi")
}

func run(cmd *cobra.Command, args []string, opts *options) error {
	l := newLogger(cmd, opts.verbosity)
	engine := math.New(math.WithLogger(l), math.WithGuardDigits(opts.guard))

	p := newPrompter(cmd.InOrStdin(), cmd.OutOrStdout(), l)
	p.warnThreshold = opts.warnThreshold
	p.yes = opts.yes

	if len(args) == 0 {
		return p.loop(engine.Pi)
	}

	n, err := parseDigits(args[0])
	if err != nil {
		return err
	}
	ok, err := p.confirmDigits(n)
	if err != nil || !ok {
		return ignoreEOF(err)
	}
	_, err = fmt.Fprintln(cmd.OutOrStdout(), engine.Pi(n))
	return err
}
