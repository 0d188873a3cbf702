package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/katalvlaran/labyrinth/config"
	"github.com/katalvlaran/labyrinth/logger"
	"github.com/katalvlaran/labyrinth/solver"
)

// Process exit statuses, one per terminal condition.
const (
	exitFound       = 0
	exitFailure     = 1 // I/O, resource or configuration failure
	exitUnreachable = 2
	exitNoMarkers   = 3
)

// exitError carries a status code out of a cobra command.
type exitError struct {
	code int
	err  error
}

func (e *exitError) Error() string {
	if e.err == nil {
		return "exit status"
	}
	return e.err.Error()
}

func (e *exitError) Unwrap() error { return e.err }

// app is the state shared by the commands of one invocation.
type app struct {
	v          *viper.Viper
	configFile string
	envFile    string
	cfg        config.Config
}

func newRootCmd() *cobra.Command {
	a := &app{v: viper.New()}

	root := &cobra.Command{
		Use:           "labyrinth",
		Short:         "Shortest path between A and B in a character maze",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.Load(a.v, a.configFile, a.envFile)
			if err != nil {
				return &exitError{code: exitFailure, err: err}
			}
			a.cfg = cfg
			logger.Init(cfg.LogLevel, cfg.LogFormat, cmd.ErrOrStderr())
			return nil
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			mode, err := solver.ParseMode(a.cfg.Mode)
			if err != nil {
				return &exitError{code: exitFailure, err: err}
			}
			return a.run(cmd, mode)
		},
	}
	pf := root.PersistentFlags()
	pf.StringVar(&a.configFile, "config", "", "config file (default ./labyrinth.{yaml,toml,json} if present)")
	pf.StringVar(&a.envFile, "env-file", ".env", "dotenv file with LABYRINTH_* variables")
	if err := config.RegisterFlags(pf, a.v); err != nil {
		panic(err)
	}

	root.AddCommand(
		&cobra.Command{
			Use:   "distance",
			Short: "Report the minimal number of steps from A to B",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, _ []string) error {
				return a.run(cmd, solver.ModeDistance)
			},
		},
		&cobra.Command{
			Use:   "path",
			Short: "Reconstruct the shortest path and draw the region it crosses",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, _ []string) error {
				return a.run(cmd, solver.ModePath)
			},
		},
	)

	return root
}

// run solves the configured maze and prints the report.
func (a *app) run(cmd *cobra.Command, mode solver.Mode) error {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	rep, err := solver.Run(ctx, solverConfig(a.cfg, mode))
	out := cmd.OutOrStdout()
	if err != nil {
		printFailure(out, err)
		return &exitError{code: exitFailure}
	}

	if err := printReport(out, rep, a.cfg); err != nil {
		return &exitError{code: exitFailure, err: err}
	}
	switch rep.Outcome() {
	case solver.OutcomeUnreachable:
		return &exitError{code: exitUnreachable}
	case solver.OutcomeMarkersNotFound:
		return &exitError{code: exitNoMarkers}
	}
	return nil
}
