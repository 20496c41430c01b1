package main

import (
	"bytes"
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/viant/schedsim"
	"github.com/viant/schedsim/internal/ctxlog"
	"github.com/viant/schedsim/service/meta"
	"github.com/viant/schedsim/service/shell"
	"github.com/viant/schedsim/tracing"
)

func runShell(cmd *cobra.Command, _ []string) error {
	ctx, srv, done, err := newSession(cmd)
	if err != nil {
		return err
	}
	defer done()
	session := shell.New(srv.Registry(), srv.Scheduler(), shell.WithOutput(cmd.OutOrStdout()))
	return session.Run(ctx, cmd.InOrStdin())
}

func runReplay(cmd *cobra.Command, args []string) error {
	ctx, srv, done, err := newSession(cmd)
	if err != nil {
		return err
	}
	defer done()
	script, err := meta.New(nil, "").Download(ctx, args[0])
	if err != nil {
		return err
	}
	session := shell.New(srv.Registry(), srv.Scheduler(),
		shell.WithOutput(cmd.OutOrStdout()),
		shell.WithPrompt("> "),
		shell.WithEcho(true))
	return session.Run(ctx, bytes.NewReader(script))
}

// newSession builds a simulator from the configuration and the command line flags
func newSession(cmd *cobra.Command) (context.Context, *schedsim.Service, func(), error) {
	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	config, err := loadConfig(ctx, cmd)
	if err != nil {
		stop()
		return nil, nil, nil, err
	}
	logger := ctxlog.NewLogger(config.Log.Level, logFormat, cmd.ErrOrStderr())
	ctx = ctxlog.WithLogger(ctx, logger)

	options := []schedsim.Option{schedsim.WithConfig(config)}
	if config.Tracing.Enabled {
		options = append(options, schedsim.WithTracing(schedsim.ServiceName, schedsim.Version, config.Tracing.Output))
	}
	srv, err := schedsim.New(options...)
	if err != nil {
		stop()
		return nil, nil, nil, err
	}
	logger.Debug("session started", "quantum", config.Scheduler.Quantum, "seed", config.Generator.Seed, "tracing", config.Tracing.Enabled)
	return ctx, srv, func() {
		if err := tracing.Shutdown(context.Background()); err != nil {
			logger.Warn("failed to flush spans", "error", err)
		}
		stop()
	}, nil
}

// loadConfig reads --config when given, then applies explicitly set flags on top
func loadConfig(ctx context.Context, cmd *cobra.Command) (*schedsim.Config, error) {
	config := schedsim.DefaultConfig()
	if configURL != "" {
		var err error
		if config, err = schedsim.LoadConfig(ctx, meta.New(nil, ""), configURL); err != nil {
			return nil, err
		}
	}
	flags := cmd.Flags()
	if flags.Changed("seed") {
		config.Generator.Seed = seed
	}
	if flags.Changed("quantum") {
		config.Scheduler.Quantum = quantum
	}
	if flags.Changed("trace-file") {
		config.Tracing.Enabled = true
		config.Tracing.Output = traceFile
	}
	if flags.Changed("log-level") {
		config.Log.Level = logLevel
	}
	return config, config.Validate()
}
