package shell

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/viant/schedsim/internal/ctxlog"
	"github.com/viant/schedsim/service/registry"
	"github.com/viant/schedsim/service/scheduler"
)

// Shell is an interactive simulator session
type Shell struct {
	registry  *registry.Service
	scheduler *scheduler.Service
	out       io.Writer
	prompt    string
	echo      bool
	render    *renderer
}

// Run reads commands from in until exit, end of input or cancellation of ctx.
// Interrupting the session ends it cleanly.
func (s *Shell) Run(ctx context.Context, in io.Reader) error {
	s.render.banner()
	lines := make(chan *input)
	done := make(chan struct{})
	defer close(done)
	go readLines(in, MaxLineLength, lines, done)
	for {
		if ctx.Err() != nil {
			s.shutdown(true)
			return nil
		}
		if s.prompt != "" {
			_, _ = fmt.Fprint(s.out, s.prompt)
		}
		var line *input
		var ok bool
		select {
		case <-ctx.Done():
			s.shutdown(true)
			return nil
		case line, ok = <-lines:
		}
		if !ok {
			s.shutdown(true)
			return nil
		}
		if line.err != nil {
			return fmt.Errorf("failed to read command: %w", line.err)
		}
		if s.echo {
			s.render.println(line.text)
		}
		if line.tooLong {
			s.report(ctx, "", fmt.Errorf("%w: line exceeds %d bytes", ErrMalformedCommand, MaxLineLength))
			continue
		}
		if s.Execute(ctx, line.text) {
			s.shutdown(false)
			return nil
		}
	}
}

func (s *Shell) shutdown(newLine bool) {
	if newLine {
		s.render.println("")
	}
	s.render.println("Shutting down.")
}

// Execute runs a single command line and reports whether the session should end.
// Failures are written to the output.
func (s *Shell) Execute(ctx context.Context, line string) (exit bool) {
	command, err := Parse(line)
	if err != nil {
		s.report(ctx, line, err)
		return false
	}
	if command == nil {
		return false
	}
	if err = s.execute(ctx, command); err != nil {
		if ctx.Err() != nil && errors.Is(err, ctx.Err()) {
			s.render.println("interrupted")
			return false
		}
		s.report(ctx, line, err)
	}
	return command.Name == CommandExit
}

func (s *Shell) execute(ctx context.Context, command *Command) error {
	switch command.Name {
	case CommandCreate:
		created, err := s.registry.Create(ctx, command.Process)
		if err != nil {
			return err
		}
		s.render.created(created)
	case CommandList:
		processes, err := s.registry.List(ctx)
		if err != nil {
			return err
		}
		s.render.list(processes)
	case CommandRun:
		report, err := s.scheduler.Run(ctx, command.Algorithm, s.render.event)
		if err != nil {
			return err
		}
		s.render.summary(report)
	case CommandBlock:
		p, err := s.registry.Block(ctx, command.PID)
		if err != nil {
			return err
		}
		s.render.transitioned(command.Name, p)
	case CommandUnblock:
		p, err := s.registry.Unblock(ctx, command.PID)
		if err != nil {
			return err
		}
		s.render.transitioned(command.Name, p)
	case CommandKill:
		p, err := s.registry.Kill(ctx, command.PID)
		if err != nil {
			return err
		}
		s.render.transitioned(command.Name, p)
	case CommandHelp:
		s.render.help()
	}
	return nil
}

func (s *Shell) report(ctx context.Context, line string, err error) {
	ctxlog.FromContext(ctx).Debug("command failed", "line", line, "error", err)
	var usage *UsageError
	if errors.As(err, &usage) {
		s.render.usage(usage)
		return
	}
	s.render.error(err)
}

// New creates a shell session over the supplied registry and scheduler
func New(processes *registry.Service, engine *scheduler.Service, options ...Option) *Shell {
	ret := &Shell{registry: processes, scheduler: engine, out: os.Stdout, prompt: "sim> "}
	for _, opt := range options {
		opt(ret)
	}
	ret.render = newRenderer(ret.out)
	return ret
}
