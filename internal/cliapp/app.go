// Package cliapp wires configuration, logging and the helper packages into
// the stonyx-utils commands.
package cliapp

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"sort"
	"time"

	"stonyx-utils/internal/config"
	"stonyx-utils/internal/logging"
	"stonyx-utils/internal/naming"
	"stonyx-utils/internal/prompt"
)

var (
	// ErrUsage is returned when a command is missing or given the wrong arguments.
	ErrUsage = errors.New("invalid usage")
	// ErrUnknownCommand is returned for a command name that is not registered.
	ErrUnknownCommand = errors.New("unknown command")
)

// Streams holds the terminal the commands talk to. Nil fields default to
// os.Stdin and os.Stdout.
type Streams struct {
	In  io.Reader
	Out io.Writer
}

// App owns the resources shared by every command.
type App struct {
	cfg      *config.Config
	logger   *logging.Logger
	namer    *naming.Namer
	prompter *prompt.Prompter
	out      io.Writer
	now      func() time.Time
}

// New creates an App.
func New(cfg *config.Config, logger *logging.Logger, streams Streams) (*App, error) {
	if cfg == nil {
		return nil, fmt.Errorf("config is required")
	}
	if logger == nil {
		return nil, fmt.Errorf("logger is required")
	}

	out := streams.Out
	if out == nil {
		out = os.Stdout
	}

	return &App{
		cfg:      cfg,
		logger:   logger,
		namer:    naming.New(cfg.Naming, logger.Logger),
		prompter: prompt.New(streams.In, out),
		out:      out,
		now:      time.Now,
	}, nil
}

// Run dispatches args[0] to its command with the remaining arguments.
func (a *App) Run(ctx context.Context, args []string) error {
	if len(args) == 0 {
		a.printUsage()
		return fmt.Errorf("%w: no command given", ErrUsage)
	}

	name, rest := args[0], args[1:]
	if name == "help" {
		a.printUsage()
		return nil
	}

	cmd, ok := commands[name]
	if !ok {
		return fmt.Errorf("%w %q", ErrUnknownCommand, name)
	}
	if len(rest) < cmd.minArgs || (cmd.maxArgs >= 0 && len(rest) > cmd.maxArgs) {
		return fmt.Errorf("%w: stonyx-utils %s %s", ErrUsage, name, cmd.usage)
	}

	logger := a.logger.WithCommand(name)
	ctx = logging.WithLogger(ctx, logger)
	logger.Debug("running command", slog.Int("args", len(rest)))

	if err := cmd.run(a, ctx, rest); err != nil {
		return fmt.Errorf("%s: %w", name, err)
	}
	return nil
}

func (a *App) printUsage() {
	names := make([]string, 0, len(commands))
	for name := range commands {
		names = append(names, name)
	}
	sort.Strings(names)

	fmt.Fprintln(a.out, "Usage: stonyx-utils [flags] <command> [args]")
	fmt.Fprintln(a.out)
	fmt.Fprintln(a.out, "Commands:")
	for _, name := range names {
		cmd := commands[name]
		fmt.Fprintf(a.out, "  %-12s %-22s %s\n", name, cmd.usage, cmd.summary)
	}
}
