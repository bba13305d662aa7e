package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/aretw0/clifford/internal/config"
	"github.com/aretw0/clifford/internal/presentation/tui"
	"github.com/aretw0/clifford/pkg/domain"
	"github.com/aretw0/clifford/pkg/observability"
)

// RunOptions contains all the configuration for sampling from the command line.
type RunOptions struct {
	Config config.Config

	// Qubits is the register size; 0 runs the worked example instead.
	Qubits int

	// Rows, when set, are canonicalized instead of sampled.
	Rows []string

	// Out receives the run; nil means os.Stdout.
	Out io.Writer

	// Color forces styling on or off; nil detects a terminal on os.Stdout.
	Color *bool
}

// ParseQubits validates the positional qubit count.
func ParseQubits(arg string) (int, error) {
	n, err := strconv.Atoi(arg)
	if err != nil || n < 0 {
		return 0, fmt.Errorf("qubit count must be a non-negative integer, got %q", arg)
	}
	return n, nil
}

// Execute samples (or canonicalizes) one run and prints it.
func Execute(ctx context.Context, opts RunOptions) error {
	run, err := produce(ctx, opts)
	if err != nil {
		return handleExecutionError(err)
	}
	out := opts.Out
	if out == nil {
		out = os.Stdout
	}
	return writeRun(out, run, opts.Config.Format, colorEnabled(opts))
}

func produce(ctx context.Context, opts RunOptions) (*domain.Run, error) {
	logger, err := createLogger(opts.Config)
	if err != nil {
		return nil, err
	}

	sampler, closeStore, err := createSampler(opts.Config, logger, observability.LoggingHooks(logger))
	if err != nil {
		return nil, err
	}
	defer closeStore()

	switch {
	case len(opts.Rows) > 0:
		return sampler.Canonicalize(ctx, opts.Rows)
	case opts.Qubits == 0:
		return sampler.Figure5(ctx)
	}
	return sampler.Sample(ctx, opts.Qubits)
}

func colorEnabled(opts RunOptions) bool {
	if opts.Color != nil {
		return *opts.Color
	}
	return opts.Out == nil && tui.IsTerminal(os.Stdout)
}
