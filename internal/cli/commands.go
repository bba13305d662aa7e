package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"time"

	httpadapter "github.com/aretw0/clifford/internal/adapters/http"
	"github.com/aretw0/clifford/internal/config"
	"github.com/aretw0/clifford/internal/presentation/chart"
	"github.com/aretw0/clifford/pkg/adapters/mcp"
	"github.com/aretw0/clifford/pkg/domain"
	"github.com/aretw0/clifford/pkg/observability"
	"github.com/aretw0/clifford/pkg/ports"
	"github.com/prometheus/client_golang/prometheus"
)

// ErrEphemeralStore is returned by the runs commands when the configured
// store does not outlive the process.
var ErrEphemeralStore = errors.New("memory store keeps no runs between commands; use --store file or --store redis")

// Sweep runs a single sweep over (a, b) and prints it.
func Sweep(ctx context.Context, cfg config.Config, a, b string, out io.Writer, color bool) error {
	logger, err := createLogger(cfg)
	if err != nil {
		return err
	}
	sampler, closeStore, err := createSampler(cfg, logger)
	if err != nil {
		return err
	}
	defer closeStore()

	run, err := sampler.SweepPair(ctx, a, b)
	if err != nil {
		return err
	}
	return writeRun(out, run, cfg.Format, color)
}

// openRunStore opens the store for the runs commands, which only make sense
// against a store shared between processes.
func openRunStore(cfg config.StoreConfig) (ports.RunStore, closer, error) {
	if cfg.Driver == "memory" {
		return nil, nil, ErrEphemeralStore
	}
	return createStore(cfg)
}

// ListRuns prints the IDs of stored runs, one per line.
func ListRuns(ctx context.Context, cfg config.Config, out io.Writer) error {
	store, closeStore, err := openRunStore(cfg.Store)
	if err != nil {
		return err
	}
	defer closeStore()

	ids, err := store.List(ctx)
	if err != nil {
		return err
	}
	for _, id := range ids {
		fmt.Fprintln(out, id)
	}
	return nil
}

// ShowRun prints a stored run in the configured format.
func ShowRun(ctx context.Context, cfg config.Config, id string, out io.Writer, color bool) error {
	store, closeStore, err := openRunStore(cfg.Store)
	if err != nil {
		return err
	}
	defer closeStore()

	run, err := store.Load(ctx, id)
	if err != nil {
		return fmt.Errorf("run %s: %w", id, err)
	}
	return writeRun(out, run, cfg.Format, color)
}

// DeleteRun removes a stored run.
func DeleteRun(ctx context.Context, cfg config.Config, id string) error {
	store, closeStore, err := openRunStore(cfg.Store)
	if err != nil {
		return err
	}
	defer closeStore()

	if _, err := store.Load(ctx, id); err != nil {
		return fmt.Errorf("run %s: %w", id, err)
	}
	return store.Delete(ctx, id)
}

// Serve starts the HTTP API and blocks until ctx is cancelled.
func Serve(ctx context.Context, cfg config.Config) error {
	logger, err := createLogger(cfg)
	if err != nil {
		return err
	}

	reg := prometheus.NewRegistry()
	metrics := observability.NewMetrics(reg)

	sampler, closeStore, err := createSampler(cfg, logger, metrics.Hooks(), observability.LoggingHooks(logger))
	if err != nil {
		return err
	}
	defer closeStore()

	handler := httpadapter.NewHandler(sampler,
		httpadapter.WithStore(sampler.Store()),
		httpadapter.WithGatherer(reg),
		httpadapter.WithLogger(logger),
	)
	srv := &http.Server{
		Addr:              cfg.HTTP.Addr,
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
	}

	serverErrors := make(chan error, 1)
	go func() {
		logger.Info("HTTP server listening", "address", cfg.HTTP.Addr, "store", cfg.Store.Driver)
		serverErrors <- srv.ListenAndServe()
	}()

	select {
	case err := <-serverErrors:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		printSystemMessage("Shutdown signal received, shutting down server...")
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("could not stop server gracefully: %w", err)
		}
		return nil
	}
}

// ServeMCP starts the MCP server on the configured transport.
func ServeMCP(ctx context.Context, cfg config.Config) error {
	logger, err := createLogger(cfg)
	if err != nil {
		return err
	}
	sampler, closeStore, err := createSampler(cfg, logger, observability.LoggingHooks(logger))
	if err != nil {
		return err
	}
	defer closeStore()

	s := mcp.NewServer(sampler, sampler.Store(), mcp.WithLogger(logger))
	if cfg.MCP.Transport == "sse" {
		return s.ServeSSE(ctx, cfg.MCP.Port)
	}
	return s.ServeStdio()
}

// StatsOptions configures Stats.
type StatsOptions struct {
	Qubits int
	Runs   int
	Output string // HTML file path; "-" writes to stdout
}

// Stats samples opts.Runs circuits and writes gate statistics as an HTML chart.
func Stats(ctx context.Context, cfg config.Config, opts StatsOptions) (chart.Summary, error) {
	if opts.Runs < 1 {
		return chart.Summary{}, fmt.Errorf("runs must be at least 1, got %d", opts.Runs)
	}

	logger, err := createLogger(cfg)
	if err != nil {
		return chart.Summary{}, err
	}
	// Stats runs are not persisted.
	cfg.Store.Driver = "memory"
	sampler, closeStore, err := createSampler(cfg, logger)
	if err != nil {
		return chart.Summary{}, err
	}
	defer closeStore()

	runs := make([]*domain.Run, 0, opts.Runs)
	for range opts.Runs {
		run, err := sampler.Sample(ctx, opts.Qubits)
		if err != nil {
			return chart.Summary{}, err
		}
		runs = append(runs, run)
	}
	summary := chart.Summarize(runs)

	var w io.Writer = os.Stdout
	if opts.Output != "-" {
		f, err := os.Create(opts.Output)
		if err != nil {
			return chart.Summary{}, fmt.Errorf("create chart: %w", err)
		}
		defer f.Close()
		w = f
	}
	if err := chart.Render(w, summary); err != nil {
		return chart.Summary{}, fmt.Errorf("render chart: %w", err)
	}
	return summary, nil
}
