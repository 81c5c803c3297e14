package cli

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/modebench/modebench/internal/bench"
	"github.com/modebench/modebench/internal/config"
	"github.com/modebench/modebench/internal/metrics"
	"github.com/modebench/modebench/internal/server"
	"github.com/modebench/modebench/internal/strategy"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the benchmark server",
	Long: `Start the HTTP benchmark server.

The server executes a simulated blocking operation on /sleep through the
active execution strategy, switchable at runtime via /mode/{name}.
Live metrics are available on /metrics (text), /metrics/json, and
/metrics/prometheus.`,
	RunE: runServe,
}

func init() {
	serveCmd.Flags().String("config", "", "path to a YAML config file")
	serveCmd.Flags().String("listen", "", "listen address (overrides config)")
	serveCmd.Flags().String("mode", "", "initial execution mode: goroutine, pool, or smallpool")
	serveCmd.Flags().Duration("sleep", 0, "blocking operation duration (overrides config)")
	serveCmd.Flags().Bool("verbose", false, "enable debug logging")
}

func runServe(cmd *cobra.Command, args []string) error {
	configFile, _ := cmd.Flags().GetString("config")
	listen, _ := cmd.Flags().GetString("listen")
	mode, _ := cmd.Flags().GetString("mode")
	sleep, _ := cmd.Flags().GetDuration("sleep")
	verbose, _ := cmd.Flags().GetBool("verbose")

	cfg := config.Default()
	if configFile != "" {
		loaded, err := config.LoadConfig(configFile)
		if err != nil {
			return fmt.Errorf("loading config: %w", err)
		}
		cfg = loaded
	}
	if listen != "" {
		cfg.Listen = listen
	}
	if mode != "" {
		cfg.DefaultMode = mode
	}
	if sleep > 0 {
		cfg.Sleep = config.Duration(sleep)
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

	srv, err := buildServer(cfg, logger)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		logger.Info("shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})

	return g.Wait()
}

// buildServer assembles the strategies, registry, collector, and runner
// into a ready-to-start server.
func buildServer(cfg *config.Config, logger *slog.Logger) (*server.Server, error) {
	initial, err := strategy.ParseMode(cfg.DefaultMode)
	if err != nil {
		return nil, err
	}

	pool, err := strategy.NewWorkerPool(strategy.ModePool, cfg.Pool.Workers)
	if err != nil {
		return nil, err
	}
	smallPool, err := strategy.NewWorkerPool(strategy.ModeSmallPool, cfg.SmallPool.Workers)
	if err != nil {
		return nil, err
	}
	registry, err := strategy.NewRegistry(initial, strategy.NewPerTask(), pool, smallPool)
	if err != nil {
		return nil, err
	}

	collector, err := metrics.NewWithConfig(metrics.Config{
		RingSize:   cfg.Metrics.RingSize,
		RateWindow: time.Duration(cfg.Metrics.RateWindow),
	})
	if err != nil {
		return nil, err
	}

	runner := bench.NewRunner(registry, collector)
	return server.New(cfg, runner, registry, collector, server.WithLogger(logger)), nil
}
