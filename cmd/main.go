package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/okian/ranked/internal/adapters/oracle"
	"github.com/okian/ranked/internal/adapters/repository"
	app "github.com/okian/ranked/internal/app"
	"github.com/okian/ranked/internal/config"
	"github.com/okian/ranked/internal/domain/bucket"
	"github.com/okian/ranked/internal/domain/glicko"
	"github.com/okian/ranked/internal/domain/selector"
	"github.com/okian/ranked/internal/domain/stability"
	"github.com/okian/ranked/pkg/logger"
	"github.com/okian/ranked/pkg/metrics"
)

// Metrics listener timeout constants.
const (
	readHeaderTimeout = 5 * time.Second
)

func main() {
	if err := run(); err != nil {
		os.Stderr.WriteString(err.Error() + "\n")
		os.Exit(1)
	}
}

func run() error {
	if err := logger.Init(); err != nil {
		return fmt.Errorf("failed to initialize logging: %w", err)
	}

	// Root context with cancel on SIGINT/SIGTERM.
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Load configuration (defaults -> optional file -> env)
	cfg, err := config.Load(ctx)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	log := logger.Get()

	// Apply configured log level (fallback to info on invalid input)
	if err := logger.SetLevelString(cfg.LogLevel); err != nil {
		log.Warn(ctx, "invalid log_level; falling back to info", logger.String("log_level", cfg.LogLevel), logger.Error(err))
		_ = logger.SetLevelString("info")
	}

	filePath := flag.String("f", "", "path to the ratings CSV file (overrides config)")
	flag.Usage = usage
	flag.Parse()
	if *filePath != "" {
		cfg.File = *filePath
	}

	args := flag.Args()
	if len(args) == 0 {
		usage()
		return errors.New("missing command")
	}

	svc := app.New(
		app.WithStore(repository.NewCSVStore(cfg.File)),
		app.WithOracle(oracle.NewTerminal()),
		app.WithRater(glicko.New(glicko.WithDecayFactor(cfg.DecayFactor))),
		app.WithSelector(selector.New(selector.WithRandomPairProbability(cfg.RandomPairProbability))),
		app.WithBucketAssigner(bucket.New(bucket.WithCount(cfg.BucketCount))),
		app.WithChecker(stability.New(stability.WithThreshold(cfg.DeviationThreshold))),
		app.WithDefaults(cfg.DefaultRating, cfg.DefaultDeviation),
		app.WithLogger(log),
	)

	// Expose prometheus metrics while the session runs, if configured.
	if cfg.MetricsAddr != "" {
		go serveMetrics(ctx, log, cfg.MetricsAddr)
	}

	switch args[0] {
	case "add":
		if len(args) != 2 {
			usage()
			return errors.New("add requires exactly one name")
		}
		return svc.Add(ctx, args[1])

	case "resort":
		fs := flag.NewFlagSet("resort", flag.ContinueOnError)
		decay := fs.Bool("decay", false, "decay each rating by one step before resorting")
		if err := fs.Parse(args[1:]); err != nil {
			return err
		}
		res, err := svc.Resort(ctx, *decay)
		if err != nil {
			return err
		}
		if res.State == app.InsufficientData {
			fmt.Println("Cannot sort less than 2 items")
			return nil
		}
		fmt.Println("Ratings are stabilized!")
		return nil

	default:
		usage()
		return fmt.Errorf("unknown command %q", args[0])
	}
}

func serveMetrics(ctx context.Context, log logger.Logger, addr string) {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.HandlerFor(metrics.Default().Registry(), promhttp.HandlerOpts{}))

	srv := &http.Server{
		Addr:              addr,
		Handler:           mux,
		ReadHeaderTimeout: readHeaderTimeout,
	}
	go func() {
		<-ctx.Done()
		_ = srv.Close()
	}()

	log.Info(ctx, "serving metrics", logger.String("addr", addr))
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		log.Warn(ctx, "metrics listener failed", logger.Error(err))
	}
}

func usage() {
	os.Stderr.WriteString(`Usage:
  ranked [-f file] add <name>       append a new item with default rating
  ranked [-f file] resort [-decay]  interactively resort the file

The file defaults to items.csv and can also be set with RANKED_FILE.
`)
}
