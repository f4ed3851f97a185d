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

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/jkorri/pagelens/internal/app"
	"github.com/jkorri/pagelens/internal/metrics"
	"github.com/jkorri/pagelens/internal/web"
)

func main() {
	// Logging setup
	zerolog.TimeFieldFormat = time.RFC3339
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339})

	// .env is optional; absence is not an error.
	_ = godotenv.Load()

	var (
		addr       string
		configPath string
		userAgent  string
		timeout    time.Duration
		topN       int
		verbose    bool
	)

	flag.StringVar(&addr, "addr", app.DefaultAddr, "HTTP UI listen address")
	flag.StringVar(&configPath, "config", "", "Path to YAML or JSON config file")
	flag.StringVar(&userAgent, "http.ua", "", "Custom User-Agent for page and image fetches")
	flag.DurationVar(&timeout, "http.timeout", app.DefaultTimeout, "Per-request fetch timeout")
	flag.IntVar(&topN, "top", app.DefaultTopN, "Number of top words to visualize")
	flag.BoolVar(&verbose, "v", false, "Verbose logging")
	flag.Parse()

	cfg := app.DefaultConfig()
	cfg.Addr = addr
	cfg.UserAgent = userAgent
	cfg.RequestTimeout = timeout
	cfg.TopN = topN
	cfg.Verbose = verbose

	// Precedence: flags > env > file > defaults.
	app.ApplyEnvToConfig(&cfg)
	if configPath != "" {
		fc, err := app.LoadConfigFile(configPath)
		if err != nil {
			log.Error().Err(err).Str("path", configPath).Msg("load config file")
			os.Exit(1)
		}
		app.ApplyFileConfig(&cfg, fc)
	}
	if err := app.ValidateConfig(cfg); err != nil {
		log.Error().Err(err).Msg("invalid configuration")
		os.Exit(1)
	}

	if cfg.Verbose {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	} else {
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	}

	metrics.Register()

	if err := run(cfg); err != nil {
		log.Error().Err(err).Msg("run failed")
		os.Exit(1)
	}
}

func run(cfg app.Config) error {
	a, err := app.New(cfg)
	if err != nil {
		return fmt.Errorf("init app: %w", err)
	}

	srv := &http.Server{
		Addr:              cfg.Addr,
		Handler:           web.NewServer(a).Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info().Str("addr", cfg.Addr).Msgf("pagelens listening on http://%s", cfg.Addr)
		errCh <- srv.ListenAndServe()
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errCh:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
	case sig := <-stop:
		log.Info().Str("signal", sig.String()).Msg("shutting down")
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := srv.Shutdown(ctx); err != nil {
			return fmt.Errorf("shutdown: %w", err)
		}
	}
	return nil
}
