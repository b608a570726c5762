package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"wordpairs/internal/bot"
	"wordpairs/internal/config"
	"wordpairs/internal/handler"
	"wordpairs/internal/metrics"
	"wordpairs/internal/middleware"
	"wordpairs/internal/repository/memory"
	"wordpairs/internal/service"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	tele "gopkg.in/telebot.v3"
)

var (
	envFile string
	addr    string
)

func main() {
	rootCmd := &cobra.Command{
		Use:           "wordpairs-server",
		Short:         "In-memory word pair HTTP service",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run()
		},
	}
	rootCmd.Flags().StringVar(&envFile, "env-file", ".env", "path to an optional .env file")
	rootCmd.Flags().StringVar(&addr, "addr", "", "listen address (overrides HTTP_ADDR)")

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// Load configuration
	cfg, err := config.Load(envFile)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	if addr != "" {
		cfg.HTTPAddr = addr
	}

	// Initialize logger
	logger, err := newLogger(cfg)
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	defer logger.Sync()

	logger.Info("Starting word pair service", zap.String("addr", cfg.HTTPAddr))

	// One store for the whole process, shared by every front-end
	store := memory.NewStore()
	wordPairService := service.NewWordPairService(store, logger, cfg.DefaultPageLimit)

	m := metrics.New()
	if err := m.RegisterStoreSize(store.Count); err != nil {
		return fmt.Errorf("failed to register store metrics: %w", err)
	}

	mux := http.NewServeMux()
	handler.NewHandler(wordPairService, logger).RegisterRoutes(mux)
	mux.Handle("GET "+cfg.MetricsPath, m.Handler())

	srv := &http.Server{
		Addr: cfg.HTTPAddr,
		Handler: middleware.Chain(mux,
			middleware.Logging(logger, m),
			middleware.Recover(logger),
			middleware.CORS(cfg.CORSAllowedOrigins),
		),
		ReadHeaderTimeout: 5 * time.Second,
	}

	// Optional Telegram front-end
	var telegram *tele.Bot
	if cfg.BotEnabled() {
		telegram, err = tele.NewBot(tele.Settings{
			Token:  cfg.BotToken,
			Poller: &tele.LongPoller{Timeout: 10 * time.Second},
		})
		if err != nil {
			return fmt.Errorf("failed to create bot: %w", err)
		}

		bot.NewHandler(telegram, wordPairService, logger).RegisterHandlers()

		go func() {
			logger.Info("Telegram bot started")
			telegram.Start()
		}()
	}

	serveErr := make(chan error, 1)
	go func() {
		logger.Info("HTTP server listening", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serveErr <- err
		}
		close(serveErr)
	}()

	// Wait for interrupt signal
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	select {
	case err := <-serveErr:
		if err != nil {
			return fmt.Errorf("http server failed: %w", err)
		}
		return nil
	case <-sigChan:
	}

	logger.Info("Shutdown signal received, stopping server...")

	// Graceful shutdown
	if telegram != nil {
		telegram.Stop()
	}

	ctx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		return fmt.Errorf("failed to shut down http server: %w", err)
	}

	logger.Info("Server stopped gracefully")
	return nil
}

// newLogger builds a production (JSON) or development (console) logger at the configured level
func newLogger(cfg *config.Config) (*zap.Logger, error) {
	level, err := zapcore.ParseLevel(cfg.LogLevel)
	if err != nil {
		return nil, err
	}

	zcfg := zap.NewProductionConfig()
	if cfg.LogFormat == "console" {
		zcfg = zap.NewDevelopmentConfig()
	}
	zcfg.Level = zap.NewAtomicLevelAt(level)

	return zcfg.Build()
}
