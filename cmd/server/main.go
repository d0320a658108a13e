package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"connectrpc.com/connect"
	"golang.org/x/net/http2"
	"golang.org/x/net/http2/h2c"

	"github.com/mmynk/splitcycle/internal/config"
	"github.com/mmynk/splitcycle/internal/ledger"
	"github.com/mmynk/splitcycle/internal/metrics"
	"github.com/mmynk/splitcycle/internal/middleware"
	"github.com/mmynk/splitcycle/internal/service"
	"github.com/mmynk/splitcycle/internal/storage/sqlite"
	"github.com/mmynk/splitcycle/pkg/api/apiconnect"
	"github.com/mmynk/splitcycle/pkg/logging"
)

func main() {
	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		slog.Error("Invalid configuration", "error", err)
		os.Exit(1)
	}

	level, _ := logging.ParseLevel(cfg.LogLevel)
	logging.SetupWithLevel(level)

	if err := run(cfg); err != nil {
		slog.Error("Server failed", "error", err)
		os.Exit(1)
	}
}

func run(cfg *config.Config) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Initialize SQLite storage
	kv, err := sqlite.New(cfg.DBPath)
	if err != nil {
		return err
	}
	defer kv.Close()
	slog.Info("Storage initialized", "database", cfg.DBPath)

	store, err := ledger.Open(ctx, kv,
		ledger.WithColorPicker(ledger.PaletteColors(cfg.ColorSeed)),
		ledger.WithLogger(slog.Default()),
	)
	if err != nil {
		return err
	}

	var m *metrics.Metrics
	if cfg.MetricsEnabled {
		m = metrics.New()
	}

	mux := http.NewServeMux()

	// Register Connect service
	ledgerPath, ledgerHandler := apiconnect.NewLedgerServiceHandler(
		service.NewLedgerService(store, service.WithMetrics(m)),
		connect.WithInterceptors(m.Interceptor(), middleware.LoggingInterceptor()),
	)
	mux.Handle(ledgerPath, ledgerHandler)

	if m != nil {
		mux.Handle("/metrics", m.Handler())
	}
	mux.HandleFunc("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	// Wrap with h2c for HTTP/2 without TLS (required for Connect)
	handler := h2c.NewHandler(middleware.RequestLogger(middleware.CORS(mux)), &http2.Server{})

	server := &http.Server{
		Addr:    cfg.Addr(),
		Handler: handler,
	}

	errCh := make(chan error, 1)
	go func() {
		slog.Info("Connect server starting", "address", server.Addr, "metrics", cfg.MetricsEnabled)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	slog.Info("Shutting down", "timeout", cfg.ShutdownTimeout)
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()
	return server.Shutdown(shutdownCtx)
}
