// Package app wires configuration, storage, services and the HTTP transport
// into a runnable server.
package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/contactdesk/backend/internal/adapter/postgres"
	pgactivity "github.com/contactdesk/backend/internal/adapter/postgres/activity"
	pgcontact "github.com/contactdesk/backend/internal/adapter/postgres/contact"
	pgsetting "github.com/contactdesk/backend/internal/adapter/postgres/setting"
	"github.com/contactdesk/backend/internal/adapter/sheet"
	sheetactivity "github.com/contactdesk/backend/internal/adapter/sheet/activity"
	sheetcontact "github.com/contactdesk/backend/internal/adapter/sheet/contact"
	sheetsetting "github.com/contactdesk/backend/internal/adapter/sheet/setting"
	"github.com/contactdesk/backend/internal/config"
	"github.com/contactdesk/backend/internal/service/record"
	"github.com/contactdesk/backend/internal/transport/middleware"
	"github.com/contactdesk/backend/internal/transport/rest"
)

// Run is the application entry point. It loads configuration, builds the
// selected storage backend and serves the API until ctx is cancelled.
func Run(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logger := NewLogger(cfg.Log)

	logger.Info("starting server",
		slog.String("version", BuildVersion()),
		slog.String("storage_driver", cfg.Storage.Driver),
		slog.String("log_level", cfg.Log.Level),
	)

	svc, pinger, closeStorage, err := buildStorage(ctx, cfg, logger)
	if err != nil {
		return err
	}
	defer closeStorage()

	dispatcher := rest.NewDispatcher(svc, logger)
	health := rest.NewHealthHandler(pinger, BuildVersion())
	router := rest.NewRouter(dispatcher, health)

	mws := []middleware.Middleware{
		middleware.RequestID(),
		middleware.Recovery(logger),
		middleware.Logger(logger),
		middleware.CORS(cfg.CORS),
	}
	if cfg.Server.WritesPerMinute > 0 {
		limiter := middleware.NewRateLimiter(time.Minute)
		defer limiter.Stop()
		mws = append(mws, writeLimit(limiter.Limit(cfg.Server.WritesPerMinute)))
	}
	handler := middleware.Chain(mws...)(router)

	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	srv := &http.Server{
		Addr:              addr,
		Handler:           handler,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       cfg.Server.ReadTimeout,
		WriteTimeout:      cfg.Server.WriteTimeout,
		IdleTimeout:       cfg.Server.IdleTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("listening", slog.String("addr", addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return fmt.Errorf("http server: %w", err)
	case <-ctx.Done():
	}

	logger.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}

	logger.Info("server stopped")
	return nil
}

// buildStorage constructs the record service over the configured backend and
// returns it together with a health pinger and a close function.
func buildStorage(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*record.Service, rest.Pinger, func(), error) {
	switch cfg.Storage.Driver {
	case config.DriverCSV:
		dir := cfg.Storage.CSV.Dir
		if cfg.Storage.CSV.InitMissing {
			if err := sheet.Bootstrap(dir, sheet.Contacts, sheet.Activities, sheet.Settings); err != nil {
				return nil, nil, nil, fmt.Errorf("bootstrap csv tables: %w", err)
			}
		}

		contactsSrc := sheet.NewFileSource(dir, sheet.Contacts)
		// Fail fast on a broken deployment instead of at the first request.
		if _, err := contactsSrc.ReadAll(); err != nil {
			return nil, nil, nil, fmt.Errorf("open csv store: %w", err)
		}

		svc := record.NewService(logger,
			sheetcontact.New(sheet.NewTable(sheet.Contacts, contactsSrc)),
			sheetactivity.New(sheet.NewTable(sheet.Activities, sheet.NewFileSource(dir, sheet.Activities))),
			sheetsetting.New(sheet.NewTable(sheet.Settings, sheet.NewFileSource(dir, sheet.Settings))),
		)
		return svc, csvPinger{source: contactsSrc}, func() {}, nil

	case config.DriverPostgres:
		if cfg.Storage.Postgres.Migrate {
			if err := postgres.Migrate(ctx, cfg.Storage.Postgres.DSN); err != nil {
				return nil, nil, nil, fmt.Errorf("migrate: %w", err)
			}
		}

		pool, err := postgres.NewPool(ctx, cfg.Storage.Postgres)
		if err != nil {
			return nil, nil, nil, fmt.Errorf("connect to postgres: %w", err)
		}

		svc := record.NewService(logger,
			pgcontact.New(pool),
			pgactivity.New(pool),
			pgsetting.New(pool),
		)
		return svc, pool, pool.Close, nil

	default:
		return nil, nil, nil, fmt.Errorf("unknown storage driver %q", cfg.Storage.Driver)
	}
}

// csvPinger reports the file-backed store healthy when the contacts table is
// readable.
type csvPinger struct {
	source *sheet.FileSource
}

func (p csvPinger) Ping(_ context.Context) error {
	_, err := p.source.ReadAll()
	return err
}

// writeLimit applies the rate limiting middleware to write requests only;
// reads pass through untouched.
func writeLimit(limit middleware.Middleware) middleware.Middleware {
	return func(next http.Handler) http.Handler {
		limited := limit(next)
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.Method == http.MethodPost {
				limited.ServeHTTP(w, r)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
