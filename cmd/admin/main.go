package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/debraj09/geemadhura-admin-panel-sub000/internal/auth"
	"github.com/debraj09/geemadhura-admin-panel-sub000/internal/catalog"
	"github.com/debraj09/geemadhura-admin-panel-sub000/internal/config"
	"github.com/debraj09/geemadhura-admin-panel-sub000/internal/database/driver"
	"github.com/debraj09/geemadhura-admin-panel-sub000/internal/database/repository/pgsql"
	"github.com/debraj09/geemadhura-admin-panel-sub000/internal/http-server/form"
	"github.com/debraj09/geemadhura-admin-panel-sub000/internal/http-server/middleware/metrics"
	"github.com/debraj09/geemadhura-admin-panel-sub000/internal/http-server/middleware/validator"
	"github.com/debraj09/geemadhura-admin-panel-sub000/internal/http-server/router"
	"github.com/debraj09/geemadhura-admin-panel-sub000/internal/media"
	"github.com/debraj09/geemadhura-admin-panel-sub000/pkg/lib/logger/slogpretty"
	"github.com/debraj09/geemadhura-admin-panel-sub000/pkg/lib/sl"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
)

const (
	envLocal = "local"
	envDev   = "dev"
	envProd  = "prod"
)

func main() {
	cfg, scr := config.MustLoad()
	log := setupLogger(cfg.Env)

	log.Info("starting app", slog.String("env", cfg.Env))

	log.Debug("debug messages are enabled")

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	sqlxConfig := &driver.SQLXConfig{
		DriverName:      cfg.DriverName,
		DataSourceName:  cfg.DataSourceName(scr.PostgresPassword),
		MaxOpenConns:    cfg.MaxOpenConns,
		MaxIdleConns:    cfg.MaxIdleConns,
		MaxLifetime:     cfg.MaxLifetime,
		ConnectAttempts: cfg.ConnectAttempts,
		ConnectBackoff:  cfg.ConnectBackoff,
	}

	db, err := sqlxConfig.NewSQLXDatabase(ctx, log)
	if err != nil {
		log.Error("failed to init storage", sl.Err(err))
		os.Exit(1)
	}

	store, err := media.New(cfg.Dir, cfg.PublicURL, cfg.MaxUploadSize)
	if err != nil {
		log.Error("failed to init media store", sl.Err(err))
		os.Exit(1)
	}

	authorizer, err := auth.New(cfg.AdminUser, scr.AdminPasswordHash, scr.JWTSecret, cfg.TokenTTL)
	if err != nil {
		log.Error("failed to init auth", sl.Err(err))
		os.Exit(1)
	}

	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		collectors.NewDBStatsCollector(db.DB, cfg.DBname),
	)

	handler := router.New(log, router.Config{
		Pagination: validator.Pagination{
			DefaultLimit: cfg.DefaultLimit,
			MaxLimit:     cfg.MaxLimit,
		},
		MaxBodySize:    cfg.MaxBodySize,
		AllowedOrigins: cfg.AllowedOrigins,
		Requests:       cfg.Requests,
		LoginRequests:  cfg.LoginRequests,
		Window:         cfg.Window,
	}, router.Deps{
		Catalog:    catalog.Default(),
		Repository: pgsql.NewContentRepository(db),
		Media:      store,
		MediaURL:   cfg.PublicURL,
		Decoder:    form.NewDecoder(cfg.MaxUploadSize),
		Authorizer: authorizer,
		Metrics:    metrics.New(reg),
		Gatherer:   reg,
	})

	log.Info("starting server", slog.String("address", cfg.Address))

	server := &http.Server{
		Addr:         cfg.Address,
		Handler:      handler,
		ReadTimeout:  cfg.ReadTimeout,
		IdleTimeout:  cfg.IdleTimeout,
		WriteTimeout: cfg.WriteTimeout,
	}

	go func() {
		if err := server.ListenAndServe(); err != nil {
			if errors.Is(err, http.ErrServerClosed) {
				log.Info("shutting server", sl.Err(err))
				return
			}
			log.Error("failed to start server", sl.Err(err))
			stop()
		}
	}()

	log.Info("server started")
	<-ctx.Done()
	log.Info("stopping server")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.GracefulShutdownTimeout)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Error("failed to stop server", sl.Err(err))
		return
	}

	if err := db.Close(); err != nil {
		log.Error("failed to close storage", sl.Err(err))
		return
	}

	log.Info("server stopped")
}

func setupLogger(env string) *slog.Logger {
	var log *slog.Logger
	switch env {
	case envLocal:
		log = setupPrettyLogger()
	case envDev:
		log = slog.New(
			slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}),
		)
	case envProd:
		log = slog.New(
			slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}),
		)
	default:
		log = slog.New(
			slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}),
		)
		log.Warn("unknown env, using prod logger", slog.String("env", env))
	}
	return log
}

func setupPrettyLogger() *slog.Logger {
	opts := slogpretty.PrettyHandlerOptions{
		SlogOpts: &slog.HandlerOptions{
			Level: slog.LevelDebug,
		},
	}

	handler := opts.NewPrettyHandler(os.Stdout)

	return slog.New(handler)
}
