package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	api "github.com/mind-engage/mindengage-quiz/internal/api/http"
	"github.com/mind-engage/mindengage-quiz/internal/config"
	"github.com/mind-engage/mindengage-quiz/internal/db"
	"github.com/mind-engage/mindengage-quiz/internal/logger"
	"github.com/mind-engage/mindengage-quiz/internal/quiz"
	syncx "github.com/mind-engage/mindengage-quiz/internal/sync"
	"github.com/mind-engage/mindengage-quiz/internal/websession"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		_, _ = os.Stderr.WriteString("config: " + err.Error() + "\n")
		os.Exit(1)
	}

	log, err := logger.New(cfg.Env)
	if err != nil {
		_, _ = os.Stderr.WriteString("logger: " + err.Error() + "\n")
		os.Exit(1)
	}
	defer func() { _ = log.Sync() }()

	if cfg.UsingDevSecret() {
		log.Warn("SESSION_SECRET not set, using the built-in development secret")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// --- Storage ---
	var (
		store  quiz.Store
		events syncx.Appender = syncx.Discard{}
		ready  func(context.Context) error
	)
	if db.Driver(cfg.DBDriver) == db.DriverMemory {
		store = quiz.NewInMemoryStore()
	} else {
		openCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
		dbh, err := db.Open(openCtx, db.Driver(cfg.DBDriver), cfg.DBDSN)
		cancel()
		if err != nil {
			log.Fatal("db open failed", zap.String("driver", cfg.DBDriver), zap.Error(err))
		}
		defer dbh.Close()

		store = quiz.NewSQLStore(dbh)
		if cfg.EventsEnabled {
			events = syncx.NewEventRepo(dbh)
		}
		ready = dbh.PingContext
	}

	svc := quiz.NewService(store, events, quiz.WithLogger(log.Named("quiz")))

	// --- Sessions ---
	signer, err := websession.NewSigner(cfg.SessionSecret)
	if err != nil {
		log.Fatal("session signer", zap.Error(err))
	}
	sessions := websession.NewManager(signer, cfg.SessionTTL,
		websession.WithSecureCookie(cfg.Env == "production"))

	views, err := api.NewViews()
	if err != nil {
		log.Fatal("templates", zap.Error(err))
	}

	router := api.NewRouter(api.RouterDeps{
		Service:     svc,
		Sessions:    sessions,
		Views:       views,
		Limiter:     api.NewRateLimiter(cfg.RateLimitRPS, cfg.RateLimitBurst),
		Log:         log.Named("http"),
		CORSOrigins: cfg.CORSOrigins,
		Ready:       ready,
	})

	srv := &http.Server{
		Addr:              cfg.HTTPAddr,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			log.Error("shutdown", zap.Error(err))
		}
	}()

	log.Info("listening",
		zap.String("addr", cfg.HTTPAddr),
		zap.String("env", cfg.Env),
		zap.String("db", cfg.DBDriver),
		zap.Bool("events", cfg.EventsEnabled))
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		log.Fatal("server", zap.Error(err))
	}
}
