package http

import (
	"context"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"go.uber.org/zap"

	"github.com/mind-engage/mindengage-quiz/internal/quiz"
	"github.com/mind-engage/mindengage-quiz/internal/websession"
)

const maxQuizTextBytes = 1 << 20

type RouterDeps struct {
	Service     *quiz.Service
	Sessions    *websession.Manager
	Views       *Views
	Limiter     *RateLimiter
	Log         *zap.Logger
	CORSOrigins []string
	// Ready backs /readyz; nil means always ready.
	Ready func(ctx context.Context) error
}

func NewRouter(d RouterDeps) http.Handler {
	log := d.Log
	if log == nil {
		log = zap.NewNop()
	}
	limit := func(next http.Handler) http.Handler { return next }
	if d.Limiter != nil {
		limit = d.Limiter.Handle
	}

	r := chi.NewRouter()
	r.Use(middleware.RequestID, middleware.RealIP, RequestLogger(log), middleware.Recoverer)
	r.Use(middleware.Timeout(30 * time.Second))

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) { w.WriteHeader(http.StatusOK) })
	r.Get("/readyz", func(w http.ResponseWriter, r *http.Request) {
		if d.Ready != nil {
			if err := d.Ready(r.Context()); err != nil {
				log.Warn("not ready", zap.Error(err))
				w.WriteHeader(http.StatusServiceUnavailable)
				return
			}
		}
		w.WriteHeader(http.StatusOK)
	})

	r.Route("/api", func(ar chi.Router) {
		ar.Use(cors.Handler(cors.Options{
			AllowedOrigins: d.CORSOrigins,
			AllowedMethods: []string{"POST", "OPTIONS"},
			AllowedHeaders: []string{"Content-Type"},
			MaxAge:         300,
		}))
		ar.Use(limit, maxBody(maxQuizTextBytes))
		ar.Post("/parse", ParseHandler())
		ar.Post("/quizzes", CreateQuizAPIHandler(d.Service, log))
	})

	// Browser pages share the cookie session.
	r.Group(func(pr chi.Router) {
		pr.Use(d.Sessions.Middleware)

		pr.Get("/", IndexHandler(d.Sessions, d.Views))
		pr.With(limit, maxBody(maxQuizTextBytes)).
			Post("/", CreateQuizHandler(d.Service, d.Sessions, d.Views, log))

		start := StartHandler(d.Service, d.Sessions, log)
		pr.Get("/start", start)
		pr.Post("/start", start)
		pr.Get("/start/{quizID}", start)
		pr.Post("/start/{quizID}", start)

		pr.Get("/quiz", QuizViewHandler(d.Sessions, d.Views))
		pr.With(maxBody(64<<10)).Post("/quiz", AnswerHandler(d.Service, d.Sessions, d.Views, log))
	})

	return r
}
