package websession

import (
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/patrickmn/go-cache"

	"github.com/mind-engage/mindengage-quiz/internal/quiz"
)

const CookieName = "quiz_session"

// Manager keeps each browser's quiz.Session server-side, keyed by an ID
// carried in a signed cookie. Concurrent requests from one browser are last
// write wins.
type Manager struct {
	signer *Signer
	values *cache.Cache
	ttl    time.Duration
	secure bool
	now    func() time.Time
}

type Option func(*Manager)

// WithSecureCookie marks the cookie Secure; set it when served over TLS.
func WithSecureCookie(b bool) Option         { return func(m *Manager) { m.secure = b } }
func WithClock(now func() time.Time) Option { return func(m *Manager) { m.now = now } }

func NewManager(signer *Signer, ttl time.Duration, opts ...Option) *Manager {
	m := &Manager{
		signer: signer,
		values: cache.New(ttl, 2*ttl),
		ttl:    ttl,
		now:    time.Now,
	}
	for _, o := range opts {
		o(m)
	}
	return m
}

// Middleware makes sure every request carries a session ID, minting one
// when the cookie is missing, tampered with or expired. The cookie is
// refreshed on every request so active sessions stay alive.
func (m *Manager) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := ""
		if c, err := r.Cookie(CookieName); err == nil && c.Value != "" {
			if sid, err := m.signer.Parse(c.Value); err == nil {
				id = sid
			}
		}
		if id == "" {
			id = uuid.NewString()
		}

		tok, err := m.signer.Issue(id, m.ttl, m.now())
		if err != nil {
			http.Error(w, "session unavailable", http.StatusInternalServerError)
			return
		}
		http.SetCookie(w, &http.Cookie{
			Name:     CookieName,
			Value:    tok,
			Path:     "/",
			HttpOnly: true,
			Secure:   m.secure,
			SameSite: http.SameSiteLaxMode,
			Expires:  m.now().Add(m.ttl),
		})
		next.ServeHTTP(w, r.WithContext(WithID(r.Context(), id)))
	})
}

// Get returns the stored session for id, or a NotStarted one.
func (m *Manager) Get(id string) quiz.Session {
	if v, ok := m.values.Get(id); ok {
		if s, ok := v.(quiz.Session); ok {
			return s
		}
	}
	return quiz.Session{}
}

func (m *Manager) Put(id string, s quiz.Session) {
	m.values.Set(id, s, cache.DefaultExpiration)
}

func (m *Manager) Clear(id string) {
	m.values.Delete(id)
}
