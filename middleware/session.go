package middleware

import (
	"net/http"
	"net/url"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
)

// AdminCookieName is the opaque session cookie issued after admin login.
const AdminCookieName = "adm"

// AdminSessionTTL matches the 30-day cookie Max-Age.
const AdminSessionTTL = 30 * 24 * time.Hour

// SessionStore holds opaque admin session tokens in memory. Tokens only gate
// the management UI; every write still carries the admin password itself.
type SessionStore struct {
	mu       sync.Mutex
	sessions map[string]time.Time
	ttl      time.Duration
}

func NewSessionStore(ttl time.Duration) *SessionStore {
	return &SessionStore{
		sessions: make(map[string]time.Time),
		ttl:      ttl,
	}
}

// Create issues a new opaque session token.
func (s *SessionStore) Create() string {
	token := uuid.NewString()

	s.mu.Lock()
	s.sessions[token] = time.Now().Add(s.ttl)
	s.mu.Unlock()

	return token
}

// Valid reports whether token identifies a live session.
func (s *SessionStore) Valid(token string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	expiry, ok := s.sessions[token]
	if !ok {
		return false
	}
	if time.Now().After(expiry) {
		delete(s.sessions, token)
		return false
	}
	return true
}

// CleanupSessions periodically drops expired tokens.
func (s *SessionStore) CleanupSessions() {
	for {
		time.Sleep(time.Minute)
		s.mu.Lock()
		now := time.Now()
		for token, expiry := range s.sessions {
			if now.After(expiry) {
				delete(s.sessions, token)
			}
		}
		s.mu.Unlock()
	}
}

// AdminSessionMiddleware guards the management pages: an unknown slug is a
// 404, a missing or stale session cookie redirects to the login page with the
// original path as a return-to parameter.
func AdminSessionMiddleware(store *SessionStore, adminSlug string) mux.MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if slug := mux.Vars(r)["slug"]; slug != adminSlug {
				http.NotFound(w, r)
				return
			}

			cookie, err := r.Cookie(AdminCookieName)
			if err != nil || !store.Valid(cookie.Value) {
				http.Redirect(w, r, "/admin-login?r="+url.QueryEscape(r.URL.Path), http.StatusFound)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
