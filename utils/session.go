// utils/session.go
package utils

import (
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	cron "github.com/robfig/cron/v3"
)

// SessionCookie is the name of the cookie carrying the opaque session id.
const SessionCookie = "aircond_session"

// Session associates an opaque identifier with an authenticated user id.
// Expiry is absolute: TTL counts from creation, not from last use.
type Session struct {
	ID        string
	UserID    uint
	ExpiresAt time.Time
}

// SessionStore is an in-memory, expiry-aware map of active sessions.
// It is created once in main and injected into the router and handlers.
type SessionStore struct {
	mu       sync.RWMutex
	sessions map[string]Session
	ttl      time.Duration
	cron     *cron.Cron
}

func NewSessionStore(ttl time.Duration) *SessionStore {
	return &SessionStore{
		sessions: make(map[string]Session),
		ttl:      ttl,
	}
}

// TTL returns the configured session lifetime.
func (s *SessionStore) TTL() time.Duration {
	return s.ttl
}

// Create establishes a new session for the given user id.
func (s *SessionStore) Create(userID uint) Session {
	sess := Session{
		ID:        uuid.NewString(),
		UserID:    userID,
		ExpiresAt: time.Now().Add(s.ttl),
	}

	s.mu.Lock()
	s.sessions[sess.ID] = sess
	s.mu.Unlock()

	return sess
}

// Get returns the session for id, or false if it is unknown or expired.
// Expired entries are left for the sweeper.
func (s *SessionStore) Get(id string) (Session, bool) {
	s.mu.RLock()
	sess, ok := s.sessions[id]
	s.mu.RUnlock()

	if !ok || time.Now().After(sess.ExpiresAt) {
		return Session{}, false
	}
	return sess, true
}

// Destroy invalidates a session immediately.
func (s *SessionStore) Destroy(id string) {
	s.mu.Lock()
	delete(s.sessions, id)
	s.mu.Unlock()
}

// Sweep removes expired sessions and returns how many were dropped.
func (s *SessionStore) Sweep() int {
	now := time.Now()

	s.mu.Lock()
	defer s.mu.Unlock()

	removed := 0
	for id, sess := range s.sessions {
		if now.After(sess.ExpiresAt) {
			delete(s.sessions, id)
			removed++
		}
	}
	return removed
}

// StartSweeper purges expired sessions every hour.
func (s *SessionStore) StartSweeper() {
	c := cron.New()

	c.AddFunc("0 * * * *", func() {
		s.Sweep()
	})

	c.Start()
	s.cron = c
}

func (s *SessionStore) StopSweeper() {
	if s.cron != nil {
		s.cron.Stop()
	}
}

// RequireSession guards a route group. A valid session puts the user id
// into the request context; otherwise API clients get a 401 JSON error
// and browser requests are redirected to the login page.
func RequireSession(store *SessionStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		if id, err := c.Cookie(SessionCookie); err == nil {
			if sess, ok := store.Get(id); ok {
				c.Set("userId", sess.UserID)
				c.Next()
				return
			}
		}

		if isAPIRequest(c) {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
			return
		}

		c.Redirect(http.StatusFound, "/login")
		c.Abort()
	}
}

func isAPIRequest(c *gin.Context) bool {
	if strings.HasPrefix(c.Request.URL.Path, "/api/") {
		return true
	}
	return strings.Contains(c.GetHeader("Accept"), "application/json")
}

// CurrentUserID reads the authenticated user id set by RequireSession.
func CurrentUserID(c *gin.Context) (uint, bool) {
	v, exists := c.Get("userId")
	if !exists {
		return 0, false
	}
	id, ok := v.(uint)
	return id, ok
}
