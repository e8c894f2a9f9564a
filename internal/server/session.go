package server

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"sync"
	"time"

	"pokedex/app/internal/service"

	log "github.com/sirupsen/logrus"
	"go.uber.org/atomic"
)

const (
	DefaultSessionTTL = 30 * time.Minute

	maxReapInterval = time.Minute
)

// Session is one list screen: its pagination controller and entry colors.
// It lives until the client deletes it or leaves it idle for longer than the
// manager's TTL.
type Session struct {
	ID         string
	Controller *service.ListController
	Colors     *ColorBoard

	lastAccess  *atomic.Time
	unsubscribe func()
}

// LastAccess returns when the session was created or last looked up.
func (s *Session) LastAccess() time.Time {
	return s.lastAccess.Load()
}

type SessionManager struct {
	newController func() *service.ListController
	themer        *Themer
	ttl           time.Duration

	mu       sync.RWMutex
	sessions map[string]*Session
}

func NewSessionManager(newController func() *service.ListController, themer *Themer, ttl time.Duration) *SessionManager {
	if ttl <= 0 {
		ttl = DefaultSessionTTL
	}

	return &SessionManager{
		newController: newController,
		themer:        themer,
		ttl:           ttl,
		sessions:      make(map[string]*Session),
	}
}

func (m *SessionManager) Create() (*Session, error) {
	id, err := newSessionID()
	if err != nil {
		return nil, err
	}

	session := &Session{
		ID:         id,
		Controller: m.newController(),
		Colors:     NewColorBoard(),
		lastAccess: atomic.NewTime(time.Now()),
	}

	// Extractions are not tied to any request; results for a deleted
	// session land on an unreachable board.
	session.unsubscribe = session.Controller.Subscribe(func(state service.PaginationState) {
		if state.Phase == service.PhaseLoaded || state.Phase == service.PhaseEndReached {
			m.themer.Theme(context.Background(), session.Colors, state.Items)
		}
	})

	m.mu.Lock()
	m.sessions[id] = session
	m.mu.Unlock()

	log.WithField("session_id", id).Info("🚀 Screen session started")
	return session, nil
}

func (m *SessionManager) Get(id string) (*Session, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	session, ok := m.sessions[id]
	if ok {
		session.lastAccess.Store(time.Now())
	}
	return session, ok
}

func (m *SessionManager) Delete(id string) bool {
	m.mu.Lock()
	session, ok := m.sessions[id]
	delete(m.sessions, id)
	m.mu.Unlock()

	if !ok {
		return false
	}

	session.unsubscribe()
	log.WithField("session_id", id).Info("🛑 Screen session ended")
	return true
}

// Reap ends every session idle for longer than the TTL at now and returns
// how many were ended.
func (m *SessionManager) Reap(now time.Time) int {
	m.mu.Lock()
	var expired []*Session
	for id, session := range m.sessions {
		if now.Sub(session.LastAccess()) > m.ttl {
			expired = append(expired, session)
			delete(m.sessions, id)
		}
	}
	m.mu.Unlock()

	for _, session := range expired {
		session.unsubscribe()
		log.WithFields(log.Fields{
			"session_id":  session.ID,
			"last_access": session.LastAccess().Format(time.RFC3339),
		}).Info("⌛ Screen session expired")
	}

	return len(expired)
}

// RunReaper calls Reap periodically until ctx is cancelled.
func (m *SessionManager) RunReaper(ctx context.Context) {
	interval := min(m.ttl/2, maxReapInterval)
	if interval <= 0 {
		interval = m.ttl
	}

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case now := <-ticker.C:
			if n := m.Reap(now); n > 0 {
				log.Debugf("Reaped %d idle sessions, %d remaining", n, m.Len())
			}
		}
	}
}

func (m *SessionManager) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.sessions)
}

func newSessionID() (string, error) {
	buf := make([]byte, 16)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("failed to generate session id: %w", err)
	}
	return hex.EncodeToString(buf), nil
}
