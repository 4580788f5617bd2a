package server

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/coder/quartz"
	"github.com/google/uuid"

	"github.com/Jorgelet/bingo-analisis/internal/game"
	"github.com/Jorgelet/bingo-analisis/internal/randutil"
)

// reapInterval is how often the idle-session reaper wakes up.
const reapInterval = time.Minute

// managedSession pairs a session with the mutex that serializes access to
// it. The engine is single-writer; every operation against one session goes
// through this lock while independent sessions proceed in parallel.
type managedSession struct {
	id         string
	mu         sync.Mutex
	session    *game.Session
	lastActive time.Time
}

// monitorSubscriber forwards one session's engine events to the manager's
// monitor, tagged with the session id.
type monitorSubscriber struct {
	sessionID string
	monitor   GameMonitor
}

func (m *monitorSubscriber) OnEvent(event game.GameEvent) {
	m.monitor.OnSessionEvent(m.sessionID, event)
}

// SessionManager owns every live game session. Sessions share nothing but
// the read-only word banks.
type SessionManager struct {
	banks       game.Banks
	logger      *log.Logger
	clock       quartz.Clock
	monitor     GameMonitor
	idleTimeout time.Duration

	mu       sync.RWMutex
	sessions map[string]*managedSession
	seedSrc  func() int64
}

// NewSessionManager creates a session manager. The seed function provides
// the per-session shuffle seed; pass nil for time-based seeding.
func NewSessionManager(banks game.Banks, logger *log.Logger, clock quartz.Clock, monitor GameMonitor, idleTimeout time.Duration, seedSrc func() int64) *SessionManager {
	if clock == nil {
		clock = quartz.NewReal()
	}
	if monitor == nil {
		monitor = NullGameMonitor{}
	}
	if seedSrc == nil {
		seedSrc = func() int64 { return time.Now().UnixNano() }
	}
	return &SessionManager{
		banks:       banks,
		logger:      logger.WithPrefix("sessions"),
		clock:       clock,
		monitor:     monitor,
		idleTimeout: idleTimeout,
		sessions:    make(map[string]*managedSession),
		seedSrc:     seedSrc,
	}
}

// Create builds a fresh session in the Setup state and returns its id.
// A non-nil seed pins the round shuffle for reproducible games.
func (sm *SessionManager) Create(seed *int64) string {
	s := seedFor(seed, sm.seedSrc)

	id := uuid.NewString()
	session := game.NewSession(sm.banks, randutil.New(s), sm.clock, sm.logger.With("session", shortID(id)))
	session.EventBus().Subscribe(&monitorSubscriber{sessionID: id, monitor: sm.monitor})

	sm.mu.Lock()
	sm.sessions[id] = &managedSession{
		id:         id,
		session:    session,
		lastActive: sm.clock.Now(),
	}
	sm.mu.Unlock()

	sm.logger.Info("session created", "id", id, "seed", s)
	sm.monitor.OnSessionCreated(id)
	return id
}

func seedFor(seed *int64, fallback func() int64) int64 {
	if seed != nil {
		return *seed
	}
	return fallback()
}

// Do runs fn against the named session while holding its lock, so requests
// against one session are fully serialized. It also bumps the idle clock.
func (sm *SessionManager) Do(id string, fn func(*game.Session) error) error {
	sm.mu.RLock()
	ms, ok := sm.sessions[id]
	sm.mu.RUnlock()
	if !ok {
		return fmt.Errorf("session not found: %s", id)
	}

	ms.mu.Lock()
	defer ms.mu.Unlock()
	ms.lastActive = sm.clock.Now()
	return fn(ms.session)
}

// Banks returns the shared read-only word banks.
func (sm *SessionManager) Banks() game.Banks {
	return sm.banks
}

// Exists reports whether the session id is live.
func (sm *SessionManager) Exists(id string) bool {
	sm.mu.RLock()
	defer sm.mu.RUnlock()
	_, ok := sm.sessions[id]
	return ok
}

// Count returns the number of live sessions.
func (sm *SessionManager) Count() int {
	sm.mu.RLock()
	defer sm.mu.RUnlock()
	return len(sm.sessions)
}

// Run drives the idle-session reaper until the context is cancelled.
func (sm *SessionManager) Run(ctx context.Context) error {
	waiter := sm.clock.TickerFunc(ctx, reapInterval, func() error {
		sm.reapIdle()
		return nil
	}, "session-reaper")
	return waiter.Wait()
}

// reapIdle removes sessions untouched for longer than the idle timeout.
func (sm *SessionManager) reapIdle() {
	if sm.idleTimeout <= 0 {
		return
	}
	cutoff := sm.clock.Now().Add(-sm.idleTimeout)

	sm.mu.Lock()
	var expired []string
	for id, ms := range sm.sessions {
		if ms.lastActive.Before(cutoff) {
			delete(sm.sessions, id)
			expired = append(expired, id)
		}
	}
	sm.mu.Unlock()

	for _, id := range expired {
		sm.logger.Info("session expired", "id", id)
		sm.monitor.OnSessionExpired(id)
	}
}

// shortID trims a uuid down to its first group for log readability.
func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}
