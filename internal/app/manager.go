package app

import (
	"sync"
	"time"
)

// SessionManager handles creation and lifecycle of review sessions
type SessionManager interface {
	CreateSession(mode string) (*ReviewSession, error)
	GetSession(sessionID string) (*ReviewSession, error)
	CloseSession(sessionID string) error
	CleanupExpiredSessions() int
}

// InMemorySessionManager implements SessionManager with in-memory storage
type InMemorySessionManager struct {
	sessions   map[string]*ReviewSession
	sessionAge map[string]time.Time
	mutex      sync.RWMutex
	delay      time.Duration
	logDir     string
	maxAge     time.Duration
}

// NewInMemorySessionManager creates a new session manager
func NewInMemorySessionManager(delay time.Duration, logDir string, maxAge time.Duration) *InMemorySessionManager {
	return &InMemorySessionManager{
		sessions:   make(map[string]*ReviewSession),
		sessionAge: make(map[string]time.Time),
		delay:      delay,
		logDir:     logDir,
		maxAge:     maxAge,
	}
}

// CreateSession creates a new review session for a user
func (sm *InMemorySessionManager) CreateSession(mode string) (*ReviewSession, error) {
	sessionID := GenerateSessionID(mode)

	session, err := NewReviewSession(SessionConfig{
		ID:          sessionID,
		SessionType: mode,
		Delay:       sm.delay,
		LogDir:      sm.logDir,
	})
	if err != nil {
		return nil, err
	}

	sm.mutex.Lock()
	sm.sessions[sessionID] = session
	sm.sessionAge[sessionID] = time.Now()
	sm.mutex.Unlock()

	return session, nil
}

// GetSession retrieves an existing session
func (sm *InMemorySessionManager) GetSession(sessionID string) (*ReviewSession, error) {
	sm.mutex.RLock()
	session, exists := sm.sessions[sessionID]
	sm.mutex.RUnlock()

	if !exists {
		return nil, NewSessionError(sessionID, "get", nil)
	}

	// Update last access time
	sm.mutex.Lock()
	sm.sessionAge[sessionID] = time.Now()
	sm.mutex.Unlock()

	return session, nil
}

// CloseSession closes and removes a session
func (sm *InMemorySessionManager) CloseSession(sessionID string) error {
	sm.mutex.Lock()
	defer sm.mutex.Unlock()

	session, exists := sm.sessions[sessionID]
	if !exists {
		return NewSessionError(sessionID, "close", nil)
	}

	if err := session.Close(); err != nil {
		return NewSessionError(sessionID, "close", err)
	}

	delete(sm.sessions, sessionID)
	delete(sm.sessionAge, sessionID)
	return nil
}

// CleanupExpiredSessions removes sessions older than maxAge
func (sm *InMemorySessionManager) CleanupExpiredSessions() int {
	sm.mutex.Lock()
	defer sm.mutex.Unlock()

	now := time.Now()
	var expired []string

	for sessionID, lastAccess := range sm.sessionAge {
		if now.Sub(lastAccess) > sm.maxAge {
			expired = append(expired, sessionID)
		}
	}

	for _, sessionID := range expired {
		if session, exists := sm.sessions[sessionID]; exists {
			session.Close() // Best effort cleanup
		}
		delete(sm.sessions, sessionID)
		delete(sm.sessionAge, sessionID)
	}

	return len(expired)
}
