package memory

import (
	"context"
	"sync"
)

// SessionRepository tracks provider-portal authentication flags per session
// in a mutex-guarded map. Sessions that never logged in simply have no entry.
type SessionRepository struct {
	mu            sync.RWMutex
	authenticated map[string]bool
}

// NewSessionRepository creates an empty session repository.
func NewSessionRepository() *SessionRepository {
	return &SessionRepository{authenticated: make(map[string]bool)}
}

// SetAuthenticated sets or clears the authentication flag for a session.
func (r *SessionRepository) SetAuthenticated(_ context.Context, sessionID string, authenticated bool) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if authenticated {
		r.authenticated[sessionID] = true
	} else {
		delete(r.authenticated, sessionID)
	}
	return nil
}

// IsAuthenticated reports whether the session has logged in.
func (r *SessionRepository) IsAuthenticated(_ context.Context, sessionID string) (bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return r.authenticated[sessionID], nil
}
