package api

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/samcharles93/normlab/pkg/lab"
)

// Session binds one lab to one client. The lab itself is single-owner, so
// the session mutex serializes every touch of it.
type Session struct {
	ID        string
	CreatedAt time.Time

	mu  sync.Mutex
	lab *lab.Lab
}

// Snapshot returns the session's current published result.
func (s *Session) Snapshot() lab.Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lab.Snapshot()
}

// Set moves the session's lab to next. The bool reports whether matrices
// were regenerated.
func (s *Session) Set(next lab.Params) (lab.Snapshot, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lab.Set(next)
}

// SessionStore keeps the live sessions, capped so an unattended playground
// cannot grow without bound.
type SessionStore struct {
	mu       sync.Mutex
	sessions map[string]*Session
	limit    int
}

// DefaultSessionLimit bounds concurrent sessions per process.
const DefaultSessionLimit = 64

func NewSessionStore(limit int) *SessionStore {
	if limit <= 0 {
		limit = DefaultSessionLimit
	}
	return &SessionStore{
		sessions: make(map[string]*Session),
		limit:    limit,
	}
}

// Create builds a lab at p and registers it under a fresh session ID.
// Returns ErrSessionLimit when the store is full.
func (s *SessionStore) Create(p lab.Params, now time.Time) (*Session, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(s.sessions) >= s.limit {
		return nil, ErrSessionLimit
	}
	sess := &Session{
		ID:        newSessionID(),
		CreatedAt: now,
		lab:       lab.New(p),
	}
	s.sessions[sess.ID] = sess
	return sess, nil
}

func (s *SessionStore) Get(id string) (*Session, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	sess, ok := s.sessions[id]
	return sess, ok
}

func (s *SessionStore) Delete(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.sessions[id]; !ok {
		return false
	}
	delete(s.sessions, id)
	return true
}

func (s *SessionStore) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.sessions)
}

func newSessionID() string {
	return "sess_" + uuid.NewString()
}
