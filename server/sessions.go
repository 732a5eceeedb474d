package server

import (
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/chazu/celstep/vm"
)

// Session is one stepping session: the source being browsed and its
// compiled program. Callers hold mu while touching Source or Program.
type Session struct {
	ID string

	mu       sync.Mutex
	Source   string
	Program  *vm.Program
	lastUsed time.Time
}

// Lock acquires the session for exclusive use.
func (s *Session) Lock() { s.mu.Lock() }

// Unlock releases the session.
func (s *Session) Unlock() { s.mu.Unlock() }

// SessionStore manages stepping sessions.
type SessionStore struct {
	mu       sync.RWMutex
	sessions map[string]*Session
	now      func() time.Time
}

// NewSessionStore creates an empty session store.
func NewSessionStore() *SessionStore {
	return &SessionStore{
		sessions: make(map[string]*Session),
		now:      time.Now,
	}
}

// Create registers a session under id, or under a fresh UUID when id is
// empty. An existing session with the same id is replaced.
func (s *SessionStore) Create(id string) *Session {
	if id == "" {
		id = uuid.NewString()
	}
	session := &Session{ID: id, lastUsed: s.now()}

	s.mu.Lock()
	s.sessions[id] = session
	s.mu.Unlock()

	return session
}

// Get retrieves a session by ID and marks it used.
func (s *SessionStore) Get(id string) (*Session, bool) {
	s.mu.RLock()
	session, ok := s.sessions[id]
	s.mu.RUnlock()

	if ok {
		session.mu.Lock()
		session.lastUsed = s.now()
		session.mu.Unlock()
	}
	return session, ok
}

// Destroy removes a session.
func (s *SessionStore) Destroy(id string) {
	s.mu.Lock()
	delete(s.sessions, id)
	s.mu.Unlock()
}

// IDs returns the IDs of all live sessions, sorted.
func (s *SessionStore) IDs() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	ids := make([]string, 0, len(s.sessions))
	for id := range s.sessions {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// Sweep removes sessions that haven't been accessed within the TTL.
func (s *SessionStore) Sweep(ttl time.Duration) int {
	s.mu.Lock()
	defer s.mu.Unlock()

	cutoff := s.now().Add(-ttl)
	removed := 0
	for id, session := range s.sessions {
		session.mu.Lock()
		stale := session.lastUsed.Before(cutoff)
		session.mu.Unlock()
		if stale {
			delete(s.sessions, id)
			removed++
		}
	}
	if removed > 0 {
		log.Debugf("swept %d idle sessions", removed)
	}
	return removed
}

// StartSweeper runs periodic TTL sweeps in the background, calling each
// hook after every sweep. Returns a stop function.
func (s *SessionStore) StartSweeper(interval, ttl time.Duration, hooks ...func()) func() {
	ticker := time.NewTicker(interval)
	done := make(chan struct{})
	go func() {
		for {
			select {
			case <-ticker.C:
				s.Sweep(ttl)
				for _, hook := range hooks {
					hook()
				}
			case <-done:
				ticker.Stop()
				return
			}
		}
	}()
	var once sync.Once
	return func() { once.Do(func() { close(done) }) }
}
