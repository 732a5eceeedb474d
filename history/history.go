// Package history remembers the source text each stepping session last
// compiled, so a session that reconnects resumes where it left off.
package history

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/tliron/commonlog"
)

var log = commonlog.GetLogger("celstep.history")

// Entry is one saved source text.
type Entry struct {
	Session string    `json:"session" yaml:"session"`
	Source  string    `json:"source" yaml:"source"`
	SavedAt time.Time `json:"savedAt" yaml:"savedAt"`
}

// Store persists source text per session. Implementations are safe for
// concurrent use.
type Store interface {
	// Save appends source to the session's history.
	Save(ctx context.Context, session, source string) error
	// Latest returns the most recently saved source for the session.
	Latest(ctx context.Context, session string) (source string, ok bool, err error)
	// List returns up to limit entries, newest first. A limit <= 0 means all.
	List(ctx context.Context, session string, limit int) ([]Entry, error)
	// Prune deletes entries saved before cutoff and returns how many went.
	Prune(ctx context.Context, cutoff time.Time) (int64, error)
	Close() error
}

// Open returns the store for a configured driver: "memory", "sqlite" or
// "mysql".
func Open(driver, dsn string) (Store, error) {
	switch driver {
	case "", "memory":
		return NewMemoryStore(), nil
	case "sqlite", "mysql":
		return OpenSQL(driver, dsn)
	default:
		return nil, fmt.Errorf("history: unknown driver %q", driver)
	}
}

// LatestOr returns the latest source for the session, or fallback when the
// session has none.
func LatestOr(ctx context.Context, s Store, session, fallback string) (string, error) {
	src, ok, err := s.Latest(ctx, session)
	if err != nil {
		return "", err
	}
	if !ok {
		return fallback, nil
	}
	return src, nil
}

// ---------------------------------------------------------------------------
// MemoryStore
// ---------------------------------------------------------------------------

// MemoryStore keeps history in process memory.
type MemoryStore struct {
	mu      sync.RWMutex
	entries map[string][]Entry
	now     func() time.Time
}

// NewMemoryStore creates an empty in-memory store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		entries: make(map[string][]Entry),
		now:     time.Now,
	}
}

func (m *MemoryStore) Save(_ context.Context, session, source string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.entries[session] = append(m.entries[session], Entry{
		Session: session,
		Source:  source,
		SavedAt: m.now().UTC(),
	})
	return nil
}

func (m *MemoryStore) Latest(_ context.Context, session string) (string, bool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	list := m.entries[session]
	if len(list) == 0 {
		return "", false, nil
	}
	return list[len(list)-1].Source, true, nil
}

func (m *MemoryStore) List(_ context.Context, session string, limit int) ([]Entry, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	list := m.entries[session]
	out := make([]Entry, len(list))
	for i, e := range list {
		out[len(list)-1-i] = e
	}
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (m *MemoryStore) Prune(_ context.Context, cutoff time.Time) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var removed int64
	for session, list := range m.entries {
		kept := list[:0]
		for _, e := range list {
			if e.SavedAt.Before(cutoff) {
				removed++
				continue
			}
			kept = append(kept, e)
		}
		if len(kept) == 0 {
			delete(m.entries, session)
		} else {
			m.entries[session] = kept
		}
	}
	return removed, nil
}

func (m *MemoryStore) Close() error { return nil }
