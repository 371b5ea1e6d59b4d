package store

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"anarchyauth/internal/domain"
	"anarchyauth/internal/util/memzero"
)

const (
	// DefaultSessionTTL bounds how long a derived keypair stays usable.
	DefaultSessionTTL = 30 * time.Minute

	// maxIDAttempts caps collision retries in Create.
	maxIDAttempts = 8
)

// Options configures a SessionMemoryStore.
type Options struct {
	TTL         time.Duration // <= 0 means DefaultSessionTTL
	MaxSessions int           // <= 0 means unbounded
	Clock       Clock         // nil means SystemClock
	Logger      *slog.Logger  // nil means slog.Default()
}

// SessionMemoryStore keeps sessions in process memory behind a single RWMutex.
// Private key bytes are wiped when a session is deleted or expires.
type SessionMemoryStore struct {
	mu       sync.RWMutex
	sessions map[domain.SessionID]*domain.Session

	ttl   time.Duration
	max   int
	clock Clock
	log   *slog.Logger
}

// NewSessionMemoryStore returns an empty store.
func NewSessionMemoryStore(opts Options) *SessionMemoryStore {
	if opts.TTL <= 0 {
		opts.TTL = DefaultSessionTTL
	}
	if opts.Clock == nil {
		opts.Clock = SystemClock{}
	}
	if opts.Logger == nil {
		opts.Logger = slog.Default()
	}
	return &SessionMemoryStore{
		sessions: make(map[domain.SessionID]*domain.Session),
		ttl:      opts.TTL,
		max:      opts.MaxSessions,
		clock:    opts.Clock,
		log:      opts.Logger,
	}
}

// Create inserts a session for kp. On an id collision the timestamp input is
// advanced by a nanosecond and the id recomputed.
func (s *SessionMemoryStore) Create(kp domain.KeyPair, method domain.Method) (domain.SessionID, error) {
	now := s.clock.Now()

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.max > 0 && len(s.sessions) >= s.max {
		s.sweepLocked(now)
		if len(s.sessions) >= s.max {
			return "", domain.ErrSessionCapacity
		}
	}

	for attempt := 0; attempt < maxIDAttempts; attempt++ {
		id := NewSessionID(now.Add(time.Duration(attempt)), kp.Public)
		if _, taken := s.sessions[id]; taken {
			s.log.Warn("session id collision", "attempt", attempt)
			continue
		}
		s.sessions[id] = &domain.Session{
			ID:        id,
			KeyPair:   kp,
			Method:    method,
			CreatedAt: now,
			ExpiresAt: now.Add(s.ttl),
		}
		return id, nil
	}
	return "", domain.ErrSessionIDCollision
}

// Get returns a copy of the session. Expired sessions are evicted and
// reported as not found.
func (s *SessionMemoryStore) Get(id domain.SessionID) (domain.Session, error) {
	now := s.clock.Now()

	s.mu.RLock()
	sess, ok := s.sessions[id]
	if ok && !sess.ExpiredAt(now) {
		out := *sess
		s.mu.RUnlock()
		return out, nil
	}
	s.mu.RUnlock()
	if !ok {
		return domain.Session{}, domain.ErrSessionNotFound
	}

	s.mu.Lock()
	if sess, ok := s.sessions[id]; ok && sess.ExpiredAt(now) {
		s.removeLocked(id, sess)
	}
	s.mu.Unlock()
	return domain.Session{}, domain.ErrSessionNotFound
}

// Delete removes id if present.
func (s *SessionMemoryStore) Delete(id domain.SessionID) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if sess, ok := s.sessions[id]; ok {
		s.removeLocked(id, sess)
	}
}

// Len reports the number of held sessions, expired or not.
func (s *SessionMemoryStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.sessions)
}

// Sweep evicts every session expired at the current clock time and returns
// how many were removed.
func (s *SessionMemoryStore) Sweep() int {
	now := s.clock.Now()
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.sweepLocked(now)
}

// Run sweeps every interval until ctx is cancelled.
func (s *SessionMemoryStore) Run(ctx context.Context, interval time.Duration) {
	if interval <= 0 {
		interval = time.Minute
	}
	t := time.NewTicker(interval)
	defer t.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-t.C:
			if n := s.Sweep(); n > 0 {
				s.log.Debug("evicted expired sessions", "count", n)
			}
		}
	}
}

func (s *SessionMemoryStore) sweepLocked(now time.Time) int {
	n := 0
	for id, sess := range s.sessions {
		if sess.ExpiredAt(now) {
			s.removeLocked(id, sess)
			n++
		}
	}
	return n
}

// removeLocked must be called with mu held for writing.
func (s *SessionMemoryStore) removeLocked(id domain.SessionID, sess *domain.Session) {
	memzero.Zero(sess.KeyPair.Private[:])
	delete(s.sessions, id)
}

// Compile-time assertion that SessionMemoryStore implements domain.SessionStore.
var _ domain.SessionStore = (*SessionMemoryStore)(nil)
