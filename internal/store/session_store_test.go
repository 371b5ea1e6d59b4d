package store_test

import (
	"errors"
	"regexp"
	"sync"
	"testing"
	"time"

	"anarchyauth/internal/domain"
	"anarchyauth/internal/store"
)

type fakeClock struct {
	mu  sync.Mutex
	now time.Time
}

func (c *fakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *fakeClock) Advance(d time.Duration) {
	c.mu.Lock()
	c.now = c.now.Add(d)
	c.mu.Unlock()
}

func newClock() *fakeClock {
	return &fakeClock{now: time.Date(2026, 1, 2, 3, 4, 5, 6, time.UTC)}
}

func keyPair(b byte) domain.KeyPair {
	var kp domain.KeyPair
	for i := range kp.Private {
		kp.Private[i] = b
		kp.Public[i] = b ^ 0x5A
	}
	return kp
}

var idPattern = regexp.MustCompile(`^[0-9a-f]{16}$`)

func TestSessionStore_CreateGetDelete(t *testing.T) {
	clk := newClock()
	s := store.NewSessionMemoryStore(store.Options{Clock: clk})

	kp := keyPair(1)
	id, err := s.Create(kp, domain.MethodImageHash)
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if !idPattern.MatchString(id.String()) {
		t.Fatalf("session id %q is not 16 lowercase hex chars", id)
	}

	got, err := s.Get(id)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if got.KeyPair != kp || got.Method != domain.MethodImageHash {
		t.Fatalf("session contents mismatch: %+v", got)
	}
	if !got.CreatedAt.Equal(clk.Now()) || !got.ExpiresAt.Equal(clk.Now().Add(store.DefaultSessionTTL)) {
		t.Fatalf("timestamps wrong: %v %v", got.CreatedAt, got.ExpiresAt)
	}

	s.Delete(id)
	if _, err := s.Get(id); !errors.Is(err, domain.ErrSessionNotFound) {
		t.Fatalf("want ErrSessionNotFound after delete, got %v", err)
	}
	s.Delete(id) // idempotent
	if s.Len() != 0 {
		t.Fatalf("Len = %d", s.Len())
	}
}

func TestSessionStore_GetUnknown(t *testing.T) {
	s := store.NewSessionMemoryStore(store.Options{})
	if _, err := s.Get("0000000000000000"); !errors.Is(err, domain.ErrSessionNotFound) {
		t.Fatalf("want ErrSessionNotFound, got %v", err)
	}
}

func TestSessionStore_ReturnedCopyIsIsolated(t *testing.T) {
	s := store.NewSessionMemoryStore(store.Options{})
	kp := keyPair(7)
	id, err := s.Create(kp, domain.MethodIrisBiometric)
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	got, _ := s.Get(id)
	got.KeyPair.Private[0] ^= 0xFF

	again, _ := s.Get(id)
	if again.KeyPair != kp {
		t.Fatal("mutating a returned session changed the stored one")
	}
}

func TestSessionStore_ExpiryOnGet(t *testing.T) {
	clk := newClock()
	s := store.NewSessionMemoryStore(store.Options{Clock: clk, TTL: time.Minute})

	id, err := s.Create(keyPair(2), domain.MethodImageHash)
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	clk.Advance(59 * time.Second)
	if _, err := s.Get(id); err != nil {
		t.Fatalf("session should still be live: %v", err)
	}
	clk.Advance(time.Second)
	if _, err := s.Get(id); !errors.Is(err, domain.ErrSessionNotFound) {
		t.Fatalf("want ErrSessionNotFound at expiry, got %v", err)
	}
	if s.Len() != 0 {
		t.Fatal("expired session should be evicted on read")
	}
}

func TestSessionStore_Sweep(t *testing.T) {
	clk := newClock()
	s := store.NewSessionMemoryStore(store.Options{Clock: clk, TTL: time.Minute})

	if _, err := s.Create(keyPair(1), domain.MethodImageHash); err != nil {
		t.Fatal(err)
	}
	clk.Advance(30 * time.Second)
	young, err := s.Create(keyPair(2), domain.MethodImageHash)
	if err != nil {
		t.Fatal(err)
	}
	clk.Advance(45 * time.Second)

	if n := s.Sweep(); n != 1 {
		t.Fatalf("Sweep removed %d, want 1", n)
	}
	if _, err := s.Get(young); err != nil {
		t.Fatalf("younger session should survive: %v", err)
	}
}

func TestSessionStore_CollisionRetry(t *testing.T) {
	clk := newClock()
	s := store.NewSessionMemoryStore(store.Options{Clock: clk})

	kp := keyPair(3)
	first, err := s.Create(kp, domain.MethodImageHash)
	if err != nil {
		t.Fatal(err)
	}
	// Same key and same instant yield the same candidate id.
	second, err := s.Create(kp, domain.MethodImageHash)
	if err != nil {
		t.Fatalf("Create after collision: %v", err)
	}
	if first == second {
		t.Fatal("collision was not resolved")
	}
	if want := store.NewSessionID(clk.Now().Add(time.Nanosecond), kp.Public); second != want {
		t.Fatalf("second id = %s, want %s", second, want)
	}
}

func TestSessionStore_CollisionExhausted(t *testing.T) {
	s := store.NewSessionMemoryStore(store.Options{Clock: newClock()})
	kp := keyPair(4)
	for i := 0; i < 8; i++ {
		if _, err := s.Create(kp, domain.MethodImageHash); err != nil {
			t.Fatalf("Create %d: %v", i, err)
		}
	}
	if _, err := s.Create(kp, domain.MethodImageHash); !errors.Is(err, domain.ErrSessionIDCollision) {
		t.Fatalf("want ErrSessionIDCollision, got %v", err)
	}
}

func TestSessionStore_Capacity(t *testing.T) {
	clk := newClock()
	s := store.NewSessionMemoryStore(store.Options{Clock: clk, TTL: time.Minute, MaxSessions: 2})

	for i := byte(0); i < 2; i++ {
		if _, err := s.Create(keyPair(i), domain.MethodImageHash); err != nil {
			t.Fatal(err)
		}
	}
	if _, err := s.Create(keyPair(9), domain.MethodImageHash); !errors.Is(err, domain.ErrSessionCapacity) {
		t.Fatalf("want ErrSessionCapacity, got %v", err)
	}
	clk.Advance(2 * time.Minute)
	if _, err := s.Create(keyPair(9), domain.MethodImageHash); err != nil {
		t.Fatalf("expired sessions should free capacity: %v", err)
	}
}

func TestSessionStore_Concurrent(t *testing.T) {
	s := store.NewSessionMemoryStore(store.Options{})
	var wg sync.WaitGroup
	ids := make(chan domain.SessionID, 64)
	for i := 0; i < 64; i++ {
		wg.Add(1)
		go func(b byte) {
			defer wg.Done()
			id, err := s.Create(keyPair(b), domain.MethodImageHash)
			if err != nil {
				t.Errorf("Create: %v", err)
				return
			}
			if _, err := s.Get(id); err != nil {
				t.Errorf("Get: %v", err)
			}
			ids <- id
		}(byte(i))
	}
	wg.Wait()
	close(ids)

	seen := map[domain.SessionID]bool{}
	for id := range ids {
		if seen[id] {
			t.Fatalf("duplicate id %s", id)
		}
		seen[id] = true
	}
	if s.Len() != 64 {
		t.Fatalf("Len = %d, want 64", s.Len())
	}
}

func TestNewSessionID_Deterministic(t *testing.T) {
	at := time.Unix(1700000000, 123)
	pub := keyPair(5).Public
	if store.NewSessionID(at, pub) != store.NewSessionID(at, pub) {
		t.Fatal("id derivation is not deterministic")
	}
	if store.NewSessionID(at, pub) == store.NewSessionID(at.Add(time.Nanosecond), pub) {
		t.Fatal("nanosecond change should alter the id")
	}
}
