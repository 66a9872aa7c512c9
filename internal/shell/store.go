package shell

import (
	"context"
	"fmt"
	"net/http"
	"net/http/cookiejar"
	"sync"
	"time"

	"github.com/rs/zerolog/log"
	"golang.org/x/net/publicsuffix"

	"harmonyminds/internal/session"
)

// DefaultIdleTTL is how long an untouched session is kept.
const DefaultIdleTTL = 30 * time.Minute

// DefaultMaxSessions caps how many sessions are held at once.
const DefaultMaxSessions = 10000

// StoreConfig tunes a Store.
type StoreConfig struct {
	IdleTTL time.Duration
	// MaxSessions caps the store. Creating one more evicts the session idle
	// the longest.
	MaxSessions int
	// BackendTimeout bounds each backend call. Zero means no timeout.
	BackendTimeout time.Duration
	// Transport is shared by every session's client. Nil uses http.DefaultTransport.
	Transport http.RoundTripper
}

// Store keeps every live session in memory. Nothing survives a restart.
type Store struct {
	cfg StoreConfig
	now func() time.Time

	mu       sync.RWMutex
	sessions map[string]*Session
}

// NewStore creates an empty store.
func NewStore(cfg StoreConfig) *Store {
	if cfg.IdleTTL <= 0 {
		cfg.IdleTTL = DefaultIdleTTL
	}
	if cfg.MaxSessions <= 0 {
		cfg.MaxSessions = DefaultMaxSessions
	}
	return &Store{
		cfg:      cfg,
		now:      time.Now,
		sessions: make(map[string]*Session),
	}
}

// Get returns a live session and marks it as seen.
func (s *Store) Get(id string) (*Session, bool) {
	s.mu.RLock()
	sess, ok := s.sessions[id]
	s.mu.RUnlock()
	if !ok {
		return nil, false
	}

	now := s.now()
	if sess.idleSince(now) > s.cfg.IdleTTL {
		s.remove(id)
		return nil, false
	}
	sess.touch(now)
	return sess, true
}

// Create starts a new session with its own cookie jar.
func (s *Store) Create() (*Session, error) {
	jar, err := cookiejar.New(&cookiejar.Options{PublicSuffixList: publicsuffix.List})
	if err != nil {
		return nil, fmt.Errorf("shell: create cookie jar: %w", err)
	}
	client := &http.Client{
		Jar:       jar,
		Timeout:   s.cfg.BackendTimeout,
		Transport: s.cfg.Transport,
	}

	now := s.now()
	sess := newSession(session.NewID(), client, now)

	s.mu.Lock()
	defer s.mu.Unlock()
	for len(s.sessions) >= s.cfg.MaxSessions {
		s.evictIdlestLocked(now)
	}
	s.sessions[sess.id] = sess
	return sess, nil
}

// evictIdlestLocked drops the session untouched the longest. s.mu must be held.
func (s *Store) evictIdlestLocked(now time.Time) {
	var (
		victim  string
		longest time.Duration = -1
	)
	for id, sess := range s.sessions {
		if idle := sess.idleSince(now); idle > longest {
			victim, longest = id, idle
		}
	}
	delete(s.sessions, victim)
	log.Debug().Dur("idle", longest).Int("max_sessions", s.cfg.MaxSessions).Msg("Evicted session to stay under cap")
}

// Delete drops a session.
func (s *Store) Delete(id string) {
	s.remove(id)
}

// Len returns the number of sessions held.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.sessions)
}

// Sweep removes sessions idle longer than the TTL and returns how many went.
func (s *Store) Sweep() int {
	now := s.now()

	s.mu.Lock()
	defer s.mu.Unlock()

	removed := 0
	for id, sess := range s.sessions {
		if sess.idleSince(now) > s.cfg.IdleTTL {
			delete(s.sessions, id)
			removed++
		}
	}
	return removed
}

// Run sweeps on every interval until ctx is done.
func (s *Store) Run(ctx context.Context, interval time.Duration) error {
	if interval <= 0 {
		interval = s.cfg.IdleTTL / 2
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
			if n := s.Sweep(); n > 0 {
				log.Debug().Int("removed", n).Int("remaining", s.Len()).Msg("Swept idle sessions")
			}
		}
	}
}

func (s *Store) remove(id string) {
	s.mu.Lock()
	delete(s.sessions, id)
	s.mu.Unlock()
}
