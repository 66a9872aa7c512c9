package shell

import (
	"net/http"
	"sync"
	"time"

	"harmonyminds/internal/analysis"
)

// State is the application shell's state for one browser session.
type State struct {
	CurrentPage Page
	Analysis    *analysis.PlaylistAnalysis
}

// HasAnalysis reports whether a result is held.
func (s State) HasAnalysis() bool {
	return s.Analysis != nil
}

// Controller is what pages get to request a state change. Pages never write
// State directly.
type Controller interface {
	Navigate(Page)
	CompleteAnalysis(analysis.PlaylistAnalysis)
}

// Session owns one browser session's State and its backend HTTP client.
type Session struct {
	id     string
	client *http.Client

	mu       sync.Mutex
	state    State
	lastSeen time.Time
	signedIn bool
}

var _ Controller = (*Session)(nil)

func newSession(id string, client *http.Client, now time.Time) *Session {
	return &Session{
		id:       id,
		client:   client,
		state:    State{CurrentPage: PageHome},
		lastSeen: now,
	}
}

// ID returns the session ID.
func (s *Session) ID() string {
	return s.id
}

// HTTPClient returns the client whose cookie jar holds this session's
// backend cookies.
func (s *Session) HTTPClient() *http.Client {
	return s.client
}

// View returns a snapshot of the state.
func (s *Session) View() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// Navigate makes p the current page.
func (s *Session) Navigate(p Page) {
	if !p.Valid() {
		return
	}
	s.mu.Lock()
	s.state.CurrentPage = p
	s.mu.Unlock()
}

// CompleteAnalysis replaces the held analysis with a.
func (s *Session) CompleteAnalysis(a analysis.PlaylistAnalysis) {
	s.mu.Lock()
	s.state.Analysis = &a
	s.mu.Unlock()
}

// RememberSignedIn records the last login state the backend reported.
func (s *Session) RememberSignedIn(ok bool) {
	s.mu.Lock()
	s.signedIn = ok
	s.mu.Unlock()
}

// SignedIn returns the last recorded login state without asking the backend.
func (s *Session) SignedIn() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.signedIn
}

func (s *Session) touch(now time.Time) {
	s.mu.Lock()
	s.lastSeen = now
	s.mu.Unlock()
}

func (s *Session) idleSince(now time.Time) time.Duration {
	s.mu.Lock()
	defer s.mu.Unlock()
	return now.Sub(s.lastSeen)
}
