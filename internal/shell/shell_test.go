package shell

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"harmonyminds/internal/analysis"
)

type clock struct {
	mu sync.Mutex
	t  time.Time
}

func (c *clock) now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.t
}

func (c *clock) advance(d time.Duration) {
	c.mu.Lock()
	c.t = c.t.Add(d)
	c.mu.Unlock()
}

func newTestStore(ttl time.Duration) (*Store, *clock) {
	c := &clock{t: time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC)}
	s := NewStore(StoreConfig{IdleTTL: ttl})
	s.now = c.now
	return s, c
}

func TestPagePath(t *testing.T) {
	assert.Equal(t, "/", PageHome.Path())
	assert.Equal(t, "/analyze", PageAnalyze.Path())
	assert.Equal(t, "/take-care", PageTakeCare.Path())
	assert.True(t, PageBlog.Valid())
	assert.False(t, Page("admin").Valid())
}

func TestSessionStartsOnHomeWithoutAnalysis(t *testing.T) {
	s, _ := newTestStore(time.Minute)
	sess, err := s.Create()
	require.NoError(t, err)

	view := sess.View()
	assert.Equal(t, PageHome, view.CurrentPage)
	assert.False(t, view.HasAnalysis())
	assert.NotNil(t, sess.HTTPClient().Jar)
}

func TestCompleteAnalysisReplacesSnapshot(t *testing.T) {
	s, _ := newTestStore(time.Minute)
	sess, err := s.Create()
	require.NoError(t, err)

	first := analysis.PlaylistAnalysis{Playlist: analysis.Playlist{Name: "first"}}
	sess.CompleteAnalysis(first)
	before := sess.View()

	sess.CompleteAnalysis(analysis.PlaylistAnalysis{Playlist: analysis.Playlist{Name: "second"}})
	sess.Navigate(PageResults)

	after := sess.View()
	assert.Equal(t, "first", before.Analysis.Playlist.Name, "earlier snapshots are untouched")
	assert.Equal(t, "second", after.Analysis.Playlist.Name)
	assert.Equal(t, PageResults, after.CurrentPage)
}

func TestNavigateIgnoresUnknownPage(t *testing.T) {
	s, _ := newTestStore(time.Minute)
	sess, err := s.Create()
	require.NoError(t, err)

	sess.Navigate(PageBlog)
	sess.Navigate(Page("nowhere"))
	assert.Equal(t, PageBlog, sess.View().CurrentPage)
}

func TestGetExpiresIdleSessions(t *testing.T) {
	s, c := newTestStore(10 * time.Minute)
	sess, err := s.Create()
	require.NoError(t, err)

	c.advance(9 * time.Minute)
	got, ok := s.Get(sess.ID())
	require.True(t, ok)
	assert.Same(t, sess, got)

	c.advance(9 * time.Minute)
	_, ok = s.Get(sess.ID())
	assert.True(t, ok, "Get refreshes the idle clock")

	c.advance(11 * time.Minute)
	_, ok = s.Get(sess.ID())
	assert.False(t, ok)
	assert.Zero(t, s.Len())

	_, ok = s.Get("unknown")
	assert.False(t, ok)
}

func TestSweep(t *testing.T) {
	s, c := newTestStore(time.Minute)
	old, err := s.Create()
	require.NoError(t, err)
	c.advance(45 * time.Second)
	fresh, err := s.Create()
	require.NoError(t, err)
	c.advance(30 * time.Second)

	assert.Equal(t, 1, s.Sweep())
	assert.Equal(t, 1, s.Len())
	_, ok := s.Get(fresh.ID())
	assert.True(t, ok)
	_, ok = s.Get(old.ID())
	assert.False(t, ok)

	s.Delete(fresh.ID())
	assert.Zero(t, s.Len())
}

func TestRunStopsWithContext(t *testing.T) {
	s, _ := newTestStore(time.Minute)
	ctx, cancel := context.WithCancel(context.Background())

	done := make(chan error, 1)
	go func() { done <- s.Run(ctx, time.Millisecond) }()
	cancel()

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(time.Second):
		t.Fatal("Run did not return after cancel")
	}
}

func TestConcurrentAccess(t *testing.T) {
	s, _ := newTestStore(time.Minute)
	sess, err := s.Create()
	require.NoError(t, err)

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			sess.CompleteAnalysis(analysis.PlaylistAnalysis{Playlist: analysis.Playlist{TotalTracks: i}})
			sess.Navigate(PageResults)
			_ = sess.View()
			_, _ = s.Get(sess.ID())
			s.Sweep()
		}(i)
	}
	wg.Wait()
	assert.True(t, sess.View().HasAnalysis())
}

func TestCreateEvictsIdlestWhenFull(t *testing.T) {
	c := &clock{t: time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC)}
	s := NewStore(StoreConfig{IdleTTL: time.Hour, MaxSessions: 2})
	s.now = c.now

	first, err := s.Create()
	require.NoError(t, err)
	c.advance(time.Minute)
	second, err := s.Create()
	require.NoError(t, err)
	c.advance(time.Minute)

	_, ok := s.Get(first.ID())
	require.True(t, ok, "touching first leaves second as the idlest")

	third, err := s.Create()
	require.NoError(t, err)
	assert.Equal(t, 2, s.Len())

	_, ok = s.Get(second.ID())
	assert.False(t, ok)
	_, ok = s.Get(first.ID())
	assert.True(t, ok)
	_, ok = s.Get(third.ID())
	assert.True(t, ok)
}

func TestDefaultMaxSessions(t *testing.T) {
	s := NewStore(StoreConfig{})
	assert.Equal(t, DefaultMaxSessions, s.cfg.MaxSessions)
	assert.Equal(t, DefaultIdleTTL, s.cfg.IdleTTL)
}

func TestSignedInIsRemembered(t *testing.T) {
	s, _ := newTestStore(time.Minute)
	sess, err := s.Create()
	require.NoError(t, err)

	assert.False(t, sess.SignedIn())
	sess.RememberSignedIn(true)
	assert.True(t, sess.SignedIn())
	sess.RememberSignedIn(false)
	assert.False(t, sess.SignedIn())
}
