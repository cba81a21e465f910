package timer_test

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dfrestrepo/ideas/internal/db"
	"github.com/dfrestrepo/ideas/internal/models"
	"github.com/dfrestrepo/ideas/internal/timer"
)

// fakeClock lets the tests advance time deterministically.
type fakeClock struct {
	now time.Time
}

func (c *fakeClock) Now() time.Time {
	return c.now
}

func (c *fakeClock) Advance(d time.Duration) {
	c.now = c.now.Add(d)
}

func newTestEngine(t *testing.T) (*timer.Engine, *db.SessionService, *fakeClock) {
	t.Helper()
	require.NoError(t, db.Initialize(filepath.Join(t.TempDir(), "ideas.db")))
	t.Cleanup(func() { _ = db.Close() })

	store := db.Sessions()
	clock := &fakeClock{now: time.Date(2024, 3, 10, 19, 0, 0, 0, time.UTC)}
	engine := timer.New(store)
	engine.Now = clock.Now
	return engine, store, clock
}

func openCount(t *testing.T, store *db.SessionService, ownerID string) int {
	t.Helper()
	sessions, err := store.ListSessions(ownerID)
	require.NoError(t, err)
	n := 0
	for _, s := range sessions {
		if s.Open() {
			n++
		}
	}
	return n
}

func TestStartTickStop(t *testing.T) {
	engine, _, clock := newTestEngine(t)
	owner := models.IdeaOwner(1)

	session, err := engine.Start(owner)
	require.NoError(t, err)
	assert.True(t, session.Open())

	clock.Advance(5 * time.Second)
	elapsed, running, err := engine.Elapsed(owner)
	require.NoError(t, err)
	assert.True(t, running)
	assert.Equal(t, 5*time.Second, elapsed)

	clock.Advance(5 * time.Second)
	closed, err := engine.Stop(owner)
	require.NoError(t, err)
	assert.False(t, closed.Open())
	assert.Equal(t, 10*time.Second, closed.Duration())
	require.NotNil(t, closed.EndedAt)
	assert.False(t, closed.EndedAt.Before(closed.StartedAt))
}

func TestDoubleStartRejected(t *testing.T) {
	engine, store, _ := newTestEngine(t)
	owner := models.IdeaOwner(1)

	_, err := engine.Start(owner)
	require.NoError(t, err)

	_, err = engine.Start(owner)
	assert.ErrorIs(t, err, timer.ErrAlreadyRunning)

	// Still exactly one open session for the owner
	assert.Equal(t, 1, openCount(t, store, owner))
}

func TestStopWithoutSession(t *testing.T) {
	engine, store, _ := newTestEngine(t)
	owner := models.IdeaOwner(2)

	_, err := engine.Stop(owner)
	assert.ErrorIs(t, err, timer.ErrNotRunning)

	sessions, err := store.ListSessions(owner)
	require.NoError(t, err)
	assert.Empty(t, sessions, "a failed stop must not write")
}

func TestElapsedIsReadOnly(t *testing.T) {
	engine, store, clock := newTestEngine(t)
	owner := models.OwnerDevelopment

	_, err := engine.Start(owner)
	require.NoError(t, err)

	before, err := store.ListSessions(owner)
	require.NoError(t, err)

	for i := 0; i < 10; i++ {
		clock.Advance(time.Second)
		_, running, err := engine.Elapsed(owner)
		require.NoError(t, err)
		assert.True(t, running)
	}

	after, err := store.ListSessions(owner)
	require.NoError(t, err)
	require.Len(t, after, len(before))
	assert.Equal(t, before[0].UpdatedAt, after[0].UpdatedAt, "polling must not mutate the store")
	assert.True(t, after[0].Open())
}

func TestRunningStateSurvivesRestart(t *testing.T) {
	engine, store, clock := newTestEngine(t)
	owner := models.IdeaOwner(1)

	_, err := engine.Start(owner)
	require.NoError(t, err)
	clock.Advance(time.Minute)

	// A fresh engine over the same store must see RUNNING purely from
	// the persisted open session.
	fresh := timer.New(store)
	fresh.Now = clock.Now

	elapsed, running, err := fresh.Elapsed(owner)
	require.NoError(t, err)
	assert.True(t, running)
	assert.Equal(t, time.Minute, elapsed)

	closed, err := fresh.Stop(owner)
	require.NoError(t, err)
	assert.Equal(t, time.Minute, closed.Duration())
}

func TestOwnersAreIndependent(t *testing.T) {
	engine, store, clock := newTestEngine(t)

	_, err := engine.Start(models.OwnerDevelopment)
	require.NoError(t, err)
	_, err = engine.Start(models.IdeaOwner(1))
	require.NoError(t, err)

	clock.Advance(30 * time.Second)
	closed, err := engine.Stop(models.IdeaOwner(1))
	require.NoError(t, err)
	assert.Equal(t, models.IdeaOwner(1), closed.OwnerID)

	// Development session untouched by the idea's stop
	assert.Equal(t, 1, openCount(t, store, models.OwnerDevelopment))
	_, running, err := engine.Elapsed(models.OwnerDevelopment)
	require.NoError(t, err)
	assert.True(t, running)
}
