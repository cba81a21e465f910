package db

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dfrestrepo/ideas/internal/models"
)

func newTestStore(t *testing.T) *SessionService {
	t.Helper()
	require.NoError(t, Initialize(filepath.Join(t.TempDir(), "ideas.db")))
	t.Cleanup(func() { _ = Close() })
	return Sessions()
}

func TestCreateSessionStoresUTC(t *testing.T) {
	store := newTestStore(t)

	bogota, err := time.LoadLocation("America/Bogota")
	require.NoError(t, err)
	started := time.Date(2024, 3, 10, 14, 30, 0, 0, bogota)

	session, err := store.CreateSession(models.OwnerDevelopment, started)
	require.NoError(t, err)

	assert.Equal(t, models.OwnerDevelopment, session.OwnerID)
	assert.True(t, session.Open())
	assert.True(t, session.StartedAt.Equal(started))
	assert.Equal(t, time.UTC, session.StartedAt.Location())
}

func TestCloseSessionIsTargeted(t *testing.T) {
	store := newTestStore(t)
	base := time.Date(2024, 3, 10, 19, 0, 0, 0, time.UTC)

	// Two owners, each with an open session
	dev, err := store.CreateSession(models.OwnerDevelopment, base)
	require.NoError(t, err)
	idea, err := store.CreateSession(models.IdeaOwner(1), base)
	require.NoError(t, err)

	closed, err := store.CloseSession(dev.ID, base.Add(30*time.Second))
	require.NoError(t, err)
	assert.False(t, closed.Open())
	assert.Equal(t, 30, closed.DurationSeconds)
	require.NotNil(t, closed.EndedAt)
	assert.False(t, closed.EndedAt.Before(closed.StartedAt))

	// The other owner's session is untouched
	stillOpen, err := store.FindOpenSession(models.IdeaOwner(1))
	require.NoError(t, err)
	require.NotNil(t, stillOpen)
	assert.Equal(t, idea.ID, stillOpen.ID)
}

func TestCloseSessionOnlyOnce(t *testing.T) {
	store := newTestStore(t)
	base := time.Date(2024, 3, 10, 19, 0, 0, 0, time.UTC)

	session, err := store.CreateSession(models.OwnerDevelopment, base)
	require.NoError(t, err)

	_, err = store.CloseSession(session.ID, base.Add(time.Minute))
	require.NoError(t, err)

	// A duplicated close loses the race instead of double-writing
	_, err = store.CloseSession(session.ID, base.Add(2*time.Minute))
	assert.Error(t, err)

	reloaded, err := store.ListSessions(models.OwnerDevelopment)
	require.NoError(t, err)
	require.Len(t, reloaded, 1)
	assert.Equal(t, 60, reloaded[0].DurationSeconds)
}

func TestCloseSessionClampsEarlyEnd(t *testing.T) {
	store := newTestStore(t)
	base := time.Date(2024, 3, 10, 19, 0, 0, 0, time.UTC)

	session, err := store.CreateSession(models.OwnerDevelopment, base)
	require.NoError(t, err)

	// ended_at may never precede started_at
	closed, err := store.CloseSession(session.ID, base.Add(-time.Minute))
	require.NoError(t, err)
	require.NotNil(t, closed.EndedAt)
	assert.True(t, closed.EndedAt.Equal(closed.StartedAt))
	assert.Equal(t, 0, closed.DurationSeconds)
}

func TestCloseSessionMissing(t *testing.T) {
	store := newTestStore(t)

	_, err := store.CloseSession(999, time.Now())
	assert.ErrorContains(t, err, "not found")
}

func TestFindOpenSessionPerOwner(t *testing.T) {
	store := newTestStore(t)
	base := time.Date(2024, 3, 10, 19, 0, 0, 0, time.UTC)

	open, err := store.FindOpenSession(models.OwnerDevelopment)
	require.NoError(t, err)
	assert.Nil(t, open)

	created, err := store.CreateSession(models.OwnerDevelopment, base)
	require.NoError(t, err)

	open, err = store.FindOpenSession(models.OwnerDevelopment)
	require.NoError(t, err)
	require.NotNil(t, open)
	assert.Equal(t, created.ID, open.ID)

	// Other owners see nothing
	open, err = store.FindOpenSession(models.IdeaOwner(7))
	require.NoError(t, err)
	assert.Nil(t, open)
}

func TestListSessionsReverseChronological(t *testing.T) {
	store := newTestStore(t)
	base := time.Date(2024, 3, 10, 19, 0, 0, 0, time.UTC)

	for i := 0; i < 3; i++ {
		started := base.Add(time.Duration(i) * time.Hour)
		s, err := store.CreateSession(models.IdeaOwner(1), started)
		require.NoError(t, err)
		_, err = store.CloseSession(s.ID, started.Add(10*time.Minute))
		require.NoError(t, err)
	}

	sessions, err := store.ListSessions(models.IdeaOwner(1))
	require.NoError(t, err)
	require.Len(t, sessions, 3)
	for i := 1; i < len(sessions); i++ {
		assert.True(t, sessions[i].StartedAt.Before(sessions[i-1].StartedAt),
			"sessions must be ordered newest first")
	}
}

func TestListOwnersAndOpenSessions(t *testing.T) {
	store := newTestStore(t)
	base := time.Date(2024, 3, 10, 19, 0, 0, 0, time.UTC)

	_, err := store.CreateSession(models.OwnerDevelopment, base)
	require.NoError(t, err)
	_, err = store.CreateSession(models.IdeaOwner(2), base.Add(time.Minute))
	require.NoError(t, err)

	owners, err := store.ListOwners()
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{models.OwnerDevelopment, models.IdeaOwner(2)}, owners)

	open, err := store.ListOpenSessions()
	require.NoError(t, err)
	require.Len(t, open, 2)
	assert.Equal(t, models.OwnerDevelopment, open[0].OwnerID, "oldest first")
}
