package tracker

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/echern/punch/internal/store"
)

// fakeClock pins the tracker's notion of now.
type fakeClock struct {
	now time.Time
}

func (c *fakeClock) Now() time.Time { return c.now }

func (c *fakeClock) advance(d time.Duration) { c.now = c.now.Add(d) }

func newTestTracker(t *testing.T) (*Tracker, *fakeClock) {
	t.Helper()
	clock := &fakeClock{now: time.Date(2024, 12, 15, 9, 0, 0, 0, time.Local)}
	return New(store.NewMemoryStore(), clock, 10), clock
}

func TestPunchInOpensASession(t *testing.T) {
	tr, clock := newTestTracker(t)

	ok, err := tr.CanEnter()
	require.NoError(t, err)
	assert.True(t, ok)

	session, err := tr.PunchIn()
	require.NoError(t, err)
	assert.True(t, session.Open())
	assert.True(t, session.ArriveAt.Equal(clock.now))

	ok, err = tr.CanEnter()
	require.NoError(t, err)
	assert.False(t, ok, "cannot enter while a session is open")
}

func TestPunchInConflictsWhileOpen(t *testing.T) {
	tr, _ := newTestTracker(t)

	_, err := tr.PunchIn()
	require.NoError(t, err)

	_, err = tr.PunchIn()
	assert.ErrorIs(t, err, store.ErrOpenSessionExists)
}

func TestPunchOutClosesTheOpenSession(t *testing.T) {
	tr, clock := newTestTracker(t)

	opened, err := tr.PunchIn()
	require.NoError(t, err)

	clock.advance(90 * time.Minute)

	closed, err := tr.PunchOut()
	require.NoError(t, err)
	assert.Equal(t, opened.ID, closed.ID)
	require.NotNil(t, closed.LeaveAt)

	duration, ok := closed.Duration()
	require.True(t, ok)
	assert.Equal(t, 90*time.Minute, duration, "duration is exactly leave minus arrive")

	cost, ok := closed.Cost(tr.Rate())
	require.True(t, ok)
	assert.InDelta(t, 15.0, cost, 1e-9) // 90 raw minutes bill as exactly 90

	ok, err = tr.CanEnter()
	require.NoError(t, err)
	assert.True(t, ok, "can enter again after checking out")
}

func TestPunchOutWithoutOpenSession(t *testing.T) {
	tr, _ := newTestTracker(t)

	_, err := tr.PunchOut()
	assert.ErrorIs(t, err, store.ErrNoOpenSession)
}

func TestPunchOutClosesMostRecentlyOpened(t *testing.T) {
	// The store forbids two open sessions, but the tracker still picks
	// the newest open one if a backend ever produced several.
	tr, clock := newTestTracker(t)

	_, err := tr.PunchIn()
	require.NoError(t, err)

	clock.advance(time.Hour)
	closed, err := tr.PunchOut()
	require.NoError(t, err)

	clock.advance(time.Hour)
	second, err := tr.PunchIn()
	require.NoError(t, err)
	assert.NotEqual(t, closed.ID, second.ID)

	clock.advance(30 * time.Minute)
	closedSecond, err := tr.PunchOut()
	require.NoError(t, err)
	assert.Equal(t, second.ID, closedSecond.ID)
}

func TestAddManualValidatesInterval(t *testing.T) {
	tr, clock := newTestTracker(t)
	at := clock.now

	_, err := tr.AddManual(at, at)
	assert.ErrorIs(t, err, ErrInvalidInterval)

	_, err = tr.AddManual(at, at.Add(-time.Second))
	assert.ErrorIs(t, err, ErrInvalidInterval)

	session, err := tr.AddManual(at, at.Add(time.Second))
	require.NoError(t, err)
	assert.False(t, session.Open())
}

func TestAddManualIgnoresOpenSession(t *testing.T) {
	tr, clock := newTestTracker(t)

	_, err := tr.PunchIn()
	require.NoError(t, err)

	// Backfill is allowed while checked in, and may overlap in time.
	_, err = tr.AddManual(clock.now.Add(-2*time.Hour), clock.now.Add(-time.Hour))
	require.NoError(t, err)

	sessions, err := tr.Sessions()
	require.NoError(t, err)
	assert.Len(t, sessions, 2)
}

func TestDeleteSession(t *testing.T) {
	tr, clock := newTestTracker(t)

	session, err := tr.AddManual(clock.now, clock.now.Add(time.Hour))
	require.NoError(t, err)

	require.NoError(t, tr.Delete(session.ID))

	err = tr.Delete(session.ID)
	assert.ErrorIs(t, err, store.ErrSessionNotFound)

	err = tr.Delete(9999)
	assert.ErrorIs(t, err, store.ErrSessionNotFound)
}

func TestSessionsNewestFirst(t *testing.T) {
	tr, clock := newTestTracker(t)

	first, err := tr.AddManual(clock.now, clock.now.Add(time.Hour))
	require.NoError(t, err)
	second, err := tr.AddManual(clock.now.Add(24*time.Hour), clock.now.Add(25*time.Hour))
	require.NoError(t, err)

	sessions, err := tr.Sessions()
	require.NoError(t, err)
	require.Len(t, sessions, 2)
	assert.Equal(t, second.ID, sessions[0].ID)
	assert.Equal(t, first.ID, sessions[1].ID)
}
