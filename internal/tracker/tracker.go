package tracker

import (
	"errors"
	"time"

	"github.com/echern/punch/internal/models"
	"github.com/echern/punch/internal/store"
)

// ErrInvalidInterval means a manual entry's leave time was not strictly
// after its arrive time.
var ErrInvalidInterval = errors.New("leave time must be after arrive time")

// Tracker mediates all session mutations and enforces the open/close
// rules. The store is the single source of truth: nothing is cached
// here, and a failed store call leaves no state behind.
type Tracker struct {
	store store.SessionStore
	clock Clock
	rate  float64
}

// New creates a Tracker over the given store. A nil clock defaults to
// the system clock.
func New(st store.SessionStore, clock Clock, ratePerHour float64) *Tracker {
	if clock == nil {
		clock = SystemClock
	}
	return &Tracker{store: st, clock: clock, rate: ratePerHour}
}

// Rate returns the configured hourly rate.
func (t *Tracker) Rate() float64 { return t.rate }

// CanEnter reports whether a new session may be opened, i.e. no session
// is currently running.
func (t *Tracker) CanEnter() (bool, error) {
	open, err := t.store.FindOpen()
	if err != nil {
		return false, err
	}
	return open == nil, nil
}

// Current returns the open session, or nil when checked out.
func (t *Tracker) Current() (*models.Session, error) {
	return t.store.FindOpen()
}

// PunchIn opens a new session at the current time. Fails with
// store.ErrOpenSessionExists when one is already running; the store
// performs the check atomically, so two concurrent punch-ins cannot
// both succeed.
func (t *Tracker) PunchIn() (*models.Session, error) {
	return t.store.Insert(t.clock.Now(), nil)
}

// PunchOut closes the open session at the current time. Fails with
// store.ErrNoOpenSession when nothing is running.
func (t *Tracker) PunchOut() (*models.Session, error) {
	open, err := t.store.FindOpen()
	if err != nil {
		return nil, err
	}
	if open == nil {
		return nil, store.ErrNoOpenSession
	}
	return t.store.SetLeave(open.ID, t.clock.Now())
}

// AddManual records a fully closed session for historical backfill.
// Manual entries bypass the open-session check and may overlap existing
// sessions in time; the only rule is that leave must be strictly after
// arrive.
func (t *Tracker) AddManual(arriveAt, leaveAt time.Time) (*models.Session, error) {
	if !leaveAt.After(arriveAt) {
		return nil, ErrInvalidInterval
	}
	return t.store.Insert(arriveAt, &leaveAt)
}

// Delete removes a session unconditionally. There is no soft delete and
// no way back.
func (t *Tracker) Delete(id uint) error {
	return t.store.Delete(id)
}

// Sessions returns every recorded session, newest arrival first.
func (t *Tracker) Sessions() ([]models.Session, error) {
	return t.store.ListAll()
}
