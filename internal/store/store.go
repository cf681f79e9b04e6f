package store

import (
	"errors"
	"fmt"
	"time"

	"github.com/echern/punch/internal/models"
)

var (
	// ErrOpenSessionExists means an open session was inserted while
	// another one was still running.
	ErrOpenSessionExists = errors.New("an open session already exists")

	// ErrNoOpenSession means a close was attempted with nothing running.
	ErrNoOpenSession = errors.New("no open session")

	// ErrSessionNotFound means the requested session id does not exist.
	ErrSessionNotFound = errors.New("session not found")
)

// StoreError wraps a failure of the underlying persistence backend.
type StoreError struct {
	Op  string
	Err error
}

func (e *StoreError) Error() string {
	return fmt.Sprintf("session store: %s: %v", e.Op, e.Err)
}

func (e *StoreError) Unwrap() error {
	return e.Err
}

// SessionStore is the durable record of sessions. Implementations must
// guarantee that at most one open session exists at a time: Insert of an
// open session fails with ErrOpenSessionExists when one is already
// running, atomically with respect to concurrent callers.
type SessionStore interface {
	// ListAll returns every session, ordered by arrive time descending.
	ListAll() ([]models.Session, error)

	// FindOpen returns the open session, or nil when there is none. If
	// more than one open session somehow exists, the most recently
	// opened wins.
	FindOpen() (*models.Session, error)

	// Insert creates a session with a store-assigned id. A nil leaveAt
	// creates an open session, subject to the single-open-session
	// invariant; a non-nil leaveAt creates a closed one unconditionally.
	Insert(arriveAt time.Time, leaveAt *time.Time) (*models.Session, error)

	// SetLeave stamps the leave time on the session with the given id.
	SetLeave(id uint, leaveAt time.Time) (*models.Session, error)

	// Delete removes a session unconditionally. ErrSessionNotFound when
	// the id does not exist.
	Delete(id uint) error
}
