package models

import (
	"time"

	"github.com/echern/punch/internal/billing"
)

// Session represents one arrive/leave interval. A session with no leave
// time is open: the user is currently checked in.
type Session struct {
	ID        uint      `gorm:"primarykey" json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	ArriveAt time.Time  `gorm:"not null;index" json:"arrive_at"`
	LeaveAt  *time.Time `json:"leave_at"`
}

// Open reports whether the session is still running.
func (s *Session) Open() bool {
	return s.LeaveAt == nil
}

// Duration returns the elapsed time between arrive and leave. The second
// return value is false while the session is open. The subtraction is
// mechanical: a session constructed with leave before arrive yields a
// negative duration, callers must prevent that upstream.
func (s *Session) Duration() (time.Duration, bool) {
	if s.LeaveAt == nil {
		return 0, false
	}
	return s.LeaveAt.Sub(s.ArriveAt), true
}

// Cost returns the billed amount for this single session at the given
// hourly rate, false while the session is open. Note that billing a
// period total can differ from summing per-session costs, because
// rounding applies at different granularities.
func (s *Session) Cost(ratePerHour float64) (float64, bool) {
	d, ok := s.Duration()
	if !ok {
		return 0, false
	}
	return billing.Bill(d, ratePerHour).Cost, true
}
