package store

import (
	"sort"
	"sync"
	"time"

	"github.com/echern/punch/internal/models"
)

// MemoryStore is an in-memory SessionStore. It enforces the same
// invariants as the SQLite backend and is what tests substitute for it.
type MemoryStore struct {
	mu       sync.Mutex
	nextID   uint
	sessions map[uint]models.Session
}

// NewMemoryStore returns an empty in-memory store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{nextID: 1, sessions: make(map[uint]models.Session)}
}

func (m *MemoryStore) ListAll() ([]models.Session, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	sessions := make([]models.Session, 0, len(m.sessions))
	for _, s := range m.sessions {
		sessions = append(sessions, s)
	}
	sort.Slice(sessions, func(i, j int) bool {
		if !sessions[i].ArriveAt.Equal(sessions[j].ArriveAt) {
			return sessions[i].ArriveAt.After(sessions[j].ArriveAt)
		}
		return sessions[i].ID > sessions[j].ID
	})
	return sessions, nil
}

func (m *MemoryStore) FindOpen() (*models.Session, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.findOpenLocked(), nil
}

func (m *MemoryStore) findOpenLocked() *models.Session {
	var open *models.Session
	for id := range m.sessions {
		s := m.sessions[id]
		if s.LeaveAt != nil {
			continue
		}
		if open == nil || s.ArriveAt.After(open.ArriveAt) {
			copied := s
			open = &copied
		}
	}
	return open
}

func (m *MemoryStore) Insert(arriveAt time.Time, leaveAt *time.Time) (*models.Session, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if leaveAt == nil && m.findOpenLocked() != nil {
		return nil, ErrOpenSessionExists
	}

	now := time.Now()
	session := models.Session{
		ID:        m.nextID,
		CreatedAt: now,
		UpdatedAt: now,
		ArriveAt:  arriveAt,
		LeaveAt:   leaveAt,
	}
	m.nextID++
	m.sessions[session.ID] = session

	copied := session
	return &copied, nil
}

func (m *MemoryStore) SetLeave(id uint, leaveAt time.Time) (*models.Session, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	session, ok := m.sessions[id]
	if !ok {
		return nil, ErrSessionNotFound
	}
	session.LeaveAt = &leaveAt
	session.UpdatedAt = time.Now()
	m.sessions[id] = session

	copied := session
	return &copied, nil
}

func (m *MemoryStore) Delete(id uint) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.sessions[id]; !ok {
		return ErrSessionNotFound
	}
	delete(m.sessions, id)
	return nil
}
