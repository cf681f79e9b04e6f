package store

import (
	"errors"
	"os"
	"path/filepath"
	"time"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/echern/punch/internal/models"
)

// SQLiteStore implements SessionStore on a local SQLite database.
type SQLiteStore struct {
	db *gorm.DB
}

// Open opens (creating if necessary) the database at path and runs
// migrations.
func Open(path string) (*SQLiteStore, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil, &StoreError{Op: "open", Err: err}
	}

	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent), // Quiet by default
	})
	if err != nil {
		return nil, &StoreError{Op: "open", Err: err}
	}

	if err := db.AutoMigrate(&models.Session{}); err != nil {
		return nil, &StoreError{Op: "migrate", Err: err}
	}

	// Backstop for the single-open-session invariant: the partial index
	// covers only open rows, so a second concurrent insert fails even if
	// it slipped past the transactional check.
	err = db.Exec(`CREATE UNIQUE INDEX IF NOT EXISTS idx_sessions_single_open
		ON sessions ((leave_at IS NULL)) WHERE leave_at IS NULL`).Error
	if err != nil {
		return nil, &StoreError{Op: "migrate", Err: err}
	}

	return &SQLiteStore{db: db}, nil
}

// Close closes the underlying database connection.
func (s *SQLiteStore) Close() error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

func (s *SQLiteStore) ListAll() ([]models.Session, error) {
	var sessions []models.Session
	if err := s.db.Order("arrive_at DESC, id DESC").Find(&sessions).Error; err != nil {
		return nil, &StoreError{Op: "list", Err: err}
	}
	return sessions, nil
}

func (s *SQLiteStore) FindOpen() (*models.Session, error) {
	var session models.Session
	err := s.db.Where("leave_at IS NULL").Order("arrive_at DESC, id DESC").First(&session).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, &StoreError{Op: "find open", Err: err}
	}
	return &session, nil
}

func (s *SQLiteStore) Insert(arriveAt time.Time, leaveAt *time.Time) (*models.Session, error) {
	session := models.Session{ArriveAt: arriveAt, LeaveAt: leaveAt}

	err := s.db.Transaction(func(tx *gorm.DB) error {
		if leaveAt == nil {
			var open int64
			if err := tx.Model(&models.Session{}).Where("leave_at IS NULL").Count(&open).Error; err != nil {
				return err
			}
			if open > 0 {
				return ErrOpenSessionExists
			}
		}
		return tx.Create(&session).Error
	})
	if errors.Is(err, ErrOpenSessionExists) {
		return nil, ErrOpenSessionExists
	}
	if err != nil {
		return nil, &StoreError{Op: "insert", Err: err}
	}

	return &session, nil
}

func (s *SQLiteStore) SetLeave(id uint, leaveAt time.Time) (*models.Session, error) {
	var session models.Session

	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&session, id).Error; err != nil {
			return err
		}
		return tx.Model(&session).Update("leave_at", leaveAt).Error
	})
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrSessionNotFound
	}
	if err != nil {
		return nil, &StoreError{Op: "set leave", Err: err}
	}

	session.LeaveAt = &leaveAt
	return &session, nil
}

func (s *SQLiteStore) Delete(id uint) error {
	result := s.db.Delete(&models.Session{}, id)
	if result.Error != nil {
		return &StoreError{Op: "delete", Err: result.Error}
	}
	if result.RowsAffected == 0 {
		return ErrSessionNotFound
	}
	return nil
}
