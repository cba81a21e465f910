package db

import (
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/dfrestrepo/ideas/internal/clock"
	"github.com/dfrestrepo/ideas/internal/models"
)

// SessionService is the persisted session collection. Sessions are
// append-only: created open, closed exactly once, never deleted.
type SessionService struct {
	db *gorm.DB
}

// Sessions returns a session service bound to the shared connection.
func Sessions() *SessionService {
	return &SessionService{db: DB}
}

// CreateSession persists a new open session for the owner.
func (s *SessionService) CreateSession(ownerID string, startedAt time.Time) (*models.Session, error) {
	started, err := clock.Normalize(startedAt)
	if err != nil {
		return nil, err
	}

	session := models.Session{
		OwnerID:   ownerID,
		StartedAt: started,
	}

	if err := s.db.Create(&session).Error; err != nil {
		return nil, fmt.Errorf("%w: %v", ErrStoreUnavailable, err)
	}

	log.Debug("session created",
		zap.Uint("id", session.ID),
		zap.String("owner", ownerID),
		zap.Time("started_at", started))

	return &session, nil
}

// CloseSession sets ended_at on exactly the targeted session. The update
// is keyed by session identity and guarded on the session still being
// open, so two racing close requests resolve to one winner and one
// record-not-found.
func (s *SessionService) CloseSession(sessionID uint, endedAt time.Time) (*models.Session, error) {
	ended, err := clock.Normalize(endedAt)
	if err != nil {
		return nil, err
	}

	var session models.Session
	if err := s.db.First(&session, sessionID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("session #%d not found", sessionID)
		}
		return nil, fmt.Errorf("%w: %v", ErrStoreUnavailable, err)
	}

	if ended.Before(session.StartedAt) {
		ended = session.StartedAt
	}

	res := s.db.Model(&models.Session{}).
		Where("id = ? AND ended_at IS NULL", sessionID).
		Updates(map[string]any{
			"ended_at":         ended,
			"duration_seconds": int(ended.Sub(session.StartedAt).Seconds()),
		})
	if res.Error != nil {
		return nil, fmt.Errorf("%w: %v", ErrStoreUnavailable, res.Error)
	}
	if res.RowsAffected == 0 {
		return nil, fmt.Errorf("session #%d is already closed", sessionID)
	}

	if err := s.db.First(&session, sessionID).Error; err != nil {
		return nil, fmt.Errorf("%w: %v", ErrStoreUnavailable, err)
	}

	log.Debug("session closed",
		zap.Uint("id", session.ID),
		zap.String("owner", session.OwnerID),
		zap.Int("duration_seconds", session.DurationSeconds))

	return &session, nil
}

// FindOpenSession returns the single open session for the owner, or nil
// when nothing is running. The open set is always re-read from the store;
// nothing about running state is cached in memory.
func (s *SessionService) FindOpenSession(ownerID string) (*models.Session, error) {
	var session models.Session

	err := s.db.Where("owner_id = ? AND ended_at IS NULL", ownerID).First(&session).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil // No open session is not an error
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrStoreUnavailable, err)
	}

	return &session, nil
}

// ListSessions returns the owner's sessions, most recent first.
func (s *SessionService) ListSessions(ownerID string) ([]models.Session, error) {
	var sessions []models.Session

	err := s.db.Where("owner_id = ?", ownerID).
		Order("started_at DESC").
		Find(&sessions).Error
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrStoreUnavailable, err)
	}

	return sessions, nil
}

// ListOpenSessions returns every open session across all owners,
// oldest first.
func (s *SessionService) ListOpenSessions() ([]models.Session, error) {
	var sessions []models.Session

	err := s.db.Where("ended_at IS NULL").
		Order("started_at ASC").
		Find(&sessions).Error
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrStoreUnavailable, err)
	}

	return sessions, nil
}

// ListOwners returns every owner that has at least one session.
func (s *SessionService) ListOwners() ([]string, error) {
	var owners []string

	err := s.db.Model(&models.Session{}).
		Distinct("owner_id").
		Order("owner_id").
		Pluck("owner_id", &owners).Error
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrStoreUnavailable, err)
	}

	return owners, nil
}
