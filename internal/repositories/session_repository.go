package repositories

import (
	"errors"
	"time"

	"gorm.io/gorm"

	"prepwise/interview/internal/models"
)

var (
	ErrSessionNotFound = errors.New("session not found")
	// ErrVersionConflict means a concurrent writer updated the session
	// between this writer's read and its update.
	ErrVersionConflict = errors.New("session was modified concurrently")
)

type SessionRepository struct {
	DB *gorm.DB
}

func (r *SessionRepository) Create(session *models.InterviewSession) error {
	if session.Version == 0 {
		session.Version = 1
	}
	return r.DB.Create(session).Error
}

// FindByIDAndUser loads a session scoped to its owner. Ownership is enforced
// by the query itself, never checked after the fact: a session belonging to
// another user is indistinguishable from a missing one.
func (r *SessionRepository) FindByIDAndUser(sessionID, userID string) (*models.InterviewSession, error) {
	var session models.InterviewSession
	err := r.DB.First(&session, "id = ? AND user_id = ?", sessionID, userID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrSessionNotFound
	}
	if err != nil {
		return nil, err
	}
	return &session, nil
}

// Update saves the session with an optimistic version check so two
// interleaved read-modify-write cycles cannot silently drop an update.
func (r *SessionRepository) Update(session *models.InterviewSession) error {
	previous := session.Version
	session.Version = previous + 1

	result := r.DB.Model(&models.InterviewSession{}).
		Where("id = ? AND user_id = ? AND version = ?", session.ID, session.UserID, previous).
		Select("*").
		Omit("id", "user_id", "created_at").
		Updates(session)
	if result.Error != nil {
		session.Version = previous
		return result.Error
	}
	if result.RowsAffected == 0 {
		session.Version = previous
		return ErrVersionConflict
	}
	return nil
}

// MarkAbandonedBefore flags active sessions untouched since the cutoff as
// abandoned. Used only by the sweeper job; no client operation reaches this
// status.
func (r *SessionRepository) MarkAbandonedBefore(cutoff time.Time) (int64, error) {
	result := r.DB.Model(&models.InterviewSession{}).
		Where("status IN ? AND updated_at < ?", []string{models.StatusInProgress, models.StatusPaused}, cutoff).
		Updates(map[string]interface{}{
			"status":  models.StatusAbandoned,
			"version": gorm.Expr("version + 1"),
		})
	return result.RowsAffected, result.Error
}
