package repositories

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"prepwise/interview/internal/models"
)

var (
	ErrProfileNotFound = errors.New("user profile not found")
	ErrResumeNotFound  = errors.New("resume not found")
)

// ProfileRepository reads the profile fields owned by the account service.
type ProfileRepository struct {
	DB *gorm.DB
}

func (r *ProfileRepository) GetProfile(ctx context.Context, userID string) (*models.UserProfile, error) {
	var profile models.UserProfile
	err := r.DB.WithContext(ctx).First(&profile, "user_id = ?", userID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrProfileNotFound
	}
	if err != nil {
		return nil, err
	}
	return &profile, nil
}

// ResumeRepository reads parsed resume data produced by the resume service.
type ResumeRepository struct {
	DB *gorm.DB
}

func (r *ResumeRepository) GetResume(ctx context.Context, userID string) (*models.ParsedResume, error) {
	var resume models.Resume
	err := r.DB.WithContext(ctx).First(&resume, "user_id = ?", userID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrResumeNotFound
	}
	if err != nil {
		return nil, err
	}
	return &resume.ParsedData, nil
}
