package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/rs/zerolog"

	"github.com/campushq/discipline/internal/app/models"
	"github.com/campushq/discipline/internal/app/models/dto"
	"github.com/campushq/discipline/internal/app/repositories"
)

const recentActivityLimit = 10

// ProfileService reads and partially updates the extended student profile.
type ProfileService interface {
	GetProfile(ctx context.Context, userID int64) (*dto.ProfileResponse, error)
	UpdateProfile(ctx context.Context, userID int64, req dto.UpdateProfileRequest) (*dto.ProfileResponse, error)
	RecentActivity(ctx context.Context, userID int64) ([]dto.ActivityData, error)
}

type profileService struct {
	users      repositories.UserStore
	profiles   repositories.ProfileStore
	activities repositories.ActivityStore
	logger     zerolog.Logger
}

// NewProfileService creates a new ProfileService
func NewProfileService(
	users repositories.UserStore,
	profiles repositories.ProfileStore,
	activities repositories.ActivityStore,
	logger zerolog.Logger,
) ProfileService {
	return &profileService{
		users:      users,
		profiles:   profiles,
		activities: activities,
		logger:     logger,
	}
}

// GetProfile returns the extended profile plus the recent activity log.
func (s *profileService) GetProfile(ctx context.Context, userID int64) (*dto.ProfileResponse, error) {
	data, err := s.profileData(ctx, userID)
	if err != nil {
		return nil, err
	}
	activities, err := s.RecentActivity(ctx, userID)
	if err != nil {
		return nil, err
	}
	return &dto.ProfileResponse{Success: true, Profile: *data, Activities: activities}, nil
}

// UpdateProfile applies only the supplied fields and records one activity
// naming what changed.
func (s *profileService) UpdateProfile(ctx context.Context, userID int64, req dto.UpdateProfileRequest) (*dto.ProfileResponse, error) {
	profile, err := s.profiles.GetStudentProfileByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}

	var changed []string
	if req.FullName != nil {
		profile.FullName = *req.FullName
		changed = append(changed, "full_name")
	}
	if req.Phone != nil {
		profile.Phone = *req.Phone
		changed = append(changed, "phone")
	}
	if req.Course != nil {
		profile.Course = *req.Course
		changed = append(changed, "course")
	}
	if req.Address != nil {
		profile.Address = *req.Address
		changed = append(changed, "address")
	}

	if err := s.profiles.UpdateStudentProfile(ctx, profile); err != nil {
		return nil, err
	}

	details := fmt.Sprintf("updated fields: [%s]", strings.Join(changed, ", "))
	if err := s.activities.Record(ctx, userID, "updated profile", details); err != nil {
		s.logger.Warn().Err(err).Int64("userID", userID).Msg("Failed to record profile update activity")
	}

	s.logger.Info().Int64("userID", userID).Strs("fields", changed).Msg("Profile updated")

	data, err := s.profileData(ctx, userID)
	if err != nil {
		return nil, err
	}
	return &dto.ProfileResponse{Success: true, Profile: *data}, nil
}

// RecentActivity returns the latest activity records, newest first.
func (s *profileService) RecentActivity(ctx context.Context, userID int64) ([]dto.ActivityData, error) {
	records, err := s.activities.ListRecent(ctx, userID, recentActivityLimit)
	if err != nil {
		return nil, err
	}
	return toActivityData(records), nil
}

func (s *profileService) profileData(ctx context.Context, userID int64) (*dto.ProfileData, error) {
	user, err := s.users.GetUserByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	profile, err := s.profiles.GetStudentProfileByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}
	return &dto.ProfileData{
		FullName:  profile.FullName,
		StudentID: user.Identifier,
		Email:     user.Email,
		Phone:     profile.Phone,
		Course:    profile.Course,
		Address:   profile.Address,
	}, nil
}

func toActivityData(records []models.Activity) []dto.ActivityData {
	out := make([]dto.ActivityData, 0, len(records))
	for _, a := range records {
		out = append(out, dto.ActivityData{
			Action:    a.Action,
			Details:   a.Details,
			Timestamp: a.CreatedAt,
		})
	}
	return out
}
