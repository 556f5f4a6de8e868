package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/rs/zerolog"

	"github.com/campushq/discipline/internal/app/models"
	"github.com/campushq/discipline/internal/app/models/dto"
	"github.com/campushq/discipline/internal/app/repositories"
	"github.com/campushq/discipline/internal/pkg/apperrors"
	"github.com/campushq/discipline/internal/pkg/auth"
)

// MinPasswordLength is enforced on password reset and registration.
const MinPasswordLength = 6

// AuthService handles registration, login and the password-reset flow.
type AuthService interface {
	RegisterStudent(ctx context.Context, usn, email, password string) (*models.User, error)
	RegisterTeacher(ctx context.Context, email, password string) (*models.User, error)
	Login(ctx context.Context, identifier, password string, role models.RoleType) (*models.User, error)
	ResolveResetAccount(ctx context.Context, identifier string, role models.RoleType) (*dto.ResetIdentity, error)
	ResetPassword(ctx context.Context, input ResetPasswordInput) error
}

// ResetPasswordInput carries step 2 of the reset flow. All of it comes back
// from hidden form fields; nothing is held server-side between the steps.
type ResetPasswordInput struct {
	Identifier      string
	Email           string
	NewPassword     string
	ConfirmPassword string
	Role            models.RoleType
}

type authService struct {
	users      repositories.UserStore
	profiles   repositories.ProfileStore
	activities repositories.ActivityStore
	logger     zerolog.Logger
}

// NewAuthService creates a new AuthService
func NewAuthService(
	users repositories.UserStore,
	profiles repositories.ProfileStore,
	activities repositories.ActivityStore,
	logger zerolog.Logger,
) AuthService {
	return &authService{
		users:      users,
		profiles:   profiles,
		activities: activities,
		logger:     logger,
	}
}

// RegisterStudent creates a student account keyed by USN, with an empty
// extended profile alongside it.
func (s *authService) RegisterStudent(ctx context.Context, usn, email, password string) (*models.User, error) {
	usn = strings.TrimSpace(usn)
	email = strings.TrimSpace(email)
	if usn == "" || email == "" || password == "" {
		return nil, apperrors.NewValidationError("usn, email and password are required")
	}
	if len(password) < MinPasswordLength {
		return nil, apperrors.ErrPasswordTooWeak
	}

	exists, err := s.users.IdentifierExists(ctx, usn, models.RoleStudent)
	if err != nil {
		return nil, fmt.Errorf("error checking if USN exists: %w", err)
	}
	if exists {
		return nil, apperrors.ErrDuplicateIdentifier
	}

	hashed, err := auth.HashPassword(password)
	if err != nil {
		return nil, fmt.Errorf("error hashing password: %w", err)
	}

	user := &models.User{
		Identifier: usn,
		Email:      email,
		Password:   hashed,
		RoleType:   models.RoleStudent,
	}
	userID, err := s.users.CreateUser(ctx, user)
	if err != nil {
		return nil, err
	}
	user.ID = userID

	if err := s.profiles.CreateStudentProfile(ctx, &models.StudentProfile{UserID: userID}); err != nil {
		return nil, err
	}

	if err := s.activities.Record(ctx, userID, "registered", "Student registered"); err != nil {
		// The account exists; a lost log line is not worth failing the request.
		s.logger.Warn().Err(err).Int64("userID", userID).Msg("Failed to record registration activity")
	}

	s.logger.Info().Str("usn", usn).Int64("userID", userID).Msg("Student registered")
	return user, nil
}

// RegisterTeacher creates a teacher account keyed by email.
func (s *authService) RegisterTeacher(ctx context.Context, email, password string) (*models.User, error) {
	email = strings.TrimSpace(email)
	if email == "" || password == "" {
		return nil, apperrors.NewValidationError("email and password are required")
	}
	if len(password) < MinPasswordLength {
		return nil, apperrors.ErrPasswordTooWeak
	}

	exists, err := s.users.IdentifierExists(ctx, email, models.RoleTeacher)
	if err != nil {
		return nil, fmt.Errorf("error checking if email exists: %w", err)
	}
	if exists {
		return nil, apperrors.ErrDuplicateIdentifier
	}

	hashed, err := auth.HashPassword(password)
	if err != nil {
		return nil, fmt.Errorf("error hashing password: %w", err)
	}

	user := &models.User{
		Identifier: email,
		Email:      email,
		Password:   hashed,
		RoleType:   models.RoleTeacher,
	}
	userID, err := s.users.CreateUser(ctx, user)
	if err != nil {
		return nil, err
	}
	user.ID = userID

	s.logger.Info().Str("email", email).Int64("userID", userID).Msg("Teacher registered")
	return user, nil
}

// Login verifies credentials and returns the account for session
// establishment. Unknown accounts and wrong passwords fail the same way.
func (s *authService) Login(ctx context.Context, identifier, password string, role models.RoleType) (*models.User, error) {
	identifier = strings.TrimSpace(identifier)
	if identifier == "" || password == "" {
		return nil, apperrors.ErrInvalidCredentials
	}

	user, err := s.users.GetUserByIdentifier(ctx, identifier, role)
	if err != nil {
		if errors.Is(err, apperrors.ErrAccountNotFound) {
			return nil, apperrors.ErrInvalidCredentials
		}
		return nil, err
	}

	if !auth.CheckPassword(user.Password, password) {
		s.logger.Warn().Str("identifier", identifier).Str("role", string(role)).Msg("Login failed")
		return nil, apperrors.ErrInvalidCredentials
	}

	if role == models.RoleStudent {
		if err := s.activities.Record(ctx, user.ID, "logged in", "Student logged in"); err != nil {
			s.logger.Warn().Err(err).Int64("userID", user.ID).Msg("Failed to record login activity")
		}
	}

	s.logger.Info().Str("identifier", identifier).Str("role", string(role)).Msg("Login succeeded")
	return user, nil
}

// ResolveResetAccount is step 1 of the reset flow: it resolves the account
// and returns the partial identity shown on the confirmation prompt.
func (s *authService) ResolveResetAccount(ctx context.Context, identifier string, role models.RoleType) (*dto.ResetIdentity, error) {
	user, err := s.users.GetUserByIdentifier(ctx, strings.TrimSpace(identifier), role)
	if err != nil {
		return nil, err
	}
	return &dto.ResetIdentity{
		Identifier: user.Identifier,
		Name:       user.FullName,
		Email:      user.Email,
	}, nil
}

// ResetPassword is step 2: it re-resolves the account, verifies the
// confirmation inputs and overwrites the stored credential.
func (s *authService) ResetPassword(ctx context.Context, input ResetPasswordInput) error {
	user, err := s.users.GetUserByIdentifier(ctx, strings.TrimSpace(input.Identifier), input.Role)
	if err != nil {
		return err
	}

	// Students must confirm the exact email on record.
	if input.Role == models.RoleStudent && input.Email != user.Email {
		return apperrors.ErrEmailMismatch
	}
	if input.NewPassword != input.ConfirmPassword {
		return apperrors.ErrPasswordMismatch
	}
	if len(input.NewPassword) < MinPasswordLength {
		return apperrors.ErrPasswordTooWeak
	}

	hashed, err := auth.HashPassword(input.NewPassword)
	if err != nil {
		return fmt.Errorf("error hashing password: %w", err)
	}
	if err := s.users.UpdatePassword(ctx, user.ID, hashed); err != nil {
		return err
	}

	s.logger.Info().Str("identifier", user.Identifier).Str("role", string(input.Role)).Msg("Password reset")
	return nil
}
