package services

import (
	"context"
	"errors"

	"github.com/rs/zerolog"

	"github.com/campushq/discipline/internal/app/models"
	"github.com/campushq/discipline/internal/app/models/dto"
	"github.com/campushq/discipline/internal/app/repositories"
	"github.com/campushq/discipline/internal/pkg/apperrors"
)

// Dashboard sizing.
const (
	recentComplaintCount = 3
	teacherCaseLimit     = 10
)

// DashboardService produces the read-only dashboard summaries. A case is
// owned by the filing teacher but retrieved for the named student, so the
// two dashboards filter on different columns of the same table.
type DashboardService interface {
	StudentDashboard(ctx context.Context, userID int64) (*dto.StudentDashboard, error)
	TeacherDashboard(ctx context.Context, userID int64) (*dto.TeacherDashboard, error)
	GetStudentByUSN(ctx context.Context, usn string) (*dto.StudentInfoResponse, error)
}

type dashboardService struct {
	users    repositories.UserStore
	profiles repositories.ProfileStore
	cases    repositories.CaseStore
	logger   zerolog.Logger
}

// NewDashboardService creates a new DashboardService
func NewDashboardService(
	users repositories.UserStore,
	profiles repositories.ProfileStore,
	cases repositories.CaseStore,
	logger zerolog.Logger,
) DashboardService {
	return &dashboardService{
		users:    users,
		profiles: profiles,
		cases:    cases,
		logger:   logger,
	}
}

// StudentDashboard resolves the session's account and summarizes every
// case naming its USN: full list newest-first, total count, and the three
// most recent with the defaulted "pending" status (cases carry none).
func (s *dashboardService) StudentDashboard(ctx context.Context, userID int64) (*dto.StudentDashboard, error) {
	user, err := s.users.GetUserByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	cases, err := s.cases.ListByUSN(ctx, user.Identifier)
	if err != nil {
		return nil, err
	}

	board := &dto.StudentDashboard{
		Profile: dto.ProfileData{
			FullName:  user.FullName,
			StudentID: user.Identifier,
			Email:     user.Email,
		},
		Cases:            toCaseData(cases),
		TotalComplaints:  int64(len(cases)),
		RecentComplaints: []dto.RecentComplaint{},
	}

	for i, c := range cases {
		if i == recentComplaintCount {
			break
		}
		board.RecentComplaints = append(board.RecentComplaints, dto.RecentComplaint{
			ID:          c.ID,
			Title:       string(c.CaseType),
			Date:        c.OccurredOn,
			Status:      "pending",
			Description: c.Description,
		})
	}
	return board, nil
}

// TeacherDashboard summarizes the cases the teacher filed: the ten most
// recent plus a full count, and the extended profile when one exists.
func (s *dashboardService) TeacherDashboard(ctx context.Context, userID int64) (*dto.TeacherDashboard, error) {
	user, err := s.users.GetUserByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	cases, err := s.cases.ListByCreator(ctx, userID, teacherCaseLimit)
	if err != nil {
		return nil, err
	}
	total, err := s.cases.CountByCreator(ctx, userID)
	if err != nil {
		return nil, err
	}

	board := &dto.TeacherDashboard{
		Cases:      toCaseData(cases),
		TotalCases: total,
	}

	profile, err := s.profiles.GetTeacherProfileByUserID(ctx, userID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			return nil, err
		}
		// No extended record; the dashboard renders without one.
	} else {
		board.Profile = &dto.TeacherProfileData{
			FullName:   profile.FullName,
			TeacherID:  profile.EmployeeID,
			Email:      user.Email,
			Phone:      profile.Phone,
			Department: profile.Department,
			Address:    profile.Address,
		}
	}
	return board, nil
}

// GetStudentByUSN looks up a student account for the form autofill API.
func (s *dashboardService) GetStudentByUSN(ctx context.Context, usn string) (*dto.StudentInfoResponse, error) {
	user, err := s.users.GetUserByIdentifier(ctx, usn, models.RoleStudent)
	if err != nil {
		return nil, err
	}
	return &dto.StudentInfoResponse{
		Name:       user.FullName,
		Email:      user.Email,
		Department: user.Department,
		Year:       user.Cohort,
	}, nil
}

func toCaseData(cases []models.Case) []dto.CaseData {
	out := make([]dto.CaseData, 0, len(cases))
	for _, c := range cases {
		out = append(out, dto.CaseData{
			ID:          c.ID,
			CaseType:    c.CaseType,
			USN:         c.USN,
			StudentName: c.StudentName,
			Date:        c.OccurredOn,
			Description: c.Description,
			CreatedAt:   c.CreatedAt,
		})
	}
	return out
}
