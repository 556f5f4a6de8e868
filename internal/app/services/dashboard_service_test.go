package services

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/rs/zerolog"

	"github.com/campushq/discipline/internal/app/models"
	"github.com/campushq/discipline/internal/app/models/dto"
	"github.com/campushq/discipline/internal/pkg/apperrors"
)

type dashboardFixture struct {
	svc        DashboardService
	caseSvc    CaseService
	users      *fakeUserStore
	profiles   *fakeProfileStore
	cases      *fakeCaseStore
	activities *fakeActivityStore
}

func newDashboardFixture() *dashboardFixture {
	users := newFakeUserStore()
	profiles := newFakeProfileStore()
	cases := newFakeCaseStore()
	activities := newFakeActivityStore()
	return &dashboardFixture{
		svc:        NewDashboardService(users, profiles, cases, zerolog.Nop()),
		caseSvc:    NewCaseService(cases, zerolog.Nop()),
		users:      users,
		profiles:   profiles,
		cases:      cases,
		activities: activities,
	}
}

func (fx *dashboardFixture) addStudent(t *testing.T, usn, email string) int64 {
	t.Helper()
	authSvc := NewAuthService(fx.users, fx.profiles, fx.activities, zerolog.Nop())
	user, err := authSvc.RegisterStudent(context.Background(), usn, email, "correct-pw")
	if err != nil {
		t.Fatalf("RegisterStudent() error = %v", err)
	}
	return user.ID
}

func (fx *dashboardFixture) addTeacher(t *testing.T, email string) int64 {
	t.Helper()
	authSvc := NewAuthService(fx.users, fx.profiles, fx.activities, zerolog.Nop())
	user, err := authSvc.RegisterTeacher(context.Background(), email, "correct-pw")
	if err != nil {
		t.Fatalf("RegisterTeacher() error = %v", err)
	}
	return user.ID
}

func TestStudentDashboard(t *testing.T) {
	ctx := context.Background()
	fx := newDashboardFixture()

	studentID := fx.addStudent(t, "S123", "s@x.com")
	teacherID := fx.addTeacher(t, "t@x.com")

	// Initially empty.
	board, err := fx.svc.StudentDashboard(ctx, studentID)
	if err != nil {
		t.Fatalf("StudentDashboard() error = %v", err)
	}
	if board.TotalComplaints != 0 || len(board.Cases) != 0 || len(board.RecentComplaints) != 0 {
		t.Errorf("fresh dashboard not empty: %+v", board)
	}

	for i := 1; i <= 4; i++ {
		form := dto.CaseForm{USN: "S123", Date: fmt.Sprintf("2025-11-0%d", i), Description: fmt.Sprintf("case %d", i)}
		if _, err := fx.caseSvc.FileOther(ctx, form, teacherID); err != nil {
			t.Fatalf("FileOther() error = %v", err)
		}
	}
	// A case naming a different student must not leak in.
	if _, err := fx.caseSvc.FileOther(ctx, dto.CaseForm{USN: "S999"}, teacherID); err != nil {
		t.Fatalf("FileOther() error = %v", err)
	}

	board, err = fx.svc.StudentDashboard(ctx, studentID)
	if err != nil {
		t.Fatalf("StudentDashboard() error = %v", err)
	}

	if board.TotalComplaints != 4 {
		t.Errorf("TotalComplaints = %d, want 4", board.TotalComplaints)
	}
	if len(board.Cases) != 4 {
		t.Fatalf("Cases = %d, want 4", len(board.Cases))
	}
	if len(board.RecentComplaints) != 3 {
		t.Fatalf("RecentComplaints = %d, want 3", len(board.RecentComplaints))
	}
	// Newest first: case 4, 3, 2.
	for i, wantDesc := range []string{"case 4", "case 3", "case 2"} {
		rc := board.RecentComplaints[i]
		if rc.Description != wantDesc {
			t.Errorf("RecentComplaints[%d].Description = %q, want %q", i, rc.Description, wantDesc)
		}
		if rc.Status != "pending" {
			t.Errorf("RecentComplaints[%d].Status = %q, want pending", i, rc.Status)
		}
		if rc.Title != string(models.CaseOther) {
			t.Errorf("RecentComplaints[%d].Title = %q, want %q", i, rc.Title, models.CaseOther)
		}
	}
	if board.Profile.StudentID != "S123" {
		t.Errorf("Profile.StudentID = %q", board.Profile.StudentID)
	}
}

func TestTeacherDashboard(t *testing.T) {
	ctx := context.Background()
	fx := newDashboardFixture()

	teacherID := fx.addTeacher(t, "t@x.com")
	otherID := fx.addTeacher(t, "other@x.com")

	for i := 0; i < 12; i++ {
		if _, err := fx.caseSvc.FileLateArrival(ctx, dto.CaseForm{USN: "S123"}, teacherID); err != nil {
			t.Fatalf("FileLateArrival() error = %v", err)
		}
	}
	if _, err := fx.caseSvc.FileLateArrival(ctx, dto.CaseForm{USN: "S123"}, otherID); err != nil {
		t.Fatalf("FileLateArrival() error = %v", err)
	}

	board, err := fx.svc.TeacherDashboard(ctx, teacherID)
	if err != nil {
		t.Fatalf("TeacherDashboard() error = %v", err)
	}

	if board.TotalCases != 12 {
		t.Errorf("TotalCases = %d, want 12", board.TotalCases)
	}
	if len(board.Cases) != 10 {
		t.Errorf("Cases = %d, want 10 (display cap)", len(board.Cases))
	}
	if board.Profile != nil {
		t.Errorf("Profile = %+v, want nil without an extended record", board.Profile)
	}

	// With an extended record the dashboard carries it.
	fx.profiles.teachers[teacherID] = &models.TeacherProfile{
		UserID:     teacherID,
		EmployeeID: "T77",
		FullName:   "Prof. X",
		Department: "CSE",
	}
	board, err = fx.svc.TeacherDashboard(ctx, teacherID)
	if err != nil {
		t.Fatalf("TeacherDashboard() error = %v", err)
	}
	if board.Profile == nil || board.Profile.TeacherID != "T77" || board.Profile.Email != "t@x.com" {
		t.Errorf("Profile = %+v", board.Profile)
	}
}

func TestGetStudentByUSN(t *testing.T) {
	ctx := context.Background()
	fx := newDashboardFixture()
	fx.addStudent(t, "S123", "s@x.com")

	info, err := fx.svc.GetStudentByUSN(ctx, "S123")
	if err != nil {
		t.Fatalf("GetStudentByUSN() error = %v", err)
	}
	if info.Email != "s@x.com" {
		t.Errorf("Email = %q", info.Email)
	}

	if _, err := fx.svc.GetStudentByUSN(ctx, "S999"); !errors.Is(err, apperrors.ErrAccountNotFound) {
		t.Errorf("GetStudentByUSN() error = %v, want %v", err, apperrors.ErrAccountNotFound)
	}
}
