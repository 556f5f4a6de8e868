package services

import (
	"context"
	"testing"

	"github.com/rs/zerolog"

	"github.com/campushq/discipline/internal/app/models"
	"github.com/campushq/discipline/internal/app/models/dto"
)

func strptr(s string) *string { return &s }

func newTestProfileService(t *testing.T) (ProfileService, *fakeActivityStore, int64) {
	t.Helper()
	users := newFakeUserStore()
	profiles := newFakeProfileStore()
	activities := newFakeActivityStore()

	authSvc := NewAuthService(users, profiles, activities, zerolog.Nop())
	user, err := authSvc.RegisterStudent(context.Background(), "S123", "s@x.com", "correct-pw")
	if err != nil {
		t.Fatalf("RegisterStudent() error = %v", err)
	}

	profiles.students[user.ID] = &models.StudentProfile{
		UserID:   user.ID,
		FullName: "John Doe",
		Phone:    "111",
		Course:   "B.E. CSE",
		Address:  "Hostel Block A",
	}

	return NewProfileService(users, profiles, activities, zerolog.Nop()), activities, user.ID
}

func TestUpdateProfilePartial(t *testing.T) {
	ctx := context.Background()
	svc, activities, userID := newTestProfileService(t)

	resp, err := svc.UpdateProfile(ctx, userID, dto.UpdateProfileRequest{Phone: strptr("555")})
	if err != nil {
		t.Fatalf("UpdateProfile() error = %v", err)
	}

	p := resp.Profile
	if p.Phone != "555" {
		t.Errorf("Phone = %q, want 555", p.Phone)
	}
	if p.FullName != "John Doe" || p.Course != "B.E. CSE" || p.Address != "Hostel Block A" {
		t.Errorf("untouched fields changed: %+v", p)
	}

	updates := activities.byAction(userID, "updated profile")
	if len(updates) != 1 {
		t.Fatalf("update activities = %d, want 1", len(updates))
	}
	if updates[0].Details != "updated fields: [phone]" {
		t.Errorf("Details = %q, want %q", updates[0].Details, "updated fields: [phone]")
	}
}

func TestUpdateProfileMultipleFields(t *testing.T) {
	ctx := context.Background()
	svc, activities, userID := newTestProfileService(t)

	_, err := svc.UpdateProfile(ctx, userID, dto.UpdateProfileRequest{
		FullName: strptr("Jane Doe"),
		Address:  strptr("Hostel Block B"),
	})
	if err != nil {
		t.Fatalf("UpdateProfile() error = %v", err)
	}

	updates := activities.byAction(userID, "updated profile")
	if len(updates) != 1 {
		t.Fatalf("update activities = %d, want 1", len(updates))
	}
	// Field names appear in a fixed order.
	if updates[0].Details != "updated fields: [full_name, address]" {
		t.Errorf("Details = %q", updates[0].Details)
	}
}

func TestGetProfileIncludesRecentActivity(t *testing.T) {
	ctx := context.Background()
	svc, activities, userID := newTestProfileService(t)

	// Registration already recorded one entry; add more than the display cap.
	for i := 0; i < 12; i++ {
		if err := activities.Record(ctx, userID, "logged in", "Student logged in"); err != nil {
			t.Fatalf("Record() error = %v", err)
		}
	}

	resp, err := svc.GetProfile(ctx, userID)
	if err != nil {
		t.Fatalf("GetProfile() error = %v", err)
	}
	if !resp.Success {
		t.Error("Success = false")
	}
	if len(resp.Activities) != 10 {
		t.Errorf("Activities = %d, want 10 (display cap)", len(resp.Activities))
	}
	// Newest entry first.
	if resp.Activities[0].Action != "logged in" {
		t.Errorf("Activities[0].Action = %q", resp.Activities[0].Action)
	}
}
