package dto

import "time"

// ProfileData is the student profile summary shown on dashboards and
// returned by the profile API.
type ProfileData struct {
	FullName  string `json:"fullName" example:"John Doe"`
	StudentID string `json:"studentId" example:"1CR21CS042"`
	Email     string `json:"email" example:"student@college.edu"`
	Phone     string `json:"phone,omitempty" example:"555-0199"`
	Course    string `json:"course,omitempty" example:"B.E. CSE"`
	Address   string `json:"address,omitempty"`
}

// UpdateProfileRequest is the partial-update payload for the student
// profile. Only non-nil fields are applied.
type UpdateProfileRequest struct {
	FullName *string `json:"full_name,omitempty"`
	Phone    *string `json:"phone,omitempty"`
	Course   *string `json:"course,omitempty"`
	Address  *string `json:"address,omitempty"`
}

// ProfileResponse is returned by the profile read and update endpoints.
type ProfileResponse struct {
	Success    bool           `json:"success"`
	Profile    ProfileData    `json:"profile"`
	Activities []ActivityData `json:"activities,omitempty"`
}

// ActivityData is one activity-log entry in API responses.
type ActivityData struct {
	Action    string    `json:"action" example:"updated profile"`
	Details   string    `json:"details" example:"updated fields: [phone]"`
	Timestamp time.Time `json:"timestamp"`
}

// TeacherProfileData is the optional extended teacher record shown on the
// teacher dashboard.
type TeacherProfileData struct {
	FullName   string `json:"fullName"`
	TeacherID  string `json:"teacherId"`
	Email      string `json:"email"`
	Phone      string `json:"phone"`
	Department string `json:"department"`
	Address    string `json:"address"`
}
