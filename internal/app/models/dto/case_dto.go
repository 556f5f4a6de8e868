package dto

import (
	"time"

	"github.com/campushq/discipline/internal/app/models"
)

// CaseForm binds the case-filing HTML forms. The dedicated entry points
// ignore CaseType and force their own; only /cases/add honors it. The
// uniform-violation form posts one or more violation checkboxes plus a
// free-text note.
type CaseForm struct {
	USN         string   `form:"usn"`
	StudentName string   `form:"student_name"`
	Name        string   `form:"name"` // legacy field name used by the dedicated forms
	Year        string   `form:"year"`
	Department  string   `form:"department"`
	CaseType    string   `form:"case_type"`
	Date        string   `form:"date"`
	Description string   `form:"description"`
	Reason      string   `form:"reason"` // late-arrival form posts the description as "reason"
	Violations  []string `form:"violation"`
}

// SubjectName returns whichever student-name field the form carried.
func (f CaseForm) SubjectName() string {
	if f.StudentName != "" {
		return f.StudentName
	}
	return f.Name
}

// CaseData is one case row in dashboard payloads.
type CaseData struct {
	ID          int64           `json:"id"`
	CaseType    models.CaseType `json:"case_type"`
	USN         string          `json:"usn"`
	StudentName string          `json:"student_name"`
	Date        string          `json:"date"`
	Description string          `json:"description"`
	CreatedAt   time.Time       `json:"created_at"`
}

// RecentComplaint is one entry of the student dashboard's recent summary.
// Status is always "pending": cases carry no status field.
type RecentComplaint struct {
	ID          int64  `json:"id"`
	Title       string `json:"title"`
	Date        string `json:"date"`
	Status      string `json:"status" example:"pending"`
	Description string `json:"description"`
}

// StudentDashboard is the student dashboard view model.
type StudentDashboard struct {
	Profile          ProfileData       `json:"profile"`
	Cases            []CaseData        `json:"cases"`
	TotalComplaints  int64             `json:"total_complaints"`
	RecentComplaints []RecentComplaint `json:"recent_complaints"`
}

// TeacherDashboard is the teacher dashboard view model. Profile is nil when
// the teacher has no extended record.
type TeacherDashboard struct {
	Profile    *TeacherProfileData `json:"profile,omitempty"`
	Cases      []CaseData          `json:"cases"`
	TotalCases int64               `json:"total_cases"`
}
