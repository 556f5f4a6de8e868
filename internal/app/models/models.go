package models

// RoleType defines the user role type
type RoleType string

const (
	RoleStudent RoleType = "STUDENT"
	RoleTeacher RoleType = "TEACHER"
)

// CaseType labels a disciplinary case. The stored strings match the
// committee's historical records, so they are display strings rather
// than codes.
type CaseType string

const (
	CaseLateArrival        CaseType = "Late Arrival"
	CaseAcademicMisconduct CaseType = "Academic Misconduct"
	CaseUniformViolation   CaseType = "Uniform Violation"
	CaseOther              CaseType = "Other"
)
