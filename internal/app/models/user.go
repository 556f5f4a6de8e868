package models

import (
	"time"
)

// User defines the account model based on the 'users' table. Students and
// teachers share the table; the role discriminant tells them apart. For
// students the identifier is the USN (roll number), for teachers it is the
// email address. (identifier, role_type) is unique.
type User struct {
	ID         int64     `json:"id" db:"id" example:"1"`
	Identifier string    `json:"identifier" db:"identifier" example:"1CR21CS042"` // USN for students, email for teachers
	Email      string    `json:"email" db:"email" example:"student@college.edu"`
	Password   string    `json:"-" db:"password"` // bcrypt hash, excluded from JSON
	FullName   string    `json:"fullName" db:"full_name" example:"John Doe"`
	RoleType   RoleType  `json:"roleType" db:"role_type" example:"STUDENT"`
	Department string    `json:"department" db:"department" example:"CSE"`
	Cohort     string    `json:"cohort" db:"cohort" example:"3rd Year"` // academic year/batch label
	CreatedAt  time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt  time.Time `json:"updatedAt" db:"updated_at"`
}

// StudentProfile holds the extended, partial-updatable student fields
// based on the 'student_profiles' table.
type StudentProfile struct {
	ID        int64     `json:"id" db:"id"`
	UserID    int64     `json:"userId" db:"user_id"`
	FullName  string    `json:"fullName" db:"full_name"`
	Phone     string    `json:"phone" db:"phone"`
	Course    string    `json:"course" db:"course"`
	Address   string    `json:"address" db:"address"`
	CreatedAt time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt time.Time `json:"updatedAt" db:"updated_at"`
}

// TeacherProfile holds the optional extended teacher record based on the
// 'teacher_profiles' table. Not every teacher account has one.
type TeacherProfile struct {
	ID         int64     `json:"id" db:"id"`
	UserID     int64     `json:"userId" db:"user_id"`
	EmployeeID string    `json:"employeeId" db:"employee_id"`
	FullName   string    `json:"fullName" db:"full_name"`
	Phone      string    `json:"phone" db:"phone"`
	Department string    `json:"department" db:"department"`
	Address    string    `json:"address" db:"address"`
	CreatedAt  time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt  time.Time `json:"updatedAt" db:"updated_at"`
}
