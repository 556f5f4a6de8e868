package models

import "time"

// Case represents a filed disciplinary incident based on the 'cases' table.
// Rows are immutable after insert. USN is stored as given and is not a
// foreign key: cases may name students the system has never seen.
type Case struct {
	ID          int64     `json:"id" db:"id"`
	USN         string    `json:"usn" db:"usn"`
	StudentName string    `json:"studentName" db:"student_name"`
	Cohort      string    `json:"cohort" db:"cohort"`
	Department  string    `json:"department" db:"department"`
	CaseType    CaseType  `json:"caseType" db:"case_type"`
	OccurredOn  string    `json:"occurredOn" db:"occurred_on"` // stored verbatim, no format validation
	Description string    `json:"description" db:"description"`
	CreatedBy   int64     `json:"createdBy" db:"created_by"` // filing teacher's user id
	CreatedAt   time.Time `json:"createdAt" db:"created_at"`
}
