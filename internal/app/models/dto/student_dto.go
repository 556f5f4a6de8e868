package dto

// StudentInfoResponse is returned by GET /api/get-student. The form pages
// use it to autofill student details from a USN.
type StudentInfoResponse struct {
	Name       string `json:"name" example:"John Doe"`
	Email      string `json:"email" example:"student@college.edu"`
	Department string `json:"department" example:"CSE"`
	Year       string `json:"year" example:"3rd Year"`
}
