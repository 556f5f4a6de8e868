package dto

// StudentRegisterRequest is the JSON payload for student registration.
type StudentRegisterRequest struct {
	USN      string `json:"usn" binding:"required" example:"1CR21CS042"`
	Email    string `json:"email" binding:"required,email" example:"student@college.edu"`
	Password string `json:"password" binding:"required" example:"secret123"`
}

// StudentLoginRequest is the JSON payload for student login.
type StudentLoginRequest struct {
	USN      string `json:"usn" binding:"required" example:"1CR21CS042"`
	Password string `json:"password" binding:"required" example:"secret123"`
}

// LoginForm binds the HTML login forms. Students post their USN, teachers
// their email; both arrive in the identifier field of the template.
type LoginForm struct {
	Identifier string `form:"identifier"`
	USN        string `form:"usn"`
	Email      string `form:"email"`
	Password   string `form:"password"`
}

// RegisterForm binds the HTML registration forms.
type RegisterForm struct {
	USN      string `form:"usn"`
	Email    string `form:"email"`
	Password string `form:"password"`
}

// ForgotPasswordForm binds both steps of the password-reset flow. Step 1
// posts only the identifier; step 2 re-posts it as a hidden field together
// with the confirmation input, so the flow holds no server-side state.
type ForgotPasswordForm struct {
	Step            string `form:"step"`
	USN             string `form:"usn"`
	Email           string `form:"email"`
	NewPassword     string `form:"new_password"`
	ConfirmPassword string `form:"confirm_password"`
}

// ResetIdentity is the partial identity returned by reset step 1 and
// carried through the step 2 template.
type ResetIdentity struct {
	Identifier string `json:"identifier"`
	Name       string `json:"name"`
	Email      string `json:"email"`
}

// StudentLoginResponse is returned by the JSON student login endpoint.
type StudentLoginResponse struct {
	Success    bool           `json:"success"`
	Profile    ProfileData    `json:"profile"`
	Activities []ActivityData `json:"activities"`
}
