// Package controllers handles HTTP request handling
package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/campushq/discipline/internal/app/models"
	"github.com/campushq/discipline/internal/app/models/dto"
	"github.com/campushq/discipline/internal/app/services"
	"github.com/campushq/discipline/internal/pkg/session"
)

// AuthController handles the HTML login, registration and password-reset
// flows for both roles.
type AuthController struct {
	authService services.AuthService
	store       *session.PGStore
	logger      zerolog.Logger
}

// NewAuthController creates a new AuthController
func NewAuthController(authService services.AuthService, store *session.PGStore, logger zerolog.Logger) *AuthController {
	return &AuthController{
		authService: authService,
		store:       store,
		logger:      logger,
	}
}

// ShowIndex renders the landing page.
func (c *AuthController) ShowIndex(ctx *gin.Context) {
	ctx.HTML(http.StatusOK, "index.html", gin.H{})
}

// ShowStudentLogin renders the student login form.
func (c *AuthController) ShowStudentLogin(ctx *gin.Context) {
	ctx.HTML(http.StatusOK, "student_login.html", gin.H{})
}

// StudentLogin authenticates a student by USN and establishes a session.
func (c *AuthController) StudentLogin(ctx *gin.Context) {
	var form dto.LoginForm
	if err := ctx.ShouldBind(&form); err != nil {
		ctx.HTML(http.StatusBadRequest, "student_login.html", gin.H{"error": "Invalid form submission"})
		return
	}

	identifier := form.Identifier
	if identifier == "" {
		identifier = form.USN
	}

	user, err := c.authService.Login(ctx.Request.Context(), identifier, form.Password, models.RoleStudent)
	if err != nil {
		ctx.HTML(http.StatusOK, "student_login.html", gin.H{"error": err.Error()})
		return
	}

	if err := c.establishSession(ctx, user); err != nil {
		c.logger.Error().Err(err).Int64("userID", user.ID).Msg("Failed to establish session")
		ctx.HTML(http.StatusInternalServerError, "student_login.html", gin.H{"error": "Something went wrong, please try again"})
		return
	}

	ctx.Redirect(http.StatusSeeOther, "/student/dashboard")
}

// ShowStudentRegister renders the student registration form.
func (c *AuthController) ShowStudentRegister(ctx *gin.Context) {
	ctx.HTML(http.StatusOK, "student_register.html", gin.H{})
}

// StudentRegister creates a student account from the registration form.
func (c *AuthController) StudentRegister(ctx *gin.Context) {
	var form dto.RegisterForm
	if err := ctx.ShouldBind(&form); err != nil {
		ctx.HTML(http.StatusBadRequest, "student_register.html", gin.H{"error": "Invalid form submission"})
		return
	}

	_, err := c.authService.RegisterStudent(ctx.Request.Context(), form.USN, form.Email, form.Password)
	if err != nil {
		ctx.HTML(http.StatusOK, "student_register.html", gin.H{"error": err.Error()})
		return
	}

	ctx.HTML(http.StatusOK, "student_login.html", gin.H{"message": "Registration successful. Please log in."})
}

// ShowTeacherLogin renders the teacher login form.
func (c *AuthController) ShowTeacherLogin(ctx *gin.Context) {
	ctx.HTML(http.StatusOK, "teacher_login.html", gin.H{})
}

// TeacherLogin authenticates a teacher by email and establishes a session.
func (c *AuthController) TeacherLogin(ctx *gin.Context) {
	var form dto.LoginForm
	if err := ctx.ShouldBind(&form); err != nil {
		ctx.HTML(http.StatusBadRequest, "teacher_login.html", gin.H{"error": "Invalid form submission"})
		return
	}

	identifier := form.Identifier
	if identifier == "" {
		identifier = form.Email
	}

	user, err := c.authService.Login(ctx.Request.Context(), identifier, form.Password, models.RoleTeacher)
	if err != nil {
		ctx.HTML(http.StatusOK, "teacher_login.html", gin.H{"error": err.Error()})
		return
	}

	if err := c.establishSession(ctx, user); err != nil {
		c.logger.Error().Err(err).Int64("userID", user.ID).Msg("Failed to establish session")
		ctx.HTML(http.StatusInternalServerError, "teacher_login.html", gin.H{"error": "Something went wrong, please try again"})
		return
	}

	ctx.Redirect(http.StatusSeeOther, "/teacher-dashboard")
}

// ShowTeacherRegister renders the teacher registration form.
func (c *AuthController) ShowTeacherRegister(ctx *gin.Context) {
	ctx.HTML(http.StatusOK, "teacher_register.html", gin.H{})
}

// TeacherRegister creates a teacher account from the registration form.
func (c *AuthController) TeacherRegister(ctx *gin.Context) {
	var form dto.RegisterForm
	if err := ctx.ShouldBind(&form); err != nil {
		ctx.HTML(http.StatusBadRequest, "teacher_register.html", gin.H{"error": "Invalid form submission"})
		return
	}

	_, err := c.authService.RegisterTeacher(ctx.Request.Context(), form.Email, form.Password)
	if err != nil {
		ctx.HTML(http.StatusOK, "teacher_register.html", gin.H{"error": err.Error()})
		return
	}

	ctx.HTML(http.StatusOK, "teacher_login.html", gin.H{"message": "Registration successful. Please log in."})
}

// ShowStudentForgotPassword renders step 1 of the student reset flow.
func (c *AuthController) ShowStudentForgotPassword(ctx *gin.Context) {
	ctx.HTML(http.StatusOK, "student_forgot_password.html", gin.H{"step": "identify"})
}

// StudentForgotPassword drives both steps of the student reset flow. The
// step marker and the resolved identity travel in hidden form fields, so
// no state is held between the requests.
func (c *AuthController) StudentForgotPassword(ctx *gin.Context) {
	c.forgotPassword(ctx, "student_forgot_password.html", models.RoleStudent, "/student-login")
}

// ShowTeacherForgotPassword renders step 1 of the teacher reset flow.
func (c *AuthController) ShowTeacherForgotPassword(ctx *gin.Context) {
	ctx.HTML(http.StatusOK, "teacher_forgot_password.html", gin.H{"step": "identify"})
}

// TeacherForgotPassword drives both steps of the teacher reset flow.
func (c *AuthController) TeacherForgotPassword(ctx *gin.Context) {
	c.forgotPassword(ctx, "teacher_forgot_password.html", models.RoleTeacher, "/teacher/login")
}

func (c *AuthController) forgotPassword(ctx *gin.Context, template string, role models.RoleType, loginPath string) {
	var form dto.ForgotPasswordForm
	if err := ctx.ShouldBind(&form); err != nil {
		ctx.HTML(http.StatusBadRequest, template, gin.H{"step": "identify", "error": "Invalid form submission"})
		return
	}

	identifier := form.USN
	if role == models.RoleTeacher {
		identifier = form.Email
	}

	if form.Step != "reset" {
		// Step 1: resolve the account and show the confirmation form.
		identity, err := c.authService.ResolveResetAccount(ctx.Request.Context(), identifier, role)
		if err != nil {
			ctx.HTML(http.StatusOK, template, gin.H{"step": "identify", "error": err.Error()})
			return
		}
		ctx.HTML(http.StatusOK, template, gin.H{"step": "reset", "identity": identity})
		return
	}

	// Step 2: everything needed came back as hidden fields.
	input := services.ResetPasswordInput{
		Identifier:      identifier,
		Email:           form.Email,
		NewPassword:     form.NewPassword,
		ConfirmPassword: form.ConfirmPassword,
		Role:            role,
	}

	if err := c.authService.ResetPassword(ctx.Request.Context(), input); err != nil {
		// Keep the resolved identity so the caller retries step 2, not the flow.
		identity := &dto.ResetIdentity{Identifier: input.Identifier, Email: form.Email}
		ctx.HTML(http.StatusOK, template, gin.H{"step": "reset", "identity": identity, "error": err.Error()})
		return
	}

	ctx.Redirect(http.StatusSeeOther, loginPath)
}

// Logout destroys the session and returns to the landing page.
func (c *AuthController) Logout(ctx *gin.Context) {
	c.destroySession(ctx)
	ctx.Redirect(http.StatusSeeOther, "/")
}

func (c *AuthController) establishSession(ctx *gin.Context, user *models.User) error {
	sess, err := c.store.Get(ctx.Request, session.CookieName)
	if err != nil {
		return err
	}
	session.Bind(sess, user.ID, user.RoleType)
	return sess.Save(ctx.Request, ctx.Writer)
}

func (c *AuthController) destroySession(ctx *gin.Context) {
	sess, err := c.store.Get(ctx.Request, session.CookieName)
	if err != nil {
		return
	}
	sess.Options.MaxAge = -1
	if err := sess.Save(ctx.Request, ctx.Writer); err != nil {
		c.logger.Warn().Err(err).Msg("Failed to destroy session")
	}
}
