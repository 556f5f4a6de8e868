package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/campushq/discipline/internal/app/models"
	"github.com/campushq/discipline/internal/app/models/dto"
	"github.com/campushq/discipline/internal/app/services"
	"github.com/campushq/discipline/internal/middleware"
	"github.com/campushq/discipline/internal/pkg/apperrors"
	"github.com/campushq/discipline/internal/pkg/session"
)

// APIController serves the JSON surface used by the student-facing client.
type APIController struct {
	authService      services.AuthService
	profileService   services.ProfileService
	dashboardService services.DashboardService
	store            *session.PGStore
	logger           zerolog.Logger
}

// NewAPIController creates a new APIController
func NewAPIController(
	authService services.AuthService,
	profileService services.ProfileService,
	dashboardService services.DashboardService,
	store *session.PGStore,
	logger zerolog.Logger,
) *APIController {
	return &APIController{
		authService:      authService,
		profileService:   profileService,
		dashboardService: dashboardService,
		store:            store,
		logger:           logger,
	}
}

// GetStudent looks up a student by USN
// @Summary Get student details by USN
// @Description Returns name, email, department and cohort for the given USN. Used by the filing forms to autofill student details.
// @Tags api
// @Produce json
// @Param usn query string true "Student USN"
// @Success 200 {object} dto.StudentInfoResponse
// @Failure 400 {object} dto.ErrorResponse "Missing usn parameter"
// @Failure 404 {object} dto.ErrorResponse "Unknown USN"
// @Router /api/get-student [get]
func (c *APIController) GetStudent(ctx *gin.Context) {
	usn := ctx.Query("usn")
	if usn == "" {
		middleware.HandleAPIError(ctx, apperrors.NewValidationError("usn parameter is required"))
		return
	}

	info, err := c.dashboardService.GetStudentByUSN(ctx.Request.Context(), usn)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, info)
}

// StudentRegister registers a student account
// @Summary Register a student
// @Description Creates a student account keyed by USN with a hashed credential.
// @Tags api
// @Accept json
// @Produce json
// @Param request body dto.StudentRegisterRequest true "Registration payload"
// @Success 200 {object} dto.SuccessResponse
// @Failure 400 {object} dto.ErrorResponse "Validation failure or duplicate USN"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /api/student/register [post]
func (c *APIController) StudentRegister(ctx *gin.Context) {
	var req dto.StudentRegisterRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.HandleAPIError(ctx, middleware.ValidationError(err))
		return
	}

	user, err := c.authService.RegisterStudent(ctx.Request.Context(), req.USN, req.Email, req.Password)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	c.logger.Info().Int64("userID", user.ID).Str("usn", req.USN).Msg("Student registered via API")
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse("Registration successful"))
}

// StudentLogin logs a student in
// @Summary Student login
// @Description Verifies the credential, establishes a session cookie and returns the profile with recent activity.
// @Tags api
// @Accept json
// @Produce json
// @Param request body dto.StudentLoginRequest true "Login payload"
// @Success 200 {object} dto.StudentLoginResponse
// @Failure 400 {object} dto.ErrorResponse "Invalid credentials"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /api/student/login [post]
func (c *APIController) StudentLogin(ctx *gin.Context) {
	var req dto.StudentLoginRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.HandleAPIError(ctx, middleware.ValidationError(err))
		return
	}

	user, err := c.authService.Login(ctx.Request.Context(), req.USN, req.Password, models.RoleStudent)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	sess, err := c.store.Get(ctx.Request, session.CookieName)
	if err == nil {
		session.Bind(sess, user.ID, user.RoleType)
		err = sess.Save(ctx.Request, ctx.Writer)
	}
	if err != nil {
		c.logger.Error().Err(err).Int64("userID", user.ID).Msg("Failed to establish session")
		middleware.HandleAPIError(ctx, err)
		return
	}

	profile, err := c.profileService.GetProfile(ctx.Request.Context(), user.ID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.StudentLoginResponse{
		Success:    true,
		Profile:    profile.Profile,
		Activities: profile.Activities,
	})
}

// StudentProfile returns the caller's profile
// @Summary Get the logged-in student's profile
// @Tags api
// @Produce json
// @Success 200 {object} dto.ProfileResponse
// @Failure 403 {object} dto.ErrorResponse "Not authenticated"
// @Failure 404 {object} dto.ErrorResponse "Profile not found"
// @Router /api/student/profile [get]
func (c *APIController) StudentProfile(ctx *gin.Context) {
	userID, ok := middleware.SessionUserID(ctx)
	if !ok {
		middleware.HandleAPIError(ctx, apperrors.ErrNotAuthenticated)
		return
	}

	profile, err := c.profileService.GetProfile(ctx.Request.Context(), userID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, profile)
}

// UpdateStudentProfile applies a partial profile update
// @Summary Update the logged-in student's profile
// @Description Applies only the supplied fields and records which ones changed in the activity log.
// @Tags api
// @Accept json
// @Produce json
// @Param request body dto.UpdateProfileRequest true "Fields to change"
// @Success 200 {object} dto.ProfileResponse
// @Failure 400 {object} dto.ErrorResponse "Invalid payload"
// @Failure 403 {object} dto.ErrorResponse "Not authenticated"
// @Router /api/student/profile/update [post]
func (c *APIController) UpdateStudentProfile(ctx *gin.Context) {
	userID, ok := middleware.SessionUserID(ctx)
	if !ok {
		middleware.HandleAPIError(ctx, apperrors.ErrNotAuthenticated)
		return
	}

	var req dto.UpdateProfileRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.HandleAPIError(ctx, middleware.ValidationError(err))
		return
	}

	profile, err := c.profileService.UpdateProfile(ctx.Request.Context(), userID, req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, profile)
}

// Logout destroys the caller's session
// @Summary Log out
// @Tags api
// @Produce json
// @Success 200 {object} dto.SuccessResponse
// @Router /api/logout [post]
func (c *APIController) Logout(ctx *gin.Context) {
	sess, err := c.store.Get(ctx.Request, session.CookieName)
	if err == nil {
		sess.Options.MaxAge = -1
		if err := sess.Save(ctx.Request, ctx.Writer); err != nil {
			c.logger.Warn().Err(err).Msg("Failed to destroy session")
		}
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse("Logged out"))
}

// Health reports service liveness
// @Summary Health check
// @Tags api
// @Produce json
// @Success 200 {object} dto.SuccessResponse
// @Router /api/health [get]
func (c *APIController) Health(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse("ok"))
}
