package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/campushq/discipline/internal/app/services"
	"github.com/campushq/discipline/internal/middleware"
)

// DashboardController renders the role dashboards.
type DashboardController struct {
	dashboardService services.DashboardService
	logger           zerolog.Logger
}

// NewDashboardController creates a new DashboardController
func NewDashboardController(dashboardService services.DashboardService, logger zerolog.Logger) *DashboardController {
	return &DashboardController{
		dashboardService: dashboardService,
		logger:           logger,
	}
}

// StudentDashboard renders the student dashboard: every case naming the
// student's USN, a total count and the three most recent as a summary.
func (c *DashboardController) StudentDashboard(ctx *gin.Context) {
	userID, ok := middleware.SessionUserID(ctx)
	if !ok {
		ctx.Redirect(http.StatusSeeOther, "/student-login")
		return
	}

	data, err := c.dashboardService.StudentDashboard(ctx.Request.Context(), userID)
	if err != nil {
		c.logger.Error().Err(err).Int64("userID", userID).Msg("Failed to build student dashboard")
		ctx.Redirect(http.StatusSeeOther, "/student-login")
		return
	}

	ctx.HTML(http.StatusOK, "studentdashboard.html", gin.H{
		"profile":           data.Profile,
		"cases":             data.Cases,
		"total_complaints":  data.TotalComplaints,
		"recent_complaints": data.RecentComplaints,
	})
}

// TeacherDashboard renders the teacher dashboard: the teacher's ten most
// recent filings, their total count and the extended profile when present.
func (c *DashboardController) TeacherDashboard(ctx *gin.Context) {
	userID, ok := middleware.SessionUserID(ctx)
	if !ok {
		ctx.Redirect(http.StatusSeeOther, "/teacher/login")
		return
	}

	data, err := c.dashboardService.TeacherDashboard(ctx.Request.Context(), userID)
	if err != nil {
		c.logger.Error().Err(err).Int64("userID", userID).Msg("Failed to build teacher dashboard")
		ctx.Redirect(http.StatusSeeOther, "/teacher/login")
		return
	}

	ctx.HTML(http.StatusOK, "teacherdashboard.html", gin.H{
		"profile":     data.Profile,
		"cases":       data.Cases,
		"total_cases": data.TotalCases,
	})
}
