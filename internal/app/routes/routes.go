package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/campushq/discipline/internal/app/controllers"
	"github.com/campushq/discipline/internal/app/models"
	"github.com/campushq/discipline/internal/middleware"
)

// SetupRouter configures all application routes
func SetupRouter(
	router *gin.Engine,
	authController *controllers.AuthController,
	caseController *controllers.CaseController,
	dashboardController *controllers.DashboardController,
	apiController *controllers.APIController,
	authMiddleware *middleware.AuthMiddleware,
) {
	// Every route sees the session when one exists; the guards below decide
	// who gets through.
	router.Use(authMiddleware.LoadSession())

	// --- Public HTML routes ---
	router.GET("/", authController.ShowIndex)

	router.GET("/student-login", authController.ShowStudentLogin)
	router.POST("/student-login", authController.StudentLogin)
	router.GET("/student/register", authController.ShowStudentRegister)
	router.POST("/student/register", authController.StudentRegister)
	router.GET("/student/forgot-password", authController.ShowStudentForgotPassword)
	router.POST("/student/forgot-password", authController.StudentForgotPassword)
	router.GET("/student/logout", authController.Logout)

	router.GET("/teacher/login", authController.ShowTeacherLogin)
	router.POST("/teacher/login", authController.TeacherLogin)
	router.GET("/teacher/register", authController.ShowTeacherRegister)
	router.POST("/teacher/register", authController.TeacherRegister)
	router.GET("/teacher/forgot-password", authController.ShowTeacherForgotPassword)
	router.POST("/teacher/forgot-password", authController.TeacherForgotPassword)
	router.GET("/teacher/logout", authController.Logout)

	// --- Student dashboard ---
	student := router.Group("")
	student.Use(authMiddleware.RequireRole(models.RoleStudent, "/student-login"))
	{
		student.GET("/student/dashboard", dashboardController.StudentDashboard)
	}

	// --- Teacher dashboard and case filing ---
	// The role check lives here, in one gate over the whole group, rather
	// than repeated inside each filing handler.
	teacher := router.Group("")
	teacher.Use(authMiddleware.RequireRole(models.RoleTeacher, "/teacher/login"))
	{
		teacher.GET("/teacher-dashboard", dashboardController.TeacherDashboard)

		cases := teacher.Group("/cases")
		{
			cases.GET("/late", caseController.ShowLateArrival)
			cases.POST("/late", caseController.FileLateArrival)
			cases.GET("/add", caseController.ShowAddCase)
			cases.POST("/add", caseController.FileGeneric)
			cases.GET("/academic-misconduct", caseController.ShowAcademicMisconduct)
			cases.POST("/academic-misconduct", caseController.FileAcademicMisconduct)
			cases.GET("/uniform-violations", caseController.ShowUniformViolation)
			cases.POST("/uniform-violations", caseController.FileUniformViolation)
			cases.GET("/others", caseController.ShowOther)
			cases.POST("/others", caseController.FileOther)
		}
	}

	// --- JSON API ---
	api := router.Group("/api")
	{
		api.GET("/health", apiController.Health)
		api.GET("/get-student", apiController.GetStudent)
		api.POST("/student/register", apiController.StudentRegister)
		api.POST("/student/login", apiController.StudentLogin)
		api.POST("/logout", apiController.Logout)

		apiAuthenticated := api.Group("")
		apiAuthenticated.Use(authMiddleware.RequireAPIAuth())
		{
			apiAuthenticated.GET("/student/profile", apiController.StudentProfile)
			apiAuthenticated.POST("/student/profile/update", apiController.UpdateStudentProfile)
		}
	}
}
