package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/campushq/discipline/internal/app/models/dto"
	"github.com/campushq/discipline/internal/app/services"
	"github.com/campushq/discipline/internal/middleware"
)

// CaseController handles the case-filing forms. Every route it serves sits
// behind the teacher role guard.
type CaseController struct {
	caseService services.CaseService
	logger      zerolog.Logger
}

// NewCaseController creates a new CaseController
func NewCaseController(caseService services.CaseService, logger zerolog.Logger) *CaseController {
	return &CaseController{
		caseService: caseService,
		logger:      logger,
	}
}

type fileFn func(ctx *gin.Context, form dto.CaseForm, teacherID int64) (int64, error)

// ShowLateArrival renders the late-arrival filing form.
func (c *CaseController) ShowLateArrival(ctx *gin.Context) {
	ctx.HTML(http.StatusOK, "late_arrival.html", gin.H{})
}

// FileLateArrival files a late-arrival case.
func (c *CaseController) FileLateArrival(ctx *gin.Context) {
	c.file(ctx, "late_arrival.html", func(ctx *gin.Context, form dto.CaseForm, teacherID int64) (int64, error) {
		return c.caseService.FileLateArrival(ctx.Request.Context(), form, teacherID)
	})
}

// ShowAddCase renders the generic filing form, the only one that accepts a
// caller-supplied case type.
func (c *CaseController) ShowAddCase(ctx *gin.Context) {
	ctx.HTML(http.StatusOK, "add_case.html", gin.H{})
}

// FileGeneric files a case with the type the form supplied.
func (c *CaseController) FileGeneric(ctx *gin.Context) {
	c.file(ctx, "add_case.html", func(ctx *gin.Context, form dto.CaseForm, teacherID int64) (int64, error) {
		return c.caseService.FileGeneric(ctx.Request.Context(), form, teacherID)
	})
}

// ShowAcademicMisconduct renders the academic-misconduct filing form.
func (c *CaseController) ShowAcademicMisconduct(ctx *gin.Context) {
	ctx.HTML(http.StatusOK, "academic_misconduct.html", gin.H{})
}

// FileAcademicMisconduct files an academic-misconduct case.
func (c *CaseController) FileAcademicMisconduct(ctx *gin.Context) {
	c.file(ctx, "academic_misconduct.html", func(ctx *gin.Context, form dto.CaseForm, teacherID int64) (int64, error) {
		return c.caseService.FileAcademicMisconduct(ctx.Request.Context(), form, teacherID)
	})
}

// ShowUniformViolation renders the uniform-violation filing form.
func (c *CaseController) ShowUniformViolation(ctx *gin.Context) {
	ctx.HTML(http.StatusOK, "uniform_violations.html", gin.H{})
}

// FileUniformViolation files a uniform-violation case, folding the selected
// violation labels and the free-text note into the description.
func (c *CaseController) FileUniformViolation(ctx *gin.Context) {
	c.file(ctx, "uniform_violations.html", func(ctx *gin.Context, form dto.CaseForm, teacherID int64) (int64, error) {
		return c.caseService.FileUniformViolation(ctx.Request.Context(), form, teacherID)
	})
}

// ShowOther renders the catch-all filing form.
func (c *CaseController) ShowOther(ctx *gin.Context) {
	ctx.HTML(http.StatusOK, "others.html", gin.H{})
}

// FileOther files a case of type Other.
func (c *CaseController) FileOther(ctx *gin.Context) {
	c.file(ctx, "others.html", func(ctx *gin.Context, form dto.CaseForm, teacherID int64) (int64, error) {
		return c.caseService.FileOther(ctx.Request.Context(), form, teacherID)
	})
}

func (c *CaseController) file(ctx *gin.Context, template string, fn fileFn) {
	teacherID, ok := middleware.SessionUserID(ctx)
	if !ok {
		ctx.Redirect(http.StatusSeeOther, "/teacher/login")
		return
	}

	var form dto.CaseForm
	if err := ctx.ShouldBind(&form); err != nil {
		ctx.HTML(http.StatusBadRequest, template, gin.H{"error": "Invalid form submission"})
		return
	}

	id, err := fn(ctx, form, teacherID)
	if err != nil {
		c.logger.Error().Err(err).Str("usn", form.USN).Msg("Failed to file case")
		ctx.HTML(http.StatusInternalServerError, template, gin.H{"error": "Failed to save the case, please try again"})
		return
	}

	c.logger.Info().Int64("caseID", id).Int64("teacherID", teacherID).Str("usn", form.USN).Msg("Case filed")
	ctx.Redirect(http.StatusSeeOther, "/teacher-dashboard")
}
