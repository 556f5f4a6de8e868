package services

import (
	"context"
	"strings"

	"github.com/rs/zerolog"

	"github.com/campushq/discipline/internal/app/models"
	"github.com/campushq/discipline/internal/app/models/dto"
	"github.com/campushq/discipline/internal/app/repositories"
)

// CaseService handles case filing. Three entry points force their case
// type; only FileGeneric honors the type posted by the caller. Submitted
// values are stored as-is: the committee's paper forms never validated
// dates or roll numbers either, and the records must match them.
type CaseService interface {
	FileLateArrival(ctx context.Context, form dto.CaseForm, teacherID int64) (int64, error)
	FileAcademicMisconduct(ctx context.Context, form dto.CaseForm, teacherID int64) (int64, error)
	FileUniformViolation(ctx context.Context, form dto.CaseForm, teacherID int64) (int64, error)
	FileOther(ctx context.Context, form dto.CaseForm, teacherID int64) (int64, error)
	FileGeneric(ctx context.Context, form dto.CaseForm, teacherID int64) (int64, error)
	ClearAllCases(ctx context.Context) (int64, error)
}

type caseService struct {
	cases  repositories.CaseStore
	logger zerolog.Logger
}

// NewCaseService creates a new CaseService
func NewCaseService(cases repositories.CaseStore, logger zerolog.Logger) CaseService {
	return &caseService{cases: cases, logger: logger}
}

// FileLateArrival files a case with the type forced to Late Arrival. The
// form posts its description in the "reason" field.
func (s *caseService) FileLateArrival(ctx context.Context, form dto.CaseForm, teacherID int64) (int64, error) {
	desc := form.Reason
	if desc == "" {
		desc = form.Description
	}
	return s.file(ctx, form, models.CaseLateArrival, strings.TrimSpace(desc), teacherID)
}

// FileAcademicMisconduct files a case with the type forced to Academic Misconduct.
func (s *caseService) FileAcademicMisconduct(ctx context.Context, form dto.CaseForm, teacherID int64) (int64, error) {
	return s.file(ctx, form, models.CaseAcademicMisconduct, strings.TrimSpace(form.Description), teacherID)
}

// FileUniformViolation files a case with the type forced to Uniform
// Violation. The selected violation labels and the free-text note are
// joined into the description.
func (s *caseService) FileUniformViolation(ctx context.Context, form dto.CaseForm, teacherID int64) (int64, error) {
	desc := "Violations: " + strings.Join(form.Violations, ", ") +
		"\nOther: " + strings.TrimSpace(form.Description)
	return s.file(ctx, form, models.CaseUniformViolation, desc, teacherID)
}

// FileOther files a case with the type forced to Other.
func (s *caseService) FileOther(ctx context.Context, form dto.CaseForm, teacherID int64) (int64, error) {
	return s.file(ctx, form, models.CaseOther, strings.TrimSpace(form.Description), teacherID)
}

// FileGeneric files a case with whatever type the form posted.
func (s *caseService) FileGeneric(ctx context.Context, form dto.CaseForm, teacherID int64) (int64, error) {
	return s.file(ctx, form, models.CaseType(form.CaseType), form.Description, teacherID)
}

// ClearAllCases deletes every case and returns the count. Operator use
// only; nothing routes here from HTTP.
func (s *caseService) ClearAllCases(ctx context.Context) (int64, error) {
	return s.cases.DeleteAll(ctx)
}

func (s *caseService) file(ctx context.Context, form dto.CaseForm, caseType models.CaseType, description string, teacherID int64) (int64, error) {
	c := &models.Case{
		USN:         form.USN,
		StudentName: form.SubjectName(),
		Cohort:      form.Year,
		Department:  form.Department,
		CaseType:    caseType,
		OccurredOn:  form.Date,
		Description: description,
		CreatedBy:   teacherID,
	}
	return s.cases.CreateCase(ctx, c)
}
