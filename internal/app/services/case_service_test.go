package services

import (
	"context"
	"testing"

	"github.com/rs/zerolog"

	"github.com/campushq/discipline/internal/app/models"
	"github.com/campushq/discipline/internal/app/models/dto"
)

func TestDedicatedEndpointsForceCaseType(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name     string
		file     func(s CaseService, form dto.CaseForm) (int64, error)
		wantType models.CaseType
	}{
		{
			name: "late arrival",
			file: func(s CaseService, form dto.CaseForm) (int64, error) {
				return s.FileLateArrival(ctx, form, 1)
			},
			wantType: models.CaseLateArrival,
		},
		{
			name: "academic misconduct",
			file: func(s CaseService, form dto.CaseForm) (int64, error) {
				return s.FileAcademicMisconduct(ctx, form, 1)
			},
			wantType: models.CaseAcademicMisconduct,
		},
		{
			name: "uniform violation",
			file: func(s CaseService, form dto.CaseForm) (int64, error) {
				return s.FileUniformViolation(ctx, form, 1)
			},
			wantType: models.CaseUniformViolation,
		},
		{
			name: "other",
			file: func(s CaseService, form dto.CaseForm) (int64, error) {
				return s.FileOther(ctx, form, 1)
			},
			wantType: models.CaseOther,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cases := newFakeCaseStore()
			svc := NewCaseService(cases, zerolog.Nop())

			// The posted case_type must be ignored by every dedicated endpoint.
			form := dto.CaseForm{USN: "S123", CaseType: "Something Else"}
			if _, err := tt.file(svc, form); err != nil {
				t.Fatalf("file error = %v", err)
			}
			if got := cases.cases[0].CaseType; got != tt.wantType {
				t.Errorf("stored case_type = %q, want %q", got, tt.wantType)
			}
		})
	}
}

func TestFileLateArrivalDescriptionFromReason(t *testing.T) {
	ctx := context.Background()
	cases := newFakeCaseStore()
	svc := NewCaseService(cases, zerolog.Nop())

	form := dto.CaseForm{USN: "S123", Reason: "  arrived 40 minutes late  "}
	if _, err := svc.FileLateArrival(ctx, form, 7); err != nil {
		t.Fatalf("FileLateArrival() error = %v", err)
	}

	c := cases.cases[0]
	if c.Description != "arrived 40 minutes late" {
		t.Errorf("description = %q", c.Description)
	}
	if c.CreatedBy != 7 {
		t.Errorf("created_by = %d, want 7", c.CreatedBy)
	}
}

func TestFileUniformViolationJoinsLabels(t *testing.T) {
	ctx := context.Background()
	cases := newFakeCaseStore()
	svc := NewCaseService(cases, zerolog.Nop())

	form := dto.CaseForm{
		USN:         "S123",
		Violations:  []string{"No ID card", "Improper uniform"},
		Description: " untucked shirt ",
	}
	if _, err := svc.FileUniformViolation(ctx, form, 1); err != nil {
		t.Fatalf("FileUniformViolation() error = %v", err)
	}

	want := "Violations: No ID card, Improper uniform\nOther: untucked shirt"
	if got := cases.cases[0].Description; got != want {
		t.Errorf("description = %q, want %q", got, want)
	}
}

func TestFileGenericHonorsPostedType(t *testing.T) {
	ctx := context.Background()
	cases := newFakeCaseStore()
	svc := NewCaseService(cases, zerolog.Nop())

	form := dto.CaseForm{
		USN:         "S123",
		StudentName: "John Doe",
		Year:        "3rd Year",
		Department:  "CSE",
		CaseType:    "Academic Misconduct",
		Date:        "2025-11-03",
		Description: "copied assignment",
	}
	if _, err := svc.FileGeneric(ctx, form, 2); err != nil {
		t.Fatalf("FileGeneric() error = %v", err)
	}

	c := cases.cases[0]
	if c.CaseType != models.CaseAcademicMisconduct {
		t.Errorf("case_type = %q", c.CaseType)
	}
	if c.StudentName != "John Doe" || c.Cohort != "3rd Year" || c.OccurredOn != "2025-11-03" {
		t.Errorf("stored case = %+v", c)
	}
}

func TestClearAllCases(t *testing.T) {
	ctx := context.Background()
	cases := newFakeCaseStore()
	svc := NewCaseService(cases, zerolog.Nop())

	for i := 0; i < 5; i++ {
		if _, err := svc.FileOther(ctx, dto.CaseForm{USN: "S123"}, 1); err != nil {
			t.Fatalf("FileOther() error = %v", err)
		}
	}

	deleted, err := svc.ClearAllCases(ctx)
	if err != nil {
		t.Fatalf("ClearAllCases() error = %v", err)
	}
	if deleted != 5 {
		t.Errorf("deleted = %d, want 5", deleted)
	}

	n, err := cases.CountByUSN(ctx, "S123")
	if err != nil {
		t.Fatalf("CountByUSN() error = %v", err)
	}
	if n != 0 {
		t.Errorf("remaining cases = %d, want 0", n)
	}
}
