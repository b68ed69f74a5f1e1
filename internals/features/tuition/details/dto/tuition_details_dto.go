package dto

import (
	"strings"

	"github.com/google/uuid"

	"github.com/sam002696/tuition-management-backend/internals/features/tuition/details/model"
)

// ================== REQUEST ==================

type CreateTuitionDetailsRequest struct {
	TeacherID     uuid.UUID `json:"teacher_id" validate:"required"`
	StudentID     uuid.UUID `json:"student_id" validate:"required"`
	TuitionType   string    `json:"tuition_type" validate:"required"`
	ClassLevel    string    `json:"class_level" validate:"required,max=255"`
	SubjectList   []string  `json:"subject_list" validate:"required,min=1"`
	Medium        string    `json:"medium" validate:"required,max=255"`
	InstituteName string    `json:"institute_name" validate:"required,max=255"`
	AddressLine   string    `json:"address_line" validate:"required,max=255"`
	District      string    `json:"district" validate:"required,max=255"`
	Thana         string    `json:"thana" validate:"required,max=255"`
	StudyPurpose  *string   `json:"study_purpose"`

	// Monthly based
	TuitionDaysPerWeek *int     `json:"tuition_days_per_week"`
	HoursPerDay        *int     `json:"hours_per_day"`
	DaysName           []string `json:"days_name"`
	SalaryPerMonth     *int     `json:"salary_per_month"`
	StartingMonth      *string  `json:"starting_month"`

	// Course based
	TotalClassesPerCourse       *int     `json:"total_classes_per_course"`
	HoursPerClass               *float64 `json:"hours_per_class"`
	SalaryPerSubject            *int     `json:"salary_per_subject"`
	TotalCourseCompletionSalary *int     `json:"total_course_completion_salary"`
	Duration                    *string  `json:"duration"`
}

// UpdateTuitionDetailsRequest is PATCH-friendly: only non-nil fields are
// applied.
type UpdateTuitionDetailsRequest struct {
	TeacherID     *uuid.UUID `json:"teacher_id"`
	StudentID     *uuid.UUID `json:"student_id"`
	TuitionType   *string    `json:"tuition_type"`
	ClassLevel    *string    `json:"class_level"`
	SubjectList   []string   `json:"subject_list"`
	Medium        *string    `json:"medium"`
	InstituteName *string    `json:"institute_name"`
	AddressLine   *string    `json:"address_line"`
	District      *string    `json:"district"`
	Thana         *string    `json:"thana"`
	StudyPurpose  *string    `json:"study_purpose"`

	TuitionDaysPerWeek *int     `json:"tuition_days_per_week"`
	HoursPerDay        *int     `json:"hours_per_day"`
	DaysName           []string `json:"days_name"`
	SalaryPerMonth     *int     `json:"salary_per_month"`
	StartingMonth      *string  `json:"starting_month"`

	TotalClassesPerCourse       *int     `json:"total_classes_per_course"`
	HoursPerClass               *float64 `json:"hours_per_class"`
	SalaryPerSubject            *int     `json:"salary_per_subject"`
	TotalCourseCompletionSalary *int     `json:"total_course_completion_salary"`
	Duration                    *string  `json:"duration"`
}

// ================== RESPONSE ==================

type TuitionDetailsResponse = model.TuitionDetailsModel

/* ===============================
   Input normalization
=================================*/

// NormalizeTuitionType folds the legacy "course_based" literal into the
// canonical "course". Empty result means the value is not a known type.
func NormalizeTuitionType(raw string) string {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case model.TypeMonthlyBased:
		return model.TypeMonthlyBased
	case model.TypeCourse, "course_based":
		return model.TypeCourse
	}
	return ""
}

var weekdayOrder = []string{
	"sunday", "monday", "tuesday", "wednesday", "thursday", "friday", "saturday",
}

// CanonicalizeDays whitelists, dedupes and reorders weekday names into
// the fixed Sunday-first order. Unknown names are dropped.
func CanonicalizeDays(days []string) []string {
	if len(days) == 0 {
		return nil
	}
	seen := make(map[string]bool, len(days))
	for _, d := range days {
		seen[strings.ToLower(strings.TrimSpace(d))] = true
	}
	var out []string
	for _, d := range weekdayOrder {
		if seen[d] {
			out = append(out, d)
		}
	}
	return out
}

// DedupeSubjects trims and dedupes while keeping the submitted order.
func DedupeSubjects(subjects []string) []string {
	if len(subjects) == 0 {
		return nil
	}
	seen := make(map[string]bool, len(subjects))
	out := make([]string, 0, len(subjects))
	for _, s := range subjects {
		s = strings.TrimSpace(s)
		if s == "" {
			continue
		}
		key := strings.ToLower(s)
		if seen[key] {
			continue
		}
		seen[key] = true
		out = append(out, s)
	}
	return out
}
