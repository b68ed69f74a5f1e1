package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"

	userModel "github.com/sam002696/tuition-management-backend/internals/features/users/user/model"
)

// Canonical tuition_type literals. "course_based" drifts in from older
// clients and is normalized to "course" at the input boundary.
const (
	TypeMonthlyBased = "monthly_based"
	TypeCourse       = "course"
)

// TuitionDetailsModel holds the billing/logistics contract for one
// (teacher, student) pair. Exactly one of the monthly and course field
// groups is populated; the other stays null.
type TuitionDetailsModel struct {
	ID        uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	TeacherID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:uq_tuition_details_pair" json:"teacher_id"`
	StudentID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:uq_tuition_details_pair" json:"student_id"`

	TuitionType   string         `gorm:"type:varchar(20);not null" json:"tuition_type"`
	ClassLevel    string         `gorm:"size:255;not null" json:"class_level"`
	SubjectList   pq.StringArray `gorm:"type:text[];not null" json:"subject_list"`
	Medium        string         `gorm:"size:255;not null" json:"medium"`
	InstituteName string         `gorm:"size:255;not null" json:"institute_name"`
	AddressLine   string         `gorm:"size:255;not null" json:"address_line"`
	District      string         `gorm:"size:255;not null" json:"district"`
	Thana         string         `gorm:"size:255;not null" json:"thana"`
	StudyPurpose  *string        `gorm:"type:text" json:"study_purpose,omitempty"`

	// Monthly based
	TuitionDaysPerWeek *int           `json:"tuition_days_per_week,omitempty"`
	HoursPerDay        *int           `json:"hours_per_day,omitempty"`
	DaysName           pq.StringArray `gorm:"type:text[]" json:"days_name,omitempty"`
	SalaryPerMonth     *int           `json:"salary_per_month,omitempty"`
	StartingMonth      *string        `gorm:"size:255" json:"starting_month,omitempty"`

	// Course based
	TotalClassesPerCourse       *int     `json:"total_classes_per_course,omitempty"`
	HoursPerClass               *float64 `json:"hours_per_class,omitempty"`
	SalaryPerSubject            *int     `json:"salary_per_subject,omitempty"`
	TotalCourseCompletionSalary *int     `json:"total_course_completion_salary,omitempty"`
	Duration                    *string  `gorm:"size:255" json:"duration,omitempty"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`

	Teacher *userModel.UserModel `gorm:"foreignKey:TeacherID;constraint:OnDelete:CASCADE" json:"teacher,omitempty"`
	Student *userModel.UserModel `gorm:"foreignKey:StudentID;constraint:OnDelete:CASCADE" json:"student,omitempty"`
}

func (TuitionDetailsModel) TableName() string {
	return "tuition_details"
}

// ClearInactiveGroup nulls out whichever field group does not belong to
// the record's tuition_type, keeping the XOR invariant after any write.
func (m *TuitionDetailsModel) ClearInactiveGroup() {
	switch m.TuitionType {
	case TypeMonthlyBased:
		m.TotalClassesPerCourse = nil
		m.HoursPerClass = nil
		m.SalaryPerSubject = nil
		m.TotalCourseCompletionSalary = nil
		m.Duration = nil
	case TypeCourse:
		m.TuitionDaysPerWeek = nil
		m.HoursPerDay = nil
		m.DaysName = nil
		m.SalaryPerMonth = nil
		m.StartingMonth = nil
	}
}
