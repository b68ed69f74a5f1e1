package service

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/sam002696/tuition-management-backend/internals/features/tuition/details/dto"
	"github.com/sam002696/tuition-management-backend/internals/features/tuition/details/model"
)

type TuitionDetailsService struct {
	DB *gorm.DB
}

func NewTuitionDetailsService(db *gorm.DB) *TuitionDetailsService {
	return &TuitionDetailsService{DB: db}
}

// Create persists a new tuition contract; one per (teacher, student) pair.
func (s *TuitionDetailsService) Create(req dto.CreateTuitionDetailsRequest) (*model.TuitionDetailsModel, error) {
	tuitionType := dto.NormalizeTuitionType(req.TuitionType)
	if tuitionType == "" {
		return nil, fiber.NewError(fiber.StatusUnprocessableEntity, "The selected tuition type is invalid.")
	}

	var count int64
	if err := s.DB.Model(&model.TuitionDetailsModel{}).
		Where("teacher_id = ? AND student_id = ?", req.TeacherID, req.StudentID).
		Count(&count).Error; err != nil {
		return nil, err
	}
	if count > 0 {
		return nil, fiber.NewError(fiber.StatusConflict, "Tuition details already exist for this teacher and student.")
	}

	details := model.TuitionDetailsModel{
		TeacherID:     req.TeacherID,
		StudentID:     req.StudentID,
		TuitionType:   tuitionType,
		ClassLevel:    req.ClassLevel,
		SubjectList:   dto.DedupeSubjects(req.SubjectList),
		Medium:        req.Medium,
		InstituteName: req.InstituteName,
		AddressLine:   req.AddressLine,
		District:      req.District,
		Thana:         req.Thana,
		StudyPurpose:  req.StudyPurpose,

		TuitionDaysPerWeek: req.TuitionDaysPerWeek,
		HoursPerDay:        req.HoursPerDay,
		DaysName:           dto.CanonicalizeDays(req.DaysName),
		SalaryPerMonth:     req.SalaryPerMonth,
		StartingMonth:      req.StartingMonth,

		TotalClassesPerCourse:       req.TotalClassesPerCourse,
		HoursPerClass:               req.HoursPerClass,
		SalaryPerSubject:            req.SalaryPerSubject,
		TotalCourseCompletionSalary: req.TotalCourseCompletionSalary,
		Duration:                    req.Duration,
	}
	details.ClearInactiveGroup()

	if err := s.DB.Create(&details).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, fiber.NewError(fiber.StatusConflict, "Tuition details already exist for this teacher and student.")
		}
		return nil, err
	}
	return &details, nil
}

// Update applies a partial patch. The pair uniqueness is re-checked when
// either party changes, and the group not matching the final
// tuition_type is cleared.
func (s *TuitionDetailsService) Update(id uuid.UUID, req dto.UpdateTuitionDetailsRequest) (*model.TuitionDetailsModel, error) {
	var details model.TuitionDetailsModel
	if err := s.DB.First(&details, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fiber.NewError(fiber.StatusNotFound, "Tuition details not found.")
		}
		return nil, err
	}

	teacherID := details.TeacherID
	if req.TeacherID != nil {
		teacherID = *req.TeacherID
	}
	studentID := details.StudentID
	if req.StudentID != nil {
		studentID = *req.StudentID
	}

	var count int64
	if err := s.DB.Model(&model.TuitionDetailsModel{}).
		Where("teacher_id = ? AND student_id = ? AND id <> ?", teacherID, studentID, id).
		Count(&count).Error; err != nil {
		return nil, err
	}
	if count > 0 {
		return nil, fiber.NewError(fiber.StatusConflict, "Tuition details already exist for this teacher and student.")
	}

	details.TeacherID = teacherID
	details.StudentID = studentID

	if req.TuitionType != nil {
		tuitionType := dto.NormalizeTuitionType(*req.TuitionType)
		if tuitionType == "" {
			return nil, fiber.NewError(fiber.StatusUnprocessableEntity, "The selected tuition type is invalid.")
		}
		details.TuitionType = tuitionType
	}
	if req.ClassLevel != nil {
		details.ClassLevel = *req.ClassLevel
	}
	if req.SubjectList != nil {
		details.SubjectList = dto.DedupeSubjects(req.SubjectList)
	}
	if req.Medium != nil {
		details.Medium = *req.Medium
	}
	if req.InstituteName != nil {
		details.InstituteName = *req.InstituteName
	}
	if req.AddressLine != nil {
		details.AddressLine = *req.AddressLine
	}
	if req.District != nil {
		details.District = *req.District
	}
	if req.Thana != nil {
		details.Thana = *req.Thana
	}
	if req.StudyPurpose != nil {
		details.StudyPurpose = req.StudyPurpose
	}

	if req.TuitionDaysPerWeek != nil {
		details.TuitionDaysPerWeek = req.TuitionDaysPerWeek
	}
	if req.HoursPerDay != nil {
		details.HoursPerDay = req.HoursPerDay
	}
	if req.DaysName != nil {
		details.DaysName = dto.CanonicalizeDays(req.DaysName)
	}
	if req.SalaryPerMonth != nil {
		details.SalaryPerMonth = req.SalaryPerMonth
	}
	if req.StartingMonth != nil {
		details.StartingMonth = req.StartingMonth
	}

	if req.TotalClassesPerCourse != nil {
		details.TotalClassesPerCourse = req.TotalClassesPerCourse
	}
	if req.HoursPerClass != nil {
		details.HoursPerClass = req.HoursPerClass
	}
	if req.SalaryPerSubject != nil {
		details.SalaryPerSubject = req.SalaryPerSubject
	}
	if req.TotalCourseCompletionSalary != nil {
		details.TotalCourseCompletionSalary = req.TotalCourseCompletionSalary
	}
	if req.Duration != nil {
		details.Duration = req.Duration
	}

	details.ClearInactiveGroup()

	if err := s.DB.Save(&details).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, fiber.NewError(fiber.StatusConflict, "Tuition details already exist for this teacher and student.")
		}
		return nil, err
	}
	return &details, nil
}

func (s *TuitionDetailsService) GetByID(id uuid.UUID) (*model.TuitionDetailsModel, error) {
	var details model.TuitionDetailsModel
	if err := s.DB.First(&details, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fiber.NewError(fiber.StatusNotFound, "Tuition details not found.")
		}
		return nil, err
	}
	return &details, nil
}

func (s *TuitionDetailsService) GetByTeacherAndStudent(teacherID, studentID uuid.UUID) (*model.TuitionDetailsModel, error) {
	var details model.TuitionDetailsModel
	err := s.DB.Preload("Teacher").Preload("Student").
		Where("teacher_id = ? AND student_id = ?", teacherID, studentID).
		First(&details).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fiber.NewError(fiber.StatusNotFound, "Tuition details not found.")
		}
		return nil, err
	}
	return &details, nil
}
