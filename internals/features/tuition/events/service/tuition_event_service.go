package service

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/sam002696/tuition-management-backend/internals/constants"
	connectionModel "github.com/sam002696/tuition-management-backend/internals/features/connections/model"
	notifModel "github.com/sam002696/tuition-management-backend/internals/features/home/notifications/model"
	notifService "github.com/sam002696/tuition-management-backend/internals/features/home/notifications/service"
	"github.com/sam002696/tuition-management-backend/internals/features/tuition/events/dto"
	"github.com/sam002696/tuition-management-backend/internals/features/tuition/events/model"
)

// Caller is the authenticated identity threaded into every operation.
type Caller struct {
	ID   uuid.UUID
	Role string
	Name string
}

type TuitionEventService struct {
	DB       *gorm.DB
	Notifier *notifService.Notifier

	// Now is the clock seam; defaults to time.Now.
	Now func() time.Time
}

func NewTuitionEventService(db *gorm.DB, notifier *notifService.Notifier) *TuitionEventService {
	return &TuitionEventService{DB: db, Notifier: notifier, Now: time.Now}
}

// Create schedules a pending session. The pair must hold an accepted
// connection and the time must be strictly in the future.
func (s *TuitionEventService) Create(caller Caller, req dto.CreateEventRequest) (*model.TuitionEventModel, error) {
	if caller.Role != constants.RoleTeacher {
		return nil, fiber.NewError(fiber.StatusForbidden, constants.ErrOnlyTeachersCanCreateEvents)
	}
	if !req.ScheduledAt.After(s.Now()) {
		return nil, fiber.NewError(fiber.StatusUnprocessableEntity, "The scheduled at must be a date after now.")
	}

	var count int64
	if err := s.DB.Model(&connectionModel.ConnectionRequestModel{}).
		Where("teacher_id = ? AND student_id = ? AND status = ?",
			caller.ID, req.StudentID, connectionModel.StatusAccepted).
		Count(&count).Error; err != nil {
		return nil, err
	}
	if count == 0 {
		return nil, fiber.NewError(fiber.StatusForbidden, "Student is not connected or request not accepted.")
	}

	event := model.TuitionEventModel{
		TeacherID:   caller.ID,
		StudentID:   req.StudentID,
		Title:       req.Title,
		Description: req.Description,
		ScheduledAt: req.ScheduledAt,
		Status:      model.StatusPending,
	}
	if err := s.DB.Create(&event).Error; err != nil {
		return nil, err
	}

	s.Notifier.Notify(req.StudentID, constants.RoleStudent, notifService.Payload{
		Type:     notifModel.TypeTuitionEvent,
		Title:    "New Tuition Event Scheduled",
		Body:     "You have a new tuition event from " + caller.Name + ".",
		EntityID: event.ID,
	})
	return &event, nil
}

// Respond lets the student on the event accept or reject it. Ownership
// and lookup are combined: a mismatched student sees 404.
func (s *TuitionEventService) Respond(caller Caller, id uuid.UUID, status string) (*model.TuitionEventModel, error) {
	if caller.Role != constants.RoleStudent {
		return nil, fiber.NewError(fiber.StatusForbidden, constants.ErrOnlyStudentsCanRespondEvents)
	}
	if !model.IsRespondStatus(status) {
		return nil, fiber.NewError(fiber.StatusUnprocessableEntity, "The selected status is invalid.")
	}

	var event model.TuitionEventModel
	err := s.DB.First(&event, "id = ? AND student_id = ?", id, caller.ID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fiber.NewError(fiber.StatusNotFound, "Tuition event not found.")
		}
		return nil, err
	}

	if err := s.DB.Model(&event).Update("status", status).Error; err != nil {
		return nil, err
	}
	event.Status = status

	s.Notifier.Notify(event.TeacherID, constants.RoleTeacher, notifService.Payload{
		Type:     notifModel.TypeTuitionEvent,
		Title:    "Student Responded to Tuition Event",
		Body:     caller.Name + " has " + status + " your tuition event.",
		EntityID: event.ID,
	})
	return &event, nil
}

// GetMyEvents lists the caller's accepted events, soonest first.
func (s *TuitionEventService) GetMyEvents(caller Caller) ([]model.TuitionEventModel, error) {
	var events []model.TuitionEventModel
	err := s.sideScoped(caller).
		Where("status = ?", model.StatusAccepted).
		Order("scheduled_at ASC").
		Find(&events).Error
	return events, err
}

// GetPendingEvents lists the caller's pending events, soonest first.
func (s *TuitionEventService) GetPendingEvents(caller Caller) ([]model.TuitionEventModel, error) {
	var events []model.TuitionEventModel
	err := s.sideScoped(caller).
		Where("status = ?", model.StatusPending).
		Order("scheduled_at ASC").
		Find(&events).Error
	return events, err
}

// GetEventsWithStudent lists a teacher's events with one student.
func (s *TuitionEventService) GetEventsWithStudent(caller Caller, studentID uuid.UUID) ([]model.TuitionEventModel, error) {
	if caller.Role != constants.RoleTeacher {
		return nil, fiber.NewError(fiber.StatusForbidden, "Only teachers can view events with a student.")
	}
	var events []model.TuitionEventModel
	err := s.DB.
		Where("teacher_id = ? AND student_id = ?", caller.ID, studentID).
		Order("scheduled_at ASC").
		Find(&events).Error
	return events, err
}

// GetEventsWithTeacher lists a student's events with one teacher.
func (s *TuitionEventService) GetEventsWithTeacher(caller Caller, teacherID uuid.UUID) ([]model.TuitionEventModel, error) {
	if caller.Role != constants.RoleStudent {
		return nil, fiber.NewError(fiber.StatusForbidden, "Only students can view events with a teacher.")
	}
	var events []model.TuitionEventModel
	err := s.DB.
		Where("teacher_id = ? AND student_id = ?", teacherID, caller.ID).
		Order("scheduled_at ASC").
		Find(&events).Error
	return events, err
}

func (s *TuitionEventService) sideScoped(caller Caller) *gorm.DB {
	q := s.DB.Model(&model.TuitionEventModel{})
	if caller.Role == constants.RoleTeacher {
		return q.Where("teacher_id = ?", caller.ID)
	}
	return q.Where("student_id = ?", caller.ID)
}
