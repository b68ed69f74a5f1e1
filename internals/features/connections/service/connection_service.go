package service

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/sam002696/tuition-management-backend/internals/constants"
	"github.com/sam002696/tuition-management-backend/internals/features/connections/dto"
	"github.com/sam002696/tuition-management-backend/internals/features/connections/model"
	notifModel "github.com/sam002696/tuition-management-backend/internals/features/home/notifications/model"
	notifService "github.com/sam002696/tuition-management-backend/internals/features/home/notifications/service"
	userModel "github.com/sam002696/tuition-management-backend/internals/features/users/user/model"
	helper "github.com/sam002696/tuition-management-backend/internals/helpers"
)

// Caller is the authenticated identity threaded into every operation.
type Caller struct {
	ID   uuid.UUID
	Role string
	Name string
}

type ConnectionService struct {
	DB       *gorm.DB
	Notifier *notifService.Notifier
}

func NewConnectionService(db *gorm.DB, notifier *notifService.Notifier) *ConnectionService {
	return &ConnectionService{DB: db, Notifier: notifier}
}

// FindStudentByCustomID resolves a student from the shareable custom_id.
// Teacher-only.
func (s *ConnectionService) FindStudentByCustomID(caller Caller, customID string) (*userModel.UserModel, error) {
	if caller.Role != constants.RoleTeacher {
		return nil, fiber.NewError(fiber.StatusForbidden, constants.ErrOnlyTeachersCanFetchStudents)
	}

	var student userModel.UserModel
	err := s.DB.First(&student, "custom_id = ? AND role = ?", customID, constants.RoleStudent).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fiber.NewError(fiber.StatusUnprocessableEntity, "The selected custom id is invalid.")
		}
		return nil, err
	}
	return &student, nil
}

// SendRequest creates a pending request from the calling teacher to the
// student addressed by custom_id. An accepted or pending request for the
// pair blocks the send; a rejected one does not.
func (s *ConnectionService) SendRequest(caller Caller, req dto.SendRequest) (*model.ConnectionRequestModel, error) {
	if caller.Role != constants.RoleTeacher {
		return nil, fiber.NewError(fiber.StatusForbidden, constants.ErrOnlyTeachersCanSendRequests)
	}

	student, err := s.FindStudentByCustomID(caller, req.CustomID)
	if err != nil {
		return nil, err
	}

	var count int64
	if err := s.DB.Model(&model.ConnectionRequestModel{}).
		Where("teacher_id = ? AND student_id = ? AND status = ?", caller.ID, student.ID, model.StatusAccepted).
		Count(&count).Error; err != nil {
		return nil, err
	}
	if count > 0 {
		return nil, fiber.NewError(fiber.StatusConflict, "You are already connected with this student.")
	}

	if err := s.DB.Model(&model.ConnectionRequestModel{}).
		Where("teacher_id = ? AND student_id = ? AND status = ?", caller.ID, student.ID, model.StatusPending).
		Count(&count).Error; err != nil {
		return nil, err
	}
	if count > 0 {
		return nil, fiber.NewError(fiber.StatusConflict, "A pending request already exists for this student.")
	}

	connection := model.ConnectionRequestModel{
		TeacherID:        caller.ID,
		StudentID:        student.ID,
		TuitionDetailsID: req.TuitionDetailsID,
		Status:           model.StatusPending,
		IsActive:         true,
	}
	if err := s.DB.Create(&connection).Error; err != nil {
		// Concurrent duplicate send loses the insert race against the
		// partial unique index; same outcome as the pre-check.
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, fiber.NewError(fiber.StatusConflict, "A pending request already exists for this student.")
		}
		return nil, err
	}

	s.Notifier.Notify(student.ID, student.Role, notifService.Payload{
		Type:     notifModel.TypeConnectionRequest,
		Title:    "New Connection Request",
		Body:     caller.Name + " sent you a request.",
		EntityID: connection.ID,
	})
	return &connection, nil
}

// RespondToRequest lets the owning student accept or reject a request.
// Ownership and lookup are combined: a mismatched student sees 404.
func (s *ConnectionService) RespondToRequest(caller Caller, id uuid.UUID, status string) (*model.ConnectionRequestModel, error) {
	if caller.Role != constants.RoleStudent {
		return nil, fiber.NewError(fiber.StatusForbidden, constants.ErrOnlyStudentsCanRespondRequests)
	}
	if !model.IsRespondStatus(status) {
		return nil, fiber.NewError(fiber.StatusUnprocessableEntity, "The selected status is invalid.")
	}

	var connection model.ConnectionRequestModel
	err := s.DB.First(&connection, "id = ? AND student_id = ?", id, caller.ID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fiber.NewError(fiber.StatusNotFound, "Connection request not found.")
		}
		return nil, err
	}

	if err := s.DB.Model(&connection).Update("status", status).Error; err != nil {
		return nil, err
	}
	connection.Status = status

	s.Notifier.Notify(connection.TeacherID, constants.RoleTeacher, notifService.Payload{
		Type:     notifModel.TypeConnectionRequest,
		Title:    "Request " + status,
		Body:     caller.Name + " has " + status + " your connection request.",
		EntityID: connection.ID,
	})
	return &connection, nil
}

// DisconnectConnection is valid only on an (accepted, active) row and
// only for the teacher on it. Terminal.
func (s *ConnectionService) DisconnectConnection(caller Caller, id uuid.UUID) (*model.ConnectionRequestModel, error) {
	var connection model.ConnectionRequestModel
	err := s.DB.First(&connection, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fiber.NewError(fiber.StatusNotFound, "Connection not found or already inactive")
		}
		return nil, err
	}
	if !connection.CanDisconnect() {
		return nil, fiber.NewError(fiber.StatusNotFound, "Connection not found or already inactive")
	}

	if caller.ID != connection.TeacherID {
		return nil, fiber.NewError(fiber.StatusForbidden, constants.ErrOnlyTeacherCanDisconnect)
	}

	if err := s.DB.Model(&connection).Update("is_active", false).Error; err != nil {
		return nil, err
	}
	connection.IsActive = false
	return &connection, nil
}

// CheckConnectionStatus returns the status of the most recently created
// request between the caller and the counterparty behind custom_id.
func (s *ConnectionService) CheckConnectionStatus(caller Caller, customID string) (string, error) {
	var counterparty userModel.UserModel
	if err := s.DB.First(&counterparty, "custom_id = ?", customID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", fiber.NewError(fiber.StatusUnprocessableEntity, "The selected custom id is invalid.")
		}
		return "", err
	}

	q := s.DB.Model(&model.ConnectionRequestModel{})
	switch caller.Role {
	case constants.RoleTeacher:
		q = q.Where("teacher_id = ? AND student_id = ?", caller.ID, counterparty.ID)
	case constants.RoleStudent:
		q = q.Where("teacher_id = ? AND student_id = ?", counterparty.ID, caller.ID)
	default:
		return "", fiber.NewError(fiber.StatusForbidden, "Forbidden")
	}

	var connection model.ConnectionRequestModel
	err := q.Order("created_at DESC").First(&connection).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", fiber.NewError(fiber.StatusNotFound, "No connection request found.")
		}
		return "", err
	}
	return connection.Status, nil
}

// GetFilteredConnections is the role-scoped listing with optional status,
// is_active and counterparty-name filters, newest first.
func (s *ConnectionService) GetFilteredConnections(
	caller Caller,
	status *string,
	isActive *bool,
	search string,
	paging helper.Paging,
) ([]model.ConnectionRequestModel, int64, error) {
	q, preload, err := s.scopedQuery(caller, search)
	if err != nil {
		return nil, 0, err
	}
	if status != nil {
		q = q.Where("connection_requests.status = ?", *status)
	}
	if isActive != nil {
		q = q.Where("connection_requests.is_active = ?", *isActive)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var rows []model.ConnectionRequestModel
	err = q.Preload(preload).
		Order("connection_requests.created_at DESC").
		Limit(paging.Limit).Offset(paging.Offset).
		Find(&rows).Error
	if err != nil {
		return nil, 0, err
	}
	return rows, total, nil
}

// GetUserPendingRequests lists pending rows on the caller's side of the
// relation with the counterparty preloaded.
func (s *ConnectionService) GetUserPendingRequests(caller Caller) ([]model.ConnectionRequestModel, error) {
	q, preload, err := s.scopedQuery(caller, "")
	if err != nil {
		return nil, err
	}

	var rows []model.ConnectionRequestModel
	err = q.Where("connection_requests.status = ?", model.StatusPending).
		Preload(preload).
		Order("connection_requests.created_at DESC").
		Find(&rows).Error
	return rows, err
}

// GetAcceptedActiveConnections lists accepted-and-active rows, searchable
// and paginated.
func (s *ConnectionService) GetAcceptedActiveConnections(
	caller Caller,
	search string,
	paging helper.Paging,
) ([]model.ConnectionRequestModel, int64, error) {
	q, preload, err := s.scopedQuery(caller, search)
	if err != nil {
		return nil, 0, err
	}
	q = q.Where("connection_requests.status = ? AND connection_requests.is_active = ?", model.StatusAccepted, true)

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var rows []model.ConnectionRequestModel
	err = q.Preload(preload).
		Order("connection_requests.created_at DESC").
		Limit(paging.Limit).Offset(paging.Offset).
		Find(&rows).Error
	if err != nil {
		return nil, 0, err
	}
	return rows, total, nil
}

// GetMineByID fetches one row the caller sits on either side of.
func (s *ConnectionService) GetMineByID(caller Caller, id uuid.UUID) (*model.ConnectionRequestModel, error) {
	var connection model.ConnectionRequestModel
	err := s.DB.Preload("Teacher").Preload("Student").
		Where("id = ? AND (teacher_id = ? OR student_id = ?)", id, caller.ID, caller.ID).
		First(&connection).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fiber.NewError(fiber.StatusNotFound, "Connection not found.")
		}
		return nil, err
	}
	return &connection, nil
}

// GetConnectionCounts returns the caller's (accepted ∧ active),
// (accepted ∧ inactive) and pending counters.
func (s *ConnectionService) GetConnectionCounts(caller Caller) (*dto.ConnectionCounts, error) {
	scope := func() *gorm.DB {
		q := s.DB.Model(&model.ConnectionRequestModel{})
		if caller.Role == constants.RoleTeacher {
			return q.Where("teacher_id = ?", caller.ID)
		}
		return q.Where("student_id = ?", caller.ID)
	}

	var counts dto.ConnectionCounts
	if err := scope().Where("status = ? AND is_active = ?", model.StatusAccepted, true).
		Count(&counts.Active).Error; err != nil {
		return nil, err
	}
	if err := scope().Where("status = ? AND is_active = ?", model.StatusAccepted, false).
		Count(&counts.Inactive).Error; err != nil {
		return nil, err
	}
	if err := scope().Where("status = ?", model.StatusPending).
		Count(&counts.Pending).Error; err != nil {
		return nil, err
	}
	return &counts, nil
}

// scopedQuery narrows to the caller's side of the relation and applies
// the optional counterparty-name substring search. It also names the
// association to preload for the counterparty.
func (s *ConnectionService) scopedQuery(caller Caller, search string) (*gorm.DB, string, error) {
	q := s.DB.Model(&model.ConnectionRequestModel{})

	var counterpartyCol, preload string
	switch caller.Role {
	case constants.RoleTeacher:
		q = q.Where("connection_requests.teacher_id = ?", caller.ID)
		counterpartyCol = "student_id"
		preload = "Student"
	case constants.RoleStudent:
		q = q.Where("connection_requests.student_id = ?", caller.ID)
		counterpartyCol = "teacher_id"
		preload = "Teacher"
	default:
		return nil, "", fiber.NewError(fiber.StatusForbidden, "Forbidden")
	}

	if search != "" {
		q = q.Joins("JOIN users AS counterparty ON counterparty.id = connection_requests."+counterpartyCol).
			Where("counterparty.name ILIKE ?", "%"+search+"%")
	}
	return q, preload, nil
}
