package controller

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/sam002696/tuition-management-backend/internals/features/tuition/events/dto"
	"github.com/sam002696/tuition-management-backend/internals/features/tuition/events/service"
	helper "github.com/sam002696/tuition-management-backend/internals/helpers"
)

type TuitionEventController struct {
	Service *service.TuitionEventService
}

func NewTuitionEventController(svc *service.TuitionEventService) *TuitionEventController {
	return &TuitionEventController{Service: svc}
}

func caller(c *fiber.Ctx) (service.Caller, error) {
	id, err := helper.GetUserID(c)
	if err != nil {
		return service.Caller{}, err
	}
	return service.Caller{
		ID:   id,
		Role: helper.GetUserRole(c),
		Name: helper.GetUserName(c),
	}, nil
}

// POST /api/tuition-events
func (ctrl *TuitionEventController) Create(c *fiber.Ctx) error {
	who, err := caller(c)
	if err != nil {
		return err
	}

	var req dto.CreateEventRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request format")
	}
	if fieldErrors, err := helper.Validate(req); err != nil {
		return err
	} else if fieldErrors != nil {
		return helper.JsonValidationError(c, fieldErrors)
	}

	event, err := ctrl.Service.Create(who, req)
	if err != nil {
		return err
	}
	return helper.JsonCreated(c, "Event created successfully", fiber.Map{
		"event": dto.ToEventResponse(event),
	})
}

// POST /api/tuition-events/respond/:id
func (ctrl *TuitionEventController) Respond(c *fiber.Ctx) error {
	who, err := caller(c)
	if err != nil {
		return err
	}
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Tuition event not found.")
	}

	var req dto.RespondEventRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request format")
	}
	if fieldErrors, err := helper.Validate(req); err != nil {
		return err
	} else if fieldErrors != nil {
		return helper.JsonValidationError(c, fieldErrors)
	}

	event, err := ctrl.Service.Respond(who, id, req.Status)
	if err != nil {
		return err
	}
	return helper.JsonOK(c, "Event "+event.Status, fiber.Map{
		"event": dto.ToEventResponse(event),
	})
}

// GET /api/tuition-events/my
func (ctrl *TuitionEventController) MyEvents(c *fiber.Ctx) error {
	who, err := caller(c)
	if err != nil {
		return err
	}

	events, err := ctrl.Service.GetMyEvents(who)
	if err != nil {
		return err
	}
	return helper.JsonOK(c, "My events loaded", fiber.Map{
		"events": dto.ToEventResponseList(events),
	})
}

// GET /api/tuition-events/pending
func (ctrl *TuitionEventController) PendingEvents(c *fiber.Ctx) error {
	who, err := caller(c)
	if err != nil {
		return err
	}

	events, err := ctrl.Service.GetPendingEvents(who)
	if err != nil {
		return err
	}
	return helper.JsonOK(c, "Pending events loaded", fiber.Map{
		"events": dto.ToEventResponseList(events),
	})
}

// GET /api/tuition-events/student?student_id=...
func (ctrl *TuitionEventController) WithStudent(c *fiber.Ctx) error {
	who, err := caller(c)
	if err != nil {
		return err
	}
	studentID, err := uuid.Parse(c.Query("student_id"))
	if err != nil {
		return helper.JsonValidationError(c, map[string][]string{
			"student_id": {"The student id must be a valid id."},
		})
	}

	events, err := ctrl.Service.GetEventsWithStudent(who, studentID)
	if err != nil {
		return err
	}
	return helper.JsonOK(c, "Events with specific student loaded", fiber.Map{
		"events": dto.ToEventResponseList(events),
	})
}

// GET /api/tuition-events/teacher?teacher_id=...
func (ctrl *TuitionEventController) WithTeacher(c *fiber.Ctx) error {
	who, err := caller(c)
	if err != nil {
		return err
	}
	teacherID, err := uuid.Parse(c.Query("teacher_id"))
	if err != nil {
		return helper.JsonValidationError(c, map[string][]string{
			"teacher_id": {"The teacher id must be a valid id."},
		})
	}

	events, err := ctrl.Service.GetEventsWithTeacher(who, teacherID)
	if err != nil {
		return err
	}
	return helper.JsonOK(c, "Events with specific teacher loaded", fiber.Map{
		"events": dto.ToEventResponseList(events),
	})
}
