package controller

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/sam002696/tuition-management-backend/internals/features/tuition/details/dto"
	"github.com/sam002696/tuition-management-backend/internals/features/tuition/details/service"
	helper "github.com/sam002696/tuition-management-backend/internals/helpers"
)

type TuitionDetailsController struct {
	Service *service.TuitionDetailsService
}

func NewTuitionDetailsController(svc *service.TuitionDetailsService) *TuitionDetailsController {
	return &TuitionDetailsController{Service: svc}
}

// POST /api/tuition-details
func (ctrl *TuitionDetailsController) Create(c *fiber.Ctx) error {
	var req dto.CreateTuitionDetailsRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request format")
	}
	if fieldErrors, err := helper.Validate(req); err != nil {
		return err
	} else if fieldErrors != nil {
		return helper.JsonValidationError(c, fieldErrors)
	}

	details, err := ctrl.Service.Create(req)
	if err != nil {
		return err
	}
	return helper.JsonCreated(c, "Tuition details created successfully", fiber.Map{
		"tuition_details": details,
	})
}

// PATCH /api/tuition-details/:id
func (ctrl *TuitionDetailsController) Update(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Tuition details not found.")
	}

	var req dto.UpdateTuitionDetailsRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request format")
	}

	details, err := ctrl.Service.Update(id, req)
	if err != nil {
		return err
	}
	return helper.JsonUpdated(c, "Tuition details updated successfully", fiber.Map{
		"tuition_details": details,
	})
}

// GET /api/tuition-details/:id
func (ctrl *TuitionDetailsController) Show(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Tuition details not found.")
	}

	details, err := ctrl.Service.GetByID(id)
	if err != nil {
		return err
	}
	return helper.JsonOK(c, "Tuition details fetched successfully", fiber.Map{
		"tuition_details": details,
	})
}

// GET /api/tuition-details/teacher/:teacherId/student/:studentId
func (ctrl *TuitionDetailsController) ShowByPair(c *fiber.Ctx) error {
	teacherID, err := uuid.Parse(c.Params("teacherId"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Tuition details not found.")
	}
	studentID, err := uuid.Parse(c.Params("studentId"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Tuition details not found.")
	}

	details, err := ctrl.Service.GetByTeacherAndStudent(teacherID, studentID)
	if err != nil {
		return err
	}
	return helper.JsonOK(c, "Tuition details fetched successfully", fiber.Map{
		"tuition_details": details,
	})
}
