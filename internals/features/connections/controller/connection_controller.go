package controller

import (
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/sam002696/tuition-management-backend/internals/features/connections/dto"
	"github.com/sam002696/tuition-management-backend/internals/features/connections/service"
	userDTO "github.com/sam002696/tuition-management-backend/internals/features/users/user/dto"
	helper "github.com/sam002696/tuition-management-backend/internals/helpers"
)

type ConnectionController struct {
	Service *service.ConnectionService
}

func NewConnectionController(svc *service.ConnectionService) *ConnectionController {
	return &ConnectionController{Service: svc}
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

// POST /api/connection/find-student
func (ctrl *ConnectionController) FindStudent(c *fiber.Ctx) error {
	who, err := caller(c)
	if err != nil {
		return err
	}

	var req dto.FindStudentRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request format")
	}
	if fieldErrors, err := helper.Validate(req); err != nil {
		return err
	} else if fieldErrors != nil {
		return helper.JsonValidationError(c, fieldErrors)
	}

	student, err := ctrl.Service.FindStudentByCustomID(who, req.CustomID)
	if err != nil {
		return err
	}
	return helper.JsonCreated(c, "Student details fetched successfully", fiber.Map{
		"details": userDTO.ToUserResponse(student),
	})
}

// POST /api/connection/send
func (ctrl *ConnectionController) Send(c *fiber.Ctx) error {
	who, err := caller(c)
	if err != nil {
		return err
	}

	var req dto.SendRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request format")
	}
	if fieldErrors, err := helper.Validate(req); err != nil {
		return err
	} else if fieldErrors != nil {
		return helper.JsonValidationError(c, fieldErrors)
	}

	connection, err := ctrl.Service.SendRequest(who, req)
	if err != nil {
		return err
	}
	return helper.JsonCreated(c, "Connection request sent successfully", fiber.Map{
		"connection": dto.ToConnectionResponse(connection),
	})
}

// POST /api/connection/respond/:id
func (ctrl *ConnectionController) Respond(c *fiber.Ctx) error {
	who, err := caller(c)
	if err != nil {
		return err
	}
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Connection request not found.")
	}

	var req dto.RespondRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request format")
	}
	if fieldErrors, err := helper.Validate(req); err != nil {
		return err
	} else if fieldErrors != nil {
		return helper.JsonValidationError(c, fieldErrors)
	}

	connection, err := ctrl.Service.RespondToRequest(who, id, req.Status)
	if err != nil {
		return err
	}
	return helper.JsonOK(c, "Request "+connection.Status, fiber.Map{
		"connection": dto.ToConnectionResponse(connection),
	})
}

// GET /api/connections
func (ctrl *ConnectionController) List(c *fiber.Ctx) error {
	who, err := caller(c)
	if err != nil {
		return err
	}

	var status *string
	if v := strings.TrimSpace(c.Query("status")); v != "" {
		status = &v
	}
	var isActive *bool
	if v := strings.TrimSpace(c.Query("is_active")); v != "" {
		parsed, err := strconv.ParseBool(v)
		if err != nil {
			return helper.JsonValidationError(c, map[string][]string{
				"is_active": {"The is active field must be true or false."},
			})
		}
		isActive = &parsed
	}

	paging := helper.ResolvePaging(c, 10)
	rows, total, err := ctrl.Service.GetFilteredConnections(who, status, isActive, c.Query("search"), paging)
	if err != nil {
		return err
	}
	return helper.JsonList(c, "Connection requests fetched successfully",
		"connections", dto.ToConnectionResponseList(rows),
		helper.BuildPagination(total, paging.Page, paging.PerPage))
}

// GET /api/connections/:id
func (ctrl *ConnectionController) Show(c *fiber.Ctx) error {
	who, err := caller(c)
	if err != nil {
		return err
	}
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Connection not found.")
	}

	connection, err := ctrl.Service.GetMineByID(who, id)
	if err != nil {
		return err
	}
	return helper.JsonOK(c, "Connection request fetched successfully", fiber.Map{
		"connection": dto.ToConnectionResponse(connection),
	})
}

// GET /api/connection/my-pending-requests
func (ctrl *ConnectionController) MyPending(c *fiber.Ctx) error {
	who, err := caller(c)
	if err != nil {
		return err
	}

	rows, err := ctrl.Service.GetUserPendingRequests(who)
	if err != nil {
		return err
	}
	return helper.JsonOK(c, "Connection requests fetched", fiber.Map{
		"requests": dto.ToConnectionResponseList(rows),
	})
}

// GET /api/connection/my-accepted-requests
func (ctrl *ConnectionController) MyAccepted(c *fiber.Ctx) error {
	who, err := caller(c)
	if err != nil {
		return err
	}

	paging := helper.ResolvePaging(c, 5)
	rows, total, err := ctrl.Service.GetAcceptedActiveConnections(who, c.Query("search"), paging)
	if err != nil {
		return err
	}
	return helper.JsonList(c, "Accepted & active connections fetched successfully",
		"connections", dto.ToConnectionResponseList(rows),
		helper.BuildPagination(total, paging.Page, paging.PerPage))
}

// POST /api/connection/check-connection-status
func (ctrl *ConnectionController) CheckStatus(c *fiber.Ctx) error {
	who, err := caller(c)
	if err != nil {
		return err
	}

	var req dto.CheckStatusRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request format")
	}
	if fieldErrors, err := helper.Validate(req); err != nil {
		return err
	} else if fieldErrors != nil {
		return helper.JsonValidationError(c, fieldErrors)
	}

	status, err := ctrl.Service.CheckConnectionStatus(who, req.CustomID)
	if err != nil {
		return err
	}
	return helper.JsonOK(c, "Connection status fetched successfully", fiber.Map{
		"status": status,
	})
}

// PATCH /api/connections/:id/disconnect
func (ctrl *ConnectionController) Disconnect(c *fiber.Ctx) error {
	who, err := caller(c)
	if err != nil {
		return err
	}
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Connection not found or already inactive")
	}

	connection, err := ctrl.Service.DisconnectConnection(who, id)
	if err != nil {
		return err
	}
	return helper.JsonOK(c, "Connection disconnected successfully.", fiber.Map{
		"connection": dto.ToConnectionResponse(connection),
	})
}

// GET /api/connections/count
func (ctrl *ConnectionController) Count(c *fiber.Ctx) error {
	who, err := caller(c)
	if err != nil {
		return err
	}

	counts, err := ctrl.Service.GetConnectionCounts(who)
	if err != nil {
		return err
	}
	return helper.JsonOK(c, "Connection count fetched successfully.", fiber.Map{
		"connection_count": counts,
	})
}
