package controller

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/sam002696/tuition-management-backend/internals/features/home/teacher/service"
	helper "github.com/sam002696/tuition-management-backend/internals/helpers"
)

type DashboardController struct {
	Service *service.DashboardService
}

func NewDashboardController(db *gorm.DB) *DashboardController {
	return &DashboardController{Service: service.NewDashboardService(db)}
}

// Home handles GET /teacher/home?date=YYYY-MM-DD.
func (ctrl *DashboardController) Home(c *fiber.Ctx) error {
	id, err := helper.GetUserID(c)
	if err != nil {
		return err
	}
	caller := service.Caller{ID: id, Role: helper.GetUserRole(c)}
	resp, err := ctrl.Service.Dashboard(caller, c.Query("date"))
	if err != nil {
		return err
	}
	return helper.JsonOK(c, "Teacher home loaded successfully", resp)
}
