package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/sam002696/tuition-management-backend/internals/features/home/teacher/controller"
)

func TeacherHomeRoutes(teacherOnly fiber.Router, db *gorm.DB) {
	ctrl := controller.NewDashboardController(db)

	teacherOnly.Get("/teacher/home", ctrl.Home)
}
