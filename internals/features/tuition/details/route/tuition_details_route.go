package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/sam002696/tuition-management-backend/internals/features/tuition/details/controller"
	"github.com/sam002696/tuition-management-backend/internals/features/tuition/details/service"
)

func TuitionDetailsRoutes(private fiber.Router, db *gorm.DB) {
	ctrl := controller.NewTuitionDetailsController(service.NewTuitionDetailsService(db))

	details := private.Group("/tuition-details")
	details.Post("/", ctrl.Create)
	details.Get("/teacher/:teacherId/student/:studentId", ctrl.ShowByPair)
	details.Get("/:id", ctrl.Show)
	details.Patch("/:id", ctrl.Update)
}
