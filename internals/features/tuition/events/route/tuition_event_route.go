package route

import (
	"github.com/gofiber/fiber/v2"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	notifService "github.com/sam002696/tuition-management-backend/internals/features/home/notifications/service"
	"github.com/sam002696/tuition-management-backend/internals/features/tuition/events/controller"
	"github.com/sam002696/tuition-management-backend/internals/features/tuition/events/service"
)

func TuitionEventRoutes(private fiber.Router, db *gorm.DB, rdb *redis.Client) {
	ctrl := controller.NewTuitionEventController(
		service.NewTuitionEventService(db, notifService.NewNotifier(db, rdb)),
	)

	events := private.Group("/tuition-events")
	events.Post("/", ctrl.Create)
	events.Post("/respond/:id", ctrl.Respond)
	events.Get("/my", ctrl.MyEvents)
	events.Get("/pending", ctrl.PendingEvents)
	events.Get("/student", ctrl.WithStudent)
	events.Get("/teacher", ctrl.WithTeacher)
}
