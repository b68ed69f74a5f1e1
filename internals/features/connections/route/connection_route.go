package route

import (
	"github.com/gofiber/fiber/v2"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"github.com/sam002696/tuition-management-backend/internals/features/connections/controller"
	"github.com/sam002696/tuition-management-backend/internals/features/connections/service"
	notifService "github.com/sam002696/tuition-management-backend/internals/features/home/notifications/service"
)

func ConnectionRoutes(private fiber.Router, db *gorm.DB, rdb *redis.Client) {
	ctrl := controller.NewConnectionController(
		service.NewConnectionService(db, notifService.NewNotifier(db, rdb)),
	)

	connection := private.Group("/connection")
	connection.Post("/find-student", ctrl.FindStudent)
	connection.Post("/send", ctrl.Send)
	connection.Post("/respond/:id", ctrl.Respond)
	connection.Get("/my-pending-requests", ctrl.MyPending)
	connection.Get("/my-accepted-requests", ctrl.MyAccepted)
	connection.Post("/check-connection-status", ctrl.CheckStatus)

	connections := private.Group("/connections")
	connections.Get("/", ctrl.List)
	connections.Get("/count", ctrl.Count) // before :id so "count" never parses as an id
	connections.Get("/:id", ctrl.Show)
	connections.Patch("/:id/disconnect", ctrl.Disconnect)
}
