package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/sam002696/tuition-management-backend/internals/features/home/notifications/controller"
)

func NotificationRoutes(private fiber.Router, db *gorm.DB) {
	ctrl := controller.NewNotificationController(db)

	users := private.Group("/users")
	users.Get("/:userId/notifications", ctrl.Index)
	users.Post("/:userId/notifications/read-all", ctrl.MarkAllAsRead)
}
