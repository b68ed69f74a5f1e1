package controller

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/sam002696/tuition-management-backend/internals/features/home/notifications/dto"
	"github.com/sam002696/tuition-management-backend/internals/features/home/notifications/model"
	helper "github.com/sam002696/tuition-management-backend/internals/helpers"
)

type NotificationController struct {
	DB *gorm.DB
}

func NewNotificationController(db *gorm.DB) *NotificationController {
	return &NotificationController{DB: db}
}

// GET /api/users/:userId/notifications
func (ctrl *NotificationController) Index(c *fiber.Ctx) error {
	authID, err := helper.GetUserID(c)
	if err != nil {
		return err
	}
	targetID, err := uuid.Parse(c.Params("userId"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "User not found.")
	}
	if authID != targetID {
		return fiber.NewError(fiber.StatusForbidden, "Unauthorized access to notifications.")
	}

	var notifs []model.NotificationModel
	if err := ctrl.DB.
		Where("user_id = ?", targetID).
		Order("created_at DESC").
		Find(&notifs).Error; err != nil {
		return err
	}

	return helper.JsonOK(c, "Notifications retrieved successfully.", fiber.Map{
		"notifications": dto.ToNotificationResponseList(notifs),
	})
}

// POST /api/users/:userId/notifications/read-all
func (ctrl *NotificationController) MarkAllAsRead(c *fiber.Ctx) error {
	authID, err := helper.GetUserID(c)
	if err != nil {
		return err
	}
	targetID, err := uuid.Parse(c.Params("userId"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "User not found.")
	}
	if authID != targetID {
		return fiber.NewError(fiber.StatusForbidden, "Unauthorized access to notifications.")
	}

	now := time.Now().UTC()
	if err := ctrl.DB.Model(&model.NotificationModel{}).
		Where("user_id = ? AND read_at IS NULL", targetID).
		Update("read_at", now).Error; err != nil {
		return err
	}
	return helper.JsonOK(c, "All notifications marked as read.", nil)
}
