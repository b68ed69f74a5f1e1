package auth

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
	"gorm.io/gorm"

	userModel "github.com/sam002696/tuition-management-backend/internals/features/users/user/model"
	helper "github.com/sam002696/tuition-management-backend/internals/helpers"
)

// AuthMiddleware verifies the bearer token and loads the caller into Locals.
func AuthMiddleware(db *gorm.DB) fiber.Handler {
	return func(c *fiber.Ctx) error {
		raw := helper.GetRawAccessToken(c)
		if raw == "" {
			return fiber.NewError(fiber.StatusUnauthorized, "Unauthenticated.")
		}

		claims, err := helper.ParseAccessToken(raw)
		if err != nil {
			return fiber.NewError(fiber.StatusUnauthorized, "Unauthenticated.")
		}
		if err := validateExpiry(claims); err != nil {
			return fiber.NewError(fiber.StatusUnauthorized, "Unauthenticated.")
		}

		userID, err := extractUserID(claims)
		if err != nil {
			return fiber.NewError(fiber.StatusUnauthorized, "Unauthenticated.")
		}

		// Token may outlive the account; confirm the user still exists.
		var user userModel.UserModel
		if err := db.Select("id", "name", "role").First(&user, "id = ?", userID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fiber.NewError(fiber.StatusUnauthorized, "Unauthenticated.")
			}
			return fiber.NewError(fiber.StatusInternalServerError, "Internal Server Error")
		}

		c.Locals(helper.LocUserID, user.ID.String())
		c.Locals(helper.LocUserRole, user.Role)
		c.Locals(helper.LocUserName, user.Name)
		return c.Next()
	}
}

func validateExpiry(claims jwt.MapClaims) error {
	exp, ok := claims["exp"].(float64)
	if !ok {
		return errors.New("missing exp claim")
	}
	if time.Now().UTC().After(time.Unix(int64(exp), 0)) {
		return errors.New("token expired")
	}
	return nil
}

func extractUserID(claims jwt.MapClaims) (uuid.UUID, error) {
	raw, ok := claims["user_id"].(string)
	if !ok || raw == "" {
		return uuid.Nil, errors.New("missing user_id claim")
	}
	return uuid.Parse(raw)
}
