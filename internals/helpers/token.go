package helper

import (
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"

	"github.com/sam002696/tuition-management-backend/internals/configs"
)

const accessTokenTTL = 5 * 24 * time.Hour

// Locals keys set by the auth middleware.
const (
	LocUserID   = "user_id"
	LocUserRole = "user_role"
	LocUserName = "user_name"
)

// CreateAccessToken issues the bearer token handed out at login.
func CreateAccessToken(userID uuid.UUID, role, name string) (string, error) {
	secret := strings.TrimSpace(configs.JWTSecret)
	if secret == "" {
		return "", fiber.NewError(fiber.StatusInternalServerError, "JWT_SECRET is not set")
	}

	now := time.Now().UTC()
	claims := jwt.MapClaims{
		"user_id": userID.String(),
		"role":    role,
		"name":    name,
		"iat":     now.Unix(),
		"exp":     now.Add(accessTokenTTL).Unix(),
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
}

// ParseAccessToken verifies signature and expiry and returns the claims.
func ParseAccessToken(raw string) (jwt.MapClaims, error) {
	secret := strings.TrimSpace(configs.JWTSecret)
	if secret == "" {
		return nil, fiber.NewError(fiber.StatusInternalServerError, "JWT_SECRET is not set")
	}

	claims := jwt.MapClaims{}
	_, err := jwt.ParseWithClaims(raw, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return []byte(secret), nil
	})
	if err != nil {
		return nil, err
	}
	return claims, nil
}

// GetRawAccessToken pulls the bearer token from the Authorization header.
func GetRawAccessToken(c *fiber.Ctx) string {
	const p = "Bearer "
	auth := strings.TrimSpace(c.Get("Authorization"))
	if len(auth) > len(p) && strings.HasPrefix(auth, p) {
		return strings.TrimSpace(auth[len(p):])
	}
	return ""
}

// GetUserID reads the authenticated user id set by the auth middleware.
func GetUserID(c *fiber.Ctx) (uuid.UUID, error) {
	raw, ok := c.Locals(LocUserID).(string)
	if !ok || raw == "" {
		return uuid.Nil, fiber.NewError(fiber.StatusUnauthorized, "Unauthenticated.")
	}
	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, fiber.NewError(fiber.StatusUnauthorized, "Unauthenticated.")
	}
	return id, nil
}

func GetUserRole(c *fiber.Ctx) string {
	role, _ := c.Locals(LocUserRole).(string)
	return role
}

func GetUserName(c *fiber.Ctx) string {
	name, _ := c.Locals(LocUserName).(string)
	return name
}
