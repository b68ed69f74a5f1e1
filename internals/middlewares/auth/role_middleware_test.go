package auth

import (
	"encoding/json"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	helper "github.com/sam002696/tuition-management-backend/internals/helpers"
)

func newGuardedApp(role string) *fiber.App {
	app := fiber.New(fiber.Config{
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			code := fiber.StatusInternalServerError
			message := "Internal server error"
			if fe, ok := err.(*fiber.Error); ok {
				code = fe.Code
				message = fe.Message
			}
			return helper.JsonError(c, code, message)
		},
	})
	app.Use(func(c *fiber.Ctx) error {
		if role != "" {
			c.Locals(helper.LocUserRole, role)
		}
		return c.Next()
	})
	app.Get("/teacher/home",
		OnlyRoles("Only teachers can access the dashboard.", "teacher"),
		func(c *fiber.Ctx) error {
			return helper.JsonOK(c, "ok", nil)
		},
	)
	return app
}

func TestOnlyRoles(t *testing.T) {
	t.Run("allowed role passes through", func(t *testing.T) {
		app := newGuardedApp("teacher")
		resp, err := app.Test(httptest.NewRequest("GET", "/teacher/home", nil))
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	})

	t.Run("wrong role gets a 403 envelope", func(t *testing.T) {
		app := newGuardedApp("student")
		resp, err := app.Test(httptest.NewRequest("GET", "/teacher/home", nil))
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusForbidden, resp.StatusCode)

		var body struct {
			Status  string `json:"status"`
			Message string `json:"message"`
		}
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
		assert.Equal(t, "error", body.Status)
		assert.Equal(t, "Only teachers can access the dashboard.", body.Message)
	})

	t.Run("missing identity gets a 401", func(t *testing.T) {
		app := newGuardedApp("")
		resp, err := app.Test(httptest.NewRequest("GET", "/teacher/home", nil))
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
	})
}
