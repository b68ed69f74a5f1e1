package helper

import (
	"sort"
	"strings"

	"github.com/gofiber/fiber/v2"
)

/* ===============================
   Response envelope

   Every endpoint answers with the same shape:
   {status: "success"|"error", message, data, errors?}
=================================*/

// JsonOK: generic success (GET detail, responses to updates with messages)
func JsonOK(c *fiber.Ctx, message string, data any) error {
	return jsonSuccess(c, fiber.StatusOK, message, data)
}

// JsonCreated: success for create (POST)
func JsonCreated(c *fiber.Ctx, message string, data any) error {
	return jsonSuccess(c, fiber.StatusCreated, message, data)
}

// JsonUpdated: success for update (PATCH/PUT)
func JsonUpdated(c *fiber.Ctx, message string, data any) error {
	return jsonSuccess(c, fiber.StatusOK, message, data)
}

// JsonList: list payload plus pagination block inside data
func JsonList(c *fiber.Ctx, message string, key string, items any, pagination Pagination) error {
	return jsonSuccess(c, fiber.StatusOK, message, fiber.Map{
		key:          items,
		"pagination": pagination,
	})
}

func jsonSuccess(c *fiber.Ctx, status int, message string, data any) error {
	if strings.TrimSpace(message) == "" {
		message = "ok"
	}
	return c.Status(status).JSON(fiber.Map{
		"status":  "success",
		"message": message,
		"data":    data,
	})
}

// JsonError: non-validation error envelope
func JsonError(c *fiber.Ctx, status int, message string) error {
	if status == 0 {
		status = fiber.StatusInternalServerError
	}
	if strings.TrimSpace(message) == "" {
		message = fiber.ErrInternalServerError.Message
	}
	return c.Status(status).JSON(fiber.Map{
		"status":  "error",
		"message": message,
		"data":    nil,
	})
}

// JsonValidationError: 422 with field errors; the first field message is
// surfaced as the top-level message.
func JsonValidationError(c *fiber.Ctx, fieldErrors map[string][]string) error {
	message := "The given data was invalid."
	keys := make([]string, 0, len(fieldErrors))
	for k := range fieldErrors {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		if msgs := fieldErrors[k]; len(msgs) > 0 {
			message = msgs[0]
			break
		}
	}
	return c.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{
		"status":  "error",
		"message": message,
		"data":    nil,
		"errors":  fieldErrors,
	})
}
