package handler

import (
	"errors"
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/GoWoWonder-Admin/GoWoWonder-Admin/internal/db/controller/sitesettings"
)

// ErrorResponse is the body of every failed request.
type ErrorResponse struct {
	Error  string                    `json:"error"`
	Fields []sitesettings.FieldError `json:"fields,omitempty"`
}

// Error writes msg with status.
func Error(c *fiber.Ctx, status int, msg string) error {
	return c.Status(status).JSON(ErrorResponse{Error: msg})
}

// BadRequest writes a 400 for err. Validation errors list the invalid fields.
func BadRequest(c *fiber.Ctx, err error) error {
	var verr *sitesettings.ValidationError
	if errors.As(err, &verr) {
		return c.Status(fiber.StatusBadRequest).JSON(ErrorResponse{Error: "validation failed", Fields: verr.Fields})
	}

	return Error(c, fiber.StatusBadRequest, err.Error())
}

// ParamID reads a positive numeric route parameter.
func ParamID(c *fiber.Ctx, name string) (uint64, bool) {
	id, err := strconv.ParseUint(c.Params(name), 10, 64)
	if err != nil || id == 0 {
		return 0, false
	}

	return id, true
}
