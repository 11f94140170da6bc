package helpers

import (
	"fmt"

	"tourism-service/internal/pkg/errors"

	"github.com/gofiber/fiber/v2"
	"github.com/uptrace/opentelemetry-go-extra/otelzap"
)

type Response struct {
	Message string      `json:"message"`
	Data    interface{} `json:"data,omitempty"`
}

func RespSuccess(ctx *fiber.Ctx, log *otelzap.Logger, data interface{}, message string) error {
	return respond(ctx, log, fiber.StatusOK, data, message)
}

func RespCreated(ctx *fiber.Ctx, log *otelzap.Logger, data interface{}, message string) error {
	return respond(ctx, log, fiber.StatusCreated, data, message)
}

func RespAccepted(ctx *fiber.Ctx, log *otelzap.Logger, data interface{}, message string) error {
	return respond(ctx, log, fiber.StatusAccepted, data, message)
}

// RespError writes err with the status of its CustomError kind. Unknown errors are
// reported as 500 without leaking their text.
func RespError(ctx *fiber.Ctx, log *otelzap.Logger, err error) error {
	code := errors.Code(err)
	message := err.Error()
	if code == fiber.StatusInternalServerError {
		message = "internal server error"
		if log != nil {
			log.Ctx(ctx.UserContext()).Error(fmt.Sprintf("internal error: %v", err))
		}
	}

	return ctx.Status(code).JSON(Response{Message: message})
}

func respond(ctx *fiber.Ctx, log *otelzap.Logger, status int, data interface{}, message string) error {
	if err := ctx.Status(status).JSON(Response{Message: message, Data: data}); err != nil {
		if log != nil {
			log.Ctx(ctx.UserContext()).Error(fmt.Sprintf("error write response: %v", err))
		}
		return err
	}
	return nil
}
