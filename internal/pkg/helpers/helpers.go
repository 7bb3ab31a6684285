package helpers

import (
	stderrors "errors"
	"fmt"

	"salon-booking-service/internal/pkg/errors"

	"github.com/gofiber/fiber/v2"
	"github.com/uptrace/opentelemetry-go-extra/otelzap"
)

type Response struct {
	Data    interface{} `json:"data,omitempty"`
	Message string      `json:"message"`
}

func RespSuccess(ctx *fiber.Ctx, log *otelzap.Logger, data interface{}, message string) error {
	return ctx.Status(fiber.StatusOK).JSON(Response{
		Data:    data,
		Message: message,
	})
}

func RespError(ctx *fiber.Ctx, log *otelzap.Logger, err error) error {
	var resp *errors.ErrorResp
	if stderrors.As(err, &resp) {
		return ctx.Status(resp.Code).JSON(Response{
			Message: resp.Message,
		})
	}

	log.Ctx(ctx.UserContext()).Error(fmt.Sprintf("unhandled error: %v", err))
	return ctx.Status(fiber.StatusInternalServerError).JSON(Response{
		Message: "internal server error",
	})
}
