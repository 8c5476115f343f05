package middleware

import (
	"errors"
	"fmt"

	pkgError "github.com/AzielCF/az-access/pkg/error"
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

// Recovery turns a panic in a handler into a JSON error response.
func Recovery() fiber.Handler {
	return func(ctx *fiber.Ctx) (err error) {
		defer func() {
			rec := recover()
			if rec == nil {
				return
			}

			logrus.WithField("request_id", ctx.Locals("requestid")).
				Errorf("[REST] Panic recovered on %s %s: %v", ctx.Method(), ctx.Path(), rec)

			recErr, ok := rec.(error)
			if !ok {
				recErr = fmt.Errorf("%v", rec)
			}
			err = WriteError(ctx, recErr)
		}()

		return ctx.Next()
	}
}

// ErrorHandler is the fiber.Config.ErrorHandler for errors that escape a handler.
func ErrorHandler(ctx *fiber.Ctx, err error) error {
	var fiberErr *fiber.Error
	if errors.As(err, &fiberErr) {
		return ctx.Status(fiberErr.Code).JSON(fiber.Map{"error": fiberErr.Message})
	}
	return WriteError(ctx, err)
}

// WriteError renders err with the status it carries, 500 otherwise.
func WriteError(ctx *fiber.Ctx, err error) error {
	var vErr pkgError.ValidationError
	if errors.As(err, &vErr) {
		return ctx.Status(vErr.StatusCode()).JSON(fiber.Map{
			"message": pkgError.ValidationMessage,
			"errors":  vErr.Fields,
		})
	}

	var gErr pkgError.GenericError
	if errors.As(err, &gErr) {
		return ctx.Status(gErr.StatusCode()).JSON(fiber.Map{"error": gErr.Error()})
	}

	return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
}
