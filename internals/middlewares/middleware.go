package middlewares

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	helper "listrikku_backend/internals/helpers"
	"listrikku_backend/internals/middlewares/logger"
)

// SetupMiddlewares memasang middleware global (urutan penting).
func SetupMiddlewares(app *fiber.App) {
	app.Use(RecoveryMiddleware())
	app.Use(CorsMiddleware())
	app.Use(logger.LoggerMiddleware())
	app.Use(GlobalRateLimiter())
}

// ErrorHandler merender *fiber.Error (dan error lain) ke envelope JSON standar.
func ErrorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	msg := "Internal Server Error"

	var fe *fiber.Error
	if errors.As(err, &fe) {
		code = fe.Code
		msg = fe.Message
	}
	return helper.JsonError(c, code, msg)
}
