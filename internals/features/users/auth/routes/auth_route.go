package routes

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	authCtl "listrikku_backend/internals/features/users/auth/controller"
	"listrikku_backend/internals/configs"
	middlewares "listrikku_backend/internals/middlewares"
	authMw "listrikku_backend/internals/middlewares/auth"
)

func AuthRoutes(api fiber.Router, db *gorm.DB) {
	ctl := authCtl.NewAuthController(db)

	api.Post("/login", middlewares.LoginRateLimiter(), ctl.Login)
	api.Post("/logout", ctl.Logout)

	api.Get("/me",
		authMw.AuthJWT(authMw.AuthJWTOpts{
			Secret:              configs.JWTSecret,
			AllowCookieFallback: true,
		}),
		ctl.Me,
	)
}
