package routes

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	tariffController "listrikku_backend/internals/features/billing/tariffs/controller"
)

func TariffAdminRoutes(r fiber.Router, db *gorm.DB) {
	ctrl := tariffController.NewTariffController(db)

	tariffs := r.Group("/tariffs")
	tariffs.Get("/", ctrl.List)
}
