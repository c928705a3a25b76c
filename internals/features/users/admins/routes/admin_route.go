package routes

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	adminController "listrikku_backend/internals/features/users/admins/controller"
)

func AdminAdminRoutes(r fiber.Router, db *gorm.DB) {
	ctrl := adminController.NewAdminController(db)

	admins := r.Group("/admins")
	admins.Get("/", ctrl.List)
	admins.Post("/", ctrl.Create)
	admins.Get("/:id", ctrl.GetByID)
	admins.Put("/:id", ctrl.Update)
	admins.Delete("/:id", ctrl.Delete)
}
