package routes

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	usageController "listrikku_backend/internals/features/billing/usages/controller"
)

// UsageAdminRoutes: pencatatan meter hanya untuk admin.
func UsageAdminRoutes(r fiber.Router, db *gorm.DB) {
	ctrl := usageController.NewUsageController(db)

	usages := r.Group("/usages")
	usages.Get("/", ctrl.List)
	usages.Post("/", ctrl.Create)
	usages.Get("/last/:customer_id", ctrl.LastFor)
	usages.Get("/:id", ctrl.GetByID)
	usages.Put("/:id", ctrl.Update)
	usages.Delete("/:id", ctrl.Delete)
}
