package routes

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	billController "listrikku_backend/internals/features/billing/bills/controller"
)

// BillAdminRoutes: dipasang di group /api/a (sudah lewat AuthJWT + role admin).
func BillAdminRoutes(r fiber.Router, db *gorm.DB) {
	ctrl := billController.NewBillController(db)

	bills := r.Group("/bills")
	bills.Get("/", ctrl.List)
	bills.Get("/:id", ctrl.GetByID)
}
