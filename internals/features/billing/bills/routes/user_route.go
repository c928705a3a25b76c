package routes

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	billController "listrikku_backend/internals/features/billing/bills/controller"
)

// BillUserRoutes: dipasang di group /api/u (role pelanggan).
func BillUserRoutes(r fiber.Router, db *gorm.DB) {
	ctrl := billController.NewBillController(db)

	bills := r.Group("/bills")
	bills.Get("/", ctrl.ListMine)
	bills.Get("/:id", ctrl.GetMine)
	bills.Get("/:id/proof.pdf", ctrl.DownloadProof)
}
