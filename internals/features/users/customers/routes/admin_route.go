package routes

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	customerController "listrikku_backend/internals/features/users/customers/controller"
)

// CustomerAdminRoutes: pelanggan tidak bisa dihapus - riwayat tagihan dan
// pembayarannya harus tetap bisa ditelusuri.
func CustomerAdminRoutes(r fiber.Router, db *gorm.DB) {
	ctrl := customerController.NewCustomerController(db)

	customers := r.Group("/customers")
	customers.Get("/", ctrl.List)
	customers.Post("/", ctrl.Create)
	customers.Get("/:id", ctrl.GetByID)
	customers.Put("/:id", ctrl.Update)
}
