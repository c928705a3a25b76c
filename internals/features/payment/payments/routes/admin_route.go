package routes

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	paymentController "listrikku_backend/internals/features/payment/payments/controller"
)

// PaymentAdminRoutes: jalur kasir + riwayat, group /api/a.
func PaymentAdminRoutes(r fiber.Router, db *gorm.DB) {
	ctrl := paymentController.NewPaymentController(db)

	r.Post("/bills/:id/mark-paid", ctrl.AdminMarkPaid)
	r.Get("/payments/recent", ctrl.ListRecent)
}
