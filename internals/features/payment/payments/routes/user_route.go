package routes

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	paymentController "listrikku_backend/internals/features/payment/payments/controller"
)

// PaymentUserRoutes: jalur pembayaran pelanggan, group /api/u.
func PaymentUserRoutes(r fiber.Router, db *gorm.DB) {
	ctrl := paymentController.NewPaymentController(db)

	r.Get("/bills/:id/pay", ctrl.CustomerCheckout)
	r.Post("/bills/:id/simulate", ctrl.CustomerSimulatePay)
}
