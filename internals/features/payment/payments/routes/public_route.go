package routes

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	paymentController "listrikku_backend/internals/features/payment/payments/controller"
)

// PaymentPublicRoutes: webhook gateway, tanpa JWT (Midtrans yang memanggil).
func PaymentPublicRoutes(r fiber.Router, db *gorm.DB) {
	ctrl := paymentController.NewPaymentController(db)

	r.Post("/payments/notify", ctrl.Webhook)
}
