package routes

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"listrikku_backend/internals/configs"
	billRoutes "listrikku_backend/internals/features/billing/bills/routes"
	tariffRoutes "listrikku_backend/internals/features/billing/tariffs/routes"
	usageRoutes "listrikku_backend/internals/features/billing/usages/routes"
	paymentRoutes "listrikku_backend/internals/features/payment/payments/routes"
	reportRoutes "listrikku_backend/internals/features/reports/routes"
	adminRoutes "listrikku_backend/internals/features/users/admins/routes"
	authRoutes "listrikku_backend/internals/features/users/auth/routes"
	customerRoutes "listrikku_backend/internals/features/users/customers/routes"
	helper "listrikku_backend/internals/helpers"
	authMw "listrikku_backend/internals/middlewares/auth"
)

// SetupRoutes menggantung seluruh fitur pada tiga group:
//
//	/api    → publik (login, webhook gateway)
//	/api/a  → admin  (JWT + role admin)
//	/api/u  → pelanggan (JWT + role pelanggan)
func SetupRoutes(app *fiber.App, db *gorm.DB) {
	api := app.Group("/api")

	// --- publik ---
	authRoutes.AuthRoutes(api, db)
	paymentRoutes.PaymentPublicRoutes(api, db)

	jwtGuard := authMw.AuthJWT(authMw.AuthJWTOpts{
		Secret:              configs.JWTSecret,
		AllowCookieFallback: true,
	})

	// --- admin ---
	admin := api.Group("/a", jwtGuard, authMw.RequireRole(helper.RoleAdmin))
	billRoutes.BillAdminRoutes(admin, db)
	usageRoutes.UsageAdminRoutes(admin, db)
	tariffRoutes.TariffAdminRoutes(admin, db)
	paymentRoutes.PaymentAdminRoutes(admin, db)
	customerRoutes.CustomerAdminRoutes(admin, db)
	adminRoutes.AdminAdminRoutes(admin, db)
	reportRoutes.ReportAdminRoutes(admin, db)

	// --- pelanggan ---
	user := api.Group("/u", jwtGuard, authMw.RequireRole(helper.RoleCustomer))
	billRoutes.BillUserRoutes(user, db)
	paymentRoutes.PaymentUserRoutes(user, db)
}
