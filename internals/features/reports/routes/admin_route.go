package routes

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	reportController "listrikku_backend/internals/features/reports/controller"
)

func ReportAdminRoutes(r fiber.Router, db *gorm.DB) {
	ctrl := reportController.NewReportController(db)

	r.Get("/reports", ctrl.Monthly)
	r.Get("/reports/stats", ctrl.Stats)
	r.Get("/reports/:year/:month/pdf", ctrl.MonthlyPDF)
}
