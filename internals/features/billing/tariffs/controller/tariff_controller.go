package controller

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	model "listrikku_backend/internals/features/billing/tariffs/model"
	helper "listrikku_backend/internals/helpers"
)

type TariffController struct {
	DB *gorm.DB
}

func NewTariffController(db *gorm.DB) *TariffController {
	return &TariffController{DB: db}
}

// GET /api/a/tariffs - daftar golongan tarif, urut daya naik.
func (h *TariffController) List(c *fiber.Ctx) error {
	var rows []model.TariffModel
	if err := h.DB.Order("daya ASC").Find(&rows).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal mengambil tarif: "+err.Error())
	}
	return helper.JsonOK(c, "OK", rows)
}
