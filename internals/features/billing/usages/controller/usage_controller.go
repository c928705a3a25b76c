package controller

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	dto "listrikku_backend/internals/features/billing/usages/dto"
	service "listrikku_backend/internals/features/billing/usages/service"
	helper "listrikku_backend/internals/helpers"
)

type UsageController struct {
	DB       *gorm.DB
	Validate *validator.Validate
}

func NewUsageController(db *gorm.DB) *UsageController {
	return &UsageController{DB: db, Validate: validator.New()}
}

/* ======================== CREATE ======================== */
// POST /api/a/usages - sekaligus menerbitkan tagihan BELUM BAYAR.
func (h *UsageController) Create(c *fiber.Ctx) error {
	var req dto.CreateUsageRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := h.Validate.Struct(req); err != nil {
		return helper.JsonValidationError(c, err)
	}

	usage, bill, err := service.CreateWithBill(h.DB, req)
	if err != nil {
		return err
	}
	return helper.JsonCreated(c, "Penggunaan dicatat & tagihan diterbitkan", fiber.Map{
		"penggunaan": usage,
		"tagihan":    bill,
	})
}

/* ======================== LIST ======================== */
// GET /api/a/usages?id_pelanggan=&bulan=&tahun=&q=&page=&per_page=
func (h *UsageController) List(c *fiber.Ctx) error {
	var q dto.ListUsageQuery
	if err := c.QueryParser(&q); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Query tidak valid")
	}
	paging := helper.ResolvePaging(c, 20, 100)

	rows, total, err := service.ListUsageDetails(h.DB, q, paging.Limit, paging.Offset)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal mengambil penggunaan: "+err.Error())
	}
	return helper.JsonList(c, "OK", rows, helper.BuildPaginationFromPage(total, paging.Page, paging.PerPage))
}

/* ======================== GET BY ID ======================== */
func (h *UsageController) GetByID(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return fiber.NewError(fiber.StatusBadRequest, "ID penggunaan tidak valid")
	}

	row, err := service.FindUsageDetail(h.DB, int64(id))
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}
	if row == nil {
		return fiber.NewError(fiber.StatusNotFound, "Penggunaan tidak ditemukan")
	}
	return helper.JsonOK(c, "OK", row)
}

/* ======================== UPDATE ======================== */
// PUT /api/a/usages/:id - tagihan periode tersebut ikut diperbarui.
func (h *UsageController) Update(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return fiber.NewError(fiber.StatusBadRequest, "ID penggunaan tidak valid")
	}

	var req dto.UpdateUsageRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := h.Validate.Struct(req); err != nil {
		return helper.JsonValidationError(c, err)
	}

	usage, err := service.Update(h.DB, int64(id), req)
	if err != nil {
		return err
	}
	return helper.JsonUpdated(c, "Penggunaan diperbarui", usage)
}

/* ======================== DELETE ======================== */
// DELETE /api/a/usages/:id - 409 jika tagihannya sudah dibayar.
func (h *UsageController) Delete(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return fiber.NewError(fiber.StatusBadRequest, "ID penggunaan tidak valid")
	}
	if err := service.Delete(h.DB, int64(id)); err != nil {
		return err
	}
	return helper.JsonDeleted(c, "Penggunaan dihapus", fiber.Map{"id_penggunaan": id})
}

/* ======================== LAST (PREFILL) ======================== */
// GET /api/a/usages/last/:customer_id - meter akhir terakhir + periode berikutnya.
func (h *UsageController) LastFor(c *fiber.Ctx) error {
	customerID, err := c.ParamsInt("customer_id")
	if err != nil || customerID <= 0 {
		return fiber.NewError(fiber.StatusBadRequest, "ID pelanggan tidak valid")
	}

	resp, err := service.LastFor(h.DB, int64(customerID))
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}
	return helper.JsonOK(c, "OK", resp)
}
