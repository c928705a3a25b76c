package controller

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	dto "listrikku_backend/internals/features/billing/bills/dto"
	service "listrikku_backend/internals/features/billing/bills/service"
	helper "listrikku_backend/internals/helpers"
)

type BillController struct {
	DB *gorm.DB
}

func NewBillController(db *gorm.DB) *BillController {
	return &BillController{DB: db}
}

/* ======================== LIST (ADMIN) ======================== */
// GET /api/a/bills?status=unpaid|paid&q=&page=&per_page=
func (h *BillController) List(c *fiber.Ctx) error {
	var q dto.ListBillQuery
	if err := c.QueryParser(&q); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Query tidak valid")
	}
	paging := helper.ResolvePaging(c, 20, 100)

	rows, total, err := service.ListBillDetails(h.DB, nil, service.StatusFilter(q.Status), q.Q, paging.Limit, paging.Offset)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal mengambil tagihan: "+err.Error())
	}
	return helper.JsonList(c, "OK", rows, helper.BuildPaginationFromPage(total, paging.Page, paging.PerPage))
}

/* ======================== GET BY ID (ADMIN) ======================== */
// GET /api/a/bills/:id
func (h *BillController) GetByID(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return fiber.NewError(fiber.StatusBadRequest, "ID tagihan tidak valid")
	}

	bill, err := service.FindBillDetail(h.DB, int64(id))
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}
	if bill == nil {
		return fiber.NewError(fiber.StatusNotFound, "Tagihan tidak ditemukan")
	}
	return helper.JsonOK(c, "OK", bill)
}

/* ======================== LIST (PELANGGAN) ======================== */
// GET /api/u/bills - hanya tagihan milik pelanggan yang login.
func (h *BillController) ListMine(c *fiber.Ctx) error {
	customerID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}

	var q dto.ListBillQuery
	if err := c.QueryParser(&q); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Query tidak valid")
	}

	rows, total, err := service.ListBillDetails(h.DB, &customerID, service.StatusFilter(q.Status), "", 0, 0)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal mengambil tagihan: "+err.Error())
	}
	return helper.JsonList(c, "OK", rows, helper.BuildPaginationFromPage(total, 1, len(rows)))
}

/* ======================== GET BY ID (PELANGGAN) ======================== */
// GET /api/u/bills/:id - 404 juga untuk tagihan milik pelanggan lain.
func (h *BillController) GetMine(c *fiber.Ctx) error {
	customerID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return fiber.NewError(fiber.StatusBadRequest, "ID tagihan tidak valid")
	}

	bill, err := service.FindBillDetail(h.DB, int64(id))
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}
	if bill == nil || bill.IDPelanggan != customerID {
		return fiber.NewError(fiber.StatusNotFound, "Tagihan tidak ditemukan")
	}
	return helper.JsonOK(c, "OK", bill)
}
