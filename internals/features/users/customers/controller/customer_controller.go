package controller

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	tariffModel "listrikku_backend/internals/features/billing/tariffs/model"
	authService "listrikku_backend/internals/features/users/auth/service"
	dto "listrikku_backend/internals/features/users/customers/dto"
	model "listrikku_backend/internals/features/users/customers/model"
	helper "listrikku_backend/internals/helpers"
)

type CustomerController struct {
	DB       *gorm.DB
	Validate *validator.Validate
}

func NewCustomerController(db *gorm.DB) *CustomerController {
	return &CustomerController{DB: db, Validate: validator.New()}
}

func customerQuery(db *gorm.DB) *gorm.DB {
	return db.Table("pelanggan pl").
		Select(`pl.id_pelanggan, pl.username, pl.nomor_kwh, pl.nama_pelanggan,
			pl.alamat, pl.id_tarif, tr.daya, tr.tarifperkwh`).
		Joins("JOIN tarif tr ON tr.id_tarif = pl.id_tarif")
}

/* ======================== CREATE ======================== */
// POST /api/a/customers - password langsung disimpan sebagai bcrypt.
func (h *CustomerController) Create(c *fiber.Ctx) error {
	var req dto.CreateCustomerRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := h.Validate.Struct(req); err != nil {
		return helper.JsonValidationError(c, err)
	}

	var tariff tariffModel.TariffModel
	if err := h.DB.Where("id_tarif = ?", req.IDTarif).Take(&tariff).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusUnprocessableEntity, "Golongan tarif tidak ditemukan")
		}
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	hashed, err := authService.HashPassword(req.Password)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal memproses password")
	}

	customer := model.CustomerModel{
		Username:      strings.TrimSpace(req.Username),
		Password:      hashed,
		NomorKwh:      strings.TrimSpace(req.NomorKwh),
		NamaPelanggan: strings.TrimSpace(req.NamaPelanggan),
		Alamat:        req.Alamat,
		IDTarif:       req.IDTarif,
	}
	if err := h.DB.Create(&customer).Error; err != nil {
		msg := strings.ToLower(err.Error())
		if strings.Contains(msg, "duplicate") || strings.Contains(msg, "unique") {
			return fiber.NewError(fiber.StatusConflict, "Username sudah dipakai")
		}
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal menyimpan pelanggan: "+err.Error())
	}
	return helper.JsonCreated(c, "Pelanggan dibuat", customer)
}

/* ======================== LIST ======================== */
// GET /api/a/customers?q=&page=&per_page=
func (h *CustomerController) List(c *fiber.Ctx) error {
	var q dto.ListCustomerQuery
	if err := c.QueryParser(&q); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Query tidak valid")
	}
	paging := helper.ResolvePaging(c, 20, 100)

	base := customerQuery(h.DB)
	if s := strings.TrimSpace(q.Q); s != "" {
		like := fmt.Sprintf("%%%s%%", strings.ToLower(s))
		base = base.Where(
			"(LOWER(pl.nama_pelanggan) LIKE ? OR LOWER(pl.username) LIKE ? OR LOWER(pl.nomor_kwh) LIKE ?)",
			like, like, like,
		)
	}

	var total int64
	if err := base.Session(&gorm.Session{}).Count(&total).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	var rows []dto.CustomerDetail
	if err := base.Session(&gorm.Session{}).
		Order("pl.nama_pelanggan ASC").
		Limit(paging.Limit).Offset(paging.Offset).
		Find(&rows).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}
	return helper.JsonList(c, "OK", rows, helper.BuildPaginationFromPage(total, paging.Page, paging.PerPage))
}

/* ======================== GET BY ID ======================== */
func (h *CustomerController) GetByID(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return fiber.NewError(fiber.StatusBadRequest, "ID pelanggan tidak valid")
	}

	var row dto.CustomerDetail
	if err := customerQuery(h.DB).Where("pl.id_pelanggan = ?", id).Take(&row).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "Pelanggan tidak ditemukan")
		}
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}
	return helper.JsonOK(c, "OK", row)
}

/* ======================== UPDATE ======================== */
// PUT /api/a/customers/:id - username tidak bisa diganti (kunci login).
func (h *CustomerController) Update(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return fiber.NewError(fiber.StatusBadRequest, "ID pelanggan tidak valid")
	}

	var req dto.UpdateCustomerRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := h.Validate.Struct(req); err != nil {
		return helper.JsonValidationError(c, err)
	}

	var customer model.CustomerModel
	if err := h.DB.Where("id_pelanggan = ?", id).Take(&customer).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "Pelanggan tidak ditemukan")
		}
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	if req.IDTarif != nil {
		var tariff tariffModel.TariffModel
		if err := h.DB.Where("id_tarif = ?", *req.IDTarif).Take(&tariff).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fiber.NewError(fiber.StatusUnprocessableEntity, "Golongan tarif tidak ditemukan")
			}
			return fiber.NewError(fiber.StatusInternalServerError, err.Error())
		}
		customer.IDTarif = *req.IDTarif
	}
	if req.Password != nil {
		hashed, err := authService.HashPassword(*req.Password)
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Gagal memproses password")
		}
		customer.Password = hashed
	}
	if req.NomorKwh != nil {
		customer.NomorKwh = strings.TrimSpace(*req.NomorKwh)
	}
	if req.NamaPelanggan != nil {
		customer.NamaPelanggan = strings.TrimSpace(*req.NamaPelanggan)
	}
	if req.Alamat != nil {
		customer.Alamat = *req.Alamat
	}

	if err := h.DB.Save(&customer).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal memperbarui pelanggan: "+err.Error())
	}
	return helper.JsonUpdated(c, "Pelanggan diperbarui", customer)
}
