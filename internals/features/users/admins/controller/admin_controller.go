package controller

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	dto "listrikku_backend/internals/features/users/admins/dto"
	model "listrikku_backend/internals/features/users/admins/model"
	authService "listrikku_backend/internals/features/users/auth/service"
	helper "listrikku_backend/internals/helpers"
)

type AdminController struct {
	DB       *gorm.DB
	Validate *validator.Validate
}

func NewAdminController(db *gorm.DB) *AdminController {
	return &AdminController{DB: db, Validate: validator.New()}
}

/* ======================== CREATE ======================== */
// POST /api/a/admins
func (h *AdminController) Create(c *fiber.Ctx) error {
	var req dto.CreateAdminRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := h.Validate.Struct(req); err != nil {
		return helper.JsonValidationError(c, err)
	}

	hashed, err := authService.HashPassword(req.Password)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal memproses password")
	}

	level := req.IDLevel
	if level == 0 {
		level = 2
	}
	admin := model.AdminModel{
		Username:  strings.TrimSpace(req.Username),
		Password:  hashed,
		NamaAdmin: strings.TrimSpace(req.NamaAdmin),
		IDLevel:   level,
	}
	if err := h.DB.Create(&admin).Error; err != nil {
		msg := strings.ToLower(err.Error())
		if strings.Contains(msg, "duplicate") || strings.Contains(msg, "unique") {
			return fiber.NewError(fiber.StatusConflict, "Username sudah dipakai")
		}
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal menyimpan admin: "+err.Error())
	}
	return helper.JsonCreated(c, "Admin dibuat", admin)
}

/* ======================== LIST ======================== */
// GET /api/a/admins?q=&page=&per_page=
func (h *AdminController) List(c *fiber.Ctx) error {
	var q dto.ListAdminQuery
	if err := c.QueryParser(&q); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Query tidak valid")
	}
	paging := helper.ResolvePaging(c, 20, 100)

	base := h.DB.Model(&model.AdminModel{})
	if s := strings.TrimSpace(q.Q); s != "" {
		like := fmt.Sprintf("%%%s%%", strings.ToLower(s))
		base = base.Where("(LOWER(nama_admin) LIKE ? OR LOWER(username) LIKE ?)", like, like)
	}

	var total int64
	if err := base.Session(&gorm.Session{}).Count(&total).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	var rows []model.AdminModel
	if err := base.Session(&gorm.Session{}).
		Order("id_user ASC").
		Limit(paging.Limit).Offset(paging.Offset).
		Find(&rows).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}
	return helper.JsonList(c, "OK", rows, helper.BuildPaginationFromPage(total, paging.Page, paging.PerPage))
}

/* ======================== GET BY ID ======================== */
func (h *AdminController) GetByID(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return fiber.NewError(fiber.StatusBadRequest, "ID admin tidak valid")
	}

	var admin model.AdminModel
	if err := h.DB.Where("id_user = ?", id).Take(&admin).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "Admin tidak ditemukan")
		}
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}
	return helper.JsonOK(c, "OK", admin)
}

/* ======================== UPDATE ======================== */
// PUT /api/a/admins/:id
func (h *AdminController) Update(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return fiber.NewError(fiber.StatusBadRequest, "ID admin tidak valid")
	}

	var req dto.UpdateAdminRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := h.Validate.Struct(req); err != nil {
		return helper.JsonValidationError(c, err)
	}

	var admin model.AdminModel
	if err := h.DB.Where("id_user = ?", id).Take(&admin).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "Admin tidak ditemukan")
		}
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	if req.Password != nil {
		hashed, err := authService.HashPassword(*req.Password)
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Gagal memproses password")
		}
		admin.Password = hashed
	}
	if req.NamaAdmin != nil {
		admin.NamaAdmin = strings.TrimSpace(*req.NamaAdmin)
	}
	if req.IDLevel != nil {
		admin.IDLevel = *req.IDLevel
	}

	if err := h.DB.Save(&admin).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal memperbarui admin: "+err.Error())
	}
	return helper.JsonUpdated(c, "Admin diperbarui", admin)
}

/* ======================== DELETE ======================== */
// DELETE /api/a/admins/:id - akun sendiri dan admin terakhir tidak bisa dihapus.
func (h *AdminController) Delete(c *fiber.Ctx) error {
	actorID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return fiber.NewError(fiber.StatusBadRequest, "ID admin tidak valid")
	}
	if int64(id) == actorID {
		return fiber.NewError(fiber.StatusConflict, "Tidak bisa menghapus akun sendiri")
	}

	var count int64
	if err := h.DB.Model(&model.AdminModel{}).Count(&count).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}
	if count <= 1 {
		return fiber.NewError(fiber.StatusConflict, "Admin terakhir tidak bisa dihapus")
	}

	res := h.DB.Where("id_user = ?", id).Delete(&model.AdminModel{})
	if res.Error != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal menghapus admin: "+res.Error.Error())
	}
	if res.RowsAffected == 0 {
		return fiber.NewError(fiber.StatusNotFound, "Admin tidak ditemukan")
	}
	return helper.JsonDeleted(c, "Admin dihapus", fiber.Map{"id_user": id})
}
