package controller

import (
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"listrikku_backend/internals/configs"
	dto "listrikku_backend/internals/features/users/auth/dto"
	service "listrikku_backend/internals/features/users/auth/service"
	helper "listrikku_backend/internals/helpers"
)

type AuthController struct {
	DB       *gorm.DB
	Verifier service.Verifier
}

func NewAuthController(db *gorm.DB) *AuthController {
	return &AuthController{
		DB:       db,
		Verifier: service.Verifier{Store: service.NewGormCredentialStore(db)},
	}
}

/* ======================= LOGIN ======================= */
// POST /api/login
// Satu pintu untuk dua jenis principal: coba admin dulu, lalu pelanggan
// (urutan yang sama dengan form login lama).
func (h *AuthController) Login(c *fiber.Ctx) error {
	var req dto.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Payload tidak valid")
	}
	req.Username = strings.TrimSpace(req.Username)
	if err := validator.New().Struct(req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	principal, err := h.Verifier.VerifyAdmin(req.Username, req.Password)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal memeriksa kredensial: "+err.Error())
	}
	if principal == nil {
		principal, err = h.Verifier.VerifyCustomer(req.Username, req.Password)
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Gagal memeriksa kredensial: "+err.Error())
		}
	}
	if principal == nil {
		return fiber.NewError(fiber.StatusUnauthorized, "Login gagal. Cek username atau password.")
	}

	token, err := service.CreateAccessToken(*principal, configs.JWTSecret)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal membuat token")
	}

	c.Cookie(&fiber.Cookie{
		Name:     "access_token",
		Value:    token,
		Expires:  time.Now().Add(24 * time.Hour),
		HTTPOnly: true,
		SameSite: "Lax",
	})

	return helper.JsonOK(c, "Login berhasil", dto.LoginResponse{
		AccessToken: token,
		User:        *principal,
	})
}

/* ======================= LOGOUT ======================= */
// POST /api/logout
func (h *AuthController) Logout(c *fiber.Ctx) error {
	c.Cookie(&fiber.Cookie{
		Name:     "access_token",
		Value:    "",
		Expires:  time.Now().Add(-time.Hour),
		HTTPOnly: true,
		SameSite: "Lax",
	})
	return helper.JsonOK(c, "Logout berhasil", nil)
}

/* ======================= ME ======================= */
// GET /api/me - identitas dari token, untuk re-hydrate sesi front-end.
func (h *AuthController) Me(c *fiber.Ctx) error {
	id, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}
	return helper.JsonOK(c, "OK", service.Principal{
		ID:       id,
		Username: helper.GetUsernameFromToken(c),
		Name:     helper.GetNameFromToken(c),
		Role:     helper.GetRoleFromToken(c),
	})
}
