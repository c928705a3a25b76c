package controller

import (
	"errors"
	"log"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"listrikku_backend/internals/configs"
	billModel "listrikku_backend/internals/features/billing/bills/model"
	billService "listrikku_backend/internals/features/billing/bills/service"
	dto "listrikku_backend/internals/features/payment/payments/dto"
	service "listrikku_backend/internals/features/payment/payments/service"
	helper "listrikku_backend/internals/helpers"
)

type PaymentController struct {
	DB         *gorm.DB
	Validate   *validator.Validate
	Reconciler *service.Reconciler
}

func NewPaymentController(db *gorm.DB) *PaymentController {
	return &PaymentController{
		DB:         db,
		Validate:   validator.New(),
		Reconciler: service.NewReconciler(service.NewGormStore(db)),
	}
}

/* ======================== TANDAI LUNAS (ADMIN) ======================== */
// POST /api/a/bills/:id/mark-paid - pembayaran kasir. Idempoten: pemanggilan
// ulang mengembalikan pembayaran yang sudah ada, bukan error.
func (h *PaymentController) AdminMarkPaid(c *fiber.Ctx) error {
	adminID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}
	billID, err := c.ParamsInt("id")
	if err != nil || billID <= 0 {
		return fiber.NewError(fiber.StatusBadRequest, "ID tagihan tidak valid")
	}

	var req dto.MarkPaidRequest
	if len(c.Body()) > 0 {
		if err := c.BodyParser(&req); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Payload tidak valid")
		}
		if err := h.Validate.Struct(req); err != nil {
			return helper.JsonValidationError(c, err)
		}
	}

	payment, created, err := h.Reconciler.PayBill(service.PayBillInput{
		IDTagihan:  int64(billID),
		OperatorID: adminID,
		BiayaAdmin: req.BiayaAdmin,
		Reference:  req.NomorReferensi,
	})
	if err != nil {
		if errors.Is(err, service.ErrBillNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "Tagihan tidak ditemukan")
		}
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal mencatat pembayaran: "+err.Error())
	}
	if !created {
		return helper.JsonOK(c, "Tagihan sudah dibayar sebelumnya", payment)
	}
	return helper.JsonCreated(c, "Pembayaran dicatat", payment)
}

/* ======================== CHECKOUT (PELANGGAN) ======================== */
// GET /api/u/bills/:id/pay - buat Snap token Midtrans untuk tagihan sendiri.
func (h *PaymentController) CustomerCheckout(c *fiber.Ctx) error {
	if !configs.MidtransEnabled() {
		return fiber.NewError(fiber.StatusServiceUnavailable, "Pembayaran online belum dikonfigurasi")
	}

	customerID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}
	billID, err := c.ParamsInt("id")
	if err != nil || billID <= 0 {
		return fiber.NewError(fiber.StatusBadRequest, "ID tagihan tidak valid")
	}

	bill, err := billService.FindBillDetail(h.DB, int64(billID))
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}
	if bill == nil || bill.IDPelanggan != customerID {
		return fiber.NewError(fiber.StatusNotFound, "Tagihan tidak ditemukan")
	}
	if bill.Status == billModel.StatusPaid {
		return fiber.NewError(fiber.StatusConflict, "Tagihan sudah dibayar")
	}

	orderID := service.BuildOrderID(bill.IDTagihan, time.Now())
	token, redirectURL, err := service.GenerateSnapToken(
		orderID, bill.TotalBayar, bill.NamaPelanggan, bill.Username, bill.Bulan, bill.Tahun)
	if err != nil {
		return fiber.NewError(fiber.StatusBadGateway, "Gagal membuat transaksi Midtrans: "+err.Error())
	}

	return helper.JsonOK(c, "OK", dto.CheckoutResponse{
		OrderID:     orderID,
		SnapToken:   token,
		RedirectURL: redirectURL,
		ClientKey:   configs.MidtransClientKey,
		GrossAmount: bill.TotalBayar,
	})
}

/* ======================== BAYAR LANGSUNG (PELANGGAN) ======================== */
// POST /api/u/bills/:id/simulate - pelunasan tanpa gateway (mis. demo/kasir mandiri).
// Operator tercatat adalah admin default.
func (h *PaymentController) CustomerSimulatePay(c *fiber.Ctx) error {
	customerID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}
	billID, err := c.ParamsInt("id")
	if err != nil || billID <= 0 {
		return fiber.NewError(fiber.StatusBadRequest, "ID tagihan tidak valid")
	}

	bill, err := billService.FindBillDetail(h.DB, int64(billID))
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}
	if bill == nil || bill.IDPelanggan != customerID {
		return fiber.NewError(fiber.StatusNotFound, "Tagihan tidak ditemukan")
	}

	payment, created, err := h.Reconciler.PayBill(service.PayBillInput{
		IDTagihan: bill.IDTagihan,
	})
	if err != nil {
		if errors.Is(err, service.ErrBillNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "Tagihan tidak ditemukan")
		}
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal mencatat pembayaran: "+err.Error())
	}
	if !created {
		return helper.JsonOK(c, "Tagihan sudah dibayar sebelumnya", payment)
	}
	return helper.JsonCreated(c, "Pembayaran berhasil", payment)
}

/* ======================== WEBHOOK MIDTRANS ======================== */
// POST /api/payments/notify - endpoint notifikasi HTTP. Selalu meng-ack
// notifikasi valid (termasuk duplikat dan tagihan yang sudah hilang)
// supaya Midtrans berhenti mengirim ulang.
func (h *PaymentController) Webhook(c *fiber.Ctx) error {
	var req dto.WebhookRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Payload notifikasi tidak valid")
	}

	billID, err := service.ParseOrderID(req.OrderID)
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	if !service.IsPaidStatus(req.TransactionStatus) {
		return helper.JsonOK(c, "Notifikasi diabaikan", fiber.Map{
			"order_id":           req.OrderID,
			"transaction_status": req.TransactionStatus,
			"ignored":            true,
		})
	}

	ref := req.TransactionID
	if ref == "" {
		ref = req.OrderID
	}
	payment, created, err := h.Reconciler.PayBill(service.PayBillInput{
		IDTagihan: billID,
		Reference: ref,
	})
	if err != nil {
		if errors.Is(err, service.ErrBillNotFound) {
			log.Printf("⚠️ Notifikasi Midtrans untuk tagihan %d yang tidak ada (order_id=%s)", billID, req.OrderID)
			return helper.JsonOK(c, "Notifikasi diterima", fiber.Map{"order_id": req.OrderID, "ignored": true})
		}
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal memproses notifikasi: "+err.Error())
	}

	return helper.JsonOK(c, "Notifikasi diproses", fiber.Map{
		"order_id":      req.OrderID,
		"id_tagihan":    billID,
		"id_pembayaran": payment.IDPembayaran,
		"created":       created,
	})
}

/* ======================== RIWAYAT TERBARU (ADMIN) ======================== */
// GET /api/a/payments/recent?limit=10
func (h *PaymentController) ListRecent(c *fiber.Ctx) error {
	rows, err := service.ListRecent(h.DB, c.QueryInt("limit", 10))
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal mengambil pembayaran: "+err.Error())
	}
	return helper.JsonOK(c, "OK", rows)
}
