package controller

import (
	"bytes"
	"errors"
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/jung-kurt/gofpdf"
	"gorm.io/gorm"

	billModel "listrikku_backend/internals/features/billing/bills/model"
	billService "listrikku_backend/internals/features/billing/bills/service"
	usageModel "listrikku_backend/internals/features/billing/usages/model"
	helper "listrikku_backend/internals/helpers"
)

/* ================= BUKTI PEMBAYARAN (PDF) ================= */
// GET /api/u/bills/:id/proof.pdf - hanya untuk tagihan SUDAH BAYAR.
func (h *BillController) DownloadProof(c *fiber.Ctx) error {
	customerID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return fiber.NewError(fiber.StatusBadRequest, "ID tagihan tidak valid")
	}

	bill, err := billService.FindBillDetail(h.DB, int64(id))
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}
	if bill == nil || bill.IDPelanggan != customerID {
		return fiber.NewError(fiber.StatusNotFound, "Tagihan tidak ditemukan")
	}
	if bill.Status != billModel.StatusPaid {
		return fiber.NewError(fiber.StatusConflict, "Bukti pembayaran hanya tersedia untuk tagihan yang sudah dibayar")
	}

	// Angka meter diambil dari baris penggunaan periode yang sama.
	var usage usageModel.UsageModel
	hasUsage := true
	if err := h.DB.
		Where("id_pelanggan = ? AND bulan = ? AND tahun = ?", bill.IDPelanggan, bill.Bulan, bill.Tahun).
		Take(&usage).Error; err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusInternalServerError, err.Error())
		}
		hasUsage = false
	}

	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetTitle(fmt.Sprintf("Bukti Pembayaran Tagihan #%d", bill.IDTagihan), true)
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 18)
	pdf.CellFormat(0, 10, "Listrikku Pascabayar", "", 1, "L", false, 0, "")
	pdf.SetFont("Helvetica", "", 11)
	pdf.CellFormat(0, 6, "Bukti Pembayaran Tagihan Listrik", "", 1, "L", false, 0, "")
	pdf.SetFont("Helvetica", "B", 13)
	pdf.CellFormat(0, 8, fmt.Sprintf("INVOICE #%d", bill.IDTagihan), "", 1, "R", false, 0, "")
	pdf.Ln(2)

	pdf.SetFont("Helvetica", "", 10)
	pdf.CellFormat(0, 6, "Tanggal Cetak: "+time.Now().Format("02-01-2006 15:04:05"), "", 1, "L", false, 0, "")
	pdf.CellFormat(0, 6, "Status: "+bill.Status, "", 1, "L", false, 0, "")
	pdf.Ln(4)

	writeRow := func(label, value string) {
		pdf.SetFont("Helvetica", "B", 10)
		pdf.CellFormat(55, 7, label, "", 0, "L", false, 0, "")
		pdf.SetFont("Helvetica", "", 10)
		pdf.CellFormat(0, 7, value, "", 1, "L", false, 0, "")
	}

	pdf.SetFont("Helvetica", "B", 12)
	pdf.CellFormat(0, 8, "Detail Pelanggan", "B", 1, "L", false, 0, "")
	writeRow("Nama Pelanggan", bill.NamaPelanggan)
	writeRow("Nomor KWH", bill.NomorKwh)
	writeRow("Alamat", bill.Alamat)
	pdf.Ln(3)

	meterAwal, meterAkhir := "-", "-"
	if hasUsage {
		meterAwal = fmt.Sprintf("%d", usage.MeterAwal)
		meterAkhir = fmt.Sprintf("%d", usage.MeterAkhir)
	}

	pdf.SetFont("Helvetica", "B", 12)
	pdf.CellFormat(0, 8, "Detail Tagihan", "B", 1, "L", false, 0, "")
	writeRow("Periode", fmt.Sprintf("%s %d", helper.MonthLabel(bill.Bulan), bill.Tahun))
	writeRow("Meter Awal", meterAwal)
	writeRow("Meter Akhir", meterAkhir)
	writeRow("Total Meter", fmt.Sprintf("%d KWH", bill.JumlahMeter))
	writeRow("Tarif/kWh", helper.FormatRupiahDecimal(bill.TarifPerKwh))
	writeRow("Total Bayar", helper.FormatRupiah(bill.TotalBayar))
	pdf.Ln(5)

	pdf.SetFillColor(232, 241, 238)
	pdf.SetFont("Helvetica", "B", 12)
	pdf.CellFormat(95, 10, "TOTAL PEMBAYARAN", "1", 0, "L", true, 0, "")
	pdf.CellFormat(0, 10, helper.FormatRupiah(bill.TotalBayar), "1", 1, "R", true, 0, "")
	pdf.Ln(5)

	pdf.SetFont("Helvetica", "", 9)
	pdf.CellFormat(0, 5, "Ini adalah bukti pembayaran resmi. Harap simpan sebagai referensi Anda.", "", 1, "L", false, 0, "")
	pdf.CellFormat(0, 5, "Terima kasih atas pembayaran Anda.", "", 1, "L", false, 0, "")

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal membuat bukti pembayaran")
	}

	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition,
		fmt.Sprintf(`attachment; filename="bukti_pembayaran_tagihan_%d.pdf"`, bill.IDTagihan))
	return c.Send(buf.Bytes())
}
