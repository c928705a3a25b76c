package controller

import (
	"bytes"
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/jung-kurt/gofpdf"
	"gorm.io/gorm"

	service "listrikku_backend/internals/features/reports/service"
	helper "listrikku_backend/internals/helpers"
)

type ReportController struct {
	DB *gorm.DB
}

func NewReportController(db *gorm.DB) *ReportController {
	return &ReportController{DB: db}
}

/* ======================== LAPORAN BULANAN ======================== */
// GET /api/a/reports?bulan=&tahun= - kedua filter berdiri sendiri.
// Hanya bulan+tahun lengkap yang mengembalikan baris detail; selebihnya
// ringkasan per periode yang lolos filter.
func (h *ReportController) Monthly(c *fiber.Ctx) error {
	bulan := c.QueryInt("bulan", 0)
	tahun := c.QueryInt("tahun", 0)
	if err := service.ValidateReportFilter(bulan, tahun); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	rows, err := service.FetchBillRows(h.DB, bulan, tahun)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal menyusun laporan: "+err.Error())
	}

	if bulan != 0 && tahun != 0 {
		return helper.JsonOK(c, "OK", fiber.Map{
			"summary": service.Summarize(bulan, tahun, rows),
			"rows":    rows,
		})
	}
	return helper.JsonOK(c, "OK", fiber.Map{"summaries": service.SummarizeAll(rows)})
}

/* ======================== STATISTIK ======================== */
// GET /api/a/reports/stats - angka ringkas untuk dashboard admin.
func (h *ReportController) Stats(c *fiber.Ctx) error {
	stats, err := service.Stats(h.DB)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal mengambil statistik: "+err.Error())
	}
	return helper.JsonOK(c, "OK", stats)
}

/* ======================== LAPORAN BULANAN (PDF) ======================== */
// GET /api/a/reports/:year/:month/pdf
func (h *ReportController) MonthlyPDF(c *fiber.Ctx) error {
	tahun, err := c.ParamsInt("year")
	if err != nil || tahun < 2000 || tahun > 2100 {
		return fiber.NewError(fiber.StatusBadRequest, "tahun harus 2000-2100")
	}
	bulan, err := c.ParamsInt("month")
	if err != nil || bulan < 1 || bulan > 12 {
		return fiber.NewError(fiber.StatusBadRequest, "bulan harus 1-12")
	}

	rows, err := service.FetchBillRows(h.DB, bulan, tahun)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal menyusun laporan: "+err.Error())
	}
	summary := service.Summarize(bulan, tahun, rows)
	periode := fmt.Sprintf("%s %d", helper.MonthLabel(bulan), tahun)

	pdf := gofpdf.New("L", "mm", "A4", "")
	pdf.SetTitle("Laporan Tagihan "+periode, true)
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 16)
	pdf.CellFormat(0, 9, "Laporan Tagihan Listrik", "", 1, "L", false, 0, "")
	pdf.SetFont("Helvetica", "", 11)
	pdf.CellFormat(0, 6, "Periode: "+periode, "", 1, "L", false, 0, "")
	pdf.CellFormat(0, 6, "Dicetak: "+time.Now().Format("02-01-2006 15:04:05"), "", 1, "L", false, 0, "")
	pdf.Ln(4)

	// Header tabel
	widths := []float64{12, 70, 35, 30, 35, 45, 40}
	headers := []string{"No", "Nama Pelanggan", "Nomor KWH", "Pemakaian", "Tarif/kWh", "Total", "Status"}
	pdf.SetFont("Helvetica", "B", 10)
	pdf.SetFillColor(220, 230, 241)
	for i, hdr := range headers {
		pdf.CellFormat(widths[i], 8, hdr, "1", 0, "C", true, 0, "")
	}
	pdf.Ln(-1)

	pdf.SetFont("Helvetica", "", 9)
	for i, r := range rows {
		pdf.CellFormat(widths[0], 7, fmt.Sprintf("%d", i+1), "1", 0, "C", false, 0, "")
		pdf.CellFormat(widths[1], 7, r.NamaPelanggan, "1", 0, "L", false, 0, "")
		pdf.CellFormat(widths[2], 7, r.NomorKwh, "1", 0, "L", false, 0, "")
		pdf.CellFormat(widths[3], 7, fmt.Sprintf("%d kWh", r.JumlahMeter), "1", 0, "R", false, 0, "")
		pdf.CellFormat(widths[4], 7, helper.FormatRupiahDecimal(r.TarifPerKwh), "1", 0, "R", false, 0, "")
		pdf.CellFormat(widths[5], 7, helper.FormatRupiah(r.TotalBayar), "1", 0, "R", false, 0, "")
		pdf.CellFormat(widths[6], 7, r.Status, "1", 1, "C", false, 0, "")
	}

	pdf.Ln(5)
	pdf.SetFont("Helvetica", "B", 10)
	pdf.CellFormat(0, 6, fmt.Sprintf("Total tagihan: %d (lunas %d, belum %d) dari %d pelanggan",
		summary.TotalBills, summary.PaidCount, summary.UnpaidCount, summary.DistinctCustomers), "", 1, "L", false, 0, "")
	pdf.CellFormat(0, 6, "Nilai total: "+helper.FormatRupiah(summary.TotalAmount)+
		" | Sudah dibayar: "+helper.FormatRupiah(summary.PaidAmount), "", 1, "L", false, 0, "")

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal membuat PDF laporan")
	}

	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition,
		fmt.Sprintf(`attachment; filename="laporan_tagihan_%02d_%d.pdf"`, bulan, tahun))
	return c.Send(buf.Bytes())
}
