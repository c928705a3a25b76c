package service

import (
	"errors"
	"sort"

	"gorm.io/gorm"

	billModel "listrikku_backend/internals/features/billing/bills/model"
	billService "listrikku_backend/internals/features/billing/bills/service"
	usageModel "listrikku_backend/internals/features/billing/usages/model"
	paymentModel "listrikku_backend/internals/features/payment/payments/model"
	dto "listrikku_backend/internals/features/reports/dto"
	customerModel "listrikku_backend/internals/features/users/customers/model"
)

// Summarize melipat baris laporan menjadi agregat satu periode.
// Murni: tidak menyentuh DB, mudah diuji.
func Summarize(bulan, tahun int, rows []dto.BillRow) dto.MonthlySummary {
	s := dto.MonthlySummary{Bulan: bulan, Tahun: tahun, TotalBills: len(rows)}
	seen := make(map[int64]struct{}, len(rows))
	for _, r := range rows {
		if _, ok := seen[r.IDPelanggan]; !ok {
			seen[r.IDPelanggan] = struct{}{}
			s.DistinctCustomers++
		}
		s.TotalAmount += r.TotalBayar
		if r.Status == billModel.StatusPaid {
			s.PaidCount++
			s.PaidAmount += r.TotalBayar
		} else {
			s.UnpaidCount++
		}
	}
	return s
}

// SummarizeAll mengelompokkan baris lintas periode menjadi satu ringkasan
// per (tahun, bulan), urut periode terbaru dulu. Juga murni.
func SummarizeAll(rows []dto.BillRow) []dto.MonthlySummary {
	type key struct{ tahun, bulan int }
	grouped := make(map[key][]dto.BillRow)
	for _, r := range rows {
		k := key{r.Tahun, r.Bulan}
		grouped[k] = append(grouped[k], r)
	}

	out := make([]dto.MonthlySummary, 0, len(grouped))
	for k, rs := range grouped {
		out = append(out, Summarize(k.bulan, k.tahun, rs))
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Tahun != out[j].Tahun {
			return out[i].Tahun > out[j].Tahun
		}
		return out[i].Bulan > out[j].Bulan
	})
	return out
}

// ValidateReportFilter memeriksa filter laporan. Nol berarti tanpa filter,
// jadi bulan saja atau tahun saja sama sahnya dengan keduanya.
func ValidateReportFilter(bulan, tahun int) error {
	if bulan != 0 && (bulan < 1 || bulan > 12) {
		return errors.New("bulan harus 1-12")
	}
	if tahun != 0 && (tahun < 2000 || tahun > 2100) {
		return errors.New("tahun harus 2000-2100")
	}
	return nil
}

func billRowQuery(db *gorm.DB) *gorm.DB {
	return db.Table("tagihan t").
		Select(`t.id_tagihan, t.id_pelanggan, t.bulan, t.tahun, t.jumlah_meter,
			t.status, pl.nama_pelanggan, pl.nomor_kwh, tr.tarifperkwh`).
		Joins("JOIN pelanggan pl ON pl.id_pelanggan = t.id_pelanggan").
		Joins("JOIN tarif tr ON tr.id_tarif = pl.id_tarif")
}

func deriveTotals(rows []dto.BillRow) {
	for i := range rows {
		rows[i].TotalBayar = billService.DeriveAmount(rows[i].JumlahMeter, rows[i].TarifPerKwh)
	}
}

// FetchBillRows: baris tagihan untuk laporan. Filter bulan dan tahun
// berdiri sendiri; 0 = tanpa filter. Total dihitung di Go supaya
// pembulatannya identik dengan jalur tagihan lain.
func FetchBillRows(db *gorm.DB, bulan, tahun int) ([]dto.BillRow, error) {
	q := billRowQuery(db)
	if bulan > 0 {
		q = q.Where("t.bulan = ?", bulan)
	}
	if tahun > 0 {
		q = q.Where("t.tahun = ?", tahun)
	}

	var rows []dto.BillRow
	err := q.Order("t.tahun DESC, t.bulan DESC, pl.nama_pelanggan ASC, t.id_tagihan ASC").
		Find(&rows).Error
	if err != nil {
		return nil, err
	}
	deriveTotals(rows)
	return rows, nil
}

// Stats: hitungan global untuk dashboard admin.
func Stats(db *gorm.DB) (*dto.DashboardStats, error) {
	var s dto.DashboardStats

	if err := db.Model(&customerModel.CustomerModel{}).Count(&s.TotalCustomers).Error; err != nil {
		return nil, err
	}
	if err := db.Model(&usageModel.UsageModel{}).Count(&s.TotalUsages).Error; err != nil {
		return nil, err
	}
	if err := db.Model(&billModel.BillModel{}).Count(&s.TotalBills).Error; err != nil {
		return nil, err
	}
	if err := db.Model(&billModel.BillModel{}).
		Where("status = ?", billModel.StatusUnpaid).
		Count(&s.UnpaidBills).Error; err != nil {
		return nil, err
	}
	s.PaidBills = s.TotalBills - s.UnpaidBills

	if err := db.Model(&paymentModel.PaymentModel{}).Count(&s.TotalPayments).Error; err != nil {
		return nil, err
	}
	var revenue *int64
	if err := db.Model(&paymentModel.PaymentModel{}).
		Select("SUM(total_bayar)").
		Scan(&revenue).Error; err != nil {
		return nil, err
	}
	if revenue != nil {
		s.TotalRevenue = *revenue
	}
	return &s, nil
}
