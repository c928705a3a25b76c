package service

import (
	"errors"
	"fmt"
	"strings"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	billModel "listrikku_backend/internals/features/billing/bills/model"
	dto "listrikku_backend/internals/features/billing/usages/dto"
	model "listrikku_backend/internals/features/billing/usages/model"
	customerModel "listrikku_backend/internals/features/users/customers/model"
	paymentModel "listrikku_backend/internals/features/payment/payments/model"
)

func isDuplicateErr(err error) bool {
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "duplicate") || strings.Contains(msg, "unique")
}

/* ================= CREATE (USAGE + BILL, SATU TX) ================= */
// Tagihan BELUM BAYAR diterbitkan bersama baris penggunaannya; keduanya
// muncul atau tidak sama sekali.
func CreateWithBill(db *gorm.DB, req dto.CreateUsageRequest) (*model.UsageModel, *billModel.BillModel, error) {
	if err := ValidatePeriod(req.Bulan, req.Tahun); err != nil {
		return nil, nil, fiber.NewError(fiber.StatusUnprocessableEntity, err.Error())
	}
	if err := ValidateMeters(req.MeterAwal, req.MeterAkhir); err != nil {
		return nil, nil, fiber.NewError(fiber.StatusUnprocessableEntity, err.Error())
	}

	var customer customerModel.CustomerModel
	if err := db.Where("id_pelanggan = ?", req.IDPelanggan).Take(&customer).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil, fiber.NewError(fiber.StatusNotFound, "Pelanggan tidak ditemukan")
		}
		return nil, nil, fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	usage := model.UsageModel{
		IDPelanggan: req.IDPelanggan,
		Bulan:       req.Bulan,
		Tahun:       req.Tahun,
		MeterAwal:   req.MeterAwal,
		MeterAkhir:  req.MeterAkhir,
	}
	bill := billModel.BillModel{}

	err := db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&usage).Error; err != nil {
			if isDuplicateErr(err) {
				return fiber.NewError(fiber.StatusConflict,
					fmt.Sprintf("Penggunaan pelanggan %d periode %d/%d sudah tercatat", req.IDPelanggan, req.Bulan, req.Tahun))
			}
			return err
		}
		bill = billModel.BillModel{
			IDPenggunaan: usage.IDPenggunaan,
			IDPelanggan:  usage.IDPelanggan,
			Bulan:        usage.Bulan,
			Tahun:        usage.Tahun,
			JumlahMeter:  usage.Consumption(),
			Status:       billModel.StatusUnpaid,
		}
		return tx.Create(&bill).Error
	})
	if err != nil {
		var fe *fiber.Error
		if errors.As(err, &fe) {
			return nil, nil, fe
		}
		return nil, nil, fiber.NewError(fiber.StatusInternalServerError, "Gagal menyimpan penggunaan: "+err.Error())
	}
	return &usage, &bill, nil
}

// applyUpdate menyalin perubahan request ke pasangan usage+bill, termasuk
// pemindahan ke pelanggan lain. Murni, supaya aturan "pindah" bisa diuji
// tanpa DB.
func applyUpdate(usage *model.UsageModel, bill *billModel.BillModel, req dto.UpdateUsageRequest) {
	if req.IDPelanggan != nil {
		usage.IDPelanggan = *req.IDPelanggan
	}
	usage.Bulan = req.Bulan
	usage.Tahun = req.Tahun
	usage.MeterAwal = req.MeterAwal
	usage.MeterAkhir = req.MeterAkhir

	if bill != nil && bill.IDTagihan != 0 {
		bill.IDPelanggan = usage.IDPelanggan
		bill.Bulan = usage.Bulan
		bill.Tahun = usage.Tahun
		bill.JumlahMeter = usage.Consumption()
	}
}

/* ================= UPDATE (USAGE + BILL ATOMIK) ================= */
// Tagihan periode tersebut ikut diperbarui dalam transaksi yang sama,
// termasuk saat periode atau pelanggannya dipindah. Ditolak jika
// tagihan sudah dibayar.
func Update(db *gorm.DB, usageID int64, req dto.UpdateUsageRequest) (*model.UsageModel, error) {
	if err := ValidatePeriod(req.Bulan, req.Tahun); err != nil {
		return nil, fiber.NewError(fiber.StatusUnprocessableEntity, err.Error())
	}
	if err := ValidateMeters(req.MeterAwal, req.MeterAkhir); err != nil {
		return nil, fiber.NewError(fiber.StatusUnprocessableEntity, err.Error())
	}

	var usage model.UsageModel
	err := db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("id_penggunaan = ?", usageID).Take(&usage).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fiber.NewError(fiber.StatusNotFound, "Penggunaan tidak ditemukan")
			}
			return err
		}

		if req.IDPelanggan != nil && *req.IDPelanggan != usage.IDPelanggan {
			var target customerModel.CustomerModel
			if err := tx.Where("id_pelanggan = ?", *req.IDPelanggan).Take(&target).Error; err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					return fiber.NewError(fiber.StatusNotFound, "Pelanggan tujuan tidak ditemukan")
				}
				return err
			}
		}

		var bill billModel.BillModel
		if err := tx.Where("id_penggunaan = ?", usageID).Take(&bill).Error; err != nil {
			if !errors.Is(err, gorm.ErrRecordNotFound) {
				return err
			}
		} else if bill.Status == billModel.StatusPaid {
			return fiber.NewError(fiber.StatusConflict, "Penggunaan tidak bisa diubah: tagihannya sudah dibayar")
		}

		applyUpdate(&usage, &bill, req)
		if err := tx.Save(&usage).Error; err != nil {
			if isDuplicateErr(err) {
				return fiber.NewError(fiber.StatusConflict,
					fmt.Sprintf("Penggunaan pelanggan %d periode %d/%d sudah tercatat", usage.IDPelanggan, req.Bulan, req.Tahun))
			}
			return err
		}

		if bill.IDTagihan != 0 {
			return tx.Save(&bill).Error
		}
		return nil
	})
	if err != nil {
		var fe *fiber.Error
		if errors.As(err, &fe) {
			return nil, fe
		}
		return nil, fiber.NewError(fiber.StatusInternalServerError, "Gagal memperbarui penggunaan: "+err.Error())
	}
	return &usage, nil
}

/* ================= DELETE ================= */
// Menghapus penggunaan ikut menghapus tagihan belum-bayarnya.
// Ditolak (409) jika tagihan sudah punya pembayaran.
func Delete(db *gorm.DB, usageID int64) error {
	err := db.Transaction(func(tx *gorm.DB) error {
		var usage model.UsageModel
		if err := tx.Where("id_penggunaan = ?", usageID).Take(&usage).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fiber.NewError(fiber.StatusNotFound, "Penggunaan tidak ditemukan")
			}
			return err
		}

		var bill billModel.BillModel
		if err := tx.Where("id_penggunaan = ?", usageID).Take(&bill).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return tx.Delete(&usage).Error
			}
			return err
		}

		var paid int64
		if err := tx.Model(&paymentModel.PaymentModel{}).
			Where("id_tagihan = ?", bill.IDTagihan).
			Count(&paid).Error; err != nil {
			return err
		}
		if paid > 0 || bill.Status == billModel.StatusPaid {
			return fiber.NewError(fiber.StatusConflict, "Penggunaan tidak bisa dihapus: tagihannya sudah dibayar")
		}

		if err := tx.Delete(&bill).Error; err != nil {
			return err
		}
		return tx.Delete(&usage).Error
	})
	if err != nil {
		var fe *fiber.Error
		if errors.As(err, &fe) {
			return fe
		}
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal menghapus penggunaan: "+err.Error())
	}
	return nil
}

/* ================= QUERY ================= */

func usageQuery(db *gorm.DB) *gorm.DB {
	return db.Table("penggunaan pg").
		Select(`pg.id_penggunaan, pg.id_pelanggan, pg.bulan, pg.tahun,
			pg.meter_awal, pg.meter_akhir, pl.nama_pelanggan, pl.nomor_kwh`).
		Joins("JOIN pelanggan pl ON pl.id_pelanggan = pg.id_pelanggan")
}

func FindUsageDetail(db *gorm.DB, usageID int64) (*dto.UsageDetail, error) {
	var row dto.UsageDetail
	err := usageQuery(db).Where("pg.id_penggunaan = ?", usageID).Take(&row).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	row.JumlahMeter = row.MeterAkhir - row.MeterAwal
	return &row, nil
}

func ListUsageDetails(db *gorm.DB, f dto.ListUsageQuery, limit, offset int) ([]dto.UsageDetail, int64, error) {
	base := usageQuery(db)
	if f.IDPelanggan > 0 {
		base = base.Where("pg.id_pelanggan = ?", f.IDPelanggan)
	}
	if f.Bulan > 0 {
		base = base.Where("pg.bulan = ?", f.Bulan)
	}
	if f.Tahun > 0 {
		base = base.Where("pg.tahun = ?", f.Tahun)
	}
	if q := strings.TrimSpace(f.Q); q != "" {
		like := fmt.Sprintf("%%%s%%", strings.ToLower(q))
		base = base.Where("(LOWER(pl.nama_pelanggan) LIKE ? OR LOWER(pl.nomor_kwh) LIKE ?)", like, like)
	}

	var total int64
	if err := base.Session(&gorm.Session{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var rows []dto.UsageDetail
	query := base.Session(&gorm.Session{}).Order("pg.tahun ASC, pg.bulan ASC, pg.id_penggunaan ASC")
	if limit > 0 {
		query = query.Limit(limit).Offset(offset)
	}
	if err := query.Find(&rows).Error; err != nil {
		return nil, 0, err
	}
	for i := range rows {
		rows[i].JumlahMeter = rows[i].MeterAkhir - rows[i].MeterAwal
	}
	return rows, total, nil
}

// LastFor: penggunaan terakhir pelanggan, untuk prefill pencatatan berikutnya.
func LastFor(db *gorm.DB, customerID int64) (*dto.LastUsageResponse, error) {
	var usage model.UsageModel
	err := db.Where("id_pelanggan = ?", customerID).
		Order("tahun DESC, bulan DESC").
		Take(&usage).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return &dto.LastUsageResponse{IDPelanggan: customerID}, nil
		}
		return nil, err
	}

	nextBulan, nextTahun := NextPeriod(usage.Bulan, usage.Tahun)
	return &dto.LastUsageResponse{
		IDPelanggan:   customerID,
		LastMeter:     usage.MeterAkhir,
		NextBulan:     nextBulan,
		NextTahun:     nextTahun,
		HasUsage:      true,
		LastBulan:     usage.Bulan,
		LastTahun:     usage.Tahun,
		LastMeterAwal: usage.MeterAwal,
	}, nil
}
