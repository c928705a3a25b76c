package service

import (
	"errors"
	"fmt"
	"strings"

	"gorm.io/gorm"

	dto "listrikku_backend/internals/features/billing/bills/dto"
	model "listrikku_backend/internals/features/billing/bills/model"
)

const billSelect = `t.id_tagihan, t.id_penggunaan, t.id_pelanggan, t.bulan, t.tahun,
	t.jumlah_meter, t.status,
	pl.nama_pelanggan, pl.username, pl.nomor_kwh, pl.alamat,
	tr.daya, tr.tarifperkwh`

func billQuery(db *gorm.DB) *gorm.DB {
	return db.Table("tagihan t").
		Select(billSelect).
		Joins("JOIN pelanggan pl ON pl.id_pelanggan = t.id_pelanggan").
		Joins("JOIN tarif tr ON tr.id_tarif = pl.id_tarif")
}

// FindBillDetail: satu tagihan + total derivasinya. nil jika tidak ada.
func FindBillDetail(db *gorm.DB, billID int64) (*dto.BillDetail, error) {
	var row dto.BillDetail
	err := billQuery(db).Where("t.id_tagihan = ?", billID).Take(&row).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	row.TotalBayar = DeriveAmount(row.JumlahMeter, row.TarifPerKwh)
	return &row, nil
}

// ListBillDetails: filter pelanggan & status bisa digabung bebas.
// Urutan default (tahun, bulan) menurun.
func ListBillDetails(db *gorm.DB, customerID *int64, status *string, q string, limit, offset int) ([]dto.BillDetail, int64, error) {
	base := billQuery(db)

	if customerID != nil {
		base = base.Where("t.id_pelanggan = ?", *customerID)
	}
	if status != nil {
		base = base.Where("t.status = ?", *status)
	}
	if q = strings.TrimSpace(q); q != "" {
		like := fmt.Sprintf("%%%s%%", strings.ToLower(q))
		base = base.Where(
			"(LOWER(pl.nama_pelanggan) LIKE ? OR LOWER(pl.username) LIKE ? OR LOWER(pl.nomor_kwh) LIKE ? OR LOWER(t.status) LIKE ?)",
			like, like, like, like,
		)
	}

	var total int64
	if err := base.Session(&gorm.Session{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var rows []dto.BillDetail
	query := base.Session(&gorm.Session{}).Order("t.tahun DESC, t.bulan DESC, t.id_tagihan DESC")
	if limit > 0 {
		query = query.Limit(limit).Offset(offset)
	}
	if err := query.Find(&rows).Error; err != nil {
		return nil, 0, err
	}
	for i := range rows {
		rows[i].TotalBayar = DeriveAmount(rows[i].JumlahMeter, rows[i].TarifPerKwh)
	}
	return rows, total, nil
}

// StatusFilter memetakan query ?status=unpaid|paid ke nilai kolom.
func StatusFilter(s string) *string {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "unpaid":
		v := model.StatusUnpaid
		return &v
	case "paid":
		v := model.StatusPaid
		return &v
	default:
		return nil
	}
}
