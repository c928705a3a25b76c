package service

import (
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	billModel "listrikku_backend/internals/features/billing/bills/model"
	billService "listrikku_backend/internals/features/billing/bills/service"
	dto "listrikku_backend/internals/features/payment/payments/dto"
	model "listrikku_backend/internals/features/payment/payments/model"
	adminModel "listrikku_backend/internals/features/users/admins/model"
)

// BillFact: potret tagihan secukupnya untuk rekonsiliasi.
type BillFact struct {
	IDTagihan   int64
	IDPelanggan int64
	Bulan       int
	Tahun       int
	Amount      int64
	Status      string
}

// Store memisahkan rekonsiliasi dari GORM supaya bisa diuji tanpa DB.
type Store interface {
	// FindBill: nil, nil jika tagihan tidak ada.
	FindBill(billID int64) (*BillFact, error)
	// SettleBill: insert pembayaran lalu set status SUDAH BAYAR dalam satu
	// transaksi; gagal separuh tidak boleh meninggalkan baris.
	// created=false jika sudah ada pembayaran untuk tagihan itu (insert
	// kalah di unique index, bukan lewat pengecekan terpisah); status
	// tetap ditegakkan di jalur itu.
	SettleBill(p *model.PaymentModel) (created bool, err error)
	FindByBill(billID int64) (*model.PaymentModel, error)
	DefaultAdminID() (int64, error)
}

type GormStore struct {
	DB *gorm.DB
}

func NewGormStore(db *gorm.DB) *GormStore { return &GormStore{DB: db} }

func (s *GormStore) FindBill(billID int64) (*BillFact, error) {
	detail, err := billService.FindBillDetail(s.DB, billID)
	if err != nil || detail == nil {
		return nil, err
	}
	return &BillFact{
		IDTagihan:   detail.IDTagihan,
		IDPelanggan: detail.IDPelanggan,
		Bulan:       detail.Bulan,
		Tahun:       detail.Tahun,
		Amount:      detail.TotalBayar,
		Status:      detail.Status,
	}, nil
}

func (s *GormStore) SettleBill(p *model.PaymentModel) (bool, error) {
	created := false
	err := s.DB.Transaction(func(tx *gorm.DB) error {
		res := tx.Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "id_tagihan"}},
			DoNothing: true,
		}).Create(p)
		if res.Error != nil {
			return res.Error
		}
		created = res.RowsAffected > 0

		return tx.Model(&billModel.BillModel{}).
			Where("id_tagihan = ?", p.IDTagihan).
			Update("status", billModel.StatusPaid).Error
	})
	if err != nil {
		return false, err
	}
	return created, nil
}

func (s *GormStore) FindByBill(billID int64) (*model.PaymentModel, error) {
	var p model.PaymentModel
	err := s.DB.Where("id_tagihan = ?", billID).Take(&p).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &p, nil
}

// DefaultAdminID: operator tercatat untuk pembayaran tanpa admin pelaku
// (inisiatif pelanggan atau notifikasi gateway).
func (s *GormStore) DefaultAdminID() (int64, error) {
	var admin adminModel.AdminModel
	if err := s.DB.Order("id_user ASC").Take(&admin).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return 0, errors.New("tidak ada akun admin untuk dicatat sebagai operator")
		}
		return 0, err
	}
	return admin.IDUser, nil
}

// ListRecent: pembayaran terbaru untuk dashboard admin.
func ListRecent(db *gorm.DB, limit int) ([]dto.RecentPayment, error) {
	if limit <= 0 || limit > 50 {
		limit = 10
	}
	var rows []dto.RecentPayment
	err := db.Table("pembayaran pb").
		Select(`pb.id_pembayaran, pb.id_tagihan, pb.id_pelanggan, pb.total_bayar,
			pb.nomor_referensi, t.bulan, t.tahun, pl.nama_pelanggan, pl.nomor_kwh`).
		Joins("JOIN tagihan t ON t.id_tagihan = pb.id_tagihan").
		Joins("JOIN pelanggan pl ON pl.id_pelanggan = pb.id_pelanggan").
		Order("pb.id_pembayaran DESC").
		Limit(limit).
		Find(&rows).Error
	return rows, err
}
