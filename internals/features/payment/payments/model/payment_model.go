package model

import "time"

// PaymentModel (tabel `pembayaran`): fakta durable bahwa sebuah tagihan
// sudah dibayar. Unique index di id_tagihan adalah mekanisme kebenaran
// "maksimal satu pembayaran per tagihan" - bukan optimasi.
type PaymentModel struct {
	IDPembayaran int64 `gorm:"column:id_pembayaran;primaryKey;autoIncrement" json:"id_pembayaran"`
	IDTagihan    int64 `gorm:"column:id_tagihan;not null;uniqueIndex:uq_pembayaran_tagihan" json:"id_tagihan"`
	IDPelanggan  int64 `gorm:"column:id_pelanggan;not null;index:idx_pembayaran_pelanggan" json:"id_pelanggan"`

	TanggalPembayaran time.Time `gorm:"column:tanggal_pembayaran;type:date;not null" json:"tanggal_pembayaran"`
	BulanBayar        int       `gorm:"column:bulan_bayar;not null" json:"bulan_bayar"`

	// Rupiah bulat (unit mata uang terkecil)
	BiayaAdmin int64 `gorm:"column:biaya_admin;not null;default:0" json:"biaya_admin"`
	TotalBayar int64 `gorm:"column:total_bayar;not null" json:"total_bayar"`

	// Operator yang dicatat: admin pelaku, atau admin default untuk
	// pembayaran inisiatif pelanggan / notifikasi gateway.
	IDUser int64 `gorm:"column:id_user;not null" json:"id_user"`

	// Referensi eksternal (dipakai juga sebagai acuan rekonsiliasi manual)
	NomorReferensi string `gorm:"column:nomor_referensi;size:64;not null" json:"nomor_referensi"`
}

func (PaymentModel) TableName() string { return "pembayaran" }
