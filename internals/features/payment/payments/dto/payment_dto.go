package dto

type MarkPaidRequest struct {
	BiayaAdmin     int64  `json:"biaya_admin" validate:"min=0"`
	NomorReferensi string `json:"nomor_referensi" validate:"omitempty,max=64"`
}

// CheckoutResponse: bekal frontend membuka Snap popup Midtrans.
type CheckoutResponse struct {
	OrderID     string `json:"order_id"`
	SnapToken   string `json:"snap_token"`
	RedirectURL string `json:"redirect_url"`
	ClientKey   string `json:"client_key"`
	GrossAmount int64  `json:"gross_amount"`
}

// WebhookRequest: subset payload notifikasi HTTP Midtrans yang dipakai.
type WebhookRequest struct {
	OrderID           string `json:"order_id"`
	TransactionStatus string `json:"transaction_status"`
	TransactionID     string `json:"transaction_id"`
	FraudStatus       string `json:"fraud_status"`
	GrossAmount       string `json:"gross_amount"`
}

// RecentPayment: baris riwayat pembayaran untuk dashboard admin.
type RecentPayment struct {
	IDPembayaran   int64  `gorm:"column:id_pembayaran" json:"id_pembayaran"`
	IDTagihan      int64  `gorm:"column:id_tagihan" json:"id_tagihan"`
	IDPelanggan    int64  `gorm:"column:id_pelanggan" json:"id_pelanggan"`
	NamaPelanggan  string `gorm:"column:nama_pelanggan" json:"nama_pelanggan"`
	NomorKwh       string `gorm:"column:nomor_kwh" json:"nomor_kwh"`
	Bulan          int    `gorm:"column:bulan" json:"bulan"`
	Tahun          int    `gorm:"column:tahun" json:"tahun"`
	TotalBayar     int64  `gorm:"column:total_bayar" json:"total_bayar"`
	NomorReferensi string `gorm:"column:nomor_referensi" json:"nomor_referensi"`
}
