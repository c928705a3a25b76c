package dto

// BillDetail: baris tagihan hasil join pelanggan + tarif.
// TotalBayar tidak pernah disimpan - dihitung ulang tiap baca.
type BillDetail struct {
	IDTagihan    int64  `gorm:"column:id_tagihan" json:"id_tagihan"`
	IDPenggunaan int64  `gorm:"column:id_penggunaan" json:"id_penggunaan"`
	IDPelanggan  int64  `gorm:"column:id_pelanggan" json:"id_pelanggan"`
	Bulan        int    `gorm:"column:bulan" json:"bulan"`
	Tahun        int    `gorm:"column:tahun" json:"tahun"`
	JumlahMeter  int64  `gorm:"column:jumlah_meter" json:"jumlah_meter"`
	Status       string `gorm:"column:status" json:"status"`

	NamaPelanggan string `gorm:"column:nama_pelanggan" json:"nama_pelanggan"`
	Username      string `gorm:"column:username" json:"username"`
	NomorKwh      string `gorm:"column:nomor_kwh" json:"nomor_kwh"`
	Alamat        string `gorm:"column:alamat" json:"alamat"`

	Daya        int     `gorm:"column:daya" json:"daya"`
	TarifPerKwh float64 `gorm:"column:tarifperkwh" json:"tarifperkwh"`

	TotalBayar int64 `gorm:"-" json:"total_bayar"`
}

// ListBillQuery: filter list tagihan; semua opsional dan bisa digabung.
type ListBillQuery struct {
	Status string `query:"status"` // "unpaid" | "paid" | kosong
	Q      string `query:"q"`
}
