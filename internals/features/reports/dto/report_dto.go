package dto

// BillRow: satu baris laporan bulanan (tagihan + pelanggan + tarifnya).
type BillRow struct {
	IDTagihan     int64   `gorm:"column:id_tagihan" json:"id_tagihan"`
	IDPelanggan   int64   `gorm:"column:id_pelanggan" json:"id_pelanggan"`
	Bulan         int     `gorm:"column:bulan" json:"bulan"`
	Tahun         int     `gorm:"column:tahun" json:"tahun"`
	NamaPelanggan string  `gorm:"column:nama_pelanggan" json:"nama_pelanggan"`
	NomorKwh      string  `gorm:"column:nomor_kwh" json:"nomor_kwh"`
	JumlahMeter   int64   `gorm:"column:jumlah_meter" json:"jumlah_meter"`
	TarifPerKwh   float64 `gorm:"column:tarifperkwh" json:"tarifperkwh"`
	Status        string  `gorm:"column:status" json:"status"`

	TotalBayar int64 `gorm:"-" json:"total_bayar"`
}

// MonthlySummary: agregat laporan satu periode.
type MonthlySummary struct {
	Bulan             int   `json:"bulan"`
	Tahun             int   `json:"tahun"`
	TotalBills        int   `json:"total_bills"`
	PaidCount         int   `json:"paid_count"`
	UnpaidCount       int   `json:"unpaid_count"`
	DistinctCustomers int   `json:"distinct_customers"`
	TotalAmount       int64 `json:"total_amount"`
	PaidAmount        int64 `json:"paid_amount"`
}

// DashboardStats: angka-angka ringkas untuk halaman depan admin.
type DashboardStats struct {
	TotalCustomers int64 `json:"total_customers"`
	TotalUsages    int64 `json:"total_usages"`
	TotalBills     int64 `json:"total_bills"`
	UnpaidBills    int64 `json:"unpaid_bills"`
	PaidBills      int64 `json:"paid_bills"`
	TotalPayments  int64 `json:"total_payments"`
	TotalRevenue   int64 `json:"total_revenue"`
}
