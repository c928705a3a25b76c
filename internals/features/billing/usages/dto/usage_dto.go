package dto

type CreateUsageRequest struct {
	IDPelanggan int64 `json:"id_pelanggan" validate:"required,gt=0"`
	Bulan       int   `json:"bulan" validate:"required,min=1,max=12"`
	Tahun       int   `json:"tahun" validate:"required,min=2000,max=2100"`
	MeterAwal   int64 `json:"meter_awal" validate:"min=0"`
	MeterAkhir  int64 `json:"meter_akhir" validate:"min=0"`
}

// UpdateUsageRequest: angka meter dan periode diperlakukan sebagai satu
// kesatuan agar tagihan ikut konsisten. IDPelanggan opsional untuk
// memindahkan catatan ke pelanggan lain (tagihannya ikut pindah).
type UpdateUsageRequest struct {
	IDPelanggan *int64 `json:"id_pelanggan" validate:"omitempty,gt=0"`
	Bulan       int    `json:"bulan" validate:"required,min=1,max=12"`
	Tahun       int    `json:"tahun" validate:"required,min=2000,max=2100"`
	MeterAwal   int64  `json:"meter_awal" validate:"min=0"`
	MeterAkhir  int64  `json:"meter_akhir" validate:"min=0"`
}

type ListUsageQuery struct {
	IDPelanggan int64  `query:"id_pelanggan"`
	Bulan       int    `query:"bulan"`
	Tahun       int    `query:"tahun"`
	Q           string `query:"q"`
}

// UsageDetail: baris penggunaan + identitas pelanggannya.
type UsageDetail struct {
	IDPenggunaan  int64  `gorm:"column:id_penggunaan" json:"id_penggunaan"`
	IDPelanggan   int64  `gorm:"column:id_pelanggan" json:"id_pelanggan"`
	Bulan         int    `gorm:"column:bulan" json:"bulan"`
	Tahun         int    `gorm:"column:tahun" json:"tahun"`
	MeterAwal     int64  `gorm:"column:meter_awal" json:"meter_awal"`
	MeterAkhir    int64  `gorm:"column:meter_akhir" json:"meter_akhir"`
	NamaPelanggan string `gorm:"column:nama_pelanggan" json:"nama_pelanggan"`
	NomorKwh      string `gorm:"column:nomor_kwh" json:"nomor_kwh"`

	JumlahMeter int64 `gorm:"-" json:"jumlah_meter"`
}

// LastUsageResponse: prefill form pencatatan bulan berikutnya.
type LastUsageResponse struct {
	IDPelanggan   int64 `json:"id_pelanggan"`
	LastMeter     int64 `json:"last_meter"`
	NextBulan     int   `json:"next_bulan"`
	NextTahun     int   `json:"next_tahun"`
	HasUsage      bool  `json:"has_usage"`
	LastBulan     int   `json:"last_bulan,omitempty"`
	LastTahun     int   `json:"last_tahun,omitempty"`
	LastMeterAwal int64 `json:"last_meter_awal,omitempty"`
}
