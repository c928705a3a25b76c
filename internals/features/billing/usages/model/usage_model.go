package model

// UsageModel mencatat angka meter satu pelanggan untuk satu periode
// (tabel `penggunaan`). Pasangan (pelanggan, bulan, tahun) unik.
type UsageModel struct {
	IDPenggunaan int64 `gorm:"column:id_penggunaan;primaryKey;autoIncrement" json:"id_penggunaan"`
	IDPelanggan  int64 `gorm:"column:id_pelanggan;not null;uniqueIndex:uq_penggunaan_periode,priority:1" json:"id_pelanggan"`

	Bulan int `gorm:"column:bulan;not null;uniqueIndex:uq_penggunaan_periode,priority:2" json:"bulan"`
	Tahun int `gorm:"column:tahun;not null;uniqueIndex:uq_penggunaan_periode,priority:3" json:"tahun"`

	MeterAwal  int64 `gorm:"column:meter_awal;not null" json:"meter_awal"`
	MeterAkhir int64 `gorm:"column:meter_akhir;not null" json:"meter_akhir"`
}

func (UsageModel) TableName() string { return "penggunaan" }

// Consumption: kWh terpakai. Tidak pernah disimpan, selalu dihitung ulang.
func (u UsageModel) Consumption() int64 { return u.MeterAkhir - u.MeterAwal }
