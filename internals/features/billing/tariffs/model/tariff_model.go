package model

// TariffModel: data referensi tarif per golongan daya (tabel `tarif`).
// Read-only dari sisi aplikasi.
type TariffModel struct {
	IDTarif int64 `gorm:"column:id_tarif;primaryKey;autoIncrement" json:"id_tarif"`

	// Daya terpasang dalam VA (450, 900, 1300, ...)
	Daya int `gorm:"column:daya;not null" json:"daya"`

	// Tarif per kWh dalam rupiah, bisa pecahan (mis. 1444.70)
	TarifPerKwh float64 `gorm:"column:tarifperkwh;type:numeric(12,2);not null" json:"tarifperkwh"`
}

func (TariffModel) TableName() string { return "tarif" }
