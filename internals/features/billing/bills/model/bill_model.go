package model

// Status tagihan mengikuti nilai persis di skema lsp_listrik.
const (
	StatusUnpaid = "BELUM BAYAR"
	StatusPaid   = "SUDAH BAYAR"
)

// BillModel (tabel `tagihan`) dibuat satu-satu dengan baris penggunaannya,
// dalam transaksi yang sama (tanpa trigger DB). Total rupiah tidak disimpan;
// dihitung dari jumlah_meter × tarif saat dibaca.
type BillModel struct {
	IDTagihan    int64 `gorm:"column:id_tagihan;primaryKey;autoIncrement" json:"id_tagihan"`
	IDPenggunaan int64 `gorm:"column:id_penggunaan;not null;index:idx_tagihan_penggunaan" json:"id_penggunaan"`
	IDPelanggan  int64 `gorm:"column:id_pelanggan;not null;index:idx_tagihan_pelanggan" json:"id_pelanggan"`

	Bulan int `gorm:"column:bulan;not null" json:"bulan"`
	Tahun int `gorm:"column:tahun;not null" json:"tahun"`

	// kWh tertagih, salinan konsumsi penggunaan saat tagihan diterbitkan
	JumlahMeter int64 `gorm:"column:jumlah_meter;not null" json:"jumlah_meter"`

	Status string `gorm:"column:status;size:20;not null;default:BELUM BAYAR" json:"status"`
}

func (BillModel) TableName() string { return "tagihan" }
