package model

// CustomerModel merepresentasikan pelanggan listrik pascabayar (tabel `pelanggan`).
//
// Kolom password bisa berisi tiga bentuk: hash bcrypt (baris baru), hex
// SHA-256 (warisan SHA2(p,256) dari skema MySQL lama), atau plaintext
// (baris paling lama). Verifier menormalkan ke bcrypt saat login sukses.
type CustomerModel struct {
	IDPelanggan   int64  `gorm:"column:id_pelanggan;primaryKey;autoIncrement" json:"id_pelanggan"`
	Username      string `gorm:"column:username;size:50;not null;uniqueIndex:uq_pelanggan_username" json:"username"`
	Password      string `gorm:"column:password;size:255;not null" json:"-"`
	NomorKwh      string `gorm:"column:nomor_kwh;size:30;not null" json:"nomor_kwh"`
	NamaPelanggan string `gorm:"column:nama_pelanggan;size:100;not null" json:"nama_pelanggan"`
	Alamat        string `gorm:"column:alamat;type:text;not null" json:"alamat"`
	IDTarif       int64  `gorm:"column:id_tarif;not null" json:"id_tarif"`
}

func (CustomerModel) TableName() string { return "pelanggan" }
