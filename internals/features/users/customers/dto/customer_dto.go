package dto

type CreateCustomerRequest struct {
	Username      string `json:"username" validate:"required,min=3,max=50"`
	Password      string `json:"password" validate:"required,min=6,max=72"`
	NomorKwh      string `json:"nomor_kwh" validate:"required,max=30"`
	NamaPelanggan string `json:"nama_pelanggan" validate:"required,max=100"`
	Alamat        string `json:"alamat" validate:"required"`
	IDTarif       int64  `json:"id_tarif" validate:"required,gt=0"`
}

// UpdateCustomerRequest: field nil = tidak diubah. Password ikut diganti
// hanya jika dikirim.
type UpdateCustomerRequest struct {
	Password      *string `json:"password" validate:"omitempty,min=6,max=72"`
	NomorKwh      *string `json:"nomor_kwh" validate:"omitempty,max=30"`
	NamaPelanggan *string `json:"nama_pelanggan" validate:"omitempty,max=100"`
	Alamat        *string `json:"alamat" validate:"omitempty"`
	IDTarif       *int64  `json:"id_tarif" validate:"omitempty,gt=0"`
}

type ListCustomerQuery struct {
	Q string `query:"q"`
}

// CustomerDetail: pelanggan + golongan tarifnya.
type CustomerDetail struct {
	IDPelanggan   int64   `gorm:"column:id_pelanggan" json:"id_pelanggan"`
	Username      string  `gorm:"column:username" json:"username"`
	NomorKwh      string  `gorm:"column:nomor_kwh" json:"nomor_kwh"`
	NamaPelanggan string  `gorm:"column:nama_pelanggan" json:"nama_pelanggan"`
	Alamat        string  `gorm:"column:alamat" json:"alamat"`
	IDTarif       int64   `gorm:"column:id_tarif" json:"id_tarif"`
	Daya          int     `gorm:"column:daya" json:"daya"`
	TarifPerKwh   float64 `gorm:"column:tarifperkwh" json:"tarifperkwh"`
}
