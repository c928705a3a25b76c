package dto

type CreateAdminRequest struct {
	Username  string `json:"username" validate:"required,min=3,max=50"`
	Password  string `json:"password" validate:"required,min=6,max=72"`
	NamaAdmin string `json:"nama_admin" validate:"required,max=100"`
	IDLevel   int    `json:"id_level" validate:"omitempty,oneof=1 2"`
}

type UpdateAdminRequest struct {
	Password  *string `json:"password" validate:"omitempty,min=6,max=72"`
	NamaAdmin *string `json:"nama_admin" validate:"omitempty,max=100"`
	IDLevel   *int    `json:"id_level" validate:"omitempty,oneof=1 2"`
}

type ListAdminQuery struct {
	Q string `query:"q"`
}
