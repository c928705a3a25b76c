package model

// AdminModel merepresentasikan petugas/admin (tabel `user` pada skema lsp_listrik).
type AdminModel struct {
	IDUser    int64  `gorm:"column:id_user;primaryKey;autoIncrement" json:"id_user"`
	Username  string `gorm:"column:username;size:50;not null;uniqueIndex:uq_user_username" json:"username"`
	Password  string `gorm:"column:password;size:255;not null" json:"-"`
	NamaAdmin string `gorm:"column:nama_admin;size:100;not null" json:"nama_admin"`

	// Tingkat privilege (1 = administrator, 2 = petugas)
	IDLevel int `gorm:"column:id_level;not null;default:2" json:"id_level"`
}

func (AdminModel) TableName() string { return "user" }
