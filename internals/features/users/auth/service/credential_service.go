package service

import (
	"log"

	adminModel "listrikku_backend/internals/features/users/admins/model"
	customerModel "listrikku_backend/internals/features/users/customers/model"
	helper "listrikku_backend/internals/helpers"
)

// Principal: identitas terautentikasi (admin atau pelanggan).
type Principal struct {
	ID       int64  `json:"id"`
	Username string `json:"username"`
	Name     string `json:"name"`
	Role     string `json:"role"`
}

// CredentialStore: akses baris kredensial. Error hanya untuk kegagalan
// store; username tak dikenal dikembalikan sebagai (nil, nil).
type CredentialStore interface {
	FindAdminByUsername(username string) (*adminModel.AdminModel, error)
	FindCustomerByUsername(username string) (*customerModel.CustomerModel, error)
	UpdateAdminPassword(id int64, hashed string) error
	UpdateCustomerPassword(id int64, hashed string) error
}

type Verifier struct {
	Store CredentialStore
}

// VerifyAdmin: lookup username persis, terima hanya bentuk hash
// (bcrypt atau sha256 warisan). Kredensial salah → (nil, nil).
func (v Verifier) VerifyAdmin(username, password string) (*Principal, error) {
	admin, err := v.Store.FindAdminByUsername(username)
	if err != nil {
		return nil, err
	}
	if admin == nil {
		return nil, nil
	}

	ok, legacyForm := MatchStored(admin.Password, password, false)
	if !ok {
		return nil, nil
	}
	if legacyForm {
		v.normalize(func(hashed string) error {
			return v.Store.UpdateAdminPassword(admin.IDUser, hashed)
		}, password, username)
	}

	return &Principal{
		ID:       admin.IDUser,
		Username: admin.Username,
		Name:     admin.NamaAdmin,
		Role:     helper.RoleAdmin,
	}, nil
}

// VerifyCustomer: seperti VerifyAdmin plus fallback plaintext warisan -
// baris pelanggan lama bisa masih menyimpan password apa adanya.
func (v Verifier) VerifyCustomer(username, password string) (*Principal, error) {
	cust, err := v.Store.FindCustomerByUsername(username)
	if err != nil {
		return nil, err
	}
	if cust == nil {
		return nil, nil
	}

	ok, legacyForm := MatchStored(cust.Password, password, true)
	if !ok {
		return nil, nil
	}
	if legacyForm {
		v.normalize(func(hashed string) error {
			return v.Store.UpdateCustomerPassword(cust.IDPelanggan, hashed)
		}, password, username)
	}

	return &Principal{
		ID:       cust.IDPelanggan,
		Username: cust.Username,
		Name:     cust.NamaPelanggan,
		Role:     helper.RoleCustomer,
	}, nil
}

// normalize menulis ulang kolom password ke bcrypt setelah login sukses
// lewat bentuk warisan. Gagal normalisasi tidak membatalkan login.
func (v Verifier) normalize(update func(hashed string) error, password, username string) {
	hashed, err := HashPassword(password)
	if err != nil {
		log.Printf("[WARN] gagal hash ulang password %s: %v", username, err)
		return
	}
	if err := update(hashed); err != nil {
		log.Printf("[WARN] gagal normalisasi password %s: %v", username, err)
	}
}
