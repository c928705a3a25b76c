package service

import (
	"testing"

	adminModel "listrikku_backend/internals/features/users/admins/model"
	customerModel "listrikku_backend/internals/features/users/customers/model"
	helper "listrikku_backend/internals/helpers"
)

type mockCredStore struct {
	admins    map[string]*adminModel.AdminModel
	customers map[string]*customerModel.CustomerModel

	adminUpdates    map[int64]string
	customerUpdates map[int64]string
}

func newMockCredStore() *mockCredStore {
	return &mockCredStore{
		admins:          make(map[string]*adminModel.AdminModel),
		customers:       make(map[string]*customerModel.CustomerModel),
		adminUpdates:    make(map[int64]string),
		customerUpdates: make(map[int64]string),
	}
}

func (m *mockCredStore) FindAdminByUsername(username string) (*adminModel.AdminModel, error) {
	return m.admins[username], nil
}

func (m *mockCredStore) FindCustomerByUsername(username string) (*customerModel.CustomerModel, error) {
	return m.customers[username], nil
}

func (m *mockCredStore) UpdateAdminPassword(id int64, hashed string) error {
	m.adminUpdates[id] = hashed
	return nil
}

func (m *mockCredStore) UpdateCustomerPassword(id int64, hashed string) error {
	m.customerUpdates[id] = hashed
	return nil
}

func TestVerifyAdmin(t *testing.T) {
	store := newMockCredStore()
	hashed, err := HashPassword("rahasia1")
	if err != nil {
		t.Fatal(err)
	}
	store.admins["admin"] = &adminModel.AdminModel{
		IDUser: 1, Username: "admin", Password: hashed, NamaAdmin: "Administrator", IDLevel: 1,
	}
	store.admins["petugas_lama"] = &adminModel.AdminModel{
		IDUser: 2, Username: "petugas_lama", Password: LegacySHA256("lama123"), NamaAdmin: "Petugas", IDLevel: 2,
	}
	v := Verifier{Store: store}

	t.Run("bcrypt cocok", func(t *testing.T) {
		p, err := v.VerifyAdmin("admin", "rahasia1")
		if err != nil {
			t.Fatal(err)
		}
		if p == nil || p.ID != 1 || p.Role != helper.RoleAdmin {
			t.Fatalf("principal = %+v, want id=1 role=admin", p)
		}
	})

	t.Run("password salah", func(t *testing.T) {
		p, err := v.VerifyAdmin("admin", "salah")
		if err != nil || p != nil {
			t.Fatalf("got (%+v, %v), want (nil, nil)", p, err)
		}
	})

	t.Run("username tak dikenal", func(t *testing.T) {
		p, err := v.VerifyAdmin("hantu", "apapun")
		if err != nil || p != nil {
			t.Fatalf("got (%+v, %v), want (nil, nil)", p, err)
		}
	})

	t.Run("sha256 warisan dinormalkan", func(t *testing.T) {
		p, err := v.VerifyAdmin("petugas_lama", "lama123")
		if err != nil || p == nil {
			t.Fatalf("got (%+v, %v), want principal", p, err)
		}
		newHash, ok := store.adminUpdates[2]
		if !ok {
			t.Fatal("password tidak dinormalkan ke bcrypt")
		}
		if ok, _ := MatchStored(newHash, "lama123", false); !ok {
			t.Error("hash hasil normalisasi tidak cocok dengan password")
		}
	})

	t.Run("plaintext ditolak untuk admin", func(t *testing.T) {
		store.admins["plain"] = &adminModel.AdminModel{
			IDUser: 3, Username: "plain", Password: "telanjang", NamaAdmin: "Plain",
		}
		p, err := v.VerifyAdmin("plain", "telanjang")
		if err != nil || p != nil {
			t.Fatalf("got (%+v, %v), want (nil, nil) - plaintext hanya untuk pelanggan", p, err)
		}
	})
}

func TestVerifyCustomer(t *testing.T) {
	store := newMockCredStore()
	store.customers["pel_test"] = &customerModel.CustomerModel{
		IDPelanggan: 10, Username: "pel_test", Password: LegacySHA256("pel123"),
		NamaPelanggan: "Pelanggan Uji", NomorKwh: "90011223", IDTarif: 1,
	}
	store.customers["pel_plain"] = &customerModel.CustomerModel{
		IDPelanggan: 11, Username: "pel_plain", Password: "polos99",
		NamaPelanggan: "Pelanggan Lama", NomorKwh: "90011224", IDTarif: 1,
	}
	v := Verifier{Store: store}

	t.Run("sha256 warisan cocok", func(t *testing.T) {
		p, err := v.VerifyCustomer("pel_test", "pel123")
		if err != nil {
			t.Fatal(err)
		}
		if p == nil || p.ID != 10 || p.Role != helper.RoleCustomer {
			t.Fatalf("principal = %+v, want id=10 role=pelanggan", p)
		}
		if _, ok := store.customerUpdates[10]; !ok {
			t.Error("password warisan tidak dinormalkan ke bcrypt")
		}
	})

	t.Run("password salah", func(t *testing.T) {
		p, err := v.VerifyCustomer("pel_test", "salah")
		if err != nil || p != nil {
			t.Fatalf("got (%+v, %v), want (nil, nil)", p, err)
		}
	})

	t.Run("plaintext warisan diterima lalu dinormalkan", func(t *testing.T) {
		p, err := v.VerifyCustomer("pel_plain", "polos99")
		if err != nil || p == nil {
			t.Fatalf("got (%+v, %v), want principal", p, err)
		}
		newHash, ok := store.customerUpdates[11]
		if !ok {
			t.Fatal("password plaintext tidak dinormalkan")
		}
		if ok, legacy := MatchStored(newHash, "polos99", true); !ok || legacy {
			t.Errorf("MatchStored(normalized) = (%v, %v), want (true, false)", ok, legacy)
		}
	})
}
