package service

import (
	"errors"
	"sync"
	"testing"
	"time"

	billModel "listrikku_backend/internals/features/billing/bills/model"
	model "listrikku_backend/internals/features/payment/payments/model"
)

// mockStore: Store in-memory dengan semantik insert-if-absent yang sama
// dengan unique index di tabel pembayaran. settleErr mensimulasikan
// transaksi settle yang gagal: rollback total, tidak ada baris tersisa.
type mockStore struct {
	mu           sync.Mutex
	bills        map[int64]*BillFact
	payments     map[int64]*model.PaymentModel // key: id_tagihan
	defaultAdmin int64
	nextID       int64
	settleErr    error
}

func newMockStore() *mockStore {
	return &mockStore{
		bills:        make(map[int64]*BillFact),
		payments:     make(map[int64]*model.PaymentModel),
		defaultAdmin: 1,
	}
}

func (m *mockStore) addBill(id, customer int64, amount int64) {
	m.bills[id] = &BillFact{
		IDTagihan:   id,
		IDPelanggan: customer,
		Bulan:       12,
		Tahun:       2099,
		Amount:      amount,
		Status:      billModel.StatusUnpaid,
	}
}

func (m *mockStore) FindBill(billID int64) (*BillFact, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	b, ok := m.bills[billID]
	if !ok {
		return nil, nil
	}
	cp := *b
	return &cp, nil
}

func (m *mockStore) SettleBill(p *model.PaymentModel) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.settleErr != nil {
		return false, m.settleErr
	}

	created := false
	if _, exists := m.payments[p.IDTagihan]; !exists {
		m.nextID++
		p.IDPembayaran = m.nextID
		cp := *p
		m.payments[p.IDTagihan] = &cp
		created = true
	}
	if b, ok := m.bills[p.IDTagihan]; ok {
		b.Status = billModel.StatusPaid
	}
	return created, nil
}

func (m *mockStore) FindByBill(billID int64) (*model.PaymentModel, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	p, ok := m.payments[billID]
	if !ok {
		return nil, nil
	}
	cp := *p
	return &cp, nil
}

func (m *mockStore) DefaultAdminID() (int64, error) {
	return m.defaultAdmin, nil
}

func TestPayBillUnknownBill(t *testing.T) {
	r := NewReconciler(newMockStore())

	_, _, err := r.PayBill(PayBillInput{IDTagihan: 999})
	if !errors.Is(err, ErrBillNotFound) {
		t.Fatalf("PayBill(999) error = %v, want ErrBillNotFound", err)
	}
}

func TestPayBillCreatesPaymentAndMarksPaid(t *testing.T) {
	store := newMockStore()
	store.addBill(42, 7, 144470)
	r := NewReconciler(store)

	now := time.Date(2099, time.December, 5, 10, 0, 0, 0, time.UTC)
	p, created, err := r.PayBill(PayBillInput{
		IDTagihan:  42,
		OperatorID: 3,
		BiayaAdmin: 2500,
		Reference:  "KASIR-1",
		Now:        now,
	})
	if err != nil {
		t.Fatalf("PayBill error: %v", err)
	}
	if !created {
		t.Fatal("created = false, want true")
	}
	if p.TotalBayar != 146970 {
		t.Errorf("TotalBayar = %d, want 146970", p.TotalBayar)
	}
	if p.IDUser != 3 {
		t.Errorf("IDUser = %d, want 3", p.IDUser)
	}
	if p.BulanBayar != 12 {
		t.Errorf("BulanBayar = %d, want 12", p.BulanBayar)
	}
	if store.bills[42].Status != billModel.StatusPaid {
		t.Errorf("status tagihan = %q, want %q", store.bills[42].Status, billModel.StatusPaid)
	}
}

func TestPayBillIdempotent(t *testing.T) {
	store := newMockStore()
	store.addBill(42, 7, 144470)
	r := NewReconciler(store)

	first, created, err := r.PayBill(PayBillInput{IDTagihan: 42, OperatorID: 3})
	if err != nil || !created {
		t.Fatalf("pembayaran pertama: created=%v err=%v", created, err)
	}

	second, created, err := r.PayBill(PayBillInput{IDTagihan: 42, OperatorID: 9})
	if err != nil {
		t.Fatalf("pembayaran kedua error: %v", err)
	}
	if created {
		t.Fatal("pembayaran kedua created = true, want false")
	}
	if second.IDPembayaran != first.IDPembayaran {
		t.Errorf("pembayaran kedua id = %d, want %d (baris pertama yang menang)",
			second.IDPembayaran, first.IDPembayaran)
	}
	if second.IDUser != 3 {
		t.Errorf("operator = %d, want 3 (operator pertama dipertahankan)", second.IDUser)
	}
	if len(store.payments) != 1 {
		t.Errorf("jumlah pembayaran = %d, want 1", len(store.payments))
	}
}

func TestPayBillDefaultOperator(t *testing.T) {
	store := newMockStore()
	store.addBill(42, 7, 144470)
	store.defaultAdmin = 5
	r := NewReconciler(store)

	p, _, err := r.PayBill(PayBillInput{IDTagihan: 42})
	if err != nil {
		t.Fatalf("PayBill error: %v", err)
	}
	if p.IDUser != 5 {
		t.Errorf("IDUser = %d, want 5 (admin default)", p.IDUser)
	}
	if p.NomorReferensi == "" {
		t.Error("NomorReferensi kosong, want referensi MANUAL hasil generate")
	}
}

func TestPayBillFailedSettleLeavesStateUnchanged(t *testing.T) {
	store := newMockStore()
	store.addBill(42, 7, 144470)
	store.settleErr = errors.New("koneksi putus")
	r := NewReconciler(store)

	_, _, err := r.PayBill(PayBillInput{IDTagihan: 42, OperatorID: 3})
	if err == nil {
		t.Fatal("PayBill sukses, want error dari settle yang gagal")
	}
	if len(store.payments) != 0 {
		t.Errorf("jumlah pembayaran = %d, want 0 (gagal tidak boleh meninggalkan baris)", len(store.payments))
	}
	if store.bills[42].Status != billModel.StatusUnpaid {
		t.Errorf("status tagihan = %q, want %q (tidak berubah)", store.bills[42].Status, billModel.StatusUnpaid)
	}

	// setelah gangguan hilang, pemanggilan ulang menyelesaikan tagihan
	store.settleErr = nil
	p, created, err := r.PayBill(PayBillInput{IDTagihan: 42, OperatorID: 3})
	if err != nil || !created {
		t.Fatalf("pemanggilan ulang: created=%v err=%v, want created tanpa error", created, err)
	}
	if p.TotalBayar != 144470 {
		t.Errorf("TotalBayar = %d, want 144470", p.TotalBayar)
	}
}

func TestPayBillConcurrentAtMostOne(t *testing.T) {
	store := newMockStore()
	store.addBill(42, 7, 144470)
	r := NewReconciler(store)

	const n = 20
	var wg sync.WaitGroup
	var mu sync.Mutex
	createdCount := 0

	for i := 0; i < n; i++ {
		wg.Add(1)
		go func(op int64) {
			defer wg.Done()
			_, created, err := r.PayBill(PayBillInput{IDTagihan: 42, OperatorID: op})
			if err != nil {
				t.Errorf("PayBill error: %v", err)
				return
			}
			if created {
				mu.Lock()
				createdCount++
				mu.Unlock()
			}
		}(int64(i + 1))
	}
	wg.Wait()

	if createdCount != 1 {
		t.Errorf("created sejati = %d, want 1", createdCount)
	}
	if len(store.payments) != 1 {
		t.Errorf("jumlah pembayaran = %d, want 1", len(store.payments))
	}
	if store.bills[42].Status != billModel.StatusPaid {
		t.Errorf("status tagihan = %q, want %q", store.bills[42].Status, billModel.StatusPaid)
	}
}
