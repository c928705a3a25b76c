package service

import (
	"errors"
	"fmt"
	"time"

	model "listrikku_backend/internals/features/payment/payments/model"
)

var ErrBillNotFound = errors.New("tagihan tidak ditemukan")

type PayBillInput struct {
	IDTagihan int64
	// OperatorID 0 = pakai admin default (pembayaran pelanggan / gateway).
	OperatorID int64
	BiayaAdmin int64
	Reference  string
	Now        time.Time
}

// Reconciler menegakkan invariannya: maksimal satu pembayaran per tagihan,
// dan tagihan yang punya pembayaran selalu berstatus SUDAH BAYAR.
type Reconciler struct {
	Store Store
}

func NewReconciler(store Store) *Reconciler { return &Reconciler{Store: store} }

// PayBill idempoten: dipanggil berapa kali pun untuk tagihan yang sama,
// hasil akhirnya satu baris pembayaran (yang pertama menang) dan status
// SUDAH BAYAR. created=false berarti pembayaran lama yang dikembalikan.
func (r *Reconciler) PayBill(in PayBillInput) (*model.PaymentModel, bool, error) {
	bill, err := r.Store.FindBill(in.IDTagihan)
	if err != nil {
		return nil, false, err
	}
	if bill == nil {
		return nil, false, ErrBillNotFound
	}

	operator := in.OperatorID
	if operator == 0 {
		operator, err = r.Store.DefaultAdminID()
		if err != nil {
			return nil, false, err
		}
	}

	now := in.Now
	if now.IsZero() {
		now = time.Now()
	}
	ref := in.Reference
	if ref == "" {
		ref = fmt.Sprintf("MANUAL-%d-%d", bill.IDTagihan, now.Unix())
	}

	p := &model.PaymentModel{
		IDTagihan:         bill.IDTagihan,
		IDPelanggan:       bill.IDPelanggan,
		TanggalPembayaran: now,
		BulanBayar:        int(now.Month()),
		BiayaAdmin:        in.BiayaAdmin,
		TotalBayar:        bill.Amount + in.BiayaAdmin,
		IDUser:            operator,
		NomorReferensi:    ref,
	}

	// Insert + flip status jalan sebagai satu unit di store; jalur duplikat
	// tetap menegakkan status, jadi pemanggilan ulang menyembuhkan drift.
	created, err := r.Store.SettleBill(p)
	if err != nil {
		return nil, false, err
	}

	if !created {
		existing, err := r.Store.FindByBill(bill.IDTagihan)
		if err != nil {
			return nil, false, err
		}
		if existing != nil {
			return existing, false, nil
		}
	}
	return p, created, nil
}
