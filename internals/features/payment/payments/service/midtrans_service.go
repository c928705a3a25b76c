package service

import (
	"fmt"
	"time"

	midtrans "github.com/midtrans/midtrans-go"
	"github.com/midtrans/midtrans-go/snap"

	helper "listrikku_backend/internals/helpers"
)

/* =========================================================
   Midtrans Client
========================================================= */

var SnapClient snap.Client

// InitMidtrans harus dipanggil saat bootstrap app.
// useProduction=true untuk Production, false untuk Sandbox.
func InitMidtrans(serverKey string, useProduction bool) {
	if useProduction {
		SnapClient.New(serverKey, midtrans.Production)
	} else {
		SnapClient.New(serverKey, midtrans.Sandbox)
	}
}

// BuildOrderID: format yang dibongkar kembali oleh ParseOrderID.
func BuildOrderID(billID int64, now time.Time) string {
	return fmt.Sprintf("INV-%d-%d", billID, now.Unix())
}

/* =========================================================
   Generate Snap Token
========================================================= */

func GenerateSnapToken(orderID string, gross int64, customerName, username string, bulan, tahun int) (string, string, error) {
	if gross <= 0 {
		return "", "", fmt.Errorf("nominal tagihan tidak valid: %d", gross)
	}

	req := &snap.Request{
		TransactionDetails: midtrans.TransactionDetails{
			OrderID:  orderID,
			GrossAmt: gross,
		},
		CustomerDetail: &midtrans.CustomerDetails{
			FName: customerName,
			Email: username + "@listrikku.local",
		},
		Items: &[]midtrans.ItemDetails{
			{
				ID:       orderID,
				Price:    gross,
				Qty:      1,
				Name:     fmt.Sprintf("Tagihan Listrik %s %d", helper.MonthLabel(bulan), tahun),
				Category: "Listrik Pascabayar",
			},
		},
	}

	resp, err := SnapClient.CreateTransaction(req)
	if err != nil {
		return "", "", err
	}
	return resp.Token, resp.RedirectURL, nil
}
