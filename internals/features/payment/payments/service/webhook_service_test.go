package service

import (
	"testing"
	"time"
)

func TestParseOrderID(t *testing.T) {
	tests := []struct {
		name    string
		orderID string
		want    int64
		wantErr bool
	}{
		{"format standar", "INV-42-1699999999", 42, false},
		{"prefix huruf kecil", "inv-7-123", 7, false},
		{"spasi di pinggir", "  INV-42-1699999999  ", 42, false},
		{"tanpa prefix", "42-1699999999", 0, true},
		{"prefix salah", "PAY-42-1699999999", 0, true},
		{"id bukan angka", "INV-abc-123", 0, true},
		{"id nol", "INV-0-123", 0, true},
		{"terlalu pendek", "INV-42", 0, true},
		{"kosong", "", 0, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseOrderID(tt.orderID)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseOrderID(%q) error = %v, wantErr %v", tt.orderID, err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("ParseOrderID(%q) = %d, want %d", tt.orderID, got, tt.want)
			}
		})
	}
}

func TestIsPaidStatus(t *testing.T) {
	paid := []string{"settlement", "capture", "success", "SETTLEMENT", " Capture "}
	for _, s := range paid {
		if !IsPaidStatus(s) {
			t.Errorf("IsPaidStatus(%q) = false, want true", s)
		}
	}
	notPaid := []string{"pending", "deny", "expire", "cancel", "refund", ""}
	for _, s := range notPaid {
		if IsPaidStatus(s) {
			t.Errorf("IsPaidStatus(%q) = true, want false", s)
		}
	}
}

func TestBuildAndParseOrderIDRoundTrip(t *testing.T) {
	orderID := BuildOrderID(42, time.Unix(1699999999, 0))
	if orderID != "INV-42-1699999999" {
		t.Fatalf("BuildOrderID = %q, want INV-42-1699999999", orderID)
	}
	id, err := ParseOrderID(orderID)
	if err != nil {
		t.Fatalf("ParseOrderID(%q) error: %v", orderID, err)
	}
	if id != 42 {
		t.Errorf("ParseOrderID(%q) = %d, want 42", orderID, id)
	}
}
