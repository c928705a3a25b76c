package service

import (
	"testing"

	billModel "listrikku_backend/internals/features/billing/bills/model"
	dto "listrikku_backend/internals/features/reports/dto"
)

func TestSummarize(t *testing.T) {
	t.Run("periode kosong", func(t *testing.T) {
		s := Summarize(12, 2099, nil)
		if s.TotalBills != 0 || s.PaidCount != 0 || s.UnpaidCount != 0 ||
			s.DistinctCustomers != 0 || s.TotalAmount != 0 {
			t.Errorf("summary = %+v, want semua nol", s)
		}
		if s.Bulan != 12 || s.Tahun != 2099 {
			t.Errorf("periode = %d/%d, want 12/2099", s.Bulan, s.Tahun)
		}
	})

	t.Run("campuran lunas dan belum", func(t *testing.T) {
		rows := []dto.BillRow{
			{IDTagihan: 1, IDPelanggan: 10, TotalBayar: 100000, Status: billModel.StatusPaid},
			{IDTagihan: 2, IDPelanggan: 10, TotalBayar: 60000, Status: billModel.StatusUnpaid},
		}
		s := Summarize(12, 2099, rows)
		if s.TotalBills != 2 {
			t.Errorf("TotalBills = %d, want 2", s.TotalBills)
		}
		if s.PaidCount != 1 || s.UnpaidCount != 1 {
			t.Errorf("paid/unpaid = %d/%d, want 1/1", s.PaidCount, s.UnpaidCount)
		}
		if s.DistinctCustomers != 1 {
			t.Errorf("DistinctCustomers = %d, want 1", s.DistinctCustomers)
		}
		if s.TotalAmount != 160000 {
			t.Errorf("TotalAmount = %d, want 160000", s.TotalAmount)
		}
		if s.PaidAmount != 100000 {
			t.Errorf("PaidAmount = %d, want 100000", s.PaidAmount)
		}
	})

	t.Run("pelanggan berbeda dihitung terpisah", func(t *testing.T) {
		rows := []dto.BillRow{
			{IDTagihan: 1, IDPelanggan: 10, TotalBayar: 50000, Status: billModel.StatusPaid},
			{IDTagihan: 2, IDPelanggan: 11, TotalBayar: 70000, Status: billModel.StatusPaid},
			{IDTagihan: 3, IDPelanggan: 12, TotalBayar: 30000, Status: billModel.StatusUnpaid},
		}
		s := Summarize(1, 2100, rows)
		if s.DistinctCustomers != 3 {
			t.Errorf("DistinctCustomers = %d, want 3", s.DistinctCustomers)
		}
		if s.TotalAmount != 150000 || s.PaidAmount != 120000 {
			t.Errorf("TotalAmount/PaidAmount = %d/%d, want 150000/120000", s.TotalAmount, s.PaidAmount)
		}
	})
}

func TestSummarizeAll(t *testing.T) {
	rows := []dto.BillRow{
		{IDTagihan: 1, IDPelanggan: 10, Bulan: 12, Tahun: 2099, TotalBayar: 100000, Status: billModel.StatusPaid},
		{IDTagihan: 2, IDPelanggan: 11, Bulan: 12, Tahun: 2099, TotalBayar: 60000, Status: billModel.StatusUnpaid},
		{IDTagihan: 3, IDPelanggan: 10, Bulan: 1, Tahun: 2100, TotalBayar: 80000, Status: billModel.StatusUnpaid},
	}
	out := SummarizeAll(rows)
	if len(out) != 2 {
		t.Fatalf("jumlah periode = %d, want 2", len(out))
	}
	// urutan: periode terbaru dulu
	if out[0].Tahun != 2100 || out[0].Bulan != 1 {
		t.Errorf("periode pertama = %d/%d, want 1/2100", out[0].Bulan, out[0].Tahun)
	}
	if out[1].Tahun != 2099 || out[1].Bulan != 12 {
		t.Errorf("periode kedua = %d/%d, want 12/2099", out[1].Bulan, out[1].Tahun)
	}
	if out[1].TotalBills != 2 || out[1].TotalAmount != 160000 || out[1].PaidCount != 1 {
		t.Errorf("ringkasan 12/2099 = %+v, want 2 tagihan / 160000 / 1 lunas", out[1])
	}
	if out[0].TotalBills != 1 || out[0].UnpaidCount != 1 {
		t.Errorf("ringkasan 1/2100 = %+v, want 1 tagihan belum bayar", out[0])
	}
}

func TestValidateReportFilter(t *testing.T) {
	tests := []struct {
		name    string
		bulan   int
		tahun   int
		wantErr bool
	}{
		{"tanpa filter", 0, 0, false},
		{"tahun saja", 0, 2099, false},
		{"bulan saja", 12, 0, false},
		{"bulan dan tahun", 12, 2099, false},
		{"bulan di luar rentang", 13, 2099, true},
		{"tahun di luar rentang", 12, 1999, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateReportFilter(tt.bulan, tt.tahun)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateReportFilter(%d, %d) err = %v, wantErr %v",
					tt.bulan, tt.tahun, err, tt.wantErr)
			}
		})
	}
}
