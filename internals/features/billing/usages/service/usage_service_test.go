package service

import (
	"testing"

	billModel "listrikku_backend/internals/features/billing/bills/model"
	dto "listrikku_backend/internals/features/billing/usages/dto"
	model "listrikku_backend/internals/features/billing/usages/model"
)

func int64Ptr(v int64) *int64 { return &v }

func TestApplyUpdate(t *testing.T) {
	base := func() (model.UsageModel, billModel.BillModel) {
		usage := model.UsageModel{
			IDPenggunaan: 5, IDPelanggan: 10,
			Bulan: 6, Tahun: 2024, MeterAwal: 100, MeterAkhir: 250,
		}
		bill := billModel.BillModel{
			IDTagihan: 7, IDPenggunaan: 5, IDPelanggan: 10,
			Bulan: 6, Tahun: 2024, JumlahMeter: 150, Status: billModel.StatusUnpaid,
		}
		return usage, bill
	}

	t.Run("pindah pelanggan ikut memindahkan tagihan", func(t *testing.T) {
		usage, bill := base()
		applyUpdate(&usage, &bill, dto.UpdateUsageRequest{
			IDPelanggan: int64Ptr(22),
			Bulan:       7, Tahun: 2024,
			MeterAwal: 100, MeterAkhir: 300,
		})
		if usage.IDPelanggan != 22 {
			t.Errorf("usage.IDPelanggan = %d, want 22", usage.IDPelanggan)
		}
		if bill.IDPelanggan != 22 {
			t.Errorf("bill.IDPelanggan = %d, want 22 (tagihan harus ikut pindah)", bill.IDPelanggan)
		}
		if bill.Bulan != 7 || bill.Tahun != 2024 {
			t.Errorf("periode tagihan = %d/%d, want 7/2024", bill.Bulan, bill.Tahun)
		}
		if bill.JumlahMeter != 200 {
			t.Errorf("bill.JumlahMeter = %d, want 200 (dihitung ulang)", bill.JumlahMeter)
		}
	})

	t.Run("tanpa id_pelanggan pelanggan tidak berubah", func(t *testing.T) {
		usage, bill := base()
		applyUpdate(&usage, &bill, dto.UpdateUsageRequest{
			Bulan: 6, Tahun: 2024, MeterAwal: 100, MeterAkhir: 260,
		})
		if usage.IDPelanggan != 10 || bill.IDPelanggan != 10 {
			t.Errorf("IDPelanggan usage/bill = %d/%d, want 10/10", usage.IDPelanggan, bill.IDPelanggan)
		}
		if bill.JumlahMeter != 160 {
			t.Errorf("bill.JumlahMeter = %d, want 160", bill.JumlahMeter)
		}
	})

	t.Run("tanpa tagihan hanya usage yang berubah", func(t *testing.T) {
		usage, _ := base()
		var noBill billModel.BillModel
		applyUpdate(&usage, &noBill, dto.UpdateUsageRequest{
			IDPelanggan: int64Ptr(22),
			Bulan:       8, Tahun: 2024,
			MeterAwal: 100, MeterAkhir: 250,
		})
		if usage.IDPelanggan != 22 || usage.Bulan != 8 {
			t.Errorf("usage = %+v, want id_pelanggan=22 bulan=8", usage)
		}
		if noBill.IDPelanggan != 0 {
			t.Errorf("bill kosong ikut termutasi: %+v", noBill)
		}
	})
}
