package service

import "fmt"

// ValidatePeriod memeriksa rentang periode pencatatan.
func ValidatePeriod(bulan, tahun int) error {
	if bulan < 1 || bulan > 12 {
		return fmt.Errorf("bulan harus 1-12, diberikan %d", bulan)
	}
	if tahun < 2000 || tahun > 2100 {
		return fmt.Errorf("tahun harus 2000-2100, diberikan %d", tahun)
	}
	return nil
}

// ValidateMeters: angka meter tidak boleh mundur atau negatif.
func ValidateMeters(awal, akhir int64) error {
	if awal < 0 {
		return fmt.Errorf("meter awal tidak boleh negatif")
	}
	if akhir < awal {
		return fmt.Errorf("meter akhir (%d) tidak boleh lebih kecil dari meter awal (%d)", akhir, awal)
	}
	return nil
}

// NextPeriod: periode setelah (bulan, tahun); Desember menggulung ke Januari.
func NextPeriod(bulan, tahun int) (int, int) {
	if bulan >= 12 {
		return 1, tahun + 1
	}
	return bulan + 1, tahun
}
