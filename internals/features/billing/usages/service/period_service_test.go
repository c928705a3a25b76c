package service

import "testing"

func TestValidatePeriod(t *testing.T) {
	tests := []struct {
		name    string
		bulan   int
		tahun   int
		wantErr bool
	}{
		{"periode normal", 6, 2024, false},
		{"januari", 1, 2000, false},
		{"desember", 12, 2100, false},
		{"bulan nol", 0, 2024, true},
		{"bulan 13", 13, 2024, true},
		{"tahun terlalu kecil", 6, 1999, true},
		{"tahun terlalu besar", 6, 2101, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidatePeriod(tt.bulan, tt.tahun)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidatePeriod(%d, %d) error = %v, wantErr %v", tt.bulan, tt.tahun, err, tt.wantErr)
			}
		})
	}
}

func TestValidateMeters(t *testing.T) {
	tests := []struct {
		name    string
		awal    int64
		akhir   int64
		wantErr bool
	}{
		{"naik", 100, 250, false},
		{"tidak berubah", 100, 100, false},
		{"mundur", 250, 100, true},
		{"awal negatif", -1, 10, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateMeters(tt.awal, tt.akhir)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateMeters(%d, %d) error = %v, wantErr %v", tt.awal, tt.akhir, err, tt.wantErr)
			}
		})
	}
}

func TestNextPeriod(t *testing.T) {
	tests := []struct {
		name      string
		bulan     int
		tahun     int
		wantBulan int
		wantTahun int
	}{
		{"tengah tahun", 6, 2024, 7, 2024},
		{"desember menggulung", 12, 2024, 1, 2025},
		{"november", 11, 2024, 12, 2024},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b, y := NextPeriod(tt.bulan, tt.tahun)
			if b != tt.wantBulan || y != tt.wantTahun {
				t.Errorf("NextPeriod(%d, %d) = (%d, %d), want (%d, %d)",
					tt.bulan, tt.tahun, b, y, tt.wantBulan, tt.wantTahun)
			}
		})
	}
}
