package helper

import "testing"

func TestFormatRupiah(t *testing.T) {
	tests := []struct {
		in   int64
		want string
	}{
		{0, "Rp 0"},
		{500, "Rp 500"},
		{1444, "Rp 1.444"},
		{144470, "Rp 144.470"},
		{2500000, "Rp 2.500.000"},
		{-2500, "Rp -2.500"},
	}
	for _, tt := range tests {
		if got := FormatRupiah(tt.in); got != tt.want {
			t.Errorf("FormatRupiah(%d) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestFormatRupiahDecimal(t *testing.T) {
	tests := []struct {
		in   float64
		want string
	}{
		{0, "Rp 0,00"},
		{1352, "Rp 1.352,00"},
		{1444.70, "Rp 1.444,70"},
		{2500.5, "Rp 2.500,50"},
		{-1444.70, "Rp -1.444,70"},
	}
	for _, tt := range tests {
		if got := FormatRupiahDecimal(tt.in); got != tt.want {
			t.Errorf("FormatRupiahDecimal(%v) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestMonthLabel(t *testing.T) {
	if got := MonthLabel(1); got != "Januari" {
		t.Errorf("MonthLabel(1) = %q, want Januari", got)
	}
	if got := MonthLabel(12); got != "Desember" {
		t.Errorf("MonthLabel(12) = %q, want Desember", got)
	}
	if got := MonthLabel(0); got != "0" {
		t.Errorf("MonthLabel(0) = %q, want fallback angka", got)
	}
}
