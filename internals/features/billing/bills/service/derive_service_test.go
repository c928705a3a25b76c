package service

import "testing"

func TestDeriveAmount(t *testing.T) {
	tests := []struct {
		name        string
		consumption int64
		rate        float64
		want        int64
	}{
		{"tarif 900VA", 100, 1444.70, 144470},
		{"tarif bulat", 250, 1352.00, 338000},
		{"konsumsi nol", 0, 1444.70, 0},
		{"pembulatan ke bawah", 3, 1444.70, 4334}, // 4334.1
		{"pembulatan ke atas", 7, 1444.70, 10113}, // 10112.9
		{"setengah menjauh dari nol", 1, 1444.5, 1445},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := DeriveAmount(tt.consumption, tt.rate); got != tt.want {
				t.Errorf("DeriveAmount(%d, %v) = %d, want %d", tt.consumption, tt.rate, got, tt.want)
			}
		})
	}
}
