package service

import "math"

// DeriveAmount: total tagihan dalam rupiah bulat.
// Pembulatan half-away-from-zero, paritas dengan ROUND(x, 0) MySQL
// yang dipakai skema lama. 100 kWh × 1444.70 → 144470.
func DeriveAmount(consumption int64, ratePerKwh float64) int64 {
	return int64(math.Round(float64(consumption) * ratePerKwh))
}
