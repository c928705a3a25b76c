package helper

import (
	"fmt"
	"math"
	"strconv"
)

var MonthNames = [12]string{
	"Januari", "Februari", "Maret", "April", "Mei", "Juni",
	"Juli", "Agustus", "September", "Oktober", "November", "Desember",
}

func MonthLabel(month int) string {
	if month >= 1 && month <= 12 {
		return MonthNames[month-1]
	}
	return strconv.Itoa(month)
}

// FormatRupiah: 144470 → "Rp 144.470"
func FormatRupiah(amount int64) string {
	neg := amount < 0
	if neg {
		amount = -amount
	}
	s := strconv.FormatInt(amount, 10)
	out := make([]byte, 0, len(s)+len(s)/3)
	for i, ch := range []byte(s) {
		if i > 0 && (len(s)-i)%3 == 0 {
			out = append(out, '.')
		}
		out = append(out, ch)
	}
	if neg {
		return "Rp -" + string(out)
	}
	return "Rp " + string(out)
}

// FormatRupiahDecimal: 1444.70 → "Rp 1.444,70". Untuk nilai yang boleh
// berkoma seperti tarif per kWh; dua digit desimal selalu ditulis.
func FormatRupiahDecimal(amount float64) string {
	cents := int64(math.Round(amount * 100))
	neg := cents < 0
	if neg {
		cents = -cents
	}
	whole := FormatRupiah(cents / 100)
	out := fmt.Sprintf("%s,%02d", whole, cents%100)
	if neg {
		return "Rp -" + out[len("Rp "):]
	}
	return out
}
