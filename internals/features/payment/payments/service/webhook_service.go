package service

import (
	"fmt"
	"strconv"
	"strings"
)

// Status Midtrans yang berarti dana sudah masuk.
var paidStatuses = map[string]struct{}{
	"settlement": {},
	"capture":    {},
	"success":    {},
}

func IsPaidStatus(status string) bool {
	_, ok := paidStatuses[strings.ToLower(strings.TrimSpace(status))]
	return ok
}

// ParseOrderID membongkar "INV-<id_tagihan>-<timestamp>" menjadi id tagihan.
func ParseOrderID(orderID string) (int64, error) {
	parts := strings.Split(strings.TrimSpace(orderID), "-")
	if len(parts) < 3 || !strings.EqualFold(parts[0], "INV") {
		return 0, fmt.Errorf("order_id tidak dikenal: %q", orderID)
	}
	id, err := strconv.ParseInt(parts[1], 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("order_id tidak dikenal: %q", orderID)
	}
	return id, nil
}
