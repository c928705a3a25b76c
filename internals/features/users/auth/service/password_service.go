package service

import (
	"crypto/sha256"
	"encoding/hex"
	"strings"

	"golang.org/x/crypto/bcrypt"
)

// Bentuk kredensial tersimpan:
//   - bcrypt : baris baru, target normalisasi
//   - sha256 : hex dari SHA2(password,256) warisan skema MySQL lama
//   - plain  : baris paling lama, hanya diterima untuk pelanggan
func HashPassword(plain string) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(plain), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hashed), nil
}

func LegacySHA256(plain string) string {
	sum := sha256.Sum256([]byte(plain))
	return hex.EncodeToString(sum[:])
}

func isBcryptHash(stored string) bool {
	return strings.HasPrefix(stored, "$2a$") ||
		strings.HasPrefix(stored, "$2b$") ||
		strings.HasPrefix(stored, "$2y$")
}

// MatchStored mencocokkan password terhadap nilai tersimpan.
// allowPlain mengizinkan fallback plaintext warisan (khusus pelanggan).
// legacy=true berarti cocok lewat bentuk lama dan kolomnya perlu
// dinormalkan ke bcrypt.
func MatchStored(stored, password string, allowPlain bool) (ok bool, legacy bool) {
	if isBcryptHash(stored) {
		return bcrypt.CompareHashAndPassword([]byte(stored), []byte(password)) == nil, false
	}
	if stored == LegacySHA256(password) {
		return true, true
	}
	if allowPlain && stored == password {
		return true, true
	}
	return false, false
}
