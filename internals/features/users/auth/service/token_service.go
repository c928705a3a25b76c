package service

import (
	"time"

	"github.com/golang-jwt/jwt/v4"
)

const accessTTLDefault = 24 * time.Hour

// CreateAccessToken menerbitkan JWT HS256 untuk principal yang sudah
// terverifikasi. Claims dibaca kembali oleh middleware AuthJWT.
func CreateAccessToken(p Principal, secret string) (string, error) {
	now := time.Now().UTC()
	claims := jwt.MapClaims{
		"sub":      p.ID,
		"username": p.Username,
		"name":     p.Name,
		"role":     p.Role,
		"iat":      now.Unix(),
		"exp":      now.Add(accessTTLDefault).Unix(),
	}
	tok := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return tok.SignedString([]byte(secret))
}
