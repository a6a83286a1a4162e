package auth

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/Brandea-ai/ck-immo-finanz/internal/models"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// Claims des Access-Tokens.
type Claims struct {
	BeraterID uint         `json:"beraterId"`
	Rolle     models.Rolle `json:"rolle"`
	jwt.RegisteredClaims
}

// AccessTTL ist die Lebensdauer des Access-Tokens.
const AccessTTL = 15 * time.Minute

const issuer = "ck-immo-finanz"

func secret() ([]byte, error) {
	s := os.Getenv("AUTH_JWT_SECRET")
	if s == "" {
		return nil, errors.New("AUTH_JWT_SECRET nicht gesetzt")
	}
	return []byte(s), nil
}

// GeneriereToken erzeugt ein HS256-JWT mit iss, sub, iat, nbf, exp und jti.
func GeneriereToken(beraterID uint, rolle models.Rolle) (string, error) {
	key, err := secret()
	if err != nil {
		return "", err
	}

	now := time.Now()
	claims := &Claims{
		BeraterID: beraterID,
		Rolle:     rolle,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    issuer,
			Subject:   fmt.Sprint(beraterID),
			ExpiresAt: jwt.NewNumericDate(now.Add(AccessTTL)),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now.Add(-1 * time.Minute)),
			ID:        uuid.NewString(),
		},
	}

	tok := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return tok.SignedString(key)
}

// ParseUndValidiere prüft Signatur, Issuer und Ablauf.
func ParseUndValidiere(tokenStr string) (*Claims, error) {
	key, err := secret()
	if err != nil {
		return nil, err
	}

	parser := jwt.NewParser(jwt.WithValidMethods([]string{"HS256"}))
	tok, err := parser.ParseWithClaims(tokenStr, &Claims{}, func(t *jwt.Token) (interface{}, error) {
		return key, nil
	})
	if err != nil {
		return nil, err
	}
	if !tok.Valid {
		return nil, errors.New("Token ungültig")
	}

	c, ok := tok.Claims.(*Claims)
	if !ok {
		return nil, errors.New("Claims ungültig")
	}
	if c.Issuer != issuer {
		return nil, errors.New("Issuer ungültig")
	}
	if c.ExpiresAt == nil || time.Now().After(c.ExpiresAt.Time) {
		return nil, errors.New("Token abgelaufen")
	}

	return c, nil
}
