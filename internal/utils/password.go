package utils

import (
	"crypto/rand"
	"math/big"

	"golang.org/x/crypto/bcrypt"
)

// HashPasswort erzeugt einen bcrypt-Hash für das Klartext-Passwort.
func HashPasswort(passwort string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(passwort), bcrypt.DefaultCost)
	return string(hash), err
}

// PruefePasswort vergleicht bcrypt-Hash und Klartext-Passwort.
func PruefePasswort(hash, passwort string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(passwort))
	return err == nil
}

// GeneriereTemporaeresPasswort erzeugt ein zufälliges Passwort mit 12 Zeichen.
func GeneriereTemporaeresPasswort() (string, error) {
	const chars = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"
	length := 12
	result := make([]byte, length)
	for i := 0; i < length; i++ {
		num, err := rand.Int(rand.Reader, big.NewInt(int64(len(chars))))
		if err != nil {
			return "", err
		}
		result[i] = chars[num.Int64()]
	}
	return string(result), nil
}
