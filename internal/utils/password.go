package utils

import (
	"crypto/rand"
	"crypto/sha256"
	"crypto/subtle"
	"encoding/hex"
)

const saltLength = 8

// HashPassword returns hex(salt) + hex(sha256(password || salt)).
func HashPassword(password string) (string, error) {
	salt := make([]byte, saltLength)
	if _, err := rand.Read(salt); err != nil {
		return "", err
	}

	h := sha256.New()
	h.Write([]byte(password))
	h.Write(salt)
	hash := h.Sum(nil)

	return hex.EncodeToString(salt) + hex.EncodeToString(hash), nil
}

// CheckPassword verifies a password against a stored hash.
func CheckPassword(password, stored string) bool {
	if len(stored) != saltLength*2+sha256.Size*2 {
		return false
	}

	salt, err := hex.DecodeString(stored[:saltLength*2])
	if err != nil {
		return false
	}

	h := sha256.New()
	h.Write([]byte(password))
	h.Write(salt)
	hash := hex.EncodeToString(h.Sum(nil))

	return subtle.ConstantTimeCompare([]byte(hash), []byte(stored[saltLength*2:])) == 1
}
