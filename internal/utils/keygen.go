package utils

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
)

// GenerateSessionID generates a random cart session identifier.
// Format: cart_randomhex
func GenerateSessionID() (string, error) {
	b := make([]byte, 16) // 32 char hex
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	return fmt.Sprintf("cart_%s", hex.EncodeToString(b)), nil
}
