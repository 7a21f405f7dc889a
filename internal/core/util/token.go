package util

import (
	"crypto/rand"
	"encoding/hex"
)

// GenerateToken returns a hex string built from n random bytes. Used for
// session tokens, so n must be large enough to make guessing infeasible.
func GenerateToken(n int) (string, error) {
	byt := make([]byte, n)
	if _, err := rand.Read(byt); err != nil {
		return "", err
	}
	return hex.EncodeToString(byt), nil
}
