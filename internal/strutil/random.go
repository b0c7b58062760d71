package strutil

import (
	"crypto/rand"
	"fmt"
	"math/big"

	"github.com/google/uuid"
)

// DefaultRandomLength is used by RandomString when length is not positive.
const DefaultRandomLength = 8

const alphanumeric = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789"

// RandomString returns a random alphanumeric string of the given length.
func RandomString(length int) (string, error) {
	if length <= 0 {
		length = DefaultRandomLength
	}

	limit := big.NewInt(int64(len(alphanumeric)))
	out := make([]byte, length)
	for i := range out {
		n, err := rand.Int(rand.Reader, limit)
		if err != nil {
			return "", fmt.Errorf("failed to generate random string: %w", err)
		}
		out[i] = alphanumeric[n.Int64()]
	}
	return string(out), nil
}

// RandomID returns a random UUID (version 4) string.
func RandomID() string {
	return uuid.NewString()
}
