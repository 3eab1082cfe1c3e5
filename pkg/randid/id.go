// Package randid generates short random identifiers.
package randid

import (
	"crypto/rand"
	"math/big"
)

const alphabet = "abcdefghijklmnopqrstuvwxyz0123456789"

// Generate returns a random string of length n drawn from [a-z0-9].
func Generate(n int) string {
	if n <= 0 {
		return ""
	}

	limit := big.NewInt(int64(len(alphabet)))
	b := make([]byte, n)
	for i := range b {
		idx, err := rand.Int(rand.Reader, limit)
		if err != nil {
			panic("randid: crypto/rand unavailable: " + err.Error())
		}
		b[i] = alphabet[idx.Int64()]
	}
	return string(b)
}

// WithPrefix returns prefix + "-" + Generate(n).
func WithPrefix(prefix string, n int) string {
	return prefix + "-" + Generate(n)
}
