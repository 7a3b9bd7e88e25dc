package core

import (
	"crypto/rand"
	"math/big"
	"strings"
)

const (
	codeAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

	// CodeLength is the display length of a room code.
	CodeLength = 5

	// maxCodeAttempts bounds the collision retry loop. With a 36^5
	// keyspace a handful of retries is already astronomically unlikely.
	maxCodeAttempts = 100
)

// NormalizeCode canonicalizes a peer-supplied code. Codes are
// case-insensitive on input and uppercase everywhere else.
func NormalizeCode(code string) string {
	return strings.ToUpper(strings.TrimSpace(code))
}

// generateCode returns a fresh code that the taken predicate rejects as
// unused. Collisions retry with a new candidate up to maxCodeAttempts,
// after which the allocation fails with ErrCodeSpaceExhausted.
func generateCode(taken func(string) bool) (string, error) {
	buf := make([]byte, CodeLength)
	for attempt := 0; attempt < maxCodeAttempts; attempt++ {
		for i := range buf {
			n, err := rand.Int(rand.Reader, big.NewInt(int64(len(codeAlphabet))))
			if err != nil {
				return "", err
			}
			buf[i] = codeAlphabet[n.Int64()]
		}
		code := string(buf)
		if !taken(code) {
			return code, nil
		}
	}
	return "", ErrCodeSpaceExhausted
}
