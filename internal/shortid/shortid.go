// Package shortid generates the public identifiers embedded in QR code URLs.
package shortid

import (
	"crypto/rand"
	"fmt"
	"math/big"
)

const (
	alphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"
	// Length of a short ID. 36^6 values keep collisions negligible for
	// batches of up to 1000 codes.
	Length = 6
)

// New returns a 6-character uppercase alphanumeric ID drawn uniformly from
// crypto/rand. Uniqueness against already-issued IDs is the caller's
// responsibility.
func New() (string, error) {
	id := make([]byte, Length)
	max := big.NewInt(int64(len(alphabet)))
	for i := range id {
		n, err := rand.Int(rand.Reader, max)
		if err != nil {
			return "", fmt.Errorf("rand: %w", err)
		}
		id[i] = alphabet[n.Int64()]
	}
	return string(id), nil
}
