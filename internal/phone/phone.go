// Package phone holds the phone number display helpers shared by the
// registration and admin services.
package phone

import (
	"crypto/rand"
	"fmt"
	"math/big"
	"strings"
)

func digitsOnly(raw string) string {
	var b strings.Builder
	for _, r := range raw {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// Format normalizes an 11-digit mobile number to the 3-4-4 hyphenated form
// (01012345678 -> 010-1234-5678). Anything else is returned unchanged;
// validation happens upstream.
func Format(raw string) string {
	digits := digitsOnly(raw)
	if len(digits) != 11 {
		return raw
	}
	return digits[:3] + "-" + digits[3:7] + "-" + digits[7:]
}

// Mask redacts the middle of a phone number, keeping the first 3 and last 4
// digits (010-1234-5678 -> 010-****-5678). No minimum length is enforced, so
// prefix and suffix can overlap on inputs shorter than 7 digits.
func Mask(raw string) string {
	digits := digitsOnly(raw)
	prefix := digits
	if len(prefix) > 3 {
		prefix = prefix[:3]
	}
	suffix := digits
	if len(suffix) > 4 {
		suffix = suffix[len(suffix)-4:]
	}
	return prefix + "-****-" + suffix
}

// SafeNumber produces a mock telephony-proxy number in the fixed
// 050-XXXX-XXXX format. Stands in for a real safe-number API, so no
// uniqueness is enforced across issued numbers.
func SafeNumber() (string, error) {
	groups := make([]int64, 2)
	for i := range groups {
		n, err := rand.Int(rand.Reader, big.NewInt(10000))
		if err != nil {
			return "", fmt.Errorf("rand: %w", err)
		}
		groups[i] = n.Int64()
	}
	return fmt.Sprintf("050-%04d-%04d", groups[0], groups[1]), nil
}
