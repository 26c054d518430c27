// Package verification issues the short codes shown at the museum entrance.
package verification

import (
	"crypto/rand"
	"fmt"
	"math/big"
	"strings"
)

// Alphabet leaves out 0/O and 1/I so codes survive being read aloud.
const Alphabet = "ABCDEFGHJKLMNPQRSTUVWXYZ23456789"

const (
	codeLength = 10
	groupSize  = 5
	separator  = "-"
)

// NewCode returns a random code formatted as XXXXX-XXXXX.
func NewCode() (string, error) {
	var sb strings.Builder

	limit := big.NewInt(int64(len(Alphabet)))

	for i := range codeLength {
		if i > 0 && i%groupSize == 0 {
			sb.WriteString(separator)
		}

		n, err := rand.Int(rand.Reader, limit)
		if err != nil {
			return "", fmt.Errorf("failed to generate verification code: %w", err)
		}

		sb.WriteByte(Alphabet[n.Int64()])
	}

	return sb.String(), nil
}

// Normalize upper-cases a code typed at the gate and restores the separator
// when it was left out.
func Normalize(code string) string {
	code = strings.ToUpper(strings.TrimSpace(code))

	if len(code) == codeLength && !strings.Contains(code, separator) {
		return code[:groupSize] + separator + code[groupSize:]
	}

	return code
}
