package auth

import (
	"crypto/rand"
	"fmt"
	"math/big"
)

// PasscodeLength is the number of digits in an emailed one-time code.
const PasscodeLength = 6

// GeneratePasscode returns a zero-padded numeric one-time code drawn from
// crypto/rand.
func GeneratePasscode() (string, error) {
	max := big.NewInt(1)
	for i := 0; i < PasscodeLength; i++ {
		max.Mul(max, big.NewInt(10))
	}
	n, err := rand.Int(rand.Reader, max)
	if err != nil {
		return "", fmt.Errorf("generate passcode: %w", err)
	}
	return fmt.Sprintf("%0*d", PasscodeLength, n), nil
}
