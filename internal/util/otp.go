package util

import (
	"crypto/rand"
	"fmt"
	"math/big"
)

// GenerateNumericOTP draws a uniform code with the given number of digits.
// The first digit is never zero, so four digits means 1000 through 9999.
func GenerateNumericOTP(digits int) (string, error) {
	if digits <= 0 {
		digits = 4
	}
	low := new(big.Int).Exp(big.NewInt(10), big.NewInt(int64(digits-1)), nil)
	high := new(big.Int).Exp(big.NewInt(10), big.NewInt(int64(digits)), nil)
	span := new(big.Int).Sub(high, low)
	n, err := rand.Int(rand.Reader, span)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%d", new(big.Int).Add(low, n)), nil
}
