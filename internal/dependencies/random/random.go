package random

import (
	"crypto/rand"
	"math"
	"math/big"
)

// Random provides random number generation that can be mocked for testing
type Random interface {
	// Intn returns a random int in [0, n)
	Intn(n int) int

	// Float64 returns a random float in [0, 1)
	Float64() float64
}

// CryptoRandom implements Random using crypto/rand
type CryptoRandom struct{}

// New creates a new CryptoRandom
func New() *CryptoRandom {
	return &CryptoRandom{}
}

// Intn returns a cryptographically random int in [0, n)
func (r *CryptoRandom) Intn(n int) int {
	if n <= 0 {
		return 0
	}
	max := big.NewInt(int64(n))
	result, err := rand.Int(rand.Reader, max)
	if err != nil {
		// Fall back to 0 on error (should never happen with crypto/rand)
		return 0
	}
	return int(result.Int64())
}

// Float64 returns a cryptographically random float in [0, 1) with 53 bits
// of precision.
func (r *CryptoRandom) Float64() float64 {
	const bits = 53
	max := big.NewInt(1 << bits)
	result, err := rand.Int(rand.Reader, max)
	if err != nil {
		return 0
	}
	return float64(result.Int64()) / math.Pow(2, bits)
}
