package crypto

import (
	"crypto/sha256"

	"anarchyauth/internal/domain"
)

// DeriveSeed reduces data to a 32-byte seed with SHA-256.
func DeriveSeed(data []byte) domain.Seed {
	return domain.Seed(sha256.Sum256(data))
}
