package store

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"time"

	"anarchyauth/internal/domain"
)

// sessionIDLen is the number of hex characters kept from the digest.
const sessionIDLen = 16

// NewSessionID hashes the decimal timestamp followed by the hex public key
// and keeps the first 16 hex characters. The same inputs give the same id.
func NewSessionID(at time.Time, pub domain.Ed25519Public) domain.SessionID {
	ts := fmt.Sprintf("%d.%09d", at.Unix(), at.Nanosecond())
	sum := sha256.Sum256([]byte(ts + hex.EncodeToString(pub[:])))
	return domain.SessionID(hex.EncodeToString(sum[:])[:sessionIDLen])
}
