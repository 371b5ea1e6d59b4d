package crypto

import (
	"crypto/ed25519"
	"fmt"

	"anarchyauth/internal/domain"
)

// KeyPairFromSeed treats seed as an RFC 8032 private key and computes its
// public point.
func KeyPairFromSeed(seed []byte) (domain.KeyPair, error) {
	if len(seed) != ed25519.SeedSize {
		return domain.KeyPair{}, fmt.Errorf("%w: got %d", domain.ErrInvalidSeed, len(seed))
	}
	sk := ed25519.NewKeyFromSeed(seed)
	var kp domain.KeyPair
	copy(kp.Private[:], seed)
	copy(kp.Public[:], sk.Public().(ed25519.PublicKey))
	return kp, nil
}

// SignEd25519 signs msg with priv and returns the 64-byte signature.
func SignEd25519(priv domain.Ed25519Private, msg []byte) []byte {
	sk := ed25519.NewKeyFromSeed(priv[:])
	return ed25519.Sign(sk, msg)
}

// VerifyEd25519 verifies sig over msg with pub.
func VerifyEd25519(pub domain.Ed25519Public, msg, sig []byte) bool {
	return ed25519.Verify(ed25519.PublicKey(pub[:]), msg, sig)
}
