package types

// Seed is the 32-byte digest of input entropy; the sole input to key derivation.
type Seed [32]byte

// Slice returns the seed as a []byte.
func (s Seed) Slice() []byte { return s[:] }

// Ed25519Public is an Ed25519 signing public key.
type Ed25519Public [32]byte

// Slice returns the key as a []byte.
func (p Ed25519Public) Slice() []byte { return p[:] }

// Ed25519Private is the 32-byte RFC 8032 private key (the seed form, not the
// 64-byte expanded crypto/ed25519 layout).
type Ed25519Private [32]byte

// Slice returns the key as a []byte.
func (k Ed25519Private) Slice() []byte { return k[:] }

// KeyPair is a signing keypair derived from a Seed.
type KeyPair struct {
	Private Ed25519Private
	Public  Ed25519Public
}
