// Package crypto exposes the minimal primitives used by Anarchy Auth.
//
// Contents
//
//   - Entropy reduction of arbitrary input to a 32-byte seed (DeriveSeed)
//   - Deterministic Ed25519 keypairs from a seed, signing and verification
//     (KeyPairFromSeed, SignEd25519, VerifyEd25519)
//   - Short public-key fingerprints for display/logging (Fingerprint)
//   - OpenSSH authorized_keys rendering of a public key (AuthorizedKey)
//
// # Notes
//
// Key derivation never introduces randomness: the same seed yields the same
// keypair on every process and platform. Functions take and return the
// fixed-size array types defined in internal/domain.
package crypto
