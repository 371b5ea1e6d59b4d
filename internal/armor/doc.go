// Package armor renders key material and signatures in an ASCII envelope
// modelled on OpenPGP armor.
//
// The format is deliberately proprietary and does not interoperate with real
// OpenPGP tooling:
//
//   - The checksum line is base64(SHA-256(data)[:3]) rather than CRC-24.
//   - Key packets are a fixed layout (version, creation time, algorithm,
//     raw key bytes) with no packet tags or length headers.
//
// The checksum is informational only. Decode reports it but never rejects a
// block because of it.
package armor
