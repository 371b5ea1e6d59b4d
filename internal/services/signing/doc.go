// Package signing signs and verifies messages with session keypairs.
//
// A signature that does not match is reported through Verification.Valid;
// only malformed input and unknown sessions are errors.
package signing
