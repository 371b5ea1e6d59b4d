package crypto

import "encoding/hex"

// Hex returns lowercase hex.
func Hex(b []byte) string { return hex.EncodeToString(b) }
