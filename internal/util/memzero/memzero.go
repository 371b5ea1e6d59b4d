// Package memzero wipes sensitive byte slices such as private keys held by
// expiring sessions.
package memzero

import (
	"crypto/subtle"
	"runtime"
)

// Zero overwrites b with zeros. It is best-effort: copies made elsewhere are
// untouched.
//
//go:noinline
func Zero(b []byte) {
	if len(b) == 0 {
		return
	}
	subtle.XORBytes(b, b, b)
	runtime.KeepAlive(b)
}
