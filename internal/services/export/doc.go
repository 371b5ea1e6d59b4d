// Package export renders session keys as downloadable files: armored private
// and public key blocks, and an OpenSSH authorized_keys line.
package export
