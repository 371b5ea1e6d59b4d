package armor

import "strings"

// SignatureComment is carried in every signed-message block.
const SignatureComment = "Signed with Anarchy Auth biometric key"

// SignedMessage renders the clear-signed layout: the plaintext under a
// "Hash: SHA256" header followed by the hex signature block.
func SignedMessage(message, signatureHex string) string {
	return strings.Join([]string{
		"-----BEGIN PGP SIGNED MESSAGE-----",
		"Hash: SHA256",
		"",
		message,
		"-----BEGIN PGP SIGNATURE-----",
		"Comment: " + SignatureComment,
		"",
		signatureHex,
		"-----END PGP SIGNATURE-----",
	}, "\n")
}
