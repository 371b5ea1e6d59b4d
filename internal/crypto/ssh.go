package crypto

import (
	"crypto/ed25519"
	"fmt"
	"strings"

	"golang.org/x/crypto/ssh"

	"anarchyauth/internal/domain"
)

// AuthorizedKey renders pub as a single OpenSSH authorized_keys line with
// comment appended.
func AuthorizedKey(pub domain.Ed25519Public, comment string) (string, error) {
	sshPub, err := ssh.NewPublicKey(ed25519.PublicKey(pub[:]))
	if err != nil {
		return "", fmt.Errorf("ssh public key: %w", err)
	}
	line := strings.TrimSpace(string(ssh.MarshalAuthorizedKey(sshPub)))
	if comment == "" {
		return line, nil
	}
	return line + " " + comment, nil
}
