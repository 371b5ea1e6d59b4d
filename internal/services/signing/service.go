package signing

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"log/slog"

	"anarchyauth/internal/armor"
	"anarchyauth/internal/crypto"
	"anarchyauth/internal/domain"
)

// Service signs and verifies with keys held in a SessionStore.
type Service struct {
	sessions domain.SessionStore
	log      *slog.Logger
}

// New returns a signing service backed by the given store.
func New(sessions domain.SessionStore, log *slog.Logger) *Service {
	if log == nil {
		log = slog.Default()
	}
	return &Service{sessions: sessions, log: log}
}

// Sign signs the UTF-8 bytes of message with the session's private key and
// renders the clear-signed block.
func (s *Service) Sign(id domain.SessionID, message string) (domain.SignedMessage, error) {
	sess, err := s.sessions.Get(id)
	if err != nil {
		return domain.SignedMessage{}, err
	}
	if message == "" {
		return domain.SignedMessage{}, domain.ErrEmptyMessage
	}

	msg := []byte(message)
	sig := crypto.SignEd25519(sess.KeyPair.Private, msg)
	sum := sha256.Sum256(msg)
	sigHex := crypto.Hex(sig)

	s.log.Debug("message signed", "session_id", id.String(), "bytes", len(msg))
	return domain.SignedMessage{
		Message:      message,
		Signature:    sig,
		SignatureHex: sigHex,
		MessageHash:  hex.EncodeToString(sum[:]),
		Armored:      armor.SignedMessage(message, sigHex),
	}, nil
}

// Verify checks signatureHex over message against the session's public key.
func (s *Service) Verify(id domain.SessionID, message, signatureHex string) (domain.Verification, error) {
	sess, err := s.sessions.Get(id)
	if err != nil {
		return domain.Verification{}, err
	}
	if message == "" {
		return domain.Verification{}, domain.ErrEmptyMessage
	}
	sig, err := hex.DecodeString(signatureHex)
	if err != nil {
		return domain.Verification{}, fmt.Errorf("%w: %v", domain.ErrInvalidSignatureEncoding, err)
	}
	if len(sig) != 64 {
		return domain.Verification{}, fmt.Errorf("%w: got %d bytes", domain.ErrInvalidSignatureEncoding, len(sig))
	}

	valid := crypto.VerifyEd25519(sess.KeyPair.Public, []byte(message), sig)
	s.log.Debug("signature checked", "session_id", id.String(), "valid", valid)
	return domain.Verification{Valid: valid}, nil
}

// Compile-time assertion that Service implements domain.SigningService.
var _ domain.SigningService = (*Service)(nil)
