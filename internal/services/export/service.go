package export

import (
	"fmt"
	"log/slog"

	"anarchyauth/internal/armor"
	"anarchyauth/internal/crypto"
	"anarchyauth/internal/domain"
	"anarchyauth/internal/store"
	"anarchyauth/internal/util/memzero"
)

const (
	// ContentTypePGP is served with armored key blocks.
	ContentTypePGP = "application/pgp-keys"
	// ContentTypeSSH is served with authorized_keys lines.
	ContentTypeSSH = "text/plain; charset=utf-8"

	filenamePrefix = "anarchy-auth"
)

// Comment returns the armor comment recorded for keys derived by method.
func Comment(method domain.Method) string {
	return "Generated by Anarchy Auth - " + method.String()
}

// Service exports session keys.
type Service struct {
	sessions domain.SessionStore
	clock    store.Clock
	log      *slog.Logger
}

// New returns an export service. A nil clock means the wall clock.
func New(sessions domain.SessionStore, clock store.Clock, log *slog.Logger) *Service {
	if clock == nil {
		clock = store.SystemClock{}
	}
	if log == nil {
		log = slog.Default()
	}
	return &Service{sessions: sessions, clock: clock, log: log}
}

// Export renders the requested key of session id. The packet creation time
// is the moment of export.
func (s *Service) Export(id domain.SessionID, keyType domain.KeyType) (domain.Artifact, error) {
	sess, err := s.sessions.Get(id)
	if err != nil {
		return domain.Artifact{}, err
	}
	comment := Comment(sess.Method)

	var art domain.Artifact
	switch keyType {
	case domain.KeyTypePrivate:
		packet := armor.PrivateKeyPacket(sess.KeyPair, s.clock.Now())
		art = domain.Artifact{
			Filename:    filename(keyType, id, "asc"),
			ContentType: ContentTypePGP,
			Content:     []byte(armor.Encode(packet, armor.KindPrivateKey, comment).Render()),
		}
		memzero.Zero(packet)
	case domain.KeyTypePublic:
		packet := armor.PublicKeyPacket(sess.KeyPair.Public, s.clock.Now())
		art = domain.Artifact{
			Filename:    filename(keyType, id, "asc"),
			ContentType: ContentTypePGP,
			Content:     []byte(armor.Encode(packet, armor.KindPublicKey, comment).Render()),
		}
	case domain.KeyTypeSSH:
		line, err := crypto.AuthorizedKey(sess.KeyPair.Public, "anarchy-auth-"+id.Short())
		if err != nil {
			return domain.Artifact{}, err
		}
		art = domain.Artifact{
			Filename:    filename(keyType, id, "pub"),
			ContentType: ContentTypeSSH,
			Content:     []byte(line + "\n"),
		}
	default:
		return domain.Artifact{}, fmt.Errorf("%w: %q", domain.ErrInvalidKeyType, keyType)
	}

	s.log.Info("key exported", "session_id", id.String(), "key_type", keyType.String())
	return art, nil
}

func filename(keyType domain.KeyType, id domain.SessionID, ext string) string {
	return fmt.Sprintf("%s-%s-%s.%s", filenamePrefix, keyType, id.Short(), ext)
}

// Compile-time assertion that Service implements domain.ExportService.
var _ domain.ExportService = (*Service)(nil)
