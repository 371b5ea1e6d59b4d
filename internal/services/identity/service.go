package identity

import (
	"context"
	"fmt"
	"log/slog"

	"anarchyauth/internal/crypto"
	"anarchyauth/internal/domain"
	"anarchyauth/internal/imaging"
	"anarchyauth/internal/util/memzero"
)

// FallbackWarning is attached to derivations that did not use an iris template.
const FallbackWarning = "Using image hash fallback - iris library not available"

// Service turns images or templates into stored sessions.
type Service struct {
	store     domain.SessionStore
	extractor domain.TemplateExtractor
	log       *slog.Logger
}

// New returns an identity service. extractor may be nil, in which case every
// image is handled in fallback mode.
func New(store domain.SessionStore, extractor domain.TemplateExtractor, log *slog.Logger) *Service {
	if log == nil {
		log = slog.Default()
	}
	return &Service{store: store, extractor: extractor, log: log}
}

// IrisAvailable reports whether a template extractor is configured.
func (s *Service) IrisAvailable() bool { return s.extractor != nil }

// DeriveFromImage decodes data, extracts entropy from it and opens a session.
func (s *Service) DeriveFromImage(
	ctx context.Context,
	filename string,
	data []byte,
) (domain.Derivation, error) {
	img, err := imaging.DecodeGray(data)
	if err != nil {
		return domain.Derivation{}, err
	}

	if s.extractor == nil {
		pixels := imaging.Pixels(img)
		d, err := s.open(pixels, domain.MethodImageHash)
		memzero.Zero(pixels)
		if err != nil {
			return domain.Derivation{}, err
		}
		d.Warning = FallbackWarning
		s.log.Info("keypair derived", "method", d.Method, "file", filename, "fallback", true)
		return d, nil
	}

	tpl, err := s.extractor.ExtractTemplate(ctx, img)
	if err != nil {
		return domain.Derivation{}, err
	}
	if len(tpl.Codes) == 0 || len(tpl.Codes[0]) == 0 {
		return domain.Derivation{}, domain.ErrNoCodesGenerated
	}
	d, err := s.open(tpl.Codes[0], domain.MethodIrisBiometric)
	if err != nil {
		return domain.Derivation{}, err
	}
	d.IrisCodesCount = len(tpl.Codes)
	s.log.Info("keypair derived",
		"method", d.Method, "file", filename, "eye_side", tpl.EyeSide, "codes", d.IrisCodesCount)
	return d, nil
}

// DeriveFromTemplate opens a session keyed by an iris code supplied directly.
func (s *Service) DeriveFromTemplate(
	_ context.Context,
	codes []byte,
	method domain.Method,
) (domain.Derivation, error) {
	if len(codes) == 0 {
		return domain.Derivation{}, domain.ErrNoCodesGenerated
	}
	if !method.Valid() {
		method = domain.MethodIrisBiometric
	}
	d, err := s.open(codes, method)
	if err != nil {
		return domain.Derivation{}, err
	}
	if method == domain.MethodIrisBiometric {
		d.IrisCodesCount = 1
	}
	return d, nil
}

// open derives the keypair and inserts it. Nothing is stored on failure.
func (s *Service) open(entropy []byte, method domain.Method) (domain.Derivation, error) {
	seed := crypto.DeriveSeed(entropy)
	kp, err := crypto.KeyPairFromSeed(seed[:])
	memzero.Zero(seed[:])
	if err != nil {
		return domain.Derivation{}, err
	}
	id, err := s.store.Create(kp, method)
	if err != nil {
		return domain.Derivation{}, fmt.Errorf("open session: %w", err)
	}
	return domain.Derivation{
		SessionID:   id,
		KeyPair:     kp,
		Method:      method,
		Fingerprint: crypto.Fingerprint(kp.Public),
	}, nil
}

// Compile-time assertion that Service implements domain.IdentityService.
var _ domain.IdentityService = (*Service)(nil)
