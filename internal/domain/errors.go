package domain

import "errors"

var (
	ErrImageLoadFailed          = errors.New("could not load image file")
	ErrTemplateExtractionFailed = errors.New("iris processing failed")
	ErrNoCodesGenerated         = errors.New("no iris codes generated from image")
	ErrSessionNotFound          = errors.New("session expired or invalid")
	ErrEmptyMessage             = errors.New("no message to sign")
	ErrInvalidSignatureEncoding = errors.New("signature must be 64 bytes of hex")
	ErrInvalidKeyType           = errors.New("invalid key type")
	ErrInvalidSeed              = errors.New("seed must be 32 bytes")
	ErrSessionCapacity          = errors.New("session capacity reached")
	ErrSessionIDCollision       = errors.New("could not allocate a unique session id")
)

// Kind is the stable, machine-readable name of an error class.
type Kind string

const (
	KindImageLoadFailed          Kind = "image_load_failed"
	KindTemplateExtractionFailed Kind = "template_extraction_failed"
	KindNoCodesGenerated         Kind = "no_codes_generated"
	KindSessionNotFound          Kind = "session_not_found"
	KindEmptyMessage             Kind = "empty_message"
	KindInvalidSignatureEncoding Kind = "invalid_signature_encoding"
	KindInvalidKeyType           Kind = "invalid_key_type"
	KindInvalidSeed              Kind = "invalid_seed"
	KindSessionCapacity          Kind = "session_capacity"
	KindSessionIDCollision       Kind = "session_id_collision"
	KindInternal                 Kind = "internal"
)

var kinds = []struct {
	err  error
	kind Kind
}{
	{ErrImageLoadFailed, KindImageLoadFailed},
	{ErrTemplateExtractionFailed, KindTemplateExtractionFailed},
	{ErrNoCodesGenerated, KindNoCodesGenerated},
	{ErrSessionNotFound, KindSessionNotFound},
	{ErrEmptyMessage, KindEmptyMessage},
	{ErrInvalidSignatureEncoding, KindInvalidSignatureEncoding},
	{ErrInvalidKeyType, KindInvalidKeyType},
	{ErrInvalidSeed, KindInvalidSeed},
	{ErrSessionCapacity, KindSessionCapacity},
	{ErrSessionIDCollision, KindSessionIDCollision},
}

// KindOf classifies err. Unknown errors are KindInternal; nil yields "".
func KindOf(err error) Kind {
	if err == nil {
		return ""
	}
	for _, k := range kinds {
		if errors.Is(err, k.err) {
			return k.kind
		}
	}
	return KindInternal
}
