package interfaces

import (
	"context"

	domaintypes "anarchyauth/internal/domain/types"
)

// IdentityService derives keypairs from entropy and opens sessions for them.
type IdentityService interface {
	DeriveFromImage(
		ctx context.Context,
		filename string,
		data []byte,
	) (domaintypes.Derivation, error)
	DeriveFromTemplate(
		ctx context.Context,
		codes []byte,
		method domaintypes.Method,
	) (domaintypes.Derivation, error)
}

// SigningService signs and verifies messages with a session keypair.
type SigningService interface {
	Sign(id domaintypes.SessionID, message string) (domaintypes.SignedMessage, error)
	Verify(
		id domaintypes.SessionID,
		message string,
		signatureHex string,
	) (domaintypes.Verification, error)
}

// ExportService renders session key material as downloadable artifacts.
type ExportService interface {
	Export(id domaintypes.SessionID, keyType domaintypes.KeyType) (domaintypes.Artifact, error)
}
