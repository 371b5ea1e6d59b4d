package domain

import (
	interfaces "anarchyauth/internal/domain/interfaces"
	types "anarchyauth/internal/domain/types"
)

// Type aliases expose domain types from the types subpackage for compact imports.
type (
	SessionID      = types.SessionID
	Fingerprint    = types.Fingerprint
	Method         = types.Method
	KeyType        = types.KeyType
	Seed           = types.Seed
	Ed25519Public  = types.Ed25519Public
	Ed25519Private = types.Ed25519Private
	KeyPair        = types.KeyPair
	Session        = types.Session
	SignedMessage  = types.SignedMessage
	Verification   = types.Verification
	Template       = types.Template
	Derivation     = types.Derivation
	Artifact       = types.Artifact
)

// Interface aliases expose domain interfaces from the interfaces subpackage.
type (
	SessionStore      = interfaces.SessionStore
	TemplateExtractor = interfaces.TemplateExtractor
	IdentityService   = interfaces.IdentityService
	SigningService    = interfaces.SigningService
	ExportService     = interfaces.ExportService
)

// Constant re-exports.
const (
	MethodIrisBiometric = types.MethodIrisBiometric
	MethodImageHash     = types.MethodImageHash

	KeyTypePrivate = types.KeyTypePrivate
	KeyTypePublic  = types.KeyTypePublic
	KeyTypeSSH     = types.KeyTypeSSH
)
