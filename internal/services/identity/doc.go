// Package identity derives Ed25519 keypairs from biometric entropy and opens
// sessions for them.
//
// Entropy comes from the first iris code returned by a TemplateExtractor. When
// no extractor is configured the grayscale pixels of the uploaded image are
// used instead and the derivation is flagged as an image hash fallback.
package identity
