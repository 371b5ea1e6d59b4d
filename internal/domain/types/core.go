package types

// SessionID is the opaque 16-character lowercase hex handle issued per session.
type SessionID string

// String returns the string form of the session identifier.
func (id SessionID) String() string { return string(id) }

// Short returns the first 8 characters, used in export filenames.
func (id SessionID) Short() string {
	if len(id) < 8 {
		return string(id)
	}
	return string(id[:8])
}

// Fingerprint is a short identifier for public keys presented to users.
type Fingerprint string

// String returns the string form of the fingerprint.
func (f Fingerprint) String() string { return string(f) }

// Method records where the entropy behind a session came from.
type Method string

const (
	// MethodIrisBiometric means the seed was derived from an iris template.
	MethodIrisBiometric Method = "iris_biometric"
	// MethodImageHash means the seed was derived from raw grayscale pixels.
	MethodImageHash Method = "image_hash"
)

// String returns the string form of the method.
func (m Method) String() string { return string(m) }

// Valid reports whether m is one of the known methods.
func (m Method) Valid() bool {
	return m == MethodIrisBiometric || m == MethodImageHash
}

// KeyType selects which half of a session keypair is exported.
type KeyType string

const (
	KeyTypePrivate KeyType = "private"
	KeyTypePublic  KeyType = "public"
	KeyTypeSSH     KeyType = "ssh"
)

// String returns the string form of the key type.
func (k KeyType) String() string { return string(k) }
