package types

// SignedMessage is the outcome of signing a message with a session key.
type SignedMessage struct {
	Message      string `json:"message"`
	Signature    []byte `json:"-"`
	SignatureHex string `json:"signature"`
	MessageHash  string `json:"message_hash"`
	Armored      string `json:"signed_message"`
}

// Verification is the outcome of checking a signature. An invalid signature
// is a normal result, not an error.
type Verification struct {
	Valid bool `json:"valid"`
}

// Template is the output of an iris pipeline: one or more iris codes.
type Template struct {
	Codes   [][]byte
	EyeSide string
}

// Derivation describes a freshly created session.
type Derivation struct {
	SessionID      SessionID
	KeyPair        KeyPair
	Method         Method
	Fingerprint    Fingerprint
	IrisCodesCount int
	Warning        string
}

// Artifact is an exported key file.
type Artifact struct {
	Filename    string
	ContentType string
	Content     []byte
}
