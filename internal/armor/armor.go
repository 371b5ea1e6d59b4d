package armor

import (
	"crypto/sha256"
	"encoding/base64"
	"errors"
	"fmt"
	"strings"
)

// Kind is the label between "BEGIN PGP" and the closing dashes.
type Kind string

const (
	KindPrivateKey Kind = "PRIVATE KEY BLOCK"
	KindPublicKey  Kind = "PUBLIC KEY BLOCK"
)

// lineLength is the width of base64 body lines.
const lineLength = 64

var (
	ErrMissingHeader = errors.New("armor: missing BEGIN line")
	ErrMissingFooter = errors.New("armor: missing END line")
	ErrMalformedBody = errors.New("armor: malformed body")
)

// Block is an armored envelope around Data.
type Block struct {
	Kind     Kind
	Comment  string
	Data     []byte
	Checksum string
}

// Encode wraps data in a block of the given kind. An empty comment omits the
// Comment header.
func Encode(data []byte, kind Kind, comment string) Block {
	return Block{
		Kind:     kind,
		Comment:  comment,
		Data:     append([]byte(nil), data...),
		Checksum: Checksum(data),
	}
}

// Checksum returns base64(SHA-256(data)[:3]), always 4 characters.
func Checksum(data []byte) string {
	sum := sha256.Sum256(data)
	return base64.StdEncoding.EncodeToString(sum[:3])
}

// Render serialises the block. Lines are joined with "\n" and there is no
// trailing newline.
func (b Block) Render() string {
	lines := []string{header(b.Kind)}
	if b.Comment != "" {
		lines = append(lines, "Comment: "+b.Comment)
	}
	lines = append(lines, "")

	body := base64.StdEncoding.EncodeToString(b.Data)
	for len(body) > lineLength {
		lines = append(lines, body[:lineLength])
		body = body[lineLength:]
	}
	if body != "" {
		lines = append(lines, body)
	}

	lines = append(lines, "="+b.Checksum, footer(b.Kind))
	return strings.Join(lines, "\n")
}

// String implements fmt.Stringer.
func (b Block) String() string { return b.Render() }

// ChecksumMatches reports whether the carried checksum agrees with Data.
func (b Block) ChecksumMatches() bool {
	return b.Checksum == Checksum(b.Data)
}

// Decode parses a rendered block. Only the framing and base64 body are
// validated; the checksum is returned as found.
func Decode(text string) (Block, error) {
	lines := strings.Split(strings.ReplaceAll(strings.TrimSpace(text), "\r\n", "\n"), "\n")
	if len(lines) < 3 {
		return Block{}, ErrMissingHeader
	}

	first := strings.TrimSpace(lines[0])
	if !strings.HasPrefix(first, "-----BEGIN PGP ") || !strings.HasSuffix(first, "-----") {
		return Block{}, ErrMissingHeader
	}
	kind := Kind(strings.TrimSuffix(strings.TrimPrefix(first, "-----BEGIN PGP "), "-----"))
	if strings.TrimSpace(lines[len(lines)-1]) != footer(kind) {
		return Block{}, ErrMissingFooter
	}

	var b Block
	b.Kind = kind
	i := 1
	separated := false
	for ; i < len(lines)-1; i++ {
		line := strings.TrimSpace(lines[i])
		if line == "" {
			separated = true
			i++
			break
		}
		name, value, ok := strings.Cut(line, ": ")
		if !ok {
			return Block{}, fmt.Errorf("%w: no blank line after headers", ErrMalformedBody)
		}
		if name == "Comment" {
			b.Comment = strings.TrimSpace(value)
		}
	}
	if !separated {
		return Block{}, fmt.Errorf("%w: no blank line after headers", ErrMalformedBody)
	}

	var body strings.Builder
	for ; i < len(lines)-1; i++ {
		line := strings.TrimSpace(lines[i])
		if strings.HasPrefix(line, "=") {
			b.Checksum = line[1:]
			continue
		}
		body.WriteString(line)
	}
	data, err := base64.StdEncoding.DecodeString(body.String())
	if err != nil {
		return Block{}, fmt.Errorf("%w: %v", ErrMalformedBody, err)
	}
	b.Data = data
	return b, nil
}

func header(k Kind) string { return "-----BEGIN PGP " + string(k) + "-----" }
func footer(k Kind) string { return "-----END PGP " + string(k) + "-----" }
