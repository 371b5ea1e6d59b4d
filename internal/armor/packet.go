package armor

import (
	"encoding/binary"
	"errors"
	"time"

	"anarchyauth/internal/domain"
)

const (
	packetVersion = 0x04
	algEd25519    = 0x16

	packetHeaderLen  = 1 + 4 + 1
	publicPacketLen  = packetHeaderLen + 32
	privatePacketLen = packetHeaderLen + 32 + 32
)

var ErrMalformedPacket = errors.New("armor: malformed key packet")

// PrivateKeyPacket lays out version || uint32be(created) || alg || priv || pub.
func PrivateKeyPacket(kp domain.KeyPair, created time.Time) []byte {
	out := make([]byte, 0, privatePacketLen)
	out = appendHeader(out, created)
	out = append(out, kp.Private[:]...)
	return append(out, kp.Public[:]...)
}

// PublicKeyPacket lays out version || uint32be(created) || alg || pub.
func PublicKeyPacket(pub domain.Ed25519Public, created time.Time) []byte {
	out := make([]byte, 0, publicPacketLen)
	out = appendHeader(out, created)
	return append(out, pub[:]...)
}

// KeyPacket is a parsed key packet. Private is zero for public packets.
type KeyPacket struct {
	Created time.Time
	Private domain.Ed25519Private
	Public  domain.Ed25519Public
	Secret  bool
}

// ParseKeyPacket reverses PrivateKeyPacket and PublicKeyPacket.
func ParseKeyPacket(b []byte) (KeyPacket, error) {
	if len(b) != publicPacketLen && len(b) != privatePacketLen {
		return KeyPacket{}, ErrMalformedPacket
	}
	if b[0] != packetVersion || b[5] != algEd25519 {
		return KeyPacket{}, ErrMalformedPacket
	}
	p := KeyPacket{Created: time.Unix(int64(binary.BigEndian.Uint32(b[1:5])), 0).UTC()}
	rest := b[packetHeaderLen:]
	if len(b) == privatePacketLen {
		p.Secret = true
		copy(p.Private[:], rest[:32])
		rest = rest[32:]
	}
	copy(p.Public[:], rest)
	return p, nil
}

func appendHeader(out []byte, created time.Time) []byte {
	out = append(out, packetVersion)
	out = binary.BigEndian.AppendUint32(out, uint32(created.Unix()))
	return append(out, algEd25519)
}
