package crypto

import (
	"bytes"
	"encoding/hex"
	"io"

	"filippo.io/edwards25519"
	"github.com/btcsuite/btcd/btcec"
	"github.com/pkg/errors"
)

// Algorithm is the signature scheme of a PublicKey. Its value doubles as the
// key's tag byte.
type Algorithm uint8

const (
	AlgorithmSystem Algorithm = iota
	AlgorithmEd25519
	AlgorithmSecp256k1
)

const (
	Ed25519PublicKeyLen   = 32
	Secp256k1PublicKeyLen = 33
)

var ErrEmptyPublicKey = errors.New("public key hex is empty")

func (a Algorithm) String() string {
	switch a {
	case AlgorithmSystem:
		return "system"
	case AlgorithmEd25519:
		return "ed25519"
	case AlgorithmSecp256k1:
		return "secp256k1"
	default:
		return "unknown"
	}
}

// PublicKey is an account's public key. The system key carries no key
// material.
type PublicKey struct {
	alg Algorithm
	raw []byte
}

func SystemPublicKey() PublicKey {
	return PublicKey{alg: AlgorithmSystem}
}

func NewSecp256k1PublicKey(pub *btcec.PublicKey) PublicKey {
	return PublicKey{
		alg: AlgorithmSecp256k1,
		raw: pub.SerializeCompressed(),
	}
}

// NewPublicKey validates raw as a key of the given algorithm.
func NewPublicKey(alg Algorithm, raw []byte) (PublicKey, error) {
	switch alg {
	case AlgorithmSystem:
		if len(raw) != 0 {
			return PublicKey{}, errors.New("system public key must not carry key bytes")
		}
	case AlgorithmEd25519:
		if len(raw) != Ed25519PublicKeyLen {
			return PublicKey{}, errors.Errorf("ed25519 public key must be %d bytes, got %d", Ed25519PublicKeyLen, len(raw))
		}
		if _, err := new(edwards25519.Point).SetBytes(raw); err != nil {
			return PublicKey{}, errors.Wrap(err, "invalid ed25519 public key")
		}
	case AlgorithmSecp256k1:
		if len(raw) != Secp256k1PublicKeyLen {
			return PublicKey{}, errors.Errorf("secp256k1 public key must be %d bytes, got %d", Secp256k1PublicKeyLen, len(raw))
		}
		if _, err := btcec.ParsePubKey(raw, btcec.S256()); err != nil {
			return PublicKey{}, errors.Wrap(err, "invalid secp256k1 public key")
		}
	default:
		return PublicKey{}, errors.Errorf("invalid public key tag %d", uint8(alg))
	}

	out := make([]byte, len(raw))
	copy(out, raw)
	return PublicKey{alg: alg, raw: out}, nil
}

// NewPublicKeyFromHex parses the tag-prefixed hex form of a public key,
// e.g. 01<64 hex chars> for an ed25519 key.
func NewPublicKeyFromHex(in string) (PublicKey, error) {
	if in == "" {
		return PublicKey{}, ErrEmptyPublicKey
	}
	b, err := hex.DecodeString(in)
	if err != nil {
		return PublicKey{}, errors.Wrap(err, "invalid public key hex")
	}
	return NewPublicKeyFromBytes(b)
}

func NewPublicKeyFromBytes(b []byte) (PublicKey, error) {
	if len(b) == 0 {
		return PublicKey{}, ErrEmptyPublicKey
	}
	return NewPublicKey(Algorithm(b[0]), b[1:])
}

func (p PublicKey) Algorithm() Algorithm {
	return p.alg
}

// Raw returns the key material without the tag byte.
func (p PublicKey) Raw() []byte {
	return p.raw
}

func (p PublicKey) Bytes() []byte {
	return append([]byte{byte(p.alg)}, p.raw...)
}

func (p PublicKey) Hex() string {
	return hex.EncodeToString(p.Bytes())
}

func (p PublicKey) String() string {
	return p.Hex()
}

func (p PublicKey) Equal(other PublicKey) bool {
	return p.alg == other.alg && bytes.Equal(p.raw, other.raw)
}

// AccountHash returns the blake2b-256 digest of the algorithm name, a zero
// separator byte and the key material.
func (p PublicKey) AccountHash() Hash {
	return Blake2B256([]byte(p.alg.String()), []byte{0x00}, p.raw)
}

func (p PublicKey) Encode(w io.Writer) error {
	_, err := w.Write(p.Bytes())
	return err
}

func (p *PublicKey) Decode(r io.Reader) error {
	tag := make([]byte, 1)
	if _, err := io.ReadFull(r, tag); err != nil {
		return err
	}
	var l int
	switch Algorithm(tag[0]) {
	case AlgorithmSystem:
	case AlgorithmEd25519:
		l = Ed25519PublicKeyLen
	case AlgorithmSecp256k1:
		l = Secp256k1PublicKeyLen
	default:
		return errors.Errorf("invalid public key tag %d", tag[0])
	}
	raw := make([]byte, l)
	if _, err := io.ReadFull(r, raw); err != nil {
		return err
	}
	decoded, err := NewPublicKey(Algorithm(tag[0]), raw)
	if err != nil {
		return err
	}
	*p = decoded
	return nil
}
