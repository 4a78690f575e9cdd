package types

import (
	"encoding/hex"

	"cspr/crypto"

	"github.com/pkg/errors"
)

var (
	ErrInvalidPrefix    = errors.New("invalid prefix")
	ErrUnknownKeyPrefix = errors.New("unknown key prefix")
	ErrInvalidAddr      = errors.New("address must be 64 hex characters")
	ErrInvalidRights    = errors.New("invalid access rights")
	ErrUnknownKeyTag    = errors.New("unknown key tag")
)

func parseAddr(in string) ([crypto.HashLen]byte, error) {
	var out [crypto.HashLen]byte
	b, err := hex.DecodeString(in)
	if err != nil {
		return out, errors.Wrap(ErrInvalidAddr, err.Error())
	}
	if len(b) != crypto.HashLen {
		return out, errors.Wrapf(ErrInvalidAddr, "got %d bytes", len(b))
	}
	copy(out[:], b)
	return out, nil
}
