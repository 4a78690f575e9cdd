package types

import (
	"encoding/hex"
	"io"
	"strings"

	"cspr/crypto"

	"github.com/pkg/errors"
)

const AccountHashPrefix = "account-hash-"

// AccountHash identifies an account. It is derived from the account's
// public key.
type AccountHash [crypto.HashLen]byte

func NewAccountHash(pub crypto.PublicKey) AccountHash {
	return AccountHash(pub.AccountHash())
}

// ParseAccountHash parses the formatted form account-hash-<64 hex chars>.
func ParseAccountHash(in string) (AccountHash, error) {
	if !strings.HasPrefix(in, AccountHashPrefix) {
		return AccountHash{}, errors.Wrapf(ErrInvalidPrefix, "expected %s", AccountHashPrefix)
	}
	addr, err := parseAddr(strings.TrimPrefix(in, AccountHashPrefix))
	if err != nil {
		return AccountHash{}, err
	}
	return AccountHash(addr), nil
}

func (a AccountHash) Bytes() []byte {
	return a[:]
}

func (a AccountHash) String() string {
	return AccountHashPrefix + hex.EncodeToString(a[:])
}

func (a AccountHash) Encode(w io.Writer) error {
	_, err := w.Write(a[:])
	return err
}

func (a *AccountHash) Decode(r io.Reader) error {
	var buf AccountHash
	if _, err := io.ReadFull(r, buf[:]); err != nil {
		return err
	}
	*a = buf
	return nil
}
