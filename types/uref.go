package types

import (
	"encoding/hex"
	"fmt"
	"io"
	"strconv"
	"strings"

	"cspr/crypto"

	"github.com/pkg/errors"
)

const URefPrefix = "uref-"

// AccessRights is the bit set of operations a URef grants.
type AccessRights uint8

const (
	AccessNone AccessRights = 0
	AccessRead AccessRights = 1 << (iota - 1)
	AccessWrite
	AccessAdd

	AccessReadAddWrite = AccessRead | AccessWrite | AccessAdd
)

// URef is an unforgeable reference: an address plus access rights.
type URef struct {
	Addr   [crypto.HashLen]byte
	Rights AccessRights
}

// ParseURef parses the formatted form uref-<64 hex chars>-<octal rights>,
// e.g. uref-...-007.
func ParseURef(in string) (URef, error) {
	if !strings.HasPrefix(in, URefPrefix) {
		return URef{}, errors.Wrapf(ErrInvalidPrefix, "expected %s", URefPrefix)
	}
	parts := strings.Split(strings.TrimPrefix(in, URefPrefix), "-")
	if len(parts) != 2 {
		return URef{}, errors.New("uref must have the form uref-<address>-<access rights>")
	}
	addr, err := parseAddr(parts[0])
	if err != nil {
		return URef{}, err
	}
	rights, err := strconv.ParseUint(parts[1], 8, 8)
	if err != nil {
		return URef{}, errors.Wrap(ErrInvalidRights, err.Error())
	}
	if AccessRights(rights) > AccessReadAddWrite {
		return URef{}, errors.Wrapf(ErrInvalidRights, "%03o", rights)
	}
	return URef{
		Addr:   addr,
		Rights: AccessRights(rights),
	}, nil
}

func (u URef) String() string {
	return fmt.Sprintf("%s%s-%03o", URefPrefix, hex.EncodeToString(u.Addr[:]), uint8(u.Rights))
}

func (u URef) Encode(w io.Writer) error {
	_, err := w.Write(append(u.Addr[:], byte(u.Rights)))
	return err
}

func (u *URef) Decode(r io.Reader) error {
	buf := make([]byte, crypto.HashLen+1)
	if _, err := io.ReadFull(r, buf); err != nil {
		return err
	}
	rights := AccessRights(buf[crypto.HashLen])
	if rights > AccessReadAddWrite {
		return errors.Wrapf(ErrInvalidRights, "%03o", uint8(rights))
	}
	copy(u.Addr[:], buf)
	u.Rights = rights
	return nil
}
