package bytesrepr

import (
	"io"
	"math/big"

	"github.com/pkg/errors"
)

// Byte widths of the big unsigned integer types.
const (
	U128Width = 16
	U256Width = 32
	U512Width = 64
)

var (
	ErrNegativeBigUint = errors.New("big unsigned integer must not be negative")
	ErrBigUintOverflow = errors.New("big unsigned integer overflows its width")
)

// MaxBigUint returns the largest value representable in width bytes.
func MaxBigUint(width int) *big.Int {
	max := new(big.Int).Lsh(big.NewInt(1), uint(width*8))
	return max.Sub(max, big.NewInt(1))
}

// EncodeBigUint writes v as a length byte followed by its minimal
// little-endian representation. v must fit in width bytes.
func EncodeBigUint(w io.Writer, v *big.Int, width int) error {
	if v.Sign() < 0 {
		return ErrNegativeBigUint
	}
	be := v.Bytes()
	if len(be) > width {
		return ErrBigUintOverflow
	}
	buf := make([]byte, len(be)+1)
	buf[0] = byte(len(be))
	for i, b := range be {
		buf[len(be)-i] = b
	}
	_, err := w.Write(buf)
	return err
}

// DecodeBigUint reads a value written by EncodeBigUint.
func DecodeBigUint(r io.Reader, width int) (*big.Int, error) {
	l, err := ReadTag(r)
	if err != nil {
		return nil, err
	}
	if int(l) > width {
		return nil, errors.Errorf("big unsigned integer length %d exceeds width %d", l, width)
	}
	le := make([]byte, l)
	if _, err := io.ReadFull(r, le); err != nil {
		return nil, err
	}
	be := make([]byte, l)
	for i, b := range le {
		be[len(le)-1-i] = b
	}
	return new(big.Int).SetBytes(be), nil
}
