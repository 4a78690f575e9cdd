package args

import (
	"io"
	"math/big"

	"cspr/bytesrepr"
)

var (
	ErrBigUintEmpty       = newError(KindRange, "empty decimal string")
	ErrBigUintInvalidChar = newError(KindRange, "a character is not in the range 0-9")
	ErrBigUintTooLarge    = newError(KindRange, "the number is too large for the type")
)

// parseBigUint parses a string of decimal digits into a value that fits in
// width bytes.
func parseBigUint(s string, width int) (*big.Int, error) {
	if s == "" {
		return nil, ErrBigUintEmpty
	}
	for _, c := range s {
		if c < '0' || c > '9' {
			return nil, ErrBigUintInvalidChar
		}
	}
	v, ok := new(big.Int).SetString(s, 10)
	if !ok {
		return nil, ErrBigUintInvalidChar
	}
	if v.Cmp(bytesrepr.MaxBigUint(width)) > 0 {
		return nil, ErrBigUintTooLarge
	}
	return v, nil
}

func writeBigUint(w io.Writer, s string, width int) error {
	v, err := parseBigUint(s, width)
	if err != nil {
		return err
	}
	return bytesrepr.EncodeBigUint(w, v, width)
}
