package bytesrepr

import "io"

const (
	DefaultMaxVariableArrayLen = 1024
	DefaultMaxByteFieldLen     = 4 * 1024 * 1024
)

const (
	OptionNoneTag uint8 = 0
	OptionSomeTag uint8 = 1

	ResultErrTag uint8 = 0
	ResultOkTag  uint8 = 1
)

// Encoder is an interface that allows arbitrary types to be
// encoded. Types implementing the Encoder interface can be
// encoded using EncodeField or EncodeFields.
type Encoder interface {
	Encode(w io.Writer) error
}

// Decoder is an interface that allows arbitrary types to be
// decoded. Types implementing the Decoder interface can be
// decoded using DecodeField or DecodeFields.
type Decoder interface {
	Decode(r io.Reader) error
}

type EncodeDecoder interface {
	Encoder
	Decoder
}

// ConfiguredEncoder bounds what the decoding side accepts. Encoding writes
// any length a u32 prefix can express.
type ConfiguredEncoder struct {
	// MaxVariableArrayLen is the maximum length of a variable-length array
	// bytesrepr will decode before stopping early.
	MaxVariableArrayLen int

	// MaxByteFieldLen is the maximum length of a variable-length byte array field
	// bytesrepr will decode before stopping early.
	MaxByteFieldLen uint64
}

var defaultEncoder = &ConfiguredEncoder{
	MaxVariableArrayLen: DefaultMaxVariableArrayLen,
	MaxByteFieldLen:     DefaultMaxByteFieldLen,
}
