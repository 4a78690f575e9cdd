/*
Package bytesrepr implements the binary value encoding used by the network's
runtime arguments.

Fundamental types:

	- bool: Encoded as 0x00 or 0x01 if the value is false or true,
	  respectively.
	- uint8: Encoded as a single byte in the range 0x00-0xff.
	- int32/uint32: Encoded as four little-endian bytes.
	- int64/uint64: Encoded as eight little-endian bytes.
	- U128/U256/U512: Encoded as a single length byte n followed by the n
	  least-significant bytes of the value in little-endian order. Trailing
	  zero bytes are dropped, so zero encodes as 0x00.
	- string: Encoded as a uint32 byte length followed by the UTF-8 bytes.
	- [N]byte: Encoded as the N raw bytes.
	- []T: Encoded as a uint32 element count followed by the concatenation
	  of the encoding of T.

Optional and result values are prefixed with a one-byte tag. See the Option*
and Result* constants.

The easiest way to use this library is to call the EncodeField/DecodeField family
of methods. To encode a value into a Writer:

	value1 := "this is my value"
	value2 := uint64(2)
	err := bytesrepr.EncodeFields(w, value1, value2)

To decode a value from a reader:

	var value1 string
	var value2 uint64
	err := bytesrepr.DecodeFields(r, &value1, &value2)

Note that values passed to DecodeField/DecodeFields MUST be pointers.

bytesrepr exposes Encoder and Decoder interfaces, which allow arbitrary types to be
encoded and decoded by EncodeField/DecodeField. For example:

	type Foo struct {
		Value string
	}

	func (f *Foo) Encode(w io.Writer) error {
		return bytesrepr.EncodeFields(w, f.Value)
	}

	func (f *Foo) Decode(r io.Reader) error {
		return bytesrepr.DecodeFields(r, &f.Value)
	}
*/
package bytesrepr
