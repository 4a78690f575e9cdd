package bytesrepr

import (
	"encoding/binary"
	"io"
	"reflect"

	"github.com/pkg/errors"
)

// DecodeFields decodes each field in the variadic items argument from the
// Reader using the default Encoder. Items provided to DecodeFields
// must be pointer types.
func DecodeFields(r io.Reader, items ...interface{}) error {
	return defaultEncoder.DecodeFields(r, items...)
}

// DecodeField decodes the field in the item argument from the Reader using
// the default Encoder. The item provided to DecodeField must be a pointer type.
func DecodeField(r io.Reader, item interface{}) error {
	return defaultEncoder.DecodeField(r, item)
}

// ReadLength reads a uint32 length or count prefix.
func ReadLength(r io.Reader) (int, error) {
	var l uint32
	if err := DecodeField(r, &l); err != nil {
		return 0, err
	}
	return int(l), nil
}

// ReadTag reads a single tag byte.
func ReadTag(r io.Reader) (uint8, error) {
	var tag uint8
	err := DecodeField(r, &tag)
	return tag, err
}

// DecodeFields decodes each field in the variadic items argument
// from the Reader. Items provided to DecodeFields must be pointer types.
func (c *ConfiguredEncoder) DecodeFields(r io.Reader, items ...interface{}) error {
	for _, item := range items {
		if err := c.DecodeField(r, item); err != nil {
			return err
		}
	}

	return nil
}

// DecodeField decodes the field in the item argument from the Reader. The item
// provided to DecodeField must be a pointer type.
func (c *ConfiguredEncoder) DecodeField(r io.Reader, item interface{}) error {
	var err error
	switch it := item.(type) {
	case Decoder:
		err = it.Decode(r)
	case *bool:
		b := make([]byte, 1)
		if _, err := io.ReadFull(r, b); err != nil {
			return err
		}
		if b[0] == 0x00 {
			*it = false
		} else if b[0] == 0x01 {
			*it = true
		} else {
			return errors.Errorf("invalid boolean value: %x", b[0])
		}
	case *uint8:
		b := make([]byte, 1)
		if _, err := io.ReadFull(r, b); err != nil {
			return err
		}
		*it = b[0]
	case *int32:
		b := make([]byte, 4)
		if _, err := io.ReadFull(r, b); err != nil {
			return err
		}
		*it = int32(binary.LittleEndian.Uint32(b))
	case *uint32:
		b := make([]byte, 4)
		if _, err := io.ReadFull(r, b); err != nil {
			return err
		}
		*it = binary.LittleEndian.Uint32(b)
	case *int64:
		b := make([]byte, 8)
		if _, err := io.ReadFull(r, b); err != nil {
			return err
		}
		*it = int64(binary.LittleEndian.Uint64(b))
	case *uint64:
		b := make([]byte, 8)
		if _, err := io.ReadFull(r, b); err != nil {
			return err
		}
		*it = binary.LittleEndian.Uint64(b)
	case *[]byte:
		l, err := ReadLength(r)
		if err != nil {
			return err
		}
		if uint64(l) > c.MaxByteFieldLen {
			return errors.New("byte-assignable field length too large to decode")
		}
		buf := make([]byte, l)
		if _, err := io.ReadFull(r, buf); err != nil {
			return err
		}
		*it = buf
	case *string:
		var buf []byte
		if err := c.DecodeField(r, &buf); err != nil {
			return err
		}
		*it = string(buf)
	case *[32]byte:
		var buf [32]byte
		if _, err := io.ReadFull(r, buf[:]); err != nil {
			return err
		}
		*it = buf
	default:
		err = c.decodeReflect(r, item)
	}

	return err
}

func (c *ConfiguredEncoder) decodeReflect(r io.Reader, item interface{}) error {
	itemT := reflect.TypeOf(item)
	if itemT.Kind() != reflect.Ptr {
		return errors.New("can only decode into pointer types")
	}

	switch itemT.Elem().Kind() {
	case reflect.Array:
		return c.decodeArray(r, item)
	case reflect.Slice:
		return c.decodeSlice(r, item)
	default:
		return errors.Errorf("type %s cannot be decoded", itemT.String())
	}
}

func (c *ConfiguredEncoder) decodeArray(r io.Reader, item interface{}) error {
	indirectVal := reflect.Indirect(reflect.ValueOf(item))
	indirectT := indirectVal.Type()

	l := indirectT.Len()
	tmpPtr := reflect.New(indirectT)
	if indirectT.Elem().Kind() == reflect.Uint8 {
		buf := make([]byte, l)
		if _, err := io.ReadFull(r, buf); err != nil {
			return err
		}
		reflect.Copy(tmpPtr.Elem().Slice(0, l), reflect.ValueOf(buf))
	} else {
		for i := 0; i < l; i++ {
			if err := c.DecodeField(r, tmpPtr.Elem().Index(i).Addr().Interface()); err != nil {
				return err
			}
		}
	}
	indirectVal.Set(tmpPtr.Elem())
	return nil
}

func (c *ConfiguredEncoder) decodeSlice(r io.Reader, item interface{}) error {
	indirectVal := reflect.Indirect(reflect.ValueOf(item))
	indirectT := indirectVal.Type()

	l, err := ReadLength(r)
	if err != nil {
		return err
	}
	if l > c.MaxVariableArrayLen {
		return errors.New("variable array field length too large to decode")
	}

	out := reflect.MakeSlice(indirectT, 0, l)
	for i := 0; i < l; i++ {
		elemPtr := reflect.New(indirectT.Elem())
		if err := c.DecodeField(r, elemPtr.Interface()); err != nil {
			return err
		}
		out = reflect.Append(out, elemPtr.Elem())
	}
	indirectVal.Set(out)
	return nil
}
