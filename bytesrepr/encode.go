package bytesrepr

import (
	"encoding/binary"
	"io"
	"math"
	"reflect"

	"github.com/pkg/errors"
)

// EncodeFields encodes each field in the variadic items argument into the
// Writer using the default Encoder.
func EncodeFields(w io.Writer, items ...interface{}) error {
	return defaultEncoder.EncodeFields(w, items...)
}

// EncodeField encodes the field in the item argument into the Writer using
// the default Encoder.
func EncodeField(w io.Writer, item interface{}) error {
	return defaultEncoder.EncodeField(w, item)
}

// WriteLength writes a uint32 length or count prefix.
func WriteLength(w io.Writer, l int) error {
	if l < 0 || uint64(l) > math.MaxUint32 {
		return errors.Errorf("length %d does not fit in a uint32 prefix", l)
	}
	return EncodeField(w, uint32(l))
}

// WriteTag writes a single tag byte.
func WriteTag(w io.Writer, tag uint8) error {
	_, err := w.Write([]byte{tag})
	return err
}

// EncodeFields encodes each field in the variadic items argument into the
// Writer.
func (c *ConfiguredEncoder) EncodeFields(w io.Writer, items ...interface{}) error {
	for _, item := range items {
		if err := c.EncodeField(w, item); err != nil {
			return err
		}
	}

	return nil
}

// EncodeField encodes the field in the item argument into the Writer.
func (c *ConfiguredEncoder) EncodeField(w io.Writer, item interface{}) error {
	var err error
	switch it := item.(type) {
	case Encoder:
		err = it.Encode(w)
	case bool:
		if it {
			_, err = w.Write([]byte{0x01})
		} else {
			_, err = w.Write([]byte{0x00})
		}
	case uint8:
		_, err = w.Write([]byte{it})
	case int32:
		b := make([]byte, 4)
		binary.LittleEndian.PutUint32(b, uint32(it))
		_, err = w.Write(b)
	case uint32:
		b := make([]byte, 4)
		binary.LittleEndian.PutUint32(b, it)
		_, err = w.Write(b)
	case int64:
		b := make([]byte, 8)
		binary.LittleEndian.PutUint64(b, uint64(it))
		_, err = w.Write(b)
	case uint64:
		b := make([]byte, 8)
		binary.LittleEndian.PutUint64(b, it)
		_, err = w.Write(b)
	case []byte:
		if err := WriteLength(w, len(it)); err != nil {
			return err
		}
		_, err = w.Write(it)
	case string:
		err = c.EncodeField(w, []byte(it))
	case [32]byte:
		_, err = w.Write(it[:])
	default:
		err = c.encodeReflect(w, item)
	}

	return err
}

func (c *ConfiguredEncoder) encodeReflect(w io.Writer, item interface{}) error {
	val := reflect.ValueOf(item)
	switch val.Kind() {
	case reflect.Array:
		if val.Type().Elem().Kind() == reflect.Uint8 {
			buf := make([]byte, val.Len())
			reflect.Copy(reflect.ValueOf(buf), val)
			_, err := w.Write(buf)
			return err
		}
		for i := 0; i < val.Len(); i++ {
			if err := c.EncodeField(w, val.Index(i).Interface()); err != nil {
				return err
			}
		}
		return nil
	case reflect.Slice:
		if err := WriteLength(w, val.Len()); err != nil {
			return err
		}
		for i := 0; i < val.Len(); i++ {
			if err := c.EncodeField(w, val.Index(i).Interface()); err != nil {
				return err
			}
		}
		return nil
	default:
		return errors.Errorf("type %s cannot be encoded", val.Type().String())
	}
}
