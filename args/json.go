package args

import (
	"bytes"
	"encoding/hex"
	"encoding/json"
	"io"
	"sort"
	"strconv"
	"strings"

	"cspr/bytesrepr"
	"cspr/cltype"
	"cspr/crypto"
	"cspr/types"

	"github.com/pkg/errors"
)

const jsonArgsFormat = `They should be a JSON Array of Objects, each of the form {"name":<String>,"type":<VALUE>,"value":<VALUE>}`

// JSONArg is a single entry of the JSON arg syntax:
// {"name":<String>,"type":<CLType>,"value":<JSON value>}.
type JSONArg struct {
	Name  string          `json:"name"`
	Type  cltype.CLType   `json:"type"`
	Value json.RawMessage `json:"value"`
}

func (a *JSONArg) UnmarshalJSON(b []byte) error {
	var raw struct {
		Name  *string         `json:"name"`
		Type  *cltype.CLType  `json:"type"`
		Value json.RawMessage `json:"value"`
	}
	if err := json.Unmarshal(b, &raw); err != nil {
		return err
	}
	switch {
	case raw.Name == nil:
		return errors.New("missing field `name`")
	case raw.Type == nil:
		return errors.New("missing field `type`")
	case raw.Value == nil:
		return errors.New("missing field `value`")
	}
	a.Name = *raw.Name
	a.Type = *raw.Type
	a.Value = raw.Value
	return nil
}

// ParseJSONArgs decodes a JSON array of args and encodes each in order. An
// empty string yields no args.
func ParseJSONArgs(in string) (cltype.RuntimeArgs, error) {
	var out cltype.RuntimeArgs
	if in == "" {
		return out, nil
	}

	var jsonArgs []JSONArg
	if err := json.Unmarshal([]byte(in), &jsonArgs); err != nil {
		if errors.Is(err, cltype.ErrUnknownType) {
			return out, wrapError(KindUnknownType, err, "failed to parse json-args to JSON")
		}
		return out, errorf(KindStructural, "failed to parse json-args to JSON: %s.  %s", err, jsonArgsFormat)
	}
	if jsonArgs == nil {
		return out, errorf(KindStructural, "failed to parse json-args to JSON: expected an array of args, got null.  %s", jsonArgsFormat)
	}
	for _, jsonArg := range jsonArgs {
		arg, err := EncodeJSONArg(jsonArg)
		if err != nil {
			return cltype.RuntimeArgs{}, err
		}
		out.InsertNamed(arg)
	}
	return out, nil
}

// EncodeJSONArg encodes arg.Value as a value of arg.Type.
func EncodeJSONArg(arg JSONArg) (cltype.NamedArg, error) {
	value, err := decodeJSONValue(arg.Value)
	if err != nil {
		return cltype.NamedArg{}, newJSONArgError(arg, wrapError(KindStructural, err, "invalid JSON value"))
	}
	var buf bytes.Buffer
	if err := writeJSON(arg.Type, value, &buf); err != nil {
		return cltype.NamedArg{}, newJSONArgError(arg, err)
	}
	return cltype.NamedArg{
		Name: arg.Name,
		Value: cltype.CLValue{
			Type:  arg.Type,
			Bytes: buf.Bytes(),
		},
	}, nil
}

// decodeJSONValue keeps numbers as their decimal text so that 64-bit and
// big integers are not rounded through float64.
func decodeJSONValue(raw json.RawMessage) (interface{}, error) {
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.UseNumber()
	var value interface{}
	if err := dec.Decode(&value); err != nil {
		return nil, err
	}
	return value, nil
}

func writeJSON(t cltype.CLType, value interface{}, w io.Writer) error {
	switch t.Kind() {
	case cltype.KindBool:
		b, ok := value.(bool)
		if !ok {
			return ErrIncompatibleType
		}
		return bytesrepr.EncodeField(w, b)
	case cltype.KindI32:
		n, ok := value.(json.Number)
		if !ok {
			return ErrIncompatibleType
		}
		v, err := strconv.ParseInt(n.String(), 10, 32)
		if err != nil {
			return ErrCannotParseToI32
		}
		return bytesrepr.EncodeField(w, int32(v))
	case cltype.KindI64:
		n, ok := value.(json.Number)
		if !ok {
			return ErrIncompatibleType
		}
		v, err := strconv.ParseInt(n.String(), 10, 64)
		if err != nil {
			return ErrCannotParseToI64
		}
		return bytesrepr.EncodeField(w, v)
	case cltype.KindU8:
		n, ok := value.(json.Number)
		if !ok {
			return ErrIncompatibleType
		}
		v, err := strconv.ParseUint(n.String(), 10, 8)
		if err != nil {
			return ErrCannotParseToU8
		}
		return bytesrepr.EncodeField(w, uint8(v))
	case cltype.KindU32:
		n, ok := value.(json.Number)
		if !ok {
			return ErrIncompatibleType
		}
		v, err := strconv.ParseUint(n.String(), 10, 32)
		if err != nil {
			return ErrCannotParseToU32
		}
		return bytesrepr.EncodeField(w, uint32(v))
	case cltype.KindU64:
		n, ok := value.(json.Number)
		if !ok {
			return ErrIncompatibleType
		}
		v, err := strconv.ParseUint(n.String(), 10, 64)
		if err != nil {
			return ErrCannotParseToU64
		}
		return bytesrepr.EncodeField(w, v)
	case cltype.KindU128:
		return writeJSONBigUint(value, bytesrepr.U128Width, w)
	case cltype.KindU256:
		return writeJSONBigUint(value, bytesrepr.U256Width, w)
	case cltype.KindU512:
		return writeJSONBigUint(value, bytesrepr.U512Width, w)
	case cltype.KindUnit:
		if value != nil {
			return ErrIncompatibleType
		}
		return nil
	case cltype.KindString:
		s, ok := value.(string)
		if !ok {
			return ErrIncompatibleType
		}
		return bytesrepr.EncodeField(w, s)
	case cltype.KindKey:
		return writeJSONKey(value, w)
	case cltype.KindURef:
		s, ok := value.(string)
		if !ok {
			return ErrIncompatibleType
		}
		uref, err := types.ParseURef(s)
		if err != nil {
			return wrapError(KindDomain, err, "failed parsing a URef")
		}
		return uref.Encode(w)
	case cltype.KindPublicKey:
		s, ok := value.(string)
		if !ok {
			return ErrIncompatibleType
		}
		pub, err := crypto.NewPublicKeyFromHex(s)
		if err != nil {
			return wrapError(KindDomain, err, "failed parsing a PublicKey")
		}
		return pub.Encode(w)
	case cltype.KindOption:
		if value == nil {
			return bytesrepr.WriteTag(w, bytesrepr.OptionNoneTag)
		}
		if err := bytesrepr.WriteTag(w, bytesrepr.OptionSomeTag); err != nil {
			return err
		}
		return writeJSON(t.Inner(), value, w)
	case cltype.KindList:
		return writeJSONList(t.Inner(), value, w)
	case cltype.KindByteArray:
		return writeJSONByteArray(t.Size(), value, w)
	case cltype.KindResult:
		return writeJSONResult(t, value, w)
	case cltype.KindMap:
		return writeJSONMap(t, value, w)
	case cltype.KindTuple1, cltype.KindTuple2, cltype.KindTuple3:
		arr, ok := value.([]interface{})
		if !ok {
			return ErrIncompatibleType
		}
		elems := t.TupleElems()
		if len(arr) != len(elems) {
			return &TupleLengthError{Expected: len(elems), Actual: len(arr)}
		}
		for i, elem := range elems {
			if err := writeJSON(elem, arr[i], w); err != nil {
				return err
			}
		}
		return nil
	default:
		return ErrIncompatibleType
	}
}

// writeJSONBigUint accepts a decimal string of any size the width allows,
// or a JSON number no larger than a u64.
func writeJSONBigUint(value interface{}, width int, w io.Writer) error {
	switch v := value.(type) {
	case string:
		return writeBigUint(w, v, width)
	case json.Number:
		n, err := strconv.ParseUint(v.String(), 10, 64)
		if err != nil {
			return ErrCannotParseToU64
		}
		return writeBigUint(w, strconv.FormatUint(n, 10), width)
	default:
		return ErrIncompatibleType
	}
}

func writeJSONKey(value interface{}, w io.Writer) error {
	switch v := value.(type) {
	case string:
		key, err := types.ParseKey(v)
		if err != nil {
			return wrapError(KindDomain, err, "failed parsing a Key")
		}
		return key.Encode(w)
	case map[string]interface{}:
		if len(v) != 1 {
			return ErrKeyObjectFieldCount
		}
		var variant, formatted string
		for name, field := range v {
			s, ok := field.(string)
			if !ok {
				return ErrKeyObjectFieldType
			}
			variant, formatted = name, s
		}
		key, err := types.ParseKey(formatted)
		if err != nil {
			return wrapError(KindDomain, err, "failed parsing a Key")
		}
		if key.VariantName() != variant {
			return ErrKeyObjectVariant
		}
		return key.Encode(w)
	default:
		return ErrIncompatibleType
	}
}

func writeJSONList(inner cltype.CLType, value interface{}, w io.Writer) error {
	switch v := value.(type) {
	case []interface{}:
		if err := bytesrepr.WriteLength(w, len(v)); err != nil {
			return err
		}
		for _, item := range v {
			if err := writeJSON(inner, item, w); err != nil {
				return err
			}
		}
		return nil
	case string:
		// a List(U8) may be given as a hex string
		if inner.Kind() != cltype.KindU8 {
			return ErrIncompatibleType
		}
		b, err := hex.DecodeString(v)
		if err != nil {
			return wrapError(KindDomain, err, "invalid hex")
		}
		return bytesrepr.EncodeField(w, b)
	default:
		return ErrIncompatibleType
	}
}

func writeJSONByteArray(size uint32, value interface{}, w io.Writer) error {
	switch v := value.(type) {
	case string:
		b, err := hex.DecodeString(v)
		if err != nil {
			return wrapError(KindDomain, err, "invalid hex")
		}
		if len(b) != int(size) {
			return &ByteArrayLengthError{Expected: size, Actual: len(b)}
		}
		_, err = w.Write(b)
		return err
	case []interface{}:
		if len(v) != int(size) {
			return &ByteArrayLengthError{Expected: size, Actual: len(v)}
		}
		b := make([]byte, 0, len(v))
		for _, item := range v {
			n, ok := item.(json.Number)
			if !ok {
				return ErrCannotParseToU8
			}
			u, err := strconv.ParseUint(n.String(), 10, 8)
			if err != nil {
				return ErrCannotParseToU8
			}
			b = append(b, uint8(u))
		}
		_, err := w.Write(b)
		return err
	default:
		return ErrIncompatibleType
	}
}

func writeJSONResult(t cltype.CLType, value interface{}, w io.Writer) error {
	obj, ok := value.(map[string]interface{})
	if !ok {
		return ErrIncompatibleType
	}
	if len(obj) != 1 {
		return ErrResultObjectFieldCount
	}
	for name, inner := range obj {
		switch strings.ToLower(name) {
		case "ok":
			if err := bytesrepr.WriteTag(w, bytesrepr.ResultOkTag); err != nil {
				return err
			}
			return writeJSON(t.Ok(), inner, w)
		case "err":
			if err := bytesrepr.WriteTag(w, bytesrepr.ResultErrTag); err != nil {
				return err
			}
			return writeJSON(t.Err(), inner, w)
		}
	}
	return ErrResultObjectVariant
}

func writeJSONMap(t cltype.CLType, value interface{}, w io.Writer) error {
	keyType, valueType := t.MapKey(), t.MapValue()
	switch v := value.(type) {
	case map[string]interface{}:
		if !keyTypeFitsObject(keyType) {
			return &MapKeyNotObjectError{KeyType: keyType}
		}
		names := make([]string, 0, len(v))
		for name := range v {
			names = append(names, name)
		}
		sort.Strings(names)

		if err := bytesrepr.WriteLength(w, len(names)); err != nil {
			return err
		}
		for _, name := range names {
			key, err := objectKeyValue(keyType, name)
			if err != nil {
				return err
			}
			if err := writeJSON(keyType, key, w); err != nil {
				return err
			}
			if err := writeJSON(valueType, v[name], w); err != nil {
				return err
			}
		}
		return nil
	case []interface{}:
		if err := bytesrepr.WriteLength(w, len(v)); err != nil {
			return err
		}
		for _, item := range v {
			entry, ok := item.(map[string]interface{})
			if !ok {
				return ErrMapEntryType
			}
			if len(entry) != 2 {
				return ErrMapEntryFieldCount
			}
			key, ok := entry["key"]
			if !ok {
				return ErrMapEntryMissingKey
			}
			if err := writeJSON(keyType, key, w); err != nil {
				return err
			}
			val, ok := entry["value"]
			if !ok {
				return ErrMapEntryMissingValue
			}
			if err := writeJSON(valueType, val, w); err != nil {
				return err
			}
		}
		return nil
	default:
		return ErrIncompatibleType
	}
}

func keyTypeFitsObject(t cltype.CLType) bool {
	switch t.Kind() {
	case cltype.KindI32, cltype.KindI64, cltype.KindU8, cltype.KindU32, cltype.KindU64,
		cltype.KindU128, cltype.KindU256, cltype.KindU512, cltype.KindString:
		return true
	default:
		return false
	}
}

// objectKeyValue re-reads a JSON object field name as a JSON value of the
// map's key type.
func objectKeyValue(t cltype.CLType, name string) (interface{}, error) {
	var bits int
	signed := false
	switch t.Kind() {
	case cltype.KindString:
		return name, nil
	case cltype.KindU128, cltype.KindU256, cltype.KindU512:
		return name, nil
	case cltype.KindI32:
		bits, signed = 32, true
	case cltype.KindI64:
		bits, signed = 64, true
	case cltype.KindU8:
		bits = 8
	case cltype.KindU32:
		bits = 32
	case cltype.KindU64:
		bits = 64
	default:
		return nil, &MapKeyNotObjectError{KeyType: t}
	}

	var err error
	if signed {
		_, err = strconv.ParseInt(name, 10, bits)
	} else {
		_, err = strconv.ParseUint(name, 10, bits)
	}
	if err != nil {
		return nil, wrapError(KindRange, err, "invalid map key '%s'", name)
	}
	return json.Number(name), nil
}
