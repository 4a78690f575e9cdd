package args

import (
	"bytes"
	"encoding/hex"
	"io"
	"strconv"
	"strings"

	"cspr/bytesrepr"
	"cspr/cltype"
	"cspr/crypto"
	"cspr/types"

	"github.com/pkg/errors"
)

const (
	optionPrefix    = "opt_"
	byteArrayPrefix = "byte_array_"
	simpleArgFormat = `"NAME:TYPE='VALUE'" OR "NAME:TYPE=null"`
)

type optionalStatus int

const (
	notOptional optionalStatus = iota
	optionalSome
	optionalNone
)

type simpleKind int

const (
	simpleBool simpleKind = iota
	simpleI32
	simpleI64
	simpleU8
	simpleU32
	simpleU64
	simpleU128
	simpleU256
	simpleU512
	simpleUnit
	simpleString
	simpleKey
	simpleAccountHash
	simpleURef
	simplePublicKey
	simpleByteList
	simpleByteArray
)

// simpleType is a resolved base type name of the simple arg syntax.
type simpleType struct {
	kind simpleKind
	name string
	size uint32
}

// SupportedSimpleTypes lists every type name accepted by the simple arg
// syntax, followed by their optional forms.
func SupportedSimpleTypes() []string {
	names := []string{
		"bool", "i32", "i64", "u8", "u32", "u64", "u128", "u256", "u512", "unit", "string",
		"key", "account_hash", "uref", "public_key", "byte_list", byteArrayPrefix + "<NUM>",
	}
	out := make([]string, 0, len(names)*2)
	out = append(out, names...)
	for _, name := range names {
		out = append(out, optionPrefix+name)
	}
	return out
}

// ParseSimpleArg parses a single NAME:TYPE='VALUE' token, e.g.
// "amount:u512='1000'" or "target:opt_key=null".
func ParseSimpleArg(token string) (cltype.NamedArg, error) {
	name, typeToken, rawValue, err := splitSimpleArg(token)
	if err != nil {
		return cltype.NamedArg{}, err
	}
	base, status, value, err := simpleTypeAndStatus(typeToken, rawValue)
	if err != nil {
		return cltype.NamedArg{}, err
	}
	st, err := resolveSimpleType(base, status)
	if err != nil {
		return cltype.NamedArg{}, err
	}
	clValue, err := st.encode(status, value)
	if err != nil {
		return cltype.NamedArg{}, errors.WithMessagef(err, "invalid simple arg '%s' of type %s", name, typeToken)
	}
	return cltype.NamedArg{Name: name, Value: clValue}, nil
}

// InsertSimpleArg parses token and appends the result to args.
func InsertSimpleArg(token string, args *cltype.RuntimeArgs) error {
	arg, err := ParseSimpleArg(token)
	if err != nil {
		return err
	}
	args.InsertNamed(arg)
	return nil
}

func splitSimpleArg(token string) (string, string, string, error) {
	parts := make([]string, 0, 3)
	rest := token
	for i := 0; i < 2; i++ {
		idx := strings.IndexAny(rest, ":=")
		if idx < 0 {
			return "", "", "", errorf(KindStructural, "arg %s should be formatted as %s", token, simpleArgFormat)
		}
		parts = append(parts, rest[:idx])
		rest = rest[idx+1:]
	}
	return parts[0], parts[1], rest, nil
}

// simpleTypeAndStatus lowercases the type token, strips any opt_ prefix and
// removes the single quotes around the value.
func simpleTypeAndStatus(typeToken, rawValue string) (string, optionalStatus, string, error) {
	lower := strings.ToLower(typeToken)
	status := notOptional
	if strings.HasPrefix(lower, optionPrefix) {
		lower = strings.TrimPrefix(lower, optionPrefix)
		if strings.ToLower(rawValue) == "null" {
			return lower, optionalNone, "", nil
		}
		status = optionalSome
	}

	if len(rawValue) < 2 || rawValue[0] != '\'' || rawValue[len(rawValue)-1] != '\'' {
		return "", status, "", errorf(
			KindStructural,
			"value in simple arg should be surrounded by single quotes unless it's a null optional value (value passed: %s)",
			rawValue,
		)
	}
	return lower, status, rawValue[1 : len(rawValue)-1], nil
}

func resolveSimpleType(base string, status optionalStatus) (simpleType, error) {
	st := simpleType{name: base}
	switch base {
	case "bool":
		st.kind = simpleBool
	case "i32":
		st.kind = simpleI32
	case "i64":
		st.kind = simpleI64
	case "u8":
		st.kind = simpleU8
	case "u32":
		st.kind = simpleU32
	case "u64":
		st.kind = simpleU64
	case "u128":
		st.kind = simpleU128
	case "u256":
		st.kind = simpleU256
	case "u512":
		st.kind = simpleU512
	case "unit":
		st.kind = simpleUnit
	case "string":
		st.kind = simpleString
	case "key":
		st.kind = simpleKey
	case "account_hash":
		st.kind = simpleAccountHash
	case "uref":
		st.kind = simpleURef
	case "public_key":
		st.kind = simplePublicKey
	case "byte_list":
		st.kind = simpleByteList
	default:
		if !strings.HasPrefix(base, byteArrayPrefix) {
			original := base
			if status != notOptional {
				original = optionPrefix + base
			}
			return st, errorf(
				KindUnknownType,
				"unknown variant %s, expected one of %s",
				original,
				strings.Join(SupportedSimpleTypes(), ", "),
			)
		}
		sizeStr := strings.TrimPrefix(base, byteArrayPrefix)
		size, err := strconv.ParseUint(sizeStr, 10, 32)
		if err != nil {
			return st, errorf(KindUnknownType, "can't parse '%s' of '%s' as an integer", sizeStr, base)
		}
		st.kind = simpleByteArray
		st.size = uint32(size)
	}
	return st, nil
}

func (st simpleType) clType() cltype.CLType {
	switch st.kind {
	case simpleBool:
		return cltype.Bool
	case simpleI32:
		return cltype.I32
	case simpleI64:
		return cltype.I64
	case simpleU8:
		return cltype.U8
	case simpleU32:
		return cltype.U32
	case simpleU64:
		return cltype.U64
	case simpleU128:
		return cltype.U128
	case simpleU256:
		return cltype.U256
	case simpleU512:
		return cltype.U512
	case simpleUnit:
		return cltype.Unit
	case simpleString:
		return cltype.String
	case simpleKey:
		return cltype.Key
	case simpleAccountHash:
		return cltype.ByteArray(crypto.HashLen)
	case simpleURef:
		return cltype.URef
	case simplePublicKey:
		return cltype.PublicKey
	case simpleByteList:
		return cltype.List(cltype.U8)
	case simpleByteArray:
		return cltype.ByteArray(st.size)
	default:
		panic("unhandled simple type")
	}
}

// encode builds the value. A none value is only the option tag: the leaf
// parser is never invoked for it.
func (st simpleType) encode(status optionalStatus, value string) (cltype.CLValue, error) {
	t := st.clType()
	var buf bytes.Buffer
	switch status {
	case optionalNone:
		return cltype.CLValue{
			Type:  cltype.Option(t),
			Bytes: []byte{bytesrepr.OptionNoneTag},
		}, nil
	case optionalSome:
		t = cltype.Option(t)
		buf.WriteByte(bytesrepr.OptionSomeTag)
	}
	if err := st.write(&buf, value); err != nil {
		return cltype.CLValue{}, err
	}
	return cltype.CLValue{Type: t, Bytes: buf.Bytes()}, nil
}

func (st simpleType) write(w io.Writer, value string) error {
	switch st.kind {
	case simpleBool:
		switch strings.ToLower(value) {
		case "true", "t":
			return bytesrepr.EncodeField(w, true)
		case "false", "f":
			return bytesrepr.EncodeField(w, false)
		default:
			return errorf(KindDomain, "can't parse '%s' as a bool (should be 'true' or 'false')", value)
		}
	case simpleI32:
		v, err := strconv.ParseInt(value, 10, 32)
		if err != nil {
			return errorf(KindRange, "can't parse '%s' as %s", value, st.name)
		}
		return bytesrepr.EncodeField(w, int32(v))
	case simpleI64:
		v, err := strconv.ParseInt(value, 10, 64)
		if err != nil {
			return errorf(KindRange, "can't parse '%s' as %s", value, st.name)
		}
		return bytesrepr.EncodeField(w, v)
	case simpleU8:
		v, err := parseUnsigned(value, 8)
		if err != nil {
			return errorf(KindRange, "can't parse '%s' as %s", value, st.name)
		}
		return bytesrepr.EncodeField(w, uint8(v))
	case simpleU32:
		v, err := parseUnsigned(value, 32)
		if err != nil {
			return errorf(KindRange, "can't parse '%s' as %s", value, st.name)
		}
		return bytesrepr.EncodeField(w, uint32(v))
	case simpleU64:
		v, err := parseUnsigned(value, 64)
		if err != nil {
			return errorf(KindRange, "can't parse '%s' as %s", value, st.name)
		}
		return bytesrepr.EncodeField(w, v)
	case simpleU128:
		return st.writeBig(w, value, bytesrepr.U128Width)
	case simpleU256:
		return st.writeBig(w, value, bytesrepr.U256Width)
	case simpleU512:
		return st.writeBig(w, value, bytesrepr.U512Width)
	case simpleUnit:
		if value != "" {
			return errorf(KindDomain, "can't parse '%s' as unit (should be '')", value)
		}
		return nil
	case simpleString:
		return bytesrepr.EncodeField(w, value)
	case simpleKey:
		key, err := types.ParseKey(value)
		if err != nil {
			return wrapError(KindDomain, err, "can't parse '%s' as Key", value)
		}
		return key.Encode(w)
	case simpleAccountHash:
		hash, err := types.ParseAccountHash(value)
		if err != nil {
			return wrapError(KindDomain, err, "can't parse '%s' as AccountHash", value)
		}
		return hash.Encode(w)
	case simpleURef:
		uref, err := types.ParseURef(value)
		if err != nil {
			return wrapError(KindDomain, err, "can't parse '%s' as URef", value)
		}
		return uref.Encode(w)
	case simplePublicKey:
		pub, err := crypto.NewPublicKeyFromHex(value)
		if err != nil {
			return wrapError(KindDomain, err, "can't parse '%s' as PublicKey", value)
		}
		return pub.Encode(w)
	case simpleByteList:
		b, err := hex.DecodeString(value)
		if err != nil {
			return wrapError(KindDomain, err, "can't parse '%s' as a byte_list", value)
		}
		return bytesrepr.EncodeField(w, b)
	case simpleByteArray:
		b, err := hex.DecodeString(value)
		if err != nil {
			return wrapError(KindDomain, err, "can't parse '%s' as a byte_array", value)
		}
		if len(b) != int(st.size) {
			return errorf(KindLength, "provided %d bytes but specified a byte_array of %d bytes", len(b), st.size)
		}
		_, err = w.Write(b)
		return err
	default:
		panic("unhandled simple type")
	}
}

func (st simpleType) writeBig(w io.Writer, value string, width int) error {
	if err := writeBigUint(w, value, width); err != nil {
		return wrapError(KindRange, err, "can't parse '%s' as %s", value, st.name)
	}
	return nil
}

// parseUnsigned accepts one leading '+' like the signed parsers do.
func parseUnsigned(value string, bitSize int) (uint64, error) {
	return strconv.ParseUint(strings.TrimPrefix(value, "+"), 10, bitSize)
}
