package cltype

import (
	"fmt"
	"io"
	"strings"

	"cspr/bytesrepr"

	"github.com/pkg/errors"
)

// Kind is the variant of a CLType. Its value is the type's tag byte in the
// binary encoding.
type Kind uint8

const (
	KindBool Kind = iota
	KindI32
	KindI64
	KindU8
	KindU32
	KindU64
	KindU128
	KindU256
	KindU512
	KindUnit
	KindString
	KindKey
	KindURef
	KindOption
	KindList
	KindByteArray
	KindResult
	KindMap
	KindTuple1
	KindTuple2
	KindTuple3
	KindAny
	KindPublicKey
)

// CLType describes the type of a runtime value. Composite types own their
// children, so every CLType is a finite tree. The zero value is Bool.
type CLType struct {
	kind  Kind
	elems []CLType
	size  uint32
}

var (
	Bool      = CLType{kind: KindBool}
	I32       = CLType{kind: KindI32}
	I64       = CLType{kind: KindI64}
	U8        = CLType{kind: KindU8}
	U32       = CLType{kind: KindU32}
	U64       = CLType{kind: KindU64}
	U128      = CLType{kind: KindU128}
	U256      = CLType{kind: KindU256}
	U512      = CLType{kind: KindU512}
	Unit      = CLType{kind: KindUnit}
	String    = CLType{kind: KindString}
	Key       = CLType{kind: KindKey}
	URef      = CLType{kind: KindURef}
	PublicKey = CLType{kind: KindPublicKey}
	Any       = CLType{kind: KindAny}
)

func Option(inner CLType) CLType {
	return CLType{kind: KindOption, elems: []CLType{inner}}
}

func List(inner CLType) CLType {
	return CLType{kind: KindList, elems: []CLType{inner}}
}

func ByteArray(size uint32) CLType {
	return CLType{kind: KindByteArray, size: size}
}

func Result(ok, err CLType) CLType {
	return CLType{kind: KindResult, elems: []CLType{ok, err}}
}

func Map(key, value CLType) CLType {
	return CLType{kind: KindMap, elems: []CLType{key, value}}
}

func Tuple1(t0 CLType) CLType {
	return CLType{kind: KindTuple1, elems: []CLType{t0}}
}

func Tuple2(t0, t1 CLType) CLType {
	return CLType{kind: KindTuple2, elems: []CLType{t0, t1}}
}

func Tuple3(t0, t1, t2 CLType) CLType {
	return CLType{kind: KindTuple3, elems: []CLType{t0, t1, t2}}
}

func (t CLType) Kind() Kind {
	return t.kind
}

// Inner returns the element type of an Option or List.
func (t CLType) Inner() CLType {
	t.mustBe(KindOption, KindList)
	return t.elems[0]
}

func (t CLType) Ok() CLType {
	t.mustBe(KindResult)
	return t.elems[0]
}

func (t CLType) Err() CLType {
	t.mustBe(KindResult)
	return t.elems[1]
}

func (t CLType) MapKey() CLType {
	t.mustBe(KindMap)
	return t.elems[0]
}

func (t CLType) MapValue() CLType {
	t.mustBe(KindMap)
	return t.elems[1]
}

// TupleElems returns the slot types of a Tuple1, Tuple2 or Tuple3.
func (t CLType) TupleElems() []CLType {
	t.mustBe(KindTuple1, KindTuple2, KindTuple3)
	out := make([]CLType, len(t.elems))
	copy(out, t.elems)
	return out
}

// Size returns the length of a ByteArray.
func (t CLType) Size() uint32 {
	t.mustBe(KindByteArray)
	return t.size
}

func (t CLType) Equal(other CLType) bool {
	if t.kind != other.kind || t.size != other.size || len(t.elems) != len(other.elems) {
		return false
	}
	for i := range t.elems {
		if !t.elems[i].Equal(other.elems[i]) {
			return false
		}
	}
	return true
}

func (t CLType) String() string {
	switch t.kind {
	case KindOption, KindList:
		return fmt.Sprintf("%s(%s)", t.kind, t.elems[0])
	case KindByteArray:
		return fmt.Sprintf("ByteArray(%d)", t.size)
	case KindResult:
		return fmt.Sprintf("Result { ok: %s, err: %s }", t.elems[0], t.elems[1])
	case KindMap:
		return fmt.Sprintf("Map { key: %s, value: %s }", t.elems[0], t.elems[1])
	case KindTuple1, KindTuple2, KindTuple3:
		parts := make([]string, len(t.elems))
		for i, elem := range t.elems {
			parts[i] = elem.String()
		}
		return fmt.Sprintf("%s([%s])", t.kind, strings.Join(parts, ", "))
	default:
		return t.kind.String()
	}
}

// Encode writes the type's tag tree.
func (t CLType) Encode(w io.Writer) error {
	if err := bytesrepr.WriteTag(w, uint8(t.kind)); err != nil {
		return err
	}
	if t.kind == KindByteArray {
		return bytesrepr.EncodeField(w, t.size)
	}
	for _, elem := range t.elems {
		if err := elem.Encode(w); err != nil {
			return err
		}
	}
	return nil
}

func (t *CLType) Decode(r io.Reader) error {
	tag, err := bytesrepr.ReadTag(r)
	if err != nil {
		return err
	}
	kind := Kind(tag)
	var arity int
	switch kind {
	case KindByteArray:
		var size uint32
		if err := bytesrepr.DecodeField(r, &size); err != nil {
			return err
		}
		*t = ByteArray(size)
		return nil
	case KindOption, KindList, KindTuple1:
		arity = 1
	case KindResult, KindMap, KindTuple2:
		arity = 2
	case KindTuple3:
		arity = 3
	default:
		if kind > KindPublicKey {
			return errors.Errorf("invalid cl type tag %d", tag)
		}
		*t = CLType{kind: kind}
		return nil
	}

	elems := make([]CLType, arity)
	for i := range elems {
		if err := elems[i].Decode(r); err != nil {
			return err
		}
	}
	*t = CLType{kind: kind, elems: elems}
	return nil
}

func (t CLType) mustBe(kinds ...Kind) {
	for _, k := range kinds {
		if t.kind == k {
			return
		}
	}
	panic(fmt.Sprintf("cltype: %s has no such component", t))
}

func (k Kind) String() string {
	switch k {
	case KindBool:
		return "Bool"
	case KindI32:
		return "I32"
	case KindI64:
		return "I64"
	case KindU8:
		return "U8"
	case KindU32:
		return "U32"
	case KindU64:
		return "U64"
	case KindU128:
		return "U128"
	case KindU256:
		return "U256"
	case KindU512:
		return "U512"
	case KindUnit:
		return "Unit"
	case KindString:
		return "String"
	case KindKey:
		return "Key"
	case KindURef:
		return "URef"
	case KindOption:
		return "Option"
	case KindList:
		return "List"
	case KindByteArray:
		return "ByteArray"
	case KindResult:
		return "Result"
	case KindMap:
		return "Map"
	case KindTuple1:
		return "Tuple1"
	case KindTuple2:
		return "Tuple2"
	case KindTuple3:
		return "Tuple3"
	case KindAny:
		return "Any"
	case KindPublicKey:
		return "PublicKey"
	default:
		return "Unknown"
	}
}
