package cltype

import (
	"encoding/json"
	"strings"

	"github.com/pkg/errors"
)

var (
	ErrUnknownType      = errors.New("unknown type")
	ErrInvalidTypeShape = errors.New("invalid type shape")
)

var primitives = []CLType{
	Bool, I32, I64, U8, U32, U64, U128, U256, U512, Unit, String, Key, URef, PublicKey,
}

// SupportedTypeNames returns every type name accepted in the JSON form of a
// CLType, primitives first.
func SupportedTypeNames() []string {
	names := make([]string, 0, len(primitives)+9)
	for _, p := range primitives {
		names = append(names, p.kind.String())
	}
	for _, k := range []Kind{KindOption, KindList, KindByteArray, KindResult, KindMap, KindTuple1, KindTuple2, KindTuple3, KindAny} {
		names = append(names, k.String())
	}
	return names
}

func unknownType(name string) error {
	return errors.Wrapf(ErrUnknownType, "%q, expected one of: %s", name, strings.Join(SupportedTypeNames(), ", "))
}

func (t CLType) MarshalJSON() ([]byte, error) {
	switch t.kind {
	case KindOption, KindList:
		return json.Marshal(map[string]CLType{t.kind.String(): t.elems[0]})
	case KindByteArray:
		return json.Marshal(map[string]uint32{"ByteArray": t.size})
	case KindResult:
		return json.Marshal(map[string]map[string]CLType{
			"Result": {"ok": t.elems[0], "err": t.elems[1]},
		})
	case KindMap:
		return json.Marshal(map[string]map[string]CLType{
			"Map": {"key": t.elems[0], "value": t.elems[1]},
		})
	case KindTuple1, KindTuple2, KindTuple3:
		return json.Marshal(map[string][]CLType{t.kind.String(): t.elems})
	default:
		return json.Marshal(t.kind.String())
	}
}

func (t *CLType) UnmarshalJSON(b []byte) error {
	var name string
	if err := json.Unmarshal(b, &name); err == nil {
		if name == KindAny.String() {
			*t = Any
			return nil
		}
		for _, p := range primitives {
			if p.kind.String() == name {
				*t = p
				return nil
			}
		}
		return unknownType(name)
	}

	var obj map[string]json.RawMessage
	if err := json.Unmarshal(b, &obj); err != nil || len(obj) != 1 {
		return errors.Wrapf(ErrInvalidTypeShape, "%s is neither a type name nor a single-key object", string(b))
	}
	for name, raw := range obj {
		ct, err := unmarshalComposite(name, raw)
		if err != nil {
			return err
		}
		*t = ct
	}
	return nil
}

func unmarshalComposite(name string, raw json.RawMessage) (CLType, error) {
	switch name {
	case "Option", "List":
		var inner CLType
		if err := json.Unmarshal(raw, &inner); err != nil {
			return CLType{}, err
		}
		if name == "Option" {
			return Option(inner), nil
		}
		return List(inner), nil
	case "ByteArray":
		var size uint32
		if err := json.Unmarshal(raw, &size); err != nil {
			return CLType{}, errors.Wrap(ErrInvalidTypeShape, "ByteArray length must be a u32")
		}
		return ByteArray(size), nil
	case "Result":
		var fields struct {
			Ok  *CLType `json:"ok"`
			Err *CLType `json:"err"`
		}
		if err := json.Unmarshal(raw, &fields); err != nil {
			return CLType{}, err
		}
		if fields.Ok == nil || fields.Err == nil {
			return CLType{}, errors.Wrap(ErrInvalidTypeShape, "Result requires both ok and err types")
		}
		return Result(*fields.Ok, *fields.Err), nil
	case "Map":
		var fields struct {
			Key   *CLType `json:"key"`
			Value *CLType `json:"value"`
		}
		if err := json.Unmarshal(raw, &fields); err != nil {
			return CLType{}, err
		}
		if fields.Key == nil || fields.Value == nil {
			return CLType{}, errors.Wrap(ErrInvalidTypeShape, "Map requires both key and value types")
		}
		return Map(*fields.Key, *fields.Value), nil
	case "Tuple1", "Tuple2", "Tuple3":
		var elems []CLType
		if err := json.Unmarshal(raw, &elems); err != nil {
			return CLType{}, err
		}
		arity := int(name[len(name)-1] - '0')
		if len(elems) != arity {
			return CLType{}, errors.Wrapf(ErrInvalidTypeShape, "%s requires %d types, got %d", name, arity, len(elems))
		}
		return CLType{kind: KindTuple1 + Kind(arity-1), elems: elems}, nil
	default:
		return CLType{}, unknownType(name)
	}
}
