package args

import (
	"bytes"
	"encoding/json"
	"fmt"

	"cspr/cltype"
)

var (
	ErrCannotParseToI32 = newError(KindRange, "cannot convert given JSON Number to `i32`")
	ErrCannotParseToI64 = newError(KindRange, "cannot convert given JSON Number to `i64`")
	ErrCannotParseToU8  = newError(KindRange, "cannot convert given JSON Number to `u8`")
	ErrCannotParseToU32 = newError(KindRange, "cannot convert given JSON Number to `u32`")
	ErrCannotParseToU64 = newError(KindRange, "cannot convert given JSON Number to `u64`")

	ErrKeyObjectFieldCount = newError(
		KindLength,
		"invalid number of fields: JSON Object representing a Key must have exactly one field, "+
			"the name of the Key variant mapped to the Key as a formatted string",
	)
	ErrKeyObjectFieldType = newError(
		KindShape,
		"invalid field type: JSON Object representing a Key must have exactly one field, "+
			"the name of the Key variant mapped to the Key as a formatted string",
	)
	ErrKeyObjectVariant = newError(
		KindVariant,
		"invalid Key variant: JSON Object representing a Key must have exactly one field, "+
			"the name of the Key variant mapped to the Key as a formatted string",
	)

	ErrResultObjectFieldCount = newError(
		KindLength,
		"invalid number of fields: JSON Object representing a Result must have exactly one field named 'Ok' or 'Err'",
	)
	ErrResultObjectVariant = newError(
		KindVariant,
		"invalid Result variant: JSON Object representing a Result must have exactly one field named 'Ok' or 'Err'",
	)

	ErrMapEntryType = newError(
		KindShape,
		"invalid entry type: JSON Array representing a Map must have all entries as Objects",
	)
	ErrMapEntryFieldCount = newError(
		KindLength,
		"invalid number of fields: JSON Object representing a Map entry must have exactly two fields, named 'key' and 'value'",
	)
	ErrMapEntryMissingKey = newError(
		KindShape,
		"missing key field: JSON Object representing a Map entry must have exactly two fields, named 'key' and 'value'",
	)
	ErrMapEntryMissingValue = newError(
		KindShape,
		"missing value field: JSON Object representing a Map entry must have exactly two fields, named 'key' and 'value'",
	)

	ErrIncompatibleType = newError(
		KindShape,
		"the given CLType cannot be constructed from the given type of JSON value",
	)
)

// ByteArrayLengthError reports a byte array value of the wrong length.
type ByteArrayLengthError struct {
	Expected uint32
	Actual   int
}

func (e *ByteArrayLengthError) Kind() Kind {
	return KindLength
}

func (e *ByteArrayLengthError) Error() string {
	return fmt.Sprintf("number of hex-decoded bytes (%d) not as expected (%d)", e.Actual, e.Expected)
}

// TupleLengthError reports a tuple value with the wrong number of entries.
type TupleLengthError struct {
	Expected int
	Actual   int
}

func (e *TupleLengthError) Kind() Kind {
	return KindLength
}

func (e *TupleLengthError) Error() string {
	return fmt.Sprintf("number of tuple entries (%d) not as expected (%d)", e.Actual, e.Expected)
}

// MapKeyNotObjectError reports a map given as a JSON object whose key type
// cannot be written as an object field name.
type MapKeyNotObjectError struct {
	KeyType cltype.CLType
}

func (e *MapKeyNotObjectError) Kind() Kind {
	return KindShape
}

func (e *MapKeyNotObjectError) Error() string {
	return fmt.Sprintf(
		"invalid map key type (%s): only maps with key types of string or number can be represented as JSON Objects, "+
			"maps with more complex key types must use a JSON Array",
		e.KeyType,
	)
}

// JSONArgError wraps a failure to encode a single JSON arg with the arg's
// name, declared type and value.
type JSONArgError struct {
	ArgName   string
	Type      cltype.CLType
	JSONValue string
	Details   error
}

func newJSONArgError(arg JSONArg, details error) *JSONArgError {
	value := string(arg.Value)
	var compact bytes.Buffer
	if err := json.Compact(&compact, arg.Value); err == nil {
		value = compact.String()
	}
	return &JSONArgError{
		ArgName:   arg.Name,
		Type:      arg.Type,
		JSONValue: value,
		Details:   details,
	}
}

func (e *JSONArgError) Kind() Kind {
	return KindOf(e.Details)
}

func (e *JSONArgError) Error() string {
	return fmt.Sprintf(
		"failed to construct a CLValue of type %s from %s for arg %s: %s",
		e.Type,
		e.JSONValue,
		e.ArgName,
		e.Details,
	)
}

func (e *JSONArgError) Unwrap() error {
	return e.Details
}
