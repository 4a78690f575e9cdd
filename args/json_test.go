package args

import (
	"encoding/json"
	"strings"
	"testing"

	"cspr/cltype"
	"cspr/types"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"
)

const jsonAddrHex = "201f1e1d1c1b1a191817161514131211100f0e0d0c0b0a090807060504030201"

func encodeJSON(t *testing.T, typ string, value string) (cltype.NamedArg, error) {
	var arg JSONArg
	in := `{"name":"x","type":` + typ + `,"value":` + value + `}`
	require.NoError(t, json.Unmarshal([]byte(in), &arg), in)
	return EncodeJSONArg(arg)
}

func TestEncodeJSONArg(t *testing.T) {
	tests := []struct {
		typ   string
		value string
		out   string
	}{
		{`"Bool"`, `false`, "00"},
		{`"Bool"`, `true`, "01"},
		{`"I32"`, `-1`, "ffffffff"},
		{`"I32"`, `2147483647`, "ffffff7f"},
		{`"I32"`, `-2147483648`, "00000080"},
		{`"I64"`, `-9223372036854775808`, "0000000000000080"},
		{`"I64"`, `9223372036854775807`, "ffffffffffffff7f"},
		{`"U8"`, `255`, "ff"},
		{`"U32"`, `4294967295`, "ffffffff"},
		{`"U64"`, `18446744073709551615`, "ffffffffffffffff"},
		{`"U128"`, `1`, "0101"},
		{`"U128"`, `0`, "00"},
		{`"U128"`, `"20000000000000000000"`, "090000d01309468e1501"},
		{`"U256"`, `18446744073709551615`, "08ffffffffffffffff"},
		{`"U512"`, `"1000"`, "02e803"},
		{
			`"U512"`,
			`"13407807929942597099574024998205846127479365820592393377723561443721764030073546976801874298166903427690031858186486050853753882811946569946433649006084095"`,
			"40" + strings.Repeat("ff", 64),
		},
		{`"Unit"`, `null`, ""},
		{`"String"`, `"a"`, "0100000061"},
		{`"String"`, `""`, "00000000"},
		{`"Key"`, `"account-hash-` + jsonAddrHex + `"`, "00" + jsonAddrHex},
		{`"Key"`, `{"Account":"account-hash-` + jsonAddrHex + `"}`, "00" + jsonAddrHex},
		{`"Key"`, `{"URef":"uref-` + jsonAddrHex + `-007"}`, "02" + jsonAddrHex + "07"},
		{`"Key"`, `"era-1"`, "050100000000000000"},
		{`"Key"`, `{"EraInfo":"era-1"}`, "050100000000000000"},
		{`"Key"`, `{"EraSummary":"era-summary-` + strings.Repeat("00", 32) + `"}`, "0b" + strings.Repeat("00", 32)},
		{`"Key"`, `"chainspec-registry-` + strings.Repeat("11", 32) + `"`, "0d" + strings.Repeat("00", 32)},
		{`"URef"`, `"uref-` + jsonAddrHex + `-007"`, jsonAddrHex + "07"},
		{
			`"PublicKey"`,
			`"02030963b980a774f9bf4fded595007b60045ca9593fe6d47296e4e1aaa2745c90d2"`,
			"02030963b980a774f9bf4fded595007b60045ca9593fe6d47296e4e1aaa2745c90d2",
		},
		{`{"Option":"U64"}`, `999`, "01e703000000000000"},
		{`{"Option":"String"}`, `null`, "00"},
		{`{"Option":{"Option":"Bool"}}`, `true`, "010101"},
		{`{"List":{"Option":"U256"}}`, `[1,null,"3"]`, "03000000" + "010101" + "00" + "010103"},
		{`{"List":"U8"}`, `"0102ff"`, "030000000102ff"},
		{`{"List":"U8"}`, `[1,2]`, "020000000102"},
		{`{"List":"String"}`, `[]`, "00000000"},
		{`{"ByteArray":3}`, `"0114ff"`, "0114ff"},
		{`{"ByteArray":3}`, `[1,20,255]`, "0114ff"},
		{`{"ByteArray":0}`, `""`, ""},
		{`{"Result":{"ok":"Bool","err":"U8"}}`, `{"Ok":true}`, "0101"},
		{`{"Result":{"ok":"Bool","err":"U8"}}`, `{"Err":1}`, "0001"},
		{`{"Result":{"ok":"Bool","err":"U8"}}`, `{"ok":false}`, "0100"},
		{`{"Map":{"key":"U8","value":"Bool"}}`, `[{"key":1,"value":true},{"key":2,"value":false}]`, "02000000" + "0101" + "0200"},
		{`{"Map":{"key":"U8","value":"Bool"}}`, `{"2":false,"1":true}`, "02000000" + "0101" + "0200"},
		{`{"Map":{"key":"U8","value":"Bool"}}`, `{}`, "00000000"},
		{
			`{"Map":{"key":"String","value":"U64"}}`,
			`{"b":2,"a":1}`,
			"02000000" + "0100000061" + "0100000000000000" + "0100000062" + "0200000000000000",
		},
		{`{"Map":{"key":"I32","value":"Unit"}}`, `{"-1":null}`, "01000000" + "ffffffff"},
		{`{"Map":{"key":"U512","value":"Bool"}}`, `{"1000":true}`, "01000000" + "02e803" + "01"},
		{`{"Map":{"key":"Bool","value":"U8"}}`, `[{"key":true,"value":7}]`, "01000000" + "01" + "07"},
		{`{"Tuple1":["Bool"]}`, `[true]`, "01"},
		{`{"Tuple2":["Bool","U8"]}`, `[true,128]`, "0180"},
		{`{"Tuple3":["Bool","U8","String"]}`, `[true,128,"a"]`, "01800100000061"},
		{
			`{"List":{"Option":{"Tuple2":["Bool","U8"]}}}`,
			`[[true,1],null,[false,2]]`,
			"03000000" + "010101" + "00" + "010002",
		},
	}
	for _, tt := range tests {
		t.Run(tt.typ+"="+tt.value, func(t *testing.T) {
			arg, err := encodeJSON(t, tt.typ, tt.value)
			require.NoError(t, err)
			require.Equal(t, "x", arg.Name)
			require.Equal(t, tt.out, arg.Value.Hex())

			var typ cltype.CLType
			require.NoError(t, json.Unmarshal([]byte(tt.typ), &typ))
			require.True(t, typ.Equal(arg.Value.Type))
		})
	}
}

func TestEncodeJSONArg_Deterministic(t *testing.T) {
	typ := `{"Map":{"key":"String","value":{"List":"U32"}}}`
	value := `{"z":[1],"m":[2,3],"a":[],"q":[4]}`
	first, err := encodeJSON(t, typ, value)
	require.NoError(t, err)
	for i := 0; i < 20; i++ {
		again, err := encodeJSON(t, typ, value)
		require.NoError(t, err)
		require.True(t, first.Value.Equal(again.Value))
	}
}

func TestEncodeJSONArg_Errors(t *testing.T) {
	tests := []struct {
		typ   string
		value string
		err   error
		kind  Kind
	}{
		{`"Bool"`, `1`, ErrIncompatibleType, KindShape},
		{`"I32"`, `2147483648`, ErrCannotParseToI32, KindRange},
		{`"I32"`, `1.5`, ErrCannotParseToI32, KindRange},
		{`"I32"`, `"1"`, ErrIncompatibleType, KindShape},
		{`"I64"`, `9223372036854775808`, ErrCannotParseToI64, KindRange},
		{`"U8"`, `256`, ErrCannotParseToU8, KindRange},
		{`"U8"`, `-1`, ErrCannotParseToU8, KindRange},
		{`"U32"`, `4294967296`, ErrCannotParseToU32, KindRange},
		{`"U64"`, `18446744073709551616`, ErrCannotParseToU64, KindRange},
		{`"U512"`, `18446744073709551616`, ErrCannotParseToU64, KindRange},
		{`"U128"`, `"340282366920938463463374607431768211456"`, ErrBigUintTooLarge, KindRange},
		{`"U256"`, `"-1"`, ErrBigUintInvalidChar, KindRange},
		{`"U512"`, `""`, ErrBigUintEmpty, KindRange},
		{`"U512"`, `true`, ErrIncompatibleType, KindShape},
		{`"Unit"`, `1`, ErrIncompatibleType, KindShape},
		{`"String"`, `1`, ErrIncompatibleType, KindShape},
		{`"Key"`, `{}`, ErrKeyObjectFieldCount, KindLength},
		{`"Key"`, `{"Account":"a","Hash":"b"}`, ErrKeyObjectFieldCount, KindLength},
		{`"Key"`, `{"Account":1}`, ErrKeyObjectFieldType, KindShape},
		{`"Key"`, `{"Hash":"account-hash-` + jsonAddrHex + `"}`, ErrKeyObjectVariant, KindVariant},
		{`"Key"`, `{"Era":"era-1"}`, ErrKeyObjectVariant, KindVariant},
		{`"Key"`, `"nope"`, types.ErrUnknownKeyPrefix, KindDomain},
		{`"Key"`, `1`, ErrIncompatibleType, KindShape},
		{`"URef"`, `"uref-` + jsonAddrHex + `-008"`, types.ErrInvalidRights, KindDomain},
		{`{"List":"U32"}`, `"0102"`, ErrIncompatibleType, KindShape},
		{`{"List":"U8"}`, `[256]`, ErrCannotParseToU8, KindRange},
		{`{"List":"U8"}`, `{}`, ErrIncompatibleType, KindShape},
		{`{"ByteArray":3}`, `[1,2,256]`, ErrCannotParseToU8, KindRange},
		{`{"ByteArray":3}`, `[1,2,"3"]`, ErrCannotParseToU8, KindRange},
		{`{"ByteArray":3}`, `3`, ErrIncompatibleType, KindShape},
		{`{"Result":{"ok":"Bool","err":"U8"}}`, `{"Ok":true,"Err":1}`, ErrResultObjectFieldCount, KindLength},
		{`{"Result":{"ok":"Bool","err":"U8"}}`, `{}`, ErrResultObjectFieldCount, KindLength},
		{`{"Result":{"ok":"Bool","err":"U8"}}`, `{"Maybe":true}`, ErrResultObjectVariant, KindVariant},
		{`{"Result":{"ok":"Bool","err":"U8"}}`, `{"Err":true}`, ErrIncompatibleType, KindShape},
		{`{"Map":{"key":"U8","value":"Bool"}}`, `[1]`, ErrMapEntryType, KindShape},
		{`{"Map":{"key":"U8","value":"Bool"}}`, `[{"key":1}]`, ErrMapEntryFieldCount, KindLength},
		{`{"Map":{"key":"U8","value":"Bool"}}`, `[{"k":1,"value":true}]`, ErrMapEntryMissingKey, KindShape},
		{`{"Map":{"key":"U8","value":"Bool"}}`, `[{"key":1,"val":true}]`, ErrMapEntryMissingValue, KindShape},
		{`{"Map":{"key":"U8","value":"Bool"}}`, `"x"`, ErrIncompatibleType, KindShape},
		{`"Any"`, `null`, ErrIncompatibleType, KindShape},
		{`"Any"`, `1`, ErrIncompatibleType, KindShape},
	}
	for _, tt := range tests {
		t.Run(tt.typ+"="+tt.value, func(t *testing.T) {
			_, err := encodeJSON(t, tt.typ, tt.value)
			require.Error(t, err)
			require.True(t, errors.Is(err, tt.err), "%v", err)
			require.Equal(t, tt.kind, KindOf(err))

			var argErr *JSONArgError
			require.True(t, errors.As(err, &argErr))
			require.Equal(t, "x", argErr.ArgName)
		})
	}
}

func TestEncodeJSONArg_LengthErrors(t *testing.T) {
	_, err := encodeJSON(t, `{"ByteArray":3}`, `"01020304"`)
	var byteErr *ByteArrayLengthError
	require.True(t, errors.As(err, &byteErr))
	require.Equal(t, uint32(3), byteErr.Expected)
	require.Equal(t, 4, byteErr.Actual)
	require.Equal(t, KindLength, KindOf(err))
	require.Equal(
		t,
		`failed to construct a CLValue of type ByteArray(3) from "01020304" for arg x: number of hex-decoded bytes (4) not as expected (3)`,
		err.Error(),
	)

	_, err = encodeJSON(t, `{"ByteArray":3}`, `[1, 2]`)
	require.True(t, errors.As(err, &byteErr))
	require.Equal(t, 2, byteErr.Actual)
	require.Contains(t, err.Error(), "from [1,2] for arg x")

	tupleTests := []struct {
		value    string
		expected int
		actual   int
	}{
		{`[]`, 1, 0},
		{`[true,1]`, 1, 2},
	}
	for _, tt := range tupleTests {
		_, err := encodeJSON(t, `{"Tuple1":["Bool"]}`, tt.value)
		var tupleErr *TupleLengthError
		require.True(t, errors.As(err, &tupleErr), tt.value)
		require.Equal(t, tt.expected, tupleErr.Expected)
		require.Equal(t, tt.actual, tupleErr.Actual)
		require.Equal(t, KindLength, KindOf(err))
	}
}

func TestEncodeJSONArg_MapKeyNotObject(t *testing.T) {
	for _, value := range []string{`{}`, `{"true":1}`} {
		_, err := encodeJSON(t, `{"Map":{"key":"Bool","value":"U8"}}`, value)
		var keyErr *MapKeyNotObjectError
		require.True(t, errors.As(err, &keyErr), value)
		require.True(t, cltype.Bool.Equal(keyErr.KeyType))
		require.Equal(t, KindShape, KindOf(err))
	}

	_, err := encodeJSON(t, `{"Map":{"key":"U8","value":"Bool"}}`, `{"300":true}`)
	require.Error(t, err)
	require.Equal(t, KindRange, KindOf(err))
}

func TestParseJSONArgs(t *testing.T) {
	out, err := ParseJSONArgs("")
	require.NoError(t, err)
	require.True(t, out.IsEmpty())

	out, err = ParseJSONArgs(`[]`)
	require.NoError(t, err)
	require.True(t, out.IsEmpty())

	out, err = ParseJSONArgs(`[
		{"name":"shape","type":"String","value":"square"},
		{"name":"dimensions","type":{"Tuple2":["U32","U32"]},"value":[100,100]},
		{"name":"color","type":{"Option":"String"},"value":"blue"},
		{"name":"shape","type":"Unit","value":null}
	]`)
	require.NoError(t, err)
	args := out.Args()
	require.Len(t, args, 4)
	require.Equal(t, "shape", args[0].Name)
	require.Equal(t, "06000000737175617265", args[0].Value.Hex())
	require.Equal(t, "dimensions", args[1].Name)
	require.Equal(t, "6400000064000000", args[1].Value.Hex())
	require.Equal(t, "color", args[2].Name)
	require.Equal(t, "0104000000626c7565", args[2].Value.Hex())
	require.Equal(t, "shape", args[3].Name)
	require.True(t, cltype.Unit.Equal(args[3].Value.Type))
}

func TestParseJSONArgs_Errors(t *testing.T) {
	tests := []struct {
		in   string
		kind Kind
		msg  string
	}{
		{`{`, KindStructural, "failed to parse json-args to JSON"},
		{`{"name":"x","type":"Bool","value":true}`, KindStructural, "They should be a JSON Array of Objects"},
		{`[{"name":"x","type":"Bool"}]`, KindStructural, "missing field `value`"},
		{`[{"type":"Bool","value":true}]`, KindStructural, "missing field `name`"},
		{`[{"name":"x","value":true}]`, KindStructural, "missing field `type`"},
		{`null`, KindStructural, "expected an array of args, got null"},
		{` null `, KindStructural, "expected an array of args, got null"},
		{`[{"name":"x","type":"Float","value":1.5}]`, KindUnknownType, `"Float", expected one of`},
		{`[{"name":"x","type":"Bool","value":true},{"name":"y","type":"U8","value":256}]`, KindRange, "for arg y"},
	}
	for _, tt := range tests {
		out, err := ParseJSONArgs(tt.in)
		require.Error(t, err, tt.in)
		require.True(t, out.IsEmpty())
		require.Equal(t, tt.kind, KindOf(err), "%s: %v", tt.in, err)
		require.Contains(t, err.Error(), tt.msg)
	}
}

func TestJSONArgExamples_Encode(t *testing.T) {
	var count int
	for _, entry := range jsonHelpEntries() {
		for _, example := range entry.examples {
			var arg JSONArg
			require.NoError(t, json.Unmarshal([]byte(example), &arg), example)
			_, err := EncodeJSONArg(arg)
			require.NoError(t, err, example)
			count++
		}
	}
	require.Equal(t, 58, count)
}
